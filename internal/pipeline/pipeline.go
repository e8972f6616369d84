// Package pipeline models sending a message and its simulated acknowledgement
// lifecycle. A real backend would replace the fixed-delay scheduling with
// network acknowledgement events; the forward-only status contract in Advance
// stays the same either way.
package pipeline

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugup/hugup/internal/bus"
	"github.com/hugup/hugup/internal/status"
	"github.com/hugup/hugup/internal/store"
	"go.uber.org/zap"
)

// ErrEmptyMessage is returned when a send carries no visible text.
var ErrEmptyMessage = errors.New("message text is empty")

// Default simulated acknowledgement delays, measured from send time. These
// mirror the pacing of a typical one-to-one conversation closely enough for a
// demo: delivered after one second, read after two.
const (
	DefaultDeliveredDelay = 1 * time.Second
	DefaultReadDelay      = 2 * time.Second
)

// MessageRef identifies a message within a chat, used as an event payload.
type MessageRef struct {
	ChatID    string
	MessageID string
}

// StatusChange is the payload for message.status_changed events.
type StatusChange struct {
	ChatID    string
	MessageID string
	Status    status.Status
}

// Pipeline appends outgoing messages to a chat and advances their delivery
// status on a timer. Only messages sent by the current user are tracked
// through the simulated lifecycle.
type Pipeline struct {
	store          *store.Store
	bus            *bus.Bus
	logger         *zap.Logger
	deliveredDelay time.Duration
	readDelay      time.Duration
}

// New creates a pipeline over the given store. Non-positive delays fall back
// to the defaults; the read delay is always kept past the delivered delay.
func New(st *store.Store, b *bus.Bus, logger *zap.Logger, deliveredDelay, readDelay time.Duration) *Pipeline {
	if deliveredDelay <= 0 {
		deliveredDelay = DefaultDeliveredDelay
	}
	if readDelay <= deliveredDelay {
		readDelay = deliveredDelay + (DefaultReadDelay - DefaultDeliveredDelay)
	}
	return &Pipeline{
		store:          st,
		bus:            b,
		logger:         logger,
		deliveredDelay: deliveredDelay,
		readDelay:      readDelay,
	}
}

// Send constructs a text message and appends it to the target chat, updating
// the chat's last-message summary. Empty or whitespace-only text is rejected
// with ErrEmptyMessage and no state is written. A stale chat id is a tolerated
// drop: no error, no state change, zero message returned.
func (p *Pipeline) Send(chatID, senderID, text string) (store.Message, error) {
	if strings.TrimSpace(text) == "" {
		return store.Message{}, ErrEmptyMessage
	}

	msg := store.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Kind:      store.MessageText,
		Text:      text,
		Timestamp: time.Now(),
		Status:    status.Sent,
	}

	applied := p.store.ApplyToChat(chatID, func(c store.Chat) store.Chat {
		msgs := make([]store.Message, len(c.Messages), len(c.Messages)+1)
		copy(msgs, c.Messages)
		c.Messages = append(msgs, msg)
		c.LastMessage = &store.LastMessage{
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
			SenderID:  msg.SenderID,
		}
		return c
	})
	if !applied {
		p.logger.Debug("send dropped, chat not found", zap.String("chat_id", chatID))
		return store.Message{}, nil
	}

	p.logger.Info("message sent",
		zap.String("chat_id", chatID),
		zap.String("msg_id", msg.ID))
	p.bus.Emit(bus.KindMessageAppended, MessageRef{ChatID: chatID, MessageID: msg.ID})
	p.bus.Emit(bus.KindChatUpdated, chatID)

	if senderID == p.store.CurrentUser().ID {
		p.schedule(chatID, msg.ID)
	}
	return msg, nil
}

// schedule queues the two acknowledgement advancements. Each fires
// independently; Advance's monotonicity guard makes any interleaving safe.
func (p *Pipeline) schedule(chatID, msgID string) {
	time.AfterFunc(p.deliveredDelay, func() { p.Advance(chatID, msgID, status.Delivered) })
	time.AfterFunc(p.readDelay, func() { p.Advance(chatID, msgID, status.Read) })
}

// Advance moves one message's delivery status forward to target. It is a no-op
// when the chat or message no longer exists, or when the message has already
// reached or passed target; otherwise only the status field is rewritten,
// preserving every other field and the order of the sequence.
func (p *Pipeline) Advance(chatID, msgID string, target status.Status) {
	advanced := false
	p.store.ApplyToChat(chatID, func(c store.Chat) store.Chat {
		for i := range c.Messages {
			if c.Messages[i].ID != msgID {
				continue
			}
			if !c.Messages[i].Status.CanAdvance(target) {
				return c
			}
			msgs := make([]store.Message, len(c.Messages))
			copy(msgs, c.Messages)
			msgs[i].Status = target
			c.Messages = msgs
			advanced = true
			return c
		}
		return c
	})
	if advanced {
		p.bus.Emit(bus.KindMessageStatusChanged, StatusChange{
			ChatID:    chatID,
			MessageID: msgID,
			Status:    target,
		})
	}
}
