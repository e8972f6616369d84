package pipeline

import (
	"testing"
	"time"

	"github.com/hugup/hugup/internal/bus"
	"github.com/hugup/hugup/internal/status"
	"github.com/hugup/hugup/internal/store"
	"go.uber.org/zap"
)

func testPipeline(t *testing.T) (*Pipeline, *store.Store, *bus.Bus) {
	t.Helper()
	st := store.New(store.Seed())
	b := bus.New()
	p := New(st, b, zap.NewNop(), 10*time.Millisecond, 25*time.Millisecond)
	return p, st, b
}

func messageStatus(st *store.Store, chatID, msgID string) (status.Status, bool) {
	c, ok := st.Chat(chatID)
	if !ok {
		return "", false
	}
	for _, m := range c.Messages {
		if m.ID == msgID {
			return m.Status, true
		}
	}
	return "", false
}

func waitForStatus(t *testing.T, st *store.Store, chatID, msgID string, want status.Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, ok := messageStatus(st, chatID, msgID); ok && got == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	got, _ := messageStatus(st, chatID, msgID)
	t.Fatalf("status = %s, want %s (timed out)", got, want)
}

func TestSendAppendsWithSentStatus(t *testing.T) {
	p, st, _ := testPipeline(t)
	before, _ := st.Chat("2")

	msg, err := p.Send("2", "1", "hello there")
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID == "" {
		t.Fatal("sent message has no id")
	}
	if msg.Status != status.Sent {
		t.Errorf("status = %s, want sent", msg.Status)
	}

	after, _ := st.Chat("2")
	if len(after.Messages) != len(before.Messages)+1 {
		t.Fatalf("message count = %d, want %d", len(after.Messages), len(before.Messages)+1)
	}
	tail := after.Messages[len(after.Messages)-1]
	if tail.ID != msg.ID || tail.Text != "hello there" {
		t.Errorf("tail = %+v, want the sent message", tail)
	}
	if after.LastMessage == nil || after.LastMessage.Text != "hello there" || after.LastMessage.SenderID != "1" {
		t.Errorf("LastMessage = %+v, want summary of sent message", after.LastMessage)
	}
}

func TestSendRejectsEmptyText(t *testing.T) {
	p, st, _ := testPipeline(t)
	before, _ := st.Chat("2")

	for _, text := range []string{"", "   ", "\t\n  "} {
		if _, err := p.Send("2", "1", text); err != ErrEmptyMessage {
			t.Errorf("Send(%q) error = %v, want ErrEmptyMessage", text, err)
		}
	}

	after, _ := st.Chat("2")
	if len(after.Messages) != len(before.Messages) {
		t.Errorf("rejected send wrote %d messages", len(after.Messages)-len(before.Messages))
	}
	if !after.LastMessage.Timestamp.Equal(before.LastMessage.Timestamp) {
		t.Error("rejected send touched LastMessage")
	}
}

func TestSendToMissingChatIsSilentDrop(t *testing.T) {
	p, _, _ := testPipeline(t)
	msg, err := p.Send("missing", "1", "hello")
	if err != nil {
		t.Errorf("error = %v, want nil (stale handles are tolerated)", err)
	}
	if msg.ID != "" {
		t.Errorf("msg = %+v, want zero message", msg)
	}
}

func TestDeliveryProgression(t *testing.T) {
	p, st, _ := testPipeline(t)

	msg, err := p.Send("2", "1", "progressing")
	if err != nil {
		t.Fatal(err)
	}

	waitForStatus(t, st, "2", msg.ID, status.Delivered)
	waitForStatus(t, st, "2", msg.ID, status.Read)

	// Terminal: nothing moves it backward.
	p.Advance("2", msg.ID, status.Delivered)
	if got, _ := messageStatus(st, "2", msg.ID); got != status.Read {
		t.Errorf("status after backward advance = %s, want read", got)
	}
}

func TestNoTrackingForOtherSenders(t *testing.T) {
	p, st, _ := testPipeline(t)

	// Sender 2 is not the current user; the pipeline must not schedule acks.
	msg, err := p.Send("2", "2", "incoming style")
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(60 * time.Millisecond)
	if got, _ := messageStatus(st, "2", msg.ID); got != status.Sent {
		t.Errorf("status = %s, want sent (other senders are never tracked)", got)
	}
}

func TestAdvanceAfterChatDeleted(t *testing.T) {
	p, st, _ := testPipeline(t)

	msg, err := p.Send("2", "1", "doomed chat")
	if err != nil {
		t.Fatal(err)
	}
	st.RemoveChat("2")

	// The scheduled advancements fire against a missing chat and must drop.
	time.Sleep(60 * time.Millisecond)
	if _, ok := st.Chat("2"); ok {
		t.Fatal("chat 2 unexpectedly present")
	}
	// Direct advance on the stale ref is equally a no-op.
	p.Advance("2", msg.ID, status.Read)
}

func TestAdvanceMissingMessageIsNoOp(t *testing.T) {
	p, st, _ := testPipeline(t)
	before, _ := st.Chat("3")

	p.Advance("3", "no-such-message", status.Read)

	after, _ := st.Chat("3")
	for i := range before.Messages {
		if before.Messages[i].Status != after.Messages[i].Status {
			t.Errorf("message %s status changed by stale advance", before.Messages[i].ID)
		}
	}
}

func TestOutOfOrderAdvancements(t *testing.T) {
	p, st, _ := testPipeline(t)

	// Send as a non-tracked sender so no timers race this test.
	msg, err := p.Send("2", "2", "manual lifecycle")
	if err != nil {
		t.Fatal(err)
	}

	p.Advance("2", msg.ID, status.Read)
	p.Advance("2", msg.ID, status.Delivered)

	if got, _ := messageStatus(st, "2", msg.ID); got != status.Read {
		t.Errorf("status = %s, want read (furthest state wins)", got)
	}
}

func TestAdvancePreservesOtherMessages(t *testing.T) {
	p, st, _ := testPipeline(t)

	msg, err := p.Send("3", "2", "target")
	if err != nil {
		t.Fatal(err)
	}
	before, _ := st.Chat("3")

	p.Advance("3", msg.ID, status.Delivered)

	after, _ := st.Chat("3")
	if len(before.Messages) != len(after.Messages) {
		t.Fatalf("message count changed: %d -> %d", len(before.Messages), len(after.Messages))
	}
	for i := range after.Messages {
		b, a := before.Messages[i], after.Messages[i]
		if a.ID != b.ID {
			t.Fatalf("order changed at %d: %s -> %s", i, b.ID, a.ID)
		}
		if a.ID == msg.ID {
			if a.Status != status.Delivered {
				t.Errorf("target status = %s, want delivered", a.Status)
			}
			if a.Text != b.Text || !a.Timestamp.Equal(b.Timestamp) || a.SenderID != b.SenderID {
				t.Error("advance rewrote fields other than status")
			}
			continue
		}
		if a.Status != b.Status {
			t.Errorf("message %s status changed as a side effect", a.ID)
		}
	}
}

func TestSendPublishesEvents(t *testing.T) {
	p, _, b := testPipeline(t)
	ch, unsub := b.Subscribe("message.", 8)
	defer unsub()

	msg, err := p.Send("2", "1", "event check")
	if err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-ch:
		if evt.Kind != bus.KindMessageAppended {
			t.Errorf("kind = %q, want %q", evt.Kind, bus.KindMessageAppended)
		}
		ref, ok := evt.Payload.(MessageRef)
		if !ok {
			t.Fatalf("payload type = %T, want MessageRef", evt.Payload)
		}
		if ref.ChatID != "2" || ref.MessageID != msg.ID {
			t.Errorf("ref = %+v, want chat 2 / %s", ref, msg.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("no message.appended event")
	}

	// Both scheduled advancements emit status_changed.
	for _, want := range []status.Status{status.Delivered, status.Read} {
		select {
		case evt := <-ch:
			change, ok := evt.Payload.(StatusChange)
			if !ok {
				t.Fatalf("payload type = %T, want StatusChange", evt.Payload)
			}
			if change.Status != want {
				t.Errorf("status change = %s, want %s", change.Status, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("no status_changed event for %s", want)
		}
	}
}
