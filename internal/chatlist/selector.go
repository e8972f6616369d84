// Package chatlist turns the raw chat collection into the ordered, filtered
// view the chat list renders. Selection is pure: identical inputs always yield
// the same output order.
package chatlist

import (
	"sort"
	"strings"
	"time"

	"github.com/hugup/hugup/internal/store"
	"github.com/samber/lo"
)

// Filter narrows the chat list by conversation type.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterUnread   Filter = "unread"
	FilterGroups   Filter = "groups"
	FilterContacts Filter = "contacts"
)

// Filters lists the selectable filters in tab order.
var Filters = []Filter{FilterAll, FilterUnread, FilterGroups, FilterContacts}

// ParseFilter maps a filter name to a Filter, defaulting to FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterUnread, FilterGroups, FilterContacts:
		return Filter(s)
	default:
		return FilterAll
	}
}

// Select returns the display ordering of chats for the given search query and
// type filter. The query matches case-insensitively against the display name
// or the last message text; an empty query matches everything. Pinned chats
// sort before unpinned regardless of recency; within each partition chats sort
// by last message time descending, with chats that have no last message last.
// The sort is stable, so equal timestamps keep their input order.
func Select(chats []store.Chat, query string, filter Filter) []store.Chat {
	out := make([]store.Chat, len(chats))
	copy(out, chats)

	if query != "" {
		q := strings.ToLower(query)
		out = lo.Filter(out, func(c store.Chat, _ int) bool {
			if strings.Contains(strings.ToLower(c.DisplayName()), q) {
				return true
			}
			return c.LastMessage != nil && strings.Contains(strings.ToLower(c.LastMessage.Text), q)
		})
	}

	switch filter {
	case FilterUnread:
		out = lo.Filter(out, func(c store.Chat, _ int) bool { return c.UnreadCount > 0 })
	case FilterGroups:
		out = lo.Filter(out, func(c store.Chat, _ int) bool { return c.Kind == store.ChatGroup })
	case FilterContacts:
		out = lo.Filter(out, func(c store.Chat, _ int) bool { return c.Kind == store.ChatIndividual })
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return lastActivity(out[i]).After(lastActivity(out[j]))
	})
	return out
}

// lastActivity treats a missing last message as the earliest possible time.
func lastActivity(c store.Chat) time.Time {
	if c.LastMessage == nil {
		return time.Time{}
	}
	return c.LastMessage.Timestamp
}
