package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hugup/hugup/internal/bus"
	"github.com/hugup/hugup/internal/config"
	"github.com/hugup/hugup/internal/pipeline"
	"github.com/hugup/hugup/internal/store"
	"go.uber.org/zap"
)

func testState(t *testing.T) *State {
	t.Helper()

	dir := t.TempDir()
	st := store.New(store.Seed())
	b := bus.New()
	logger := zap.NewNop()
	pl := pipeline.New(st, b, logger, 10*time.Millisecond, 25*time.Millisecond)
	cfg := config.Default()

	return NewState(StateParams{
		SessionName:  "test",
		AuthFlagPath: filepath.Join(dir, "authenticated"),
		ConfigPath:   filepath.Join(dir, "config.toml"),
	}, st, pl, b, cfg, logger)
}

func TestSetActiveChatClearsUnread(t *testing.T) {
	s := testState(t)

	before, ok := s.store.Chat("2")
	if !ok {
		t.Fatal("seed chat 2 missing")
	}
	if before.UnreadCount == 0 {
		t.Fatal("seed chat 2 should start with unread messages")
	}

	s.SetActiveChat("2")

	if got := s.ActiveChatID(); got != "2" {
		t.Errorf("ActiveChatID() = %q, want %q", got, "2")
	}
	after, _ := s.store.Chat("2")
	if after.UnreadCount != 0 {
		t.Errorf("unread count after open = %d, want 0", after.UnreadCount)
	}
}

func TestSetActiveChatEmptyCloses(t *testing.T) {
	s := testState(t)

	s.SetActiveChat("2")
	s.SetActiveChat("")

	if got := s.ActiveChatID(); got != "" {
		t.Errorf("ActiveChatID() = %q, want empty", got)
	}
	if _, ok := s.ActiveChat(); ok {
		t.Error("ActiveChat() should report no chat after close")
	}
}

func TestActiveChatStaleID(t *testing.T) {
	s := testState(t)

	s.SetActiveChat("3")
	s.store.RemoveChat("3")

	if _, ok := s.ActiveChat(); ok {
		t.Error("ActiveChat() should report no chat for a removed id")
	}
}

func TestSendMessageAppendsAsCurrentUser(t *testing.T) {
	s := testState(t)

	if err := s.SendMessage("2", "hello there"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	chat, _ := s.store.Chat("2")
	last := chat.Messages[len(chat.Messages)-1]
	if last.Text != "hello there" {
		t.Errorf("appended text = %q, want %q", last.Text, "hello there")
	}
	if last.SenderID != s.CurrentUser().ID {
		t.Errorf("sender = %q, want current user %q", last.SenderID, s.CurrentUser().ID)
	}
}

func TestSendMessageRejectsEmpty(t *testing.T) {
	s := testState(t)

	if err := s.SendMessage("2", "   "); err == nil {
		t.Error("SendMessage() with blank text should fail")
	}
}

func TestToggleThemePersists(t *testing.T) {
	s := testState(t)

	if got := s.Theme(); got != ThemeDark {
		t.Fatalf("default theme = %q, want %q", got, ThemeDark)
	}

	if got := s.ToggleTheme(); got != ThemeLight {
		t.Errorf("ToggleTheme() = %q, want %q", got, ThemeLight)
	}
	if got := s.Theme(); got != ThemeLight {
		t.Errorf("Theme() after toggle = %q, want %q", got, ThemeLight)
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `theme = "light"`) {
		t.Errorf("persisted config missing theme:\n%s", data)
	}

	if got := s.ToggleTheme(); got != ThemeDark {
		t.Errorf("second ToggleTheme() = %q, want %q", got, ThemeDark)
	}
}

func TestLoginLogoutLifecycle(t *testing.T) {
	s := testState(t)

	if s.Authenticated() {
		t.Fatal("fresh session should not be authenticated")
	}

	if err := s.Login("+1 555 000 1234"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !s.Authenticated() {
		t.Error("Authenticated() = false after Login")
	}

	s.SetActiveChat("2")
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if s.Authenticated() {
		t.Error("Authenticated() = true after Logout")
	}
	if got := s.ActiveChatID(); got != "" {
		t.Errorf("active chat after logout = %q, want empty", got)
	}
}

func TestLoginEmitsEvent(t *testing.T) {
	s := testState(t)

	events, cancel := s.bus.Subscribe("session.", 4)
	defer cancel()

	if err := s.Login("+1 555 000 1234"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	select {
	case ev := <-events:
		if ev.Kind != bus.KindSessionAuthenticated {
			t.Errorf("event kind = %q, want %q", ev.Kind, bus.KindSessionAuthenticated)
		}
	case <-time.After(time.Second):
		t.Fatal("no session event published")
	}
}
