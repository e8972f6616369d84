package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewBindingsShadowGlobals(t *testing.T) {
	r := NewRegistry()

	var fired string
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 's', Handler: func() { fired = "global" }})
	r.AddView("chats", &Action{Key: tcell.KeyRune, Rune: 's', Handler: func() { fired = "chats" }})

	if !r.HandleEvent("chats", runeEvent('s')) {
		t.Fatal("HandleEvent should match")
	}
	if fired != "chats" {
		t.Errorf("fired = %q, want view binding to win", fired)
	}

	if !r.HandleEvent("settings", runeEvent('s')) {
		t.Fatal("HandleEvent should fall back to global")
	}
	if fired != "global" {
		t.Errorf("fired = %q, want global binding", fired)
	}
}

func TestHandleEventNoMatch(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() {}})

	if r.HandleEvent("chats", runeEvent('z')) {
		t.Error("HandleEvent matched an unbound rune")
	}
	if r.HandleEvent("chats", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Error("HandleEvent matched an unbound key")
	}
}

func TestNonRuneKeyMatch(t *testing.T) {
	r := NewRegistry()

	fired := false
	r.AddView("chat", &Action{Key: tcell.KeyEnter, Handler: func() { fired = true }})

	if !r.HandleEvent("chat", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("HandleEvent should match KeyEnter")
	}
	if !fired {
		t.Error("handler did not run")
	}
}

func TestHintsOrderAndVisibility(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'q', Description: "Quit", Visible: true, Handler: func() {}})
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: ':', Description: "Command", Handler: func() {}})
	r.AddView("chats", &Action{Key: tcell.KeyEnter, Description: "Open", Visible: true, Handler: func() {}})

	hints := r.Hints("chats")
	if len(hints) != 2 {
		t.Fatalf("len(hints) = %d, want 2 (hidden bindings excluded)", len(hints))
	}
	if hints[0].Description != "Open" || hints[1].Description != "Quit" {
		t.Errorf("hints out of order: %q, %q", hints[0].Description, hints[1].Description)
	}
}
