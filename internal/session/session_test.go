package session

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"main", "work", "a", "test-1", "under_score", strings.Repeat("x", 64)}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "UPPER", "has space", "dot.name", "slash/name", strings.Repeat("x", 65)}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestPathsNestUnderSessionDir(t *testing.T) {
	dir := Dir("work")
	for _, p := range []string{LockPath("work"), AuthFlagPath("work"), LogPath("work")} {
		if !strings.HasPrefix(p, dir) {
			t.Errorf("%q not under session dir %q", p, dir)
		}
	}
	if filepath.Base(AuthFlagPath("work")) != "authenticated" {
		t.Errorf("auth flag file = %q, want authenticated", filepath.Base(AuthFlagPath("work")))
	}
}

func TestAuthFlagLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions", "main", "authenticated")

	if IsAuthenticated(path) {
		t.Fatal("IsAuthenticated = true before marking")
	}
	if err := MarkAuthenticated(path); err != nil {
		t.Fatal(err)
	}
	if !IsAuthenticated(path) {
		t.Fatal("IsAuthenticated = false after marking")
	}
	if err := ClearAuthenticated(path); err != nil {
		t.Fatal(err)
	}
	if IsAuthenticated(path) {
		t.Fatal("IsAuthenticated = true after clearing")
	}
	// Clearing again must stay a no-op.
	if err := ClearAuthenticated(path); err != nil {
		t.Errorf("second ClearAuthenticated = %v, want nil", err)
	}
}

func TestResolvePrecedence(t *testing.T) {
	if got := Resolve("override"); got != "override" {
		t.Errorf("Resolve(override) = %q, want override", got)
	}
	// With no override and (typically) no config on a test machine, the
	// default wins; either way the result must be a valid session name.
	got := Resolve("")
	if err := ValidateName(got); err != nil {
		t.Errorf("Resolve(\"\") = %q: %v", got, err)
	}
}
