package status

import "testing"

func TestValid(t *testing.T) {
	for _, s := range []Status{Sent, Delivered, Read} {
		if !s.Valid() {
			t.Errorf("Valid(%s) = false, want true", s)
		}
	}
	if Status("sending").Valid() {
		t.Error("Valid(sending) = true, want false")
	}
	if Status("").Valid() {
		t.Error(`Valid("") = true, want false`)
	}
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{Sent, Delivered, true},
		{Sent, Read, true},
		{Delivered, Read, true},
		{Delivered, Sent, false},
		{Read, Delivered, false},
		{Read, Sent, false},
		{Sent, Sent, false},
		{Delivered, Delivered, false},
		{Read, Read, false},
		{Sent, Status("bogus"), false},
		{Status("bogus"), Read, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := tt.from.CanAdvance(tt.to); got != tt.want {
				t.Errorf("CanAdvance(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// TestMonotonicityLaw applies advancements in every interleaving and verifies the
// final status equals the furthest state reached, never regressing.
func TestMonotonicityLaw(t *testing.T) {
	orders := [][]Status{
		{Delivered, Read},
		{Read, Delivered},
		{Delivered, Delivered, Read},
		{Read, Read, Delivered, Delivered},
	}
	for _, order := range orders {
		s := Sent
		furthest := Sent
		for _, target := range order {
			if target.Rank() > furthest.Rank() {
				furthest = target
			}
			if s.CanAdvance(target) {
				s = target
			}
		}
		if s != furthest {
			t.Errorf("interleaving %v: final = %s, want %s", order, s, furthest)
		}
	}
}

func TestAtLeast(t *testing.T) {
	if !Read.AtLeast(Delivered) {
		t.Error("Read.AtLeast(Delivered) = false, want true")
	}
	if !Delivered.AtLeast(Delivered) {
		t.Error("Delivered.AtLeast(Delivered) = false, want true")
	}
	if Sent.AtLeast(Delivered) {
		t.Error("Sent.AtLeast(Delivered) = true, want false")
	}
}
