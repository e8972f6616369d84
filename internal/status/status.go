package status

// Status represents the delivery acknowledgement state of a message.
type Status string

const (
	Sent      Status = "sent"
	Delivered Status = "delivered"
	Read      Status = "read"
)

// rank orders statuses along the delivery lifecycle. Read is terminal.
var rank = map[Status]int{
	Sent:      0,
	Delivered: 1,
	Read:      2,
}

// Valid reports whether s is a known delivery status.
func (s Status) Valid() bool {
	_, ok := rank[s]
	return ok
}

// Rank returns the position of s in the lifecycle (sent=0, delivered=1, read=2).
func (s Status) Rank() int {
	return rank[s]
}

// AtLeast reports whether s has reached or passed target.
func (s Status) AtLeast(target Status) bool {
	return rank[s] >= rank[target]
}

// CanAdvance reports whether moving from s to target is a forward transition.
// Transitions never move backward and never repeat the current state.
func (s Status) CanAdvance(target Status) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}
	return rank[target] > rank[s]
}
