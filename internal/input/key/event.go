package key

import "fmt"

// Event is a single decoded keyboard event.
type Event struct {
	Key  Key
	Rune rune
}

// Rune builds an event for a character key.
func Rune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Special builds an event for a non-character key.
func Special(k Key) Event {
	return Event{Key: k}
}

// IsRune reports whether the event carries a printable character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns a human-readable description of the event.
func (e Event) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("Rune(%q)", e.Rune)
	}
	return e.Key.String()
}
