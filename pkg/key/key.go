// ABOUTME: Event is the decoded form of terminal input: a rune, a named key, a bare Escape, or nothing
// ABOUTME: Constructors guarantee exactly one payload per kind

package key

import "fmt"

// EventKind distinguishes the variants of Event.
type EventKind uint8

const (
	EventNone       EventKind = iota // nothing decoded: timeout, malformed input, or end of input
	EventChar                        // a Unicode code point (Event.Rune)
	EventControlKey                  // a control byte (Event.Name)
	EventSpecialKey                  // a recognised escape sequence (Event.Name)
	EventEscape                      // the Escape key on its own
)

var kindNames = [...]string{
	EventNone:       "none",
	EventChar:       "char",
	EventControlKey: "control",
	EventSpecialKey: "special",
	EventEscape:     "escape",
}

// String returns the lower-case kind name.
func (k EventKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is one decoded input event. Rune is set only for EventChar and
// Name only for EventControlKey and EventSpecialKey.
type Event struct {
	Kind EventKind
	Rune rune
	Name string
}

// None returns the empty event.
func None() Event { return Event{} }

// Char returns a rune event.
func Char(r rune) Event { return Event{Kind: EventChar, Rune: r} }

// ControlKey returns a control-key event, e.g. "tab" or "Control-C".
func ControlKey(name string) Event { return Event{Kind: EventControlKey, Name: name} }

// SpecialKey returns a named-key event, e.g. "up" or "f5".
func SpecialKey(name string) Event { return Event{Kind: EventSpecialKey, Name: name} }

// Escape returns the bare Escape event.
func Escape() Event { return Event{Kind: EventEscape} }

// IsNone reports whether e carries nothing.
func (e Event) IsNone() bool {
	return e.Kind == EventNone
}

// String returns a human-readable form for debug display.
func (e Event) String() string {
	switch e.Kind {
	case EventChar:
		return fmt.Sprintf("%q", e.Rune)
	case EventControlKey, EventSpecialKey:
		return e.Name
	default:
		return e.Kind.String()
	}
}
