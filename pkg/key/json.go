// ABOUTME: JSON encoding of Events via easyjson writers, used by the CLI's --json event stream
// ABOUTME: Char events carry the rune as text and code point; named keys carry only the name

package key

import (
	"fmt"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ easyjson.Marshaler   = Event{}
	_ easyjson.Unmarshaler = (*Event)(nil)
)

// MarshalEasyJSON writes e as {"kind":...} plus its payload.
func (e Event) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"kind":`)
	w.String(e.Kind.String())
	switch e.Kind {
	case EventChar:
		w.RawString(`,"rune":`)
		w.String(string(e.Rune))
		w.RawString(`,"code":`)
		w.Int32(e.Rune)
	case EventControlKey, EventSpecialKey:
		w.RawString(`,"name":`)
		w.String(e.Name)
	}
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	e.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalEasyJSON reads the form written by MarshalEasyJSON. The code
// field wins over rune when both are present.
func (e *Event) UnmarshalEasyJSON(l *jlexer.Lexer) {
	*e = Event{}
	var text string
	code := rune(-1)

	l.Delim('{')
	for !l.IsDelim('}') {
		field := l.UnsafeFieldName(false)
		l.WantColon()
		switch field {
		case "kind":
			kind, err := parseKind(l.String())
			if err != nil {
				l.AddError(err)
			}
			e.Kind = kind
		case "rune":
			text = l.String()
		case "code":
			code = l.Int32()
		case "name":
			e.Name = l.String()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')

	if e.Kind == EventChar {
		switch {
		case code >= 0:
			e.Rune = code
		case text != "":
			e.Rune = []rune(text)[0]
		}
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(data []byte) error {
	l := jlexer.Lexer{Data: data}
	e.UnmarshalEasyJSON(&l)
	return l.Error()
}

func parseKind(name string) (EventKind, error) {
	for k, n := range kindNames {
		if n == name {
			return EventKind(k), nil
		}
	}
	return EventNone, fmt.Errorf("unknown event kind %q", name)
}
