// ABOUTME: Table-driven tests for Decoder against a scripted byte source with explicit timeouts
// ABOUTME: Covers runes, UTF-8, control bytes, escape sequences, malformed input, overlays, and iteration

package key

import (
	"errors"
	"io"
	"slices"
	"testing"
	"time"
)

// gap marks a point in a script where the next timed read times out.
const gap = -1

var errNoByte = errors.New("no byte within timeout")

// script is a Source that replays bytes. A gap fails one timed read;
// blocking reads wait through it. The end of the script is io.EOF.
type script struct {
	items    []int
	timeouts []time.Duration
}

func newScript(items ...int) *script {
	return &script{items: items}
}

func bytesOf(s string) []int {
	out := make([]int, len(s))
	for i := range len(s) {
		out[i] = int(s[i])
	}
	return out
}

func (s *script) ReadByte() (byte, error) {
	for len(s.items) > 0 && s.items[0] == gap {
		s.items = s.items[1:]
	}
	if len(s.items) == 0 {
		return 0, io.EOF
	}
	b := byte(s.items[0])
	s.items = s.items[1:]
	return b, nil
}

func (s *script) ReadByteTimeout(d time.Duration) (byte, error) {
	s.timeouts = append(s.timeouts, d)
	if len(s.items) == 0 {
		return 0, errNoByte
	}
	if s.items[0] == gap {
		s.items = s.items[1:]
		return 0, errNoByte
	}
	b := byte(s.items[0])
	s.items = s.items[1:]
	return b, nil
}

func TestDecoder_ReadEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int
		want  Event
	}{
		// Printable and UTF-8
		{name: "ascii letter", input: []int{0x41}, want: Char('A')},
		{name: "space", input: []int{' '}, want: Char(' ')},
		{name: "two byte rune", input: []int{0xc3, 0xa9}, want: Char('é')},
		{name: "three byte rune", input: []int{0xe2, 0x82, 0xac}, want: Char('€')},
		{name: "four byte rune", input: []int{0xf0, 0x9f, 0x98, 0x80}, want: Char('😀')},
		{name: "truncated rune", input: []int{0xe2, gap}, want: None()},
		{name: "truncated after one continuation", input: []int{0xe2, 0x82, gap}, want: None()},
		{name: "bad continuation", input: []int{0xc3, 0x41}, want: None()},
		{name: "stray continuation", input: []int{0x82}, want: None()},
		{name: "overlong slash", input: []int{0xc0, 0xaf}, want: None()},
		{name: "surrogate", input: []int{0xed, 0xa0, 0x80}, want: None()},
		{name: "invalid lead", input: []int{0xff}, want: None()},

		// Control bytes
		{name: "ctrl-c", input: []int{0x03}, want: ControlKey("Control-C")},
		{name: "ctrl-a", input: []int{0x01}, want: ControlKey("Control-A")},
		{name: "ctrl-z", input: []int{0x1a}, want: ControlKey("Control-Z")},
		{name: "tab", input: []int{0x09}, want: ControlKey("tab")},
		{name: "carriage return", input: []int{0x0d}, want: ControlKey("return")},
		{name: "line feed", input: []int{0x0a}, want: ControlKey("return")},
		{name: "ctrl-h", input: []int{0x08}, want: ControlKey("backspace")},
		{name: "delete byte", input: []int{0x7f}, want: ControlKey("backspace")},
		{name: "nul", input: []int{0x00}, want: None()},
		{name: "file separator", input: []int{0x1c}, want: None()},
		{name: "unit separator", input: []int{0x1f}, want: None()},

		// Escape sequences
		{name: "bare escape", input: []int{0x1b, gap}, want: Escape()},
		{name: "escape at end of input", input: []int{0x1b}, want: Escape()},
		{name: "csi up", input: bytesOf("\x1b[A"), want: SpecialKey("up")},
		{name: "ss3 left", input: bytesOf("\x1bOD"), want: SpecialKey("left")},
		{name: "page down", input: bytesOf("\x1b[6~"), want: SpecialKey("page-down")},
		{name: "f5", input: bytesOf("\x1b[15~"), want: SpecialKey("f5")},
		{name: "ss3 f1", input: bytesOf("\x1bOP"), want: SpecialKey("f1")},
		{name: "shift tab", input: bytesOf("\x1b[Z"), want: SpecialKey("shift-tab")},
		{name: "shift up", input: bytesOf("\x1b[1;2A"), want: SpecialKey("shift-up")},
		{name: "control right", input: bytesOf("\x1b[1;5C"), want: SpecialKey("control-right")},
		{name: "alt shift down", input: bytesOf("\x1b[1;10B"), want: SpecialKey("alt-shift-down")},
		{name: "colon separator", input: bytesOf("\x1b[1:5C"), want: SpecialKey("control-right")},
		{name: "f19", input: bytesOf("\x1b[e"), want: SpecialKey("f19")},
		{name: "f40", input: bytesOf("\x1b[z"), want: SpecialKey("f40")},
		{name: "unknown sequence", input: bytesOf("\x1b[99~"), want: None()},
		{name: "alt letter", input: bytesOf("\x1bx"), want: None()},
		{name: "timeout inside csi", input: []int{0x1b, '[', '1', gap}, want: None()},
		{name: "oversize sequence", input: bytesOf("\x1b[12345678~"), want: None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := NewDecoder(newScript(tt.input...))
			got, err := d.ReadEvent()
			if err != nil {
				t.Fatalf("ReadEvent() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadEvent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecoder_ResynchronisesAfterOversize(t *testing.T) {
	t.Parallel()

	d := NewDecoder(newScript(bytesOf("\x1b[12345678~a")...))
	var got []Event
	for range 3 {
		ev, err := d.ReadEvent()
		if err != nil {
			t.Fatalf("ReadEvent() unexpected error: %v", err)
		}
		got = append(got, ev)
	}

	// The aborted sequence consumed nine bytes after ESC; the rest decode
	// as ordinary input.
	want := []Event{None(), Char('~'), Char('a')}
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestDecoder_EscapeFollowedByKey(t *testing.T) {
	t.Parallel()

	d := NewDecoder(newScript(0x1b, gap, 'q'))
	first, _ := d.ReadEvent()
	second, _ := d.ReadEvent()
	if first != Escape() {
		t.Errorf("first = %v, want escape", first)
	}
	if second != Char('q') {
		t.Errorf("second = %v, want 'q'", second)
	}
}

func TestDecoder_EOF(t *testing.T) {
	t.Parallel()

	d := NewDecoder(newScript())
	ev, err := d.ReadEvent()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadEvent() error = %v, want io.EOF", err)
	}
	if !ev.IsNone() {
		t.Errorf("ReadEvent() = %v, want none", ev)
	}
}

func TestDecoder_EscapeTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want time.Duration
	}{
		{name: "default", want: DefaultEscapeTimeout},
		{name: "custom", opts: []Option{WithEscapeTimeout(120 * time.Millisecond)}, want: 120 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newScript(bytesOf("\x1b[A")...)
			if _, err := NewDecoder(src, tt.opts...).ReadEvent(); err != nil {
				t.Fatalf("ReadEvent() unexpected error: %v", err)
			}
			if len(src.timeouts) != 2 {
				t.Fatalf("timed reads = %d, want 2", len(src.timeouts))
			}
			for i, d := range src.timeouts {
				if d != tt.want {
					t.Errorf("timeout[%d] = %v, want %v", i, d, tt.want)
				}
			}
		})
	}
}

func TestDecoder_FirstByteBlocks(t *testing.T) {
	t.Parallel()

	// A gap before the first byte is waited out, not reported.
	src := newScript(gap, gap, 'x')
	ev, err := NewDecoder(src).ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent() unexpected error: %v", err)
	}
	if ev != Char('x') {
		t.Errorf("ReadEvent() = %v, want 'x'", ev)
	}
	if len(src.timeouts) != 0 {
		t.Errorf("timed reads = %d, want 0", len(src.timeouts))
	}
}

func TestDecoder_WithKeyNames(t *testing.T) {
	t.Parallel()

	names := map[string]string{
		"[99~": "macro-1",
		"[A":   "north",
	}
	d := NewDecoder(newScript(bytesOf("\x1b[99~\x1b[A\x1b[B")...), WithKeyNames(names))

	// Mutating the caller's map after construction has no effect.
	names["[B"] = "south"

	var got []Event
	for ev := range d.Events() {
		got = append(got, ev)
	}
	want := []Event{SpecialKey("macro-1"), SpecialKey("north"), SpecialKey("down")}
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}

	// Other decoders keep the built-in names.
	plain, _ := NewDecoder(newScript(bytesOf("\x1b[A")...)).ReadEvent()
	if plain != SpecialKey("up") {
		t.Errorf("plain decoder = %v, want up", plain)
	}
}

func TestDecoder_Events(t *testing.T) {
	t.Parallel()

	d := NewDecoder(newScript(bytesOf("hi\x03\x1b[D")...))
	var got []Event
	for ev := range d.Events() {
		got = append(got, ev)
	}

	want := []Event{Char('h'), Char('i'), ControlKey("Control-C"), SpecialKey("left")}
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if !errors.Is(d.Err(), io.EOF) {
		t.Errorf("Err() = %v, want io.EOF", d.Err())
	}
}

func TestDecoder_EventsStopEarly(t *testing.T) {
	t.Parallel()

	d := NewDecoder(newScript(bytesOf("abc")...))
	for ev := range d.Events() {
		if ev == Char('a') {
			break
		}
	}
	if d.Err() != nil {
		t.Errorf("Err() = %v, want nil after break", d.Err())
	}
	next, err := d.ReadEvent()
	if err != nil || next != Char('b') {
		t.Errorf("ReadEvent() = %v, %v, want 'b'", next, err)
	}
}

func TestDecoder_EveryBindingDecodes(t *testing.T) {
	t.Parallel()

	for _, b := range SpecialKeys() {
		d := NewDecoder(newScript(bytesOf("\x1b" + b.Sequence)...))
		got, err := d.ReadEvent()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", b.Sequence, err)
		}
		if got != SpecialKey(b.Name) {
			t.Errorf("%q decoded as %v, want %s", b.Sequence, got, b.Name)
		}
	}
}
