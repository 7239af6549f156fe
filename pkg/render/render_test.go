// ABOUTME: Table-driven tests for the Renderer's exact escape output per action
// ABOUTME: Covers colors, positioning, text sanitising, box glyphs, glyph sets, and flushing

package render

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

// beyondMaxInt is the 1-based wire value of the last 0-based position.
var beyondMaxInt = strconv.FormatUint(uint64(math.MaxInt)+1, 10)

func TestRender_Actions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actions []Action
		want    string
	}{
		{name: "empty", actions: nil, want: ""},
		{name: "clear line", actions: []Action{ClearToLineEnd{}}, want: "\x1b[2K"},
		{name: "clear screen", actions: []Action{ClearToScreenEnd{}}, want: "\x1b[J"},

		// Colors
		{name: "fg red", actions: []Action{SetForeground{"red"}}, want: "\x1b[31m"},
		{name: "fg black", actions: []Action{SetForeground{"black"}}, want: "\x1b[30m"},
		{name: "fg white", actions: []Action{SetForeground{"white"}}, want: "\x1b[37m"},
		{name: "bg blue", actions: []Action{SetBackground{"blue"}}, want: "\x1b[44m"},
		{name: "bg default", actions: []Action{SetBackground{"default"}}, want: "\x1b[49m"},
		{name: "unknown fg", actions: []Action{SetForeground{"nonexistent"}}, want: ""},
		{name: "unknown bg", actions: []Action{SetBackground{"Red"}}, want: ""},

		// Positioning
		{name: "home", actions: []Action{MoveTo{0, 0}}, want: "\x1b[H"},
		{name: "position", actions: []Action{MoveTo{X: 4, Y: 2}}, want: "\x1b[3;5H"},
		{name: "first column", actions: []Action{MoveTo{X: 0, Y: 9}}, want: "\x1b[10;1H"},
		{name: "first row", actions: []Action{MoveTo{X: 79, Y: 0}}, want: "\x1b[1;80H"},
		{name: "negative x", actions: []Action{MoveTo{X: -1, Y: 0}}, want: ""},
		{name: "negative y", actions: []Action{MoveTo{X: 3, Y: -2}}, want: ""},
		{name: "largest column", actions: []Action{MoveTo{X: math.MaxInt, Y: 0}}, want: "\x1b[1;" + beyondMaxInt + "H"},
		{name: "largest row", actions: []Action{MoveTo{X: 0, Y: math.MaxInt}}, want: "\x1b[" + beyondMaxInt + ";1H"},

		// Text
		{name: "plain text", actions: []Action{Text{"hello"}}, want: "hello"},
		{name: "bell", actions: []Action{Text{"a\x07b"}}, want: "a?b"},
		{name: "escape in text", actions: []Action{Text{"\x1b[2J"}}, want: "?[2J"},
		{name: "delete byte", actions: []Action{Text{"x\x7f"}}, want: "x?"},
		{name: "newline", actions: []Action{Text{"a\nb"}}, want: "a?b"},
		{name: "unicode kept", actions: []Action{Text{"héllo €"}}, want: "héllo €"},
		{name: "c1 control", actions: []Action{Text{"a\u009bb"}}, want: "a?b"},
		{name: "invalid utf8", actions: []Action{Text{"a\xffb"}}, want: "a?b"},
		{name: "empty text", actions: []Action{Text{""}}, want: ""},

		// Box glyphs
		{name: "double horz", actions: []Action{BoxChar{"horz", StyleDouble, 3}}, want: "\x1b(0═══\x1b(B"},
		{name: "single vert", actions: []Action{BoxChar{"vert", StyleSingle, 1}}, want: "\x1b(0│\x1b(B"},
		{name: "unknown style", actions: []Action{BoxChar{"cross", "heavy", 2}}, want: "\x1b(0┼┼\x1b(B"},
		{name: "empty style", actions: []Action{BoxChar{Glyph: "corner-top-left", Count: 1}}, want: "\x1b(0┌\x1b(B"},
		{name: "unknown glyph", actions: []Action{BoxChar{"spiral", StyleSingle, 2}}, want: "\x1b(0  \x1b(B"},
		{name: "tee", actions: []Action{BoxChar{"tee-left", StyleDouble, 1}}, want: "\x1b(0╠\x1b(B"},
		{name: "zero count", actions: []Action{BoxChar{"horz", StyleSingle, 0}}, want: ""},
		{name: "negative count", actions: []Action{BoxChar{"horz", StyleSingle, -4}}, want: ""},

		// Sequences
		{
			name: "in order",
			actions: []Action{
				MoveTo{0, 0},
				ClearToScreenEnd{},
				SetForeground{"green"},
				Text{"ok"},
				SetForeground{"default"},
			},
			want: "\x1b[H\x1b[J\x1b[32mok\x1b[39m",
		},
		{
			name:    "skipped actions leave neighbours intact",
			actions: []Action{Text{"a"}, MoveTo{-1, 0}, SetForeground{"nope"}, Text{"b"}},
			want:    "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := New(&buf).Render(tt.actions); err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if got := string(Encode(tt.actions)); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_VT100Glyphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		glyph string
		style BoxStyle
		want  string
	}{
		{"horz", StyleDouble, "q"},
		{"vert", StyleSingle, "x"},
		{"cross", StyleSingle, "n"},
		{"corner-top-left", StyleSingle, "l"},
		{"corner-top-right", StyleDouble, "k"},
		{"corner-bottom-left", StyleSingle, "m"},
		{"corner-bottom-right", StyleSingle, "j"},
		{"tee-bottom", StyleSingle, "v"},
		{"unknown", StyleSingle, " "},
	}

	for _, tt := range tests {
		got := string(Encode([]Action{BoxChar{tt.glyph, tt.style, 1}}, WithGlyphs(GlyphsVT100)))
		want := "\x1b(0" + tt.want + "\x1b(B"
		if got != want {
			t.Errorf("%s/%s = %q, want %q", tt.glyph, tt.style, got, want)
		}
	}
}

func TestRender_Normalize(t *testing.T) {
	t.Parallel()

	decomposed := "cafe\u0301"
	plain := Encode([]Action{Text{decomposed}})
	if string(plain) != decomposed {
		t.Errorf("without normalisation = %q, want input unchanged", plain)
	}
	composed := Encode([]Action{Text{decomposed}}, WithNormalize(true))
	if string(composed) != "caf\u00e9" {
		t.Errorf("with normalisation = %q, want %q", composed, "caf\u00e9")
	}
}

type bellAction struct{}

func (bellAction) ActionName() string { return "bell" }

func TestRender_UnknownActionIgnored(t *testing.T) {
	t.Parallel()

	got := string(Encode([]Action{Text{"a"}, bellAction{}, nil, Text{"b"}}))
	if got != "ab" {
		t.Errorf("Encode() = %q, want %q", got, "ab")
	}
}

// countingWriter records how many Write calls reach the underlying stream.
type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestRender_FlushesOnce(t *testing.T) {
	t.Parallel()

	var w countingWriter
	r := New(&w)
	actions := []Action{MoveTo{1, 1}, Text{"x"}, BoxChar{"horz", StyleSingle, 5}, ClearToLineEnd{}}
	if err := r.Render(actions); err != nil {
		t.Fatal(err)
	}
	if w.writes != 1 {
		t.Errorf("underlying writes = %d, want 1", w.writes)
	}

	// The renderer is reusable after a flush.
	if err := r.Render([]Action{Text{"y"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(w.String(), "y") {
		t.Errorf("second render missing: %q", w.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRender_WriteError(t *testing.T) {
	t.Parallel()

	err := New(failingWriter{}).Render([]Action{Text{"x"}})
	if err == nil {
		t.Fatal("Render() expected error from failing writer")
	}
}

func TestTables(t *testing.T) {
	t.Parallel()

	if got := len(Colors()); got != 9 {
		t.Errorf("len(Colors()) = %d, want 9", got)
	}
	for _, name := range Glyphs() {
		for _, style := range []BoxStyle{StyleSingle, StyleDouble} {
			if lookupGlyph(name, style, GlyphsUnicode) == ' ' {
				t.Errorf("glyph %q/%s resolves to a space", name, style)
			}
		}
	}
}
