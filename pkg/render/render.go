// ABOUTME: Renderer compiles a sequence of Actions into escape bytes and flushes once per call
// ABOUTME: Invalid actions (unknown color, negative position, unknown kind) emit nothing

package render

import (
	"bufio"
	"io"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/cursory/internal/log"
)

// Escape fragments.
const (
	clearLine    = "\x1b[2K"
	clearScreen  = "\x1b[J"
	cursorHome   = "\x1b[H"
	enterGraphic = "\x1b(0"
	exitGraphic  = "\x1b(B"
)

// Renderer writes Actions to an output stream. It is not safe for
// concurrent use.
type Renderer struct {
	w         *bufio.Writer
	glyphs    GlyphSet
	normalize bool
	scratch   []byte
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGlyphs selects the box-glyph encoding.
func WithGlyphs(set GlyphSet) Option {
	return func(r *Renderer) { r.glyphs = set }
}

// WithNormalize composes Text to NFC before sanitising it, so a base letter
// and its combining mark occupy one cell.
func WithNormalize(on bool) Option {
	return func(r *Renderer) { r.normalize = on }
}

// New returns a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		w:       bufio.NewWriter(w),
		scratch: make([]byte, 0, 64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes every action in order and flushes once at the end. Only
// write errors are reported.
func (r *Renderer) Render(actions []Action) error {
	for _, a := range actions {
		r.scratch = r.append(r.scratch[:0], a)
		if _, err := r.w.Write(r.scratch); err != nil {
			return err
		}
	}
	return r.w.Flush()
}

// Encode returns the bytes Render would write for actions.
func Encode(actions []Action, opts ...Option) []byte {
	r := New(io.Discard, opts...)
	var out []byte
	for _, a := range actions {
		out = r.append(out, a)
	}
	return out
}

func (r *Renderer) append(b []byte, a Action) []byte {
	switch a := a.(type) {
	case ClearToLineEnd:
		return append(b, clearLine...)
	case ClearToScreenEnd:
		return append(b, clearScreen...)
	case SetForeground:
		return appendColor(b, '3', a.Color)
	case SetBackground:
		return appendColor(b, '4', a.Color)
	case MoveTo:
		return appendMove(b, a.X, a.Y)
	case Text:
		return r.appendText(b, a.S)
	case BoxChar:
		return r.appendBox(b, a)
	default:
		log.Debug("render: ignoring unknown action %T", a)
		return b
	}
}

func appendColor(b []byte, base byte, name string) []byte {
	n, ok := colors[name]
	if !ok {
		log.Debug("render: unknown color %q", name)
		return b
	}
	return append(b, '\x1b', '[', base, byte('0'+n), 'm')
}

// appendMove encodes a 0-based position as the 1-based row;col wire form.
func appendMove(b []byte, x, y int) []byte {
	if x < 0 || y < 0 {
		return b
	}
	if x == 0 && y == 0 {
		return append(b, cursorHome...)
	}
	b = append(b, '\x1b', '[')
	b = strconv.AppendUint(b, uint64(y)+1, 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(x)+1, 10)
	return append(b, 'H')
}

func (r *Renderer) appendText(b []byte, s string) []byte {
	if r.normalize {
		s = norm.NFC.String(s)
	}
	for len(s) > 0 {
		c, size := utf8.DecodeRuneInString(s)
		if isOrdinary(c, size) {
			b = append(b, s[:size]...)
		} else {
			b = append(b, '?')
		}
		s = s[size:]
	}
	return b
}

// isOrdinary reports whether a decoded rune may be written verbatim: not a
// C0 or C1 control, not DEL, and not an undecodable byte.
func isOrdinary(c rune, size int) bool {
	switch {
	case c == utf8.RuneError && size == 1:
		return false
	case c < 0x20, c == 0x7f:
		return false
	case c >= 0x80 && c <= 0x9f:
		return false
	}
	return true
}

func (r *Renderer) appendBox(b []byte, a BoxChar) []byte {
	if a.Count <= 0 {
		return b
	}
	g := lookupGlyph(a.Glyph, a.Style, r.glyphs)
	b = append(b, enterGraphic...)
	for range a.Count {
		b = utf8.AppendRune(b, g)
	}
	return append(b, exitGraphic...)
}
