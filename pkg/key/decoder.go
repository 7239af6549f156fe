// ABOUTME: Decoder turns a terminal byte stream into Events, one self-contained decode per call
// ABOUTME: Only the first byte of an event blocks; escape and UTF-8 continuations are timeout-bounded

package key

import (
	"iter"
	"maps"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/cursory/internal/log"
)

// DefaultEscapeTimeout is how long the decoder waits after ESC before
// reporting a bare Escape, and between bytes of a multi-byte construct.
const DefaultEscapeTimeout = 50 * time.Millisecond

// maxEscapeLen bounds the bytes collected after ESC.
const maxEscapeLen = 8

// Source supplies input bytes. *term.Session satisfies it.
type Source interface {
	// ReadByte blocks for the next byte.
	ReadByte() (byte, error)
	// ReadByteTimeout returns an error if no byte arrives within d.
	ReadByteTimeout(d time.Duration) (byte, error)
}

// Decoder reads Events from a Source. It keeps no state between events
// besides the terminating error.
type Decoder struct {
	src     Source
	timeout time.Duration
	names   map[string]string
	err     error
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithEscapeTimeout sets the continuation timeout.
func WithEscapeTimeout(d time.Duration) Option {
	return func(dec *Decoder) { dec.timeout = d }
}

// WithKeyNames adds or overrides escape-sequence bindings for this decoder
// only. Keys are the bytes after ESC, e.g. "[1;3A".
func WithKeyNames(names map[string]string) Option {
	return func(dec *Decoder) {
		if len(names) == 0 {
			return
		}
		if dec.names == nil {
			dec.names = make(map[string]string, len(names))
		}
		maps.Copy(dec.names, names)
	}
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src Source, opts ...Option) *Decoder {
	d := &Decoder{src: src, timeout: DefaultEscapeTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReadEvent decodes the next event. Malformed input yields an EventNone
// with a nil error; the next call resynchronises on the following byte.
// A read failure on the first byte (io.EOF once input is closed) is
// returned with EventNone.
func (d *Decoder) ReadEvent() (Event, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return None(), err
	}
	switch {
	case b == 0x1b:
		return d.escape(), nil
	case b == 0x7f, b >= 0x01 && b <= 0x1a:
		return control(b), nil
	case b < 0x20:
		// NUL and 0x1C..0x1F are unassigned.
		return None(), nil
	default:
		return d.utf8Rune(b), nil
	}
}

// Events returns the event stream. It ends when the Source fails; Err
// reports why.
func (d *Decoder) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, err := d.ReadEvent()
			if err != nil {
				d.err = err
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Err returns the error that ended Events, io.EOF included.
func (d *Decoder) Err() error {
	return d.err
}

// control maps a control byte to its key name.
func control(b byte) Event {
	if name, ok := controlKeys[b]; ok {
		return ControlKey(name)
	}
	return ControlKey("Control-" + string(rune(0x40+b)))
}

// escape decodes what follows an ESC byte.
func (d *Decoder) escape() Event {
	seq, ok := d.readEscape()
	if !ok {
		log.Debug("dropped malformed escape sequence %q", seq)
		return None()
	}
	if seq == "" {
		return Escape()
	}
	if name, ok := d.lookup(seq); ok {
		return SpecialKey(name)
	}
	log.Debug("no key bound to escape sequence %q", seq)
	return None()
}

// readEscape collects the sequence after ESC. An empty result with ok set
// means nothing followed in time: a bare Escape.
func (d *Decoder) readEscape() (string, bool) {
	b, err := d.src.ReadByteTimeout(d.timeout)
	if err != nil {
		return "", true
	}
	if b != 'O' && b != '[' {
		return string(b), false
	}

	buf := make([]byte, 1, maxEscapeLen+1)
	buf[0] = b
	for {
		b, err = d.src.ReadByteTimeout(d.timeout)
		if err != nil {
			return string(buf), false
		}
		if b == ':' {
			b = ';'
		}
		buf = append(buf, b)
		if len(buf) > maxEscapeLen {
			return string(buf), false
		}
		if b != ';' && (b < '0' || b > '9') {
			return string(buf), true
		}
	}
}

func (d *Decoder) lookup(seq string) (string, bool) {
	if name, ok := d.names[seq]; ok {
		return name, true
	}
	name, ok := escapeKeys[seq]
	return name, ok
}

// utf8Rune decodes a rune from its lead byte and up to three
// continuation bytes, each read with the escape timeout.
func (d *Decoder) utf8Rune(lead byte) Event {
	var (
		r     rune
		cont  int
		least rune
	)
	switch {
	case lead < 0x80:
		return Char(rune(lead))
	case lead < 0xc0:
		// continuation byte without a lead
		return None()
	case lead < 0xe0:
		r, cont, least = rune(lead&0x1f), 1, 0x80
	case lead < 0xf0:
		r, cont, least = rune(lead&0x0f), 2, 0x800
	case lead < 0xf8:
		r, cont, least = rune(lead&0x07), 3, 0x10000
	default:
		return None()
	}

	for ; cont > 0; cont-- {
		b, err := d.src.ReadByteTimeout(d.timeout)
		if err != nil || b&0xc0 != 0x80 {
			log.Debug("dropped truncated UTF-8 sequence (lead %#x)", lead)
			return None()
		}
		r = r<<6 | rune(b&0x3f)
	}
	// Overlong forms, surrogates and values past U+10FFFF are not runes.
	if r < least || !utf8.ValidRune(r) {
		return None()
	}
	return Char(r)
}
