// ABOUTME: Virtual implements Sys in memory for tests without a real TTY
// ABOUTME: Scripted input with explicit timeouts, captured output, attribute history, failure injection

package term

import (
	"bytes"
	"sync"
	"time"
)

// virtualAttrs is the attribute record a Virtual hands out inside a Mode.
type virtualAttrs struct {
	Echo      bool
	Canonical bool
	Signals   bool
	Flags     uint32
}

// cookedAttrs is the state a fresh Virtual starts in.
var cookedAttrs = virtualAttrs{Echo: true, Canonical: true, Signals: true, Flags: 0x8a3b}

// inputChunk is either a burst of bytes or a pause that makes the next
// readiness poll time out.
type inputChunk struct {
	data  []byte
	pause bool
}

// Virtual is a fake Sys. Input is queued with Feed and Pause: bytes fed in
// one call arrive together, and a Pause makes one poll report "not ready".
// A Virtual ignores the descriptor numbers passed to it.
type Virtual struct {
	mu       sync.Mutex
	terminal bool
	attrs    virtualAttrs
	history  []Mode
	cols     int
	rows     int
	input    []inputChunk
	out      bytes.Buffer

	getErr  error
	setErr  error
	sizeErr error
}

// compile-time check: Virtual must satisfy Sys.
var _ Sys = (*Virtual)(nil)

// NewVirtual returns a Virtual terminal of the given size in cooked mode.
func NewVirtual(cols, rows int) *Virtual {
	return &Virtual{
		terminal: true,
		attrs:    cookedAttrs,
		cols:     cols,
		rows:     rows,
	}
}

// IsTerminal reports the configured terminal flag.
func (v *Virtual) IsTerminal(int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.terminal
}

// GetAttributes returns the current attributes.
func (v *Virtual) GetAttributes(int) (Mode, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.getErr != nil {
		return Mode{}, v.getErr
	}
	return Mode{attrs: v.attrs}, nil
}

// SetAttributes installs m and records it in the history.
func (v *Virtual) SetAttributes(_ int, m Mode) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.setErr != nil {
		return v.setErr
	}
	a, ok := m.attrs.(virtualAttrs)
	if !ok {
		return ErrAttributeSet
	}
	v.attrs = a
	v.history = append(v.history, m)
	return nil
}

// MakeRaw clears echo, canonical input and signal generation.
func (v *Virtual) MakeRaw(m Mode) Mode {
	a, ok := m.attrs.(virtualAttrs)
	if !ok {
		return m
	}
	a.Echo, a.Canonical, a.Signals = false, false, false
	return Mode{attrs: a}
}

// GetWindowSize returns the configured size.
func (v *Virtual) GetWindowSize(int) (int, int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.cols, v.rows, nil
}

// PollReadable reports whether fed bytes are pending. A queued pause is
// consumed and reported as a timeout; so is an empty queue.
func (v *Virtual) PollReadable(int, time.Duration) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return false, nil
	}
	if v.input[0].pause {
		v.input = v.input[1:]
		return false, nil
	}
	return true, nil
}

// Read copies bytes from the first pending chunk. Pauses are skipped since
// a blocking read simply waits them out. An empty queue reads as EOF.
func (v *Virtual) Read(_ int, p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for len(v.input) > 0 && v.input[0].pause {
		v.input = v.input[1:]
	}
	if len(v.input) == 0 {
		return 0, nil
	}
	n := copy(p, v.input[0].data)
	v.input[0].data = v.input[0].data[n:]
	if len(v.input[0].data) == 0 {
		v.input = v.input[1:]
	}
	return n, nil
}

// Write appends p to the captured output.
func (v *Virtual) Write(_ int, p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.Write(p)
}

// --- Test helpers (not part of Sys) ---

// Feed queues bytes that arrive together.
func (v *Virtual) Feed(b ...byte) {
	if len(b) == 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, inputChunk{data: append([]byte(nil), b...)})
}

// FeedString queues the bytes of s as one burst.
func (v *Virtual) FeedString(s string) {
	v.Feed([]byte(s)...)
}

// Pause queues a gap in the input longer than any read timeout.
func (v *Virtual) Pause() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, inputChunk{pause: true})
}

// Output returns everything written so far.
func (v *Virtual) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// ResetOutput clears the captured output.
func (v *Virtual) ResetOutput() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
}

// SetTerminal sets what IsTerminal reports.
func (v *Virtual) SetTerminal(ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.terminal = ok
}

// SetSize changes the reported window size.
func (v *Virtual) SetSize(cols, rows int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cols, v.rows = cols, rows
}

// FailGet makes GetAttributes fail with err; nil clears it.
func (v *Virtual) FailGet(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.getErr = err
}

// FailSet makes SetAttributes fail with err; nil clears it.
func (v *Virtual) FailSet(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.setErr = err
}

// FailSize makes GetWindowSize fail with err; nil clears it.
func (v *Virtual) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// Current returns the installed attributes as a Mode.
func (v *Virtual) Current() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()

	return Mode{attrs: v.attrs}
}

// IsRaw reports whether the installed attributes are the raw transform.
func (v *Virtual) IsRaw() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return !v.attrs.Echo && !v.attrs.Canonical && !v.attrs.Signals
}

// SetCount returns how many times attributes were installed.
func (v *Virtual) SetCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.history)
}
