// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: RecoverGoroutine does the same for background goroutines without exiting the process.

package term

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/mauromedda/cursory/internal/log"
)

// showCursor undoes a hidden cursor left behind by the crashed program.
var showCursor = []byte("\x1b[?25h")

// RestoreOnPanic should be deferred right after a session is opened in
// main. On panic it shows the cursor, closes the session (restoring the
// original mode), prints the panic value and stack trace, then exits 1.
func RestoreOnPanic(s *Session) {
	r := recover()
	if r == nil {
		return
	}
	reportPanic(s, r, debug.Stack(), os.Stderr)
	os.Exit(1)
}

// reportPanic does everything RestoreOnPanic does except exiting.
func reportPanic(s *Session, r any, stack []byte, w io.Writer) {
	_, _ = s.Write(showCursor)
	_ = s.Close()
	fmt.Fprintf(w, "\npanic: %v\n\n%s\n", r, stack)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the session is in raw mode. Unlike RestoreOnPanic it does
// not exit, leaving shutdown to the goroutine that owns the session.
func RecoverGoroutine(s *Session) {
	r := recover()
	if r == nil {
		return
	}
	reportGoroutinePanic(s, r, debug.Stack(), os.Stderr)
}

func reportGoroutinePanic(s *Session, r any, stack []byte, w io.Writer) {
	_, _ = s.Write(showCursor)
	if err := s.Restore(); err != nil {
		log.Warn("terminal left in raw mode: %v", err)
	}
	fmt.Fprintf(w, "\ngoroutine panic: %v\n\n%s\n", r, stack)
}
