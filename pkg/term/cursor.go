// ABOUTME: Cursor position query: DSR request, bounded reply read, strict CPR parse
// ABOUTME: Positions are 0-based and column-first; the 1-based row;col form exists only on the wire

package term

import (
	"regexp"
	"strconv"
)

// cursorReportLen bounds the reply read.
const cursorReportLen = 16

var (
	cursorQuery   = []byte("\x1b[6n")
	cursorReplyRe = regexp.MustCompile(`^\x1b\[(\d+);(\d+)R$`)
)

// Point is a 0-based cell position, X being the column.
type Point struct {
	X int
	Y int
}

// CursorPosition asks the terminal where the cursor is. The result is best
// effort: a short read, a timeout, or any reply that is not exactly a cursor
// position report yields ok == false. The session should be in raw mode so
// the reply is not line-buffered or echoed.
func (s *Session) CursorPosition() (Point, bool) {
	if _, err := s.Write(cursorQuery); err != nil {
		return Point{}, false
	}
	var buf [cursorReportLen]byte
	n, err := s.ReadRaw(buf[:], s.cursorTimeout)
	if err != nil || n < 1 {
		return Point{}, false
	}
	return ParseCursorReport(buf[:n])
}

// ParseCursorReport parses an entire ESC [ row ; col R reply.
func ParseCursorReport(b []byte) (Point, bool) {
	row, col, ok := parseCursorReply(b)
	if !ok {
		return Point{}, false
	}
	return Point{X: col - 1, Y: row - 1}, true
}

// parseCursorReply returns the 1-based wire values.
func parseCursorReply(b []byte) (row, col int, ok bool) {
	m := cursorReplyRe.FindSubmatch(b)
	if m == nil {
		return 0, 0, false
	}
	row, err := strconv.Atoi(string(m[1]))
	if err != nil || row < 1 {
		return 0, 0, false
	}
	col, err = strconv.Atoi(string(m[2]))
	if err != nil || col < 1 {
		return 0, 0, false
	}
	return row, col, true
}
