// ABOUTME: RenderAction model: the closed set of drawing commands the Renderer understands
// ABOUTME: Actions are plain immutable values; positions are 0-based and column-first

// Package render compiles drawing actions into ANSI/VT100 escape output.
package render

// Action is one drawing command. Renderers ignore actions they do not
// recognise, so other packages may define their own.
type Action interface {
	ActionName() string
}

// ClearToLineEnd erases the whole current line.
type ClearToLineEnd struct{}

// ClearToScreenEnd erases from the cursor to the end of the screen.
type ClearToScreenEnd struct{}

// SetForeground selects a named foreground color from the color table.
type SetForeground struct {
	Color string
}

// SetBackground selects a named background color from the color table.
type SetBackground struct {
	Color string
}

// MoveTo places the cursor at column X, row Y. Negative coordinates make
// the action a no-op.
type MoveTo struct {
	X int
	Y int
}

// Text writes S with non-printing characters replaced by '?'. C1 controls
// (U+0080..U+009F) and bytes that are not valid UTF-8 count as non-printing.
type Text struct {
	S string
}

// BoxChar writes a line-drawing glyph Count times.
type BoxChar struct {
	Glyph string
	Style BoxStyle
	Count int
}

func (ClearToLineEnd) ActionName() string   { return "clear-to-line-end" }
func (ClearToScreenEnd) ActionName() string { return "clear-to-screen-end" }
func (SetForeground) ActionName() string    { return "set-foreground" }
func (SetBackground) ActionName() string    { return "set-background" }
func (MoveTo) ActionName() string           { return "move-to" }
func (Text) ActionName() string             { return "text" }
func (BoxChar) ActionName() string          { return "box-char" }
