// ABOUTME: Color and box-glyph tables shared by every Renderer
// ABOUTME: Glyphs come in DEC special-graphics, single-line, and double-line variants

package render

import "sort"

// BoxStyle selects the line weight of box glyphs.
type BoxStyle string

const (
	StyleSingle BoxStyle = "single"
	StyleDouble BoxStyle = "double"
)

// GlyphSet selects how box glyphs are encoded.
type GlyphSet int

const (
	// GlyphsUnicode writes box-drawing code points, honouring BoxStyle.
	GlyphsUnicode GlyphSet = iota
	// GlyphsVT100 writes DEC special-graphics letters; BoxStyle is ignored.
	GlyphsVT100
)

// colors maps names to SGR color digits.
var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"default": 9,
}

// Indices into a glyphs entry.
const (
	variantVT100 = iota
	variantSingle
	variantDouble
)

var glyphs = map[string][3]rune{
	"horz":                {'q', '─', '═'},
	"vert":                {'x', '│', '║'},
	"cross":               {'n', '┼', '╬'},
	"corner-top-left":     {'l', '┌', '╔'},
	"corner-top-right":    {'k', '┐', '╗'},
	"corner-bottom-left":  {'m', '└', '╚'},
	"corner-bottom-right": {'j', '┘', '╝'},
	"tee-left":            {'t', '├', '╠'},
	"tee-right":           {'u', '┤', '╣'},
	"tee-top":             {'w', '┬', '╦'},
	"tee-bottom":          {'v', '┴', '╩'},
}

// lookupGlyph resolves a glyph name. Unknown names resolve to a space and
// unknown styles to the single-line variant.
func lookupGlyph(name string, style BoxStyle, set GlyphSet) rune {
	g, ok := glyphs[name]
	if !ok {
		return ' '
	}
	switch {
	case set == GlyphsVT100:
		return g[variantVT100]
	case style == StyleDouble:
		return g[variantDouble]
	default:
		return g[variantSingle]
	}
}

// Colors returns the known color names, sorted.
func Colors() []string {
	out := make([]string, 0, len(colors))
	for name := range colors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Glyphs returns the known glyph names, sorted.
func Glyphs() []string {
	out := make([]string, 0, len(glyphs))
	for name := range glyphs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
