// ABOUTME: Process-wide key tables: escape-sequence suffix -> key name, control byte -> key name
// ABOUTME: Built once at package init and never mutated; decoders layer overrides on top

package key

import (
	"fmt"
	"sort"
)

// controlKeys names the control bytes that have a key of their own. Other
// bytes in 0x01..0x1A decode as "Control-<letter>".
var controlKeys = map[byte]string{
	0x08: "backspace",
	0x09: "tab",
	0x0a: "return",
	0x0d: "return",
	0x7f: "backspace",
}

// escapeKeys maps the bytes after ESC (CSI "[..." or SS3 "O...") to key names.
var escapeKeys = buildEscapeKeys()

func buildEscapeKeys() map[string]string {
	m := map[string]string{
		// Cursor keys, normal and application mode
		"[A": "up",
		"[B": "down",
		"[C": "right",
		"[D": "left",
		"OA": "up",
		"OB": "down",
		"OC": "right",
		"OD": "left",

		// Navigation
		"[H":  "home",
		"[F":  "end",
		"OH":  "home",
		"OF":  "end",
		"[1~": "home",
		"[4~": "end",
		"[2~": "insert",
		"[3~": "delete",
		"[5~": "page-up",
		"[6~": "page-down",
		"[Z":  "shift-tab",

		"[1;2F": "shift-end",
		"[1;2H": "shift-home",
		"[1;2P": "print-screen",

		// Function keys
		"OP":   "f1",
		"OQ":   "f2",
		"OR":   "f3",
		"OS":   "f4",
		"[11~": "f1",
		"[12~": "f2",
		"[13~": "f3",
		"[14~": "f4",
		"[15~": "f5",
		"[17~": "f6",
		"[18~": "f7",
		"[19~": "f8",
		"[20~": "f9",
		"[21~": "f10",
		"[23~": "f11",
		"[24~": "f12",
		"[{":   "f48",
	}

	// Modified arrows: CSI 1 ; <1 + modifier bits> <direction>
	modifiers := []struct {
		param  string
		prefix string
	}{
		{"2", "shift-"},
		{"3", "alt-"},
		{"5", "control-"},
		{"6", "control-shift-"},
		{"10", "alt-shift-"},
	}
	directions := map[byte]string{'A': "up", 'B': "down", 'C': "right", 'D': "left"}
	for _, mod := range modifiers {
		for final, dir := range directions {
			m["[1;"+mod.param+string(final)] = mod.prefix + dir
		}
	}

	// CSI e .. CSI z carry F19 .. F40.
	for c := byte('e'); c <= 'z'; c++ {
		m["["+string(c)] = fmt.Sprintf("f%d", 19+int(c-'e'))
	}
	return m
}

// Binding pairs an escape-sequence suffix with its key name.
type Binding struct {
	Sequence string // bytes after ESC, e.g. "[A"
	Name     string
}

// SpecialKeys returns every built-in binding, sorted by name then sequence.
func SpecialKeys() []Binding {
	out := make([]Binding, 0, len(escapeKeys))
	for seq, name := range escapeKeys {
		out = append(out, Binding{Sequence: seq, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out
}
