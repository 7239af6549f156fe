// ABOUTME: Display-width measurement for CLI layout: grapheme clusters, East Asian width, escapes skipped
// ABOUTME: Pad and Truncate fit labels into fixed columns of the demo box and key table

// Package width measures how many terminal cells a string occupies.
package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of cells s occupies. Escape sequences count
// as zero; wide runes and emoji count as two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	s = StripANSI(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// PadRight appends spaces until s is n cells wide. Wider strings are
// returned unchanged.
func PadRight(s string, n int) string {
	w := VisibleWidth(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

// Center surrounds s with spaces so it sits in the middle of n cells,
// leaning left when the slack is odd.
func Center(s string, n int) string {
	w := VisibleWidth(s)
	if w >= n {
		return s
	}
	left := (n - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-w-left)
}

// Truncate cuts s to at most n cells, ending with tail when anything was
// removed. A grapheme cluster is never split. Escape sequences in s are
// dropped when truncation happens.
func Truncate(s string, n int, tail string) string {
	if VisibleWidth(s) <= n {
		return s
	}
	tw := VisibleWidth(tail)
	if tw > n {
		return ""
	}

	var b strings.Builder
	s = StripANSI(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		cw := clusterWidth(cluster)
		if w+cw > n-tw {
			break
		}
		b.WriteString(cluster)
		w += cw
	}
	b.WriteString(tail)
	return b.String()
}

// isPlainASCII reports whether s holds only printable ASCII.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// clusterWidth measures a grapheme cluster by its first rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
