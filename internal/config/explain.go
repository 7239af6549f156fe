// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "config" CLI subcommand to show merged settings

package config

import (
	"fmt"
	"sort"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
func Explain(s *Settings) string {
	if s == nil {
		s = Default()
	}

	var b strings.Builder

	b.WriteString("=== Input ===\n")
	fmt.Fprintf(&b, "  EscapeTimeout: %s\n", s.EscapeTimeout())
	fmt.Fprintf(&b, "  CursorTimeout: %s\n", s.CursorTimeout())
	b.WriteString("\n")

	b.WriteString("=== Output ===\n")
	fmt.Fprintf(&b, "  Glyphs:        %s\n", s.Glyphs)
	fmt.Fprintf(&b, "  NormalizeText: %v\n", s.NormalizeText)
	fmt.Fprintf(&b, "  LogLevel:      %s\n", s.LogLevel)
	b.WriteString("\n")

	b.WriteString("=== Keys ===\n")
	seqs := make([]string, 0, len(s.Keys))
	for seq := range s.Keys {
		seqs = append(seqs, seq)
	}
	sort.Strings(seqs)
	for _, seq := range seqs {
		fmt.Fprintf(&b, "  ESC %-8s %s\n", seq, s.Keys[seq])
	}

	return b.String()
}
