// ABOUTME: One-shot subcommands: size, cursor, keys, config
// ABOUTME: Text output is styled with lipgloss; --json output is written with easyjson writers

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/cursory/internal/config"
	"github.com/mauromedda/cursory/internal/fuzzy"
	"github.com/mauromedda/cursory/internal/width"
	"github.com/mauromedda/cursory/pkg/key"
	"github.com/mauromedda/cursory/pkg/term"
)

// runSize prints the window size of the terminal on fd.
func runSize(sys term.Sys, fd int, asJSON bool, stdout io.Writer) error {
	var size term.Size
	err := term.With(sys, fd, func(s *term.Session) error {
		var err error
		size, err = s.Size()
		return err
	})
	if err != nil {
		return err
	}

	if asJSON {
		w := jwriter.Writer{}
		w.RawString(`{"columns":`)
		w.Uint(size.Columns)
		w.RawString(`,"rows":`)
		w.Uint(size.Rows)
		w.RawString("}\n")
		_, err = w.DumpTo(stdout)
		return err
	}
	_, err = fmt.Fprintf(stdout, "%dx%d\n", size.Columns, size.Rows)
	return err
}

// runCursor switches the terminal to raw mode just long enough to ask for
// the cursor position, then prints it after the mode is restored.
func runCursor(sys term.Sys, in, out int, cfg *config.Settings, asJSON bool, stdout io.Writer) error {
	var (
		pos term.Point
		ok  bool
	)
	err := term.With(sys, in, func(s *term.Session) error {
		if err := s.EnableRawMode(); err != nil {
			return err
		}
		pos, ok = s.CursorPosition()
		return nil
	}, term.WithOutput(out), term.WithCursorTimeout(cfg.CursorTimeout()))
	if err != nil {
		return err
	}

	switch {
	case asJSON && ok:
		w := jwriter.Writer{}
		w.RawString(`{"x":`)
		w.Int(pos.X)
		w.RawString(`,"y":`)
		w.Int(pos.Y)
		w.RawString("}\n")
		_, err = w.DumpTo(stdout)
	case asJSON:
		_, err = io.WriteString(stdout, "null\n")
	case ok:
		_, err = fmt.Fprintf(stdout, "column %d, row %d (0-based)\n", pos.X, pos.Y)
	default:
		_, err = fmt.Fprintln(stdout, warnStyle.Render("terminal did not report a cursor position"))
	}
	return err
}

// bindingNames exposes binding names to fuzzy matching.
type bindingNames []key.Binding

func (b bindingNames) String(i int) string { return b[i].Name }
func (b bindingNames) Len() int            { return len(b) }

// filterKeys returns the built-in bindings whose names match the pattern,
// best match first.
func filterKeys(pattern string) []key.Binding {
	all := bindingNames(key.SpecialKeys())
	matches := fuzzy.FindFrom(pattern, all)
	out := make([]key.Binding, len(matches))
	for i, m := range matches {
		out[i] = all[m.Index]
	}
	return out
}

// runKeys lists the built-in key table, optionally fuzzy-filtered.
func runKeys(rest []string, asJSON bool, stdout io.Writer) error {
	bindings := filterKeys(strings.Join(rest, " "))

	if asJSON {
		w := jwriter.Writer{}
		w.RawByte('[')
		for i, b := range bindings {
			if i > 0 {
				w.RawByte(',')
			}
			w.RawString(`{"name":`)
			w.String(b.Name)
			w.RawString(`,"sequence":`)
			w.String("\x1b" + b.Sequence)
			w.RawByte('}')
		}
		w.RawString("]\n")
		_, err := w.DumpTo(stdout)
		return err
	}

	var sb strings.Builder
	sb.WriteString(headingStyle.Render(fmt.Sprintf("%d special keys", len(bindings))))
	sb.WriteByte('\n')
	for _, b := range bindings {
		sb.WriteString(width.PadRight(nameStyle.Render(b.Name), 24))
		sb.WriteString(dimStyle.Render("ESC " + b.Sequence))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(stdout, sb.String())
	return err
}

// runConfig prints the effective settings and the file they came from.
func runConfig(cfg *config.Settings, path string, stdout io.Writer) error {
	if path == "" {
		path = config.DefaultPath()
	}
	_, err := fmt.Fprintf(stdout, "%s\n%s", dimStyle.Render("# "+path), config.Explain(cfg))
	return err
}
