// ABOUTME: "cursory help": usage text written in markdown and rendered with glamour
// ABOUTME: Plain notty styling when stdout is not a terminal

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

const usageMarkdown = `# cursory

Raw-mode terminal toolkit demo: key decoding, escape-code rendering and
cursor queries on the controlling terminal.

## Usage

    cursory [flags] [command] [args]

## Commands

| Command | Description |
|---------|-------------|
| demo | Interactive raw-mode demo (default). Press q or Control-C to quit. |
| size | Print the terminal size as COLUMNSxROWS. |
| cursor | Ask the terminal for the cursor position. |
| keys [pattern] | List the special keys the decoder knows, fuzzy-filtered by name. |
| config | Show the effective settings. |
| help | Show this help. |

## Flags

| Flag | Description |
|------|-------------|
| -config PATH | Settings file (YAML). |
| -json | JSON output for events, size, cursor and keys. |
| -vt100 | Draw boxes with DEC special graphics letters. |
| -escape-timeout MS | Escape sequence timeout in milliseconds. |
| -verbose | Debug logging on stderr. |
| -version | Print the version. |

## Settings

Read from ` + "`$XDG_CONFIG_HOME/cursory/config.yaml`" + `:

    escape_timeout_ms: 50
    cursor_timeout_ms: 200
    glyphs: unicode        # or vt100
    log_level: warn
    normalize_text: false
    keys:
      "[1;3P": alt-f1

` + "`CURSORY_ESCAPE_TIMEOUT_MS`, `CURSORY_GLYPHS` and `CURSORY_LOG_LEVEL`" + ` override the file.
`

// helpWrap is the word-wrap column for rendered help.
const helpWrap = 80

// renderHelp renders the usage markdown for a terminal or a plain stream.
func renderHelp(tty bool) (string, error) {
	style := styles.NoTTYStyle
	if tty {
		style = styles.DarkStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(helpWrap),
	)
	if err != nil {
		return "", fmt.Errorf("creating help renderer: %w", err)
	}
	out, err := r.Render(usageMarkdown)
	if err != nil {
		return "", fmt.Errorf("rendering help: %w", err)
	}
	return strings.TrimRight(out, "\n ") + "\n", nil
}

func runHelp(stdout io.Writer, tty bool) error {
	out, err := renderHelp(tty)
	if err != nil {
		// Fallback: raw markdown
		out = usageMarkdown
	}
	_, err = io.WriteString(stdout, out)
	return err
}
