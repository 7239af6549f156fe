// ABOUTME: Interactive demo: raw mode, a boxed status screen, and a live echo of decoded key events
// ABOUTME: The event loop runs on the calling goroutine; only the resize watcher runs in an errgroup

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/mailru/easyjson"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/cursory/internal/config"
	"github.com/mauromedda/cursory/internal/log"
	"github.com/mauromedda/cursory/internal/width"
	"github.com/mauromedda/cursory/pkg/key"
	"github.com/mauromedda/cursory/pkg/render"
	"github.com/mauromedda/cursory/pkg/term"
)

// historyLen is how many recent events the screen lists.
const historyLen = 8

const (
	title = " cursory "
	// hintRow is the index of the quit hint in screen.lines.
	hintRow = 2
)

// minBox is the smallest window the box is drawn in.
var minBox = term.Size{Columns: 12, Rows: 4}

type demo struct {
	sys      term.Sys
	in, out  int
	settings *config.Settings
	json     bool
	stdout   io.Writer
	// watch reports window size changes until its context ends; nil
	// disables resize handling.
	watch func(ctx context.Context, notify func()) error
	// openTTY opens the controlling terminal when stdin is redirected; nil
	// means there is none to fall back to.
	openTTY func(opts ...term.Option) (*term.Session, error)
}

// screen is what the demo shows.
type screen struct {
	size    term.Size
	cursor  string
	history []string
}

func (d demo) run() error {
	timeout := term.WithCursorTimeout(d.settings.CursorTimeout())
	if d.sys.IsTerminal(d.in) {
		return term.With(d.sys, d.in, d.session, term.WithOutput(d.out), timeout)
	}
	if d.openTTY != nil {
		s, err := d.openTTY(timeout)
		if err == nil {
			return errors.Join(d.session(s), s.Close())
		}
		log.Debug("no controlling terminal: %v", err)
	}
	fmt.Fprintln(d.stdout, warnStyle.Render("stdin is not a terminal; run cursory from an interactive shell"))
	return nil
}

func (d demo) session(s *term.Session) error {
	defer term.RestoreOnPanic(s)

	if err := s.EnableRawMode(); err != nil {
		return err
	}

	sc := screen{cursor: "unavailable"}
	if pos, ok := s.CursorPosition(); ok {
		sc.cursor = fmt.Sprintf("%d,%d", pos.X, pos.Y)
	}
	size, err := s.Size()
	if err != nil {
		return err
	}
	sc.size = size

	r := render.New(s, d.renderOptions()...)
	if err := r.Render(sc.actions()); err != nil {
		return fmt.Errorf("drawing screen: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	var resized atomic.Bool
	if d.watch != nil {
		g.Go(func() error {
			defer term.RecoverGoroutine(s)
			return d.watch(gctx, func() { resized.Store(true) })
		})
	}

	loopErr := d.loop(s, r, &sc, &resized)
	cancel()
	if err := g.Wait(); err != nil {
		log.Warn("resize watcher: %v", err)
	}

	// Leave the prompt below a clean screen.
	cleanup := []render.Action{render.MoveTo{}, render.ClearToScreenEnd{}}
	return errors.Join(loopErr, r.Render(cleanup))
}

// loop echoes events until q, Control-C, or end of input.
func (d demo) loop(s *term.Session, r *render.Renderer, sc *screen, resized *atomic.Bool) error {
	dec := key.NewDecoder(s,
		key.WithEscapeTimeout(d.settings.EscapeTimeout()),
		key.WithKeyNames(d.settings.Keys),
	)
	for ev := range dec.Events() {
		if resized.Swap(false) {
			size, err := s.Size()
			if err != nil {
				return err
			}
			sc.size = size
		}
		if ev.IsNone() {
			continue
		}
		if quits(ev) {
			return nil
		}
		sc.push(d.describe(ev))
		if err := r.Render(sc.actions()); err != nil {
			return fmt.Errorf("drawing screen: %w", err)
		}
	}
	if err := dec.Err(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (d demo) renderOptions() []render.Option {
	opts := []render.Option{render.WithNormalize(d.settings.NormalizeText)}
	if d.settings.Glyphs == config.GlyphsVT100 {
		opts = append(opts, render.WithGlyphs(render.GlyphsVT100))
	}
	return opts
}

// describe formats an event for the history list.
func (d demo) describe(ev key.Event) string {
	if d.json {
		b, err := easyjson.Marshal(ev)
		if err != nil {
			return err.Error()
		}
		return string(b)
	}
	return fmt.Sprintf("%-8s %s", ev.Kind, ev)
}

func quits(ev key.Event) bool {
	return ev == key.Char('q') || ev == key.ControlKey("Control-C")
}

func (sc *screen) push(line string) {
	sc.history = append(sc.history, line)
	if len(sc.history) > historyLen {
		sc.history = sc.history[len(sc.history)-historyLen:]
	}
}

// lines returns the text rows inside the box.
func (sc *screen) lines() []string {
	out := []string{
		fmt.Sprintf("size    %dx%d", sc.size.Columns, sc.size.Rows),
		"cursor  " + sc.cursor,
		"q or Control-C quits",
		"",
	}
	return append(out, sc.history...)
}

// actions lays the screen out as a double-line box sized to the window.
// A window smaller than minBox gets the text rows only.
func (sc *screen) actions() []render.Action {
	lines := sc.lines()
	acts := []render.Action{render.MoveTo{}, render.ClearToScreenEnd{}}

	cols, rows := int(sc.size.Columns), int(sc.size.Rows)
	if sc.size.Columns < minBox.Columns || sc.size.Rows < minBox.Rows {
		for y, line := range lines[:min(len(lines), rows)] {
			acts = append(acts, render.MoveTo{Y: y}, render.Text{S: width.Truncate(line, cols, "")})
		}
		return acts
	}

	w := min(cols, 64)
	inner := w - 4
	lines = lines[:min(len(lines), rows-2)]
	h := len(lines) + 2

	acts = append(acts,
		render.BoxChar{Glyph: "corner-top-left", Style: render.StyleDouble, Count: 1},
		render.BoxChar{Glyph: "horz", Style: render.StyleDouble, Count: w - 2},
		render.BoxChar{Glyph: "corner-top-right", Style: render.StyleDouble, Count: 1},
		render.MoveTo{X: max((w-width.VisibleWidth(title))/2, 1), Y: 0},
		render.SetForeground{Color: "cyan"},
		render.Text{S: width.Truncate(title, inner, "")},
		render.SetForeground{Color: "default"},
	)
	for i, line := range lines {
		y := i + 1
		cell := width.Truncate(line, inner, "~")
		if i == hintRow {
			cell = width.Center(cell, inner)
		} else {
			cell = width.PadRight(cell, inner)
		}
		acts = append(acts,
			render.MoveTo{X: 0, Y: y},
			render.BoxChar{Glyph: "vert", Style: render.StyleDouble, Count: 1},
			render.MoveTo{X: 2, Y: y},
			render.Text{S: cell},
			render.MoveTo{X: w - 1, Y: y},
			render.BoxChar{Glyph: "vert", Style: render.StyleDouble, Count: 1},
		)
	}
	return append(acts,
		render.MoveTo{X: 0, Y: h - 1},
		render.BoxChar{Glyph: "corner-bottom-left", Style: render.StyleDouble, Count: 1},
		render.BoxChar{Glyph: "horz", Style: render.StyleDouble, Count: w - 2},
		render.BoxChar{Glyph: "corner-bottom-right", Style: render.StyleDouble, Count: 1},
		render.MoveTo{X: 0, Y: h},
	)
}
