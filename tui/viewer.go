// Package tui shows rendered grids in a terminal, one page per grid.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Page is one rendered grid.
type Page struct {
	Title string
	Body  string
}

// Viewer pages through rendered grids.
//
// Keys: n / → next page, p / ← previous, j / ↓ and k / ↑ scroll,
// q / Esc / Ctrl-C quit.
type Viewer struct {
	screen tcell.Screen
	pages  []Page
	cur    int
	top    int
}

var (
	titleStyle = tcell.StyleDefault.Reverse(true)
	bodyStyle  = tcell.StyleDefault
	pathStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func (p Page) lines() []string {
	return strings.Split(strings.TrimRight(p.Body, "\n"), "\n")
}

// NewViewer returns a viewer drawing on s, which must already be
// initialized.
func NewViewer(s tcell.Screen, pages []Page) *Viewer {
	return &Viewer{screen: s, pages: pages}
}

// Page returns the index of the page on screen.
func (v *Viewer) Page() int { return v.cur }

// Draw repaints the screen.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if len(v.pages) == 0 {
		v.text(0, 0, w, "no grids to show", titleStyle)
		v.screen.Show()
		return
	}
	p := v.pages[v.cur]
	v.text(0, 0, w, fmt.Sprintf(" %s  [%d/%d] ", p.Title, v.cur+1, len(v.pages)), titleStyle)
	lines := p.lines()
	for y := 1; y < h; y++ {
		i := v.top + y - 1
		if i >= len(lines) {
			break
		}
		v.body(y, w, lines[i])
	}
	v.screen.Show()
}

func (v *Viewer) text(x, y, w int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// body draws a grid row, highlighting path arrows.
func (v *Viewer) body(y, w int, line string) {
	x := 0
	for _, r := range line {
		if x >= w {
			return
		}
		style := bodyStyle
		switch r {
		case '^', '>', 'v', '<':
			style = pathStyle
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Handle applies one event and reports whether the viewer should close.
func (v *Viewer) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRight:
			v.turn(1)
		case tcell.KeyLeft:
			v.turn(-1)
		case tcell.KeyDown:
			v.scroll(1)
		case tcell.KeyUp:
			v.scroll(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'n':
				v.turn(1)
			case 'p':
				v.turn(-1)
			case 'j':
				v.scroll(1)
			case 'k':
				v.scroll(-1)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	v.Draw()
	return false
}

func (v *Viewer) turn(delta int) {
	if len(v.pages) == 0 {
		return
	}
	v.cur = (v.cur + delta + len(v.pages)) % len(v.pages)
	v.top = 0
}

// scroll moves the first visible line, keeping the last line of the page
// on screen.
func (v *Viewer) scroll(delta int) {
	if len(v.pages) == 0 {
		return
	}
	last := len(v.pages[v.cur].lines()) - 1
	v.top = min(max(0, v.top+delta), last)
}

// Run draws and handles events until the user quits.
func (v *Viewer) Run() {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || v.Handle(ev) {
			return
		}
	}
}

// Show opens the terminal, runs a viewer over pages and restores the
// terminal when the user quits.
func Show(pages []Page) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	NewViewer(s, pages).Run()
	return nil
}
