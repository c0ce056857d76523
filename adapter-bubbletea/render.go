package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/ionut-t/panes/adapter-bubbletea/highlighter"
	"github.com/ionut-t/panes/core"
	"github.com/ionut-t/panes/view"
	"github.com/rivo/uniseg"
)

// render returns the window's rows followed by its status line. Clean
// windows return their previous frame.
func (w *window) render(active bool) string {
	if !w.dirty && w.frame != "" {
		return w.frame
	}

	v := w.view
	data := v.Text().Bytes()
	width, height := v.Size()
	vp := v.Viewport()
	paint := w.highlighter().Paint(data, vp.Start, vp.End)
	cursor := v.Cursor()
	cursorLine := v.CursorLine()

	rows := make([]string, 0, height+1)
	for _, ln := range v.Lines() {
		onCursorLine := ln.Number == cursorLine
		var b strings.Builder
		b.WriteString(w.gutter(ln.Number, cursorLine, onCursorLine))

		base := lipgloss.NewStyle()
		if onCursorLine && w.opts&core.OptionCursorLine != 0 {
			base = w.ui.theme.CursorLineStyle
		}
		r := lineRenderer{
			w:       w,
			base:    base,
			paint:   paint,
			from:    vp.Start,
			cursor:  -1,
			left:    v.Left(),
			width:   width,
			newline: ln.End < len(data),
		}
		if active && onCursorLine {
			r.cursor = cursor
		}
		b.WriteString(r.render(data, ln))
		rows = append(rows, b.String())
	}
	for len(rows) < height {
		rows = append(rows, w.ui.theme.PlaceholderStyle.Render("~")+strings.Repeat(" ", max(w.cols-1, 0)))
	}
	rows = append(rows, w.statusLine(active))

	w.frame = strings.Join(rows, "\n")
	w.dirty = false
	return w.frame
}

func (w *window) gutter(number, cursorLine int, current bool) string {
	gw := w.gutterWidth()
	if gw == 0 {
		return ""
	}
	n := number
	if w.opts&core.OptionLineNumbersRelative != 0 && !current {
		n = number - cursorLine
		if n < 0 {
			n = -n
		}
	}
	style := w.ui.theme.LineNumberStyle
	if current {
		style = w.ui.theme.CurrentLineNumberStyle
	}
	return style.Render(fmt.Sprintf("%*d ", gw-1, n))
}

func (w *window) statusLine(active bool) string {
	style := w.ui.theme.StatusLineStyle
	if active {
		style = w.ui.theme.ActiveStatusLineStyle
	}

	name := "[No Name]"
	t := w.view.Text()
	if f := t.Filename(); f != "" {
		name = f
	}
	if m, ok := t.(interface{ IsModified() bool }); ok && m.IsModified() {
		name += " [+]"
	}
	if s := w.view.Syntax(); s != nil {
		name += " (" + s.Name + ")"
	}

	pos := strconv.Itoa(w.view.CursorLine()) + ":" + strconv.Itoa(w.view.Column(w.view.Cursor())+1)
	gap := max(w.cols-lipgloss.Width(name)-lipgloss.Width(pos)-2, 1)
	return style.Width(w.cols).MaxWidth(w.cols).Render(" " + name + strings.Repeat(" ", gap) + pos + " ")
}

// renderPrompt renders the single input line of the prompt window.
func (w *window) renderPrompt(width int) string {
	v := w.view
	data := v.Text().Bytes()
	lines := v.Lines()
	if len(lines) == 0 {
		return ""
	}
	r := lineRenderer{
		w:      w,
		base:   w.ui.theme.CommandLineStyle,
		paint:  make([]int, len(data)),
		cursor: v.Cursor(),
		left:   v.Left(),
		width:  max(width, 1),
	}
	for i := range r.paint {
		r.paint[i] = highlighter.None
	}
	return r.render(data, lines[len(lines)-1])
}

// lineRenderer draws one document line into width cells starting at
// display column left.
type lineRenderer struct {
	w       *window
	base    lipgloss.Style
	paint   []int
	from    int // Document offset of paint[0]
	cursor  int // Cursor offset, -1 if not on this line
	left    int
	width   int
	newline bool // Line is terminated by a newline
}

func (r *lineRenderer) styleAt(pos int) lipgloss.Style {
	i := pos - r.from
	if r.w.hl == nil || i < 0 || i >= len(r.paint) {
		return r.base
	}
	if s, ok := r.w.hl.Style(r.paint[i]); ok {
		return s.Inherit(r.base)
	}
	return r.base
}

func (r *lineRenderer) render(data []byte, ln view.Line) string {
	var b strings.Builder
	var run strings.Builder
	runStyle := r.base
	runPaint := -2

	flush := func() {
		if run.Len() > 0 {
			b.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}
	emit := func(text string, style lipgloss.Style, key int) {
		if key != runPaint {
			flush()
			runStyle = style
			runPaint = key
		}
		run.WriteString(text)
	}

	tabwidth := r.w.view.TabWidth()
	showTabs := r.w.opts&core.OptionShowTabs != 0
	col := 0
	end := r.left + r.width
	state := -1
	pos := ln.Start
	for rest := data[ln.Start:ln.End]; len(rest) > 0 && col < end; {
		var cluster []byte
		var cw int
		cluster, rest, cw, state = uniseg.FirstGraphemeCluster(rest, state)

		text := string(cluster)
		if cluster[0] == '\t' {
			cw = tabwidth - col%tabwidth
			if showTabs {
				text = "›" + strings.Repeat(" ", cw-1)
			} else {
				text = strings.Repeat(" ", cw)
			}
		}

		if col+cw > r.left {
			if col < r.left || col+cw > end {
				// partially visible
				visible := min(col+cw, end) - max(col, r.left)
				text = strings.Repeat(" ", visible)
			}
			style := r.styleAt(pos)
			key := r.keyAt(pos)
			if cluster[0] == '\t' && showTabs {
				style = r.w.ui.theme.WhitespaceStyle.Inherit(r.base)
				key = -3
			}
			if pos == r.cursor {
				style = style.Reverse(true)
				key = -4
			}
			emit(text, style, key)
		}
		col += cw
		pos += len(cluster)
	}

	if col < end && col >= r.left {
		switch {
		case r.cursor == ln.End:
			emit(" ", r.base.Reverse(true), -4)
			col++
		case r.newline && r.w.opts&core.OptionShowNewlines != 0:
			emit("↵", r.w.ui.theme.WhitespaceStyle.Inherit(r.base), -3)
			col++
		}
	}
	if pad := end - max(col, r.left); pad > 0 {
		emit(strings.Repeat(" ", pad), r.base, -5)
	}
	flush()
	return b.String()
}

func (r *lineRenderer) keyAt(pos int) int {
	i := pos - r.from
	if i < 0 || i >= len(r.paint) {
		return highlighter.None
	}
	return r.paint[i]
}
