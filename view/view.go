// Package view renders a document into a fixed size grid of cells and owns
// the cursor of the window showing it. Positions are byte offsets into the
// document; the cursor always rests on a grapheme cluster boundary.
package view

import (
	"bytes"

	"github.com/ionut-t/panes/core"
	"github.com/ionut-t/panes/syntax"
	"github.com/rivo/uniseg"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("panes.view")

const defaultTabWidth = 8

// View is the core.View implementation used by the terminal front end.
type View struct {
	text      core.Text
	cursor    int
	preferred int // Display column kept across vertical motions
	start     int // First byte shown, always a line start
	left      int // First display column shown

	width  int
	height int

	tabwidth int
	syntax   *syntax.Syntax
}

// New creates a view of t with a single row.
func New(t core.Text) *View {
	return &View{
		text:     t,
		width:    80,
		height:   1,
		tabwidth: defaultTabWidth,
	}
}

func (v *View) Text() core.Text {
	return v.text
}

func (v *View) data() []byte {
	if v.text == nil {
		return nil
	}
	return v.text.Bytes()
}

// Cursor returns the cursor position, clamped to the document in case
// another window shortened it.
func (v *View) Cursor() int {
	v.cursor = v.clamp(v.cursor)
	return v.cursor
}

// CursorTo moves the cursor to pos and scrolls it into view.
func (v *View) CursorTo(pos int) {
	v.cursor = v.clamp(pos)
	v.preferred = v.Column(v.cursor)
	v.scroll()
}

func (v *View) clamp(pos int) int {
	data := v.data()
	pos = min(max(pos, 0), len(data))
	// back off to the start of a character
	for pos > 0 && pos < len(data) && data[pos]&0xC0 == 0x80 {
		pos--
	}
	return pos
}

// Viewport returns the byte range of the visible lines.
func (v *View) Viewport() core.Range {
	data := v.data()
	v.start = lineStart(data, min(v.start, len(data)))
	end := v.start
	for i := 0; i < v.height; i++ {
		end = lineEnd(data, end)
		if end >= len(data) || i == v.height-1 {
			break
		}
		end++
	}
	return core.Range{Start: v.start, End: end}
}

func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// Resize changes the number of cells the view renders into.
func (v *View) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.scroll()
}

func (v *View) Syntax() *syntax.Syntax {
	return v.syntax
}

func (v *View) SetSyntax(s *syntax.Syntax) {
	v.syntax = s
}

func (v *View) TabWidth() int {
	return v.tabwidth
}

func (v *View) SetTabWidth(width int) {
	if width < 1 {
		return
	}
	v.tabwidth = width
	v.preferred = v.Column(v.Cursor())
	v.scroll()
}

// Reload rebinds the view to t, keeping cursor and scroll position where
// the new document allows it.
func (v *View) Reload(t core.Text) {
	v.text = t
	v.cursor = v.clamp(v.cursor)
	v.start = lineStart(v.data(), min(v.start, len(v.data())))
	v.preferred = v.Column(v.cursor)
	v.scroll()
	log.Debugf("view reloaded on %q", t.Filename())
}

// scroll adjusts the first visible line and column so the cursor is shown.
func (v *View) scroll() {
	data := v.data()
	cur := v.clamp(v.cursor)
	ls := lineStart(data, cur)

	v.start = lineStart(data, min(v.start, len(data)))
	if ls < v.start {
		v.start = ls
	} else {
		n := bytes.Count(data[v.start:ls], []byte{'\n'})
		for ; n >= v.height; n-- {
			v.start = lineEnd(data, v.start) + 1
		}
	}

	col := v.Column(cur)
	if col < v.left {
		v.left = col
	} else if col >= v.left+v.width {
		v.left = col - v.width + 1
	}
}

// --- Editing ---

// InsertKey inserts data at the cursor and moves the cursor after it.
func (v *View) InsertKey(data []byte) {
	pos := v.Cursor()
	if err := v.text.Insert(pos, data); err != nil {
		log.Errorf("insert at %d: %v", pos, err)
		return
	}
	v.CursorTo(pos + len(data))
}

// ReplaceKey overwrites the character under the cursor. At the end of a
// line the data is inserted instead.
func (v *View) ReplaceKey(data []byte) {
	pos := v.Cursor()
	if n := v.clusterLen(pos); n > 0 && v.data()[pos] != '\n' {
		if err := v.text.Delete(pos, n); err != nil {
			log.Errorf("replace at %d: %v", pos, err)
			return
		}
	}
	v.InsertKey(data)
}

// BackspaceKey deletes the character before the cursor and returns the
// new cursor position.
func (v *View) BackspaceKey() int {
	pos := v.Cursor()
	if pos == 0 {
		return 0
	}
	start := v.prevCluster(pos)
	if err := v.text.Delete(start, pos-start); err != nil {
		log.Errorf("backspace at %d: %v", pos, err)
		return pos
	}
	v.CursorTo(start)
	return start
}

// DeleteKey deletes the character under the cursor and returns the cursor
// position.
func (v *View) DeleteKey() int {
	pos := v.Cursor()
	if n := v.clusterLen(pos); n > 0 {
		if err := v.text.Delete(pos, n); err != nil {
			log.Errorf("delete at %d: %v", pos, err)
		}
	}
	v.CursorTo(pos)
	return pos
}

// clusterLen returns the length in bytes of the grapheme cluster at pos.
func (v *View) clusterLen(pos int) int {
	data := v.data()
	if pos >= len(data) {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(data[pos:], -1)
	return len(cluster)
}

// prevCluster returns the start of the grapheme cluster ending at pos.
func (v *View) prevCluster(pos int) int {
	data := v.data()
	i := lineStart(data, pos-1)
	prev, state := i, -1
	for i < pos {
		var cluster []byte
		cluster, _, _, state = uniseg.FirstGraphemeCluster(data[i:], state)
		prev = i
		i += len(cluster)
	}
	return prev
}

// --- Rendering ---

// Line is a visible line of the document.
type Line struct {
	Number int // 1 based line number
	Start  int // Offset of the first byte
	End    int // Offset of the terminating newline or end of document
}

// Lines returns the visible lines, at most one per row.
func (v *View) Lines() []Line {
	data := v.data()
	vp := v.Viewport()
	number := bytes.Count(data[:vp.Start], []byte{'\n'}) + 1

	lines := make([]Line, 0, v.height)
	for pos := vp.Start; len(lines) < v.height; number++ {
		end := lineEnd(data, pos)
		lines = append(lines, Line{Number: number, Start: pos, End: end})
		if end >= len(data) {
			break
		}
		pos = end + 1
	}
	return lines
}

// Left returns the first display column shown.
func (v *View) Left() int {
	return v.left
}

// CursorLine returns the 1 based line number of the cursor.
func (v *View) CursorLine() int {
	return bytes.Count(v.data()[:v.Cursor()], []byte{'\n'}) + 1
}

// Column returns the display column of pos within its line. Tabs advance
// to the next tab stop and wide characters take two columns.
func (v *View) Column(pos int) int {
	data := v.data()
	pos = min(max(pos, 0), len(data))
	col := 0
	state := -1
	for rest := data[lineStart(data, pos):pos]; len(rest) > 0; {
		var cluster []byte
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeCluster(rest, state)
		col += v.cellWidth(cluster, col, width)
	}
	return col
}

// Expand renders the bytes of a line into display cells, tabs replaced by
// spaces up to the next tab stop.
func (v *View) Expand(line []byte) string {
	var b bytes.Buffer
	col := 0
	state := -1
	for rest := line; len(rest) > 0; {
		var cluster []byte
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeCluster(rest, state)
		w := v.cellWidth(cluster, col, width)
		if cluster[0] == '\t' {
			b.Write(bytes.Repeat([]byte{' '}, w))
		} else {
			b.Write(cluster)
		}
		col += w
	}
	return b.String()
}

func (v *View) cellWidth(cluster []byte, col, width int) int {
	if len(cluster) == 1 && cluster[0] == '\t' {
		return v.tabwidth - col%v.tabwidth
	}
	return width
}

func lineStart(data []byte, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos = min(pos, len(data))
	return bytes.LastIndexByte(data[:pos], '\n') + 1
}

func lineEnd(data []byte, pos int) int {
	pos = min(max(pos, 0), len(data))
	if i := bytes.IndexByte(data[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(data)
}
