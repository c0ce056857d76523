package view

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

var (
	ErrStartOfLine     = errors.New("start of line")
	ErrEndOfLine       = errors.New("end of line")
	ErrStartOfDocument = errors.New("start of document")
	ErrEndOfDocument   = errors.New("end of document")
)

// --- Cursor Movement ---

// MoveLeft moves the cursor count characters to the left within its line.
func (v *View) MoveLeft(count int) error {
	data := v.data()
	pos := v.Cursor()
	ls := lineStart(data, pos)
	for range count {
		if pos <= ls {
			v.CursorTo(pos)
			return ErrStartOfLine
		}
		pos = v.prevCluster(pos)
	}
	v.CursorTo(pos)
	return nil
}

// MoveRight moves the cursor count characters to the right within its
// line. The cursor may rest after the last character.
func (v *View) MoveRight(count int) error {
	data := v.data()
	pos := v.Cursor()
	le := lineEnd(data, pos)
	for range count {
		if pos >= le {
			v.CursorTo(pos)
			return ErrEndOfLine
		}
		pos += v.clusterLen(pos)
	}
	v.CursorTo(pos)
	return nil
}

// MoveUp moves the cursor count lines up, keeping the preferred column.
func (v *View) MoveUp(count int) error {
	data := v.data()
	ls := lineStart(data, v.Cursor())
	if ls == 0 {
		return ErrStartOfDocument
	}
	for range count {
		if ls == 0 {
			break
		}
		ls = lineStart(data, ls-1)
	}
	v.moveToColumn(ls)
	return nil
}

// MoveDown moves the cursor count lines down, keeping the preferred column.
func (v *View) MoveDown(count int) error {
	data := v.data()
	le := lineEnd(data, v.Cursor())
	if le >= len(data) {
		return ErrEndOfDocument
	}
	ls := le + 1
	for range count - 1 {
		le = lineEnd(data, ls)
		if le >= len(data) {
			break
		}
		ls = le + 1
	}
	v.moveToColumn(ls)
	return nil
}

// moveToColumn places the cursor on the line starting at ls, as close to
// the preferred column as the line allows.
func (v *View) moveToColumn(ls int) {
	data := v.data()
	le := lineEnd(data, ls)
	preferred := v.preferred

	pos, col, state := ls, 0, -1
	for pos < le {
		cluster, _, width, st := uniseg.FirstGraphemeCluster(data[pos:le], state)
		w := v.cellWidth(cluster, col, width)
		if col+w > preferred {
			break
		}
		col += w
		pos += len(cluster)
		state = st
	}

	v.cursor = pos
	v.scroll()
	v.preferred = preferred
}

// MoveLineStart moves the cursor to the start of its line.
func (v *View) MoveLineStart() {
	v.CursorTo(lineStart(v.data(), v.Cursor()))
}

// MoveLineEnd moves the cursor after the last character of its line.
func (v *View) MoveLineEnd() {
	v.CursorTo(lineEnd(v.data(), v.Cursor()))
}

// MoveFirstNonBlank moves the cursor to the first non blank character of
// its line.
func (v *View) MoveFirstNonBlank() {
	data := v.data()
	pos := lineStart(data, v.Cursor())
	le := lineEnd(data, pos)
	for pos < le && isWhiteSpace(rune(data[pos])) {
		pos++
	}
	v.CursorTo(pos)
}

// MoveDocumentStart moves the cursor to the start of the document.
func (v *View) MoveDocumentStart() {
	v.CursorTo(0)
}

// MoveDocumentEnd moves the cursor to the first non blank character of
// the last line.
func (v *View) MoveDocumentEnd() {
	v.CursorTo(len(v.data()))
	v.MoveFirstNonBlank()
}

// PageDown scrolls down by one screen.
func (v *View) PageDown() error {
	return v.MoveDown(v.height)
}

// PageUp scrolls up by one screen.
func (v *View) PageUp() error {
	return v.MoveUp(v.height)
}

// --- Word Movement ---

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

type charClass int

const (
	classSpace charClass = iota
	classWord
	classPunct
	classNewline
)

func classOf(r rune) charClass {
	switch {
	case r == '\n':
		return classNewline
	case isWhiteSpace(r):
		return classSpace
	case isWordChar(r):
		return classWord
	}
	return classPunct
}

// emptyLine reports whether pos is the newline of an empty line.
func emptyLine(data []byte, pos int) bool {
	return pos < len(data) && data[pos] == '\n' && (pos == 0 || data[pos-1] == '\n')
}

func runeAt(data []byte, pos int) rune {
	r, _ := utf8.DecodeRune(data[pos:])
	return r
}

func prevRune(data []byte, pos int) int {
	_, size := utf8.DecodeLastRune(data[:pos])
	return pos - size
}

func isBlank(data []byte, pos int) bool {
	c := classOf(runeAt(data, pos))
	return c == classSpace || c == classNewline
}

// MoveWordForward moves the cursor to the start of the count-th next word.
// An empty line counts as a word.
func (v *View) MoveWordForward(count int) error {
	data := v.data()
	pos := v.Cursor()
	for range count {
		if pos >= len(data) {
			v.CursorTo(pos)
			return ErrEndOfDocument
		}
		if class := classOf(runeAt(data, pos)); emptyLine(data, pos) {
			pos++
		} else if class == classWord || class == classPunct {
			for pos < len(data) && classOf(runeAt(data, pos)) == class {
				_, size := utf8.DecodeRune(data[pos:])
				pos += size
			}
		}
		for pos < len(data) && isBlank(data, pos) && !emptyLine(data, pos) {
			pos++
		}
	}
	v.CursorTo(pos)
	return nil
}

// MoveWordBackward moves the cursor to the start of the count-th previous
// word.
func (v *View) MoveWordBackward(count int) error {
	data := v.data()
	pos := v.Cursor()
	for range count {
		if pos == 0 {
			v.CursorTo(pos)
			return ErrStartOfDocument
		}
		pos = prevRune(data, pos)
		for pos > 0 && isBlank(data, pos) && !emptyLine(data, pos) {
			pos = prevRune(data, pos)
		}
		if isBlank(data, pos) {
			continue
		}
		class := classOf(runeAt(data, pos))
		for pos > 0 && classOf(runeAt(data, prevRune(data, pos))) == class {
			pos = prevRune(data, pos)
		}
	}
	v.CursorTo(pos)
	return nil
}
