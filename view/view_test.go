package view

import (
	"testing"

	"github.com/ionut-t/panes/core"
	"github.com/ionut-t/panes/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(content string, width, height int) (*View, *text.Text) {
	doc := text.NewFromBytes([]byte(content))
	v := New(doc)
	v.Resize(width, height)
	return v, doc
}

func TestViewport(t *testing.T) {
	v, _ := newView("one\ntwo\nthree\nfour\n", 10, 2)

	assert.Equal(t, core.Range{Start: 0, End: 7}, v.Viewport())

	// scrolling follows the cursor
	v.CursorTo(9)
	assert.Equal(t, core.Range{Start: 4, End: 13}, v.Viewport())

	v.CursorTo(0)
	assert.Equal(t, core.Range{Start: 0, End: 7}, v.Viewport())

	v.CursorTo(100)
	assert.Equal(t, 19, v.Cursor())
	assert.Equal(t, core.Range{Start: 14, End: 19}, v.Viewport())
}

func TestLines(t *testing.T) {
	v, _ := newView("a\nbb\nccc", 10, 5)

	lines := v.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, Line{Number: 1, Start: 0, End: 1}, lines[0])
	assert.Equal(t, Line{Number: 3, Start: 5, End: 8}, lines[2])

	v.Resize(10, 1)
	v.CursorTo(6)
	lines = v.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Number)
	assert.Equal(t, 3, v.CursorLine())
}

func TestInsertAndDeleteKeys(t *testing.T) {
	v, doc := newView("ac", 10, 1)

	v.CursorTo(1)
	v.InsertKey([]byte("b"))
	assert.Equal(t, "abc", string(doc.Bytes()))
	assert.Equal(t, 2, v.Cursor())

	assert.Equal(t, 1, v.BackspaceKey())
	assert.Equal(t, "ac", string(doc.Bytes()))
	assert.Equal(t, 1, v.Cursor())

	assert.Equal(t, 1, v.DeleteKey())
	assert.Equal(t, "a", string(doc.Bytes()))

	// nothing to delete at the end of the document
	assert.Equal(t, 1, v.DeleteKey())
	assert.Equal(t, "a", string(doc.Bytes()))

	v.CursorTo(0)
	assert.Equal(t, 0, v.BackspaceKey())
	assert.Equal(t, "a", string(doc.Bytes()))
}

func TestReplaceKey(t *testing.T) {
	v, doc := newView("abc\nd", 10, 1)

	v.CursorTo(1)
	v.ReplaceKey([]byte("X"))
	assert.Equal(t, "aXc\nd", string(doc.Bytes()))
	assert.Equal(t, 2, v.Cursor())

	// at the end of a line the newline is kept
	v.CursorTo(3)
	v.ReplaceKey([]byte("!"))
	assert.Equal(t, "aXc!\nd", string(doc.Bytes()))
}

func TestGraphemeClusters(t *testing.T) {
	// "e" followed by a combining acute accent is one character
	v, doc := newView("xe\u0301y", 10, 1)

	v.CursorTo(4)
	assert.Equal(t, 1, v.BackspaceKey())
	assert.Equal(t, "xy", string(doc.Bytes()))

	v, doc = newView("\u00e9!", 10, 1)
	v.CursorTo(1) // inside the two byte sequence
	assert.Equal(t, 0, v.Cursor())
	assert.Equal(t, 0, v.DeleteKey())
	assert.Equal(t, "!", string(doc.Bytes()))
}

func TestColumn(t *testing.T) {
	v, _ := newView("\tab\n世界x", 20, 2)

	assert.Equal(t, 8, v.Column(1))
	assert.Equal(t, 9, v.Column(2))
	v.SetTabWidth(4)
	assert.Equal(t, 4, v.Column(1))

	// wide characters take two cells
	assert.Equal(t, 4, v.Column(10))
	assert.Equal(t, "    ab", v.Expand([]byte("\tab")))
	assert.Equal(t, "a   b", v.Expand([]byte("a\tb")))
}

func TestVerticalMotionKeepsColumn(t *testing.T) {
	v, _ := newView("hello\nhi\nworld", 10, 3)

	v.CursorTo(4)
	require.NoError(t, v.MoveDown(1))
	assert.Equal(t, 8, v.Cursor(), "clamped to the end of the short line")
	require.NoError(t, v.MoveDown(1))
	assert.Equal(t, 13, v.Cursor(), "preferred column restored")
	assert.ErrorIs(t, v.MoveDown(1), ErrEndOfDocument)

	require.NoError(t, v.MoveUp(2))
	assert.Equal(t, 4, v.Cursor())
	assert.ErrorIs(t, v.MoveUp(1), ErrStartOfDocument)
}

func TestHorizontalMotion(t *testing.T) {
	v, _ := newView("ab\ncd", 10, 2)

	v.CursorTo(3)
	assert.ErrorIs(t, v.MoveLeft(1), ErrStartOfLine)
	require.NoError(t, v.MoveRight(2))
	assert.Equal(t, 5, v.Cursor())
	assert.ErrorIs(t, v.MoveRight(1), ErrEndOfLine)

	v.MoveLineStart()
	assert.Equal(t, 3, v.Cursor())
	v.CursorTo(0)
	v.MoveLineEnd()
	assert.Equal(t, 2, v.Cursor())
}

func TestWordMotion(t *testing.T) {
	v, _ := newView("foo bar.baz\n\n  qux", 20, 5)

	require.NoError(t, v.MoveWordForward(1))
	assert.Equal(t, 4, v.Cursor())
	require.NoError(t, v.MoveWordForward(1))
	assert.Equal(t, 7, v.Cursor())
	require.NoError(t, v.MoveWordForward(2))
	assert.Equal(t, 12, v.Cursor(), "empty line is a word")
	require.NoError(t, v.MoveWordForward(1))
	assert.Equal(t, 15, v.Cursor())

	require.NoError(t, v.MoveWordBackward(1))
	assert.Equal(t, 12, v.Cursor())
	require.NoError(t, v.MoveWordBackward(1))
	assert.Equal(t, 8, v.Cursor())
	require.NoError(t, v.MoveWordBackward(3))
	assert.Equal(t, 0, v.Cursor())
	assert.ErrorIs(t, v.MoveWordBackward(1), ErrStartOfDocument)
}

func TestDocumentMotion(t *testing.T) {
	v, _ := newView("a\n  last", 10, 1)

	v.MoveDocumentEnd()
	assert.Equal(t, 4, v.Cursor())
	v.MoveDocumentStart()
	assert.Equal(t, 0, v.Cursor())
}

func TestReload(t *testing.T) {
	v, _ := newView("a long document\nwith lines", 10, 1)
	v.CursorTo(20)

	short := text.NewFromBytes([]byte("tiny"))
	v.Reload(short)
	assert.Same(t, short, v.Text())
	assert.Equal(t, 4, v.Cursor())
	assert.Equal(t, core.Range{Start: 0, End: 4}, v.Viewport())
}

func TestCursorClampedAfterSharedEdit(t *testing.T) {
	v, doc := newView("abcdef", 10, 1)
	v.CursorTo(6)

	require.NoError(t, doc.Delete(0, 4))
	assert.Equal(t, 2, v.Cursor())
}
