package text

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ionut-t/panes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDelete(t *testing.T) {
	doc := NewFromBytes([]byte("hello world"))

	require.NoError(t, doc.Insert(5, []byte(",")))
	assert.Equal(t, "hello, world", string(doc.Bytes()))
	assert.Equal(t, 12, doc.Size())
	assert.True(t, doc.IsModified())

	require.NoError(t, doc.Delete(0, 7))
	assert.Equal(t, "world", string(doc.Bytes()))

	assert.ErrorIs(t, doc.Insert(6, []byte("x")), ErrInvalidPosition)
	assert.ErrorIs(t, doc.Delete(3, 3), ErrInvalidPosition)
	assert.ErrorIs(t, doc.Insert(-1, []byte("x")), ErrInvalidPosition)
}

func TestMarksFollowEdits(t *testing.T) {
	doc := NewFromBytes([]byte("abcdef"))

	before := doc.MarkSet(1)
	inside := doc.MarkSet(3)
	after := doc.MarkSet(5)
	end := doc.MarkSet(6)
	require.NotEqual(t, core.NoMark, before)
	assert.Equal(t, core.NoMark, doc.MarkSet(7))
	assert.Equal(t, core.NoMark, doc.MarkSet(-1))

	require.NoError(t, doc.Insert(0, []byte("xx")))
	assert.Equal(t, 3, doc.MarkGet(before))
	assert.Equal(t, 8, doc.MarkGet(end))

	// deleting "cde" drops the mark on 'd'
	require.NoError(t, doc.Delete(4, 3))
	assert.Equal(t, "xxabf", string(doc.Bytes()))
	assert.Equal(t, 3, doc.MarkGet(before))
	assert.Equal(t, core.EPOS, doc.MarkGet(inside))
	assert.Equal(t, 4, doc.MarkGet(after))
	assert.Equal(t, core.EPOS, doc.MarkGet(core.Mark(999)))
}

func TestHistory(t *testing.T) {
	doc := New()
	assert.Equal(t, core.EPOS, doc.HistoryGet(0))

	// consecutive typing is one edit
	require.NoError(t, doc.Insert(0, []byte("a")))
	require.NoError(t, doc.Insert(1, []byte("b")))
	require.NoError(t, doc.Insert(2, []byte("c")))
	assert.Equal(t, 0, doc.HistoryGet(0))
	assert.Equal(t, core.EPOS, doc.HistoryGet(1))

	require.NoError(t, doc.Insert(0, []byte("\n")))
	require.NoError(t, doc.Delete(2, 1))

	assert.Equal(t, 2, doc.HistoryGet(0))
	assert.Equal(t, 0, doc.HistoryGet(1))
	assert.Equal(t, 0, doc.HistoryGet(2))
	assert.Equal(t, core.EPOS, doc.HistoryGet(3))
	assert.Equal(t, core.EPOS, doc.HistoryGet(-1))
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Filename())
	assert.False(t, doc.IsModified())

	require.NoError(t, doc.Insert(doc.Size(), []byte("three\n")))
	assert.True(t, doc.IsModified())
	require.NoError(t, doc.Save())
	assert.False(t, doc.IsModified())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", string(content))

	_, err = Load(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	empty, err := Load("")
	require.NoError(t, err)
	assert.Zero(t, empty.Size())
	assert.ErrorIs(t, empty.Save(), core.ErrNoFilename)
}

func TestLoadReader(t *testing.T) {
	doc, err := LoadReader(strings.NewReader("from a pipe"))
	require.NoError(t, err)
	assert.Equal(t, "from a pipe", string(doc.Bytes()))
	assert.Empty(t, doc.Filename())
}

func TestClose(t *testing.T) {
	doc := NewFromBytes([]byte("abc"))
	require.NoError(t, doc.Close())
	assert.True(t, doc.Closed())
	assert.ErrorIs(t, doc.Close(), ErrClosed)
	assert.ErrorIs(t, doc.Insert(0, []byte("x")), ErrClosed)
	assert.Equal(t, core.NoMark, doc.MarkSet(0))
}

func TestLines(t *testing.T) {
	doc := NewFromBytes([]byte("ab\ncd\n\nef"))

	assert.Equal(t, 0, doc.LineStart(1))
	assert.Equal(t, 2, doc.LineEnd(1))
	assert.Equal(t, 3, doc.LineStart(4))
	assert.Equal(t, 5, doc.LineEnd(3))
	assert.Equal(t, 6, doc.LineStart(6))
	assert.Equal(t, 6, doc.LineEnd(6))
	assert.Equal(t, 9, doc.LineEnd(8))
}
