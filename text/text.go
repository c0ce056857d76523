// Package text implements the documents windows are opened on: a byte
// buffer with a filename, marks that follow edits and a log of edit
// positions.
package text

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ionut-t/panes/core"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("panes.text")

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrClosed          = errors.New("document is closed")
)

// Text is a document. The zero value is not usable, see New.
type Text struct {
	data         []byte
	savedContent []byte
	filename     string
	closed       bool

	marks    map[core.Mark]int // Current position of every live mark
	lastMark core.Mark

	history []int // Edit positions, oldest first
	pending int   // End of the last insertion, EPOS after anything else
}

// New creates an empty unnamed document.
func New() *Text {
	return &Text{
		marks:   make(map[core.Mark]int),
		pending: core.EPOS,
	}
}

// NewFromBytes creates an unnamed document holding content.
func NewFromBytes(content []byte) *Text {
	t := New()
	t.data = append([]byte(nil), content...)
	t.SaveContent()
	return t
}

// Load reads filename into a new document. An empty filename yields an
// empty unnamed document.
func Load(filename string) (*Text, error) {
	if filename == "" {
		return New(), nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	t := NewFromBytes(content)
	t.filename = filename
	log.Debugf("loaded %s (%d bytes)", filename, len(content))
	return t, nil
}

// LoadReader reads all of r into a new unnamed document.
func LoadReader(r io.Reader) (*Text, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromBytes(content), nil
}

func (t *Text) Bytes() []byte {
	return t.data
}

func (t *Text) Size() int {
	return len(t.data)
}

func (t *Text) Filename() string {
	return t.filename
}

func (t *Text) SetFilename(name string) {
	t.filename = name
}

// IsModified reports whether the content differs from the last save.
func (t *Text) IsModified() bool {
	return !bytes.Equal(t.savedContent, t.data)
}

// SaveContent marks the current content as saved.
func (t *Text) SaveContent() {
	t.savedContent = append(t.savedContent[:0], t.data...)
}

// Save writes the content to the document's file.
func (t *Text) Save() error {
	if t.filename == "" {
		return core.ErrNoFilename
	}
	if err := os.WriteFile(t.filename, t.data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", t.filename, err)
	}
	t.SaveContent()
	return nil
}

// Closed reports whether Close was called.
func (t *Text) Closed() bool {
	return t.closed
}

// Close releases the document. Further edits fail.
func (t *Text) Close() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true
	t.data = nil
	t.savedContent = nil
	t.marks = nil
	t.history = nil
	return nil
}

// --- Modification ---

// Insert inserts data at pos.
func (t *Text) Insert(pos int, data []byte) error {
	if t.closed {
		return ErrClosed
	}
	if pos < 0 || pos > len(t.data) {
		return fmt.Errorf("Insert: %w: %d out of bounds [0, %d]", ErrInvalidPosition, pos, len(t.data))
	}
	if len(data) == 0 {
		return nil
	}

	t.data = append(t.data[:pos], append(append([]byte(nil), data...), t.data[pos:]...)...)

	for m, p := range t.marks {
		if p >= pos {
			t.marks[m] = p + len(data)
		}
	}

	// typing extends the previous insertion instead of logging a new edit
	if pos != t.pending {
		t.history = append(t.history, pos)
	}
	t.pending = pos + len(data)

	return nil
}

// Delete removes length bytes at pos. Marks inside the removed range stop
// resolving.
func (t *Text) Delete(pos, length int) error {
	if t.closed {
		return ErrClosed
	}
	if length <= 0 {
		return nil
	}
	if pos < 0 || pos+length > len(t.data) {
		return fmt.Errorf("Delete: %w: [%d, %d) out of bounds [0, %d]", ErrInvalidPosition, pos, pos+length, len(t.data))
	}

	t.data = append(t.data[:pos], t.data[pos+length:]...)

	for m, p := range t.marks {
		switch {
		case p >= pos+length:
			t.marks[m] = p - length
		case p >= pos:
			delete(t.marks, m)
		}
	}

	t.history = append(t.history, pos)
	t.pending = core.EPOS

	return nil
}

// --- Marks and history ---

// MarkSet creates a mark at pos. The end of the document can be marked.
func (t *Text) MarkSet(pos int) core.Mark {
	if t.closed || pos < 0 || pos > len(t.data) {
		return core.NoMark
	}
	t.lastMark++
	t.marks[t.lastMark] = pos
	return t.lastMark
}

// MarkGet returns the current position of mark, EPOS if the marked text
// was deleted.
func (t *Text) MarkGet(mark core.Mark) int {
	if pos, ok := t.marks[mark]; ok {
		return pos
	}
	return core.EPOS
}

// HistoryGet returns the position of the index-th most recent edit.
func (t *Text) HistoryGet(index int) int {
	if index < 0 || index >= len(t.history) {
		return core.EPOS
	}
	return t.history[len(t.history)-1-index]
}

// LineStart returns the offset of the first byte of the line holding pos.
func (t *Text) LineStart(pos int) int {
	pos = min(max(pos, 0), len(t.data))
	if i := bytes.LastIndexByte(t.data[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// LineEnd returns the offset of the newline ending the line holding pos,
// or the document size for the last line.
func (t *Text) LineEnd(pos int) int {
	pos = min(max(pos, 0), len(t.data))
	if i := bytes.IndexByte(t.data[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(t.data)
}
