package core

import (
	"io"

	"github.com/ionut-t/panes/syntax"
)

// EPOS is the invalid position. It is returned when a mark no longer
// resolves or a history lookup runs past the recorded edits.
const EPOS = -1

// Mark is an opaque handle to a position tracked by a Text.
type Mark uint64

// NoMark is returned by Text.MarkSet when no mark could be created.
const NoMark Mark = 0

// Range is a byte range of a document.
type Range struct {
	Start int
	End   int
}

// Contains reports whether pos lies within [Start, End], bounds included.
func (r Range) Contains(pos int) bool {
	return r.Start <= pos && pos <= r.End
}

// Text is the document storage shared between windows.
type Text interface {
	// Content
	Insert(pos int, data []byte) error
	Delete(pos, length int) error
	Bytes() []byte
	Size() int

	Filename() string
	SetFilename(name string)

	// Marks survive edits until the text they point at is deleted,
	// after which MarkGet returns EPOS.
	MarkSet(pos int) Mark
	MarkGet(mark Mark) int

	// HistoryGet returns the position of the index-th most recent edit,
	// or EPOS if there is no such edit.
	HistoryGet(index int) int

	Close() error // Release the document
}

// TextProvider loads documents and creates search patterns.
type TextProvider interface {
	Load(filename string) (Text, error) // An empty filename yields an empty document
	LoadReader(r io.Reader) (Text, error)
	RegexNew() (Regex, error)
}

// Regex is a compiled search pattern shared by all windows.
type Regex interface {
	Compile(pattern string) error
	Search(t Text, from int) (Range, bool)
	Close()
}

// View renders a document in a window and owns its cursor.
type View interface {
	Cursor() int
	CursorTo(pos int)
	Viewport() Range // Currently visible byte range

	// Key level editing primitives
	InsertKey(data []byte)
	ReplaceKey(data []byte)
	BackspaceKey() int // Returns the start of the deleted range
	DeleteKey() int    // Returns the start of the deleted range

	Syntax() *syntax.Syntax
	SetSyntax(s *syntax.Syntax)
	TabWidth() int
	SetTabWidth(width int)

	Reload(t Text) // Rebind the view to another document
}

// Layout arranges the windows of the UI.
type Layout int

const (
	LayoutHorizontal Layout = iota // Windows stacked on top of each other
	LayoutVertical                 // Windows side by side
)

// Option is a set of per window display options.
type Option uint

const OptionNone Option = 0

const (
	OptionLineNumbersAbsolute Option = 1 << iota
	OptionLineNumbersRelative
	OptionShowTabs
	OptionShowNewlines
	OptionCursorLine
)

// UIWindow is the UI side of a window.
type UIWindow interface {
	View() View
	Draw()
	Options(opts Option)
}

// UI is the terminal front end driven by the editor.
type UI interface {
	Init(ed *Editor)
	Free()

	Arrange(layout Layout)
	Resize()
	Draw()
	Update()
	Suspend()

	ColorGet(fg, bg string) int // Allocate a colour pair

	WindowNew(t Text) (UIWindow, error)
	WindowFree(w UIWindow)
	WindowFocus(w UIWindow)

	PromptNew(t Text) (UIWindow, error)
	Prompt(title, text string)
	PromptInput() string
	PromptHide()

	Info(msg string)
	InfoHide()
}

// Clipboard backs the system clipboard register.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
