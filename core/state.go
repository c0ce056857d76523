package core

import (
	"fmt"

	"github.com/ionut-t/panes/syntax"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("panes.core")

// Config holds the settings an editor is created with.
type Config struct {
	TabWidth     int       // 1-8, other values keep the default of 8
	Clipboard    Clipboard // Backs the clipboard register, may be nil
	SignalBuffer int       // Capacity of the signal channel
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		TabWidth:     8,
		SignalBuffer: 100,
	}
}

// Editor is the editing session: the registry of windows onto shared
// documents, the prompt, registers and syntax definitions.
// There is typically only one editor in a process.
type Editor struct {
	ui       UI
	provider TextProvider

	windows []*Window    // All windows, most recently created first
	win     *Window      // Active window, nil if there is none
	texts   map[Text]int // Number of windows referencing each document
	lastID  int

	prompt       *Window // Dedicated input window
	promptSaved  *Window // Window that was active before the prompt was shown
	promptShown  bool
	promptType   byte // First character of the prompt title

	tabwidth      int
	syntaxes      []*syntax.Syntax
	colors        []syntax.Color
	searchPattern Regex
	registers     [RegisterCount]Register

	signals chan Signal
}

// New creates an editor driving ui, loading documents through provider.
// On failure everything built so far is released again.
func New(ui UI, provider TextProvider, cfg Config) (*Editor, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if cfg.SignalBuffer <= 0 {
		cfg.SignalBuffer = DefaultConfig().SignalBuffer
	}

	ed := &Editor{
		ui:       ui,
		provider: provider,
		texts:    make(map[Text]int),
		tabwidth: 8,
		signals:  make(chan Signal, cfg.SignalBuffer),
	}
	if cfg.TabWidth >= 1 && cfg.TabWidth <= 8 {
		ed.tabwidth = cfg.TabWidth
	}
	ed.registers[RegisterClipboard].clipboard = cfg.Clipboard

	ed.ui.Init(ed)

	if err := ed.promptNew(); err != nil {
		ed.Free()
		return nil, err
	}

	pattern, err := provider.RegexNew()
	if err != nil {
		ed.Free()
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	ed.searchPattern = pattern

	return ed, nil
}

// Free closes every window before releasing the prompt, the search
// pattern, registers, syntax definitions and finally the UI.
func (ed *Editor) Free() {
	if ed == nil {
		return
	}
	for len(ed.windows) > 0 {
		ed.WindowClose(ed.windows[0])
	}
	if ed.prompt != nil {
		ed.windowFree(ed.prompt)
		ed.prompt = nil
	}
	if ed.searchPattern != nil {
		ed.searchPattern.Close()
		ed.searchPattern = nil
	}
	for i := range ed.registers {
		ed.registers[i].Free()
	}
	ed.SyntaxUnload()
	ed.ui.Free()
}

// Window returns the active window, which is the prompt while it is shown.
func (ed *Editor) Window() *Window {
	return ed.win
}

// Windows returns the registered windows, most recently created first.
func (ed *Editor) Windows() []*Window {
	windows := make([]*Window, len(ed.windows))
	copy(windows, ed.windows)
	return windows
}

// SearchPattern returns the search pattern shared by all windows.
func (ed *Editor) SearchPattern() Regex {
	return ed.searchPattern
}

// --- UI pass-through ---

func (ed *Editor) WindowsArrange(layout Layout) {
	ed.ui.Arrange(layout)
}

func (ed *Editor) Resize() {
	ed.ui.Resize()
}

func (ed *Editor) Draw() {
	ed.ui.Draw()
}

func (ed *Editor) Update() {
	ed.ui.Update()
}

func (ed *Editor) Suspend() {
	ed.ui.Suspend()
}

// InfoShow displays an informational message.
func (ed *Editor) InfoShow(format string, args ...any) {
	ed.ui.Info(fmt.Sprintf(format, args...))
}

func (ed *Editor) InfoHide() {
	ed.ui.InfoHide()
}
