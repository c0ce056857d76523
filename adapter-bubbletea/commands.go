package adapter_bubbletea

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ionut-t/panes/core"
	"github.com/ionut-t/panes/view"
)

var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrMissingArgument = errors.New("missing argument")
	ErrUnsavedChanges  = errors.New("unsaved changes (add ! to override)")
	ErrNoMatch         = errors.New("pattern not found")
	ErrNotSavable      = errors.New("document cannot be saved")
)

type modified interface {
	IsModified() bool
}

type saver interface {
	Save() error
}

// ExecuteCommand runs a command line typed into the ":" prompt.
func (m Model) ExecuteCommand(cmd string) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	parts := strings.Fields(cmd)
	command := parts[0]
	args := parts[1:]

	if n, err := strconv.Atoi(command); err == nil {
		return m.gotoLine(n)
	}

	ed := m.ed
	win := ed.Window()

	switch command {
	case "e", "edit":
		if len(args) != 1 {
			return fmt.Errorf("%w: e <file>", ErrMissingArgument)
		}
		w, err := ed.WindowNew(args[0])
		if err != nil {
			return err
		}
		w.SetOptions(m.options)
		return nil

	case "e!", "reload":
		if win == nil {
			return core.ErrNoWindow
		}
		return win.Reload()

	case "sp", "split":
		if win == nil {
			return core.ErrNoWindow
		}
		w, err := ed.WindowSplit(win)
		if err != nil {
			return err
		}
		if uw, ok := win.UI().(*window); ok {
			w.SetOptions(uw.opts)
		}
		return nil

	case "q", "quit", "close":
		if win == nil {
			return core.ErrNoWindow
		}
		if isModified(win) && ed.References(win.Text()) == 1 {
			return ErrUnsavedChanges
		}
		ed.WindowClose(win)
		return nil

	case "q!", "quit!", "close!":
		if win == nil {
			return core.ErrNoWindow
		}
		ed.WindowClose(win)
		return nil

	case "qa", "qall":
		for _, w := range ed.Windows() {
			if isModified(w) {
				return fmt.Errorf("%s: %w", w.Name(), ErrUnsavedChanges)
			}
		}
		fallthrough

	case "qa!", "qall!":
		for _, w := range ed.Windows() {
			ed.WindowClose(w)
		}
		return nil

	case "w", "write":
		if win == nil {
			return core.ErrNoWindow
		}
		if len(args) > 0 {
			win.Text().SetFilename(args[0])
		}
		return m.save(win)

	case "wq":
		if err := m.ExecuteCommand("w " + strings.Join(args, " ")); err != nil {
			return err
		}
		return m.ExecuteCommand("q")

	case "n", "next", "bn":
		ed.WindowNext()
		return nil

	case "p", "prev", "bp":
		ed.WindowPrev()
		return nil

	case "layout":
		if len(args) != 1 {
			return fmt.Errorf("%w: layout h|v", ErrMissingArgument)
		}
		switch args[0] {
		case "h", "horizontal":
			ed.WindowsArrange(core.LayoutHorizontal)
		case "v", "vertical":
			ed.WindowsArrange(core.LayoutVertical)
		default:
			return fmt.Errorf("%w: layout %s", ErrInvalidCommand, args[0])
		}
		return nil

	case "set", "se":
		if len(args) == 0 {
			return fmt.Errorf("%w: set <option>", ErrMissingArgument)
		}
		for _, arg := range args {
			if err := m.set(arg); err != nil {
				return err
			}
		}
		return nil

	case "syntax", "syn":
		if win == nil {
			return core.ErrNoWindow
		}
		if len(args) != 1 {
			return fmt.Errorf("%w: syntax <name>|off", ErrMissingArgument)
		}
		return m.setSyntax(win, args[0])
	}

	return fmt.Errorf("%w: %s", ErrInvalidCommand, command)
}

// set applies a single "name", "noname" or "name=value" option.
func (m Model) set(arg string) error {
	name, value, hasValue := strings.Cut(arg, "=")

	switch name {
	case "tabwidth", "tw", "ts":
		if !hasValue {
			return fmt.Errorf("%w: tabwidth=N", ErrMissingArgument)
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 8 {
			return fmt.Errorf("%w: tabwidth must be 1-8", ErrInvalidCommand)
		}
		m.ed.SetTabWidth(n)
		m.ed.Draw()
		return nil

	case "syntax", "syn":
		win := m.ed.Window()
		if win == nil {
			return core.ErrNoWindow
		}
		return m.setSyntax(win, value)
	}

	win := m.ed.Window()
	if win == nil {
		return core.ErrNoWindow
	}
	w, ok := win.UI().(*window)
	if !ok {
		return core.ErrNoWindow
	}

	enable := true
	if after, found := strings.CutPrefix(name, "no"); found {
		enable = false
		name = after
	}

	var opt core.Option
	switch name {
	case "number", "nu":
		opt = core.OptionLineNumbersAbsolute
	case "relativenumber", "rnu":
		opt = core.OptionLineNumbersRelative
	case "list":
		opt = core.OptionShowTabs | core.OptionShowNewlines
	case "cursorline", "cul":
		opt = core.OptionCursorLine
	default:
		return fmt.Errorf("%w: set %s", ErrInvalidCommand, arg)
	}

	opts := w.opts
	if enable {
		opts |= opt
	} else {
		opts &^= opt
	}
	win.SetOptions(opts)
	return nil
}

func (m Model) setSyntax(win *core.Window, name string) error {
	if name == "off" || name == "none" {
		win.View().SetSyntax(nil)
		win.UI().Draw()
		return nil
	}
	for _, s := range m.ed.Syntaxes() {
		if s.Name == name {
			win.View().SetSyntax(s)
			win.UI().Draw()
			return nil
		}
	}
	return fmt.Errorf("%w: unknown syntax %s", ErrInvalidCommand, name)
}

func (m Model) save(win *core.Window) error {
	s, ok := win.Text().(saver)
	if !ok {
		return ErrNotSavable
	}
	if err := s.Save(); err != nil {
		return err
	}
	m.ed.InfoShow("%s written", win.Name())
	// every window on the document shows the saved state
	m.ed.Draw()
	return nil
}

// search compiles pattern into the shared search pattern and moves to its
// next match. An empty pattern repeats the previous search.
func (m Model) search(pattern string) error {
	if pattern != "" {
		if err := m.ed.SearchPattern().Compile(pattern); err != nil {
			return err
		}
	}
	return m.searchNext()
}

func (m Model) searchNext() error {
	win := m.ed.Window()
	if win == nil {
		return core.ErrNoWindow
	}
	v := win.View()
	r, ok := m.ed.SearchPattern().Search(win.Text(), v.Cursor())
	if !ok {
		return ErrNoMatch
	}
	win.JumplistAdd(v.Cursor())
	v.CursorTo(r.Start)
	win.UI().Draw()
	return nil
}

func (m Model) gotoLine(n int) error {
	win := m.ed.Window()
	if win == nil {
		return core.ErrNoWindow
	}
	v := win.View()
	win.JumplistAdd(v.Cursor())
	v.CursorTo(lineOffset(win.Text().Bytes(), n))
	if vv, ok := v.(*view.View); ok {
		vv.MoveFirstNonBlank()
	}
	win.UI().Draw()
	return nil
}

// lineOffset returns the start of the 1-based line n, clamped to the
// first and last line of data.
func lineOffset(data []byte, n int) int {
	pos := 0
	for line := 1; line < n; line++ {
		i := bytes.IndexByte(data[pos:], '\n')
		if i < 0 {
			break
		}
		pos += i + 1
	}
	return pos
}

func isModified(w *core.Window) bool {
	m, ok := w.Text().(modified)
	return ok && m.IsModified()
}
