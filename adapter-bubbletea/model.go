package adapter_bubbletea

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/ionut-t/panes/core"
	"github.com/ionut-t/panes/syntax"
	"github.com/ionut-t/panes/text"
	"github.com/ionut-t/panes/view"
)

const messageDuration = 3 * time.Second

// Config holds the settings of a Model.
type Config struct {
	Width  int
	Height int

	Theme       Theme
	ChromaTheme string // Chroma style for the colour table and lexers

	TabWidth         int
	Layout           core.Layout
	Options          core.Option // Display options of new windows
	DisableClipboard bool        // Keep the clipboard register in memory
}

func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      24,
		Theme:       DefaultTheme,
		ChromaTheme: "catppuccin-mocha",
		TabWidth:    8,
		Options:     core.OptionLineNumbersAbsolute,
	}
}

type ErrorMsg struct {
	ID    core.ErrorId
	Error error
}

type MessageMsg struct {
	ID      string
	Message string
}

type WindowOpenedMsg struct {
	ID       int
	Filename string
}

type WindowClosedMsg struct {
	ID int
}

type QuitMsg struct{}

type clearMsg struct{}

type ignoredSignalMsg struct{}

// Model is the bubbletea program model driving an editor.
type Model struct {
	ed   *core.Editor
	ui   *UI
	keys KeyMap
	help help.Model

	options        core.Option
	replace        bool
	clearMsgCancel context.CancelFunc
}

// New creates an editor on a fresh UI. The built-in syntax definitions are
// loaded with the colours of cfg.ChromaTheme.
func New(cfg Config) (Model, error) {
	ui := NewUI(cfg.Width, cfg.Height, cfg.Theme, cfg.ChromaTheme)
	ui.layout = cfg.Layout

	edCfg := core.DefaultConfig()
	edCfg.TabWidth = cfg.TabWidth
	if !cfg.DisableClipboard {
		edCfg.Clipboard = &clipboardImpl{}
	}

	ed, err := core.New(ui, text.NewProvider(), edCfg)
	if err != nil {
		return Model{}, err
	}

	if err := ed.SyntaxLoad(syntax.Builtin(), syntax.ThemeColors(cfg.ChromaTheme)); err != nil {
		// definitions that compiled stay usable
		log.Warningf("loading syntax definitions: %v", err)
	}

	m := Model{
		ed:      ed,
		ui:      ui,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		options: cfg.Options,
	}
	m.updateHint()

	return m, nil
}

// Editor returns the editor driven by the model.
func (m Model) Editor() *core.Editor {
	return m.ed
}

// UI returns the model's user interface.
func (m Model) UI() *UI {
	return m.ui
}

// Open opens a window for each file. Without files an empty unnamed
// window is opened.
func (m Model) Open(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{""}
	}
	var errs []error
	for _, f := range filenames {
		w, err := m.ed.WindowNew(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		w.SetOptions(m.options)
	}
	return errors.Join(errs...)
}

// OpenReader opens a window on the content of r.
func (m Model) OpenReader(r io.Reader) error {
	w, err := m.ed.WindowNewReader(r)
	if err != nil {
		return err
	}
	w.SetOptions(m.options)
	return nil
}

// Free releases the editor.
func (m Model) Free() {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}
	m.ed.Free()
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		m.updateHint()

	case tea.KeyPressMsg:
		m.handleKey(msg)
		if m.ui.takeSuspend() {
			cmds = append(cmds, tea.Suspend)
		}

	case tea.ResumeMsg:
		m.ed.Draw()

	case ErrorMsg:
		m.ui.Error(msg.Error.Error())
		cmds = append(cmds, m.dispatchClearMsg(messageDuration))
		cmds = append(cmds, m.listenForEditorUpdate())

	case MessageMsg:
		m.ui.Info(msg.Message)
		cmds = append(cmds, m.dispatchClearMsg(messageDuration))
		cmds = append(cmds, m.listenForEditorUpdate())

	case WindowOpenedMsg, WindowClosedMsg, ignoredSignalMsg:
		cmds = append(cmds, m.listenForEditorUpdate())

	case QuitMsg:
		return m, tea.Quit

	case clearMsg:
		m.ui.InfoHide()
		m.clearMsgCancel = nil
	}

	m.ed.Update()

	return m, tea.Batch(cmds...)
}

func (m Model) View() tea.View {
	v := tea.NewView(m.ui.Render())
	v.AltScreen = true
	return v
}

// listenForEditorUpdate waits for the next editor signal. It is issued
// again after each signal message so a single listener is pending.
func (m Model) listenForEditorUpdate() tea.Cmd {
	signals := m.ed.Signals()
	return func() tea.Msg {
		signal, ok := <-signals
		if !ok {
			return nil
		}

		switch signal := signal.(type) {
		case core.ErrorSignal:
			id, err := signal.Value()
			return ErrorMsg{ID: id, Error: err}

		case core.MessageSignal:
			id, message := signal.Value()
			return MessageMsg{ID: id, Message: message}

		case core.WindowOpenedSignal:
			id, filename := signal.Value()
			return WindowOpenedMsg{ID: id, Filename: filename}

		case core.WindowClosedSignal:
			return WindowClosedMsg{ID: signal.Value()}

		case core.QuitSignal:
			return QuitMsg{}
		}

		return ignoredSignalMsg{}
	}
}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

// report dispatches err to the signal channel. Editor errors keep their
// own id, others are reported under id.
func (m *Model) report(id core.ErrorId, err error) {
	if err == nil {
		return
	}
	var edErr *core.Error
	if errors.As(err, &edErr) {
		id = edErr.ID()
	}
	m.ed.DispatchError(id, err)
}

func (m *Model) updateHint() {
	m.ui.hint = m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m *Model) handleKey(msg tea.KeyPressMsg) {
	if m.ed.PromptShown() {
		m.handlePromptKey(msg)
		return
	}

	ed := m.ed
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		m.report(core.ErrInvalidCommandId, m.ExecuteCommand("qa"))
		return
	case key.Matches(msg, k.Suspend):
		ed.Suspend()
		return
	case key.Matches(msg, k.Command):
		ed.PromptShow(":", "")
		return
	case key.Matches(msg, k.Search):
		ed.PromptShow("/", "")
		return
	case key.Matches(msg, k.NextMatch):
		m.report(core.ErrSearchId, m.searchNext())
		return
	case key.Matches(msg, k.Next):
		ed.WindowNext()
		return
	case key.Matches(msg, k.Prev):
		ed.WindowPrev()
		return
	case key.Matches(msg, k.Split):
		m.report(core.ErrWindowFailedId, m.ExecuteCommand("split"))
		return
	case key.Matches(msg, k.Close):
		m.report(core.ErrInvalidCommandId, m.ExecuteCommand("close"))
		return
	case key.Matches(msg, k.Save):
		m.report(core.ErrNoFilenameId, m.ExecuteCommand("w"))
		return
	case key.Matches(msg, k.Reload):
		m.report(core.ErrReloadFailedId, m.ExecuteCommand("reload"))
		return
	case key.Matches(msg, k.ToggleReplace):
		m.replace = !m.replace
		if m.replace {
			ed.InfoShow("-- REPLACE --")
		} else {
			ed.InfoHide()
		}
		return
	}

	win := ed.Window()
	if win == nil {
		return
	}
	v, ok := win.View().(*view.View)
	if !ok {
		return
	}

	switch {
	case key.Matches(msg, k.JumpBack):
		m.moveTo(win, win.JumplistPrev())
	case key.Matches(msg, k.JumpForward):
		m.moveTo(win, win.JumplistNext())
	case key.Matches(msg, k.ChangePrev):
		m.moveTo(win, win.ChangelistPrev())
	case key.Matches(msg, k.ChangeNext):
		m.moveTo(win, win.ChangelistNext())

	case key.Matches(msg, k.Yank):
		m.report(core.ErrClipboardId, m.yank(win, core.RegisterDefault))
	case key.Matches(msg, k.YankClipboard):
		m.report(core.ErrClipboardId, m.yank(win, core.RegisterClipboard))
	case key.Matches(msg, k.Paste):
		m.report(core.ErrClipboardId, m.paste(win, core.RegisterDefault))
	case key.Matches(msg, k.PasteClipboard):
		m.report(core.ErrClipboardId, m.paste(win, core.RegisterClipboard))

	case key.Matches(msg, k.Up):
		m.motion(win, func() error { return v.MoveUp(1) })
	case key.Matches(msg, k.Down):
		m.motion(win, func() error { return v.MoveDown(1) })
	case key.Matches(msg, k.Left):
		m.motion(win, func() error { return v.MoveLeft(1) })
	case key.Matches(msg, k.Right):
		m.motion(win, func() error { return v.MoveRight(1) })
	case key.Matches(msg, k.WordLeft):
		m.motion(win, func() error { return v.MoveWordBackward(1) })
	case key.Matches(msg, k.WordRight):
		m.motion(win, func() error { return v.MoveWordForward(1) })
	case key.Matches(msg, k.LineStart):
		m.motion(win, func() error { v.MoveLineStart(); return nil })
	case key.Matches(msg, k.LineEnd):
		m.motion(win, func() error { v.MoveLineEnd(); return nil })

	case key.Matches(msg, k.PageUp):
		win.JumplistAdd(v.Cursor())
		m.motion(win, v.PageUp)
	case key.Matches(msg, k.PageDown):
		win.JumplistAdd(v.Cursor())
		m.motion(win, v.PageDown)
	case key.Matches(msg, k.DocumentStart):
		win.JumplistAdd(v.Cursor())
		m.motion(win, func() error { v.MoveDocumentStart(); return nil })
	case key.Matches(msg, k.DocumentEnd):
		win.JumplistAdd(v.Cursor())
		m.motion(win, func() error { v.MoveDocumentEnd(); return nil })

	case key.Matches(msg, k.Backspace):
		ed.BackspaceKey()
	case key.Matches(msg, k.Delete):
		ed.DeleteKey()
	case key.Matches(msg, k.Newline):
		ed.InsertKey([]byte("\n"))
	case key.Matches(msg, k.Tab):
		m.typeText("\t")

	default:
		if msg.Text != "" {
			m.typeText(msg.Text)
		}
	}
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg) {
	ed := m.ed
	k := m.keys

	switch {
	case key.Matches(msg, k.Cancel):
		ed.PromptHide()
		return

	case key.Matches(msg, k.Accept):
		input := ed.PromptGet()
		kind := ed.PromptType()
		ed.PromptHide()
		switch kind {
		case ':':
			m.report(core.ErrInvalidCommandId, m.ExecuteCommand(input))
		case '/':
			m.report(core.ErrSearchId, m.search(input))
		}
		return

	case key.Matches(msg, k.Backspace):
		if ed.PromptGet() == "" {
			ed.PromptHide()
			return
		}
		ed.BackspaceKey()
		return
	}

	v, ok := ed.Prompt().View().(*view.View)
	if !ok {
		return
	}
	switch {
	case key.Matches(msg, k.Left):
		_ = v.MoveLeft(1)
	case key.Matches(msg, k.Right):
		_ = v.MoveRight(1)
	case key.Matches(msg, k.LineStart):
		v.MoveLineStart()
	case key.Matches(msg, k.LineEnd):
		v.MoveLineEnd()
	case key.Matches(msg, k.Delete):
		ed.DeleteKey()
	default:
		if msg.Text != "" {
			ed.InsertKey([]byte(msg.Text))
		}
	}
	ed.Prompt().UI().Draw()
}

func (m *Model) typeText(s string) {
	if m.replace {
		m.ed.ReplaceKey([]byte(s))
		return
	}
	m.ed.InsertKey([]byte(s))
}

// motion runs a cursor motion and redraws the window. Motions failing at
// the document bounds leave the cursor where it is.
func (m *Model) motion(win *core.Window, move func() error) {
	_ = move()
	win.UI().Draw()
}

func (m *Model) moveTo(win *core.Window, pos int) {
	if pos == core.EPOS {
		return
	}
	win.View().CursorTo(pos)
	win.UI().Draw()
}

// yank copies the cursor line, newline included, into register idx.
func (m *Model) yank(win *core.Window, idx int) error {
	t, ok := win.Text().(*text.Text)
	if !ok {
		return nil
	}
	cursor := win.View().Cursor()
	start := t.LineStart(cursor)
	end := min(t.LineEnd(cursor)+1, t.Size())
	line := t.Bytes()[start:end]

	if err := m.ed.Register(idx).Put(line, true); err != nil {
		return err
	}
	m.ed.InfoShow("%d bytes yanked", len(line))
	return nil
}

// paste inserts register idx at the cursor. Lines are put below the
// cursor line.
func (m *Model) paste(win *core.Window, idx int) error {
	reg := m.ed.Register(idx)
	data, err := reg.Get()
	if err != nil {
		return err
	}

	v := win.View()
	pos := v.Cursor()
	linewise := reg.Linewise()
	target := pos + len(data)
	if linewise {
		t, ok := win.Text().(*text.Text)
		if !ok {
			return nil
		}
		pos = t.LineEnd(pos)
		if pos < t.Size() {
			pos++
			target = pos
			if data[len(data)-1] != '\n' {
				data = append(data, '\n')
			}
		} else {
			// below a last line without newline
			target = pos + 1
			data = append([]byte("\n"), bytes.TrimSuffix(data, []byte("\n"))...)
		}
	}

	if err := m.ed.Insert(pos, data); err != nil {
		return err
	}
	v.CursorTo(target)
	return nil
}
