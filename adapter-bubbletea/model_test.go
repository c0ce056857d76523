package adapter_bubbletea

import (
	"errors"
	"os"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/ionut-t/panes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(r rune) tea.KeyPressMsg {
	if r == ' ' {
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrl(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

func alt(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModAlt}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m = send(m, press(r))
	}
	return m
}

func content(m Model) string {
	return string(m.Editor().Window().Text().Bytes())
}

func cursor(m Model) int {
	return m.Editor().Window().View().Cursor()
}

// errorSignals drains the signal channel and returns the errors on it.
func errorSignals(m Model) []core.ErrorSignal {
	var errs []core.ErrorSignal
	for {
		select {
		case s := <-m.Editor().Signals():
			if e, ok := s.(core.ErrorSignal); ok {
				errs = append(errs, e)
			}
		default:
			return errs
		}
	}
}

func TestTypingAndReplaceMode(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open())

	m = typeString(m, "ab")
	assert.Equal(t, "ab", content(m))
	assert.Equal(t, 2, cursor(m))

	m = send(m, special(tea.KeyHome), special(tea.KeyInsert), press('X'))
	assert.Equal(t, "Xb", content(m))

	m = send(m, special(tea.KeyBackspace))
	assert.Equal(t, "b", content(m))

	m = send(m, special(tea.KeyInsert), special(tea.KeyEnter), special(tea.KeyTab))
	assert.Equal(t, "\n\tb", content(m))
}

func TestMotions(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "one two\nthree\n")))

	m = send(m, ctrl(tea.KeyRight))
	assert.Equal(t, 4, cursor(m))

	m = send(m, special(tea.KeyDown))
	assert.Equal(t, 12, cursor(m))

	m = send(m, special(tea.KeyEnd))
	assert.Equal(t, 13, cursor(m))

	m = send(m, ctrl(tea.KeyHome))
	assert.Equal(t, 0, cursor(m))

	// the document start jump was remembered
	m = send(m, alt(tea.KeyLeft))
	assert.Equal(t, 13, cursor(m))
}

func TestPromptCommand(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "x\n")))
	ed := m.Editor()

	m = send(m, ctrl('e'))
	require.True(t, ed.PromptShown())
	assert.Equal(t, byte(':'), ed.PromptType())

	m = typeString(m, "set nu")
	assert.Contains(t, ansi.Strip(m.UI().Render()), ":set nu")

	m = send(m, special(tea.KeyEnter))
	assert.False(t, ed.PromptShown())
	assert.NotZero(t, windowOf(ed.Window()).opts&core.OptionLineNumbersAbsolute)
}

func TestPromptCancel(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "x\n")))
	ed := m.Editor()
	win := ed.Window()

	m = send(m, ctrl('e'))
	m = typeString(m, "q")
	m = send(m, special(tea.KeyEscape))

	assert.False(t, ed.PromptShown())
	assert.Same(t, win, ed.Window())
	assert.Len(t, ed.Windows(), 1)

	// backspace on an empty prompt closes it
	m = send(m, ctrl('e'), special(tea.KeyBackspace))
	assert.False(t, ed.PromptShown())
}

func TestPromptInvalidCommand(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "x\n")))
	errorSignals(m)

	m = send(m, ctrl('e'))
	m = typeString(m, "bogus")
	send(m, special(tea.KeyEnter))

	errs := errorSignals(m)
	require.Len(t, errs, 1)
	id, err := errs[0].Value()
	assert.Equal(t, core.ErrInvalidCommandId, id)
	assert.ErrorIs(t, err, ErrInvalidCommand)
}

func TestSearch(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "foo bar foo\n")))

	m = send(m, ctrl('f'))
	m = typeString(m, "foo")
	m = send(m, special(tea.KeyEnter))
	assert.Equal(t, 8, cursor(m))

	// wraps around
	m = send(m, ctrl('g'))
	assert.Equal(t, 0, cursor(m))

	m = send(m, alt(tea.KeyLeft))
	assert.Equal(t, 8, cursor(m))

	errorSignals(m)
	m = send(m, ctrl('f'))
	m = typeString(m, "nothing")
	send(m, special(tea.KeyEnter))

	errs := errorSignals(m)
	require.Len(t, errs, 1)
	id, err := errs[0].Value()
	assert.Equal(t, core.ErrSearchId, id)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestYankAndPaste(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "one\ntwo")))

	m = send(m, ctrl('y'), ctrl('v'))
	assert.Equal(t, "one\none\ntwo", content(m))
	assert.Equal(t, 4, cursor(m))

	m = send(m, ctrl(tea.KeyEnd), ctrl('y'), ctrl('v'))
	assert.Equal(t, "one\none\ntwo\ntwo", content(m))
	assert.Equal(t, 12, cursor(m))

	// the clipboard register without a system clipboard
	m = send(m, ctrl(tea.KeyHome), alt('y'), alt('v'))
	assert.Equal(t, "one\none\none\ntwo\ntwo", content(m))
}

func TestPasteEmptyRegister(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open())
	errorSignals(m)

	send(m, ctrl('v'))

	errs := errorSignals(m)
	require.Len(t, errs, 1)
	_, err := errs[0].Value()
	assert.ErrorIs(t, err, core.ErrEmptyRegister)
}

func TestChangelistKeys(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "abc\ndef\n")))
	ed := m.Editor()

	require.NoError(t, ed.Insert(1, []byte("x")))
	require.NoError(t, ed.Insert(6, []byte("y")))

	m = send(m, alt(tea.KeyUp))
	assert.Equal(t, 6, cursor(m))
	m = send(m, alt(tea.KeyUp))
	assert.Equal(t, 1, cursor(m))
	m = send(m, alt(tea.KeyDown))
	assert.Equal(t, 6, cursor(m))
}

func TestWindowKeys(t *testing.T) {
	m := newTestModel(t, 40, 20)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "a\n")))
	ed := m.Editor()
	first := ed.Window()

	m = send(m, ctrl('t'))
	require.Len(t, ed.Windows(), 2)
	second := ed.Window()
	assert.NotSame(t, first, second)
	assert.Same(t, first.Text(), second.Text())

	m = send(m, ctrl('n'))
	assert.Same(t, first, ed.Window())
	m = send(m, ctrl('b'))
	assert.Same(t, second, ed.Window())

	m = send(m, ctrl('x'))
	assert.Len(t, ed.Windows(), 1)
	assert.Same(t, first, ed.Window())
}

func TestSaveKey(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "a\n")))

	m = typeString(m, "b")
	send(m, ctrl('s'))

	data, err := os.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "ba\n", string(data))
	assert.Contains(t, ansi.Strip(m.UI().bottomLine()), "a.txt written")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open(writeFile(t, "a.txt", "a\n")))
	ed := m.Editor()

	m = typeString(m, "b")
	errorSignals(m)
	m = send(m, ctrl('q'))
	assert.Len(t, ed.Windows(), 1)
	errs := errorSignals(m)
	require.Len(t, errs, 1)
	_, err := errs[0].Value()
	assert.ErrorIs(t, err, ErrUnsavedChanges)

	send(m, ctrl('s'), ctrl('q'))
	assert.Empty(t, ed.Windows())

	var quit bool
	for len(ed.Signals()) > 0 {
		if _, ok := (<-ed.Signals()).(core.QuitSignal); ok {
			quit = true
		}
	}
	assert.True(t, quit)
}

func TestSuspendKey(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open())

	_, cmd := m.Update(ctrl('z'))
	require.NotNil(t, cmd)
	assert.False(t, m.UI().takeSuspend())
}

func TestSignalMessages(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open())

	m = send(m, ErrorMsg{ID: core.ErrLoadFailedId, Error: errors.New("boom")})
	assert.Equal(t, "boom", m.UI().info)
	assert.True(t, m.UI().infoIsError)

	m = send(m, MessageMsg{ID: "id", Message: "hello"})
	assert.Equal(t, "hello", m.UI().info)
	assert.False(t, m.UI().infoIsError)

	m = send(m, clearMsg{})
	assert.Empty(t, m.UI().info)

	_, cmd := m.Update(QuitMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestListenForEditorUpdate(t *testing.T) {
	m := newTestModel(t, 40, 10)
	for len(m.Editor().Signals()) > 0 {
		<-m.Editor().Signals()
	}

	m.Editor().DispatchMessage(core.TabWidthMessage, "tab width set to 4")
	msg := m.listenForEditorUpdate()()
	assert.Equal(t, MessageMsg{ID: core.TabWidthMessage, Message: "tab width set to 4"}, msg)

	m.Editor().DispatchError(core.ErrNoWindowId, core.ErrNoWindow)
	msg = m.listenForEditorUpdate()()
	assert.Equal(t, ErrorMsg{ID: core.ErrNoWindowId, Error: core.ErrNoWindow}, msg)

	require.NoError(t, m.Open())
	msg = m.listenForEditorUpdate()()
	assert.IsType(t, WindowOpenedMsg{}, msg)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, 40, 10)
	require.NoError(t, m.Open())

	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 20})

	width, height := m.UI().Size()
	assert.Equal(t, 60, width)
	assert.Equal(t, 20, height)
	assert.Equal(t, 19, windowOf(m.Editor().Window()).rows)
}
