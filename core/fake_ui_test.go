package core_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ionut-t/panes/core"
	"github.com/ionut-t/panes/text"
	"github.com/ionut-t/panes/view"
	"github.com/stretchr/testify/require"
)

var errFake = errors.New("fake failure")

// fakeWindow records how often it was redrawn.
type fakeWindow struct {
	view  *view.View
	draws int
	opts  core.Option
}

func (w *fakeWindow) View() core.View       { return w.view }
func (w *fakeWindow) Draw()                 { w.draws++ }
func (w *fakeWindow) Options(o core.Option) { w.opts = o }

// fakeUI records the calls made by the editor.
type fakeUI struct {
	ed *core.Editor

	windows []*fakeWindow
	freed   []*fakeWindow
	focused *fakeWindow
	prompt  *fakeWindow

	height int

	draws       int
	prompts     int
	promptTitle string
	info        string
	layout      core.Layout
	colors      [][2]string
	released    bool

	failWindow bool
	failPrompt bool
}

func newFakeUI() *fakeUI {
	return &fakeUI{height: 3}
}

func (u *fakeUI) Init(ed *core.Editor)       { u.ed = ed }
func (u *fakeUI) Free()                      { u.released = true }
func (u *fakeUI) Arrange(layout core.Layout) { u.layout = layout }
func (u *fakeUI) Resize()                    {}
func (u *fakeUI) Draw()                      { u.draws++ }
func (u *fakeUI) Update()                    {}
func (u *fakeUI) Suspend()                   {}

func (u *fakeUI) ColorGet(fg, bg string) int {
	u.colors = append(u.colors, [2]string{fg, bg})
	return len(u.colors)
}

func (u *fakeUI) newWindow(t core.Text) *fakeWindow {
	v := view.New(t)
	v.Resize(80, u.height)
	return &fakeWindow{view: v}
}

func (u *fakeUI) WindowNew(t core.Text) (core.UIWindow, error) {
	if u.failWindow {
		return nil, errFake
	}
	w := u.newWindow(t)
	u.windows = append(u.windows, w)
	return w, nil
}

func (u *fakeUI) WindowFree(w core.UIWindow) {
	u.freed = append(u.freed, w.(*fakeWindow))
}

func (u *fakeUI) WindowFocus(w core.UIWindow) {
	u.focused = w.(*fakeWindow)
}

func (u *fakeUI) PromptNew(t core.Text) (core.UIWindow, error) {
	if u.failPrompt {
		return nil, errFake
	}
	u.prompt = u.newWindow(t)
	return u.prompt, nil
}

func (u *fakeUI) Prompt(title, text string) {
	u.prompts++
	u.promptTitle = title
}

func (u *fakeUI) PromptInput() string { return string(u.prompt.view.Text().Bytes()) }
func (u *fakeUI) PromptHide()         { u.promptTitle = "" }
func (u *fakeUI) Info(msg string)     { u.info = msg }
func (u *fakeUI) InfoHide()           { u.info = "" }

// recordingProvider remembers every document it loaded.
type recordingProvider struct {
	text.Provider
	loaded []*text.Text
	fail   bool
}

func (p *recordingProvider) Load(filename string) (core.Text, error) {
	if p.fail {
		return nil, errFake
	}
	t, err := text.Load(filename)
	if err != nil {
		return nil, err
	}
	p.loaded = append(p.loaded, t)
	return t, nil
}

func (p *recordingProvider) LoadReader(r io.Reader) (core.Text, error) {
	t, err := text.LoadReader(r)
	if err != nil {
		return nil, err
	}
	p.loaded = append(p.loaded, t)
	return t, nil
}

func newEditor(t *testing.T) (*core.Editor, *fakeUI, *recordingProvider) {
	t.Helper()
	ui := newFakeUI()
	provider := &recordingProvider{}
	ed, err := core.New(ui, provider, core.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(ed.Free)
	return ed, ui, provider
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func viewOf(w *core.Window) *view.View {
	return w.View().(*view.View)
}

// drain returns the signals sent so far.
func drain(ed *core.Editor) []core.Signal {
	var signals []core.Signal
	for {
		select {
		case s := <-ed.Signals():
			signals = append(signals, s)
		default:
			return signals
		}
	}
}
