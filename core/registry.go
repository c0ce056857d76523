package core

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ionut-t/panes/syntax"
)

// retain records one more window referencing t.
func (ed *Editor) retain(t Text) {
	ed.texts[t]++
}

// release drops a window's reference to t and closes the document once
// no window references it any more.
func (ed *Editor) release(t Text) {
	if t == nil {
		return
	}
	if n := ed.texts[t] - 1; n > 0 {
		ed.texts[t] = n
		return
	}
	delete(ed.texts, t)
	if err := t.Close(); err != nil {
		log.Errorf("closing document %q: %v", t.Filename(), err)
	}
	log.Debugf("document %q released", t.Filename())
}

// References returns the number of windows, the prompt included,
// showing t.
func (ed *Editor) References(t Text) int {
	return ed.texts[t]
}

func (ed *Editor) indexOf(win *Window) int {
	return slices.Index(ed.windows, win)
}

// windowNew creates a window for t, links it at the head of the registry
// and makes it the active window. If the UI cannot bind the window the
// reference to t is dropped again, which closes t unless another window
// still shows it.
func (ed *Editor) windowNew(t Text) (*Window, error) {
	ed.lastID++
	win := &Window{
		editor:     ed,
		id:         ed.lastID,
		text:       t,
		jumplist:   newJumplist(jumplistSize),
		changelist: newChangelist(),
	}
	ed.retain(t)

	ui, err := ed.ui.WindowNew(t)
	if err != nil || ui == nil {
		ed.windowFree(win)
		return nil, &Error{id: ErrWindowFailedId, err: fmt.Errorf("%w: %v", ErrWindowFailed, err)}
	}
	win.ui = ui
	win.view = ui.View()
	win.view.SetTabWidth(ed.tabwidth)

	ed.windows = slices.Insert(ed.windows, 0, win)
	ed.win = win
	ed.ui.WindowFocus(win.ui)

	return win, nil
}

func (ed *Editor) windowFree(win *Window) {
	if win == nil {
		return
	}
	if win.ui != nil {
		ed.ui.WindowFree(win.ui)
		win.ui = nil
	}
	win.jumplist = nil
	ed.release(win.text)
	win.text = nil
}

// WindowNew opens filename in a new window. A file already shown in
// another window is shared rather than loaded again, and the new window
// starts with that window's syntax and cursor. A filename that does not
// exist yet opens an empty document carrying that name; an empty filename
// opens an unnamed document.
func (ed *Editor) WindowNew(filename string) (*Window, error) {
	var original *Window
	if filename != "" {
		for _, w := range ed.windows {
			if f := w.text.Filename(); f != "" && f == filename {
				original = w
				break
			}
		}
	}

	var text Text
	if original != nil {
		text = original.text
	} else {
		path := ""
		if filename != "" && exists(filename) {
			path = filename
		}
		t, err := ed.provider.Load(path)
		if err != nil {
			return nil, &Error{id: ErrLoadFailedId, err: fmt.Errorf("%w: %s: %v", ErrLoadFailed, filename, err)}
		}
		text = t
	}

	win, err := ed.windowNew(text)
	if err != nil {
		return nil, err
	}

	if original != nil {
		win.view.SetSyntax(original.view.Syntax())
		win.view.CursorTo(original.view.Cursor())
	} else if filename != "" {
		text.SetFilename(filename)
		if s := syntax.Detect(ed.syntaxes, filename); s != nil {
			win.view.SetSyntax(s)
		}
	}

	log.Debugf("window %d: opened %q", win.id, filename)
	ed.DispatchSignal(WindowOpenedSignal{id: win.id, filename: filename})
	ed.Draw()

	return win, nil
}

// WindowNewReader opens a new window on a document read from r.
// No syntax is detected for such documents.
func (ed *Editor) WindowNewReader(r io.Reader) (*Window, error) {
	text, err := ed.provider.LoadReader(r)
	if err != nil {
		return nil, &Error{id: ErrLoadFailedId, err: fmt.Errorf("%w: %v", ErrLoadFailed, err)}
	}
	win, err := ed.windowNew(text)
	if err != nil {
		return nil, err
	}

	log.Debugf("window %d: opened stream", win.id)
	ed.DispatchSignal(WindowOpenedSignal{id: win.id})
	ed.Draw()

	return win, nil
}

// WindowSplit opens a new window on the document of original.
func (ed *Editor) WindowSplit(original *Window) (*Window, error) {
	win, err := ed.windowNew(original.text)
	if err != nil {
		return nil, err
	}
	win.view.SetSyntax(original.view.Syntax())
	win.view.CursorTo(original.view.Cursor())

	log.Debugf("window %d: split from %d", win.id, original.id)
	ed.DispatchSignal(WindowOpenedSignal{id: win.id, filename: win.text.Filename()})
	ed.Draw()

	return win, nil
}

// WindowClose unlinks win from the registry. If it was active, its
// successor becomes active, or its predecessor if it was the last one.
// The document is closed once no other window shows it.
func (ed *Editor) WindowClose(win *Window) {
	idx := ed.indexOf(win)
	if idx < 0 {
		return
	}
	ed.windows = slices.Delete(ed.windows, idx, idx+1)

	var replacement *Window
	if idx < len(ed.windows) {
		replacement = ed.windows[idx]
	} else if idx > 0 {
		replacement = ed.windows[idx-1]
	}
	if ed.win == win {
		ed.win = replacement
	}
	if ed.promptSaved == win {
		ed.promptSaved = replacement
	}
	if ed.win != nil {
		ed.ui.WindowFocus(ed.win.ui)
	}

	id := win.id
	ed.windowFree(win)
	log.Debugf("window %d: closed", id)
	ed.DispatchSignal(WindowClosedSignal{id: id})

	if ed.win != nil {
		ed.Draw()
	}
	if len(ed.windows) == 0 {
		ed.DispatchSignal(QuitSignal{})
	}
}

// WindowNext activates the window after the active one, wrapping around
// to the first window.
func (ed *Editor) WindowNext() {
	idx := ed.indexOf(ed.win)
	if idx < 0 {
		return
	}
	ed.win = ed.windows[(idx+1)%len(ed.windows)]
	ed.ui.WindowFocus(ed.win.ui)
}

// WindowPrev activates the window before the active one, wrapping around
// to the last window.
func (ed *Editor) WindowPrev() {
	idx := ed.indexOf(ed.win)
	if idx < 0 {
		return
	}
	ed.win = ed.windows[(idx-1+len(ed.windows))%len(ed.windows)]
	ed.ui.WindowFocus(ed.win.ui)
}

func exists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
