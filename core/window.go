package core

import (
	"fmt"
)

// A Window is a view of a document. Several windows may show the same
// document; each one has its own cursor, jumplist and changelist.
type Window struct {
	editor     *Editor
	id         int
	text       Text
	ui         UIWindow
	view       View
	jumplist   *jumplist
	changelist changelist
}

func (w *Window) ID() int {
	return w.id
}

func (w *Window) Text() Text {
	return w.text
}

func (w *Window) View() View {
	return w.view
}

func (w *Window) UI() UIWindow {
	return w.ui
}

// Name returns the filename of the window's document, or a placeholder
// for unnamed documents.
func (w *Window) Name() string {
	if name := w.text.Filename(); name != "" {
		return name
	}
	return "[No Name]"
}

// SetOptions changes how the window is displayed.
func (w *Window) SetOptions(opts Option) {
	w.ui.Options(opts)
}

// Reload replaces the window's document with a fresh copy read from disk.
// Documents without a filename cannot be reloaded. If reading fails the
// window keeps its current document.
func (w *Window) Reload() error {
	ed := w.editor
	filename := w.text.Filename()
	if filename == "" {
		return &Error{id: ErrNoFilenameId, err: ErrNoFilename}
	}

	text, err := ed.provider.Load(filename)
	if err != nil {
		return &Error{
			id:  ErrReloadFailedId,
			err: fmt.Errorf("%w: %s: %v", ErrLoadFailed, filename, err),
		}
	}
	text.SetFilename(filename)

	old := w.text
	ed.retain(text)
	w.text = text
	ed.release(old)

	w.view.Reload(text)
	// marks and history belong to the replaced document
	w.JumplistInvalidate()
	w.changelist = newChangelist()

	log.Debugf("window %d: reloaded %s", w.id, filename)
	ed.DispatchMessage(WindowReloadedMessage, fmt.Sprintf("%s reloaded", filename))

	return nil
}
