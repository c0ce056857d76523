package core

// replaceSlack widens the invalidated range of replace and delete edits
// whose exact width is unknown at the call site.
const replaceSlack = 6

// viewports returns the visible range of every other window showing the
// active window's document. It is taken before an edit so ranges are
// compared with what those windows currently display.
func (ed *Editor) viewports() map[*Window]Range {
	active := ed.win
	shown := make(map[*Window]Range)
	for _, w := range ed.windows {
		if w == active || w.text != active.text {
			continue
		}
		shown[w] = w.view.Viewport()
	}
	return shown
}

// windowsInvalidate redraws the windows affected by an edit of [start, end)
// in the active window's document: the active window itself and every other
// window on the same document whose viewport contained start or end.
func (ed *Editor) windowsInvalidate(shown map[*Window]Range, start, end int) {
	for _, w := range ed.windows {
		view, ok := shown[w]
		if !ok {
			continue
		}
		if view.Contains(start) || view.Contains(end) {
			w.ui.Draw()
		}
	}
	ed.win.ui.Draw()
}

// InsertKey inserts data at the cursor of the active window.
func (ed *Editor) InsertKey(data []byte) {
	if ed.win == nil {
		return
	}
	shown := ed.viewports()
	view := ed.win.view
	start := view.Cursor()
	view.InsertKey(data)
	ed.windowsInvalidate(shown, start, start+len(data))
}

// ReplaceKey overwrites the character under the cursor with data.
func (ed *Editor) ReplaceKey(data []byte) {
	if ed.win == nil {
		return
	}
	shown := ed.viewports()
	view := ed.win.view
	start := view.Cursor()
	view.ReplaceKey(data)
	ed.windowsInvalidate(shown, start, start+replaceSlack)
}

// BackspaceKey deletes the character before the cursor.
func (ed *Editor) BackspaceKey() {
	if ed.win == nil {
		return
	}
	shown := ed.viewports()
	view := ed.win.view
	end := view.Cursor()
	start := view.BackspaceKey()
	ed.windowsInvalidate(shown, start, end)
}

// DeleteKey deletes the character under the cursor.
func (ed *Editor) DeleteKey() {
	if ed.win == nil {
		return
	}
	shown := ed.viewports()
	start := ed.win.view.DeleteKey()
	ed.windowsInvalidate(shown, start, start+replaceSlack)
}

// Insert inserts data at pos of the active window's document.
func (ed *Editor) Insert(pos int, data []byte) error {
	if ed.win == nil {
		return ErrNoWindow
	}
	shown := ed.viewports()
	if err := ed.win.text.Insert(pos, data); err != nil {
		return err
	}
	ed.windowsInvalidate(shown, pos, pos+len(data))
	return nil
}

// Delete removes length bytes at pos of the active window's document.
func (ed *Editor) Delete(pos, length int) error {
	if ed.win == nil {
		return ErrNoWindow
	}
	shown := ed.viewports()
	if err := ed.win.text.Delete(pos, length); err != nil {
		return err
	}
	ed.windowsInvalidate(shown, pos, pos+length)
	return nil
}
