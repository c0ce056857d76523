package core

// changelist is a window's position in the document's edit history.
type changelist struct {
	index int // Depth into the history, 0 is the most recent edit
	pos   int // Position returned by the last navigation
}

func newChangelist() changelist {
	return changelist{index: 0, pos: EPOS}
}

// ChangelistPrev returns the position of an older edit. If the cursor was
// moved since the last call, navigation restarts at the most recent edit.
// When the history is exhausted the last position is returned again.
func (w *Window) ChangelistPrev() int {
	c := &w.changelist
	stepped := false
	if w.view.Cursor() != c.pos {
		c.index = 0
	} else {
		c.index++
		stepped = true
	}

	pos := w.text.HistoryGet(c.index)
	if pos == EPOS {
		if stepped {
			c.index--
		}
	} else {
		c.pos = pos
	}
	return c.pos
}

// ChangelistNext returns the position of a more recent edit. If the cursor
// was moved since the last call, navigation restarts at the most recent
// edit.
func (w *Window) ChangelistNext() int {
	c := &w.changelist
	stepped := false
	if w.view.Cursor() != c.pos {
		c.index = 0
	} else if c.index > 0 {
		c.index--
		stepped = true
	}

	pos := w.text.HistoryGet(c.index)
	if pos == EPOS {
		if stepped {
			c.index++
		}
	} else {
		c.pos = pos
	}
	return c.pos
}
