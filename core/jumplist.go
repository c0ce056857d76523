package core

// jumplistSize is the number of jumps remembered per window.
const jumplistSize = 31

// jumplist is a fixed size ring of marks. Adding to a full ring overwrites
// the oldest mark. The read cursor walks between the oldest and the newest
// entry; after an add it rests just past the newest one.
type jumplist struct {
	marks []Mark
	start int // Slot of the oldest mark
	count int // Number of marks stored
	cur   int // Read cursor, 0 is the oldest mark, count is past the newest
}

func newJumplist(size int) *jumplist {
	return &jumplist{marks: make([]Mark, size)}
}

func (j *jumplist) slot(i int) int {
	return (j.start + i) % len(j.marks)
}

func (j *jumplist) add(m Mark) {
	if j.count < len(j.marks) {
		j.marks[j.slot(j.count)] = m
		j.count++
	} else {
		j.marks[j.start] = m
		j.start = (j.start + 1) % len(j.marks)
	}
	j.cur = j.count
}

// prev steps towards older marks, NoMark once the oldest was passed.
func (j *jumplist) prev() Mark {
	if j.cur <= 0 {
		return NoMark
	}
	j.cur--
	return j.marks[j.slot(j.cur)]
}

// next steps towards newer marks, NoMark once the newest was reached.
func (j *jumplist) next() Mark {
	if j.cur+1 >= j.count {
		return NoMark
	}
	j.cur++
	return j.marks[j.slot(j.cur)]
}

func (j *jumplist) invalidate() {
	clear(j.marks)
	j.start, j.count, j.cur = 0, 0, 0
}

func (j *jumplist) len() int {
	return j.count
}

// JumplistAdd remembers pos of the window's document as a jump target.
func (w *Window) JumplistAdd(pos int) {
	mark := w.text.MarkSet(pos)
	if mark != NoMark && w.jumplist != nil {
		w.jumplist.add(mark)
	}
}

// JumplistPrev returns the closest older jump target that still exists and
// differs from the cursor, or the cursor itself if there is none.
func (w *Window) JumplistPrev() int {
	return w.jump(w.jumplist.prev)
}

// JumplistNext returns the closest newer jump target that still exists and
// differs from the cursor, or the cursor itself if there is none.
func (w *Window) JumplistNext() int {
	return w.jump(w.jumplist.next)
}

func (w *Window) jump(step func() Mark) int {
	cur := w.view.Cursor()
	if w.jumplist == nil {
		return cur
	}
	for {
		mark := step()
		if mark == NoMark {
			return cur
		}
		// skip marks whose text was deleted and jumps to where we are
		if pos := w.text.MarkGet(mark); pos != EPOS && pos != cur {
			return pos
		}
	}
}

// JumplistInvalidate forgets all jump targets.
func (w *Window) JumplistInvalidate() {
	if w.jumplist != nil {
		w.jumplist.invalidate()
	}
}
