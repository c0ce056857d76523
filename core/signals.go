package core

type Signal any

type WindowOpenedSignal struct {
	id       int
	filename string
}

func (s WindowOpenedSignal) Value() (id int, filename string) {
	return s.id, s.filename
}

type WindowClosedSignal struct {
	id int
}

func (s WindowClosedSignal) Value() int {
	return s.id
}

// QuitSignal is sent once the last window is closed.
type QuitSignal struct{}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type ErrorSignal struct {
	id  ErrorId
	err error
}

func (e ErrorSignal) Value() (id ErrorId, err error) {
	return e.id, e.err
}

// Signals returns the channel on which the editor notifies consumers.
func (ed *Editor) Signals() <-chan Signal {
	return ed.signals
}

func (ed *Editor) DispatchSignal(signal Signal) {
	select {
	case ed.signals <- signal:
	default: // Ignore if the channel is full
		log.Debugf("signal channel is full, dropping %T", signal)
	}
}
