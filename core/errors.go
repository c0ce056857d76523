package core

import (
	"errors"
)

var (
	ErrNoWindow      = errors.New("no active window")
	ErrNoFilename    = errors.New("document has no filename")
	ErrLoadFailed    = errors.New("cannot load document")
	ErrWindowFailed  = errors.New("cannot create window")
	ErrPromptFailed  = errors.New("cannot create prompt")
	ErrSearchFailed  = errors.New("cannot create search pattern")
	ErrSyntaxFailed  = errors.New("syntax definitions failed to compile")
	ErrNoUI          = errors.New("no user interface")
	ErrEmptyRegister = errors.New("register is empty")
)

type ErrorId int

const (
	ErrNoWindowId ErrorId = iota
	ErrNoFilenameId
	ErrLoadFailedId
	ErrWindowFailedId
	ErrSyntaxFailedId
	ErrReloadFailedId
	ErrClipboardId
	ErrInvalidCommandId
	ErrSearchId
)

type Error struct {
	id  ErrorId
	err error
}

func (e *Error) ID() ErrorId {
	return e.id
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// DispatchError notifies consumers of err without blocking.
func (ed *Editor) DispatchError(id ErrorId, err error) {
	select {
	case ed.signals <- ErrorSignal{id, err}:
	default:
		log.Warning("signal channel is full, dropping error", "error", err.Error())
	}
}
