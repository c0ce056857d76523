package core

var (
	EmptyMessage          = ""
	WindowReloadedMessage = "window reloaded"
	TabWidthMessage       = "tab width changed"
	SyntaxLoadedMessage   = "syntax definitions loaded"
)

// DispatchMessage notifies consumers of a message. The first argument is
// the message id; an optional second argument overrides the text.
func (ed *Editor) DispatchMessage(args ...string) {
	if len(args) == 0 {
		return
	}
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case ed.signals <- MessageSignal{id, value}:
	default:
		log.Warning("signal channel is full, dropping message", "id", id)
	}
}
