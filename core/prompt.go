package core

import (
	"fmt"
)

func (ed *Editor) promptNew() error {
	text, err := ed.provider.Load("")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPromptFailed, err)
	}
	prompt := &Window{
		editor:     ed,
		text:       text,
		changelist: newChangelist(),
	}
	ed.retain(text)

	ui, err := ed.ui.PromptNew(text)
	if err != nil || ui == nil {
		ed.windowFree(prompt)
		return fmt.Errorf("%w: %v", ErrPromptFailed, err)
	}
	prompt.ui = ui
	prompt.view = ui.View()
	ed.prompt = prompt

	return nil
}

// PromptShow replaces the active window by the prompt window. The first
// character of title identifies what the input is for. Showing an already
// visible prompt does nothing.
func (ed *Editor) PromptShow(title, text string) {
	if ed.promptShown {
		return
	}
	ed.promptShown = true
	ed.promptSaved = ed.win
	ed.win = ed.prompt
	ed.promptType = 0
	if title != "" {
		ed.promptType = title[0]
	}
	ed.ui.Prompt(title, text)
}

// PromptHide restores the window that was active before the prompt.
func (ed *Editor) PromptHide() {
	if !ed.promptShown {
		return
	}
	ed.ui.PromptHide()
	ed.win = ed.promptSaved
	ed.promptSaved = nil
	ed.promptShown = false
}

// PromptGet returns the current prompt input.
func (ed *Editor) PromptGet() string {
	return ed.ui.PromptInput()
}

func (ed *Editor) PromptShown() bool {
	return ed.promptShown
}

// PromptType returns the first character of the title the prompt was
// shown with.
func (ed *Editor) PromptType() byte {
	return ed.promptType
}

// Prompt returns the dedicated prompt window.
func (ed *Editor) Prompt() *Window {
	return ed.prompt
}
