package core

import (
	"errors"
	"fmt"

	"github.com/ionut-t/panes/syntax"
)

// SyntaxLoad registers syntax definitions and their colour table. Colour
// pairs are allocated from the UI and every pattern is compiled. Patterns
// that fail to compile are reported together in the returned error, while
// all others stay usable.
func (ed *Editor) SyntaxLoad(syntaxes []*syntax.Syntax, colors []syntax.Color) error {
	ed.syntaxes = syntaxes
	ed.colors = colors

	for i := range colors {
		c := &colors[i]
		if c.Attr == 0 {
			c.Attr = syntax.AttrNormal
		}
		c.Pair = ed.ui.ColorGet(c.Fg, c.Bg)
	}

	var errs []error
	for _, s := range syntaxes {
		if err := s.Compile(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", ErrSyntaxFailed, errors.Join(errs...))
		log.Warningf("%d syntax definition(s) failed to compile", len(errs))
		ed.DispatchError(ErrSyntaxFailedId, err)
		return err
	}

	ed.DispatchMessage(SyntaxLoadedMessage)
	return nil
}

// SyntaxUnload releases every compiled pattern. It is safe to call when no
// definitions are loaded.
func (ed *Editor) SyntaxUnload() {
	for _, s := range ed.syntaxes {
		s.Release()
	}
	ed.syntaxes = nil
}

// Syntaxes returns the loaded definitions in detection order.
func (ed *Editor) Syntaxes() []*syntax.Syntax {
	return ed.syntaxes
}

// Colors returns the loaded colour table.
func (ed *Editor) Colors() []syntax.Color {
	return ed.colors
}
