package core

import "fmt"

// TabWidth returns the tab width applied to new windows.
func (ed *Editor) TabWidth() int {
	return ed.tabwidth
}

// SetTabWidth changes the tab width of every window. Widths outside 1-8
// are ignored.
func (ed *Editor) SetTabWidth(width int) {
	if width < 1 || width > 8 {
		return
	}
	for _, w := range ed.windows {
		w.view.SetTabWidth(width)
	}
	ed.tabwidth = width
	ed.DispatchMessage(TabWidthMessage, fmt.Sprintf("tab width set to %d", width))
}
