package adapter_bubbletea

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/ionut-t/panes/adapter-bubbletea/highlighter"
	"github.com/ionut-t/panes/core"
	"github.com/ionut-t/panes/view"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("panes.ui")

type Theme struct {
	StatusLineStyle        lipgloss.Style
	ActiveStatusLineStyle  lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	CursorLineStyle        lipgloss.Style
	SeparatorStyle         lipgloss.Style
	PlaceholderStyle       lipgloss.Style
	WhitespaceStyle        lipgloss.Style
}

var DefaultTheme = Theme{
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250")),
	ActiveStatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	CursorLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("235")),
	SeparatorStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	PlaceholderStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	WhitespaceStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// UI is the core.UI implementation rendering windows with lipgloss.
// Drawing only marks windows dirty; frames are produced by Render.
type UI struct {
	ed     *core.Editor
	theme  Theme
	layout core.Layout

	width  int
	height int

	windows []*window // Creation order
	focused *window
	prompt  *window

	promptTitle string
	promptShown bool
	info        string
	infoIsError bool
	hint        string // Shown when there is no message

	pairs   []lipgloss.Style // Colour pairs, 0 is the terminal default
	pairIDs map[[2]string]int
	chroma  string // Theme used by lexer based definitions

	suspend bool
	frames  int
}

// NewUI creates a UI of the given size. chromaTheme names the chroma style
// used for definitions highlighted by a lexer.
func NewUI(width, height int, theme Theme, chromaTheme string) *UI {
	return &UI{
		theme:   theme,
		width:   width,
		height:  height,
		pairs:   []lipgloss.Style{lipgloss.NewStyle()},
		pairIDs: make(map[[2]string]int),
		chroma:  chromaTheme,
	}
}

func (u *UI) Init(ed *core.Editor) {
	u.ed = ed
}

func (u *UI) Free() {
	u.windows = nil
	u.focused = nil
	u.prompt = nil
	log.Debug("ui released")
}

// Arrange changes the layout and redistributes the screen.
func (u *UI) Arrange(layout core.Layout) {
	u.layout = layout
	u.Resize()
	u.Draw()
}

// SetSize changes the screen size.
func (u *UI) SetSize(width, height int) {
	u.width = max(width, 1)
	u.height = max(height, 2)
	u.Resize()
	u.Draw()
}

func (u *UI) Size() (width, height int) {
	return u.width, u.height
}

// Layout returns the current window layout.
func (u *UI) Layout() core.Layout {
	return u.layout
}

// Resize distributes the screen between the windows. Every window loses a
// row to its status line and the last row belongs to the prompt.
func (u *UI) Resize() {
	n := len(u.windows)
	if n == 0 {
		return
	}
	avail := u.height - 1
	for i, w := range u.ordered() {
		switch u.layout {
		case core.LayoutVertical:
			width := (u.width - (n - 1)) / n
			if i == 0 {
				width += (u.width - (n - 1)) % n
			}
			w.resize(width, avail)
		default:
			height := avail / n
			if i == 0 {
				height += avail % n
			}
			w.resize(u.width, height)
		}
	}
	if u.prompt != nil {
		u.prompt.resize(u.width, 2)
	}
}

// Draw marks every window for redrawing.
func (u *UI) Draw() {
	for _, w := range u.windows {
		w.Draw()
	}
}

// Update counts frames; the program's render loop flushes them.
func (u *UI) Update() {
	u.frames++
}

// Suspend asks the program to suspend after the current update.
func (u *UI) Suspend() {
	u.suspend = true
}

func (u *UI) takeSuspend() bool {
	s := u.suspend
	u.suspend = false
	return s
}

// ColorGet returns the pair for a foreground and background colour,
// allocating it on first use. Empty colours keep the terminal default.
func (u *UI) ColorGet(fg, bg string) int {
	key := [2]string{fg, bg}
	if id, ok := u.pairIDs[key]; ok {
		return id
	}
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	u.pairs = append(u.pairs, style)
	id := len(u.pairs) - 1
	u.pairIDs[key] = id
	return id
}

// palette returns the style of every entry of the editor's colour table.
func (u *UI) palette() []lipgloss.Style {
	if u.ed == nil {
		return nil
	}
	colors := u.ed.Colors()
	palette := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		pair := lipgloss.NewStyle()
		if c.Pair >= 0 && c.Pair < len(u.pairs) {
			pair = u.pairs[c.Pair]
		}
		palette[i] = highlighter.StyleFor(c, pair)
	}
	return palette
}

func (u *UI) WindowNew(t core.Text) (core.UIWindow, error) {
	w := newWindow(u, t)
	u.windows = append(u.windows, w)
	u.Resize()
	return w, nil
}

func (u *UI) WindowFree(uw core.UIWindow) {
	w, ok := uw.(*window)
	if !ok {
		return
	}
	if w == u.prompt {
		u.prompt = nil
		return
	}
	u.windows = slices.DeleteFunc(u.windows, func(x *window) bool { return x == w })
	if u.focused == w {
		u.focused = nil
	}
	u.Resize()
	u.Draw()
}

func (u *UI) WindowFocus(uw core.UIWindow) {
	w, ok := uw.(*window)
	if !ok {
		return
	}
	if u.focused != nil {
		u.focused.Draw()
	}
	u.focused = w
	w.Draw()
}

func (u *UI) PromptNew(t core.Text) (core.UIWindow, error) {
	u.prompt = newWindow(u, t)
	u.prompt.resize(u.width, 2)
	return u.prompt, nil
}

// Prompt shows the prompt with title, prefilled with text.
func (u *UI) Prompt(title, text string) {
	u.promptTitle = title
	u.promptShown = true
	u.info = ""
	u.setPromptText(text)
	if u.focused != nil {
		u.focused.Draw()
	}
}

// PromptInput returns the text typed into the prompt.
func (u *UI) PromptInput() string {
	if u.prompt == nil {
		return ""
	}
	return strings.TrimRight(string(u.prompt.view.Text().Bytes()), "\n")
}

func (u *UI) PromptHide() {
	u.promptShown = false
	u.promptTitle = ""
	u.setPromptText("")
	if u.focused != nil {
		u.focused.Draw()
	}
}

func (u *UI) setPromptText(s string) {
	if u.prompt == nil {
		return
	}
	t := u.prompt.view.Text()
	if err := t.Delete(0, t.Size()); err != nil {
		log.Errorf("clearing prompt: %v", err)
	}
	if s != "" {
		if err := t.Insert(0, []byte(s)); err != nil {
			log.Errorf("filling prompt: %v", err)
		}
	}
	u.prompt.view.CursorTo(len(s))
}

func (u *UI) Info(msg string) {
	u.info = msg
	u.infoIsError = false
}

// Error shows msg in the info line using the error style.
func (u *UI) Error(msg string) {
	u.info = msg
	u.infoIsError = true
}

func (u *UI) InfoHide() {
	u.info = ""
	u.infoIsError = false
}

// ordered returns the windows in the order they are shown, oldest first.
func (u *UI) ordered() []*window {
	if u.ed == nil {
		return u.windows
	}
	var ordered []*window
	wins := u.ed.Windows()
	for i := len(wins) - 1; i >= 0; i-- {
		if w, ok := wins[i].UI().(*window); ok && slices.Contains(u.windows, w) {
			ordered = append(ordered, w)
		}
	}
	// windows the registry does not know yet, e.g. while being created
	for _, w := range u.windows {
		if !slices.Contains(ordered, w) {
			ordered = append(ordered, w)
		}
	}
	return ordered
}

// Render returns the whole screen.
func (u *UI) Render() string {
	var panes []string
	for _, w := range u.ordered() {
		panes = append(panes, w.render(w == u.focused && !u.promptShown))
	}

	var body string
	switch {
	case len(panes) == 0:
		body = u.theme.PlaceholderStyle.Render(strings.Repeat("\n", max(u.height-2, 0)))
	case u.layout == core.LayoutVertical:
		sep := u.theme.SeparatorStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", u.height-1), "\n"))
		parts := make([]string, 0, 2*len(panes)-1)
		for i, p := range panes {
			if i > 0 {
				parts = append(parts, sep)
			}
			parts = append(parts, p)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, panes...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, u.bottomLine())
}

func (u *UI) bottomLine() string {
	switch {
	case u.promptShown && u.prompt != nil:
		return u.theme.CommandLineStyle.Render(u.promptTitle) + u.prompt.renderPrompt(u.width-len(u.promptTitle))
	case u.info != "" && u.infoIsError:
		return u.theme.ErrorStyle.MaxWidth(u.width).Render(u.info)
	case u.info != "":
		return u.theme.MessageStyle.MaxWidth(u.width).Render(u.info)
	}
	return lipgloss.NewStyle().MaxWidth(u.width).Render(u.hint)
}

// window is the UI side of a core window.
type window struct {
	ui    *UI
	view  *view.View
	opts  core.Option
	cols  int // Cells including gutter
	rows  int // Rows including status line
	dirty bool
	frame string

	hl *highlighter.Highlighter
}

func newWindow(u *UI, t core.Text) *window {
	return &window{ui: u, view: view.New(t), dirty: true}
}

func (w *window) View() core.View {
	return w.view
}

// Draw marks the window for redrawing.
func (w *window) Draw() {
	w.dirty = true
	if w.hl != nil {
		w.hl.InvalidateCache()
	}
}

func (w *window) Options(opts core.Option) {
	w.opts = opts
	w.resize(w.cols, w.rows)
	w.Draw()
}

func (w *window) Dirty() bool {
	return w.dirty
}

// resize gives the window width x height cells, status line included.
func (w *window) resize(width, height int) {
	w.cols = max(width, 1)
	w.rows = max(height, 2)
	w.view.Resize(max(w.cols-w.gutterWidth(), 1), w.rows-1)
	w.dirty = true
}

func (w *window) gutterWidth() int {
	if w.opts&(core.OptionLineNumbersAbsolute|core.OptionLineNumbersRelative) == 0 {
		return 0
	}
	return 5
}

func (w *window) highlighter() *highlighter.Highlighter {
	s := w.view.Syntax()
	if w.hl == nil || w.hl.Syntax() != s {
		w.hl = highlighter.New(s, w.ui.palette(), w.ui.chroma)
	}
	return w.hl
}
