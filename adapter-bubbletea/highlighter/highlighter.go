package highlighter

import (
	"sync"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/ionut-t/panes/syntax"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("panes.ui")

// None marks a byte without highlighting.
const None = -1

// Highlighter paints document bytes with palette indices, either from a
// chroma lexer or from the rules of a syntax definition.
type Highlighter struct {
	syntax  *syntax.Syntax
	lexer   chroma.Lexer
	style   *chroma.Style
	palette []lipgloss.Style

	tokenStyles map[chroma.TokenType]int // Palette index of each token type
	cache       []int                    // Paint of the whole document, chroma only
	cacheMutex  sync.Mutex
}

// New creates a highlighter for s. Rules refer to palette entries by their
// colour index. Definitions naming a lexer are tokenised by chroma using
// theme instead.
func New(s *syntax.Syntax, palette []lipgloss.Style, theme string) *Highlighter {
	h := &Highlighter{
		syntax:      s,
		palette:     append([]lipgloss.Style(nil), palette...),
		tokenStyles: make(map[chroma.TokenType]int),
	}
	if s != nil && s.Lexer != "" {
		if lexer := lexers.Get(s.Lexer); lexer != nil {
			h.lexer = chroma.Coalesce(lexer)
			h.style = styles.Get(theme)
		} else {
			log.Warningf("no lexer %q for syntax %s, using rules", s.Lexer, s.Name)
		}
	}
	return h
}

// Syntax returns the definition the highlighter was created for.
func (h *Highlighter) Syntax() *syntax.Syntax {
	return h.syntax
}

// Style returns the style of a palette index.
func (h *Highlighter) Style(i int) (lipgloss.Style, bool) {
	if i < 0 || i >= len(h.palette) {
		return lipgloss.Style{}, false
	}
	return h.palette[i], true
}

// InvalidateCache drops cached tokens. Call it when the document changed.
func (h *Highlighter) InvalidateCache() {
	h.cacheMutex.Lock()
	defer h.cacheMutex.Unlock()
	h.cache = nil
}

// Paint returns one palette index per byte of content[from:to], None for
// unhighlighted bytes.
func (h *Highlighter) Paint(content []byte, from, to int) []int {
	from = min(max(from, 0), len(content))
	to = min(max(to, from), len(content))

	paint := make([]int, to-from)
	for i := range paint {
		paint[i] = None
	}
	if h.syntax == nil {
		return paint
	}

	if h.lexer != nil {
		copy(paint, h.tokenise(content)[from:to])
		return paint
	}

	// later rules paint over earlier ones
	text := string(content[from:to])
	offsets := runeOffsets(text)
	for i := range h.syntax.Rules {
		rule := &h.syntax.Rules[i]
		re := rule.Regex()
		if re == nil {
			continue
		}
		m, err := re.FindStringMatch(text)
		for m != nil && err == nil {
			if m.Length > 0 {
				for j := offsets[m.Index]; j < offsets[m.Index+m.Length]; j++ {
					paint[j] = rule.Color
				}
			}
			m, err = re.FindNextMatch(m)
		}
		if err != nil {
			log.Debugf("syntax %s: rule %q: %v", h.syntax.Name, rule.Pattern, err)
		}
	}
	return paint
}

// tokenise paints the whole document with chroma token styles.
func (h *Highlighter) tokenise(content []byte) []int {
	h.cacheMutex.Lock()
	defer h.cacheMutex.Unlock()

	if h.cache != nil && len(h.cache) == len(content) {
		return h.cache
	}

	paint := make([]int, len(content))
	for i := range paint {
		paint[i] = None
	}
	h.cache = paint

	iterator, err := h.lexer.Tokenise(nil, string(content))
	if err != nil {
		log.Debugf("tokenise: %v", err)
		return paint
	}

	pos := 0
	for _, token := range iterator.Tokens() {
		end := min(pos+len(token.Value), len(content))
		idx := h.tokenStyle(token.Type)
		for j := pos; j < end; j++ {
			paint[j] = idx
		}
		pos = end
	}
	return paint
}

func (h *Highlighter) tokenStyle(tokenType chroma.TokenType) int {
	if idx, ok := h.tokenStyles[tokenType]; ok {
		return idx
	}

	entry := h.style.Get(tokenType)
	if !entry.Colour.IsSet() && entry.Bold != chroma.Yes && entry.Italic != chroma.Yes && entry.Underline != chroma.Yes {
		h.tokenStyles[tokenType] = None
		return None
	}

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.palette = append(h.palette, style)
	idx := len(h.palette) - 1
	h.tokenStyles[tokenType] = idx
	return idx
}

// StyleFor converts an entry of the colour table to a style based on the
// colour pair the UI allocated for it.
func StyleFor(c syntax.Color, pair lipgloss.Style) lipgloss.Style {
	style := pair
	if c.Attr&syntax.AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attr&syntax.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if c.Attr&syntax.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attr&syntax.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

// runeOffsets maps every rune index of s, and the end, to a byte offset.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
