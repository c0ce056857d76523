package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Attr is a set of display attributes.
type Attr uint16

const (
	AttrNormal Attr = 1 << iota
	AttrBold
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Color is an entry of the colour table rules refer to by index.
// Pair is filled in when the table is loaded into an editor.
type Color struct {
	Fg   string // foreground, "#rrggbb" or an ANSI colour number
	Bg   string // background, empty for the terminal default
	Attr Attr
	Pair int
}

// Colour table indices used by the built-in definitions.
const (
	ColorDefault = iota
	ColorComment
	ColorKeyword
	ColorType
	ColorString
	ColorNumber
	ColorFunction
	ColorOperator
	ColorPreproc
	ColorInserted
	ColorDeleted
	ColorHeading
	colorCount
)

var themeTokens = [colorCount]chroma.TokenType{
	ColorDefault:  chroma.Text,
	ColorComment:  chroma.Comment,
	ColorKeyword:  chroma.Keyword,
	ColorType:     chroma.KeywordType,
	ColorString:   chroma.LiteralString,
	ColorNumber:   chroma.LiteralNumber,
	ColorFunction: chroma.NameFunction,
	ColorOperator: chroma.Operator,
	ColorPreproc:  chroma.CommentPreproc,
	ColorInserted: chroma.GenericInserted,
	ColorDeleted:  chroma.GenericDeleted,
	ColorHeading:  chroma.GenericHeading,
}

// ThemeColors builds the colour table for the built-in definitions from a
// chroma style. Unknown style names fall back to chroma's default style.
func ThemeColors(theme string) []Color {
	style := styles.Get(theme)
	colors := make([]Color, colorCount)
	for i, tt := range themeTokens {
		entry := style.Get(tt)
		c := Color{Fg: "7"}
		if entry.Colour.IsSet() {
			c.Fg = entry.Colour.String()
		}
		if entry.Bold == chroma.Yes {
			c.Attr |= AttrBold
		}
		if entry.Italic == chroma.Yes {
			c.Attr |= AttrItalic
		}
		if entry.Underline == chroma.Yes {
			c.Attr |= AttrUnderline
		}
		colors[i] = c
	}
	return colors
}
