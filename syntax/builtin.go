package syntax

// Builtin returns a fresh copy of the default definitions, in detection
// order. Each call returns new values so callers may compile and release
// them independently.
func Builtin() []*Syntax {
	return []*Syntax{
		{
			Name: "go",
			File: `\.go$`,
			Rules: []Rule{
				{Pattern: `\b(break|case|chan|const|continue|default|defer|else|fallthrough|for|func|go|goto|if|import|interface|map|package|range|return|select|struct|switch|type|var)\b`, Color: ColorKeyword},
				{Pattern: `\b(bool|byte|complex64|complex128|error|float32|float64|int|int8|int16|int32|int64|rune|string|uint|uint8|uint16|uint32|uint64|uintptr|any)\b`, Color: ColorType},
				{Pattern: `\b(0x[0-9a-fA-F]+|[0-9]+(\.[0-9]*)?)\b`, Color: ColorNumber},
				{Pattern: `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`, Color: ColorString},
				{Pattern: "`[^`]*`", Color: ColorString, Multiline: true},
				{Pattern: `//.*$`, Color: ColorComment},
				{Pattern: `/\*.*?\*/`, Color: ColorComment, Multiline: true},
			},
		},
		{
			Name: "c",
			File: `\.(c(pp|xx)?|h(pp|xx)?|cc)$`,
			Rules: []Rule{
				{Pattern: `^\s*#\s*[a-z]+`, Color: ColorPreproc},
				{Pattern: `\b(auto|break|case|const|continue|default|do|else|enum|extern|for|goto|if|register|return|sizeof|static|struct|switch|typedef|union|volatile|while)\b`, Color: ColorKeyword},
				{Pattern: `\b(bool|char|double|float|int|long|short|signed|unsigned|void|size_t|ssize_t)\b`, Color: ColorType},
				{Pattern: `"(\\.|[^"\\])*"`, Color: ColorString},
				{Pattern: `//.*$`, Color: ColorComment},
				{Pattern: `/\*.*?\*/`, Color: ColorComment, Multiline: true},
			},
		},
		{
			Name: "sh",
			File: `\.(sh|bash)$|^(\.bashrc|\.profile|PKGBUILD)$`,
			Rules: []Rule{
				{Pattern: `\b(case|do|done|elif|else|esac|fi|for|function|if|in|then|until|while)\b`, Color: ColorKeyword},
				{Pattern: `\$(\{[^}]*\}|[A-Za-z_][A-Za-z0-9_]*)`, Color: ColorFunction},
				{Pattern: `"(\\.|[^"\\])*"|'[^']*'`, Color: ColorString},
				{Pattern: `(^|\s)#.*$`, Color: ColorComment},
			},
		},
		{
			Name:  "markdown",
			File:  `\.(md|markdown)$`,
			Lexer: "markdown",
			Rules: []Rule{
				{Pattern: `^#{1,6}.*$`, Color: ColorHeading},
				{Pattern: "`[^`]+`", Color: ColorString},
			},
		},
		{
			Name: "diff",
			File: `\.(diff|patch)$|^COMMIT_EDITMSG$`,
			Rules: []Rule{
				{Pattern: `^\+.*$`, Color: ColorInserted},
				{Pattern: `^-.*$`, Color: ColorDeleted},
				{Pattern: `^@@.*@@`, Color: ColorPreproc},
			},
		},
	}
}
