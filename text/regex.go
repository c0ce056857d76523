package text

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/ionut-t/panes/core"
)

var ErrNoPattern = errors.New("no search pattern")

const searchTimeout = time.Second

// Regex is the search pattern shared by the windows of an editor.
type Regex struct {
	pattern string
	re      *regexp2.Regexp
}

func NewRegex() *Regex {
	return &Regex{}
}

// Compile replaces the pattern. On failure the previous pattern is kept.
func (r *Regex) Compile(pattern string) error {
	re, err := regexp2.Compile(pattern, regexp2.Multiline)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	re.MatchTimeout = searchTimeout
	r.pattern = pattern
	r.re = re
	return nil
}

// Pattern returns the source of the compiled pattern.
func (r *Regex) Pattern() string {
	return r.pattern
}

// Search returns the first match starting after from, wrapping around to
// the start of the document. Offsets are in bytes.
func (r *Regex) Search(t core.Text, from int) (core.Range, bool) {
	if r.re == nil || t == nil {
		return core.Range{}, false
	}
	content := string(t.Bytes())
	from = min(max(from, 0), len(content))

	// matches at the cursor itself are skipped so repeated searches advance
	if rng, ok := r.find(content, from+1); ok {
		return rng, true
	}
	if rng, ok := r.find(content, 0); ok && rng.Start <= from {
		return rng, true
	}
	return core.Range{}, false
}

func (r *Regex) find(content string, from int) (core.Range, bool) {
	if from > len(content) {
		return core.Range{}, false
	}
	// regexp2 starts at a byte offset but reports matches in runes
	m, err := r.re.FindStringMatchStartingAt(content, runeBoundary(content, from))
	if err != nil {
		log.Warningf("search for %q: %v", r.pattern, err)
		return core.Range{}, false
	}
	if m == nil {
		return core.Range{}, false
	}
	start := byteOffset(content, m.Index)
	end := start + byteOffset(content[start:], m.Length)
	return core.Range{Start: start, End: end}, true
}

func (r *Regex) Close() {
	r.re = nil
	r.pattern = ""
}

// runeBoundary moves pos forward to the start of a rune.
func runeBoundary(s string, pos int) int {
	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}
	return pos
}

// byteOffset converts a rune offset into s to a byte offset.
func byteOffset(s string, runes int) int {
	for i := range s {
		if runes == 0 {
			return i
		}
		runes--
	}
	return len(s)
}
