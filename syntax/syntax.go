// Package syntax describes the filename-matched rule sets used to
// highlight documents. Definitions are compiled once when they are loaded
// into an editor and released again when the editor unloads them.
package syntax

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("panes.syntax")

// ErrCompile is wrapped by every pattern compilation failure.
var ErrCompile = errors.New("syntax pattern does not compile")

// matchTimeout bounds a single pattern evaluation so a pathological
// rule cannot hang the renderer.
const matchTimeout = 250 * time.Millisecond

// Rule is one tokenizer rule of a syntax definition.
type Rule struct {
	Pattern   string // regular expression source
	Color     int    // index into the colour table passed to the editor
	Multiline bool   // whether matches may span line boundaries

	regex *regexp2.Regexp
}

// Regex returns the compiled rule pattern, or nil if the rule is not
// compiled (not loaded yet, released, or failed to compile).
func (r *Rule) Regex() *regexp2.Regexp {
	return r.regex
}

func (r *Rule) compile() error {
	var opts regexp2.RegexOptions = regexp2.Multiline
	if r.Multiline {
		opts = regexp2.Singleline
	}
	re, err := regexp2.Compile(r.Pattern, opts)
	if err != nil {
		r.regex = nil
		return fmt.Errorf("%w: rule %q: %v", ErrCompile, r.Pattern, err)
	}
	re.MatchTimeout = matchTimeout
	r.regex = re
	return nil
}

// Syntax is a named syntax definition.
type Syntax struct {
	Name  string // display name, e.g. "go"
	File  string // pattern matched against filenames
	Lexer string // optional chroma lexer used by renderers instead of Rules
	Rules []Rule

	fileRegex *regexp2.Regexp
}

// Compile compiles the filename pattern and every rule pattern. A failing
// pattern does not stop the remaining ones from being compiled; all failures
// are returned joined together.
func (s *Syntax) Compile() error {
	var errs []error

	// filenames are matched case insensitively, one line at a time and
	// without capturing groups
	re, err := regexp2.Compile(s.File, regexp2.IgnoreCase|regexp2.Multiline|regexp2.ExplicitCapture)
	if err != nil {
		s.fileRegex = nil
		errs = append(errs, fmt.Errorf("%w: %s: file pattern %q: %v", ErrCompile, s.Name, s.File, err))
	} else {
		re.MatchTimeout = matchTimeout
		s.fileRegex = re
	}

	for i := range s.Rules {
		if err := s.Rules[i].compile(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		}
	}

	if len(errs) > 0 {
		log.Warningf("syntax %s: %d pattern(s) failed to compile", s.Name, len(errs))
	}

	return errors.Join(errs...)
}

// Release drops every compiled pattern. It is safe to call on a definition
// that was never compiled.
func (s *Syntax) Release() {
	s.fileRegex = nil
	for i := range s.Rules {
		s.Rules[i].regex = nil
	}
}

// Compiled reports whether the filename pattern and all rules are usable.
func (s *Syntax) Compiled() bool {
	if s.fileRegex == nil {
		return false
	}
	for i := range s.Rules {
		if s.Rules[i].regex == nil {
			return false
		}
	}
	return true
}

// MatchFile reports whether filename matches the definition's filename
// pattern. An uncompiled pattern never matches.
func (s *Syntax) MatchFile(filename string) bool {
	if s.fileRegex == nil || filename == "" {
		return false
	}
	ok, err := s.fileRegex.MatchString(filename)
	if err != nil {
		log.Debugf("syntax %s: matching %q: %v", s.Name, filename, err)
		return false
	}
	return ok
}

// Detect returns the first definition, in order, whose filename pattern
// matches filename.
func Detect(syntaxes []*Syntax, filename string) *Syntax {
	for _, s := range syntaxes {
		if s.MatchFile(filename) {
			return s
		}
	}
	return nil
}
