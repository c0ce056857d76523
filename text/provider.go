package text

import (
	"io"

	"github.com/ionut-t/panes/core"
)

// Provider loads documents for an editor.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Load(filename string) (core.Text, error) {
	t, err := Load(filename)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Provider) LoadReader(r io.Reader) (core.Text, error) {
	t, err := LoadReader(r)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Provider) RegexNew() (core.Regex, error) {
	return NewRegex(), nil
}
