package core_test

import (
	"testing"

	"github.com/ionut-t/panes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	content string
	err     error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.content = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	return c.content, c.err
}

func TestRegisters(t *testing.T) {
	ed, _, _ := newEditor(t)

	reg := ed.Register(core.RegisterDefault)
	require.NotNil(t, reg)
	assert.Nil(t, ed.Register(core.RegisterCount))
	assert.Nil(t, ed.Register(-1))

	_, err := reg.Get()
	assert.ErrorIs(t, err, core.ErrEmptyRegister)

	require.NoError(t, reg.Put([]byte("line\n"), true))
	require.NoError(t, reg.Append([]byte("more\n")))
	data, err := reg.Get()
	require.NoError(t, err)
	assert.Equal(t, "line\nmore\n", string(data))
	assert.True(t, reg.Linewise())

	// callers get a copy
	data[0] = 'X'
	again, _ := reg.Get()
	assert.Equal(t, "line\nmore\n", string(again))

	idx, ok := core.RegisterIndex('b')
	require.True(t, ok)
	named := ed.Register(idx)
	require.NoError(t, named.Put([]byte("b"), false))
	assert.NotSame(t, reg, named)

	reg.Free()
	_, err = reg.Get()
	assert.ErrorIs(t, err, core.ErrEmptyRegister)
}

func TestClipboardRegister(t *testing.T) {
	clip := &fakeClipboard{}
	cfg := core.DefaultConfig()
	cfg.Clipboard = clip
	ed, err := core.New(newFakeUI(), &recordingProvider{}, cfg)
	require.NoError(t, err)
	defer ed.Free()

	reg := ed.Register(core.RegisterClipboard)
	require.NoError(t, reg.Put([]byte("copied"), false))
	assert.Equal(t, "copied", clip.content)

	// changes made outside the editor are picked up
	clip.content = "external"
	data, err := reg.Get()
	require.NoError(t, err)
	assert.Equal(t, "external", string(data))

	require.NoError(t, reg.Append([]byte("!")))
	assert.Equal(t, "external!", clip.content)

	clip.err = errFake
	_, err = reg.Get()
	assert.ErrorIs(t, err, errFake)
	assert.ErrorIs(t, reg.Put([]byte("x"), false), errFake)
}

func TestRegisterIndex(t *testing.T) {
	tests := []struct {
		name rune
		idx  int
		ok   bool
	}{
		{'"', core.RegisterDefault, true},
		{'a', core.RegisterA, true},
		{'z', core.RegisterZ, true},
		{'Q', core.RegisterA + 16, true},
		{'*', core.RegisterClipboard, true},
		{'+', core.RegisterClipboard, true},
		{'1', 0, false},
	}
	for _, tt := range tests {
		idx, ok := core.RegisterIndex(tt.name)
		assert.Equal(t, tt.ok, ok, string(tt.name))
		assert.Equal(t, tt.idx, idx, string(tt.name))
	}
	assert.Equal(t, core.RegisterCount-1, core.RegisterClipboard)
	assert.NotEqual(t, core.RegisterZ, core.RegisterClipboard)
}
