package core

import (
	"errors"
	"fmt"
)

// Register slots. Named registers a-z follow the default register.
const (
	RegisterDefault   = 0
	RegisterA         = 1
	RegisterZ         = RegisterA + 25
	RegisterClipboard = RegisterZ + 1
	RegisterCount     = RegisterClipboard + 1
)

// Register is a copy/paste slot. The clipboard register reads and writes
// the system clipboard when one is configured.
type Register struct {
	data      []byte
	linewise  bool
	clipboard Clipboard
}

// RegisterIndex maps a register name to its slot.
func RegisterIndex(name rune) (int, bool) {
	switch {
	case name == '"':
		return RegisterDefault, true
	case name == '*' || name == '+':
		return RegisterClipboard, true
	case name >= 'a' && name <= 'z':
		return RegisterA + int(name-'a'), true
	case name >= 'A' && name <= 'Z':
		return RegisterA + int(name-'A'), true
	}
	return 0, false
}

// Register returns the register in slot idx, or nil for an invalid slot.
func (ed *Editor) Register(idx int) *Register {
	if idx < 0 || idx >= RegisterCount {
		return nil
	}
	return &ed.registers[idx]
}

// Put replaces the register content.
func (r *Register) Put(data []byte, linewise bool) error {
	r.data = append(r.data[:0], data...)
	r.linewise = linewise
	if r.clipboard != nil {
		if err := r.clipboard.Write(string(data)); err != nil {
			return fmt.Errorf("failed to write clipboard: %w", err)
		}
	}
	return nil
}

// Append adds data to the register content.
func (r *Register) Append(data []byte) error {
	if r.clipboard != nil {
		content, err := r.Get()
		if err != nil && !errors.Is(err, ErrEmptyRegister) {
			return err
		}
		return r.Put(append(content, data...), r.linewise)
	}
	r.data = append(r.data, data...)
	return nil
}

// Get returns the register content.
func (r *Register) Get() ([]byte, error) {
	if r.clipboard != nil {
		content, err := r.clipboard.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read clipboard: %w", err)
		}
		r.data = append(r.data[:0], content...)
	}
	if len(r.data) == 0 {
		return nil, ErrEmptyRegister
	}
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out, nil
}

// Linewise reports whether the content was yanked as whole lines.
func (r *Register) Linewise() bool {
	return r.linewise
}

// Free releases the register content.
func (r *Register) Free() {
	r.data = nil
	r.linewise = false
}
