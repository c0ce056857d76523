package adapter_bubbletea

import "github.com/atotto/clipboard"

// clipboardImpl backs the clipboard register with the system clipboard.
type clipboardImpl struct{}

func (c *clipboardImpl) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *clipboardImpl) Read() (string, error) {
	return clipboard.ReadAll()
}
