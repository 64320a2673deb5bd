package app

import "github.com/atotto/clipboard"

// systemClipboard bridges the editor's clipboard interface to the OS
// clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteText(s string) error {
	return clipboard.WriteAll(s)
}
