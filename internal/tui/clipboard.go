package tui

import "github.com/atotto/clipboard"

// copyFunc writes text to the system clipboard.
type copyFunc func(string) error

func systemClipboard(text string) error {
	return clipboard.WriteAll(text)
}
