package tui

import (
	"strings"

	"github.com/atotto/clipboard"
)

func copyToClipboard(s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return clipboard.WriteAll(s)
}
