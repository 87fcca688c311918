package extract

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PlainText reads a UTF-8 text file. Line endings become "\n" and a leading
// byte order mark is dropped.
func PlainText(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return cleanText(string(content)), nil
}

func cleanText(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}
