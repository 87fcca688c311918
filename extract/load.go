package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jamesainslie/go-corpus"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".epub", ".txt"}

// Load reads a book. The title is the file name without its extension.
// Plain-text Project Gutenberg downloads are stripped of their boilerplate.
func Load(filename string) (corpus.Book, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	title := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".epub":
		text, err = EPUB(filename)
	case ".txt":
		text, err = PlainText(filename)
		if err == nil && IsGutenberg(text) {
			text = StripGutenberg(text)
		}
	default:
		return corpus.Book{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return corpus.Book{}, fmt.Errorf("loading %s: %w", filename, err)
	}
	return corpus.Book{Title: title, Text: text}, nil
}

// Find returns the loadable files directly inside dir, sorted by name.
func Find(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(Extensions, strings.ToLower(filepath.Ext(e.Name()))) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
