// Package dataset persists prepared chunks and training pairs.
//
// Each book produces a text artifact with one chunk per line and,
// optionally, a JSON Lines file of clean/noisy pairs.
package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/go-corpus"
)

// Artifact file suffixes.
const (
	ChunksExt = ".txt"
	PairsExt  = ".pairs.jsonl"
)

// ErrInvalidTitle is returned for titles that cannot name a file.
var ErrInvalidTitle = errors.New("dataset: invalid title")

// WriteChunks writes each chunk followed by a newline.
func WriteChunks(w io.Writer, chunks []string) error {
	bw := bufio.NewWriter(w)
	for _, c := range chunks {
		if _, err := bw.WriteString(c); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePairs writes one JSON object per line.
func WritePairs(w io.Writer, pairs []corpus.Pair) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, p := range pairs {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding pair %s: %w", p.ID, err)
		}
	}
	return bw.Flush()
}

// ReadPairs decodes a JSON Lines pair stream.
func ReadPairs(r io.Reader) ([]corpus.Pair, error) {
	var pairs []corpus.Pair
	dec := json.NewDecoder(r)
	for {
		var p corpus.Pair
		err := dec.Decode(&p)
		if errors.Is(err, io.EOF) {
			return pairs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding pair %d: %w", len(pairs), err)
		}
		pairs = append(pairs, p)
	}
}

// Writer stores artifacts under a directory, one set per book title.
type Writer struct {
	dir string
}

// NewWriter creates dir if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Chunks writes <title>.txt and returns its path.
func (w *Writer) Chunks(title string, chunks []string) (string, error) {
	return w.create(title, ChunksExt, func(f io.Writer) error {
		return WriteChunks(f, chunks)
	})
}

// Pairs writes <title>.pairs.jsonl and returns its path.
func (w *Writer) Pairs(title string, pairs []corpus.Pair) (string, error) {
	return w.create(title, PairsExt, func(f io.Writer) error {
		return WritePairs(f, pairs)
	})
}

// create writes through a temporary file so readers never see a partial
// artifact.
func (w *Writer) create(title, ext string, write func(io.Writer) error) (path string, err error) {
	if title == "" || title == "." || title == ".." || strings.ContainsAny(title, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}

	path = filepath.Join(w.dir, title+ext)
	tmp, err := os.CreateTemp(w.dir, "."+title+"-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("renaming to %s: %w", path, err)
	}
	return path, nil
}
