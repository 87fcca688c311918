// Package normalize cleans up chunk text produced from word tokens:
// punctuation is snapped to the preceding word, whitespace is collapsed and
// double quotes are balanced line by line.
//
// The quote balancer is a heuristic. It assumes quotes alternate open/close
// within a line and takes no corrective action on an odd count: the state
// left by the last quote is simply discarded at the end of the line.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Unicode whitespace, not just ASCII.
	spaceBeforePunct = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+([,.!?;:])`)
	spaceRun         = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+`)

	// Treebank-style word tokenizers emit `` and '' for double quotes.
	quotePairs = strings.NewReplacer("``", `"`, "''", `"`)
)

const quote = '"'

// Text normalizes every line of text independently and rejoins them with
// "\n". Lines left empty at the end of the text are dropped.
func Text(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = Line(line)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Line normalizes a single line.
func Line(line string) string {
	line = spaceBeforePunct.ReplaceAllString(line, "$1")
	line = spaceRun.ReplaceAllString(line, " ")
	line = quotePairs.Replace(line)
	line = balanceQuotes(line)
	return strings.TrimSpace(line)
}

// balanceQuotes drops the space after an opening quote and before a closing
// quote, and separates a closing quote from a following word.
func balanceQuotes(line string) string {
	if !strings.ContainsRune(line, quote) {
		return line
	}

	out := make([]byte, 0, len(line)+8)
	inside := false
	afterOpen := false
	afterClose := false
	for _, r := range line {
		switch {
		case r == quote && !inside:
			if afterClose {
				out = append(out, ' ')
			}
			out = append(out, quote)
			inside, afterOpen, afterClose = true, true, false
			continue
		case r == quote:
			if n := len(out); n > 0 && out[n-1] == ' ' {
				out = out[:n-1]
			}
			out = append(out, quote)
			inside, afterOpen, afterClose = false, false, true
			continue
		case r == ' ' && afterOpen:
			afterOpen = false
			continue
		case afterClose && !isPunct(r):
			out = append(out, ' ')
		}
		afterOpen, afterClose = false, false
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// isPunct reports whether r may follow a closing quote without a space.
func isPunct(r rune) bool {
	return strings.ContainsRune(",.!?;:", r) || unicode.IsSpace(r)
}

// splitLines splits on \n, \r\n and \r.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
