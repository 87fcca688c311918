package extract

import (
	"regexp"
	"strings"
)

var (
	gutenbergStart = []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
		"*END*THE SMALL PRINT",
	}

	gutenbergEnd = []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of Project Gutenberg",
		"End of the Project Gutenberg",
	}

	// Matches: "Chapter I", "CHAPTER 1", "CHAPTER I.", "Chapter 1.]", "CHAPTER 1. Loomings"
	chapterRe = regexp.MustCompile(`(?m)^(Chapter|CHAPTER)\s+([IVX]+|[0-9]+)[\.\]\s]`)

	illustrationRe = regexp.MustCompile(`\[Illustration[^\]]*\]`)
	multiBlankRe   = regexp.MustCompile(`\n{3,}`)
	romanRe        = regexp.MustCompile(`^[IVXLC]+\.?$`)
)

// frontMatterLimit bounds how far into the body the first chapter heading
// may appear and still be treated as the start of the story.
const frontMatterLimit = 50000

// IsGutenberg reports whether text carries a Project Gutenberg start marker.
func IsGutenberg(text string) bool {
	for _, m := range gutenbergStart {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// StripGutenberg removes the Project Gutenberg license header and footer,
// skips front matter up to the first chapter heading, drops illustration
// markers and rejoins hard-wrapped lines. Paragraphs are separated by a
// blank line. Text without a start marker keeps its beginning.
func StripGutenberg(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	start, marked := 0, false
	for _, m := range gutenbergStart {
		if idx := strings.Index(text, m); idx != -1 {
			if eol := strings.IndexByte(text[idx:], '\n'); eol != -1 {
				start = idx + eol + 1
			} else {
				start = len(text)
			}
			marked = true
			break
		}
	}

	end := len(text)
	for _, m := range gutenbergEnd {
		if idx := strings.Index(text, m); idx != -1 && idx >= start {
			end = idx
			break
		}
	}

	body := text[start:end]
	if marked {
		if loc := chapterRe.FindStringIndex(body); loc != nil && loc[0] < frontMatterLimit {
			body = body[loc[0]:]
		}
	}
	return joinParagraphs(body)
}

func joinParagraphs(text string) string {
	text = illustrationRe.ReplaceAllString(text, "")
	text = multiBlankRe.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	var (
		result    []string
		paragraph strings.Builder
	)
	flush := func() {
		if paragraph.Len() > 0 {
			result = append(result, paragraph.String())
			paragraph.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if isChapterHeader(line) {
			flush()
			result = append(result, line)
			continue
		}
		if line == "" {
			flush()
			continue
		}

		if paragraph.Len() > 0 {
			paragraph.WriteString(" ")
		}
		paragraph.WriteString(line)
	}
	flush()

	return strings.Join(result, "\n\n")
}

func isChapterHeader(line string) bool {
	if strings.HasPrefix(line, "CHAPTER ") || strings.HasPrefix(line, "Chapter ") {
		return true
	}
	return romanRe.MatchString(line)
}
