package bench

import "strings"

// BoundaryMetrics holds sentence boundary agreement.
type BoundaryMetrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
}

// EvaluateBoundaries compares predicted boundaries against reference ones.
// Uses greedy left-to-right matching within tolerance bytes.
func EvaluateBoundaries(predicted, reference []int, tolerance int) BoundaryMetrics {
	matched := make([]bool, len(reference))
	tp := 0

	for _, p := range predicted {
		for i, r := range reference {
			if matched[i] {
				continue
			}
			diff := p - r
			if diff < 0 {
				diff = -diff
			}
			if diff <= tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	m := BoundaryMetrics{
		TruePositives:  tp,
		FalsePositives: len(predicted) - tp,
		FalseNegatives: len(reference) - tp,
	}
	return m.scored()
}

// Add aggregates counts from o and recomputes the scores.
func (m BoundaryMetrics) Add(o BoundaryMetrics) BoundaryMetrics {
	m.TruePositives += o.TruePositives
	m.FalsePositives += o.FalsePositives
	m.FalseNegatives += o.FalseNegatives
	return m.scored()
}

func (m BoundaryMetrics) scored() BoundaryMetrics {
	tp, fp, fn := m.TruePositives, m.FalsePositives, m.FalseNegatives
	m.Precision, m.Recall, m.F1 = 0, 0, 0
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// SentenceEnds locates each sentence in text, in order, and returns the
// byte offset just past it. Sentences that cannot be found are skipped.
func SentenceEnds(text string, sentences []string) []int {
	var ends []int
	cursor := 0
	for _, s := range sentences {
		idx := strings.Index(text[cursor:], s)
		if idx < 0 {
			continue
		}
		cursor += idx + len(s)
		ends = append(ends, cursor)
	}
	return ends
}
