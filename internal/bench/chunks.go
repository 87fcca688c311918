package bench

import (
	"github.com/samber/lo"

	"github.com/jamesainslie/go-corpus/chunker"
)

// ChunkReport summarizes chunk sizes.
type ChunkReport struct {
	Chunks     int
	TotalWords int
	MeanWords  float64
	MaxWords   int
	Oversized  int // chunks longer than the budget
}

// ChunkStats summarizes chunks against a word budget.
func ChunkStats(chunks []chunker.Chunk, maxWords int) ChunkReport {
	if len(chunks) == 0 {
		return ChunkReport{}
	}

	total := lo.SumBy(chunks, func(c chunker.Chunk) int { return c.Len() })
	longest := lo.MaxBy(chunks, func(a, b chunker.Chunk) bool { return a.Len() > b.Len() })

	return ChunkReport{
		Chunks:     len(chunks),
		TotalWords: total,
		MeanWords:  float64(total) / float64(len(chunks)),
		MaxWords:   longest.Len(),
		Oversized:  lo.CountBy(chunks, func(c chunker.Chunk) bool { return c.Len() > maxWords }),
	}
}
