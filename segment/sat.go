package segment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/jamesainslie/go-corpus/internal/onnx"
	"github.com/jamesainslie/go-corpus/internal/spm"
)

const (
	// windowLen is the longest token sequence sent to the model at once.
	// The model accepts positions 0-513; 512 leaves a margin.
	windowLen = 512

	// windowOverlap tokens are shared by consecutive windows so boundaries
	// near a window edge see context on both sides.
	windowOverlap = 64
)

// SaT splits sentences with a wtpsplit/SaT ONNX model.
// It is safe for concurrent use.
type SaT struct {
	tokenizer *spm.Tokenizer
	pool      *onnx.Pool
	threshold float32
	logger    *slog.Logger
}

var _ SentenceSplitter = (*SaT)(nil)

// NewSaT loads the model and SentencePiece tokenizer.
func NewSaT(modelPath, tokenizerPath string, opts ...Option) (*SaT, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	tok, err := spm.New(tokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenizerFailed, err)
	}

	pool, err := onnx.NewPool(modelPath, cfg.poolSize)
	if err != nil {
		_ = tok.Close()
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	cfg.logger.Debug("sat splitter ready", "model", modelPath, "pool", pool.Size(), "threshold", cfg.threshold)

	return &SaT{
		tokenizer: tok,
		pool:      pool,
		threshold: cfg.threshold,
		logger:    cfg.logger,
	}, nil
}

// Split implements SentenceSplitter.
func (s *SaT) Split(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := s.tokenizer.Encode(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	logits, err := s.logits(ctx, tokens)
	if err != nil {
		return nil, err
	}

	var sentences []string
	start := 0
	for i, logit := range logits {
		if sigmoid(logit) <= s.threshold {
			continue
		}
		end := tokens[i].End
		if trimmed := strings.TrimSpace(text[start:end]); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
		start = end
	}
	if trimmed := strings.TrimSpace(text[start:]); trimmed != "" {
		sentences = append(sentences, trimmed)
	}

	s.logger.Debug("sat split", "tokens", len(tokens), "sentences", len(sentences))
	return sentences, nil
}

// logits scores every token, sliding an overlapping window over sequences
// longer than the model accepts and averaging the overlaps.
func (s *SaT) logits(ctx context.Context, tokens []spm.Token) ([]float32, error) {
	ids := make([]int64, len(tokens))
	for i, t := range tokens {
		ids[i] = int64(t.ID)
	}

	if len(ids) <= windowLen {
		return s.pool.Logits(ctx, ids)
	}

	sums := make([]float32, len(ids))
	counts := make([]int, len(ids))
	for start := 0; start < len(ids); start += windowLen - windowOverlap {
		end := min(start+windowLen, len(ids))

		window, err := s.pool.Logits(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		for i, v := range window {
			sums[start+i] += v
			counts[start+i]++
		}

		if end == len(ids) {
			break
		}
	}

	for i := range sums {
		if counts[i] > 1 {
			sums[i] /= float32(counts[i])
		}
	}
	return sums, nil
}

// Close releases all resources.
func (s *SaT) Close() error {
	var errs []error
	if s.pool != nil {
		if err := s.pool.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.tokenizer != nil {
		if err := s.tokenizer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sigmoid(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(float64(-x))))
}
