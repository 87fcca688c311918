// Package onnx wraps ONNX Runtime sessions for token classification models
// that take input_ids and attention_mask and return one logit per token.
package onnx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ErrSessionClosed is returned by Logits after Close.
var ErrSessionClosed = errors.New("onnx: session is closed")

var (
	envOnce sync.Once
	envErr  error
)

// initEnvironment initializes the ONNX Runtime environment once per process.
func initEnvironment() error {
	envOnce.Do(func() {
		envErr = ort.InitializeEnvironment()
	})
	return envErr
}

// Session runs a single model. Calls are serialized.
type Session struct {
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
	closed  bool
}

// NewSession creates a session for the model at modelPath.
func NewSession(modelPath string) (*Session, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file: %w", err)
	}

	if err := initEnvironment(); err != nil {
		return nil, fmt.Errorf("initializing ONNX runtime: %w", err)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("creating session options: %w", err)
	}
	defer func() { _ = options.Destroy() }()

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		options,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &Session{session: session}, nil
}

// Logits runs the model over one sequence of token IDs with a full
// attention mask and returns a logit per token.
func (s *Session) Logits(ctx context.Context, ids []int64) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}

	seqLen := int64(len(ids))
	mask := make([]int64, len(ids))
	for i := range mask {
		mask[i] = 1
	}

	idsTensor, err := ort.NewTensor(ort.NewShape(1, seqLen), ids)
	if err != nil {
		return nil, fmt.Errorf("creating input_ids tensor: %w", err)
	}
	defer func() { _ = idsTensor.Destroy() }()

	maskTensor, err := ort.NewTensor(ort.NewShape(1, seqLen), mask)
	if err != nil {
		return nil, fmt.Errorf("creating attention_mask tensor: %w", err)
	}
	defer func() { _ = maskTensor.Destroy() }()

	// A nil output is allocated by Run.
	outputs := []ort.Value{nil}
	if err := s.session.Run([]ort.Value{idsTensor, maskTensor}, outputs); err != nil {
		return nil, fmt.Errorf("running inference: %w", err)
	}
	if outputs[0] == nil {
		return nil, errors.New("no output produced")
	}
	defer func() { _ = outputs[0].Destroy() }()

	tensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected output tensor type %T", outputs[0])
	}

	data := tensor.GetData()
	if int64(len(data)) < seqLen {
		return nil, fmt.Errorf("output has %d values, want at least %d", len(data), seqLen)
	}
	logits := make([]float32, seqLen)
	copy(logits, data[:seqLen])
	return logits, nil
}

// Close releases ONNX resources. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.session != nil {
		return s.session.Destroy()
	}
	return nil
}
