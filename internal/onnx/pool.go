package onnx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("onnx: pool is closed")

// Pool hands out a fixed set of sessions to concurrent callers.
type Pool struct {
	sessions chan *Session
	size     int

	mu     sync.Mutex
	closed bool
}

// NewPool creates size sessions for modelPath. A size below one means one.
func NewPool(modelPath string, size int) (*Pool, error) {
	size = max(size, 1)
	p := &Pool{
		sessions: make(chan *Session, size),
		size:     size,
	}

	for i := range size {
		s, err := NewSession(modelPath)
		if err != nil {
			_ = p.Close() // original error takes precedence
			return nil, fmt.Errorf("creating session %d: %w", i, err)
		}
		p.sessions <- s
	}
	return p, nil
}

// Acquire takes a session, blocking until one is free or ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case s, ok := <-p.sessions:
		if !ok {
			return nil, ErrPoolClosed
		}
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a session taken with Acquire.
func (p *Pool) Release(s *Session) {
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		_ = s.Close()
		return
	}

	select {
	case p.sessions <- s:
	default:
		_ = s.Close() // not one of ours
	}
}

// Logits runs ids through a pooled session.
func (p *Pool) Logits(ctx context.Context, ids []int64) ([]float32, error) {
	s, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Release(s)
	return s.Logits(ctx, ids)
}

// Close closes every idle session. Sessions still out are closed on Release.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sessions)
	p.mu.Unlock()

	var errs []error
	for s := range p.sessions {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the number of sessions the pool was built with.
func (p *Pool) Size() int {
	return p.size
}
