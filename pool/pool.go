// Package pool hands out base tokenizers to concurrent callers.
//
// A tokenizer.Tokenizer reuses its buffers between calls, so each goroutine
// must hold its own instance for the duration of a call.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jamesainslie/go-juritok/tokenizer"
)

// ErrPoolClosed is returned when acquiring from a closed pool.
var ErrPoolClosed = errors.New("pool: closed")

// Pool manages a fixed set of base tokenizers.
type Pool struct {
	tokenizers chan *tokenizer.Tokenizer
	size       int
	mu         sync.Mutex
	closed     bool
}

// New creates a pool of size tokenizers built from cfg.
func New(cfg tokenizer.Config, size int) (*Pool, error) {
	if size <= 0 {
		size = 1
	}

	pool := &Pool{
		tokenizers: make(chan *tokenizer.Tokenizer, size),
		size:       size,
	}

	// Pre-create all tokenizers
	for i := 0; i < size; i++ {
		tok, err := tokenizer.New(cfg)
		if err != nil {
			_ = pool.Close() // Best-effort cleanup; original error takes precedence
			return nil, fmt.Errorf("creating tokenizer %d: %w", i, err)
		}
		pool.tokenizers <- tok
	}

	return pool, nil
}

// Acquire gets a tokenizer from the pool, blocking if none available.
// Respects context cancellation. Returns ErrPoolClosed if the pool is closed.
func (p *Pool) Acquire(ctx context.Context) (*tokenizer.Tokenizer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case tok, ok := <-p.tokenizers:
		if !ok {
			return nil, ErrPoolClosed
		}
		return tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a tokenizer to the pool.
func (p *Pool) Release(t *tokenizer.Tokenizer) {
	if t == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		_ = t.Close() // Pool closed; clean up tokenizer
		return
	}

	select {
	case p.tokenizers <- t:
	default:
		_ = t.Close() // Pool full; drop the extra tokenizer
	}
}

// Close closes every idle tokenizer. Tokenizers still out are closed when
// released.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.tokenizers)
	p.mu.Unlock()

	var errs []error
	for tok := range p.tokenizers {
		if err := tok.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.size
}
