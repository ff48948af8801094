/*
 * Copyright (c) 2016 Salle, Alexandre <alex@alexsalle.com>
 * Author: Salle, Alexandre <alex@alexsalle.com>
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package product2vec

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
)

type State int

const (
	// StateReady means more batches can be cut from the cache or the baskets.
	StateReady State = iota
	StateEmitting
	// StateExhausted means the baskets are drained and the cache is short of
	// a full batch until the next Reset.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateEmitting:
		return "emitting"
	case StateExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Batch holds co-indexed center and context ids plus their negatives.
//
// Negatives is BatchSize x NegativeSamples when context collisions are
// allowed, Len() x NegativeSamples when they are not, and an empty 2 x 0
// matrix when negative sampling is off.
type Batch struct {
	Centers   []ProductID
	Contexts  []ProductID
	Negatives *IDMatrix
}

func (b *Batch) Len() int {
	return len(b.Centers)
}

// Streamer cuts skip-gram training batches out of a basket table. It is not
// safe for concurrent use; one streamer feeds one training loop.
type Streamer struct {
	cfg     Config
	baskets []Basket
	cache   *PairCache
	sampler *Sampler
	rng     *rand.Rand
	state   State
	epoch   int
	logger  *slog.Logger
}

type Option func(*Streamer)

func WithLogger(l *slog.Logger) Option {
	return func(s *Streamer) {
		s.logger = l
	}
}

// NewStreamer splits t into baskets and, when cfg.NegativeSamples > 0,
// builds the negative sampler from the same table. rng is owned by the
// streamer from here on and drives both shuffling and sampling.
func NewStreamer(t *Table, cfg Config, rng *rand.Rand, opts ...Option) (*Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s := &Streamer{
		cfg:    cfg,
		rng:    rng,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.baskets = SplitBaskets(t)
	s.Reset()

	if cfg.NegativeSamples > 0 {
		sampler, err := NewSampler(t, cfg.NegativeSamples, cfg.BatchSize, cfg.Power, rng,
			WithMaxRounds(cfg.MaxSamplingRounds), WithSamplerLogger(s.logger))
		if err != nil {
			return nil, err
		}
		if !cfg.AllowContextCollisions && sampler.Support() < 2 {
			return nil, fmt.Errorf("%w: %d product(s) with sampling mass", ErrDegenerateCatalog, sampler.Support())
		}
		s.sampler = sampler
	}
	s.logger.Info("streamer ready",
		slog.Int("rows", t.Len()),
		slog.Int("baskets", len(s.baskets)),
		slog.Int("batch_size", cfg.BatchSize),
		slog.Int("negative_samples", cfg.NegativeSamples))
	return s, nil
}

// Reset starts a new epoch: reshuffles the baskets if configured, rewinds
// the basket iterator and drops any cached pairs.
func (s *Streamer) Reset() {
	if s.cfg.Shuffle {
		s.rng.Shuffle(len(s.baskets), func(i, j int) {
			s.baskets[i], s.baskets[j] = s.baskets[j], s.baskets[i]
		})
	}
	s.cache = NewPairCache(s.baskets)
	s.state = StateReady
	s.epoch++
	s.logger.Debug("reset basket iterator", slog.Int("epoch", s.epoch))
}

// NextBatch emits up to BatchSize pairs. Fewer pairs mean the epoch is over;
// that is reported through State, not as an error. Pairs leave the cache only
// once their negatives are drawn, so a failed call can be retried.
func (s *Streamer) NextBatch() (*Batch, error) {
	s.state = StateEmitting
	s.cache.Fill(s.cfg.BatchSize)
	pairs := s.cache.Peek(s.cfg.BatchSize)

	b := &Batch{
		Centers:  make([]ProductID, len(pairs)),
		Contexts: make([]ProductID, len(pairs)),
	}
	for i, p := range pairs {
		b.Centers[i] = p.Center
		b.Contexts[i] = p.Context
	}

	switch {
	case s.sampler == nil:
		b.Negatives = NewIDMatrix(2, 0)
	case s.cfg.AllowContextCollisions:
		b.Negatives = s.sampler.Draw()
	default:
		neg, err := s.sampler.DrawExcluding(b.Contexts)
		if err != nil {
			s.updateState()
			return nil, err
		}
		b.Negatives = neg.T()
	}
	s.cache.Take(len(pairs))
	s.updateState()
	return b, nil
}

func (s *Streamer) updateState() {
	if s.cache.Exhausted() && s.cache.Len() < s.cfg.BatchSize {
		s.state = StateExhausted
	} else {
		s.state = StateReady
	}
}

// Stream feeds batches to fn until a batch shorter than BatchSize has been
// emitted, ctx is cancelled or fn fails. Empty batches are not passed on.
// Stream does not reset; call Reset before streaming the next epoch.
func (s *Streamer) Stream(ctx context.Context, fn func(*Batch) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := s.NextBatch()
		if err != nil {
			return err
		}
		if b.Len() > 0 {
			if err := fn(b); err != nil {
				return err
			}
		}
		if b.Len() < s.cfg.BatchSize {
			return nil
		}
	}
}

func (s *Streamer) State() State {
	return s.state
}

// Epoch counts resets, starting at 1 after construction.
func (s *Streamer) Epoch() int {
	return s.epoch
}

func (s *Streamer) Config() Config {
	return s.cfg
}

// Baskets returns the basket list in its current order.
func (s *Streamer) Baskets() []Basket {
	return s.baskets
}

// Sampler is nil when negative sampling is off.
func (s *Streamer) Sampler() *Sampler {
	return s.sampler
}
