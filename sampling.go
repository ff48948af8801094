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
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Domain is the integer resolution of the cumulative count table.
const Domain = math.MaxInt32

const defaultMaxRounds = 1000

// Sampler draws negative samples from the unigram distribution raised to
// power, ported from word2vec. Instead of a fixed-size lookup table it keeps
// the cumulative distribution scaled to Domain and binary searches it.
type Sampler struct {
	nNegative int
	batchSize int
	power     float64
	maxRounds int
	counts    []int64
	table     []int64
	rng       *rand.Rand
	logger    *slog.Logger
}

type SamplerOption func(*Sampler)

// WithMaxRounds caps the rejection rounds of DrawExcluding.
func WithMaxRounds(n int) SamplerOption {
	return func(s *Sampler) {
		s.maxRounds = n
	}
}

func WithSamplerLogger(l *slog.Logger) SamplerOption {
	return func(s *Sampler) {
		s.logger = l
	}
}

func NewSampler(t *Table, nNegative, batchSize int, power float64, rng *rand.Rand, opts ...SamplerOption) (*Sampler, error) {
	counts, err := CountProducts(t)
	if err != nil {
		return nil, err
	}
	s := &Sampler{
		nNegative: nNegative,
		batchSize: batchSize,
		power:     power,
		maxRounds: defaultMaxRounds,
		counts:    counts,
		rng:       rng,
		logger:    discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.table, err = cumulativeCountTable(counts, power); err != nil {
		return nil, err
	}
	s.logger.Debug("built negative sampling table",
		slog.Int("products", len(counts)),
		slog.Int("support", s.Support()),
		slog.Float64("power", power))
	return s, nil
}

// cumulativeCountTable maps count^power onto [0, Domain] as a rounded
// cumulative sum. The last entry has to land on Domain exactly.
func cumulativeCountTable(counts []int64, power float64) ([]int64, error) {
	weights := make([]float64, len(counts))
	for i, c := range counts {
		weights[i] = math.Pow(float64(c), power)
	}
	total := floats.Sum(weights)
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: total weight %v", ErrDistribution, total)
	}
	floats.Scale(1/total, weights)
	floats.CumSum(weights, weights)
	floats.Scale(Domain, weights)

	table := make([]int64, len(weights))
	for i, w := range weights {
		table[i] = int64(math.Round(w))
	}
	if last := table[len(table)-1]; last != Domain {
		return nil, fmt.Errorf("%w: cumulative table ends at %d, want %d", ErrDistribution, last, Domain)
	}
	return table, nil
}

// CumulativeTable returns the cumulative count table, one entry per product id.
func (s *Sampler) CumulativeTable() []int64 {
	return s.table
}

func (s *Sampler) Counts() []int64 {
	return s.counts
}

// Support is the number of products with a non-zero sampling probability.
func (s *Sampler) Support() int {
	n := 0
	prev := int64(0)
	for _, c := range s.table {
		if c > prev {
			n++
		}
		prev = c
	}
	return n
}

// sample draws from (0, Domain] and returns the first product whose
// cumulative entry is at least the draw, so zero-mass products are never hit.
func (s *Sampler) sample() ProductID {
	x := s.rng.Int63n(Domain) + 1
	return ProductID(sort.Search(len(s.table), func(i int) bool {
		return s.table[i] >= x
	}))
}

// Draw returns batchSize x nNegative samples. A sample may equal the
// positive context it is paired with.
func (s *Sampler) Draw() *IDMatrix {
	m := NewIDMatrix(s.batchSize, s.nNegative)
	for i := range m.Data {
		m.Data[i] = s.sample()
	}
	return m
}

// DrawExcluding returns nNegative x len(context) samples where no entry of
// column i equals context[i]. Only the slots rejected in a round are redrawn
// in the next one.
func (s *Sampler) DrawExcluding(context []ProductID) (*IDMatrix, error) {
	m := NewIDMatrix(s.nNegative, len(context))
	filled := make([]bool, len(m.Data))
	pending := len(m.Data)
	for round := 0; pending > 0; round++ {
		if round == s.maxRounds {
			return nil, fmt.Errorf("%w: %d of %d slots unfilled after %d rounds", ErrSamplingStalled, pending, len(m.Data), round)
		}
		for i := range m.Data {
			if filled[i] {
				continue
			}
			v := s.sample()
			if v == context[i%m.Cols] {
				continue
			}
			m.Data[i] = v
			filled[i] = true
			pending--
		}
	}
	return m, nil
}
