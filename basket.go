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

import "sort"

// Basket is the ordered list of products sharing one basket id.
type Basket []ProductID

// Pair is a positive skip-gram example.
type Pair struct {
	Center  ProductID
	Context ProductID
}

// SplitBaskets groups the product column by basket id. Rows are stably
// sorted by basket id, so products keep their table order inside a basket.
func SplitBaskets(t *Table) []Basket {
	idx := make([]int, t.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return t.Baskets[idx[a]] < t.Baskets[idx[b]]
	})

	var baskets []Basket
	for start := 0; start < len(idx); {
		end := start + 1
		for end < len(idx) && t.Baskets[idx[end]] == t.Baskets[idx[start]] {
			end++
		}
		b := make(Basket, 0, end-start)
		for _, i := range idx[start:end] {
			b = append(b, t.Products[i])
		}
		baskets = append(baskets, b)
		start = end
	}
	return baskets
}

// Permutations returns every ordered pair of distinct basket positions,
// k*(k-1) pairs for a basket of k entries.
func Permutations(b Basket) []Pair {
	if len(b) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(b)*(len(b)-1))
	for i, center := range b {
		for j, context := range b {
			if i == j {
				continue
			}
			pairs = append(pairs, Pair{center, context})
		}
	}
	return pairs
}

// CountPairs is the number of pairs Permutations yields over all baskets.
func CountPairs(baskets []Basket) int {
	n := 0
	for _, b := range baskets {
		n += len(b) * (len(b) - 1)
	}
	return n
}

type basketIterator struct {
	baskets []Basket
	pos     int
}

func newBasketIterator(baskets []Basket) *basketIterator {
	return &basketIterator{baskets: baskets}
}

// Next returns false once every basket has been handed out.
func (it *basketIterator) Next() (Basket, bool) {
	if it.pos >= len(it.baskets) {
		return nil, false
	}
	b := it.baskets[it.pos]
	it.pos++
	return b, true
}

// PairCache buffers positive pairs expanded from whole baskets until a
// batch can be cut from the front.
type PairCache struct {
	pairs []Pair
	it    *basketIterator
}

func NewPairCache(baskets []Basket) *PairCache {
	return &PairCache{it: newBasketIterator(baskets)}
}

// Fill expands baskets until at least n pairs are cached or the baskets run
// out. Running out leaves the cache short, which is not an error.
func (c *PairCache) Fill(n int) {
	for len(c.pairs) < n {
		b, ok := c.it.Next()
		if !ok {
			return
		}
		c.pairs = append(c.pairs, Permutations(b)...)
	}
}

// Peek returns up to n pairs from the front of the cache without removing them.
func (c *PairCache) Peek(n int) []Pair {
	if n > len(c.pairs) {
		n = len(c.pairs)
	}
	return c.pairs[:n:n]
}

// Take removes up to n pairs from the front of the cache.
func (c *PairCache) Take(n int) []Pair {
	if n > len(c.pairs) {
		n = len(c.pairs)
	}
	out := make([]Pair, n)
	copy(out, c.pairs[:n])
	c.pairs = c.pairs[n:]
	return out
}

func (c *PairCache) Len() int {
	return len(c.pairs)
}

// Exhausted reports whether the basket iterator has been drained.
func (c *PairCache) Exhausted() bool {
	return c.it.pos >= len(c.it.baskets)
}
