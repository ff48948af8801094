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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountProducts(t *testing.T) {
	tab := mustTable(t, []int64{0, 2, 2}, []int64{5, 2})
	counts, err := CountProducts(tab)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 3, 0, 0, 1}, counts)
}

func TestCountProductsRejectsNegativeIDs(t *testing.T) {
	tab := &Table{Baskets: []int64{1}, Products: []ProductID{-1}, ProductColumn: "product"}
	_, err := CountProducts(tab)
	assert.ErrorIs(t, err, ErrNegativeProduct)
}

func TestCountProductsRejectsHugeIDs(t *testing.T) {
	for _, id := range []ProductID{math.MaxInt64, 1 << 62, MaxProductID + 1} {
		tab := &Table{Baskets: []int64{1, 1}, Products: []ProductID{0, id}, ProductColumn: "product"}
		_, err := CountProducts(tab)
		assert.ErrorIs(t, err, ErrInvalidTable, "id %d", id)
	}
}
