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
	"math"
)

// ProductID is a dense, non-negative product index.
type ProductID = int64

// MaxProductID bounds product ids so the dense count and sampling tables
// stay addressable.
const MaxProductID = math.MaxInt32 - 1

const (
	DefaultBasketColumn  = "basket"
	DefaultProductColumn = "product"
)

// Table is a columnar (basket, product) table. Row i is the pair
// (Baskets[i], Products[i]).
type Table struct {
	BasketColumn  string
	ProductColumn string
	Baskets       []int64
	Products      []ProductID
}

// NewTable checks that both columns line up and that every product id is
// non-negative.
func NewTable(baskets []int64, products []ProductID) (*Table, error) {
	t := &Table{
		BasketColumn:  DefaultBasketColumn,
		ProductColumn: DefaultProductColumn,
		Baskets:       baskets,
		Products:      products,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Validate() error {
	if len(t.Baskets) != len(t.Products) {
		return fmt.Errorf("%w: %d basket ids, %d product ids", ErrInvalidTable, len(t.Baskets), len(t.Products))
	}
	if len(t.Products) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidTable)
	}
	for i, p := range t.Products {
		if p < 0 {
			return fmt.Errorf("%w: row %d has %s %d", ErrNegativeProduct, i, t.ProductColumn, p)
		}
		if p > MaxProductID {
			return fmt.Errorf("%w: row %d has %s %d above %d", ErrInvalidTable, i, t.ProductColumn, p, MaxProductID)
		}
	}
	return nil
}

func (t *Table) Len() int {
	return len(t.Products)
}

// MaxProduct returns the largest product id, or -1 for an empty table.
func (t *Table) MaxProduct() ProductID {
	m := ProductID(-1)
	for _, p := range t.Products {
		if p > m {
			m = p
		}
	}
	return m
}
