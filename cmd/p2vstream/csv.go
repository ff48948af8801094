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

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexandres/product2vec"
)

// readTable loads a basket table from CSV. The first record is the header;
// both id columns must hold integers.
func readTable(r io.Reader, basketColumn, productColumn string) (*product2vec.Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	bi, pi := -1, -1
	for i, name := range header {
		switch name {
		case basketColumn:
			bi = i
		case productColumn:
			pi = i
		}
	}
	if bi < 0 || pi < 0 {
		return nil, fmt.Errorf("header %v lacks %q or %q", header, basketColumn, productColumn)
	}

	var baskets, products []int64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		b, err := strconv.ParseInt(rec[bi], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, basketColumn, err)
		}
		p, err := strconv.ParseInt(rec[pi], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, productColumn, err)
		}
		baskets = append(baskets, b)
		products = append(products, p)
	}

	t := &product2vec.Table{
		BasketColumn:  basketColumn,
		ProductColumn: productColumn,
		Baskets:       baskets,
		Products:      products,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
