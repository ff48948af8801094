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
	"strings"
	"testing"

	"github.com/alexandres/product2vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		basket   string
		product  string
		wantErr  bool
		baskets  []int64
		products []product2vec.ProductID
	}{
		{
			name:     "default columns",
			input:    "basket,product\n1,4\n1,2\n2,0\n",
			basket:   "basket",
			product:  "product",
			baskets:  []int64{1, 1, 2},
			products: []product2vec.ProductID{4, 2, 0},
		},
		{
			name:     "renamed and reordered columns",
			input:    "sku,qty,order_id\n7,1,100\n3,2,100\n",
			basket:   "order_id",
			product:  "sku",
			baskets:  []int64{100, 100},
			products: []product2vec.ProductID{7, 3},
		},
		{
			name:    "missing column",
			input:   "basket,item\n1,2\n",
			basket:  "basket",
			product: "product",
			wantErr: true,
		},
		{
			name:    "non integer product",
			input:   "basket,product\n1,apple\n",
			basket:  "basket",
			product: "product",
			wantErr: true,
		},
		{
			name:    "negative product",
			input:   "basket,product\n1,-2\n",
			basket:  "basket",
			product: "product",
			wantErr: true,
		},
		{
			name:    "header only",
			input:   "basket,product\n",
			basket:  "basket",
			product: "product",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readTable(strings.NewReader(tt.input), tt.basket, tt.product)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.baskets, got.Baskets)
			assert.Equal(t, tt.products, got.Products)
			assert.Equal(t, tt.product, got.ProductColumn)
		})
	}
}
