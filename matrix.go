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

// IDMatrix is a dense row-major matrix of product ids.
type IDMatrix struct {
	Rows, Cols int
	Data       []ProductID
}

func NewIDMatrix(rows, cols int) *IDMatrix {
	return &IDMatrix{rows, cols, make([]ProductID, rows*cols)}
}

func (m *IDMatrix) At(row, col int) ProductID {
	return m.Data[row*m.Cols+col]
}

func (m *IDMatrix) Set(row, col int, v ProductID) {
	m.Data[row*m.Cols+col] = v
}

// Row returns a view of row i; writes go through to the matrix.
func (m *IDMatrix) Row(i int) []ProductID {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// Col copies column j.
func (m *IDMatrix) Col(j int) []ProductID {
	col := make([]ProductID, m.Rows)
	for i := range col {
		col[i] = m.At(i, j)
	}
	return col
}

// T returns the transpose as a new matrix.
func (m *IDMatrix) T() *IDMatrix {
	t := NewIDMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			t.Set(j, i, m.At(i, j))
		}
	}
	return t
}
