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

import "errors"

var (
	// ErrInvalidTable is returned for basket tables with mismatched or empty columns.
	ErrInvalidTable = errors.New("invalid basket table")
	// ErrNegativeProduct is returned when a product id is below zero. Product
	// ids are positional indices and must be remapped by the caller first.
	ErrNegativeProduct = errors.New("negative product id")
	// ErrDistribution is returned when the cumulative count table cannot be built.
	ErrDistribution = errors.New("invalid sampling distribution")
	// ErrSamplingStalled is returned when constrained negative sampling hits its round cap.
	ErrSamplingStalled = errors.New("negative sampling did not converge")
	// ErrDegenerateCatalog is returned when context collisions are disallowed
	// but fewer than two products carry sampling mass.
	ErrDegenerateCatalog = errors.New("catalog too small for collision-free sampling")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)
