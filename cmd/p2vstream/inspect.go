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
	"fmt"
	"math/rand"

	"github.com/alexandres/product2vec"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var inspectCmd = &cobra.Command{
	Use:   inspectCommand,
	Short: "Summarize baskets, pairs and the sampling catalog",
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, t, err := loadInput(cmd)
	if err != nil {
		return err
	}
	baskets := product2vec.SplitBaskets(t)
	sizes := make([]float64, len(baskets))
	for i, b := range baskets {
		sizes[i] = float64(len(b))
	}
	mean, std := stat.MeanStdDev(sizes, nil)

	sampler, err := product2vec.NewSampler(t, 1, 1, cfg.Power, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	counts := sampler.Counts()
	var seen int
	for _, c := range counts {
		if c > 0 {
			seen++
		}
	}
	pairs := product2vec.CountPairs(baskets)
	batches := (pairs + cfg.BatchSize - 1) / cfg.BatchSize

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rows            %d\n", t.Len())
	fmt.Fprintf(out, "baskets         %d\n", len(baskets))
	fmt.Fprintf(out, "basket size     %.2f +/- %.2f\n", mean, std)
	fmt.Fprintf(out, "positive pairs  %d\n", pairs)
	fmt.Fprintf(out, "batches/epoch   %d\n", batches)
	fmt.Fprintf(out, "catalog size    %d\n", len(counts))
	fmt.Fprintf(out, "products seen   %d\n", seen)
	fmt.Fprintf(out, "support         %d\n", sampler.Support())
	return nil
}
