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
	"log/slog"
	"math/rand"
	"time"

	"github.com/alexandres/product2vec"
	"github.com/spf13/cobra"
)

var epochs int
var progressInterval uint64

var streamCmd = &cobra.Command{
	Use:   streamCommand,
	Short: "Run epochs of batches through the streamer and report totals",
	RunE:  runStream,
}

func init() {
	streamCmd.Flags().IntVar(&epochs, "epochs", 1, "how many times to process the baskets")
	streamCmd.Flags().Uint64Var(&progressInterval, "progress", defaultProgressInterval, "log progress every this many batches")
}

func runStream(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	cfg, t, err := loadInput(cmd)
	if err != nil {
		return err
	}
	s, err := product2vec.NewStreamer(t, cfg, rand.New(rand.NewSource(cfg.Seed)), product2vec.WithLogger(logger))
	if err != nil {
		return err
	}
	if progressInterval == 0 {
		progressInterval = defaultProgressInterval
	}

	for e := 0; e < epochs; e++ {
		if e > 0 {
			s.Reset()
		}
		startAt := time.Now()
		pp := newProgressPrinter(progressInterval, logger)
		var negatives int
		err := s.Stream(cmd.Context(), func(b *product2vec.Batch) error {
			pp.inc(b.Len())
			negatives += len(b.Negatives.Data)
			return nil
		})
		if err != nil {
			return err
		}
		logger.Info("epoch done",
			slog.Int("epoch", s.Epoch()),
			slog.Uint64("batches", pp.n),
			slog.Uint64("pairs", pp.pairs),
			slog.Int("negatives", negatives),
			slog.Duration("elapsed", time.Since(startAt)))
	}
	return nil
}
