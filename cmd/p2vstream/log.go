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
	"io"
	"log/slog"

	"github.com/google/uuid"
)

const (
	errorLogLevel = 0
	infoLogLevel  = 1
	debugLogLevel = 2
)

// newLogger maps the verbose flag onto slog levels and tags every record
// with a fresh run id.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelDebug
	switch {
	case verbose <= errorLogLevel:
		level = slog.LevelError
	case verbose == infoLogLevel:
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("run", uuid.NewString()))
}

type progressPrinter struct {
	n      uint64
	pairs  uint64
	mod    uint64
	logger *slog.Logger
}

func newProgressPrinter(mod uint64, logger *slog.Logger) *progressPrinter {
	return &progressPrinter{mod: mod, logger: logger}
}

func (p *progressPrinter) inc(pairs int) {
	p.n++
	p.pairs += uint64(pairs)
	if p.n%p.mod == 0 {
		p.logger.Debug("progress", slog.Uint64("batches", p.n), slog.Uint64("pairs", p.pairs))
	}
}
