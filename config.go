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
	"os"

	"gopkg.in/yaml.v3"
)

// Config is fixed once a Streamer is built; the Streamer keeps its own copy.
type Config struct {
	BasketColumn           string  `yaml:"basket_column"`
	ProductColumn          string  `yaml:"product_column"`
	BatchSize              int     `yaml:"batch_size"`
	Shuffle                bool    `yaml:"shuffle"`
	NegativeSamples        int     `yaml:"negative_samples"`
	Power                  float64 `yaml:"power"`
	AllowContextCollisions bool    `yaml:"allow_context_collisions"`
	MaxSamplingRounds      int     `yaml:"max_sampling_rounds"`
	Seed                   int64   `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		BasketColumn:      DefaultBasketColumn,
		ProductColumn:     DefaultProductColumn,
		BatchSize:         8192,
		Shuffle:           true,
		Power:             0.75,
		MaxSamplingRounds: defaultMaxRounds,
		Seed:              1,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from
// the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: batch_size must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	case c.NegativeSamples < 0:
		return fmt.Errorf("%w: negative_samples must be >= 0, got %d", ErrInvalidConfig, c.NegativeSamples)
	case c.Power < 0 || math.IsNaN(c.Power) || math.IsInf(c.Power, 0):
		return fmt.Errorf("%w: power must be finite and >= 0, got %v", ErrInvalidConfig, c.Power)
	case c.MaxSamplingRounds <= 0:
		return fmt.Errorf("%w: max_sampling_rounds must be positive, got %d", ErrInvalidConfig, c.MaxSamplingRounds)
	case c.BasketColumn == "" || c.ProductColumn == "":
		return fmt.Errorf("%w: column names must not be empty", ErrInvalidConfig)
	}
	return nil
}
