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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexandres/product2vec"
	"github.com/spf13/cobra"
)

const (
	inspectCommand = "inspect"
	streamCommand  = "stream"

	defaultProgressInterval = 1000
)

// GLOBAL FLAGS

var verbose int
var dataPath, configPath string
var seed int64
var batchSize, negative, maxRounds int
var power float64
var shuffle, allowCollisions bool
var basketColumn, productColumn string

var rootCmd = &cobra.Command{
	Use:   "p2vstream",
	Short: "Stream product2vec training batches from basket data",
	Long: `p2vstream reads a (basket, product) CSV table, splits it into baskets and
emits skip-gram (center, context) batches with optional negative samples.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataPath, "data", "", "path to basket CSV with a header row")
	flags.StringVar(&configPath, "config", "", "path to YAML config, flags override its values")
	flags.IntVar(&verbose, "verbose", infoLogLevel, "verboseness (0 = errors only, 1 = info, 2 = debug)")
	flags.Int64Var(&seed, "seed", 1, "random seed for shuffling and negative sampling")
	flags.IntVar(&batchSize, "batch-size", 8192, "number of (center, context) pairs per batch")
	flags.IntVar(&negative, "negative", 0, "number of negative samples per pair, 0 disables sampling")
	flags.Float64Var(&power, "power", 0.75, "raise product counts to this power before sampling")
	flags.BoolVar(&shuffle, "shuffle", true, "shuffle baskets at the start of every epoch")
	flags.BoolVar(&allowCollisions, "allow-collisions", false, "allow a negative sample to equal its context")
	flags.IntVar(&maxRounds, "max-rounds", 1000, "rejection rounds before collision-free sampling gives up")
	flags.StringVar(&basketColumn, "basket-column", product2vec.DefaultBasketColumn, "basket id column")
	flags.StringVar(&productColumn, "product-column", product2vec.DefaultProductColumn, "product id column")

	rootCmd.AddCommand(inspectCmd, streamCmd)
}

// loadConfig starts from the config file (or defaults) and applies every
// flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (product2vec.Config, error) {
	cfg := product2vec.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = product2vec.LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize = batchSize
	}
	if flags.Changed("negative") {
		cfg.NegativeSamples = negative
	}
	if flags.Changed("power") {
		cfg.Power = power
	}
	if flags.Changed("shuffle") {
		cfg.Shuffle = shuffle
	}
	if flags.Changed("allow-collisions") {
		cfg.AllowContextCollisions = allowCollisions
	}
	if flags.Changed("max-rounds") {
		cfg.MaxSamplingRounds = maxRounds
	}
	if flags.Changed("basket-column") {
		cfg.BasketColumn = basketColumn
	}
	if flags.Changed("product-column") {
		cfg.ProductColumn = productColumn
	}
	return cfg, cfg.Validate()
}

func loadInput(cmd *cobra.Command) (product2vec.Config, *product2vec.Table, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, err
	}
	if dataPath == "" {
		return cfg, nil, fmt.Errorf("--data is required")
	}
	f, err := os.Open(dataPath)
	if err != nil {
		return cfg, nil, err
	}
	defer f.Close()
	t, err := readTable(f, cfg.BasketColumn, cfg.ProductColumn)
	return cfg, t, err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
