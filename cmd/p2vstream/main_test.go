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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaskets = `basket,product
10,0
10,1
10,2
20,1
20,3
`

func writeBaskets(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baskets.csv")
	require.NoError(t, os.WriteFile(path, []byte(testBaskets), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Definition(t *testing.T) {
	assert.Equal(t, "p2vstream", rootCmd.Use)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, inspectCommand)
	assert.Contains(t, names, streamCommand)

	f := rootCmd.PersistentFlags().Lookup("power")
	require.NotNil(t, f)
	assert.Equal(t, "0.75", f.DefValue)
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, inspectCommand, "--data", writeBaskets(t), "--batch-size", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "rows            5\n")
	assert.Contains(t, out, "baskets         2\n")
	assert.Contains(t, out, "basket size     2.50 +/- 0.71\n")
	assert.Contains(t, out, "positive pairs  8\n")
	assert.Contains(t, out, "batches/epoch   2\n")
	assert.Contains(t, out, "catalog size    4\n")
	assert.Contains(t, out, "support         4\n")
}

func TestStream(t *testing.T) {
	_, logs, err := execute(t, streamCommand,
		"--data", writeBaskets(t),
		"--batch-size", "3",
		"--negative", "2",
		"--epochs", "2",
		"--verbose", "2",
	)
	require.NoError(t, err)

	assert.Contains(t, logs, "streamer ready")
	assert.Contains(t, logs, "epoch=1")
	assert.Contains(t, logs, "epoch=2")
	assert.Contains(t, logs, "pairs=8")
	assert.Contains(t, logs, "negatives=16")
	assert.Contains(t, logs, "run=")
}

func TestStreamRequiresData(t *testing.T) {
	dataPath = ""
	_, _, err := execute(t, streamCommand, "--data", "")
	assert.Error(t, err)
}

func TestInspectSupportCountsUnseenProductsAtZeroPower(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaps.csv")
	require.NoError(t, os.WriteFile(path, []byte("basket,product\n1,0\n1,3\n"), 0644))

	out, _, err := execute(t, inspectCommand, "--data", path, "--power", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog size    4\n")
	assert.Contains(t, out, "products seen   2\n")
	assert.Contains(t, out, "support         4\n")
}
