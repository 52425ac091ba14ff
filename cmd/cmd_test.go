/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/materialized"
	"github.com/bbva/sternbrocot/procedural"
)

func execute(args ...string) (string, string, error) {
	previous := log.Default()
	defer log.SetDefault(previous)

	root := NewRoot()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommands(t *testing.T) {

	testCases := []struct {
		args     []string
		expected string
	}{
		{[]string{"tree", "--depth", "2"}, "1/3 1/2 2/3 1/1 3/2 2/1 3/1\n"},
		{[]string{"tree", "--bound", "4"}, "1/3 1/2 2/3 1/1\n"},
		{[]string{"tree", "--depth", "1", "--format", "nested"}, "[1/1 [1/2] [2/1]]\n"},
		{[]string{"tree", "--depth", "1", "--format", "indent"}, "1/1 (0/1, 1/0)\n\t1/2 (0/1, 1/1)\n\t2/1 (1/1, 1/0)\n"},
		{[]string{"tree", "--depth", "2", "--row", "2"}, "1/3 2/3 3/2 3/1\n"},
		{[]string{"tree", "--bound", "8", "--search", "3/7"}, "3/7 depth 4 bounds (1/3, 1/2)\n"},
		{[]string{"locate", "3/7", "1/1"}, "3/7 path LLRR depth 4 bounds (1/3, 1/2) cf [0 2 3]\n1/1 path I depth 0 bounds (0/1, 1/0) cf [1]\n"},
		{[]string{"path", "LLRR", "rl"}, "LLRR 3/7\nRL 3/2\n"},
		{[]string{"neighbors", "--bound", "4", "1/3", "2/3"}, "0/1 < 1/3 < 1/2\n1/2 < 2/3 < 1/1\n"},
		{[]string{"size", "--bound", "5", "--verify"}, "9\n"},
		{[]string{"sequence", "--bound", "5"}, "1/4 1/3 1/2 2/3 3/4\n"},
		{[]string{"sequence", "--bound", "3", "--proper=false", "--max-numerator", "2"}, "1/2 1/1 2/1\n"},
		{[]string{"approx", "--bound", "100", "355/113"}, "355/113 in [311/99, 22/7] closest 311/99\n"},
	}

	for i, c := range testCases {
		stdout, _, err := execute(c.args...)
		require.NoErrorf(t, err, "The command should succeed for test case %d", i)
		require.Equalf(t, c.expected, stdout, "The output should match for test case %d", i)
	}
}

func TestCommandErrors(t *testing.T) {

	testCases := []struct {
		args     []string
		expected error
	}{
		{[]string{"locate", "2/4"}, fraction.ErrNotReduced},
		{[]string{"locate", "x"}, fraction.ErrMalformed},
		{[]string{"neighbors", "--bound", "4", "3/4"}, procedural.ErrOutOfBound},
		{[]string{"tree", "--depth", "1", "--row", "3"}, materialized.ErrNodeAbsent},
		{[]string{"tree", "--bound", "4", "--search", "3/4"}, materialized.ErrNotFound},
		{[]string{"tree", "--depth", "30", "--node-limit", "1000"}, materialized.ErrTooLarge},
	}

	for i, c := range testCases {
		_, _, err := execute(c.args...)
		require.Equalf(t, c.expected, errors.Cause(err), "The error should match for test case %d", i)
	}

	_, _, err := execute("size", "--proper=false")
	require.Error(t, err)

	_, _, err = execute("--log", "bogus", "sequence")
	require.Error(t, err)

	_, _, err = execute("tree", "--format", "json")
	require.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("STERNBROCOT_BOUND", "5")
	stdout, _, err := execute("sequence")
	require.NoError(t, err)
	require.Equal(t, "1/4 1/3 1/2 2/3 3/4\n", stdout)

	t.Setenv("STERNBROCOT_MAX_NUMERATOR", "1")
	stdout, _, err = execute("sequence")
	require.NoError(t, err)
	require.Equal(t, "1/4 1/3 1/2\n", stdout)

	// flags take precedence
	stdout, _, err = execute("sequence", "--bound", "3", "--max-numerator", "0")
	require.NoError(t, err)
	require.Equal(t, "1/2\n", stdout)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sternbrocot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bound: 4\nlog: debug\n"), 0600))

	stdout, stderr, err := execute("--config", path, "sequence")
	require.NoError(t, err)
	require.Equal(t, "1/3 1/2 2/3\n", stdout)
	assert.Contains(t, stderr, "[DEBUG]")

	stdout, _, err = execute("--config", path, "--bound", "3", "sequence")
	require.NoError(t, err)
	require.Equal(t, "1/2\n", stdout)

	_, _, err = execute("--config", filepath.Join(t.TempDir(), "missing.yaml"), "sequence")
	require.Error(t, err)
}

func TestMetrics(t *testing.T) {
	stdout, _, err := execute("--metrics", "size", "--bound", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Equal(t, "3", lines[0])
	assert.Contains(t, stdout, "sternbrocot_procedural_size_visits_total ")
	assert.Contains(t, stdout, "sternbrocot_materialized_nodes_generated_total ")

	stdout, _, err = execute("--metrics", "neighbors", "--bound", "4", "2/3")
	require.NoError(t, err)
	assert.Contains(t, stdout, `sternbrocot_procedural_neighbor_queries_total{side="left"} `)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute("version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "sternbrocot "))
}
