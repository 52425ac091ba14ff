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

package materialized

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/bbva/sternbrocot/farey"
	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/metrics"
	"github.com/bbva/sternbrocot/navigation"
)

func fracs(s string) []fraction.Fraction {
	var fractions []fraction.Fraction
	for _, token := range strings.Fields(s) {
		f, err := fraction.Parse(token)
		if err != nil {
			panic(err)
		}
		fractions = append(fractions, f)
	}
	return fractions
}

func TestGenerateByDepth(t *testing.T) {

	testCases := []struct {
		depth    DepthBound
		expected []fraction.Fraction
	}{
		{0, fracs("1/1")},
		{1, fracs("1/2 1/1 2/1")},
		{2, fracs("1/3 1/2 2/3 1/1 3/2 2/1 3/1")},
		{3, fracs("1/4 1/3 2/5 1/2 3/5 2/3 3/4 1/1 4/3 3/2 5/3 2/1 5/2 3/1 4/1")},
	}

	for i, c := range testCases {
		root, err := Generate(c.depth)
		require.NoError(t, err)
		require.Equalf(t, c.expected, root.InOrder(), "The in-order list should match for test case %d", i)
		require.Equalf(t, len(c.expected), root.Size(), "The size should match for test case %d", i)
		require.Equalf(t, int(c.depth), root.Height(), "The height should match for test case %d", i)
	}
}

func TestGenerateByDenominator(t *testing.T) {

	testCases := []struct {
		bound    DenominatorBound
		expected []fraction.Fraction
	}{
		{NewDenominatorBound(0), fracs("1/1")},
		{NewDenominatorBound(2), fracs("1/1")},
		{NewDenominatorBound(3), fracs("1/2 1/1")},
		{NewDenominatorBound(4), fracs("1/3 1/2 2/3 1/1")},
		{NewDenominatorBound(6), fracs("1/5 1/4 1/3 2/5 1/2 3/5 2/3 3/4 4/5 1/1")},
		{
			DenominatorBound{Max: 3, Restriction: navigation.Restriction{MaxNumerator: 3}},
			fracs("1/2 1/1 3/2 2/1 3/1"),
		},
	}

	for i, c := range testCases {
		root, err := Generate(c.bound)
		require.NoError(t, err)
		require.Equalf(t, c.expected, root.InOrder(), "The in-order list should match for test case %d", i)
	}
}

func TestGenerateByDenominatorMatchesBruteForce(t *testing.T) {

	var previous []fraction.Fraction
	for m := uint64(2); m <= 30; m++ {
		root, err := Generate(NewDenominatorBound(m))
		require.NoError(t, err)

		listed := root.InOrder()
		for _, f := range listed {
			if f != fraction.One {
				require.Truef(t, f.Den < m, "%s should have a denominator below %d", f, m)
			}
		}

		expected, err := farey.Enumerate(m-1, navigation.ProperFractions)
		require.NoError(t, err)
		require.Equalf(t, append(expected, fraction.One), listed, "The tree should match the brute force list for bound %d", m)

		set := farey.NewSet()
		for _, f := range listed {
			set.Add(f)
		}
		for _, f := range previous {
			require.Truef(t, set.Has(f), "%s should remain under bound %d", f, m)
		}
		require.Truef(t, len(listed) >= len(previous), "The tree should not shrink for bound %d", m)
		previous = listed
	}
}

func TestGenerateKeepsBoundsInvariant(t *testing.T) {
	root, err := Generate(DepthBound(6))
	require.NoError(t, err)

	var check func(n *Node)
	check = func(n *Node) {
		require.True(t, n.Bounds.Contains(n.Fraction))
		require.Equal(t, fraction.Mediant(n.LeftBound(), n.RightBound()), n.Fraction)
		if n.Left != nil {
			require.True(t, n.Left.IsLeftChild)
			require.Equal(t, fraction.Mediant(n.Fraction, n.LeftBound()), n.Left.Fraction)
			require.Equal(t, n.Depth()+1, n.Left.Depth())
			check(n.Left)
		}
		if n.Right != nil {
			require.False(t, n.Right.IsLeftChild)
			require.Equal(t, fraction.Mediant(n.Fraction, n.RightBound()), n.Right.Fraction)
			check(n.Right)
		}
	}

	require.True(t, root.IsRoot())
	require.False(t, root.IsLeftChild)
	require.Equal(t, fraction.Zero, root.LeftBound())
	require.Equal(t, fraction.Infinity, root.RightBound())
	check(root)
}

func TestGenerateErrors(t *testing.T) {

	testCases := []struct {
		bound    Bound
		opts     []GeneratorOptionF
		expected error
	}{
		{nil, nil, ErrInvalidBound},
		{DepthBound(-1), nil, ErrInvalidBound},
		{DepthBound(63), nil, ErrTooLarge},
		{DepthBound(4), []GeneratorOptionF{SetNodeLimit(30)}, ErrTooLarge},
		{NewDenominatorBound(10), []GeneratorOptionF{SetNodeLimit(10)}, ErrTooLarge},
		{DenominatorBound{Max: 10}, nil, navigation.ErrUnbounded},
		{NewDenominatorBound(math.MaxUint64), nil, ErrInvalidBound},
	}

	for i, c := range testCases {
		root, err := Generate(c.bound, c.opts...)
		require.Nilf(t, root, "No tree should be returned for test case %d", i)
		require.Equalf(t, c.expected, errors.Cause(err), "The error should match for test case %d", i)
	}

	root, err := Generate(DepthBound(4), SetNodeLimit(31))
	require.NoError(t, err)
	require.Equal(t, 31, root.Size())

	root, err = Generate(DepthBound(12), SetNodeLimit(0))
	require.NoError(t, err)
	require.Equal(t, 1<<13-1, root.Size())
}

func TestRow(t *testing.T) {
	root, err := Generate(DepthBound(3))
	require.NoError(t, err)

	testCases := []struct {
		depth    int
		expected []fraction.Fraction
	}{
		{0, fracs("1/1")},
		{1, fracs("1/2 2/1")},
		{2, fracs("1/3 2/3 3/2 3/1")},
		{3, fracs("1/4 2/5 3/5 3/4 4/3 5/3 5/2 4/1")},
	}

	for i, c := range testCases {
		row, err := root.Row(c.depth)
		require.NoError(t, err)
		require.Equalf(t, c.expected, row, "The row should match for test case %d", i)
	}

	_, err = root.Row(4)
	require.Equal(t, ErrNodeAbsent, errors.Cause(err))

	_, err = root.Row(-1)
	require.Equal(t, ErrInvalidBound, errors.Cause(err))

	bounded, err := Generate(NewDenominatorBound(4))
	require.NoError(t, err)
	_, err = bounded.Row(1)
	require.Equal(t, ErrNodeAbsent, errors.Cause(err))
}

func TestSearch(t *testing.T) {
	root, err := Generate(NewDenominatorBound(20))
	require.NoError(t, err)

	for _, f := range root.InOrder() {
		node, err := root.Search(f)
		require.NoError(t, err)
		require.Equal(t, f, node.Fraction)
	}

	testCases := []struct {
		target   fraction.Fraction
		expected error
	}{
		{fraction.New(1, 20), ErrNotFound},
		{fraction.New(3, 2), ErrNotFound},
		{fraction.New(2, 4), fraction.ErrNotReduced},
		{fraction.New(1, 0), fraction.ErrZeroDenominator},
		{fraction.Zero, fraction.ErrNotPositive},
	}

	for i, c := range testCases {
		node, err := root.Search(c.target)
		require.Nilf(t, node, "No node should be returned for test case %d", i)
		require.Equalf(t, c.expected, errors.Cause(err), "The error should match for test case %d", i)
	}
}

func TestVisitors(t *testing.T) {
	root, err := Generate(DepthBound(1))
	require.NoError(t, err)

	require.Equal(t, "[1/1 [1/2] [2/1]]", root.String())

	indent := NewIndentVisitor()
	root.PreOrder(indent)
	require.Equal(t, "1/1 (0/1, 1/0)\n\t1/2 (0/1, 1/1)\n\t2/1 (1/1, 1/0)", indent.Result())

	frontier, err := Generate(DepthBound(0))
	require.NoError(t, err)
	require.True(t, frontier.IsFrontier())
	require.Equal(t, "[1/1]", frontier.String())
}

func TestGenerateMetricsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&log.LoggerOptions{
		Name:   "test",
		Output: &buf,
		Level:  log.Debug,
	})

	before := testutil.ToFloat64(metrics.MaterializedNodesGeneratedTotal)
	_, err := Generate(DepthBound(2), SetLogger(logger))
	require.NoError(t, err)

	require.Equal(t, float64(7), testutil.ToFloat64(metrics.MaterializedNodesGeneratedTotal)-before)
	require.Contains(t, buf.String(), "test: Generated 7 nodes under depth 2")

	_, err = Generate(DepthBound(2), SetLogger(nil))
	require.Error(t, err)
}
