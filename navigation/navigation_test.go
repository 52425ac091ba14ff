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

package navigation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bbva/sternbrocot/fraction"
)

func TestRootBounds(t *testing.T) {
	bounds := RootBounds()
	require.Equal(t, fraction.One, bounds.Node())
	require.True(t, bounds.Contains(fraction.One))
	require.True(t, bounds.Contains(fraction.New(1000000, 1)))
	require.False(t, bounds.Contains(fraction.Zero))
	require.False(t, bounds.Contains(fraction.Infinity))
}

func TestChild(t *testing.T) {

	testCases := []struct {
		bounds   Bounds
		side     Side
		expected Bounds
	}{
		{RootBounds(), Left, Bounds{fraction.Zero, fraction.One}},
		{RootBounds(), Right, Bounds{fraction.One, fraction.Infinity}},
		{Bounds{fraction.Zero, fraction.One}, Right, Bounds{fraction.New(1, 2), fraction.One}},
		{Bounds{fraction.New(1, 2), fraction.One}, Left, Bounds{fraction.New(1, 2), fraction.New(2, 3)}},
	}

	for i, c := range testCases {
		child := c.bounds.Child(c.side)
		require.Equalf(t, c.expected, child, "The child bounds should match for test case %d", i)
		require.Truef(t, child.Contains(child.Node()), "The child should lie within its bounds for test case %d", i)
		require.Equalf(t, child.Node(), c.bounds.ChildFraction(c.side), "The child fraction should match for test case %d", i)
		require.Equalf(t, fraction.Mediant(c.bounds.Node(), c.bounds.Bound(c.side)), child.Node(), "The child should be the mediant with the bound for test case %d", i)
	}
}

func TestPathOf(t *testing.T) {

	testCases := []struct {
		target   fraction.Fraction
		expected string
	}{
		{fraction.One, "I"},
		{fraction.New(1, 2), "L"},
		{fraction.New(2, 1), "R"},
		{fraction.New(3, 7), "LLRR"},
		{fraction.New(3, 2), "RL"},
		{fraction.New(5, 2), "RRL"},
		{fraction.New(4, 3), "RLL"},
		{fraction.New(1, 5), "LLLL"},
	}

	for i, c := range testCases {
		path, err := PathOf(c.target)
		require.NoError(t, err)
		require.Equalf(t, c.expected, path.String(), "The path should match for test case %d", i)
		require.Equalf(t, c.target, path.Fraction(), "The path should fold back to the target for test case %d", i)

		parsed, err := ParsePath(c.expected)
		require.NoError(t, err)
		require.Equalf(t, c.target, parsed.Fraction(), "The parsed path should fold to the target for test case %d", i)
	}
}

func TestPathLengthMatchesContinuedFraction(t *testing.T) {

	targets := []fraction.Fraction{
		fraction.One,
		fraction.New(3, 7),
		fraction.New(355, 113),
		fraction.New(8, 5),
		fraction.New(1, 1000),
		fraction.New(1000, 999),
	}

	for i, target := range targets {
		path, err := PathOf(target)
		require.NoError(t, err)

		coefficients, err := fraction.ContinuedFraction(target)
		require.NoError(t, err)
		var sum int
		for _, a := range coefficients {
			sum += int(a)
		}
		require.Equalf(t, sum-1, path.Depth(), "The depth should match for test case %d", i)
	}
}

func TestPathOfInvalidTarget(t *testing.T) {
	_, err := PathOf(fraction.New(2, 4))
	require.Equal(t, fraction.ErrNotReduced, errors.Cause(err))

	_, err = PathOf(fraction.Zero)
	require.Equal(t, fraction.ErrNotPositive, errors.Cause(err))
}

func TestParsePath(t *testing.T) {
	path, err := ParsePath("lRr")
	require.NoError(t, err)
	require.Equal(t, Path{Left, Right, Right}, path)

	path, err = ParsePath("")
	require.NoError(t, err)
	require.Equal(t, fraction.One, path.Fraction())

	_, err = ParsePath("LXR")
	require.Equal(t, ErrMalformedPath, errors.Cause(err))
}

func TestRestriction(t *testing.T) {

	testCases := []struct {
		restriction Restriction
		f           fraction.Fraction
		admits      bool
		beyond      bool
	}{
		{ProperFractions, fraction.New(1, 2), true, false},
		{ProperFractions, fraction.One, false, true},
		{ProperFractions, fraction.New(3, 2), false, true},
		{Restriction{MaxNumerator: 3}, fraction.New(3, 2), true, false},
		{Restriction{MaxNumerator: 3}, fraction.New(7, 2), false, true},
		{Restriction{MaxNumerator: 3}, fraction.New(4, 5), false, false},
		{Restriction{MaxNumerator: 3}, fraction.New(3, 1), true, false},
		{Restriction{ProperOnly: true, MaxNumerator: 2}, fraction.New(3, 4), false, false},
		{Restriction{}, fraction.New(7, 2), true, false},
	}

	for i, c := range testCases {
		require.Equalf(t, c.admits, c.restriction.Admits(c.f), "The admission should match for test case %d", i)
		require.Equalf(t, c.beyond, c.restriction.Beyond(c.f), "The ceiling check should match for test case %d", i)
	}

	require.NoError(t, ProperFractions.Validate())
	require.Equal(t, ErrUnbounded, errors.Cause(Restriction{}.Validate()))
	require.Equal(t, "numerator <= 3", Restriction{MaxNumerator: 3}.String())
}
