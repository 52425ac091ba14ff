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

// Package farey enumerates reduced fractions by brute force over coprime
// pairs. It is slow and independent from the tree code, which makes it the
// reference the tree enumerations are checked against.
package farey

import (
	"github.com/google/btree"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/navigation"
)

const degree = 32

// Set is an ordered set of fractions.
type Set struct {
	tree *btree.BTreeG[fraction.Fraction]
}

// NewSet returns an empty set ordered by fraction.Compare.
func NewSet() *Set {
	return &Set{
		tree: btree.NewG(degree, func(a, b fraction.Fraction) bool {
			return a.Less(b)
		}),
	}
}

// Add inserts f unless an equal value is already present, and reports
// whether it was.
func (s *Set) Add(f fraction.Fraction) bool {
	if s.tree.Has(f) {
		return true
	}
	s.tree.ReplaceOrInsert(f)
	return false
}

// Has reports whether a value equal to f is present.
func (s *Set) Has(f fraction.Fraction) bool {
	return s.tree.Has(f)
}

// Len returns the number of fractions in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Slice returns the fractions in increasing order.
func (s *Set) Slice() []fraction.Fraction {
	fractions := make([]fraction.Fraction, 0, s.tree.Len())
	s.tree.Ascend(func(f fraction.Fraction) bool {
		fractions = append(fractions, f)
		return true
	})
	return fractions
}

// Between returns, in order, the fractions f with lo < f < hi. Either
// limit may be a boundary, 0/1 or 1/0.
func (s *Set) Between(lo, hi fraction.Fraction) ([]fraction.Fraction, error) {
	if _, err := fraction.CompareChecked(lo, hi); err != nil {
		return nil, err
	}
	fractions := []fraction.Fraction{}
	s.tree.AscendGreaterOrEqual(lo, func(f fraction.Fraction) bool {
		if fraction.Compare(f, hi) != fraction.Less {
			return false
		}
		if f.Greater(lo) {
			fractions = append(fractions, f)
		}
		return true
	})
	return fractions, nil
}

// Collect returns the set of every reduced n/d with 1 <= d <= bound and
// n >= 1 admitted by the restriction.
func Collect(bound uint64, r navigation.Restriction) (*Set, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	set := NewSet()
	for d := uint64(1); d <= bound; d++ {
		for n := uint64(1); ; n++ {
			if r.ProperOnly && n >= d {
				break
			}
			if r.MaxNumerator != 0 && n > r.MaxNumerator {
				break
			}
			f := fraction.New(n, d)
			if fraction.GCD(n, d) == 1 && r.Admits(f) {
				set.Add(f)
			}
		}
	}
	return set, nil
}

// Enumerate returns Collect in increasing order.
func Enumerate(bound uint64, r navigation.Restriction) ([]fraction.Fraction, error) {
	set, err := Collect(bound, r)
	if err != nil {
		return nil, err
	}
	return set.Slice(), nil
}

// Count returns the size of Collect.
func Count(bound uint64, r navigation.Restriction) (uint64, error) {
	set, err := Collect(bound, r)
	if err != nil {
		return 0, err
	}
	return uint64(set.Len()), nil
}
