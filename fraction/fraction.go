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

// Package fraction implements the two-integer fractions the Stern-Brocot
// tree is made of: mediants, exact ordering and parsing.
//
// Fractions are never divided. Ordering is computed by cross
// multiplication with 128-bit intermediate products, so comparisons stay
// exact for any pair of uint64 components. Mediants add components and
// wrap around past math.MaxUint64; bounded queries built on them accept
// bounds up to MaxComponent only.
package fraction

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

var (
	// ErrZeroDenominator is returned for a zero denominator on anything
	// other than the 1/0 boundary.
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrNotPositive is returned when a tree node is requested for zero.
	ErrNotPositive = errors.New("fraction is not positive")

	// ErrNotReduced is returned when a tree node is requested for a fraction
	// not in lowest terms. The tree only holds reduced fractions.
	ErrNotReduced = errors.New("fraction is not in lowest terms")

	// ErrMalformed is returned by Parse.
	ErrMalformed = errors.New("malformed fraction")
)

// MaxComponent is the largest numerator or denominator bound under which
// the mediant of two fractions cannot wrap around.
const MaxComponent = math.MaxUint64 / 2

var (
	// Zero is the left boundary of the whole tree.
	Zero = Fraction{0, 1}
	// One is the root of the tree.
	One = Fraction{1, 1}
	// Infinity is the right boundary of the whole tree.
	Infinity = Fraction{1, 0}
)

// Fraction is a numerator/denominator pair. Equality is by pair, so 1/2 and
// 2/4 are different values that Compare as Equal.
type Fraction struct {
	Num uint64
	Den uint64
}

// New returns num/den as is, without reducing it.
func New(num, den uint64) Fraction {
	return Fraction{Num: num, Den: den}
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Mediant returns (a.Num+b.Num)/(a.Den+b.Den). Components are not checked
// for overflow, see MaxComponent.
func Mediant(a, b Fraction) Fraction {
	return Fraction{a.Num + b.Num, a.Den + b.Den}
}

// Order is the result of Compare.
type Order int

const (
	Less    Order = -1
	Equal   Order = 0
	Greater Order = 1
)

func (o Order) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare orders a and b by the sign of a.Num*b.Den - b.Num*a.Den.
//
// Compare is unchecked: arguments that fail Validate give meaningless
// results (0/0 compares Equal to everything). With a valid 1/0 every
// finite fraction compares Less than it. Use CompareChecked on values that
// have not been validated.
func Compare(a, b Fraction) Order {
	lhsHi, lhsLo := bits.Mul64(a.Num, b.Den)
	rhsHi, rhsLo := bits.Mul64(b.Num, a.Den)
	switch {
	case lhsHi < rhsHi:
		return Less
	case lhsHi > rhsHi:
		return Greater
	case lhsLo < rhsLo:
		return Less
	case lhsLo > rhsLo:
		return Greater
	default:
		return Equal
	}
}

// CompareChecked validates both arguments before comparing them.
func CompareChecked(a, b Fraction) (Order, error) {
	if err := a.Validate(); err != nil {
		return Equal, err
	}
	if err := b.Validate(); err != nil {
		return Equal, err
	}
	return Compare(a, b), nil
}

// Less reports whether f < g.
func (f Fraction) Less(g Fraction) bool {
	return Compare(f, g) == Less
}

// Greater reports whether f > g.
func (f Fraction) Greater(g Fraction) bool {
	return Compare(f, g) == Greater
}

// Validate rejects zero denominators except for the 1/0 boundary.
func (f Fraction) Validate() error {
	if f.Den == 0 && f != Infinity {
		return errors.Wrapf(ErrZeroDenominator, "invalid fraction %s", f)
	}
	return nil
}

// ValidateTarget checks that f can be found in the tree: a positive finite
// fraction in lowest terms.
func (f Fraction) ValidateTarget() error {
	if f.Den == 0 {
		return errors.Wrapf(ErrZeroDenominator, "invalid target %s", f)
	}
	if f.Num == 0 {
		return errors.Wrapf(ErrNotPositive, "invalid target %s", f)
	}
	if GCD(f.Num, f.Den) != 1 {
		return errors.Wrapf(ErrNotReduced, "invalid target %s", f)
	}
	return nil
}

// IsProper reports whether f < 1.
func (f Fraction) IsProper() bool {
	return f.Num < f.Den
}

// IsInfinity reports whether f is the 1/0 boundary.
func (f Fraction) IsInfinity() bool {
	return f == Infinity
}

// Reduced returns f in lowest terms. 0/0 is returned unchanged.
func (f Fraction) Reduced() Fraction {
	g := GCD(f.Num, f.Den)
	if g == 0 {
		return f
	}
	return Fraction{f.Num / g, f.Den / g}
}

// GCD is the greatest common divisor, with GCD(0, 0) = 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ContinuedFraction returns the canonical coefficients [a0; a1, ..., an] of
// a finite fraction. The last coefficient is greater than one unless the
// expansion is the single term of an integer.
func ContinuedFraction(f Fraction) ([]uint64, error) {
	if f.Den == 0 {
		return nil, errors.Wrapf(ErrZeroDenominator, "no expansion for %s", f)
	}
	var coefficients []uint64
	num, den := f.Num, f.Den
	for den != 0 {
		coefficients = append(coefficients, num/den)
		num, den = den, num%den
	}
	return coefficients, nil
}
