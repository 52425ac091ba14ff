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
	"strconv"

	"github.com/pkg/errors"

	"github.com/bbva/sternbrocot/fraction"
)

// ErrUnbounded is returned when a denominator bound alone would admit an
// infinite number of nodes: the right spine 2/1, 3/1, ... never grows its
// denominator.
var ErrUnbounded = errors.New("restriction admits infinitely many fractions under a denominator bound")

// Restriction is the predicate applied on top of a denominator bound.
//
// ProperOnly keeps the left half of the tree (values below 1), the
// historical behaviour of the denominator-bounded modes. MaxNumerator, when
// not zero, keeps fractions whose numerator does not exceed it. At least one
// of them must be set for a denominator-bounded query to terminate.
type Restriction struct {
	ProperOnly   bool
	MaxNumerator uint64
}

// ProperFractions restricts to values strictly below 1.
var ProperFractions = Restriction{ProperOnly: true}

// Admits tells whether f passes the predicate.
func (r Restriction) Admits(f fraction.Fraction) bool {
	if r.ProperOnly && !f.IsProper() {
		return false
	}
	if r.MaxNumerator != 0 && f.Num > r.MaxNumerator {
		return false
	}
	return true
}

// Finite reports whether the predicate combined with a denominator bound
// admits finitely many fractions.
func (r Restriction) Finite() bool {
	return r.ProperOnly || r.MaxNumerator != 0
}

// Validate returns ErrUnbounded for restrictions that are not Finite.
func (r Restriction) Validate() error {
	if !r.Finite() {
		return errors.Wrapf(ErrUnbounded, "restriction %s", r)
	}
	return nil
}

// Ceiling is an upper limit of the admitted values: 1/1 for proper
// fractions (exclusive), MaxNumerator/1 otherwise (inclusive), the lowest of
// both when both apply. Ordered walks stop once past it.
func (r Restriction) Ceiling() fraction.Fraction {
	if r.ProperOnly {
		return fraction.One
	}
	if r.MaxNumerator != 0 {
		return fraction.New(r.MaxNumerator, 1)
	}
	return fraction.Infinity
}

// Beyond reports whether f and everything to its right fail the predicate.
func (r Restriction) Beyond(f fraction.Fraction) bool {
	ceiling := r.Ceiling()
	if r.ProperOnly {
		return fraction.Compare(f, ceiling) != fraction.Less
	}
	if ceiling.IsInfinity() {
		return false
	}
	return f.Greater(ceiling)
}

func (r Restriction) String() string {
	switch {
	case r.ProperOnly && r.MaxNumerator != 0:
		return "proper fractions with numerator <= " + strconv.FormatUint(r.MaxNumerator, 10)
	case r.ProperOnly:
		return "proper fractions"
	case r.MaxNumerator != 0:
		return "numerator <= " + strconv.FormatUint(r.MaxNumerator, 10)
	default:
		return "unrestricted"
	}
}
