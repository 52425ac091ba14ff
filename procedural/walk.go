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

package procedural

import (
	"github.com/pkg/errors"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/navigation"
)

// Walk calls fn, in increasing order, with every node whose denominator is
// below bound and whose fraction the restriction admits. It starts at the
// smallest such fraction and chains right neighbors, so it only keeps the
// ancestors of the current node alive. Returning false from fn stops the
// walk.
func Walk(bound uint64, r navigation.Restriction, fn func(*Node) bool) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if bound < 2 {
		return errors.Wrapf(ErrOutOfBound, "bound %d admits no node", bound)
	}
	if err := checkBound(bound); err != nil {
		return err
	}

	node, err := Root().LeftmostDescendant(bound)
	if err != nil {
		return err
	}

	for !r.Beyond(node.fraction) {
		if r.Admits(node.fraction) && !fn(node) {
			return nil
		}
		node, err = node.RightNeighbor(bound)
		if errors.Cause(err) == ErrNoNeighbor {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Sequence collects the fractions visited by Walk.
func Sequence(bound uint64, r navigation.Restriction) ([]fraction.Fraction, error) {
	fractions := []fraction.Fraction{}
	err := Walk(bound, r, func(n *Node) bool {
		fractions = append(fractions, n.fraction)
		return true
	})
	if err != nil {
		return nil, err
	}
	return fractions, nil
}

// Approximate returns the two consecutive fractions with a denominator
// below bound that enclose target. Both are target itself when its
// denominator is already below bound. The upper one may be 1/0 and the
// lower one 0/1.
func Approximate(target fraction.Fraction, bound uint64) (lower, upper fraction.Fraction, err error) {
	target = target.Reduced()
	if err = target.ValidateTarget(); err != nil {
		return
	}
	if bound < 2 {
		err = errors.Wrapf(ErrOutOfBound, "bound %d admits no node", bound)
		return
	}
	if err = checkBound(bound); err != nil {
		return
	}

	node := Root()
	for {
		side, ok := node.bounds.Toward(target)
		if !ok {
			return target, target, nil
		}
		if node.bounds.ChildFraction(side).Den >= bound {
			if side == navigation.Left {
				return node.bounds.Left, node.fraction, nil
			}
			return node.fraction, node.bounds.Right, nil
		}
		node = node.child(side)
	}
}

// Closest returns the fraction with a denominator below bound nearest to
// target. Ties go to the smaller one.
func Closest(target fraction.Fraction, bound uint64) (fraction.Fraction, error) {
	lower, upper, err := Approximate(target, bound)
	if err != nil {
		return fraction.Fraction{}, err
	}
	if lower == upper || upper.IsInfinity() {
		return lower, nil
	}

	t, err := target.Rat()
	if err != nil {
		return fraction.Fraction{}, err
	}
	l, err := lower.Rat()
	if err != nil {
		return fraction.Fraction{}, err
	}
	u, err := upper.Rat()
	if err != nil {
		return fraction.Fraction{}, err
	}

	below := l.Sub(t, l)
	above := u.Sub(u, t)
	if above.Cmp(below) < 0 {
		return upper, nil
	}
	return lower, nil
}
