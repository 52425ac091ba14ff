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
	"github.com/bbva/sternbrocot/metrics"
	"github.com/bbva/sternbrocot/navigation"
)

// LeftmostDescendant follows left children while their denominator stays
// below bound and returns the last node reached, n itself if its left child
// is already out of bound.
func (n *Node) LeftmostDescendant(bound uint64) (*Node, error) {
	if err := checkBound(bound); err != nil {
		return nil, err
	}
	return n.outermostDescendant(navigation.Left, bound)
}

// RightmostDescendant follows right children while their denominator stays
// below bound. Nodes bounded by 1/0 on the right never grow the denominator
// that way and yield ErrUnbounded.
func (n *Node) RightmostDescendant(bound uint64) (*Node, error) {
	if err := checkBound(bound); err != nil {
		return nil, err
	}
	return n.outermostDescendant(navigation.Right, bound)
}

func (n *Node) outermostDescendant(side navigation.Side, bound uint64) (*Node, error) {
	current := n
	for current.bounds.ChildFraction(side).Den < bound {
		if current.bounds.Bound(side).Den == 0 {
			return nil, errors.Wrapf(ErrUnbounded, "%s descendants of %s", side, n)
		}
		current = current.child(side)
	}
	return current, nil
}

// LowestRightAncestor climbs until the parent is a right child and returns
// that parent. The climb stops at the root, which borders both 0/1 and 1/0
// and is returned as is.
func (n *Node) LowestRightAncestor() *Node {
	current := n
	for current.parent != nil {
		if !current.parent.isLeftChild {
			return current.parent
		}
		current = current.parent
	}
	return current
}

// LowestLeftAncestor climbs until the parent is a left child and returns
// that parent, or the root.
func (n *Node) LowestLeftAncestor() *Node {
	current := n
	for current.parent != nil {
		if current.parent.isLeftChild {
			return current.parent
		}
		current = current.parent
	}
	return current
}

// LeftNeighbor returns the node holding the largest fraction smaller than
// n among those with a denominator below bound.
func (n *Node) LeftNeighbor(bound uint64) (*Node, error) {
	return n.neighbor(navigation.Left, bound)
}

// RightNeighbor returns the node holding the smallest fraction greater than
// n among those with a denominator below bound.
func (n *Node) RightNeighbor(bound uint64) (*Node, error) {
	return n.neighbor(navigation.Right, bound)
}

func (n *Node) neighbor(side navigation.Side, bound uint64) (*Node, error) {
	if err := checkBound(bound); err != nil {
		return nil, err
	}
	if n.fraction.Den >= bound {
		return nil, errors.Wrapf(ErrOutOfBound, "%s has a denominator not below %d", n, bound)
	}
	metrics.ProceduralNeighborQueriesTotal.WithLabelValues(sideLabel(side)).Inc()

	if n.bounds.ChildFraction(side).Den < bound {
		// the neighbor is the innermost descendant of the child on that side
		return n.child(side).outermostDescendant(side.Opposite(), bound)
	}

	// the neighbor is the bound on that side, found among the ancestors
	var neighbor *Node
	if n.isOn(side) {
		neighbor = n.lowestAncestorOn(side.Opposite()).parent
	} else {
		neighbor = n.parent
	}
	if neighbor == nil {
		return nil, errors.Wrapf(ErrNoNeighbor, "%s neighbor of %s is the boundary %s", sideLabel(side), n, n.bounds.Bound(side))
	}
	return neighbor, nil
}

// isOn reports whether n is a child on the given side. The root is neither.
func (n *Node) isOn(side navigation.Side) bool {
	if side == navigation.Left {
		return n.IsLeftChild()
	}
	return n.IsRightChild()
}

func (n *Node) lowestAncestorOn(side navigation.Side) *Node {
	if side == navigation.Left {
		return n.LowestLeftAncestor()
	}
	return n.LowestRightAncestor()
}

func sideLabel(side navigation.Side) string {
	if side == navigation.Left {
		return "left"
	}
	return "right"
}

// Neighbors returns both neighbors of n under bound. Missing neighbors,
// the 0/1 and 1/0 boundaries, are returned as nil.
func (n *Node) Neighbors(bound uint64) (left, right *Node, err error) {
	left, err = n.LeftNeighbor(bound)
	if err != nil && errors.Cause(err) != ErrNoNeighbor {
		return nil, nil, err
	}
	right, err = n.RightNeighbor(bound)
	if err != nil && errors.Cause(err) != ErrNoNeighbor {
		return nil, nil, err
	}
	return left, right, nil
}

// NeighborFractions returns the fractions of a neighbor pair of n, the
// boundaries of n standing for missing neighbors.
func NeighborFractions(n, left, right *Node) (fraction.Fraction, fraction.Fraction) {
	lf, rf := n.LeftBound(), n.RightBound()
	if left != nil {
		lf = left.fraction
	}
	if right != nil {
		rf = right.fraction
	}
	return lf, rf
}
