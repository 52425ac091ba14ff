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

// Package navigation holds the boundary algebra shared by both tree modes.
//
// A node of the Stern-Brocot tree is fully determined by its two bounds: the
// nearest fractions to its left and right among its ancestors (or the 0/1
// and 1/0 boundaries). The node value is the mediant of its bounds and each
// child replaces one bound with the node value. Paths of left/right turns
// from the root fold into bounds without building any node.
package navigation

import (
	"fmt"

	"github.com/bbva/sternbrocot/fraction"
)

// Side tells whether a node is the left or the right child of its parent.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "L"
	}
	return "R"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Bounds holds the fractions immediately to the left and to the right of a
// node subtree.
type Bounds struct {
	Left  fraction.Fraction
	Right fraction.Fraction
}

// RootBounds returns the bounds of the 1/1 root: 0/1 and 1/0.
func RootBounds() Bounds {
	return Bounds{Left: fraction.Zero, Right: fraction.Infinity}
}

// Node returns the fraction held by the node with these bounds.
func (b Bounds) Node() fraction.Fraction {
	return fraction.Mediant(b.Left, b.Right)
}

// Child returns the bounds of the child on the given side.
func (b Bounds) Child(side Side) Bounds {
	node := b.Node()
	if side == Left {
		return Bounds{Left: b.Left, Right: node}
	}
	return Bounds{Left: node, Right: b.Right}
}

// ChildFraction returns the fraction of the child on the given side, the
// mediant of the node and the bound on that side.
func (b Bounds) ChildFraction(side Side) fraction.Fraction {
	return b.Child(side).Node()
}

// Bound returns the bound on the given side.
func (b Bounds) Bound(side Side) fraction.Fraction {
	if side == Left {
		return b.Left
	}
	return b.Right
}

// Contains reports whether Left < f < Right.
func (b Bounds) Contains(f fraction.Fraction) bool {
	return b.Left.Less(f) && f.Less(b.Right)
}

// Toward returns the side of the node where f lies and false when f is
// the node itself.
func (b Bounds) Toward(f fraction.Fraction) (Side, bool) {
	switch fraction.Compare(f, b.Node()) {
	case fraction.Less:
		return Left, true
	case fraction.Greater:
		return Right, true
	default:
		return Left, false
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%s, %s)", b.Left, b.Right)
}
