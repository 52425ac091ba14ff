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

// Package materialized implements the eager Stern-Brocot tree: every node
// keeps links to its generated children, so a bounded tree can be walked,
// listed and searched after a single generation pass.
package materialized

import (
	"github.com/pkg/errors"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/navigation"
)

var (
	// ErrNodeAbsent is returned when a walk needs a child that was never
	// generated.
	ErrNodeAbsent = errors.New("node absent")

	// ErrNotFound is returned when a searched fraction is not in the
	// generated tree.
	ErrNotFound = errors.New("node not found")

	// ErrInvalidBound is returned for bounds that cannot drive a generation.
	ErrInvalidBound = errors.New("invalid bound")

	// ErrTooLarge is returned when a generation would attach more nodes than
	// the configured limit.
	ErrTooLarge = errors.New("tree exceeds the node limit")
)

// Node is a generated node. Children are nil on the frontier of a bounded
// tree. Nodes are not modified once Generate returns.
type Node struct {
	Fraction    fraction.Fraction
	IsLeftChild bool
	Bounds      navigation.Bounds

	Left  *Node
	Right *Node

	depth int
}

func newRoot() *Node {
	bounds := navigation.RootBounds()
	return &Node{
		Fraction: bounds.Node(),
		Bounds:   bounds,
	}
}

func (n *Node) newChild(side navigation.Side) *Node {
	bounds := n.Bounds.Child(side)
	return &Node{
		Fraction:    bounds.Node(),
		IsLeftChild: side == navigation.Left,
		Bounds:      bounds,
		depth:       n.depth + 1,
	}
}

// LeftBound is the fraction immediately to the left of the node subtree.
func (n *Node) LeftBound() fraction.Fraction {
	return n.Bounds.Left
}

// RightBound is the fraction immediately to the right of the node subtree.
func (n *Node) RightBound() fraction.Fraction {
	return n.Bounds.Right
}

// Depth of the node, the root being at depth 0.
func (n *Node) Depth() int {
	return n.depth
}

// IsRoot reports whether n is the 1/1 root.
func (n *Node) IsRoot() bool {
	return n.depth == 0
}

// IsFrontier reports whether no child of n was generated.
func (n *Node) IsFrontier() bool {
	return n.Left == nil && n.Right == nil
}

// Child returns the generated child on the given side, nil if absent.
func (n *Node) Child(side navigation.Side) *Node {
	if side == navigation.Left {
		return n.Left
	}
	return n.Right
}

func (n *Node) attach(side navigation.Side, child *Node) {
	if side == navigation.Left {
		n.Left = child
	} else {
		n.Right = child
	}
}

func (n *Node) String() string {
	printer := NewPrintVisitor()
	n.PreOrder(printer)
	return printer.Result()
}
