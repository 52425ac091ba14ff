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

// Package procedural implements the lazy Stern-Brocot tree. A node holds its
// fraction, its bounds and a link to its parent, nothing else: children are
// synthesized on demand and never stored back, so a query keeps at most the
// ancestor chain of the nodes it returns.
package procedural

import (
	"github.com/pkg/errors"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/metrics"
	"github.com/bbva/sternbrocot/navigation"
)

var (
	// ErrOutOfBound is returned when a node or a bound cannot take part in
	// a denominator-bounded query.
	ErrOutOfBound = errors.New("node out of bound")

	// ErrNoNeighbor is returned when the neighbor of a node is one of the
	// 0/1 and 1/0 boundaries rather than a tree node.
	ErrNoNeighbor = errors.New("no neighbor")

	// ErrUnbounded is returned by descents that would never reach the bound.
	ErrUnbounded = errors.New("descent never reaches the bound")
)

// checkBound rejects denominator bounds under which mediants could wrap
// around.
func checkBound(bound uint64) error {
	if bound > fraction.MaxComponent {
		return errors.Wrapf(ErrOutOfBound, "bound %d exceeds %d", bound, uint64(fraction.MaxComponent))
	}
	return nil
}

// Node is a transient node. The zero value is not usable, start from Root
// or Locate.
type Node struct {
	fraction    fraction.Fraction
	isLeftChild bool
	bounds      navigation.Bounds
	parent      *Node
	depth       int
}

// Root returns the conceptual 1/1 root bounded by 0/1 and 1/0.
func Root() *Node {
	bounds := navigation.RootBounds()
	return &Node{
		fraction: bounds.Node(),
		bounds:   bounds,
	}
}

func (n *Node) child(side navigation.Side) *Node {
	metrics.ProceduralNodesSynthesizedTotal.Inc()
	bounds := n.bounds.Child(side)
	return &Node{
		fraction:    bounds.Node(),
		isLeftChild: side == navigation.Left,
		bounds:      bounds,
		parent:      n,
		depth:       n.depth + 1,
	}
}

// LeftChild synthesizes a fresh left child, mediant of the node and its
// left bound.
func (n *Node) LeftChild() *Node {
	return n.child(navigation.Left)
}

// RightChild synthesizes a fresh right child, mediant of the node and its
// right bound.
func (n *Node) RightChild() *Node {
	return n.child(navigation.Right)
}

func (n *Node) Fraction() fraction.Fraction {
	return n.fraction
}

func (n *Node) LeftBound() fraction.Fraction {
	return n.bounds.Left
}

func (n *Node) RightBound() fraction.Fraction {
	return n.bounds.Right
}

func (n *Node) Bounds() navigation.Bounds {
	return n.bounds
}

// Parent returns nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsLeftChild is false for the root.
func (n *Node) IsLeftChild() bool {
	return n.isLeftChild
}

// IsRightChild is false for the root.
func (n *Node) IsRightChild() bool {
	return n.parent != nil && !n.isLeftChild
}

// Depth of the node, the root being at depth 0.
func (n *Node) Depth() int {
	return n.depth
}

// Path returns the turns from the root to the node.
func (n *Node) Path() navigation.Path {
	path := make(navigation.Path, n.depth)
	for current := n; current.parent != nil; current = current.parent {
		if current.isLeftChild {
			path[current.depth-1] = navigation.Left
		} else {
			path[current.depth-1] = navigation.Right
		}
	}
	return path
}

// Chain returns the fractions from the root down to the node.
func (n *Node) Chain() []fraction.Fraction {
	chain := make([]fraction.Fraction, n.depth+1)
	for current := n; current != nil; current = current.parent {
		chain[current.depth] = current.fraction
	}
	return chain
}

func (n *Node) String() string {
	return n.fraction.String()
}

// Locate descends from a fresh root to target and returns the node holding
// it. Every step synthesizes one node; the number of steps is the sum of the
// continued fraction coefficients of target minus one.
func Locate(target fraction.Fraction) (*Node, error) {
	if err := target.ValidateTarget(); err != nil {
		return nil, err
	}

	node := Root()
	for {
		side, ok := node.bounds.Toward(target)
		if !ok {
			break
		}
		node = node.child(side)
	}

	metrics.ProceduralLocateStepsTotal.Add(float64(node.depth))
	log.L().Tracef("Located %s at depth %d", target, node.depth)

	return node, nil
}

// LocatePath follows the given turns from a fresh root.
func LocatePath(path navigation.Path) *Node {
	node := Root()
	for _, side := range path {
		node = node.child(side)
	}
	return node
}
