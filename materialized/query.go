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
	"github.com/pkg/errors"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/metrics"
)

type collectVisitor struct {
	fractions []fraction.Fraction
}

func (v *collectVisitor) Visit(n *Node) {
	v.fractions = append(v.fractions, n.Fraction)
}

type countVisitor struct {
	nodes  int
	height int
}

func (v *countVisitor) Visit(n *Node) {
	v.nodes++
	if n.depth > v.height {
		v.height = n.depth
	}
}

// InOrder lists the fractions of the subtree rooted at n in increasing
// order. A frontier node yields its own fraction only.
func (n *Node) InOrder() []fraction.Fraction {
	collect := &collectVisitor{}
	n.InOrderWalk(collect)
	return collect.fractions
}

// Size returns the number of nodes of the subtree rooted at n.
func (n *Node) Size() int {
	count := &countVisitor{}
	n.InOrderWalk(count)
	return count.nodes
}

// Height returns the number of generated layers below n.
func (n *Node) Height() int {
	count := &countVisitor{height: n.depth}
	n.InOrderWalk(count)
	return count.height - n.depth
}

// Row returns, in order, the fractions depth layers below n. Every node on
// the way must have both children.
func (n *Node) Row(depth int) ([]fraction.Fraction, error) {
	if depth < 0 {
		return nil, errors.Wrapf(ErrInvalidBound, "negative depth %d", depth)
	}

	layer := []*Node{n}
	for d := 0; d < depth; d++ {
		next := make([]*Node, 0, 2*len(layer))
		for _, node := range layer {
			if node.Left == nil || node.Right == nil {
				return nil, errors.Wrapf(ErrNodeAbsent, "%s has no children at depth %d", node.Fraction, node.depth)
			}
			next = append(next, node.Left, node.Right)
		}
		layer = next
	}

	row := make([]fraction.Fraction, len(layer))
	for i, node := range layer {
		row[i] = node.Fraction
	}
	return row, nil
}

// Search descends from n toward target and returns the node holding
// exactly target.
func (n *Node) Search(target fraction.Fraction) (*Node, error) {
	if err := target.ValidateTarget(); err != nil {
		return nil, err
	}
	metrics.MaterializedSearchesTotal.Inc()

	current := n
	for {
		var next *Node
		switch fraction.Compare(target, current.Fraction) {
		case fraction.Equal:
			return current, nil
		case fraction.Less:
			next = current.Left
		case fraction.Greater:
			next = current.Right
		}
		if next == nil {
			return nil, errors.Wrapf(ErrNotFound, "%s is not in the generated tree", target)
		}
		current = next
	}
}
