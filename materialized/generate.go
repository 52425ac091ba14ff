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
	"fmt"

	"github.com/pkg/errors"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/metrics"
	"github.com/bbva/sternbrocot/navigation"
)

// DefaultNodeLimit caps the number of nodes a single Generate call attaches.
const DefaultNodeLimit = 1 << 24

// Bound decides which children a generation pass attaches.
type Bound interface {
	validate() error
	admits(parent *Node, child fraction.Fraction) bool
	String() string
}

// DepthBound generates exactly that many layers below the root. Every node
// above the last layer gets both children.
type DepthBound int

func (b DepthBound) validate() error {
	if b < 0 {
		return errors.Wrapf(ErrInvalidBound, "negative depth %d", int(b))
	}
	return nil
}

func (b DepthBound) admits(parent *Node, _ fraction.Fraction) bool {
	return parent.depth < int(b)
}

func (b DepthBound) String() string {
	return fmt.Sprintf("depth %d", int(b))
}

// nodes returns the size of the complete tree of this depth, or false if it
// does not fit in 63 bits.
func (b DepthBound) nodes() (uint64, bool) {
	if b >= 63 {
		return 0, false
	}
	return 1<<uint(b+1) - 1, true
}

// DenominatorBound attaches a child only if its denominator is strictly
// below Max and the restriction admits it. The root is always present.
type DenominatorBound struct {
	Max         uint64
	Restriction navigation.Restriction
}

// NewDenominatorBound bounds the denominator and keeps proper fractions
// only.
func NewDenominatorBound(m uint64) DenominatorBound {
	return DenominatorBound{Max: m, Restriction: navigation.ProperFractions}
}

func (b DenominatorBound) validate() error {
	if b.Max > fraction.MaxComponent {
		return errors.Wrapf(ErrInvalidBound, "denominator bound %d exceeds %d", b.Max, uint64(fraction.MaxComponent))
	}
	return b.Restriction.Validate()
}

func (b DenominatorBound) admits(_ *Node, child fraction.Fraction) bool {
	return child.Den < b.Max && b.Restriction.Admits(child)
}

func (b DenominatorBound) String() string {
	return fmt.Sprintf("denominator < %d (%s)", b.Max, b.Restriction)
}

// Generator holds the settings of a generation pass.
type Generator struct {
	log       log.Logger
	nodeLimit uint64
}

type GeneratorOptionF func(*Generator) error

// SetLogger sets the logger used by the generation pass.
func SetLogger(l log.Logger) GeneratorOptionF {
	return func(g *Generator) error {
		if l == nil {
			return errors.New("nil logger")
		}
		g.log = l
		return nil
	}
}

// SetNodeLimit sets the maximum number of nodes. Zero disables the limit.
func SetNodeLimit(limit uint64) GeneratorOptionF {
	return func(g *Generator) error {
		g.nodeLimit = limit
		return nil
	}
}

// NewGenerator applies the options over the defaults.
func NewGenerator(opts ...GeneratorOptionF) (*Generator, error) {
	g := &Generator{
		log:       log.L().Named("materialized"),
		nodeLimit: DefaultNodeLimit,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Generate builds a tree from the 1/1 root under the given bound and
// returns its root.
func Generate(bound Bound, opts ...GeneratorOptionF) (*Node, error) {
	g, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(bound)
}

// Generate builds a tree from the 1/1 root under the given bound. Branches
// are expanded independently from an explicit work stack; each child is
// attached to its parent before being expanded in turn.
func (g *Generator) Generate(bound Bound) (*Node, error) {
	if bound == nil {
		return nil, errors.Wrap(ErrInvalidBound, "nil bound")
	}
	if err := bound.validate(); err != nil {
		return nil, err
	}
	if depth, ok := bound.(DepthBound); ok && g.nodeLimit != 0 {
		if nodes, fits := depth.nodes(); !fits || nodes > g.nodeLimit {
			return nil, errors.Wrapf(ErrTooLarge, "%s needs more than %d nodes", depth, g.nodeLimit)
		}
	}

	root := newRoot()
	count := uint64(1)

	pending := []*Node{root}
	for len(pending) > 0 {
		node := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for _, side := range []navigation.Side{navigation.Right, navigation.Left} {
			if !bound.admits(node, node.Bounds.ChildFraction(side)) {
				continue
			}
			count++
			if g.nodeLimit != 0 && count > g.nodeLimit {
				metrics.MaterializedNodesGeneratedTotal.Add(float64(count - 1))
				return nil, errors.Wrapf(ErrTooLarge, "%s needs more than %d nodes", bound, g.nodeLimit)
			}
			child := node.newChild(side)
			node.attach(side, child)
			pending = append(pending, child)
		}
	}

	metrics.MaterializedNodesGeneratedTotal.Add(float64(count))
	g.log.Debugf("Generated %d nodes under %s", count, bound)

	return root, nil
}
