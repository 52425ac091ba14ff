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

	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/metrics"
	"github.com/bbva/sternbrocot/navigation"
)

// frame is the traversal state of one node during TreeSize. Frames live
// only for the duration of a single call.
type frame struct {
	node          *Node
	leftExplored  bool
	rightExplored bool
}

// TreeSize counts the nodes under root, root included when it qualifies,
// whose denominator is at most bound and that the restriction admits.
//
// The walk keeps an explicit stack of frames: it descends left until the
// left flag of the top frame is set, then right, then ascends by popping.
// It ends once the root frame has both flags set. Pruning at the bound is
// sound since denominators only grow downwards, and pruning at the
// restriction is sound since the restrictions of interest exclude whole
// subtrees.
func TreeSize(root *Node, bound uint64, r navigation.Restriction) (uint64, error) {
	if root == nil {
		return 0, errors.Wrap(ErrOutOfBound, "nil root")
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if err := checkBound(bound); err != nil {
		return 0, err
	}

	var count, visits uint64
	qualifies := func(n *Node) bool {
		return n.fraction.Den <= bound && r.Admits(n.fraction)
	}
	if qualifies(root) {
		count++
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		var child *Node
		switch {
		case !top.leftExplored:
			top.leftExplored = true
			child = top.node.LeftChild()
		case !top.rightExplored:
			top.rightExplored = true
			child = top.node.RightChild()
		default:
			stack = stack[:len(stack)-1]
			continue
		}

		visits++
		if qualifies(child) {
			count++
			stack = append(stack, frame{node: child})
		}
	}

	metrics.ProceduralSizeVisitsTotal.Add(float64(visits))
	log.L().Debugf("Counted %d nodes under %s with denominator <= %d (%s), %d visits", count, root, bound, r, visits)

	return count, nil
}
