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
	"strings"
)

// InOrderVisitor is called once per node, in increasing fraction order.
type InOrderVisitor interface {
	Visit(n *Node)
}

// PreOrderVisitor is told when the walk enters a node, before its children,
// and when it leaves it, after them.
type PreOrderVisitor interface {
	Enter(n *Node)
	Leave(n *Node)
}

// InOrderWalk visits left subtree, node, right subtree without recursion.
func (n *Node) InOrderWalk(visitor InOrderVisitor) {
	var stack []*Node
	current := n
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.Left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visitor.Visit(current)
		current = current.Right
	}
}

// PreOrder walks node, left subtree, right subtree without recursion.
func (n *Node) PreOrder(visitor PreOrderVisitor) {
	type step struct {
		node    *Node
		leaving bool
	}
	stack := []step{{node: n}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.leaving {
			visitor.Leave(s.node)
			continue
		}
		visitor.Enter(s.node)
		stack = append(stack, step{node: s.node, leaving: true})
		if s.node.Right != nil {
			stack = append(stack, step{node: s.node.Right})
		}
		if s.node.Left != nil {
			stack = append(stack, step{node: s.node.Left})
		}
	}
}

// PrintVisitor renders a subtree as nested lists: [1/1 [1/2] [2/1]].
type PrintVisitor struct {
	sb    strings.Builder
	first bool
}

func NewPrintVisitor() *PrintVisitor {
	return &PrintVisitor{first: true}
}

func (v *PrintVisitor) Enter(n *Node) {
	if !v.first {
		v.sb.WriteByte(' ')
	}
	v.first = false
	fmt.Fprintf(&v.sb, "[%s", n.Fraction)
}

func (v *PrintVisitor) Leave(n *Node) {
	v.sb.WriteByte(']')
}

func (v *PrintVisitor) Result() string {
	return v.sb.String()
}

// IndentVisitor renders one node per line, indented by depth, with its
// bounds.
type IndentVisitor struct {
	lines []string
	base  int
}

func NewIndentVisitor() *IndentVisitor {
	return &IndentVisitor{base: -1}
}

func (v *IndentVisitor) Enter(n *Node) {
	if v.base < 0 {
		v.base = n.depth
	}
	v.lines = append(v.lines, fmt.Sprintf("%s%s %s", strings.Repeat("\t", n.depth-v.base), n.Fraction, n.Bounds))
}

func (v *IndentVisitor) Leave(n *Node) {}

func (v *IndentVisitor) Result() string {
	return strings.Join(v.lines, "\n")
}
