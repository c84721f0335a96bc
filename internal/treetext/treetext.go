// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treetext converts between trees of labelled nodes and text where the
// hierarchy is given by indentation:
//
//	a
//	  a1
//	    a11
//	  a2
//	b
//	  b1
//
// describes two roots (a and b). Node a has two children (a1, a2), and a1 has
// one child (a11); node b has one child (b1).
package treetext

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Indent is the indentation Render uses for each level.
const Indent = "  "

// Node is a labelled node with ordered children.
type Node struct {
	value    string
	children []Node
}

// New returns a node with the given label and children.
func New(value string, children ...Node) Node {
	return Node{value: value, children: children}
}

// Value returns the label of the node (the line without its indentation).
func (n *Node) Value() string {
	return n.value
}

// Children returns the child nodes, if any.
func (n *Node) Children() []Node {
	return n.children
}

// Add appends a child.
func (n *Node) Add(child Node) {
	n.children = append(n.children, child)
}

// Render writes the nodes one per line, each level indented by Indent more
// than its parent. The output ends with a newline unless there are no nodes.
func Render(nodes ...Node) string {
	var b strings.Builder
	var render func(n *Node, depth int)
	render = func(n *Node, depth int) {
		for i := 0; i < depth; i++ {
			b.WriteString(Indent)
		}
		b.WriteString(n.value)
		b.WriteByte('\n')
		for i := range n.children {
			render(&n.children[i], depth+1)
		}
	}
	for i := range nodes {
		render(&nodes[i], 0)
	}
	return b.String()
}

// Parse a multi-line input string into trees of nodes.
//
// The indentation width is arbitrary but it must be consistent across nodes.
// For example, the following is not valid:
//
//	a
//	 a1
//	b
//	  b1
//
// Tabs cannot be used for indentation, and levels cannot be skipped:
//
//	a
//	  a1
//	    a11
//	b
//	    b12
func Parse(input string) ([]Node, error) {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, errors.Errorf("empty input")
	}
	lines := strings.Split(input, "\n")
	indentLevel := make([]int, len(lines))
	for i, line := range lines {
		level := 0
		for strings.HasPrefix(line[level:], " ") {
			level++
		}
		if len(line) == level {
			return nil, errors.Errorf("empty line in input:\n%s", input)
		}
		if line[level] == '\t' {
			return nil, errors.Errorf("tab indentation in input:\n%s", input)
		}
		indentLevel[i] = level
	}
	levels := slices.Clone(indentLevel)
	slices.Sort(levels)
	levels = slices.Compact(levels)

	var parse func(levelIdx, start, end int) ([]Node, error)
	parse = func(levelIdx, start, end int) ([]Node, error) {
		var nodes []Node
		for i := start; i <= end; {
			if indentLevel[i] != levels[levelIdx] {
				return nil, errors.Errorf("inconsistent indentation at line %d:\n%s", i+1, input)
			}
			next := i + 1
			for next <= end && indentLevel[next] > levels[levelIdx] {
				next++
			}
			n := Node{value: lines[i][indentLevel[i]:]}
			if next > i+1 {
				var err error
				if n.children, err = parse(levelIdx+1, i+1, next-1); err != nil {
					return nil, err
				}
			}
			nodes = append(nodes, n)
			i = next
		}
		return nodes, nil
	}
	return parse(0, 0, len(lines)-1)
}
