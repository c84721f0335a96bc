// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Span tags a node with a notional source position. Generated spans are
// random and carry no guarantee that Start <= End.
type Span struct {
	Start, End uint64
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// BinOp is the operator of a binary expression.
type BinOp uint8

// The binary operators.
const (
	Add BinOp = iota
	Sub
	Mul
	Div
	numBinOps
)

var binOpNames = [numBinOps]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
}

// String implements fmt.Stringer.
func (op BinOp) String() string {
	if op >= numBinOps {
		return fmt.Sprintf("BinOp(%d)", uint8(op))
	}
	return binOpNames[op]
}

// SafeValue implements redact.SafeValue.
func (BinOp) SafeValue() {}

var _ redact.SafeValue = Add

// Commutes returns true for the operators whose operands Wrangle swaps in
// place (Add and Mul). Binary expressions over the other operators are turned
// into comma expressions.
func (op BinOp) Commutes() bool {
	return op == Add || op == Mul
}

// ParseBinOp returns the operator named s, as produced by BinOp.String.
func ParseBinOp(s string) (BinOp, bool) {
	for op, name := range binOpNames {
		if name == s {
			return BinOp(op), true
		}
	}
	return 0, false
}
