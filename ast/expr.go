// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"fmt"

	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/wrangle/alloc"
)

// ExprKind identifies the variant of an Expr.
type ExprKind uint8

// The expression kinds.
const (
	// VariableExpr is a name borrowed from the source text. The zero Expr is
	// a variable with an empty name.
	VariableExpr ExprKind = iota
	// BinaryExpr applies a BinOp to two operands.
	BinaryExpr
	// GroupingExpr wraps a single expression.
	GroupingExpr
	// CommaExpr is an ordered sequence of expressions.
	CommaExpr
)

var exprKindNames = [...]string{
	VariableExpr: "var",
	BinaryExpr:   "binary",
	GroupingExpr: "grouping",
	CommaExpr:    "comma",
}

// String implements fmt.Stringer.
func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return fmt.Sprintf("ExprKind(%d)", uint8(k))
}

// SafeValue implements redact.SafeValue.
func (ExprKind) SafeValue() {}

var _ redact.SafeValue = VariableExpr

// Expr is an expression node. Its variant is held in a body that Wrangle
// replaces wholesale; the Span stays with the node.
type Expr struct {
	Span Span
	body exprBody
}

type exprBody struct {
	kind ExprKind
	// name is set for VariableExpr.
	name string
	// binary is set for BinaryExpr.
	binary *Binary
	// inner is set for GroupingExpr.
	inner *Expr
	// elems is set for CommaExpr.
	elems alloc.Seq[Expr]
}

// Binary holds the operator and operands of a BinaryExpr.
type Binary struct {
	Op          BinOp
	Left, Right Expr
}

// Kind returns the variant of the expression.
func (e *Expr) Kind() ExprKind {
	return e.body.kind
}

// Name returns the name of a VariableExpr, and "" for other kinds.
func (e *Expr) Name() string {
	return e.body.name
}

// Binary returns the operator and operands of a BinaryExpr, and nil for other
// kinds.
func (e *Expr) Binary() *Binary {
	return e.body.binary
}

// Inner returns the wrapped expression of a GroupingExpr, and nil for other
// kinds.
func (e *Expr) Inner() *Expr {
	return e.body.inner
}

// Elems returns the elements of a CommaExpr. For other kinds the sequence is
// empty.
func (e *Expr) Elems() *alloc.Seq[Expr] {
	return &e.body.elems
}

// Variable returns a VariableExpr. The name is not copied.
func (c *Context) Variable(span Span, name string) Expr {
	return Expr{Span: span, body: exprBody{kind: VariableExpr, name: name}}
}

// Binary returns a BinaryExpr with operands left and right.
func (c *Context) Binary(span Span, op BinOp, left, right Expr) Expr {
	b := c.binaries.New(Binary{Op: op, Left: left, Right: right})
	return Expr{Span: span, body: exprBody{kind: BinaryExpr, binary: b}}
}

// Grouping returns a GroupingExpr wrapping inner.
func (c *Context) Grouping(span Span, inner Expr) Expr {
	return Expr{Span: span, body: exprBody{kind: GroupingExpr, inner: c.exprs.New(inner)}}
}

// Comma returns a CommaExpr holding elems in order.
func (c *Context) Comma(span Span, elems ...Expr) Expr {
	seq := alloc.MakeSeq(c.exprs, len(elems))
	for _, e := range elems {
		seq.Push(e)
	}
	return c.commaOf(span, seq)
}

func (c *Context) commaOf(span Span, elems alloc.Seq[Expr]) Expr {
	return Expr{Span: span, body: exprBody{kind: CommaExpr, elems: elems}}
}
