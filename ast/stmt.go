// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"fmt"

	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/wrangle/alloc"
)

// StmtKind identifies the variant of a Stmt.
type StmtKind uint8

// The statement kinds.
const (
	// NullStmt is the zero value. It is never generated and only occupies a
	// statement while Wrangle has taken its contents out; it is never
	// observable once Wrangle returns.
	NullStmt StmtKind = iota
	// VarDeclStmt declares a name with an optional initializer.
	VarDeclStmt
	// ListStmt is an ordered sequence of statements.
	ListStmt
	// ExprStmt evaluates a single expression.
	ExprStmt
)

var stmtKindNames = [...]string{
	NullStmt:    "null",
	VarDeclStmt: "vardecl",
	ListStmt:    "list",
	ExprStmt:    "exprstmt",
}

// String implements fmt.Stringer.
func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return fmt.Sprintf("StmtKind(%d)", uint8(k))
}

// SafeValue implements redact.SafeValue.
func (StmtKind) SafeValue() {}

var _ redact.SafeValue = NullStmt

// Stmt is a statement node.
type Stmt struct {
	Span Span
	body stmtBody
}

type stmtBody struct {
	kind StmtKind
	// decl is set for VarDeclStmt.
	decl *VarDecl
	// list is set for ListStmt.
	list alloc.Seq[Stmt]
	// expr is set for ExprStmt.
	expr *Expr
}

// VarDecl holds the name and optional initializer of a VarDeclStmt.
type VarDecl struct {
	Name    string
	init    Expr
	hasInit bool
}

// Init returns the initializer, or nil if the declaration has none.
func (d *VarDecl) Init() *Expr {
	if !d.hasInit {
		return nil
	}
	return &d.init
}

// Kind returns the variant of the statement.
func (s *Stmt) Kind() StmtKind {
	return s.body.kind
}

// VarDecl returns the declaration of a VarDeclStmt, and nil for other kinds.
func (s *Stmt) VarDecl() *VarDecl {
	return s.body.decl
}

// List returns the statements of a ListStmt. For other kinds the sequence is
// empty.
func (s *Stmt) List() *alloc.Seq[Stmt] {
	return &s.body.list
}

// Expr returns the expression of an ExprStmt, and nil for other kinds.
func (s *Stmt) Expr() *Expr {
	return s.body.expr
}

// VarDecl returns a VarDeclStmt without an initializer.
func (c *Context) VarDecl(span Span, name string) Stmt {
	return Stmt{Span: span, body: stmtBody{kind: VarDeclStmt, decl: c.decls.New(VarDecl{Name: name})}}
}

// VarDeclInit returns a VarDeclStmt initialized with init.
func (c *Context) VarDeclInit(span Span, name string, init Expr) Stmt {
	d := c.decls.New(VarDecl{Name: name, init: init, hasInit: true})
	return Stmt{Span: span, body: stmtBody{kind: VarDeclStmt, decl: d}}
}

// List returns a ListStmt holding stmts in order.
func (c *Context) List(span Span, stmts ...Stmt) Stmt {
	seq := alloc.MakeSeq(c.stmts, len(stmts))
	for _, s := range stmts {
		seq.Push(s)
	}
	return c.listOf(span, seq)
}

func (c *Context) listOf(span Span, stmts alloc.Seq[Stmt]) Stmt {
	return Stmt{Span: span, body: stmtBody{kind: ListStmt, list: stmts}}
}

// ExprStmt returns an ExprStmt evaluating e.
func (c *Context) ExprStmt(span Span, e Expr) Stmt {
	return Stmt{Span: span, body: stmtBody{kind: ExprStmt, expr: c.exprs.New(e)}}
}
