// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import "fmt"

// Node is implemented by *Stmt and *Expr.
type Node interface {
	node()
}

func (*Stmt) node() {}
func (*Expr) node() {}

// Inspect traverses the tree rooted at s in depth-first pre-order, the order
// in which Wrangle visits it, calling f for every node. If f returns false the
// children of that node are skipped.
func Inspect(s *Stmt, f func(Node) bool) {
	inspectStmt(s, f)
}

func inspectStmt(s *Stmt, f func(Node) bool) {
	if !f(s) {
		return
	}
	switch s.body.kind {
	case VarDeclStmt:
		if init := s.body.decl.Init(); init != nil {
			inspectExpr(init, f)
		}
	case ListStmt:
		for i, n := 0, s.body.list.Len(); i < n; i++ {
			inspectStmt(s.body.list.At(i), f)
		}
	case ExprStmt:
		inspectExpr(s.body.expr, f)
	}
}

func inspectExpr(e *Expr, f func(Node) bool) {
	if !f(e) {
		return
	}
	switch e.body.kind {
	case BinaryExpr:
		inspectExpr(&e.body.binary.Left, f)
		inspectExpr(&e.body.binary.Right, f)
	case GroupingExpr:
		inspectExpr(e.body.inner, f)
	case CommaExpr:
		for i, n := 0, e.body.elems.Len(); i < n; i++ {
			inspectExpr(e.body.elems.At(i), f)
		}
	}
}

// Counts holds the number of nodes of each kind in a tree.
type Counts struct {
	Null, VarDecl, List, ExprStmt     int
	Variable, Binary, Grouping, Comma int

	// Inits is the number of declarations with an initializer.
	Inits int
}

// Stmts returns the number of statements.
func (c Counts) Stmts() int {
	return c.Null + c.VarDecl + c.List + c.ExprStmt
}

// Exprs returns the number of expressions.
func (c Counts) Exprs() int {
	return c.Variable + c.Binary + c.Grouping + c.Comma
}

// Total returns the number of nodes.
func (c Counts) Total() int {
	return c.Stmts() + c.Exprs()
}

// String implements fmt.Stringer.
func (c Counts) String() string {
	return fmt.Sprintf("stmts=%d (vardecl=%d list=%d exprstmt=%d null=%d) exprs=%d (var=%d binary=%d grouping=%d comma=%d)",
		c.Stmts(), c.VarDecl, c.List, c.ExprStmt, c.Null,
		c.Exprs(), c.Variable, c.Binary, c.Grouping, c.Comma)
}

// Count returns the number of nodes of each kind in the tree rooted at s.
func Count(s *Stmt) Counts {
	var c Counts
	Inspect(s, func(n Node) bool {
		switch n := n.(type) {
		case *Stmt:
			switch n.body.kind {
			case NullStmt:
				c.Null++
			case VarDeclStmt:
				c.VarDecl++
				if n.body.decl.hasInit {
					c.Inits++
				}
			case ListStmt:
				c.List++
			case ExprStmt:
				c.ExprStmt++
			}
		case *Expr:
			switch n.body.kind {
			case VariableExpr:
				c.Variable++
			case BinaryExpr:
				c.Binary++
			case GroupingExpr:
				c.Grouping++
			case CommaExpr:
				c.Comma++
			}
		}
		return true
	})
	return c
}

// Names returns the declaration and variable names of the tree rooted at s in
// pre-order, which is the order Wrangle feeds them to its Hasher.
func Names(s *Stmt) []string {
	var names []string
	Inspect(s, func(n Node) bool {
		switch n := n.(type) {
		case *Stmt:
			if n.body.kind == VarDeclStmt {
				names = append(names, n.body.decl.Name)
			}
		case *Expr:
			if n.body.kind == VariableExpr {
				names = append(names, n.body.name)
			}
		}
		return true
	})
	return names
}
