// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

// Equal returns true if s and o have the same shape, names, operators and
// spans. How the two trees were allocated does not matter.
func (s *Stmt) Equal(o *Stmt) bool {
	if s.Span != o.Span || s.body.kind != o.body.kind {
		return false
	}
	switch s.body.kind {
	case VarDeclStmt:
		a, b := s.body.decl, o.body.decl
		if a.Name != b.Name || a.hasInit != b.hasInit {
			return false
		}
		return !a.hasInit || a.init.Equal(&b.init)
	case ListStmt:
		if s.body.list.Len() != o.body.list.Len() {
			return false
		}
		for i, n := 0, s.body.list.Len(); i < n; i++ {
			if !s.body.list.At(i).Equal(o.body.list.At(i)) {
				return false
			}
		}
		return true
	case ExprStmt:
		return s.body.expr.Equal(o.body.expr)
	default:
		return true
	}
}

// Equal returns true if e and o have the same shape, names, operators and
// spans. How the two trees were allocated does not matter.
func (e *Expr) Equal(o *Expr) bool {
	if e.Span != o.Span || e.body.kind != o.body.kind {
		return false
	}
	switch e.body.kind {
	case VariableExpr:
		return e.body.name == o.body.name
	case BinaryExpr:
		a, b := e.body.binary, o.body.binary
		return a.Op == b.Op && a.Left.Equal(&b.Left) && a.Right.Equal(&b.Right)
	case GroupingExpr:
		return e.body.inner.Equal(o.body.inner)
	case CommaExpr:
		if e.body.elems.Len() != o.body.elems.Len() {
			return false
		}
		for i, n := 0, e.body.elems.Len(); i < n; i++ {
			if !e.body.elems.At(i).Equal(o.body.elems.At(i)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
