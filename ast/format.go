// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"fmt"

	"github.com/cockroachdb/wrangle/internal/treetext"
)

// String returns an indented dump of the tree rooted at s, one node per line,
// without spans. For example:
//
//	list
//	  vardecl "x"
//	    var "ou"
//	  exprstmt
//	    binary add
//	      var "s"
//	      var "rc"
func (s *Stmt) String() string {
	return treetext.Render(stmtNode(s, false))
}

// String returns an indented dump of the expression, see (*Stmt).String.
func (e *Expr) String() string {
	return treetext.Render(exprNode(e, false))
}

// Dump is like String but also prints every node's span.
func Dump(s *Stmt) string {
	return treetext.Render(stmtNode(s, true))
}

func label(spans bool, span Span, format string, args ...interface{}) string {
	l := fmt.Sprintf(format, args...)
	if spans {
		l += " @" + span.String()
	}
	return l
}

func stmtNode(s *Stmt, spans bool) treetext.Node {
	switch s.body.kind {
	case VarDeclStmt:
		n := treetext.New(label(spans, s.Span, "%s %q", s.body.kind, s.body.decl.Name))
		if init := s.body.decl.Init(); init != nil {
			n.Add(exprNode(init, spans))
		}
		return n
	case ListStmt:
		n := treetext.New(label(spans, s.Span, "%s", s.body.kind))
		for i, l := 0, s.body.list.Len(); i < l; i++ {
			n.Add(stmtNode(s.body.list.At(i), spans))
		}
		return n
	case ExprStmt:
		return treetext.New(label(spans, s.Span, "%s", s.body.kind), exprNode(s.body.expr, spans))
	default:
		return treetext.New(label(spans, s.Span, "%s", s.body.kind))
	}
}

func exprNode(e *Expr, spans bool) treetext.Node {
	switch e.body.kind {
	case VariableExpr:
		return treetext.New(label(spans, e.Span, "%s %q", e.body.kind, e.body.name))
	case BinaryExpr:
		b := e.body.binary
		return treetext.New(label(spans, e.Span, "%s %s", e.body.kind, b.Op),
			exprNode(&b.Left, spans), exprNode(&b.Right, spans))
	case GroupingExpr:
		return treetext.New(label(spans, e.Span, "%s", e.body.kind), exprNode(e.body.inner, spans))
	case CommaExpr:
		n := treetext.New(label(spans, e.Span, "%s", e.body.kind))
		for i, l := 0, e.body.elems.Len(); i < l; i++ {
			n.Add(exprNode(e.body.elems.At(i), spans))
		}
		return n
	default:
		return treetext.New(label(spans, e.Span, "%s", e.body.kind))
	}
}
