// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"hash"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/cockroachdb/wrangle/internal/invariants"
)

// Hasher accumulates the contents Wrangle feeds it. *xxhash.Digest and
// *maphash.Hash satisfy it directly; HashWriter adapts any hash.Hash.
type Hasher interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
}

// HashWriter adapts a hash.Hash to Hasher.
type HashWriter struct {
	hash.Hash
}

// WriteString implements Hasher.
func (w HashWriter) WriteString(s string) (int, error) {
	return io.WriteString(w.Hash, s)
}

// nameTerminator follows every name so that adjacent names hash differently
// from their concatenation.
const nameTerminator = "\xff"

// opTags are the single byte discriminants fed for each operator.
var opTags = [numBinOps]string{
	Add: "\x00",
	Sub: "\x01",
	Mul: "\x02",
	Div: "\x03",
}

func hashName(h Hasher, name string) {
	_, _ = h.WriteString(name)
	_, _ = h.WriteString(nameTerminator)
}

// Wrangle rewrites tree in place while feeding its names and operators to h,
// allocating any new sequences from c, which must be the Context the tree was
// built with. See (*Stmt).Wrangle for the rules.
func Wrangle(tree *Stmt, c *Context, h Hasher) {
	tree.Wrangle(c, h)
	if invariants.Enabled {
		if n := Count(tree).Null; n > 0 {
			panic(errors.AssertionFailedf("%d null statements left after wrangling", n))
		}
	}
}

// Wrangle rewrites the statement in a single depth-first pass:
//
//   - a declaration hashes its name and wrangles its initializer, if any;
//   - a list wrangles its statements left to right, then reverses them;
//   - an expression statement wrangles its expression.
//
// See (*Expr).Wrangle for expressions. Every node is visited once, and its new
// form depends only on its old form and the wrangled forms of its children.
func (s *Stmt) Wrangle(c *Context, h Hasher) {
	body := s.body
	s.body = stmtBody{}
	s.body = body.wrangle(c, h)
}

func (b stmtBody) wrangle(c *Context, h Hasher) stmtBody {
	switch b.kind {
	case VarDeclStmt:
		hashName(h, b.decl.Name)
		if b.decl.hasInit {
			b.decl.init.Wrangle(c, h)
		}
		return b
	case ListStmt:
		for i, n := 0, b.list.Len(); i < n; i++ {
			b.list.At(i).Wrangle(c, h)
		}
		b.list.Reverse()
		return b
	case ExprStmt:
		b.expr.Wrangle(c, h)
		return b
	default:
		panic(errors.AssertionFailedf("wrangling %s statement", b.kind))
	}
}

// Wrangle rewrites the expression in a single depth-first pass:
//
//   - a variable hashes its name;
//   - a binary expression hashes its operator and wrangles its left then right
//     operand. Add and Mul then swap the operands; Sub and Div turn the node
//     into the comma expression [left, right], permanently;
//   - a grouping wrangles the wrapped expression and takes its place, keeping
//     the grouping's span;
//   - a comma expression wrangles its elements left to right, then reverses
//     them.
func (e *Expr) Wrangle(c *Context, h Hasher) {
	body := e.body
	e.body = exprBody{}
	e.body = body.wrangle(c, h)
}

func (b exprBody) wrangle(c *Context, h Hasher) exprBody {
	switch b.kind {
	case VariableExpr:
		hashName(h, b.name)
		return b
	case BinaryExpr:
		bin := b.binary
		_, _ = h.WriteString(opTags[bin.Op])
		bin.Left.Wrangle(c, h)
		bin.Right.Wrangle(c, h)
		if bin.Op.Commutes() {
			bin.Left, bin.Right = bin.Right, bin.Left
			return b
		}
		elems := alloc.MakeSeq(c.exprs, 2)
		elems.Push(bin.Left)
		elems.Push(bin.Right)
		return exprBody{kind: CommaExpr, elems: elems}
	case GroupingExpr:
		b.inner.Wrangle(c, h)
		return b.inner.body
	case CommaExpr:
		for i, n := 0, b.elems.Len(); i < n; i++ {
			b.elems.At(i).Wrangle(c, h)
		}
		b.elems.Reverse()
		return b
	default:
		panic(errors.AssertionFailedf("wrangling %s expression", b.kind))
	}
}
