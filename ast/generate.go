// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/cockroachdb/wrangle/internal/invariants"
	"golang.org/x/exp/rand"
)

// Generate builds a random statement tree with nodes allocated from c. The
// result is a pure function of source, seed, depth and width: one random
// sequence seeded with seed drives the whole build.
//
// depth bounds the nesting of the tree: statements and expressions at depth 0
// are leaves. width bounds the fan-out of lists and comma expressions; it
// shrinks as nodes get wider so deep trees stay bounded in size. Leaf names
// are byte ranges of source, which must be non-empty.
func Generate(source string, seed uint64, depth, width int, c *Context) Stmt {
	if len(source) == 0 {
		panic(errors.AssertionFailedf("generating a tree from empty source text"))
	}
	if depth < 0 || width < 0 {
		panic(errors.AssertionFailedf("negative budget: depth=%d width=%d", depth, width))
	}
	g := generator{
		source: source,
		rng:    rand.New(rand.NewSource(seed)),
		c:      c,
	}
	return g.stmt(depth, width)
}

type generator struct {
	source string
	rng    *rand.Rand
	c      *Context
}

func (g *generator) stmt(depth, width int) Stmt {
	var body stmtBody
	if depth > 0 {
		if !g.bool() {
			count := g.count(width)
			list := alloc.MakeSeq(g.c.stmts, count)
			for i := 0; i < count; i++ {
				list.Push(g.stmt(depth-1, invariants.SafeSub(width, count)))
			}
			body = stmtBody{kind: ListStmt, list: list}
		} else {
			body = stmtBody{kind: ExprStmt, expr: g.c.exprs.New(g.expr(depth-1, width))}
		}
	} else {
		decl := VarDecl{Name: g.name()}
		if g.bool() {
			// The initializer of a leaf declaration is itself a leaf.
			decl.init = g.expr(0, width)
			decl.hasInit = true
		}
		body = stmtBody{kind: VarDeclStmt, decl: g.c.decls.New(decl)}
	}
	return Stmt{Span: g.span(), body: body}
}

func (g *generator) expr(depth, width int) Expr {
	var body exprBody
	if depth > 0 {
		switch choice := g.rng.Uint64n(3); {
		case choice == 0 && width >= 2:
			left := g.expr(depth-1, invariants.SatSub(width, 2))
			right := g.expr(depth-1, invariants.SatSub(width, 2))
			op := BinOp(g.rng.Uint64n(uint64(numBinOps)))
			body = exprBody{
				kind:   BinaryExpr,
				binary: g.c.binaries.New(Binary{Op: op, Left: left, Right: right}),
			}
		case choice == 1 && width >= 2:
			count := g.count(width)
			elems := alloc.MakeSeq(g.c.exprs, count)
			for i := 0; i < count; i++ {
				elems.Push(g.expr(depth-1, invariants.SafeSub(width, count)))
			}
			body = exprBody{kind: CommaExpr, elems: elems}
		default:
			// Also the fallback when the width is too small for a binary or
			// comma expression.
			body = exprBody{kind: GroupingExpr, inner: g.c.exprs.New(g.expr(depth-1, width))}
		}
	} else {
		body = exprBody{kind: VariableExpr, name: g.name()}
	}
	return Expr{Span: g.span(), body: body}
}

func (g *generator) bool() bool {
	return g.rng.Uint64()&1 == 1
}

// count draws the number of children of a list or comma expression from
// [0, width). A width of 0 yields an empty list.
func (g *generator) count(width int) int {
	if width <= 0 {
		return 0
	}
	return int(g.rng.Uint64n(uint64(width)))
}

// name returns source[start:end] with start drawn from [0, len) and end from
// [start, len).
func (g *generator) name() string {
	n := uint64(len(g.source))
	start := g.rng.Uint64n(n)
	end := start + g.rng.Uint64n(n-start)
	return g.source[start:end]
}

func (g *generator) span() Span {
	start := g.rng.Uint64()
	return Span{Start: start, End: g.rng.Uint64()}
}
