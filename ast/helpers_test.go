// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/cockroachdb/wrangle/internal/treetext"
	"golang.org/x/exp/rand"
)

type testContext struct {
	name string
	ctx  *Context
}

// testContexts returns one owned and one arena-backed context. The arena is
// released when the test finishes.
func testContexts(t testing.TB) []testContext {
	a := alloc.NewArena(0)
	t.Cleanup(a.Release)
	return []testContext{
		{name: "owned", ctx: OwnedContext()},
		{name: "arena", ctx: NewContext(a)},
	}
}

// parseStmt builds a tree from the format produced by (*Stmt).String.
func parseStmt(c *Context, input string) (Stmt, error) {
	nodes, err := treetext.Parse(input)
	if err != nil {
		return Stmt{}, err
	}
	if len(nodes) != 1 {
		return Stmt{}, errors.Errorf("expected a single root, found %d", len(nodes))
	}
	return buildStmt(c, &nodes[0])
}

func splitLabel(n *treetext.Node) (kind string, arg string) {
	kind, arg, _ = strings.Cut(n.Value(), " ")
	return kind, arg
}

func buildStmt(c *Context, n *treetext.Node) (Stmt, error) {
	kind, arg := splitLabel(n)
	children := n.Children()
	switch kind {
	case "null":
		return Stmt{}, nil
	case "vardecl":
		name, err := strconv.Unquote(arg)
		if err != nil {
			return Stmt{}, errors.Wrapf(err, "vardecl name %s", arg)
		}
		switch len(children) {
		case 0:
			return c.VarDecl(Span{}, name), nil
		case 1:
			init, err := buildExpr(c, &children[0])
			if err != nil {
				return Stmt{}, err
			}
			return c.VarDeclInit(Span{}, name, init), nil
		default:
			return Stmt{}, errors.Errorf("vardecl with %d initializers", len(children))
		}
	case "list":
		stmts := make([]Stmt, len(children))
		for i := range children {
			var err error
			if stmts[i], err = buildStmt(c, &children[i]); err != nil {
				return Stmt{}, err
			}
		}
		return c.List(Span{}, stmts...), nil
	case "exprstmt":
		if len(children) != 1 {
			return Stmt{}, errors.Errorf("exprstmt with %d children", len(children))
		}
		e, err := buildExpr(c, &children[0])
		if err != nil {
			return Stmt{}, err
		}
		return c.ExprStmt(Span{}, e), nil
	default:
		return Stmt{}, errors.Errorf("unknown statement %q", n.Value())
	}
}

func buildExpr(c *Context, n *treetext.Node) (Expr, error) {
	kind, arg := splitLabel(n)
	children := n.Children()
	exprs := make([]Expr, len(children))
	for i := range children {
		var err error
		if exprs[i], err = buildExpr(c, &children[i]); err != nil {
			return Expr{}, err
		}
	}
	switch kind {
	case "var":
		name, err := strconv.Unquote(arg)
		if err != nil {
			return Expr{}, errors.Wrapf(err, "variable name %s", arg)
		}
		return c.Variable(Span{}, name), nil
	case "binary":
		op, ok := ParseBinOp(arg)
		if !ok || len(exprs) != 2 {
			return Expr{}, errors.Errorf("malformed binary expression %q with %d operands", n.Value(), len(exprs))
		}
		return c.Binary(Span{}, op, exprs[0], exprs[1]), nil
	case "grouping":
		if len(exprs) != 1 {
			return Expr{}, errors.Errorf("grouping with %d children", len(exprs))
		}
		return c.Grouping(Span{}, exprs[0]), nil
	case "comma":
		return c.Comma(Span{}, exprs...), nil
	default:
		return Expr{}, errors.Errorf("unknown expression %q", n.Value())
	}
}

// genExpr generates a random expression; identical arguments yield identical
// expressions.
func genExpr(c *Context, seed uint64, depth, width int) Expr {
	g := generator{source: testSource, rng: rand.New(rand.NewSource(seed)), c: c}
	return g.expr(depth, width)
}

const testSource = "the quick brown fox jumps over the lazy dog"

// recorder is a Hasher that remembers what it was fed: quoted names and
// operator names.
type recorder struct {
	fed     []string
	pending strings.Builder
}

func (r *recorder) Write(p []byte) (int, error) {
	return r.WriteString(string(p))
}

func (r *recorder) WriteString(s string) (int, error) {
	switch {
	case s == nameTerminator:
		r.fed = append(r.fed, strconv.Quote(r.pending.String()))
		r.pending.Reset()
	case r.pending.Len() == 0 && isOpTag(s):
		r.fed = append(r.fed, BinOp(s[0]).String())
	default:
		r.pending.WriteString(s)
	}
	return len(s), nil
}

func isOpTag(s string) bool {
	for _, tag := range opTags {
		if s == tag {
			return true
		}
	}
	return false
}

// names returns the names fed to the recorder, unquoted.
func (r *recorder) names() []string {
	var names []string
	for _, f := range r.fed {
		if name, err := strconv.Unquote(f); err == nil {
			names = append(names, name)
		}
	}
	return names
}
