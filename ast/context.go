// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import "github.com/cockroachdb/wrangle/alloc"

// Context bundles the allocation strategies for every kind of node handle and
// sequence a tree is made of. All trees built or rewritten with a Context draw
// their storage from it; a Context must not be shared by code running
// concurrently.
type Context struct {
	exprs    alloc.Strategy[Expr]
	stmts    alloc.Strategy[Stmt]
	binaries alloc.Strategy[Binary]
	decls    alloc.Strategy[VarDecl]
}

// NewContext returns a Context whose nodes are carved from a. A nil arena
// selects owned allocation, see OwnedContext. The caller owns a and decides
// when to release it; trees built with the Context must not be used after
// that.
func NewContext(a *alloc.Arena) *Context {
	return &Context{
		exprs:    alloc.For[Expr](a),
		stmts:    alloc.For[Stmt](a),
		binaries: alloc.For[Binary](a),
		decls:    alloc.For[VarDecl](a),
	}
}

// OwnedContext returns a Context under which every node is an independent heap
// allocation owned by its parent.
func OwnedContext() *Context {
	return NewContext(nil)
}
