// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ast

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wrangle/alloc"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// checkStmt verifies that s could have been generated with the given budgets.
func checkStmt(s *Stmt, source string, depth, width int) error {
	if depth == 0 {
		if s.Kind() != VarDeclStmt {
			return errors.Errorf("%s statement at depth 0", s.Kind())
		}
		if err := checkName(s.VarDecl().Name, source); err != nil {
			return err
		}
		if init := s.VarDecl().Init(); init != nil {
			return checkExpr(init, source, 0, width)
		}
		return nil
	}
	switch s.Kind() {
	case ListStmt:
		n := s.List().Len()
		if n > 0 && n >= width {
			return errors.Errorf("list of %d statements with width %d", n, width)
		}
		for i := 0; i < n; i++ {
			if err := checkStmt(s.List().At(i), source, depth-1, width-n); err != nil {
				return err
			}
		}
		return nil
	case ExprStmt:
		return checkExpr(s.Expr(), source, depth-1, width)
	default:
		return errors.Errorf("%s statement at depth %d", s.Kind(), depth)
	}
}

func checkExpr(e *Expr, source string, depth, width int) error {
	if depth == 0 {
		if e.Kind() != VariableExpr {
			return errors.Errorf("%s expression at depth 0", e.Kind())
		}
		return checkName(e.Name(), source)
	}
	switch e.Kind() {
	case BinaryExpr:
		if width < 2 {
			return errors.Errorf("binary expression with width %d", width)
		}
		if err := checkExpr(&e.Binary().Left, source, depth-1, width-2); err != nil {
			return err
		}
		return checkExpr(&e.Binary().Right, source, depth-1, width-2)
	case CommaExpr:
		n := e.Elems().Len()
		if width < 2 || n >= width {
			return errors.Errorf("comma of %d expressions with width %d", n, width)
		}
		for i := 0; i < n; i++ {
			if err := checkExpr(e.Elems().At(i), source, depth-1, width-n); err != nil {
				return err
			}
		}
		return nil
	case GroupingExpr:
		return checkExpr(e.Inner(), source, depth-1, width)
	default:
		return errors.Errorf("%s expression at depth %d", e.Kind(), depth)
	}
}

// checkName verifies that name is source[start:end] for some start <= end <
// len(source), and that it shares source's storage.
func checkName(name, source string) error {
	if name == "" {
		return nil
	}
	start := int(uintptr(unsafe.Pointer(unsafe.StringData(name))) - uintptr(unsafe.Pointer(unsafe.StringData(source))))
	if start < 0 || start+len(name) >= len(source) || source[start:start+len(name)] != name {
		return errors.Errorf("name %q is not a borrowed substring of %q", name, source)
	}
	return nil
}

func TestGenerateRespectsBudgets(t *testing.T) {
	defer leaktest.AfterTest(t)()
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("generated trees respect the depth and width budgets", prop.ForAll(
		func(seed uint64, depth, width int) bool {
			for _, tc := range testContexts(t) {
				tree := Generate(testSource, seed, depth, width, tc.ctx)
				if err := checkStmt(&tree, testSource, depth, width); err != nil {
					t.Logf("%s: seed=%d depth=%d width=%d: %v\n%s", tc.name, seed, depth, width, err, &tree)
					return false
				}
			}
			return true
		},
		gen.UInt64(), gen.IntRange(0, 5), gen.IntRange(0, 12),
	))
	properties.TestingRun(t)
}

func TestGenerateDeterministicAcrossStrategies(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("same seed, same tree, whatever the strategy", prop.ForAll(
		func(seed uint64, depth, width int) bool {
			var trees []Stmt
			for _, tc := range testContexts(t) {
				trees = append(trees, Generate(testSource, seed, depth, width, tc.ctx))
				trees = append(trees, Generate(testSource, seed, depth, width, tc.ctx))
			}
			for i := 1; i < len(trees); i++ {
				if !trees[0].Equal(&trees[i]) {
					return false
				}
			}
			return true
		},
		gen.UInt64(), gen.IntRange(0, 6), gen.IntRange(0, 16),
	))
	properties.Property("wrangling is deterministic across strategies", prop.ForAll(
		func(seed uint64, depth, width int) bool {
			var digests []uint64
			var trees []Stmt
			for _, tc := range testContexts(t) {
				tree := Generate(testSource, seed, depth, width, tc.ctx)
				digests = append(digests, digest(func(h Hasher) { Wrangle(&tree, tc.ctx, h) }))
				trees = append(trees, tree)
			}
			return digests[0] == digests[1] && trees[0].Equal(&trees[1])
		},
		gen.UInt64(), gen.IntRange(0, 6), gen.IntRange(0, 16),
	))
	properties.TestingRun(t)
}

func TestGenerateSingleDeclaration(t *testing.T) {
	for _, tc := range testContexts(t) {
		t.Run(tc.name, func(t *testing.T) {
			const source = "source"
			tree := Generate(source, 1, 0, 0, tc.ctx)
			require.Equal(t, VarDeclStmt, tree.Kind())
			require.NoError(t, checkName(tree.VarDecl().Name, source))
			// The last byte of the source is never part of a name.
			require.NotContains(t, tree.VarDecl().Name, "e")
			if init := tree.VarDecl().Init(); init != nil {
				require.Equal(t, VariableExpr, init.Kind())
				require.NoError(t, checkName(init.Name(), source))
			}

			c := Count(&tree)
			require.Equal(t, 1, c.VarDecl)
			require.Equal(t, 0, c.List+c.ExprStmt+c.Binary+c.Comma+c.Grouping)
		})
	}
}

// TestGenerateBenchmarkConfiguration checks that the configuration used by the
// benchmarks yields the same tree every time, on every strategy.
func TestGenerateBenchmarkConfiguration(t *testing.T) {
	const source, seed, depth, width = "source", 0, 7, 100
	var first *Stmt
	for _, tc := range testContexts(t) {
		for i := 0; i < 2; i++ {
			tree := Generate(source, seed, depth, width, tc.ctx)
			require.NoError(t, checkStmt(&tree, source, depth, width))
			if first == nil {
				first = &tree
				continue
			}
			require.True(t, first.Equal(&tree), "%s: tree %d differs", tc.name, i)
		}
	}
}

func TestGenerateIsolation(t *testing.T) {
	a1, a2 := alloc.NewArena(0), alloc.NewArena(0)
	defer a1.Release()
	defer a2.Release()
	contexts := []*Context{NewContext(a1), NewContext(a2), OwnedContext()}

	trees := make([]Stmt, len(contexts))
	for i, c := range contexts {
		trees[i] = Generate(testSource, 42, 5, 10, c)
	}

	// No two trees share a node.
	owner := make(map[uintptr]int)
	for i := range trees {
		Inspect(&trees[i], func(n Node) bool {
			var p uintptr
			switch n := n.(type) {
			case *Stmt:
				p = uintptr(unsafe.Pointer(n))
			case *Expr:
				p = uintptr(unsafe.Pointer(n))
			}
			if prev, ok := owner[p]; ok {
				require.Equal(t, i, prev, "node shared by trees %d and %d", prev, i)
			}
			owner[p] = i
			return true
		})
	}

	// Wrangling one tree leaves the others untouched.
	before := []string{Dump(&trees[1]), Dump(&trees[2])}
	Wrangle(&trees[0], contexts[0], &recorder{})
	require.Equal(t, before, []string{Dump(&trees[1]), Dump(&trees[2])})
	fresh := Generate(testSource, 42, 5, 10, OwnedContext())
	require.True(t, fresh.Equal(&trees[1]))
	require.True(t, fresh.Equal(&trees[2]))
}

func TestGenerateContractViolations(t *testing.T) {
	c := OwnedContext()
	require.Panics(t, func() { Generate("", 0, 1, 1, c) })
	require.Panics(t, func() { Generate("x", 0, -1, 1, c) })
	require.Panics(t, func() { Generate("x", 0, 1, -1, c) })

	// A one byte source only ever yields empty names.
	tree := Generate("x", 3, 4, 6, c)
	for _, name := range Names(&tree) {
		require.Equal(t, "", name)
	}
	require.False(t, strings.Contains(tree.String(), `"x"`))
}
