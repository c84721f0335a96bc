// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ast defines the statement/expression trees of a toy language, a
// seeded generator of random trees, and Wrangle, an in-place traversal that
// rewrites a tree's structure while hashing its contents.
//
// Trees are generic over how their nodes are allocated. Every node handle and
// every sequence is obtained from the alloc.Strategy values bundled in a
// Context, so the same code builds and rewrites trees whose nodes are
// individually heap allocated (OwnedContext) and trees whose nodes all live in
// one alloc.Arena (NewContext). Both produce identical trees and hashes for
// identical inputs; only the lifetime of the storage differs.
//
// Leaf names are substrings of a single source string supplied to Generate.
// They share its storage and are never modified.
package ast
