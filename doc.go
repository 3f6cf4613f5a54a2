// Copyright 2021 Joshua J Baker. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree implements an in-memory R-tree spatial index over
// axis-aligned rectangles in a runtime-configured number of dimensions.
//
// The tree supports insertion, deletion, intersection search, best-first
// k-nearest-neighbor search, a full scan, and instant cloning through
// structural sharing: a Clone shares its root with the original via a
// reference-counted node graph, and any subsequent mutation of either
// handle copies only the nodes on the path it touches (copy-on-write).
//
// A Tree is not safe for concurrent mutation from multiple goroutines.
// Two handles produced by Clone may each be driven by a different
// goroutine concurrently, since COW guarantees a write on one handle never
// modifies a node visible through the other.
package rtree
