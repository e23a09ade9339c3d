// Copyright 2026 The quad-tree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a non-intrusive quadtree spatial index
// over two-dimensional points.
//
// The tree recursively partitions an axis-aligned rectangle into four
// quadrants whenever a node's point count exceeds a fixed capacity.
// It is non-intrusive: nodes store integer handles into a point
// collection the caller owns, and no point data is ever copied. The
// caller must not change the collection's element values while the
// tree is alive; every operation of a tree whose points changed under
// it, except teardown, is undefined.
package quadtree
