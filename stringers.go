// Copyright 2026 The quad-tree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"fmt"
	"io"
	"strings"
)

// String returns the diagnostic dump of the tree: one line per node in
// NW, NE, SE, SW pre-order, indented two spaces per depth level, with
// the points stored at each leaf. The dump is human-readable and not
// meant for round-trip parsing.
func (qt *QuadTree[T]) String() string {
	var b strings.Builder
	_ = writeNode(&b, qt, &qt.root, 0) // strings.Builder never errors
	return b.String()
}

// Format writes the same dump as String to w, returning the number of
// bytes written. Formatting is a read-only traversal: it never changes
// tree state, and formatting the same tree twice produces identical
// output. Panics if w is nil.
func (qt *QuadTree[T]) Format(w io.Writer) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}
	cw := countingWriter{w: w}
	err = writeNode(&cw, qt, &qt.root, 0)
	return cw.n, err
}

// writeNode dumps the subtree rooted at n. Depth is a traversal
// parameter, not node state; it drives indentation only.
func writeNode[T Real](w io.Writer, t *QuadTree[T], n *node[T], depth int) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%sNode %s => (", indent, &n.bounds); err != nil {
		return err
	}
	for _, h := range n.handles {
		if _, err := fmt.Fprintf(w, " %s", t.pts[h]); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, " )\n"); err != nil {
		return err
	}
	if !n.internal() {
		return nil
	}
	children := [4]*node[T]{n.northWest, n.northEast, n.southEast, n.southWest}
	for _, c := range children {
		if err := writeNode(w, t, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// countingWriter tracks the byte count written through it on behalf of
// Format.
type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}
