// Copyright 2026 The quad-tree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// A node is one rectangular region of a QuadTree. A node is either a
// leaf, holding up to the tree's capacity in point handles, or
// internal, holding exactly four children which tile its boundary —
// never a mix. The leaf to internal transition is one-way.
type node[T Real] struct {
	bounds Boundary[T]

	// Child quadrants. Either all four are nil or none is.
	northWest *node[T]
	northEast *node[T]
	southWest *node[T]
	southEast *node[T]

	// handles into the tree's point collection. Leaf nodes only, each
	// handle held at most once.
	handles []int
}

// internal reports whether the node has split. Checking one child
// suffices because split assigns all four together.
func (n *node[T]) internal() bool {
	return n.northWest != nil
}

// holds reports whether the leaf already stores handle i.
func (n *node[T]) holds(i int) bool {
	for _, h := range n.handles {
		if h == i {
			return true
		}
	}
	return false
}

// insert places handle i into this node or a descendant, reporting
// whether it was accepted. A point outside the node's boundary is
// rejected without mutating anything. Splitting a full leaf fails with
// ErrDegenerateBoundary when the boundary is too small to yield four
// valid quadrants.
func (n *node[T]) insert(t *QuadTree[T], i int) (bool, error) {
	if !n.bounds.Contains(t.pts[i]) {
		return false, nil
	}
	if n.internal() {
		return n.delegate(t, i)
	}
	if n.holds(i) {
		return true, nil
	}
	if len(n.handles) < t.capacity {
		n.handles = append(n.handles, i)
		return true, nil
	}
	if err := n.split(t); err != nil {
		return false, err
	}
	return n.delegate(t, i)
}

// delegate offers handle i to the children in the fixed insertion
// order NW, NE, SW, SE, stopping at the first that accepts. A point
// contained by this node but claimed by no child means the boundary
// and center arithmetic disagree, and panics.
func (n *node[T]) delegate(t *QuadTree[T], i int) (bool, error) {
	children := [4]*node[T]{n.northWest, n.northEast, n.southWest, n.southEast}
	for _, c := range children {
		ok, err := c.insert(t, i)
		if err != nil || ok {
			return ok, err
		}
	}
	fmtPanic("point %s contained by node %s but claimed by no quadrant", t.pts[i], &n.bounds)
	return false, nil // unreachable
}

// split turns a full leaf into an internal node. It constructs the
// four quadrant boundaries around the center, validates every one
// before any child exists, then redistributes the stored handles into
// the new children in the fixed redistribution order NW, NE, SE, SW.
// Note that this order differs from the NW, NE, SW, SE order used by
// insertion delegation.
func (n *node[T]) split(t *QuadTree[T]) error {
	nw, ne, se, sw := n.bounds.quadrants()
	for _, b := range [4]*Boundary[T]{&nw, &ne, &se, &sw} {
		if err := b.validate(); err != nil {
			return wrapErr("cannot split node %s", err, &n.bounds)
		}
	}
	n.northWest = &node[T]{bounds: nw}
	n.northEast = &node[T]{bounds: ne}
	n.southEast = &node[T]{bounds: se}
	n.southWest = &node[T]{bounds: sw}
	for _, i := range n.handles {
		if err := n.redistribute(t, i); err != nil {
			return err
		}
	}
	n.handles = nil
	return nil
}

// redistribute moves handle i from a splitting node into the first
// child that accepts it, trying NW, NE, SE, SW.
func (n *node[T]) redistribute(t *QuadTree[T], i int) error {
	children := [4]*node[T]{n.northWest, n.northEast, n.southEast, n.southWest}
	for _, c := range children {
		ok, err := c.insert(t, i)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	fmtPanic("point %s contained by node %s but claimed by no quadrant", t.pts[i], &n.bounds)
	return nil // unreachable
}

// numPoints counts the handles stored in the subtree rooted at n.
func (n *node[T]) numPoints() int {
	if !n.internal() {
		return len(n.handles)
	}
	return n.northWest.numPoints() +
		n.northEast.numPoints() +
		n.southEast.numPoints() +
		n.southWest.numPoints()
}

// A QuadTree is a spatial index over two-dimensional points.
//
// The tree is non-intrusive. It keeps the point slice bound at
// construction and stores integer handles into it; the point data
// itself stays with the caller and is never copied. The caller must
// not change the slice's element values while the tree is alive —
// appending to the caller's own slice is harmless, since the tree's
// view is unaffected, but mutating an element in place leaves every
// subsequent tree operation undefined.
//
// A QuadTree is not safe for concurrent use.
type QuadTree[T Real] struct {
	pts      []Point[T]
	capacity int
	root     node[T]
}

func validateCapacity(capacity int) {
	if capacity < 1 {
		textPanic("node capacity must be at least 1")
	}
}

// New creates a tree over pts rooted at the tight bounding box of the
// whole collection and inserts every point. It fails with
// ErrEmptyRange if pts is empty, and with ErrDegenerateBoundary if the
// bounding box has no area, for example when every point is identical.
// Panics if capacity is less than 1.
func New[T Real](pts []Point[T], capacity int) (*QuadTree[T], error) {
	validateCapacity(capacity)
	if len(pts) == 0 {
		return nil, ErrEmptyRange
	}
	bounds := Boundary[T]{UpperLeft: pts[0], LowerRight: pts[0]}
	for _, p := range pts[1:] {
		if p.X < bounds.UpperLeft.X {
			bounds.UpperLeft.X = p.X
		}
		if p.Y < bounds.UpperLeft.Y {
			bounds.UpperLeft.Y = p.Y
		}
		if p.X > bounds.LowerRight.X {
			bounds.LowerRight.X = p.X
		}
		if p.Y > bounds.LowerRight.Y {
			bounds.LowerRight.Y = p.Y
		}
	}
	return NewBounded(bounds, pts, capacity)
}

// NewBounded creates a tree with an explicit root boundary over pts
// and inserts every point. Points falling outside bounds are skipped.
// Panics if capacity is less than 1.
func NewBounded[T Real](bounds Boundary[T], pts []Point[T], capacity int) (*QuadTree[T], error) {
	qt, err := NewEmpty(bounds, pts, capacity)
	if err != nil {
		return nil, err
	}
	if err = qt.InsertRange(0, len(pts)); err != nil {
		return nil, err
	}
	return qt, nil
}

// NewEmpty creates an empty tree with an explicit root boundary. The
// tree indexes into pts but inserts nothing; the caller drives
// insertion through Insert or InsertRange. Panics if capacity is less
// than 1.
func NewEmpty[T Real](bounds Boundary[T], pts []Point[T], capacity int) (*QuadTree[T], error) {
	validateCapacity(capacity)
	if err := bounds.validate(); err != nil {
		return nil, err
	}
	return &QuadTree[T]{
		pts:      pts,
		capacity: capacity,
		root:     node[T]{bounds: bounds},
	}, nil
}

// Insert indexes the point at handle i, reporting whether it was
// accepted. A point outside the root boundary is rejected and the tree
// is unchanged. Inserting a handle the tree already holds succeeds
// without storing it twice. Panics if i is not a valid index into the
// point collection.
func (qt *QuadTree[T]) Insert(i int) (bool, error) {
	qt.checkHandle(i)
	return qt.root.insert(qt, i)
}

// InsertRange inserts every handle in [i, j), in order. Points outside
// the root boundary are skipped rather than reported. Panics if the
// range does not fit the point collection.
func (qt *QuadTree[T]) InsertRange(i, j int) error {
	qt.checkRange(i, j)
	for ; i < j; i++ {
		if _, err := qt.root.insert(qt, i); err != nil {
			return err
		}
	}
	return nil
}

func (qt *QuadTree[T]) checkHandle(i int) {
	if i < 0 || i >= len(qt.pts) {
		fmtPanic("point handle %d out of range [0,%d)", i, len(qt.pts))
	}
}

func (qt *QuadTree[T]) checkRange(i, j int) {
	if i < 0 || j > len(qt.pts) || i > j {
		fmtPanic("handle range [%d,%d) out of range [0,%d)", i, j, len(qt.pts))
	}
}

// Bounds returns the root boundary of the tree.
func (qt *QuadTree[T]) Bounds() Boundary[T] {
	return qt.root.bounds
}

// Capacity returns the maximum number of point handles a leaf may hold
// before it must split.
func (qt *QuadTree[T]) Capacity() int {
	return qt.capacity
}

// NumPoints returns the number of points indexed by the tree, summed
// over all leaves.
func (qt *QuadTree[T]) NumPoints() int {
	return qt.root.numPoints()
}

// Point returns the point at handle i. Panics if i is not a valid
// index into the point collection.
func (qt *QuadTree[T]) Point(i int) Point[T] {
	qt.checkHandle(i)
	return qt.pts[i]
}
