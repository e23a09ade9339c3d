// Copyright 2026 The quad-tree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// A Boundary is an axis-aligned rectangle given by its upper-left and
// lower-right corners. Every node in a QuadTree owns a Boundary, and
// every Boundary in a valid tree has positive width and height on both
// axes.
type Boundary[T Real] struct {
	UpperLeft  Point[T]
	LowerRight Point[T]
}

// Contains reports whether p lies within the boundary. The test is
// inclusive on all four sides, so a point on an edge shared by two
// sibling quadrants is contained by both of them; insertion resolves
// the tie with a fixed delegation order.
func (b *Boundary[T]) Contains(p Point[T]) bool {
	return p.X >= b.UpperLeft.X &&
		p.Y >= b.UpperLeft.Y &&
		p.X <= b.LowerRight.X &&
		p.Y <= b.LowerRight.Y
}

// Width returns the extent of the boundary on the X axis.
func (b *Boundary[T]) Width() T {
	return b.LowerRight.X - b.UpperLeft.X
}

// Height returns the extent of the boundary on the Y axis.
func (b *Boundary[T]) Height() T {
	return b.LowerRight.Y - b.UpperLeft.Y
}

// center returns the split point of the boundary, midway between the
// corners on each axis.
func (b *Boundary[T]) center() Point[T] {
	return midpoint(b.UpperLeft, b.LowerRight)
}

// validate checks the boundary invariant. Degeneracy is reported
// before inversion.
func (b *Boundary[T]) validate() error {
	if b.UpperLeft.X == b.LowerRight.X || b.UpperLeft.Y == b.LowerRight.Y {
		return ErrDegenerateBoundary
	}
	if b.UpperLeft.X > b.LowerRight.X || b.UpperLeft.Y > b.LowerRight.Y {
		return ErrInvertedBoundary
	}
	return nil
}

// quadrants returns the NW, NE, SE and SW child boundaries produced by
// splitting at the center. The four children share the center as a
// corner and exactly tile the parent.
func (b *Boundary[T]) quadrants() (nw, ne, se, sw Boundary[T]) {
	c := b.center()
	nw = Boundary[T]{UpperLeft: b.UpperLeft, LowerRight: c}
	ne = Boundary[T]{
		UpperLeft:  Point[T]{X: c.X, Y: b.UpperLeft.Y},
		LowerRight: Point[T]{X: b.LowerRight.X, Y: c.Y},
	}
	se = Boundary[T]{UpperLeft: c, LowerRight: b.LowerRight}
	sw = Boundary[T]{
		UpperLeft:  Point[T]{X: b.UpperLeft.X, Y: c.Y},
		LowerRight: Point[T]{X: c.X, Y: b.LowerRight.Y},
	}
	return
}

// String returns the boundary corners in the "[x y] [x y]" form used
// by the diagnostic tree dump.
func (b *Boundary[T]) String() string {
	return b.UpperLeft.String() + " " + b.LowerRight.String()
}
