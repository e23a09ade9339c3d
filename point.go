package quadtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Real is the constraint satisfied by the coordinate types a Point may
// carry. Midpoint arithmetic inherits the coordinate type's division
// semantics, so integer coordinates truncate toward zero.
type Real interface {
	constraints.Integer | constraints.Float
}

// A Point is a two-dimensional coordinate value.
type Point[T Real] struct {
	X T
	Y T
}

// String returns the point in the "[x y]" form used by the diagnostic
// tree dump.
func (p Point[T]) String() string {
	return fmt.Sprintf("[%v %v]", p.X, p.Y)
}

// midpoint returns the point halfway between a and b on each axis. The
// sums must not overflow T.
func midpoint[T Real](a, b Point[T]) Point[T] {
	return Point[T]{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
