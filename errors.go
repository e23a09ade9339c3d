// Copyright 2026 The quad-tree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRange is returned when constructing a tree from an empty
	// point range, where the root bounding box must be computed by
	// scanning the points.
	ErrEmptyRange = textErr("empty point range")
	// ErrDegenerateBoundary is returned for a boundary with zero width
	// or height on either axis. It applies to the root boundary and to
	// every split-generated child boundary.
	ErrDegenerateBoundary = textErr("degenerate boundary")
	// ErrInvertedBoundary is returned for a boundary whose upper-left
	// corner is not strictly less than its lower-right corner on both
	// axes.
	ErrInvertedBoundary = textErr("inverted boundary")
)

const packageName = "quadtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
