// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import "errors"

// Errors returned by PointSet and State mutation operations and by the
// image appliers. All of them are recoverable: the caller rejects or
// reverts the offending gesture and continues.
var (
	// ErrOutOfDomain is returned when a supplied coordinate falls outside
	// [0,255] in an operation whose documented policy is not clamping
	// (Insert, SetPoints). Move clamps instead and never returns this
	// error. SetPoints also uses it for a missing x=0 or x=255 endpoint.
	ErrOutOfDomain = errors.New("tonecurve: coordinate outside [0,255]")

	// ErrDuplicateX is returned by Insert when a control point already
	// exists at the requested x. The endpoints at x=0 and x=255 always
	// exist, so inserting there always fails with this error.
	ErrDuplicateX = errors.New("tonecurve: control point already exists at x")

	// ErrEndpointRemoval is returned by Remove when the index addresses
	// the pinned endpoint at x=0 or x=255.
	ErrEndpointRemoval = errors.New("tonecurve: cannot remove curve endpoint")

	// ErrMinimumPoints is returned by Remove and SetPoints when the
	// result would have fewer than two points.
	ErrMinimumPoints = errors.New("tonecurve: point set requires at least 2 points")

	// ErrPointIndex is returned when an index does not address a point
	// in the set.
	ErrPointIndex = errors.New("tonecurve: point index out of range")

	// ErrInvalidBufferShape is returned when a Buffer's declared
	// dimensions do not match the length of its pixel data.
	ErrInvalidBufferShape = errors.New("tonecurve: buffer dimensions inconsistent with pixel data")
)
