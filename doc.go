// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tonecurve implements an interactive tone-curve engine for images.
//
// # Overview
//
// A tone curve maps input intensity to output intensity through a smooth
// curve defined by a small number of editable control points. tonecurve
// maintains one curve for a master (luminance) channel and one for each of
// red, green, and blue, turns them into 256-entry lookup tables (LUTs),
// composes master and channel curves, and applies the result to pixel data
// at interactive speed.
//
// # Quick Start
//
//	import "github.com/gogpu/tonecurve"
//
//	// Identity curves on all four channels.
//	st := tonecurve.NewState()
//
//	// Lift the midtones on the master channel.
//	idx, err := st.Insert(tonecurve.Master, 128, 160)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = st.Move(tonecurve.Master, idx, 128, 170) // drag it a little higher
//
//	// Apply to an image.
//	luts := st.EffectiveLUTs()
//	out := tonecurve.ApplyImage(img, luts)
//
// # Architecture
//
// The library is organized into:
//   - Public API: State, PointSet, Spline, LUT, Buffer, Apply
//   - preview/: coalescing background recompute for live previews
//   - curveio/: curve preset persistence (JSON, TOML, YAML, ACV)
//   - Internal: parallel (cancellable row scheduling)
//
// # Coordinate System
//
// Curve space is the integer grid [0,255]x[0,255]: x is input intensity,
// y is output intensity. Control points live on this grid; callers translate
// device coordinates to curve space before calling into the engine.
//
// # Collaborators
//
// tonecurve contains no widget, event, or file-format code. A UI layer feeds
// it curve-space gestures (HitTest, Insert, Move, Remove), a rendering layer
// reads points and sampled curves back out, and an image I/O layer exchanges
// pixel buffers with Apply. All operations on a State are synchronous; the
// preview package is the one place goroutines are spawned.
package tonecurve

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
