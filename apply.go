// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"
)

// Apply maps every pixel of src through the effective LUTs and returns
// the result as a new buffer; src is never written. Rows are processed
// in parallel across the available CPUs. Returns ErrInvalidBufferShape
// if src fails Validate. luts must be non-nil.
func Apply(src *Buffer, luts *LUTs) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	dst := &Buffer{
		width:  src.width,
		height: src.height,
		pix:    make([]uint8, len(src.pix)),
	}
	parallel.Line(src.height, func(y0, y1 int) {
		mapRows(dst, src, luts, y0, y1)
	})
	return dst, nil
}

// ApplyTo maps src through luts into the caller-owned dst on the
// calling goroutine. dst and src must be valid and share dimensions;
// otherwise ErrInvalidBufferShape. Mapping is independent per byte, so
// dst may alias src for in-place application.
func ApplyTo(dst, src *Buffer, luts *LUTs) error {
	return ApplyRows(dst, src, luts, 0, src.height)
}

// ApplyRows maps only rows [y0, y1) of src into the same rows of dst.
// It is the building block for incremental appliers that need to check
// for cancellation between chunks. Shape mismatches and row ranges
// outside the buffer return ErrInvalidBufferShape.
func ApplyRows(dst, src *Buffer, luts *LUTs, y0, y1 int) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if dst.width != src.width || dst.height != src.height {
		return ErrInvalidBufferShape
	}
	if y0 < 0 || y1 > src.height || y0 > y1 {
		return ErrInvalidBufferShape
	}
	mapRows(dst, src, luts, y0, y1)
	return nil
}

// mapRows is the shared inner loop. Bounds are the caller's problem.
func mapRows(dst, src *Buffer, luts *LUTs, y0, y1 int) {
	r, g, b := &luts[Red], &luts[Green], &luts[Blue]
	lo := y0 * src.width * 3
	hi := y1 * src.width * 3
	sp := src.pix[lo:hi]
	dp := dst.pix[lo:hi]
	for i := 0; i < len(sp); i += 3 {
		dp[i+0] = r[sp[i+0]]
		dp[i+1] = g[sp[i+1]]
		dp[i+2] = b[sp[i+2]]
	}
}

// ApplyImage maps any stdlib image through luts and returns a new
// *image.RGBA. Alpha passes through untouched; img is never written.
func ApplyImage(img image.Image, luts *LUTs) *image.RGBA {
	out := clone.AsRGBA(img)
	parallel.Line(out.Rect.Dy(), func(y0, y1 int) {
		mapRGBARows(out, out, luts, y0, y1)
	})
	return out
}

// ApplyRGBARows maps rows [y0, y1) of src into dst, both *image.RGBA
// with equal sizes (their origins may differ). R, G, B go through the
// LUTs; A is copied. Like ApplyRows it exists so incremental appliers
// can stop between chunks. Size or range mismatches return
// ErrInvalidBufferShape.
func ApplyRGBARows(dst, src *image.RGBA, luts *LUTs, y0, y1 int) error {
	if dst.Rect.Dx() != src.Rect.Dx() || dst.Rect.Dy() != src.Rect.Dy() {
		return ErrInvalidBufferShape
	}
	if y0 < 0 || y1 > src.Rect.Dy() || y0 > y1 {
		return ErrInvalidBufferShape
	}
	mapRGBARows(dst, src, luts, y0, y1)
	return nil
}

// mapRGBARows maps RGBA rows [y0, y1), counted from each image's top
// row. dst may alias src.
func mapRGBARows(dst, src *image.RGBA, luts *LUTs, y0, y1 int) {
	r, g, b := &luts[Red], &luts[Green], &luts[Blue]
	n := src.Rect.Dx() * 4
	for y := y0; y < y1; y++ {
		sp := src.Pix[y*src.Stride : y*src.Stride+n]
		dp := dst.Pix[y*dst.Stride : y*dst.Stride+n]
		for i := 0; i < n; i += 4 {
			dp[i+0] = r[sp[i+0]]
			dp[i+1] = g[sp[i+1]]
			dp[i+2] = b[sp[i+2]]
			dp[i+3] = sp[i+3]
		}
	}
}
