// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// Buffer is the pixel interchange format of the engine: width×height
// pixels, three bytes per pixel (R, G, B interleaved), rows top to
// bottom with no padding between them. The byte offset of pixel (x, y)
// is (y*width + x) * 3.
//
// The image I/O collaborator fills a Buffer from whatever it decoded
// and gets one of the same shape back from Apply. Alpha does not
// survive the round trip through Buffer; callers that need it keep the
// source image and use ApplyImage instead.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// NewBuffer allocates a zeroed buffer. Returns ErrInvalidBufferShape if
// either dimension is not positive.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBufferShape
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}, nil
}

// BufferOf wraps an existing interleaved RGB slice without copying.
// Returns ErrInvalidBufferShape if len(pix) ≠ width*height*3 or a
// dimension is not positive. The buffer aliases pix.
func BufferOf(width, height int, pix []uint8) (*Buffer, error) {
	b := &Buffer{width: width, height: height, pix: pix}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the raw interleaved RGB data.
func (b *Buffer) Pix() []uint8 { return b.pix }

// Validate checks that the declared dimensions match the pixel data,
// returning ErrInvalidBufferShape when they do not. The appliers call
// it on every input, so a hand-built inconsistent Buffer is rejected
// rather than read out of bounds.
func (b *Buffer) Validate() error {
	if b.width <= 0 || b.height <= 0 || len(b.pix) != b.width*b.height*3 {
		return ErrInvalidBufferShape
	}
	return nil
}

// RGB returns the pixel at (x, y), or zeros outside the buffer.
func (b *Buffer) RGB(x, y int) (r, g, bl uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0
	}
	i := (y*b.width + x) * 3
	return b.pix[i], b.pix[i+1], b.pix[i+2]
}

// SetRGB sets the pixel at (x, y). Out-of-range coordinates are
// ignored.
func (b *Buffer) SetRGB(x, y int, r, g, bl uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 3
	b.pix[i] = r
	b.pix[i+1] = g
	b.pix[i+2] = bl
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Image converts the buffer to an opaque *image.RGBA.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		si := y * b.width * 3
		di := y * img.Stride
		for x := 0; x < b.width; x++ {
			img.Pix[di+0] = b.pix[si+0]
			img.Pix[di+1] = b.pix[si+1]
			img.Pix[di+2] = b.pix[si+2]
			img.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return img
}

// BufferFromImage repacks any image into the engine's RGB layout,
// dropping alpha. Returns ErrInvalidBufferShape for an empty image.
func BufferFromImage(img image.Image) (*Buffer, error) {
	rgba := clone.AsRGBA(img)
	w := rgba.Rect.Dx()
	h := rgba.Rect.Dy()
	b, err := NewBuffer(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		si := y * rgba.Stride
		di := y * w * 3
		for x := 0; x < w; x++ {
			b.pix[di+0] = rgba.Pix[si+0]
			b.pix[di+1] = rgba.Pix[si+1]
			b.pix[di+2] = rgba.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return b, nil
}
