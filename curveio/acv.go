// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package curveio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gogpu/tonecurve"
)

// ACV is the Photoshop curves preset format. All values are big-endian
// uint16:
//
//	version (1 or 4)
//	curve count
//	per curve: point count, then (output, input) per point
//
// Curve order is composite (master), red, green, blue. Photoshop limits
// a curve to 19 points. Output comes before input in each pair, the
// reverse of this package's (x, y) convention.
const (
	acvVersion    = 4
	acvCurveCount = 4
	acvMinPoints  = 2
	acvMaxPoints  = 19
)

// EncodeACV writes st as a Photoshop .acv curves file. A curve with
// more than 19 points does not fit the format and returns
// ErrInvalidPreset.
func EncodeACV(w io.Writer, st *tonecurve.State) error {
	var buf bytes.Buffer
	put16 := func(v uint16) {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], v)
		buf.Write(b[:])
	}

	put16(acvVersion)
	put16(acvCurveCount)
	for c := tonecurve.Channel(0); c < tonecurve.NumChannels; c++ {
		pts := st.Points(c)
		if len(pts) > acvMaxPoints {
			return fmt.Errorf("%w: %s curve has %d points, acv stores at most %d",
				ErrInvalidPreset, c, len(pts), acvMaxPoints)
		}
		put16(uint16(len(pts)))
		for _, p := range pts {
			put16(uint16(p.Y))
			put16(uint16(p.X))
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("curveio: encode acv: %w", err)
	}
	return nil
}

// DecodeACV reads a Photoshop .acv curves file. Missing trailing curves
// leave their channels at identity; curves beyond the fourth are
// skipped. Curve values outside [0,255] (16-bit presets) and other
// inconsistencies surface as the engine's validation errors.
func DecodeACV(r io.Reader) (*tonecurve.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("curveio: decode acv: %w", err)
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: acv header truncated", ErrInvalidPreset)
	}
	version := binary.BigEndian.Uint16(data[0:2])
	if version != 1 && version != acvVersion {
		return nil, fmt.Errorf("%w: acv version %d", ErrInvalidPreset, version)
	}
	count := int(binary.BigEndian.Uint16(data[2:4]))

	st := tonecurve.NewState()
	off := 4
	for i := 0; i < count; i++ {
		if off+2 > len(data) {
			return nil, fmt.Errorf("%w: acv curve %d truncated", ErrInvalidPreset, i)
		}
		n := int(binary.BigEndian.Uint16(data[off : off+2]))
		off += 2
		if n < acvMinPoints {
			return nil, fmt.Errorf("%w: acv curve %d has %d points", ErrInvalidPreset, i, n)
		}
		if off+4*n > len(data) {
			return nil, fmt.Errorf("%w: acv curve %d truncated", ErrInvalidPreset, i)
		}
		if i >= tonecurve.NumChannels {
			off += 4 * n
			continue
		}
		pts := make([]tonecurve.Point, n)
		for j := range pts {
			out := int(binary.BigEndian.Uint16(data[off : off+2]))
			in := int(binary.BigEndian.Uint16(data[off+2 : off+4]))
			pts[j] = tonecurve.Point{X: in, Y: out}
			off += 4
		}
		ch := tonecurve.Channel(i)
		if err := st.SetPoints(ch, pts); err != nil {
			return nil, fmt.Errorf("curveio: acv %s curve: %w", ch, err)
		}
	}
	return st, nil
}
