// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

// Channel identifies one of the four editable curves. The master curve
// applies to all color channels; the per-color curves apply to a single
// channel after the master.
type Channel uint8

const (
	// Master is applied to red, green, and blue alike before the
	// per-channel curves.
	Master Channel = iota
	// Red curve, applied after Master to the red channel only.
	Red
	// Green curve, applied after Master to the green channel only.
	Green
	// Blue curve, applied after Master to the blue channel only.
	Blue

	// NumChannels is the number of editable curves.
	NumChannels = 4
)

// Valid reports whether c names one of the four channels.
func (c Channel) Valid() bool { return c < NumChannels }

// String returns the channel name ("master", "red", "green", "blue").
func (c Channel) String() string {
	switch c {
	case Master:
		return "master"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}
