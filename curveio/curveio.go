// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package curveio reads and writes curve presets: per channel, the
// ordered list of (x, y) control points. Three text formats (JSON,
// TOML, YAML) share one shape,
//
//	{"master": [[0,0],[255,255]], "red": …, "green": …, "blue": …}
//
// and the binary ACV format carries Photoshop curves files. Decoding
// always validates through the engine, so a malformed preset surfaces
// the same typed errors as a malformed live edit (duplicate x, missing
// endpoints, out-of-domain coordinates).
package curveio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/tonecurve"
)

// Errors returned by the codecs, besides the engine's own validation
// errors.
var (
	// ErrUnknownFormat is returned by Load and Save for a file
	// extension none of the codecs claim.
	ErrUnknownFormat = errors.New("curveio: unrecognized preset extension")

	// ErrInvalidPreset is returned for structural problems in preset
	// data: truncated ACV bytes, a bad version word, coordinate pairs
	// of the wrong arity, or curves too large for the target format.
	ErrInvalidPreset = errors.New("curveio: malformed preset")
)

// preset is the wire shape shared by the text codecs. A missing channel
// decodes as an identity curve.
type preset struct {
	Master [][]int `json:"master" toml:"master" yaml:"master"`
	Red    [][]int `json:"red" toml:"red" yaml:"red"`
	Green  [][]int `json:"green" toml:"green" yaml:"green"`
	Blue   [][]int `json:"blue" toml:"blue" yaml:"blue"`
}

// presetFromState captures all four channels as pair lists.
func presetFromState(st *tonecurve.State) preset {
	return preset{
		Master: pairs(st.Points(tonecurve.Master)),
		Red:    pairs(st.Points(tonecurve.Red)),
		Green:  pairs(st.Points(tonecurve.Green)),
		Blue:   pairs(st.Points(tonecurve.Blue)),
	}
}

func pairs(pts []tonecurve.Point) [][]int {
	out := make([][]int, len(pts))
	for i, p := range pts {
		out[i] = []int{p.X, p.Y}
	}
	return out
}

// state validates the pair lists through the engine and returns the
// resulting curve state.
func (p preset) state() (*tonecurve.State, error) {
	st := tonecurve.NewState()
	lists := [tonecurve.NumChannels][][]int{p.Master, p.Red, p.Green, p.Blue}
	for c, list := range lists {
		if list == nil {
			continue // absent channel stays identity
		}
		ch := tonecurve.Channel(c)
		pts, err := points(list)
		if err != nil {
			return nil, fmt.Errorf("%s curve: %w", ch, err)
		}
		if err := st.SetPoints(ch, pts); err != nil {
			return nil, fmt.Errorf("curveio: %s curve: %w", ch, err)
		}
	}
	return st, nil
}

func points(list [][]int) ([]tonecurve.Point, error) {
	pts := make([]tonecurve.Point, len(list))
	for i, pair := range list {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want 2",
				ErrInvalidPreset, i, len(pair))
		}
		pts[i] = tonecurve.Point{X: pair[0], Y: pair[1]}
	}
	return pts, nil
}

// Save writes st to path in the format named by the file extension:
// .json, .toml, .yaml/.yml, or .acv.
func Save(path string, st *tonecurve.State) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("curveio: %w", err)
	}
	if err := encode(f, st); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("curveio: %w", err)
	}
	return nil
}

// Load reads a curve state from path, picking the codec by file
// extension like Save.
func Load(path string) (*tonecurve.State, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curveio: %w", err)
	}
	defer f.Close()
	return decode(f)
}

func encoderFor(path string) (func(io.Writer, *tonecurve.State) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodeJSON, nil
	case ".toml":
		return EncodeTOML, nil
	case ".yaml", ".yml":
		return EncodeYAML, nil
	case ".acv":
		return EncodeACV, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

func decoderFor(path string) (func(io.Reader) (*tonecurve.State, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON, nil
	case ".toml":
		return DecodeTOML, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	case ".acv":
		return DecodeACV, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}
