// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package curveio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/tonecurve"
)

// EncodeJSON writes st as indented JSON.
func EncodeJSON(w io.Writer, st *tonecurve.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(presetFromState(st)); err != nil {
		return fmt.Errorf("curveio: encode json: %w", err)
	}
	return nil
}

// DecodeJSON reads a JSON preset and validates it into a curve state.
func DecodeJSON(r io.Reader) (*tonecurve.State, error) {
	var p preset
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("curveio: decode json: %w", err)
	}
	return p.state()
}

// EncodeTOML writes st as TOML.
func EncodeTOML(w io.Writer, st *tonecurve.State) error {
	if err := toml.NewEncoder(w).Encode(presetFromState(st)); err != nil {
		return fmt.Errorf("curveio: encode toml: %w", err)
	}
	return nil
}

// DecodeTOML reads a TOML preset and validates it into a curve state.
func DecodeTOML(r io.Reader) (*tonecurve.State, error) {
	var p preset
	if err := toml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("curveio: decode toml: %w", err)
	}
	return p.state()
}

// EncodeYAML writes st as YAML.
func EncodeYAML(w io.Writer, st *tonecurve.State) error {
	data, err := yaml.Marshal(presetFromState(st))
	if err != nil {
		return fmt.Errorf("curveio: encode yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("curveio: encode yaml: %w", err)
	}
	return nil
}

// DecodeYAML reads a YAML preset and validates it into a curve state.
func DecodeYAML(r io.Reader) (*tonecurve.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("curveio: decode yaml: %w", err)
	}
	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("curveio: decode yaml: %w", err)
	}
	return p.state()
}
