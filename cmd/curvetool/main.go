// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command curvetool applies a saved curve preset to an image file.
//
// Example:
//
//	curvetool -in photo.jpg -curves warm.acv -out corrected.png
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"

	// Decoders beyond the png/jpeg/bmp set that imgio registers.
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/tonecurve"
	"github.com/gogpu/tonecurve/curveio"
)

func main() {
	var (
		in      = flag.String("in", "", "input image (png, jpg, bmp, tiff, webp)")
		out     = flag.String("out", "out.png", "output image (png, jpg, bmp)")
		curves  = flag.String("curves", "", "curve preset (.json, .toml, .yaml, .acv)")
		quality = flag.Int("quality", 95, "jpeg quality")
	)
	flag.Parse()

	if *in == "" || *curves == "" {
		flag.Usage()
		log.Fatal("both -in and -curves are required")
	}

	enc, err := encoderFor(*out, *quality)
	if err != nil {
		log.Fatalf("Failed to pick output format: %v", err)
	}

	st, err := curveio.Load(*curves)
	if err != nil {
		log.Fatalf("Failed to load curves: %v", err)
	}

	img, err := imgio.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}

	start := time.Now()
	corrected := tonecurve.ApplyImage(img, st.EffectiveLUTs())
	elapsed := time.Since(start)

	if err := imgio.Save(*out, corrected, enc); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := corrected.Bounds()
	log.Printf("Wrote %s (%dx%d) in %v\n", *out, b.Dx(), b.Dy(), elapsed)
}

// encoderFor picks the output encoder by file extension.
func encoderFor(path string, quality int) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(quality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	}
	return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}
