// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

// Option configures an Engine during creation.
//
// Example:
//
//	// Full-resolution previews, default parallelism:
//	eng, err := preview.New(img)
//
//	// Downscaled previews with per-frame histograms:
//	eng, err := preview.New(img,
//	    preview.WithMaxDimension(1200),
//	    preview.WithHistogram(true))
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	workers   int
	maxDim    int
	histogram bool
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		workers:   0, // GOMAXPROCS
		maxDim:    0, // no downscale
		histogram: false,
	}
}

// WithWorkers sets how many goroutines apply the LUTs to the preview
// image. Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxDimension downscales the source once at engine creation so
// that its longer side is at most px. Smaller previews render faster;
// the full-resolution image is untouched. Zero or negative disables
// downscaling.
func WithMaxDimension(px int) Option {
	return func(o *options) {
		o.maxDim = px
	}
}

// WithHistogram attaches a histogram of the corrected image to every
// frame, for overlay rendering.
func WithHistogram(enabled bool) Option {
	return func(o *options) {
		o.histogram = enabled
	}
}
