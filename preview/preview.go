// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview renders corrected images in the background while the
// user drags curve control points.
//
// An Engine owns one source image and one worker goroutine. Each call
// to Update snapshots the curve state under a new sequence number; the
// worker always builds from the most recent snapshot and abandons work
// for snapshots that have been superseded, between row bands if it is
// already applying. Completed frames arrive on Frames with strictly
// increasing sequence numbers, so a stale result can never replace a
// fresher one, and a slow receiver only ever sees the newest frame.
package preview

import (
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/histogram"
	"golang.org/x/image/draw"

	"github.com/gogpu/tonecurve"
	"github.com/gogpu/tonecurve/internal/parallel"
)

// Frame is one finished preview render.
type Frame struct {
	// Seq is the engine-local sequence number of the Update that
	// produced this frame. Frames arrive with strictly increasing Seq.
	Seq uint64

	// Revision is the curve state's edit revision at snapshot time.
	Revision uint64

	// Image is the corrected preview. The receiver owns it; the engine
	// never touches a delivered frame again.
	Image *image.RGBA

	// LUTs are the effective lookup tables the frame was built with,
	// for curve or histogram overlays.
	LUTs tonecurve.LUTs

	// Histogram of the corrected image. Nil unless WithHistogram was
	// given.
	Histogram *histogram.RGBAHistogram

	// Elapsed is the time spent building LUTs and applying them.
	Elapsed time.Duration
}

// snapshot is a pending unit of work: an independent copy of the curve
// state tagged with its sequence number.
type snapshot struct {
	seq uint64
	st  *tonecurve.State
}

// Engine renders previews off the interaction loop. Create one with
// New, feed it with Update, receive on Frames, and Close it when the
// editing session ends.
//
// Update and Close are safe for concurrent use, though a single
// interaction loop is the expected caller.
type Engine struct {
	src  *image.RGBA // prepared source, never written after New
	opts options

	frames chan Frame
	notify chan struct{} // capacity 1, kicks the worker
	quit   chan struct{}
	done   chan struct{}

	latest atomic.Uint64 // seq of the newest Update

	mu      sync.Mutex
	pending *snapshot // newest unconsumed snapshot
	seq     uint64
	closed  bool
}

// New creates an Engine for src and starts its worker. The source is
// normalized to RGBA (and downscaled if WithMaxDimension says so) once,
// up front. Returns tonecurve.ErrInvalidBufferShape for a nil or empty
// source image.
func New(src image.Image, opts ...Option) (*Engine, error) {
	if src == nil {
		return nil, tonecurve.ErrInvalidBufferShape
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	prepared, err := prepare(src, o.maxDim)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		src:    prepared,
		opts:   o,
		frames: make(chan Frame, 1),
		notify: make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go e.run()

	b := prepared.Bounds()
	tonecurve.Logger().Info("preview engine started",
		"width", b.Dx(), "height", b.Dy(),
		"workers", o.workers, "histogram", o.histogram)
	return e, nil
}

// prepare normalizes src to an RGBA at (0,0) and applies the one-time
// downscale.
func prepare(src image.Image, maxDim int) (*image.RGBA, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, tonecurve.ErrInvalidBufferShape
	}
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return clone.AsRGBA(src), nil
	}
	w, h := fitWithin(b.Dx(), b.Dy(), maxDim)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// fitWithin shrinks w×h proportionally so the longer side equals limit.
func fitWithin(w, h, limit int) (int, int) {
	if w >= h {
		h = (h*limit + w/2) / w
		w = limit
	} else {
		w = (w*limit + h/2) / h
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Bounds returns the preview image bounds after any downscale.
func (e *Engine) Bounds() image.Rectangle { return e.src.Bounds() }

// Frames returns the delivery channel. It is closed by Close. The
// channel holds a single frame: if the receiver lags, the engine drops
// the undelivered frame in favor of the newer one.
func (e *Engine) Frames() <-chan Frame { return e.frames }

// Update snapshots st for rendering. The snapshot supersedes any
// not-yet-rendered predecessor, and rendering already in progress for
// an older snapshot is abandoned at the next row band. Update never
// blocks on rendering. After Close it is a no-op.
func (e *Engine) Update(st *tonecurve.State) {
	snap := st.Clone()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.seq++
	replaced := e.pending != nil
	e.pending = &snapshot{seq: e.seq, st: snap}
	e.latest.Store(e.seq)
	seq := e.seq
	e.mu.Unlock()

	if replaced {
		tonecurve.Logger().Debug("preview: pending snapshot superseded", "seq", seq)
	}
	select {
	case e.notify <- struct{}{}:
	default:
	}
}

// Close stops the worker, waits for it to exit, and closes Frames.
// Safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	already := e.closed
	e.closed = true
	e.pending = nil
	e.mu.Unlock()

	if !already {
		close(e.quit)
		tonecurve.Logger().Info("preview engine stopped")
	}
	<-e.done
}

// take removes and returns the pending snapshot, or nil.
func (e *Engine) take() *snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.pending
	e.pending = nil
	return s
}

func (e *Engine) quitting() bool {
	select {
	case <-e.quit:
		return true
	default:
		return false
	}
}

// run is the worker loop: wait for a kick, then drain snapshots,
// always rendering only the newest one.
func (e *Engine) run() {
	defer close(e.done)
	defer close(e.frames)
	for {
		select {
		case <-e.quit:
			return
		case <-e.notify:
		}
		for {
			snap := e.take()
			if snap == nil {
				break
			}
			e.render(snap)
			if e.quitting() {
				return
			}
		}
	}
}

// render builds the LUTs for one snapshot and applies them band by
// band, abandoning the frame as soon as the snapshot is superseded.
// Partial frames are never delivered.
func (e *Engine) render(snap *snapshot) {
	log := tonecurve.Logger()
	start := time.Now()

	luts := snap.st.EffectiveLUTs()
	bounds := e.src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	stale := func() bool {
		return e.latest.Load() != snap.seq || e.quitting()
	}
	ok := parallel.Rows(bounds.Dy(), e.opts.workers, stale, func(y0, y1 int) {
		// Equal sizes and a band from Rows: the range is always valid.
		_ = tonecurve.ApplyRGBARows(dst, e.src, luts, y0, y1)
	})
	if !ok {
		log.Debug("preview: abandoned mid-apply", "seq", snap.seq)
		return
	}
	if stale() {
		log.Debug("preview: discarded completed frame", "seq", snap.seq)
		return
	}

	fr := Frame{
		Seq:      snap.seq,
		Revision: snap.st.Revision(),
		Image:    dst,
		LUTs:     *luts,
		Elapsed:  time.Since(start),
	}
	if e.opts.histogram {
		fr.Histogram = histogram.NewRGBAHistogram(dst)
	}
	e.deliver(fr)
	log.Debug("preview: frame ready",
		"seq", fr.Seq, "revision", fr.Revision, "elapsed", fr.Elapsed)
}

// deliver puts fr on the frames channel, displacing an undelivered
// older frame rather than blocking on a slow receiver.
func (e *Engine) deliver(fr Frame) {
	for {
		select {
		case e.frames <- fr:
			return
		default:
		}
		select {
		case old := <-e.frames:
			tonecurve.Logger().Debug("preview: dropped undelivered frame", "seq", old.Seq)
		default:
		}
	}
}
