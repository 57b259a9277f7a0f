// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel schedules row-band work across goroutines, with a
// stop check between bands so in-flight work can be abandoned when its
// result is no longer wanted.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker controls scheduling granularity. More bands per worker
// means more frequent stop checks and better load balance, at the cost
// of a little contention on the shared counter.
const bandsPerWorker = 4

// Rows calls fn for consecutive row bands [y0, y1) that together cover
// [0, height), using the given number of goroutines (GOMAXPROCS if
// workers <= 0). Bands are handed out dynamically, so uneven bands do
// not stall the whole pass.
//
// Before taking a band, each goroutine consults stop; once stop returns
// true no further bands start, and Rows returns false to signal that
// coverage is incomplete. Bands already running are finished, not
// interrupted. A nil stop means run to completion. Rows returns true
// when every row was processed.
//
// fn must be safe to call concurrently from multiple goroutines.
func Rows(height, workers int, stop func() bool, fn func(y0, y1 int)) bool {
	if height <= 0 {
		return true
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height {
		workers = height
	}

	band := height / (workers * bandsPerWorker)
	if band < 1 {
		band = 1
	}

	var (
		next    atomic.Int64
		stopped atomic.Bool
		wg      sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				if stop != nil && stop() {
					stopped.Store(true)
					return
				}
				y0 := int(next.Add(int64(band))) - band
				if y0 >= height {
					return
				}
				y1 := y0 + band
				if y1 > height {
					y1 = height
				}
				fn(y0, y1)
			}
		}()
	}
	wg.Wait()
	return !stopped.Load()
}
