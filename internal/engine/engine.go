// Package engine implements the greedy threshold search over the RGB
// lattice. A candidate color is accepted when its CIEDE2000 distance to
// every previously avoided or accepted color is at least the configured
// gap; every acceptance immediately joins the avoid collection, so the
// result is a greedy independent set in discovery order.
package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsvensson/colorgap/internal/color"
)

// Sink receives search notifications. Implementations must be cheap;
// all methods are called from the engine's serial accept loop.
type Sink interface {
	// Begin reports the lattice size before the sweep starts.
	Begin(total int)
	// Checking reports each candidate as it is finalized.
	Checking(hex string)
	// Collision reports a rejected candidate and the first avoid color
	// it collided with.
	Collision(hex, with string)
	// Found reports an accepted candidate.
	Found(hex string)
	// Progress reports points checked so far, at roughly one-second
	// intervals.
	Progress(checked, total int)
}

type nopSink struct{}

func (nopSink) Begin(int)                {}
func (nopSink) Checking(string)          {}
func (nopSink) Collision(string, string) {}
func (nopSink) Found(string)             {}
func (nopSink) Progress(int, int)        {}

// NopSink discards all notifications.
var NopSink Sink = nopSink{}

const progressInterval = time.Second

// batchPerWorker sizes the scan batches handed to each worker.
const batchPerWorker = 256

// Engine sweeps the RGB lattice and collects colors far enough from the
// avoid collection.
type Engine struct {
	// Step is the lattice stride, validated to [1, 255] by the caller.
	Step int
	// Gap is the minimum CIEDE2000 distance to every avoid color.
	// Deliberately unconstrained; 0 accepts everything.
	Gap float64
	// Workers sets the parallelism of the rejection scan. Values below 2
	// run the scan inline. Output is identical for any worker count.
	Workers int
	// Sink receives notifications; nil means silent.
	Sink Sink
}

// avoidEntry caches the Lab form of an avoid color so the hot loop never
// reconverts it.
type avoidEntry struct {
	hex string
	lab color.Lab
}

// candidate carries per-point scan state across the parallel and serial
// phases of a batch.
type candidate struct {
	c    color.Color
	hex  string
	lab  color.Lab
	pass bool
	with string
}

// Run sweeps the lattice and returns the accepted colors in discovery
// order. The seed colors form the initial avoid collection and are never
// part of the result. Run only fails when ctx is canceled.
func (e *Engine) Run(ctx context.Context, seed []color.Color) ([]color.Color, error) {
	sink := e.Sink
	if sink == nil {
		sink = NopSink
	}
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	avoids := make([]avoidEntry, 0, len(seed))
	for _, c := range seed {
		avoids = append(avoids, avoidEntry{hex: c.HexUpper(), lab: color.RGBToLab(c)})
	}

	cur := NewCursor(e.Step)
	total := cur.Total()
	sink.Begin(total)

	var accepted []color.Color
	batch := make([]candidate, 0, workers*batchPerWorker)
	checked := 0
	nextReport := time.Now().Add(progressInterval)

	for {
		batch = batch[:0]
		for len(batch) < cap(batch) {
			c, ok := cur.Next()
			if !ok {
				break
			}
			batch = append(batch, candidate{c: c})
		}
		if len(batch) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Phase 1: scan every candidate against a frozen snapshot of the
		// avoid collection. Rejection is order-independent, so this part
		// parallelizes freely.
		frozen := len(avoids)
		e.scan(batch, avoids[:frozen], workers)

		// Phase 2: finalize in traversal order. A survivor of the frozen
		// scan must still clear any color accepted earlier in this batch
		// before it may be appended itself.
		for i := range batch {
			cand := &batch[i]
			sink.Checking(cand.hex)
			if cand.pass {
				for _, av := range avoids[frozen:] {
					if color.DeltaE2000(cand.lab, av.lab) < e.Gap {
						cand.pass = false
						cand.with = av.hex
						break
					}
				}
			}
			if cand.pass {
				avoids = append(avoids, avoidEntry{hex: cand.hex, lab: cand.lab})
				accepted = append(accepted, cand.c)
				sink.Found(cand.hex)
			} else {
				sink.Collision(cand.hex, cand.with)
			}

			checked++
			if now := time.Now(); !now.Before(nextReport) {
				sink.Progress(checked, total)
				nextReport = now.Add(progressInterval)
			}
		}
	}

	return accepted, nil
}

// scan converts each candidate and tests it against the frozen avoid
// prefix, splitting the batch across workers.
func (e *Engine) scan(batch []candidate, frozen []avoidEntry, workers int) {
	chunk := (len(batch) + workers - 1) / workers
	if workers == 1 || chunk == len(batch) {
		e.scanChunk(batch, frozen)
		return
	}

	var g errgroup.Group
	for start := 0; start < len(batch); start += chunk {
		part := batch[start:min(start+chunk, len(batch))]
		g.Go(func() error {
			e.scanChunk(part, frozen)
			return nil
		})
	}
	// Workers never return errors; Wait is only for the join.
	_ = g.Wait()
}

func (e *Engine) scanChunk(part []candidate, frozen []avoidEntry) {
	for i := range part {
		cand := &part[i]
		cand.hex = cand.c.HexUpper()
		cand.lab = color.RGBToLab(cand.c)
		cand.pass = true
		for _, av := range frozen {
			if color.DeltaE2000(cand.lab, av.lab) < e.Gap {
				cand.pass = false
				cand.with = av.hex
				break
			}
		}
	}
}
