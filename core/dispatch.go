package core

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// PrimeRecord pairs a seed with the first prime above it.
type PrimeRecord struct {
	Seed  int
	Prime int
}

// SeedFunc must be pure: it may run on any worker, in any order.
type SeedFunc func(seed int) (PrimeRecord, error)

// Dispatcher maps a function over a finite seed set and gathers every
// result. Result order is unspecified.
type Dispatcher interface {
	Dispatch(ctx context.Context, seeds []int, fn SeedFunc) ([]PrimeRecord, error)
}

// PrimeRecordFor is the demo SeedFunc.
func PrimeRecordFor(seed int) (PrimeRecord, error) {
	return PrimeRecord{Seed: seed, Prime: FirstPrimeAbove(seed)}, nil
}

// Seeds returns start, start+step, ... while below stop.
func Seeds(start, stop, step int) []int {
	if step <= 0 || start >= stop {
		return nil
	}
	// Distances are taken as uint so ranges spanning most of int do not wrap.
	count := (uint(stop)-uint(start)-1)/uint(step) + 1
	out := make([]int, 0, min(count, maxSeedPrealloc))
	for s := start; ; s += step {
		out = append(out, s)
		if uint(stop)-uint(s) <= uint(step) {
			break
		}
	}
	return out
}

const maxSeedPrealloc = 1024

func DemoSeeds() []int {
	return Seeds(1000, 20000, 1100)
}

type PoolDispatcher struct {
	Workers int
}

func NewPoolDispatcher(workers int) *PoolDispatcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &PoolDispatcher{Workers: workers}
}

// Dispatch returns only once every unit has finished. The first unit
// error or panic fails the whole call.
func (d *PoolDispatcher) Dispatch(ctx context.Context, seeds []int, fn SeedFunc) ([]PrimeRecord, error) {
	timer := prometheus.NewTimer(DispatchDuration)
	defer timer.ObserveDuration()

	g, gctx := errgroup.WithContext(ctx)
	if d.Workers > 0 {
		g.SetLimit(d.Workers)
	}

	var mu sync.Mutex
	records := make([]PrimeRecord, 0, len(seeds))

	for _, seed := range seeds {
		g.Go(func() (err error) {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: seed %d panicked: %v", ErrDispatch, seed, r)
				}
			}()

			rec, err := fn(seed)
			if err != nil {
				return fmt.Errorf("%w: seed %d: %w", ErrDispatch, seed, err)
			}

			mu.Lock()
			records = append(records, rec)
			mu.Unlock()
			DispatchUnits.Inc()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
