// Package perf samples how long each round of a Proc takes.
package perf

import (
	"runtime"
	"time"

	"github.com/borkshop/rampage/internal/ecs"
)

const (
	numSamples = 64
)

// Perf is an ecs.Proc that collects timing data about the Proc it wraps.
type Perf struct {
	ecs.Proc

	// Now defaults to time.Now.
	Now func() time.Time

	// MemStats enables reading runtime memory statistics every round.
	MemStats bool

	round    int
	i        int
	time     [numSamples]struct{ start, end time.Time }
	memStats runtime.MemStats
}

// Init sets up the perf system around a proc.
func (perf *Perf) Init(proc ecs.Proc) {
	perf.Proc = proc
	if perf.Now == nil {
		perf.Now = time.Now
	}
}

// Process runs a round of the wrapped Proc, timing it.
func (perf *Perf) Process() {
	perf.round++
	perf.time[perf.i].start = perf.Now()
	if perf.Proc != nil {
		perf.Proc.Process()
	}
	perf.time[perf.i].end = perf.Now()
	if perf.MemStats {
		runtime.ReadMemStats(&perf.memStats)
	}
	perf.i = (perf.i + 1) % numSamples
}

// Round returns how many rounds have run.
func (perf *Perf) Round() int { return perf.round }

// Elapsed returns how long the last round took.
func (perf *Perf) Elapsed() time.Duration {
	if perf.round == 0 {
		return 0
	}
	s := perf.time[perf.lastI()]
	return s.end.Sub(s.start)
}

// FPS returns the rate rounds have been starting at over the retained
// samples; it is zero until two rounds have run.
func (perf *Perf) FPS() float64 {
	n := min(perf.round, numSamples)
	if n < 2 {
		return 0
	}
	first := (perf.i - n + numSamples) % numSamples
	span := perf.time[perf.lastI()].start.Sub(perf.time[first].start)
	if span <= 0 {
		return 0
	}
	return float64(n-1) / span.Seconds()
}

// HeapAlloc returns the heap size read in the last round, if MemStats is
// enabled.
func (perf *Perf) HeapAlloc() uint64 { return perf.memStats.HeapAlloc }

func (perf *Perf) lastI() int { return (perf.i - 1 + numSamples) % numSamples }
