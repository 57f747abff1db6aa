package arcbuf

import (
	"sync/atomic"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

var (
	poolAllocs   atomic.Int64
	poolMakes    atomic.Int64
	poolFrees    atomic.Int64
	poolOversize atomic.Int64
	poolReclaims atomic.Int64
)

// Statistics is a snapshot of the package's allocation activity since
// process start. Counters are process-global, like the pools they describe.
type Statistics struct {
	// Allocations is the number of counted allocations created
	Allocations int
	// PoolMakes is the number of fresh blocks the tier pools had to make
	PoolMakes int
	// PoolHits is the number of allocations served from recycled blocks
	PoolHits int
	// Frees is the number of blocks handed back on final release
	Frees int
	// OversizeAllocations is the number of requests above the largest tier,
	// which bypass the pools entirely
	OversizeAllocations int
	// Reclaims is the number of successful session reclaims, each of which
	// avoided a fresh allocation
	Reclaims int
}

// Stats reads the current counters.
func Stats() Statistics {
	allocations := int(poolAllocs.Load())
	makes := int(poolMakes.Load())
	oversize := int(poolOversize.Load())

	hits := allocations - makes - oversize
	if hits < 0 {
		// Pools can warm up concurrently with this read; don't report a
		// negative hit count for a torn snapshot.
		hits = 0
	}

	return Statistics{
		Allocations:         allocations,
		PoolMakes:           makes,
		PoolHits:            hits,
		Frees:               int(poolFrees.Load()),
		OversizeAllocations: oversize,
		Reclaims:            int(poolReclaims.Load()),
	}
}

// PrintJSON streams the statistics as one JSON object.
func (s Statistics) PrintJSON(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	objState.Name("Allocations").Int(s.Allocations)
	objState.Name("PoolMakes").Int(s.PoolMakes)
	objState.Name("PoolHits").Int(s.PoolHits)
	objState.Name("Frees").Int(s.Frees)
	objState.Name("OversizeAllocations").Int(s.OversizeAllocations)
	objState.Name("Reclaims").Int(s.Reclaims)
}
