//go:build debug_arcbuf_track

package arcbuf

import (
	"context"
	"sync"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slog"
)

// TrackAllocations reports whether the live-allocation registry is compiled
// in. It costs a map operation per allocation and should generally be left
// deactivated.
const TrackAllocations bool = true

// freedBlockPoison is written over recycled blocks so that reads past the
// initialized boundary are easy to recognize in a debugger.
const freedBlockPoison byte = 0xef

var (
	trackMutex sync.Mutex
	liveAllocs = swiss.NewMap[*metadata, int](42)
)

func trackAllocate(meta *metadata, size int) {
	trackMutex.Lock()
	defer trackMutex.Unlock()
	liveAllocs.Put(meta, size)
}

func trackDeallocate(meta *metadata) {
	trackMutex.Lock()
	defer trackMutex.Unlock()
	liveAllocs.Delete(meta)
}

func debugPoisonBlock(block []byte) {
	for i := range block {
		block[i] = freedBlockPoison
	}
}

// LiveAllocationCount returns the number of counted allocations that have
// not been deallocated yet.
func LiveAllocationCount() int {
	trackMutex.Lock()
	defer trackMutex.Unlock()
	return liveAllocs.Count()
}

// ReportLiveAllocations logs every allocation that is still live. Call it at
// a point where every buffer should have been released to find leaked
// handles.
func ReportLiveAllocations(logger *slog.Logger) {
	trackMutex.Lock()
	defer trackMutex.Unlock()

	liveAllocs.Iter(func(meta *metadata, size int) bool {
		logger.LogAttrs(context.Background(), slog.LevelError,
			"[UNRELEASED BUFFER] allocation still referenced",
			slog.Int("size", size),
			slog.Int("initialized", meta.initialized),
			slog.String("refCount", meta.refCount.snapshot().String()),
		)
		return false
	})
}
