//go:build !debug_arcbuf_track

package arcbuf

import "golang.org/x/exp/slog"

// TrackAllocations reports whether the live-allocation registry is compiled
// in. It costs a map operation per allocation and should generally be left
// deactivated.
const TrackAllocations bool = false

func trackAllocate(meta *metadata, size int) {
}

func trackDeallocate(meta *metadata) {
}

func debugPoisonBlock(block []byte) {
}

// LiveAllocationCount returns the number of counted allocations that have
// not been deallocated yet. Always zero unless the debug_arcbuf_track build
// tag is present.
func LiveAllocationCount() int {
	return 0
}

// ReportLiveAllocations logs every allocation that is still live. No-op
// unless the debug_arcbuf_track build tag is present.
func ReportLiveAllocations(logger *slog.Logger) {
}
