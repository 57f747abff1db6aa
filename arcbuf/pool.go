package arcbuf

import (
	"sync"

	"github.com/bytekit/bytekit/bufutils"
)

// Backing blocks are drawn from power-of-two pool tiers so that allocations
// can be recycled across buffer sessions. A request is rounded up to the next
// tier and resliced to the exact capacity; the spare tail capacity is simply
// never exposed. Requests above the largest tier are allocated directly and
// left to the garbage collector, with their capacity rounded up to whole
// pages so equal-sized oversize sessions reuse allocation size classes.
const (
	minTierSize      = 1 << 9  // 512 B
	maxTierSize      = 1 << 22 // 4 MB
	tierCount        = 14
	oversizePageSize = 1 << 12
)

var tiers [tierCount]sync.Pool

func init() {
	for i := range tiers {
		size := minTierSize << i
		bufutils.DebugCheckPow2(uint(size), "pool tier size")
		tiers[i].New = func() any {
			poolMakes.Add(1)
			return make([]byte, size)
		}
	}
}

// tierIndex returns the index of the smallest tier holding size bytes, or -1
// if the size is above the largest tier.
func tierIndex(size int) int {
	if size > maxTierSize {
		return -1
	}
	tierSize := minTierSize
	index := 0
	for tierSize < size {
		tierSize <<= 1
		index++
	}
	return index
}

func poolAlloc(size int) []byte {
	poolAllocs.Add(1)

	index := tierIndex(size)
	if index < 0 {
		poolOversize.Add(1)
		return make([]byte, size, bufutils.AlignUp(size, oversizePageSize))
	}

	block := tiers[index].Get().([]byte)
	return block[:size]
}

func poolFree(block []byte) {
	poolFrees.Add(1)

	blockCap := cap(block)
	if blockCap < minTierSize || blockCap > maxTierSize {
		// Oversize, or not one of ours. The garbage collector takes it.
		return
	}

	index := tierIndex(blockCap)
	if minTierSize<<index != blockCap {
		return
	}

	block = block[:blockCap]
	debugPoisonBlock(block)
	tiers[index].Put(block)
}
