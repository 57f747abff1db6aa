package arcbuf

// metadata is the out-of-band companion block of one allocation. It is shared
// by every handle derived from the allocation and lives exactly as long as
// the allocation does.
type metadata struct {
	refCount atomicRefCount

	// initialized is the offset up to which the block's bytes have been given
	// defined values during the current session. Only the tail handle may
	// read or advance it; every other handle is fully initialized by
	// construction. It survives a reclaim on purpose: bytes initialized in an
	// earlier session do not need to be zeroed again.
	initialized int
}

// allocation owns one backing block plus its metadata, or nothing at all:
// zero-size allocations use a sentinel with no block and no metadata. Buffers
// are transiently empty all the time (after a split with an empty half, after
// freezing an unfilled buffer), and those must not pay for a heap block or
// participate in reference counting.
type allocation struct {
	data []byte
	meta *metadata
}

// newAllocation creates a counted allocation with the initial reference state
// already encoded. Construction paths encode the starting count directly
// rather than incrementing afterward.
func newAllocation(size int, refCount uint64, reclaim bool) allocation {
	if size == 0 {
		return allocation{}
	}

	meta := &metadata{}
	meta.refCount.init(refCount, reclaim)

	a := allocation{
		data: poolAlloc(size),
		meta: meta,
	}
	trackAllocate(a.meta, size)
	return a
}

func (a allocation) size() int {
	return len(a.data)
}

// deallocate returns the backing block to the tier pool. The caller
// guarantees that this is the last reference and that it happens exactly
// once; deallocating the zero-size sentinel is a bug in this package.
func (a allocation) deallocate() {
	if a.meta == nil {
		panic("arcbuf: attempting to deallocate a zero-sized allocation")
	}
	trackDeallocate(a.meta)
	poolFree(a.data)
}

func (a allocation) refCount() RefCount {
	if a.meta == nil {
		return RefCount{}
	}
	return a.meta.refCount.snapshot()
}
