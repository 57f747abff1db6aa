package arcbuf

import (
	"fmt"
	"sync/atomic"
)

// atomicRefCount manages the reference count of one allocation. Two pieces of
// state share a single machine word:
//
//   - bit 0 records whether a Reclaim capability is outstanding
//   - the remaining bits count strong references (Buf and BufMut handles)
//
// Packing both into one word makes "is this the sole reference, and can the
// reclaimer take it back" a single compare-and-swap.
type atomicRefCount struct {
	bits atomic.Uint64
}

func (c *atomicRefCount) init(refCount uint64, reclaim bool) {
	bits := refCount << 1
	if reclaim {
		bits |= 1
	}
	c.bits.Store(bits)
}

// increment adds one strong reference.
func (c *atomicRefCount) increment() {
	c.bits.Add(2)
}

// decrement removes one strong reference and reports whether the allocation
// must be freed.
func (c *atomicRefCount) decrement() bool {
	newBits := c.bits.Add(^uint64(1))
	oldBits := newBits + 2
	if oldBits < 2 {
		panic(fmt.Sprintf("arcbuf: strong reference count underflow (word was %d)", oldBits))
	}
	return oldBits == 2
}

// clearReclaim removes the reclaim reference and reports whether the
// allocation must be freed. The word must currently carry the reclaim bit.
func (c *atomicRefCount) clearReclaim() bool {
	newBits := c.bits.Add(^uint64(0))
	oldBits := newBits + 1
	if oldBits&1 == 0 {
		panic("arcbuf: clearing a reclaim flag that was not set")
	}
	return oldBits == 1
}

// tryReclaim flips the word from "no strong references, reclaim outstanding"
// to "one strong reference, reclaim outstanding". The single compare-and-swap
// is the only synchronization point between the last strong release and the
// reclaimer resuming ownership; a load-then-store pair here would race with
// handles created concurrently.
func (c *atomicRefCount) tryReclaim() bool {
	return c.bits.CompareAndSwap(1, 3)
}

// canReclaim is an advisory probe. tryReclaim is authoritative.
func (c *atomicRefCount) canReclaim() bool {
	return c.bits.Load() == 1
}

func (c *atomicRefCount) snapshot() RefCount {
	bits := c.bits.Load()
	return RefCount{
		counted:     true,
		count:       int(bits >> 1),
		reclaimable: bits&1 != 0,
	}
}

// RefCount is a point-in-time observation of an allocation's reference
// state. The zero value is the static state: a zero-size buffer that owns no
// allocation and performs no counting at all.
type RefCount struct {
	counted     bool
	count       int
	reclaimable bool
}

// IsStatic reports whether the buffer performs no reference counting.
// Zero-size buffers are static and can be shared for free.
func (r RefCount) IsStatic() bool {
	return !r.counted
}

// Count returns the number of strong references at observation time. The
// second return value is false for static buffers, which have no count.
func (r RefCount) Count() (int, bool) {
	if !r.counted {
		return 0, false
	}
	return r.count, true
}

// Reclaimable reports whether a Reclaim capability was outstanding at
// observation time. Always false for static buffers.
func (r RefCount) Reclaimable() bool {
	return r.counted && r.reclaimable
}

func (r RefCount) String() string {
	if !r.counted {
		return "Static"
	}
	return fmt.Sprintf("Counted{count: %d, reclaimable: %t}", r.count, r.reclaimable)
}
