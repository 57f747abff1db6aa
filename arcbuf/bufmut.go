package arcbuf

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"

	"github.com/bytekit/bytekit/bufutils"
)

// BufMut is the uniquely-owned, writable side of a buffer session. It tracks
// a filled length separate from the allocation's initialized boundary: bytes
// below filled are real data, bytes between filled and the initialized
// boundary have defined values but no meaning yet, and bytes past the
// boundary may hold stale data from an earlier session.
//
// The zero value is an empty, static buffer with no capacity.
type BufMut struct {
	inner  bufferRef
	filled int
}

// New creates a mutable buffer with the given capacity. Capacity zero makes
// a static buffer that owns no allocation.
func New(capacity int) *BufMut {
	return &BufMut{inner: refFromAllocation(newAllocation(capacity, 1, false))}
}

// NewReclaimable creates a mutable buffer together with a Reclaim capability
// for its allocation. A reclaimable allocation is not freed when the last
// strong handle is released; it is parked until the Reclaim either takes it
// back as a fresh BufMut or is itself released.
func NewReclaimable(capacity int) (*BufMut, *Reclaim) {
	buf := newAllocation(capacity, 1, true)
	bufMut := &BufMut{inner: refFromAllocation(buf)}
	return bufMut, &Reclaim{buf: buf}
}

// Capacity returns the total writable size of this handle's range.
func (b *BufMut) Capacity() int {
	return b.inner.len()
}

// Len returns the filled length.
func (b *BufMut) Len() int {
	return b.filled
}

func (b *BufMut) IsEmpty() bool {
	return b.filled == 0
}

// RefCount observes the reference state of the underlying allocation,
// counting every handle produced from it, including split-off halves.
func (b *BufMut) RefCount() RefCount {
	return b.inner.refCount()
}

// Release drops the buffer's reference. The buffer must not be used
// afterward.
func (b *BufMut) Release() {
	b.inner.release()
	b.filled = 0
}

// Freeze converts the buffer into an immutable Buf covering exactly the
// filled range, discarding unfilled tail capacity. Freezing an unfilled
// buffer yields a static Buf with no allocation behind it. The BufMut must
// not be used after Freeze; ownership moves to the returned Buf.
func (b *BufMut) Freeze() *Buf {
	b.inner.shrink(0, b.filled)
	inner := b.inner.take()
	b.filled = 0
	return &Buf{inner: inner}
}

// SplitAt splits the buffer at the filled offset at. The returned left half
// owns [0, at) with at bytes filled; the receiver keeps [at, capacity) with
// the remaining filled bytes and its tail authority. at == 0 returns an
// empty static buffer without touching the receiver; at == Len() moves the
// whole buffer out, leaving the receiver empty and static.
func (b *BufMut) SplitAt(at int) (*BufMut, error) {
	if at < 0 || at > b.filled {
		return nil, bufutils.IndexOutOfBounds{Index: at, Bound: b.filled}
	}

	switch at {
	case 0:
		return &BufMut{}, nil
	case b.filled:
		inner := b.inner.take()
		filled := b.filled
		b.filled = 0
		return &BufMut{inner: inner, filled: filled}, nil
	default:
		left := b.inner.splitAt(at)
		b.filled -= at
		return &BufMut{inner: left, filled: at}, nil
	}
}

// Filled returns the logically valid written region.
func (b *BufMut) Filled() []byte {
	return b.inner.raw()[:b.filled]
}

// Initialized returns the region guaranteed to hold defined bytes, which may
// extend past the filled region. It is useful for write-then-confirm
// patterns: hand the slice to code that fills it and reports a count, then
// call SetFilledTo with that count.
func (b *BufMut) Initialized() []byte {
	return b.inner.initializedSlice()
}

// Uninitialized returns the entire capacity, including bytes that may hold
// stale data from a previous session. Writing into it without confirming via
// SetInitializedTo is a contract violation: the initialized boundary is what
// readers trust.
func (b *BufMut) Uninitialized() []byte {
	return b.inner.raw()
}

// SetFilledTo declares that bytes up to the offset to are real data. The
// offset must not exceed the initialized boundary; that would promote stale
// bytes to data, so it is fatal.
func (b *BufMut) SetFilledTo(to int) {
	initialized := b.inner.initializedEnd() - b.inner.start
	if to < 0 || to > initialized {
		panic(fmt.Sprintf("arcbuf: SetFilledTo(%d) is past the initialized boundary %d", to, initialized))
	}
	b.filled = to
}

// SetInitializedTo declares that bytes up to the offset to have been given
// defined values, typically after writing through Uninitialized. The caller
// must have actually written them.
func (b *BufMut) SetInitializedTo(to int) {
	b.inner.setInitializedTo(to)
}

// FullyInitialize zero-fills everything past the current initialized
// boundary, making the whole capacity safe to hand to code that expects a
// contiguous initialized slice (a socket read, for example). Does nothing if
// this handle is not the allocation's tail, since its range is then fully
// initialized already.
func (b *BufMut) FullyInitialize() {
	b.inner.fullyInitialize()
}

// Clear resets the filled length to zero. Initialization state is kept:
// already-initialized bytes stay initialized and reusable.
func (b *BufMut) Clear() {
	b.filled = 0
}

// Reserve succeeds if size bytes fit in the buffer. This buffer never grows,
// so reserving more than the capacity fails with Full.
func (b *BufMut) Reserve(size int) error {
	if size <= b.Capacity() {
		return nil
	}
	return bufutils.Full{Required: size, Capacity: b.Capacity()}
}

// SizeLimit returns the exact capacity bound of this buffer.
func (b *BufMut) SizeLimit() int {
	return b.Capacity()
}

// View returns the filled bytes in [start, end). The slice aliases the
// buffer and must not be mutated.
func (b *BufMut) View(start, end int) ([]byte, error) {
	if err := bufutils.CheckRange(start, end, b.filled); err != nil {
		return nil, err
	}
	return b.Filled()[start:end], nil
}

// ViewMut returns the filled bytes in [start, end) for mutation in place.
// It cannot extend the buffer.
func (b *BufMut) ViewMut(start, end int) ([]byte, error) {
	if err := bufutils.CheckRange(start, end, b.filled); err != nil {
		return nil, err
	}
	return b.Filled()[start:end], nil
}

// Writer returns a sequential write cursor positioned at the start of the
// buffer. The buffer must not be released or split while the writer is in
// use.
func (b *BufMut) Writer() *Writer {
	return &Writer{buf: b}
}

var _ bufutils.Validatable = &BufMut{}

// Validate performs internal consistency checks on the buffer. When this
// package is functioning correctly it cannot return an error, but it may
// assist in diagnosing issues; wrap calls in bufutils.DebugValidate to keep
// them out of production builds.
func (b *BufMut) Validate() error {
	if b.inner.buf.meta == nil {
		if b.inner.buf.data != nil {
			return cerrors.New("sentinel handle still references a backing block")
		}
		if b.inner.start != 0 || b.inner.end != 0 {
			return cerrors.Newf("sentinel handle has a non-empty range [%d, %d)", b.inner.start, b.inner.end)
		}
		if b.inner.tail {
			return cerrors.New("sentinel handle claims tail authority, but has no initialized cursor to guard")
		}
		if b.filled != 0 {
			return cerrors.Newf("sentinel handle reports %d filled bytes", b.filled)
		}
		return nil
	}

	if b.inner.start < 0 || b.inner.start > b.inner.end || b.inner.end > b.inner.buf.size() {
		return cerrors.Newf("handle range [%d, %d) is invalid for an allocation of size %d", b.inner.start, b.inner.end, b.inner.buf.size())
	}

	initialized := b.inner.end
	if b.inner.tail {
		initialized = b.inner.buf.meta.initialized
		if initialized < b.inner.start || initialized > b.inner.end {
			return cerrors.Newf("tail handle's initialized cursor %d is outside its range [%d, %d)", initialized, b.inner.start, b.inner.end)
		}
	}

	if b.filled < 0 || b.filled > initialized-b.inner.start {
		return cerrors.Newf("filled length %d exceeds the initialized span %d", b.filled, initialized-b.inner.start)
	}

	return nil
}
