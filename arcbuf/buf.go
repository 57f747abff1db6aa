package arcbuf

import (
	"github.com/bytekit/bytekit/bufutils"
)

// Buf is an immutable, cheaply shareable view of a buffer. Every byte it can
// see is initialized. Cloning costs one atomic increment for counted buffers
// and nothing for zero-size ones.
//
// Go has no destructors, so handles are released explicitly: every Buf
// obtained from New/Clone/Freeze/View must eventually have Release called on
// it, after which it must not be used. The zero value is an empty, static
// buffer that never needs releasing (releasing it is harmless).
type Buf struct {
	inner bufferRef
}

// Len returns the number of viewed bytes.
func (b *Buf) Len() int {
	return b.inner.len()
}

func (b *Buf) IsEmpty() bool {
	return b.Len() == 0
}

// Bytes returns the viewed bytes. The slice aliases the shared allocation
// and must not be mutated or retained past Release.
func (b *Buf) Bytes() []byte {
	return b.inner.raw()
}

// Clone adds a strong reference and returns an independent handle over the
// same range.
func (b *Buf) Clone() *Buf {
	inner := b.inner.clone()
	return &Buf{inner: inner}
}

// Release drops this handle's reference. The allocation is returned to the
// pool when the last handle referencing it is released.
func (b *Buf) Release() {
	b.inner.release()
}

// RefCount observes the reference state of the underlying allocation. The
// count covers every handle to the allocation, including handles produced by
// splitting.
func (b *Buf) RefCount() RefCount {
	return b.inner.refCount()
}

// View returns a zero-copy sub-view of the range [start, end). The view
// holds its own reference and must be released independently.
func (b *Buf) View(start, end int) (*Buf, error) {
	if err := bufutils.CheckRange(start, end, b.Len()); err != nil {
		return nil, err
	}
	view := b.Clone()
	view.inner.shrink(start, end)
	return view, nil
}

// PeekChunk returns the remaining bytes without consuming them, or nil if
// the buffer is empty.
func (b *Buf) PeekChunk() []byte {
	if b.IsEmpty() {
		return nil
	}
	return b.inner.raw()
}

// Take consumes the next length bytes and returns them as an independent
// view.
func (b *Buf) Take(length int) (*Buf, error) {
	view, err := b.Peek(length)
	if err != nil {
		return nil, err
	}
	b.inner.shrink(length, b.Len())
	return view, nil
}

// Peek returns the next length bytes as an independent view without
// consuming them.
func (b *Buf) Peek(length int) (*Buf, error) {
	view, err := b.View(0, length)
	if err != nil {
		return nil, bufutils.End{Requested: length, Remaining: b.Len()}
	}
	return view, nil
}

// Rest moves the remaining bytes out, leaving this buffer empty and static.
func (b *Buf) Rest() *Buf {
	inner := b.inner.take()
	return &Buf{inner: inner}
}

// PeekRest returns the remaining bytes as a clone, consuming nothing.
func (b *Buf) PeekRest() *Buf {
	return b.Clone()
}

// Advance consumes by bytes. Consuming everything turns the buffer into the
// static sentinel.
func (b *Buf) Advance(by int) error {
	if by > b.Len() {
		return bufutils.End{Requested: by, Remaining: b.Len()}
	}
	b.inner.shrink(by, b.Len())
	return nil
}

// Remaining returns the number of unconsumed bytes.
func (b *Buf) Remaining() int {
	return b.Len()
}
