// Package byteview provides type-erased byte containers. Heterogeneous
// buffer backends - reference-counted buffers, plain slices, the empty
// singleton - implement a small interface and are stored behind one handle,
// so code shuffling byte ranges does not need to care where they live.
package byteview

import (
	"github.com/bytekit/bytekit/bufutils"
)

// Impl is the contract a readable container implements to be stored behind a
// Bytes handle. All operations are zero-copy: views share the backend's
// storage.
type Impl interface {
	Len() int

	// PeekChunk returns the remaining bytes without consuming them, or nil
	// if none remain.
	PeekChunk() []byte

	// Advance consumes by bytes, returning bufutils.End if fewer remain.
	Advance(by int) error

	// View returns a zero-copy sub-view of [start, end).
	View(start, end int) (Impl, error)

	// Clone returns an independent handle over the same bytes.
	Clone() Impl

	// Release drops this handle's reference to the underlying storage.
	Release()
}

// Bytes is a readable byte container backed by any Impl. The zero value is
// empty and allocation-free.
type Bytes struct {
	impl Impl
}

// New returns an empty Bytes. It does not allocate.
func New() Bytes {
	return Bytes{}
}

// FromImpl wraps a backend, taking ownership of its reference.
func FromImpl(impl Impl) Bytes {
	return Bytes{impl: impl}
}

// FromSlice wraps p without copying. The caller must not mutate p while the
// Bytes is in use.
func FromSlice(p []byte) Bytes {
	return Bytes{impl: &sliceImpl{data: p}}
}

func (b *Bytes) current() Impl {
	if b.impl == nil {
		return Empty
	}
	return b.impl
}

func (b *Bytes) Len() int {
	return b.current().Len()
}

func (b *Bytes) IsEmpty() bool {
	return b.Len() == 0
}

// Bytes returns the remaining bytes. The slice aliases the backend and must
// not be mutated.
func (b *Bytes) Bytes() []byte {
	return b.current().PeekChunk()
}

// View returns a zero-copy sub-view of [start, end) with its own reference.
func (b *Bytes) View(start, end int) (Bytes, error) {
	view, err := b.current().View(start, end)
	if err != nil {
		return Bytes{}, err
	}
	return Bytes{impl: view}, nil
}

// Clone returns an independent handle over the same bytes.
func (b *Bytes) Clone() Bytes {
	return Bytes{impl: b.current().Clone()}
}

// Release drops the container's reference to its storage. The container
// becomes empty.
func (b *Bytes) Release() {
	if b.impl != nil {
		b.impl.Release()
		b.impl = nil
	}
}

// PeekChunk returns the remaining bytes without consuming them, or nil if
// none remain.
func (b *Bytes) PeekChunk() []byte {
	return b.current().PeekChunk()
}

// Advance consumes by bytes.
func (b *Bytes) Advance(by int) error {
	return b.current().Advance(by)
}

// Take consumes the next length bytes and returns them as an independent
// view.
func (b *Bytes) Take(length int) (Bytes, error) {
	view, err := b.Peek(length)
	if err != nil {
		return Bytes{}, err
	}
	if err := b.current().Advance(length); err != nil {
		view.Release()
		return Bytes{}, err
	}
	return view, nil
}

// Peek returns the next length bytes as an independent view without
// consuming them.
func (b *Bytes) Peek(length int) (Bytes, error) {
	view, err := b.View(0, length)
	if err != nil {
		return Bytes{}, bufutils.End{Requested: length, Remaining: b.Len()}
	}
	return view, nil
}

// Rest moves the remaining bytes out, leaving this container empty.
func (b *Bytes) Rest() Bytes {
	impl := b.impl
	b.impl = nil
	if impl == nil {
		return Bytes{}
	}
	return Bytes{impl: impl}
}

// PeekRest returns the remaining bytes as a clone, consuming nothing.
func (b *Bytes) PeekRest() Bytes {
	return b.Clone()
}

// Remaining returns the number of unconsumed bytes.
func (b *Bytes) Remaining() int {
	return b.Len()
}
