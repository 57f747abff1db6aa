package byteview

// MutImpl is the contract a writable container implements to be stored
// behind a BytesMut handle.
type MutImpl interface {
	Len() int

	// SizeLimit returns the exact capacity bound; these containers never
	// grow.
	SizeLimit() int

	// View returns a read-only view of the filled bytes in [start, end).
	View(start, end int) (Impl, error)

	// ViewMut returns the filled bytes in [start, end) for mutation in
	// place.
	ViewMut(start, end int) ([]byte, error)

	// Writer returns a sequential write cursor positioned at the start.
	Writer() Writer

	// Reserve succeeds iff size bytes fit; it never grows the container.
	Reserve(size int) error

	// SplitAt splits off the first at filled bytes into an independently
	// owned container.
	SplitAt(at int) (MutImpl, error)

	// Release drops this handle's reference to the underlying storage.
	Release()
}

// Writer is the sequential write contract shared by all writable
// containers.
type Writer interface {
	// Position returns the cursor offset.
	Position() int

	// PeekChunkMut returns the filled bytes past the cursor for in-place
	// mutation, or nil if none remain.
	PeekChunkMut() []byte

	// ViewMut consumes and returns the next length already-filled bytes; it
	// cannot extend the container.
	ViewMut(length int) ([]byte, error)

	// PeekViewMut is ViewMut without consuming.
	PeekViewMut(length int) ([]byte, error)

	// RestMut consumes and returns all remaining filled bytes.
	RestMut() []byte

	// PeekRestMut is RestMut without consuming.
	PeekRestMut() []byte

	// Advance moves the cursor forward, zero-filling any gap past the
	// filled length.
	Advance(by int) error

	// Remaining returns the number of filled bytes past the cursor.
	Remaining() int

	// Extend appends a copy of p at the cursor.
	Extend(p []byte) error
}

// BytesMut is a writable byte container backed by any MutImpl. The zero
// value is empty with zero capacity.
type BytesMut struct {
	impl MutImpl
}

// NewMut returns an empty BytesMut with no capacity. It does not allocate.
func NewMut() BytesMut {
	return BytesMut{}
}

// FromMutImpl wraps a backend, taking ownership of its reference.
func FromMutImpl(impl MutImpl) BytesMut {
	return BytesMut{impl: impl}
}

func (b *BytesMut) current() MutImpl {
	if b.impl == nil {
		return Empty
	}
	return b.impl
}

func (b *BytesMut) Len() int {
	return b.current().Len()
}

func (b *BytesMut) IsEmpty() bool {
	return b.Len() == 0
}

// SizeLimit returns the exact capacity bound of the container.
func (b *BytesMut) SizeLimit() int {
	return b.current().SizeLimit()
}

// View returns a read-only view of the filled bytes in [start, end).
func (b *BytesMut) View(start, end int) (Bytes, error) {
	view, err := b.current().View(start, end)
	if err != nil {
		return Bytes{}, err
	}
	return Bytes{impl: view}, nil
}

// ViewMut returns the filled bytes in [start, end) for mutation in place.
func (b *BytesMut) ViewMut(start, end int) ([]byte, error) {
	return b.current().ViewMut(start, end)
}

// Writer returns a sequential write cursor over the container.
func (b *BytesMut) Writer() Writer {
	return b.current().Writer()
}

// Reserve succeeds iff size bytes fit in the container.
func (b *BytesMut) Reserve(size int) error {
	return b.current().Reserve(size)
}

// SplitAt splits off the first at filled bytes into an independently owned
// container.
func (b *BytesMut) SplitAt(at int) (BytesMut, error) {
	left, err := b.current().SplitAt(at)
	if err != nil {
		return BytesMut{}, err
	}
	return BytesMut{impl: left}, nil
}

// Release drops the container's reference to its storage. The container
// becomes empty.
func (b *BytesMut) Release() {
	if b.impl != nil {
		b.impl.Release()
		b.impl = nil
	}
}
