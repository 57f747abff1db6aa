package byteview

import (
	"github.com/bytekit/bytekit/arcbuf"
)

// FromBuf wraps a reference-counted immutable buffer, taking ownership of
// its reference: releasing the returned Bytes releases the Buf.
func FromBuf(buf *arcbuf.Buf) Bytes {
	return Bytes{impl: &arcImpl{buf: buf}}
}

// FromBufMut wraps a reference-counted mutable buffer, taking ownership of
// its reference.
func FromBufMut(buf *arcbuf.BufMut) BytesMut {
	return BytesMut{impl: &arcMutImpl{buf: buf}}
}

type arcImpl struct {
	buf *arcbuf.Buf
}

var _ Impl = &arcImpl{}

func (a *arcImpl) Len() int {
	return a.buf.Len()
}

func (a *arcImpl) PeekChunk() []byte {
	return a.buf.PeekChunk()
}

func (a *arcImpl) Advance(by int) error {
	return a.buf.Advance(by)
}

func (a *arcImpl) View(start, end int) (Impl, error) {
	view, err := a.buf.View(start, end)
	if err != nil {
		return nil, err
	}
	return &arcImpl{buf: view}, nil
}

func (a *arcImpl) Clone() Impl {
	return &arcImpl{buf: a.buf.Clone()}
}

func (a *arcImpl) Release() {
	a.buf.Release()
}

type arcMutImpl struct {
	buf *arcbuf.BufMut
}

var _ MutImpl = &arcMutImpl{}

func (a *arcMutImpl) Len() int {
	return a.buf.Len()
}

func (a *arcMutImpl) SizeLimit() int {
	return a.buf.SizeLimit()
}

func (a *arcMutImpl) View(start, end int) (Impl, error) {
	view, err := a.buf.View(start, end)
	if err != nil {
		return nil, err
	}
	return &sliceImpl{data: view}, nil
}

func (a *arcMutImpl) ViewMut(start, end int) ([]byte, error) {
	return a.buf.ViewMut(start, end)
}

func (a *arcMutImpl) Writer() Writer {
	return a.buf.Writer()
}

func (a *arcMutImpl) Reserve(size int) error {
	return a.buf.Reserve(size)
}

func (a *arcMutImpl) SplitAt(at int) (MutImpl, error) {
	left, err := a.buf.SplitAt(at)
	if err != nil {
		return nil, err
	}
	return &arcMutImpl{buf: left}, nil
}

func (a *arcMutImpl) Release() {
	a.buf.Release()
}
