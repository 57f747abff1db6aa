package byteview

import (
	"github.com/bytekit/bytekit/bufutils"
)

// Empty is the allocation-free empty container backend. It backs every
// zero-value Bytes and BytesMut and implements both Impl and MutImpl; all
// zero-length operations succeed, everything else fails.
var Empty EmptyBytes

// EmptyBytes is the type of the Empty singleton.
type EmptyBytes struct{}

var (
	_ Impl    = EmptyBytes{}
	_ MutImpl = EmptyBytes{}
)

func (EmptyBytes) Len() int {
	return 0
}

func (EmptyBytes) PeekChunk() []byte {
	return nil
}

func (EmptyBytes) Advance(by int) error {
	if by > 0 {
		return bufutils.End{Requested: by}
	}
	return nil
}

func (EmptyBytes) View(start, end int) (Impl, error) {
	if err := bufutils.CheckRange(start, end, 0); err != nil {
		return nil, err
	}
	return Empty, nil
}

func (EmptyBytes) Clone() Impl {
	return Empty
}

func (EmptyBytes) Release() {
}

func (EmptyBytes) SizeLimit() int {
	return 0
}

func (EmptyBytes) ViewMut(start, end int) ([]byte, error) {
	if err := bufutils.CheckRange(start, end, 0); err != nil {
		return nil, err
	}
	return nil, nil
}

func (EmptyBytes) Writer() Writer {
	return &emptyWriter{}
}

func (EmptyBytes) Reserve(size int) error {
	if size > 0 {
		return bufutils.Full{Required: size}
	}
	return nil
}

func (EmptyBytes) SplitAt(at int) (MutImpl, error) {
	if at > 0 {
		return nil, bufutils.IndexOutOfBounds{Index: at}
	}
	return Empty, nil
}

type emptyWriter struct{}

var _ Writer = &emptyWriter{}

func (*emptyWriter) Position() int {
	return 0
}

func (*emptyWriter) PeekChunkMut() []byte {
	return nil
}

func (*emptyWriter) ViewMut(length int) ([]byte, error) {
	if length > 0 {
		return nil, bufutils.Full{Required: length}
	}
	return nil, nil
}

func (*emptyWriter) PeekViewMut(length int) ([]byte, error) {
	if length > 0 {
		return nil, bufutils.Full{Required: length}
	}
	return nil, nil
}

func (*emptyWriter) RestMut() []byte {
	return nil
}

func (*emptyWriter) PeekRestMut() []byte {
	return nil
}

func (*emptyWriter) Advance(by int) error {
	if by > 0 {
		return bufutils.Full{Required: by}
	}
	return nil
}

func (*emptyWriter) Remaining() int {
	return 0
}

func (*emptyWriter) Extend(p []byte) error {
	if len(p) > 0 {
		return bufutils.Full{Required: len(p)}
	}
	return nil
}
