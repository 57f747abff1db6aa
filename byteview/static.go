package byteview

import (
	"github.com/bytekit/bytekit/bufutils"
)

// sliceImpl backs a Bytes with a plain slice. There is no ownership to
// track: clones and views share the slice, Release does nothing, and the
// garbage collector handles the storage.
type sliceImpl struct {
	data []byte
}

var _ Impl = &sliceImpl{}

func (s *sliceImpl) Len() int {
	return len(s.data)
}

func (s *sliceImpl) PeekChunk() []byte {
	if len(s.data) == 0 {
		return nil
	}
	return s.data
}

func (s *sliceImpl) Advance(by int) error {
	if by > len(s.data) {
		return bufutils.End{Requested: by, Remaining: len(s.data)}
	}
	s.data = s.data[by:]
	return nil
}

func (s *sliceImpl) View(start, end int) (Impl, error) {
	if err := bufutils.CheckRange(start, end, len(s.data)); err != nil {
		return nil, err
	}
	return &sliceImpl{data: s.data[start:end]}, nil
}

func (s *sliceImpl) Clone() Impl {
	return &sliceImpl{data: s.data}
}

func (s *sliceImpl) Release() {
}
