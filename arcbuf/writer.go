package arcbuf

import (
	"github.com/bytekit/bytekit/bufutils"
)

// Writer is a sequential write cursor over a BufMut. Writes past the filled
// length extend it; the position can also be moved back over already-filled
// territory to patch it in place.
type Writer struct {
	buf      *BufMut
	position int
}

// Position returns the cursor offset.
func (w *Writer) Position() int {
	return w.position
}

// FillWith exposes the next length bytes to fn, then marks them initialized
// and filled and advances the cursor. fn must write every byte of the slice
// it is given: bytes it skips are treated as initialized afterward and may
// hold stale data.
func (w *Writer) FillWith(length int, fn func(p []byte)) error {
	end := w.position + length
	if end > w.buf.Capacity() {
		return bufutils.Full{Required: length, Capacity: w.buf.Capacity()}
	}

	fn(w.buf.Uninitialized()[w.position:end])
	w.buf.SetInitializedTo(end)

	if end > w.buf.filled {
		w.buf.filled = end
	}
	w.position = end
	return nil
}

// Extend appends a copy of p at the cursor.
func (w *Writer) Extend(p []byte) error {
	return w.FillWith(len(p), func(dst []byte) {
		copy(dst, p)
	})
}

// Advance moves the cursor forward by the given number of bytes. Within
// already-filled territory it just moves; past it, the gap is zero-filled
// and the filled length grows to match.
func (w *Writer) Advance(by int) error {
	alreadyFilled := w.buf.filled - w.position
	if by <= alreadyFilled {
		w.position += by
		return nil
	}

	return w.FillWith(by, func(dst []byte) {
		clear(dst[alreadyFilled:])
	})
}

// PeekChunkMut returns the filled bytes past the cursor for in-place
// mutation without consuming them, or nil if the cursor is at the filled
// end.
func (w *Writer) PeekChunkMut() []byte {
	if w.position < w.buf.filled {
		return w.buf.Filled()[w.position:]
	}
	return nil
}

// ViewMut consumes and returns the next length already-filled bytes for
// mutation in place. It cannot extend the buffer; use Extend or FillWith for
// that.
func (w *Writer) ViewMut(length int) ([]byte, error) {
	view, err := w.PeekViewMut(length)
	if err != nil {
		return nil, err
	}
	w.position += length
	return view, nil
}

// PeekViewMut is ViewMut without consuming.
func (w *Writer) PeekViewMut(length int) ([]byte, error) {
	if w.position+length > w.buf.filled {
		return nil, bufutils.Full{Required: length, Capacity: w.buf.filled - w.position}
	}
	return w.buf.Filled()[w.position : w.position+length], nil
}

// RestMut consumes and returns all remaining filled bytes for mutation in
// place.
func (w *Writer) RestMut() []byte {
	rest := w.buf.Filled()[w.position:]
	w.position = w.buf.filled
	return rest
}

// PeekRestMut is RestMut without consuming.
func (w *Writer) PeekRestMut() []byte {
	return w.buf.Filled()[w.position:]
}

// Remaining returns the number of filled bytes past the cursor.
func (w *Writer) Remaining() int {
	return w.buf.filled - w.position
}
