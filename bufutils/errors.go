package bufutils

import (
	"fmt"

	"github.com/pkg/errors"
)

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// Full is returned from write-side operations when a buffer does not have
// enough capacity to satisfy a request. Buffers in this module never grow,
// so a Full error is final for the buffer it came from.
type Full struct {
	// Required is the number of bytes the operation needed
	Required int
	// Capacity is the number of bytes the buffer could actually provide.
	// For cursor-level failures this is the remaining writable span rather
	// than the buffer's total capacity.
	Capacity int
}

func (e Full) Error() string {
	return fmt.Sprintf("buffer is full: required %d bytes, but only %d are available", e.Required, e.Capacity)
}

// End is returned from read-side operations when a buffer does not have
// enough remaining data to satisfy a request.
type End struct {
	// Requested is the number of bytes the operation asked for
	Requested int
	// Read is the number of bytes consumed before the operation gave up
	Read int
	// Remaining is the number of bytes that were actually available
	Remaining int
}

func (e End) Error() string {
	return fmt.Sprintf("unexpected end of buffer: requested %d bytes, read %d, %d remaining", e.Requested, e.Read, e.Remaining)
}

// RangeOutOfBounds is returned when a requested view range exceeds the bounds
// of the buffer it was requested from.
type RangeOutOfBounds struct {
	// Start and End are the requested range, End exclusive
	Start int
	End   int
	// Length is the length of the buffer the range was checked against
	Length int
}

func (e RangeOutOfBounds) Error() string {
	return fmt.Sprintf("range [%d, %d) is out of bounds for a buffer of length %d", e.Start, e.End, e.Length)
}

// IndexOutOfBounds is returned when a requested split index exceeds the
// filled length of a buffer.
type IndexOutOfBounds struct {
	// Index is the requested index
	Index int
	// Bound is the largest valid index
	Bound int
}

func (e IndexOutOfBounds) Error() string {
	return fmt.Sprintf("index %d is out of bounds [0, %d]", e.Index, e.Bound)
}

// CheckRange validates a [start, end) range against a buffer of the provided
// length and returns a RangeOutOfBounds describing the mismatch, if any.
func CheckRange(start, end, length int) error {
	if start < 0 || end < start || end > length {
		return RangeOutOfBounds{Start: start, End: end, Length: length}
	}
	return nil
}
