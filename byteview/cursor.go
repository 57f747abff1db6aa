package byteview

import (
	"io"

	"github.com/pkg/errors"

	"github.com/bytekit/bytekit/bufutils"
)

// Cursor is an offset-tracking reader over a Bytes. Unlike the consuming
// reads on Bytes itself, a Cursor leaves the container untouched and can be
// repositioned freely. It implements io.Reader.
type Cursor struct {
	buf    Bytes
	offset int
}

// NewCursor positions a cursor at the start of buf. The cursor borrows the
// container; it takes no reference of its own.
func NewCursor(buf Bytes) *Cursor {
	return &Cursor{buf: buf}
}

// Read copies up to len(p) bytes into p, advancing the cursor. At the end of
// the container it returns io.EOF.
func (c *Cursor) Read(p []byte) (int, error) {
	chunk := c.buf.PeekChunk()
	if c.offset >= len(chunk) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(p, chunk[c.offset:])
	c.offset += n
	return n, nil
}

// ReadFull copies exactly len(p) bytes into p, advancing the cursor, or
// fails with bufutils.End without consuming anything.
func (c *Cursor) ReadFull(p []byte) error {
	if len(p) > c.Remaining() {
		return errors.Wrap(bufutils.End{Requested: len(p), Remaining: c.Remaining()}, "cursor read")
	}

	chunk := c.buf.PeekChunk()
	copy(p, chunk[c.offset:])
	c.offset += len(p)
	return nil
}

// Skip advances the cursor by n bytes without reading them.
func (c *Cursor) Skip(n int) error {
	if n > c.Remaining() {
		return bufutils.End{Requested: n, Remaining: c.Remaining()}
	}
	c.offset += n
	return nil
}

// Position returns the cursor offset from the start of the container.
func (c *Cursor) Position() int {
	return c.offset
}

// SetPosition moves the cursor to an absolute offset.
func (c *Cursor) SetPosition(position int) {
	c.offset = position
}

// Remaining returns the number of bytes between the cursor and the end of
// the container.
func (c *Cursor) Remaining() int {
	remaining := c.buf.Len() - c.offset
	if remaining < 0 {
		return 0
	}
	return remaining
}

// WriteCursor adapts a writable container's sequential writer to io.Writer.
type WriteCursor struct {
	writer Writer
}

// NewWriteCursor positions a write cursor at the start of buf.
func NewWriteCursor(buf BytesMut) *WriteCursor {
	return &WriteCursor{writer: buf.Writer()}
}

// Write appends a copy of p, failing with a wrapped bufutils.Full if the
// container's capacity cannot hold it. Partial writes do not happen.
func (c *WriteCursor) Write(p []byte) (int, error) {
	if err := c.writer.Extend(p); err != nil {
		return 0, errors.Wrap(err, "cursor write")
	}
	return len(p), nil
}

// Position returns the number of bytes written so far.
func (c *WriteCursor) Position() int {
	return c.writer.Position()
}
