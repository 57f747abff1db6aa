// Package endian provides fixed-endianness integer codecs over the byteview
// cursor and writer surfaces. The byte order is an explicit argument rather
// than a type parameter; pass binary.BigEndian, binary.LittleEndian or
// NetworkEndian.
package endian

import (
	"encoding/binary"

	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/bytekit/bytekit/byteview"
)

// NetworkEndian is the byte order used by internet protocols.
var NetworkEndian binary.ByteOrder = binary.BigEndian

func ReadUint8(c *byteview.Cursor) (uint8, error) {
	var tmp [1]byte
	if err := c.ReadFull(tmp[:]); err != nil {
		return 0, err
	}
	return tmp[0], nil
}

func ReadUint16(c *byteview.Cursor, order binary.ByteOrder) (uint16, error) {
	var tmp [2]byte
	if err := c.ReadFull(tmp[:]); err != nil {
		return 0, err
	}
	return order.Uint16(tmp[:]), nil
}

func ReadUint32(c *byteview.Cursor, order binary.ByteOrder) (uint32, error) {
	var tmp [4]byte
	if err := c.ReadFull(tmp[:]); err != nil {
		return 0, err
	}
	return order.Uint32(tmp[:]), nil
}

func ReadUint64(c *byteview.Cursor, order binary.ByteOrder) (uint64, error) {
	var tmp [8]byte
	if err := c.ReadFull(tmp[:]); err != nil {
		return 0, err
	}
	return order.Uint64(tmp[:]), nil
}

func ReadInt8(c *byteview.Cursor) (int8, error) {
	v, err := ReadUint8(c)
	return int8(v), err
}

func ReadInt16(c *byteview.Cursor, order binary.ByteOrder) (int16, error) {
	v, err := ReadUint16(c, order)
	return int16(v), err
}

func ReadInt32(c *byteview.Cursor, order binary.ByteOrder) (int32, error) {
	v, err := ReadUint32(c, order)
	return int32(v), err
}

func ReadInt64(c *byteview.Cursor, order binary.ByteOrder) (int64, error) {
	v, err := ReadUint64(c, order)
	return int64(v), err
}

func WriteUint8(w byteview.Writer, v uint8) error {
	return w.Extend([]byte{v})
}

func WriteUint16(w byteview.Writer, order binary.ByteOrder, v uint16) error {
	var tmp [2]byte
	order.PutUint16(tmp[:], v)
	return w.Extend(tmp[:])
}

func WriteUint32(w byteview.Writer, order binary.ByteOrder, v uint32) error {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	return w.Extend(tmp[:])
}

func WriteUint64(w byteview.Writer, order binary.ByteOrder, v uint64) error {
	var tmp [8]byte
	order.PutUint64(tmp[:], v)
	return w.Extend(tmp[:])
}

func WriteInt8(w byteview.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

func WriteInt16(w byteview.Writer, order binary.ByteOrder, v int16) error {
	return WriteUint16(w, order, uint16(v))
}

func WriteInt32(w byteview.Writer, order binary.ByteOrder, v int32) error {
	return WriteUint32(w, order, uint32(v))
}

func WriteInt64(w byteview.Writer, order binary.ByteOrder, v int64) error {
	return WriteUint64(w, order, uint64(v))
}

// ReadUint reads an unsigned integer of the given byte width (1, 2, 4 or 8),
// widened to uint64. Useful when the width comes from a header field instead
// of the protocol definition.
func ReadUint(c *byteview.Cursor, order binary.ByteOrder, width int) (uint64, error) {
	switch width {
	case 1:
		v, err := ReadUint8(c)
		return uint64(v), err
	case 2:
		v, err := ReadUint16(c, order)
		return uint64(v), err
	case 4:
		v, err := ReadUint32(c, order)
		return uint64(v), err
	case 8:
		return ReadUint64(c, order)
	default:
		return 0, errors.Newf("endian: unsupported integer width %d", width)
	}
}

// WriteUint writes the low width bytes (1, 2, 4 or 8) of value.
func WriteUint(w byteview.Writer, order binary.ByteOrder, width int, value uint64) error {
	switch width {
	case 1:
		return WriteUint8(w, uint8(value))
	case 2:
		return WriteUint16(w, order, uint16(value))
	case 4:
		return WriteUint32(w, order, uint32(value))
	case 8:
		return WriteUint64(w, order, value)
	default:
		return errors.Newf("endian: unsupported integer width %d", width)
	}
}
