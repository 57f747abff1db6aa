package endian_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytekit/bytekit/arcbuf"
	"github.com/bytekit/bytekit/bufutils"
	"github.com/bytekit/bytekit/byteview"
	"github.com/bytekit/bytekit/endian"
)

func writable(capacity int) byteview.BytesMut {
	return byteview.FromBufMut(arcbuf.New(capacity))
}

func readBack(t *testing.T, b byteview.BytesMut) *byteview.Cursor {
	t.Helper()
	view, err := b.View(0, b.Len())
	require.NoError(t, err)
	return byteview.NewCursor(view)
}

func TestRoundTrip(t *testing.T) {
	buf := writable(64)
	defer buf.Release()
	writer := buf.Writer()

	require.NoError(t, endian.WriteUint8(writer, 0x12))
	require.NoError(t, endian.WriteUint16(writer, endian.NetworkEndian, 0xbeef))
	require.NoError(t, endian.WriteUint32(writer, endian.NetworkEndian, 0xdeadbeef))
	require.NoError(t, endian.WriteUint64(writer, endian.NetworkEndian, 0x0102030405060708))
	require.NoError(t, endian.WriteInt8(writer, -1))
	require.NoError(t, endian.WriteInt16(writer, endian.NetworkEndian, -2))
	require.NoError(t, endian.WriteInt32(writer, endian.NetworkEndian, -3))
	require.NoError(t, endian.WriteInt64(writer, endian.NetworkEndian, -4))

	cursor := readBack(t, buf)

	u8, err := endian.ReadUint8(cursor)
	require.NoError(t, err)
	require.Equal(t, uint8(0x12), u8)

	u16, err := endian.ReadUint16(cursor, endian.NetworkEndian)
	require.NoError(t, err)
	require.Equal(t, uint16(0xbeef), u16)

	u32, err := endian.ReadUint32(cursor, endian.NetworkEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), u32)

	u64, err := endian.ReadUint64(cursor, endian.NetworkEndian)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)

	i8, err := endian.ReadInt8(cursor)
	require.NoError(t, err)
	require.Equal(t, int8(-1), i8)

	i16, err := endian.ReadInt16(cursor, endian.NetworkEndian)
	require.NoError(t, err)
	require.Equal(t, int16(-2), i16)

	i32, err := endian.ReadInt32(cursor, endian.NetworkEndian)
	require.NoError(t, err)
	require.Equal(t, int32(-3), i32)

	i64, err := endian.ReadInt64(cursor, endian.NetworkEndian)
	require.NoError(t, err)
	require.Equal(t, int64(-4), i64)

	require.Equal(t, 0, cursor.Remaining())
}

func TestByteOrderOnTheWire(t *testing.T) {
	buf := writable(8)
	defer buf.Release()

	writer := buf.Writer()
	require.NoError(t, endian.WriteUint16(writer, binary.BigEndian, 0x0102))
	require.NoError(t, endian.WriteUint16(writer, binary.LittleEndian, 0x0304))

	wire, err := buf.ViewMut(0, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x04, 0x03}, wire)
}

func TestReadPastEnd(t *testing.T) {
	buf := writable(8)
	defer buf.Release()
	require.NoError(t, endian.WriteUint16(buf.Writer(), endian.NetworkEndian, 7))

	cursor := readBack(t, buf)
	_, err := endian.ReadUint32(cursor, endian.NetworkEndian)
	var end bufutils.End
	require.ErrorAs(t, err, &end)
	require.Equal(t, 4, end.Requested)
	require.Equal(t, 2, end.Remaining)
}

func TestWritePastCapacity(t *testing.T) {
	buf := writable(2)
	defer buf.Release()

	err := endian.WriteUint32(buf.Writer(), endian.NetworkEndian, 1)
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
	require.Equal(t, 4, full.Required)
	require.Equal(t, 2, full.Capacity)
}

func TestRuntimeWidth(t *testing.T) {
	buf := writable(16)
	defer buf.Release()
	writer := buf.Writer()

	for _, width := range []int{1, 2, 4, 8} {
		require.NoError(t, endian.WriteUint(writer, endian.NetworkEndian, width, 0x42))
	}

	cursor := readBack(t, buf)
	for _, width := range []int{1, 2, 4, 8} {
		v, err := endian.ReadUint(cursor, endian.NetworkEndian, width)
		require.NoError(t, err)
		require.Equal(t, uint64(0x42), v)
	}
}

func TestUnsupportedWidth(t *testing.T) {
	buf := writable(16)
	defer buf.Release()

	err := endian.WriteUint(buf.Writer(), endian.NetworkEndian, 3, 1)
	require.ErrorContains(t, err, "unsupported integer width 3")

	cursor := readBack(t, buf)
	_, err = endian.ReadUint(cursor, endian.NetworkEndian, 5)
	require.ErrorContains(t, err, "unsupported integer width 5")
}
