package byteview_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytekit/bytekit/arcbuf"
	"github.com/bytekit/bytekit/bufutils"
	"github.com/bytekit/bytekit/byteview"
)

func TestCursorRead(t *testing.T) {
	b := byteview.FromSlice([]byte("hello world"))
	cursor := byteview.NewCursor(b)

	data, err := io.ReadAll(cursor)
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), data)

	// The cursor consumed nothing from the container itself.
	require.Equal(t, 11, b.Len())

	var p [4]byte
	n, err := cursor.Read(p[:])
	require.Equal(t, 0, n)
	require.ErrorIs(t, err, io.EOF)
}

func TestCursorReadFull(t *testing.T) {
	b := byteview.FromSlice([]byte("abcdef"))
	cursor := byteview.NewCursor(b)

	var p [4]byte
	require.NoError(t, cursor.ReadFull(p[:]))
	require.Equal(t, []byte("abcd"), p[:])
	require.Equal(t, 4, cursor.Position())
	require.Equal(t, 2, cursor.Remaining())

	err := cursor.ReadFull(p[:])
	var end bufutils.End
	require.ErrorAs(t, err, &end)
	require.Equal(t, 4, end.Requested)
	require.Equal(t, 2, end.Remaining)

	// A failed full read consumes nothing.
	require.Equal(t, 4, cursor.Position())
}

func TestCursorSkipAndReposition(t *testing.T) {
	b := byteview.FromSlice([]byte("abcdef"))
	cursor := byteview.NewCursor(b)

	require.NoError(t, cursor.Skip(3))
	require.Equal(t, 3, cursor.Position())

	var end bufutils.End
	require.ErrorAs(t, cursor.Skip(4), &end)

	cursor.SetPosition(1)
	var p [2]byte
	require.NoError(t, cursor.ReadFull(p[:]))
	require.Equal(t, []byte("bc"), p[:])
}

func TestWriteCursor(t *testing.T) {
	b := byteview.FromBufMut(arcbuf.New(8))
	defer b.Release()
	cursor := byteview.NewWriteCursor(b)

	n, err := cursor.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, cursor.Position())
	require.Equal(t, 3, b.Len())

	// Writes that do not fit fail whole; no partial write happens.
	n, err = cursor.Write([]byte("defghijkl"))
	require.Equal(t, 0, n)
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
	require.Equal(t, 3, b.Len())

	var _ io.Writer = cursor
}

func TestWriteCursorOnEmptyContainer(t *testing.T) {
	var b byteview.BytesMut
	cursor := byteview.NewWriteCursor(b)

	n, err := cursor.Write(nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = cursor.Write([]byte{1})
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
}
