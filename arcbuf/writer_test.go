package arcbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytekit/bytekit/arcbuf"
	"github.com/bytekit/bytekit/bufutils"
)

func TestWriterExtend(t *testing.T) {
	buf := arcbuf.New(16)
	defer buf.Release()

	writer := buf.Writer()
	require.Equal(t, 0, writer.Position())

	require.NoError(t, writer.Extend([]byte("abc")))
	require.Equal(t, 3, writer.Position())
	require.Equal(t, []byte("abc"), buf.Filled())

	require.NoError(t, writer.Extend([]byte("def")))
	require.Equal(t, []byte("abcdef"), buf.Filled())
	require.NoError(t, buf.Validate())
}

func TestWriterExtendPastCapacity(t *testing.T) {
	buf := arcbuf.New(4)
	defer buf.Release()

	writer := buf.Writer()
	require.NoError(t, writer.Extend([]byte("ab")))

	err := writer.Extend([]byte("cdefg"))
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
	require.Equal(t, 5, full.Required)
	require.Equal(t, 4, full.Capacity)

	// A failed write leaves everything untouched.
	require.Equal(t, 2, writer.Position())
	require.Equal(t, []byte("ab"), buf.Filled())
}

func TestWriterFillWith(t *testing.T) {
	buf := arcbuf.New(8)
	defer buf.Release()

	writer := buf.Writer()
	require.NoError(t, writer.FillWith(4, func(p []byte) {
		require.Len(t, p, 4)
		copy(p, "abcd")
	}))
	require.Equal(t, []byte("abcd"), buf.Filled())
	require.Len(t, buf.Initialized(), 4)

	called := false
	err := writer.FillWith(5, func(p []byte) {
		called = true
	})
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
	require.False(t, called)
}

func TestWriterAdvanceOverFilled(t *testing.T) {
	buf := arcbuf.New(16)
	defer buf.Release()
	require.NoError(t, buf.Writer().Extend([]byte{1, 2}))

	// A fresh writer starts at the beginning; advancing over filled bytes
	// just moves the cursor.
	writer := buf.Writer()
	require.NoError(t, writer.Advance(1))
	require.Equal(t, 1, writer.Position())
	require.Equal(t, []byte{1, 2}, buf.Filled())
}

func TestWriterAdvanceZeroFillsGaps(t *testing.T) {
	buf := arcbuf.New(16)
	defer buf.Release()

	writer := buf.Writer()
	require.NoError(t, writer.Extend([]byte{1, 2}))
	require.NoError(t, writer.Advance(4))

	require.Equal(t, 6, writer.Position())
	require.Equal(t, []byte{1, 2, 0, 0, 0, 0}, buf.Filled())
	require.NoError(t, buf.Validate())
}

func TestWriterAdvancePastCapacity(t *testing.T) {
	buf := arcbuf.New(4)
	defer buf.Release()

	writer := buf.Writer()
	err := writer.Advance(5)
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
}

func TestWriterViewMut(t *testing.T) {
	buf := arcbuf.New(16)
	defer buf.Release()
	require.NoError(t, buf.Writer().Extend([]byte("abcdef")))

	writer := buf.Writer()
	view, err := writer.ViewMut(3)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), view)
	require.Equal(t, 3, writer.Position())

	view[0] = 'X'
	require.Equal(t, []byte("Xbcdef"), buf.Filled())

	// Writer views cover filled bytes only; they never extend.
	_, err = writer.ViewMut(4)
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
	require.Equal(t, 4, full.Required)
	require.Equal(t, 3, full.Capacity)
}

func TestWriterPeekAndRest(t *testing.T) {
	buf := arcbuf.New(16)
	defer buf.Release()
	require.NoError(t, buf.Writer().Extend([]byte("abcdef")))

	writer := buf.Writer()
	require.NoError(t, writer.Advance(2))
	require.Equal(t, 4, writer.Remaining())
	require.Equal(t, []byte("cdef"), writer.PeekChunkMut())
	require.Equal(t, []byte("cdef"), writer.PeekRestMut())

	peeked, err := writer.PeekViewMut(2)
	require.NoError(t, err)
	require.Equal(t, []byte("cd"), peeked)
	require.Equal(t, 2, writer.Position())

	rest := writer.RestMut()
	require.Equal(t, []byte("cdef"), rest)
	require.Equal(t, 0, writer.Remaining())
	require.Nil(t, writer.PeekChunkMut())
}

func TestWriterOnZeroValueBuffer(t *testing.T) {
	var buf arcbuf.BufMut
	writer := buf.Writer()

	require.NoError(t, writer.Extend(nil))

	err := writer.Extend([]byte{1})
	var full bufutils.Full
	require.ErrorAs(t, err, &full)
	require.Equal(t, 1, full.Required)
	require.Equal(t, 0, full.Capacity)
}
