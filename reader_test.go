package bigbyte

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadArrayRoundTrip(t *testing.T) {
	arr, err := New(2500, WithBlockSize(1000))
	require.NoError(t, err)
	require.NoError(t, arr.Put(0, 7))
	require.NoError(t, arr.Put(1000, 9))
	require.NoError(t, arr.Put(2499, 3))

	var buf bytes.Buffer
	_, err = arr.WriteTo(&buf)
	require.NoError(t, err)

	again, err := ReadArray(&buf, arr.Length(), WithBlockSize(arr.BlockSize()))
	require.NoError(t, err)

	want, err := arr.Bytes()
	require.NoError(t, err)
	got, err := again.Bytes()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadArrayTruncatedSource(t *testing.T) {
	src := bytes.NewReader(make([]byte, 50))
	_, err := ReadArray(src, 100, WithBlockSize(32))
	assert.ErrorIs(t, err, ErrTruncatedSource)
}

func TestReadArrayKeepsZeroBlocksSparse(t *testing.T) {
	data := make([]byte, 3000)
	data[1500] = 1

	arr, err := ReadArray(bytes.NewReader(data), 3000, WithBlockSize(1000))
	require.NoError(t, err)

	assert.Equal(t, 1, arr.Blocks())
	assert.InDelta(t, 1.0/3.0, arr.FillFactor(), 1e-9)

	got, err := arr.Get(1500)
	require.NoError(t, err)
	assert.Equal(t, byte(1), got)
}

func TestReadArrayAt(t *testing.T) {
	data := make([]byte, 10_000)
	for i := range data {
		data[i] = byte(i % 251)
	}

	arr, err := ReadArrayAt(context.Background(), bytes.NewReader(data), 10_000,
		WithBlockSize(256), WithConcurrency(8))
	require.NoError(t, err)

	got, err := arr.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadArrayAtTruncatedSource(t *testing.T) {
	src := bytes.NewReader(make([]byte, 50))
	_, err := ReadArrayAt(context.Background(), src, 100, WithBlockSize(32))
	assert.ErrorIs(t, err, ErrTruncatedSource)
}

func TestReaderSequential(t *testing.T) {
	arr := FromBytes([]byte("hello, block world"))

	r, err := NewReader(arr)
	require.NoError(t, err)

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('h'), b)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte("ello, block world"), rest)

	_, err = r.ReadByte()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderMarkReset(t *testing.T) {
	arr := FromBytes([]byte("0123456789"))

	r, err := NewReader(arr)
	require.NoError(t, err)

	buf := make([]byte, 4)
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)

	r.Mark()

	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("4567"), buf)

	r.Reset()
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("4567"), buf)

	// Reset with no Mark rewinds to the start
	r2, err := NewReader(arr)
	require.NoError(t, err)
	_, err = io.ReadFull(r2, buf)
	require.NoError(t, err)
	r2.Reset()
	_, err = io.ReadFull(r2, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123"), buf)
}

func TestReaderSeek(t *testing.T) {
	arr := FromBytes([]byte("0123456789"))

	r, err := NewReader(arr)
	require.NoError(t, err)

	pos, err := r.Seek(4, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('4'), b)

	pos, err = r.Seek(-2, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(8), pos)

	b, err = r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('8'), b)

	_, err = r.Seek(-1, io.SeekStart)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReaderOverView(t *testing.T) {
	base := FromBytes([]byte("__payload__"))
	v, err := NewView(base, 2, 7)
	require.NoError(t, err)

	r, err := NewReader(v)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}
