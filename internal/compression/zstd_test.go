package compression

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("sparse blocks compress well "), 1000)

	for _, level := range []int{1, 2, 3, 99} {
		var buf bytes.Buffer
		w, err := NewWriter(&buf, level)
		require.NoError(t, err)

		_, err = w.Write(payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		assert.Less(t, buf.Len(), len(payload), "level %d", level)

		r, err := zstd.NewReader(&buf)
		require.NoError(t, err)
		got, err := io.ReadAll(r)
		r.Close()
		require.NoError(t, err)
		assert.Equal(t, payload, got, "level %d", level)
	}
}
