package helpers

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReader(t *testing.T) {
	var calls [][2]int64
	r := NewProgressReader(&chunked{data: make([]byte, 1000), step: 7}, 1000, func(read, total int64) {
		calls = append(calls, [2]int64{read, total})
	})
	buf := make([]byte, 64)
	for {
		if _, err := r.Read(buf); err != nil {
			break
		}
	}
	require.NotEmpty(t, calls)
	assert.Equal(t, [2]int64{1000, 1000}, calls[len(calls)-1])
	assert.LessOrEqual(t, len(calls), 102)
}

// chunked returns at most step bytes per Read.
type chunked struct {
	data []byte
	step int
}

func (c *chunked) Read(b []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := c.step
	if n > len(b) {
		n = len(b)
	}
	if n > len(c.data) {
		n = len(c.data)
	}
	copy(b, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}
