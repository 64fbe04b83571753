package bytealg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexByte(t *testing.T) {
	tests := []struct {
		s    string
		c    byte
		want int
	}{
		{"", 'a', -1},
		{"a", 'a', 0},
		{"xxxa", 'a', 3},
		{"xxxx", 'a', -1},
		{"\x00\xff", 0xff, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IndexByte([]byte(tt.s), tt.c), "IndexByte(%q, %q)", tt.s, tt.c)
	}
}

func TestFromString(t *testing.T) {
	assert.Empty(t, FromString(""))
	assert.Equal(t, []byte("hello"), FromString("hello"))
	assert.Equal(t, []byte("ell"), FromString("hello"[1:4]))
}
