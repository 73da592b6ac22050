package md5_test

import (
	stdmd5 "crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/puzzlekit/md5"
)

func TestHashString_KnownVectors(t *testing.T) {
	tests := map[string]string{
		"": "d41d8cd98f00b204e9800998ecf8427e",
		"The quick brown fox jumps over the lazy dog":  "9e107d9d372bb6826bd81d3542a419d6",
		"The quick brown fox jumps over the lazy dog.": "e4d909c290d0fb1ca068ffaddf22cbd0",
		"abc": "900150983cd24fb0d6963f7d28e17f72",
		"12345678901234567890123456789012345678901234567890123456789012345678901234567890": "57edf4a22be3c955ac49da2e2107b67a",
	}
	for in, want := range tests {
		assert.Equal(t, want, md5.HashString(in), "%q", in)
	}
}

// TestSum_PaddingBoundaries covers every message length around the 56-byte
// padding boundary and a few multi-block sizes.
func TestSum_PaddingBoundaries(t *testing.T) {
	for n := 0; n <= 200; n++ {
		data := []byte(strings.Repeat("x", n))
		assert.Equal(t, stdmd5.Sum(data), md5.Sum(data), "length %d", n)
	}
}

func TestNew_Streaming(t *testing.T) {
	data := []byte(strings.Repeat("abcdefghij", 37))

	h := md5.New()
	for i := 0; i < len(data); i += 7 {
		_, err := h.Write(data[i:min(i+7, len(data))])
		assert.NoError(t, err)
	}
	want := stdmd5.Sum(data)
	assert.Equal(t, hex.EncodeToString(want[:]), hex.EncodeToString(h.Sum(nil)))

	// Sum leaves the running state untouched.
	assert.Equal(t, want[:], h.Sum(nil))

	h.Reset()
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", hex.EncodeToString(h.Sum(nil)))
	assert.Equal(t, md5.Size, h.Size())
	assert.Equal(t, md5.BlockSize, h.BlockSize())
}

func BenchmarkSum(b *testing.B) {
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = md5.Sum(data)
	}
}
