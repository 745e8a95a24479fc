package spapiclient

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zlibBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeDocument_Gzip(t *testing.T) {
	content := "sku\tquantity\nABC-1\t2\n"

	decoded, err := DecodeDocument(gzipBytes(t, content), "GZIP")
	assert.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestDecodeDocument_Zlib(t *testing.T) {
	content := "order-id\tamount\n111-222\t10.50\n"

	decoded, err := DecodeDocument(zlibBytes(t, content), "ZLIB")
	assert.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestDecodeDocument_NoCompressionPassthrough(t *testing.T) {
	content := "plain tab\tseparated\n"

	decoded, err := DecodeDocument([]byte(content), "")
	assert.NoError(t, err)
	assert.Equal(t, content, decoded)

	// Unknown algorithms pass through rather than failing the job.
	decoded, err = DecodeDocument([]byte(content), "SNAPPY")
	assert.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestDecodeDocument_Latin1Fallback(t *testing.T) {
	// 0xE9 is 'é' in Latin-1 and invalid UTF-8 on its own.
	raw := []byte{'c', 'a', 'f', 0xE9}

	decoded, err := DecodeDocument(raw, "")
	assert.NoError(t, err)
	assert.Equal(t, "café", decoded)
}

func TestDecodeDocument_ValidUTF8Unchanged(t *testing.T) {
	content := "multi-byte: café ₹100\n"

	decoded, err := DecodeDocument([]byte(content), "")
	assert.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestDecodeDocument_CorruptGzip(t *testing.T) {
	_, err := DecodeDocument([]byte("not gzip at all"), "GZIP")
	assert.Error(t, err)
}
