package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestDecode_UTF8(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"ascii", []byte("hello world\n")},
		{"multibyte", []byte("olá, 世界\n")},
		{"empty", []byte{}},
		{"utf-8 bom is preserved", []byte("\xEF\xBB\xBFkeep")},
		{"nul bytes are text", []byte("col1\x00col2\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decode(tt.content)
			require.NoError(t, err)
			assert.Equal(t, string(tt.content), out)
		})
	}
}

func TestDecode_UTF16WithBOM(t *testing.T) {
	for _, endian := range []unicode.Endianness{unicode.LittleEndian, unicode.BigEndian} {
		enc := unicode.UTF16(endian, unicode.UseBOM)
		raw, err := enc.NewEncoder().Bytes([]byte("título\n"))
		require.NoError(t, err)

		out, err := Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, "título\n", out)
	}
}

func TestDecode_Binary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		message string
	}{
		{"png header", []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}, "invalid utf-8 at byte offset 0"},
		{"invalid utf-8", []byte{'a', 'b', 0xC3, 0x28}, "invalid utf-8 at byte offset 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.content)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBinaryContent)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
