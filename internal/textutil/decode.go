// Package textutil turns raw file bytes into snapshot text.
package textutil

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// ErrBinaryContent indicates the content is not decodable text
var ErrBinaryContent = errors.New("content is not valid text")

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode returns content as a UTF-8 string. UTF-16 input with a byte order
// mark is transcoded; anything else must already be valid UTF-8. NUL bytes
// are valid UTF-8 and pass through unchanged.
func Decode(content []byte) (string, error) {
	if enc := utf16Encoding(content); enc != nil {
		out, err := enc.NewDecoder().Bytes(content)
		if err != nil {
			return "", fmt.Errorf("%w: utf-16: %v", ErrBinaryContent, err)
		}
		return string(out), nil
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: invalid utf-8 at byte offset %d", ErrBinaryContent, invalidOffset(content))
	}
	return string(content), nil
}

func utf16Encoding(content []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case bytes.HasPrefix(content, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	}
	return nil
}

func invalidOffset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
