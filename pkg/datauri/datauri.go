// Package datauri encodes binary content as RFC 2397 data URIs for inline
// src and href attributes.
package datauri

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/tagz/internal/errors"
)

// DefaultMediaType is used when the media type cannot be guessed.
const DefaultMediaType = "application/octet-stream"

// Encode returns "data:<mediaType>;base64,<data>".
func Encode(data []byte, mediaType string) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mediaType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mediaType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// Open reads a file and encodes it. An empty mediaType is guessed from the
// file extension.
func Open(path, mediaType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.New("E120").WithDetailf("reading %s", path).Wrap(err)
	}
	if mediaType == "" {
		mediaType = Guess(path)
	}
	return Encode(data, mediaType), nil
}

// Guess returns the media type for a file name without parameters, or
// DefaultMediaType when the extension is unknown.
func Guess(path string) string {
	mt := mime.TypeByExtension(filepath.Ext(path))
	if mt == "" {
		return DefaultMediaType
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
