package requestutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionXZ   Compression = "xz"
	CompressionZstd Compression = "zstd"
)

var ContentTypesGzip = []string{
	"application/gzip",
	"application/x-gzip",
}

var ContentTypesXZ = []string{
	"application/x-xz",
}

var ContentTypesZstd = []string{
	"application/zstd",
}

// Detect inspects the leading bytes of b and returns the
// compression format they were written with. Anything without a
// known signature is CompressionNone.
func Detect(b []byte) Compression {
	mime := mimetype.Detect(b).String()
	switch {
	case mimetype.EqualsAny(mime, ContentTypesGzip...):
		return CompressionGzip
	case mimetype.EqualsAny(mime, ContentTypesXZ...):
		return CompressionXZ
	case mimetype.EqualsAny(mime, ContentTypesZstd...):
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// FromExtension maps a file suffix to a compression format.
func FromExtension(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".xz":
		return CompressionXZ
	case ".zst":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// NewReader wraps r in a decompressor for c.
func NewReader(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionXZ:
		reader, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(reader), nil
	case CompressionZstd:
		reader, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return reader.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

// Decompress returns the decoded form of b according to c.
func Decompress(c Compression, b []byte) ([]byte, error) {
	if c == CompressionNone {
		return b, nil
	}
	r, err := NewReader(c, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("opening %s stream: %w", c, err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s stream: %w", c, err)
	}
	return out, nil
}
