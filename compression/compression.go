/*
Package compression implements the supercompression codecs applied to GCF
resource payloads.

Every codec is a pure transformation: Decompress(Compress(x)) == x for
any byte sequence x, the empty one included.
*/
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/global-container-format/gcfpack/gcf"
)

var (
	// ErrUnknownScheme indicates a supercompression scheme code with no codec.
	ErrUnknownScheme = errors.New("unknown supercompression scheme")
	// ErrCompress indicates the underlying codec failed to compress.
	ErrCompress = errors.New("compression failed")
	// ErrDecompress indicates the underlying codec failed to decompress.
	ErrDecompress = errors.New("decompression failed")
)

type codec struct {
	compress   func([]byte) ([]byte, error)
	decompress func([]byte) ([]byte, error)
}

func codecFor(scheme gcf.SupercompressionScheme) (codec, bool) {
	switch scheme {
	case gcf.SchemeNone:
		return codec{identity, identity}, true
	case gcf.SchemeZLib:
		return codec{zlibCompress, zlibDecompress}, true
	case gcf.SchemeDeflate:
		return codec{deflateCompress, deflateDecompress}, true
	case gcf.SchemeTest:
		return codec{flipBytes, flipBytes}, true
	}

	return codec{}, false
}

// Compress applies scheme to data and returns the compressed payload.
func Compress(data []byte, scheme gcf.SupercompressionScheme) ([]byte, error) {
	c, ok := codecFor(scheme)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, scheme)
	}

	out, err := c.compress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompress, err)
	}

	return out, nil
}

// Decompress reverses Compress for the given scheme.
func Decompress(data []byte, scheme gcf.SupercompressionScheme) ([]byte, error) {
	c, ok := codecFor(scheme)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, scheme)
	}

	out, err := c.decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}

	return out, nil
}

func identity(data []byte) ([]byte, error) {
	return data, nil
}

// flipBytes inverts every payload byte. The test scheme exists so
// container tooling can exercise a scheme that transforms data without
// depending on a real codec.
func flipBytes(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = ^b
	}

	return out, nil
}

func deflateCompress(data []byte) ([]byte, error) {
	var b bytes.Buffer

	w, err := flate.NewWriter(&b, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func deflateDecompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer func() { _ = r.Close() }()

	return io.ReadAll(r)
}

func zlibCompress(data []byte) ([]byte, error) {
	var b bytes.Buffer

	w := zlib.NewWriter(&b)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func zlibDecompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return io.ReadAll(r)
}
