package compression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/global-container-format/gcfpack/gcf"
)

var schemes = []struct {
	name   string
	scheme gcf.SupercompressionScheme
}{
	{"none", gcf.SchemeNone},
	{"zlib", gcf.SchemeZLib},
	{"deflate", gcf.SchemeDeflate},
	{"test", gcf.SchemeTest},
}

func TestRoundTrip(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte((i*31 + 7) & 0xff)
	}

	inputs := map[string][]byte{
		"empty":    {},
		"one byte": {0xff},
		"patterns": data,
	}

	for _, s := range schemes {
		for name, input := range inputs {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				compressed, err := Compress(input, s.scheme)
				require.NoError(t, err)

				restored, err := Decompress(compressed, s.scheme)
				require.NoError(t, err)

				assert.Equal(t, input, restored)
			})
		}
	}
}

func TestNoneIsIdentity(t *testing.T) {
	data := []byte{1, 2, 3}

	out, err := Compress(data, gcf.SchemeNone)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestTestSchemeTransforms(t *testing.T) {
	data := []byte{0x00, 0x7f, 0xff}

	out, err := Compress(data, gcf.SchemeTest)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x80, 0x00}, out)
}

func TestUnknownScheme(t *testing.T) {
	_, err := Compress([]byte{1}, gcf.SupercompressionScheme(42))
	require.ErrorIs(t, err, ErrUnknownScheme)

	_, err = Decompress([]byte{1}, gcf.SupercompressionScheme(42))
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestDecompressCorruptStream(t *testing.T) {
	_, err := Decompress([]byte{0xde, 0xad, 0xbe, 0xef}, gcf.SchemeZLib)
	require.ErrorIs(t, err, ErrDecompress)
}
