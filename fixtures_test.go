package gcfpack

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/global-container-format/gcfpack/gcf"
)

func newTestPacker() *Packer {
	return New(log.New(io.Discard, "", 0))
}

func u32(v uint32) *uint32 {
	return &v
}

func writeDataFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// testTexture returns a valid single-mip 1x1 2D texture backed by the
// given layer files.
func testTexture(layers ...string) *Texture {
	format := SymbolicFormat("R8_UNORM")

	return &Texture{
		Format:                 &format,
		SupercompressionScheme: "none",
		BaseWidth:              1,
		BaseHeight:             u32(1),
		LayerCount:             uint32(len(layers)),
		Flags:                  []string{"texture2d"},
		MipLevels: []MipLevel{
			{
				RowStride:   u32(1),
				LayerStride: u32(1),
				Layers:      layers,
			},
		},
	}
}

func testDescription(resources ...Resource) *Description {
	return &Description{
		Header: &DescriptionHeader{
			Version: gcf.Version,
			Flags:   []string{},
		},
		Resources: resources,
	}
}
