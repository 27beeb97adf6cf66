package gcfpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/global-container-format/gcfpack/compression"
	"github.com/global-container-format/gcfpack/gcf"
)

func TestAssembleBlobNone(t *testing.T) {
	path := writeDataFile(t, "blob.bin", []byte{1, 2, 3})
	blob := &Blob{SupercompressionScheme: "none", FilePath: path}

	record, err := newTestPacker().assembleBlob(blob)
	require.NoError(t, err)

	r := bytes.NewReader(record)
	descriptor, err := gcf.ReadBlobResourceDescriptor(r)
	require.NoError(t, err)

	assert.Equal(t, gcf.ResourceTypeBlob, descriptor.Type)
	assert.Equal(t, gcf.FormatUndefined, descriptor.Format)
	assert.Equal(t, gcf.SchemeNone, descriptor.Scheme)
	assert.Equal(t, uint32(3), descriptor.ContentSize)
	assert.Equal(t, uint64(3), descriptor.UncompressedSize)
	assert.Equal(t, uint16(gcf.BlobExtensionSize), descriptor.ExtensionSize)

	payload := record[gcf.CommonDescriptorSize+gcf.BlobExtensionSize:]
	assert.Equal(t, []byte{1, 2, 3}, payload)
}

func TestAssembleBlobDeflate(t *testing.T) {
	data := bytes.Repeat([]byte("gcf"), 100)
	path := writeDataFile(t, "blob.bin", data)
	blob := &Blob{SupercompressionScheme: "deflate", FilePath: path}

	record, err := newTestPacker().assembleBlob(blob)
	require.NoError(t, err)

	descriptor, err := gcf.ReadBlobResourceDescriptor(bytes.NewReader(record))
	require.NoError(t, err)

	assert.Equal(t, gcf.SchemeDeflate, descriptor.Scheme)
	assert.Equal(t, uint64(len(data)), descriptor.UncompressedSize)

	payload := record[gcf.CommonDescriptorSize+gcf.BlobExtensionSize:]
	require.Len(t, payload, int(descriptor.ContentSize))

	restored, err := compression.Decompress(payload, gcf.SchemeDeflate)
	require.NoError(t, err)
	assert.Equal(t, data, restored)
}

func TestAssembleTextureSingleByteLayer(t *testing.T) {
	path := writeDataFile(t, "layer.bin", []byte{0xff})
	tex := testTexture(path)

	record, err := newTestPacker().assembleTexture(tex)
	require.NoError(t, err)

	r := bytes.NewReader(record)
	descriptor, err := gcf.ReadTextureResourceDescriptor(r)
	require.NoError(t, err)

	assert.Equal(t, gcf.ResourceTypeTexture, descriptor.Type)
	assert.Equal(t, gcf.Format(9), descriptor.Format)
	assert.Equal(t, uint32(1), descriptor.BaseWidth)
	assert.Equal(t, uint32(1), descriptor.BaseHeight)
	assert.Equal(t, uint32(1), descriptor.BaseDepth)
	assert.Equal(t, uint8(1), descriptor.LayerCount)
	assert.Equal(t, uint8(1), descriptor.MipLevelCount)
	assert.Equal(t, gcf.TextureFlag2D, descriptor.Flags)
	assert.Equal(t, uint64(1), descriptor.UncompressedSize)
	assert.Equal(t, uint32(gcf.MipLevelDescriptorSize+1), descriptor.ContentSize)

	mip, err := gcf.ReadMipLevelDescriptor(r)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), mip.UncompressedSize)
	assert.Equal(t, uint32(1), mip.CompressedSize)
	assert.Equal(t, uint32(1), mip.RowStride)
	assert.Equal(t, uint32(1), mip.SliceStride)
	assert.Equal(t, uint32(1), mip.LayerStride)

	payload := make([]byte, 1)
	_, err = r.Read(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, payload)
}

func TestAssembleTextureLayerSizeMismatch(t *testing.T) {
	a := writeDataFile(t, "a.bin", []byte{1})
	b := writeDataFile(t, "b.bin", []byte{1, 2})
	tex := testTexture(a, b)

	_, err := newTestPacker().assembleTexture(tex)
	require.ErrorIs(t, err, ErrLayerSizeMismatch)
	assert.Contains(t, err.Error(), "mip level 0")
}

func TestAssembleTextureLayerCountMismatch(t *testing.T) {
	a := writeDataFile(t, "a.bin", []byte{1})
	b := writeDataFile(t, "b.bin", []byte{2})
	c := writeDataFile(t, "c.bin", []byte{3})

	tex := testTexture(a, b, c)
	tex.LayerCount = 2

	_, err := newTestPacker().assembleTexture(tex)
	require.ErrorIs(t, err, ErrLayerCountMismatch)
	assert.Contains(t, err.Error(), "mip level 0")
}

func TestAssembleTextureConcatenatesLayers(t *testing.T) {
	a := writeDataFile(t, "a.bin", []byte{0xaa})
	b := writeDataFile(t, "b.bin", []byte{0xbb})
	tex := testTexture(a, b)

	record, err := newTestPacker().assembleTexture(tex)
	require.NoError(t, err)

	r := bytes.NewReader(record)
	descriptor, err := gcf.ReadTextureResourceDescriptor(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), descriptor.UncompressedSize)
	assert.Equal(t, uint8(2), descriptor.LayerCount)

	mip, err := gcf.ReadMipLevelDescriptor(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), mip.UncompressedSize)

	payload := make([]byte, 2)
	_, err = r.Read(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb}, payload)
}

func TestAssembleTextureMipLevelOrder(t *testing.T) {
	base := writeDataFile(t, "mip0.bin", []byte{1, 2, 3, 4})
	small := writeDataFile(t, "mip1.bin", []byte{5})

	format := SymbolicFormat("R8_UNORM")
	tex := &Texture{
		Format:                 &format,
		SupercompressionScheme: "none",
		BaseWidth:              4,
		LayerCount:             1,
		Flags:                  []string{"texture1d"},
		MipLevels: []MipLevel{
			{Layers: []string{base}},
			{Layers: []string{small}},
		},
	}

	record, err := newTestPacker().assembleTexture(tex)
	require.NoError(t, err)

	r := bytes.NewReader(record)
	descriptor, err := gcf.ReadTextureResourceDescriptor(r)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), descriptor.MipLevelCount)
	assert.Equal(t, uint64(5), descriptor.UncompressedSize)

	mip0, err := gcf.ReadMipLevelDescriptor(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), mip0.UncompressedSize)
	assert.Equal(t, uint32(4), mip0.RowStride)

	payload := make([]byte, 4)
	_, err = r.Read(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, payload)

	mip1, err := gcf.ReadMipLevelDescriptor(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), mip1.UncompressedSize)
	assert.Equal(t, uint32(2), mip1.RowStride)
}

func TestAssembleResourceMissingFile(t *testing.T) {
	blob := &Blob{SupercompressionScheme: "none", FilePath: "does-not-exist.bin"}

	_, err := newTestPacker().assembleResource(0, &Resource{Blob: blob})
	require.ErrorIs(t, err, ErrIO)

	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, 0, resErr.Index)
	assert.Equal(t, "blob", resErr.Type)
}
