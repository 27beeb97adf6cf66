package gcf

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Encoded descriptor sizes in bytes. Extension sizes do not include the
// common descriptor that precedes them.
const (
	CommonDescriptorSize   = 16
	BlobExtensionSize      = 8
	TextureExtensionSize   = 28
	MipLevelDescriptorSize = 20
)

// CommonResourceDescriptor prefixes every resource record. ContentSize
// counts the bytes following the extension: the compressed payload for
// blobs, the concatenated mip level records for textures. Readers use
// ExtensionSize and ContentSize to skip records of unknown types.
type CommonResourceDescriptor struct {
	Type          ResourceType
	Format        Format
	ContentSize   uint32
	ExtensionSize uint16
	Scheme        SupercompressionScheme
}

// BlobResourceDescriptor is the full descriptor of a blob record.
type BlobResourceDescriptor struct {
	CommonResourceDescriptor
	UncompressedSize uint64
}

// TextureResourceDescriptor is the full descriptor of a texture record.
// UncompressedSize is the sum of the uncompressed sizes of all mip levels.
type TextureResourceDescriptor struct {
	CommonResourceDescriptor
	BaseWidth        uint32
	BaseHeight       uint32
	BaseDepth        uint32
	LayerCount       uint8
	MipLevelCount    uint8
	Flags            TextureFlags
	TextureGroup     uint16
	Reserved         uint16
	UncompressedSize uint64
}

// MipLevelDescriptor prefixes each mip level's compressed payload inside
// a texture record.
type MipLevelDescriptor struct {
	CompressedSize   uint32
	UncompressedSize uint32
	RowStride        uint32
	SliceStride      uint32
	LayerStride      uint32
}

func marshal(v any) ([]byte, error) {
	b := new(bytes.Buffer)

	if err := binary.Write(b, binary.LittleEndian, v); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// MarshalBinary encodes the common descriptor into binary form.
func (d *CommonResourceDescriptor) MarshalBinary() ([]byte, error) {
	return marshal(d)
}

// MarshalBinary encodes the blob descriptor into binary form.
func (d *BlobResourceDescriptor) MarshalBinary() ([]byte, error) {
	return marshal(d)
}

// MarshalBinary encodes the texture descriptor into binary form.
func (d *TextureResourceDescriptor) MarshalBinary() ([]byte, error) {
	return marshal(d)
}

// MarshalBinary encodes the mip level descriptor into binary form.
func (d *MipLevelDescriptor) MarshalBinary() ([]byte, error) {
	return marshal(d)
}

// ReadCommonResourceDescriptor reads and decodes a common resource
// descriptor from r.
func ReadCommonResourceDescriptor(r io.Reader) (CommonResourceDescriptor, error) {
	var d CommonResourceDescriptor
	if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
		return CommonResourceDescriptor{}, err
	}

	return d, nil
}

// ReadBlobResourceDescriptor reads and decodes a full blob descriptor
// from r.
func ReadBlobResourceDescriptor(r io.Reader) (BlobResourceDescriptor, error) {
	var d BlobResourceDescriptor
	if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
		return BlobResourceDescriptor{}, err
	}

	return d, nil
}

// ReadTextureResourceDescriptor reads and decodes a full texture
// descriptor from r.
func ReadTextureResourceDescriptor(r io.Reader) (TextureResourceDescriptor, error) {
	var d TextureResourceDescriptor
	if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
		return TextureResourceDescriptor{}, err
	}

	return d, nil
}

// ReadMipLevelDescriptor reads and decodes a mip level descriptor from r.
func ReadMipLevelDescriptor(r io.Reader) (MipLevelDescriptor, error) {
	var d MipLevelDescriptor
	if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
		return MipLevelDescriptor{}, err
	}

	return d, nil
}
