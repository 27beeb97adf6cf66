package gcfpack

import (
	"bytes"
	"fmt"
	"os"

	"github.com/global-container-format/gcfpack/compression"
	"github.com/global-container-format/gcfpack/gcf"
)

// assembleResource builds the descriptor+payload record for one resource.
// Any failure is attributed to the resource's index and type.
func (p *Packer) assembleResource(index int, res *Resource) ([]byte, error) {
	var (
		record []byte
		err    error
	)

	switch {
	case res.Blob != nil:
		record, err = p.assembleBlob(res.Blob)
	case res.Texture != nil:
		record, err = p.assembleTexture(res.Texture)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedResourceType, res.rawType)
	}

	if err != nil {
		return nil, resourceErr(index, res.typeTag(), err)
	}

	return record, nil
}

// assembleBlob reads the referenced file fully, compresses it with the
// resource's scheme and prefixes the blob descriptor.
func (p *Packer) assembleBlob(blob *Blob) ([]byte, error) {
	scheme, err := resolveSupercompressionScheme(blob.SupercompressionScheme)
	if err != nil {
		return nil, err
	}

	format := gcf.FormatUndefined
	if blob.Format != nil {
		if format, err = resolveFormat(*blob.Format); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(blob.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	compressed, err := compression.Compress(data, scheme)
	if err != nil {
		return nil, err
	}

	descriptor := gcf.BlobResourceDescriptor{
		CommonResourceDescriptor: gcf.CommonResourceDescriptor{
			Type:          gcf.ResourceTypeBlob,
			Format:        format,
			ContentSize:   uint32(len(compressed)),
			ExtensionSize: gcf.BlobExtensionSize,
			Scheme:        scheme,
		},
		UncompressedSize: uint64(len(data)),
	}

	raw, err := descriptor.MarshalBinary()
	if err != nil {
		return nil, err
	}

	p.logger.Printf("assembled blob %q: %d -> %d bytes\n", blob.FilePath, len(data), len(compressed))

	return append(raw, compressed...), nil
}

// assembleTexture builds each mip level record in ascending index order
// and prefixes the texture descriptor.
func (p *Packer) assembleTexture(tex *Texture) ([]byte, error) {
	scheme, err := resolveSupercompressionScheme(tex.SupercompressionScheme)
	if err != nil {
		return nil, err
	}

	if tex.Format == nil {
		return nil, fmt.Errorf("%w: textures must declare a format", ErrMissingConditionalField)
	}
	format, err := resolveFormat(*tex.Format)
	if err != nil {
		return nil, err
	}

	flags, err := resolveTextureFlags(tex.Flags)
	if err != nil {
		return nil, err
	}

	var (
		content           bytes.Buffer
		totalUncompressed uint64
	)

	for i := range tex.MipLevels {
		record, uncompressed, err := p.assembleMipLevel(tex, i, scheme)
		if err != nil {
			return nil, err
		}

		content.Write(record)
		totalUncompressed += uncompressed
	}

	descriptor := gcf.TextureResourceDescriptor{
		CommonResourceDescriptor: gcf.CommonResourceDescriptor{
			Type:          gcf.ResourceTypeTexture,
			Format:        format,
			ContentSize:   uint32(content.Len()),
			ExtensionSize: gcf.TextureExtensionSize,
			Scheme:        scheme,
		},
		BaseWidth:        tex.BaseWidth,
		BaseHeight:       tex.baseHeight(),
		BaseDepth:        tex.baseDepth(),
		LayerCount:       uint8(tex.LayerCount),
		MipLevelCount:    uint8(len(tex.MipLevels)),
		Flags:            flags,
		TextureGroup:     tex.TextureGroup,
		UncompressedSize: totalUncompressed,
	}

	raw, err := descriptor.MarshalBinary()
	if err != nil {
		return nil, err
	}

	p.logger.Printf("assembled texture %dx%dx%d: %d mip levels, %d bytes uncompressed\n",
		tex.BaseWidth, tex.baseHeight(), tex.baseDepth(), len(tex.MipLevels), totalUncompressed)

	return append(raw, content.Bytes()...), nil
}

// assembleMipLevel reads and concatenates one level's layers in
// declaration order, compresses the concatenation as a single unit and
// prefixes the mip level descriptor.
func (p *Packer) assembleMipLevel(tex *Texture, index int, scheme gcf.SupercompressionScheme) ([]byte, uint64, error) {
	level := &tex.MipLevels[index]

	var data bytes.Buffer
	layerSize := -1

	for _, layer := range level.Layers {
		layerData, err := os.ReadFile(layer)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrIO, err)
		}

		if layerSize < 0 {
			layerSize = len(layerData)
		} else if layerSize != len(layerData) {
			return nil, 0, fmt.Errorf("%w: mip level %d: layer %q is %d bytes, expected %d",
				ErrLayerSizeMismatch, index, layer, len(layerData), layerSize)
		}

		data.Write(layerData)
	}

	if uint32(len(level.Layers)) != tex.LayerCount {
		return nil, 0, fmt.Errorf("%w: mip level %d supplies %d layers, texture declares %d",
			ErrLayerCountMismatch, index, len(level.Layers), tex.LayerCount)
	}

	compressed, err := compression.Compress(data.Bytes(), scheme)
	if err != nil {
		return nil, 0, err
	}

	rowStride, sliceStride, layerStride := resolveStrides(tex, level, index)

	descriptor := gcf.MipLevelDescriptor{
		CompressedSize:   uint32(len(compressed)),
		UncompressedSize: uint32(data.Len()),
		RowStride:        rowStride,
		SliceStride:      sliceStride,
		LayerStride:      layerStride,
	}

	raw, err := descriptor.MarshalBinary()
	if err != nil {
		return nil, 0, err
	}

	return append(raw, compressed...), uint64(data.Len()), nil
}
