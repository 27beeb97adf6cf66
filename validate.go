package gcfpack

import (
	"fmt"
	"math"

	"github.com/global-container-format/gcfpack/gcf"
)

// Validate checks desc against the description schema and the
// per-resource cross-field rules. It touches no data files; a valid
// description can still fail assembly when its referenced files do not
// hold what it declares.
func Validate(desc *Description) error {
	if desc == nil || desc.Header == nil {
		return fmt.Errorf("%w: missing header", ErrDescriptionShape)
	}

	if desc.Header.Version != gcf.Version {
		return fmt.Errorf("%w: unsupported container version %d", ErrDescriptionShape, desc.Header.Version)
	}

	if _, err := resolveContainerFlags(desc.Header.Flags); err != nil {
		return err
	}

	if len(desc.Resources) > math.MaxUint16 {
		return fmt.Errorf("%w: %d resources exceed the container limit", ErrDescriptionShape, len(desc.Resources))
	}

	for i := range desc.Resources {
		if err := validateResource(i, &desc.Resources[i]); err != nil {
			return err
		}
	}

	return nil
}

func validateResource(index int, res *Resource) error {
	switch {
	case res.Blob != nil:
		if err := validateBlob(res.Blob); err != nil {
			return resourceErr(index, resourceTypeBlob, err)
		}
	case res.Texture != nil:
		if err := validateTexture(res.Texture); err != nil {
			return resourceErr(index, resourceTypeTexture, err)
		}
	default:
		return resourceErr(index, res.rawType, fmt.Errorf("%w: %q", ErrUnsupportedResourceType, res.rawType))
	}

	return nil
}

func validateBlob(blob *Blob) error {
	if blob.FilePath == "" {
		return fmt.Errorf("%w: blob resources must reference a file_path", ErrDescriptionShape)
	}

	if _, err := resolveSupercompressionScheme(blob.SupercompressionScheme); err != nil {
		return err
	}

	if blob.Format != nil {
		if _, err := resolveFormat(*blob.Format); err != nil {
			return err
		}
	}

	return nil
}

func validateTexture(tex *Texture) error {
	if err := validateTextureShape(tex); err != nil {
		return err
	}

	flags, err := resolveTextureFlags(tex.Flags)
	if err != nil {
		return err
	}

	// Dimensionality counts authored occurrences, so a repeated flag name
	// is still a violation even though the bit-set collapses it.
	dimensions := 0
	for _, name := range tex.Flags {
		switch name {
		case textureFlag1D, textureFlag2D, textureFlag3D:
			dimensions++
		}
	}
	if dimensions != 1 {
		return fmt.Errorf("%w: textures must set exactly one dimension flag, found %d", ErrDimensionality, dimensions)
	}

	if tex.Format == nil {
		return fmt.Errorf("%w: textures must declare a format", ErrMissingConditionalField)
	}
	if _, err := resolveFormat(*tex.Format); err != nil {
		return err
	}

	// Non-1D levels must spell the row stride out even though the
	// assembler could compute one; omission here is an authoring error.
	if flags != gcf.TextureFlag1D {
		if tex.BaseHeight == nil {
			return fmt.Errorf("%w: non-1D textures must declare base_height", ErrMissingConditionalField)
		}

		for i := range tex.MipLevels {
			if tex.MipLevels[i].RowStride == nil {
				return fmt.Errorf("%w: mip level %d must declare row_stride", ErrMissingConditionalField, i)
			}
		}
	}

	if flags == gcf.TextureFlag3D {
		if tex.BaseDepth == nil {
			return fmt.Errorf("%w: 3D textures must declare base_depth", ErrMissingConditionalField)
		}

		for i := range tex.MipLevels {
			if tex.MipLevels[i].SliceStride == nil {
				return fmt.Errorf("%w: mip level %d must declare slice_stride", ErrMissingConditionalField, i)
			}
		}
	}

	for i := range tex.MipLevels {
		level := &tex.MipLevels[i]
		if len(level.Layers) > 1 && level.LayerStride == nil {
			return fmt.Errorf("%w: mip level %d has %d layers and must declare layer_stride",
				ErrMissingConditionalField, i, len(level.Layers))
		}
	}

	return nil
}

func validateTextureShape(tex *Texture) error {
	if tex.BaseWidth == 0 {
		return fmt.Errorf("%w: base_width must be a positive integer", ErrDescriptionShape)
	}

	if tex.LayerCount == 0 || tex.LayerCount > math.MaxUint8 {
		return fmt.Errorf("%w: layer_count %d is outside 1..%d", ErrDescriptionShape, tex.LayerCount, math.MaxUint8)
	}

	if len(tex.MipLevels) == 0 {
		return fmt.Errorf("%w: textures must declare at least one mip level", ErrDescriptionShape)
	}
	if len(tex.MipLevels) > math.MaxUint8 {
		return fmt.Errorf("%w: %d mip levels exceed the descriptor limit", ErrDescriptionShape, len(tex.MipLevels))
	}

	if _, err := resolveSupercompressionScheme(tex.SupercompressionScheme); err != nil {
		return err
	}

	return nil
}
