package gcfpack

import (
	"fmt"

	"github.com/global-container-format/gcfpack/gcf"
)

// Container flag literals recognized in description headers.
const containerFlagUnpadded = "unpadded"

// Texture dimensionality flag literals.
const (
	textureFlag1D = "texture1d"
	textureFlag2D = "texture2d"
	textureFlag3D = "texture3d"
)

// resolveContainerFlags maps authored container flag names to their
// bit-set form.
func resolveContainerFlags(names []string) (gcf.ContainerFlags, error) {
	var flags gcf.ContainerFlags

	for _, name := range names {
		switch name {
		case containerFlagUnpadded:
			flags |= gcf.ContainerFlagUnpadded
		default:
			return 0, fmt.Errorf("%w: unknown container flag %q", ErrInvalidEnum, name)
		}
	}

	return flags, nil
}

// resolveSupercompressionScheme maps an authored scheme name to its wire
// code.
func resolveSupercompressionScheme(name string) (gcf.SupercompressionScheme, error) {
	switch name {
	case "none":
		return gcf.SchemeNone, nil
	case "zlib":
		return gcf.SchemeZLib, nil
	case "deflate":
		return gcf.SchemeDeflate, nil
	case "test":
		return gcf.SchemeTest, nil
	}

	return 0, fmt.Errorf("%w: unknown supercompression scheme %q", ErrInvalidEnum, name)
}

// resolveFormat collapses the symbolic-or-numeric format duality into one
// canonical numeric code.
func resolveFormat(value FormatValue) (gcf.Format, error) {
	if value.numeric {
		return value.Code, nil
	}

	code, ok := gcf.FormatValue(value.Name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidEnum, value.Name)
	}

	return code, nil
}

// resolveTextureFlags combines dimensionality flag names into their
// bit-set form. Repeated names collapse; cardinality is the validator's
// concern.
func resolveTextureFlags(names []string) (gcf.TextureFlags, error) {
	var flags gcf.TextureFlags

	for _, name := range names {
		switch name {
		case textureFlag1D:
			flags |= gcf.TextureFlag1D
		case textureFlag2D:
			flags |= gcf.TextureFlag2D
		case textureFlag3D:
			flags |= gcf.TextureFlag3D
		default:
			return 0, fmt.Errorf("%w: unknown texture flag %q", ErrInvalidEnum, name)
		}
	}

	return flags, nil
}
