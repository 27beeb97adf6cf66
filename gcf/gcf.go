/*
Package gcf implements the binary wire contract shared by GCF container
files: the fixed header, the per-resource descriptor records and the
enumeration codes they carry.

All multi-byte fields are little-endian. A container is the header
followed by one resource record per resource; each record is a common
descriptor, a type-specific extension and the (possibly compressed)
content bytes.
*/
package gcf

import "errors"

// Version is the container version this package encodes.
const Version = 3

var (
	// ErrBadMagic indicates the header magic does not mark a GCF file.
	ErrBadMagic = errors.New("gcf: bad magic number")
	// ErrShortBuffer indicates a truncated header or descriptor.
	ErrShortBuffer = errors.New("gcf: short buffer")
)

// ResourceType identifies the variant stored in a resource record.
type ResourceType uint32

const (
	// ResourceTypeBlob marks an opaque data record.
	ResourceTypeBlob ResourceType = iota
	// ResourceTypeTexture marks a multi-resolution texture record.
	ResourceTypeTexture
)

// SupercompressionScheme selects the whole-payload compression applied
// to a resource's content before it is written.
type SupercompressionScheme uint16

const (
	// SchemeNone stores content verbatim.
	SchemeNone SupercompressionScheme = 0
	// SchemeZLib stores content as a zlib stream.
	SchemeZLib SupercompressionScheme = 1
	// SchemeDeflate stores content as a raw DEFLATE stream.
	SchemeDeflate SupercompressionScheme = 2
	// SchemeTest is a reserved scheme for exercising container tooling.
	SchemeTest SupercompressionScheme = 0xffff
)

// ContainerFlags is the header flag bit-set.
type ContainerFlags uint16

// ContainerFlagUnpadded marks a container without inter-record padding.
const ContainerFlagUnpadded ContainerFlags = 1 << 0

// TextureFlags is the texture descriptor flag bit-set.
type TextureFlags uint16

const (
	// TextureFlag1D marks a one-dimensional texture.
	TextureFlag1D TextureFlags = 1 << iota
	// TextureFlag2D marks a two-dimensional texture.
	TextureFlag2D
	// TextureFlag3D marks a three-dimensional texture.
	TextureFlag3D
)

// MakeMagic builds the header magic number for a container version. The
// magic reads as "GCF" followed by the ASCII version digit.
func MakeMagic(version uint8) uint32 {
	return uint32('G') | uint32('C')<<8 | uint32('F')<<16 | uint32('0'+version)<<24
}

// MagicVersion extracts the container version from a header magic number.
func MagicVersion(magic uint32) uint8 {
	return uint8(magic>>24) - '0'
}

func validMagic(magic uint32) bool {
	return byte(magic) == 'G' && byte(magic>>8) == 'C' && byte(magic>>16) == 'F'
}
