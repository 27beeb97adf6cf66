package gcf

// Format is a numeric pixel format code. Values follow the Vulkan
// VkFormat enumeration so descriptions can name formats symbolically and
// readers can hand the code straight to the graphics API.
type Format uint32

// FormatUndefined is the code written when a resource declares no format.
const FormatUndefined Format = 0

// formatValues maps symbolic pixel format names to their VkFormat codes.
// The table covers the formats commonly named by descriptions; numeric
// codes outside it pass through resolution untouched.
var formatValues = map[string]Format{
	"UNDEFINED": 0,

	"R4G4_UNORM_PACK8":      1,
	"R4G4B4A4_UNORM_PACK16": 2,
	"B4G4R4A4_UNORM_PACK16": 3,
	"R5G6B5_UNORM_PACK16":   4,
	"B5G6R5_UNORM_PACK16":   5,
	"R5G5B5A1_UNORM_PACK16": 6,
	"B5G5R5A1_UNORM_PACK16": 7,
	"A1R5G5B5_UNORM_PACK16": 8,

	"R8_UNORM":       9,
	"R8_SNORM":       10,
	"R8_UINT":        13,
	"R8_SINT":        14,
	"R8_SRGB":        15,
	"R8G8_UNORM":     16,
	"R8G8_SNORM":     17,
	"R8G8_UINT":      20,
	"R8G8_SINT":      21,
	"R8G8_SRGB":      22,
	"R8G8B8_UNORM":   23,
	"R8G8B8_SRGB":    29,
	"B8G8R8_UNORM":   30,
	"B8G8R8_SRGB":    36,
	"R8G8B8A8_UNORM": 37,
	"R8G8B8A8_SNORM": 38,
	"R8G8B8A8_UINT":  41,
	"R8G8B8A8_SINT":  42,
	"R8G8B8A8_SRGB":  43,
	"B8G8R8A8_UNORM": 44,
	"B8G8R8A8_SRGB":  50,

	"A2B10G10R10_UNORM_PACK32": 64,

	"R16_UNORM":           70,
	"R16_SFLOAT":          76,
	"R16G16_UNORM":        77,
	"R16G16_SFLOAT":       83,
	"R16G16B16A16_UNORM":  91,
	"R16G16B16A16_SFLOAT": 97,
	"R32_UINT":            98,
	"R32_SINT":            99,
	"R32_SFLOAT":          100,
	"R32G32_SFLOAT":       103,
	"R32G32B32_SFLOAT":    106,
	"R32G32B32A32_SFLOAT": 109,

	"B10G11R11_UFLOAT_PACK32": 122,
	"E5B9G9R9_UFLOAT_PACK32":  123,

	"D16_UNORM":         124,
	"D32_SFLOAT":        126,
	"S8_UINT":           127,
	"D24_UNORM_S8_UINT": 129,

	"BC1_RGB_UNORM_BLOCK":  131,
	"BC1_RGB_SRGB_BLOCK":   132,
	"BC1_RGBA_UNORM_BLOCK": 133,
	"BC1_RGBA_SRGB_BLOCK":  134,
	"BC2_UNORM_BLOCK":      135,
	"BC2_SRGB_BLOCK":       136,
	"BC3_UNORM_BLOCK":      137,
	"BC3_SRGB_BLOCK":       138,
	"BC4_UNORM_BLOCK":      139,
	"BC4_SNORM_BLOCK":      140,
	"BC5_UNORM_BLOCK":      141,
	"BC5_SNORM_BLOCK":      142,
	"BC6H_UFLOAT_BLOCK":    143,
	"BC6H_SFLOAT_BLOCK":    144,
	"BC7_UNORM_BLOCK":      145,
	"BC7_SRGB_BLOCK":       146,
}

// FormatValue looks up the numeric code of a symbolic pixel format name.
func FormatValue(name string) (Format, bool) {
	v, ok := formatValues[name]
	return v, ok
}
