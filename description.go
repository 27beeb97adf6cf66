package gcfpack

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/global-container-format/gcfpack/gcf"
)

// Resource type tags as they appear in description documents.
const (
	resourceTypeBlob    = "blob"
	resourceTypeTexture = "texture"
)

// Description is the parsed form of a description document. Resource
// order is significant and is preserved verbatim into the container.
type Description struct {
	Header    *DescriptionHeader `json:"header"`
	Resources []Resource         `json:"resources"`
}

// DescriptionHeader carries the authored container version and flags.
// The container's resource count is always derived from the resource
// list, never authored.
type DescriptionHeader struct {
	Version uint8    `json:"version"`
	Flags   []string `json:"flags"`
}

// Resource is one described data unit. Exactly one variant is set;
// unknown type tags leave both variants nil and are reported by the
// validator with their resource index.
type Resource struct {
	Blob    *Blob
	Texture *Texture

	rawType string
}

// Blob describes a single opaque data file, read fully once.
type Blob struct {
	Format                 *FormatValue `json:"format,omitempty"`
	SupercompressionScheme string       `json:"supercompression_scheme"`
	FilePath               string       `json:"file_path"`
}

// Texture describes a multi-resolution texture assembled from layer
// files. BaseHeight and BaseDepth default to 1 when absent.
type Texture struct {
	Format                 *FormatValue `json:"format,omitempty"`
	SupercompressionScheme string       `json:"supercompression_scheme"`
	BaseWidth              uint32       `json:"base_width"`
	BaseHeight             *uint32      `json:"base_height,omitempty"`
	BaseDepth              *uint32      `json:"base_depth,omitempty"`
	LayerCount             uint32       `json:"layer_count"`
	TextureGroup           uint16       `json:"texture_group"`
	Flags                  []string     `json:"flags"`
	MipLevels              []MipLevel   `json:"mip_levels"`
}

// MipLevel describes one resolution tier. Strides are optional here; the
// validator decides which ones the texture's dimensionality requires and
// the assembler computes defaults for the rest.
type MipLevel struct {
	RowStride   *uint32  `json:"row_stride,omitempty"`
	SliceStride *uint32  `json:"slice_stride,omitempty"`
	LayerStride *uint32  `json:"layer_stride,omitempty"`
	Layers      []string `json:"layers"`
}

func (t *Texture) baseHeight() uint32 {
	if t.BaseHeight == nil {
		return 1
	}

	return *t.BaseHeight
}

func (t *Texture) baseDepth() uint32 {
	if t.BaseDepth == nil {
		return 1
	}

	return *t.BaseDepth
}

// typeTag returns the authored resource type tag.
func (r *Resource) typeTag() string {
	switch {
	case r.Blob != nil:
		return resourceTypeBlob
	case r.Texture != nil:
		return resourceTypeTexture
	}

	return r.rawType
}

// UnmarshalJSON decodes a resource into the variant selected by its type
// tag. An unknown tag is not a decoding error; the validator reports it.
func (r *Resource) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	r.rawType = tag.Type

	switch tag.Type {
	case resourceTypeBlob:
		r.Blob = new(Blob)
		return json.Unmarshal(data, r.Blob)
	case resourceTypeTexture:
		r.Texture = new(Texture)
		return json.Unmarshal(data, r.Texture)
	}

	return nil
}

// MarshalJSON encodes the set variant with its type tag.
func (r Resource) MarshalJSON() ([]byte, error) {
	switch {
	case r.Blob != nil:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Blob
		}{resourceTypeBlob, r.Blob})
	case r.Texture != nil:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Texture
		}{resourceTypeTexture, r.Texture})
	}

	return nil, fmt.Errorf("%w: empty resource", ErrUnsupportedResourceType)
}

// FormatValue is a pixel format as authored: either a symbolic name or
// an already-numeric code. resolveFormat collapses it into the canonical
// numeric form at the validation/assembly boundary.
type FormatValue struct {
	Name    string
	Code    gcf.Format
	numeric bool
}

// NumericFormat returns a FormatValue holding an already-numeric code.
func NumericFormat(code gcf.Format) FormatValue {
	return FormatValue{Code: code, numeric: true}
}

// SymbolicFormat returns a FormatValue holding a symbolic name.
func SymbolicFormat(name string) FormatValue {
	return FormatValue{Name: name}
}

// UnmarshalJSON accepts a JSON number or string.
func (f *FormatValue) UnmarshalJSON(data []byte) error {
	var code uint32
	if err := json.Unmarshal(data, &code); err == nil {
		*f = NumericFormat(gcf.Format(code))
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: format must be a name or a numeric code", ErrDescriptionShape)
	}

	*f = SymbolicFormat(name)
	return nil
}

// MarshalJSON writes the value back the way it was authored.
func (f FormatValue) MarshalJSON() ([]byte, error) {
	if f.numeric {
		return json.Marshal(uint32(f.Code))
	}

	return json.Marshal(f.Name)
}

// LoadDescription decodes a description document from r. It performs
// JSON decoding only; call Validate before assembling.
func LoadDescription(r io.Reader) (*Description, error) {
	var desc Description
	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptionShape, err)
	}

	return &desc, nil
}

// LoadDescriptionFile reads and decodes the description document at path.
func LoadDescriptionFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return LoadDescription(f)
}

// StoreDescription writes desc to w as indented JSON.
func StoreDescription(w io.Writer, desc *Description) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	return enc.Encode(desc)
}

// SampleDescription returns an example description to seed manual
// authoring: one deflate-compressed blob plus one single-mip 2D texture,
// both with placeholder file references.
func SampleDescription() *Description {
	height := uint32(100)
	rowStride := uint32(100)
	format := SymbolicFormat("R8_UNORM")

	return &Description{
		Header: &DescriptionHeader{
			Version: gcf.Version,
			Flags:   []string{},
		},
		Resources: []Resource{
			{
				Blob: &Blob{
					SupercompressionScheme: "deflate",
					FilePath:               "my-file.bin",
				},
			},
			{
				Texture: &Texture{
					Format:                 &format,
					SupercompressionScheme: "none",
					BaseWidth:              100,
					BaseHeight:             &height,
					LayerCount:             1,
					Flags:                  []string{"texture2d"},
					MipLevels: []MipLevel{
						{
							RowStride: &rowStride,
							Layers:    []string{"only-layer.bin"},
						},
					},
				},
			},
		},
	}
}
