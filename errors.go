package gcfpack

import (
	"errors"
	"fmt"
)

var (
	// ErrDescriptionShape indicates a description that does not match the
	// expected document shape.
	ErrDescriptionShape = errors.New("invalid description shape")
	// ErrInvalidEnum indicates an unrecognized flag, scheme or format name.
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrDimensionality indicates a texture without exactly one dimension flag.
	ErrDimensionality = errors.New("invalid texture dimensionality")
	// ErrMissingConditionalField indicates a field required by the resource's
	// type or dimensionality is absent.
	ErrMissingConditionalField = errors.New("missing conditional field")
	// ErrLayerCountMismatch indicates a mip level whose layer list disagrees
	// with the texture's declared layer count.
	ErrLayerCountMismatch = errors.New("layer count mismatch")
	// ErrLayerSizeMismatch indicates layers of differing size within one mip level.
	ErrLayerSizeMismatch = errors.New("layer size mismatch")
	// ErrUnsupportedResourceType indicates an unknown resource type tag.
	ErrUnsupportedResourceType = errors.New("unsupported resource type")
	// ErrIO indicates a data file could not be read or the output could not
	// be written.
	ErrIO = errors.New("i/o failure")
)

// ResourceError attributes a failure to one resource in a description.
type ResourceError struct {
	Index int
	Type  string
	Err   error
}

func (e *ResourceError) Error() string {
	typ := e.Type
	if typ == "" {
		typ = "unknown"
	}

	return fmt.Sprintf("resource %d (%s): %v", e.Index, typ, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func resourceErr(index int, typ string, err error) error {
	return &ResourceError{Index: index, Type: typ, Err: err}
}
