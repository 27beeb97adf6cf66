package gcf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the encoded size of a container header in bytes.
const HeaderSize = 8

// Header is the fixed container header. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Header struct {
	Magic         uint32
	ResourceCount uint16
	Flags         ContainerFlags
}

// MarshalBinary encodes the header into binary form and returns the result.
func (h *Header) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)

	if err := binary.Write(b, binary.LittleEndian, h); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the header from binary form.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d", ErrShortBuffer, HeaderSize, len(b))
	}

	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, h); err != nil {
		return err
	}

	if !validMagic(h.Magic) {
		return fmt.Errorf("%w: 0x%08x", ErrBadMagic, h.Magic)
	}

	return nil
}

// ReadHeader reads and decodes a container header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var b [HeaderSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Header{}, err
	}

	var h Header
	if err := h.UnmarshalBinary(b[:]); err != nil {
		return Header{}, err
	}

	return h, nil
}
