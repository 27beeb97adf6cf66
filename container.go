package gcfpack

import (
	"bytes"
	"fmt"
	"os"

	"github.com/global-container-format/gcfpack/gcf"
)

// CreateHeader builds the container header for desc. The resource count
// is always derived from the resource list so the header can never
// disagree with the body.
func CreateHeader(desc *Description) (gcf.Header, error) {
	flags, err := resolveContainerFlags(desc.Header.Flags)
	if err != nil {
		return gcf.Header{}, err
	}

	return gcf.Header{
		Magic:         gcf.MakeMagic(desc.Header.Version),
		ResourceCount: uint16(len(desc.Resources)),
		Flags:         flags,
	}, nil
}

// CreateContainer validates desc, assembles every resource and returns
// the container bytes: the header followed by each resource record in
// declaration order.
func (p *Packer) CreateContainer(desc *Description) ([]byte, error) {
	if err := Validate(desc); err != nil {
		return nil, err
	}

	header, err := CreateHeader(desc)
	if err != nil {
		return nil, err
	}

	records, err := p.assembleResources(desc)
	if err != nil {
		return nil, err
	}

	rawHeader, err := header.MarshalBinary()
	if err != nil {
		return nil, err
	}

	out := new(bytes.Buffer)
	out.Write(rawHeader)
	for _, record := range records {
		out.Write(record)
	}

	return out.Bytes(), nil
}

// WriteContainer assembles desc and writes the container to path,
// replacing any existing file. The container is assembled fully in
// memory first so a failed build never leaves a truncated file behind.
func (p *Packer) WriteContainer(desc *Description, path string) error {
	container, err := p.CreateContainer(desc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, container, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	p.logger.Printf("wrote %d bytes to %s\n", len(container), path)

	return nil
}
