/*
Package gcfpack assembles GCF container files from declarative JSON
descriptions.

A description lists a header and an ordered set of resources — opaque
blobs and multi-resolution textures — each referencing the data files to
pack. gcfpack validates the description, reads and compresses the
referenced data and emits the container: a fixed header followed by one
descriptor+payload record per resource, in declaration order.

Description files are meant to be written by other applications, such as
asset conversion pipelines.
*/
package gcfpack

import "log"

// Packer assembles GCF containers from descriptions.
type Packer struct {
	logger *log.Logger
}

// New returns a Packer that reports progress through logger.
func New(logger *log.Logger) *Packer {
	return &Packer{
		logger: logger,
	}
}
