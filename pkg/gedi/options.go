package gedi

import "runtime"

// IndexOptions controls granule index building.
type IndexOptions struct {
	// Workers specifies how many granules are opened concurrently.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors causes indexing to continue when individual granules fail
	// to open or read. Failed granules are left out of the index.
	// When false, the first error aborts the build.
	SkipErrors bool
}

// DefaultIndexOptions returns index options with sensible defaults.
func DefaultIndexOptions() IndexOptions {
	return IndexOptions{
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}
