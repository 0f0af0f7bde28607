package gedi

import (
	"github.com/fullwave/gedi/internal/granule"
)

// Granule is an open GEDI L1B granule file.
//
// Open a granule with Open and release it with Close. A Granule owns an OS
// file handle; the caller must guarantee Close on every exit path. A Granule
// is not safe for concurrent use.
type Granule struct {
	file *granule.File
}

// Open opens a granule file read-only.
//
// The file must be an HDF5 container with at least one BEAM#### group.
func Open(path string) (*Granule, error) {
	f, err := granule.Open(path)
	if err != nil {
		return nil, err
	}
	return &Granule{file: f}, nil
}

// Close releases the underlying file handle. Safe to call more than once.
func (g *Granule) Close() error {
	return g.file.Close()
}

// Path returns the filesystem path the granule was opened from.
func (g *Granule) Path() string {
	return g.file.Path()
}

// Beams returns the beam group names in file order.
//
// GEDI flies eight beams, named like BEAM0000 through BEAM1011; test or
// subset granules may carry fewer.
func (g *Granule) Beams() []string {
	return g.file.BeamNames()
}

// ShotCount returns the total number of shots across all beam groups.
func (g *Granule) ShotCount() (int, error) {
	total := 0
	for _, name := range g.file.BeamNames() {
		beam, err := g.file.Beam(name)
		if err != nil {
			return 0, err
		}
		n, err := beam.ShotCount()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
