// Package granule reads GEDI Level-1B granules through the HDF5 container layer.
//
// A granule is one orbit segment of instrument data stored as an HDF5 file.
// The file holds one group per laser beam, named BEAM#### (four digits), and
// each beam group stores parallel per-shot arrays plus one flat rxwaveform
// buffer shared by all shots of that beam.
//
// This package owns all HDF5 access. It never interprets the data beyond
// locating datasets and reading them as typed arrays; the public gedi package
// builds tables and waveforms on top of it.
package granule

import (
	"fmt"
	"regexp"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// Standard L1B dataset names used by the extraction layer.
//
// Geolocation fields live in each beam's geolocation subgroup in real
// granules, but datasets are located by base name anywhere under the beam
// group, so flat layouts work too.
const (
	FieldShotNumber  = "shot_number"
	FieldSampleCount = "rx_sample_count"
	FieldSampleStart = "rx_sample_start_index"
	FieldWaveform    = "rxwaveform"
	FieldElevBin0    = "elevation_bin0"
	FieldElevLastBin = "elevation_lastbin"
	FieldLatBin0     = "latitude_bin0"
	FieldLatLastBin  = "latitude_lastbin"
	FieldLonBin0     = "longitude_bin0"
	FieldLonLastBin  = "longitude_lastbin"
)

var beamNamePattern = regexp.MustCompile(`^BEAM\d{4}$`)

// File is an open L1B granule. It owns the underlying OS file handle and must
// be closed by the caller. A File is not safe for concurrent use.
type File struct {
	h     *hdf5.File
	path  string
	beams []string
}

// Open opens a granule read-only and enumerates its beam groups.
//
// Beam groups are the root-level groups whose name matches BEAM#### and are
// kept in the order the container stores them. Returns ErrNoBeams if the file
// is valid HDF5 but contains no beam groups.
func Open(path string) (*File, error) {
	h, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open granule: %w", err)
	}

	members, err := h.Root().Members()
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("list root groups: %w", err)
	}

	var beams []string
	for _, name := range members {
		if beamNamePattern.MatchString(name) {
			beams = append(beams, name)
		}
	}
	if len(beams) == 0 {
		h.Close()
		return nil, &ErrNoBeams{Path: path}
	}

	return &File{h: h, path: path, beams: beams}, nil
}

// Close releases the underlying file handle. Safe to call more than once.
func (f *File) Close() error {
	if f.h == nil {
		return nil
	}
	err := f.h.Close()
	f.h = nil
	return err
}

// Path returns the filesystem path the granule was opened from.
func (f *File) Path() string {
	return f.path
}

// BeamNames returns the beam group names in file order.
func (f *File) BeamNames() []string {
	return f.beams
}

// Beam opens the named beam group and indexes its datasets.
func (f *File) Beam(name string) (*Beam, error) {
	if f.h == nil {
		return nil, fmt.Errorf("beam %s: granule is closed", name)
	}

	group, err := f.h.OpenGroup("/" + name)
	if err != nil {
		return nil, fmt.Errorf("open beam %s: %w", name, err)
	}

	b := &Beam{file: f, name: name, group: group}
	if err := b.index(); err != nil {
		return nil, fmt.Errorf("index beam %s: %w", name, err)
	}
	return b, nil
}
