package granule

import (
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// Beam is one BEAM#### group of an open granule.
//
// All per-shot datasets within a beam are parallel arrays with one element per
// laser shot. Datasets are addressed by base name: the beam subtree is walked
// once and each base name maps to the first dataset path discovered with it,
// so nested subgroups (geolocation, geophys_corr, ...) are transparent.
type Beam struct {
	file  *File
	name  string
	group *hdf5.Group
	paths map[string]string // dataset base name -> absolute path
	shots []uint64
}

// Name returns the beam group name, e.g. "BEAM0101".
func (b *Beam) Name() string {
	return b.name
}

// Has reports whether the beam subtree contains a dataset with this base name.
func (b *Beam) Has(field string) bool {
	_, ok := b.paths[field]
	return ok
}

// index walks the beam subtree once and records dataset paths by base name.
func (b *Beam) index() error {
	b.paths = make(map[string]string)
	return hdf5.Walk(b.group, func(path string, obj interface{}, err error) error {
		if err != nil {
			return err
		}
		if _, ok := obj.(*hdf5.Dataset); ok {
			base := path[strings.LastIndex(path, "/")+1:]
			if _, seen := b.paths[base]; !seen {
				b.paths[base] = path
			}
		}
		return nil
	})
}

func (b *Beam) dataset(field string) (*hdf5.Dataset, error) {
	path, ok := b.paths[field]
	if !ok {
		return nil, &ErrFieldNotFound{Beam: b.name, Field: field}
	}
	return b.file.h.OpenDataset(path)
}

// Floats reads the named dataset as float64 values.
func (b *Beam) Floats(field string) ([]float64, error) {
	ds, err := b.dataset(field)
	if err != nil {
		return nil, err
	}
	return ds.ReadFloat64()
}

// Uints reads the named dataset as uint64 values.
//
// Shot numbers and sample offsets are read this way: they are 64-bit integers
// that exceed float64's 53-bit mantissa and must not pass through a float
// conversion.
func (b *Beam) Uints(field string) ([]uint64, error) {
	ds, err := b.dataset(field)
	if err != nil {
		return nil, err
	}
	return ds.ReadUint64()
}

// ShotNumbers returns the beam's shot_number array. The array is read once
// and cached for the life of the Beam.
func (b *Beam) ShotNumbers() ([]uint64, error) {
	if b.shots != nil {
		return b.shots, nil
	}
	shots, err := b.Uints(FieldShotNumber)
	if err != nil {
		return nil, err
	}
	b.shots = shots
	return shots, nil
}

// ShotCount returns the number of shots fired by this beam.
func (b *Beam) ShotCount() (int, error) {
	shots, err := b.ShotNumbers()
	if err != nil {
		return 0, err
	}
	return len(shots), nil
}

// PerShotFloats reads a per-shot dataset and verifies it is parallel to the
// shot_number array.
func (b *Beam) PerShotFloats(field string) ([]float64, error) {
	n, err := b.ShotCount()
	if err != nil {
		return nil, err
	}
	vals, err := b.Floats(field)
	if err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, &ErrLengthMismatch{Beam: b.name, Field: field, Want: n, Got: len(vals)}
	}
	return vals, nil
}

// PerShotUints reads a per-shot dataset as uint64 and verifies it is parallel
// to the shot_number array.
func (b *Beam) PerShotUints(field string) ([]uint64, error) {
	n, err := b.ShotCount()
	if err != nil {
		return nil, err
	}
	vals, err := b.Uints(field)
	if err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, &ErrLengthMismatch{Beam: b.name, Field: field, Want: n, Got: len(vals)}
	}
	return vals, nil
}
