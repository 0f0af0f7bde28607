package granule

import (
	"fmt"
)

// ErrNoBeams indicates a file contains no BEAM#### groups
type ErrNoBeams struct {
	Path string
}

func (e *ErrNoBeams) Error() string {
	return fmt.Sprintf("no BEAM#### groups found in %s (not a GEDI L1B granule?)", e.Path)
}

// ErrFieldNotFound indicates a dataset name is absent from a beam subtree
type ErrFieldNotFound struct {
	Beam  string
	Field string
}

func (e *ErrFieldNotFound) Error() string {
	return fmt.Sprintf("beam %s has no dataset named %q", e.Beam, e.Field)
}

// ErrLengthMismatch indicates a per-shot array does not match the beam's shot count
type ErrLengthMismatch struct {
	Beam  string
	Field string
	Want  int
	Got   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("beam %s: dataset %q has %d values, expected %d (one per shot)",
		e.Beam, e.Field, e.Got, e.Want)
}
