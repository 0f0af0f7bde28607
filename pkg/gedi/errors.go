package gedi

import (
	"fmt"
	"strings"
)

// ShotNotFoundError indicates a shot number absent from every beam group of
// the granule. The shot tables name valid identifiers; retry with one of
// those.
type ShotNotFoundError struct {
	Shot uint64
}

func (e *ShotNotFoundError) Error() string {
	return fmt.Sprintf("shot %d not found in any beam group: retry with a shot number from the geolocation table", e.Shot)
}

// UnknownSplitFieldError indicates a split field name absent from a polygon
// set's attribute schema.
type UnknownSplitFieldError struct {
	Field     string
	Available []string
}

func (e *UnknownSplitFieldError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("split field %q not found: polygon set carries no attributes", e.Field)
	}
	return fmt.Sprintf("split field %q not found in polygon attributes (available: %s)",
		e.Field, strings.Join(e.Available, ", "))
}

// InvalidRingError indicates a polygon ring that cannot form a closed
// boundary.
type InvalidRingError struct {
	Index  int
	Reason string
}

func (e *InvalidRingError) Error() string {
	return fmt.Sprintf("polygon %d: invalid ring: %s", e.Index, e.Reason)
}
