package gedi

import (
	"math"

	"github.com/fullwave/gedi/internal/granule"
)

// Dataset names of the core geolocation fields. Use these with
// ShotTable.Float and as extra field names for GeoTable.
const (
	FieldLatitudeBin0     = granule.FieldLatBin0
	FieldLatitudeLastBin  = granule.FieldLatLastBin
	FieldLongitudeBin0    = granule.FieldLonBin0
	FieldLongitudeLastBin = granule.FieldLonLastBin
	FieldElevationBin0    = granule.FieldElevBin0
	FieldElevationLastBin = granule.FieldElevLastBin
)

// DefaultFields are the geolocation fields every GeoTable carries, whether or
// not the caller requests them.
var DefaultFields = []string{
	FieldLatitudeBin0,
	FieldLatitudeLastBin,
	FieldLongitudeBin0,
	FieldLongitudeLastBin,
}

// GeoTable extracts a per-shot geolocation table from the granule.
//
// The table concatenates every beam group's shots in beam file order. Columns
// are shot_number first, then the default geolocation fields, then any extra
// fields in the order given (duplicates removed). Fields are matched by
// dataset base name anywhere under each beam group.
//
// A field present in no beam is dropped from the output silently. A field
// present in only some beams contributes NaN for the rows of beams that lack
// it, keeping every column aligned to the shot_number column.
func (g *Granule) GeoTable(extraFields ...string) (*ShotTable, error) {
	order := requestedFields(extraFields)

	var shots []uint64
	cols := make(map[string][]float64, len(order))
	rows := 0

	for _, beamName := range g.file.BeamNames() {
		beam, err := g.file.Beam(beamName)
		if err != nil {
			return nil, err
		}
		beamShots, err := beam.ShotNumbers()
		if err != nil {
			return nil, err
		}
		shots = append(shots, beamShots...)

		for _, field := range order {
			if !beam.Has(field) {
				continue
			}
			vals, err := beam.PerShotFloats(field)
			if err != nil {
				return nil, err
			}
			cols[field] = append(padNaN(cols[field], rows), vals...)
		}
		rows += len(beamShots)
	}

	fields := make([]string, 0, len(order))
	for _, field := range order {
		if _, ok := cols[field]; !ok {
			continue
		}
		cols[field] = padNaN(cols[field], rows)
		fields = append(fields, field)
	}

	return &ShotTable{fields: fields, shots: shots, cols: cols}, nil
}

// requestedFields merges the default fields with the caller's extras,
// deduplicated, defaults first. shot_number is never a float column.
func requestedFields(extra []string) []string {
	seen := map[string]bool{granule.FieldShotNumber: true}
	order := make([]string, 0, len(DefaultFields)+len(extra))
	for _, field := range append(append([]string(nil), DefaultFields...), extra...) {
		if field == "" || seen[field] {
			continue
		}
		seen[field] = true
		order = append(order, field)
	}
	return order
}

// padNaN extends col with NaN until it has n values.
func padNaN(col []float64, n int) []float64 {
	for len(col) < n {
		col = append(col, math.NaN())
	}
	return col
}
