package gedi

import (
	"math"

	"github.com/fullwave/gedi/internal/granule"
)

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees. Callers are responsible for
// MinLon <= MaxLon and MinLat <= MaxLat; an inverted box simply matches
// nothing.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
// All four edges are closed.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	if other.MinLon < out.MinLon {
		out.MinLon = other.MinLon
	}
	if other.MaxLon > out.MaxLon {
		out.MaxLon = other.MaxLon
	}
	if other.MinLat < out.MinLat {
		out.MinLat = other.MinLat
	}
	if other.MaxLat > out.MaxLat {
		out.MaxLat = other.MaxLat
	}
	return out
}

// FilterBounds returns the rows whose shot footprint lies inside the box.
//
// A row is kept only when both its bin0 point and its lastbin point fall
// within the closed box. Rows with a missing or non-finite coordinate are
// excluded. Row order is preserved; an empty result is a valid table, never
// an error.
func (t *ShotTable) FilterBounds(b Bounds) *ShotTable {
	lat0, ok1 := t.cols[granule.FieldLatBin0]
	latN, ok2 := t.cols[granule.FieldLatLastBin]
	lon0, ok3 := t.cols[granule.FieldLonBin0]
	lonN, ok4 := t.cols[granule.FieldLonLastBin]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return t.subset(nil)
	}

	var keep []int
	for i := range t.shots {
		if !finite(lon0[i], lat0[i], lonN[i], latN[i]) {
			continue
		}
		if b.Contains(lon0[i], lat0[i]) && b.Contains(lonN[i], latN[i]) {
			keep = append(keep, i)
		}
	}
	return t.subset(keep)
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
