package gedi

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/s2"

	"github.com/fullwave/gedi/internal/granule"
)

// minRectExtent keeps R-tree rectangles non-degenerate for point queries and
// for polygons collapsed to a line.
const minRectExtent = 1e-9

// Polygon is one boundary with its attribute record.
//
// Ring holds [longitude, latitude] vertices in decimal degrees, following the
// GeoJSON convention. The ring may optionally repeat the first vertex at the
// end; either form is accepted. Attributes carries the polygon's identifier
// fields, selectable as the split field of a polygon filter.
type Polygon struct {
	Ring       [][]float64
	Attributes map[string]string
}

// polygonEntry is one indexed polygon of a PolygonSet.
type polygonEntry struct {
	index  int
	loop   *s2.Loop
	bounds Bounds
	attrs  map[string]string
}

// Bounds implements rtreego.Spatial using the polygon's geographic envelope.
func (e *polygonEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bounds.MinLon, e.bounds.MinLat}
	lengths := []float64{
		e.bounds.MaxLon - e.bounds.MinLon,
		e.bounds.MaxLat - e.bounds.MinLat,
	}
	for i, l := range lengths {
		if l < minRectExtent {
			lengths[i] = minRectExtent
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// PolygonSet is an immutable collection of polygons indexed for containment
// queries. Candidate lookup uses an R-tree over polygon envelopes; the
// containment test itself is delegated to S2 spherical geometry.
type PolygonSet struct {
	entries []*polygonEntry
	rtree   *rtreego.Rtree
	extent  Bounds
	fields  map[string]struct{}
}

// NewPolygonSet validates the polygons, builds their S2 loops, and indexes
// their envelopes.
//
// Each ring needs at least 3 distinct vertices of 2 coordinates. Loops are
// normalized so a ring encloses the smaller of the two regions it divides the
// sphere into, regardless of winding order.
func NewPolygonSet(polys []Polygon) (*PolygonSet, error) {
	if len(polys) == 0 {
		return nil, &InvalidRingError{Index: 0, Reason: "polygon set is empty"}
	}

	set := &PolygonSet{
		rtree:  rtreego.NewTree(2, 25, 50),
		fields: make(map[string]struct{}),
	}

	for i, poly := range polys {
		ring := poly.Ring
		if n := len(ring); n > 1 && len(ring[0]) >= 2 && len(ring[n-1]) >= 2 &&
			ring[0][0] == ring[n-1][0] && ring[0][1] == ring[n-1][1] {
			ring = ring[:n-1] // drop the GeoJSON closing vertex
		}
		if len(ring) < 3 {
			return nil, &InvalidRingError{Index: i, Reason: "fewer than 3 distinct vertices"}
		}

		points := make([]s2.Point, len(ring))
		bounds := Bounds{}
		for j, coord := range ring {
			if len(coord) < 2 {
				return nil, &InvalidRingError{Index: i, Reason: "vertex with fewer than 2 coordinates"}
			}
			lon, lat := coord[0], coord[1]
			points[j] = s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
			vb := Bounds{MinLon: lon, MaxLon: lon, MinLat: lat, MaxLat: lat}
			if j == 0 {
				bounds = vb
			} else {
				bounds = bounds.Union(vb)
			}
		}

		loop := s2.LoopFromPoints(points)
		loop.Normalize()

		entry := &polygonEntry{
			index:  i,
			loop:   loop,
			bounds: bounds,
			attrs:  poly.Attributes,
		}
		set.entries = append(set.entries, entry)
		set.rtree.Insert(entry)

		if i == 0 {
			set.extent = bounds
		} else {
			set.extent = set.extent.Union(bounds)
		}
		for name := range poly.Attributes {
			set.fields[name] = struct{}{}
		}
	}

	return set, nil
}

// Len returns the number of polygons in the set.
func (s *PolygonSet) Len() int {
	return len(s.entries)
}

// Extent returns the overall bounding envelope of the set.
func (s *PolygonSet) Extent() Bounds {
	return s.extent
}

// SplitFields returns the attribute field names available as a split field,
// sorted.
func (s *PolygonSet) SplitFields() []string {
	out := make([]string, 0, len(s.fields))
	for name := range s.fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// containing returns the polygon containing the point, or nil. When the point
// lies inside several overlapping polygons the one added to the set first
// wins.
func (s *PolygonSet) containing(lon, lat float64) *polygonEntry {
	rect, _ := rtreego.NewRect(rtreego.Point{lon, lat},
		[]float64{minRectExtent, minRectExtent})
	point := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))

	var best *polygonEntry
	for _, spatial := range s.rtree.SearchIntersect(rect) {
		entry := spatial.(*polygonEntry)
		if best != nil && entry.index >= best.index {
			continue
		}
		if entry.loop.ContainsPoint(point) {
			best = entry
		}
	}
	return best
}

// FilterPolygons returns the rows whose bin0 point lies inside at least one
// polygon of the set.
//
// The table is first narrowed with FilterBounds using the set's overall
// envelope, then each surviving row's bin0 point is containment-tested. With
// a non-empty splitField the result gains a string column of that name
// holding the containing polygon's attribute value for each row; rows inside
// a polygon lacking the attribute get an empty value. An unknown splitField
// fails with UnknownSplitFieldError and leaves the input table untouched.
func (t *ShotTable) FilterPolygons(set *PolygonSet, splitField string) (*ShotTable, error) {
	if splitField != "" {
		if _, ok := set.fields[splitField]; !ok {
			return nil, &UnknownSplitFieldError{Field: splitField, Available: set.SplitFields()}
		}
	}

	pre := t.FilterBounds(set.Extent())

	lat0 := pre.cols[granule.FieldLatBin0]
	lon0 := pre.cols[granule.FieldLonBin0]

	var keep []int
	var labels []string
	for i := range pre.shots {
		entry := set.containing(lon0[i], lat0[i])
		if entry == nil {
			continue
		}
		keep = append(keep, i)
		if splitField != "" {
			labels = append(labels, entry.attrs[splitField])
		}
	}

	out := pre.subset(keep)
	if splitField != "" {
		out.labelField = splitField
		out.labels = labels
	}
	return out, nil
}
