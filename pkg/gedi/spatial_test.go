package gedi

import (
	"math"
	"testing"
)

func TestBounds(t *testing.T) {
	b := Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10}

	if !b.Contains(5, 5) {
		t.Error("Expected (5,5) inside")
	}
	if !b.Contains(0, 0) || !b.Contains(10, 10) {
		t.Error("All four edges are closed")
	}
	if b.Contains(10.1, 5) || b.Contains(5, -0.1) {
		t.Error("Expected points outside the box to be excluded")
	}

	if !b.Intersects(Bounds{MinLon: 9, MaxLon: 12, MinLat: 9, MaxLat: 12}) {
		t.Error("Expected overlapping boxes to intersect")
	}
	if b.Intersects(Bounds{MinLon: 11, MaxLon: 12, MinLat: 0, MaxLat: 10}) {
		t.Error("Expected disjoint boxes not to intersect")
	}

	e := b.Expand(1)
	if e.MinLon != -1 || e.MaxLon != 11 || e.MinLat != -1 || e.MaxLat != 11 {
		t.Errorf("Unexpected expanded bounds: %+v", e)
	}

	u := b.Union(Bounds{MinLon: -5, MaxLon: 3, MinLat: 2, MaxLat: 20})
	if u.MinLon != -5 || u.MaxLon != 10 || u.MinLat != 0 || u.MaxLat != 20 {
		t.Errorf("Unexpected union: %+v", u)
	}
}

func TestFilterBounds(t *testing.T) {
	g, err := Open(twoBeamGranule(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer g.Close()

	table, err := g.GeoTable()
	if err != nil {
		t.Fatalf("GeoTable failed: %v", err)
	}

	box := Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10}
	filtered := table.FilterBounds(box)

	// 1 shot from BEAM0000 plus 2 from BEAM0101, in traversal order.
	if filtered.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", filtered.Len())
	}
	want := []uint64{19640521100000001, 19640521100000004, 19640521100000005}
	for i, shot := range filtered.Shots() {
		if shot != want[i] {
			t.Errorf("Row %d: expected shot %d, got %d", i, want[i], shot)
		}
	}

	// Idempotent: filtering again with the same box changes nothing.
	again := filtered.FilterBounds(box)
	if again.Len() != filtered.Len() {
		t.Errorf("Filter must be idempotent: %d != %d", again.Len(), filtered.Len())
	}
	for i := range again.Shots() {
		if again.Shot(i) != filtered.Shot(i) {
			t.Errorf("Row %d changed across idempotent filtering", i)
		}
	}

	// The input table is untouched.
	if table.Len() != 5 {
		t.Errorf("Input table was modified: %d rows", table.Len())
	}
}

func TestFilterBoundsEmptyResult(t *testing.T) {
	g, err := Open(twoBeamGranule(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer g.Close()

	table, err := g.GeoTable()
	if err != nil {
		t.Fatalf("GeoTable failed: %v", err)
	}

	// A box fully outside all data yields an empty table, never an error.
	empty := table.FilterBounds(Bounds{MinLon: 100, MaxLon: 110, MinLat: 100, MaxLat: 110})
	if !empty.IsEmpty() {
		t.Fatalf("Expected empty result, got %d rows", empty.Len())
	}
	if got := len(empty.Fields()); got != len(table.Fields()) {
		t.Errorf("Empty table must keep the schema: %d columns", got)
	}
}

func TestFilterBoundsRequiresFootprintOnBothEnds(t *testing.T) {
	// bin0 inside the box but lastbin outside: the row must be excluded.
	path := writeGranule(t, "straddle.h5",
		[]string{"BEAM0000"},
		map[string]beamFixture{
			"BEAM0000": {
				shots: []uint64{1, 2},
				lat0:  []float64{5, 5},
				latN:  []float64{5, 15},
				lon0:  []float64{5, 5},
				lonN:  []float64{5, 5},
			},
		})

	g, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer g.Close()

	table, err := g.GeoTable()
	if err != nil {
		t.Fatalf("GeoTable failed: %v", err)
	}

	filtered := table.FilterBounds(Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10})
	if filtered.Len() != 1 {
		t.Fatalf("Expected 1 row, got %d", filtered.Len())
	}
	if filtered.Shot(0) != 1 {
		t.Errorf("Expected shot 1, got %d", filtered.Shot(0))
	}
}

func TestFilterBoundsExcludesNonFinite(t *testing.T) {
	path := writeGranule(t, "nonfinite.h5",
		[]string{"BEAM0000"},
		map[string]beamFixture{
			"BEAM0000": {
				shots: []uint64{1},
				lat0:  []float64{5},
				latN:  []float64{5},
				lon0:  []float64{5},
				lonN:  []float64{math.NaN()},
			},
		})

	g, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer g.Close()

	table, err := g.GeoTable()
	if err != nil {
		t.Fatalf("GeoTable failed: %v", err)
	}

	filtered := table.FilterBounds(Bounds{MinLon: 0, MaxLon: 10, MinLat: 0, MaxLat: 10})
	if !filtered.IsEmpty() {
		t.Errorf("Rows with non-finite coordinates must be excluded, got %d rows", filtered.Len())
	}
}
