package gedi

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"golang.org/x/sync/errgroup"

	"github.com/fullwave/gedi/internal/granule"
)

// Entry contains indexed metadata for a single granule file.
type Entry struct {
	Path      string   // Filesystem path of the granule
	GeoBounds Bounds   // Footprint of all finite shot coordinates
	Shots     int      // Total shot count across beams
	Beams     []string // Beam group names
}

// Bounds implements rtreego.Spatial using the granule's footprint.
func (e Entry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.GeoBounds.MinLon, e.GeoBounds.MinLat}
	lengths := []float64{
		e.GeoBounds.MaxLon - e.GeoBounds.MinLon,
		e.GeoBounds.MaxLat - e.GeoBounds.MinLat,
	}
	for i, l := range lengths {
		if l < minRectExtent {
			lengths[i] = minRectExtent
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// GranuleIndex provides fast spatial queries over a collection of granule
// files.
//
// The index stores lightweight metadata per granule (footprint, shot count,
// beams) in an R-tree, so only granules overlapping a region of interest need
// to be opened for extraction.
//
// Example:
//
//	idx, err := gedi.BuildIndex(paths, gedi.DefaultIndexOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hits := idx.Query(gedi.Bounds{MinLon: -52, MaxLon: -50, MinLat: -2, MaxLat: 0})
type GranuleIndex struct {
	entries []Entry
	rtree   *rtreego.Rtree
}

// BuildIndex opens each granule, computes its footprint, and indexes it.
//
// Granules are processed concurrently with a bounded worker count. With
// SkipErrors set, unreadable granules are dropped; the build fails only when
// no granule at all could be indexed.
func BuildIndex(paths []string, opts IndexOptions) (*GranuleIndex, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no granule paths given")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultIndexOptions().Workers
	}

	results := make([]*Entry, len(paths))
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, path := range paths {
		eg.Go(func() error {
			entry, err := indexGranule(path)
			if err != nil {
				if opts.SkipErrors {
					return nil
				}
				return fmt.Errorf("index %s: %w", path, err)
			}
			results[i] = entry
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	idx := &GranuleIndex{rtree: rtreego.NewTree(2, 25, 50)}
	for _, entry := range results {
		if entry == nil {
			continue
		}
		idx.entries = append(idx.entries, *entry)
		idx.rtree.Insert(*entry)
	}
	if len(idx.entries) == 0 {
		return nil, fmt.Errorf("no granules could be indexed (%d failed)", len(paths))
	}
	return idx, nil
}

// indexGranule opens one granule and summarizes it.
func indexGranule(path string) (*Entry, error) {
	g, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	table, err := g.GeoTable()
	if err != nil {
		return nil, err
	}

	bounds, ok := footprint(table)
	if !ok {
		return nil, fmt.Errorf("granule has no finite shot coordinates")
	}

	return &Entry{
		Path:      path,
		GeoBounds: bounds,
		Shots:     table.Len(),
		Beams:     g.Beams(),
	}, nil
}

// footprint computes the bounding box of all finite bin0/lastbin coordinates.
func footprint(t *ShotTable) (Bounds, bool) {
	var bounds Bounds
	found := false
	for _, pair := range [][2]string{
		{granule.FieldLonBin0, granule.FieldLatBin0},
		{granule.FieldLonLastBin, granule.FieldLatLastBin},
	} {
		lons, ok1 := t.Floats(pair[0])
		lats, ok2 := t.Floats(pair[1])
		if !ok1 || !ok2 {
			continue
		}
		for i := range lons {
			if math.IsNaN(lons[i]) || math.IsNaN(lats[i]) {
				continue
			}
			vb := Bounds{MinLon: lons[i], MaxLon: lons[i], MinLat: lats[i], MaxLat: lats[i]}
			if !found {
				bounds = vb
				found = true
			} else {
				bounds = bounds.Union(vb)
			}
		}
	}
	return bounds, found
}

// Query returns the granules whose footprint intersects the given bounds,
// sorted by path.
func (idx *GranuleIndex) Query(b Bounds) []Entry {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{b.MaxLon - b.MinLon, b.MaxLat - b.MinLat}
	for i, l := range lengths {
		if l < minRectExtent {
			lengths[i] = minRectExtent
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)

	var result []Entry
	for _, spatial := range idx.rtree.SearchIntersect(rect) {
		result = append(result, spatial.(Entry))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result
}

// Count returns the number of granules in the index.
func (idx *GranuleIndex) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all granule footprints in the index.
func (idx *GranuleIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}
	bounds := idx.entries[0].GeoBounds
	for _, entry := range idx.entries[1:] {
		bounds = bounds.Union(entry.GeoBounds)
	}
	return bounds
}

// All returns all indexed entries.
func (idx *GranuleIndex) All() []Entry {
	return idx.entries
}
