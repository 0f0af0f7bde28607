// Package gedi reads GEDI Level-1B full-waveform lidar granules and
// spatially filters their shot tables.
//
// GEDI granules are HDF5 files holding one group per laser beam (BEAM####).
// Each beam group stores parallel per-shot arrays (shot numbers, footprint
// geolocation, receive-window elevations) plus a flat rxwaveform buffer
// concatenating every shot's digitized samples.
//
// # Basic Usage
//
//	g, err := gedi.Open("GEDI01_B_2019108002011_O01959_T03909_02_003_01.h5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	table, err := g.GeoTable()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d shots across %d beams\n", table.Len(), len(g.Beams()))
//
// # Spatial Filtering
//
// Tables can be subset by bounding box or by polygon containment. Both
// filters preserve row order and return a new table; an empty result is a
// normal outcome, not an error:
//
//	clipped := table.FilterBounds(gedi.Bounds{
//	    MinLon: -52.0, MaxLon: -50.0,
//	    MinLat: -2.0, MaxLat: 0.0,
//	})
//
//	set, err := gedi.NewPolygonSet(polys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	inside, err := clipped.FilterPolygons(set, "plot_id")
//
// With a split field, each retained row carries the identifier of the polygon
// containing its bin0 point.
//
// # Waveforms
//
// The full digitized return of a single shot is extracted by shot number,
// with sample amplitudes paired to a reconstructed elevation axis:
//
//	wf, err := g.Waveform(19640521100000001)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := range wf.Amplitude {
//	    fmt.Printf("%.2f m: %.0f\n", wf.Elevation[i], wf.Amplitude[i])
//	}
//
// # Working with Many Granules
//
// A GranuleIndex summarizes the footprints of a granule collection so only
// files overlapping a region of interest need to be opened:
//
//	idx, err := gedi.BuildIndex(paths, gedi.DefaultIndexOptions())
//	for _, entry := range idx.Query(region) {
//	    // open entry.Path and extract
//	}
//
// A Granule owns an OS file handle and is not safe for concurrent use; close
// it on every exit path.
package gedi
