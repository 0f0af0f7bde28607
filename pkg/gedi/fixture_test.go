package gedi

import (
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// beamFixture describes one beam group of a fixture granule. Nil slices are
// not written, which lets tests model beams missing optional datasets.
type beamFixture struct {
	shots  []uint64
	lat0   []float64
	latN   []float64
	lon0   []float64
	lonN   []float64
	elev0  []float64
	elevN  []float64
	counts []uint64
	starts []uint64
	wave   []float64
	extra  map[string][]float64
}

// writeGranule builds a real HDF5 granule on disk. Beams are created in the
// order given so the fixture controls beam traversal order.
func writeGranule(t *testing.T, name string, beams []string, fixtures map[string]beamFixture) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := hdf5.Create(path)
	if err != nil {
		t.Fatalf("create fixture granule: %v", err)
	}

	for _, beamName := range beams {
		fx := fixtures[beamName]
		group, err := f.Root().CreateGroup(beamName)
		if err != nil {
			t.Fatalf("create group %s: %v", beamName, err)
		}

		mustDataset(t, group, "shot_number", fx.shots)
		if fx.counts != nil {
			mustDataset(t, group, "rx_sample_count", fx.counts)
		}
		if fx.starts != nil {
			mustDataset(t, group, "rx_sample_start_index", fx.starts)
		}
		if fx.wave != nil {
			mustDataset(t, group, "rxwaveform", fx.wave)
		}

		geo, err := group.CreateGroup("geolocation")
		if err != nil {
			t.Fatalf("create geolocation group: %v", err)
		}
		if fx.lat0 != nil {
			mustDataset(t, geo, "latitude_bin0", fx.lat0)
		}
		if fx.latN != nil {
			mustDataset(t, geo, "latitude_lastbin", fx.latN)
		}
		if fx.lon0 != nil {
			mustDataset(t, geo, "longitude_bin0", fx.lon0)
		}
		if fx.lonN != nil {
			mustDataset(t, geo, "longitude_lastbin", fx.lonN)
		}
		if fx.elev0 != nil {
			mustDataset(t, geo, "elevation_bin0", fx.elev0)
		}
		if fx.elevN != nil {
			mustDataset(t, geo, "elevation_lastbin", fx.elevN)
		}

		for field, vals := range fx.extra {
			mustDataset(t, group, field, vals)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatalf("close fixture granule: %v", err)
	}
	return path
}

func mustDataset(t *testing.T, g *hdf5.Group, name string, data interface{}) {
	t.Helper()
	if _, err := g.CreateDataset(name, data); err != nil {
		t.Fatalf("create dataset %s: %v", name, err)
	}
}

// twoBeamGranule is the shared extraction/filter fixture: beam BEAM0000 has
// 3 shots of which one sits inside the box [0,10]x[0,10], beam BEAM0101 has
// 2 shots that both sit inside it.
func twoBeamGranule(t *testing.T) string {
	t.Helper()
	return writeGranule(t, "two-beam.h5",
		[]string{"BEAM0000", "BEAM0101"},
		map[string]beamFixture{
			"BEAM0000": {
				shots: []uint64{19640521100000001, 19640521100000002, 19640521100000003},
				lat0:  []float64{5.0, 20.0, -20.0},
				latN:  []float64{5.1, 20.1, -20.1},
				lon0:  []float64{5.0, 20.0, -20.0},
				lonN:  []float64{5.1, 20.1, -20.1},
			},
			"BEAM0101": {
				shots: []uint64{19640521100000004, 19640521100000005},
				lat0:  []float64{1.0, 2.0},
				latN:  []float64{1.1, 2.1},
				lon0:  []float64{1.0, 2.0},
				lonN:  []float64{1.1, 2.1},
			},
		})
}
