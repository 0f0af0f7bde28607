package gedi

import (
	"fmt"

	"github.com/fullwave/gedi/internal/granule"
)

// Waveform is the digitized return of a single laser shot.
//
// Amplitude holds the raw sample values exactly as stored; Normalized derives
// a 0-100 view on demand. Elevation holds the vertical coordinate in meters
// for each sample, descending from the top of the receive window (bin0)
// toward its bottom (lastbin). Both slices have the same length,
// rx_sample_count.
type Waveform struct {
	Shot      uint64
	Beam      string
	Amplitude []float64
	Elevation []float64
}

// Len returns the number of samples.
func (w *Waveform) Len() int {
	return len(w.Amplitude)
}

// Normalized returns the amplitudes rescaled to a 0-100 percentage, with the
// minimum raw sample mapping to 0 and the maximum to 100. When all samples
// are equal the scale is undefined and every value maps to 0.
func (w *Waveform) Normalized() []float64 {
	out := make([]float64, len(w.Amplitude))
	if len(w.Amplitude) == 0 {
		return out
	}

	min, max := w.Amplitude[0], w.Amplitude[0]
	for _, v := range w.Amplitude {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return out
	}

	for i, v := range w.Amplitude {
		out[i] = (v - min) / (max - min) * 100
	}
	return out
}

// Waveform extracts the waveform of one shot.
//
// Every beam group is scanned for the shot number; the first beam containing
// it wins. Returns ShotNotFoundError when no beam holds the shot. A shot with
// rx_sample_count zero yields an empty Waveform, not an error.
func (g *Granule) Waveform(shot uint64) (*Waveform, error) {
	for _, name := range g.file.BeamNames() {
		beam, err := g.file.Beam(name)
		if err != nil {
			return nil, err
		}
		shots, err := beam.ShotNumbers()
		if err != nil {
			return nil, err
		}
		for row, s := range shots {
			if s == shot {
				return extractWaveform(beam, shot, row)
			}
		}
	}
	return nil, &ShotNotFoundError{Shot: shot}
}

// extractWaveform slices one shot's samples out of the beam's shared flat
// waveform buffer and reconstructs the elevation axis.
func extractWaveform(beam *granule.Beam, shot uint64, row int) (*Waveform, error) {
	counts, err := beam.PerShotUints(granule.FieldSampleCount)
	if err != nil {
		return nil, err
	}
	count := int(counts[row])

	wf := &Waveform{Shot: shot, Beam: beam.Name()}
	if count == 0 {
		wf.Amplitude = []float64{}
		wf.Elevation = []float64{}
		return wf, nil
	}

	starts, err := beam.PerShotUints(granule.FieldSampleStart)
	if err != nil {
		return nil, err
	}

	// Start indices are offsets into the beam's flat buffer, but their origin
	// varies between granules. Rebase against the beam-wide minimum so the
	// smallest start index addresses the first buffer sample.
	minStart := starts[0]
	for _, s := range starts {
		if s < minStart {
			minStart = s
		}
	}
	offset := int(starts[row] - minStart)

	buffer, err := beam.Floats(granule.FieldWaveform)
	if err != nil {
		return nil, err
	}
	if offset+count > len(buffer) {
		return nil, fmt.Errorf("beam %s shot %d: samples [%d:%d] exceed rxwaveform length %d",
			beam.Name(), shot, offset, offset+count, len(buffer))
	}
	wf.Amplitude = append([]float64(nil), buffer[offset:offset+count]...)

	bin0, err := beam.PerShotFloats(granule.FieldElevBin0)
	if err != nil {
		return nil, err
	}
	lastbin, err := beam.PerShotFloats(granule.FieldElevLastBin)
	if err != nil {
		return nil, err
	}
	wf.Elevation = elevationAxis(bin0[row], lastbin[row], count)

	return wf, nil
}

// elevationAxis interpolates count+1 evenly spaced break points between the
// lastbin and bin0 elevations (inclusive), walks them from the bin0 end down,
// and drops the bin0 end point itself so the axis is parallel to the samples.
// When bin0 equals lastbin the axis collapses to repeated identical values.
func elevationAxis(bin0, lastbin float64, count int) []float64 {
	axis := make([]float64, count)
	span := bin0 - lastbin
	for i := 0; i < count; i++ {
		axis[i] = lastbin + span*float64(count-1-i)/float64(count)
	}
	return axis
}
