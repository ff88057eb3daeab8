package sbd

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// GridVector is a scalar variable laid out along the time axis, with its
// description and units attached from the definitions table.
type GridVector struct {
	Variable
	Values []float64
}

// GridMatrix is a spectral variable laid out along (time, frequency).
type GridMatrix struct {
	Variable
	Values [][]float64
}

// Grid is the coordinate-based view of a batch: a time axis, a frequency
// axis, and every vocabulary field keyed by name as either a time-indexed
// vector or a (time, frequency)-indexed matrix.
type Grid struct {
	BuoyIDs   []string
	Datetime  []time.Time
	Frequency []float64
	Scalars   map[string]GridVector
	Spectra   map[string]GridMatrix
}

var spectralVariables = []string{"energy_density", "a1", "b1", "a2", "b2", "check"}

var scalarVariables = []string{
	"significant_height", "peak_period", "peak_direction",
	"u_mean", "v_mean", "z_mean",
	"latitude", "longitude", "temperature", "salinity", "voltage",
	"sensor_type", "com_port", "payload_size",
}

// Grid materializes the multi-dimensional view of the batch.
//
// Individual records reconstruct their frequency axes independently, so
// axes may differ by floating-point noise; the shared frequency coordinate
// is the elementwise mean across records. Records whose frequency axis
// length disagrees, or whose spectral fields do not match the frequency
// axis, are a ShapeMismatchError: that indicates a layout or logic defect,
// not bad input, so the whole materialization fails. An empty batch yields
// an empty Grid and no error.
func (b Batch) Grid() (Grid, error) {
	grid := Grid{
		Scalars: make(map[string]GridVector),
		Spectra: make(map[string]GridMatrix),
	}
	if len(b.Records) == 0 {
		return grid, nil
	}

	grid.BuoyIDs = make([]string, len(b.Records))
	grid.Datetime = make([]time.Time, len(b.Records))
	for i, r := range b.Records {
		grid.BuoyIDs[i] = r.BuoyID
		grid.Datetime[i] = r.Datetime
	}

	bins := len(b.Records[0].Frequency)
	for _, r := range b.Records {
		if len(r.Frequency) != bins {
			return Grid{}, ShapeMismatchError{Variable: "frequency", Got: len(r.Frequency), Want: bins}
		}
	}
	grid.Frequency = meanAxis(b.Records, bins)

	for _, name := range scalarVariables {
		v, _ := VariableByName(name)
		values := make([]float64, len(b.Records))
		for i, r := range b.Records {
			values[i] = r.scalar(name)
		}
		grid.Scalars[name] = GridVector{Variable: v, Values: values}
	}

	for _, name := range spectralVariables {
		rows := make([][]float64, len(b.Records))
		present := 0
		for i, r := range b.Records {
			rows[i] = r.spectral(name)
			if rows[i] != nil {
				present++
			}
		}
		if present == 0 {
			// The field is absent from every record's sensor type; it has
			// no shape at all and is simply left out of the grid.
			continue
		}
		for _, row := range rows {
			if len(row) != bins {
				return Grid{}, ShapeMismatchError{Variable: name, Got: len(row), Want: bins}
			}
		}
		v, _ := VariableByName(name)
		grid.Spectra[name] = GridMatrix{Variable: v, Values: rows}
	}

	return grid, nil
}

// meanAxis averages the records' frequency axes bin by bin. All axes have
// already been checked to share the same length.
func meanAxis(records []Record, bins int) []float64 {
	axis := make([]float64, bins)
	column := make([]float64, len(records))
	for j := 0; j < bins; j++ {
		for i, r := range records {
			column[i] = r.Frequency[j]
		}
		axis[j] = stat.Mean(column, nil)
	}
	return axis
}
