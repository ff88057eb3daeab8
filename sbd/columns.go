package sbd

import (
	"math"
	"time"
)

// Column is one field of the mapping view: the variable definition plus an
// array of values aligned with the batch's time-sorted record order.
// Exactly one of the value slices is populated, matching the field's type:
// Strings for the buoy ID, Times for the timestamp, Scalars for numeric
// per-message fields (NaN where the sensor type omits the field), Spectra
// for per-frequency-bin fields (nil rows where omitted).
type Column struct {
	Variable
	Strings []string
	Times   []time.Time
	Scalars []float64
	Spectra [][]float64
}

// ColumnMap is the mapping view: one Column per vocabulary field.
type ColumnMap map[string]Column

// Columns materializes the mapping view of the batch. The batch itself is
// left untouched.
func (b Batch) Columns() ColumnMap {
	out := make(ColumnMap, len(Variables))
	for _, v := range Variables {
		col := Column{Variable: v}
		switch v.Name {
		case "id":
			col.Strings = make([]string, 0, len(b.Records))
			for _, r := range b.Records {
				col.Strings = append(col.Strings, r.BuoyID)
			}
		case "datetime":
			col.Times = make([]time.Time, 0, len(b.Records))
			for _, r := range b.Records {
				col.Times = append(col.Times, r.Datetime)
			}
		case "energy_density", "frequency", "a1", "b1", "a2", "b2", "check":
			col.Spectra = make([][]float64, 0, len(b.Records))
			for _, r := range b.Records {
				col.Spectra = append(col.Spectra, r.spectral(v.Name))
			}
		default:
			col.Scalars = make([]float64, 0, len(b.Records))
			for _, r := range b.Records {
				col.Scalars = append(col.Scalars, r.scalar(v.Name))
			}
		}
		out[v.Name] = col
	}
	return out
}

// spectral returns the named per-frequency-bin field, nil when the record's
// sensor type does not transmit it.
func (r Record) spectral(name string) []float64 {
	switch name {
	case "energy_density":
		return r.EnergyDensity
	case "frequency":
		return r.Frequency
	case "a1":
		return r.A1
	case "b1":
		return r.B1
	case "a2":
		return r.A2
	case "b2":
		return r.B2
	case "check":
		return r.Check
	}
	return nil
}

// scalar returns the named per-message field, NaN when the record's sensor
// type does not transmit it.
func (r Record) scalar(name string) float64 {
	switch name {
	case "significant_height":
		return r.SignificantHeight
	case "peak_period":
		return r.PeakPeriod
	case "peak_direction":
		return r.PeakDirection
	case "u_mean":
		return r.UMean
	case "v_mean":
		return r.VMean
	case "z_mean":
		return r.ZMean
	case "latitude":
		return r.Latitude
	case "longitude":
		return r.Longitude
	case "temperature":
		return r.Temperature
	case "salinity":
		return r.Salinity
	case "voltage":
		return r.Voltage
	case "sensor_type":
		return float64(r.SensorType)
	case "com_port":
		return float64(r.ComPort)
	case "payload_size":
		return float64(r.PayloadSize)
	}
	return math.NaN()
}
