package sbd

import "time"

// Sensor type 52: the compact format. Half-precision floats, directional
// moments quantized to signed bytes (scaled by 1/100), check factor to
// unsigned bytes (scaled by 1/10), timestamp as a single float32 Unix
// epoch. Transmits salinity but no mean GPS velocities.
//
// The format was modified early 2025: the later variant appends a uint32
// payload-integrity field and flips the com-port field from unsigned to
// signed. Neither variant carries a sub-version byte, so the two are told
// apart by total message size only.
var layout52Pre = Layout{
	scalar("payload_marker", Char),
	scalar("sensor_type", Int8),
	scalar("com_port", Uint8),
	scalar("payload_size", Int16),
	scalar("significant_height", Float16),
	scalar("peak_period", Float16),
	scalar("peak_direction", Float16),
	array("energy_density", Float16, spectralBins),
	scalar("frequency_min", Float16),
	scalar("frequency_max", Float16),
	array("a1", Int8, spectralBins),
	array("b1", Int8, spectralBins),
	array("a2", Int8, spectralBins),
	array("b2", Int8, spectralBins),
	array("check", Uint8, spectralBins),
	scalar("latitude", Float32),
	scalar("longitude", Float32),
	scalar("temperature", Float16),
	scalar("salinity", Float16),
	scalar("voltage", Float16),
	scalar("epoch", Float32),
}

var layout52Post = Layout{
	scalar("payload_marker", Char),
	scalar("sensor_type", Int8),
	scalar("com_port", Int8),
	scalar("payload_size", Int16),
	scalar("significant_height", Float16),
	scalar("peak_period", Float16),
	scalar("peak_direction", Float16),
	array("energy_density", Float16, spectralBins),
	scalar("frequency_min", Float16),
	scalar("frequency_max", Float16),
	array("a1", Int8, spectralBins),
	array("b1", Int8, spectralBins),
	array("a2", Int8, spectralBins),
	array("b2", Int8, spectralBins),
	array("check", Uint8, spectralBins),
	scalar("latitude", Float32),
	scalar("longitude", Float32),
	scalar("temperature", Float16),
	scalar("salinity", Float16),
	scalar("voltage", Float16),
	scalar("epoch", Float32),
	scalar("payload_check", Uint32),
}

const (
	momentDivisor = 100
	checkDivisor  = 10
)

func decode52(filename string, data []byte) (Record, error) {
	post := len(data) == layout52Post.Size()

	c := &cursor{buf: data}
	rec := newRecord()
	rec.BuoyID = idFromFilename(filename)

	c.take(1) // payload marker, already classified
	rec.SensorType = int(c.i8())
	if post {
		rec.ComPort = int(c.i8())
	} else {
		rec.ComPort = int(c.u8())
	}
	rec.PayloadSize = int(c.i16())
	rec.SignificantHeight = c.f16()
	rec.PeakPeriod = c.f16()
	rec.PeakDirection = c.f16()
	rec.EnergyDensity = c.f16s(spectralBins)

	fmin := c.f16()
	fmax := c.f16()
	if frequencyResolved(fmin, fmax) {
		rec.Frequency = linspaceAxis(fmin, fmax, len(rec.EnergyDensity))
	} else {
		rec.Frequency = sentinelAxis(len(rec.EnergyDensity))
	}

	rec.A1 = c.i8s(spectralBins, momentDivisor)
	rec.B1 = c.i8s(spectralBins, momentDivisor)
	rec.A2 = c.i8s(spectralBins, momentDivisor)
	rec.B2 = c.i8s(spectralBins, momentDivisor)
	rec.Check = c.u8s(spectralBins, checkDivisor)

	rec.Latitude = c.f32()
	rec.Longitude = c.f32()
	rec.Temperature = c.f16()
	rec.Salinity = c.f16()
	rec.Voltage = c.f16()

	epoch := c.f32()
	rec.Datetime = time.Unix(int64(epoch), 0).UTC()

	if post {
		c.u32() // payload-integrity field, not surfaced
	}

	return rec, nil
}
