package sbd

import "time"

// Sensor type 51: the legacy format. Four-byte floats throughout, frequency
// axis encoded as a (min, max, step) triple, timestamp carried as six
// separate integer fields. Transmits mean GPS velocities but no salinity.
var layout51 = Layout{
	scalar("payload_marker", Char),
	scalar("sensor_type", Int8),
	scalar("com_port", Int8),
	scalar("payload_size", Int16),
	scalar("significant_height", Float32),
	scalar("peak_period", Float32),
	scalar("peak_direction", Float32),
	array("energy_density", Float32, spectralBins),
	scalar("frequency_min", Float32),
	scalar("frequency_max", Float32),
	scalar("frequency_step", Float32),
	scalar("latitude", Float32),
	scalar("longitude", Float32),
	scalar("temperature", Float32),
	scalar("voltage", Float32),
	scalar("u_mean", Float32),
	scalar("v_mean", Float32),
	scalar("z_mean", Float32),
	scalar("year", Int32),
	scalar("month", Int32),
	scalar("day", Int32),
	scalar("hour", Int32),
	scalar("minute", Int32),
	scalar("second", Int32),
}

func decode51(filename string, data []byte) (Record, error) {
	c := &cursor{buf: data}
	rec := newRecord()
	rec.BuoyID = idFromFilename(filename)

	c.take(1) // payload marker, already classified
	rec.SensorType = int(c.i8())
	rec.ComPort = int(c.i8())
	rec.PayloadSize = int(c.i16())
	rec.SignificantHeight = c.f32()
	rec.PeakPeriod = c.f32()
	rec.PeakDirection = c.f32()
	rec.EnergyDensity = c.f32s(spectralBins)

	fmin := c.f32()
	fmax := c.f32()
	fstep := c.f32()
	if frequencyResolved(fmin, fmax) {
		rec.Frequency = arangeAxis(fmin, fmax, fstep)
	} else {
		rec.Frequency = sentinelAxis(len(rec.EnergyDensity))
	}

	rec.Latitude = c.f32()
	rec.Longitude = c.f32()
	rec.Temperature = c.f32()
	rec.Voltage = c.f32()
	rec.UMean = c.f32()
	rec.VMean = c.f32()
	rec.ZMean = c.f32()

	year := int(c.i32())
	month := int(c.i32())
	day := int(c.i32())
	hour := int(c.i32())
	minute := int(c.i32())
	second := int(c.i32())
	rec.Datetime = time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	return rec, nil
}
