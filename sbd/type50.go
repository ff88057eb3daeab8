package sbd

// Sensor type 50 is declared so that size validation and registry lookup
// work, but its unpack routine was never finished upstream. Decoding always
// reports ErrNotImplemented; callers must treat it as a permanent failure
// for this type, not a retryable one.
var layout50 = Layout{
	scalar("payload_marker", Char),
	scalar("sensor_type", Int8),
	scalar("com_port", Int8),
	scalar("payload_size", Int16),
	scalar("significant_height", Float32),
	scalar("peak_period", Float32),
	scalar("peak_direction", Float32),
	array("energy_density", Float32, spectralBins),
	array("frequency", Float32, spectralBins),
	array("a1", Float32, spectralBins),
	array("b1", Float32, spectralBins),
	array("a2", Float32, spectralBins),
	array("b2", Float32, spectralBins),
	array("check", Float32, spectralBins),
	scalar("latitude", Float32),
	scalar("longitude", Float32),
	scalar("temperature", Float32),
	scalar("salinity", Float32),
	scalar("voltage", Float32),
	scalar("u_mean", Float32),
	scalar("v_mean", Float32),
	scalar("year", Int32),
	scalar("month", Int32),
	scalar("day", Int32),
	scalar("hour", Int32),
	scalar("minute", Int32),
	scalar("second", Int32),
}

func decode50(string, []byte) (Record, error) {
	return Record{}, ErrNotImplemented
}
