package sbd

// Variable describes one entry of the fixed, revision-independent field
// vocabulary shared by every decoded record.
type Variable struct {
	Name        string
	Description string
	Units       string
}

// Variables is the static field-definition table, in canonical column order.
// Materializers attach the description and units to their output; nothing
// mutates this table after process start.
var Variables = []Variable{
	{"id", "3-digit microSWIFT ID", "(-)"},
	{"datetime", "UTC observation time", "(datetime)"},
	{"significant_height", "significant wave height", "(m)"},
	{"peak_period", "peak wave period", "(s)"},
	{"peak_direction", "peak wave direction", "(deg)"},
	{"energy_density", "wave energy density spectrum", "(m^2/Hz)"},
	{"frequency", "spectral frequency bins", "(Hz)"},
	{"a1", "first directional moment, positive E", "(-)"},
	{"b1", "second directional moment, positive N", "(-)"},
	{"a2", "third directional moment, positive E-W", "(-)"},
	{"b2", "fourth directional moment, positive NE-SW", "(-)"},
	{"check", "check factor", "(-)"},
	{"u_mean", "mean GPS E-W velocity, positive E", "(m/s)"},
	{"v_mean", "mean GPS N-S velocity, positive N", "(m/s)"},
	{"z_mean", "mean GPS altitude, positive up", "(m)"},
	{"latitude", "mean GPS latitude", "(decimal degrees)"},
	{"longitude", "mean GPS longitude", "(decimal degrees)"},
	{"temperature", "mean temperature", "(C)"},
	{"salinity", "mean salinity", "(PSU)"},
	{"voltage", "mean battery voltage", "(V)"},
	{"sensor_type", "Iridium sensor type definition", "(-)"},
	{"com_port", "Iridium com port or # of replaced values", "(-)"},
	{"payload_size", "Iridium message size", "(bytes)"},
}

// VariableByName returns the definition for name, or false if the name is
// not part of the vocabulary.
func VariableByName(name string) (Variable, bool) {
	for _, v := range Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// spectralBins is the fixed number of frequency bins carried by every
// spectral field on the wire.
const spectralBins = 42

type decodeFunc func(filename string, data []byte) (Record, error)

type sensorType struct {
	layouts []Layout
	decode  decodeFunc
}

// sensorTypes maps the sensor type code found in byte 1 of a decodable
// message to its wire layout(s) and unpack routine. Populated once at init,
// read-only afterwards.
var sensorTypes = map[uint8]sensorType{
	50: {layouts: []Layout{layout50}, decode: decode50},
	51: {layouts: []Layout{layout51}, decode: decode51},
	52: {layouts: []Layout{layout52Pre, layout52Post}, decode: decode52},
}

// LayoutsFor returns the candidate wire layouts registered for a sensor
// type code. Multiple candidates mean the variants are distinguished by
// total message size alone.
func LayoutsFor(code uint8) ([]Layout, error) {
	st, ok := sensorTypes[code]
	if !ok {
		return nil, UnsupportedSensorTypeError{Code: code}
	}
	return st.layouts, nil
}
