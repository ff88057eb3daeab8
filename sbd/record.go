package sbd

import (
	"math"
	"regexp"
	"time"
)

// Record is one decoded SBD message mapped onto the fixed field vocabulary
// of the Variables table. Scalar fields a sensor type does not transmit are
// NaN, spectral fields it does not transmit are nil; neither is ever zero.
//
// Every spectral field of a record has the same length as its Frequency
// field. The length is fixed per sensor type but may differ between types.
type Record struct {
	BuoyID   string
	Datetime time.Time

	SignificantHeight float64
	PeakPeriod        float64
	PeakDirection     float64

	EnergyDensity []float64
	Frequency     []float64
	A1            []float64
	B1            []float64
	A2            []float64
	B2            []float64
	Check         []float64

	UMean float64
	VMean float64
	ZMean float64

	Latitude    float64
	Longitude   float64
	Temperature float64
	Salinity    float64
	Voltage     float64

	SensorType  int
	ComPort     int
	PayloadSize int
}

// newRecord returns a Record with every scalar measurement marked absent.
func newRecord() Record {
	nan := math.NaN()
	return Record{
		SignificantHeight: nan,
		PeakPeriod:        nan,
		PeakDirection:     nan,
		UMean:             nan,
		VMean:             nan,
		ZMean:             nan,
		Latitude:          nan,
		Longitude:         nan,
		Temperature:       nan,
		Salinity:          nan,
		Voltage:           nan,
	}
}

// ErrorRecord is produced for every input message, decodable or not.
// Diagnostic holds the verbatim opaque payload for non-telemetry messages,
// or the decode failure as free text; it is empty for messages that decoded
// cleanly.
type ErrorRecord struct {
	Filename   string
	Diagnostic []byte
}

var buoyIDPattern = regexp.MustCompile(`microSWIFT (\d{3})`)

// idFromFilename extracts the 3-digit buoy ID embedded in SBD filenames
// ("microSWIFT 043-..."), or "" when the filename carries none.
func idFromFilename(filename string) string {
	match := buoyIDPattern.FindStringSubmatch(filename)
	if match == nil {
		return ""
	}
	return match[1]
}
