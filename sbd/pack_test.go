package sbd

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/x448/float16"
)

// packer builds synthetic little-endian SBD payloads for tests.
type packer struct {
	b []byte
}

func (p *packer) u8(v uint8)  { p.b = append(p.b, v) }
func (p *packer) i8(v int8)   { p.b = append(p.b, byte(v)) }
func (p *packer) i16(v int16) { p.b = binary.LittleEndian.AppendUint16(p.b, uint16(v)) }
func (p *packer) i32(v int32) { p.b = binary.LittleEndian.AppendUint32(p.b, uint32(v)) }
func (p *packer) u32(v uint32) {
	p.b = binary.LittleEndian.AppendUint32(p.b, v)
}

func (p *packer) f32(v float64) {
	p.b = binary.LittleEndian.AppendUint32(p.b, math.Float32bits(float32(v)))
}

func (p *packer) f16(v float64) {
	p.b = binary.LittleEndian.AppendUint16(p.b, float16.Fromfloat32(float32(v)).Bits())
}

func (p *packer) f32s(vs []float64) {
	for _, v := range vs {
		p.f32(v)
	}
}

func (p *packer) f16s(vs []float64) {
	for _, v := range vs {
		p.f16(v)
	}
}

// raw builds a RawMessage without the trailing-null strip. Legacy-format
// buffers end in an int32 seconds field whose high bytes are zero, so
// feeding them through NewRawMessage would eat real payload bytes; the
// original transport only pads opaque diagnostics, never a type 51 tail.
func raw(name string, b []byte) RawMessage {
	return RawMessage{Filename: name, content: b}
}

// Exactly representable as float32: step is a power of two and min/max are
// multiples of it, so the reconstructed arange has exactly 42 bins.
const (
	testFreqMin  = 0.0390625
	testFreqStep = 0.0078125
	testFreqMax  = testFreqMin + 41*testFreqStep
)

func testSpectrum() []float64 {
	s := make([]float64, spectralBins)
	for i := range s {
		s[i] = float64(i) * 0.125
	}
	return s
}

// message51 packs a legacy-format message observed at ts.
func message51(ts time.Time, lat, lon float64) []byte {
	p := &packer{}
	p.u8(payloadMarker)
	p.i8(51)
	p.i8(3) // com port
	p.i16(249)
	p.f32(1.5)   // significant height
	p.f32(8.0)   // peak period
	p.f32(270.0) // peak direction
	p.f32s(testSpectrum())
	p.f32(testFreqMin)
	p.f32(testFreqMax)
	p.f32(testFreqStep)
	p.f32(lat)
	p.f32(lon)
	p.f32(11.5) // temperature
	p.f32(3.75) // voltage
	p.f32(0.25) // u mean
	p.f32(-0.5) // v mean
	p.f32(1.25) // z mean
	ts = ts.UTC()
	p.i32(int32(ts.Year()))
	p.i32(int32(ts.Month()))
	p.i32(int32(ts.Day()))
	p.i32(int32(ts.Hour()))
	p.i32(int32(ts.Minute()))
	p.i32(int32(ts.Second()))
	return p.b
}

// Multiple of 128, so the value survives the float32 epoch field exactly.
const testEpoch = 1713199104

// message52 packs a compact-format message. When post is true the post-2025
// variant is produced: signed com port and a trailing integrity word.
func message52(post bool) []byte {
	p := &packer{}
	p.u8(payloadMarker)
	p.i8(52)
	if post {
		p.i8(-5)
		p.i16(331)
	} else {
		p.u8(200)
		p.i16(327)
	}
	p.f16(2.5)   // significant height
	p.f16(10.0)  // peak period
	p.f16(180.0) // peak direction
	p.f16s(testSpectrum())
	p.f16(0.25) // frequency min
	p.f16(1.0)  // frequency max
	for i := 0; i < spectralBins; i++ {
		p.i8(-25) // a1
	}
	for i := 0; i < spectralBins; i++ {
		p.i8(50) // b1
	}
	for i := 0; i < spectralBins; i++ {
		p.i8(-100) // a2
	}
	for i := 0; i < spectralBins; i++ {
		p.i8(100) // b2
	}
	for i := 0; i < spectralBins; i++ {
		p.u8(37) // check
	}
	p.f32(47.65)   // latitude
	p.f32(-122.32) // longitude
	p.f16(12.5)    // temperature
	p.f16(30.25)   // salinity
	p.f16(3.5)     // voltage
	p.f32(testEpoch)
	if post {
		p.u32(0xDEADBEEF)
	}
	return p.b
}

// message52At packs a pre-2025 compact message observed at the given epoch
// second. The epoch must survive the float32 field exactly, so callers pick
// multiples of 128.
func message52At(epoch int64) []byte {
	b := message52(false)
	var p packer
	p.f32(float64(epoch))
	copy(b[len(b)-4:], p.b)
	return b
}

// sentinel52 packs a compact-format message whose frequency bounds are both
// unresolved.
func sentinel52() []byte {
	b := message52(false)
	// frequency min/max sit right after the 42-bin spectrum.
	off := 5 + 3*2 + spectralBins*2
	binary.LittleEndian.PutUint16(b[off:], float16.Fromfloat32(FrequencySentinel).Bits())
	binary.LittleEndian.PutUint16(b[off+2:], float16.Fromfloat32(FrequencySentinel).Bits())
	return b
}
