package sbd

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// Decode unpacks a classified message according to the layout registered
// for its sensor type code. It is a pure function: the message is validated
// against the layout's exact expected size before any field is read, and a
// failure leaves no partial result.
func Decode(m RawMessage, code uint8) (Record, error) {
	st, ok := sensorTypes[code]
	if !ok {
		return Record{}, UnsupportedSensorTypeError{Code: code}
	}
	layout := selectLayout(st.layouts, len(m.Bytes()))
	if expected := layout.Size(); expected != len(m.Bytes()) {
		return Record{}, SizeMismatchError{Expected: expected, Actual: len(m.Bytes())}
	}
	return st.decode(m.Filename, m.Bytes())
}

// cursor walks a message buffer in strict field order. Bounds are
// guaranteed by the size check in Decode, so reads never fail; the guard
// below only protects against a layout/decoder disagreement, which is a
// programming error.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) take(n int) []byte {
	if c.off+n > len(c.buf) {
		panic("sbd: decode past end of validated buffer")
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b
}

func (c *cursor) u8() uint8   { return c.take(1)[0] }
func (c *cursor) i8() int8    { return int8(c.take(1)[0]) }
func (c *cursor) i16() int16  { return int16(binary.LittleEndian.Uint16(c.take(2))) }
func (c *cursor) i32() int32  { return int32(binary.LittleEndian.Uint32(c.take(4))) }
func (c *cursor) u32() uint32 { return binary.LittleEndian.Uint32(c.take(4)) }

func (c *cursor) f32() float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(c.take(4))))
}

func (c *cursor) f16() float64 {
	return float64(float16.Frombits(binary.LittleEndian.Uint16(c.take(2))).Float32())
}

func (c *cursor) f32s(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = c.f32()
	}
	return out
}

func (c *cursor) f16s(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = c.f16()
	}
	return out
}

// i8s reads n signed bytes and divides each by div to recover physical
// units from the quantized wire value.
func (c *cursor) i8s(n int, div float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(c.i8()) / div
	}
	return out
}

func (c *cursor) u8s(n int, div float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(c.u8()) / div
	}
	return out
}
