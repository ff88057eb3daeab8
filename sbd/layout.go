package sbd

// FieldKind identifies the wire encoding of one layout field. All fields are
// little-endian.
type FieldKind int

const (
	Char FieldKind = iota
	Int8
	Uint8
	Int16
	Int32
	Uint32
	Float16
	Float32
)

var kindWidth = map[FieldKind]int{
	Char:    1,
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Int32:   4,
	Uint32:  4,
	Float16: 2,
	Float32: 4,
}

// Width returns the encoded size of the kind in bytes.
func (k FieldKind) Width() int {
	return kindWidth[k]
}

// Field is one entry of a wire layout: a named value, or a fixed-length
// array of Count values when Count > 1.
type Field struct {
	Name  string
	Kind  FieldKind
	Count int
}

func (f Field) width() int {
	n := f.Count
	if n < 1 {
		n = 1
	}
	return n * f.Kind.Width()
}

// Layout is the ordered field sequence for one sensor type revision. It is
// immutable after registration; the expected message size comes from the
// layout alone, never from the data.
type Layout []Field

// Size returns the exact byte count a message with this layout must have.
func (l Layout) Size() int {
	total := 0
	for _, f := range l {
		total += f.width()
	}
	return total
}

func array(name string, kind FieldKind, count int) Field {
	return Field{Name: name, Kind: kind, Count: count}
}

func scalar(name string, kind FieldKind) Field {
	return Field{Name: name, Kind: kind, Count: 1}
}

// selectLayout picks the candidate layout whose size matches the message
// length. Sensor type 52 has two wire variants that differ only in total
// size; there is no embedded sub-version byte, so length is the only
// discriminator. Falls back to the first candidate so the caller reports a
// size mismatch against the primary layout.
func selectLayout(candidates []Layout, length int) Layout {
	for _, l := range candidates {
		if l.Size() == length {
			return l
		}
	}
	return candidates[0]
}
