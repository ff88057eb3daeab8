// Package sbd decodes microSWIFT short burst data (SBD) telemetry messages
// and aggregates them into time-sorted batches.
//
// Each message is a short fixed-layout binary buffer produced by the buoy's
// onboard instrument. Byte 0 is a payload marker: messages that carry it are
// decodable telemetry whose sensor type code sits in byte 1; anything else
// is treated as opaque instrument diagnostics and kept verbatim.
package sbd

import "bytes"

// payloadMarker is the leading byte of every decodable telemetry payload.
const payloadMarker = '7'

// RawMessage is one SBD message as received: the originating filename plus
// the message bytes with trailing nulls stripped. It is read-only after
// construction.
type RawMessage struct {
	Filename string
	content  []byte
}

// NewRawMessage builds a RawMessage, stripping the trailing null padding the
// transport appends.
func NewRawMessage(filename string, content []byte) RawMessage {
	return RawMessage{
		Filename: filename,
		content:  bytes.TrimRight(content, "\x00"),
	}
}

// Bytes returns the stripped message content. Callers must not modify it.
func (m RawMessage) Bytes() []byte {
	return m.content
}

// Classification is the result of inspecting a message's leading bytes.
// When Decodable is false the whole buffer is an opaque diagnostic payload.
type Classification struct {
	Decodable  bool
	SensorType uint8
}

// Classify inspects the first two bytes of the message. A non-marker first
// byte (or a buffer too short to carry a sensor type code) classifies the
// message as opaque. Unknown sensor type codes are NOT rejected here; the
// registry lookup during decode reports them, so a malformed message turns
// into an error record instead of aborting the batch.
func (m RawMessage) Classify() Classification {
	if len(m.content) < 2 || m.content[0] != payloadMarker {
		return Classification{}
	}
	return Classification{Decodable: true, SensorType: m.content[1]}
}
