package sbd

import (
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Batch holds every record aggregated from one bundle of SBD messages.
// Records are sorted by ascending observation time, Errors by filename.
// A Batch is immutable once built; the materializer views never modify it.
type Batch struct {
	Records []Record
	Errors  []ErrorRecord
}

// Collect classifies and decodes a bundle of SBD messages, keyed by
// filename, into a Batch. One bad message never aborts the rest: an
// ErrorRecord is emitted for every input, carrying the opaque payload for
// non-telemetry messages or the decode failure as text, and left empty for
// messages that decoded cleanly.
//
// Filenames are visited in lexical order so that records with equal
// timestamps land in a deterministic order; the time sort is stable and
// compares nothing but the timestamp.
func Collect(logger log.Logger, files map[string][]byte) Batch {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var batch Batch
	for _, name := range names {
		msg := NewRawMessage(name, files[name])
		errRec := ErrorRecord{Filename: name}

		if cls := msg.Classify(); cls.Decodable {
			rec, err := Decode(msg, cls.SensorType)
			if err != nil {
				errRec.Diagnostic = []byte(err.Error())
			} else {
				batch.Records = append(batch.Records, rec)
			}
		} else {
			errRec.Diagnostic = msg.Bytes()
		}
		batch.Errors = append(batch.Errors, errRec)
	}

	sort.SliceStable(batch.Records, func(i, j int) bool {
		return batch.Records[i].Datetime.Before(batch.Records[j].Datetime)
	})
	sort.SliceStable(batch.Errors, func(i, j int) bool {
		return batch.Errors[i].Filename < batch.Errors[j].Filename
	})

	if len(batch.Records) == 0 {
		// Expected when a query window holds no data; worth a warning but
		// never an error.
		level.Warn(logger).Log("msg", "no decodable messages in batch", "files", len(files))
	}

	return batch
}
