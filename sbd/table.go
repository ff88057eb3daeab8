package sbd

import "sort"

// Table materializes the row-oriented view: one row per decoded record,
// ordered by ascending observation time. The returned slice is a copy; the
// batch is never modified.
func (b Batch) Table() []Record {
	rows := make([]Record, len(b.Records))
	copy(rows, b.Records)
	return rows
}

// TableByBuoy materializes the joint-index variant of the table view for
// multi-instrument batches: rows grouped by buoy ID first, then by
// observation time within each buoy.
func (b Batch) TableByBuoy() []Record {
	rows := b.Table()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BuoyID != rows[j].BuoyID {
			return rows[i].BuoyID < rows[j].BuoyID
		}
		return rows[i].Datetime.Before(rows[j].Datetime)
	})
	return rows
}

// ErrorTable materializes the error rows, ordered by filename.
func (b Batch) ErrorTable() []ErrorRecord {
	rows := make([]ErrorRecord, len(b.Errors))
	copy(rows, b.Errors)
	return rows
}
