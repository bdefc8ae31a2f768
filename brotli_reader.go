/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "io"

// tableDataReader is a pull-based io.Reader over a fontWriter's table
// records, yielding each table's window of w.data concatenated in record
// order (§4.12). It tolerates table offsets that have already been shifted
// by a dataOffset (as happens after adjustData runs) by normalizing against
// the first table's offset.
type tableDataReader struct {
	w          *fontWriter
	dataOffset uint32
	tableIdx   int
	posInTable int
}

func newTableDataReader(w *fontWriter) *tableDataReader {
	var dataOffset uint32
	if len(w.tables) > 0 {
		dataOffset = w.tables[0].offset
	}
	return &tableDataReader{w: w, dataOffset: dataOffset}
}

func (r *tableDataReader) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if r.tableIdx >= len(r.w.tables) {
			if total == 0 {
				return 0, io.EOF
			}
			return total, nil
		}
		table := r.w.tables[r.tableIdx]
		adjustedOffset := int(table.offset-r.dataOffset) + r.posInTable
		end := int(table.offset-r.dataOffset) + int(table.length)
		remaining := r.w.data[adjustedOffset:end]

		n := copy(p[total:], remaining)
		total += n
		r.posInTable += n

		if r.posInTable >= int(table.length) {
			r.tableIdx++
			r.posInTable = 0
		}
	}
	return total, nil
}
