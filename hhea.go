/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// hheaExpectedLen is the fixed length of the hhea table (18 big-endian words).
const hheaExpectedLen = 36

// hheaTable is the raw hhea window plus its cached numberOfHMetrics field.
type hheaTable struct {
	raw              []byte
	numberOfHMetrics uint16
}

func parseHhea(raw []byte) (hheaTable, error) {
	if len(raw) != hheaExpectedLen {
		return hheaTable{}, &ParseError{
			Kind: UnexpectedTableLen, Table: tagHhea, HasTable: true,
			Expected: hheaExpectedLen, Actual: len(raw),
		}
	}
	c := newTableCursor(raw, tagHhea)
	if err := c.skip(hheaExpectedLen - 2); err != nil {
		return hheaTable{}, err
	}
	numberOfHMetrics, err := c.readU16()
	if err != nil {
		return hheaTable{}, err
	}
	return hheaTable{raw: raw, numberOfHMetrics: numberOfHMetrics}, nil
}

// write emits the original 34 bytes verbatim followed by a (possibly
// rewritten) numberOfHMetrics, per §4.9.
func (h hheaTable) write(w *[]byte, numberOfHMetrics uint16) {
	*w = append(*w, h.raw[:hheaExpectedLen-2]...)
	writeU16(w, numberOfHMetrics)
}
