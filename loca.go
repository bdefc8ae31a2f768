/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// locaTable is the raw loca window plus its format (derived from head).
type locaTable struct {
	format locaFormat
	bytes  []byte
}

func (f locaFormat) bytesPerOffset() int {
	if f == locaLong {
		return 4
	}
	return 2
}

func parseLoca(format locaFormat, glyphCount uint16, raw []byte) (locaTable, error) {
	expected := format.bytesPerOffset() * (int(glyphCount) + 1)
	if len(raw) != expected {
		return locaTable{}, &ParseError{
			Kind: UnexpectedTableLen, Table: tagLoca, HasTable: true,
			Expected: expected, Actual: len(raw),
		}
	}
	return locaTable{format: format, bytes: raw}, nil
}

// glyphRange implements §4.5.
func (l locaTable) glyphRange(glyphIdx uint16) (start, end int, err error) {
	idx := int(glyphIdx)
	switch l.format {
	case locaShort:
		c := newTableCursor(l.bytes, tagLoca)
		if err = c.skip(idx * 2); err != nil {
			return 0, 0, err
		}
		s, err := c.readU16()
		if err != nil {
			return 0, 0, err
		}
		e, err := c.readU16()
		if err != nil {
			return 0, 0, err
		}
		return int(s) * 2, int(e) * 2, nil
	default:
		c := newTableCursor(l.bytes, tagLoca)
		if err = c.skip(idx * 4); err != nil {
			return 0, 0, err
		}
		s, err := c.readU32()
		if err != nil {
			return 0, 0, err
		}
		e, err := c.readU32()
		if err != nil {
			return 0, 0, err
		}
		return int(s), int(e), nil
	}
}

// writeLoca implements §4.9's loca format selection and emission. Returns
// the chosen format.
func writeLoca(locations []int, w *[]byte) locaFormat {
	allEven := true
	for _, loc := range locations {
		if loc%2 != 0 {
			allEven = false
			break
		}
	}
	inBounds := len(locations) == 0 || locations[len(locations)-1] <= 0xFFFF*2
	if allEven && inBounds {
		for _, loc := range locations {
			writeU16(w, uint16(loc/2))
		}
		return locaShort
	}
	for _, loc := range locations {
		writeU32(w, uint32(loc))
	}
	return locaLong
}
