/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "encoding/binary"

// locaFormat selects whether loca stores 16-bit (halved) or 32-bit glyph offsets.
type locaFormat int

const (
	locaShort locaFormat = iota
	locaLong
)

// locaFormatOffset is the byte offset of indexToLocFormat within head.
const locaFormatOffset = 50

// parseHeadLocaFormat validates the head table's version and extracts
// indexToLocFormat (§4.2).
func parseHeadLocaFormat(head []byte) (locaFormat, error) {
	c := newTableCursor(head, tagHead)
	version, err := c.readU32()
	if err != nil {
		return 0, err
	}
	if version != sfntVersion {
		return 0, &ParseError{Kind: UnexpectedTableVersion, Table: tagHead, HasTable: true, Actual: int(version)}
	}
	if len(head) < locaFormatOffset+2 {
		return 0, c.err(UnexpectedEof)
	}
	raw := binary.BigEndian.Uint16(head[locaFormatOffset:])
	switch raw {
	case 0:
		return locaShort, nil
	case 1:
		return locaLong, nil
	default:
		return 0, &ParseError{Kind: UnexpectedTableFormat, Table: tagHead, HasTable: true, Offset: locaFormatOffset, Actual: int(raw)}
	}
}
