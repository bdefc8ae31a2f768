/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// parseMaxpGlyphCount validates the maxp version and reads numGlyphs (§4.2).
func parseMaxpGlyphCount(maxp []byte) (uint16, error) {
	c := newTableCursor(maxp, tagMaxp)
	version, err := c.readU32()
	if err != nil {
		return 0, err
	}
	if version != 0x00005000 && version != 0x00010000 {
		return 0, &ParseError{Kind: UnexpectedTableVersion, Table: tagMaxp, HasTable: true, Actual: int(version)}
	}
	return c.readU16()
}
