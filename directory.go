/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// directoryRecord is one entry of the sfnt table directory (§4.2).
type directoryRecord struct {
	tag      TableTag
	checksum uint32
	offset   uint32
	length   uint32
}

// parseDirectory reads the sfnt header and table directory, verifies every
// table's checksum and alignment, and returns the raw byte window for every
// table in the directory keyed by tag. Tables with tags this package does not
// use are checked and returned like the others; callers never look them up.
func parseDirectory(data []byte) (map[TableTag][]byte, error) {
	c := newCursor(data)
	version, err := c.readU32()
	if err != nil {
		return nil, err
	}
	if version != sfntVersion {
		return nil, parseErr(UnexpectedFontVersion, 0)
	}
	numTables, err := c.readU16()
	if err != nil {
		return nil, err
	}
	if err := c.skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return nil, err
	}

	tables := make(map[TableTag][]byte, numTables)

	for i := uint16(0); i < numTables; i++ {
		tagBytes, err := c.readByteArray(4)
		if err != nil {
			return nil, err
		}
		tag := newTableTag(tagBytes)
		checksum, err := c.readU32()
		if err != nil {
			return nil, err
		}
		offset, err := c.readU32()
		if err != nil {
			return nil, err
		}
		length, err := c.readU32()
		if err != nil {
			return nil, err
		}

		if offset%4 != 0 {
			return nil, parseErrTable(UnalignedTable, int(offset), tag)
		}
		end := uint64(offset) + uint64(length)
		if end > uint64(len(data)) {
			return nil, parseErrTable(RangeOutOfBounds, int(offset), tag)
		}
		window := data[offset:end]

		if err := verifyTableChecksum(tag, window, checksum); err != nil {
			return nil, err
		}

		tables[tag] = window
	}

	for _, tag := range requiredTags {
		if _, ok := tables[tag]; !ok {
			return nil, missingTableErr(tag)
		}
	}

	return tables, nil
}

// verifyTableChecksum implements §4.2's per-table checksum check, special
// casing head's checksumAdjustment field.
func verifyTableChecksum(tag TableTag, window []byte, want uint32) error {
	sum := tableChecksum(window)
	if tag == tagHead {
		if len(window) < headChecksumOffset+4 {
			return parseErrTable(UnexpectedEof, headChecksumOffset, tag)
		}
		adjustment := tableChecksum(window[headChecksumOffset : headChecksumOffset+4])
		sum -= adjustment
	}
	if sum != want {
		return &ParseError{
			Kind: Checksum, Table: tag, HasTable: true,
			Expected: int(want), Actual: int(sum),
		}
	}
	return nil
}
