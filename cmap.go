/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "sort"

// cmapKind discriminates the two cmap subtable shapes this package reads
// and writes (§3, §4.3).
type cmapKind int

const (
	cmapSegmentDeltas cmapKind = iota
	cmapSegmentedCoverage
)

// segmentWithDelta is one entry of a format-4 subtable's parallel arrays.
type segmentWithDelta struct {
	startCode      uint16
	endCode        uint16
	idDelta        uint16
	idRangeOffset  uint16
	// segIdx is this segment's position in the arrays, needed to reproduce
	// the idRangeOffset byte-offset arithmetic in §4.3.
	segIdx int
}

// sequentialMapGroup is one entry of a format-12 subtable.
type sequentialMapGroup struct {
	startCharCode uint32
	endCharCode   uint32
	startGlyphID  uint32
}

// cmapTable is the tagged union described in §3.
type cmapTable struct {
	kind cmapKind

	segments     []segmentWithDelta
	glyphIDArray []byte
	segCount     int

	groups []sequentialMapGroup
}

// platform/encoding pairs recognized as format-4 or format-12 candidates (§4.3).
type platformEncoding struct{ platformID, encodingID uint16 }

var (
	format4Candidates  = []platformEncoding{{0, 3}, {3, 1}}
	format12Candidates = []platformEncoding{{0, 4}, {3, 10}}
)

func isCandidate(pe platformEncoding, list []platformEncoding) bool {
	for _, c := range list {
		if c == pe {
			return true
		}
	}
	return false
}

// parseCmap reads the cmap header and scans subtable selectors, parsing and
// returning the first format-4 or format-12 candidate encountered in
// directory order, whichever kind it is (§4.3). A chosen subtable that fails
// to parse fails the whole table; only an unrecognized platform/encoding
// pair is skipped. If no candidate is found, NoSupportedCmap is returned.
func parseCmap(raw []byte) (cmapTable, error) {
	base := newTableCursor(raw, tagCmap)
	version, err := base.readU16()
	if err != nil {
		return cmapTable{}, err
	}
	if version != 0 {
		return cmapTable{}, &ParseError{Kind: UnexpectedTableVersion, Table: tagCmap, HasTable: true, Actual: int(version)}
	}
	numTables, err := base.readU16()
	if err != nil {
		return cmapTable{}, err
	}

	for i := uint16(0); i < numTables; i++ {
		platformID, err := base.readU16()
		if err != nil {
			return cmapTable{}, err
		}
		encodingID, err := base.readU16()
		if err != nil {
			return cmapTable{}, err
		}
		offset, err := base.readU32()
		if err != nil {
			return cmapTable{}, err
		}
		pe := platformEncoding{platformID, encodingID}

		switch {
		case isCandidate(pe, format4Candidates):
			return parseFormat4(raw, int(offset))
		case isCandidate(pe, format12Candidates):
			return parseFormat12(raw, int(offset))
		}
	}

	return cmapTable{}, &ParseError{Kind: NoSupportedCmap, Table: tagCmap, HasTable: true}
}

func parseFormat4(raw []byte, offset int) (cmapTable, error) {
	c := newTableCursor(raw, tagCmap)
	if err := c.skip(offset); err != nil {
		return cmapTable{}, err
	}
	format, err := c.readU16()
	if err != nil {
		return cmapTable{}, err
	}
	if format != 4 {
		return cmapTable{}, &ParseError{Kind: UnexpectedTableFormat, Table: tagCmap, Offset: offset, Actual: int(format), HasTable: true}
	}
	subtableLen, err := c.readU16()
	if err != nil {
		return cmapTable{}, err
	}
	if subtableLen < 4 {
		return cmapTable{}, c.err(UnexpectedEof)
	}
	remainingLen := int(subtableLen) - 4
	c, err = c.rng(0, remainingLen)
	if err != nil {
		return cmapTable{}, err
	}

	if _, err := c.readU16(); err != nil { // language
		return cmapTable{}, err
	}
	segCountX2, err := c.readU16()
	if err != nil {
		return cmapTable{}, err
	}
	segCount := int(segCountX2) / 2
	if _, err := c.readU16(); err != nil { // searchRange
		return cmapTable{}, err
	}
	if _, err := c.readU16(); err != nil { // entrySelector
		return cmapTable{}, err
	}
	if _, err := c.readU16(); err != nil { // rangeShift
		return cmapTable{}, err
	}

	endCodes := make([]uint16, segCount)
	for i := range endCodes {
		if endCodes[i], err = c.readU16(); err != nil {
			return cmapTable{}, err
		}
	}
	if _, err := c.readU16(); err != nil { // reserved pad
		return cmapTable{}, err
	}
	startCodes := make([]uint16, segCount)
	for i := range startCodes {
		if startCodes[i], err = c.readU16(); err != nil {
			return cmapTable{}, err
		}
	}
	idDeltas := make([]uint16, segCount)
	for i := range idDeltas {
		if idDeltas[i], err = c.readU16(); err != nil {
			return cmapTable{}, err
		}
	}
	idRangeOffsets := make([]uint16, segCount)
	for i := range idRangeOffsets {
		if idRangeOffsets[i], err = c.readU16(); err != nil {
			return cmapTable{}, err
		}
	}
	glyphIDArray := append([]byte(nil), c.bytes...)

	segments := make([]segmentWithDelta, segCount)
	for i := 0; i < segCount; i++ {
		segments[i] = segmentWithDelta{
			startCode: startCodes[i], endCode: endCodes[i],
			idDelta: idDeltas[i], idRangeOffset: idRangeOffsets[i], segIdx: i,
		}
	}

	return cmapTable{kind: cmapSegmentDeltas, segments: segments, glyphIDArray: glyphIDArray, segCount: segCount}, nil
}

func parseFormat12(raw []byte, offset int) (cmapTable, error) {
	c := newTableCursor(raw, tagCmap)
	if err := c.skip(offset); err != nil {
		return cmapTable{}, err
	}
	format, err := c.readU16()
	if err != nil {
		return cmapTable{}, err
	}
	if format != 12 {
		return cmapTable{}, &ParseError{Kind: UnexpectedTableFormat, Table: tagCmap, Offset: offset, Actual: int(format), HasTable: true}
	}
	if _, err := c.readU16(); err != nil { // reserved
		return cmapTable{}, err
	}
	subtableLen, err := c.readU32()
	if err != nil {
		return cmapTable{}, err
	}
	if subtableLen < 8 {
		return cmapTable{}, c.err(UnexpectedEof)
	}
	remainingLen := int(subtableLen) - 8
	c, err = c.rng(0, remainingLen)
	if err != nil {
		return cmapTable{}, err
	}

	if _, err := c.readU32(); err != nil { // language
		return cmapTable{}, err
	}
	numGroups, err := c.readU32()
	if err != nil {
		return cmapTable{}, err
	}
	groups := make([]sequentialMapGroup, numGroups)
	for i := range groups {
		start, err := c.readU32()
		if err != nil {
			return cmapTable{}, err
		}
		end, err := c.readU32()
		if err != nil {
			return cmapTable{}, err
		}
		startGlyph, err := c.readU32()
		if err != nil {
			return cmapTable{}, err
		}
		groups[i] = sequentialMapGroup{startCharCode: start, endCharCode: end, startGlyphID: startGlyph}
	}
	return cmapTable{kind: cmapSegmentedCoverage, groups: groups}, nil
}

// mapChar implements §4.3's lookup algorithms.
func (t cmapTable) mapChar(ch rune) (uint16, error) {
	switch t.kind {
	case cmapSegmentDeltas:
		if ch > 0xFFFF {
			return 0, &MapError{Kind: CharTooLarge}
		}
		c := uint16(ch)
		segs := t.segments
		i := sort.Search(len(segs), func(i int) bool { return segs[i].endCode >= c })
		if i == len(segs) || segs[i].startCode > c {
			return 0, nil
		}
		seg := segs[i]
		if seg.idRangeOffset == 0 {
			return seg.idDelta + c, nil
		}
		byteOffset := 2*seg.segIdx + int(seg.idRangeOffset) + 2*int(c-seg.startCode)
		if byteOffset < 2*t.segCount {
			return 0, &MapError{Kind: InvalidOffset}
		}
		glyphOffset := byteOffset - 2*t.segCount
		if glyphOffset+2 > len(t.glyphIDArray) {
			return 0, &MapError{Kind: InvalidOffset}
		}
		glyphID := uint16(t.glyphIDArray[glyphOffset])<<8 | uint16(t.glyphIDArray[glyphOffset+1])
		return seg.idDelta + glyphID, nil
	default:
		c := uint32(ch)
		groups := t.groups
		i := sort.Search(len(groups), func(i int) bool { return groups[i].endCharCode >= c })
		if i == len(groups) || groups[i].startCharCode > c {
			return 0, nil
		}
		g := groups[i]
		return uint16(g.startGlyphID + (c - g.startCharCode)), nil
	}
}
