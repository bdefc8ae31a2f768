/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// coalesce builds SegmentedCoverage groups from charMap by a single forward
// pass, extending the current group whenever the next (ch, gid) pair
// continues it contiguously (§4.8). charMap must already be sorted strictly
// ascending by ch, the precondition established by Font.Subset.
func coalesce(charMap []charGlyphPair) []sequentialMapGroup {
	if len(charMap) == 0 {
		return nil
	}

	groups := make([]sequentialMapGroup, 0, len(charMap))
	cur := sequentialMapGroup{
		startCharCode: uint32(charMap[0].ch),
		endCharCode:   uint32(charMap[0].ch),
		startGlyphID:  uint32(charMap[0].glyph),
	}

	for _, pair := range charMap[1:] {
		ch := uint32(pair.ch)
		gid := uint32(pair.glyph)
		extends := ch == cur.endCharCode+1 && gid == cur.startGlyphID+(ch-cur.startCharCode)
		if extends {
			cur.endCharCode = ch
			continue
		}
		groups = append(groups, cur)
		cur = sequentialMapGroup{startCharCode: ch, endCharCode: ch, startGlyphID: gid}
	}
	groups = append(groups, cur)
	return groups
}

// fitsFormat4 reports whether every group's codepoints and glyph IDs fit in
// a format-4 subtable: BMP-only code points, and a u16 idDelta/glyphIdArray
// representation (no group may require a 32-bit glyph id beyond u16 range).
func fitsFormat4(groups []sequentialMapGroup) bool {
	for _, g := range groups {
		if g.endCharCode > 0xFFFF {
			return false
		}
		lastGlyph := g.startGlyphID + (g.endCharCode - g.startCharCode)
		if lastGlyph > 0xFFFF {
			return false
		}
	}
	return true
}

// buildCmap implements §4.8's coalescing + format-selection algorithm,
// producing the cmapTable this package's writer will emit.
func buildCmap(charMap []charGlyphPair) cmapTable {
	groups := coalesce(charMap)

	lastCharOK := len(charMap) == 0 || uint32(charMap[len(charMap)-1].ch) < 0xFFFF
	if lastCharOK && fitsFormat4(groups) {
		segments := make([]segmentWithDelta, 0, len(groups)+1)
		for i, g := range groups {
			startCode := uint16(g.startCharCode)
			endCode := uint16(g.endCharCode)
			idDelta := uint16(g.startGlyphID) - startCode
			segments = append(segments, segmentWithDelta{
				startCode: startCode, endCode: endCode, idDelta: idDelta, idRangeOffset: 0, segIdx: i,
			})
		}
		segments = append(segments, segmentWithDelta{
			startCode: 0xFFFF, endCode: 0xFFFF, idDelta: 1, idRangeOffset: 0, segIdx: len(segments),
		})
		return cmapTable{kind: cmapSegmentDeltas, segments: segments, segCount: len(segments)}
	}

	return cmapTable{kind: cmapSegmentedCoverage, groups: groups}
}
