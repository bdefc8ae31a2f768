/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "testing"

// synthFont hand-assembles a minimal, correctly checksummed sfnt byte buffer
// for use as test input. No binary font fixtures are available in this
// environment, so tests exercise the parser against fonts built here rather
// than against a real TTF.
type synthFont struct {
	tables map[string][]byte
	order  []string
}

func newSynthFont() *synthFont {
	return &synthFont{tables: map[string][]byte{}}
}

func (s *synthFont) set(tag string, data []byte) {
	if _, ok := s.tables[tag]; !ok {
		s.order = append(s.order, tag)
	}
	s.tables[tag] = data
}

// build assembles the sfnt header, table directory, and table data, computes
// every per-table checksum and the file-level checksumAdjustment exactly as
// §4.2/§4.9 describe, and returns the finished byte buffer.
func (s *synthFont) build(t *testing.T) []byte {
	t.Helper()

	type rec = struct {
		tag    string
		data   []byte
		offset int
	}
	recs := make([]rec, 0, len(s.order))
	var body []byte
	for _, tag := range s.order {
		data := s.tables[tag]
		offset := len(body)
		body = append(body, data...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
		recs = append(recs, rec{tag: tag, data: data, offset: offset})
	}

	numTables := len(recs)
	dataOffset := 12 + 16*numTables

	var out []byte
	writeU32(&out, sfntVersion)
	writeU16(&out, uint16(numTables))
	writeU16(&out, 0)
	writeU16(&out, 0)
	writeU16(&out, 0)

	for _, r := range recs {
		out = append(out, []byte(r.tag)...)
		checksum := tableChecksum(r.data)
		writeU32(&out, checksum)
		writeU32(&out, uint32(dataOffset+r.offset))
		writeU32(&out, uint32(len(r.data)))
	}
	out = append(out, body...)

	fixupChecksumAdjustment(t, out, recs, dataOffset)
	return out
}

// fixupChecksumAdjustment patches head's checksumAdjustment field so the
// whole file satisfies the §4.2/§8 sum-of-words invariant.
func fixupChecksumAdjustment(t *testing.T, out []byte, recs []struct {
	tag    string
	data   []byte
	offset int
}, dataOffset int) {
	t.Helper()
	var headOffset int = -1
	for _, r := range recs {
		if r.tag == "head" {
			headOffset = dataOffset + r.offset
		}
	}
	if headOffset < 0 {
		return
	}
	fileChecksum := tableChecksum(out)
	adjustment := sfntChecksum - fileChecksum
	patchU32At(out, headOffset+headChecksumOffset, adjustment)
}

func u16b(v uint16) []byte { var b []byte; writeU16(&b, v); return b }
func u32b(v uint32) []byte { var b []byte; writeU32(&b, v); return b }

// directoryEntry locates tag's table directory record within a built sfnt
// buffer, returning (recordOffset, tableOffset, tableLength).
func directoryEntry(t *testing.T, data []byte, tag string) (recordOffset, tableOffset, tableLength int) {
	t.Helper()
	numTables := int(uint16(data[4])<<8 | uint16(data[5]))
	for i := 0; i < numTables; i++ {
		rec := 12 + i*16
		if string(data[rec:rec+4]) == tag {
			off := int(uint32(data[rec+8])<<24 | uint32(data[rec+9])<<16 | uint32(data[rec+10])<<8 | uint32(data[rec+11]))
			length := int(uint32(data[rec+12])<<24 | uint32(data[rec+13])<<16 | uint32(data[rec+14])<<8 | uint32(data[rec+15]))
			return rec, off, length
		}
	}
	t.Fatalf("table %q not found", tag)
	return 0, 0, 0
}

// mutateTableAndFixChecksums applies mutate to tag's bytes in place, then
// recomputes that table's directory checksum and the whole-file
// checksumAdjustment, so a test can corrupt a specific field without also
// tripping an (unrelated) checksum mismatch.
func mutateTableAndFixChecksums(t *testing.T, data []byte, tag string, mutate func([]byte)) {
	t.Helper()
	recOffset, tableOffset, tableLength := directoryEntry(t, data, tag)
	mutate(data[tableOffset : tableOffset+tableLength])

	newChecksum := tableChecksum(data[tableOffset : tableOffset+tableLength])
	if tag == "head" {
		adjustment := tableChecksum(data[tableOffset+headChecksumOffset : tableOffset+headChecksumOffset+4])
		newChecksum -= adjustment
	}
	patchU32At(data, recOffset+4, newChecksum)

	_, headOffset, _ := directoryEntry(t, data, "head")
	patchU32At(data, headOffset+headChecksumOffset, 0)
	fileChecksum := tableChecksum(data)
	patchU32At(data, headOffset+headChecksumOffset, sfntChecksum-fileChecksum)
}

// buildHead returns a minimal 54-byte head table with indexToLocFormat=0 (Short).
func buildHead() []byte {
	var b []byte
	writeU32(&b, sfntVersion)         // version
	writeU32(&b, 0x00010000)          // fontRevision
	writeU32(&b, 0)                   // checksumAdjustment (patched later)
	writeU32(&b, 0x5F0F3CF5)          // magicNumber
	writeU16(&b, 0)                   // flags
	writeU16(&b, 1000)                // unitsPerEm
	b = append(b, make([]byte, 16)...) // created, modified (2 x int64)
	writeU16(&b, 0)                   // xMin
	writeU16(&b, 0)                   // yMin
	writeU16(&b, 1000)                // xMax
	writeU16(&b, 1000)                // yMax
	writeU16(&b, 0)                   // macStyle
	writeU16(&b, 8)                   // lowestRecPPEM
	writeU16(&b, 2)                   // fontDirectionHint
	writeU16(&b, 0)                   // indexToLocFormat (Short)
	writeU16(&b, 0)                   // glyphDataFormat
	return b
}

func buildMaxp(numGlyphs uint16) []byte {
	var b []byte
	writeU32(&b, 0x00005000)
	writeU16(&b, numGlyphs)
	return b
}

func buildHhea(numberOfHMetrics uint16) []byte {
	var b []byte
	b = append(b, make([]byte, 34)...)
	writeU16(&b, numberOfHMetrics)
	return b
}

func buildHmtx(advances []uint16, numberOfHMetrics int) []byte {
	var b []byte
	for i, adv := range advances {
		if i < numberOfHMetrics {
			writeU16(&b, adv)
			writeU16(&b, 0)
		} else {
			writeU16(&b, 0)
		}
	}
	return b
}

func buildLocaShort(glyphLens []int) []byte {
	var b []byte
	cum := 0
	writeU16(&b, uint16(cum/2))
	for _, l := range glyphLens {
		cum += l
		writeU16(&b, uint16(cum/2))
	}
	return b
}

func buildGlyf(glyphs [][]byte) []byte {
	var b []byte
	for _, g := range glyphs {
		b = append(b, g...)
	}
	return b
}

// emptySimpleGlyph is the smallest legal "Simple" glyph payload this package
// treats as opaque: numberOfContours = 0, no further data.
func emptySimpleGlyph() []byte { return u16b(0) }

// buildCmapFormat4 assembles a single-subtable format-4 cmap mapping each
// (char, glyph) pair as its own one-character segment, terminated by the
// required 0xFFFF sentinel.
func buildCmapFormat4(pairs []struct {
	ch    uint16
	glyph uint16
}) []byte {
	segments := make([]segmentWithDelta, 0, len(pairs)+1)
	for i, p := range pairs {
		segments = append(segments, segmentWithDelta{
			startCode: p.ch, endCode: p.ch, idDelta: p.glyph - p.ch, idRangeOffset: 0, segIdx: i,
		})
	}
	segments = append(segments, segmentWithDelta{startCode: 0xFFFF, endCode: 0xFFFF, idDelta: 1, idRangeOffset: 0, segIdx: len(segments)})

	var sub []byte
	searchRangeExp := log2Floor(len(segments))
	writeU16(&sub, 4)
	lengthPos := len(sub)
	writeU16(&sub, 0)
	writeU16(&sub, 0)
	writeU16(&sub, uint16(2*len(segments)))
	writeU16(&sub, uint16(2<<searchRangeExp))
	writeU16(&sub, uint16(searchRangeExp))
	writeU16(&sub, uint16(2*len(segments))-uint16(2<<searchRangeExp))
	for _, s := range segments {
		writeU16(&sub, s.endCode)
	}
	writeU16(&sub, 0)
	for _, s := range segments {
		writeU16(&sub, s.startCode)
	}
	for _, s := range segments {
		writeU16(&sub, s.idDelta)
	}
	for _, s := range segments {
		writeU16(&sub, s.idRangeOffset)
	}
	length := uint16(len(sub) - (lengthPos - 2))
	patchU16At(sub, lengthPos, length)

	var table []byte
	writeU16(&table, 0)
	writeU16(&table, 1)
	writeU16(&table, 0)
	writeU16(&table, 3)
	writeU32(&table, 12)
	table = append(table, sub...)
	return table
}

// buildBasicFont returns a 2-glyph font ('A' -> glyph 1).
func buildBasicFont(t *testing.T) []byte {
	t.Helper()
	f := newSynthFont()
	f.set("cmap", buildCmapFormat4([]struct {
		ch    uint16
		glyph uint16
	}{{ch: 'A', glyph: 1}}))
	f.set("head", buildHead())
	f.set("hhea", buildHhea(2))
	f.set("maxp", buildMaxp(2))
	f.set("hmtx", buildHmtx([]uint16{0, 600}, 2))
	f.set("loca", buildLocaShort([]int{0, 2}))
	f.set("glyf", buildGlyf([][]byte{{}, emptySimpleGlyph()}))
	f.set("name", []byte{})
	f.set("OS/2", []byte{})
	f.set("post", make([]byte, 32))
	return f.build(t)
}
