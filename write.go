/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "sort"

// tableRecord is a table's position in fontWriter.data plus the metadata
// the sfnt/WOFF2 directories need to describe it (§4.9).
type tableRecord struct {
	tag      TableTag
	checksum uint32
	offset   uint32
	length   uint32
}

// fontWriter accumulates table bodies, in the fixed write order §4.9
// mandates, into one aligned byte buffer.
type fontWriter struct {
	tables []tableRecord
	data   []byte
}

// writeTable appends f's output, 4-byte pads it, computes its checksum, and
// records a tableRecord with an offset still relative to w.data.
func (w *fontWriter) writeTable(tag TableTag, f func(*[]byte)) {
	offset := uint32(len(w.data))
	var buf []byte
	f(&buf)
	length := uint32(len(buf))
	checksum := tableChecksum(buf)
	w.data = append(w.data, buf...)
	padTo4(&w.data)
	w.tables = append(w.tables, tableRecord{tag: tag, checksum: checksum, offset: offset, length: length})
}

func (w *fontWriter) writeRawTable(tag TableTag, raw []byte) {
	if raw == nil {
		return
	}
	w.writeTable(tag, func(b *[]byte) { *b = append(*b, raw...) })
}

// buildTables runs every per-table rewrite from §4.9 against s, in the
// mandated write order, and returns the populated writer. The new
// numberOfHMetrics and locaFormat are passed on internally to the hhea and
// head rewrites.
func (s *FontSubset) buildTables() *fontWriter {
	w := &fontWriter{}
	f := s.font

	cm := buildCmap(s.charMap)
	w.writeTable(tagCmap, func(b *[]byte) { writeCmap(cm, b) })

	w.writeRawTable(tagCvt, f.cvt)
	w.writeRawTable(tagFpgm, f.fpgm)

	var newNumberOfHMetrics uint16
	w.writeTable(tagHmtx, func(b *[]byte) {
		newNumberOfHMetrics = writeHmtxForGlyphs(s.glyphs, b)
	})

	w.writeTable(tagHhea, func(b *[]byte) { f.hhea.write(b, newNumberOfHMetrics) })

	w.writeTable(tagMaxp, func(b *[]byte) { writeMaxp(f.maxp, uint16(len(s.glyphs)), b) })

	w.writeRawTable(tagName, f.name)
	w.writeRawTable(tagOS2, f.os2)

	w.writeTable(tagPost, func(b *[]byte) { writePost(f.post, b) })

	w.writeRawTable(tagPrep, f.prep)

	var locations []int
	w.writeTable(tagGlyf, func(b *[]byte) {
		locations = append(locations, 0)
		for _, gm := range s.glyphs {
			gm.g.write(b)
			padTo2WithinTable(b)
			locations = append(locations, len(*b))
		}
	})

	var newLocaFormat locaFormat
	w.writeTable(tagLoca, func(b *[]byte) { newLocaFormat = writeLoca(locations, b) })

	w.writeTable(tagHead, func(b *[]byte) { writeHead(f.head, newLocaFormat, b) })

	return w
}

// padTo2WithinTable pads an in-progress glyf buffer so each glyph entry ends
// on a word boundary, matching how glyph entries are laid out in a source
// font (§4.9's loca short-format selection assumes even glyph offsets).
func padTo2WithinTable(b *[]byte) {
	if len(*b)%2 != 0 {
		*b = append(*b, 0)
	}
}

func writeMaxp(original []byte, numGlyphs uint16, w *[]byte) {
	*w = append(*w, original[:4]...)
	writeU16(w, numGlyphs)
	*w = append(*w, original[6:]...)
}

func writePost(original []byte, w *[]byte) {
	writeU32(w, 0x00030000)
	*w = append(*w, original[4:32]...)
}

func writeHead(original []byte, newLocaFormat locaFormat, w *[]byte) {
	*w = append(*w, original[:8]...)
	writeU32(w, 0) // checksumAdjustment placeholder, patched by adjustData
	*w = append(*w, original[12:50]...)
	if newLocaFormat == locaLong {
		writeU16(w, 1)
	} else {
		writeU16(w, 0)
	}
	*w = append(*w, original[52:]...)
}

func writeCmap(cm cmapTable, w *[]byte) {
	switch cm.kind {
	case cmapSegmentDeltas:
		writeU16(w, 0) // version
		writeU16(w, 1) // numTables
		writeU16(w, 0) // platformID
		writeU16(w, 3) // encodingID
		writeU32(w, 12)
		writeFormat4(cm, w)
	default:
		writeU16(w, 0)
		writeU16(w, 1)
		writeU16(w, 0)
		writeU16(w, 4)
		writeU32(w, 12)
		writeFormat12(cm, w)
	}
}

func log2Floor(v int) int {
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}

func writeFormat4(cm cmapTable, w *[]byte) {
	segCount := len(cm.segments)
	searchRangeExp := log2Floor(segCount)
	searchRange := uint16(2 << searchRangeExp)
	entrySelector := uint16(searchRangeExp)
	rangeShift := uint16(2*segCount) - searchRange

	writeU16(w, 4)                       // format
	lengthPos := len(*w)
	writeU16(w, 0)                       // length placeholder
	writeU16(w, 0)                       // language
	writeU16(w, uint16(2*segCount))      // segCountX2
	writeU16(w, searchRange)
	writeU16(w, entrySelector)
	writeU16(w, rangeShift)

	for _, s := range cm.segments {
		writeU16(w, s.endCode)
	}
	writeU16(w, 0) // reserved pad
	for _, s := range cm.segments {
		writeU16(w, s.startCode)
	}
	for _, s := range cm.segments {
		writeU16(w, s.idDelta)
	}
	for _, s := range cm.segments {
		writeU16(w, s.idRangeOffset)
	}

	length := uint16(len(*w) - (lengthPos - 2))
	patchU16At(*w, lengthPos, length)
}

func writeFormat12(cm cmapTable, w *[]byte) {
	writeU16(w, 12) // format
	writeU16(w, 0)  // reserved
	lengthPos := len(*w)
	writeU32(w, 0) // length placeholder
	writeU32(w, 0) // language
	writeU32(w, uint32(len(cm.groups)))
	for _, g := range cm.groups {
		writeU32(w, g.startCharCode)
		writeU32(w, g.endCharCode)
		writeU32(w, g.startGlyphID)
	}
	length := uint32(len(*w) - (lengthPos - 4))
	patchU32At(*w, lengthPos, length)
}

func patchU16At(b []byte, pos int, v uint16) {
	b[pos] = byte(v >> 8)
	b[pos+1] = byte(v)
}

func patchU32At(b []byte, pos int, v uint32) {
	b[pos] = byte(v >> 24)
	b[pos+1] = byte(v >> 16)
	b[pos+2] = byte(v >> 8)
	b[pos+3] = byte(v)
}

func sfntHeader(numTables int) []byte {
	searchRangeExp := log2Floor(numTables)
	searchRange := uint16(16 << searchRangeExp)
	entrySelector := uint16(searchRangeExp)
	rangeShift := uint16(16*numTables) - searchRange

	var header []byte
	writeU32(&header, sfntVersion)
	writeU16(&header, uint16(numTables))
	writeU16(&header, searchRange)
	writeU16(&header, entrySelector)
	writeU16(&header, rangeShift)
	return header
}

// adjustData implements §4.9's offset adjustment and file checksum: table
// offsets gain dataOffset, the file checksum sums the header checksum plus
// each table's selfChecksum+checksum (in original insertion order), and the
// resulting checksumAdjustment is patched directly into w.data.
func (w *fontWriter) adjustData(header []byte) {
	dataOffset := uint32(12 + 16*len(w.tables))

	fileChecksum := tableChecksum(header)
	for i := range w.tables {
		w.tables[i].offset += dataOffset
		r := w.tables[i]
		selfChecksum := tagAsU32(r.tag) + r.checksum + r.offset + r.length
		fileChecksum += selfChecksum + r.checksum
	}
	checksumAdjustment := sfntChecksum - fileChecksum

	for _, r := range w.tables {
		if r.tag == tagHead {
			pos := int(r.offset-dataOffset) + headChecksumOffset
			patchU32At(w.data, pos, checksumAdjustment)
			break
		}
	}
}

// assembleSfnt implements OpenType emission: tag-sorted directory followed
// by the (already offset-adjusted) table data.
func assembleSfnt(w *fontWriter) []byte {
	header := sfntHeader(len(w.tables))
	w.adjustData(header)

	sorted := append([]tableRecord(nil), w.tables...)
	sort.Slice(sorted, func(i, j int) bool { return string(sorted[i].tag[:]) < string(sorted[j].tag[:]) })

	out := append([]byte(nil), header...)
	for _, r := range sorted {
		out = append(out, r.tag[:]...)
		writeU32(&out, r.checksum)
		writeU32(&out, r.offset)
		writeU32(&out, r.length)
	}
	out = append(out, w.data...)
	return out
}

func tagAsU32(t TableTag) uint32 {
	return uint32(t[0])<<24 | uint32(t[1])<<16 | uint32(t[2])<<8 | uint32(t[3])
}
