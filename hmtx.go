/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// hmtxTable is the raw hmtx window plus the numberOfHMetrics cached from hhea.
type hmtxTable struct {
	raw              []byte
	numberOfHMetrics uint16
}

func parseHmtx(raw []byte, numberOfHMetrics, numGlyphs uint16) (hmtxTable, error) {
	expected := 4*int(numberOfHMetrics) + 2*(int(numGlyphs)-int(numberOfHMetrics))
	if len(raw) != expected {
		return hmtxTable{}, &ParseError{
			Kind: UnexpectedTableLen, Table: tagHmtx, HasTable: true,
			Expected: expected, Actual: len(raw),
		}
	}
	return hmtxTable{raw: raw, numberOfHMetrics: numberOfHMetrics}, nil
}

// advanceAndLSB implements §4.6.
func (h hmtxTable) advanceAndLSB(glyphIdx uint16) (advance, lsb uint16, err error) {
	if glyphIdx < h.numberOfHMetrics {
		offset := int(glyphIdx) * 4
		c := newTableCursor(h.raw, tagHmtx)
		if err := c.skip(offset); err != nil {
			return 0, 0, err
		}
		if advance, err = c.readU16(); err != nil {
			return 0, 0, err
		}
		if lsb, err = c.readU16(); err != nil {
			return 0, 0, err
		}
		return advance, lsb, nil
	}

	advanceOffset := int(h.numberOfHMetrics-1) * 4
	c := newTableCursor(h.raw, tagHmtx)
	if err := c.skip(advanceOffset); err != nil {
		return 0, 0, err
	}
	if advance, err = c.readU16(); err != nil {
		return 0, 0, err
	}

	lsbOffset := int(h.numberOfHMetrics)*4 + int(glyphIdx-h.numberOfHMetrics)*2
	c2 := newTableCursor(h.raw, tagHmtx)
	if err := c2.skip(lsbOffset); err != nil {
		return 0, 0, err
	}
	if lsb, err = c2.readU16(); err != nil {
		return 0, 0, err
	}
	return advance, lsb, nil
}

// writeHmtxForGlyphs implements §4.9's hmtx rewrite, trimming the trailing
// run of glyphs that share the final advance width into lsb-only entries.
// Returns the new numberOfHMetrics.
func writeHmtxForGlyphs(glyphs []glyphWithMetrics, w *[]byte) uint16 {
	numberOfHMetrics := len(glyphs)
	for numberOfHMetrics >= 2 && glyphs[numberOfHMetrics-1].advance == glyphs[numberOfHMetrics-2].advance {
		numberOfHMetrics--
	}

	for i, g := range glyphs {
		if i < numberOfHMetrics {
			writeU16(w, g.advance)
			writeU16(w, g.lsb)
		} else {
			writeU16(w, g.lsb)
		}
	}
	return uint16(numberOfHMetrics)
}
