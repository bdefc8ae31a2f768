/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import (
	"log/slog"
	"os"
)

// Font is a parsed, validated view over an immutable OpenType (sfnt) byte
// buffer. It borrows windows into that buffer; it must not outlive it.
type Font struct {
	data []byte

	cmap cmapTable
	head []byte
	maxp []byte
	name []byte
	os2  []byte
	post []byte
	glyf []byte

	hhea hheaTable
	hmtx hmtxTable
	loca locaTable

	cvt  []byte
	fpgm []byte
	prep []byte

	numGlyphs uint16
	locaFmt   locaFormat
}

// Parse validates an OpenType sfnt container and returns a Font borrowing
// from data. data must outlive the returned Font.
func Parse(data []byte) (*Font, error) {
	tables, err := parseDirectory(data)
	if err != nil {
		return nil, err
	}

	locaFmt, err := parseHeadLocaFormat(tables[tagHead])
	if err != nil {
		return nil, err
	}
	numGlyphs, err := parseMaxpGlyphCount(tables[tagMaxp])
	if err != nil {
		return nil, err
	}
	hhea, err := parseHhea(tables[tagHhea])
	if err != nil {
		return nil, err
	}
	hmtx, err := parseHmtx(tables[tagHmtx], hhea.numberOfHMetrics, numGlyphs)
	if err != nil {
		return nil, err
	}
	loca, err := parseLoca(locaFmt, numGlyphs, tables[tagLoca])
	if err != nil {
		return nil, err
	}
	cm, err := parseCmap(tables[tagCmap])
	if err != nil {
		return nil, err
	}

	slog.Debug("parsed sfnt font", "numGlyphs", numGlyphs, "locaFormat", locaFmt, "cmapKind", cm.kind)

	return &Font{
		data:      data,
		cmap:      cm,
		head:      tables[tagHead],
		maxp:      tables[tagMaxp],
		name:      tables[tagName],
		os2:       tables[tagOS2],
		post:      tables[tagPost],
		glyf:      tables[tagGlyf],
		hhea:      hhea,
		hmtx:      hmtx,
		loca:      loca,
		cvt:       tables[tagCvt],
		fpgm:      tables[tagFpgm],
		prep:      tables[tagPrep],
		numGlyphs: numGlyphs,
		locaFmt:   locaFmt,
	}, nil
}

// ParseFile reads path and parses it as an OpenType font.
func ParseFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ValidateBytes parses data purely to surface any ParseError; it discards
// the resulting Font.
func ValidateBytes(data []byte) error {
	_, err := Parse(data)
	return err
}

// ValidateFile is the file-backed counterpart of ValidateBytes.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return ValidateBytes(data)
}

// NumGlyphs returns the font's glyph count.
func (f *Font) NumGlyphs() uint16 {
	return f.numGlyphs
}

// MapChar resolves a rune to a glyph index via the font's cmap, returning 0
// for characters the font does not cover (§4.3).
func (f *Font) MapChar(ch rune) (uint16, error) {
	return f.cmap.mapChar(ch)
}

// glyph assembles a GlyphWithMetrics for glyphIdx from loca, glyf, and hmtx
// (§4.5, §4.6, C6).
func (f *Font) glyph(glyphIdx uint16) (glyphWithMetrics, error) {
	start, end, err := f.loca.glyphRange(glyphIdx)
	if err != nil {
		return glyphWithMetrics{}, err
	}
	if end > len(f.glyf) || start > end {
		return glyphWithMetrics{}, parseErrTable(RangeOutOfBounds, start, tagGlyf)
	}
	g, err := parseGlyph(f.glyf[start:end])
	if err != nil {
		return glyphWithMetrics{}, err
	}
	advance, lsb, err := f.hmtx.advanceAndLSB(glyphIdx)
	if err != nil {
		return glyphWithMetrics{}, err
	}
	return glyphWithMetrics{g: g, advance: advance, lsb: lsb}, nil
}

// DebugName returns the font's full name (nameID 4, Windows platform 3,
// encoding 1), or "" if absent. It is read-only and used only for logging.
func (f *Font) DebugName() string {
	name, ok := readNameRecord(f.name, 3, 1, 4)
	if !ok {
		return ""
	}
	return name
}
