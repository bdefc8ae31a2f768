/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "testing"

func TestParseBasicFont(t *testing.T) {
	data := buildBasicFont(t)

	font, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if font.NumGlyphs() != 2 {
		t.Fatalf("NumGlyphs = %d, want 2", font.NumGlyphs())
	}

	gid, err := font.MapChar('A')
	if err != nil {
		t.Fatalf("MapChar('A'): %v", err)
	}
	if gid != 1 {
		t.Fatalf("MapChar('A') = %d, want 1", gid)
	}

	gid, err = font.MapChar('B')
	if err != nil {
		t.Fatalf("MapChar('B'): %v", err)
	}
	if gid != 0 {
		t.Fatalf("MapChar('B') = %d, want 0 (missing glyph)", gid)
	}
}

func TestParseRejectsBadVersion(t *testing.T) {
	data := buildBasicFont(t)
	patchU32At(data, 0, 0x00020000)

	_, err := Parse(data)
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if perr.Kind != UnexpectedFontVersion {
		t.Fatalf("Kind = %v, want UnexpectedFontVersion", perr.Kind)
	}
}

func TestParseRejectsBadLocaFormat(t *testing.T) {
	data := buildBasicFont(t)
	mutateTableAndFixChecksums(t, data, "head", func(head []byte) {
		patchU16At(head, locaFormatOffset, 2)
	})

	_, err := Parse(data)
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if perr.Kind != UnexpectedTableFormat {
		t.Fatalf("Kind = %v, want UnexpectedTableFormat", perr.Kind)
	}
}

func TestParseRejectsChecksumMismatch(t *testing.T) {
	data := buildBasicFont(t)
	// Corrupt a byte inside a non-empty table; padding bytes between tables
	// are outside every checksum window.
	_, tableOffset, tableLength := directoryEntry(t, data, "post")
	if tableLength == 0 {
		t.Fatalf("post table is empty; nothing to corrupt")
	}
	data[tableOffset] ^= 0xFF

	_, err := Parse(data)
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if perr.Kind != Checksum {
		t.Fatalf("Kind = %v, want Checksum", perr.Kind)
	}
}
