/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "fmt"

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	// UnexpectedEof means the cursor ran out of bytes before a read completed.
	UnexpectedEof ParseErrorKind = iota
	// UnexpectedFontVersion means the sfnt version word was not 0x00010000.
	UnexpectedFontVersion
	// MissingTable means a table required by §4.2 was absent from the directory.
	MissingTable
	// UnalignedTable means a table directory entry's offset was not 4-byte aligned.
	UnalignedTable
	// NoSupportedCmap means no cmap subtable had a recognized platform/encoding pair.
	NoSupportedCmap
	// OffsetOutOfBounds means an offset computed from table data exceeded the table's bounds.
	OffsetOutOfBounds
	// RangeOutOfBounds means a range computed from table data exceeded the table's bounds.
	RangeOutOfBounds
	// UnexpectedTableVersion means head/maxp/cmap carried an unrecognized version field.
	UnexpectedTableVersion
	// UnexpectedTableLen means a table's length didn't match what its header/siblings imply.
	UnexpectedTableLen
	// UnexpectedTableFormat means a cmap subtable or loca format value was not one this package supports.
	UnexpectedTableFormat
	// Checksum means a per-table or whole-file checksum didn't match.
	Checksum
	// CompositeDepthExceeded means composite glyph recursion exceeded maxCompositeDepth.
	CompositeDepthExceeded
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedEof:
		return "unexpected end of the font data"
	case UnexpectedFontVersion:
		return "unexpected font version"
	case MissingTable:
		return "missing required font table"
	case UnalignedTable:
		return "font table is not aligned to a 4-byte boundary"
	case NoSupportedCmap:
		return "no supported subtable in the cmap table"
	case OffsetOutOfBounds:
		return "offset inferred from the table data is out of bounds"
	case RangeOutOfBounds:
		return "range inferred from the table data is out of bounds"
	case UnexpectedTableVersion:
		return "unexpected table version"
	case UnexpectedTableLen:
		return "unexpected table length"
	case UnexpectedTableFormat:
		return "unexpected table format"
	case Checksum:
		return "checksum mismatch"
	case CompositeDepthExceeded:
		return "composite glyph nesting exceeded the depth limit"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by every fallible parsing operation in this package.
// It carries the kind of failure, the byte offset at which it was detected
// (relative to the owning table for errors raised while reading a table's
// contents; directory-level errors carry the file offset of the table), and,
// when known, the table the error occurred in.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Table  TableTag
	// HasTable distinguishes a present-but-zero TableTag from no table context.
	HasTable bool

	// Expected/Actual carry extra detail for kinds that need it (UnexpectedTableVersion,
	// UnexpectedTableLen, UnexpectedTableFormat, Checksum, OffsetOutOfBounds, RangeOutOfBounds).
	Expected int
	Actual   int
}

func (e *ParseError) Error() string {
	prefix := ""
	if e.HasTable {
		prefix = fmt.Sprintf("[%s] ", e.Table)
	}
	if e.Offset > 0 {
		prefix = fmt.Sprintf("%s%d: ", prefix, e.Offset)
	}
	switch e.Kind {
	case UnexpectedTableVersion:
		return fmt.Sprintf("%sunexpected table version (%#x)", prefix, uint32(e.Actual))
	case UnexpectedTableLen:
		return fmt.Sprintf("%sunexpected table length: expected %d, got %d", prefix, e.Expected, e.Actual)
	case UnexpectedTableFormat:
		return fmt.Sprintf("%sunexpected table format (%d)", prefix, e.Actual)
	case Checksum:
		return fmt.Sprintf("%sunexpected checksum: expected %#x, got %#x", prefix, uint32(e.Expected), uint32(e.Actual))
	case OffsetOutOfBounds:
		return fmt.Sprintf("%soffset (%d) inferred from the table data is out of bounds", prefix, e.Actual)
	case RangeOutOfBounds:
		return fmt.Sprintf("%srange inferred from the table data is out of bounds (..%d)", prefix, e.Expected)
	default:
		return prefix + e.Kind.String()
	}
}

func parseErr(kind ParseErrorKind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset}
}

func parseErrTable(kind ParseErrorKind, offset int, table TableTag) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Table: table, HasTable: true}
}

func missingTableErr(table TableTag) *ParseError {
	return &ParseError{Kind: MissingTable, Table: table, HasTable: true}
}

// MapErrorKind classifies a MapError.
type MapErrorKind int

const (
	// CharTooLarge means a format-4 cmap subtable was asked to map a rune beyond U+FFFF.
	CharTooLarge MapErrorKind = iota
	// InvalidOffset means a format-4 idRangeOffset computation pointed outside glyphIdArray.
	InvalidOffset
)

// MapError is returned by Font.MapChar when a rune cannot be looked up.
type MapError struct {
	Kind MapErrorKind
}

func (e *MapError) Error() string {
	switch e.Kind {
	case CharTooLarge:
		return "character exceeds the range a format 4 cmap subtable can encode"
	case InvalidOffset:
		return "idRangeOffset computation produced an out-of-bounds glyphIdArray offset"
	default:
		return "character mapping error"
	}
}
