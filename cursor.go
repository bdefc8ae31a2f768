/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "encoding/binary"

// cursor is a bounds-checked big-endian reader over a borrowed byte slice.
// It carries the absolute offset of its current position (for error
// reporting) and, optionally, the tag of the table it is reading.
type cursor struct {
	bytes    []byte
	offset   int
	table    TableTag
	hasTable bool
}

func newCursor(b []byte) cursor {
	return cursor{bytes: b}
}

func newTableCursor(b []byte, table TableTag) cursor {
	return cursor{bytes: b, table: table, hasTable: true}
}

func (c cursor) err(kind ParseErrorKind) *ParseError {
	if c.hasTable {
		return parseErrTable(kind, c.offset, c.table)
	}
	return parseErr(kind, c.offset)
}

func (c cursor) remaining() int {
	return len(c.bytes)
}

// skip advances the cursor by n bytes without returning them.
func (c *cursor) skip(n int) error {
	if n > len(c.bytes) {
		return c.err(UnexpectedEof)
	}
	c.bytes = c.bytes[n:]
	c.offset += n
	return nil
}

// splitAt returns the first n bytes as a raw slice and advances past them.
func (c *cursor) splitAt(n int) ([]byte, error) {
	if n > len(c.bytes) {
		return nil, c.err(UnexpectedEof)
	}
	head := c.bytes[:n]
	c.bytes = c.bytes[n:]
	c.offset += n
	return head, nil
}

func (c *cursor) readU16() (uint16, error) {
	b, err := c.splitAt(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) readU32() (uint32, error) {
	b, err := c.splitAt(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) readByteArray(n int) ([]byte, error) {
	return c.splitAt(n)
}

// rng returns a sub-cursor over bytes[a:b], anchored at the parent's offset.
func (c cursor) rng(a, b int) (cursor, error) {
	if b > len(c.bytes) || a > b {
		return cursor{}, c.err(RangeOutOfBounds)
	}
	return cursor{
		bytes:    c.bytes[a:b],
		offset:   c.offset + a,
		table:    c.table,
		hasTable: c.hasTable,
	}, nil
}
