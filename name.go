/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import (
	"golang.org/x/text/encoding/unicode"
)

// readNameRecord looks up a single record in the name table matching the
// given platform/encoding/nameID and decodes its UTF-16BE payload. This is
// a best-effort debug helper (Font.DebugName); malformed tables simply
// report no match rather than surfacing a ParseError.
func readNameRecord(raw []byte, platformID, encodingID, nameID uint16) (string, bool) {
	c := newTableCursor(raw, tagName)
	if _, err := c.readU16(); err != nil { // format
		return "", false
	}
	count, err := c.readU16()
	if err != nil {
		return "", false
	}
	storageOffset, err := c.readU16()
	if err != nil {
		return "", false
	}

	for i := uint16(0); i < count; i++ {
		recPlatform, err := c.readU16()
		if err != nil {
			return "", false
		}
		recEncoding, err := c.readU16()
		if err != nil {
			return "", false
		}
		if _, err := c.readU16(); err != nil { // languageID
			return "", false
		}
		recNameID, err := c.readU16()
		if err != nil {
			return "", false
		}
		length, err := c.readU16()
		if err != nil {
			return "", false
		}
		offset, err := c.readU16()
		if err != nil {
			return "", false
		}

		if recPlatform != platformID || recEncoding != encodingID || recNameID != nameID {
			continue
		}

		start := int(storageOffset) + int(offset)
		end := start + int(length)
		if end > len(raw) || start > end {
			return "", false
		}

		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw[start:end])
		if err != nil {
			return "", false
		}
		return string(decoded), true
	}
	return "", false
}
