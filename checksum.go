/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "encoding/binary"

const (
	// sfntVersion is the only sfntVersion this package parses or emits.
	sfntVersion = 0x00010000
	// sfntChecksum is the magic value the whole-file checksum must sum to.
	sfntChecksum = 0xB1B0AFBA
	// headChecksumOffset is the byte offset of checksumAdjustment within head.
	headChecksumOffset = 8
	// woff2Signature is the magic "wOF2" tag at the start of a WOFF2 file.
	woff2Signature = 0x774F4632
)

// tableChecksum sums big-endian u32 words over b, wrapping on overflow and
// zero-padding a final partial word. This is the algorithm used both to
// verify table checksums on parse (§4.2) and to compute them on write (§4.9).
func tableChecksum(b []byte) uint32 {
	var sum uint32
	n := len(b) - len(b)%4
	for i := 0; i < n; i += 4 {
		sum += binary.BigEndian.Uint32(b[i:])
	}
	if rem := len(b) % 4; rem != 0 {
		var last [4]byte
		copy(last[:], b[n:])
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}
