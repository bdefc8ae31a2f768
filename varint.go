/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// uintBase128Len returns the number of bytes writeUintBase128 would emit
// for v (§4.11).
func uintBase128Len(v uint32) int {
	if v == 0 {
		return 1
	}
	n := 0
	for t := v; t != 0; t >>= 1 {
		n++
	}
	return (n-1)/7 + 1
}

// writeUintBase128 appends v as a big-endian, high-bit-continuation Base-128
// varint (§4.11, §8).
func writeUintBase128(w *[]byte, v uint32) {
	if v >= 1<<28 {
		*w = append(*w, 0x80|byte(v>>28))
	}
	if v >= 1<<21 {
		*w = append(*w, 0x80|byte(v>>21))
	}
	if v >= 1<<14 {
		*w = append(*w, 0x80|byte(v>>14))
	}
	if v >= 1<<7 {
		*w = append(*w, 0x80|byte(v>>7))
	}
	*w = append(*w, byte(v&0x7F))
}
