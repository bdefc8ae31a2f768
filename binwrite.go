/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import "encoding/binary"

func writeU16(w *[]byte, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	*w = append(*w, b[:]...)
}

func writeU32(w *[]byte, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	*w = append(*w, b[:]...)
}

// padTo4 zero-pads w to the next 4-byte boundary.
func padTo4(w *[]byte) {
	for len(*w)%4 != 0 {
		*w = append(*w, 0)
	}
}
