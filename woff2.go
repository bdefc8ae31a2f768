/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// woff2TagIndex assigns each well-known tag its WOFF2 directory flag index
// (§4.11). Subsetting only ever produces these thirteen tables.
var woff2TagIndex = map[TableTag]byte{
	tagCmap: 0, tagHead: 1, tagHhea: 2, tagHmtx: 3, tagMaxp: 4, tagName: 5,
	tagOS2: 6, tagPost: 7, tagCvt: 8, tagFpgm: 9, tagGlyf: 10, tagLoca: 11, tagPrep: 12,
}

const woff2NullTransform = 0b11000000

// ToOpenType serializes the subset as a raw sfnt container (§4.9).
func (s *FontSubset) ToOpenType() []byte {
	w := s.buildTables()
	return assembleSfnt(w)
}

// ToWOFF2 serializes the subset as a WOFF2 container (§4.11), Brotli
// compressing the concatenated table data behind the pull-based reader
// adapter in brotli_reader.go.
func (s *FontSubset) ToWOFF2() ([]byte, error) {
	w := s.buildTables()
	header := sfntHeader(len(w.tables))
	w.adjustData(header)

	compressed, err := compressTableData(w)
	if err != nil {
		return nil, err
	}

	var entries []byte
	for _, r := range w.tables {
		flags := woff2TagIndex[r.tag]
		if r.tag == tagGlyf || r.tag == tagLoca {
			flags |= woff2NullTransform
		}
		entries = append(entries, flags)
		writeUintBase128(&entries, r.length)
	}

	dataOffset := uint32(12 + 16*len(w.tables))
	totalSfntSize := dataOffset + uint32(len(w.data))
	totalCompressedSize := uint32(len(compressed))

	fileLen := woff2HeaderLen + len(entries) + len(compressed)
	if fileLen%4 != 0 {
		fileLen += 4 - fileLen%4
	}

	var out []byte
	writeU32(&out, woff2Signature)
	writeU32(&out, sfntVersion)
	writeU32(&out, uint32(fileLen))
	writeU16(&out, uint16(len(w.tables)))
	writeU16(&out, 0) // reserved
	writeU32(&out, totalSfntSize)
	writeU32(&out, totalCompressedSize)
	writeU32(&out, 0) // majorVersion/minorVersion
	writeU32(&out, 0) // metaOffset
	writeU32(&out, 0) // metaLength
	writeU32(&out, 0) // metaOrigLength
	writeU32(&out, 0) // privOffset
	writeU32(&out, 0) // privLength

	out = append(out, entries...)
	out = append(out, compressed...)
	padTo4(&out)
	return out, nil
}

// woff2HeaderLen is the fixed 48-byte WOFF2 header.
const woff2HeaderLen = 48

func compressTableData(w *fontWriter) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if _, err := io.Copy(bw, newTableDataReader(w)); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
