/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
)

// readBase128 mirrors the WOFF2 reader side of varint.go for test purposes.
func readBase128(b []byte) (uint32, int) {
	var v uint32
	n := 0
	for {
		byt := b[n]
		v = v<<7 | uint32(byt&0x7F)
		n++
		if byt&0x80 == 0 {
			break
		}
	}
	return v, n
}

func TestWOFF2DirectoryRoundTrip(t *testing.T) {
	data := buildBasicFont(t)
	font, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	subset, err := font.Subset([]rune{'A'})
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	w := subset.buildTables()
	w.adjustData(sfntHeader(len(w.tables)))
	dataOffset := uint32(0)
	if len(w.tables) > 0 {
		dataOffset = w.tables[0].offset
	}
	var wantData []byte
	wantTables := append([]tableRecord(nil), w.tables...)
	for _, rec := range wantTables {
		start := rec.offset - dataOffset
		wantData = append(wantData, w.data[start:start+rec.length]...)
	}

	out, err := subset.ToWOFF2()
	if err != nil {
		t.Fatalf("ToWOFF2: %v", err)
	}

	if len(out) < woff2HeaderLen {
		t.Fatalf("output shorter than WOFF2 header")
	}
	signature := binary.BigEndian.Uint32(out[0:4])
	if signature != woff2Signature {
		t.Fatalf("signature = %#x, want %#x", signature, woff2Signature)
	}
	numTables := binary.BigEndian.Uint16(out[12:14])
	totalCompressedSize := binary.BigEndian.Uint32(out[20:24])
	if int(numTables) != len(wantTables) {
		t.Fatalf("numTables = %d, want %d", numTables, len(wantTables))
	}

	pos := woff2HeaderLen
	type entry struct {
		tag    TableTag
		length uint32
	}
	var entries []entry
	tagByIndex := make(map[byte]TableTag)
	for tag, idx := range woff2TagIndex {
		tagByIndex[idx] = tag
	}
	for i := 0; i < int(numTables); i++ {
		flags := out[pos]
		pos++
		length, n := readBase128(out[pos:])
		pos += n
		entries = append(entries, entry{tag: tagByIndex[flags&0x3F], length: length})
	}

	compressed := out[pos : pos+int(totalCompressedSize)]
	br := brotli.NewReader(bytes.NewReader(compressed))
	decompressed, err := io.ReadAll(br)
	if err != nil {
		t.Fatalf("brotli decompress: %v", err)
	}
	if !bytesEqual(decompressed, wantData) {
		t.Fatalf("decompressed table data (%d bytes) does not match writer's table data (%d bytes)", len(decompressed), len(wantData))
	}

	offset := 0
	for i, e := range entries {
		want := wantTables[i]
		if e.length != want.length {
			t.Errorf("table %d (%v): length = %d, want %d", i, e.tag, e.length, want.length)
		}
		got := decompressed[offset : offset+int(e.length)]
		wantStart := int(want.offset - dataOffset)
		wantBytes := w.data[wantStart : wantStart+int(want.length)]
		if !bytesEqual(got, wantBytes) {
			t.Errorf("table %d (%v) bytes mismatch", i, e.tag)
		}
		offset += int(e.length)
	}
}
