/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// TableTag is a 4-byte ASCII table identifier, e.g. "cmap" or "head".
type TableTag [4]byte

// Known table tags.
var (
	tagCmap = TableTag{'c', 'm', 'a', 'p'}
	tagHead = TableTag{'h', 'e', 'a', 'd'}
	tagHhea = TableTag{'h', 'h', 'e', 'a'}
	tagHmtx = TableTag{'h', 'm', 't', 'x'}
	tagMaxp = TableTag{'m', 'a', 'x', 'p'}
	tagName = TableTag{'n', 'a', 'm', 'e'}
	tagOS2  = TableTag{'O', 'S', '/', '2'}
	tagPost = TableTag{'p', 'o', 's', 't'}
	tagLoca = TableTag{'l', 'o', 'c', 'a'}
	tagGlyf = TableTag{'g', 'l', 'y', 'f'}
	tagCvt  = TableTag{'c', 'v', 't', ' '}
	tagFpgm = TableTag{'f', 'p', 'g', 'm'}
	tagPrep = TableTag{'p', 'r', 'e', 'p'}
)

// requiredTags lists the tables that must be present in any font this
// package can parse.
var requiredTags = []TableTag{tagCmap, tagHead, tagHhea, tagHmtx, tagMaxp, tagName, tagOS2, tagPost, tagLoca, tagGlyf}

func (t TableTag) String() string {
	return string(t[:])
}

func newTableTag(b []byte) TableTag {
	var t TableTag
	copy(t[:], b)
	return t
}
