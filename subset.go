/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

import (
	"log/slog"
	"sort"
)

// charGlyphPair is one entry of FontSubset.charMap: a retained character and
// the new glyph index it resolves to in the subset.
type charGlyphPair struct {
	ch    rune
	glyph uint16
}

// FontSubset is the reachability-closed, renumbered glyph set and character
// map produced by Font.Subset (§3, C7).
type FontSubset struct {
	font *Font

	charMap      []charGlyphPair
	oldToNewIdx  map[uint16]uint16
	glyphs       []glyphWithMetrics
}

// Subset builds a FontSubset containing every glyph reachable from chars,
// closed transitively over composite glyph components (§4.7). chars is
// de-duplicated and processed in strictly ascending order, which the cmap
// re-encoder in §4.8 depends on.
func (f *Font) Subset(chars []rune) (*FontSubset, error) {
	sorted := append([]rune(nil), chars...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	glyph0, err := f.glyph(0)
	if err != nil {
		return nil, err
	}

	s := &FontSubset{
		font:        f,
		oldToNewIdx: map[uint16]uint16{0: 0},
		glyphs:      []glyphWithMetrics{glyph0},
	}

	var prev rune
	havePrev := false
	for _, ch := range sorted {
		if havePrev && ch == prev {
			continue
		}
		prev, havePrev = ch, true

		old, err := f.MapChar(ch)
		if err != nil {
			return nil, err
		}
		newIdx, err := s.ensureGlyph(old, 0)
		if err != nil {
			return nil, err
		}
		s.charMap = append(s.charMap, charGlyphPair{ch: ch, glyph: newIdx})
	}

	slog.Debug("built font subset", "chars", len(s.charMap), "glyphs", len(s.glyphs))
	return s, nil
}

// ensureGlyph returns old's new glyph index, fetching and recursively
// rewriting it (composite component references included) on first visit.
// depth guards against pathological component cycles (§5, §9).
func (s *FontSubset) ensureGlyph(old uint16, depth int) (uint16, error) {
	if newIdx, ok := s.oldToNewIdx[old]; ok {
		return newIdx, nil
	}
	if depth >= maxCompositeDepth {
		return 0, &ParseError{Kind: CompositeDepthExceeded, Table: tagGlyf, HasTable: true}
	}

	gm, err := s.font.glyph(old)
	if err != nil {
		return 0, err
	}

	if gm.g.kind == glyphComposite {
		rewritten := make([]glyphComponent, len(gm.g.components))
		for i, comp := range gm.g.components {
			newComponentIdx, err := s.ensureGlyph(comp.glyphIdx, depth+1)
			if err != nil {
				return 0, err
			}
			comp.glyphIdx = newComponentIdx
			rewritten[i] = comp
		}
		gm.g.components = rewritten
	}

	newIdx := uint16(len(s.glyphs))
	s.glyphs = append(s.glyphs, gm)
	s.oldToNewIdx[old] = newIdx
	return newIdx, nil
}
