/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package subfont

// Composite glyph component flag bits (§4.4).
const (
	flagArgsAreWords    uint16 = 0x0001
	flagWeHaveAScale    uint16 = 0x0008
	flagMoreComponents  uint16 = 0x0020
	flagWeHaveXYScale   uint16 = 0x0040
	flagWeHaveTwoByTwo  uint16 = 0x0080
)

// maxCompositeDepth bounds recursive composite expansion so a font with a
// component cycle (or a pathologically deep chain) can't exhaust the stack.
const maxCompositeDepth = 64

// glyphKind discriminates the glyph tagged union.
type glyphKind int

const (
	glyphEmpty glyphKind = iota
	glyphSimple
	glyphComposite
)

// componentArgs holds a component's two positioning args, which are either
// both u16 or both u32 depending on flagArgsAreWords.
type componentArgs struct {
	wide   bool
	a1, a2 uint32
}

// transformKind discriminates a component's transform payload.
type transformKind int

const (
	transformNone transformKind = iota
	transformScale
	transformTwoScales
	transformAffine
)

type componentTransform struct {
	kind   transformKind
	values [4]uint16
}

// glyphComponent is one entry of a composite glyph's component list.
type glyphComponent struct {
	flags     uint16
	glyphIdx  uint16
	args      componentArgs
	transform componentTransform
}

// glyph is the tagged union described in §3: an empty entry, an opaque
// simple-outline passthrough, or a composite built from other glyphs.
type glyph struct {
	kind glyphKind

	// glyphSimple
	simpleBytes []byte

	// glyphComposite
	header       [8]byte
	components   []glyphComponent
	instructions []byte
}

// glyphWithMetrics pairs a decoded glyph with the (advance, lsb) pair from hmtx.
type glyphWithMetrics struct {
	g       glyph
	advance uint16
	lsb     uint16
}

// parseGlyph decodes the raw glyf window for a single glyph (§4.4).
func parseGlyph(raw []byte) (glyph, error) {
	if len(raw) == 0 {
		return glyph{kind: glyphEmpty}, nil
	}
	c := newTableCursor(raw, tagGlyf)
	numberOfContoursRaw, err := c.readU16()
	if err != nil {
		return glyph{}, err
	}
	numberOfContours := int16(numberOfContoursRaw)
	if numberOfContours >= 0 {
		return glyph{kind: glyphSimple, simpleBytes: raw}, nil
	}

	var header [8]byte
	headerBytes, err := c.readByteArray(8)
	if err != nil {
		return glyph{}, err
	}
	copy(header[:], headerBytes)

	var components []glyphComponent
	for {
		flags, err := c.readU16()
		if err != nil {
			return glyph{}, err
		}
		glyphIdx, err := c.readU16()
		if err != nil {
			return glyph{}, err
		}

		var args componentArgs
		if flags&flagArgsAreWords != 0 {
			a1, err := c.readU32()
			if err != nil {
				return glyph{}, err
			}
			a2, err := c.readU32()
			if err != nil {
				return glyph{}, err
			}
			args = componentArgs{wide: true, a1: a1, a2: a2}
		} else {
			a1, err := c.readU16()
			if err != nil {
				return glyph{}, err
			}
			a2, err := c.readU16()
			if err != nil {
				return glyph{}, err
			}
			args = componentArgs{wide: false, a1: uint32(a1), a2: uint32(a2)}
		}

		var transform componentTransform
		switch {
		case flags&flagWeHaveTwoByTwo != 0:
			var v [4]uint16
			for i := range v {
				if v[i], err = c.readU16(); err != nil {
					return glyph{}, err
				}
			}
			transform = componentTransform{kind: transformAffine, values: v}
		case flags&flagWeHaveXYScale != 0:
			var v [2]uint16
			for i := range v {
				if v[i], err = c.readU16(); err != nil {
					return glyph{}, err
				}
			}
			transform = componentTransform{kind: transformTwoScales, values: [4]uint16{v[0], v[1]}}
		case flags&flagWeHaveAScale != 0:
			v, err := c.readU16()
			if err != nil {
				return glyph{}, err
			}
			transform = componentTransform{kind: transformScale, values: [4]uint16{v}}
		default:
			transform = componentTransform{kind: transformNone}
		}

		components = append(components, glyphComponent{
			flags: flags, glyphIdx: glyphIdx, args: args, transform: transform,
		})

		if flags&flagMoreComponents == 0 {
			break
		}
	}

	instructions := append([]byte(nil), c.bytes...)

	return glyph{
		kind:         glyphComposite,
		header:       header,
		components:   components,
		instructions: instructions,
	}, nil
}

// write emits a glyph per §4.10, appending to w.
func (g glyph) write(w *[]byte) {
	switch g.kind {
	case glyphEmpty:
		return
	case glyphSimple:
		*w = append(*w, g.simpleBytes...)
	case glyphComposite:
		writeU16(w, 0xFFFF) // numberOfContours == -1
		*w = append(*w, g.header[:]...)
		for _, comp := range g.components {
			writeU16(w, comp.flags)
			writeU16(w, comp.glyphIdx)
			if comp.args.wide {
				writeU32(w, comp.args.a1)
				writeU32(w, comp.args.a2)
			} else {
				writeU16(w, uint16(comp.args.a1))
				writeU16(w, uint16(comp.args.a2))
			}
			switch comp.transform.kind {
			case transformScale:
				writeU16(w, comp.transform.values[0])
			case transformTwoScales:
				writeU16(w, comp.transform.values[0])
				writeU16(w, comp.transform.values[1])
			case transformAffine:
				for _, v := range comp.transform.values {
					writeU16(w, v)
				}
			}
		}
		*w = append(*w, g.instructions...)
	}
}
