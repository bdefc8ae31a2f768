/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package subfont parses TrueType-flavored OpenType fonts and produces
// subsetted fonts containing only a caller-chosen set of runes, emitted as
// either a raw sfnt container or a WOFF2 container.
package subfont
