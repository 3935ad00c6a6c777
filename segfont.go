package knobs

import "unicode"

// segmentLine is one segment's center line in normalized digit-cell
// coordinates: x in units of the digit width, y in units of the digit
// height.
type segmentLine struct {
	x1, y1, x2, y2 float32
}

// segmentFont pairs a segment layout with a glyph table. A glyph is a
// bitmask over the segments slice: bit i lights segments[i].
type segmentFont struct {
	segments []segmentLine
	glyphs   map[rune]uint16
}

// glyph returns the segment mask for a rune, falling back to the opposite
// case before giving up and returning a blank digit.
func (f segmentFont) glyph(r rune) uint16 {
	if mask, ok := f.glyphs[r]; ok {
		return mask
	}
	if mask, ok := f.glyphs[unicode.ToUpper(r)]; ok {
		return mask
	}
	if mask, ok := f.glyphs[unicode.ToLower(r)]; ok {
		return mask
	}
	return 0
}

// Seven-segment layout, bits 0..6 = a b c d e f g:
//
//	 _a_
//	f|_g_|b
//	e|_d_|c
var sevenSegmentFont = segmentFont{
	segments: []segmentLine{
		{0, 0, 1, 0},     // a
		{1, 0, 1, 0.5},   // b
		{1, 0.5, 1, 1},   // c
		{0, 1, 1, 1},     // d
		{0, 0.5, 0, 1},   // e
		{0, 0, 0, 0.5},   // f
		{0, 0.5, 1, 0.5}, // g
	},
	glyphs: map[rune]uint16{
		'0': 0x3F, '1': 0x06, '2': 0x5B, '3': 0x4F, '4': 0x66,
		'5': 0x6D, '6': 0x7D, '7': 0x07, '8': 0x7F, '9': 0x6F,
		'A': 0x77, 'b': 0x7C, 'C': 0x39, 'd': 0x5E, 'E': 0x79,
		'F': 0x71, 'H': 0x76, 'h': 0x74, 'J': 0x1E, 'L': 0x38,
		'n': 0x54, 'o': 0x5C, 'P': 0x73, 'r': 0x50, 'U': 0x3E,
		'u': 0x1C, 'y': 0x6E, '-': 0x40, '_': 0x08, ' ': 0x00,
	},
}

// Sixteen-segment bits. Split horizontals (a1/a2, d1/d2, g1/g2), outer
// verticals (b, c, e, f), center verticals (i, l) and diagonals (h, j, k,
// m), in the usual clockwise-from-top-left order.
const (
	sA1 uint16 = 1 << iota
	sA2
	sB
	sC
	sD1
	sD2
	sE
	sF
	sG1
	sG2
	sH
	sI
	sJ
	sK
	sL
	sM
)

var sixteenSegmentFont = segmentFont{
	segments: []segmentLine{
		{0, 0, 0.5, 0},       // a1
		{0.5, 0, 1, 0},       // a2
		{1, 0, 1, 0.5},       // b
		{1, 0.5, 1, 1},       // c
		{0, 1, 0.5, 1},       // d1
		{0.5, 1, 1, 1},       // d2
		{0, 0.5, 0, 1},       // e
		{0, 0, 0, 0.5},       // f
		{0, 0.5, 0.5, 0.5},   // g1
		{0.5, 0.5, 1, 0.5},   // g2
		{0, 0, 0.5, 0.5},     // h
		{0.5, 0, 0.5, 0.5},   // i
		{1, 0, 0.5, 0.5},     // j
		{0.5, 0.5, 0, 1},     // k
		{0.5, 0.5, 0.5, 1},   // l
		{0.5, 0.5, 1, 1},     // m
	},
	glyphs: map[rune]uint16{
		'0': sA1 | sA2 | sB | sC | sD1 | sD2 | sE | sF | sJ | sK,
		'1': sB | sC | sJ,
		'2': sA1 | sA2 | sB | sG1 | sG2 | sE | sD1 | sD2,
		'3': sA1 | sA2 | sB | sC | sD1 | sD2 | sG2,
		'4': sB | sC | sF | sG1 | sG2,
		'5': sA1 | sA2 | sF | sG1 | sG2 | sC | sD1 | sD2,
		'6': sA1 | sA2 | sF | sE | sD1 | sD2 | sC | sG1 | sG2,
		'7': sA1 | sA2 | sB | sC,
		'8': sA1 | sA2 | sB | sC | sD1 | sD2 | sE | sF | sG1 | sG2,
		'9': sA1 | sA2 | sB | sC | sD1 | sD2 | sF | sG1 | sG2,
		'A': sA1 | sA2 | sB | sC | sE | sF | sG1 | sG2,
		'B': sA1 | sA2 | sB | sC | sD1 | sD2 | sG2 | sI | sL,
		'C': sA1 | sA2 | sD1 | sD2 | sE | sF,
		'D': sA1 | sA2 | sB | sC | sD1 | sD2 | sI | sL,
		'E': sA1 | sA2 | sD1 | sD2 | sE | sF | sG1 | sG2,
		'F': sA1 | sA2 | sE | sF | sG1,
		'G': sA1 | sA2 | sC | sD1 | sD2 | sE | sF | sG2,
		'H': sB | sC | sE | sF | sG1 | sG2,
		'I': sA1 | sA2 | sD1 | sD2 | sI | sL,
		'J': sB | sC | sD1 | sD2 | sE,
		'K': sE | sF | sG1 | sJ | sM,
		'L': sD1 | sD2 | sE | sF,
		'M': sB | sC | sE | sF | sH | sJ,
		'N': sB | sC | sE | sF | sH | sM,
		'O': sA1 | sA2 | sB | sC | sD1 | sD2 | sE | sF,
		'P': sA1 | sA2 | sB | sE | sF | sG1 | sG2,
		'Q': sA1 | sA2 | sB | sC | sD1 | sD2 | sE | sF | sM,
		'R': sA1 | sA2 | sB | sE | sF | sG1 | sG2 | sM,
		'S': sA1 | sA2 | sC | sD1 | sD2 | sF | sG1 | sG2,
		'T': sA1 | sA2 | sI | sL,
		'U': sB | sC | sD1 | sD2 | sE | sF,
		'V': sE | sF | sJ | sK,
		'W': sB | sC | sE | sF | sK | sM,
		'X': sH | sJ | sK | sM,
		'Y': sH | sJ | sL,
		'Z': sA1 | sA2 | sD1 | sD2 | sJ | sK,
		'-': sG1 | sG2,
		'+': sG1 | sG2 | sI | sL,
		'*': sG1 | sG2 | sH | sI | sJ | sK | sL | sM,
		'/': sJ | sK,
		'\\': sH | sM,
		'_': sD1 | sD2,
		' ': 0,
	},
}
