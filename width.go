package monowidth

import "unicode/utf8"

// Widths of the two characters whose treatment historically varied between
// implementations. NUL is treated as an empty cell, the SOFT HYPHEN as a
// visible hyphen.
const (
	NullWidth       = 0
	SoftHyphenWidth = 1
)

// RuneWidth returns the number of columns the given code point occupies in a
// monospace font, according to Unicode Standard Annex #11 and the rules
// described in the package documentation. Characters with an ambiguous East
// Asian width are one column wide, as recommended outside of East Asian
// contexts or when the context cannot be reliably determined.
//
// The second return value is false for control characters (U+0001 to U+001F
// and U+007F to U+009F), which have no width on their own. The returned width
// is then [Undefined]. Runes which are not valid Unicode scalar values are
// measured as [utf8.RuneError].
func RuneWidth(r rune) (width int, ok bool) {
	width = runeWidth(r, false)
	return width, width != Undefined
}

// RuneWidthCJK is like [RuneWidth] but treats characters with an ambiguous
// East Asian width as two columns wide, as recommended for East Asian
// contexts.
func RuneWidthCJK(r rune) (width int, ok bool) {
	width = runeWidth(r, true)
	return width, width != Undefined
}

// runeWidth resolves the width of a single code point, or Undefined for
// control characters. The rules are applied in order of decreasing
// precedence.
func runeWidth(r rune, cjk bool) int {
	// Printable ASCII.
	if r >= space && r < del {
		return 1
	}

	// C0 and C1 controls, except NUL.
	if r > nul && r < space || r >= del && r < noBreakSpace {
		return Undefined
	}

	switch r {
	case nul:
		return NullWidth
	case softHyphen:
		return SoftHyphenWidth
	case choseongFiller:
		// Combines with V and T jamo into a full syllable block.
		return 2
	}

	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	switch propertyWidth(r) {
	case prZeroWidth:
		return 0
	case prWide:
		return 2
	case prAmbiguous:
		if cjk {
			return 2
		}
		return 1
	default:
		return 1
	}
}
