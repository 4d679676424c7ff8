package monowidth

import "unicode/utf8"

// textPresentationCJK decides whether text presentation sequences narrow their
// base character in an East Asian context, too. Fullwidth text renderings of
// emoji are common in East Asian fonts, so they keep their wide width there.
const textPresentationCJK = false

// The states of the width scanner. Strings are scanned back to front, so the
// state describes the code point following the one being measured.
const (
	scAny = iota
	scLineFeed
	scVS15
	scVS16
)

// transitionWidthState returns the number of columns contributed by the code
// point r, given the state left behind by the code point which follows it. It
// also returns the state to pass on to the preceding code point.
//
// A variation selector only ever modifies the code point immediately in front
// of it, after which the state is reset. Control characters other than CR and
// LF contribute no width.
func transitionWidthState(state int, r rune, cjk bool) (newState, width int) {
	switch state {
	case scVS15:
		if (!cjk || textPresentationCJK) && startsTextPresentation(r) {
			return scAny, 1
		}
	case scVS16:
		if startsEmojiPresentation(r) {
			return scAny, 2
		}
	}

	switch r {
	case lineFeed:
		return scLineFeed, 1
	case carriageReturn:
		if state == scLineFeed {
			// CRLF is a single line break.
			return scAny, 0
		}
		return scAny, 1
	case vs15:
		return scVS15, 0
	case vs16:
		return scVS16, 0
	}

	width = runeWidth(r, cjk)
	if width == Undefined {
		width = 0
	}
	return scAny, width
}

// scanWidth folds transitionWidthState over the code points of b, or of str
// if b is nil, from the last code point to the first.
func scanWidth(b []byte, str string, cjk bool) (width int) {
	var (
		state = scAny
		w     int
	)
	if b != nil {
		for len(b) > 0 {
			r, length := utf8.DecodeLastRune(b)
			b = b[:len(b)-length]
			state, w = transitionWidthState(state, r, cjk)
			width += w
		}
		return
	}
	for len(str) > 0 {
		r, length := utf8.DecodeLastRuneInString(str)
		str = str[:len(str)-length]
		state, w = transitionWidthState(state, r, cjk)
		width += w
	}
	return
}

// Width returns the number of columns the given UTF-8 encoded text occupies in
// a monospace font. It is the sum of the [RuneWidth] of its code points, with
// the following exceptions:
//
//   - An emoji presentation sequence (a base character followed by U+FE0F
//     VARIATION SELECTOR-16, such as "#\uFE0F") is two columns wide.
//   - A text presentation sequence (an emoji with a default emoji
//     presentation followed by U+FE0E VARIATION SELECTOR-15, such as
//     "♈\uFE0E") is one column wide. Emoji from the Enclosed Ideographic
//     Supplement block remain wide.
//   - The sequence "\r\n" is one column wide. A lone "\r" or "\n" is one
//     column wide, too.
//   - All other control characters are zero columns wide.
//
// Characters with an ambiguous East Asian width are one column wide. Invalid
// UTF-8 sequences are measured as [utf8.RuneError]. This function makes no
// allocations.
func Width(b []byte) int {
	if b == nil {
		return 0
	}
	return scanWidth(b, "", false)
}

// WidthCJK is like [Width] but treats characters with an ambiguous East Asian
// width as two columns wide. Text presentation sequences do not change the
// width of their base character in this context.
func WidthCJK(b []byte) int {
	if b == nil {
		return 0
	}
	return scanWidth(b, "", true)
}

// StringWidth is like [Width] but its input is a string.
func StringWidth(str string) int {
	return scanWidth(nil, str, false)
}

// StringWidthCJK is like [WidthCJK] but its input is a string.
func StringWidthCJK(str string) int {
	return scanWidth(nil, str, true)
}
