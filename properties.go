package monowidth

import "unicode/utf8"

//go:generate go run -tags generate gen_widths.go

// UnicodeVersion is the version of the Unicode Character Database the width
// tables were generated from.
const UnicodeVersion = "15.0.0"

// Width classes stored in the widthCodePoints table. Code points which are not
// listed in the table are narrow.
const (
	prNarrow    = iota // One column (must be 0)
	prZeroWidth        // Default_Ignorable_Code_Point, Grapheme_Extend, Hangul V/T jamo
	prWide             // East_Asian_Width W or F
	prAmbiguous        // East_Asian_Width A
)

// Presentation sequence flags stored in the presentationCodePoints table.
const (
	prEmojiSequence = 1 << iota // Base of an emoji presentation sequence (followed by VS16)
	prTextSequence              // Base of a text presentation sequence that narrows (followed by VS15)
)

// Variation Selectors for emoji presentation control.
const (
	vs15 = 0xfe0e // Variation Selector-15: request text presentation
	vs16 = 0xfe0f // Variation Selector-16: request emoji presentation (width 2)
)

// Code points with hardcoded widths.
const (
	nul            = 0x0000
	lineFeed       = 0x000a
	carriageReturn = 0x000d
	space          = 0x0020
	del            = 0x007f
	noBreakSpace   = 0x00a0
	softHyphen     = 0x00ad
	choseongFiller = 0x115f
)

// Undefined is the width reported for control characters, which have no
// display width on their own.
const Undefined = -1

// Properties is the classification record of a single code point.
type Properties struct {
	// Width is the number of columns the code point occupies outside of an
	// East Asian context, or Undefined for control characters.
	Width int

	// WidthCJK is the number of columns the code point occupies in an East
	// Asian context, or Undefined for control characters. It only differs
	// from Width for East_Asian_Width=Ambiguous code points.
	WidthCJK int

	// EmojiPresentation is true if the code point followed by U+FE0F
	// VARIATION SELECTOR-16 forms an emoji presentation sequence, which is
	// two columns wide.
	EmojiPresentation bool

	// TextPresentation is true if the code point followed by U+FE0E
	// VARIATION SELECTOR-15 forms a text presentation sequence which is one
	// column wide outside of an East Asian context.
	TextPresentation bool
}

// Lookup returns the classification record of the given code point. It is
// defined for every rune. Runes which are not valid Unicode scalar values are
// classified as [utf8.RuneError], the character they turn into when encoded.
func Lookup(r rune) Properties {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	presentation := propertyPresentation(r)
	return Properties{
		Width:             runeWidth(r, false),
		WidthCJK:          runeWidth(r, true),
		EmojiPresentation: presentation&prEmojiSequence != 0,
		TextPresentation:  presentation&prTextSequence != 0,
	}
}

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property, ...].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch[E interface{ [3]int | [4]int }](dictionary []E, r rune) (result E) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// property returns the Unicode property value (see constants above) of the
// given code point.
func property(dictionary [][3]int, r rune) int {
	return propertySearch(dictionary, r)[2]
}

// propertyWidth returns the width class of the given code point while fast
// tracking ASCII and the C1 controls, none of which are listed in the table.
func propertyWidth(r rune) int {
	if r < noBreakSpace {
		return prNarrow
	}
	return property(widthCodePoints, r)
}

// propertyPresentation returns the presentation sequence flags of the given
// code point.
func propertyPresentation(r rune) int {
	// Fast track: the lowest entry is U+0023 NUMBER SIGN.
	if r < '#' {
		return 0
	}
	return property(presentationCodePoints, r)
}

// startsEmojiPresentation reports whether r followed by VS16 forms an emoji
// presentation sequence.
func startsEmojiPresentation(r rune) bool {
	return propertyPresentation(r)&prEmojiSequence != 0
}

// startsTextPresentation reports whether r followed by VS15 forms a text
// presentation sequence which narrows r to one column.
func startsTextPresentation(r rune) bool {
	return propertyPresentation(r)&prTextSequence != 0
}
