package monowidth

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropertyTables checks that the generated tables can be binary searched
// and contain no redundant entries.
func TestPropertyTables(t *testing.T) {
	tables := []struct {
		name  string
		table [][3]int
		floor int
	}{
		{"widthCodePoints", widthCodePoints, noBreakSpace},
		{"presentationCodePoints", presentationCodePoints, '#'},
	}

	for _, tt := range tables {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEmpty(t, tt.table)
			// The fast paths skip the table below this code point.
			assert.GreaterOrEqual(t, tt.table[0][0], tt.floor)
			assert.LessOrEqual(t, tt.table[len(tt.table)-1][1], int(utf8.MaxRune))

			for i, entry := range tt.table {
				require.LessOrEqual(t, entry[0], entry[1], "entry %d", i)
				require.NotZero(t, entry[2], "entry %d", i)
				if i == 0 {
					continue
				}
				prev := tt.table[i-1]
				require.Greater(t, entry[0], prev[1], "entry %d overlaps its predecessor", i)
				if entry[0] == prev[1]+1 {
					require.NotEqual(t, prev[2], entry[2], "entry %d could be merged with its predecessor", i)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    rune
		expected Properties
	}{
		{"ascii", 'a', Properties{Width: 1, WidthCJK: 1}},
		{"nul", 0, Properties{Width: NullWidth, WidthCJK: NullWidth}},
		{"control", 0x01, Properties{Width: Undefined, WidthCJK: Undefined}},
		{"c1 control", 0x85, Properties{Width: Undefined, WidthCJK: Undefined}},
		{"number sign", '#', Properties{Width: 1, WidthCJK: 1, EmojiPresentation: true}},
		{"ambiguous", 0xa1, Properties{Width: 1, WidthCJK: 2}},
		{"soft hyphen", 0xad, Properties{Width: SoftHyphenWidth, WidthCJK: SoftHyphenWidth}},
		{"combining", 0x0301, Properties{}},
		{"wide", 0x4e00, Properties{Width: 2, WidthCJK: 2}},
		{"aries", 0x2648, Properties{Width: 2, WidthCJK: 2, EmojiPresentation: true, TextPresentation: true}},
		{"heart", 0x2764, Properties{Width: 1, WidthCJK: 1, EmojiPresentation: true}},
		{"enclosed ideograph", 0x1f21a, Properties{Width: 2, WidthCJK: 2, EmojiPresentation: true}},
		{"choseong filler", 0x115f, Properties{Width: 2, WidthCJK: 2}},
		{"jungseong filler", 0x1160, Properties{}},
		{"unassigned", 0xe0fff, Properties{}},
		{"private use", 0xe000, Properties{Width: 1, WidthCJK: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lookup(tt.input))
		})
	}
}

func TestLookupInvalidRunes(t *testing.T) {
	replacement := Lookup(utf8.RuneError)
	assert.Equal(t, Properties{Width: 1, WidthCJK: 2}, replacement)

	for _, r := range []rune{-1, 0xd800, 0xdfff, utf8.MaxRune + 1, 1 << 30} {
		assert.Equal(t, replacement, Lookup(r), "rune %#x", r)
	}
}

// TestLookupAgreesWithRuneWidth checks the classification record against the
// per-rune functions for the whole code space.
func TestLookupAgreesWithRuneWidth(t *testing.T) {
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		p := Lookup(r)
		width, ok := RuneWidth(r)
		widthCJK, okCJK := RuneWidthCJK(r)
		if p.Width != width || p.WidthCJK != widthCJK || ok != okCJK || ok != (width != Undefined) {
			t.Fatalf("rune %#x: Lookup %+v, RuneWidth (%d, %t), RuneWidthCJK (%d, %t)", r, p, width, ok, widthCJK, okCJK)
		}
		if p.Width != p.WidthCJK && propertyWidth(r) != prAmbiguous {
			t.Fatalf("rune %#x: widths differ but it is not ambiguous", r)
		}
		if p.TextPresentation && !p.EmojiPresentation {
			t.Fatalf("rune %#x: text presentation sequence without emoji presentation sequence", r)
		}
	}
}
