package monowidth

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name     string
		runes    []rune
		expected int
	}{
		{"zero", []rune{
			// NUL, COMBINING ACUTE ACCENT, COMBINING ENCLOSING CIRCLE
			0x0000, 0x0301, 0x20dd,
			// BENGALI VOWEL SIGN AA and two characters which decompose into
			// zero width characters
			0x09be, 0x0cc0, 0x1b43,
			// Hangul vowel and trailing jamo, fillers
			0x1160, 0xd7c6, 0x11a8, 0xd7fb, 0x3164, 0xffa0,
			// Format characters, variation selectors, tags
			0x200b, 0x200d, 0xfe0e, 0xfe0f, 0xe0000, 0xe0001,
		}, 0},
		{"one", []rune{
			'a', ' ', '~', 0x00ad,
			// Prepended concatenation marks
			0x0600, 0x070f, 0x08e2, 0x110bd,
			// Interlinear annotation and Egyptian hieroglyph format controls
			0xfff9, 0xfffa, 0xfffb, 0x13430, 0x13436, 0x1343c,
			// BENGALI VOWEL SIGN O
			0x09cb,
			// Emoji without emoji presentation
			0x2764, 0x1f1fa,
		}, 1},
		{"two", []rune{
			// Hangul leading jamo, HANGUL CHOSEONG FILLER
			0x1100, 0xa97c, 0x115f,
			0x1f971, 0xff48, 0x4e00, 0x3000, 0x2648, 0x18000,
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.runes {
				width, ok := RuneWidth(r)
				assert.True(t, ok, "rune %#x", r)
				assert.Equal(t, tt.expected, width, "rune %#x", r)

				width, ok = RuneWidthCJK(r)
				assert.True(t, ok, "rune %#x", r)
				assert.Equal(t, tt.expected, width, "rune %#x (CJK)", r)
			}
		})
	}
}

func TestRuneWidthAmbiguous(t *testing.T) {
	for _, r := range []rune{0x00a1, 0x2081, 0x03b1, 0x2460, 0xe000, utf8.RuneError} {
		width, ok := RuneWidth(r)
		assert.True(t, ok)
		assert.Equal(t, 1, width, "rune %#x", r)

		width, ok = RuneWidthCJK(r)
		assert.True(t, ok)
		assert.Equal(t, 2, width, "rune %#x (CJK)", r)
	}
}

func TestRuneWidthControls(t *testing.T) {
	for r := rune(1); r < noBreakSpace; r++ {
		if r >= space && r < del {
			continue
		}
		width, ok := RuneWidth(r)
		assert.False(t, ok, "rune %#x", r)
		assert.Equal(t, Undefined, width, "rune %#x", r)

		width, ok = RuneWidthCJK(r)
		assert.False(t, ok, "rune %#x", r)
		assert.Equal(t, Undefined, width, "rune %#x", r)
	}
}

func TestRuneWidthInvalid(t *testing.T) {
	for _, r := range []rune{-1, 0xd800, 0xdbff, utf8.MaxRune + 1} {
		width, ok := RuneWidth(r)
		assert.True(t, ok)
		assert.Equal(t, 1, width, "rune %#x", r)

		width, ok = RuneWidthCJK(r)
		assert.True(t, ok)
		assert.Equal(t, 2, width, "rune %#x (CJK)", r)
	}
}

// TestRuneWidthRange checks that no code point is wider than two columns.
func TestRuneWidthRange(t *testing.T) {
	for r := rune(0); r <= utf8.MaxRune; r++ {
		for _, cjk := range []bool{false, true} {
			if width := runeWidth(r, cjk); width < Undefined || width > 2 {
				t.Fatalf("rune %#x: width %d", r, width)
			}
		}
	}
}
