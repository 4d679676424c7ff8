package monowidth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The prefixes of a string with mixed widths and sequences, indexed by the
// maximum width.
const mixed = "\u200b\u200ea\u0301汉字\r\nb❤\ufe0fc♈\ufe0e\uff9e"

var mixedPrefixes = []struct {
	prefix string
	width  int
}{
	{"\u200b\u200e", 0},
	{"\u200b\u200ea\u0301", 1},
	{"\u200b\u200ea\u0301", 1},
	{"\u200b\u200ea\u0301汉", 3},
	{"\u200b\u200ea\u0301汉", 3},
	{"\u200b\u200ea\u0301汉字", 5},
	{"\u200b\u200ea\u0301汉字\r\n", 6},
	{"\u200b\u200ea\u0301汉字\r\nb", 7},
	{"\u200b\u200ea\u0301汉字\r\nb", 7},
	{"\u200b\u200ea\u0301汉字\r\nb❤\ufe0f", 9},
	{"\u200b\u200ea\u0301汉字\r\nb❤\ufe0fc", 10},
	{mixed, 11},
	{mixed, 11},
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		prefixes []string
	}{
		{"wide", "汉字", []string{"", "", "汉", "汉", "汉字", "汉字"}},
		{"mixed widths", "a汉字b", []string{"", "a", "a", "a汉", "a汉", "a汉字", "a汉字b", "a汉字b"}},
		{"flags", "\U0001f1fa\U0001f1f3\U0001f1fa\U0001f1f3", []string{
			"", "", "\U0001f1fa\U0001f1f3", "\U0001f1fa\U0001f1f3", "\U0001f1fa\U0001f1f3\U0001f1fa\U0001f1f3",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for maxWidth, expected := range tt.prefixes {
				truncated, width := TruncateString(tt.input, maxWidth)
				assert.Equal(t, expected, truncated, "max width %d", maxWidth)
				assert.Equal(t, StringWidth(expected), width, "max width %d", maxWidth)
			}
		})
	}
}

func TestTruncateStringSequences(t *testing.T) {
	for maxWidth, expected := range mixedPrefixes {
		truncated, width := TruncateString(mixed, maxWidth)
		assert.Equal(t, expected.prefix, truncated, "max width %d", maxWidth)
		assert.Equal(t, expected.width, width, "max width %d", maxWidth)
	}
}

func TestTruncateStringProperties(t *testing.T) {
	inputs := []string{"", "abc", "汉字", "a\u0301e\u0301", mixed, "\U0001f469\u200d\U0001f52c!"}
	for _, input := range inputs {
		for maxWidth := -1; maxWidth <= StringWidth(input)+1; maxWidth++ {
			truncated, width := TruncateString(input, maxWidth)
			require.True(t, strings.HasPrefix(input, truncated), "%q max width %d", input, maxWidth)
			assert.Equal(t, StringWidth(truncated), width, "%q max width %d", input, maxWidth)
			assert.LessOrEqual(t, width, max(maxWidth, 0), "%q max width %d", input, maxWidth)
			if maxWidth >= StringWidth(input) {
				assert.Equal(t, input, truncated)
			}
		}
	}
}

func TestTruncateStringCJK(t *testing.T) {
	truncated, width := TruncateStringCJK("¡¡", 3)
	assert.Equal(t, "¡", truncated)
	assert.Equal(t, 2, width)

	truncated, width = TruncateString("¡¡", 3)
	assert.Equal(t, "¡¡", truncated)
	assert.Equal(t, 2, width)
}

func TestRenderPadding(t *testing.T) {
	const heart = "❤\ufe0fa"
	tests := []struct {
		input    string
		minWidth int
		fill     rune
		align    Alignment
		expected string
	}{
		{heart, 7, 'q', AlignLeft, heart + "qqqq"},
		{heart, 7, 'q', AlignCenter, "qq" + heart + "qq"},
		{heart, 7, 'q', AlignRight, "qqqq" + heart},
		{heart, 7, '字', AlignLeft, heart + "字字"},
		{heart, 7, '字', AlignCenter, "字" + heart + "字"},
		{heart, 7, '字', AlignRight, "字字" + heart},
		{heart, 7, '\u0301', AlignLeft, heart + "    "},
		{heart, 7, '\u0301', AlignCenter, "  " + heart + "  "},
		{heart, 7, '\u0301', AlignRight, "    " + heart},
		{heart, 8, 'q', AlignLeft, heart + "qqqqq"},
		{heart, 8, 'q', AlignCenter, "qq" + heart + "qqq"},
		{heart, 8, 'q', AlignRight, "qqqqq" + heart},
		{heart, 8, '字', AlignLeft, heart + " 字字"},
		{heart, 8, '字', AlignCenter, "字" + heart + " 字"},
		{heart, 8, '字', AlignRight, "字字 " + heart},
		{heart, 8, '\u0301', AlignLeft, heart + "     "},
		{heart, 8, '\u0301', AlignCenter, "  " + heart + "   "},
		{heart, 8, '\u0301', AlignRight, "     " + heart},
		{"a", 7, '字', AlignCenter, "字a字字"},
		{"字", 3, 0, AlignLeft, "字 "},
		{"字", 3, 0, AlignCenter, "字 "},
		{"字", 3, 0, AlignRight, " 字"},
		{"字", 4, 0, AlignLeft, "字  "},
		{"字", 4, 0, AlignCenter, " 字 "},
		{"字", 4, 0, AlignRight, "  字"},
		{"a", 3, 0x01, AlignLeft, "a\x01\x01"},
		{"a", 3, ' ', Alignment(42), "a  "},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%q/%d/%q/%s", tt.input, tt.minWidth, tt.fill, tt.align)
		t.Run(name, func(t *testing.T) {
			f := Field{MinWidth: tt.minWidth, Fill: tt.fill, Align: tt.align}
			assert.Equal(t, tt.expected, Render(tt.input, f))
		})
	}
}

func TestRenderTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		field    Field
		expected string
	}{
		{"no field", "a汉字b", Field{}, "a汉字b"},
		{"wider than min", "a汉字b", Field{MinWidth: 3}, "a汉字b"},
		{"zero max", "abc", Field{Truncate: true}, ""},
		{"zero max padded", "abc", Field{MinWidth: 2, Truncate: true}, "  "},
		{"max without truncate", "abc", Field{MaxWidth: 1}, "abc"},
		{"truncate and pad", "a汉字b", Field{MinWidth: 4, MaxWidth: 4, Truncate: true}, "a汉 "},
		{"truncate and center", "汉字", Field{MinWidth: 3, MaxWidth: 3, Truncate: true, Align: AlignCenter, Fill: '-'}, "汉-"},
		{"east asian", "¡", Field{MinWidth: 3, EastAsian: true}, "¡ "},
		{"not east asian", "¡", Field{MinWidth: 3}, "¡  "},
		{"east asian truncate", "¡¡", Field{MaxWidth: 3, Truncate: true, EastAsian: true}, "¡"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.input, tt.field))
		})
	}
}

// TestRenderWidth checks that padded text is exactly as wide as the field.
func TestRenderWidth(t *testing.T) {
	inputs := []string{"", "a", "汉字", "❤\ufe0fa", "a\u0301b"}
	fills := []rune{0, 'q', '字', '\u0301'}
	for _, input := range inputs {
		for minWidth := 0; minWidth <= 9; minWidth++ {
			for _, fill := range fills {
				for _, align := range []Alignment{AlignLeft, AlignRight, AlignCenter} {
					out := Render(input, Field{MinWidth: minWidth, Fill: fill, Align: align})
					assert.Equal(t, max(minWidth, StringWidth(input)), StringWidth(out), "%q in %d %q %s", input, minWidth, fill, align)
					assert.Contains(t, out, input)
				}
			}
		}
	}
}

func TestAlignmentString(t *testing.T) {
	assert.Equal(t, "left", AlignLeft.String())
	assert.Equal(t, "right", AlignRight.String())
	assert.Equal(t, "center", AlignCenter.String())
	assert.Equal(t, "Alignment(7)", Alignment(7).String())
}

func TestText(t *testing.T) {
	text := Text("¡汉")
	assert.Equal(t, 3, text.Width())
	assert.Equal(t, 4, text.WidthCJK())
	assert.Equal(t, "¡汉", text.String())
	assert.Equal(t, " ¡汉 ", text.Render(Field{MinWidth: 5, Align: AlignCenter}))
}

// TestTextFormatMatchesStrings checks that text whose characters are all one
// column wide is formatted exactly like a string.
func TestTextFormatMatchesStrings(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"abc",
		"¡Olé!",
		"kilimanjaro",
		"Κύριε, ἐλέησον",
	}
	for _, input := range inputs {
		for _, format := range []string{"%s", "%v", "%q", "%8s", "%-8q"} {
			assert.Equal(t, fmt.Sprintf(format, input), fmt.Sprintf(format, Text(input)), "%s of %q", format, input)
		}
		for minWidth := 0; minWidth <= 16; minWidth++ {
			for maxWidth := 0; maxWidth <= 16; maxWidth++ {
				for _, format := range []string{"%*.*s", "%-*.*s"} {
					expected := fmt.Sprintf(format, minWidth, maxWidth, input)
					actual := fmt.Sprintf(format, minWidth, maxWidth, Text(input))
					require.Equal(t, expected, actual, "%s of %q with %d, %d", format, input, minWidth, maxWidth)
				}
			}
		}
	}
}

func TestTextFormat(t *testing.T) {
	tests := []struct {
		format   string
		input    Text
		expected string
	}{
		{"[%-6s]", "字字", "[字字  ]"},
		{"[%6s]", "字字", "[  字字]"},
		{"[%.3s]", "字字", "[字]"},
		{"[%8.3s]", "汉字", "[      汉]"},
		{"[%-4v]", "❤\ufe0f", "[❤\ufe0f  ]"},
		{"%.2q", "汉字", `"汉"`},
		{"%.1q", "汉字", `""`},
		{"%6q", "汉", `  "汉"`},
		{"%d", "x", "%!d(monowidth.Text=x)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, fmt.Sprintf(tt.format, tt.input))
		})
	}
}

// fakeState is a fmt.State with fixed flags.
type fakeState struct {
	strings.Builder
	width int
	flags string
}

func (s *fakeState) Width() (int, bool)     { return s.width, s.width > 0 }
func (s *fakeState) Precision() (int, bool) { return 0, false }
func (s *fakeState) Flag(c int) bool        { return strings.ContainsRune(s.flags, rune(c)) }

func TestTextFormatFlags(t *testing.T) {
	tests := []struct {
		flags    string
		expected string
	}{
		{"", "  字"},
		{"0", "00字"},
		{"-", "字  "},
		{"-0", "字  "},
	}

	for _, tt := range tests {
		t.Run(tt.flags, func(t *testing.T) {
			state := &fakeState{width: 4, flags: tt.flags}
			Text("字").Format(state, 's')
			assert.Equal(t, tt.expected, state.String())
		})
	}
}
