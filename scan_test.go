package monowidth

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

var stringWidthTests = []struct {
	name        string
	input       string
	expected    int
	expectedCJK int
}{
	{"empty", "", 0, 0},
	{"ascii", "hello", 5, 5},
	{"fullwidth", "ｈｅｌｌｏ", 10, 10},
	{"controls", "\x00\x00\x00\x01\x01", 0, 0},
	{"c1 controls", "a\u0085\u009fb", 2, 2},
	{"subscripts", "₁₂₃₄", 4, 8},
	{"cjk", "Hello, 世界", 11, 11},
	{"combining", "a\u0301", 1, 1},
	{"emoji", "\U0001f469", 2, 2},
	{"zwj sequence", "\U0001f469\u200d\U0001f52c", 4, 4},
	{"flag", "\U0001f1fa\U0001f1f3", 2, 2},
	{"invalid utf8", "a\xffb", 3, 4},

	// Line breaks.
	{"crlf", "\r\n", 1, 1},
	{"cr", "\r", 1, 1},
	{"lf", "\n", 1, 1},
	{"lfcr", "\n\r", 2, 2},
	{"cr crlf", "\r\r\n", 2, 2},
	{"crlf in text", "a\r\nb", 3, 3},

	// Emoji presentation sequences.
	{"keycap base", "#\ufe0f", 2, 2},
	{"keycap base in text", "a#\ufe0fa", 4, 4},
	{"selector after letter", "#a\ufe0f", 2, 2},
	{"letter with selector", "a\ufe0f", 1, 1},
	{"double base", "##\ufe0fa", 4, 4},
	{"asterisk", "*\ufe0f", 2, 2},
	{"stop button", "⏹\ufe0f", 2, 2},
	{"circled m", "Ⓜ\ufe0f", 2, 2},
	{"ship", "\U0001f6f3\ufe0f", 2, 2},
	{"alchemical symbol", "\U0001f700\ufe0f", 1, 1},
	{"heart", "❤\ufe0f", 2, 2},
	{"lone vs16", "\ufe0f", 0, 0},
	{"double vs16", "#\ufe0f\ufe0f", 2, 2},

	// Text presentation sequences.
	{"aries", "♈\ufe0e", 1, 2},
	{"enclosed ideograph", "\U0001f21a\ufe0e", 2, 2},
	{"combining with vs15", "\u0301\ufe0e", 0, 0},
	{"letter with vs15", "a\ufe0e", 1, 1},
	{"katakana with vs15", "\U00018000\ufe0e", 2, 2},
	{"lone vs15", "\ufe0e", 0, 0},
	{"vs15 then vs16", "♈\ufe0e\ufe0f", 1, 2},
}

func TestStringWidth(t *testing.T) {
	for _, tt := range stringWidthTests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StringWidth(tt.input))
			assert.Equal(t, tt.expectedCJK, StringWidthCJK(tt.input))
			assert.Equal(t, tt.expected, Width([]byte(tt.input)))
			assert.Equal(t, tt.expectedCJK, WidthCJK([]byte(tt.input)))
		})
	}
}

func TestWidthNil(t *testing.T) {
	assert.Zero(t, Width(nil))
	assert.Zero(t, WidthCJK(nil))
	assert.Zero(t, Width([]byte{}))
}

// TestStringWidthSumsRunes checks that a string consisting of a single code
// point is as wide as that code point, except for line breaks which have no
// width of their own.
func TestStringWidthSumsRunes(t *testing.T) {
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		str := string(r)
		for _, cjk := range []bool{false, true} {
			expected := runeWidth(r, cjk)
			switch {
			case r == lineFeed || r == carriageReturn:
				expected = 1
			case expected == Undefined:
				expected = 0
			}
			if width := scanWidth(nil, str, cjk); width != expected {
				t.Fatalf("rune %#x (CJK: %t): got %d, want %d", r, cjk, width, expected)
			}
		}
	}
}

func TestStringWidthConcatenation(t *testing.T) {
	parts := []string{"a", "世", "\u0301", "¡", "\U0001f469", "\u200d", "x\r\n", "\u2014"}
	var (
		str      string
		expected int
	)
	for _, part := range parts {
		str += part
		expected += StringWidth(part)
		assert.Equal(t, expected, StringWidth(str), "string %q", str)
	}
}

// TestCanonicalEquivalence checks that every character is as wide as its
// normalization forms.
func TestCanonicalEquivalence(t *testing.T) {
	var failures int
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		str := string(r)
		width := StringWidth(str)
		for _, form := range []norm.Form{norm.NFD, norm.NFC} {
			normalized := form.String(str)
			if w := StringWidth(normalized); w != width {
				t.Errorf("%U: width %d, but %q is %d", r, width, normalized, w)
				if failures++; failures > 20 {
					t.FailNow()
				}
			}
		}
	}
}

func TestCanonicalEquivalenceSequences(t *testing.T) {
	for _, str := range []string{
		"\u00e1",
		"Ko\u0308nig",
		"\uac01",
		"\u1100\u1161\u11a8",
		"\u0cca\u0cd5",
		"\u1b3b",
		"\u212b\u2126",
		"\u09cb\u09be",
		"\u0958\u0301\u0323",
	} {
		width := StringWidth(str)
		assert.Equal(t, width, StringWidth(norm.NFD.String(str)), "NFD of %q", str)
		assert.Equal(t, width, StringWidth(norm.NFC.String(str)), "NFC of %q", str)
	}
}

// TestNormalizationConformance checks that canonically equivalent columns of
// the Unicode normalization test file have the same width. The file is saved
// by running the generator with the --normalization-test flag.
func TestNormalizationConformance(t *testing.T) {
	file, err := os.Open(filepath.Join("testdata", "NormalizationTest.txt"))
	if os.IsNotExist(err) {
		t.Skip("testdata/NormalizationTest.txt not found")
	}
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var num, cases int
	for scanner.Scan() {
		num++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}

		fields := strings.Split(line, ";")
		require.GreaterOrEqual(t, len(fields), 5, "line %d", num)
		var columns [5]string
		for i := range columns {
			columns[i] = parseCodePoints(t, fields[i], num)
		}

		// c1 == c2 == c3 and c4 == c5 under canonical equivalence.
		width := StringWidth(columns[0])
		assert.Equal(t, width, StringWidth(columns[1]), "line %d: %q vs %q", num, columns[0], columns[1])
		assert.Equal(t, width, StringWidth(columns[2]), "line %d: %q vs %q", num, columns[0], columns[2])
		assert.Equal(t, StringWidth(columns[3]), StringWidth(columns[4]), "line %d: %q vs %q", num, columns[3], columns[4])
		cases++
	}
	require.NoError(t, scanner.Err())
	assert.NotZero(t, cases)
}

// parseCodePoints converts a space-separated list of hexadecimal code points
// into a string.
func parseCodePoints(t *testing.T, field string, num int) string {
	t.Helper()
	var b strings.Builder
	for _, hex := range strings.Fields(field) {
		cp, err := strconv.ParseUint(hex, 16, 32)
		require.NoError(t, err, "line %d", num)
		b.WriteRune(rune(cp))
	}
	return b.String()
}
