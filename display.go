package monowidth

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Alignment determines on which side of a field the text is placed when it is
// padded to a minimum width.
type Alignment int

// The supported alignments. The zero value aligns text to the left.
const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// String returns the name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return "Alignment(" + strconv.Itoa(int(a)) + ")"
}

// Field describes a fixed-width field that text is rendered into with
// [Render]. The zero value leaves text unchanged.
type Field struct {
	// MinWidth is the minimum number of columns of the rendered text. Shorter
	// text is padded with the Fill character.
	MinWidth int

	// MaxWidth is the maximum number of columns of the rendered text. It only
	// applies if Truncate is set. Text is always cut between grapheme
	// clusters, so the result may be narrower than MaxWidth.
	MaxWidth int
	Truncate bool

	// Align places the text within the padding. Unknown values align left.
	Align Alignment

	// Fill is the character used for padding. If it is 0 or has no width of
	// its own, padding is done with spaces. A fill character which is wider
	// than one column is never split: columns which cannot be covered with
	// whole fill characters are padded with spaces next to the text.
	Fill rune

	// EastAsian selects the East Asian context for measuring the text and the
	// fill character (see [StringWidthCJK]).
	EastAsian bool
}

// Render returns str formatted into the given field. The text is first
// truncated to f.MaxWidth columns if f.Truncate is set, then padded to
// f.MinWidth columns. Rendering cannot fail: a maximum width of 0 results in
// an empty (but possibly padded) field.
func Render(str string, f Field) string {
	// Nothing to do.
	if f.MinWidth <= 0 && !f.Truncate {
		return str
	}

	var width int
	if f.Truncate {
		str, width = truncate(str, f.MaxWidth, f.EastAsian)
	} else {
		width = scanWidth(nil, str, f.EastAsian)
	}

	padding := f.MinWidth - width
	if padding <= 0 {
		return str
	}
	fill, fillWidth := fillCharacter(f.Fill, f.EastAsian)
	preFill, preSpaces, postSpaces, postFill := distributePadding(padding, fillWidth, f.Align)

	var b strings.Builder
	b.Grow(len(str) + padding*utf8.UTFMax)
	writeRepeated(&b, fill, preFill)
	writeRepeated(&b, ' ', preSpaces)
	b.WriteString(str)
	writeRepeated(&b, ' ', postSpaces)
	writeRepeated(&b, fill, postFill)
	return b.String()
}

// TruncateString returns the longest prefix of str which consists of whole
// extended grapheme clusters and is at most maxWidth columns wide, along with
// its width. If str fits, it is returned unchanged. A negative maxWidth is
// treated as 0.
func TruncateString(str string, maxWidth int) (truncated string, width int) {
	return truncate(str, maxWidth, false)
}

// TruncateStringCJK is like [TruncateString] but measures in an East Asian
// context (see [StringWidthCJK]).
func TruncateStringCJK(str string, maxWidth int) (truncated string, width int) {
	return truncate(str, maxWidth, true)
}

// truncate cuts str before the first grapheme cluster which would make it
// wider than maxWidth.
func truncate(str string, maxWidth int, cjk bool) (string, int) {
	if maxWidth < 0 {
		maxWidth = 0
	}
	var (
		width   int
		cluster string
		rest    = str
		state   = -1
	)
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusterWidth := scanWidth(nil, cluster, cjk)
		if width+clusterWidth > maxWidth {
			return str[:len(str)-len(rest)-len(cluster)], width
		}
		width += clusterWidth
	}
	return str, width
}

// fillCharacter returns the character to pad with and its width. Control
// characters count as one column. Zero-width characters would never fill
// anything, so they are replaced with a space.
func fillCharacter(fill rune, cjk bool) (rune, int) {
	if fill == 0 {
		return ' ', 1
	}
	switch width := runeWidth(fill, cjk); width {
	case Undefined:
		return fill, 1
	case 0:
		return ' ', 1
	default:
		return fill, width
	}
}

// distributePadding splits the given number of padding columns into the
// number of fill characters before the text, the spaces between those and the
// text, the spaces after the text, and the fill characters after those.
func distributePadding(padding, fillWidth int, align Alignment) (preFill, preSpaces, postSpaces, postFill int) {
	switch align {
	case AlignRight:
		return padding / fillWidth, padding % fillWidth, 0, 0
	case AlignCenter:
		left, right := padding/2, (padding+1)/2
		preFill, preSpaces = left/fillWidth, left%fillWidth
		postSpaces, postFill = right%fillWidth, right/fillWidth

		// The leftover spaces on both sides add up to at least one more fill
		// character. Move it to the right.
		if excess := preSpaces - (fillWidth - postSpaces); excess >= 0 {
			preSpaces = 0
			postSpaces = excess
			postFill++
		}
		return
	default:
		return 0, 0, padding % fillWidth, padding / fillWidth
	}
}

// writeRepeated writes r to b n times.
func writeRepeated(b *strings.Builder, r rune, n int) {
	for ; n > 0; n-- {
		b.WriteRune(r)
	}
}

// Text is a string which is measured and formatted by its display width
// instead of its byte or rune count. Converting a string to Text does not copy
// it.
//
// Text implements [fmt.Formatter] for the verbs %s, %v and %q. The width of
// the verb is the minimum display width, the precision the maximum display
// width (text is truncated between grapheme clusters). As with strings, text
// is aligned to the right unless the '-' flag is given. The '0' flag pads
// right-aligned text with zeros.
//
//	fmt.Sprintf("[%-6s]", monowidth.Text("字字"))  // "[字字  ]"
//	fmt.Sprintf("[%.3s]", monowidth.Text("字字"))  // "[字]"
type Text string

// Width returns the display width of the text (see [StringWidth]).
func (t Text) Width() int {
	return StringWidth(string(t))
}

// WidthCJK returns the display width of the text in an East Asian context
// (see [StringWidthCJK]).
func (t Text) WidthCJK() int {
	return StringWidthCJK(string(t))
}

// Render returns the text formatted into the given field (see [Render]).
func (t Text) Render(f Field) string {
	return Render(string(t), f)
}

// String returns the text as a string.
func (t Text) String() string {
	return string(t)
}

// Format implements [fmt.Formatter].
func (t Text) Format(s fmt.State, verb rune) {
	str := string(t)
	switch verb {
	case 's', 'v', 'q':
	default:
		fmt.Fprintf(s, "%%!%c(monowidth.Text=%s)", verb, str)
		return
	}

	if maxWidth, ok := s.Precision(); ok {
		str, _ = TruncateString(str, maxWidth)
	}
	if verb == 'q' {
		str = strconv.Quote(str)
	}

	field := Field{Align: AlignRight}
	field.MinWidth, _ = s.Width()
	if s.Flag('-') {
		field.Align = AlignLeft
	} else if s.Flag('0') {
		field.Fill = '0'
	}
	io.WriteString(s, Render(str, field))
}
