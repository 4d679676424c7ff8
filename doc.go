/*
Package monowidth determines the number of columns Unicode text occupies when
printed in a monospace font, such as in a terminal emulator, and formats text
into fixed-width fields.

This package conforms to:
  - Unicode Standard Annex #11 (https://unicode.org/reports/tr11/) for East Asian widths
  - Unicode Technical Standard #51 (https://unicode.org/reports/tr51/) for emoji presentation sequences
  - Unicode version 15.0

# Overview

Using this package, you can:
  - Get the width of a single character ([RuneWidth], [RuneWidthCJK])
  - Get the width of a string ([StringWidth], [Width] and their CJK variants)
  - Pad, align, and truncate text by display width ([Render], [TruncateString], [Text])

Standard Go functions count bytes or code points, neither of which says much
about the space text takes up on screen:

	len("世界")                         // 6 (bytes)
	utf8.RuneCountInString("世界")      // 2 (code points)
	monowidth.StringWidth("世界")       // 4 (columns)

# Character Widths

The width of a character is determined by the first of these rules that
applies:

 1. Printable ASCII characters are one column wide.
 2. The C0 and C1 control characters (except NUL) have no width of their own.
    [RuneWidth] reports them as not ok.
 3. NUL is [NullWidth] columns wide and U+00AD SOFT HYPHEN is
    [SoftHyphenWidth] columns wide.
 4. U+115F HANGUL CHOSEONG FILLER is two columns wide.
 5. Characters which are Default_Ignorable_Code_Point or Grapheme_Extend,
    Hangul vowel and trailing jamo, and the eight Kannada and Balinese vowel
    signs which canonically decompose into Grapheme_Extend characters are zero
    columns wide.
 6. Characters with an East_Asian_Width of Wide (W) or Fullwidth (F) are two
    columns wide.
 7. Characters with an East_Asian_Width of Ambiguous (A) are one column wide,
    or two columns wide in an East Asian context (the CJK variants).
 8. All other characters are one column wide.

[Lookup] returns all properties of a character relevant to its width.

# String Widths

The width of a string is the sum of the widths of its characters, except for:
  - Emoji presentation sequences (e.g. "#\uFE0F", rendered as an emoji),
    which are two columns wide.
  - Text presentation sequences (e.g. "♈\uFE0E", rendered as a
    symbol), which are one column wide outside of an East Asian context.
  - Line breaks ("\r\n", "\r", and "\n"), which are one column wide.
  - Other control characters, which are zero columns wide.

Canonically equivalent strings, such as their NFC and NFD forms, have the same
width outside of an East Asian context.

Note that the widths are computed per character, not per grapheme cluster.
Ligatures such as emoji ZWJ sequences may be rendered narrower than their
width, depending on the terminal and font:

	monowidth.StringWidth("👩\u200D🔬") // 4

# Display Formatting

[Render] truncates text to a maximum width and pads it to a minimum width as
described by a [Field]. Text is never cut within a grapheme cluster, and wide
fill characters are never split. [Text] integrates the same rules with the fmt
package:

	fmt.Printf("|%-8s|\n", monowidth.Text("汉字"))  // |汉字    |
	fmt.Printf("|%8.3s|\n", monowidth.Text("汉字")) // |      汉|

Note: Actual rendering depends on your terminal/font. These calculations
follow common conventions but may not match all environments.
*/
package monowidth
