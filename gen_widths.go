//go:build generate

// This program generates the width and presentation sequence property tables
// in widthproperties.go from the Unicode Character Database.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// The number of Unicode code points.
const numCodePoints = 0x110000

// The width classes, named after the constants in properties.go.
const (
	clNarrow = iota
	clZeroWidth
	clWide
	clAmbiguous
)

var classNames = [...]string{
	clZeroWidth: "prZeroWidth",
	clWide:      "prWide",
	clAmbiguous: "prAmbiguous",
}

// The presentation sequence flags, named after the constants in
// properties.go.
const (
	flEmojiSequence = 1 << iota
	flTextSequence
)

var flagNames = map[int]string{
	flEmojiSequence:                  "prEmojiSequence",
	flTextSequence:                   "prTextSequence",
	flEmojiSequence | flTextSequence: "prEmojiSequence | prTextSequence",
}

// Characters which canonically decompose into two Grapheme_Extend characters
// but lack the property themselves.
var zeroWidthExceptions = []int{0x0CC0, 0x0CC7, 0x0CC8, 0x0CCA, 0x0CCB, 0x1B3B, 0x1B3D, 0x1B43}

// HANGUL CHOSEONG FILLER combines with vowel and trailing jamo into a wide
// syllable block even though it is a Default_Ignorable_Code_Point.
const choseongFiller = 0x115F

// Unassigned code points in these ranges default to East_Asian_Width=W.
var defaultWideRanges = [][2]int{
	{0x3400, 0x4DBF},
	{0x4E00, 0x9FFF},
	{0xF900, 0xFAFF},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

// Text presentation sequences of emoji in this block keep their wide width.
var enclosedIdeographicSupplement = [2]int{0x1F200, 0x1F2FF}

// The regular expression for a line of a UCD property file with an optional
// second field, e.g. "0300..036F    ; Grapheme_Extend # Mn ...".
var propertyPattern = regexp.MustCompile(`^([0-9A-F]{4,6})(?:\.\.([0-9A-F]{4,6}))?\s*;\s*([^#;]*?)\s*(?:;\s*([^#]*?)\s*)?(?:#.*)?$`)

// The regular expression for a line of emoji-variation-sequences.txt, e.g.
// "0023 FE0F  ; emoji style;  # (1.1) NUMBER SIGN".
var sequencePattern = regexp.MustCompile(`^([0-9A-F]{4,6}) (FE0[EF])\s*;`)

// config holds the command line flags.
type config struct {
	unicodeVersion    string
	output            string
	dataDir           string
	normalizationTest bool
}

func main() {
	var cfg config
	app := kingpin.New("gen_widths", "Generates the monospace width tables from the Unicode Character Database.")
	app.Flag("unicode-version", "Version of the Unicode Character Database.").Default("15.0.0").StringVar(&cfg.unicodeVersion)
	app.Flag("output", "File to write the generated tables to.").Default("widthproperties.go").StringVar(&cfg.output)
	app.Flag("data-dir", "Read the UCD files from this directory instead of downloading them.").StringVar(&cfg.dataDir)
	app.Flag("normalization-test", "Also save NormalizationTest.txt to the testdata directory.").BoolVar(&cfg.normalizationTest)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	g := &generator{cfg: cfg, logger: logger}
	if err := g.run(); err != nil {
		logger.Fatal("Generating width tables failed", zap.Error(err))
	}
}

// generator collects the UCD properties which determine the width tables.
type generator struct {
	cfg    config
	logger *zap.Logger

	names        map[int]string
	classes      []int
	presentation map[int]int
}

func (g *generator) run() error {
	if err := g.loadNames(); err != nil {
		return err
	}
	if err := g.loadWidths(); err != nil {
		return err
	}
	if err := g.loadPresentation(); err != nil {
		return err
	}

	src := g.emit()
	formatted, err := format.Source(src)
	if err != nil {
		return errors.Wrap(err, "gofmt")
	}
	g.logger.Info("Writing tables", zap.String("file", g.cfg.output))
	if err := os.WriteFile(g.cfg.output, formatted, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", g.cfg.output)
	}

	if g.cfg.normalizationTest {
		return g.saveNormalizationTest()
	}
	return nil
}

// url returns the download location of a UCD file.
func (g *generator) url(file string) string {
	return "https://www.unicode.org/Public/" + g.cfg.unicodeVersion + "/ucd/" + file
}

// open returns the contents of a UCD file, either from the data directory or
// downloaded from unicode.org.
func (g *generator) open(file string) (io.ReadCloser, error) {
	if g.cfg.dataDir != "" {
		path := filepath.Join(g.cfg.dataDir, filepath.FromSlash(file))
		g.logger.Info("Reading", zap.String("path", path))
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", file)
		}
		return f, nil
	}

	url := g.url(file)
	g.logger.Info("Downloading", zap.String("url", url))
	res, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "downloading %s", file)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, errors.Errorf("downloading %s: %s", url, res.Status)
	}
	return res.Body, nil
}

// scanLines calls fn for every line of a UCD file which is not empty or a
// comment.
func (g *generator) scanLines(file string, fn func(line string) error) error {
	body, err := g.open(file)
	if err != nil {
		return err
	}
	defer body.Close()

	scanner := bufio.NewScanner(body)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return errors.Wrapf(err, "%s line %d", file, num)
		}
	}
	return errors.Wrapf(scanner.Err(), "reading %s", file)
}

// scanProperties calls fn for every code point range of a UCD property file,
// along with the first and (possibly empty) second property field.
func (g *generator) scanProperties(file string, fn func(from, to int, value, extra string)) error {
	return g.scanLines(file, func(line string) error {
		fields := propertyPattern.FindStringSubmatch(line)
		if fields == nil {
			return errors.Errorf("unexpected line %q", line)
		}
		from, err := strconv.ParseInt(fields[1], 16, 32)
		if err != nil {
			return errors.WithStack(err)
		}
		to := from
		if fields[2] != "" {
			if to, err = strconv.ParseInt(fields[2], 16, 32); err != nil {
				return errors.WithStack(err)
			}
		}
		fn(int(from), int(to), fields[3], fields[4])
		return nil
	})
}

// loadNames reads the character names used in the table comments.
func (g *generator) loadNames() error {
	g.names = make(map[int]string)
	first := -1
	return g.scanLines("UnicodeData.txt", func(line string) error {
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			return errors.Errorf("unexpected line %q", line)
		}
		cp, err := strconv.ParseInt(fields[0], 16, 32)
		if err != nil {
			return errors.WithStack(err)
		}
		name := fields[1]
		switch {
		case strings.HasSuffix(name, ", First>"):
			first = int(cp)
		case strings.HasSuffix(name, ", Last>"):
			prefix := rangeNamePrefix(strings.TrimSuffix(strings.TrimPrefix(name, "<"), ", Last>"))
			for c := first; c <= int(cp); c++ {
				g.names[c] = fmt.Sprintf("%s-%04X", prefix, c)
			}
		case strings.HasPrefix(name, "<"):
			// Controls have no name.
		default:
			g.names[int(cp)] = name
		}
		return nil
	})
}

// rangeNamePrefix returns the name prefix of the characters in a range of
// UnicodeData.txt.
func rangeNamePrefix(label string) string {
	switch {
	case strings.HasPrefix(label, "CJK Ideograph"):
		return "CJK UNIFIED IDEOGRAPH"
	case strings.HasPrefix(label, "Tangut Ideograph"):
		return "TANGUT IDEOGRAPH"
	}
	return strings.ToUpper(label)
}

// name returns the name of a code point.
func (g *generator) name(c int) string {
	if name, ok := g.names[c]; ok {
		return name
	}
	return fmt.Sprintf("<U+%04X>", c)
}

// loadWidths determines the width class of every code point.
func (g *generator) loadWidths() error {
	g.classes = make([]int, numCodePoints)

	// East Asian Width. Later entries take precedence over the defaults.
	for _, r := range defaultWideRanges {
		for c := r[0]; c <= r[1]; c++ {
			g.classes[c] = clWide
		}
	}
	err := g.scanProperties("EastAsianWidth.txt", func(from, to int, value, _ string) {
		class := clNarrow
		switch value {
		case "W", "F":
			class = clWide
		case "A":
			class = clAmbiguous
		}
		for c := from; c <= to; c++ {
			g.classes[c] = class
		}
	})
	if err != nil {
		return err
	}

	// Zero width characters override the East Asian Width.
	var zero int
	setZero := func(from, to int) {
		for c := from; c <= to; c++ {
			g.classes[c] = clZeroWidth
			zero++
		}
	}
	err = g.scanProperties("DerivedCoreProperties.txt", func(from, to int, value, _ string) {
		if value == "Default_Ignorable_Code_Point" || value == "Grapheme_Extend" {
			setZero(from, to)
		}
	})
	if err != nil {
		return err
	}
	for _, c := range zeroWidthExceptions {
		setZero(c, c)
	}
	err = g.scanProperties("HangulSyllableType.txt", func(from, to int, value, _ string) {
		if value == "V" || value == "T" {
			setZero(from, to)
		}
	})
	if err != nil {
		return err
	}
	g.classes[choseongFiller] = clWide

	g.logger.Info("Loaded widths", zap.Int("zeroWidth", zero))
	return nil
}

// loadPresentation determines the bases of emoji and text presentation
// sequences.
func (g *generator) loadPresentation() error {
	emojiPresentation := make(map[int]bool)
	err := g.scanProperties("emoji/emoji-data.txt", func(from, to int, value, _ string) {
		if value != "Emoji_Presentation" {
			return
		}
		for c := from; c <= to; c++ {
			emojiPresentation[c] = true
		}
	})
	if err != nil {
		return err
	}

	g.presentation = make(map[int]int)
	return g.scanLines("emoji/emoji-variation-sequences.txt", func(line string) error {
		fields := sequencePattern.FindStringSubmatch(line)
		if fields == nil {
			return errors.Errorf("unexpected line %q", line)
		}
		base, err := strconv.ParseInt(fields[1], 16, 32)
		if err != nil {
			return errors.WithStack(err)
		}
		c := int(base)
		switch fields[2] {
		case "FE0F":
			g.presentation[c] |= flEmojiSequence
		case "FE0E":
			if emojiPresentation[c] && (c < enclosedIdeographicSupplement[0] || c > enclosedIdeographicSupplement[1]) {
				g.presentation[c] |= flTextSequence
			}
		}
		return nil
	})
}

// emit returns the unformatted Go source of the property tables.
func (g *generator) emit() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `// Code generated via go generate from gen_widths.go. DO NOT EDIT.

package monowidth

// widthCodePoints are derived from
// %s
// ("Default_Ignorable_Code_Point" and "Grapheme_Extend"),
// %s
// and
// %s
// ("V" and "T"). Code points not listed are narrow. See
// https://www.unicode.org/license.html for the Unicode license agreement.
var widthCodePoints = [][3]int{
`, g.url("DerivedCoreProperties.txt"), g.url("EastAsianWidth.txt"), g.url("HangulSyllableType.txt"))

	var widthRanges int
	for from := 0; from < numCodePoints; {
		to := from
		for to+1 < numCodePoints && g.classes[to+1] == g.classes[from] {
			to++
		}
		if class := g.classes[from]; class != clNarrow {
			g.writeRange(&buf, from, to, classNames[class])
			widthRanges++
		}
		from = to + 1
	}

	fmt.Fprintf(&buf, `}

// presentationCodePoints are taken from
// %s
// and
// %s
// ("Emoji_Presentation" only, outside the Enclosed Ideographic Supplement
// block, for text presentation sequences). See
// https://www.unicode.org/license.html for the Unicode license agreement.
var presentationCodePoints = [][3]int{
`, g.url("emoji/emoji-variation-sequences.txt"), g.url("emoji/emoji-data.txt"))

	var presentationRanges int
	for from := 0; from < numCodePoints; {
		flags := g.presentation[from]
		to := from
		for to+1 < numCodePoints && g.presentation[to+1] == flags {
			to++
		}
		if flags != 0 {
			g.writeRange(&buf, from, to, flagNames[flags])
			presentationRanges++
		}
		from = to + 1
	}
	buf.WriteString("}\n")

	g.logger.Info("Emitted tables",
		zap.Int("widthRanges", widthRanges),
		zap.Int("presentationRanges", presentationRanges),
	)
	return buf.Bytes()
}

// writeRange writes one table entry along with a comment naming its code
// points.
func (g *generator) writeRange(buf *bytes.Buffer, from, to int, value string) {
	if from == to {
		fmt.Fprintf(buf, "\t{0x%04X, 0x%04X, %s}, // %s\n", from, to, value, g.name(from))
		return
	}
	fmt.Fprintf(buf, "\t{0x%04X, 0x%04X, %s}, // [%d] %s..%s\n", from, to, value, to-from+1, g.name(from), g.name(to))
}

// saveNormalizationTest copies NormalizationTest.txt into the testdata
// directory, where the canonical equivalence tests pick it up.
func (g *generator) saveNormalizationTest() error {
	body, err := g.open("NormalizationTest.txt")
	if err != nil {
		return err
	}
	defer body.Close()

	if err := os.MkdirAll("testdata", 0755); err != nil {
		return errors.WithStack(err)
	}
	path := filepath.Join("testdata", "NormalizationTest.txt")
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	n, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	g.logger.Info("Saved normalization test data", zap.String("file", path), zap.Int64("bytes", n))
	return nil
}
