package monowidth_test

import (
	"fmt"

	"github.com/scalecode-solutions/monowidth"
)

func ExampleStringWidth() {
	fmt.Println(monowidth.StringWidth("Hello, 世界"))
	// Output: 11
}

func ExampleStringWidthCJK() {
	fmt.Println(monowidth.StringWidth("₁₂₃₄"))
	fmt.Println(monowidth.StringWidthCJK("₁₂₃₄"))
	// Output: 4
	// 8
}

func ExampleStringWidth_presentationSequences() {
	fmt.Println(monowidth.StringWidth("#"))
	fmt.Println(monowidth.StringWidth("#\ufe0f"))
	fmt.Println(monowidth.StringWidth("♈"))
	fmt.Println(monowidth.StringWidth("♈\ufe0e"))
	// Output: 1
	// 2
	// 2
	// 1
}

func ExampleWidth() {
	fmt.Println(monowidth.Width([]byte("ｈｅｌｌｏ")))
	// Output: 10
}

func ExampleRuneWidth() {
	for _, r := range []rune{'a', '世', '\u0301', '\n'} {
		width, ok := monowidth.RuneWidth(r)
		fmt.Println(width, ok)
	}
	// Output: 1 true
	// 2 true
	// 0 true
	// -1 false
}

func ExampleLookup() {
	fmt.Printf("%+v\n", monowidth.Lookup('♈'))
	// Output: {Width:2 WidthCJK:2 EmojiPresentation:true TextPresentation:true}
}

func ExampleTruncateString() {
	str := "a汉字b"
	for maxWidth := 0; maxWidth <= 4; maxWidth++ {
		truncated, width := monowidth.TruncateString(str, maxWidth)
		fmt.Printf("%d: %q (%d)\n", maxWidth, truncated, width)
	}
	// Output: 0: "" (0)
	// 1: "a" (1)
	// 2: "a" (1)
	// 3: "a汉" (3)
	// 4: "a汉" (3)
}

func ExampleRender() {
	field := monowidth.Field{MinWidth: 8, Align: monowidth.AlignCenter, Fill: '*'}
	fmt.Println(monowidth.Render("汉字", field))
	// Output: **汉字**
}

func ExampleText() {
	for _, name := range []string{"Alice", "李小龙", "Zoë"} {
		fmt.Printf("|%-8s|%4d|\n", monowidth.Text(name), monowidth.StringWidth(name))
	}
	// Output: |Alice   |   5|
	// |李小龙  |   6|
	// |Zoë     |   3|
}
