package tree

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
)

// Color is a named entry of the 16-color terminal palette.
type Color string

const (
	ColorBlack         Color = "black"
	ColorRed           Color = "red"
	ColorGreen         Color = "green"
	ColorYellow        Color = "yellow"
	ColorBlue          Color = "blue"
	ColorMagenta       Color = "magenta"
	ColorCyan          Color = "cyan"
	ColorWhite         Color = "white"
	ColorBrightBlack   Color = "brightBlack"
	ColorBrightRed     Color = "brightRed"
	ColorBrightGreen   Color = "brightGreen"
	ColorBrightYellow  Color = "brightYellow"
	ColorBrightBlue    Color = "brightBlue"
	ColorBrightMagenta Color = "brightMagenta"
	ColorBrightCyan    Color = "brightCyan"
	ColorBrightWhite   Color = "brightWhite"
)

type paletteEntry struct {
	fg color.Attribute
	bg color.Attribute
}

// palette maps every named color to its SGR foreground and background codes.
var palette = map[Color]paletteEntry{
	ColorBlack:         {color.FgBlack, color.BgBlack},
	ColorRed:           {color.FgRed, color.BgRed},
	ColorGreen:         {color.FgGreen, color.BgGreen},
	ColorYellow:        {color.FgYellow, color.BgYellow},
	ColorBlue:          {color.FgBlue, color.BgBlue},
	ColorMagenta:       {color.FgMagenta, color.BgMagenta},
	ColorCyan:          {color.FgCyan, color.BgCyan},
	ColorWhite:         {color.FgWhite, color.BgWhite},
	ColorBrightBlack:   {color.FgHiBlack, color.BgHiBlack},
	ColorBrightRed:     {color.FgHiRed, color.BgHiRed},
	ColorBrightGreen:   {color.FgHiGreen, color.BgHiGreen},
	ColorBrightYellow:  {color.FgHiYellow, color.BgHiYellow},
	ColorBrightBlue:    {color.FgHiBlue, color.BgHiBlue},
	ColorBrightMagenta: {color.FgHiMagenta, color.BgHiMagenta},
	ColorBrightCyan:    {color.FgHiCyan, color.BgHiCyan},
	ColorBrightWhite:   {color.FgHiWhite, color.BgHiWhite},
}

var (
	codeReset     = sgr(color.Reset)
	codeBold      = sgr(color.Bold)
	codeItalic    = sgr(color.Italic)
	codeUnderline = sgr(color.Underline)
	codeInverse   = sgr(color.ReverseVideo)

	// codeGuide colors the branch glyphs and indentation.
	codeGuide = sgr(color.FgHiBlack)
)

func sgr(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

// Palette returns the names of all palette colors in sorted order.
func Palette() []Color {
	result := make([]Color, 0, len(palette))
	for c := range palette {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

// ParseColor validates a palette color name.
func ParseColor(name string) (Color, error) {
	c := Color(name)
	if _, ok := palette[c]; !ok {
		return "", fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// Foreground returns the escape sequence selecting c as text color.
// It panics if c is not a palette color.
func (c Color) Foreground() string {
	return sgr(c.entry().fg)
}

// Background returns the escape sequence selecting c as background color.
// It panics if c is not a palette color.
func (c Color) Background() string {
	return sgr(c.entry().bg)
}

func (c Color) entry() paletteEntry {
	e, ok := palette[c]
	if !ok {
		panic(fmt.Sprintf("tree: unknown color %q", string(c)))
	}
	return e
}
