package tree

import (
	"reflect"
	"testing"
)

func TestStylePrefix(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		expected string
	}{
		{
			name:     "empty",
			style:    Style{},
			expected: "",
		},
		{
			name:     "foreground",
			style:    Style{Color: ColorRed},
			expected: "\x1b[31m",
		},
		{
			name:     "bright foreground",
			style:    Style{Color: ColorBrightCyan},
			expected: "\x1b[96m",
		},
		{
			name:     "bright background",
			style:    Style{Background: ColorBrightWhite},
			expected: "\x1b[107m",
		},
		{
			name: "all attributes in fixed order",
			style: Style{
				Italic:     Bool(true),
				Inverse:    Bool(true),
				Underline:  Bool(true),
				Bold:       Bool(true),
				Background: ColorBlue,
				Color:      ColorRed,
			},
			expected: "\x1b[31m\x1b[44m\x1b[1m\x1b[4m\x1b[7m\x1b[3m",
		},
		{
			name:     "disabled flags contribute nothing",
			style:    Style{Bold: Bool(false), Italic: Bool(false)},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Prefix(); got != tt.expected {
				t.Errorf("Prefix() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStyleRender_UnstyledStillResets(t *testing.T) {
	if got := (Style{}).Render("plain"); got != "plain\x1b[0m" {
		t.Errorf("Render() = %q", got)
	}
}

func TestStyleMerge(t *testing.T) {
	base := Style{Color: ColorRed, Bold: Bool(true)}

	got := base.Merge(Style{Color: ColorGreen, Bold: Bool(false), Italic: Bool(true)})
	if got.Color != ColorGreen {
		t.Errorf("Color = %q, want %q", got.Color, ColorGreen)
	}
	if got.Bold == nil || *got.Bold {
		t.Errorf("Bold = %v, want explicit false", got.Bold)
	}
	if got.Italic == nil || !*got.Italic {
		t.Errorf("Italic = %v, want true", got.Italic)
	}

	if kept := base.Merge(Style{}); !reflect.DeepEqual(kept, base) {
		t.Errorf("Merge(empty) = %+v, want %+v", kept, base)
	}
}

func TestResolve(t *testing.T) {
	red := Style{Color: ColorRed}
	bold := Style{Bold: Bool(true)}
	italic := Style{Italic: Bool(true)}
	blue := Style{Color: ColorBlue}

	tests := []struct {
		name          string
		inherited     Config
		call          Options
		wantStyle     Style
		wantCascading Style
		wantChild     Style
		wantCharSet   CharSet
	}{
		{
			name:        "nothing set",
			wantCharSet: CharSetDefault,
		},
		{
			name:          "inherited cascading applies and propagates",
			inherited:     Config{CharSet: CharSetDefault, CascadingStyles: red},
			wantStyle:     red,
			wantCascading: red,
			wantCharSet:   CharSetDefault,
		},
		{
			name:          "call cascading applies to the node",
			inherited:     Config{CharSet: CharSetDefault},
			call:          Options{CascadingStyles: bold},
			wantStyle:     bold,
			wantCascading: bold,
			wantCharSet:   CharSetDefault,
		},
		{
			name:        "call child styles skip the node",
			inherited:   Config{CharSet: CharSetDefault},
			call:        Options{ChildStyles: italic},
			wantStyle:   Style{},
			wantChild:   italic,
			wantCharSet: CharSetDefault,
		},
		{
			name:        "inherited child styles apply and keep propagating",
			inherited:   Config{CharSet: CharSetDefault, ChildStyles: italic},
			wantStyle:   italic,
			wantChild:   italic,
			wantCharSet: CharSetDefault,
		},
		{
			name:          "inherited child styles beat inherited cascading",
			inherited:     Config{CharSet: CharSetDefault, CascadingStyles: red, ChildStyles: blue},
			wantStyle:     blue,
			wantCascading: red,
			wantChild:     blue,
			wantCharSet:   CharSetDefault,
		},
		{
			name:          "explicit styles win for the node only",
			inherited:     Config{CharSet: CharSetDefault, CascadingStyles: red, ChildStyles: bold},
			call:          Options{Styles: Style{Color: ColorGreen, Bold: Bool(false)}},
			wantStyle:     Style{Color: ColorGreen, Bold: Bool(false)},
			wantCascading: red,
			wantChild:     bold,
			wantCharSet:   CharSetDefault,
		},
		{
			name:          "call cascading merges over inherited cascading",
			inherited:     Config{CharSet: CharSetDefault, CascadingStyles: red.Merge(bold)},
			call:          Options{CascadingStyles: blue},
			wantStyle:     Style{Color: ColorRed, Bold: Bool(true)},
			wantCascading: Style{Color: ColorBlue, Bold: Bool(true)},
			wantCharSet:   CharSetDefault,
		},
		{
			name:          "call cascading fills attributes the parent left unset",
			inherited:     Config{CharSet: CharSetDefault, CascadingStyles: red},
			call:          Options{CascadingStyles: Style{Color: ColorBlue, Italic: Bool(true)}},
			wantStyle:     Style{Color: ColorRed, Italic: Bool(true)},
			wantCascading: Style{Color: ColorBlue, Italic: Bool(true)},
			wantCharSet:   CharSetDefault,
		},
		{
			name:        "charset inherited",
			inherited:   Config{CharSet: CharSetDouble},
			wantCharSet: CharSetDouble,
		},
		{
			name:        "charset overridden",
			inherited:   Config{CharSet: CharSetDouble},
			call:        Options{CharSet: CharSetBulbs},
			wantCharSet: CharSetBulbs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, next := Resolve(tt.inherited, tt.call)
			if style.Prefix() != tt.wantStyle.Prefix() || !reflect.DeepEqual(style, tt.wantStyle) {
				t.Errorf("style = %+v, want %+v", style, tt.wantStyle)
			}
			if !reflect.DeepEqual(next.CascadingStyles, tt.wantCascading) {
				t.Errorf("cascading = %+v, want %+v", next.CascadingStyles, tt.wantCascading)
			}
			if !reflect.DeepEqual(next.ChildStyles, tt.wantChild) {
				t.Errorf("child = %+v, want %+v", next.ChildStyles, tt.wantChild)
			}
			if next.CharSet != tt.wantCharSet {
				t.Errorf("charset = %q, want %q", next.CharSet, tt.wantCharSet)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range Palette() {
		got, err := ParseColor(string(c))
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %q, %v", c, got, err)
		}
	}
	if len(Palette()) != 16 {
		t.Errorf("palette has %d colors, want 16", len(Palette()))
	}
	if _, err := ParseColor("orange"); err == nil {
		t.Error("ParseColor(orange) expected error")
	}
}

func TestParseCharSet(t *testing.T) {
	if len(CharSets()) != 8 {
		t.Errorf("got %d character sets, want 8", len(CharSets()))
	}
	for _, cs := range CharSets() {
		if _, err := ParseCharSet(string(cs)); err != nil {
			t.Errorf("ParseCharSet(%q) error = %v", cs, err)
		}
	}
	if _, err := ParseCharSet("fancy"); err == nil {
		t.Error("ParseCharSet(fancy) expected error")
	}
}
