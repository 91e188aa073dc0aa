package tree

import "strings"

// Style is a set of optional text attributes. Empty colors and nil flags are
// unspecified and never override another style in a merge.
type Style struct {
	Color      Color
	Background Color
	Bold       *bool
	Underline  *bool
	Inverse    *bool
	Italic     *bool
}

// Bool returns a pointer to v, for use in Style flags.
func Bool(v bool) *bool {
	return &v
}

// Merge returns s with every attribute specified in over replacing its own.
func (s Style) Merge(over Style) Style {
	if over.Color != "" {
		s.Color = over.Color
	}
	if over.Background != "" {
		s.Background = over.Background
	}
	if over.Bold != nil {
		s.Bold = over.Bold
	}
	if over.Underline != nil {
		s.Underline = over.Underline
	}
	if over.Inverse != nil {
		s.Inverse = over.Inverse
	}
	if over.Italic != nil {
		s.Italic = over.Italic
	}
	return s
}

// IsZero reports whether no attribute is specified.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Prefix returns the escape sequences of every enabled attribute in the order
// color, background, bold, underline, inverse, italic.
func (s Style) Prefix() string {
	var b strings.Builder
	if s.Color != "" {
		b.WriteString(s.Color.Foreground())
	}
	if s.Background != "" {
		b.WriteString(s.Background.Background())
	}
	if enabled(s.Bold) {
		b.WriteString(codeBold)
	}
	if enabled(s.Underline) {
		b.WriteString(codeUnderline)
	}
	if enabled(s.Inverse) {
		b.WriteString(codeInverse)
	}
	if enabled(s.Italic) {
		b.WriteString(codeItalic)
	}
	return b.String()
}

// Render wraps text in the style's prefix and a trailing reset.
func (s Style) Render(text string) string {
	return s.Prefix() + text + codeReset
}

func enabled(flag *bool) bool {
	return flag != nil && *flag
}

// Config is the resolved configuration a node hands down to its children.
type Config struct {
	CharSet         CharSet
	CascadingStyles Style
	ChildStyles     Style
}

// Resolve merges the configuration inherited from a parent with the overrides
// of one call. It returns the style baked into the new node's text and the
// configuration the new node passes to its own children.
//
// The node's style is, later winning: the call's cascading styles, inherited
// cascading styles, inherited child styles, the call's styles. An inherited
// cascading attribute therefore beats the call's cascading value on the node
// itself, while descendants see the call's value. The call's child styles
// reach descendants only.
func Resolve(inherited Config, call Options) (Style, Config) {
	effective := call.CascadingStyles.
		Merge(inherited.CascadingStyles).
		Merge(inherited.ChildStyles).
		Merge(call.Styles)

	next := Config{
		CharSet:         inherited.CharSet,
		CascadingStyles: inherited.CascadingStyles.Merge(call.CascadingStyles),
		ChildStyles:     inherited.ChildStyles.Merge(call.ChildStyles),
	}
	if call.CharSet != "" {
		next.CharSet = call.CharSet
	}
	if next.CharSet == "" {
		next.CharSet = CharSetDefault
	}

	return effective, next
}
