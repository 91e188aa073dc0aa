package tree

// Options are the per-call overrides accepted by New, Add and Colored.
type Options struct {
	// Styles apply to the new node only.
	Styles Style
	// CascadingStyles apply to the new node and all its descendants.
	CascadingStyles Style
	// ChildStyles apply to descendants of the new node, not to the node itself.
	ChildStyles Style
	// CharSet, when set, replaces the inherited character set for the new
	// node and its descendants.
	CharSet CharSet
}

// Option configures a single call.
type Option func(*Options)

// WithStyles merges s into the call's own styles.
func WithStyles(s Style) Option {
	return func(o *Options) {
		o.Styles = o.Styles.Merge(s)
	}
}

// WithCascadingStyles merges s into the call's cascading styles.
func WithCascadingStyles(s Style) Option {
	return func(o *Options) {
		o.CascadingStyles = o.CascadingStyles.Merge(s)
	}
}

// WithChildStyles merges s into the call's child styles.
func WithChildStyles(s Style) Option {
	return func(o *Options) {
		o.ChildStyles = o.ChildStyles.Merge(s)
	}
}

// WithCharSet selects the character set for the new node and its descendants.
func WithCharSet(cs CharSet) Option {
	return func(o *Options) {
		o.CharSet = cs
	}
}

// WithOptions replaces every field of the call's options with o.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
	}
}

func collect(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
