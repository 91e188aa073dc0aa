package tree

// Node is one message in a log tree. A node owns its children; the parent and
// root links only point back up the tree.
type Node struct {
	message  string
	children []*Node
	config   Config
	chars    Characters
	parent   *Node
	root     *Node
}

// New starts a tree with message as its root.
//
// It panics if an option names a color or character set that does not exist.
func New(message string, opts ...Option) *Node {
	return newNode(message, Config{CharSet: CharSetDefault}, collect(opts), nil)
}

// Add appends a child to n and returns it.
func (n *Node) Add(message string, opts ...Option) *Node {
	return newNode(message, n.config, collect(opts), n)
}

// Colored appends a child whose own text is drawn in c. The color is applied
// after opts, so it replaces any Styles.Color passed alongside.
func (n *Node) Colored(c Color, message string, opts ...Option) *Node {
	opts = append(opts[:len(opts):len(opts)], WithStyles(Style{Color: c}))
	return n.Add(message, opts...)
}

func newNode(message string, inherited Config, call Options, parent *Node) *Node {
	style, config := Resolve(inherited, call)
	chars := Lookup(config.CharSet)

	text := style.Render(message)
	if message == "" {
		text = ""
	}

	n := &Node{
		message: text,
		config:  config,
		chars:   chars,
		parent:  parent,
	}

	if parent != nil {
		n.root = parent.root
		parent.children = append(parent.children, n)
	} else {
		n.root = n
	}
	return n
}

// Message returns the styled text of n, or "" for a structural node.
func (n *Node) Message() string {
	return n.message
}

// Children returns the children of n in insertion order.
func (n *Node) Children() []*Node {
	result := make([]*Node, len(n.children))
	copy(result, n.children)
	return result
}

// Parent returns the node n was added to, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Root returns the ultimate ancestor of n.
func (n *Node) Root() *Node {
	return n.root
}

// IsRoot reports whether n was created by New.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsLast reports whether n is currently the final child of its parent.
// A root is always last.
func (n *Node) IsLast() bool {
	if n.parent == nil {
		return true
	}
	siblings := n.parent.children
	return siblings[len(siblings)-1] == n
}

// CharSet returns the character set resolved for n.
func (n *Node) CharSet() CharSet {
	return n.config.CharSet
}

// Characters returns the glyphs n is drawn with.
func (n *Node) Characters() Characters {
	return n.chars
}

// Config returns the configuration n hands down to its children.
func (n *Node) Config() Config {
	return n.config
}
