package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	treehcl "github.com/ms-henglu/logtree/internal/hcl"
	"github.com/ms-henglu/logtree/tree"
)

// FilePattern matches tree manifest files.
const FilePattern = "*.tree.hcl"

// Manifest represents the trees declared in one or more *.tree.hcl files
type Manifest struct {
	Trees []Entry
}

// Entry represents a tree or node block. The block label is the message.
type Entry struct {
	Message         string
	Color           tree.Color // named color shorthand, wins over Styles.Color
	CharSet         tree.CharSet
	Styles          tree.Style
	CascadingStyles tree.Style
	ChildStyles     tree.Style
	Children        []Entry
}

// Parse parses a manifest file
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses manifest source; filename is only used in diagnostics.
func ParseBytes(data []byte, filename string) (*Manifest, error) {
	f, diags := hclsyntax.ParseConfig(data, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest: %s", diags.Error())
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to parse manifest: unexpected body type %T", f.Body)
	}

	for _, name := range treehcl.SortedAttributeNames(body) {
		attr := body.Attributes[name]
		diags = append(diags, treehcl.AttributeError(attr, "Unsupported argument",
			fmt.Sprintf("An argument named %q is not expected at the top level; declare trees with tree blocks.", name)))
	}

	for _, block := range body.Blocks {
		if block.Type != "tree" {
			diags = append(diags, treehcl.BlockError(block, "Unsupported block type",
				fmt.Sprintf("Blocks of type %q are not expected at the top level.", block.Type)))
		}
	}

	var trees []Entry
	for _, block := range treehcl.BlocksByType(body, "tree") {
		entry, entryDiags := decodeEntry(block)
		diags = append(diags, entryDiags...)
		trees = append(trees, entry)
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid manifest: %s", diags.Error())
	}

	return &Manifest{Trees: mergeTrees(nil, trees)}, nil
}

func decodeEntry(block *hclsyntax.Block) (Entry, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var entry Entry

	if len(block.Labels) != 1 {
		diags = append(diags, treehcl.BlockError(block, "Invalid block labels",
			fmt.Sprintf("A %s block requires exactly one label: its message.", block.Type)))
		return entry, diags
	}
	entry.Message = block.Labels[0]

	for _, name := range treehcl.SortedAttributeNames(block.Body) {
		attr := block.Body.Attributes[name]
		switch name {
		case "charset":
			s, d := treehcl.StringValue(attr)
			if diags = append(diags, d...); d.HasErrors() {
				continue
			}
			cs, err := tree.ParseCharSet(s)
			if err != nil {
				diags = append(diags, treehcl.AttributeError(attr, "Invalid character set", err.Error()))
				continue
			}
			entry.CharSet = cs
		case "color":
			c, d := decodeColor(attr)
			diags = append(diags, d...)
			entry.Color = c
		default:
			diags = append(diags, treehcl.AttributeError(attr, "Unsupported argument",
				fmt.Sprintf("An argument named %q is not expected in a %s block.", name, block.Type)))
		}
	}

	for _, child := range block.Body.Blocks {
		switch child.Type {
		case "styles", "cascading_styles", "child_styles":
			if len(child.Labels) != 0 {
				diags = append(diags, treehcl.BlockError(child, "Invalid block labels",
					fmt.Sprintf("A %s block takes no labels.", child.Type)))
				continue
			}
			style, d := decodeStyle(child)
			diags = append(diags, d...)
			switch child.Type {
			case "styles":
				entry.Styles = entry.Styles.Merge(style)
			case "cascading_styles":
				entry.CascadingStyles = entry.CascadingStyles.Merge(style)
			case "child_styles":
				entry.ChildStyles = entry.ChildStyles.Merge(style)
			}
		case "node":
			node, d := decodeEntry(child)
			diags = append(diags, d...)
			entry.Children = append(entry.Children, node)
		default:
			diags = append(diags, treehcl.BlockError(child, "Unsupported block type",
				fmt.Sprintf("Blocks of type %q are not expected in a %s block.", child.Type, block.Type)))
		}
	}

	return entry, diags
}

func decodeStyle(block *hclsyntax.Block) (tree.Style, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var style tree.Style

	for _, name := range treehcl.SortedAttributeNames(block.Body) {
		attr := block.Body.Attributes[name]
		switch name {
		case "color":
			c, d := decodeColor(attr)
			diags = append(diags, d...)
			style.Color = c
		case "background":
			c, d := decodeColor(attr)
			diags = append(diags, d...)
			style.Background = c
		case "bold", "underline", "inverse", "italic":
			v, d := treehcl.BoolValue(attr)
			if diags = append(diags, d...); d.HasErrors() {
				continue
			}
			flag := tree.Bool(v)
			switch name {
			case "bold":
				style.Bold = flag
			case "underline":
				style.Underline = flag
			case "inverse":
				style.Inverse = flag
			case "italic":
				style.Italic = flag
			}
		default:
			diags = append(diags, treehcl.AttributeError(attr, "Unsupported argument",
				fmt.Sprintf("An argument named %q is not expected in a %s block.", name, block.Type)))
		}
	}

	for _, child := range block.Body.Blocks {
		diags = append(diags, treehcl.BlockError(child, "Unsupported block type",
			fmt.Sprintf("Blocks of type %q are not expected in a %s block.", child.Type, block.Type)))
	}

	return style, diags
}

func decodeColor(attr *hclsyntax.Attribute) (tree.Color, hcl.Diagnostics) {
	s, diags := treehcl.StringValue(attr)
	if diags.HasErrors() {
		return "", diags
	}
	c, err := tree.ParseColor(s)
	if err != nil {
		return "", hcl.Diagnostics{treehcl.AttributeError(attr, "Invalid color", err.Error())}
	}
	return c, nil
}

// Build creates the tree described by the entry.
func (e Entry) Build() *tree.Node {
	opts := e.options()
	if e.Color != "" {
		opts = append(opts, tree.WithStyles(tree.Style{Color: e.Color}))
	}
	root := tree.New(e.Message, opts...)
	for _, child := range e.Children {
		child.addTo(root)
	}
	return root
}

func (e Entry) addTo(parent *tree.Node) {
	var n *tree.Node
	if e.Color != "" {
		n = parent.Colored(e.Color, e.Message, e.options()...)
	} else {
		n = parent.Add(e.Message, e.options()...)
	}
	for _, child := range e.Children {
		child.addTo(n)
	}
}

func (e Entry) options() []tree.Option {
	return []tree.Option{tree.WithOptions(tree.Options{
		Styles:          e.Styles,
		CascadingStyles: e.CascadingStyles,
		ChildStyles:     e.ChildStyles,
		CharSet:         e.CharSet,
	})}
}

// Build creates every tree of the manifest in declaration order.
func (m *Manifest) Build() []*tree.Node {
	roots := make([]*tree.Node, 0, len(m.Trees))
	for _, t := range m.Trees {
		roots = append(roots, t.Build())
	}
	return roots
}

// DiscoverManifests finds all *.tree.hcl files in the given directory
// and returns them sorted alphabetically
func DiscoverManifests(dir string) ([]string, error) {
	pattern := filepath.Join(dir, FilePattern)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob manifest files: %w", err)
	}

	if len(matches) == 0 {
		return nil, nil
	}

	// Sort alphabetically to ensure deterministic loading order
	sort.Strings(matches)
	return matches, nil
}

// ParseMultiple parses multiple manifest files and merges them.
// Files are processed in the order provided (should be alphabetically sorted).
// Trees with the same root message are merged:
// - children of later files are appended
// - attributes and styles use "last write wins" semantics
func ParseMultiple(paths []string) (*Manifest, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no manifest files provided")
	}

	merged := &Manifest{}
	for _, path := range paths {
		other, err := Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		merged = mergeManifests(merged, other)
	}

	return merged, nil
}

// mergeManifests merges two manifests
func mergeManifests(base, other *Manifest) *Manifest {
	return &Manifest{
		Trees: mergeTrees(base.Trees, other.Trees),
	}
}
