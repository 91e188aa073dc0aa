package tree

import (
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
)

// Draw prints the tree below n to standard output. Write errors are not
// reported; use DrawTo or Fprint to observe them.
func (n *Node) Draw() {
	_, _ = n.Fprint(color.Output)
}

// Fprint writes the tree below n to w and returns the number of lines written.
func (n *Node) Fprint(w io.Writer) (int, error) {
	return n.DrawTo(WriterSink{W: w})
}

// DrawTo renders the tree below n, one sink line per node with a message, and
// returns the number of lines written. n is drawn as the top level without a
// branch glyph. A sink error stops the render.
func (n *Node) DrawTo(sink LineSink) (int, error) {
	return drawNode(sink, n, nil, true, true)
}

// drawNode renders node and its subtree. prefix holds one indentation token
// per ancestor level below the top.
func drawNode(sink LineSink, node *Node, prefix []string, isLast, isTop bool) (int, error) {
	lines := 0
	chars := node.chars

	if node.message != "" {
		line := node.message
		if !isTop {
			branch := chars.Split
			if isLast {
				branch = chars.Elbow
			}
			line = codeGuide + strings.Join(prefix, "") + branch + codeReset + node.message
		}
		if err := sink.WriteLine(line); err != nil {
			return lines, err
		}
		lines++
	}

	childPrefix := prefix
	if !isTop {
		token := chars.Straight
		if isLast {
			token = chars.Indent
		}
		childPrefix = append(slices.Clip(prefix), token)
	}

	for i, child := range node.children {
		n, err := drawNode(sink, child, childPrefix, i == len(node.children)-1, false)
		lines += n
		if err != nil {
			return lines, err
		}
	}

	return lines, nil
}
