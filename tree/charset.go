package tree

import (
	"fmt"
	"sort"
)

// CharSet names a table of glyphs used to draw the tree.
type CharSet string

const (
	CharSetDefault CharSet = "default"
	CharSetASCII   CharSet = "ascii"
	CharSetHeavy   CharSet = "heavy"
	CharSetDouble  CharSet = "double"
	CharSetRounded CharSet = "rounded"
	CharSetArrows  CharSet = "arrows"
	CharSetBullets CharSet = "bullets"
	CharSetBulbs   CharSet = "bulbs"
)

// Characters holds the four glyphs of a character set.
//
// Indent and Straight are emitted once per ancestor level: Indent below a
// last child, Straight below a child that still has siblings after it.
// Elbow marks a last child, Split every other child.
type Characters struct {
	Indent   string
	Straight string
	Split    string
	Elbow    string
}

var charSets = map[CharSet]Characters{
	CharSetASCII: {
		Indent:   "   ",
		Straight: "|  ",
		Split:    "|- ",
		Elbow:    "`- ",
	},
	CharSetHeavy: {
		Indent:   "   ",
		Straight: "┃  ",
		Split:    "┣━ ",
		Elbow:    "┗━ ",
	},
	CharSetDouble: {
		Indent:   "   ",
		Straight: "║  ",
		Split:    "╠═ ",
		Elbow:    "╚═ ",
	},
	CharSetRounded: {
		Indent:   "   ",
		Straight: "│  ",
		Split:    "╰─ ",
		Elbow:    "╰─ ",
	},
	CharSetArrows: {
		Indent:   "   ",
		Straight: "→  ",
		Split:    "↳ ",
		Elbow:    "↴ ",
	},
	CharSetBullets: {
		Indent:   "   ",
		Straight: "   ",
		Split:    "•  ",
		Elbow:    "•  ",
	},
	CharSetBulbs: {
		Indent:   "   ",
		Straight: "│  ",
		Split:    "├○ ",
		Elbow:    "└○ ",
	},
	CharSetDefault: {
		Indent:   "   ",
		Straight: "│  ",
		Split:    "├─ ",
		Elbow:    "└─ ",
	},
}

// Lookup returns the glyphs of cs. It panics if cs is not a known set.
func Lookup(cs CharSet) Characters {
	chars, ok := charSets[cs]
	if !ok {
		panic(fmt.Sprintf("tree: unknown character set %q", string(cs)))
	}
	return chars
}

// ParseCharSet validates a character set name.
func ParseCharSet(name string) (CharSet, error) {
	cs := CharSet(name)
	if _, ok := charSets[cs]; !ok {
		return "", fmt.Errorf("unknown character set %q", name)
	}
	return cs, nil
}

// CharSets returns all character set names in sorted order.
func CharSets() []CharSet {
	result := make([]CharSet, 0, len(charSets))
	for cs := range charSets {
		result = append(result, cs)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}
