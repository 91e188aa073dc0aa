package manifest

import "slices"

// mergeTrees merges two lists of trees.
// Trees with the same root message are merged, first occurrence keeps its position.
func mergeTrees(base, other []Entry) []Entry {
	treeMap := make(map[string]Entry)
	var order []string

	for _, list := range [][]Entry{base, other} {
		for _, t := range list {
			if existing, ok := treeMap[t.Message]; ok {
				treeMap[t.Message] = mergeEntries(existing, t)
				continue
			}
			treeMap[t.Message] = t
			order = append(order, t.Message)
		}
	}

	var result []Entry
	for _, message := range order {
		result = append(result, treeMap[message])
	}
	return result
}

// mergeEntries merges other into base. Children are never merged by message:
// repeated messages are legitimate siblings in a log, so other's children are appended.
func mergeEntries(base, other Entry) Entry {
	result := Entry{
		Message:         base.Message,
		Color:           base.Color,
		CharSet:         base.CharSet,
		Styles:          base.Styles.Merge(other.Styles),
		CascadingStyles: base.CascadingStyles.Merge(other.CascadingStyles),
		ChildStyles:     base.ChildStyles.Merge(other.ChildStyles),
		Children:        append(slices.Clip(base.Children), other.Children...),
	}

	// Last write wins for shorthand color and charset if specified in other
	if other.Color != "" {
		result.Color = other.Color
	}
	if other.CharSet != "" {
		result.CharSet = other.CharSet
	}

	return result
}
