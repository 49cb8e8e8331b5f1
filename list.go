package mdeck

import "strings"

// isListStart matches an unordered list item: -, +, or * followed by a
// space. Horizontal rules are screened out by dispatch order before this
// runs on *** lines; a bare "* " start is always a list.
func isListStart(line string) bool {
	if len(line) < 2 || line[1] != ' ' {
		return false
	}
	switch line[0] {
	case '-', '+', '*':
		return !isHorizontalRule(line)
	}
	return false
}

// isOrderedListStart matches digits followed by ". ".
func isOrderedListStart(line string) bool {
	num, _, found := strings.Cut(line, ". ")
	if !found || num == "" {
		return false
	}
	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return false
		}
	}
	return true
}

// parseList consumes a list block starting at lines[start] and builds the
// item tree from indentation. Blank lines are tolerated as separators only
// when the next non-blank line is itself a list item. Returns the block and
// the index after the consumed region.
func parseList(lines []string, start int, ordered bool) (Block, int) {
	var items []ListItem
	i := start

	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				next := strings.TrimSpace(lines[j])
				if isListStart(next) || isOrderedListStart(next) {
					i = j
					continue
				}
			}
			break
		}

		if lineIndent(line) > 0 {
			// Stray indented item with no parent at this level; attach it to
			// the last item rather than losing it.
			text, marker, ok := cutListItem(trimmed)
			if !ok || len(items) == 0 {
				break
			}
			items[len(items)-1].Children = append(items[len(items)-1].Children, ListItem{
				Marker:  marker,
				Inlines: parseInlines(text),
			})
			i++
			continue
		}

		var text string
		var marker ListMarker
		var ok bool
		if ordered {
			text, marker, ok = cutOrderedItem(trimmed)
		} else {
			text, marker, ok = cutUnorderedItem(trimmed)
		}
		if !ok {
			break
		}

		item := ListItem{Marker: marker, Inlines: parseInlines(text)}
		item.Children, i = collectChildren(lines, i+1, 0)
		items = append(items, item)
	}

	return List{Ordered: ordered, Items: items}, i
}

// collectChildren gathers the child subtree of a list item: consecutive
// items indented deeper than parentIndent, recursing for each level so
// arbitrary nesting depth is supported. Each call consumes at least one
// line or returns, keeping termination obvious.
func collectChildren(lines []string, start, parentIndent int) ([]ListItem, int) {
	var children []ListItem
	i := start

	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			i++
			continue
		}

		indent := lineIndent(line)
		if indent <= parentIndent {
			break
		}

		text, marker, ok := cutListItem(trimmed)
		if !ok {
			break
		}

		child := ListItem{Marker: marker, Inlines: parseInlines(text)}
		child.Children, i = collectChildren(lines, i+1, indent)
		children = append(children, child)
	}

	return children, i
}

// cutUnorderedItem strips an unordered marker and maps it: - Static,
// + NextStep, * WithPrev.
func cutUnorderedItem(line string) (string, ListMarker, bool) {
	if len(line) < 2 || line[1] != ' ' {
		return "", "", false
	}
	var marker ListMarker
	switch line[0] {
	case '-':
		marker = MarkerStatic
	case '+':
		marker = MarkerNextStep
	case '*':
		marker = MarkerWithPrev
	default:
		return "", "", false
	}
	return line[2:], marker, true
}

// cutOrderedItem strips a numeric "N. " prefix.
func cutOrderedItem(line string) (string, ListMarker, bool) {
	if !isOrderedListStart(line) {
		return "", "", false
	}
	_, rest, _ := strings.Cut(line, ". ")
	return rest, MarkerOrdered, true
}

// cutListItem accepts either marker form.
func cutListItem(line string) (string, ListMarker, bool) {
	if text, marker, ok := cutUnorderedItem(line); ok {
		return text, marker, true
	}
	return cutOrderedItem(line)
}

// lineIndent returns the number of leading whitespace bytes.
func lineIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
