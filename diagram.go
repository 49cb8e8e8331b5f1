package mdeck

import "strings"

// DiagramNode is one box of a diagram graph. Name identifies the node;
// Label is its display text, defaulting to the name for auto-created nodes.
type DiagramNode struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// DiagramEdge is a directed connection between two named nodes, with an
// optional label.
type DiagramEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// ParseDiagram compiles the text content of a @diagram fence into a
// node/edge graph. Each non-blank line is an edge ("From -> To: label"), a
// node definition ("Name: label"), or a bare node name; an optional list
// bullet prefix and trailing "(...)" metadata are stripped first. Nodes are
// registered in first-reference order, and a later definition line updates
// an existing node's label in place without reordering it. The parse never
// fails; unrecognizable content yields empty lists.
func ParseDiagram(content string) ([]DiagramNode, []DiagramEdge) {
	var nodes []DiagramNode
	var edges []DiagramEdge
	seen := make(map[string]int)

	// reference auto-creates a node labeled with its own name; define also
	// relabels a node that already exists, keeping its position.
	reference := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = len(nodes)
			nodes = append(nodes, DiagramNode{Name: name, Label: name})
		}
	}
	define := func(name, label string) {
		if idx, ok := seen[name]; ok {
			nodes[idx].Label = label
			return
		}
		seen[name] = len(nodes)
		nodes = append(nodes, DiagramNode{Name: name, Label: label})
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, bullet := range []string{"- ", "+ ", "* "} {
			if rest, ok := strings.CutPrefix(trimmed, bullet); ok {
				trimmed = rest
				break
			}
		}
		if trimmed == "" {
			continue
		}

		// Metadata parens are stripped before any classification so colons
		// inside them never register as edge or definition separators.
		trimmed = stripTrailingParens(trimmed)

		if from, rest, found := strings.Cut(trimmed, " -> "); found {
			from = strings.TrimSpace(from)
			to, label, _ := strings.Cut(rest, ": ")
			to = strings.TrimSpace(to)
			label = strings.TrimSpace(label)

			reference(from)
			reference(to)
			edges = append(edges, DiagramEdge{From: from, To: to, Label: label})
			continue
		}

		if name, label, found := strings.Cut(trimmed, ": "); found {
			define(strings.TrimSpace(name), strings.TrimSpace(label))
			continue
		}

		if name := strings.TrimSpace(trimmed); name != "" {
			reference(name)
		}
	}

	return nodes, edges
}

// stripTrailingParens removes a trailing "(key: value, ...)" metadata group.
// The group only counts as metadata when preceded by a space; a parenthesis
// glued to a name is part of the name.
func stripTrailingParens(s string) string {
	trimmed := strings.TrimRight(s, " \t")
	if !strings.HasSuffix(trimmed, ")") {
		return trimmed
	}
	open := strings.LastIndexByte(trimmed, '(')
	if open > 0 && trimmed[open-1] == ' ' {
		return strings.TrimRight(trimmed[:open], " \t")
	}
	return trimmed
}
