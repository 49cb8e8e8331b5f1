package mdeck

import "strings"

// extractDirectives pulls @name: value lines from the front of a raw slide
// chunk. Blank lines before and between directives are skipped; the first
// non-blank line that does not match the directive grammar ends the
// directive region and everything from it onward is returned as content.
func extractDirectives(raw string) ([]Directive, string) {
	var directives []Directive
	var content []string
	inHeader := true

	for _, line := range strings.Split(raw, "\n") {
		if inHeader {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if d, ok := parseDirectiveLine(trimmed); ok {
				directives = append(directives, d)
				continue
			}
			inHeader = false
		}
		content = append(content, line)
	}

	return directives, strings.Join(content, "\n")
}

// parseDirectiveLine parses one trimmed line as a directive. A line that
// merely starts with @ but lacks a colon, or whose name contains characters
// outside [A-Za-z0-9_-], is not a directive.
func parseDirectiveLine(line string) (Directive, bool) {
	rest, ok := strings.CutPrefix(line, "@")
	if !ok {
		return Directive{}, false
	}
	name, value, found := strings.Cut(rest, ":")
	if !found {
		return Directive{}, false
	}
	name = strings.TrimSpace(name)
	if !isDirectiveName(name) {
		return Directive{}, false
	}
	return Directive{Name: name, Value: strings.TrimSpace(value)}, true
}

// isDirectiveName reports whether name is non-empty and contains only
// alphanumerics, hyphens, and underscores.
func isDirectiveName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
