package mdeck

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Frontmatter keys. The @-prefixed keys mirror the per-slide directive
// syntax so a document reads uniformly.
const (
	metaKeyTitle      = "title"
	metaKeyAuthor     = "author"
	metaKeyDate       = "date"
	metaKeyTheme      = "@theme"
	metaKeyTransition = "@transition"
	metaKeyAspect     = "@aspect"
	metaKeyCodeTheme  = "@code-theme"
	metaKeyFooter     = "@footer"
)

// extractFrontmatter strips an optional YAML header delimited by lines
// containing exactly "---" and returns the parsed metadata plus the
// remaining body. A leading BOM is removed before any other check. When no
// well-formed header is present the whole input is returned as body with
// default metadata; this function never fails.
func extractFrontmatter(content string) (PresentationMeta, string) {
	content = strings.TrimPrefix(content, "\ufeff")

	rest, ok := strings.CutPrefix(content, "---\r\n")
	if !ok {
		rest, ok = strings.CutPrefix(content, "---\n")
	}
	if !ok {
		return PresentationMeta{}, content
	}

	end := findClosingDelimiter(rest)
	if end < 0 {
		return PresentationMeta{}, content
	}

	header := rest[:end]
	body := ""
	if nl := strings.IndexByte(rest[end:], '\n'); nl >= 0 {
		body = rest[end+nl+1:]
	}

	return parseFrontmatter(header), body
}

// findClosingDelimiter returns the byte offset of the first line after the
// opening delimiter that is exactly "---" (modulo surrounding whitespace),
// or -1 when none exists. The header must span at least one line, so a ---
// immediately repeating the opening delimiter reads as body.
func findClosingDelimiter(s string) int {
	offset := 0
	for i, line := range strings.Split(s, "\n") {
		if i > 0 && strings.TrimSpace(line) == "---" {
			return offset
		}
		offset += len(line) + 1
	}
	return -1
}

// parseFrontmatter parses the header region as a key/value mapping. A
// structured YAML parse is attempted first; if the header is malformed YAML
// it falls back to tolerant line-by-line parsing. Unrecognized keys are
// ignored and non-string scalars are stringified.
func parseFrontmatter(header string) PresentationMeta {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(header), &raw); err != nil || raw == nil {
		return parseFrontmatterManual(header)
	}

	var meta PresentationMeta
	for key, value := range raw {
		setMetaField(&meta, key, stringifyScalar(value))
	}
	return meta
}

// parseFrontmatterManual is the fallback for malformed YAML: each line is
// split on the first colon, values are trimmed and unquoted.
func parseFrontmatterManual(header string) PresentationMeta {
	var meta PresentationMeta
	for _, line := range strings.Split(header, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		setMetaField(&meta, strings.TrimSpace(key), value)
	}
	return meta
}

// setMetaField assigns a recognized frontmatter key; unknown keys are
// silently dropped.
func setMetaField(meta *PresentationMeta, key, value string) {
	switch key {
	case metaKeyTitle:
		meta.Title = value
	case metaKeyAuthor:
		meta.Author = value
	case metaKeyDate:
		meta.Date = value
	case metaKeyTheme:
		meta.Theme = value
	case metaKeyTransition:
		meta.Transition = value
	case metaKeyAspect:
		meta.Aspect = value
	case metaKeyCodeTheme:
		meta.CodeTheme = value
	case metaKeyFooter:
		meta.Footer = value
	}
}

// stringifyScalar renders a YAML scalar as a string. Unquoted dates and
// numbers arrive as typed values and are formatted rather than rejected.
func stringifyScalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
