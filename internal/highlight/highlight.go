// Package highlight wraps chroma syntax highlighting behind an explicitly
// constructed Highlighter so the style registry is resolved once at startup
// and shared by reference, not reached through package-level state.
package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is used when no code theme is configured.
const DefaultStyle = "monokai"

// ErrUnknownStyle indicates the requested chroma style does not exist.
var ErrUnknownStyle = errors.New("unknown code highlight style")

// Highlighter renders code blocks to HTML with CSS classes. Construct once
// with New and share; it is safe for concurrent use.
type Highlighter struct {
	style *chroma.Style
}

// New resolves the named chroma style. An empty name selects DefaultStyle;
// an unknown name is an error rather than a silent fallback so a typo in
// @code-theme is visible.
func New(styleName string) (*Highlighter, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	style, ok := styles.Registry[styleName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	return &Highlighter{style: style}, nil
}

// HTML renders code as a highlighted <pre> fragment using CSS classes.
// Unknown languages fall back to plain-text tokenization. highlighted holds
// 1-based line numbers to emphasize, already expanded from the fence's
// range spec.
func (h *Highlighter) HTML(code, language string, highlighted []int) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenizing %s code: %w", language, err)
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.HighlightLines(toRanges(highlighted)),
	)

	var sb strings.Builder
	if err := formatter.Format(&sb, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting %s code: %w", language, err)
	}
	return sb.String(), nil
}

// CSS returns the stylesheet for the configured style, matching the classes
// emitted by HTML.
func (h *Highlighter) CSS() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var sb strings.Builder
	if err := formatter.WriteCSS(&sb, h.style); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return sb.String(), nil
}

// toRanges converts a sorted-or-not list of line numbers into the inclusive
// [start, end] pairs chroma expects, merging adjacent lines.
func toRanges(lines []int) [][2]int {
	if len(lines) == 0 {
		return nil
	}
	sorted := make([]int, len(lines))
	copy(sorted, lines)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var ranges [][2]int
	start, end := sorted[0], sorted[0]
	for _, n := range sorted[1:] {
		if n == end || n == end+1 {
			end = n
			continue
		}
		ranges = append(ranges, [2]int{start, end})
		start, end = n, n
	}
	return append(ranges, [2]int{start, end})
}
