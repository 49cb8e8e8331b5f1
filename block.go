package mdeck

import "encoding/json"

// Block is one element of a slide's ordered block sequence. The variant set
// is closed: Heading, Paragraph, List, CodeBlock, Diagram, Image, BlockQuote,
// Table, HorizontalRule, and ColumnSeparator. Blocks never cross slide
// boundaries and are never mutated after parsing.
type Block interface {
	block()
}

// Compile-time variant checks.
var (
	_ Block = Heading{}
	_ Block = Paragraph{}
	_ Block = List{}
	_ Block = CodeBlock{}
	_ Block = DiagramBlock{}
	_ Block = Image{}
	_ Block = BlockQuote{}
	_ Block = Table{}
	_ Block = HorizontalRule{}
	_ Block = ColumnSeparator{}
)

// Heading is an ATX heading, level 1 through 6.
type Heading struct {
	Level   int      `json:"level"`
	Inlines []Inline `json:"inlines"`
}

// Paragraph is a run of consecutive plain text lines joined with spaces.
type Paragraph struct {
	Inlines []Inline `json:"inlines"`
}

// ListMarker identifies the bullet character of a list item, which drives
// incremental-reveal grouping rather than rendering order.
type ListMarker string

// List item markers.
const (
	MarkerStatic   ListMarker = "static"    // "- " always visible
	MarkerNextStep ListMarker = "next-step" // "+ " advances the reveal step
	MarkerWithPrev ListMarker = "with-prev" // "* " shares the previous step
	MarkerOrdered  ListMarker = "ordered"   // "N. " never gated
)

// ListItem is one item of a List. Children mirror source indentation and
// recursively form a tree of arbitrary depth.
type ListItem struct {
	Marker   ListMarker `json:"marker"`
	Inlines  []Inline   `json:"inlines"`
	Children []ListItem `json:"children,omitempty"`
}

// List is an ordered or unordered list block.
type List struct {
	Ordered bool       `json:"ordered"`
	Items   []ListItem `json:"items"`
}

// CodeBlock is a fenced code block. Language is empty when the info string
// had none. HighlightLines holds 1-based line numbers expanded from the
// info string's {n,a-b} spec.
type CodeBlock struct {
	Language       string `json:"language,omitempty"`
	Code           string `json:"code"`
	HighlightLines []int  `json:"highlight_lines,omitempty"`
}

// DiagramBlock is the raw content of a ```@diagram fence. ParseDiagram turns
// it into a node/edge graph.
type DiagramBlock struct {
	Content string `json:"content"`
}

// ImageDirectives are layout hints parsed out of image alt text. Fill
// dominates downstream layout decisions when set together with others.
type ImageDirectives struct {
	Fill   bool   `json:"fill,omitempty"`
	Fit    bool   `json:"fit,omitempty"`
	Align  string `json:"align,omitempty"` // "left", "right", or "center"
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

// Image is a ![alt](path) block. Alt holds the display text with directive
// tokens stripped.
type Image struct {
	Alt        string          `json:"alt"`
	Path       string          `json:"path"`
	Directives ImageDirectives `json:"directives"`
}

// BlockQuote is one or more consecutive > lines joined with spaces.
type BlockQuote struct {
	Inlines []Inline `json:"inlines"`
}

// Table is a pipe table. The source's separator row is discarded; Rows holds
// only data rows. Each cell is an independently parsed inline sequence.
type Table struct {
	Headers [][]Inline   `json:"headers"`
	Rows    [][][]Inline `json:"rows"`
}

// HorizontalRule is a *** or ___ thematic break.
type HorizontalRule struct{}

// ColumnSeparator is a +++ line splitting a slide into columns.
type ColumnSeparator struct{}

func (Heading) block() {}
func (Paragraph) block() {}
func (List) block() {}
func (CodeBlock) block() {}
func (DiagramBlock) block() {}
func (Image) block() {}
func (BlockQuote) block() {}
func (Table) block() {}
func (HorizontalRule) block() {}
func (ColumnSeparator) block() {}

// marshalTagged wraps a variant's fields with a "type" discriminator so
// decks serialize to self-describing JSON.
func marshalTagged(kind string, v any) ([]byte, error) {
	fields, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(fields) == 2 { // "{}"
		return json.Marshal(map[string]string{"type": kind})
	}
	out := append([]byte(`{"type":"`+kind+`",`), fields[1:]...)
	return out, nil
}

// MarshalJSON implements json.Marshaler.
func (b Heading) MarshalJSON() ([]byte, error) {
	type alias Heading
	return marshalTagged("heading", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return marshalTagged("paragraph", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b List) MarshalJSON() ([]byte, error) {
	type alias List
	return marshalTagged("list", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b CodeBlock) MarshalJSON() ([]byte, error) {
	type alias CodeBlock
	return marshalTagged("code", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b DiagramBlock) MarshalJSON() ([]byte, error) {
	type alias DiagramBlock
	return marshalTagged("diagram", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return marshalTagged("image", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b BlockQuote) MarshalJSON() ([]byte, error) {
	type alias BlockQuote
	return marshalTagged("blockquote", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b Table) MarshalJSON() ([]byte, error) {
	type alias Table
	return marshalTagged("table", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (b HorizontalRule) MarshalJSON() ([]byte, error) {
	return marshalTagged("rule", struct{}{})
}

// MarshalJSON implements json.Marshaler.
func (b ColumnSeparator) MarshalJSON() ([]byte, error) {
	return marshalTagged("column-separator", struct{}{})
}
