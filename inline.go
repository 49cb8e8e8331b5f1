package mdeck

import "strings"

// Inline is one node of an inline-formatting tree. The variant set is
// closed: Text, Bold, Italic, Strikethrough, Code, and Link. Code content is
// verbatim and never reparsed for further markup.
type Inline interface {
	inline()
}

// Compile-time variant checks.
var (
	_ Inline = Text("")
	_ Inline = Bold{}
	_ Inline = Italic{}
	_ Inline = Strikethrough{}
	_ Inline = Code("")
	_ Inline = Link{}
)

// Text is a literal text span.
type Text string

// Bold is a **delimited** span; children may nest further formatting.
type Bold struct {
	Children []Inline `json:"children"`
}

// Italic is a *delimited* span.
type Italic struct {
	Children []Inline `json:"children"`
}

// Strikethrough is a ~~delimited~~ span.
type Strikethrough struct {
	Children []Inline `json:"children"`
}

// Code is a `verbatim` span.
type Code string

// Link is a [text](url) span. Text is recursively parsed; URL is verbatim.
type Link struct {
	Text []Inline `json:"text"`
	URL  string   `json:"url"`
}

func (Text) inline() {}
func (Bold) inline() {}
func (Italic) inline() {}
func (Strikethrough) inline() {}
func (Code) inline() {}
func (Link) inline() {}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	return marshalTagged("text", struct {
		Value string `json:"value"`
	}{string(t)})
}

// MarshalJSON implements json.Marshaler.
func (b Bold) MarshalJSON() ([]byte, error) {
	type alias Bold
	return marshalTagged("bold", alias(b))
}

// MarshalJSON implements json.Marshaler.
func (i Italic) MarshalJSON() ([]byte, error) {
	type alias Italic
	return marshalTagged("italic", alias(i))
}

// MarshalJSON implements json.Marshaler.
func (s Strikethrough) MarshalJSON() ([]byte, error) {
	type alias Strikethrough
	return marshalTagged("strikethrough", alias(s))
}

// MarshalJSON implements json.Marshaler.
func (c Code) MarshalJSON() ([]byte, error) {
	return marshalTagged("code", struct {
		Value string `json:"value"`
	}{string(c)})
}

// MarshalJSON implements json.Marshaler.
func (l Link) MarshalJSON() ([]byte, error) {
	type alias Link
	return marshalTagged("link", alias(l))
}

// inlineText flattens an inline tree to its plain text, dropping all
// formatting. Link URLs are omitted; only the link text survives.
func inlineText(inlines []Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case Text:
			sb.WriteString(string(v))
		case Code:
			sb.WriteString(string(v))
		case Bold:
			sb.WriteString(inlineText(v.Children))
		case Italic:
			sb.WriteString(inlineText(v.Children))
		case Strikethrough:
			sb.WriteString(inlineText(v.Children))
		case Link:
			sb.WriteString(inlineText(v.Text))
		}
	}
	return sb.String()
}
