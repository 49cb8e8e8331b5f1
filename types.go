package mdeck

// PresentationMeta holds document-level metadata extracted from the optional
// YAML frontmatter. Every field is optional; an empty string means the key
// was absent.
type PresentationMeta struct {
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Date       string `json:"date,omitempty"`
	Theme      string `json:"theme,omitempty"`
	Transition string `json:"transition,omitempty"`
	Aspect     string `json:"aspect,omitempty"`
	CodeTheme  string `json:"code_theme,omitempty"`
	Footer     string `json:"footer,omitempty"`
}

// Directive is a @name: value metadata line attached to a slide.
type Directive struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Layout is the presentational archetype assigned to a slide from its block
// shape, or forced by an explicit @layout: directive.
type Layout string

// Layout values.
const (
	LayoutTitle     Layout = "title"
	LayoutSection   Layout = "section"
	LayoutQuote     Layout = "quote"
	LayoutBullet    Layout = "bullet"
	LayoutCode      Layout = "code"
	LayoutImage     Layout = "image"
	LayoutGallery   Layout = "gallery"
	LayoutDiagram   Layout = "diagram"
	LayoutTwoColumn Layout = "two-column"
	LayoutContent   Layout = "content"
)

// Slide is one slide of the compiled deck: its directives, its ordered block
// sequence, and its inferred layout. Slides are immutable after Parse.
type Slide struct {
	Directives []Directive `json:"directives,omitempty"`
	Blocks     []Block     `json:"blocks"`
	Layout     Layout      `json:"layout"`
}

// Directive returns the value of the named slide directive and whether it
// was present.
func (s *Slide) Directive(name string) (string, bool) {
	for _, d := range s.Directives {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// Presentation is the pipeline's final artifact: document metadata plus
// slides in document order.
type Presentation struct {
	Meta   PresentationMeta `json:"meta"`
	Slides []Slide          `json:"slides"`
}

// Title returns the presentation title, falling back to the text of the
// first H1 heading when frontmatter has none.
func (p *Presentation) Title() string {
	if p.Meta.Title != "" {
		return p.Meta.Title
	}
	for _, slide := range p.Slides {
		for _, block := range slide.Blocks {
			if h, ok := block.(Heading); ok && h.Level == 1 {
				return inlineText(h.Inlines)
			}
		}
	}
	return ""
}
