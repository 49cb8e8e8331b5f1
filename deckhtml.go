package mdeck

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/alnah/go-mdeck/internal/highlight"
)

// deckRenderer walks a Presentation and emits a standalone HTML document,
// one <section> per slide. Code blocks go through the shared Highlighter;
// everything else is built directly from the AST.
type deckRenderer struct {
	hl   *highlight.Highlighter
	deck *Presentation
	sb   strings.Builder
	// step is the slide-wide reveal counter, reset per slide and threaded
	// depth-first through list trees.
	step int
}

// renderDeckHTML renders the whole deck. The result is self-contained:
// theme and highlight CSS are inlined in <head>.
func renderDeckHTML(deck *Presentation, hl *highlight.Highlighter, theme string) (string, error) {
	r := &deckRenderer{hl: hl, deck: deck}
	return r.render(theme)
}

func (r *deckRenderer) render(theme string) (string, error) {
	highlightCSS, err := r.hl.CSS()
	if err != nil {
		return "", err
	}

	r.sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&r.sb, "<title>%s</title>\n", html.EscapeString(deckTitle(r.deck)))
	r.sb.WriteString("<style>\n")
	r.sb.WriteString(buildThemeCSS(theme, r.deck.Meta.Aspect))
	r.sb.WriteString(highlightCSS)
	r.sb.WriteString("\n</style>\n</head>\n<body>\n")

	for i, slide := range r.deck.Slides {
		if err := r.renderSlide(i, &slide); err != nil {
			return "", err
		}
	}

	if r.deck.Meta.Footer != "" {
		fmt.Fprintf(&r.sb, "<footer>%s</footer>\n", html.EscapeString(r.deck.Meta.Footer))
	}
	r.sb.WriteString("</body>\n</html>\n")
	return r.sb.String(), nil
}

// deckTitle falls back through meta title, first H1, and a placeholder.
func deckTitle(deck *Presentation) string {
	if t := deck.Title(); t != "" {
		return t
	}
	return "Presentation"
}

func (r *deckRenderer) renderSlide(index int, slide *Slide) error {
	r.step = 0
	fmt.Fprintf(&r.sb, "<section class=\"slide layout-%s\" data-slide=\"%d\" data-steps=\"%d\">\n",
		slide.Layout, index+1, ComputeMaxSteps(slide.Blocks))

	columns := splitColumns(slide.Blocks)
	if len(columns) > 1 {
		r.sb.WriteString("<div class=\"columns\">\n")
		for _, column := range columns {
			r.sb.WriteString("<div class=\"column\">\n")
			if err := r.renderBlocks(column); err != nil {
				return err
			}
			r.sb.WriteString("</div>\n")
		}
		r.sb.WriteString("</div>\n")
	} else if err := r.renderBlocks(slide.Blocks); err != nil {
		return err
	}

	r.sb.WriteString("</section>\n")
	return nil
}

// splitColumns partitions a block sequence on ColumnSeparator markers. A
// slide without separators yields a single group.
func splitColumns(blocks []Block) [][]Block {
	groups := [][]Block{nil}
	for _, block := range blocks {
		if _, ok := block.(ColumnSeparator); ok {
			groups = append(groups, nil)
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], block)
	}
	return groups
}

func (r *deckRenderer) renderBlocks(blocks []Block) error {
	for _, block := range blocks {
		switch b := block.(type) {
		case Heading:
			fmt.Fprintf(&r.sb, "<h%d>%s</h%d>\n", b.Level, renderInlines(b.Inlines), b.Level)
		case Paragraph:
			fmt.Fprintf(&r.sb, "<p>%s</p>\n", renderInlines(b.Inlines))
		case List:
			r.renderList(b)
		case CodeBlock:
			fragment, err := r.hl.HTML(b.Code, b.Language, b.HighlightLines)
			if err != nil {
				return err
			}
			r.sb.WriteString(fragment)
			r.sb.WriteString("\n")
		case DiagramBlock:
			r.renderDiagram(b)
		case Image:
			r.renderImage(b)
		case BlockQuote:
			fmt.Fprintf(&r.sb, "<blockquote>%s</blockquote>\n", renderInlines(b.Inlines))
		case Table:
			r.renderTable(b)
		case HorizontalRule:
			r.sb.WriteString("<hr>\n")
		case ColumnSeparator:
			// Consumed by splitColumns; ignore if one slips through.
		}
	}
	return nil
}

func (r *deckRenderer) renderList(list List) {
	tag := "ul"
	if list.Ordered {
		tag = "ol"
	}
	fmt.Fprintf(&r.sb, "<%s>\n", tag)
	r.renderListItems(list.Items)
	fmt.Fprintf(&r.sb, "</%s>\n", tag)
}

// renderListItems assigns reveal steps while emitting items: a NextStep
// item advances the slide counter, a WithPrev item reuses it, and static or
// ordered items carry no step attribute.
func (r *deckRenderer) renderListItems(items []ListItem) {
	for _, item := range items {
		switch item.Marker {
		case MarkerNextStep:
			r.step++
			fmt.Fprintf(&r.sb, "<li class=\"step\" data-step=\"%d\">%s", r.step, renderInlines(item.Inlines))
		case MarkerWithPrev:
			fmt.Fprintf(&r.sb, "<li class=\"step\" data-step=\"%d\">%s", r.step, renderInlines(item.Inlines))
		default:
			fmt.Fprintf(&r.sb, "<li>%s", renderInlines(item.Inlines))
		}
		if len(item.Children) > 0 {
			r.sb.WriteString("\n<ul>\n")
			r.renderListItems(item.Children)
			r.sb.WriteString("</ul>\n")
		}
		r.sb.WriteString("</li>\n")
	}
}

func (r *deckRenderer) renderImage(img Image) {
	var classes []string
	var style []string
	d := img.Directives
	switch {
	case d.Fill:
		classes = append(classes, "img-fill")
	case d.Fit:
		classes = append(classes, "img-fit")
	}
	if d.Align != "" {
		classes = append(classes, "img-"+d.Align)
	}
	if d.Width != "" {
		style = append(style, "width:"+cssDimension(d.Width))
	}
	if d.Height != "" {
		style = append(style, "height:"+cssDimension(d.Height))
	}

	r.sb.WriteString("<img src=\"" + html.EscapeString(img.Path) + "\"")
	fmt.Fprintf(&r.sb, " alt=\"%s\"", html.EscapeString(img.Alt))
	if len(classes) > 0 {
		fmt.Fprintf(&r.sb, " class=\"%s\"", strings.Join(classes, " "))
	}
	if len(style) > 0 {
		fmt.Fprintf(&r.sb, " style=\"%s\"", html.EscapeString(strings.Join(style, ";")))
	}
	r.sb.WriteString(">\n")
}

// cssDimension passes through values that already carry a unit and treats
// bare numbers as pixels.
func cssDimension(v string) string {
	if _, err := strconv.Atoi(v); err == nil {
		return v + "px"
	}
	return v
}

func (r *deckRenderer) renderTable(table Table) {
	r.sb.WriteString("<table>\n<thead>\n<tr>")
	for _, cell := range table.Headers {
		fmt.Fprintf(&r.sb, "<th>%s</th>", renderInlines(cell))
	}
	r.sb.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range table.Rows {
		r.sb.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&r.sb, "<td>%s</td>", renderInlines(cell))
		}
		r.sb.WriteString("</tr>\n")
	}
	r.sb.WriteString("</tbody>\n</table>\n")
}

// renderDiagram compiles the fence content and emits the graph as labeled
// node pills plus an edge list.
func (r *deckRenderer) renderDiagram(d DiagramBlock) {
	nodes, edges := ParseDiagram(d.Content)
	r.sb.WriteString("<div class=\"diagram\">\n<div class=\"diagram-nodes\">\n")
	for _, node := range nodes {
		fmt.Fprintf(&r.sb, "<span class=\"diagram-node\" data-name=\"%s\">%s</span>\n",
			html.EscapeString(node.Name), html.EscapeString(node.Label))
	}
	r.sb.WriteString("</div>\n")
	if len(edges) > 0 {
		r.sb.WriteString("<ul class=\"diagram-edges\">\n")
		for _, edge := range edges {
			label := ""
			if edge.Label != "" {
				label = ": " + html.EscapeString(edge.Label)
			}
			fmt.Fprintf(&r.sb, "<li>%s &rarr; %s%s</li>\n",
				html.EscapeString(edge.From), html.EscapeString(edge.To), label)
		}
		r.sb.WriteString("</ul>\n")
	}
	r.sb.WriteString("</div>\n")
}

// renderInlines renders an inline tree to an HTML fragment. Text and code
// content is escaped; code spans stay verbatim otherwise.
func renderInlines(inlines []Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		switch v := in.(type) {
		case Text:
			sb.WriteString(html.EscapeString(string(v)))
		case Bold:
			sb.WriteString("<strong>" + renderInlines(v.Children) + "</strong>")
		case Italic:
			sb.WriteString("<em>" + renderInlines(v.Children) + "</em>")
		case Strikethrough:
			sb.WriteString("<del>" + renderInlines(v.Children) + "</del>")
		case Code:
			sb.WriteString("<code>" + html.EscapeString(string(v)) + "</code>")
		case Link:
			sb.WriteString("<a href=\"" + html.EscapeString(v.URL) + "\">" + renderInlines(v.Text) + "</a>")
		}
	}
	return sb.String()
}
