package mdeck

// layoutNames maps @layout: directive values to Layout tags. A directive
// with an unknown value falls back to shape inference.
var layoutNames = map[string]Layout{
	"title":      LayoutTitle,
	"section":    LayoutSection,
	"quote":      LayoutQuote,
	"bullet":     LayoutBullet,
	"code":       LayoutCode,
	"image":      LayoutImage,
	"gallery":    LayoutGallery,
	"diagram":    LayoutDiagram,
	"two-column": LayoutTwoColumn,
	"content":    LayoutContent,
}

// inferLayout selects a slide's Layout from its block shape. An explicit
// @layout: directive always wins.
func inferLayout(blocks []Block, directives []Directive) Layout {
	for _, d := range directives {
		if d.Name == "layout" {
			if layout, ok := layoutNames[d.Value]; ok {
				return layout
			}
		}
	}
	return inferLayoutFromShape(blocks)
}

// inferLayoutFromShape implements the shape heuristics, most distinctive
// signal first: column separators, then diagrams, then image-dominated
// slides, then code, quotes, heading-only slides, and lists.
func inferLayoutFromShape(blocks []Block) Layout {
	shape := summarizeShape(blocks)

	switch {
	case shape.columns > 0:
		return LayoutTwoColumn
	case shape.diagrams > 0:
		return LayoutDiagram
	case shape.images >= 2:
		return LayoutGallery
	case shape.images == 1 && shape.lists == 0 && shape.code == 0 && shape.tables == 0:
		return LayoutImage
	case shape.code > 0:
		return LayoutCode
	case shape.quotes > 0 && shape.lists == 0:
		return LayoutQuote
	case shape.headingsOnly():
		if len(blocks) == 1 {
			return LayoutSection
		}
		return LayoutTitle
	case shape.titleish(blocks):
		return LayoutTitle
	case shape.lists > 0:
		return LayoutBullet
	default:
		return LayoutContent
	}
}

// slideShape counts the block kinds that drive layout inference.
type slideShape struct {
	headings   int
	paragraphs int
	lists      int
	code       int
	diagrams   int
	images     int
	quotes     int
	tables     int
	columns    int
	other      int
	firstH1    bool
}

func summarizeShape(blocks []Block) slideShape {
	var s slideShape
	for i, block := range blocks {
		switch b := block.(type) {
		case Heading:
			s.headings++
			if i == 0 && b.Level == 1 {
				s.firstH1 = true
			}
		case Paragraph:
			s.paragraphs++
		case List:
			s.lists++
		case CodeBlock:
			s.code++
		case DiagramBlock:
			s.diagrams++
		case Image:
			s.images++
		case BlockQuote:
			s.quotes++
		case Table:
			s.tables++
		case ColumnSeparator:
			s.columns++
		default:
			s.other++
		}
	}
	return s
}

// headingsOnly reports whether the slide holds nothing but headings.
func (s slideShape) headingsOnly() bool {
	return s.headings > 0 &&
		s.paragraphs+s.lists+s.code+s.diagrams+s.images+s.quotes+s.tables+s.columns+s.other == 0
}

// titleish matches the classic title slide: an opening H1 followed only by
// a short subtitle paragraph.
func (s slideShape) titleish(blocks []Block) bool {
	return s.firstH1 && len(blocks) == 2 && s.paragraphs == 1
}

// ComputeMaxSteps returns the number of discrete reveal steps a slide's
// block sequence supports: the count of NextStep list items, threaded
// depth-first through nested children. WithPrev items share the most recent
// step and ordered items are never gated, so neither adds a step. The
// presentation layer uses the result as the upper bound for forward and
// backward reveal navigation.
func ComputeMaxSteps(blocks []Block) int {
	steps := 0
	for _, block := range blocks {
		if list, ok := block.(List); ok {
			steps += countListSteps(list.Items)
		}
	}
	return steps
}

func countListSteps(items []ListItem) int {
	steps := 0
	for _, item := range items {
		if item.Marker == MarkerNextStep {
			steps++
		}
		steps += countListSteps(item.Children)
	}
	return steps
}
