package mdeck

// Parse compiles a markdown document into a Presentation. The pipeline runs
// frontmatter extraction, slide splitting, per-slide directive extraction,
// block and inline parsing, and layout inference, in that order. Every
// stage is total: for any finite input Parse terminates and returns a
// value, never panics, and reports no errors; malformed constructs degrade
// to lower-specificity interpretations instead.
func Parse(content string) *Presentation {
	meta, body := extractFrontmatter(content)

	chunks := splitSlides(body)
	slides := make([]Slide, 0, len(chunks))
	for _, raw := range chunks {
		directives, remaining := extractDirectives(raw)
		blocks := parseBlocks(remaining)
		slides = append(slides, Slide{
			Directives: directives,
			Blocks:     blocks,
			Layout:     inferLayout(blocks, directives),
		})
	}

	return &Presentation{Meta: meta, Slides: slides}
}
