// Package mdeck compiles plain-text markdown documents into structured,
// renderer-agnostic slide decks.
//
// # Quick Start
//
// Parse a document and inspect the result:
//
//	deck := mdeck.Parse(content)
//	for _, slide := range deck.Slides {
//	    fmt.Println(slide.Layout, len(slide.Blocks))
//	}
//
// Parse is total: it never returns an error and never panics. Malformed
// constructs degrade to the next lower-specificity interpretation (an
// unclosed bold delimiter becomes literal text, a malformed image becomes a
// paragraph), so any finite input produces a renderable deck.
//
// # Compilation Pipeline
//
// The pipeline runs strictly forward, each stage a pure function:
//
//  1. Frontmatter extraction (optional YAML header between --- lines)
//  2. Slide splitting (--- separators, 3+ blank lines, H1 inference)
//  3. Per-slide @key: value directive extraction
//  4. Block parsing (headings, lists, tables, fences, images, quotes)
//  5. Inline parsing (bold, italic, strikethrough, code, links)
//  6. Layout inference from the resulting block shape
//
// Diagram fences (```@diagram) carry a mini node/edge language compiled
// separately with ParseDiagram, and ComputeMaxSteps reports how many
// incremental-reveal steps a slide's +-marked list items support.
//
// # Export
//
// Exporter renders compiled decks to standalone HTML, or to PDF handouts
// through headless Chrome:
//
//	exp := mdeck.NewExporter(mdeck.WithCodeTheme("dracula"))
//	defer exp.Close()
//
//	html, err := exp.HTML(deck)
//	pdf, err := exp.PDF(ctx, deck)
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run. For containers and CI, set
// ROD_BROWSER_BIN to a pre-installed binary.
package mdeck
