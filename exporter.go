package mdeck

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-mdeck/internal/highlight"
)

// defaultExportTimeout bounds PDF rendering when no timeout is configured.
const defaultExportTimeout = 30 * time.Second

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout   time.Duration
	theme     string
	codeTheme string
}

// ExportOption configures an Exporter.
type ExportOption func(*Exporter)

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) ExportOption {
	if d <= 0 {
		panic("mdeck: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithTheme overrides the deck theme for export. The frontmatter @theme
// still wins when the document sets one.
func WithTheme(name string) ExportOption {
	return func(e *Exporter) {
		e.cfg.theme = name
	}
}

// WithCodeTheme sets the chroma style used for code blocks. The frontmatter
// @code-theme still wins when the document sets one.
func WithCodeTheme(name string) ExportOption {
	return func(e *Exporter) {
		e.cfg.codeTheme = name
	}
}

// Exporter renders compiled presentations to standalone HTML and, through
// headless Chrome, to PDF handouts. Create with NewExporter, reuse across
// decks, and Close when done to release the browser.
type Exporter struct {
	cfg exporterConfig
	pdf *rodRenderer
}

// NewExporter creates an Exporter with the given options.
func NewExporter(opts ...ExportOption) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{
			timeout:   defaultExportTimeout,
			theme:     DefaultTheme,
			codeTheme: highlight.DefaultStyle,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.pdf = newRodRenderer(e.cfg.timeout)
	return e
}

// HTML renders the deck as a self-contained HTML document.
func (e *Exporter) HTML(deck *Presentation) (string, error) {
	if deck == nil {
		return "", ErrNilDeck
	}
	if len(deck.Slides) == 0 {
		return "", ErrNoSlides
	}

	hl, err := e.highlighter(deck)
	if err != nil {
		return "", err
	}
	return renderDeckHTML(deck, hl, e.themeFor(deck))
}

// PDF renders the deck to PDF bytes, one slide per page, page size derived
// from the document's aspect ratio. Requires Chrome/Chromium; go-rod
// downloads a managed Chromium on first use.
func (e *Exporter) PDF(ctx context.Context, deck *Presentation) ([]byte, error) {
	htmlDoc, err := e.HTML(deck)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := writeTempFile(htmlDoc, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return e.pdf.RenderFromFile(ctx, tmpPath, pageSizeFor(deck.Meta.Aspect))
}

// Close releases browser resources. Safe to call when PDF was never used.
func (e *Exporter) Close() error {
	return e.pdf.Close()
}

// highlighter resolves the code theme, preferring the document's
// @code-theme over the exporter's configured default.
func (e *Exporter) highlighter(deck *Presentation) (*highlight.Highlighter, error) {
	name := e.cfg.codeTheme
	if deck.Meta.CodeTheme != "" {
		name = deck.Meta.CodeTheme
	}
	hl, err := highlight.New(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHighlightStyle, err)
	}
	return hl, nil
}

// themeFor prefers the document's @theme over the exporter's default.
func (e *Exporter) themeFor(deck *Presentation) string {
	if deck.Meta.Theme != "" {
		return deck.Meta.Theme
	}
	return e.cfg.theme
}
