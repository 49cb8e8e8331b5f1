package mdeck

import "errors"

// Sentinel errors for library operations. Parsing itself is total and never
// fails; these surface at the export and file boundaries only.
var (
	ErrNoSlides       = errors.New("document produced no slides")
	ErrNilDeck        = errors.New("presentation cannot be nil")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrHighlightStyle = errors.New("unknown code highlight style")
)
