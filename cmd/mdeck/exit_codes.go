package main

import (
	"errors"
	"os"

	mdeck "github.com/alnah/go-mdeck"
	"github.com/alnah/go-mdeck/internal/config"
)

// Exit codes for the mdeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, command, or config
	ExitIO      = 3 // File not found, permission denied, bad input
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdeck.ErrBrowserConnect) ||
		errors.Is(err, mdeck.ErrPageCreate) ||
		errors.Is(err, mdeck.ErrPageLoad) ||
		errors.Is(err, mdeck.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, mdeck.ErrNoSlides) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidAspect) ||
		errors.Is(err, mdeck.ErrHighlightStyle) {
		return ExitUsage
	}

	return ExitGeneral
}
