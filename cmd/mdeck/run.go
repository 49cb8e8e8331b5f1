package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdeck "github.com/alnah/go-mdeck"
	"github.com/alnah/go-mdeck/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("usage: mdeck <compile|export> <input.md> [flags]")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// run dispatches the verb and executes it against the input file.
func run(flags *cliFlags, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	command, inputPath := args[0], args[1]

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	deck, err := compileFile(inputPath, flags, cfg)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Compiled %d slides from %s\n", len(deck.Slides), inputPath)
	}

	switch command {
	case "compile":
		return writeJSON(deck, flags.output)
	case "export":
		return export(deck, inputPath, flags, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// loadConfig loads the named config, or defaults when none was requested.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// compileFile reads and parses a markdown document, then layers config and
// flag defaults under the frontmatter: frontmatter wins, then flags, then
// config. A non-empty file that yields zero slides is an input error.
func compileFile(path string, flags *cliFlags, cfg *config.Config) (*mdeck.Presentation, error) {
	if ext := filepath.Ext(path); ext != ".md" && ext != ".markdown" {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	deck := mdeck.Parse(string(content))
	if len(deck.Slides) == 0 && strings.TrimSpace(string(content)) != "" {
		return nil, fmt.Errorf("%w: %s", mdeck.ErrNoSlides, path)
	}

	applyDefaults(&deck.Meta, flags, cfg)
	return deck, nil
}

// applyDefaults fills metadata fields the frontmatter left empty.
func applyDefaults(meta *mdeck.PresentationMeta, flags *cliFlags, cfg *config.Config) {
	if meta.Theme == "" {
		meta.Theme = firstNonEmpty(flags.theme, cfg.Theme)
	}
	if meta.CodeTheme == "" {
		meta.CodeTheme = firstNonEmpty(flags.codeTheme, cfg.CodeTheme)
	}
	if meta.Aspect == "" {
		meta.Aspect = cfg.Aspect
	}
	if meta.Transition == "" {
		meta.Transition = cfg.Transition
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// writeJSON marshals the deck and writes it to the output path, or stdout
// when none is given.
func writeJSON(deck *mdeck.Presentation, outputPath string) error {
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding deck: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// export renders the deck to HTML or PDF next to the input file unless an
// output path is given.
func export(deck *mdeck.Presentation, inputPath string, flags *cliFlags, cfg *config.Config) error {
	exp := mdeck.NewExporter()
	defer exp.Close()

	ext := "html"
	if flags.pdf {
		ext = "pdf"
	}
	outputPath := flags.output
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		dir := cfg.OutputDir
		if dir == "" {
			dir = filepath.Dir(inputPath)
		}
		outputPath = filepath.Join(dir, base+"."+ext)
	}

	var data []byte
	if flags.pdf {
		pdf, err := exp.PDF(context.Background(), deck)
		if err != nil {
			return err
		}
		data = pdf
	} else {
		html, err := exp.HTML(deck)
		if err != nil {
			return err
		}
		data = []byte(html)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Created %s\n", outputPath)
	}
	return nil
}
