package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		flags, args, err := parseFlags([]string{"mdeck", "compile", "deck.md"})
		if err != nil {
			t.Fatalf("parseFlags: %v", err)
		}
		if flags.theme != "" || flags.output != "" || flags.pdf || flags.verbose {
			t.Errorf("flags = %+v, want zero values", flags)
		}
		if len(args) != 2 || args[0] != "compile" || args[1] != "deck.md" {
			t.Errorf("args = %v, want [compile deck.md]", args)
		}
	})

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		flags, args, err := parseFlags([]string{
			"mdeck", "export", "deck.md",
			"--config", "work",
			"--theme", "paper",
			"--code-theme", "dracula",
			"-o", "out.pdf",
			"--pdf",
			"-v",
		})
		if err != nil {
			t.Fatalf("parseFlags: %v", err)
		}
		if flags.config != "work" {
			t.Errorf("config = %q, want %q", flags.config, "work")
		}
		if flags.theme != "paper" {
			t.Errorf("theme = %q, want %q", flags.theme, "paper")
		}
		if flags.codeTheme != "dracula" {
			t.Errorf("codeTheme = %q, want %q", flags.codeTheme, "dracula")
		}
		if flags.output != "out.pdf" {
			t.Errorf("output = %q, want %q", flags.output, "out.pdf")
		}
		if !flags.pdf {
			t.Error("pdf = false, want true")
		}
		if !flags.verbose {
			t.Error("verbose = false, want true")
		}
		if len(args) != 2 {
			t.Errorf("args = %v, want 2 positionals", args)
		}
	})

	t.Run("version flag", func(t *testing.T) {
		t.Parallel()

		flags, _, err := parseFlags([]string{"mdeck", "--version"})
		if err != nil {
			t.Fatalf("parseFlags: %v", err)
		}
		if !flags.version {
			t.Error("version = false, want true")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseFlags([]string{"mdeck", "--bogus"}); err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}
