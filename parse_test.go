package mdeck

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleDeck = `---
title: "Release Review"
author: "Platform Team"
"@theme": dark
---

# Release Review

Q3 platform update

---

# Agenda

+ Shipping highlights
+ Incident recap
* with follow-ups

---

@layout: two-column

## Before

Old pipeline

+++

## After

New pipeline

---

# Architecture

` + "```@diagram" + `
Ingest -> Queue: events
Queue -> Worker
Worker: Batch worker
` + "```" + `

---

# Numbers

| Metric | Value |
|--------|-------|
| Uptime | 99.9% |
`

func TestParse_EndToEnd(t *testing.T) {
	t.Parallel()

	deck := Parse(sampleDeck)

	if deck.Meta.Title != "Release Review" {
		t.Errorf("Title = %q, want %q", deck.Meta.Title, "Release Review")
	}
	if deck.Meta.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", deck.Meta.Theme, "dark")
	}
	if len(deck.Slides) != 5 {
		t.Fatalf("got %d slides, want 5", len(deck.Slides))
	}

	wantLayouts := []Layout{LayoutTitle, LayoutBullet, LayoutTwoColumn, LayoutDiagram, LayoutContent}
	for i, want := range wantLayouts {
		if got := deck.Slides[i].Layout; got != want {
			t.Errorf("slide %d layout = %q, want %q", i, got, want)
		}
	}

	if v, ok := deck.Slides[2].Directive("layout"); !ok || v != "two-column" {
		t.Errorf("slide 2 layout directive = %q, %v", v, ok)
	}
	if got := ComputeMaxSteps(deck.Slides[1].Blocks); got != 2 {
		t.Errorf("slide 1 max steps = %d, want 2", got)
	}
}

func TestParse_TitleFallback(t *testing.T) {
	t.Parallel()

	t.Run("frontmatter wins", func(t *testing.T) {
		t.Parallel()

		deck := Parse("---\ntitle: Explicit\n---\n# From Heading")
		if got := deck.Title(); got != "Explicit" {
			t.Errorf("Title() = %q, want %q", got, "Explicit")
		}
	})

	t.Run("first h1 fallback", func(t *testing.T) {
		t.Parallel()

		deck := Parse("# From **Heading**\n\nBody")
		if got := deck.Title(); got != "From Heading" {
			t.Errorf("Title() = %q, want %q", got, "From Heading")
		}
	})

	t.Run("no title anywhere", func(t *testing.T) {
		t.Parallel()

		deck := Parse("Just a paragraph")
		if got := deck.Title(); got != "" {
			t.Errorf("Title() = %q, want empty", got)
		}
	})
}

func TestParse_Totality(t *testing.T) {
	t.Parallel()

	// Degenerate inputs must produce a deck, never a panic.
	inputs := []string{
		"",
		"---",
		"---\n---",
		"\x00SLIDE_BREAK\x00",
		"```\nunclosed",
		"[](",
		strings.Repeat("#", 100),
		strings.Repeat("- item\n", 200),
		"\ufeff",
	}
	for _, input := range inputs {
		deck := Parse(input)
		if deck == nil {
			t.Fatalf("Parse(%q) = nil", input)
		}
		for i, slide := range deck.Slides {
			if slide.Layout == "" {
				t.Errorf("Parse(%q) slide %d has empty layout", input, i)
			}
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	deck := Parse("")
	if len(deck.Slides) != 0 {
		t.Errorf("got %d slides, want 0", len(deck.Slides))
	}
	if deck.Meta != (PresentationMeta{}) {
		t.Errorf("meta = %+v, want zero value", deck.Meta)
	}
}

func TestParse_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	deck := Parse("# Hello\n\n- **bold** item\n- `code` item")
	data, err := json.Marshal(deck)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	for _, want := range []string{
		`"type":"heading"`,
		`"type":"list"`,
		`"type":"bold"`,
		`"type":"code"`,
		`"layout":"bullet"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON missing %s:\n%s", want, data)
		}
	}
}

func TestParse_DeterministicOutput(t *testing.T) {
	t.Parallel()

	first, err := json.Marshal(Parse(sampleDeck))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := json.Marshal(Parse(sampleDeck))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Error("identical input produced different JSON")
	}
}
