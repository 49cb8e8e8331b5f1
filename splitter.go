package mdeck

import "strings"

// slideBreak is the internal sentinel line that unifies the three slide
// break heuristics into a single split operation. NUL bytes cannot appear in
// a text document, so the marker never collides with user content.
const slideBreak = "\x00SLIDE_BREAK\x00"

// splitSlides partitions a document body (frontmatter already removed) into
// raw per-slide text chunks. Three signals create breaks: a blank-padded
// line of 3+ dashes, a run of 3+ blank lines, and an H1 heading when the
// accumulating slide already has content. Adjacent signals coalesce into a
// single break.
func splitSlides(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	lines := strings.Split(body, "\n")

	merged := markDashSeparators(lines)
	merged = markBlankRuns(merged)

	// Split on the sentinel, trim, and drop empty chunks before heading
	// inference runs within each chunk.
	var slides []string
	for _, chunk := range strings.Split(strings.Join(merged, "\n"), slideBreak) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		slides = splitByHeading(chunk, slides)
	}
	return slides
}

// markDashSeparators replaces every dash separator line, together with the
// blank lines padding it, by one sentinel line. A separator only counts when
// the preceding output line and the following input line are both blank (or
// absent, at document edges).
func markDashSeparators(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if isDashSeparator(trimmed) {
			prevBlank := len(out) == 0 ||
				strings.TrimSpace(out[len(out)-1]) == "" ||
				out[len(out)-1] == slideBreak
			nextBlank := i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) == ""

			if prevBlank && nextBlank {
				if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" && out[len(out)-1] != slideBreak {
					out = out[:len(out)-1]
				}
				out = append(out, slideBreak)
				if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "" {
					i++
				}
				continue
			}
		}
		out = append(out, lines[i])
	}
	return out
}

// markBlankRuns collapses every run of 3+ consecutive blank lines into one
// sentinel line. Shorter runs are preserved as intra-slide whitespace.
func markBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if line == slideBreak {
			blanks = 0
			out = append(out, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			blanks++
			switch {
			case blanks < 3:
				out = append(out, line)
			case blanks == 3:
				// Retract the two blanks already emitted.
				out = out[:len(out)-2]
				out = append(out, slideBreak)
			}
			continue
		}
		blanks = 0
		out = append(out, line)
	}
	return out
}

// splitByHeading applies H1 heading inference within one chunk: a "# " line
// starts a new slide when the accumulating slide already holds non-blank,
// non-directive content. Lines inside fenced code blocks never count as
// headings, and the first H1 of a chunk never splits. Completed slides are
// appended to slides, which is returned.
func splitByHeading(chunk string, slides []string) []string {
	var current []string
	hasContent := false
	inFence := false
	var fenceChar byte
	fenceLen := 0

	for _, line := range strings.Split(chunk, "\n") {
		trimmed := strings.TrimSpace(line)

		if inFence {
			n := runLength(trimmed, fenceChar)
			if n >= fenceLen && strings.TrimSpace(trimmed[n:]) == "" {
				inFence = false
			}
		} else if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = true
			fenceChar = trimmed[0]
			fenceLen = runLength(trimmed, fenceChar)
		}

		if !inFence && strings.HasPrefix(line, "# ") && hasContent {
			if text := strings.TrimSpace(strings.Join(current, "\n")); text != "" {
				slides = append(slides, text)
			}
			current = current[:0]
			hasContent = false
		}

		current = append(current, line)

		if trimmed != "" && !isDirectiveLine(trimmed) {
			hasContent = true
		}
	}

	if text := strings.TrimSpace(strings.Join(current, "\n")); text != "" {
		slides = append(slides, text)
	}
	return slides
}

// isDashSeparator reports whether a trimmed line consists solely of 3+
// dashes.
func isDashSeparator(line string) bool {
	if len(line) < 3 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '-' {
			return false
		}
	}
	return true
}

// isDirectiveLine reports whether a trimmed line matches the @name: value
// directive grammar. Directive lines do not count as slide content for
// heading inference.
func isDirectiveLine(line string) bool {
	if !strings.HasPrefix(line, "@") {
		return false
	}
	name, _, found := strings.Cut(line[1:], ":")
	return found && isDirectiveName(name)
}

// runLength counts how many leading bytes of s equal c.
func runLength(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}
