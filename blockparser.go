package mdeck

import (
	"strconv"
	"strings"
)

// parseBlocks turns a slide's content string (directives already removed)
// into its ordered block sequence. One forward scan over lines, dispatching
// on the leading pattern, most specific first. Anything that fails its
// grammar degrades to a lower-specificity interpretation; the function is
// total.
func parseBlocks(content string) []Block {
	var blocks []Block
	lines := strings.Split(content, "\n")
	i := 0

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case trimmed == "":
			i++

		case trimmed == "+++":
			blocks = append(blocks, ColumnSeparator{})
			i++

		case isHorizontalRule(trimmed):
			blocks = append(blocks, HorizontalRule{})
			i++

		case strings.HasPrefix(trimmed, "#"):
			if h, ok := parseHeading(trimmed); ok {
				blocks = append(blocks, h)
				i++
				break
			}
			var b Block
			b, i = parseParagraph(lines, i)
			blocks = append(blocks, b)

		case strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~"):
			var b Block
			b, i = parseFence(lines, i, trimmed[0])
			blocks = append(blocks, b)

		case strings.HasPrefix(trimmed, "!["):
			if img, ok := parseImage(trimmed); ok {
				blocks = append(blocks, img)
				i++
				break
			}
			var b Block
			b, i = parseParagraph(lines, i)
			blocks = append(blocks, b)

		case strings.HasPrefix(trimmed, "> ") || trimmed == ">":
			var b Block
			b, i = parseBlockQuote(lines, i)
			blocks = append(blocks, b)

		case strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|"):
			var table Block
			var ok bool
			table, ok, i = parseTable(lines, i)
			if ok {
				blocks = append(blocks, table)
			}

		case isListStart(trimmed):
			var b Block
			b, i = parseList(lines, i, false)
			blocks = append(blocks, b)

		case isOrderedListStart(trimmed):
			var b Block
			b, i = parseList(lines, i, true)
			blocks = append(blocks, b)

		default:
			var b Block
			b, i = parseParagraph(lines, i)
			blocks = append(blocks, b)
		}
	}

	return blocks
}

// isHorizontalRule matches 3+ identical * or _ characters, embedded
// whitespace ignored. Dashes are slide separators, never rules.
func isHorizontalRule(line string) bool {
	compact := strings.Join(strings.Fields(line), "")
	if len(compact) < 3 {
		return false
	}
	first := compact[0]
	if first != '*' && first != '_' {
		return false
	}
	for i := 0; i < len(compact); i++ {
		if compact[i] != first {
			return false
		}
	}
	return true
}

// parseHeading matches 1-6 # characters followed by a space or end of line.
// A longer # run, or a run glued to text, is not a heading.
func parseHeading(line string) (Heading, bool) {
	level := runLength(line, '#')
	if level == 0 || level > 6 {
		return Heading{}, false
	}
	rest := line[level:]
	if rest != "" && !strings.HasPrefix(rest, " ") {
		return Heading{}, false
	}
	return Heading{Level: level, Inlines: parseInlines(strings.TrimSpace(rest))}, true
}

// parseFence consumes a fenced region opened at lines[start]. The closing
// fence must use the same character with a run at least as long, followed
// only by whitespace; an unterminated fence runs to the end of the slide.
// Returns the resulting block and the index after the consumed region.
func parseFence(lines []string, start int, fenceChar byte) (Block, int) {
	opening := strings.TrimSpace(lines[start])
	fenceLen := runLength(opening, fenceChar)
	info := strings.TrimSpace(opening[fenceLen:])

	var body []string
	i := start + 1
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		n := runLength(trimmed, fenceChar)
		if n >= fenceLen && strings.TrimSpace(trimmed[n:]) == "" {
			i++
			break
		}
		body = append(body, lines[i])
		i++
	}
	code := strings.Join(body, "\n")

	if strings.HasPrefix(info, "@diagram") {
		return DiagramBlock{Content: code}, i
	}

	language, highlights := parseFenceInfo(info)
	return CodeBlock{Language: language, Code: code, HighlightLines: highlights}, i
}

// parseFenceInfo splits a fence info string into the language name and the
// optional {..} highlight spec.
func parseFenceInfo(info string) (string, []int) {
	if info == "" {
		return "", nil
	}
	if brace := strings.IndexByte(info, '{'); brace >= 0 {
		lang := strings.TrimSpace(info[:brace])
		rest := info[brace+1:]
		if end := strings.IndexByte(rest, '}'); end >= 0 {
			return lang, parseHighlightSpec(rest[:end])
		}
		return lang, nil
	}
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

// parseHighlightSpec expands a comma-separated list of line numbers and
// inclusive start-end ranges, e.g. "3,5-7" becomes [3 5 6 7]. Malformed
// tokens are skipped.
func parseHighlightSpec(spec string) []int {
	var out []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if from, to, found := strings.Cut(part, "-"); found {
			lo, err1 := strconv.Atoi(strings.TrimSpace(from))
			hi, err2 := strconv.Atoi(strings.TrimSpace(to))
			if err1 != nil || err2 != nil {
				continue
			}
			for n := lo; n <= hi; n++ {
				out = append(out, n)
			}
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// parseImage matches ![alt](path) on a single line. Alt text is scanned
// word by word for @ directive tokens, which are stripped from the display
// text. Malformed bracket structure returns false so the line falls through
// to paragraph parsing.
func parseImage(line string) (Image, bool) {
	rest, ok := strings.CutPrefix(line, "![")
	if !ok {
		return Image{}, false
	}
	altFull, rest, found := strings.Cut(rest, "](")
	if !found {
		return Image{}, false
	}
	path, _, found := strings.Cut(rest, ")")
	if !found {
		return Image{}, false
	}

	alt, directives := parseImageAlt(altFull)
	return Image{Alt: alt, Path: path, Directives: directives}, true
}

// parseImageAlt separates @ directive tokens from the displayed alt text.
// Unrecognized @ tokens are dropped from the alt text but otherwise ignored.
func parseImageAlt(altFull string) (string, ImageDirectives) {
	var directives ImageDirectives
	var words []string

	for _, word := range strings.Fields(altFull) {
		token, ok := strings.CutPrefix(word, "@")
		if !ok {
			words = append(words, word)
			continue
		}
		switch {
		case token == "fill":
			directives.Fill = true
		case token == "fit":
			directives.Fit = true
		case token == "left", token == "right", token == "center":
			directives.Align = token
		case strings.HasPrefix(token, "width:"):
			directives.Width = strings.TrimPrefix(token, "width:")
		case strings.HasPrefix(token, "height:"):
			directives.Height = strings.TrimPrefix(token, "height:")
		}
	}

	return strings.Join(words, " "), directives
}

// parseBlockQuote joins consecutive > lines into one quote, stripping the
// marker and separating lines with single spaces.
func parseBlockQuote(lines []string, start int) (Block, int) {
	var parts []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if rest, ok := strings.CutPrefix(trimmed, "> "); ok {
			parts = append(parts, rest)
			i++
		} else if trimmed == ">" {
			i++
		} else {
			break
		}
	}
	return BlockQuote{Inlines: parseInlines(strings.Join(parts, " "))}, i
}

// parseTable consumes consecutive | rows until a blank line or non-table
// line. Fewer than two rows (header + separator) abandons the region with
// ok=false; the separator row is discarded unconditionally.
func parseTable(lines []string, start int) (Block, bool, int) {
	var rows []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "|") {
			rows = append(rows, trimmed)
			i++
		} else if trimmed == "" {
			i++
			break
		} else {
			break
		}
	}

	if len(rows) < 2 {
		return nil, false, i
	}

	table := Table{Headers: parseTableRow(rows[0]), Rows: make([][][]Inline, 0, len(rows)-2)}
	for _, row := range rows[2:] {
		table.Rows = append(table.Rows, parseTableRow(row))
	}
	return table, true, i
}

// parseTableRow splits a | row into independently inline-parsed cells.
func parseTableRow(row string) [][]Inline {
	row = strings.Trim(strings.TrimSpace(row), "|")
	cells := strings.Split(row, "|")
	out := make([][]Inline, 0, len(cells))
	for _, cell := range cells {
		out = append(out, parseInlines(strings.TrimSpace(cell)))
	}
	return out
}

// parseParagraph joins consecutive lines with spaces until a blank line or
// any higher-specificity block start.
func parseParagraph(lines []string, start int) (Block, int) {
	var parts []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || startsNonParagraph(trimmed) {
			break
		}
		parts = append(parts, trimmed)
		i++
	}
	// Always consume at least one line so the scan makes progress even when
	// the entry line itself matches a block pattern that fell through.
	if i == start {
		parts = append(parts, strings.TrimSpace(lines[start]))
		i++
	}
	return Paragraph{Inlines: parseInlines(strings.Join(parts, " "))}, i
}

// startsNonParagraph reports whether a trimmed line begins a block that
// terminates paragraph accumulation.
func startsNonParagraph(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "```") ||
		strings.HasPrefix(line, "~~~") ||
		strings.HasPrefix(line, "![") ||
		strings.HasPrefix(line, "> ") ||
		line == ">" ||
		line == "+++" ||
		isHorizontalRule(line) ||
		(strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|")) ||
		isListStart(line) ||
		isOrderedListStart(line)
}
