package mdeck

import "strings"

// parseInlines turns a text span into its inline-formatting sequence. One
// forward scan over runes; every delimiter that never finds a valid close
// degrades to literal text, and the position is strictly monotonic so the
// scan always terminates.
func parseInlines(text string) []Inline {
	var result []Inline
	chars := []rune(text)
	var current strings.Builder
	i := 0

	flush := func() {
		if current.Len() > 0 {
			result = append(result, Text(current.String()))
			current.Reset()
		}
	}

	for i < len(chars) {
		switch {
		case chars[i] == '`':
			if code, end, ok := scanInlineCode(chars, i); ok {
				flush()
				result = append(result, Code(code))
				i = end
				continue
			}

		case chars[i] == '*' && peek(chars, i+1) == '*':
			if inner, end, ok := scanDelimited(chars, i, "**", "**"); ok {
				flush()
				result = append(result, Bold{Children: parseInlines(inner)})
				i = end
				continue
			}

		case chars[i] == '~' && peek(chars, i+1) == '~':
			if inner, end, ok := scanDelimited(chars, i, "~~", "~~"); ok {
				flush()
				result = append(result, Strikethrough{Children: parseInlines(inner)})
				i = end
				continue
			}

		case chars[i] == '*':
			if inner, end, ok := scanDelimited(chars, i, "*", "*"); ok {
				flush()
				result = append(result, Italic{Children: parseInlines(inner)})
				i = end
				continue
			}

		case chars[i] == '[':
			if link, end, ok := scanLink(chars, i); ok {
				flush()
				result = append(result, link)
				i = end
				continue
			}
		}

		current.WriteRune(chars[i])
		i++
	}

	flush()
	return result
}

// peek returns the rune at index or 0 past the end.
func peek(chars []rune, index int) rune {
	if index < len(chars) {
		return chars[index]
	}
	return 0
}

// scanInlineCode scans from an opening backtick to the next backtick. The
// content is verbatim. Returns ok=false when no closing backtick exists.
func scanInlineCode(chars []rune, start int) (string, int, bool) {
	for i := start + 1; i < len(chars); i++ {
		if chars[i] == '`' {
			return string(chars[start+1 : i]), i + 1, true
		}
	}
	return "", 0, false
}

// scanDelimited scans a span between open and close delimiters. The close
// is recognized only when the accumulated content is non-empty and the scan
// is not inside an unclosed backtick span, so delimiter characters inside
// code runs are never misread. Returns ok=false when no close is found.
func scanDelimited(chars []rune, start int, open, close string) (string, int, bool) {
	openRunes := []rune(open)
	closeRunes := []rune(close)

	for j, r := range openRunes {
		if peek(chars, start+j) != r {
			return "", 0, false
		}
	}

	i := start + len(openRunes)
	contentStart := i
	inCode := false

	for i < len(chars) {
		if !inCode && i > contentStart && matchesAt(chars, i, closeRunes) {
			return string(chars[contentStart:i]), i + len(closeRunes), true
		}
		if chars[i] == '`' {
			inCode = !inCode
		}
		i++
	}

	return "", 0, false
}

// matchesAt reports whether the rune sequence appears at index i.
func matchesAt(chars []rune, i int, seq []rune) bool {
	for j, r := range seq {
		if peek(chars, i+j) != r {
			return false
		}
	}
	return true
}

// scanLink scans a [text](url) span. Bracket matching is depth-aware on
// both sides: nested [ ] inside the text and nested ( ) inside the URL are
// balanced before the outer delimiters are accepted. The link text is
// recursively parsed; the URL is verbatim.
func scanLink(chars []rune, start int) (Inline, int, bool) {
	if peek(chars, start) != '[' {
		return nil, 0, false
	}

	i := start + 1
	textStart := i
	depth := 1
	for i < len(chars) {
		switch chars[i] {
		case '[':
			depth++
		case ']':
			depth--
		}
		if depth == 0 {
			break
		}
		i++
	}
	if i >= len(chars) {
		return nil, 0, false
	}
	text := string(chars[textStart:i])
	i++ // skip ]

	if peek(chars, i) != '(' {
		return nil, 0, false
	}
	i++
	urlStart := i
	depth = 1
	for i < len(chars) {
		switch chars[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			break
		}
		i++
	}
	if i >= len(chars) {
		return nil, 0, false
	}
	url := string(chars[urlStart:i])
	i++ // skip )

	return Link{Text: parseInlines(text), URL: url}, i, true
}
