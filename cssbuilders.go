package mdeck

import (
	"fmt"
	"strings"
)

// deckTheme holds the colors of a named presentation theme.
type deckTheme struct {
	background string
	text       string
	accent     string
	muted      string
}

// Built-in themes. Unknown names fall back to "dark".
var deckThemes = map[string]deckTheme{
	"dark":  {background: "#1a1b26", text: "#c0caf5", accent: "#7aa2f7", muted: "#565f89"},
	"light": {background: "#fafafa", text: "#2e3440", accent: "#5e81ac", muted: "#9aa5b1"},
	"paper": {background: "#f4ecd8", text: "#433422", accent: "#a0522d", muted: "#8b7d6b"},
}

// DefaultTheme is used when neither frontmatter nor flags name one.
const DefaultTheme = "dark"

// aspectRatios maps @aspect values to CSS aspect-ratio expressions.
var aspectRatios = map[string]string{
	"16:9": "16 / 9",
	"4:3":  "4 / 3",
}

// buildThemeCSS generates the deck stylesheet for the named theme and
// aspect ratio. One slide per page when printed; on screen, slides stack
// vertically at the configured aspect.
func buildThemeCSS(theme, aspect string) string {
	colors, ok := deckThemes[theme]
	if !ok {
		colors = deckThemes[DefaultTheme]
	}
	ratio, ok := aspectRatios[aspect]
	if !ok {
		ratio = aspectRatios["16:9"]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `body {
  margin: 0;
  background: %s;
  color: %s;
  font-family: -apple-system, "Segoe UI", sans-serif;
}
.slide {
  aspect-ratio: %s;
  box-sizing: border-box;
  padding: 4%% 6%%;
  page-break-after: always;
  overflow: hidden;
}
.slide h1 { color: %s; font-size: 2.4em; }
.slide h2 { color: %s; font-size: 1.8em; }
blockquote {
  border-left: 4px solid %s;
  margin-left: 0;
  padding-left: 1em;
  font-style: italic;
}
a { color: %s; }
hr { border: none; border-top: 1px solid %s; }
footer { color: %s; font-size: 0.8em; padding: 0.5em 6%%; }
`, colors.background, colors.text, ratio, colors.accent, colors.accent,
		colors.accent, colors.accent, colors.muted, colors.muted)

	sb.WriteString(`.columns { display: flex; gap: 2em; }
.column { flex: 1; }
table { border-collapse: collapse; width: 100%; }
th, td { padding: 0.4em 0.8em; text-align: left; }
`)
	fmt.Fprintf(&sb, "th { border-bottom: 2px solid %s; }\ntd { border-bottom: 1px solid %s; }\n",
		colors.accent, colors.muted)

	sb.WriteString(`.img-fill { width: 100%; height: 100%; object-fit: cover; }
.img-fit { max-width: 100%; max-height: 100%; object-fit: contain; }
.img-left { float: left; margin-right: 1em; }
.img-right { float: right; margin-left: 1em; }
.img-center { display: block; margin: 0 auto; }
.diagram-nodes { display: flex; flex-wrap: wrap; gap: 1em; }
`)
	fmt.Fprintf(&sb, `.diagram-node {
  border: 2px solid %s;
  border-radius: 999px;
  padding: 0.4em 1.2em;
}
.diagram-edges { list-style: none; padding-left: 0; color: %s; }
`, colors.accent, colors.muted)

	return sb.String()
}
