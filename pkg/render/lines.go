package render

import (
	"regexp"
	"strings"

	"slidedeck/pkg/deck"
	"slidedeck/pkg/theme"
)

var (
	// A digit run followed by a combining keycap (optionally after VS16).
	keycap = regexp.MustCompile(`^\d+\x{FE0F}?\x{20E3}`)
	image  = regexp.MustCompile(`!\[\]\((.*?)\)`)
)

// Lines translates content line by line. Each line becomes exactly one node
// except split-marker lines, which produce nothing. color is the text colour
// applied to every text node.
func Lines(content string, t theme.Theme, color string) []Node {
	lines := strings.Split(content, "\n")
	nodes := make([]Node, 0, len(lines))
	for _, line := range lines {
		if n, ok := translate(line, t, color); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func translate(line string, t theme.Theme, color string) (Node, bool) {
	if line == deck.SplitMarker {
		return Node{}, false
	}

	heading := Style{Font: t.Fonts.Heading, Color: color}
	body := Style{Font: t.Fonts.Body, Color: color}

	// Longest header prefix first: "### x" also starts with "#".
	if rest, ok := strings.CutPrefix(line, "### "); ok {
		return Node{Kind: KindSubheading, Text: rest, Style: heading}, true
	}
	if rest, ok := strings.CutPrefix(line, "## "); ok {
		return Node{Kind: KindHeading, Text: rest, Style: heading}, true
	}
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return Node{Kind: KindTitle, Text: rest, Style: heading}, true
	}
	if rest, ok := strings.CutPrefix(line, "> "); ok {
		quote := heading
		quote.Border = t.Colors.Primary
		return Node{Kind: KindQuote, Text: rest, Style: quote}, true
	}
	if rest, ok := strings.CutPrefix(line, "- "); ok {
		return Node{Kind: KindListItem, Text: rest, Style: body}, true
	}
	if keycap.MatchString(line) {
		return Node{Kind: KindEmphasis, Text: line, Style: body}, true
	}
	if strings.HasPrefix(line, "![](") {
		if m := image.FindStringSubmatch(line); m != nil && m[1] != "" {
			return Node{Kind: KindImage, URL: m[1]}, true
		}
	}
	if strings.TrimSpace(line) == "" {
		return Node{Kind: KindSpacer}, true
	}
	return Node{Kind: KindParagraph, Text: line, Style: body}, true
}
