package layout

import (
	"strings"
	"unicode/utf8"
)

// Text metrics used to estimate card heights. Widths are approximated per
// character so layout never depends on installed fonts.
const (
	LabelSize  = 12.0
	LabelLine  = 16.0
	TitleSize  = 18.0
	TitleLine  = 28.0
	TitleGap   = 4.0
	DescSize   = 14.0
	DescLine   = 20.0
	DescGap    = 8.0
	charWidth  = 0.52
	boldWidth  = 0.6
	minPerLine = 8
)

// TextWidth is the horizontal space next to the icon.
func TextWidth(cardWidth float64) float64 {
	return cardWidth - 2*CardPadding - IconSize - IconGap
}

// MaxChars estimates how many characters of the given size fit in width.
func MaxChars(width, size float64, bold bool) int {
	ratio := charWidth
	if bold {
		ratio = boldWidth
	}
	return max(minPerLine, int(width/(size*ratio)))
}

// WrapText breaks text into lines of at most maxChars characters. Explicit
// newlines are kept, runs of spaces collapse, and words longer than a line
// are split. Empty text yields no lines.
func WrapText(text string, maxChars int) []string {
	if text == "" {
		return nil
	}
	return wrapParagraphs(strings.Split(text, "\n"), maxChars)
}

func wrapParagraphs(paras []string, maxChars int) []string {
	maxChars = max(1, maxChars)
	var lines []string
	for _, para := range paras {
		lines = append(lines, wrapParagraph(para, maxChars)...)
	}
	return lines
}

func wrapParagraph(para string, maxChars int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   strings.Builder
		n     int
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		n = 0
	}
	for _, w := range words {
		for utf8.RuneCountInString(w) > maxChars {
			if n > 0 {
				flush()
			}
			head, tail := splitRunes(w, maxChars)
			lines = append(lines, head)
			w = tail
		}
		wn := utf8.RuneCountInString(w)
		if n > 0 && n+1+wn > maxChars {
			flush()
		}
		if n > 0 {
			cur.WriteByte(' ')
			n++
		}
		cur.WriteString(w)
		n += wn
	}
	if n > 0 {
		flush()
	}
	return lines
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
