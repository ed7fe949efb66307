package ocr

import (
	"regexp"
	"strings"
)

var (
	reCRLF         = regexp.MustCompile(`\r\n?`)
	reHorizSpace   = regexp.MustCompile(`[ \t]+`)
	reBlankLines   = regexp.MustCompile(`\n\s*\n`)
	reCharset      = regexp.MustCompile(`[^\w\s$.,:-]`)
	rePriceFlag    = regexp.MustCompile(`(?m)(\d+)\.(\d{2})[FT]?\s*$`)
	reSpacedDolr   = regexp.MustCompile(`\$\s*(\d+)`)
	rePriceThenCap = regexp.MustCompile(`(\d+\.\d{2}[FT]?)\s+([A-Z])`)
	reCapRunSpace  = regexp.MustCompile(`([A-Z]+)\s+([A-Z]+)`)
)

// Normalize cleans raw OCR output into a line-oriented form the structuring
// model parses reliably. OCR engines merge adjacent receipt lines and attach
// tax flags to prices; forcing one item per line is what matters most here.
// Total and idempotent: never fails, empty input yields empty output.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	// collapse runs of horizontal whitespace, keep line structure
	s = reHorizSpace.ReplaceAllString(s, " ")
	s = reBlankLines.ReplaceAllString(s, "\n")
	// strip characters outside the word-and-punctuation set
	s = reCharset.ReplaceAllString(s, " ")
	s = reHorizSpace.ReplaceAllString(s, " ")
	// "$ 5" -> "$5"
	s = reSpacedDolr.ReplaceAllString(s, "$$$1")
	// break the line after a price so the next item starts fresh
	s = rePriceThenCap.ReplaceAllString(s, "$1\n$2")
	// drop trailing single-letter tax flags from two-decimal price tokens;
	// runs after line-breaking so flags exposed at line ends get stripped too
	s = rePriceFlag.ReplaceAllString(s, "$1.$2")
	// collapse doubled capital-word spacing artifacts
	s = reCapRunSpace.ReplaceAllString(s, "$1 $2")
	// trim trailing spaces on lines
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(s)
}
