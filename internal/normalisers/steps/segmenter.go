// Package steps segments free-text recipe instructions into an ordered
// list of presentation-ready steps. Catalog instructions arrive as one
// block with embedded line breaks and inconsistent "1." / "2)" style
// markers; presentation layers want clean numbered lists.
package steps

import (
	"regexp"
	"strings"
)

var (
	// lineBreaks matches a run of one or more line-break characters,
	// so blank lines and CRLF pairs collapse into one split point.
	lineBreaks = regexp.MustCompile(`[\r\n]+`)

	// stepMarker matches a leading numeric marker such as "1." or
	// "12)" with any trailing whitespace. Anchored so digits inside a
	// step are left alone.
	stepMarker = regexp.MustCompile(`^\d+[.)]\s*`)
)

// Segment splits an instruction block into ordered steps. Each piece
// between line-break runs has its leading numeric marker stripped and
// its surrounding whitespace trimmed; pieces that end up empty are
// dropped. An empty input yields nil.
func Segment(instructions string) []string {
	if instructions == "" {
		return nil
	}

	var out []string
	for _, piece := range lineBreaks.Split(instructions, -1) {
		piece = stepMarker.ReplaceAllString(piece, "")
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
