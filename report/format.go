package report

import (
	"regexp"
	"strings"
)

// Segment is a piece of remark text with an emphasis flag. Both the layout
// renderer and the DOCX engine consume segments so the two outputs bold the
// same spans.
type Segment struct {
	Text string
	Bold bool
}

// emphasisMarkers are the substrings that get bolded inside remark text.
// Matching is plain substring search against these fixed markers.
var emphasisMarkers = []string{"YOU", "ONE feet radius"}

// EmphasisSegments splits a remark into plain and bold segments around the
// marker substrings, preserving the original text exactly.
func EmphasisSegments(s string) []Segment {
	segs := []Segment{{Text: s}}
	for _, marker := range emphasisMarkers {
		var next []Segment
		for _, seg := range segs {
			if seg.Bold {
				next = append(next, seg)
				continue
			}
			rest := seg.Text
			for {
				i := strings.Index(rest, marker)
				if i < 0 {
					if rest != "" {
						next = append(next, Segment{Text: rest})
					}
					break
				}
				if i > 0 {
					next = append(next, Segment{Text: rest[:i]})
				}
				next = append(next, Segment{Text: marker, Bold: true})
				rest = rest[i+len(marker):]
			}
		}
		segs = next
	}
	return segs
}

var ordinalPattern = regexp.MustCompile(`^(.*?)(\d+)(st|nd|rd|th)(.*)$`)

// SplitOrdinal breaks a priority label around its first ordinal suffix so
// the renderer can demote the suffix visually ("1st" -> "1" + raised "st").
// Labels without an ordinal come back with everything in before.
func SplitOrdinal(label string) (before, number, suffix, after string) {
	m := ordinalPattern.FindStringSubmatch(label)
	if m == nil {
		return label, "", "", ""
	}
	return m[1], m[2], m[3], m[4]
}
