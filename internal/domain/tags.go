package domain

import "strings"

// MaxTags is the most tags a judgment accepts per edit.
const MaxTags = 20

// ParseTags derives the tag list from comma-separated text: pieces are
// trimmed, empty pieces dropped, and the result capped at MaxTags.
// Order is kept and duplicates are not removed.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tags = append(tags, piece)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}

// JoinTags renders tags back into the editable text form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
