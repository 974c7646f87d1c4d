package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Strict policy: user-submitted text on discussions and replies is stored
// as plain text, so every HTML element is stripped.
var policy = bluemonday.StrictPolicy()

// Text strips markup and surrounding whitespace from user input.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// Tags sanitizes a tag list, dropping entries that are empty afterwards.
func Tags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if cleaned := Text(t); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
