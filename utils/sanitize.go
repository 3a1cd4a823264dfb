package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.StrictPolicy()

// StripTags removes every HTML element from input and decodes the entities bluemonday escapes,
// leaving the plain text a client typed. Entity-encoded markup is decoded and stripped as well,
// repeating until the text is stable, so StripTags(StripTags(x)) == StripTags(x).
func StripTags(input string) string {
	text := input
	// each round that changes the text either drops markup or decodes an entity, both of which
	// shrink it, so len(input)+1 rounds always reach a fixed point
	for i := 0; i <= len(input); i++ {
		next := html.UnescapeString(sanitizer.Sanitize(text))
		if next == text {
			break
		}
		text = next
	}
	return text
}
