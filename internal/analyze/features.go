package analyze

import (
	"regexp"
	"strings"
)

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	linkPattern    = regexp.MustCompile(`https?://\S+`)
)

// Features are the structured fields derived from a post's free text.
// Sequences preserve order of first appearance and keep duplicates.
type Features struct {
	Hashtags  []string
	Mentions  []string
	Links     []string
	WordCount int
}

// ExtractFeatures derives hashtags, mentions, links, and a whitespace
// word count from post content.
func ExtractFeatures(content string) Features {
	f := Features{
		Hashtags: hashtagPattern.FindAllString(content, -1),
		Mentions: mentionPattern.FindAllString(content, -1),
		Links:    linkPattern.FindAllString(content, -1),
	}
	f.WordCount = len(strings.Fields(strings.TrimSpace(content)))
	return f
}
