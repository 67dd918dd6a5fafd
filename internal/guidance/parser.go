package guidance

import (
	"regexp"
	"strings"
)

var (
	verseRe       = regexp.MustCompile(`(?s)Verse:(.*?)(?:Explanation:|\z)`)
	explanationRe = regexp.MustCompile(`(?s)Explanation:(.*)`)
)

// ParseReply splits the assistant reply on the "Verse:" and "Explanation:"
// markers. Without a "Verse:" marker the whole reply is the verse.
func ParseReply(content string) Response {
	out := Response{Verse: content, FullText: content}

	m := verseRe.FindStringSubmatch(content)
	if m == nil {
		return out
	}
	out.Verse = strings.TrimSpace(m[1])

	if e := explanationRe.FindStringSubmatch(content); e != nil {
		out.Explanation = strings.TrimSpace(e[1])
	}
	return out
}
