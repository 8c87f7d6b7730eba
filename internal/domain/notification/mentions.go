package notification

import "regexp"

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// ExtractMentions returns the ordered sequence of @word tokens found in
// text, without the @ prefix. Duplicates are preserved; re-running on the
// same input yields the same sequence.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}
