package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, NormalizeName(m)) {
			return true
		}
	}
	return false
}

// SplitLabel returns the trimmed text after the first colon of a
// "Label: value" string. Text without a colon is returned trimmed as is.
func SplitLabel(text string) string {
	_, value, found := strings.Cut(text, ":")
	if !found {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(value)
}
