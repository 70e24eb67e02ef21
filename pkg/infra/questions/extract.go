package questions

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	fencePattern  = regexp.MustCompile("(?i)```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")
	arrayPattern  = regexp.MustCompile(`\[\s*[\s\S]*?\]`)
	objectPattern = regexp.MustCompile(`\{\s*[\s\S]*?\}`)

	ErrNoJSON = errors.New("no valid JSON in model output")
)

// ExtractJSON finds the first valid JSON document in free-form model output.
// Candidates are tried in order: a fenced block, the first array, the first
// object, then the whole text.
func ExtractJSON(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if m := fencePattern.FindStringSubmatch(raw); m != nil {
		if s := strings.TrimSpace(m[1]); json.Valid([]byte(s)) {
			return s, nil
		}
	}
	for _, re := range []*regexp.Regexp{arrayPattern, objectPattern} {
		if s := re.FindString(raw); s != "" && json.Valid([]byte(s)) {
			return s, nil
		}
	}
	if json.Valid([]byte(raw)) {
		return raw, nil
	}
	return "", ErrNoJSON
}
