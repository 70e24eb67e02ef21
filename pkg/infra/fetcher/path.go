package fetcher

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// SplitPath turns "choices[0].message.content" into fastjson keys.
func SplitPath(path string) []string {
	var keys []string
	for _, part := range strings.Split(path, ".") {
		for part != "" {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				keys = append(keys, part)
				break
			}
			if open > 0 {
				keys = append(keys, part[:open])
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				keys = append(keys, part[open+1:])
				break
			}
			keys = append(keys, part[open+1:open+end])
			part = part[open+end+1:]
		}
	}
	return keys
}

// Extract returns the string leaf at path, or the JSON text of any other leaf.
// An empty path returns the whole body.
func Extract(body []byte, path string) (string, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return "", fmt.Errorf("parse upstream response: %w", err)
	}
	keys := SplitPath(path)
	if len(keys) > 0 {
		v = v.Get(keys...)
	}
	if v == nil {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes()), nil
	}
	return v.String(), nil
}
