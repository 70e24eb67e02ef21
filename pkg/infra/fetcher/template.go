package fetcher

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// RenderBody serializes the template and replaces every {{name}} placeholder.
// Values are JSON-escaped so quotes or newlines in a question keep the body valid.
func RenderBody(template map[string]any, vars map[string]any) ([]byte, error) {
	raw, err := json.Marshal(template)
	if err != nil {
		return nil, fmt.Errorf("encode body template: %w", err)
	}
	if len(vars) == 0 {
		return raw, nil
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", escape(v))
	}
	out := []byte(strings.NewReplacer(pairs...).Replace(string(raw)))

	if err := fastjson.ValidateBytes(out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return out, nil
}

func escape(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	quoted, _ := json.Marshal(s)
	return string(quoted[1 : len(quoted)-1])
}
