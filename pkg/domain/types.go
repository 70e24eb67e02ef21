package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// JSONMap is a JSONB column holding an arbitrary object.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, m)
}

// ToJSONMap round-trips any JSON-serializable value into a JSONMap.
func ToJSONMap(v any) (JSONMap, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m JSONMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// NewID returns prefix_<n hex chars> from a random UUID. n is capped at 32.
func NewID(prefix string, n int) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > 0 && n < len(hex) {
		hex = hex[:n]
	}
	return prefix + "_" + hex
}
