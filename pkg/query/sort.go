package query

import (
	"encoding/json"
	"strings"
)

// SortField names a view field and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// ParseSortFields parses a comma-separated list such as "name,-date".
// A leading "-" selects descending order.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			if name := strings.TrimPrefix(part, "-"); name != "" {
				fields = append(fields, SortField{Field: name, Descending: true})
			}
			continue
		}
		fields = append(fields, SortField{Field: part})
	}
	return fields
}

// SortFields accepts either the comma-separated string form or an array of
// SortField objects when decoded from JSON.
type SortFields []SortField

func (s *SortFields) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = ParseSortFields(str)
		return nil
	}

	var fields []SortField
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = fields
	return nil
}
