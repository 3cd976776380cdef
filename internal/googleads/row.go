package googleads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Row is one decoded result object. Accessors take the snake_case dotted
// field paths used in GAQL ("campaign.advertising_channel_type") and resolve
// them against the camelCase JSON keys the REST API returns. Missing fields
// yield zero values.
type Row map[string]any

// DecodeRows parses a JSON array of result objects.
func DecodeRows(data []byte) ([]Row, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rows []Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to parse rows: %w", err)
	}
	return rows, nil
}

func (r Row) lookup(path string) (any, bool) {
	var cur any = map[string]any(r)
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		v, ok := m[camel(seg)]
		if !ok {
			if v, ok = m[seg]; !ok {
				return nil, false
			}
		}
		cur = v
	}
	return cur, cur != nil
}

// Has reports whether the path resolves to a non-null value.
func (r Row) Has(path string) bool {
	_, ok := r.lookup(path)
	return ok
}

// Str returns the value at path as a string.
func (r Row) Str(path string) string {
	v, ok := r.lookup(path)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}

// Int returns the value at path as int64. int64 fields arrive as JSON
// strings, so both forms are accepted.
func (r Row) Int(path string) int64 {
	v, ok := r.lookup(path)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return int64(f)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
		f, _ := strconv.ParseFloat(t, 64)
		return int64(f)
	case float64:
		return int64(t)
	case int:
		return int64(t)
	case int64:
		return t
	}
	return 0
}

// Float returns the value at path as float64.
func (r Row) Float(path string) float64 {
	v, ok := r.lookup(path)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	}
	return 0
}

// Bool returns the value at path as bool.
func (r Row) Bool(path string) bool {
	v, ok := r.lookup(path)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	}
	return false
}

// Object returns the nested object at path.
func (r Row) Object(path string) Row {
	v, ok := r.lookup(path)
	if !ok {
		return nil
	}
	m, _ := asMap(v)
	return m
}

// Rows returns the array of objects at path.
func (r Row) Rows(path string) []Row {
	v, ok := r.lookup(path)
	if !ok {
		return nil
	}
	items, _ := v.([]any)
	out := make([]Row, 0, len(items))
	for _, item := range items {
		if m, ok := asMap(item); ok {
			out = append(out, m)
		}
	}
	return out
}

// Strings returns the array of scalars at path as strings.
func (r Row) Strings(path string) []string {
	v, ok := r.lookup(path)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, Row{"v": item}.Str("v"))
		}
		return out
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Row:
		return t, true
	}
	return nil, false
}

// camel converts "advertising_channel_type" to "advertisingChannelType".
func camel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
