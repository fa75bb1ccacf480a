package transform

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// lookup resolves key on a raw entity: the v4 envelope (attributes.key)
// first, then the flat v5 shape. Explicit nulls count as absent.
func lookup(raw map[string]any, key string) (any, bool) {
	if raw == nil {
		return nil, false
	}
	if attrs, ok := raw["attributes"].(map[string]any); ok {
		if v, ok := attrs[key]; ok && v != nil {
			return v, true
		}
	}
	v, ok := raw[key]
	return v, ok && v != nil
}

// stringField returns the first of keys that holds a scalar, as a string
func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := lookup(raw, key); ok {
			if s, ok := scalarString(v); ok {
				return s
			}
		}
	}
	return ""
}

func objectField(raw map[string]any, key string) map[string]any {
	v, _ := lookup(raw, key)
	m, _ := v.(map[string]any)
	return m
}

func listField(raw map[string]any, key string) []any {
	v, _ := lookup(raw, key)
	l, _ := v.([]any)
	return l
}

func boolField(raw map[string]any, keys ...string) bool {
	for _, key := range keys {
		v, ok := lookup(raw, key)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return b
			}
		case float64:
			return t != 0
		}
	}
	return false
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// entityID returns the first non-empty identifier among keys. When the
// source has none, a random UUID is substituted; such ids are placeholders
// and must not be used for equality.
func entityID(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := scalarString(v); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return uuid.NewString()
}

// relation unwraps {data: {attributes: {...}}}, {data: {...}} or a flat object
func relation(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := m["data"]; ok {
		switch d := data.(type) {
		case map[string]any:
			if attrs, ok := d["attributes"].(map[string]any); ok {
				return attrs
			}
			return d
		case []any:
			if len(d) > 0 {
				return relation(map[string]any{"data": d[0]})
			}
		}
		return nil
	}
	if attrs, ok := m["attributes"].(map[string]any); ok {
		return attrs
	}
	return m
}
