package normalizer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

// Decode parses an upstream body into the generic tree the Extract functions
// walk. Numbers stay float64, which is all the upstream ever sends.
func Decode(body []byte) (any, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&raw); err != nil {
		return nil, &models.ParseError{Err: err}
	}
	return raw, nil
}

// Get follows path through nested objects (string keys) and arrays (int
// indexes). It never panics: any missing step or type mismatch yields ok=false.
func Get(v any, path ...any) (any, bool) {
	cur := v
	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			next, ok := obj[key]
			if !ok {
				return nil, false
			}
			cur = next
		case int:
			arr, ok := cur.([]any)
			if !ok || key < 0 || key >= len(arr) {
				return nil, false
			}
			cur = arr[key]
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// String returns a non-empty string at path.
func String(v any, path ...any) (string, bool) {
	raw, ok := Get(v, path...)
	if !ok {
		return "", false
	}
	switch s := raw.(type) {
	case string:
		s = strings.TrimSpace(s)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	}
	return "", false
}

// Float accepts JSON numbers and numeric strings ("4.3").
func Float(v any, path ...any) (float64, bool) {
	raw, ok := Get(v, path...)
	if !ok {
		return 0, false
	}
	switch n := raw.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Int truncates whatever Float finds.
func Int(v any, path ...any) (int, bool) {
	f, ok := Float(v, path...)
	if !ok || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func List(v any, path ...any) ([]any, bool) {
	raw, ok := Get(v, path...)
	if !ok {
		return nil, false
	}
	arr, ok := raw.([]any)
	return arr, ok
}

func Object(v any, path ...any) (map[string]any, bool) {
	raw, ok := Get(v, path...)
	if !ok {
		return nil, false
	}
	obj, ok := raw.(map[string]any)
	return obj, ok
}

// Strings collects the non-empty string entries of the list at path.
func Strings(v any, path ...any) []string {
	arr, _ := List(v, path...)
	out := make([]string, 0, len(arr))
	for i := range arr {
		if s, ok := String(arr, i); ok {
			out = append(out, s)
		}
	}
	return out
}

func stringOr(def string, v any, path ...any) string {
	if s, ok := String(v, path...); ok {
		return s
	}
	return def
}

// digits pulls the first run of digits out of a display string such as
// "₹400 for two".
func digits(s string) (int, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && (isDigit(rune(s[end])) || s[end] == ',') {
		end++
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s[start:end], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func imageURL(cdn, id string) string {
	if id == "" {
		return models.PlaceholderImageURL
	}
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	if cdn == "" {
		return models.PlaceholderImageURL
	}
	return cdn + id
}
