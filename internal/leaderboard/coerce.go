package leaderboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// lookup returns the first alias whose value exists and is not null.
func lookup(obj gjson.Result, aliases ...string) (gjson.Result, bool) {
	if !obj.IsObject() {
		return gjson.Result{}, false
	}

	for _, alias := range aliases {
		value := field(obj, alias)
		if value.Exists() && value.Type != gjson.Null {
			return value, true
		}
	}

	return gjson.Result{}, false
}

// field returns the value of key in obj. When the key is repeated the last occurrence
// wins, matching how browsers decode objects.
func field(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(name, value gjson.Result) bool {
		if name.Str == key {
			found = value
		}

		return true
	})

	return found
}

// toNumber converts a JSON value to a float. The second return value is false when
// the value has no finite numeric representation.
func toNumber(value gjson.Result) (float64, bool) {
	var number float64

	switch value.Type {
	case gjson.Number:
		number = value.Num
	case gjson.True:
		number = 1
	case gjson.False, gjson.Null:
		number = 0
	case gjson.String:
		parsed, ok := parseNumericString(value.Str)
		if !ok {
			return 0, false
		}
		number = parsed
	case gjson.JSON:
		if !value.IsArray() {
			return 0, false
		}

		elements := value.Array()
		switch len(elements) {
		case 0:
			return 0, true
		case 1:
			if elements[0].IsObject() {
				return 0, false
			}

			return toNumber(elements[0])
		default:
			return 0, false
		}
	}

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}

	return number, true
}

func parseNumericString(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, true
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "0x") {
		parsed, err := strconv.ParseUint(trimmed[2:], 16, 64)
		if err != nil {
			return 0, false
		}

		return float64(parsed), true
	}

	// ParseFloat also accepts "inf", "nan" and underscores, none of which are numbers here.
	if strings.ContainsAny(lower, "in_") {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

// coerceInt resolves the first present alias to an integer, truncating toward zero.
func coerceInt(obj gjson.Result, fallback int, aliases ...string) int {
	value, found := lookup(obj, aliases...)
	if !found {
		return fallback
	}

	number, ok := toNumber(value)
	if !ok {
		return fallback
	}

	truncated := math.Trunc(number)
	if truncated > math.MaxInt32 || truncated < math.MinInt32 { // keep totals representable
		return fallback
	}

	return int(truncated)
}

// coerceFloat resolves the first present alias to a finite float.
func coerceFloat(obj gjson.Result, fallback float64, aliases ...string) float64 {
	value, found := lookup(obj, aliases...)
	if !found {
		return fallback
	}

	number, ok := toNumber(value)
	if !ok {
		return fallback
	}

	return number
}

// coerceString resolves the first present alias to its display text.
func coerceString(obj gjson.Result, fallback string, aliases ...string) string {
	value, found := lookup(obj, aliases...)
	if !found {
		return fallback
	}

	return toText(value)
}

func toText(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return value.Str
	case gjson.Number:
		return strconv.FormatFloat(value.Num, 'f', -1, 64)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return ""
	case gjson.JSON:
		if value.IsArray() {
			var parts []string
			value.ForEach(func(_, element gjson.Result) bool {
				parts = append(parts, toText(element))

				return true
			})

			return strings.Join(parts, ",")
		}

		return "[object Object]"
	}

	return ""
}
