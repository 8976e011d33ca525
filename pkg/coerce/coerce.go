// Package coerce turns loosely typed, externally supplied values into
// predictable Go values. Nothing in this package returns an error: input that
// cannot be coerced yields the zero value or an absent result.
package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Of converts an arbitrary in-memory value into a gjson.Result so that
// records built from decoded JSON, YAML or Go literals are read the same way.
// Values that cannot be encoded are left out of the records and lists that
// hold them; a value that is unencodable as a whole reads as JSON null.
func Of(value any) (result gjson.Result) {
	result, _ = Read(value)
	return result
}

// Read is Of, also reporting whether anything had to be left out.
func Read(value any) (result gjson.Result, lossy bool) {
	if r, ok := value.(gjson.Result); ok {
		result = r
		return result, lossy
	}

	data, err := json.Marshal(value)
	if err != nil {
		lossy = true
		data, err = json.Marshal(Encodable(value))
		if err != nil {
			return result, lossy
		}
	}

	result = gjson.ParseBytes(data)
	return result, lossy
}

// Encodable returns a copy of value that encoding/json accepts. Records with
// non-string keys get their keys formatted with fmt.Sprint, and values that
// still cannot be encoded are dropped from their record or list. value itself
// is never modified.
func Encodable(value any) (clean any) {
	switch v := value.(type) {
	case map[string]any:
		record := make(map[string]any, len(v))
		for key, item := range v {
			if c, ok := encodable(item); ok {
				record[key] = c
			}
		}
		clean = record
	case map[any]any:
		record := make(map[string]any, len(v))
		for key, item := range v {
			if c, ok := encodable(item); ok {
				record[fmt.Sprint(key)] = c
			}
		}
		clean = record
	case []any:
		list := make([]any, 0, len(v))
		for _, item := range v {
			if c, ok := encodable(item); ok {
				list = append(list, c)
			}
		}
		clean = list
	default:
		if _, err := json.Marshal(v); err == nil {
			clean = v
		}
	}
	return clean
}

func encodable(value any) (clean any, ok bool) {
	switch value.(type) {
	case nil, map[string]any, map[any]any, []any:
		clean = Encodable(value)
		ok = true
	default:
		_, err := json.Marshal(value)
		ok = err == nil
		if ok {
			clean = value
		}
	}
	return clean, ok
}

// Text reads r as a string. Numbers are formatted without exponent noise,
// everything that is not a string or number reads as "".
func Text(r gjson.Result) (text string) {
	switch r.Type {
	case gjson.String:
		text = r.Str
	case gjson.Number:
		text = strconv.FormatFloat(r.Num, 'f', -1, 64)
	}
	return text
}

// TrimmedText is Text with surrounding whitespace removed.
func TrimmedText(r gjson.Result) (text string) {
	text = strings.TrimSpace(Text(r))
	return text
}

// FirstText returns the first non-empty text found under keys of obj.
func FirstText(obj gjson.Result, keys ...string) (text string) {
	for _, key := range keys {
		text = Text(obj.Get(key))
		if text != "" {
			return text
		}
	}
	return text
}

// Number reads r as a finite float64. Numeric strings are accepted.
func Number(r gjson.Result) (n float64, ok bool) {
	switch r.Type {
	case gjson.Number:
		n = r.Num
		ok = true
	case gjson.String:
		var err error
		n, err = strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		ok = err == nil
	}

	if ok && (math.IsNaN(n) || math.IsInf(n, 0)) {
		n = 0
		ok = false
	}

	return n, ok
}

// Bool reads r as a boolean, falling back to def for anything that is not
// a JSON boolean.
func Bool(r gjson.Result, def bool) (b bool) {
	switch r.Type {
	case gjson.True:
		b = true
	case gjson.False:
		b = false
	default:
		b = def
	}
	return b
}

// Entries returns the elements of r when r is an array, nil otherwise.
func Entries(r gjson.Result) (entries []gjson.Result) {
	if !r.IsArray() {
		return entries
	}
	entries = r.Array()
	return entries
}

// Objects returns the object elements of r when r is an array. Elements of
// any other kind are skipped.
func Objects(r gjson.Result) (objects []gjson.Result) {
	objects = make([]gjson.Result, 0)
	for _, entry := range Entries(r) {
		if entry.IsObject() {
			objects = append(objects, entry)
		}
	}
	return objects
}

// Strings returns the trimmed, non-empty string elements of an array.
func Strings(r gjson.Result) (values []string) {
	values = make([]string, 0)
	for _, entry := range Entries(r) {
		if entry.Type != gjson.String {
			continue
		}
		v := strings.TrimSpace(entry.Str)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Truncate shortens s to at most limit runes, appending "..." when it cut.
func Truncate(s string, limit int) (out string) {
	out = s
	if utf8.RuneCountInString(s) <= limit {
		return out
	}
	runes := []rune(s)
	out = string(runes[:limit]) + "..."
	return out
}
