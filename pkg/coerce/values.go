package coerce

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

//nolint:gochecknoglobals // Compiled once, read-only
var (
	schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// opaqueSchemes carry no "//" but are still complete URIs.
//
//nolint:gochecknoglobals // Read-only lookup table
var opaqueSchemes = []string{"mailto:", "tel:"}

// SkillList normalizes a skills-like value into a deduplicated list of
// trimmed, non-empty strings. Lists of strings or {name} records and
// comma-separated strings are understood; anything else yields an empty list.
func SkillList(value any) (skills []string) {
	skills = SkillListOf(Of(value))
	return skills
}

// SkillListOf is SkillList for an already parsed value.
func SkillListOf(r gjson.Result) (skills []string) {
	skills = make([]string, 0)
	seen := make(map[string]struct{})

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}

	switch {
	case r.Type == gjson.String:
		for _, part := range strings.Split(r.Str, ",") {
			add(part)
		}
	case r.IsArray():
		for _, entry := range r.Array() {
			switch {
			case entry.Type == gjson.String, entry.Type == gjson.Number:
				add(Text(entry))
			case entry.IsObject():
				add(Text(entry.Get("name")))
			}
		}
	}

	return skills
}

// CanonicalURL trims value, prepends https:// when no scheme is present and
// returns the result only if it parses as a URL with a host. Non-string and
// blank input is absent.
func CanonicalURL(value any) (canonical string, ok bool) {
	s, isString := value.(string)
	if !isString {
		if r, isResult := value.(gjson.Result); isResult && r.Type == gjson.String {
			s = r.Str
		} else {
			return canonical, ok
		}
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return canonical, ok
	}

	if !hasScheme(trimmed) {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return canonical, ok
	}
	if parsed.Host == "" && parsed.Opaque == "" {
		return canonical, ok
	}

	canonical = trimmed
	ok = true
	return canonical, ok
}

// ValidEmail trims value and returns it if it looks like
// something@something.something.
func ValidEmail(value any) (email string, ok bool) {
	s, isString := value.(string)
	if !isString {
		if r, isResult := value.(gjson.Result); isResult && r.Type == gjson.String {
			s = r.Str
		} else {
			return email, ok
		}
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return email, ok
	}

	email = trimmed
	ok = true
	return email, ok
}

func hasScheme(s string) (found bool) {
	if schemePattern.MatchString(s) {
		found = true
		return found
	}
	lower := strings.ToLower(s)
	for _, prefix := range opaqueSchemes {
		if strings.HasPrefix(lower, prefix) {
			found = true
			return found
		}
	}
	return found
}
