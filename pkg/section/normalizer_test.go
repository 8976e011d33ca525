package section

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikogura/portfolio-render/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer() (n *Normalizer) {
	n = NewNormalizer(DefaultSchema(), nil)
	return n
}

func mustNormalize(t *testing.T, n *Normalizer, typ Type, raw map[string]any) (content map[string]any) {
	t.Helper()
	content, err := n.Normalize(typ, raw)
	require.NoError(t, err)
	return content
}

//nolint:gochecknoglobals // Shared garbage inputs
var malformedInputs = map[string]map[string]any{
	"nil":   nil,
	"empty": {},
	"wrong scalar types": {
		"title": 12, "subtitle": true, "overlay_opacity": "loud", "skills": 4,
		"display_mode": []any{"cloud"}, "posts_per_row": "many", "fields": "name,email",
		"copyright_text": map[string]any{"year": 2024}, "show_filters": "yes",
		"email": 99, "phone": []any{1}, "social": "github.com/me",
	},
	"wrong collection types": {
		"cta_buttons": "Go", "experiences": map[string]any{"title": "x"}, "projects": 7,
		"services": "s", "counters": true, "testimonials": nil, "posts": "p",
		"links": 1.5, "columns": map[string]any{}, "social_links": []any{"https://x.com"},
		"code_snippets": "fmt.Println()", "contact_info": "me@example.com",
	},
	"nested garbage": {
		"cta_buttons":   []any{nil, 1, []any{}, map[string]any{"text": map[string]any{"a": 1}, "variant": 3}},
		"experiences":   []any{nil, map[string]any{}, map[string]any{"title": []any{"x"}}},
		"projects":      []any{1, "2", nil, map[string]any{"id": "abc", "title": "x"}, map[string]any{"id": 3}},
		"testimonials":  []any{map[string]any{"content": "", "rating": 9}, map[string]any{"quote": "great", "rating": "NaN"}},
		"counters":      []any{map[string]any{"label": "", "value": "0"}, map[string]any{"value": "12"}},
		"columns":       []any{map[string]any{"links": []any{map[string]any{"url": "x"}}}},
		"social_links":  map[string]any{"linkedin": 5, "github": "not a url", "email": "nope"},
		"contact_info":  map[string]any{"email": []any{}, "linkedin": "   "},
		"fields":        []any{1, nil, "EMAIL", " Name ", "email"},
		"code_snippets": []any{map[string]any{"code": "  "}, map[string]any{"code": 42}},
		"deep":          map[string]any{"a": map[string]any{"b": map[string]any{"c": []any{map[string]any{}}}}},
	},
}

func TestNormalizeIsTotal(t *testing.T) {
	n := newTestNormalizer()

	for _, typ := range n.Types() {
		reference := mustNormalize(t, n, typ, nil)

		for name, raw := range malformedInputs {
			t.Run(string(typ)+"/"+name, func(t *testing.T) {
				var content map[string]any
				require.NotPanics(t, func() {
					content = mustNormalize(t, n, typ, raw)
				})

				require.Len(t, content, len(reference))
				for key := range reference {
					value, present := content[key]
					assert.True(t, present, "field %s missing", key)
					assert.NotNil(t, value, "field %s is nil", key)
				}
			})
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := newTestNormalizer()

	inputs := map[string]map[string]any{
		"rich": {
			"title": "Jane", "subtitle": "Engineer", "overlay_opacity": 3,
			"cta_buttons":  []any{map[string]any{"text": "Hire", "variant": "GHOST"}},
			"name":         "Jane", "bio": "Builds things",
			"social_links": map[string]any{"linkedin": "linkedin.com/in/jane", "email": " jane@example.com ", "youtube": "youtube.com/jane"},
			"skills":       "Go, Go, Rust",
			"experiences":  []any{map[string]any{"position": "SRE", "start_date": "2020", "responsibilities": []any{"on-call", "infra"}}},
			"projects": []any{
				map[string]any{"id": "4", "title": "CLI", "description": "A long description", "tags": "go,cli", "github": "gh"},
			},
			"code_snippets":   []any{map[string]any{"code": "fmt.Println()"}},
			"services":        []any{map[string]any{"description": "Consulting"}},
			"counters":        []any{map[string]any{"value": "12", "suffix": "+"}},
			"testimonials":    []any{map[string]any{"quote": "Great", "rating": 0}, map[string]any{"content": "Fine", "rating": 7}},
			"posts":           []any{map[string]any{"id": 2, "title": "Post", "content": "# md", "image": "i.png"}},
			"posts_per_row":   2,
			"fields":          []any{"Phone", "email"},
			"contact_info":    map[string]any{"email": "me@x.io", "github": "github.com/me", "phone": " 555 "},
			"links":           []any{map[string]any{"text": "Home"}},
			"columns":         []any{map[string]any{"title": "More", "links": []any{}}},
			"email":           "me@x.io",
			"linkedin":        "linkedin.com/in/me",
			"social":          map[string]any{"github": "github.com/me"},
			"copyright_text":  "(c) me",
			"filter_categories": []any{" web ", "", 3},
		},
	}
	for name, raw := range malformedInputs {
		inputs[name] = raw
	}

	for _, typ := range n.Types() {
		for name, raw := range inputs {
			t.Run(string(typ)+"/"+name, func(t *testing.T) {
				once := mustNormalize(t, n, typ, raw)
				twice := mustNormalize(t, n, typ, once)
				if diff := cmp.Diff(once, twice); diff != "" {
					t.Errorf("normalize is not idempotent (-once +twice):\n%s", diff)
				}
			})
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	n := newTestNormalizer()
	raw := map[string]any{
		"skills":       []any{" Go ", "Go"},
		"social_links": map[string]any{"github": "github.com/me"},
	}

	_, err := n.Normalize(SkillsCloud, raw)
	require.NoError(t, err)
	_, err = n.Normalize(AboutMeCard, raw)
	require.NoError(t, err)

	assert.Equal(t, []any{" Go ", "Go"}, raw["skills"])
	assert.Equal(t, map[string]any{"github": "github.com/me"}, raw["social_links"])
}

func TestUnencodableValueLosesOnlyItself(t *testing.T) {
	var buf bytes.Buffer
	n := NewNormalizer(DefaultSchema(), logger.New(&logger.Config{Level: logger.WarnLevel, Output: &buf}))

	raw := map[string]any{
		"skills": []any{"Go", "Rust"},
		"meta":   map[any]any{2024: "launched"},
		"hook":   func() {},
	}

	content := mustNormalize(t, n, SkillsCloud, raw)

	assert.Equal(t, []any{"Go", "Rust"}, content["skills"])
	assert.Equal(t, "cloud", content["display_mode"])
	assert.Contains(t, buf.String(), "dropped unencodable values")
}

func TestUnrecognizedTypePassesThrough(t *testing.T) {
	n := newTestNormalizer()
	raw := map[string]any{"anything": []any{1, 2}, "nested": map[string]any{"k": "v"}}

	content := mustNormalize(t, n, Type("video_reel"), raw)
	assert.Equal(t, raw, content)

	content["nested"].(map[string]any)["k"] = "changed"
	assert.Equal(t, "v", raw["nested"].(map[string]any)["k"])

	content = mustNormalize(t, n, Type("video_reel"), nil)
	assert.Nil(t, content)
}

func TestRegisterCustomRule(t *testing.T) {
	n := newTestNormalizer()
	custom := Type("quote_block")
	assert.False(t, n.Known(custom))

	n.Register(custom, normalizeAbout)
	assert.True(t, n.Known(custom))

	content := mustNormalize(t, n, custom, map[string]any{"bio": "hi", "extra": 1})
	assert.Equal(t, map[string]any{"bio": "hi"}, content)
}

func TestNormalizerUsesInjectedSchema(t *testing.T) {
	schema, err := DefaultSchema().WithOverrides(Schema{
		DisplayModes:       []string{"cloud", "bars", "grid"},
		DefaultDisplayMode: "grid",
	})
	require.NoError(t, err)

	n := NewNormalizer(schema, nil)
	content := mustNormalize(t, n, SkillsCloud, map[string]any{"display_mode": "unknown"})
	assert.Equal(t, "grid", content["display_mode"])

	content = mustNormalize(t, newTestNormalizer(), SkillsCloud, map[string]any{"display_mode": "grid"})
	assert.Equal(t, "cloud", content["display_mode"])
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name      string
		overrides Schema
		wantError bool
	}{
		{"no overrides", Schema{}, false},
		{"default variant outside table", Schema{DefaultCTAVariant: "loud"}, true},
		{"fallback field not allowed", Schema{ContactFields: []string{"email"}}, true},
		{"posts range inverted", Schema{PostsPerRowMin: 5}, true},
		{"default posts outside range", Schema{DefaultPostsPerRow: 9}, true},
		{"rating range inverted", Schema{RatingMin: 6}, true},
		{"narrower contact fields", Schema{ContactFields: []string{"name", "email"}, ContactFallback: []string{"email"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultSchema().WithOverrides(tt.overrides)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchemaCopiesAreIndependent(t *testing.T) {
	n := newTestNormalizer()
	schema := n.Schema()
	schema.ContactFallback[0] = "budget"

	assert.Equal(t, "name", n.Schema().ContactFallback[0])
}
