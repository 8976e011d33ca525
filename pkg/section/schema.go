package section

import (
	"slices"

	"dario.cat/mergo"
	"github.com/pkg/errors"
)

// Schema holds the enumeration tables and defaults the rules consult. A
// Normalizer keeps its own copy, so callers may inject a customised Schema
// without affecting other normalizers.
type Schema struct {
	CTAVariants       []string `json:"cta_variants,omitempty"`
	DefaultCTAVariant string   `json:"default_cta_variant,omitempty"`
	DefaultCTAText    string   `json:"default_cta_text,omitempty"`
	DefaultCTAURL     string   `json:"default_cta_url,omitempty"`

	DefaultOverlayOpacity float64 `json:"default_overlay_opacity,omitempty"`

	DisplayModes       []string `json:"display_modes,omitempty"`
	DefaultDisplayMode string   `json:"default_display_mode,omitempty"`

	ContactFields        []string `json:"contact_fields,omitempty"`
	ContactFallback      []string `json:"contact_fallback,omitempty"`
	DefaultContactTitle  string   `json:"default_contact_title,omitempty"`
	DefaultSubmitText    string   `json:"default_submit_text,omitempty"`
	ContactInfoLinks     []string `json:"contact_info_links,omitempty"`
	AboutSocialNetworks  []string `json:"about_social_networks,omitempty"`
	FooterSocialNetworks []string `json:"footer_social_networks,omitempty"`

	PostsPerRowMin     int `json:"posts_per_row_min,omitempty"`
	PostsPerRowMax     int `json:"posts_per_row_max,omitempty"`
	DefaultPostsPerRow int `json:"default_posts_per_row,omitempty"`

	RatingMin float64 `json:"rating_min,omitempty"`
	RatingMax float64 `json:"rating_max,omitempty"`

	ShortDescriptionLimit  int    `json:"short_description_limit,omitempty"`
	DefaultSnippetLanguage string `json:"default_snippet_language,omitempty"`
	DefaultLinkURL         string `json:"default_link_url,omitempty"`
}

// DefaultSchema returns the stock tables.
func DefaultSchema() (schema Schema) {
	schema = Schema{
		CTAVariants:       []string{"primary", "secondary", "ghost"},
		DefaultCTAVariant: "primary",
		DefaultCTAText:    "Get Started",
		DefaultCTAURL:     "#",

		DefaultOverlayOpacity: 0.5,

		DisplayModes:       []string{"cloud", "bars"},
		DefaultDisplayMode: "cloud",

		ContactFields:        []string{"name", "email", "phone", "subject", "message", "company", "budget"},
		ContactFallback:      []string{"name", "email", "message"},
		DefaultContactTitle:  "Get In Touch",
		DefaultSubmitText:    "Send Message",
		ContactInfoLinks:     []string{"linkedin", "github", "website"},
		AboutSocialNetworks:  []string{"linkedin", "github", "twitter", "website"},
		FooterSocialNetworks: []string{"linkedin", "github", "twitter", "website", "facebook", "instagram", "youtube"},

		PostsPerRowMin:     1,
		PostsPerRowMax:     4,
		DefaultPostsPerRow: 3,

		RatingMin: 1,
		RatingMax: 5,

		ShortDescriptionLimit:  200,
		DefaultSnippetLanguage: "text",
		DefaultLinkURL:         "#",
	}
	return schema
}

// WithOverrides returns a copy of s where every non-zero field of overrides
// replaces the corresponding table.
func (s Schema) WithOverrides(overrides Schema) (merged Schema, err error) {
	merged = s.Clone()
	err = mergo.Merge(&merged, overrides.Clone(), mergo.WithOverride)
	if err != nil {
		err = errors.Wrap(err, "failed to merge schema overrides")
		return merged, err
	}

	err = merged.Validate()
	if err != nil {
		err = errors.Wrap(err, "schema overrides are inconsistent")
		return merged, err
	}

	return merged, err
}

// Clone deep-copies the slice tables.
func (s Schema) Clone() (c Schema) {
	c = s
	c.CTAVariants = slices.Clone(s.CTAVariants)
	c.DisplayModes = slices.Clone(s.DisplayModes)
	c.ContactFields = slices.Clone(s.ContactFields)
	c.ContactFallback = slices.Clone(s.ContactFallback)
	c.ContactInfoLinks = slices.Clone(s.ContactInfoLinks)
	c.AboutSocialNetworks = slices.Clone(s.AboutSocialNetworks)
	c.FooterSocialNetworks = slices.Clone(s.FooterSocialNetworks)
	return c
}

// Validate checks that every default is a member of its own table and that
// numeric ranges are ordered.
func (s *Schema) Validate() (err error) {
	if !slices.Contains(s.CTAVariants, s.DefaultCTAVariant) {
		err = errors.Errorf("default cta variant %q is not one of %v", s.DefaultCTAVariant, s.CTAVariants)
		return err
	}

	if !slices.Contains(s.DisplayModes, s.DefaultDisplayMode) {
		err = errors.Errorf("default display mode %q is not one of %v", s.DefaultDisplayMode, s.DisplayModes)
		return err
	}

	if len(s.ContactFallback) == 0 {
		err = errors.New("contact fallback fields must not be empty")
		return err
	}

	for _, field := range s.ContactFallback {
		if !slices.Contains(s.ContactFields, field) {
			err = errors.Errorf("contact fallback field %q is not an allowed contact field", field)
			return err
		}
	}

	if s.PostsPerRowMin < 1 || s.PostsPerRowMin > s.PostsPerRowMax {
		err = errors.Errorf("posts per row range [%d,%d] is invalid", s.PostsPerRowMin, s.PostsPerRowMax)
		return err
	}

	if s.DefaultPostsPerRow < s.PostsPerRowMin || s.DefaultPostsPerRow > s.PostsPerRowMax {
		err = errors.Errorf("default posts per row %d is outside [%d,%d]", s.DefaultPostsPerRow, s.PostsPerRowMin, s.PostsPerRowMax)
		return err
	}

	if s.RatingMin <= 0 || s.RatingMin > s.RatingMax {
		err = errors.Errorf("rating range [%g,%g] is invalid", s.RatingMin, s.RatingMax)
		return err
	}

	if s.DefaultOverlayOpacity < 0 || s.DefaultOverlayOpacity > 1 {
		err = errors.Errorf("default overlay opacity %g is outside [0,1]", s.DefaultOverlayOpacity)
		return err
	}

	if s.ShortDescriptionLimit < 1 {
		err = errors.New("short description limit must be positive")
		return err
	}

	return err
}
