package section

// Type identifies a section kind. It selects both the normalization rule and
// the visual renderer.
type Type string

const (
	HeroBanner           Type = "hero_banner"
	AboutMeCard          Type = "about_me_card"
	SkillsCloud          Type = "skills_cloud"
	ExperienceTimeline   Type = "experience_timeline"
	ProjectGrid          Type = "project_grid"
	ServicesSection      Type = "services_section"
	AchievementsCounters Type = "achievements_counters"
	TestimonialsCarousel Type = "testimonials_carousel"
	BlogPreviewGrid      Type = "blog_preview_grid"
	ContactForm          Type = "contact_form"
	Footer               Type = "footer"

	// Legacy types still found in older portfolio documents.
	Header   Type = "header"
	About    Type = "about"
	Skills   Type = "skills"
	Projects Type = "projects"
	Blog     Type = "blog"
	Contact  Type = "contact"
)

// Section is one ordered, typed, visibility-flagged content block.
type Section struct {
	ID        int            `json:"id,omitempty" yaml:"id,omitempty" mapstructure:"id"`
	Type      Type           `json:"type" yaml:"type" mapstructure:"type"`
	Order     int            `json:"order" yaml:"order" mapstructure:"order"`
	IsVisible bool           `json:"is_visible" yaml:"is_visible" mapstructure:"is_visible"`
	Content   map[string]any `json:"content" yaml:"content" mapstructure:"content"`
}
