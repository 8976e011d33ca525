package section

// The types below are the normalized shapes of each section type. Every field
// is always emitted; social link maps only ever hold valid entries.

type CTAButton struct {
	Text    string `json:"text"`
	URL     string `json:"url"`
	Variant string `json:"variant" jsonschema:"enum=primary,enum=secondary,enum=ghost"`
}

type HeroBannerContent struct {
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle"`
	BackgroundImage string      `json:"background_image"`
	BackgroundVideo string      `json:"background_video"`
	OverlayOpacity  float64     `json:"overlay_opacity" jsonschema:"minimum=0,maximum=1,default=0.5"`
	CTAButtons      []CTAButton `json:"cta_buttons"`
}

type AboutMeCardContent struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	Image       string            `json:"image"`
	SocialLinks map[string]string `json:"social_links"`
}

type SkillsCloudContent struct {
	Skills      []string `json:"skills"`
	DisplayMode string   `json:"display_mode" jsonschema:"enum=cloud,enum=bars,default=cloud"`
}

type TimelineEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type ExperienceTimelineContent struct {
	Experiences []TimelineEntry `json:"experiences"`
}

// Project is a fully resolved project record. Bare id references never
// become a Project.
type Project struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Image            string   `json:"image"`
	GithubURL        string   `json:"github_url"`
	LiveURL          string   `json:"live_url"`
	Technologies     []string `json:"technologies"`
}

type CodeSnippet struct {
	Language    string `json:"language" jsonschema:"default=text"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Filename    string `json:"filename"`
}

type ProjectGridContent struct {
	Projects         []Project     `json:"projects"`
	FilterCategories []string      `json:"filter_categories"`
	ShowFilters      bool          `json:"show_filters" jsonschema:"default=true"`
	CodeSnippets     []CodeSnippet `json:"code_snippets"`
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ServicesSectionContent struct {
	Services []Service `json:"services"`
}

type Counter struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Prefix string  `json:"prefix"`
	Suffix string  `json:"suffix"`
}

type AchievementsCountersContent struct {
	Counters []Counter `json:"counters"`
}

// Testimonial ratings are 0 when unrated, otherwise within the schema range.
type Testimonial struct {
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Company string  `json:"company"`
	Content string  `json:"content"`
	Image   string  `json:"image"`
	Rating  float64 `json:"rating" jsonschema:"minimum=0,maximum=5"`
}

type TestimonialsCarouselContent struct {
	Testimonials []Testimonial `json:"testimonials"`
}

type Post struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Excerpt         string `json:"excerpt"`
	ContentMarkdown string `json:"content_markdown"`
	FeaturedImage   string `json:"featured_image"`
	Published       bool   `json:"published"`
	PublishedDate   string `json:"published_date"`
}

type BlogPreviewGridContent struct {
	Posts       []Post `json:"posts"`
	PostsPerRow int    `json:"posts_per_row" jsonschema:"minimum=1,maximum=4,default=3"`
}

type ContactFormContent struct {
	Title            string            `json:"title" jsonschema:"default=Get In Touch"`
	Description      string            `json:"description"`
	Fields           []string          `json:"fields"`
	SubmitButtonText string            `json:"submit_button_text" jsonschema:"default=Send Message"`
	ContactInfo      map[string]string `json:"contact_info"`
}

type FooterLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type FooterColumn struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

type FooterContent struct {
	CopyrightText string            `json:"copyright_text"`
	Links         []FooterLink      `json:"links"`
	Columns       []FooterColumn    `json:"columns"`
	SocialLinks   map[string]string `json:"social_links"`
}

type HeaderContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type AboutContent struct {
	Bio string `json:"bio"`
}

type SkillsContent struct {
	Skills []string `json:"skills"`
}

type ProjectsContent struct {
	Projects []Project `json:"projects"`
}

type BlogContent struct {
	Posts []Post `json:"posts"`
}

type ContactContent struct {
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Location string            `json:"location"`
	Social   map[string]string `json:"social"`
}
