package section

import (
	"math"
	"slices"
	"strings"

	"github.com/nikogura/portfolio-render/pkg/coerce"
	"github.com/tidwall/gjson"
)

func defaultRules() (rules map[Type]Rule) {
	rules = map[Type]Rule{
		HeroBanner:           normalizeHeroBanner,
		AboutMeCard:          normalizeAboutMeCard,
		SkillsCloud:          normalizeSkillsCloud,
		ExperienceTimeline:   normalizeExperienceTimeline,
		ProjectGrid:          normalizeProjectGrid,
		ServicesSection:      normalizeServicesSection,
		AchievementsCounters: normalizeAchievementsCounters,
		TestimonialsCarousel: normalizeTestimonialsCarousel,
		BlogPreviewGrid:      normalizeBlogPreviewGrid,
		ContactForm:          normalizeContactForm,
		Footer:               normalizeFooter,

		Header:   normalizeHeader,
		About:    normalizeAbout,
		Skills:   normalizeSkills,
		Projects: normalizeProjects,
		Blog:     normalizeBlog,
		Contact:  normalizeContact,
	}
	return rules
}

func normalizeHeroBanner(n *Normalizer, raw gjson.Result) (content any) {
	s := n.schema

	opacity := s.DefaultOverlayOpacity
	if v, ok := coerce.Number(raw.Get("overlay_opacity")); ok {
		opacity = clamp(v, 0, 1)
	}

	buttons := make([]CTAButton, 0)
	for i, entry := range coerce.Entries(raw.Get("cta_buttons")) {
		if !entry.IsObject() {
			n.dropped(HeroBanner, "cta_buttons", i, "not an object")
			continue
		}

		button := CTAButton{
			Text:    coerce.TrimmedText(entry.Get("text")),
			URL:     coerce.TrimmedText(entry.Get("url")),
			Variant: strings.ToLower(coerce.TrimmedText(entry.Get("variant"))),
		}
		if button.Text == "" {
			button.Text = s.DefaultCTAText
		}
		if button.URL == "" {
			button.URL = s.DefaultCTAURL
		}
		if !slices.Contains(s.CTAVariants, button.Variant) {
			button.Variant = s.DefaultCTAVariant
		}
		buttons = append(buttons, button)
	}

	content = HeroBannerContent{
		Title:           coerce.Text(raw.Get("title")),
		Subtitle:        coerce.Text(raw.Get("subtitle")),
		BackgroundImage: coerce.Text(raw.Get("background_image")),
		BackgroundVideo: coerce.Text(raw.Get("background_video")),
		OverlayOpacity:  opacity,
		CTAButtons:      buttons,
	}
	return content
}

func normalizeAboutMeCard(n *Normalizer, raw gjson.Result) (content any) {
	content = AboutMeCardContent{
		Name:        coerce.Text(raw.Get("name")),
		Title:       coerce.Text(raw.Get("title")),
		Bio:         coerce.Text(raw.Get("bio")),
		Image:       coerce.Text(raw.Get("image")),
		SocialLinks: socialLinks(raw.Get("social_links"), n.schema.AboutSocialNetworks),
	}
	return content
}

func normalizeSkillsCloud(n *Normalizer, raw gjson.Result) (content any) {
	mode := strings.ToLower(coerce.TrimmedText(raw.Get("display_mode")))
	if !slices.Contains(n.schema.DisplayModes, mode) {
		mode = n.schema.DefaultDisplayMode
	}

	content = SkillsCloudContent{
		Skills:      coerce.SkillListOf(raw.Get("skills")),
		DisplayMode: mode,
	}
	return content
}

func normalizeExperienceTimeline(n *Normalizer, raw gjson.Result) (content any) {
	entries := make([]TimelineEntry, 0)
	for i, entry := range coerce.Entries(raw.Get("experiences")) {
		if !entry.IsObject() {
			n.dropped(ExperienceTimeline, "experiences", i, "not an object")
			continue
		}

		description := coerce.Text(entry.Get("description"))
		if description == "" {
			description = strings.Join(coerce.Strings(entry.Get("responsibilities")), "\n")
		}

		item := TimelineEntry{
			Title:       coerce.FirstText(entry, "title", "position"),
			Company:     coerce.Text(entry.Get("company")),
			StartDate:   coerce.FirstText(entry, "startDate", "start_date"),
			EndDate:     coerce.FirstText(entry, "endDate", "end_date"),
			Description: description,
			Location:    coerce.Text(entry.Get("location")),
		}

		if blank(item.Title) && blank(item.Company) && blank(item.Description) {
			n.dropped(ExperienceTimeline, "experiences", i, "no title, company or description")
			continue
		}
		entries = append(entries, item)
	}

	content = ExperienceTimelineContent{Experiences: entries}
	return content
}

func normalizeProjectGrid(n *Normalizer, raw gjson.Result) (content any) {
	snippets := make([]CodeSnippet, 0)
	for i, entry := range coerce.Entries(raw.Get("code_snippets")) {
		if !entry.IsObject() {
			n.dropped(ProjectGrid, "code_snippets", i, "not an object")
			continue
		}

		snippet := CodeSnippet{
			Language:    coerce.TrimmedText(entry.Get("language")),
			Code:        coerce.Text(entry.Get("code")),
			Description: coerce.Text(entry.Get("description")),
			Filename:    coerce.Text(entry.Get("filename")),
		}
		if blank(snippet.Code) {
			n.dropped(ProjectGrid, "code_snippets", i, "empty code")
			continue
		}
		if snippet.Language == "" {
			snippet.Language = n.schema.DefaultSnippetLanguage
		}
		snippets = append(snippets, snippet)
	}

	content = ProjectGridContent{
		Projects:         n.projects(ProjectGrid, raw.Get("projects")),
		FilterCategories: coerce.Strings(raw.Get("filter_categories")),
		ShowFilters:      coerce.Bool(raw.Get("show_filters"), true),
		CodeSnippets:     snippets,
	}
	return content
}

func normalizeServicesSection(n *Normalizer, raw gjson.Result) (content any) {
	services := make([]Service, 0)
	for i, entry := range coerce.Entries(raw.Get("services")) {
		if !entry.IsObject() {
			n.dropped(ServicesSection, "services", i, "not an object")
			continue
		}

		service := Service{
			Title:       coerce.Text(entry.Get("title")),
			Description: coerce.Text(entry.Get("description")),
			Icon:        coerce.Text(entry.Get("icon")),
		}
		if blank(service.Title) && blank(service.Description) {
			n.dropped(ServicesSection, "services", i, "no title or description")
			continue
		}
		services = append(services, service)
	}

	content = ServicesSectionContent{Services: services}
	return content
}

func normalizeAchievementsCounters(n *Normalizer, raw gjson.Result) (content any) {
	counters := make([]Counter, 0)
	for i, entry := range coerce.Entries(raw.Get("counters")) {
		if !entry.IsObject() {
			n.dropped(AchievementsCounters, "counters", i, "not an object")
			continue
		}

		value, _ := coerce.Number(entry.Get("value"))
		counter := Counter{
			Label:  coerce.Text(entry.Get("label")),
			Value:  value,
			Prefix: coerce.Text(entry.Get("prefix")),
			Suffix: coerce.Text(entry.Get("suffix")),
		}
		if blank(counter.Label) && counter.Value == 0 {
			n.dropped(AchievementsCounters, "counters", i, "no label and zero value")
			continue
		}
		counters = append(counters, counter)
	}

	content = AchievementsCountersContent{Counters: counters}
	return content
}

func normalizeTestimonialsCarousel(n *Normalizer, raw gjson.Result) (content any) {
	testimonials := make([]Testimonial, 0)
	for i, entry := range coerce.Entries(raw.Get("testimonials")) {
		if !entry.IsObject() {
			n.dropped(TestimonialsCarousel, "testimonials", i, "not an object")
			continue
		}

		testimonial := Testimonial{
			Name:    coerce.Text(entry.Get("name")),
			Role:    coerce.Text(entry.Get("role")),
			Company: coerce.Text(entry.Get("company")),
			Content: coerce.FirstText(entry, "content", "quote"),
			Image:   coerce.Text(entry.Get("image")),
			Rating:  n.rating(entry.Get("rating")),
		}
		if blank(testimonial.Content) {
			n.dropped(TestimonialsCarousel, "testimonials", i, "empty content")
			continue
		}
		testimonials = append(testimonials, testimonial)
	}

	content = TestimonialsCarouselContent{Testimonials: testimonials}
	return content
}

func normalizeBlogPreviewGrid(n *Normalizer, raw gjson.Result) (content any) {
	s := n.schema

	perRow := s.DefaultPostsPerRow
	if v, ok := coerce.Number(raw.Get("posts_per_row")); ok && v == math.Trunc(v) {
		if v >= float64(s.PostsPerRowMin) && v <= float64(s.PostsPerRowMax) {
			perRow = int(v)
		}
	}

	content = BlogPreviewGridContent{
		Posts:       n.posts(BlogPreviewGrid, raw.Get("posts")),
		PostsPerRow: perRow,
	}
	return content
}

func normalizeContactForm(n *Normalizer, raw gjson.Result) (content any) {
	s := n.schema

	fields := make([]string, 0)
	for _, entry := range coerce.Entries(raw.Get("fields")) {
		if entry.Type != gjson.String {
			continue
		}
		field := strings.ToLower(strings.TrimSpace(entry.Str))
		if !slices.Contains(s.ContactFields, field) || slices.Contains(fields, field) {
			continue
		}
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		fields = slices.Clone(s.ContactFallback)
	}

	title := coerce.Text(raw.Get("title"))
	if blank(title) {
		title = s.DefaultContactTitle
	}

	submit := coerce.Text(raw.Get("submit_button_text"))
	if blank(submit) {
		submit = s.DefaultSubmitText
	}

	content = ContactFormContent{
		Title:            title,
		Description:      coerce.Text(raw.Get("description")),
		Fields:           fields,
		SubmitButtonText: submit,
		ContactInfo:      n.contactInfo(raw.Get("contact_info")),
	}
	return content
}

func normalizeFooter(n *Normalizer, raw gjson.Result) (content any) {
	columns := make([]FooterColumn, 0)
	for i, entry := range coerce.Entries(raw.Get("columns")) {
		if !entry.IsObject() {
			n.dropped(Footer, "columns", i, "not an object")
			continue
		}

		column := FooterColumn{
			Title: coerce.Text(entry.Get("title")),
			Links: n.footerLinks(entry.Get("links")),
		}
		if blank(column.Title) && len(column.Links) == 0 {
			n.dropped(Footer, "columns", i, "no title and no links")
			continue
		}
		columns = append(columns, column)
	}

	content = FooterContent{
		CopyrightText: coerce.Text(raw.Get("copyright_text")),
		Links:         n.footerLinks(raw.Get("links")),
		Columns:       columns,
		SocialLinks:   socialLinks(raw.Get("social_links"), n.schema.FooterSocialNetworks),
	}
	return content
}

func normalizeHeader(_ *Normalizer, raw gjson.Result) (content any) {
	content = HeaderContent{
		Title:    coerce.Text(raw.Get("title")),
		Subtitle: coerce.Text(raw.Get("subtitle")),
	}
	return content
}

func normalizeAbout(_ *Normalizer, raw gjson.Result) (content any) {
	content = AboutContent{Bio: coerce.Text(raw.Get("bio"))}
	return content
}

func normalizeSkills(_ *Normalizer, raw gjson.Result) (content any) {
	content = SkillsContent{Skills: coerce.SkillListOf(raw.Get("skills"))}
	return content
}

func normalizeProjects(n *Normalizer, raw gjson.Result) (content any) {
	content = ProjectsContent{Projects: n.projects(Projects, raw.Get("projects"))}
	return content
}

func normalizeBlog(n *Normalizer, raw gjson.Result) (content any) {
	content = BlogContent{Posts: n.posts(Blog, raw.Get("posts"))}
	return content
}

// normalizeContact reads social links from the top level first and falls
// back to the nested social object.
func normalizeContact(n *Normalizer, raw gjson.Result) (content any) {
	email, _ := coerce.ValidEmail(raw.Get("email"))

	social := make(map[string]string)
	for _, network := range n.schema.ContactInfoLinks {
		value := raw.Get(network)
		if blank(coerce.Text(value)) {
			value = raw.Get("social").Get(network)
		}
		if u, ok := coerce.CanonicalURL(value); ok {
			social[network] = u
		}
	}

	content = ContactContent{
		Email:    email,
		Phone:    coerce.TrimmedText(raw.Get("phone")),
		Location: coerce.TrimmedText(raw.Get("location")),
		Social:   social,
	}
	return content
}
