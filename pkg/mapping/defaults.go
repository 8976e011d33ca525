package mapping

import (
	"fmt"
	"maps"
	"strings"

	"github.com/nikogura/portfolio-render/pkg/coerce"
	"github.com/nikogura/portfolio-render/pkg/resume"
	"github.com/nikogura/portfolio-render/pkg/section"
)

const (
	shortDescriptionLimit = 200
	defaultProjectTitle   = "Project"
	defaultProjectSummary = "Project description"
)

// ExperienceProject is a project record derived from a job entry.
type ExperienceProject struct {
	section.Project
	Company string `json:"company"`
}

// Options tunes MapResumeToComponent.
type Options struct {
	// Selected deselects resume fields mapped to false. Absent keys select.
	Selected map[string]bool

	// MergeWithExisting lays the mapped keys over Existing instead of
	// returning them alone.
	MergeWithExisting bool
	Existing          map[string]any
}

// DefaultFieldMappings lists the mappings an editor offers for t. Only
// resume attributes that carry data produce a mapping; unknown types get none.
func DefaultFieldMappings(t section.Type, rec *resume.Record) (mappings []FieldMapping) {
	mappings = make([]FieldMapping, 0)
	if rec == nil {
		return mappings
	}

	add := func(resumeField, componentField string, value any, enabled bool) {
		mappings = append(mappings, FieldMapping{
			ResumeField:    resumeField,
			ComponentField: componentField,
			Value:          value,
			Enabled:        enabled,
		})
	}
	addText := func(resumeField, componentField, value string) {
		if value != "" {
			add(resumeField, componentField, value, true)
		}
	}

	switch t {
	case section.HeroBanner:
		addText("name", "title", rec.Name)
		headline := rec.Title
		if headline == "" {
			headline = rec.Summary
		}
		if headline == "" {
			headline = rec.Headline()
		}
		addText("title", "subtitle", headline)
		if rec.Summary != "" {
			add("summary", "subtitle", rec.Summary, false)
		}

	case section.AboutMeCard:
		addText("name", "name", rec.Name)
		addText("title", "title", rec.Title)
		addText("summary", "bio", rec.Summary)
		addText("email", "social_links.email", rec.Email)
		addText("linkedin", "social_links.linkedin", rec.LinkedInLink())
		addText("github", "social_links.github", rec.GitHubLink())
		addText("website", "social_links.website", rec.WebsiteLink())

	case section.SkillsCloud, section.Skills:
		if len(rec.Skills) > 0 {
			add("skills", "skills", append([]string(nil), rec.Skills...), true)
		}

	case section.ExperienceTimeline:
		if timeline := experienceTimeline(rec.Experience); len(timeline) > 0 {
			add("experience", "experiences", timeline, true)
		}

	case section.ProjectGrid:
		if projects := ConvertExperienceToProjects(rec.Experience, nil); len(projects) > 0 {
			add("experience", "projects", projects, true)
		}

	case section.ContactForm:
		if rec.Name != "" {
			add("name", "title", fmt.Sprintf("Contact %s", rec.Name), true)
		}
		addText("email", "contact_info.email", rec.Email)
		addText("phone", "contact_info.phone", rec.Phone)
		addText("location", "contact_info.location", rec.PreferredLocation())
		addText("linkedin", "contact_info.linkedin", rec.LinkedInLink())
		addText("github", "contact_info.github", rec.GitHubLink())
		addText("website", "contact_info.website", rec.WebsiteLink())

	case section.Header:
		addText("name", "title", rec.Name)
		addText("title", "subtitle", rec.Headline())

	case section.About:
		addText("summary", "bio", rec.Summary)

	case section.Contact:
		addText("email", "email", rec.Email)
		addText("phone", "phone", rec.Phone)
		addText("location", "location", rec.PreferredLocation())
		addText("linkedin", "social.linkedin", rec.LinkedInLink())
		addText("github", "social.github", rec.GitHubLink())
		addText("website", "social.website", rec.WebsiteLink())
	}

	return mappings
}

// Preview derives the content patch for t from the default mappings, leaving
// out every resume field deselected in selected.
func (m *Mapper) Preview(t section.Type, rec *resume.Record, selected map[string]bool) (preview map[string]any) {
	chosen := make([]FieldMapping, 0)
	for _, mapping := range DefaultFieldMappings(t, rec) {
		if include, found := selected[mapping.ResumeField]; found && !include {
			continue
		}
		chosen = append(chosen, mapping)
	}

	preview = m.Apply(map[string]any{}, rec, chosen)
	return preview
}

// MapResumeToComponent returns the preview for t, optionally laid over the
// existing content. Top-level keys of the preview win; opts.Existing is not
// modified.
func (m *Mapper) MapResumeToComponent(t section.Type, rec *resume.Record, opts Options) (content map[string]any) {
	content = make(map[string]any, len(opts.Existing))
	if rec == nil {
		maps.Copy(content, opts.Existing)
		return content
	}

	preview := m.Preview(t, rec, opts.Selected)
	if !opts.MergeWithExisting {
		content = preview
		return content
	}

	maps.Copy(content, opts.Existing)
	maps.Copy(content, preview)
	return content
}

// ConvertExperienceToProjects turns job entries into project records. With no
// indices every entry converts; out of range indices are ignored. Ids run
// 1..n in output order.
func ConvertExperienceToProjects(experience []resume.Experience, indices []int) (projects []ExperienceProject) {
	projects = make([]ExperienceProject, 0)

	if len(indices) == 0 {
		indices = make([]int, len(experience))
		for i := range experience {
			indices[i] = i
		}
	}

	for _, idx := range indices {
		if idx < 0 || idx >= len(experience) {
			continue
		}
		exp := experience[idx]

		title := firstOf(exp.Title, exp.Position, defaultProjectTitle)
		if exp.Company != "" {
			title = fmt.Sprintf("%s at %s", title, exp.Company)
		}
		description := firstOf(exp.Description, strings.Join(exp.Responsibilities, ". "), defaultProjectSummary)

		projects = append(projects, ExperienceProject{
			Project: section.Project{
				ID:               int64(len(projects) + 1),
				Title:            title,
				Description:      description,
				ShortDescription: coerce.Truncate(description, shortDescriptionLimit),
				Technologies:     make([]string, 0),
			},
			Company: exp.Company,
		})
	}

	return projects
}

func experienceTimeline(experience []resume.Experience) (timeline []section.TimelineEntry) {
	timeline = make([]section.TimelineEntry, 0, len(experience))
	for _, exp := range experience {
		entry := section.TimelineEntry{
			Title:       firstOf(exp.Title, exp.Position),
			Company:     exp.Company,
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
			Description: firstOf(exp.Description, strings.Join(exp.Responsibilities, "\n")),
			Location:    exp.Location,
		}
		if entry.Title == "" && entry.Company == "" && entry.Description == "" && entry.StartDate == "" && entry.EndDate == "" {
			continue
		}
		timeline = append(timeline, entry)
	}
	return timeline
}

func firstOf(values ...string) (value string) {
	for _, v := range values {
		if v != "" {
			value = v
			return value
		}
	}
	return value
}
