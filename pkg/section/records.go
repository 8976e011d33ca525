package section

import (
	"math"
	"strings"

	"github.com/nikogura/portfolio-render/pkg/coerce"
	"github.com/tidwall/gjson"
)

// projects keeps only entries that are complete records. A bare id refers to
// a project stored elsewhere; resolving it is the caller's job, so it is
// dropped here like any other malformed entry.
func (n *Normalizer) projects(t Type, raw gjson.Result) (projects []Project) {
	projects = make([]Project, 0)
	for i, entry := range coerce.Entries(raw) {
		if !entry.IsObject() {
			n.dropped(t, "projects", i, unresolvedReason(entry))
			continue
		}

		project, ok := n.project(entry)
		if !ok {
			n.dropped(t, "projects", i, "missing numeric id or title")
			continue
		}
		projects = append(projects, project)
	}
	return projects
}

func (n *Normalizer) project(entry gjson.Result) (project Project, ok bool) {
	id, hasID := recordID(entry.Get("id"))
	title := coerce.Text(entry.Get("title"))
	if !hasID || blank(title) {
		return project, ok
	}

	description := coerce.FirstText(entry, "description", "short_description")
	short := coerce.Text(entry.Get("short_description"))
	if short == "" && description != "" {
		short = coerce.Truncate(description, n.schema.ShortDescriptionLimit)
	}

	technologies := entry.Get("technologies")
	if unset(technologies) {
		technologies = entry.Get("tags")
	}

	project = Project{
		ID:               id,
		Title:            title,
		Description:      description,
		ShortDescription: short,
		Image:            coerce.Text(entry.Get("image")),
		GithubURL:        coerce.FirstText(entry, "github_url", "github"),
		LiveURL:          coerce.FirstText(entry, "live_url", "website", "live"),
		Technologies:     coerce.SkillListOf(technologies),
	}
	ok = true
	return project, ok
}

// posts applies the same complete-record policy as projects.
func (n *Normalizer) posts(t Type, raw gjson.Result) (posts []Post) {
	posts = make([]Post, 0)
	for i, entry := range coerce.Entries(raw) {
		if !entry.IsObject() {
			n.dropped(t, "posts", i, unresolvedReason(entry))
			continue
		}

		id, hasID := recordID(entry.Get("id"))
		title := coerce.Text(entry.Get("title"))
		if !hasID || blank(title) {
			n.dropped(t, "posts", i, "missing numeric id or title")
			continue
		}

		posts = append(posts, Post{
			ID:              id,
			Title:           title,
			Excerpt:         coerce.Text(entry.Get("excerpt")),
			ContentMarkdown: coerce.FirstText(entry, "content_markdown", "content"),
			FeaturedImage:   coerce.FirstText(entry, "featured_image", "image"),
			Published:       coerce.Bool(entry.Get("published"), false),
			PublishedDate:   coerce.FirstText(entry, "published_date", "created_at"),
		})
	}
	return posts
}

func (n *Normalizer) footerLinks(raw gjson.Result) (links []FooterLink) {
	links = make([]FooterLink, 0)
	for i, entry := range coerce.Entries(raw) {
		if !entry.IsObject() {
			n.dropped(Footer, "links", i, "not an object")
			continue
		}

		link := FooterLink{
			Text: coerce.Text(entry.Get("text")),
			URL:  coerce.TrimmedText(entry.Get("url")),
		}
		if blank(link.Text) {
			n.dropped(Footer, "links", i, "empty text")
			continue
		}
		if link.URL == "" {
			link.URL = n.schema.DefaultLinkURL
		}
		links = append(links, link)
	}
	return links
}

// contactInfo keeps only the valid, non-empty contact details.
func (n *Normalizer) contactInfo(raw gjson.Result) (info map[string]string) {
	info = make(map[string]string)

	if email, ok := coerce.ValidEmail(raw.Get("email")); ok {
		info["email"] = email
	}
	for _, key := range []string{"phone", "location"} {
		if v := coerce.TrimmedText(raw.Get(key)); v != "" {
			info[key] = v
		}
	}
	for _, network := range n.schema.ContactInfoLinks {
		if u, ok := coerce.CanonicalURL(raw.Get(network)); ok {
			info[network] = u
		}
	}

	return info
}

func (n *Normalizer) rating(raw gjson.Result) (rating float64) {
	v, ok := coerce.Number(raw)
	if !ok || v <= 0 {
		return rating
	}
	rating = clamp(v, n.schema.RatingMin, n.schema.RatingMax)
	return rating
}

// socialLinks canonicalizes each network URL and validates the email entry.
// Invalid or missing entries are left out.
func socialLinks(raw gjson.Result, networks []string) (links map[string]string) {
	links = make(map[string]string)
	for _, network := range networks {
		if u, ok := coerce.CanonicalURL(raw.Get(network)); ok {
			links[network] = u
		}
	}
	if email, ok := coerce.ValidEmail(raw.Get("email")); ok {
		links["email"] = email
	}
	return links
}

// recordID accepts a non-zero integral number or numeric string.
func recordID(raw gjson.Result) (id int64, ok bool) {
	v, isNumber := coerce.Number(raw)
	if !isNumber || v == 0 || v != math.Trunc(v) || math.Abs(v) > math.MaxInt64/2 {
		return id, ok
	}
	id = int64(v)
	ok = true
	return id, ok
}

func unresolvedReason(entry gjson.Result) (reason string) {
	reason = "not an object"
	if _, isID := recordID(entry); isID {
		reason = "bare id reference is not resolved"
	}
	return reason
}

// unset reports a missing, null, false, zero or blank source value.
func unset(r gjson.Result) (missing bool) {
	switch r.Type {
	case gjson.Null, gjson.False:
		missing = true
	case gjson.String:
		missing = blank(r.Str)
	case gjson.Number:
		missing = r.Num == 0
	}
	return missing
}

func clamp(v, lo, hi float64) (out float64) {
	out = math.Max(lo, math.Min(hi, v))
	return out
}

func blank(s string) (empty bool) {
	empty = strings.TrimSpace(s) == ""
	return empty
}
