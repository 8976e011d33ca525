package resume

// Record is a parsed resume. It is independent of section content and is
// only read by this module, never written back.
type Record struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Address  string `json:"address,omitempty"`

	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`

	// Skills is the list form of the skills attribute; a comma-separated
	// string has already been split.
	Skills []string `json:"skills,omitempty"`

	LinkedIn     string `json:"linkedin,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	GitHub       string `json:"github,omitempty"`
	GitHubURL    string `json:"github_url,omitempty"`
	Website      string `json:"website,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
	Social       Social `json:"social"`
}

// Social holds links nested under a "social" object.
type Social struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Experience is one job entry.
type Experience struct {
	Title            string   `json:"title,omitempty"`
	Position         string   `json:"position,omitempty"`
	Company          string   `json:"company,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Location         string   `json:"location,omitempty"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	Field       string `json:"field,omitempty"`
}

// Certification is one certification entry.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	Expiry string `json:"expiry,omitempty"`
}

// LinkedInLink resolves the LinkedIn profile, top-level keys first.
func (r *Record) LinkedInLink() (link string) {
	link = firstNonEmpty(r.LinkedIn, r.LinkedInURL, r.Social.LinkedIn)
	return link
}

// GitHubLink resolves the GitHub profile, top-level keys first.
func (r *Record) GitHubLink() (link string) {
	link = firstNonEmpty(r.GitHub, r.GitHubURL, r.Social.GitHub)
	return link
}

// WebsiteLink resolves the personal site, top-level keys first.
func (r *Record) WebsiteLink() (link string) {
	link = firstNonEmpty(r.Website, r.PortfolioURL, r.Social.Website, r.Social.Portfolio)
	return link
}

// PreferredLocation is location, or address when location is missing.
func (r *Record) PreferredLocation() (location string) {
	location = firstNonEmpty(r.Location, r.Address)
	return location
}

// Headline is the role the person presents, falling back to the first job.
func (r *Record) Headline() (headline string) {
	headline = r.Title
	if headline == "" && len(r.Experience) > 0 {
		headline = firstNonEmpty(r.Experience[0].Title, r.Experience[0].Position)
	}
	return headline
}

func firstNonEmpty(values ...string) (value string) {
	for _, v := range values {
		if v != "" {
			value = v
			return value
		}
	}
	return value
}
