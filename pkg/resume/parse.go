package resume

import (
	"github.com/nikogura/portfolio-render/pkg/coerce"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// envelopeKey wraps the structured record in resume-parser output.
const envelopeKey = "structured_data"

// Parse reads a resume record from JSON. Shape problems inside the record are
// tolerated; only input that is not a JSON object is an error.
func Parse(data []byte) (record Record, err error) {
	if !gjson.ValidBytes(data) {
		err = errors.New("resume is not valid JSON")
		return record, err
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		err = errors.New("resume must be a JSON object")
		return record, err
	}

	record = fromResult(root)
	return record, err
}

// FromMap reads a resume record from an already decoded document.
func FromMap(doc map[string]any) (record Record) {
	record = fromResult(coerce.Of(doc))
	return record
}

func fromResult(root gjson.Result) (record Record) {
	if envelope := root.Get(envelopeKey); envelope.IsObject() {
		root = envelope
	}

	social := root.Get("social")

	record = Record{
		Name:     coerce.TrimmedText(root.Get("name")),
		Title:    coerce.TrimmedText(root.Get("title")),
		Summary:  coerce.TrimmedText(root.Get("summary")),
		Email:    coerce.TrimmedText(root.Get("email")),
		Phone:    coerce.TrimmedText(root.Get("phone")),
		Location: coerce.TrimmedText(root.Get("location")),
		Address:  coerce.TrimmedText(root.Get("address")),

		Experience:     experience(root.Get("experience")),
		Education:      education(root.Get("education")),
		Certifications: certifications(root.Get("certifications")),
		Skills:         coerce.SkillListOf(root.Get("skills")),

		LinkedIn:     coerce.TrimmedText(root.Get("linkedin")),
		LinkedInURL:  coerce.TrimmedText(root.Get("linkedin_url")),
		GitHub:       coerce.TrimmedText(root.Get("github")),
		GitHubURL:    coerce.TrimmedText(root.Get("github_url")),
		Website:      coerce.TrimmedText(root.Get("website")),
		PortfolioURL: coerce.TrimmedText(root.Get("portfolio_url")),
		Social: Social{
			LinkedIn:  coerce.TrimmedText(social.Get("linkedin")),
			GitHub:    coerce.TrimmedText(social.Get("github")),
			Website:   coerce.TrimmedText(social.Get("website")),
			Portfolio: coerce.TrimmedText(social.Get("portfolio")),
		},
	}
	return record
}

func experience(raw gjson.Result) (entries []Experience) {
	entries = make([]Experience, 0)
	for _, e := range coerce.Objects(raw) {
		entries = append(entries, Experience{
			Title:            coerce.TrimmedText(e.Get("title")),
			Position:         coerce.TrimmedText(e.Get("position")),
			Company:          coerce.TrimmedText(e.Get("company")),
			StartDate:        coerce.TrimmedText(e.Get("start_date")),
			EndDate:          coerce.TrimmedText(e.Get("end_date")),
			Description:      coerce.TrimmedText(e.Get("description")),
			Responsibilities: coerce.Strings(e.Get("responsibilities")),
			Location:         coerce.TrimmedText(e.Get("location")),
		})
	}
	return entries
}

func education(raw gjson.Result) (entries []Education) {
	entries = make([]Education, 0)
	for _, e := range coerce.Objects(raw) {
		entries = append(entries, Education{
			Degree:      coerce.TrimmedText(e.Get("degree")),
			Institution: coerce.TrimmedText(e.Get("institution")),
			Year:        coerce.TrimmedText(e.Get("year")),
			Field:       coerce.TrimmedText(e.Get("field")),
		})
	}
	return entries
}

func certifications(raw gjson.Result) (entries []Certification) {
	entries = make([]Certification, 0)
	for _, e := range coerce.Objects(raw) {
		entries = append(entries, Certification{
			Name:   coerce.TrimmedText(e.Get("name")),
			Issuer: coerce.TrimmedText(e.Get("issuer")),
			Date:   coerce.TrimmedText(e.Get("date")),
			Expiry: coerce.TrimmedText(e.Get("expiry")),
		})
	}
	return entries
}
