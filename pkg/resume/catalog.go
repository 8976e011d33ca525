package resume

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldType tells an editor how to present a field's value.
type FieldType string

const (
	TextField  FieldType = "text"
	ArrayField FieldType = "array"
)

// Category groups catalog fields.
type Category string

const (
	CategoryPersonal       Category = "personal"
	CategoryContact        Category = "contact"
	CategorySkills         Category = "skills"
	CategoryExperience     Category = "experience"
	CategoryEducation      Category = "education"
	CategoryCertifications Category = "certifications"
)

// Field is one importable resume attribute with a preview value.
type Field struct {
	Name  string    `json:"name"`
	Value any       `json:"value"`
	Type  FieldType `json:"type"`
}

// Catalog lists, per category, the resume attributes that carry data.
type Catalog struct {
	Personal       []Field `json:"personal"`
	Contact        []Field `json:"contact"`
	Skills         []Field `json:"skills"`
	Experience     []Field `json:"experience"`
	Education      []Field `json:"education"`
	Certifications []Field `json:"certifications"`
}

// Group is a category with its display label and fields.
type Group struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Fields   []Field  `json:"fields"`
}

// ListAvailableFields reports every present, non-empty attribute of rec.
// Missing attributes contribute nothing.
func ListAvailableFields(rec *Record) (catalog Catalog) {
	catalog = Catalog{
		Personal:       make([]Field, 0),
		Contact:        make([]Field, 0),
		Skills:         make([]Field, 0),
		Experience:     make([]Field, 0),
		Education:      make([]Field, 0),
		Certifications: make([]Field, 0),
	}
	if rec == nil {
		return catalog
	}

	catalog.Personal = appendText(catalog.Personal, "name", rec.Name)
	catalog.Personal = appendText(catalog.Personal, "title", rec.Title)
	catalog.Personal = appendText(catalog.Personal, "summary", rec.Summary)

	if len(rec.Experience) > 0 {
		catalog.Experience = append(catalog.Experience, Field{Name: "experience", Value: rec.Experience, Type: ArrayField})
	}
	if len(rec.Education) > 0 {
		catalog.Education = append(catalog.Education, Field{Name: "education", Value: rec.Education, Type: ArrayField})
	}
	if len(rec.Skills) > 0 {
		catalog.Skills = append(catalog.Skills, Field{Name: "skills", Value: rec.Skills, Type: ArrayField})
	}

	catalog.Contact = appendText(catalog.Contact, "email", rec.Email)
	catalog.Contact = appendText(catalog.Contact, "phone", rec.Phone)
	catalog.Contact = appendText(catalog.Contact, "location", rec.PreferredLocation())
	catalog.Contact = appendText(catalog.Contact, "linkedin", rec.LinkedInLink())
	catalog.Contact = appendText(catalog.Contact, "github", rec.GitHubLink())
	catalog.Contact = appendText(catalog.Contact, "website", rec.WebsiteLink())

	if len(rec.Certifications) > 0 {
		catalog.Certifications = append(catalog.Certifications, Field{Name: "certifications", Value: rec.Certifications, Type: ArrayField})
	}

	return catalog
}

// Groups returns the catalog in presentation order with display labels.
func (c Catalog) Groups() (groups []Group) {
	titler := cases.Title(language.English)
	ordered := []struct {
		category Category
		fields   []Field
	}{
		{CategoryPersonal, c.Personal},
		{CategoryContact, c.Contact},
		{CategorySkills, c.Skills},
		{CategoryExperience, c.Experience},
		{CategoryEducation, c.Education},
		{CategoryCertifications, c.Certifications},
	}

	groups = make([]Group, 0, len(ordered))
	for _, o := range ordered {
		groups = append(groups, Group{
			Category: o.category,
			Label:    titler.String(string(o.category)),
			Fields:   o.fields,
		})
	}
	return groups
}

// Len counts the fields across all categories.
func (c Catalog) Len() (n int) {
	n = len(c.Personal) + len(c.Contact) + len(c.Skills) + len(c.Experience) + len(c.Education) + len(c.Certifications)
	return n
}

func appendText(fields []Field, name, value string) (out []Field) {
	out = fields
	if value == "" {
		return out
	}
	out = append(out, Field{Name: name, Value: value, Type: TextField})
	return out
}
