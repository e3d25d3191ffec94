package model

// Template layout identifiers. The catalogue is fixed: three visual layouts
// over the same invoice fields.
const (
	TemplateModern       = 1
	TemplateProfessional = 2
	TemplateMinimal      = 3

	DefaultTemplateID = TemplateModern
)

// Template describes one of the fixed invoice layouts.
type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Templates returns the fixed layout catalogue.
func Templates() []Template {
	return []Template{
		{ID: TemplateModern, Name: "Modern Template", Description: "Clean and modern design with dark header"},
		{ID: TemplateProfessional, Name: "Professional Template", Description: "Professional layout with right-aligned header"},
		{ID: TemplateMinimal, Name: "Minimal Template", Description: "Minimalist design with bold typography"},
	}
}

// NormalizeTemplateID maps absent or unrecognized template IDs to the default
// layout.
func NormalizeTemplateID(id int) int {
	switch id {
	case TemplateModern, TemplateProfessional, TemplateMinimal:
		return id
	}
	return DefaultTemplateID
}
