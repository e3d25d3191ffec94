// Package render turns an invoice (draft or persisted) into one of three
// fixed HTML layouts. Rendering is a pure function of its input: same view
// and template ID, same output.
package render

import (
	"bytes"
	"html/template"

	"invoicer/internal/model"
	"invoicer/pkg/money"

	"github.com/shopspring/decimal"
)

// Renderer produces the HTML document for a view and layout.
type Renderer interface {
	RenderHTML(view DocumentView, templateID int) (string, error)
}

// HTMLRenderer holds the parsed layout templates.
type HTMLRenderer struct {
	layouts map[int]*template.Template
}

// NewHTMLRenderer parses the fixed layout catalogue.
func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"formatMoney": formatMoney,
		"formatQty":   formatQty,
	}
	parse := func(name, body string) *template.Template {
		return template.Must(template.New(name).Funcs(funcs).Parse(body))
	}
	return &HTMLRenderer{
		layouts: map[int]*template.Template{
			model.TemplateModern:       parse("modern", modernLayout),
			model.TemplateProfessional: parse("professional", professionalLayout),
			model.TemplateMinimal:      parse("minimal", minimalLayout),
		},
	}
}

// RenderHTML executes the selected layout. Unknown template IDs fall back to
// the default layout. The view is taken by value and never mutated.
func (r *HTMLRenderer) RenderHTML(view DocumentView, templateID int) (string, error) {
	tpl := r.layouts[model.NormalizeTemplateID(templateID)]

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(amount decimal.Decimal, currency model.Currency) string {
	return money.FormatWithSymbol(amount, currency.String())
}

func formatQty(d decimal.Decimal) string {
	return d.String()
}
