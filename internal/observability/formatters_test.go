package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/templates"
	"github.com/jmallet/cv-builder/internal/types"
)

func TestPrintDocumentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := document.New()
	doc = document.WithPersonalInfo(doc, types.PersonalInfo{FirstName: "Ada", LastName: "Lovelace"})
	p.PrintDocumentSummary(doc)

	out := buf.String()
	assert.Contains(t, out, "CV DOCUMENT")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "simple")
}

func TestPrintDocumentSummaryNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocumentSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBreakPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := document.New()
	doc = document.WithSectionData(doc, types.SectionExperiences, types.ExperienceList{
		{ID: "e1"}, {ID: "e2"},
	})
	doc = document.WithItemPageBreak(doc, "e2", true)
	doc = document.WithSectionStartPage(doc, types.SectionExperiences, true)

	p.PrintBreakPlan(layout.Build(doc))

	out := buf.String()
	assert.Contains(t, out, "BREAK PLAN")
	assert.Contains(t, out, "before section experiences")
	assert.Contains(t, out, "before item 2 of experiences")
	assert.Contains(t, out, "2 forced break(s)")
}

func TestPrintBreakPlanNoBreaks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBreakPlan(layout.Build(document.New()))
	assert.Contains(t, buf.String(), "(no manual page breaks)")
}

func TestPrintRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := document.New()
	doc = document.WithSectionData(doc, types.SectionExperiences, types.ExperienceList{{ID: "e1", Position: "Dev"}})
	tpl, _ := templates.ByID("simple")
	p.PrintRenderSummary(tpl.Render(doc))

	out := buf.String()
	assert.Contains(t, out, "RENDERED TREE")
	assert.Contains(t, out, "Template: simple")
	assert.Contains(t, out, "section")
	assert.Contains(t, out, "item")
}
