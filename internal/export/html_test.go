package export

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/templates"
	"github.com/jmallet/cv-builder/internal/types"
)

func renderSample(t *testing.T) *goquery.Document {
	t.Helper()
	doc := document.New()
	doc = document.WithPersonalInfo(doc, types.PersonalInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	doc = document.WithSectionData(doc, types.SectionExperiences, types.ExperienceList{
		{ID: "exp-1", Position: "Engineer", Company: "Analytical Engines"},
		{ID: "exp-2", Position: "Consultant", Company: "Babbage & Co"},
	})
	doc = document.WithItemPageBreak(doc, "exp-2", true)
	doc = document.WithSectionStartPage(doc, types.SectionExperiences, true)

	tpl, ok := templates.ByID("simple")
	require.True(t, ok)
	page, err := HTML(tpl.Render(doc))
	require.NoError(t, err)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return parsed
}

func TestHTMLCarriesBreakClasses(t *testing.T) {
	parsed := renderSample(t)

	section := parsed.Find(`div[data-section="experiences"].box-section`)
	require.Equal(t, 1, section.Length())
	assert.True(t, section.HasClass("break-before"))

	first := parsed.Find(`div[data-item-id="exp-1"]`)
	require.Equal(t, 1, first.Length())
	assert.False(t, first.HasClass("break-before"))
	assert.True(t, first.HasClass("no-split"))

	second := parsed.Find(`div[data-item-id="exp-2"]`)
	require.Equal(t, 1, second.Length())
	assert.True(t, second.HasClass("break-before"))
	assert.True(t, second.HasClass("no-split"))
}

func TestHTMLStylesheetMapsHintsToPrintCSS(t *testing.T) {
	doc := document.New()
	tpl, ok := templates.ByID("simple")
	require.True(t, ok)
	page, err := HTML(tpl.Render(doc))
	require.NoError(t, err)

	assert.Contains(t, page, ".break-before { break-before: page;")
	assert.Contains(t, page, ".no-split { break-inside: avoid;")
	assert.Contains(t, page, "@page { size: A4;")
}

func TestHTMLEscapesUserText(t *testing.T) {
	doc := document.New()
	doc = document.WithPersonalInfo(doc, types.PersonalInfo{FirstName: "<script>alert(1)</script>", LastName: "X"})
	tpl, ok := templates.ByID("simple")
	require.True(t, ok)

	page, err := HTML(tpl.Render(doc))
	require.NoError(t, err)
	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestHTMLUsesThemeWithDefaults(t *testing.T) {
	doc := document.New()
	doc = document.WithTheme(doc, types.ThemeConfig{PrimaryColor: "#112233"})
	tpl, ok := templates.ByID("simple")
	require.True(t, ok)

	page, err := HTML(tpl.Render(doc))
	require.NoError(t, err)
	assert.Contains(t, page, "#112233")
	// Unset slots fall back instead of rendering empty declarations.
	assert.NotContains(t, page, "font-family: ,")
	assert.NotContains(t, page, "font-size: ;")
}

func TestHTMLLetterPaper(t *testing.T) {
	doc := document.New()
	tpl, ok := templates.ByID("simple")
	require.True(t, ok)
	rendered := tpl.Render(doc)
	rendered.Paper = layout.PaperLetter

	page, err := HTML(rendered)
	require.NoError(t, err)
	assert.Contains(t, page, "@page { size: letter;")
	assert.Contains(t, page, `data-paper="letter"`)
}

func TestHTMLHiddenChrome(t *testing.T) {
	doc := document.New()
	doc = document.WithSectionData(doc, types.SectionHiddenText, types.HiddenText("invisible marker"))
	tpl, ok := templates.ByID("simple")
	require.True(t, ok)

	page, err := HTML(tpl.Render(doc))
	require.NoError(t, err)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	hidden := parsed.Find("div.box-hidden")
	require.Equal(t, 1, hidden.Length())
	assert.Equal(t, "invisible marker", strings.TrimSpace(hidden.Text()))
}

func TestHTMLNilDocument(t *testing.T) {
	_, err := HTML(nil)
	require.Error(t, err)
	var exportErr *Error
	assert.ErrorAs(t, err, &exportErr)
}
