package templates

import (
	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/types"
)

// seleniteTemplate is the banner-header template: a full-width header
// band, then a single-column flow with language proficiency
// indicators.
type seleniteTemplate struct{}

func (*seleniteTemplate) ID() string   { return "selenite" }
func (*seleniteTemplate) Name() string { return "Selenite" }

func (*seleniteTemplate) Description() string {
	return "A banner-header CV template"
}

func (t *seleniteTemplate) Render(doc *types.CVDocument) *layout.Document {
	plan := layout.Build(doc)

	boxes := []layout.Box{t.banner(doc)}
	for _, st := range plan.Sections() {
		sp, _ := plan.Section(st)
		boxes = append(boxes, renderSection(doc, sp, "selenite", true))
	}
	if hb, ok := hiddenBox(doc); ok {
		boxes = append(boxes, hb)
	}

	return &layout.Document{
		Template: t.ID(),
		Language: doc.Language,
		Paper:    layout.PaperA4,
		Theme:    doc.Theme,
		Boxes:    boxes,
	}
}

func (*seleniteTemplate) banner(doc *types.CVDocument) layout.Box {
	info := doc.PersonalInfo
	var children []layout.Box
	children = textBox(children, "selenite-name", fullName(info))
	children = textBox(children, "selenite-title", info.Title)
	children = textBox(children, "selenite-email", info.Email)
	children = textBox(children, "selenite-phone", info.Phone)
	children = textBox(children, "selenite-address", info.Address)
	children = textBox(children, "selenite-summary", info.Summary)
	return layout.Box{
		Kind:        layout.KindHeader,
		Class:       "selenite-banner",
		Section:     types.SectionPersonalInfo,
		BreakBefore: doc.SectionStartPage[types.SectionPersonalInfo],
		Children:    children,
	}
}
