package templates

import (
	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/types"
)

// simpleTemplate is the single-column template: a compact header
// followed by every section in order.
type simpleTemplate struct{}

func (*simpleTemplate) ID() string   { return "simple" }
func (*simpleTemplate) Name() string { return "Simple" }

func (*simpleTemplate) Description() string {
	return "A clean, single-column CV template"
}

func (t *simpleTemplate) Render(doc *types.CVDocument) *layout.Document {
	plan := layout.Build(doc)

	boxes := []layout.Box{t.header(doc)}
	for _, st := range plan.Sections() {
		sp, _ := plan.Section(st)
		boxes = append(boxes, renderSection(doc, sp, "simple", false))
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

func (*simpleTemplate) header(doc *types.CVDocument) layout.Box {
	info := doc.PersonalInfo
	var children []layout.Box
	children = textBox(children, "simple-name", fullName(info))
	children = textBox(children, "simple-title", info.Title)
	children = textBox(children, "simple-email", info.Email)
	children = textBox(children, "simple-phone", info.Phone)
	children = textBox(children, "simple-address", info.Address)
	if info.Summary != "" {
		children = textBox(children, "simple-summary", info.Summary)
	}
	return layout.Box{
		Kind:     layout.KindHeader,
		Class:    "simple-header",
		Section:  types.SectionPersonalInfo,
		Children: children,
	}
}
