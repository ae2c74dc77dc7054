package templates

import (
	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/types"
)

// modernTemplate is the two-column template: profile, skills,
// languages and interests in a narrow left band, the career sections
// in the main right band. Section order within each band follows the
// document's render order.
type modernTemplate struct{}

// leftBandSections lists the types the left band claims; everything
// else flows into the right band.
var leftBandSections = map[types.SectionType]bool{
	types.SectionSkillCategories: true,
	types.SectionSoftSkills:      true,
	types.SectionLanguages:       true,
	types.SectionInterests:       true,
}

func (*modernTemplate) ID() string   { return "modern" }
func (*modernTemplate) Name() string { return "Modern" }

func (*modernTemplate) Description() string {
	return "A modern two-column CV template"
}

func (t *modernTemplate) Render(doc *types.CVDocument) *layout.Document {
	plan := layout.Build(doc)

	left := []layout.Box{t.profile(doc)}
	if contact, ok := t.contact(doc); ok {
		left = append(left, contact)
	}
	if summary := doc.PersonalInfo.Summary; summary != "" {
		left = append(left, layout.Box{
			Kind:  layout.KindHeader,
			Class: "modern-summary",
			Children: []layout.Box{
				{Kind: layout.KindTitle, Class: "modern-left-title", Text: sections.Label("profile", doc.Language)},
				{Kind: layout.KindText, Class: "modern-summary-text", Text: summary},
			},
		})
	}

	var right []layout.Box
	for _, st := range plan.Sections() {
		sp, _ := plan.Section(st)
		if leftBandSections[st] {
			left = append(left, renderSection(doc, sp, "modern-left", true))
		} else {
			right = append(right, renderSection(doc, sp, "modern", false))
		}
	}

	boxes := []layout.Box{
		{Kind: layout.KindColumn, Class: "modern-column-left", Children: left},
		{Kind: layout.KindColumn, Class: "modern-column-right", Children: right},
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

func (*modernTemplate) profile(doc *types.CVDocument) layout.Box {
	info := doc.PersonalInfo
	var children []layout.Box
	if info.PhotoURL != nil && *info.PhotoURL != "" {
		children = append(children, layout.Box{Kind: layout.KindText, Class: "modern-photo", Text: *info.PhotoURL})
	}
	children = textBox(children, "modern-name", fullName(info))
	children = textBox(children, "modern-title", info.Title)
	return layout.Box{
		Kind:     layout.KindHeader,
		Class:    "modern-profile",
		Section:  types.SectionPersonalInfo,
		Children: children,
	}
}

// contact builds the contact block; an empty personal-info block
// renders nothing.
func (*modernTemplate) contact(doc *types.CVDocument) (layout.Box, bool) {
	info := doc.PersonalInfo
	var fields []layout.Box
	fields = textBox(fields, "modern-contact-email", info.Email)
	fields = textBox(fields, "modern-contact-phone", info.Phone)
	fields = textBox(fields, "modern-contact-address", info.Address)
	if len(fields) == 0 {
		return layout.Box{}, false
	}
	children := append([]layout.Box{
		{Kind: layout.KindTitle, Class: "modern-left-title", Text: sections.Label("contact", doc.Language)},
	}, fields...)
	return layout.Box{
		Kind:     layout.KindHeader,
		Class:    "modern-contact",
		Children: children,
	}, true
}
