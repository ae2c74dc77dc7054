// Package document owns the CV document lifecycle: creation with
// defaults, immutable updates, migration/repair of imported data and
// JSON import/export.
package document

import (
	"github.com/google/uuid"

	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/types"
)

// DefaultTemplate is the template assigned to new documents.
const DefaultTemplate = "simple"

// New creates an empty document with the default sections, order and
// theme. The result is a complete, renderable document.
func New() *types.CVDocument {
	order := sections.DefaultOrder()
	secs := make([]types.Section, 0, len(order))
	startPage := make(map[types.SectionType]bool, len(order))
	for _, t := range order {
		secs = append(secs, newSection(t))
		startPage[t] = sections.DefaultStartPage(t)
	}
	return &types.CVDocument{
		Template:         DefaultTemplate,
		Language:         types.LanguageEnglish,
		Theme:            sections.DefaultTheme(),
		PersonalInfo:     types.PersonalInfo{},
		Sections:         secs,
		SectionOrder:     order,
		SectionStartPage: startPage,
		ItemPageBreaks:   map[string]bool{},
	}
}

// newSection creates an empty section of the given type.
func newSection(t types.SectionType) types.Section {
	cfg, _ := sections.Lookup(t)
	return types.Section{
		ID:    NewItemID(),
		Type:  t,
		Title: sections.DefaultTitle(t),
		Order: cfg.Order,
		Data:  types.EmptySectionData(t),
	}
}

// NewItemID returns a fresh unique id for an item or section.
func NewItemID() string {
	return uuid.NewString()
}

// WithSectionData returns a new snapshot with the payload of the given
// section type replaced. A section missing from the document is added.
func WithSectionData(doc *types.CVDocument, t types.SectionType, data types.SectionData) *types.CVDocument {
	out := doc.Clone()
	for i := range out.Sections {
		if out.Sections[i].Type == t {
			out.Sections[i].Data = data
			return out
		}
	}
	sec := newSection(t)
	sec.Data = data
	out.Sections = append(out.Sections, sec)
	out.SectionOrder = appendMissingType(out.SectionOrder, t)
	return out
}

// WithPersonalInfo returns a new snapshot with the personal info block
// replaced.
func WithPersonalInfo(doc *types.CVDocument, info types.PersonalInfo) *types.CVDocument {
	out := doc.Clone()
	out.PersonalInfo = info
	return out
}

// WithSectionStartPage returns a new snapshot with the section-level
// break directive for one section type set.
func WithSectionStartPage(doc *types.CVDocument, t types.SectionType, startPage bool) *types.CVDocument {
	out := doc.Clone()
	out.SectionStartPage[t] = startPage
	return out
}

// WithItemPageBreak returns a new snapshot with the item-level break
// directive for one item id set.
func WithItemPageBreak(doc *types.CVDocument, itemID string, pageBreak bool) *types.CVDocument {
	out := doc.Clone()
	out.ItemPageBreaks[itemID] = pageBreak
	return out
}

// WithSectionOrder returns a new snapshot with the render order
// replaced.
func WithSectionOrder(doc *types.CVDocument, order []types.SectionType) *types.CVDocument {
	out := doc.Clone()
	out.SectionOrder = make([]types.SectionType, len(order))
	copy(out.SectionOrder, order)
	return out
}

// WithLanguage returns a new snapshot with the document language set.
func WithLanguage(doc *types.CVDocument, language string) *types.CVDocument {
	out := doc.Clone()
	out.Language = language
	return out
}

// WithTemplate returns a new snapshot with the active template set.
func WithTemplate(doc *types.CVDocument, template string) *types.CVDocument {
	out := doc.Clone()
	out.Template = template
	return out
}

// WithTheme returns a new snapshot with the theme replaced.
func WithTheme(doc *types.CVDocument, theme types.ThemeConfig) *types.CVDocument {
	out := doc.Clone()
	out.Theme = theme
	return out
}

// ResetPageBreaks returns a new snapshot with every pagination
// directive back at its default.
func ResetPageBreaks(doc *types.CVDocument) *types.CVDocument {
	out := doc.Clone()
	out.ItemPageBreaks = map[string]bool{}
	out.SectionStartPage = make(map[types.SectionType]bool, len(sections.Registry))
	for _, cfg := range sections.Registry {
		out.SectionStartPage[cfg.Type] = cfg.DefaultStartPage
	}
	return out
}

func appendMissingType(order []types.SectionType, t types.SectionType) []types.SectionType {
	for _, existing := range order {
		if existing == t {
			return order
		}
	}
	return append(order, t)
}
