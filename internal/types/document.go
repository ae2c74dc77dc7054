package types

import "encoding/json"

// Supported document languages.
const (
	LanguageFrench  = "fr"
	LanguageEnglish = "en"
)

// CVDocument is the root aggregate of one editing session: ordered
// sections, the explicit render order, and the per-section / per-item
// pagination directives.
//
// Documents are treated as immutable snapshots: mutation helpers in the
// document package return a fresh copy and never edit a snapshot that a
// render pass may be reading.
type CVDocument struct {
	Template     string       `json:"template" validate:"required"`
	Language     string       `json:"language" validate:"required,oneof=fr en"`
	Theme        ThemeConfig  `json:"theme"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`

	// SectionOrder defines render order independent of section storage
	// order. After migration it is a permutation of the section types
	// present in Sections.
	SectionOrder []SectionType `json:"sectionOrder"`

	// SectionStartPage marks sections that must start at the top of a
	// new page.
	SectionStartPage map[SectionType]bool `json:"sectionStartPage"`

	// ItemPageBreaks marks items that must start at the top of a new
	// page, keyed by item id. The flag is ignored for the first item
	// rendered in a section.
	ItemPageBreaks map[string]bool `json:"itemPageBreaks"`
}

// documentAlias breaks the UnmarshalJSON recursion.
type documentAlias CVDocument

// UnmarshalJSON decodes a document, tolerating any subset of the
// pagination fields being absent: nil maps and order lists are replaced
// with empty values so downstream code never nil-checks.
func (d *CVDocument) UnmarshalJSON(b []byte) error {
	var alias documentAlias
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	*d = CVDocument(alias)
	d.EnsurePaginationFields()
	return nil
}

// EnsurePaginationFields replaces nil pagination fields with empty
// values. Imports and hand-built documents may omit any of them.
func (d *CVDocument) EnsurePaginationFields() {
	if d.SectionOrder == nil {
		d.SectionOrder = []SectionType{}
	}
	if d.SectionStartPage == nil {
		d.SectionStartPage = map[SectionType]bool{}
	}
	if d.ItemPageBreaks == nil {
		d.ItemPageBreaks = map[string]bool{}
	}
}

// SectionByType returns the first section with the given type, or nil.
func (d *CVDocument) SectionByType(t SectionType) *Section {
	for i := range d.Sections {
		if d.Sections[i].Type == t {
			return &d.Sections[i]
		}
	}
	return nil
}

// SectionData returns the payload of the section with the given type,
// or the empty variant when the section is missing or has a nil
// payload.
func (d *CVDocument) SectionData(t SectionType) SectionData {
	s := d.SectionByType(t)
	if s == nil || s.Data == nil {
		return EmptySectionData(t)
	}
	return s.Data
}

// Clone returns a copy of the document that shares no mutable
// containers with the original. Section payloads are shared: they are
// replaced wholesale on edit, never modified in place.
func (d *CVDocument) Clone() *CVDocument {
	out := *d
	out.Sections = make([]Section, len(d.Sections))
	copy(out.Sections, d.Sections)
	out.SectionOrder = make([]SectionType, len(d.SectionOrder))
	copy(out.SectionOrder, d.SectionOrder)
	out.SectionStartPage = make(map[SectionType]bool, len(d.SectionStartPage))
	for k, v := range d.SectionStartPage {
		out.SectionStartPage[k] = v
	}
	out.ItemPageBreaks = make(map[string]bool, len(d.ItemPageBreaks))
	for k, v := range d.ItemPageBreaks {
		out.ItemPageBreaks[k] = v
	}
	return &out
}
