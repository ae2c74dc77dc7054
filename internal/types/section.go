package types

import "encoding/json"

// SectionType discriminates the payload shape of a section.
type SectionType string

// Section types understood by the renderers. Unknown types survive a
// round trip but render nothing.
const (
	SectionPersonalInfo    SectionType = "personalInfo"
	SectionExperiences     SectionType = "experiences"
	SectionEducation       SectionType = "education"
	SectionSkillCategories SectionType = "skillCategories"
	SectionSoftSkills      SectionType = "softSkills"
	SectionLanguages       SectionType = "languages"
	SectionProjects        SectionType = "projects"
	SectionInterests       SectionType = "interests"
	SectionCertifications  SectionType = "certifications"
	SectionHiddenText      SectionType = "hiddenText"
)

// SectionData is the tagged-union payload of a section. Each variant's
// element type is statically known; consumers switch on the concrete
// type rather than casting loose data.
//
// ItemCount and ItemID expose the layout-atomic items of the payload to
// the pagination engine without the engine knowing the variant.
type SectionData interface {
	sectionData()

	// ItemCount returns the number of layout-atomic items in the payload.
	ItemCount() int

	// ItemID returns the stable id of the item at index i, or "" when
	// the variant carries no per-item ids.
	ItemID(i int) string
}

// ExperienceList is the payload of an "experiences" section.
type ExperienceList []Experience

// EducationList is the payload of an "education" section.
type EducationList []Education

// SkillCategoryList is the payload of a "skillCategories" section.
type SkillCategoryList []SkillCategory

// SoftSkillList is the payload of a "softSkills" section. Entries are
// bare strings and carry no ids, so item-level break flags never apply.
type SoftSkillList []string

// LanguageList is the payload of a "languages" section.
type LanguageList []Language

// ProjectList is the payload of a "projects" section.
type ProjectList []Project

// InterestList is the payload of an "interests" section.
type InterestList []Interest

// CertificationList is the payload of a "certifications" section.
type CertificationList []Certification

// HiddenText is the scalar payload of a "hiddenText" section. It is
// rendered as invisible chrome and holds no layout-atomic items.
type HiddenText string

// EmptyData is the payload of sections that hold no renderable list,
// such as personalInfo and unknown section types.
type EmptyData struct{}

func (ExperienceList) sectionData()    {}
func (EducationList) sectionData()     {}
func (SkillCategoryList) sectionData() {}
func (SoftSkillList) sectionData()     {}
func (LanguageList) sectionData()      {}
func (ProjectList) sectionData()       {}
func (InterestList) sectionData()      {}
func (CertificationList) sectionData() {}
func (HiddenText) sectionData()        {}
func (EmptyData) sectionData()         {}

// ItemCount implementations.

func (l ExperienceList) ItemCount() int    { return len(l) }
func (l EducationList) ItemCount() int     { return len(l) }
func (l SkillCategoryList) ItemCount() int { return len(l) }
func (l SoftSkillList) ItemCount() int     { return len(l) }
func (l LanguageList) ItemCount() int      { return len(l) }
func (l ProjectList) ItemCount() int       { return len(l) }
func (l InterestList) ItemCount() int      { return len(l) }
func (l CertificationList) ItemCount() int { return len(l) }
func (HiddenText) ItemCount() int          { return 0 }
func (EmptyData) ItemCount() int           { return 0 }

// ItemID implementations.

func (l ExperienceList) ItemID(i int) string    { return l[i].ID }
func (l EducationList) ItemID(i int) string     { return l[i].ID }
func (l SkillCategoryList) ItemID(i int) string { return l[i].ID }
func (SoftSkillList) ItemID(int) string         { return "" }
func (l LanguageList) ItemID(i int) string      { return l[i].ID }
func (l ProjectList) ItemID(i int) string       { return l[i].ID }
func (l InterestList) ItemID(i int) string      { return l[i].ID }
func (l CertificationList) ItemID(i int) string { return l[i].ID }
func (HiddenText) ItemID(int) string            { return "" }
func (EmptyData) ItemID(int) string             { return "" }

// Section is one CV category: a type tag, a typed payload and cosmetic
// title/order fields that pagination never reads.
type Section struct {
	ID    string
	Type  SectionType
	Title string
	Order int
	Data  SectionData
}

// sectionJSON is the wire shape of a Section; Data stays raw until the
// type tag is known.
type sectionJSON struct {
	ID    string          `json:"id"`
	Type  SectionType     `json:"type"`
	Title string          `json:"title"`
	Order int             `json:"order"`
	Data  json.RawMessage `json:"data"`
}

// UnmarshalJSON decodes a section, selecting the payload variant from
// the type tag. A malformed or missing payload decodes to the empty
// variant for the type; the document must stay renderable after a bad
// import.
func (s *Section) UnmarshalJSON(b []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Type = raw.Type
	s.Title = raw.Title
	s.Order = raw.Order
	s.Data = DecodeSectionData(raw.Type, raw.Data)
	return nil
}

// MarshalJSON encodes a section with its payload under the "data" key.
// A nil payload encodes as the empty variant for the type.
func (s Section) MarshalJSON() ([]byte, error) {
	data := s.Data
	if data == nil {
		data = EmptySectionData(s.Type)
	}
	payload, err := marshalSectionData(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionJSON{
		ID:    s.ID,
		Type:  s.Type,
		Title: s.Title,
		Order: s.Order,
		Data:  payload,
	})
}

func marshalSectionData(data SectionData) (json.RawMessage, error) {
	if _, ok := data.(EmptyData); ok {
		return json.RawMessage("[]"), nil
	}
	return json.Marshal(data)
}

// EmptySectionData returns the empty payload variant for a section type.
func EmptySectionData(t SectionType) SectionData {
	switch t {
	case SectionExperiences:
		return ExperienceList{}
	case SectionEducation:
		return EducationList{}
	case SectionSkillCategories:
		return SkillCategoryList{}
	case SectionSoftSkills:
		return SoftSkillList{}
	case SectionLanguages:
		return LanguageList{}
	case SectionProjects:
		return ProjectList{}
	case SectionInterests:
		return InterestList{}
	case SectionCertifications:
		return CertificationList{}
	case SectionHiddenText:
		return HiddenText("")
	default:
		return EmptyData{}
	}
}

// DecodeSectionData decodes a raw payload for a section type. It never
// fails: nil, malformed or wrongly-shaped payloads yield the empty
// variant so a partially-invalid document still renders.
func DecodeSectionData(t SectionType, raw json.RawMessage) SectionData {
	if len(raw) == 0 {
		return EmptySectionData(t)
	}
	switch t {
	case SectionExperiences:
		var list ExperienceList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return ExperienceList{}
		}
		return list
	case SectionEducation:
		var list EducationList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return EducationList{}
		}
		return list
	case SectionSkillCategories:
		var list SkillCategoryList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return SkillCategoryList{}
		}
		return list
	case SectionSoftSkills:
		var list SoftSkillList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return SoftSkillList{}
		}
		return list
	case SectionLanguages:
		var list LanguageList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return LanguageList{}
		}
		return list
	case SectionProjects:
		var list ProjectList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return ProjectList{}
		}
		return list
	case SectionInterests:
		var list InterestList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return InterestList{}
		}
		return list
	case SectionCertifications:
		var list CertificationList
		if err := json.Unmarshal(raw, &list); err != nil || list == nil {
			return CertificationList{}
		}
		return list
	case SectionHiddenText:
		var text HiddenText
		if err := json.Unmarshal(raw, &text); err != nil {
			return HiddenText("")
		}
		return text
	default:
		return EmptyData{}
	}
}
