package document

import (
	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/types"
)

// Migrate repairs a loaded or imported document so the model
// invariants hold:
//
//   - every registered section type exists in Sections (missing ones
//     are added empty);
//   - SectionOrder lists every present section type exactly once:
//     duplicates are dropped, missing types are appended in registry
//     order;
//   - pagination maps exist and have an entry per known section.
//
// Migrate is idempotent: running it on already-repaired data changes
// nothing. It returns a new snapshot and never fails.
func Migrate(doc *types.CVDocument) *types.CVDocument {
	out := doc.Clone()
	out.EnsurePaginationFields()

	present := make(map[types.SectionType]bool, len(out.Sections))
	for _, s := range out.Sections {
		present[s.Type] = true
	}
	for _, cfg := range sections.Registry {
		if !present[cfg.Type] {
			out.Sections = append(out.Sections, newSection(cfg.Type))
			present[cfg.Type] = true
		}
	}

	// Rebuild the order: stored order first with duplicates and
	// absent types dropped, then any present type it misses.
	seen := make(map[types.SectionType]bool, len(present))
	order := make([]types.SectionType, 0, len(present))
	for _, t := range out.SectionOrder {
		if present[t] && !seen[t] {
			order = append(order, t)
			seen[t] = true
		}
	}
	for _, cfg := range sections.Registry {
		if present[cfg.Type] && !seen[cfg.Type] {
			order = append(order, cfg.Type)
			seen[cfg.Type] = true
		}
	}
	for _, s := range out.Sections {
		if !seen[s.Type] {
			order = append(order, s.Type)
			seen[s.Type] = true
		}
	}
	out.SectionOrder = order

	for _, cfg := range sections.Registry {
		if _, ok := out.SectionStartPage[cfg.Type]; !ok {
			out.SectionStartPage[cfg.Type] = cfg.DefaultStartPage
		}
	}

	return out
}

// EnsureItemIDs returns a snapshot in which every item carries a
// non-empty id, generating fallback ids where an import left them
// blank. Payloads with repaired items are replaced wholesale.
func EnsureItemIDs(doc *types.CVDocument) *types.CVDocument {
	out := doc.Clone()
	for i := range out.Sections {
		if repaired, changed := ensureDataIDs(out.Sections[i].Data); changed {
			out.Sections[i].Data = repaired
		}
		if out.Sections[i].ID == "" {
			out.Sections[i].ID = NewItemID()
		}
	}
	return out
}

func ensureDataIDs(data types.SectionData) (types.SectionData, bool) {
	switch list := data.(type) {
	case types.ExperienceList:
		out := make(types.ExperienceList, len(list))
		changed := false
		for i, item := range list {
			if item.ID == "" {
				item.ID = NewItemID()
				changed = true
			}
			out[i] = item
		}
		return out, changed
	case types.EducationList:
		out := make(types.EducationList, len(list))
		changed := false
		for i, item := range list {
			if item.ID == "" {
				item.ID = NewItemID()
				changed = true
			}
			out[i] = item
		}
		return out, changed
	case types.SkillCategoryList:
		out := make(types.SkillCategoryList, len(list))
		changed := false
		for i, item := range list {
			if item.ID == "" {
				item.ID = NewItemID()
				changed = true
			}
			out[i] = item
		}
		return out, changed
	case types.LanguageList:
		out := make(types.LanguageList, len(list))
		changed := false
		for i, item := range list {
			if item.ID == "" {
				item.ID = NewItemID()
				changed = true
			}
			out[i] = item
		}
		return out, changed
	case types.ProjectList:
		out := make(types.ProjectList, len(list))
		changed := false
		for i, item := range list {
			if item.ID == "" {
				item.ID = NewItemID()
				changed = true
			}
			out[i] = item
		}
		return out, changed
	case types.InterestList:
		out := make(types.InterestList, len(list))
		changed := false
		for i, item := range list {
			if item.ID == "" {
				item.ID = NewItemID()
				changed = true
			}
			out[i] = item
		}
		return out, changed
	case types.CertificationList:
		out := make(types.CertificationList, len(list))
		changed := false
		for i, item := range list {
			if item.ID == "" {
				item.ID = NewItemID()
				changed = true
			}
			out[i] = item
		}
		return out, changed
	default:
		return data, false
	}
}

// PruneItemPageBreaks returns a snapshot whose break map only holds
// entries for item ids that still exist. Stale entries are harmless at
// render time; pruning keeps exported documents tidy.
func PruneItemPageBreaks(doc *types.CVDocument) *types.CVDocument {
	live := make(map[string]bool)
	for _, s := range doc.Sections {
		if s.Data == nil {
			continue
		}
		for i := 0; i < s.Data.ItemCount(); i++ {
			if id := s.Data.ItemID(i); id != "" {
				live[id] = true
			}
		}
	}

	out := doc.Clone()
	out.ItemPageBreaks = make(map[string]bool, len(live))
	for id, flag := range doc.ItemPageBreaks {
		if live[id] {
			out.ItemPageBreaks[id] = flag
		}
	}
	return out
}
