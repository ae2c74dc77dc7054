package layout

import "github.com/jmallet/cv-builder/internal/types"

// SlotKind distinguishes title slots from item slots in a break plan.
type SlotKind string

// Slot kinds.
const (
	SlotTitle SlotKind = "title"
	SlotItem  SlotKind = "item"
)

// Slot is one break decision: for a single renderable box, whether a
// page break is forced before it and whether it may be split.
type Slot struct {
	Kind        SlotKind
	Section     types.SectionType
	Index       int // item index within the section; -1 for titles
	ItemID      string
	BreakBefore bool
	NoSplit     bool
}

// SectionPlan holds the break decisions of one rendered section.
type SectionPlan struct {
	Section types.SectionType

	// BreakBefore applies to the section's first rendered box (its
	// title, or the section container in templates that carry the flag
	// there). It mirrors the document's section-level directive.
	BreakBefore bool

	items []Slot
}

// Items returns the item slots in list order.
func (sp *SectionPlan) Items() []Slot {
	return sp.items
}

// ItemBreak returns the break-before decision for the item at index i.
// Out-of-range indexes resolve to false.
func (sp *SectionPlan) ItemBreak(i int) bool {
	if i < 0 || i >= len(sp.items) {
		return false
	}
	return sp.items[i].BreakBefore
}

// Plan is the ordered set of break decisions for one document
// snapshot. It is the single decision procedure shared by every
// template: templates style boxes, the plan decides where pages break.
type Plan struct {
	slots    []Slot
	order    []types.SectionType
	sections map[types.SectionType]*SectionPlan
}

// Slots returns every break decision in render order: for each
// non-empty section, a title slot followed by one slot per item.
func (p *Plan) Slots() []Slot {
	return p.slots
}

// Sections returns the types of the sections that render anything,
// in render order.
func (p *Plan) Sections() []types.SectionType {
	return p.order
}

// Section returns the plan for one section type. The second return is
// false when the section renders nothing (empty, unknown or absent).
func (p *Plan) Section(t types.SectionType) (*SectionPlan, bool) {
	sp, ok := p.sections[t]
	return sp, ok
}

// Build computes the break plan for a document snapshot.
//
// The walk follows SectionOrder, then list order within each section;
// it only inserts breaks, never resequences content. Per slot:
//
//   - a section with no items is skipped entirely, so a section-level
//     break request on an empty section is a no-op;
//   - the section's first rendered box carries the section-level
//     directive; the first item's own break flag is ignored for that
//     position, preventing a double break after the title;
//   - every later item resolves its flag from ItemPageBreaks,
//     defaulting to false;
//   - every item slot is no-split, unconditionally.
//
// Build never fails on data-shape problems: unknown section types and
// nil payloads render nothing, absent flags are false. Passing a nil
// document is a caller bug and panics.
func Build(doc *types.CVDocument) *Plan {
	if doc == nil {
		panic("layout: Build called with nil document")
	}

	p := &Plan{sections: make(map[types.SectionType]*SectionPlan)}
	for _, t := range doc.SectionOrder {
		if t == types.SectionPersonalInfo {
			// Header chrome; templates place it outside the flow.
			continue
		}
		if _, done := p.sections[t]; done {
			// Corrupt order listing a type twice; render it once.
			continue
		}
		data := doc.SectionData(t)
		n := data.ItemCount()
		if n == 0 {
			continue
		}

		sp := &SectionPlan{
			Section:     t,
			BreakBefore: doc.SectionStartPage[t],
		}
		p.slots = append(p.slots, Slot{
			Kind:        SlotTitle,
			Section:     t,
			Index:       -1,
			BreakBefore: sp.BreakBefore,
		})
		for i := 0; i < n; i++ {
			id := data.ItemID(i)
			breakBefore := false
			if i > 0 {
				breakBefore = doc.ItemPageBreaks[id]
			}
			slot := Slot{
				Kind:        SlotItem,
				Section:     t,
				Index:       i,
				ItemID:      id,
				BreakBefore: breakBefore,
				NoSplit:     true,
			}
			sp.items = append(sp.items, slot)
			p.slots = append(p.slots, slot)
		}
		p.order = append(p.order, t)
		p.sections[t] = sp
	}
	return p
}
