package templates

import (
	"fmt"
	"strings"

	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/types"
)

// textBox appends a leaf text box unless the text is empty. Missing
// scalar fields must render as nothing, never as a literal placeholder.
func textBox(children []layout.Box, class, text string) []layout.Box {
	if strings.TrimSpace(text) == "" {
		return children
	}
	return append(children, layout.Box{Kind: layout.KindText, Class: class, Text: text})
}

// tagBoxes appends one tag box per non-empty value.
func tagBoxes(children []layout.Box, class string, values []string) []layout.Box {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		children = append(children, layout.Box{Kind: layout.KindTag, Class: class, Text: v})
	}
	return children
}

// fullName joins the name parts, tolerating either being empty.
func fullName(info types.PersonalInfo) string {
	return strings.TrimSpace(strings.TrimSpace(info.FirstName) + " " + strings.TrimSpace(info.LastName))
}

// dateRange formats "start - end", localizing the open end of a
// current position.
func dateRange(start, end string, current bool, language string) string {
	if current {
		end = sections.Label("present", language)
	}
	if start == "" && end == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", start, end)
}

// titleBox builds the section title box. The plan's section-level
// break rides on the enclosing section box, so the title itself never
// carries a break flag.
func titleBox(t types.SectionType, language, class string) layout.Box {
	return layout.Box{
		Kind:    layout.KindTitle,
		Class:   class,
		Section: t,
		Text:    sections.Title(t, language),
	}
}

// sectionBox wraps a title and its item boxes in a section container
// carrying the plan's section-level break decision.
func sectionBox(sp *layout.SectionPlan, class string, children ...layout.Box) layout.Box {
	return layout.Box{
		Kind:        layout.KindSection,
		Class:       class,
		Section:     sp.Section,
		BreakBefore: sp.BreakBefore,
		Children:    children,
	}
}

// itemBox wraps one layout-atomic item. Every item box is no-split;
// the break flag comes from the plan, which already suppressed the
// first item's own directive.
func itemBox(sp *layout.SectionPlan, index int, itemID, class string, children []layout.Box) layout.Box {
	return layout.Box{
		Kind:        layout.KindItem,
		Class:       class,
		Section:     sp.Section,
		ItemID:      itemID,
		BreakBefore: sp.ItemBreak(index),
		NoSplit:     true,
		Children:    children,
	}
}

// experienceChildren builds the content boxes of one experience entry.
func experienceChildren(exp types.Experience, language, prefix string) []layout.Box {
	var children []layout.Box
	children = textBox(children, prefix+"-position", exp.Position)
	children = textBox(children, prefix+"-company", exp.Company)
	children = textBox(children, prefix+"-dates", dateRange(exp.StartDate, exp.EndDate, exp.IsCurrent, language))
	children = textBox(children, prefix+"-description", exp.Description)
	children = tagBoxes(children, prefix+"-tech", exp.Technologies)
	return children
}

// educationChildren builds the content boxes of one education entry.
func educationChildren(edu types.Education, language, prefix string) []layout.Box {
	var children []layout.Box
	children = textBox(children, prefix+"-degree", edu.Degree)
	children = textBox(children, prefix+"-institution", edu.Institution)
	children = textBox(children, prefix+"-dates", dateRange(edu.StartDate, edu.EndDate, false, language))
	if edu.Grade != "" {
		children = textBox(children, prefix+"-grade", sections.Label("grade", language)+": "+edu.Grade)
	}
	children = textBox(children, prefix+"-description", edu.Description)
	return children
}

// skillCategoryChildren builds the content boxes of one skill category.
func skillCategoryChildren(cat types.SkillCategory, prefix string) []layout.Box {
	var children []layout.Box
	children = textBox(children, prefix+"-category", cat.Name)
	children = tagBoxes(children, prefix+"-skill", cat.Skills)
	return children
}

// projectChildren builds the content boxes of one project entry.
func projectChildren(p types.Project, prefix string) []layout.Box {
	var children []layout.Box
	children = textBox(children, prefix+"-title", p.Title)
	children = textBox(children, prefix+"-description", p.Description)
	children = tagBoxes(children, prefix+"-tech", p.Technologies)
	children = textBox(children, prefix+"-url", p.URL)
	children = textBox(children, prefix+"-github", p.GitHub)
	return children
}

// certificationChildren builds the content boxes of one certification.
func certificationChildren(c types.Certification, language, prefix string) []layout.Box {
	var children []layout.Box
	children = textBox(children, prefix+"-name", c.Name)
	if c.Issuer != "" {
		children = textBox(children, prefix+"-issuer", sections.Label("issuedBy", language)+" "+c.Issuer)
	}
	children = textBox(children, prefix+"-date", c.Date)
	children = textBox(children, prefix+"-url", c.URL)
	return children
}

// interestChildren builds the content boxes of one interest entry.
func interestChildren(in types.Interest, prefix string) []layout.Box {
	var children []layout.Box
	children = textBox(children, prefix+"-name", in.Name)
	children = textBox(children, prefix+"-role", in.Role)
	children = textBox(children, prefix+"-period", in.Period)
	children = textBox(children, prefix+"-description", in.Description)
	return children
}

// languageChildren builds the content boxes of one language entry.
// The proficiency indicator is a deterministic mapping of the CEFR
// level rank; unknown levels render the raw text only.
func languageChildren(l types.Language, prefix string, withIndicator bool) []layout.Box {
	var children []layout.Box
	children = textBox(children, prefix+"-name", l.Name)
	children = textBox(children, prefix+"-level", string(l.Level))
	if withIndicator {
		if rank := l.Level.Rank(); rank > 0 {
			children = append(children, layout.Box{
				Kind:  layout.KindTag,
				Class: fmt.Sprintf("%s-level-indicator level-%d", prefix, rank),
			})
		}
	}
	return children
}

// hiddenBox returns the invisible text chrome for a non-empty hidden
// text section. It takes no part in pagination.
func hiddenBox(doc *types.CVDocument) (layout.Box, bool) {
	text, ok := doc.SectionData(types.SectionHiddenText).(types.HiddenText)
	if !ok || strings.TrimSpace(string(text)) == "" {
		return layout.Box{}, false
	}
	return layout.Box{
		Kind:    layout.KindHidden,
		Class:   "hidden-text",
		Section: types.SectionHiddenText,
		Text:    string(text),
	}, true
}

// itemBoxesFor builds the item boxes of one planned section by
// pattern-matching on the payload variant. Unknown variants render
// nothing.
func itemBoxesFor(doc *types.CVDocument, sp *layout.SectionPlan, prefix string, withLanguageIndicator bool) []layout.Box {
	var boxes []layout.Box
	switch data := doc.SectionData(sp.Section).(type) {
	case types.ExperienceList:
		for i, exp := range data {
			boxes = append(boxes, itemBox(sp, i, exp.ID, prefix+"-experience", experienceChildren(exp, doc.Language, prefix)))
		}
	case types.EducationList:
		for i, edu := range data {
			boxes = append(boxes, itemBox(sp, i, edu.ID, prefix+"-education", educationChildren(edu, doc.Language, prefix)))
		}
	case types.SkillCategoryList:
		for i, cat := range data {
			boxes = append(boxes, itemBox(sp, i, cat.ID, prefix+"-skill-category", skillCategoryChildren(cat, prefix)))
		}
	case types.SoftSkillList:
		for i, skill := range data {
			boxes = append(boxes, itemBox(sp, i, "", prefix+"-soft-skill", []layout.Box{
				{Kind: layout.KindTag, Class: prefix + "-soft-skill-tag", Text: skill},
			}))
		}
	case types.LanguageList:
		for i, l := range data {
			boxes = append(boxes, itemBox(sp, i, l.ID, prefix+"-language", languageChildren(l, prefix, withLanguageIndicator)))
		}
	case types.ProjectList:
		for i, p := range data {
			boxes = append(boxes, itemBox(sp, i, p.ID, prefix+"-project", projectChildren(p, prefix)))
		}
	case types.InterestList:
		for i, in := range data {
			boxes = append(boxes, itemBox(sp, i, in.ID, prefix+"-interest", interestChildren(in, prefix)))
		}
	case types.CertificationList:
		for i, c := range data {
			boxes = append(boxes, itemBox(sp, i, c.ID, prefix+"-certification", certificationChildren(c, doc.Language, prefix)))
		}
	}
	return boxes
}

// renderSection builds the complete section box (title plus items) for
// one planned section.
func renderSection(doc *types.CVDocument, sp *layout.SectionPlan, prefix string, withLanguageIndicator bool) layout.Box {
	children := []layout.Box{titleBox(sp.Section, doc.Language, prefix+"-section-title")}
	children = append(children, itemBoxesFor(doc, sp, prefix, withLanguageIndicator)...)
	return sectionBox(sp, prefix+"-section", children...)
}
