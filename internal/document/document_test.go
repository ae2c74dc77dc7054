package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/types"
)

func TestNewDocumentDefaults(t *testing.T) {
	doc := New()

	assert.Equal(t, DefaultTemplate, doc.Template)
	assert.Equal(t, types.LanguageEnglish, doc.Language)
	assert.Equal(t, sections.DefaultOrder(), doc.SectionOrder)
	assert.Len(t, doc.Sections, len(sections.Registry))
	assert.NotNil(t, doc.ItemPageBreaks)

	for _, s := range doc.Sections {
		require.NotNil(t, s.Data, "section %s must carry an empty payload", s.Type)
		assert.Zero(t, s.Data.ItemCount())
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Title)
	}
}

func TestWithSectionDataReturnsNewSnapshot(t *testing.T) {
	doc := New()
	exp := types.ExperienceList{{ID: NewItemID(), Position: "Engineer", Company: "Acme"}}

	updated := WithSectionData(doc, types.SectionExperiences, exp)

	assert.NotSame(t, doc, updated)
	assert.Zero(t, doc.SectionData(types.SectionExperiences).ItemCount(), "original snapshot must be untouched")
	assert.Equal(t, 1, updated.SectionData(types.SectionExperiences).ItemCount())
}

func TestWithSectionDataAddsMissingSection(t *testing.T) {
	doc := New()
	doc.Sections = doc.Sections[:0]
	doc.SectionOrder = doc.SectionOrder[:0]

	updated := WithSectionData(doc, types.SectionProjects, types.ProjectList{{ID: "p1", Title: "CLI"}})

	require.NotNil(t, updated.SectionByType(types.SectionProjects))
	assert.Contains(t, updated.SectionOrder, types.SectionProjects)
}

func TestWithItemPageBreakDoesNotMutateOriginal(t *testing.T) {
	doc := New()

	updated := WithItemPageBreak(doc, "item-1", true)

	assert.False(t, doc.ItemPageBreaks["item-1"])
	assert.True(t, updated.ItemPageBreaks["item-1"])
}

func TestWithSectionOrderCopiesInput(t *testing.T) {
	doc := New()
	order := []types.SectionType{types.SectionEducation, types.SectionExperiences}

	updated := WithSectionOrder(doc, order)
	order[0] = types.SectionProjects

	assert.Equal(t, types.SectionEducation, updated.SectionOrder[0])
}

func TestResetPageBreaks(t *testing.T) {
	doc := New()
	doc = WithItemPageBreak(doc, "item-1", true)
	doc = WithSectionStartPage(doc, types.SectionEducation, true)

	reset := ResetPageBreaks(doc)

	assert.Empty(t, reset.ItemPageBreaks)
	assert.False(t, reset.SectionStartPage[types.SectionEducation])
	// The pre-reset snapshot keeps its flags.
	assert.True(t, doc.SectionStartPage[types.SectionEducation])
}

func TestNewItemIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewItemID()
		require.NotEmpty(t, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}
