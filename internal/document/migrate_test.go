package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallet/cv-builder/internal/types"
)

func TestMigrateAppendsMissingOrderEntry(t *testing.T) {
	// A section present in Sections but absent from SectionOrder is a
	// corrupt import; migration appends it exactly once.
	doc := New()
	order := make([]types.SectionType, 0, len(doc.SectionOrder)-1)
	for _, st := range doc.SectionOrder {
		if st != types.SectionProjects {
			order = append(order, st)
		}
	}
	doc.SectionOrder = order

	repaired := Migrate(doc)

	count := 0
	for _, st := range repaired.SectionOrder {
		if st == types.SectionProjects {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMigrateIdempotent(t *testing.T) {
	doc := New()
	doc.SectionOrder = doc.SectionOrder[:3]
	doc.SectionStartPage = nil
	doc.ItemPageBreaks = nil

	once := Migrate(doc)
	twice := Migrate(once)

	assert.Equal(t, once.SectionOrder, twice.SectionOrder)
	assert.Equal(t, once.SectionStartPage, twice.SectionStartPage)
	assert.Len(t, twice.Sections, len(once.Sections))
}

func TestMigrateDropsDuplicateOrderEntries(t *testing.T) {
	doc := New()
	doc.SectionOrder = append(doc.SectionOrder, types.SectionExperiences)

	repaired := Migrate(doc)

	count := 0
	for _, st := range repaired.SectionOrder {
		if st == types.SectionExperiences {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMigrateAddsMissingSections(t *testing.T) {
	doc := &types.CVDocument{
		Template: "simple",
		Language: types.LanguageEnglish,
		Sections: []types.Section{
			{ID: "s1", Type: types.SectionExperiences, Data: types.ExperienceList{}},
		},
		SectionOrder: []types.SectionType{types.SectionExperiences},
	}

	repaired := Migrate(doc)

	require.NotNil(t, repaired.SectionByType(types.SectionEducation))
	require.NotNil(t, repaired.SectionByType(types.SectionLanguages))
	assert.Contains(t, repaired.SectionOrder, types.SectionEducation)
	// Preserved stored order comes first.
	assert.Equal(t, types.SectionExperiences, repaired.SectionOrder[0])
}

func TestMigrateKeepsUnknownSectionTypes(t *testing.T) {
	doc := New()
	doc.Sections = append(doc.Sections, types.Section{ID: "x", Type: "holograms", Data: types.EmptyData{}})

	repaired := Migrate(doc)

	assert.Contains(t, repaired.SectionOrder, types.SectionType("holograms"))
}

func TestEnsureItemIDsGeneratesFallbacks(t *testing.T) {
	doc := New()
	doc = WithSectionData(doc, types.SectionExperiences, types.ExperienceList{
		{Position: "Engineer"},
		{ID: "kept", Position: "Manager"},
	})

	repaired := EnsureItemIDs(doc)

	data, ok := repaired.SectionData(types.SectionExperiences).(types.ExperienceList)
	require.True(t, ok)
	assert.NotEmpty(t, data[0].ID)
	assert.Equal(t, "kept", data[1].ID)

	// The input snapshot keeps its blank id.
	original, _ := doc.SectionData(types.SectionExperiences).(types.ExperienceList)
	assert.Empty(t, original[0].ID)
}

func TestPruneItemPageBreaks(t *testing.T) {
	doc := New()
	doc = WithSectionData(doc, types.SectionExperiences, types.ExperienceList{{ID: "e1"}})
	doc = WithItemPageBreak(doc, "e1", true)
	doc = WithItemPageBreak(doc, "ghost", true)

	pruned := PruneItemPageBreaks(doc)

	assert.True(t, pruned.ItemPageBreaks["e1"])
	_, stale := pruned.ItemPageBreaks["ghost"]
	assert.False(t, stale)
}
