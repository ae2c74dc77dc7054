package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallet/cv-builder/internal/types"
)

func TestImportJSONRoundTrip(t *testing.T) {
	doc := New()
	doc = WithSectionData(doc, types.SectionExperiences, types.ExperienceList{
		{ID: "e1", Position: "Engineer", Company: "Acme", Technologies: []string{"Go"}},
	})
	doc = WithItemPageBreak(doc, "e1", true)

	data, err := ExportJSON(doc)
	require.NoError(t, err)

	imported, err := ImportJSON(data)
	require.NoError(t, err)

	exp, ok := imported.SectionData(types.SectionExperiences).(types.ExperienceList)
	require.True(t, ok)
	require.Len(t, exp, 1)
	assert.Equal(t, "Engineer", exp[0].Position)
	assert.True(t, imported.ItemPageBreaks["e1"])
}

func TestImportJSONMissingPaginationFields(t *testing.T) {
	// A document exported before pagination directives existed imports
	// cleanly; every item defaults to no break.
	data := []byte(`{
		"template": "simple",
		"language": "en",
		"sections": [
			{"id": "s1", "type": "experiences", "title": "Experience", "order": 1,
			 "data": [{"id": "e1", "position": "Engineer", "company": "Acme"}]}
		]
	}`)

	imported, err := ImportJSON(data)
	require.NoError(t, err)

	assert.NotNil(t, imported.ItemPageBreaks)
	assert.False(t, imported.ItemPageBreaks["e1"])
	assert.NotNil(t, imported.SectionStartPage)
	assert.Contains(t, imported.SectionOrder, types.SectionExperiences)
}

func TestImportJSONMalformedSectionPayload(t *testing.T) {
	// A non-array payload degrades to an empty list, never an error.
	data := []byte(`{
		"template": "simple",
		"language": "en",
		"sections": [
			{"id": "s1", "type": "experiences", "title": "Experience", "order": 1, "data": {"oops": true}}
		]
	}`)

	imported, err := ImportJSON(data)
	require.NoError(t, err)

	assert.Zero(t, imported.SectionData(types.SectionExperiences).ItemCount())
}

func TestImportJSONGeneratesMissingItemIDs(t *testing.T) {
	data := []byte(`{
		"template": "simple",
		"language": "en",
		"sections": [
			{"id": "s1", "type": "education", "title": "Education", "order": 2,
			 "data": [{"degree": "MSc", "institution": "ENS"}]}
		]
	}`)

	imported, err := ImportJSON(data)
	require.NoError(t, err)

	edu, ok := imported.SectionData(types.SectionEducation).(types.EducationList)
	require.True(t, ok)
	require.Len(t, edu, 1)
	assert.NotEmpty(t, edu[0].ID)
}

func TestImportJSONEmptyInput(t *testing.T) {
	_, err := ImportJSON([]byte("   \n"))
	require.Error(t, err)

	var ie *ImportError
	require.ErrorAs(t, err, &ie)
}

func TestImportJSONInvalidJSON(t *testing.T) {
	_, err := ImportJSON([]byte(`{"template": "simple",`))
	assert.Error(t, err)
}

func TestImportJSONUnsupportedLanguage(t *testing.T) {
	_, err := ImportJSON([]byte(`{"template": "simple", "language": "de", "sections": []}`))
	assert.Error(t, err)
}

func TestExportJSONStableShape(t *testing.T) {
	data, err := ExportJSON(New())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"template", "language", "theme", "personalInfo", "sections", "sectionOrder", "sectionStartPage", "itemPageBreaks"} {
		assert.Contains(t, raw, key)
	}
}
