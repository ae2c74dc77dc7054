package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentAccepted(t *testing.T) {
	doc := []byte(`{
		"template": "simple",
		"language": "en",
		"sections": [
			{"id": "s1", "type": "experiences", "title": "Experience", "order": 1, "data": []}
		],
		"sectionOrder": ["experiences"],
		"sectionStartPage": {"experiences": false},
		"itemPageBreaks": {}
	}`)

	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocumentMissingPaginationFieldsAccepted(t *testing.T) {
	// Any subset of pagination fields may be absent in persisted data.
	doc := []byte(`{"template": "simple", "language": "fr", "sections": []}`)

	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocumentRejectsBadLanguage(t *testing.T) {
	doc := []byte(`{"template": "simple", "language": "de", "sections": []}`)

	err := ValidateDocument(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "language", ve.Errors[0].Field)
}

func TestValidateDocumentRejectsMissingTemplate(t *testing.T) {
	doc := []byte(`{"language": "en", "sections": []}`)

	var ve *ValidationError
	require.True(t, errors.As(ValidateDocument(doc), &ve))
}

func TestValidateDocumentRejectsMalformedJSON(t *testing.T) {
	err := ValidateDocument([]byte(`{"template": `))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}

func TestValidateDocumentRejectsNonBooleanBreakFlags(t *testing.T) {
	doc := []byte(`{
		"template": "simple",
		"language": "en",
		"sections": [],
		"itemPageBreaks": {"item-1": "yes"}
	}`)

	var ve *ValidationError
	require.True(t, errors.As(ValidateDocument(doc), &ve))
}
