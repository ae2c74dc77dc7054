package document

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jmallet/cv-builder/internal/schemas"
	"github.com/jmallet/cv-builder/internal/types"
)

var validate = validator.New()

// ImportJSON decodes, validates and repairs a document exported by
// this application or a compatible one. The returned document has been
// through Migrate and EnsureItemIDs, so its invariants hold and every
// item carries an id. Pagination fields missing from the payload
// default to empty.
//
// Only structural problems fail an import: unreadable JSON, a schema
// mismatch or an unsupported language. Malformed section payloads
// inside an otherwise valid document decode to empty lists so the user
// still gets a renderable result.
func ImportJSON(data []byte) (*types.CVDocument, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, &ImportError{Message: "the file is empty or contains no data"}
	}

	if err := schemas.ValidateDocument(data); err != nil {
		return nil, &ImportError{Message: "the CV data format is not valid", Cause: err}
	}

	var doc types.CVDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ImportError{Message: "the JSON file is not valid", Cause: err}
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, &ImportError{Message: "the CV data format is not valid", Cause: err}
	}

	repaired := EnsureItemIDs(Migrate(&doc))
	return repaired, nil
}

// ExportJSON serializes a document for download or backup.
func ExportJSON(doc *types.CVDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
