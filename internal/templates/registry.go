// Package templates provides the interchangeable visual CV templates.
// Every template builds a styled box tree from a document snapshot and
// delegates all page-break decisions to the shared pagination plan in
// the layout package; templates differ only in box arrangement and
// style classes.
package templates

import (
	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/types"
)

// Template is one visual CV template.
type Template interface {
	// ID is the identifier stored in CVDocument.Template.
	ID() string

	// Name is the human-readable template name.
	Name() string

	// Description is a one-line summary shown in template pickers.
	Description() string

	// Render produces the box tree for a document snapshot. Rendering
	// is a pure function of the snapshot and never fails: malformed
	// section payloads render as empty and missing fields render as
	// empty strings.
	Render(doc *types.CVDocument) *layout.Document
}

var registry = []Template{
	&simpleTemplate{},
	&modernTemplate{},
	&seleniteTemplate{},
}

// All returns every registered template in presentation order.
func All() []Template {
	out := make([]Template, len(registry))
	copy(out, registry)
	return out
}

// ByID returns the template with the given id.
func ByID(id string) (Template, bool) {
	for _, tpl := range registry {
		if tpl.ID() == id {
			return tpl, true
		}
	}
	return nil, false
}

// Active returns the document's template, falling back to the first
// registered one when the stored id is unknown.
func Active(doc *types.CVDocument) Template {
	if tpl, ok := ByID(doc.Template); ok {
		return tpl
	}
	return registry[0]
}
