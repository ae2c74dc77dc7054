package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/export"
	"github.com/jmallet/cv-builder/internal/schemas"
	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/templates"
	"github.com/jmallet/cv-builder/internal/types"
)

// SectionStartRequest toggles a section's start-on-new-page flag.
type SectionStartRequest struct {
	Section   types.SectionType `json:"section"`
	StartPage bool              `json:"startPage"`
}

// ItemBreakRequest toggles a manual break before one item.
type ItemBreakRequest struct {
	ItemID    string `json:"itemId"`
	PageBreak bool   `json:"pageBreak"`
}

// SectionOrderRequest replaces the section order.
type SectionOrderRequest struct {
	Order []types.SectionType `json:"order"`
}

// SetTemplateRequest switches the active template.
type SetTemplateRequest struct {
	Template string `json:"template"`
}

// TemplateInfo describes one registered template.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// handleHealth reports liveness and whether the store is writable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"storageAvailable": s.store.Available(),
	})
}

// handleGetDocument returns the live document.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.current())
}

// handlePutDocument replaces the live document with an imported one.
// The body goes through schema validation and migration, so stale or
// partial documents are repaired rather than rejected.
func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	doc, err := document.ImportJSON(body)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "document failed validation",
				"fields": validationErr.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}

	s.replace(doc)
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDeleteDocument discards the stored document and starts fresh.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to clear storage: "+err.Error())
		return
	}
	fresh := document.New()
	s.replace(fresh)
	s.jsonResponse(w, http.StatusOK, fresh)
}

// handleSectionStart toggles start-on-new-page for one section.
func (s *Server) handleSectionStart(w http.ResponseWriter, r *http.Request) {
	var req SectionStartRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !sections.Known(req.Section) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown section: "+string(req.Section))
		return
	}

	doc := document.WithSectionStartPage(s.current(), req.Section, req.StartPage)
	s.replace(doc)
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleItemBreak toggles the manual break before one item.
func (s *Server) handleItemBreak(w http.ResponseWriter, r *http.Request) {
	var req ItemBreakRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ItemID == "" {
		s.errorResponse(w, http.StatusBadRequest, "itemId is required")
		return
	}

	doc := document.WithItemPageBreak(s.current(), req.ItemID, req.PageBreak)
	s.replace(doc)
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleResetBreaks clears every manual pagination flag.
func (s *Server) handleResetBreaks(w http.ResponseWriter, r *http.Request) {
	doc := document.ResetPageBreaks(s.current())
	s.replace(doc)
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleSectionOrder replaces the section order. The stored order is
// repaired into a permutation of the present sections, so duplicates
// and unknown entries are dropped and missing sections appended.
func (s *Server) handleSectionOrder(w http.ResponseWriter, r *http.Request) {
	var req SectionOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doc := document.WithSectionOrder(s.current(), req.Order)
	doc = document.Migrate(doc)
	s.replace(doc)
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleListTemplates lists the registered templates.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	active := templates.Active(s.current()).ID()
	infos := make([]TemplateInfo, 0, len(templates.All()))
	for _, tpl := range templates.All() {
		infos = append(infos, TemplateInfo{
			ID:          tpl.ID(),
			Name:        tpl.Name(),
			Description: tpl.Description(),
			Active:      tpl.ID() == active,
		})
	}
	s.jsonResponse(w, http.StatusOK, infos)
}

// handleSetTemplate switches the active template.
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req SetTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if _, ok := templates.ByID(req.Template); !ok {
		s.errorResponse(w, http.StatusBadRequest, "Unknown template: "+req.Template)
		return
	}

	doc := document.WithTemplate(s.current(), req.Template)
	s.replace(doc)
	s.jsonResponse(w, http.StatusOK, doc)
}

// handlePreview returns the rendered box tree for the active template.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	rendered := s.preview.Render(s.current())
	s.jsonResponse(w, http.StatusOK, rendered)
}

// handleExportHTML returns the standalone print page.
func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	page, err := export.HTML(s.preview.Render(s.current()))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, page)
}

// handleExportPDF prints the document through the headless browser.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := export.PDF(r.Context(), s.preview.Render(s.current()))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
