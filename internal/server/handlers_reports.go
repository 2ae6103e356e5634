package server

import (
	"encoding/json"
	"net/http"

	"github.com/verdant/green-matcher/internal/report"
)

// EmailReportRequest is the body for the email endpoint.
type EmailReportRequest struct {
	Recipient string `json:"recipient" validate:"required,email"`
}

// Validate validates the EmailReportRequest using the validator.
func (r *EmailReportRequest) Validate() error {
	return validate.Struct(r)
}

// handleExportReport writes the ranked match list to a PDF named after the
// investor and returns the file path.
func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	dims := parseDims(r)

	matches, err := s.computeMatches(r.Context(), name, dims)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	path, err := report.Export(r.Context(), name, matches, s.cfg.ReportDir)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"path":    path,
		"matches": len(matches),
	})
}

// handleEmailReport exports the PDF and emails it to one recipient. The two
// steps are independent single attempts: a failed send leaves the exported
// PDF in place.
func (s *Server) handleEmailReport(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	dims := parseDims(r)

	var req EmailReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid recipient: "+err.Error())
		return
	}
	if err := s.cfg.SMTP.Validate(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Mail not configured: "+err.Error())
		return
	}

	matches, err := s.computeMatches(r.Context(), name, dims)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	path, err := report.Export(r.Context(), name, matches, s.cfg.ReportDir)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	body, err := report.RenderMarkdown(name, matches)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	if err := s.mailer.SendReport(r.Context(), req.Recipient, name, body, path); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Email failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recipient": req.Recipient,
		"path":      path,
		"matches":   len(matches),
	})
}
