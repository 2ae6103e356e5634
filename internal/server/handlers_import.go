package server

import (
	"io"
	"net/http"

	"github.com/verdant/green-matcher/internal/importer"
)

// maxImportSize caps one uploaded CSV file at 32 MiB.
const maxImportSize = 32 << 20

// handleImport replaces the investors and/or projects tables from uploaded
// CSV files. Multipart parts are named "investors" and "projects"; either may
// be omitted. A file that fails validation leaves previously loaded data
// untouched.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	var investorsCSV, projectsCSV io.Reader

	if file, _, err := r.FormFile("investors"); err == nil {
		defer file.Close()
		investorsCSV = file
	}
	if file, _, err := r.FormFile("projects"); err == nil {
		defer file.Close()
		projectsCSV = file
	}

	if investorsCSV == nil && projectsCSV == nil {
		s.errorResponse(w, http.StatusBadRequest, "Provide an 'investors' and/or 'projects' CSV file")
		return
	}

	summary, err := importer.BulkImport(r.Context(), s.store, investorsCSV, projectsCSV)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Import failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}
