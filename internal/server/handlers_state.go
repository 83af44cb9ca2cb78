package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-workspace/internal/export"
	"github.com/jonathan/resume-workspace/internal/schemas"
	"github.com/jonathan/resume-workspace/internal/types"
)

// ImportResponse reports the ids the imported documents ended up with.
type ImportResponse struct {
	IDs []string `json:"ids"`
}

// handleImport appends a batch of documents. The payload is validated
// against the interchange schema before it reaches the store; colliding
// ids are regenerated by the store, never merged.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}
	if err := schemas.ValidateImportBatch(payload); err != nil {
		s.storeError(w, err)
		return
	}

	var batch []types.ResumeData
	if err := json.Unmarshal(payload, &batch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ids := s.store.ImportDocuments(batch)
	s.jsonResponse(w, http.StatusOK, ImportResponse{IDs: ids})
}

// handleExport returns the full workspace state.
func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleReplaceState swaps in a whole new workspace state (bulk restore).
func (s *Server) handleReplaceState(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}
	if err := schemas.ValidateWorkspaceState(payload); err != nil {
		s.storeError(w, err)
		return
	}

	var state types.WorkspaceState
	if err := json.Unmarshal(payload, &state); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.ReplaceAll(state); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMarkdown renders one document as markdown. The projection contract
// applies: an unknown id renders the default (empty) content.
func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	content := s.views.Document(r.PathValue("id"))
	md := export.Markdown(content, export.DefaultSettings())
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, md); err != nil {
		return
	}
}

// handleListSnapshots lists stored snapshots, newest first.
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Snapshot persistence is not configured")
		return
	}
	infos, err := s.db.ListSnapshots(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, infos)
}

// handleSaveSnapshot persists the current workspace state under a name.
func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Snapshot persistence is not configured")
		return
	}
	name := r.PathValue("name")
	if err := s.db.SaveSnapshot(r.Context(), name, s.store.Snapshot()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRestoreSnapshot replaces the workspace state with a stored snapshot.
func (s *Server) handleRestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Snapshot persistence is not configured")
		return
	}
	name := r.PathValue("name")
	state, found, err := s.db.LoadSnapshot(r.Context(), name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Snapshot not found: "+name)
		return
	}
	if err := s.store.ReplaceAll(state); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteSnapshot removes a stored snapshot.
func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Snapshot persistence is not configured")
		return
	}
	if err := s.db.DeleteSnapshot(r.Context(), r.PathValue("name")); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
