package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-workspace/internal/types"
)

// DocumentSummary is the list-view shape: metadata only.
type DocumentSummary struct {
	Metadata types.ResumeMetadata `json:"metadata"`
	Current  bool                 `json:"current"`
}

// CreateDocumentResponse carries the id assigned to a new document.
type CreateDocumentResponse struct {
	ID string `json:"id"`
}

// handleListDocuments returns every document's metadata in display order.
func (s *Server) handleListDocuments(w http.ResponseWriter, _ *http.Request) {
	current := s.store.CurrentID()
	docs := s.store.Documents()
	out := make([]DocumentSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentSummary{
			Metadata: d.Metadata,
			Current:  d.Metadata.ID == current,
		})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleCreateDocument creates a document and makes it current.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	id := s.store.Create(req.Title)
	s.jsonResponse(w, http.StatusCreated, CreateDocumentResponse{ID: id})
}

// handleGetDocument returns one full document. The projection contract
// applies: an unknown id yields the default content with empty metadata
// rather than an error, so read-side consumers never break.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	doc, ok := s.store.Document(id)
	if !ok {
		s.jsonResponse(w, http.StatusOK, types.ResumeData{Content: s.views.Document(id)})
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleCloneDocument deep-copies a document under a new id and title.
func (s *Server) handleCloneDocument(w http.ResponseWriter, r *http.Request) {
	var req types.CloneResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	id, err := s.store.Clone(r.PathValue("id"), req.Title)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, CreateDocumentResponse{ID: id})
}

// handleDeleteDocument removes a document. Deleting an unknown id is a
// no-op, matching the store contract.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	s.store.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleGetCurrent returns the current document id and resolved content.
func (s *Server) handleGetCurrent(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":      s.store.CurrentID(),
		"content": s.views.Current(),
	})
}

// handleSwitchCurrent moves the current pointer. Switching to an unknown
// id leaves the pointer unchanged, matching the store contract.
func (s *Server) handleSwitchCurrent(w http.ResponseWriter, r *http.Request) {
	var req types.SwitchCurrentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	s.store.SwitchCurrent(req.ID)
	s.jsonResponse(w, http.StatusOK, map[string]string{"id": s.store.CurrentID()})
}

// handleCreateSession exchanges the shared access password for a session
// token. Returns 404 when no access password is configured.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil || s.accessCfg == nil {
		s.errorResponse(w, http.StatusNotFound, "Sessions are not enabled")
		return
	}

	var req types.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if !s.accessCfg.VerifyPassword(req.Password, s.accessHash) {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid access password")
		return
	}

	token, err := s.sessions.IssueToken()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue token: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, types.SessionResponse{Token: token})
}
