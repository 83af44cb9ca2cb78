package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-workspace/internal/types"
)

// entryIndex parses the {idx} path segment.
func entryIndex(r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(r.PathValue("idx"))
	if err != nil {
		return 0, false
	}
	return idx, true
}

// handleUpdateMetadata shallow-merges a metadata patch.
func (s *Server) handleUpdateMetadata(w http.ResponseWriter, r *http.Request) {
	var patch types.MetadataPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.store.UpdateMetadata(r.PathValue("id"), patch); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetContent replaces a document's content wholesale.
func (s *Server) handleSetContent(w http.ResponseWriter, r *http.Request) {
	var content types.ResumeContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.store.SetContent(r.PathValue("id"), content); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateProfile sets one profile field. The summary field takes the
// lines payload; every other field takes the scalar value.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	var err error
	if req.Field == "summary" {
		err = s.store.UpdateProfileSummary(r.PathValue("id"), req.Lines)
	} else {
		err = s.store.UpdateProfileField(r.PathValue("id"), req.Field, req.Value)
	}
	if err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateSkills updates the skills record: free-form descriptions,
// one featured-skill slot, or both.
func (s *Server) handleUpdateSkills(w http.ResponseWriter, r *http.Request) {
	var req types.SkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Descriptions == nil && req.Slot == nil {
		s.errorResponse(w, http.StatusBadRequest, "Either descriptions or slot is required")
		return
	}

	id := r.PathValue("id")
	if req.Descriptions != nil {
		if err := s.store.SetSkillsDescriptions(id, req.Descriptions); err != nil {
			s.storeError(w, err)
			return
		}
	}
	if req.Slot != nil {
		if err := s.store.SetFeaturedSkill(id, req.Slot.Index, req.Slot.Skill, req.Slot.Rating); err != nil {
			s.storeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateCustom replaces the custom section's lines.
func (s *Server) handleUpdateCustom(w http.ResponseWriter, r *http.Request) {
	var req types.DescriptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.store.SetCustomDescriptions(r.PathValue("id"), req.Descriptions); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetHeading writes a per-document section heading override.
func (s *Server) handleSetHeading(w http.ResponseWriter, r *http.Request) {
	var req types.HeadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	section := types.Section(r.PathValue("section"))
	if err := s.store.SetFormHeading(r.PathValue("id"), section, req.Heading); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddEntry appends a fresh entry to a list section.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	section := types.Section(r.PathValue("section"))
	if err := s.store.AddSectionEntry(r.PathValue("id"), section); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateEntry sets one field of a section entry. The descriptions
// field takes the lines payload; every other field takes the scalar value.
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	idx, ok := entryIndex(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid entry index")
		return
	}

	var req types.EntryFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Field == "" {
		s.errorResponse(w, http.StatusBadRequest, "field is required")
		return
	}

	id := r.PathValue("id")
	section := types.Section(r.PathValue("section"))

	var err error
	if req.Field == "descriptions" {
		err = s.store.UpdateEntryDescriptions(id, section, idx, req.Lines)
	} else {
		err = s.store.UpdateEntryField(id, section, idx, req.Field, req.Value)
	}
	if err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMoveEntry swaps an entry with its neighbor. Boundary moves succeed
// without changing anything.
func (s *Server) handleMoveEntry(w http.ResponseWriter, r *http.Request) {
	idx, ok := entryIndex(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid entry index")
		return
	}

	var req types.MoveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	section := types.Section(r.PathValue("section"))
	if err := s.store.MoveSectionEntry(r.PathValue("id"), section, idx, req.Direction); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteEntry removes an entry; later entries shift down one place.
func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	idx, ok := entryIndex(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid entry index")
		return
	}

	section := types.Section(r.PathValue("section"))
	if err := s.store.DeleteSectionEntry(r.PathValue("id"), section, idx); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
