package store

import (
	"fmt"

	"github.com/jonathan/resume-workspace/internal/types"
)

// ImportDocuments appends the batch in input order. An incoming id that
// collides with an existing document, with an earlier document of the same
// batch, or that is empty is regenerated before insertion; import never
// overwrites or merges an existing document and never moves the current
// pointer. The returned slice holds the id each document ended up with,
// in batch order.
func (s *Store) ImportDocuments(batch []types.ResumeData) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[string]bool, len(s.state.Resumes)+len(batch))
	for _, r := range s.state.Resumes {
		taken[r.Metadata.ID] = true
	}

	resumes := make([]types.ResumeData, 0, len(s.state.Resumes)+len(batch))
	resumes = append(resumes, s.state.Resumes...)

	assigned := make([]string, 0, len(batch))
	for _, incoming := range batch {
		doc := incoming.Clone()
		if doc.Metadata.ID == "" || taken[doc.Metadata.ID] {
			doc.Metadata.ID = s.ids.NewID("resume")
		}
		taken[doc.Metadata.ID] = true
		if doc.Metadata.Tags == nil {
			doc.Metadata.Tags = []string{}
		}
		resumes = append(resumes, doc)
		assigned = append(assigned, doc.Metadata.ID)
	}

	s.state = types.WorkspaceState{Resumes: resumes, CurrentID: s.state.CurrentID}
	return assigned
}

// ReplaceAll swaps in a whole new workspace state, as used by bulk
// restore. The state must already be conforming: document ids pairwise
// distinct and the current pointer empty or resolvable.
func (s *Store) ReplaceAll(state types.WorkspaceState) error {
	seen := make(map[string]bool, len(state.Resumes))
	for _, r := range state.Resumes {
		if r.Metadata.ID == "" {
			return &InvalidStateError{Message: "document with empty id"}
		}
		if seen[r.Metadata.ID] {
			return &InvalidStateError{Message: fmt.Sprintf("duplicate document id %s", r.Metadata.ID)}
		}
		seen[r.Metadata.ID] = true
	}
	if state.CurrentID != "" && !seen[state.CurrentID] {
		return &InvalidStateError{Message: fmt.Sprintf("current pointer %s resolves to no document", state.CurrentID)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := state.Clone()
	if next.Resumes == nil {
		next.Resumes = []types.ResumeData{}
	}
	s.state = next
	return nil
}
