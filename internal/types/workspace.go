package types

// ResumeMetadata identifies and describes one document. ID is assigned at
// creation and immutable; UpdatedAt is rewritten by every mutation that
// touches the document's content or metadata.
type ResumeMetadata struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// ResumeData is one complete document: metadata plus content. This is the
// interchange shape; it round-trips losslessly through import and export.
type ResumeData struct {
	Metadata ResumeMetadata `json:"metadata"`
	Content  ResumeContent  `json:"content"`
}

// Clone returns a deep copy of the document.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Metadata.Tags = cloneStrings(d.Metadata.Tags)
	out.Content = d.Content.Clone()
	return out
}

// WorkspaceState is the full persisted state of the workspace: every
// document in display order plus the current-document pointer. An empty
// CurrentID means no document is current.
type WorkspaceState struct {
	Resumes   []ResumeData `json:"resumes"`
	CurrentID string       `json:"currentResumeId"`
}

// Clone returns a deep copy of the state.
func (s WorkspaceState) Clone() WorkspaceState {
	out := WorkspaceState{CurrentID: s.CurrentID}
	if s.Resumes != nil {
		out.Resumes = make([]ResumeData, len(s.Resumes))
		for i, r := range s.Resumes {
			out.Resumes[i] = r.Clone()
		}
	}
	return out
}

// MetadataPatch is a partial metadata update; nil fields are left untouched.
// The document id and timestamps are never patchable.
type MetadataPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
