// Package projection provides read-only derived views over a document
// store. Every projection is total: when the requested document does not
// exist (or no id is set), the canonical default substructure is returned
// instead of an error or a nil, so renderers and exporters never need
// nil-checks.
package projection

import (
	"github.com/jonathan/resume-workspace/internal/store"
	"github.com/jonathan/resume-workspace/internal/types"
)

// Views computes read views of one store. It never mutates the store.
type Views struct {
	store *store.Store
}

// New returns Views over the given store.
func New(s *store.Store) *Views {
	return &Views{store: s}
}

// Document resolves a document's content by id, or the default content
// skeleton when the id is empty or unknown.
func (v *Views) Document(id string) types.ResumeContent {
	if id == "" {
		return types.DefaultContent()
	}
	doc, ok := v.store.Document(id)
	if !ok {
		return types.DefaultContent()
	}
	return doc.Content
}

// Current resolves the current document's content, or the default content
// skeleton when no document is current.
func (v *Views) Current() types.ResumeContent {
	doc, ok := v.store.Document(v.store.CurrentID())
	if !ok {
		return types.DefaultContent()
	}
	return doc.Content
}

// Profile resolves a document's profile with the same default-on-absence
// contract as Document.
func (v *Views) Profile(id string) types.ResumeProfile {
	return v.Document(id).Profile
}

// WorkExperiences resolves a document's work experience entries.
func (v *Views) WorkExperiences(id string) []types.ResumeWorkExperience {
	return v.Document(id).WorkExperiences
}

// Educations resolves a document's education entries.
func (v *Views) Educations(id string) []types.ResumeEducation {
	return v.Document(id).Educations
}

// Projects resolves a document's project entries.
func (v *Views) Projects(id string) []types.ResumeProject {
	return v.Document(id).Projects
}

// Skills resolves a document's skills record.
func (v *Views) Skills(id string) types.ResumeSkills {
	return v.Document(id).Skills
}

// Custom resolves a document's custom section.
func (v *Views) Custom(id string) types.ResumeCustom {
	return v.Document(id).Custom
}

// Headings resolves a document's per-document heading overrides. The map
// is empty, never nil, when the document has no overrides.
func (v *Views) Headings(id string) map[string]string {
	h := v.Document(id).FormHeadings
	if h == nil {
		return map[string]string{}
	}
	return h
}
