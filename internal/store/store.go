package store

import (
	"sync"
	"time"

	"github.com/jonathan/resume-workspace/internal/identity"
	"github.com/jonathan/resume-workspace/internal/types"
)

// timeLayout is the timestamp format for createdAt/updatedAt. Millisecond
// precision in UTC keeps timestamps lexicographically ordered.
const timeLayout = "2006-01-02T15:04:05.000Z"

// Store owns the in-memory table of resume documents and the
// current-document pointer. All mutations are serialized behind a single
// writer lock and applied copy-on-write: a mutation never modifies the
// published state in place, so a reader holding a snapshot never observes
// a partially applied operation.
//
// A Store is an explicitly owned instance; there is no package-global
// state. Tests and multi-workspace hosts construct as many as they need.
type Store struct {
	mu    sync.RWMutex
	state types.WorkspaceState

	ids *identity.Generator
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the clock used to stamp createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator injects the id generator.
func WithIDGenerator(g *identity.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		state: types.WorkspaceState{Resumes: []types.ResumeData{}},
		ids:   identity.NewGenerator(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

// indexOf returns the position of the document with the given id, or -1.
// Callers must hold the lock.
func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range s.state.Resumes {
		if r.Metadata.ID == id {
			return i
		}
	}
	return -1
}

// resolve maps an empty id to the current document id. Callers must hold
// the lock. Resolution happens at this boundary only; the core mutation
// path is always keyed by an explicit id, so two views editing two
// different documents can never cross-talk.
func (s *Store) resolve(id string) string {
	if id == "" {
		return s.state.CurrentID
	}
	return id
}

// mutate applies fn to a deep copy of the target document, stamps
// updatedAt, and publishes a new snapshot. fn returning changed=false
// leaves the store untouched (benign no-op, no timestamp bump).
func (s *Store) mutate(id string, fn func(doc *types.ResumeData) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.resolve(id)
	idx := s.indexOf(target)
	if idx < 0 {
		return &NotFoundError{ID: target}
	}

	doc := s.state.Resumes[idx].Clone()
	changed, err := fn(&doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	doc.Metadata.UpdatedAt = s.timestamp()
	s.publishDocument(idx, doc)
	return nil
}

// publishDocument swaps one document into a fresh resumes slice. Callers
// must hold the write lock.
func (s *Store) publishDocument(idx int, doc types.ResumeData) {
	resumes := make([]types.ResumeData, len(s.state.Resumes))
	copy(resumes, s.state.Resumes)
	resumes[idx] = doc
	s.state = types.WorkspaceState{Resumes: resumes, CurrentID: s.state.CurrentID}
}

// Create allocates a new document with the default content skeleton,
// appends it, makes it current, and returns its id. Create never fails.
func (s *Store) Create(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	doc := types.ResumeData{
		Metadata: types.ResumeMetadata{
			ID:        s.ids.NewID("resume"),
			Title:     title,
			Tags:      []string{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		Content: types.DefaultContent(),
	}

	resumes := make([]types.ResumeData, 0, len(s.state.Resumes)+1)
	resumes = append(resumes, s.state.Resumes...)
	resumes = append(resumes, doc)
	s.state = types.WorkspaceState{Resumes: resumes, CurrentID: doc.Metadata.ID}
	return doc.Metadata.ID
}

// Clone deep-copies the source document's content into a new document with
// fresh metadata, appends it, and makes it current. Entry ids inside the
// content are copied, not regenerated. Returns NotFoundError if the source
// does not exist.
func (s *Store) Clone(sourceID, title string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(sourceID)
	if idx < 0 {
		return "", &NotFoundError{ID: sourceID}
	}
	source := s.state.Resumes[idx]

	now := s.timestamp()
	doc := types.ResumeData{
		Metadata: types.ResumeMetadata{
			ID:          s.ids.NewID("resume"),
			Title:       title,
			Description: source.Metadata.Description,
			Tags:        append([]string{}, source.Metadata.Tags...),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Content: source.Content.Clone(),
	}

	resumes := make([]types.ResumeData, 0, len(s.state.Resumes)+1)
	resumes = append(resumes, s.state.Resumes...)
	resumes = append(resumes, doc)
	s.state = types.WorkspaceState{Resumes: resumes, CurrentID: doc.Metadata.ID}
	return doc.Metadata.ID, nil
}

// Delete removes the document. If it was current, the current pointer is
// reassigned to the first remaining document, or cleared when the store
// becomes empty. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	resumes := make([]types.ResumeData, 0, len(s.state.Resumes)-1)
	resumes = append(resumes, s.state.Resumes[:idx]...)
	resumes = append(resumes, s.state.Resumes[idx+1:]...)

	current := s.state.CurrentID
	if current == id {
		current = ""
		if len(resumes) > 0 {
			current = resumes[0].Metadata.ID
		}
	}
	s.state = types.WorkspaceState{Resumes: resumes, CurrentID: current}
}

// SwitchCurrent moves the current pointer to id if it exists; otherwise
// the pointer is left unchanged.
func (s *Store) SwitchCurrent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return
	}
	s.state = types.WorkspaceState{Resumes: s.state.Resumes, CurrentID: id}
}

// UpdateMetadata shallow-merges the patch into the document's metadata and
// stamps updatedAt. Content is never touched.
func (s *Store) UpdateMetadata(id string, patch types.MetadataPatch) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		if patch.Title != nil {
			doc.Metadata.Title = *patch.Title
		}
		if patch.Description != nil {
			doc.Metadata.Description = *patch.Description
		}
		if patch.Tags != nil {
			doc.Metadata.Tags = append([]string{}, patch.Tags...)
		}
		return true, nil
	})
}

// SetContent replaces the document's content wholesale.
func (s *Store) SetContent(id string, content types.ResumeContent) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		doc.Content = content.Clone()
		return true, nil
	})
}

// Snapshot returns a deep copy of the full workspace state.
func (s *Store) Snapshot() types.WorkspaceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Documents returns deep copies of every document in display order.
func (s *Store) Documents() []types.ResumeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ResumeData, len(s.state.Resumes))
	for i, r := range s.state.Resumes {
		out[i] = r.Clone()
	}
	return out
}

// Document returns a deep copy of the document with the given id. An empty
// id resolves against the current document.
func (s *Store) Document(id string) (types.ResumeData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(s.resolve(id))
	if idx < 0 {
		return types.ResumeData{}, false
	}
	return s.state.Resumes[idx].Clone(), true
}

// CurrentID returns the current document id, or "" when none is set.
func (s *Store) CurrentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentID
}

// Len returns the number of documents in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Resumes)
}
