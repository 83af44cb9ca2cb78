package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/types"
)

func importDoc(id, title string) types.ResumeData {
	return types.ResumeData{
		Metadata: types.ResumeMetadata{
			ID:        id,
			Title:     title,
			CreatedAt: "2024-01-01T00:00:00.000Z",
			UpdatedAt: "2024-01-01T00:00:00.000Z",
		},
		Content: types.DefaultContent(),
	}
}

func TestImportDocuments_CollisionKeepsBoth(t *testing.T) {
	s := newTestStore()
	existing := s.Create("Mine")

	before, _ := s.Document(existing)

	ids := s.ImportDocuments([]types.ResumeData{importDoc(existing, "Theirs")})
	require.Len(t, ids, 1)
	assert.NotEqual(t, existing, ids[0])
	assert.Equal(t, 2, s.Len())

	// The resident document is untouched.
	after, _ := s.Document(existing)
	assert.Equal(t, before, after)

	imported, ok := s.Document(ids[0])
	require.True(t, ok)
	assert.Equal(t, "Theirs", imported.Metadata.Title)
}

func TestImportDocuments_IntraBatchCollision(t *testing.T) {
	s := newTestStore()

	ids := s.ImportDocuments([]types.ResumeData{
		importDoc("resume-dup", "First"),
		importDoc("resume-dup", "Second"),
	})
	require.Len(t, ids, 2)
	assert.Equal(t, "resume-dup", ids[0])
	assert.NotEqual(t, ids[0], ids[1])
	assert.Equal(t, 2, s.Len())
}

func TestImportDocuments_EmptyIDRegenerated(t *testing.T) {
	s := newTestStore()

	ids := s.ImportDocuments([]types.ResumeData{importDoc("", "Untitled")})
	require.Len(t, ids, 1)
	assert.NotEmpty(t, ids[0])
}

func TestImportDocuments_OrderAndCurrentPreserved(t *testing.T) {
	s := newTestStore()
	resident := s.Create("Mine")

	ids := s.ImportDocuments([]types.ResumeData{
		importDoc("resume-a", "A"),
		importDoc("resume-b", "B"),
	})

	assert.Equal(t, resident, s.CurrentID())

	docs := s.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, resident, docs[0].Metadata.ID)
	assert.Equal(t, ids[0], docs[1].Metadata.ID)
	assert.Equal(t, ids[1], docs[2].Metadata.ID)
}

func TestImportDocuments_DoesNotAliasBatch(t *testing.T) {
	s := newTestStore()

	batch := []types.ResumeData{importDoc("resume-a", "A")}
	batch[0].Content.Profile.Name = "Ada"
	ids := s.ImportDocuments(batch)

	batch[0].Content.Profile.Name = "changed after import"
	doc, _ := s.Document(ids[0])
	assert.Equal(t, "Ada", doc.Content.Profile.Name)
}

func TestImportDocuments_NilTagsNormalized(t *testing.T) {
	s := newTestStore()

	doc := importDoc("resume-a", "A")
	doc.Metadata.Tags = nil
	ids := s.ImportDocuments([]types.ResumeData{doc})

	stored, _ := s.Document(ids[0])
	assert.Equal(t, []string{}, stored.Metadata.Tags)
}

func TestReplaceAll_RoundTrip(t *testing.T) {
	src := newTestStore()
	a := src.Create("A")
	src.Create("B")
	require.NoError(t, src.UpdateProfileField(a, ProfileFieldName, "Ada"))
	src.SwitchCurrent(a)

	snapshot := src.Snapshot()

	dst := newTestStore()
	dst.Create("Throwaway")
	require.NoError(t, dst.ReplaceAll(snapshot))

	assert.Equal(t, snapshot, dst.Snapshot())
	assert.Equal(t, a, dst.CurrentID())
}

func TestReplaceAll_RejectsDuplicateIDs(t *testing.T) {
	s := newTestStore()
	err := s.ReplaceAll(types.WorkspaceState{
		Resumes: []types.ResumeData{importDoc("resume-a", "A"), importDoc("resume-a", "B")},
	})
	var invalid *InvalidStateError
	require.ErrorAs(t, err, &invalid)
}

func TestReplaceAll_RejectsEmptyID(t *testing.T) {
	s := newTestStore()
	err := s.ReplaceAll(types.WorkspaceState{
		Resumes: []types.ResumeData{importDoc("", "A")},
	})
	var invalid *InvalidStateError
	require.ErrorAs(t, err, &invalid)
}

func TestReplaceAll_RejectsDanglingCurrent(t *testing.T) {
	s := newTestStore()
	before := s.Create("Keep")

	err := s.ReplaceAll(types.WorkspaceState{
		Resumes:   []types.ResumeData{importDoc("resume-a", "A")},
		CurrentID: "resume-missing",
	})
	var invalid *InvalidStateError
	require.ErrorAs(t, err, &invalid)

	// A rejected state leaves the store unchanged.
	assert.Equal(t, before, s.CurrentID())
	assert.Equal(t, 1, s.Len())
}

func TestReplaceAll_EmptyStateAllowed(t *testing.T) {
	s := newTestStore()
	s.Create("Gone")

	require.NoError(t, s.ReplaceAll(types.WorkspaceState{}))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.CurrentID())
	assert.NotNil(t, s.Snapshot().Resumes)
}
