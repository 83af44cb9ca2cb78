package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceState_CloneIsDeep(t *testing.T) {
	state := WorkspaceState{
		Resumes: []ResumeData{{
			Metadata: ResumeMetadata{ID: "resume-1", Title: "A", Tags: []string{"en"}},
			Content:  DefaultContent(),
		}},
		CurrentID: "resume-1",
	}

	clone := state.Clone()
	require.Equal(t, state, clone)

	clone.Resumes[0].Metadata.Title = "mutated"
	clone.Resumes[0].Metadata.Tags[0] = "mutated"
	clone.Resumes[0].Content.Profile.Name = "mutated"

	assert.Equal(t, "A", state.Resumes[0].Metadata.Title)
	assert.Equal(t, "en", state.Resumes[0].Metadata.Tags[0])
	assert.Empty(t, state.Resumes[0].Content.Profile.Name)
}

func TestWorkspaceState_JSONFieldNames(t *testing.T) {
	payload, err := json.Marshal(WorkspaceState{Resumes: []ResumeData{}, CurrentID: "resume-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"resumes": [], "currentResumeId": "resume-1"}`, string(payload))
}

func TestSectionHelpers(t *testing.T) {
	assert.True(t, SectionWorkExperiences.IsListSection())
	assert.True(t, SectionEducations.IsListSection())
	assert.True(t, SectionProjects.IsListSection())
	assert.False(t, SectionSkills.IsListSection())
	assert.False(t, SectionProfile.IsListSection())

	assert.True(t, SectionSkills.IsHeadingSection())
	assert.True(t, SectionCustom.IsHeadingSection())
	assert.False(t, SectionProfile.IsHeadingSection())

	assert.True(t, MoveUp.Valid())
	assert.True(t, MoveDown.Valid())
	assert.False(t, MoveDirection("sideways").Valid())
}
