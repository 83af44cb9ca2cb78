package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/types"
)

func TestUpdateProfileField(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	tests := []struct {
		field string
		value string
		get   func(p types.ResumeProfile) string
	}{
		{ProfileFieldName, "Ada Lovelace", func(p types.ResumeProfile) string { return p.Name }},
		{ProfileFieldEmail, "ada@example.com", func(p types.ResumeProfile) string { return p.Email }},
		{ProfileFieldPhone, "555-0100", func(p types.ResumeProfile) string { return p.Phone }},
		{ProfileFieldURL, "https://ada.example.com", func(p types.ResumeProfile) string { return p.URL }},
		{ProfileFieldLocation, "London", func(p types.ResumeProfile) string { return p.Location }},
		{ProfileFieldPhotoURL, "https://ada.example.com/photo.png", func(p types.ResumeProfile) string { return p.PhotoURL }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			require.NoError(t, s.UpdateProfileField(id, tt.field, tt.value))
			doc, _ := s.Document(id)
			assert.Equal(t, tt.value, tt.get(doc.Content.Profile))
		})
	}
}

func TestUpdateProfileField_Unknown(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.UpdateProfileField(id, "nickname", "ada")
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nickname", unknown.Field)
}

func TestUpdateProfileSummary(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	lines := []string{"Pioneer of computing", "Wrote the first program"}
	require.NoError(t, s.UpdateProfileSummary(id, lines))

	doc, _ := s.Document(id)
	assert.Equal(t, lines, doc.Content.Profile.Summary)

	// The caller's slice must not alias store state.
	lines[0] = "changed"
	doc, _ = s.Document(id)
	assert.Equal(t, "Pioneer of computing", doc.Content.Profile.Summary[0])
}

func TestUpdateEntryField(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	require.NoError(t, s.UpdateEntryField(id, types.SectionWorkExperiences, 0, "company", "Analytical Engines Ltd"))
	require.NoError(t, s.UpdateEntryField(id, types.SectionWorkExperiences, 0, "jobTitle", "Engineer"))
	require.NoError(t, s.UpdateEntryField(id, types.SectionEducations, 0, "school", "University of London"))
	require.NoError(t, s.UpdateEntryField(id, types.SectionEducations, 0, "gpa", "4.0"))
	require.NoError(t, s.UpdateEntryField(id, types.SectionProjects, 0, "project", "Difference Engine"))

	doc, _ := s.Document(id)
	assert.Equal(t, "Analytical Engines Ltd", doc.Content.WorkExperiences[0].Company)
	assert.Equal(t, "Engineer", doc.Content.WorkExperiences[0].JobTitle)
	assert.Equal(t, "University of London", doc.Content.Educations[0].School)
	assert.Equal(t, "4.0", doc.Content.Educations[0].GPA)
	assert.Equal(t, "Difference Engine", doc.Content.Projects[0].Project)
}

func TestUpdateEntryField_OutOfRangeFailsFast(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.UpdateEntryField(id, types.SectionWorkExperiences, 5, "company", "x")
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 5, oor.Index)
	assert.Equal(t, 1, oor.Len)

	// The sequence must not have grown.
	doc, _ := s.Document(id)
	assert.Len(t, doc.Content.WorkExperiences, 1)
}

func TestUpdateEntryField_InvalidSection(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.UpdateEntryField(id, types.SectionSkills, 0, "skill", "Go")
	var invalid *InvalidSectionError
	require.ErrorAs(t, err, &invalid)
}

func TestUpdateEntryDescriptions(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	lines := []string{"Designed the engine", "Shipped on time"}
	require.NoError(t, s.UpdateEntryDescriptions(id, types.SectionWorkExperiences, 0, lines))

	doc, _ := s.Document(id)
	assert.Equal(t, lines, doc.Content.WorkExperiences[0].Descriptions)
}

func TestSetFeaturedSkill(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	require.NoError(t, s.SetFeaturedSkill(id, 2, "Go", 5))

	doc, _ := s.Document(id)
	assert.Equal(t, types.FeaturedSkill{Skill: "Go", Rating: 5}, doc.Content.Skills.FeaturedSkills[2])
	// Other slots keep the default.
	assert.Equal(t, types.FeaturedSkill{Rating: types.DefaultFeaturedSkillRating}, doc.Content.Skills.FeaturedSkills[0])
}

func TestSetFeaturedSkill_SlotOutOfRange(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.SetFeaturedSkill(id, types.FeaturedSkillSlots, "Go", 5)
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestSetSkillsAndCustomDescriptions(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	require.NoError(t, s.SetSkillsDescriptions(id, []string{"Go, SQL"}))
	require.NoError(t, s.SetCustomDescriptions(id, []string{"Available from June"}))

	doc, _ := s.Document(id)
	assert.Equal(t, []string{"Go, SQL"}, doc.Content.Skills.Descriptions)
	assert.Equal(t, []string{"Available from June"}, doc.Content.Custom.Descriptions)
}

func TestAddSectionEntry_GeneratesFreshIDs(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	require.NoError(t, s.AddSectionEntry(id, types.SectionWorkExperiences))
	require.NoError(t, s.AddSectionEntry(id, types.SectionWorkExperiences))

	doc, _ := s.Document(id)
	require.Len(t, doc.Content.WorkExperiences, 3)
	ids := map[string]bool{}
	for _, entry := range doc.Content.WorkExperiences {
		assert.NotEmpty(t, entry.ID)
		assert.False(t, ids[entry.ID], "duplicate entry id %s", entry.ID)
		ids[entry.ID] = true
	}
}

func TestAddSectionEntry_SingletonSectionRejected(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.AddSectionEntry(id, types.SectionCustom)
	var invalid *InvalidSectionError
	require.ErrorAs(t, err, &invalid)
}

func entryIDs(entries []types.ResumeProject) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestMoveSectionEntry_UpThenDownRestoresOrder(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")
	require.NoError(t, s.AddSectionEntry(id, types.SectionProjects))
	require.NoError(t, s.AddSectionEntry(id, types.SectionProjects))

	doc, _ := s.Document(id)
	original := entryIDs(doc.Content.Projects)

	require.NoError(t, s.MoveSectionEntry(id, types.SectionProjects, 1, types.MoveUp))
	doc, _ = s.Document(id)
	assert.Equal(t, []string{original[1], original[0], original[2]}, entryIDs(doc.Content.Projects))

	require.NoError(t, s.MoveSectionEntry(id, types.SectionProjects, 0, types.MoveDown))
	doc, _ = s.Document(id)
	assert.Equal(t, original, entryIDs(doc.Content.Projects))
}

func TestMoveSectionEntry_BoundaryIsNoOp(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")
	require.NoError(t, s.AddSectionEntry(id, types.SectionProjects))

	before, _ := s.Document(id)

	require.NoError(t, s.MoveSectionEntry(id, types.SectionProjects, 0, types.MoveUp))
	require.NoError(t, s.MoveSectionEntry(id, types.SectionProjects, 1, types.MoveDown))

	after, _ := s.Document(id)
	assert.Equal(t, before.Content.Projects, after.Content.Projects)
	// A no-op must not stamp updatedAt.
	assert.Equal(t, before.Metadata.UpdatedAt, after.Metadata.UpdatedAt)
}

func TestMoveSectionEntry_OutOfRange(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.MoveSectionEntry(id, types.SectionProjects, 7, types.MoveUp)
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestMoveSectionEntry_InvalidDirection(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.MoveSectionEntry(id, types.SectionProjects, 0, types.MoveDirection("sideways"))
	var invalid *InvalidDirectionError
	require.ErrorAs(t, err, &invalid)
}

func TestDeleteSectionEntry_PreservesRemainingOrder(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")
	require.NoError(t, s.AddSectionEntry(id, types.SectionProjects))
	require.NoError(t, s.AddSectionEntry(id, types.SectionProjects))

	doc, _ := s.Document(id)
	original := entryIDs(doc.Content.Projects)

	require.NoError(t, s.DeleteSectionEntry(id, types.SectionProjects, 1))
	doc, _ = s.Document(id)
	assert.Equal(t, []string{original[0], original[2]}, entryIDs(doc.Content.Projects))
}

func TestDeleteSectionEntry_OutOfRange(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.DeleteSectionEntry(id, types.SectionProjects, 3)
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestSetFormHeading_PerDocument(t *testing.T) {
	s := newTestStore()
	a := s.Create("English")
	b := s.Create("Chinese")

	require.NoError(t, s.SetFormHeading(b, types.SectionWorkExperiences, "工作经历"))

	docA, _ := s.Document(a)
	docB, _ := s.Document(b)
	assert.Nil(t, docA.Content.FormHeadings)
	assert.Equal(t, "工作经历", docB.Content.FormHeadings[string(types.SectionWorkExperiences)])
}

func TestSetFormHeading_ProfileRejected(t *testing.T) {
	s := newTestStore()
	id := s.Create("Draft")

	err := s.SetFormHeading(id, types.SectionProfile, "About")
	var invalid *InvalidSectionError
	require.ErrorAs(t, err, &invalid)
}
