package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/types"
)

func sampleContent() types.ResumeContent {
	content := types.DefaultContent()
	content.Profile.Name = "Ada Lovelace"
	content.WorkExperiences[0].Company = "Analytical Engines Ltd"
	content.WorkExperiences[0].JobTitle = "Engineer"
	content.Educations[0].School = "University of London"
	content.Projects[0].Project = "Difference Engine"
	content.Skills.Descriptions = []string{"Go", "SQL"}
	content.Custom.Descriptions = []string{"Available from June"}
	return content
}

func sectionOrder(views []SectionView) []types.Section {
	out := make([]types.Section, len(views))
	for i, v := range views {
		out[i] = v.Section
	}
	return out
}

func TestSections_DefaultOrder(t *testing.T) {
	views := Sections(sampleContent(), DefaultSettings())

	assert.Equal(t, []types.Section{
		types.SectionWorkExperiences,
		types.SectionEducations,
		types.SectionProjects,
		types.SectionSkills,
		types.SectionCustom,
	}, sectionOrder(views))
}

func TestSections_CustomOrder(t *testing.T) {
	settings := DefaultSettings()
	settings.SectionOrder = []types.Section{
		types.SectionSkills,
		types.SectionWorkExperiences,
	}

	views := Sections(sampleContent(), settings)
	assert.Equal(t, []types.Section{
		types.SectionSkills,
		types.SectionWorkExperiences,
	}, sectionOrder(views))
}

func TestSections_VisibilityFilter(t *testing.T) {
	settings := DefaultSettings()
	settings.Visible[types.SectionProjects] = false

	views := Sections(sampleContent(), settings)
	assert.NotContains(t, sectionOrder(views), types.SectionProjects)
}

func TestSections_EmptySectionsSkipped(t *testing.T) {
	// The untouched default skeleton carries no exportable content.
	views := Sections(types.DefaultContent(), DefaultSettings())
	assert.Empty(t, views)
}

func TestSections_ProfileNeverListed(t *testing.T) {
	settings := DefaultSettings()
	settings.SectionOrder = append([]types.Section{types.SectionProfile}, settings.SectionOrder...)

	views := Sections(sampleContent(), settings)
	assert.NotContains(t, sectionOrder(views), types.SectionProfile)
}

func TestSections_HeadingOverridePreferred(t *testing.T) {
	content := sampleContent()
	content.FormHeadings = map[string]string{
		string(types.SectionWorkExperiences): "Employment History",
	}

	views := Sections(content, DefaultSettings())
	require.NotEmpty(t, views)
	assert.Equal(t, "Employment History", views[0].Heading)
	// Sections without an override keep the settings label.
	assert.Equal(t, "Education", views[1].Heading)
}

func TestSections_EmptyOverrideIgnored(t *testing.T) {
	content := sampleContent()
	content.FormHeadings = map[string]string{
		string(types.SectionWorkExperiences): "",
	}

	views := Sections(content, DefaultSettings())
	require.NotEmpty(t, views)
	assert.Equal(t, "Work Experience", views[0].Heading)
}

func TestSections_FeaturedSkillAloneCountsAsContent(t *testing.T) {
	content := types.DefaultContent()
	content.Skills.FeaturedSkills[0].Skill = "Go"

	views := Sections(content, DefaultSettings())
	require.Len(t, views, 1)
	assert.Equal(t, types.SectionSkills, views[0].Section)
}
