package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-workspace/internal/types"
)

func TestMarkdown_FullDocument(t *testing.T) {
	content := sampleContent()
	content.Profile.Email = "ada@example.com"
	content.Profile.Location = "London"
	content.Profile.Summary = []string{"Pioneer of computing"}
	content.WorkExperiences[0].Date = "1842 - 1843"
	content.WorkExperiences[0].Descriptions = []string{"Wrote the first published program"}
	content.Skills.FeaturedSkills[0] = types.FeaturedSkill{Skill: "Mathematics", Rating: 5}

	md := Markdown(content, DefaultSettings())

	assert.True(t, strings.HasPrefix(md, "# Ada Lovelace\n"))
	assert.Contains(t, md, "## Contact\n- Email: ada@example.com\n- Location: London")
	assert.Contains(t, md, "## Summary\n- Pioneer of computing")
	assert.Contains(t, md, "## Work Experience\n### Engineer, Analytical Engines Ltd\n_Date: 1842 - 1843_\n- Wrote the first published program")
	assert.Contains(t, md, "- Featured Skills: Mathematics (5/5)")
	assert.Contains(t, md, "## Other\n- Available from June")
	assert.True(t, strings.HasSuffix(md, "\n"))
}

func TestMarkdown_ContactAndSummaryToggles(t *testing.T) {
	content := sampleContent()
	content.Profile.Email = "ada@example.com"
	content.Profile.Summary = []string{"Pioneer of computing"}

	settings := DefaultSettings()
	settings.ShowProfileContact = false
	settings.ShowProfileSummary = false

	md := Markdown(content, settings)
	assert.NotContains(t, md, "## Contact")
	assert.NotContains(t, md, "## Summary")
}

func TestMarkdown_EmptyContent(t *testing.T) {
	md := Markdown(types.DefaultContent(), DefaultSettings())
	assert.Equal(t, "\n", md)
}

func TestMarkdown_UnratedFeaturedSkill(t *testing.T) {
	content := types.DefaultContent()
	content.Skills.FeaturedSkills[0] = types.FeaturedSkill{Skill: "Go"}

	md := Markdown(content, DefaultSettings())
	assert.Contains(t, md, "- Featured Skills: Go\n")
	assert.NotContains(t, md, "(0/5)")
}

func TestMarkdown_EducationMetaLine(t *testing.T) {
	content := types.DefaultContent()
	content.Educations[0] = types.ResumeEducation{
		ID:     "edu-1",
		School: "University of London",
		Degree: "BSc Mathematics",
		Date:   "1840",
		GPA:    "4.0",
	}

	md := Markdown(content, DefaultSettings())
	assert.Contains(t, md, "### BSc Mathematics, University of London\n_Date: 1840 | GPA: 4.0_")
}

func TestMarkdown_HeadingOverride(t *testing.T) {
	content := sampleContent()
	content.FormHeadings = map[string]string{string(types.SectionCustom): "Notes"}

	md := Markdown(content, DefaultSettings())
	assert.Contains(t, md, "## Notes\n- Available from June")
	assert.NotContains(t, md, "## Other")
}
