// Package export turns resolved resume content into exchange formats
// consumed outside the store: the ordered (heading, entries) section view
// and a markdown rendering built on top of it.
package export

import (
	"github.com/jonathan/resume-workspace/internal/types"
)

// Settings controls section ordering, visibility, and heading labels for
// an export. Per-document formHeadings override HeadingLabels.
type Settings struct {
	SectionOrder       []types.Section
	Visible            map[types.Section]bool
	HeadingLabels      map[types.Section]string
	ShowProfileContact bool
	ShowProfileSummary bool
}

// DefaultSettings returns the canonical configuration: every section
// visible, fixed order profile, work, education, projects, skills, custom,
// and the default English labels.
func DefaultSettings() Settings {
	return Settings{
		SectionOrder: []types.Section{
			types.SectionWorkExperiences,
			types.SectionEducations,
			types.SectionProjects,
			types.SectionSkills,
			types.SectionCustom,
		},
		Visible: map[types.Section]bool{
			types.SectionWorkExperiences: true,
			types.SectionEducations:      true,
			types.SectionProjects:        true,
			types.SectionSkills:          true,
			types.SectionCustom:          true,
		},
		HeadingLabels: map[types.Section]string{
			types.SectionWorkExperiences: "Work Experience",
			types.SectionEducations:      "Education",
			types.SectionProjects:        "Projects",
			types.SectionSkills:          "Skills",
			types.SectionCustom:          "Other",
		},
		ShowProfileContact: true,
		ShowProfileSummary: true,
	}
}

// SectionView is one exported section: its resolved heading label plus the
// entries (or record) it holds. Exactly one of the payload fields is set,
// matching Section.
type SectionView struct {
	Section types.Section
	Heading string

	WorkExperiences []types.ResumeWorkExperience
	Educations      []types.ResumeEducation
	Projects        []types.ResumeProject
	Skills          *types.ResumeSkills
	Custom          *types.ResumeCustom
}

// Sections produces the ordered sequence of visible, content-bearing
// sections for the given content. Heading resolution prefers the
// document's own formHeadings over the settings labels.
func Sections(content types.ResumeContent, settings Settings) []SectionView {
	order := settings.SectionOrder
	if len(order) == 0 {
		order = types.CanonicalSectionOrder
	}

	var out []SectionView
	for _, section := range order {
		if section == types.SectionProfile {
			continue
		}
		if settings.Visible != nil && !settings.Visible[section] {
			continue
		}
		if !hasContent(content, section) {
			continue
		}
		view := SectionView{Section: section, Heading: headingFor(content, settings, section)}
		switch section {
		case types.SectionWorkExperiences:
			view.WorkExperiences = content.WorkExperiences
		case types.SectionEducations:
			view.Educations = content.Educations
		case types.SectionProjects:
			view.Projects = content.Projects
		case types.SectionSkills:
			skills := content.Skills
			view.Skills = &skills
		case types.SectionCustom:
			custom := content.Custom
			view.Custom = &custom
		}
		out = append(out, view)
	}
	return out
}

func headingFor(content types.ResumeContent, settings Settings, section types.Section) string {
	if label, ok := content.FormHeadings[string(section)]; ok && label != "" {
		return label
	}
	return settings.HeadingLabels[section]
}

// hasContent reports whether the section carries anything worth exporting.
// Skeleton entries left empty by the default content are skipped.
func hasContent(content types.ResumeContent, section types.Section) bool {
	switch section {
	case types.SectionWorkExperiences:
		for _, exp := range content.WorkExperiences {
			if exp.Company != "" || exp.JobTitle != "" || exp.Date != "" || len(exp.Descriptions) > 0 {
				return true
			}
		}
	case types.SectionEducations:
		for _, edu := range content.Educations {
			if edu.School != "" || edu.Degree != "" || edu.Date != "" || edu.GPA != "" || len(edu.Descriptions) > 0 {
				return true
			}
		}
	case types.SectionProjects:
		for _, proj := range content.Projects {
			if proj.Project != "" || proj.Date != "" || len(proj.Descriptions) > 0 {
				return true
			}
		}
	case types.SectionSkills:
		for _, slot := range content.Skills.FeaturedSkills {
			if slot.Skill != "" {
				return true
			}
		}
		return len(content.Skills.Descriptions) > 0
	case types.SectionCustom:
		return len(content.Custom.Descriptions) > 0
	}
	return false
}
