package types

// Section names one of the resume's content sections. The string values
// double as the keys of the interchange payload and of FormHeadings.
type Section string

// Section name constants.
const (
	SectionProfile         Section = "profile"
	SectionWorkExperiences Section = "workExperiences"
	SectionEducations      Section = "educations"
	SectionProjects        Section = "projects"
	SectionSkills          Section = "skills"
	SectionCustom          Section = "custom"
)

// CanonicalSectionOrder is the fixed default ordering of sections:
// profile, work, education, projects, skills, custom.
var CanonicalSectionOrder = []Section{
	SectionProfile,
	SectionWorkExperiences,
	SectionEducations,
	SectionProjects,
	SectionSkills,
	SectionCustom,
}

// ListSections are the sections holding an ordered sequence of entries.
var ListSections = []Section{
	SectionWorkExperiences,
	SectionEducations,
	SectionProjects,
}

// IsListSection reports whether s holds an ordered sequence of entries
// (as opposed to the singleton profile/skills/custom records).
func (s Section) IsListSection() bool {
	switch s {
	case SectionWorkExperiences, SectionEducations, SectionProjects:
		return true
	}
	return false
}

// IsHeadingSection reports whether s may carry a per-document heading
// override. The profile block has no heading of its own.
func (s Section) IsHeadingSection() bool {
	switch s {
	case SectionWorkExperiences, SectionEducations, SectionProjects, SectionSkills, SectionCustom:
		return true
	}
	return false
}

// MoveDirection is the direction of an entry reorder.
type MoveDirection string

// Move directions.
const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// Valid reports whether d is a known direction.
func (d MoveDirection) Valid() bool {
	return d == MoveUp || d == MoveDown
}
