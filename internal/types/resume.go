// Package types provides type definitions for the resume documents managed by the workspace.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FeaturedSkillSlots is the fixed number of featured-skill slots per resume.
const FeaturedSkillSlots = 6

// DefaultFeaturedSkillRating is the rating assigned to an untouched skill slot.
const DefaultFeaturedSkillRating = 4

// ResumeProfile holds the identity block at the top of a resume.
// It carries no id of its own; it is replaced wholesale or field by field.
type ResumeProfile struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	URL      string   `json:"url"`
	Summary  []string `json:"summary"`
	Location string   `json:"location"`
	PhotoURL string   `json:"photoUrl"`
}

// ResumeWorkExperience is one entry in the work experience section.
// The ID is assigned at creation and never reassigned.
type ResumeWorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// ResumeEducation is one entry in the education section.
type ResumeEducation struct {
	ID           string   `json:"id"`
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Date         string   `json:"date"`
	GPA          string   `json:"gpa"`
	Descriptions []string `json:"descriptions"`
}

// ResumeProject is one entry in the projects section.
type ResumeProject struct {
	ID           string   `json:"id"`
	Project      string   `json:"project"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// FeaturedSkill is a single skill slot with a 0-5 rating.
type FeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
}

// ResumeSkills holds the fixed-length featured-skill slots plus free-form lines.
type ResumeSkills struct {
	FeaturedSkills []FeaturedSkill `json:"featuredSkills"`
	Descriptions   []string        `json:"descriptions"`
}

// ResumeCustom is the free-form custom section.
type ResumeCustom struct {
	Descriptions []string `json:"descriptions"`
}

// ResumeContent is the body of one resume document. FormHeadings optionally
// overrides section heading labels for this document only, keyed by section
// name (workExperiences, educations, projects, skills, custom).
type ResumeContent struct {
	Profile         ResumeProfile          `json:"profile"`
	WorkExperiences []ResumeWorkExperience `json:"workExperiences"`
	Educations      []ResumeEducation      `json:"educations"`
	Projects        []ResumeProject        `json:"projects"`
	Skills          ResumeSkills           `json:"skills"`
	Custom          ResumeCustom           `json:"custom"`
	FormHeadings    map[string]string      `json:"formHeadings,omitempty"`
}

// DefaultProfile returns an empty profile skeleton.
func DefaultProfile() ResumeProfile {
	return ResumeProfile{Summary: []string{}}
}

// DefaultWorkExperience returns an empty work experience entry with the given id.
func DefaultWorkExperience(id string) ResumeWorkExperience {
	return ResumeWorkExperience{ID: id, Descriptions: []string{}}
}

// DefaultEducation returns an empty education entry with the given id.
func DefaultEducation(id string) ResumeEducation {
	return ResumeEducation{ID: id, Descriptions: []string{}}
}

// DefaultProject returns an empty project entry with the given id.
func DefaultProject(id string) ResumeProject {
	return ResumeProject{ID: id, Descriptions: []string{}}
}

// DefaultSkills returns the default skills record: six empty featured-skill
// slots at the default rating and no description lines.
func DefaultSkills() ResumeSkills {
	slots := make([]FeaturedSkill, FeaturedSkillSlots)
	for i := range slots {
		slots[i] = FeaturedSkill{Rating: DefaultFeaturedSkillRating}
	}
	return ResumeSkills{FeaturedSkills: slots, Descriptions: []string{}}
}

// DefaultContent returns the canonical empty resume body: one empty entry in
// each list section and default skill slots. A fresh value is built on every
// call so callers can never mutate a shared default.
func DefaultContent() ResumeContent {
	return ResumeContent{
		Profile:         DefaultProfile(),
		WorkExperiences: []ResumeWorkExperience{DefaultWorkExperience("initial-work-1")},
		Educations:      []ResumeEducation{DefaultEducation("initial-education-1")},
		Projects:        []ResumeProject{DefaultProject("initial-project-1")},
		Skills:          DefaultSkills(),
		Custom:          ResumeCustom{Descriptions: []string{}},
	}
}

// Clone returns a deep copy of the content. Entry ids are copied verbatim:
// a clone is a snapshot of the source, not a merge target.
func (c ResumeContent) Clone() ResumeContent {
	out := c
	out.Profile.Summary = cloneStrings(c.Profile.Summary)
	out.WorkExperiences = make([]ResumeWorkExperience, len(c.WorkExperiences))
	for i, w := range c.WorkExperiences {
		w.Descriptions = cloneStrings(w.Descriptions)
		out.WorkExperiences[i] = w
	}
	out.Educations = make([]ResumeEducation, len(c.Educations))
	for i, e := range c.Educations {
		e.Descriptions = cloneStrings(e.Descriptions)
		out.Educations[i] = e
	}
	out.Projects = make([]ResumeProject, len(c.Projects))
	for i, p := range c.Projects {
		p.Descriptions = cloneStrings(p.Descriptions)
		out.Projects[i] = p
	}
	out.Skills.FeaturedSkills = make([]FeaturedSkill, len(c.Skills.FeaturedSkills))
	copy(out.Skills.FeaturedSkills, c.Skills.FeaturedSkills)
	out.Skills.Descriptions = cloneStrings(c.Skills.Descriptions)
	out.Custom.Descriptions = cloneStrings(c.Custom.Descriptions)
	if c.FormHeadings != nil {
		out.FormHeadings = make(map[string]string, len(c.FormHeadings))
		for k, v := range c.FormHeadings {
			out.FormHeadings[k] = v
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
