package store

import (
	"github.com/jonathan/resume-workspace/internal/types"
)

// Profile field tags accepted by UpdateProfileField.
const (
	ProfileFieldName     = "name"
	ProfileFieldEmail    = "email"
	ProfileFieldPhone    = "phone"
	ProfileFieldURL      = "url"
	ProfileFieldLocation = "location"
	ProfileFieldPhotoURL = "photoUrl"
)

// UpdateProfileField sets one scalar field of the profile. An empty id
// resolves against the current document. The summary field holds a list of
// lines and is updated through UpdateProfileSummary instead.
func (s *Store) UpdateProfileField(id, field, value string) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		switch field {
		case ProfileFieldName:
			doc.Content.Profile.Name = value
		case ProfileFieldEmail:
			doc.Content.Profile.Email = value
		case ProfileFieldPhone:
			doc.Content.Profile.Phone = value
		case ProfileFieldURL:
			doc.Content.Profile.URL = value
		case ProfileFieldLocation:
			doc.Content.Profile.Location = value
		case ProfileFieldPhotoURL:
			doc.Content.Profile.PhotoURL = value
		default:
			return false, &UnknownFieldError{Section: types.SectionProfile, Field: field}
		}
		return true, nil
	})
}

// UpdateProfileSummary replaces the profile's ordered summary lines.
func (s *Store) UpdateProfileSummary(id string, lines []string) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		doc.Content.Profile.Summary = append([]string{}, lines...)
		return true, nil
	})
}

// UpdateEntryField sets one scalar field of the entry at index idx in a
// list section. Out-of-range indexes fail fast with IndexOutOfRangeError;
// an index desync between caller and store must never grow the sequence.
func (s *Store) UpdateEntryField(id string, section types.Section, idx int, field, value string) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		switch section {
		case types.SectionWorkExperiences:
			if idx < 0 || idx >= len(doc.Content.WorkExperiences) {
				return false, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.WorkExperiences)}
			}
			entry := &doc.Content.WorkExperiences[idx]
			switch field {
			case "company":
				entry.Company = value
			case "jobTitle":
				entry.JobTitle = value
			case "date":
				entry.Date = value
			default:
				return false, &UnknownFieldError{Section: section, Field: field}
			}
		case types.SectionEducations:
			if idx < 0 || idx >= len(doc.Content.Educations) {
				return false, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.Educations)}
			}
			entry := &doc.Content.Educations[idx]
			switch field {
			case "school":
				entry.School = value
			case "degree":
				entry.Degree = value
			case "gpa":
				entry.GPA = value
			case "date":
				entry.Date = value
			default:
				return false, &UnknownFieldError{Section: section, Field: field}
			}
		case types.SectionProjects:
			if idx < 0 || idx >= len(doc.Content.Projects) {
				return false, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.Projects)}
			}
			entry := &doc.Content.Projects[idx]
			switch field {
			case "project":
				entry.Project = value
			case "date":
				entry.Date = value
			default:
				return false, &UnknownFieldError{Section: section, Field: field}
			}
		default:
			return false, &InvalidSectionError{Section: section, Op: "entry field update"}
		}
		return true, nil
	})
}

// UpdateEntryDescriptions replaces the description lines of the entry at
// index idx in a list section.
func (s *Store) UpdateEntryDescriptions(id string, section types.Section, idx int, lines []string) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		descs, err := entryDescriptions(doc, section, idx)
		if err != nil {
			return false, err
		}
		*descs = append([]string{}, lines...)
		return true, nil
	})
}

func entryDescriptions(doc *types.ResumeData, section types.Section, idx int) (*[]string, error) {
	switch section {
	case types.SectionWorkExperiences:
		if idx < 0 || idx >= len(doc.Content.WorkExperiences) {
			return nil, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.WorkExperiences)}
		}
		return &doc.Content.WorkExperiences[idx].Descriptions, nil
	case types.SectionEducations:
		if idx < 0 || idx >= len(doc.Content.Educations) {
			return nil, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.Educations)}
		}
		return &doc.Content.Educations[idx].Descriptions, nil
	case types.SectionProjects:
		if idx < 0 || idx >= len(doc.Content.Projects) {
			return nil, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.Projects)}
		}
		return &doc.Content.Projects[idx].Descriptions, nil
	}
	return nil, &InvalidSectionError{Section: section, Op: "descriptions update"}
}

// SetFeaturedSkill sets the name and rating of one featured-skill slot.
// The slots are fixed-length; an index outside them fails fast.
func (s *Store) SetFeaturedSkill(id string, idx int, skill string, rating int) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		slots := doc.Content.Skills.FeaturedSkills
		if idx < 0 || idx >= len(slots) {
			return false, &IndexOutOfRangeError{Section: types.SectionSkills, Index: idx, Len: len(slots)}
		}
		slots[idx] = types.FeaturedSkill{Skill: skill, Rating: rating}
		return true, nil
	})
}

// SetSkillsDescriptions replaces the skills section's free-form lines.
func (s *Store) SetSkillsDescriptions(id string, lines []string) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		doc.Content.Skills.Descriptions = append([]string{}, lines...)
		return true, nil
	})
}

// SetCustomDescriptions replaces the custom section's lines.
func (s *Store) SetCustomDescriptions(id string, lines []string) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		doc.Content.Custom.Descriptions = append([]string{}, lines...)
		return true, nil
	})
}

// AddSectionEntry appends a new empty entry with a freshly generated id to
// a list section.
func (s *Store) AddSectionEntry(id string, section types.Section) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		switch section {
		case types.SectionWorkExperiences:
			doc.Content.WorkExperiences = append(doc.Content.WorkExperiences, types.DefaultWorkExperience(s.ids.NewID("work")))
		case types.SectionEducations:
			doc.Content.Educations = append(doc.Content.Educations, types.DefaultEducation(s.ids.NewID("education")))
		case types.SectionProjects:
			doc.Content.Projects = append(doc.Content.Projects, types.DefaultProject(s.ids.NewID("project")))
		default:
			return false, &InvalidSectionError{Section: section, Op: "entry append"}
		}
		return true, nil
	})
}

// MoveSectionEntry swaps the entry at idx with its neighbor in the given
// direction. Moving index 0 up or the last index down is a benign no-op:
// the sequence and the document's updatedAt are left untouched.
func (s *Store) MoveSectionEntry(id string, section types.Section, idx int, direction types.MoveDirection) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		if !direction.Valid() {
			return false, &InvalidDirectionError{Direction: direction}
		}
		length, swap, err := sectionSwapper(doc, section)
		if err != nil {
			return false, err
		}
		if idx < 0 || idx >= length {
			return false, &IndexOutOfRangeError{Section: section, Index: idx, Len: length}
		}
		if (idx == 0 && direction == types.MoveUp) || (idx == length-1 && direction == types.MoveDown) {
			return false, nil
		}
		if direction == types.MoveUp {
			swap(idx, idx-1)
		} else {
			swap(idx, idx+1)
		}
		return true, nil
	})
}

func sectionSwapper(doc *types.ResumeData, section types.Section) (int, func(i, j int), error) {
	switch section {
	case types.SectionWorkExperiences:
		entries := doc.Content.WorkExperiences
		return len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] }, nil
	case types.SectionEducations:
		entries := doc.Content.Educations
		return len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] }, nil
	case types.SectionProjects:
		entries := doc.Content.Projects
		return len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] }, nil
	}
	return 0, nil, &InvalidSectionError{Section: section, Op: "entry reorder"}
}

// DeleteSectionEntry removes the entry at idx; later entries shift down by
// one position, keeping their relative order.
func (s *Store) DeleteSectionEntry(id string, section types.Section, idx int) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		switch section {
		case types.SectionWorkExperiences:
			if idx < 0 || idx >= len(doc.Content.WorkExperiences) {
				return false, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.WorkExperiences)}
			}
			doc.Content.WorkExperiences = append(doc.Content.WorkExperiences[:idx], doc.Content.WorkExperiences[idx+1:]...)
		case types.SectionEducations:
			if idx < 0 || idx >= len(doc.Content.Educations) {
				return false, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.Educations)}
			}
			doc.Content.Educations = append(doc.Content.Educations[:idx], doc.Content.Educations[idx+1:]...)
		case types.SectionProjects:
			if idx < 0 || idx >= len(doc.Content.Projects) {
				return false, &IndexOutOfRangeError{Section: section, Index: idx, Len: len(doc.Content.Projects)}
			}
			doc.Content.Projects = append(doc.Content.Projects[:idx], doc.Content.Projects[idx+1:]...)
		default:
			return false, &InvalidSectionError{Section: section, Op: "entry delete"}
		}
		return true, nil
	})
}

// SetFormHeading sets or creates this document's heading override for one
// section, leaving every other document's headings alone.
func (s *Store) SetFormHeading(id string, section types.Section, heading string) error {
	return s.mutate(id, func(doc *types.ResumeData) (bool, error) {
		if !section.IsHeadingSection() {
			return false, &InvalidSectionError{Section: section, Op: "heading override"}
		}
		if doc.Content.FormHeadings == nil {
			doc.Content.FormHeadings = map[string]string{}
		}
		doc.Content.FormHeadings[string(section)] = heading
		return true, nil
	})
}
