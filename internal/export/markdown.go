package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-workspace/internal/types"
)

// Markdown renders resolved resume content as a markdown document:
// name heading, contact list, summary, then each visible section in the
// configured order.
func Markdown(content types.ResumeContent, settings Settings) string {
	var lines []string

	profile := content.Profile
	if profile.Name != "" {
		lines = append(lines, "# "+profile.Name)
	}

	var contact []string
	if profile.Email != "" {
		contact = append(contact, "- Email: "+profile.Email)
	}
	if profile.Phone != "" {
		contact = append(contact, "- Phone: "+profile.Phone)
	}
	if profile.URL != "" {
		contact = append(contact, "- Website: "+profile.URL)
	}
	if profile.Location != "" {
		contact = append(contact, "- Location: "+profile.Location)
	}
	if settings.ShowProfileContact && len(contact) > 0 {
		lines = append(lines, "", "## Contact")
		lines = append(lines, contact...)
	}

	if settings.ShowProfileSummary && len(profile.Summary) > 0 {
		lines = append(lines, "", "## Summary")
		for _, s := range profile.Summary {
			if s != "" {
				lines = append(lines, "- "+s)
			}
		}
	}

	for _, view := range Sections(content, settings) {
		lines = append(lines, "", "## "+view.Heading)
		lines = append(lines, sectionLines(view)...)
	}

	lines = append(lines, "", "")
	return strings.Join(lines, "\n")
}

func sectionLines(view SectionView) []string {
	var lines []string
	switch {
	case view.WorkExperiences != nil:
		for _, exp := range view.WorkExperiences {
			title := joinNonEmpty(", ", exp.JobTitle, exp.Company)
			if title != "" {
				lines = append(lines, "### "+title)
			}
			if exp.Date != "" {
				lines = append(lines, fmt.Sprintf("_Date: %s_", exp.Date))
			}
			lines = append(lines, bulletLines(exp.Descriptions)...)
		}
	case view.Educations != nil:
		for _, edu := range view.Educations {
			title := joinNonEmpty(", ", edu.Degree, edu.School)
			if title != "" {
				lines = append(lines, "### "+title)
			}
			var meta []string
			if edu.Date != "" {
				meta = append(meta, "Date: "+edu.Date)
			}
			if edu.GPA != "" {
				meta = append(meta, "GPA: "+edu.GPA)
			}
			if len(meta) > 0 {
				lines = append(lines, "_"+strings.Join(meta, " | ")+"_")
			}
			lines = append(lines, bulletLines(edu.Descriptions)...)
		}
	case view.Projects != nil:
		for _, proj := range view.Projects {
			if proj.Project != "" {
				lines = append(lines, "### "+proj.Project)
			}
			if proj.Date != "" {
				lines = append(lines, fmt.Sprintf("_Date: %s_", proj.Date))
			}
			lines = append(lines, bulletLines(proj.Descriptions)...)
		}
	case view.Skills != nil:
		var featured []string
		for _, slot := range view.Skills.FeaturedSkills {
			if slot.Skill == "" {
				continue
			}
			if slot.Rating > 0 {
				featured = append(featured, fmt.Sprintf("%s (%d/5)", slot.Skill, slot.Rating))
			} else {
				featured = append(featured, slot.Skill)
			}
		}
		if len(featured) > 0 {
			lines = append(lines, "- Featured Skills: "+strings.Join(featured, ", "))
		}
		lines = append(lines, bulletLines(view.Skills.Descriptions)...)
	case view.Custom != nil:
		lines = append(lines, bulletLines(view.Custom.Descriptions)...)
	}
	return lines
}

func bulletLines(descriptions []string) []string {
	var lines []string
	for _, d := range descriptions {
		if d != "" {
			lines = append(lines, "- "+d)
		}
	}
	return lines
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
