package generate

import (
	"fmt"
	"strings"
)

// Fallback highlight bullets used when the resume text yields no snippets.
var genericHighlights = []string{
	"• Apply technical skills to solve complex challenges",
	"• Collaborate effectively with team members and stakeholders",
	"• Deliver quality results that meet business objectives",
}

func coverLetter(user *Profile, job *Posting, a analysis) Result {
	skillText := "my technical background and problem-solving abilities"
	if len(a.strong) > 0 {
		skillText = "my strong expertise in " + strings.Join(a.strong, ", ")
	}

	var highlights []string
	limit := len(a.snippets)
	if limit > 3 {
		limit = 3
	}
	for _, snippet := range a.snippets[:limit] {
		highlights = append(highlights, "• "+enhanceSnippet(snippet, a.keywords))
	}
	if len(highlights) == 0 {
		highlights = genericHighlights
	}

	primaryFocus := "technology"
	if len(a.focusAreas) > 0 {
		primaryFocus = a.focusAreas[0]
	}

	var opening string
	if a.title != "" {
		industry := a.industry
		if industry == "" {
			industry = "the industry"
		}
		opening = fmt.Sprintf(
			"As a %s with %s years of experience in %s, I was excited to see the %s position at %s.",
			a.title, a.years, industry, job.Title, job.Company,
		)
	} else {
		opening = fmt.Sprintf(
			"I am writing to express my interest in the %s position at %s. With %s years of experience in %s roles and %s, I am confident I have the qualifications you are seeking.",
			job.Title, job.Company, a.years, a.level, skillText,
		)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", user.FullName)
	fmt.Fprintf(&b, "%s | [Your LinkedIn/Portfolio]\n\n", contactLine(user))
	fmt.Fprintf(&b, "%s\n\n", now().Format("January 2, 2006"))
	fmt.Fprintf(&b, "Hiring Manager\n%s\n[Company Address]\n\n", job.Company)
	b.WriteString("Dear Hiring Manager,\n\n")
	fmt.Fprintf(&b, "%s\n\n", opening)
	fmt.Fprintf(&b, "Throughout my career, I have developed expertise in %s, with particular focus on:\n", primaryFocus)
	fmt.Fprintf(&b, "%s\n\n", strings.Join(highlights, "\n"))
	fmt.Fprintf(&b, "My background aligns well with your requirements, and I am excited by the opportunity to contribute to %s's success. I have consistently demonstrated the ability to:\n\n", job.Company)
	b.WriteString("• Design and implement scalable solutions that meet business objectives\n")
	b.WriteString("• Collaborate effectively with cross-functional teams to deliver projects on time\n")
	b.WriteString("• Continuously learn and adapt to new technologies and methodologies\n\n")
	b.WriteString("I am particularly drawn to this position because of [specific aspect of company/job that interests you].\n\n")
	fmt.Fprintf(&b, "Thank you for considering my application. I have attached my resume for your review and welcome the opportunity to discuss how my skills and experience can benefit %s. I am available for an interview at your earliest convenience.\n\n", job.Company)
	fmt.Fprintf(&b, "Sincerely,\n\n%s", user.FullName)

	return Result{
		Status:            "success",
		Content:           b.String(),
		MatchedSkills:     a.matched,
		MatchedSkillCount: len(a.matched),
		JobSkillCount:     len(a.jobSkills),
		UserSkillCount:    len(a.userSkills),
		ExperienceYears:   a.years,
	}
}
