package generate

import (
	"fmt"
	"strings"
)

func resume(user *Profile, job *Posting, a analysis) Result {
	prioritized := prioritizeSkills(a.userSkills, a.jobSkills)

	summary := user.Summary
	if summary != "" {
		summary = enhanceSummary(summary, job.Title, a)
	} else {
		role := a.title
		if role == "" {
			role = "professional"
		}
		industry := a.industry
		if industry == "" {
			industry = "technology"
		}
		summary = fmt.Sprintf("Experienced %s with %s years in %s. Seeking %s position.",
			role, a.years, industry, job.Title)
	}

	var skillLines []string
	limit := len(prioritized)
	if limit > 15 {
		limit = 15
	}
	for _, skill := range prioritized[:limit] {
		skillLines = append(skillLines, "• "+titleCase(skill))
	}
	if len(skillLines) == 0 {
		skillLines = []string{"• [Your Key Skills]"}
	}

	var expLines []string
	snippetLimit := len(a.snippets)
	if snippetLimit > 3 {
		snippetLimit = 3
	}
	for _, snippet := range a.snippets[:snippetLimit] {
		expLines = append(expLines, "• "+enhanceSnippet(snippet, a.keywords))
	}
	if len(expLines) == 0 {
		expLines = []string{
			"• Gained valuable experience in relevant technical domains",
			"• Developed problem-solving and collaboration skills",
			"• Demonstrated ability to learn and adapt quickly",
		}
	}

	education := "• [Your Degree/Education]"
	if a.degree != "" {
		education = "• " + a.degree
	}
	if a.certs != "" {
		education += "\n• Certifications: " + a.certs
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", user.FullName, contactLine(user))
	b.WriteString("[LinkedIn Profile URL] | [Portfolio/GitHub URL]\n\n")
	fmt.Fprintf(&b, "PROFESSIONAL SUMMARY\n%s\n\n", summary)
	fmt.Fprintf(&b, "TECHNICAL SKILLS\n%s\n\n", strings.Join(skillLines, "\n"))
	fmt.Fprintf(&b, "PROFESSIONAL EXPERIENCE\n%s\n\n", strings.Join(expLines, "\n"))
	fmt.Fprintf(&b, "EDUCATION & CERTIFICATIONS\n%s\n\n", education)
	fmt.Fprintf(&b, "PROJECTS & ACHIEVEMENTS\n• [Highlight key projects or achievements relevant to %s]\n\n", job.Title)
	fmt.Fprintf(&b, "TAILORED FOR: %s\nSKILLS MATCH: %d out of %d required skills", job.Title, len(a.matched), len(a.jobSkills))

	top := prioritized
	if len(top) > 10 {
		top = top[:10]
	}

	return Result{
		Status:            "success",
		Content:           b.String(),
		MatchedSkills:     a.matched,
		MatchedSkillCount: len(a.matched),
		JobSkillCount:     len(a.jobSkills),
		UserSkillCount:    len(a.userSkills),
		ExperienceYears:   a.years,
		PrioritizedSkills: top,
	}
}

// prioritizeSkills orders the user's skills with job-required tokens first,
// preserving extraction order within each group.
func prioritizeSkills(userSkills, jobSkills []string) []string {
	userSet := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		userSet[s] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, s := range jobSkills {
		if userSet[s] && !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	for _, s := range userSkills {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}

// enhanceSummary prefixes role/goal context when the summary does not already
// mention the job title, and folds in one missing job keyword.
func enhanceSummary(summary, jobTitle string, a analysis) string {
	enhanced := summary

	if !strings.Contains(strings.ToLower(summary), strings.ToLower(jobTitle)) {
		role := a.title
		if role == "" {
			role = "professional"
		}
		enhanced = fmt.Sprintf("Experienced %s with %s years seeking %s position. %s",
			role, a.years, jobTitle, enhanced)
	}

	lower := strings.ToLower(enhanced)
	kwLimit := len(a.keywords)
	if kwLimit > 2 {
		kwLimit = 2
	}
	for _, kw := range a.keywords[:kwLimit] {
		if !strings.Contains(lower, kw) {
			enhanced += " Strong background in " + kw + "."
			break
		}
	}
	return enhanced
}
