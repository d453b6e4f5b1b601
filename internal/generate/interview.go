package generate

import (
	"fmt"
	"strings"
)

func interviewPrep(user *Profile, job *Posting, a analysis) Result {
	var technical []string
	limit := len(a.matched)
	if limit > 3 {
		limit = 3
	}
	for _, skill := range a.matched[:limit] {
		technical = append(technical,
			fmt.Sprintf("Describe your experience with %s and how you've used it in projects.", skill))
	}
	if len(technical) == 0 {
		technical = append(technical, "What technical skills are you most proficient with?")
	}
	technical = append(technical,
		fmt.Sprintf("How does your background prepare you for %s at %s?", job.Title, job.Company),
		"Tell me about a challenging technical problem you solved.",
	)

	behavioral := []string{
		"Describe a time you worked on a team project.",
		"How do you handle tight deadlines or pressure?",
		"What motivates you in your work?",
	}

	tips := []string{
		fmt.Sprintf("Research %s's products and recent news", job.Company),
		"Prepare examples from your actual experience",
		"Review the job description requirements",
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INTERVIEW PREP: %s at %s\n\n", job.Title, job.Company)
	b.WriteString("TECHNICAL QUESTIONS\n")
	writeNumbered(&b, technical)
	b.WriteString("\nBEHAVIORAL QUESTIONS\n")
	writeNumbered(&b, behavioral)
	b.WriteString("\nPREPARATION TIPS\n")
	for _, tip := range tips {
		fmt.Fprintf(&b, "• %s\n", tip)
	}

	return Result{
		Status:            "success",
		Content:           strings.TrimRight(b.String(), "\n"),
		MatchedSkills:     a.matched,
		MatchedSkillCount: len(a.matched),
		JobSkillCount:     len(a.jobSkills),
		UserSkillCount:    len(a.userSkills),
	}
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}
