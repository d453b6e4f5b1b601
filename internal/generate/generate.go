// Package generate produces templated application artifacts for a user and a
// job posting: cover letters, tailored resumes, and interview prep sheets.
// Output is deterministic template filling driven by the match package's
// extraction helpers; unavailable fields are emitted as literal bracket
// placeholders so the reader can see what to fill in.
package generate

import (
	"strings"
	"time"

	"github.com/jonathan/job-agent/internal/match"
)

// Kind selects the artifact to generate.
type Kind string

const (
	KindCoverLetter   Kind = "cover_letter"
	KindResume        Kind = "resume"
	KindInterviewPrep Kind = "interview_prep"
)

// Employment carries user-confirmed career facts that override anything
// inferred from resume text.
type Employment struct {
	CurrentTitle    string `json:"current_title"`
	TotalExperience string `json:"total_experience"`
	Industry        string `json:"industry"`
	HighestDegree   string `json:"highest_degree"`
	Certifications  string `json:"certifications"`
}

// Profile is the slice of a user record the generator reads.
type Profile struct {
	FullName   string
	Email      string
	Phone      string
	ResumeText string
	Skills     string
	Summary    string
	Employment *Employment
}

// Posting is the slice of a job record the generator reads.
type Posting struct {
	Title       string
	Company     string
	Location    string
	Description string
}

// Result is the structured outcome of a Generate call. Status is "success"
// or "error"; callers must check it before using Content.
type Result struct {
	Status            string   `json:"status"`
	Error             string   `json:"error,omitempty"`
	Content           string   `json:"content,omitempty"`
	MatchedSkills     []string `json:"matched_skills,omitempty"`
	MatchedSkillCount int      `json:"matched_skills_count"`
	JobSkillCount     int      `json:"jd_skills_count"`
	UserSkillCount    int      `json:"user_skills_count"`
	ExperienceYears   string   `json:"experience_years,omitempty"`
	PrioritizedSkills []string `json:"prioritized_skills,omitempty"`
}

// now is swapped out in tests so cover letters assert exact output.
var now = time.Now

// Generate fills the template for kind from the user and job records. A
// missing user or job yields a Status "error" result, never a panic; every
// other degenerate input degrades to placeholder text.
func Generate(user *Profile, job *Posting, kind Kind) Result {
	if user == nil {
		return Result{Status: "error", Error: "user not found"}
	}
	if job == nil {
		return Result{Status: "error", Error: "job not found"}
	}

	a := analyze(user, job)

	switch kind {
	case KindCoverLetter:
		return coverLetter(user, job, a)
	case KindResume:
		return resume(user, job, a)
	case KindInterviewPrep:
		return interviewPrep(user, job, a)
	default:
		return Result{Status: "error", Error: "unknown generation kind: " + string(kind)}
	}
}

// analysis holds the extraction results shared by all three templates.
type analysis struct {
	userSkills []string
	jobSkills  []string
	matched    []string
	strong     []string

	level      string
	years      string
	title      string
	industry   string
	degree     string
	certs      string
	snippets   []string
	keywords   []string
	focusAreas []string
}

func analyze(user *Profile, job *Posting) analysis {
	userText := user.ResumeText + " " + user.Skills + " " + user.Summary

	a := analysis{
		userSkills: match.ExtractSkills(userText),
		jobSkills:  match.ExtractSkills(job.Description),
		level:      match.ExperienceLevel(user.ResumeText),
		snippets:   match.ExperienceSnippets(user.ResumeText),
		keywords:   match.Keywords(job.Description),
		focusAreas: match.FocusAreas(job.Description),
	}

	jobSet := make(map[string]bool, len(a.jobSkills))
	for _, s := range a.jobSkills {
		jobSet[s] = true
	}
	for _, s := range a.userSkills {
		if jobSet[s] {
			a.matched = append(a.matched, s)
		}
	}
	a.strong = a.matched
	if len(a.strong) > 3 {
		a.strong = a.strong[:3]
	}

	if emp := user.Employment; emp != nil {
		a.years = emp.TotalExperience
		if a.years == "" {
			a.years = "3-5"
		}
		a.title = emp.CurrentTitle
		a.industry = emp.Industry
		a.degree = emp.HighestDegree
		a.certs = emp.Certifications
	} else {
		a.years = match.ExperienceYears(user.ResumeText)
	}

	return a
}

// contactLine renders "email | phone" or a fill-in placeholder when either
// half is missing.
func contactLine(user *Profile) string {
	if user.Email != "" && user.Phone != "" {
		return user.Email + " | " + user.Phone
	}
	return "[Your Contact Information]"
}

// enhanceSnippet appends at most one job keyword to a resume sentence so the
// highlight reads as relevant to the posting.
func enhanceSnippet(snippet string, keywords []string) string {
	lower := strings.ToLower(snippet)

	limit := len(keywords)
	if limit > 2 {
		limit = 2
	}
	for _, kw := range keywords[:limit] {
		if strings.Contains(lower, kw) {
			continue
		}
		if strings.Contains(lower, "developed") || strings.Contains(lower, "built") {
			return snippet + " using " + kw + " technologies"
		}
		if strings.Contains(lower, "managed") || strings.Contains(lower, "led") {
			return snippet + " with focus on " + kw
		}
	}
	return snippet
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
