package match

import "strings"

// NeutralScore is returned when no candidate profile is available. Callers
// must treat it as "no personalization", not as an earned score.
const NeutralScore = 75.0

// Component caps for the weighted sum. The four maxima add up to 100; the
// final clamp exists only as a safety net against misconfigured weights.
const (
	maxSkillPoints    = 50.0
	noSkillsFallback  = 25.0
	maxLevelPoints    = 15.0
	crossSeniorPoints = 12.0
	crossMidPoints    = 10.0
	maxLocationPoints = 20.0
	looseRemotePoints = 15.0
	maxSalaryPoints   = 15.0
	salaryMinPoints   = 10.0
	maxScore          = 100.0
)

// Job holds the posting fields the scorer reads.
type Job struct {
	Description string
	Level       string
	Location    string
	SalaryMin   int
	SalaryMax   int
}

// Candidate holds the profile fields the scorer reads.
type Candidate struct {
	ResumeText         string
	Skills             string
	PreferredLocations string
	DesiredSalaryMin   int
}

// Score computes a 0-100 compatibility score between a job and a candidate
// as a weighted sum of four independent components: skills (0-50), experience
// level (0-15), location (0-20) and salary (0-15). A nil candidate yields
// NeutralScore. The result is a pure function of its inputs.
func Score(job Job, c *Candidate) float64 {
	if c == nil {
		return NeutralScore
	}

	score := skillComponent(job, c) +
		levelComponent(job, c) +
		locationComponent(job, c) +
		salaryComponent(job, c)

	if score > maxScore {
		score = maxScore
	}
	return score
}

// skillComponent awards up to 50 points for weighted skill overlap between
// the job description and the candidate's resume plus skill list. Jobs with
// no recognized tokens get a flat 25 so unparseable postings are not zeroed.
func skillComponent(job Job, c *Candidate) float64 {
	jobSkills := ExtractSkills(job.Description)
	if len(jobSkills) == 0 {
		return noSkillsFallback
	}

	candidateSkills := SkillSet(c.ResumeText, c.Skills)

	var matched, total float64
	for _, token := range jobSkills {
		weight := WeightOf(token)
		total += weight
		if candidateSkills[token] {
			matched += weight
		}
	}

	points := maxSkillPoints * (matched / total)
	if points > maxSkillPoints {
		points = maxSkillPoints
	}
	return points
}

/// levelComponent awards up to 15 points for experience-level agreement: an
// exact match scores full points, senior-family and mid-family near-matches
// score 12 and 10.
func levelComponent(job Job, c *Candidate) float64 {
	jobLevel := strings.ToLower(job.Level)
	levels := ExperienceLevels(c.ResumeText)

	has := func(level string) bool {
		for _, l := range levels {
			if l == level {
				return true
			}
		}
		return false
	}

	switch {
	case has(jobLevel):
		return maxLevelPoints
	case has(LevelSenior) && (jobLevel == "senior" || jobLevel == "lead"):
		return crossSeniorPoints
	case has(LevelMid) && jobLevel == "mid":
		return crossMidPoints
	default:
		return 0
	}
}

// locationComponent awards up to 20 points when one of the candidate's
// comma-separated preferred locations appears in the job's location.
/// Remote-friendliness is special-cased: remote on both sides is a full
// match, a looser remote/anywhere/global preference earns 15.
func locationComponent(job Job, c *Candidate) float64 {
	if c.PreferredLocations == "" || job.Location == "" {
		return 0
	}

	jobLocation := strings.ToLower(job.Location)
	var preferred []string
	for _, loc := range strings.Split(c.PreferredLocations, ",") {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc != "" {
			preferred = append(preferred, loc)
		}
	}

	for _, loc := range preferred {
		if strings.Contains(jobLocation, loc) {
			return maxLocationPoints
		}
	}

	if strings.Contains(jobLocation, "remote") {
		for _, loc := range preferred {
			if strings.Contains(loc, "remote") {
				return maxLocationPoints
			}
		}
	}

	for _, loc := range preferred {
		for _, synonym := range []string{"remote", "anywhere", "global"} {
			if strings.Contains(loc, synonym) {
				return looseRemotePoints
			}
		}
	}

	return 0
}

// salaryComponent awards up to 15 points when the job's salary range clears
// the candidate's minimum: scaled linearly up to double the minimum when the
// job maximum covers it, a flat 10 when only the job minimum does.
func salaryComponent(job Job, c *Candidate) float64 {
	if c.DesiredSalaryMin <= 0 || job.SalaryMax <= 0 {
		return 0
	}

	if job.SalaryMax >= c.DesiredSalaryMin {
		ratio := float64(job.SalaryMax) / float64(c.DesiredSalaryMin)
		if ratio > 2.0 {
			ratio = 2.0
		}
		points := maxSalaryPoints * ratio
		if points > maxSalaryPoints {
			points = maxSalaryPoints
		}
		return points
	}

	if job.SalaryMin > 0 && job.SalaryMin >= c.DesiredSalaryMin {
		return salaryMinPoints
	}

	return 0
}
