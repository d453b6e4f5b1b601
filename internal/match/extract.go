package match

import (
	"regexp"
	"strconv"
	"strings"
)

// Experience levels, in scoring priority order.
const (
	LevelSenior = "senior"
	LevelMid    = "mid"
	LevelJunior = "junior"
)

// Experience-year buckets reported by ExperienceYears.
const (
	Years1to2 = "1-2"
	Years3to5 = "3-5"
	Years5to7 = "5-7"
	Years8Up  = "8+"
)

var (
	seniorWords = []string{"senior", "lead", "principal", "staff", "architect", "5+ years", "6+ years", "7+ years", "8+ years"}
	midWords    = []string{"mid-level", "mid level", "intermediate", "3+ years", "4+ years"}
	juniorWords = []string{"junior", "entry", "associate", "graduate", "0-2 years", "1+ years", "2+ years"}

	yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)`)

	actionVerbs = []string{
		"developed", "managed", "led", "created", "built",
		"implemented", "designed", "architected", "delivered",
		"optimized", "improved", "increased", "reduced",
	}

	requirementMarkers = []string{
		"must have", "required", "requirements:", "qualifications:",
		"you have:", "we are looking for",
	}

	importantWords = []string{
		"development", "engineering", "architecture", "design", "implementation",
		"deployment", "infrastructure", "automation", "optimization", "scalability",
		"performance", "security", "reliability", "monitoring", "testing",
		"debugging", "troubleshooting", "collaboration", "leadership",
	}

	sentenceSplit = regexp.MustCompile(`[.!?]+`)
)

// focusArea pairs a coarse domain label with the keywords that signal it.
// Order matters: FocusAreas reports hits in declaration order.
type focusArea struct {
	Name     string
	Keywords []string
}

var focusAreas = []focusArea{
	{"cloud infrastructure", []string{"cloud", "aws", "azure", "gcp", "infrastructure"}},
	{"backend development", []string{"backend", "api", "server", "database"}},
	{"frontend development", []string{"frontend", "react", "angular", "vue", "ui"}},
	{"mobile development", []string{"mobile", "android", "ios", "react native", "flutter"}},
	{"devops", []string{"devops", "ci/cd", "deployment", "automation"}},
	{"data engineering", []string{"data", "etl", "pipeline", "analytics"}},
	{"machine learning", []string{"machine learning", "ai", "ml"}},
	{"security", []string{"security", "secure", "cybersecurity"}},
}

// ExtractSkills returns the vocabulary tokens present in text, in vocabulary
// order. The check is a case-insensitive whole-word membership test: no
// frequency, position, or context sensitivity, so the result is idempotent
// and unaffected by unrelated surrounding text.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, s := range Vocabulary {
		if tokenPatterns[s.Token].MatchString(lower) {
			found = append(found, s.Token)
		}
	}
	return found
}

// SkillSet returns the tokens of text as a set for overlap computations.
func SkillSet(texts ...string) map[string]bool {
	set := make(map[string]bool)
	for _, text := range texts {
		for _, token := range ExtractSkills(text) {
			set[token] = true
		}
	}
	return set
}

// ExperienceLevel infers a single coarse experience level from free text.
// Senior indicators win over mid, mid over junior; "mid" is the default when
// nothing matches.
func ExperienceLevel(text string) string {
	levels := ExperienceLevels(text)
	for _, level := range []string{LevelSenior, LevelMid, LevelJunior} {
		for _, l := range levels {
			if l == level {
				return level
			}
		}
	}
	return LevelMid
}

// ExperienceLevels returns every level a text shows evidence for. A resume
// can legitimately signal more than one (e.g. "senior engineer, previously
// associate"); the scorer checks membership rather than forcing one answer.
// Empty or signal-free text yields ["mid"].
func ExperienceLevels(text string) []string {
	if text == "" {
		return []string{LevelMid}
	}
	lower := strings.ToLower(text)

	var levels []string
	if containsAny(lower, seniorWords) {
		levels = append(levels, LevelSenior)
	}
	if containsAny(lower, midWords) {
		levels = append(levels, LevelMid)
	}
	if containsAny(lower, juniorWords) {
		levels = append(levels, LevelJunior)
	}
	if len(levels) == 0 {
		return []string{LevelMid}
	}
	return levels
}

// ExperienceYears estimates a years-of-experience bucket from resume text.
// A numeric "N years" mention wins; otherwise level words decide; otherwise
// the entry bucket. Empty text gets the neutral middle bucket.
func ExperienceYears(text string) string {
	if text == "" {
		return Years3to5
	}
	lower := strings.ToLower(text)

	if m := yearsPattern.FindStringSubmatch(lower); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case years >= 8:
				return Years8Up
			case years >= 5:
				return Years5to7
			case years >= 3:
				return Years3to5
			default:
				return Years1to2
			}
		}
	}

	switch {
	case strings.Contains(lower, "senior") || strings.Contains(lower, "lead"):
		return Years8Up
	case strings.Contains(lower, "mid"):
		return Years3to5
	default:
		return Years1to2
	}
}

// FocusAreas identifies up to two coarse domain labels a job description
// touches, in fixed declaration order.
func FocusAreas(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var areas []string
	for _, fa := range focusAreas {
		if containsAny(lower, fa.Keywords) {
			areas = append(areas, fa.Name)
			if len(areas) == 2 {
				break
			}
		}
	}
	return areas
}

// Keywords returns the fixed important-word hits found in a job description.
func Keywords(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var keywords []string
	for _, word := range importantWords {
		if strings.Contains(lower, word) {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// KeyRequirements pulls up to five requirement-looking lines from a job
// description: the lines at and shortly after a requirements marker.
func KeyRequirements(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var requirements []string
	for i, line := range lines {
		if !containsAny(strings.ToLower(line), requirementMarkers) {
			continue
		}
		for j := i; j < len(lines) && j < i+10; j++ {
			candidate := strings.TrimSpace(lines[j])
			if len(candidate) > 10 {
				requirements = append(requirements, candidate)
			}
		}
	}
	if len(requirements) > 5 {
		requirements = requirements[:5]
	}
	return requirements
}

// ExperienceSnippets extracts up to five resume sentences that read like
// accomplishments: longer than 15 characters and containing an action verb.
// Sentences keep their original order.
func ExperienceSnippets(text string) []string {
	if text == "" {
		return nil
	}

	var snippets []string
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 15 {
			continue
		}
		if !containsAny(strings.ToLower(sentence), actionVerbs) {
			continue
		}
		snippets = append(snippets, sentence)
		if len(snippets) == 5 {
			break
		}
	}
	return snippets
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
