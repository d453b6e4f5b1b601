// Package match implements keyword-based skill extraction and heuristic
// job/candidate match scoring.
package match

import (
	"regexp"
	"strings"
)

// Skill is one canonical vocabulary entry. A token is considered present in a
// text when any of its synonyms occurs as a whole word, case-insensitively.
// Weight feeds the scorer; Category feeds focus-area detection.
type Skill struct {
	Token    string
	Synonyms []string
	Weight   float64
	Category string
}

// Vocabulary is the single source of truth for skill tokens, shared by the
// extractor and the scorer so the two can never disagree about what a skill
// is or how much it is worth.
var Vocabulary = []Skill{
	{Token: "aws", Synonyms: []string{"aws", "amazon web services"}, Weight: 10, Category: "cloud"},
	{Token: "azure", Synonyms: []string{"azure", "microsoft azure"}, Weight: 10, Category: "cloud"},
	{Token: "gcp", Synonyms: []string{"gcp", "google cloud"}, Weight: 10, Category: "cloud"},
	{Token: "terraform", Synonyms: []string{"terraform"}, Weight: 9, Category: "infrastructure"},
	{Token: "kubernetes", Synonyms: []string{"kubernetes", "k8s"}, Weight: 9, Category: "infrastructure"},
	{Token: "docker", Synonyms: []string{"docker", "container"}, Weight: 8, Category: "infrastructure"},
	{Token: "devops", Synonyms: []string{"devops"}, Weight: 8, Category: "devops"},
	{Token: "sre", Synonyms: []string{"sre", "site reliability"}, Weight: 8, Category: "devops"},
	{Token: "ci/cd", Synonyms: []string{"ci/cd", "continuous integration", "continuous deployment"}, Weight: 7, Category: "devops"},
	{Token: "python", Synonyms: []string{"python"}, Weight: 6, Category: "language"},
	{Token: "ansible", Synonyms: []string{"ansible"}, Weight: 6, Category: "infrastructure"},
	{Token: "puppet", Synonyms: []string{"puppet"}, Weight: 6, Category: "infrastructure"},
	{Token: "chef", Synonyms: []string{"chef"}, Weight: 6, Category: "infrastructure"},
	{Token: "java", Synonyms: []string{"java"}, Weight: 5, Category: "language"},
	{Token: "linux", Synonyms: []string{"linux", "unix"}, Weight: 5, Category: "systems"},
	{Token: "jenkins", Synonyms: []string{"jenkins"}, Weight: 5, Category: "devops"},
	{Token: "microservices", Synonyms: []string{"microservices"}, Weight: 5, Category: "backend"},
	{Token: "git", Synonyms: []string{"git", "github", "gitlab"}, Weight: 4, Category: "tooling"},
	{Token: "bash", Synonyms: []string{"bash", "shell scripting"}, Weight: 4, Category: "systems"},
	{Token: "javascript", Synonyms: []string{"javascript", "js"}, Weight: 4, Category: "language"},
	{Token: "typescript", Synonyms: []string{"typescript", "ts"}, Weight: 4, Category: "language"},
	{Token: "node", Synonyms: []string{"node", "nodejs", "node.js"}, Weight: 4, Category: "backend"},
	{Token: "api", Synonyms: []string{"api", "rest api", "graphql"}, Weight: 4, Category: "backend"},
	{Token: "sql", Synonyms: []string{"sql", "mysql", "postgresql", "mongodb", "redis"}, Weight: 4, Category: "data"},
	{Token: "react", Synonyms: []string{"react", "react.js"}, Weight: 3, Category: "frontend"},
	{Token: "angular", Synonyms: []string{"angular"}, Weight: 3, Category: "frontend"},
	{Token: "vue", Synonyms: []string{"vue"}, Weight: 3, Category: "frontend"},
	{Token: "django", Synonyms: []string{"django"}, Weight: 3, Category: "backend"},
	{Token: "flask", Synonyms: []string{"flask"}, Weight: 3, Category: "backend"},
	{Token: "spring", Synonyms: []string{"spring", "spring boot"}, Weight: 3, Category: "backend"},
	{Token: "machine learning", Synonyms: []string{"machine learning", "ml"}, Weight: 3, Category: "data"},
	{Token: "kotlin", Synonyms: []string{"kotlin"}, Weight: 3, Category: "mobile"},
	{Token: "swift", Synonyms: []string{"swift"}, Weight: 3, Category: "mobile"},
	{Token: "react native", Synonyms: []string{"react native"}, Weight: 3, Category: "mobile"},
	{Token: "flutter", Synonyms: []string{"flutter"}, Weight: 3, Category: "mobile"},
}

// tokenPatterns maps each token to a compiled whole-word pattern over all of
// its synonyms. Built once at init; the vocabulary is immutable at runtime.
var tokenPatterns = buildPatterns(Vocabulary)

func buildPatterns(vocab []Skill) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(vocab))
	for _, s := range vocab {
		quoted := make([]string, len(s.Synonyms))
		for i, syn := range s.Synonyms {
			quoted[i] = regexp.QuoteMeta(syn)
		}
		patterns[s.Token] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return patterns
}

// WeightOf returns the scorer weight for a token, or the default weight for
// tokens outside the vocabulary.
func WeightOf(token string) float64 {
	for _, s := range Vocabulary {
		if s.Token == token {
			return s.Weight
		}
	}
	return 3
}
