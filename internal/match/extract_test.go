package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_Basic(t *testing.T) {
	text := "Looking for AWS, Kubernetes, Terraform, and Python engineer"

	skills := ExtractSkills(text)

	assert.ElementsMatch(t, []string{"aws", "kubernetes", "terraform", "python"}, skills)
}

func TestExtractSkills_Synonyms(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		token string
	}{
		{"k8s abbreviation", "experience with k8s clusters", "kubernetes"},
		{"amazon web services", "3 years on Amazon Web Services", "aws"},
		{"site reliability", "site reliability engineering team", "sre"},
		{"postgres maps to sql", "schema design in PostgreSQL", "sql"},
		{"node.js", "backend services in Node.js", "node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, ExtractSkills(tt.text), tt.token)
		})
	}
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "javascript" must not produce a "java" hit.
	skills := ExtractSkills("Frontend role: JavaScript and React")

	assert.Contains(t, skills, "javascript")
	assert.NotContains(t, skills, "java")
}

func TestExtractSkills_Empty(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("nothing recognizable here"))
}

func TestExtractSkills_IdempotentAndOrderIndependent(t *testing.T) {
	text := "AWS and Kubernetes and Docker"

	first := ExtractSkills(text)
	second := ExtractSkills(text)
	assert.Equal(t, first, second)

	// Appending unrelated text never removes previously found tokens.
	padded := ExtractSkills(text + " plus a great deal of unrelated prose about offices")
	for _, token := range first {
		assert.Contains(t, padded, token)
	}
}

func TestSkillSet_UnionAndDedup(t *testing.T) {
	set := SkillSet("AWS and Python", "python, terraform")

	assert.True(t, set["aws"])
	assert.True(t, set["python"])
	assert.True(t, set["terraform"])
	assert.Len(t, set, 3)
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"senior words win", "Senior engineer, formerly junior developer", LevelSenior},
		{"principal counts as senior", "Principal architect role", LevelSenior},
		{"mid level", "mid-level backend developer", LevelMid},
		{"junior", "entry level graduate position", LevelJunior},
		{"default mid", "software person", LevelMid},
		{"empty defaults mid", "", LevelMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceLevel(tt.text))
		})
	}
}

func TestExperienceLevels_MultipleSignals(t *testing.T) {
	levels := ExperienceLevels("senior engineer, started as an associate")

	assert.Contains(t, levels, LevelSenior)
	assert.Contains(t, levels, LevelJunior)
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"explicit nine years", "9 years of infrastructure experience", Years8Up},
		{"explicit six years", "6+ years building platforms", Years5to7},
		{"explicit four years", "4 years as a developer", Years3to5},
		{"explicit one year", "1 year internship", Years1to2},
		{"senior fallback", "senior platform engineer", Years8Up},
		{"mid fallback", "mid-level developer", Years3to5},
		{"no signal", "software developer", Years1to2},
		{"empty text", "", Years3to5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceYears(tt.text))
		})
	}
}

func TestFocusAreas_OrderedAndCapped(t *testing.T) {
	text := "Secure cloud infrastructure with backend APIs, CI/CD automation and analytics pipelines"

	areas := FocusAreas(text)

	require.Len(t, areas, 2)
	assert.Equal(t, "cloud infrastructure", areas[0])
	assert.Equal(t, "backend development", areas[1])
}

func TestFocusAreas_Empty(t *testing.T) {
	assert.Empty(t, FocusAreas(""))
	assert.Empty(t, FocusAreas("completely unrelated text"))
}

func TestKeywords(t *testing.T) {
	keywords := Keywords("Infrastructure automation and monitoring at scale")

	assert.Contains(t, keywords, "infrastructure")
	assert.Contains(t, keywords, "automation")
	assert.Contains(t, keywords, "monitoring")
	assert.NotContains(t, keywords, "security")
}

func TestKeyRequirements(t *testing.T) {
	description := "Great team.\nRequirements:\n5+ years with AWS\nKubernetes in production\nok\nStrong Python skills\n"

	reqs := KeyRequirements(description)

	require.NotEmpty(t, reqs)
	assert.Contains(t, reqs, "5+ years with AWS")
	assert.Contains(t, reqs, "Kubernetes in production")
	// Short lines are dropped.
	assert.NotContains(t, reqs, "ok")
	assert.LessOrEqual(t, len(reqs), 5)
}

func TestExperienceSnippets(t *testing.T) {
	resume := "Hello. Developed a deployment pipeline for 40 services. Managed a team of five engineers. Short. I like cats and long walks through data centers."

	snippets := ExperienceSnippets(resume)

	require.Len(t, snippets, 2)
	assert.Equal(t, "Developed a deployment pipeline for 40 services", snippets[0])
	assert.Equal(t, "Managed a team of five engineers", snippets[1])
}

func TestExperienceSnippets_CapAtFive(t *testing.T) {
	resume := "Built service one. Built service two. Built service three. Built service four. Built service five. Built service six."

	assert.Len(t, ExperienceSnippets(resume), 5)
}
