// Package source aggregates job listings from public job-board APIs and
// bundled sample data into a single normalized feed.
package source

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Job is the normalized listing every fetcher produces.
type Job struct {
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Description string
	ApplyURL    string
	JobType     string
	Level       string
	Salary      string
	SalaryMin   int
	SalaryMax   int
}

// Fetcher retrieves listings from a single source.
type Fetcher interface {
	Name() string
	FetchJobs(ctx context.Context) ([]Job, error)
}

// HTTPError carries the status code of a failed fetch so the retry layer can
// distinguish transient failures, plus any Retry-After hint from the server.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration
	Err        error
}

func (e *HTTPError) Error() string {
	return e.Err.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// parseRetryAfter interprets a Retry-After header value given in seconds.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

var salaryNumber = regexp.MustCompile(`\$?\s*(\d{1,3}(?:,\d{3})+|\d{4,7})`)

// ParseSalaryRange extracts numeric bounds from a free-text salary string
// such as "$130,000 - $160,000". A single number fills both bounds; text
// with no numbers yields zeros.
func ParseSalaryRange(salary string) (min, max int) {
	matches := salaryNumber.FindAllStringSubmatch(salary, 2)
	if len(matches) == 0 {
		return 0, 0
	}

	parse := func(s string) int {
		n, _ := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
		return n
	}

	min = parse(matches[0][1])
	max = min
	if len(matches) > 1 {
		max = parse(matches[1][1])
	}
	if max < min {
		min, max = max, min
	}
	return min, max
}

// externalID builds a stable per-source identifier.
func externalID(source, id string) string {
	return fmt.Sprintf("%s_%s", source, id)
}
