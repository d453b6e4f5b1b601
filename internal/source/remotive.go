package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const remotiveBaseURL = "https://remotive.com/api/remote-jobs"

type remotiveJob struct {
	ID                        int64  `json:"id"`
	URL                       string `json:"url"`
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	Salary                    string `json:"salary"`
	Description               string `json:"description"`
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

// RemotiveFetcher fetches software-dev listings from the Remotive API.
type RemotiveFetcher struct {
	baseURL string
	client  *http.Client
}

// NewRemotiveFetcher creates a fetcher backed by the given HTTP client.
func NewRemotiveFetcher(client *http.Client) *RemotiveFetcher {
	return &RemotiveFetcher{baseURL: remotiveBaseURL, client: client}
}

func (f *RemotiveFetcher) Name() string { return "remotive" }

// FetchJobs retrieves up to 20 listings and normalizes them.
func (f *RemotiveFetcher) FetchJobs(ctx context.Context) ([]Job, error) {
	url := f.baseURL + "?category=software-dev&limit=20"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remotive fetch: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remotive fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("remotive fetch: unexpected status %d", resp.StatusCode),
		}
	}

	var payload remotiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("remotive fetch: %w", err)
	}

	jobs := make([]Job, 0, len(payload.Jobs))
	for _, rj := range payload.Jobs {
		location := rj.CandidateRequiredLocation
		if location == "" {
			location = "Remote"
		}
		min, max := ParseSalaryRange(rj.Salary)

		jobs = append(jobs, Job{
			ExternalID:  externalID("remotive", strconv.FormatInt(rj.ID, 10)),
			Title:       rj.Title,
			Company:     rj.CompanyName,
			Location:    location,
			Description: CleanHTML(rj.Description),
			ApplyURL:    rj.URL,
			JobType:     "Full-time",
			Level:       "Mid Level",
			Salary:      rj.Salary,
			SalaryMin:   min,
			SalaryMax:   max,
		})
	}
	return jobs, nil
}
