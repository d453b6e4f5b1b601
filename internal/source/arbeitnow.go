package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const arbeitnowBaseURL = "https://www.arbeitnow.com/api/job-board-api"

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
	Remote      bool     `json:"remote"`
}

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

// ArbeitnowFetcher fetches listings from the Arbeitnow job-board API.
type ArbeitnowFetcher struct {
	baseURL string
	client  *http.Client
}

// NewArbeitnowFetcher creates a fetcher backed by the given HTTP client.
func NewArbeitnowFetcher(client *http.Client) *ArbeitnowFetcher {
	return &ArbeitnowFetcher{baseURL: arbeitnowBaseURL, client: client}
}

func (f *ArbeitnowFetcher) Name() string { return "arbeitnow" }

// FetchJobs retrieves the board and normalizes the first 20 listings. Tags
// are folded into the description so skill extraction sees them.
func (f *ArbeitnowFetcher) FetchJobs(ctx context.Context) ([]Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow fetch: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("arbeitnow fetch: unexpected status %d", resp.StatusCode),
		}
	}

	var payload arbeitnowResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("arbeitnow fetch: %w", err)
	}

	listings := payload.Data
	if len(listings) > 20 {
		listings = listings[:20]
	}

	jobs := make([]Job, 0, len(listings))
	for _, aj := range listings {
		location := aj.Location
		if location == "" || aj.Remote {
			location = "Remote"
		}

		description := CleanHTML(aj.Description)
		if len(aj.Tags) > 0 {
			description += " " + strings.Join(aj.Tags, ", ")
		}

		jobs = append(jobs, Job{
			ExternalID:  externalID("arbeitnow", aj.Slug),
			Title:       aj.Title,
			Company:     aj.CompanyName,
			Location:    location,
			Description: description,
			ApplyURL:    aj.URL,
			JobType:     "Full-time",
			Level:       "Mid Level",
		})
	}
	return jobs, nil
}
