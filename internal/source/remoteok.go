package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const remoteokBaseURL = "https://remoteok.com/api"

// remoteokUserAgent is required; the API rejects default Go clients.
const remoteokUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

type remoteokJob struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
}

// RemoteOKFetcher fetches listings from the RemoteOK API.
type RemoteOKFetcher struct {
	baseURL string
	client  *http.Client
}

// NewRemoteOKFetcher creates a fetcher backed by the given HTTP client.
func NewRemoteOKFetcher(client *http.Client) *RemoteOKFetcher {
	return &RemoteOKFetcher{baseURL: remoteokBaseURL, client: client}
}

func (f *RemoteOKFetcher) Name() string { return "remoteok" }

// FetchJobs retrieves the feed, skips the leading metadata element, and
// normalizes up to 20 listings.
func (f *RemoteOKFetcher) FetchJobs(ctx context.Context) ([]Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	req.Header.Set("User-Agent", remoteokUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("remoteok fetch: unexpected status %d", resp.StatusCode),
		}
	}

	var elements []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("remoteok fetch: %w", err)
	}

	// First element is legal metadata, not a listing.
	if len(elements) > 0 {
		elements = elements[1:]
	}
	if len(elements) > 20 {
		elements = elements[:20]
	}

	jobs := make([]Job, 0, len(elements))
	for _, raw := range elements {
		var rj remoteokJob
		if err := json.Unmarshal(raw, &rj); err != nil {
			continue
		}
		if rj.Position == "" {
			continue
		}
		min, max := ParseSalaryRange(rj.Salary)

		jobs = append(jobs, Job{
			ExternalID:  externalID("remoteok", rj.ID),
			Title:       rj.Position,
			Company:     rj.Company,
			Location:    "Remote",
			Description: CleanHTML(rj.Description),
			ApplyURL:    fmt.Sprintf("https://remoteok.com/l/%s", rj.ID),
			JobType:     "Full-time",
			Level:       "Mid Level",
			Salary:      rj.Salary,
			SalaryMin:   min,
			SalaryMax:   max,
		})
	}
	return jobs, nil
}
