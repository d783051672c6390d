package remoteok

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-jobradar/internal/source"
)

const defaultAPIURL = "https://remoteok.io/api"

// RemoteOK rejects default Go client identifiers, so we send a browser UA.
const browserUserAgent = "Mozilla/5.0"

type RemoteOK struct {
	// APIURL is overridable for tests; defaults to the public endpoint.
	APIURL string
	client *http.Client
	rel    source.Relevance
}

// New creates a RemoteOK source. rel may be nil to skip early filtering.
func New(client *http.Client, rel source.Relevance) *RemoteOK {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &RemoteOK{
		APIURL: defaultAPIURL,
		client: client,
		rel:    rel,
	}
}

func (r *RemoteOK) Name() string {
	return "RemoteOK"
}

// remoteOKJob mirrors one element of the RemoteOK JSON array.
type remoteOKJob struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func (r *RemoteOK) Fetch(ctx context.Context, term string) source.Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.APIURL, nil)
	if err != nil {
		return source.Result{Err: err}
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return source.Result{Err: fmt.Errorf("remoteok fetch: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return source.Result{Err: fmt.Errorf("remoteok returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return source.Result{Err: fmt.Errorf("remoteok read body: %w", err)}
	}

	listings, err := parseResponse(body)
	if err != nil {
		return source.Result{Err: err}
	}

	//early filter when a matcher is wired in
	if r.rel != nil && term != "" {
		var kept []source.Listing
		for _, l := range listings {
			if r.rel.IsRelevant(ctx, term, l.Title, l.Description) {
				kept = append(kept, l)
			}
		}
		listings = kept
	}

	return source.Result{Listings: listings}
}

// parseResponse decodes the RemoteOK JSON array, skipping [0] (metadata).
func parseResponse(body []byte) ([]source.Listing, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("remoteok parse: %w", err)
	}
	if len(raw) <= 1 {
		return nil, nil
	}

	var listings []source.Listing
	for _, item := range raw[1:] {
		var j remoteOKJob
		if err := json.Unmarshal(item, &j); err != nil {
			//malformed element, skip it
			continue
		}

		location := j.Location
		if location == "" {
			location = "Remote"
		}

		listings = append(listings, source.Listing{
			Source:      "RemoteOK",
			Title:       j.Position,
			Company:     j.Company,
			Location:    location,
			URL:         j.URL,
			Description: j.Description,
		})
	}
	return listings, nil
}
