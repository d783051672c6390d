// Define the common listing shape and the interface all sources implement
// Ensure consistency across REST, RSS and browser-based sources

package source

import (
	"context"
	"time"
)

// KeywordUnfiltered marks a listing that was collected without keyword filtering.
const KeywordUnfiltered = "unfiltered"

// Listing is one normalized job posting from any source.
// URL is the unique identity of a listing and the deduplication key.
type Listing struct {
	Source         string    `json:"source"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	URL            string    `json:"url"`
	Description    string    `json:"description"`
	MatchedKeyword string    `json:"matched_keyword"`
	FetchedAt      time.Time `json:"fetched_at"`
}

// Result is what a single source fetch produces. A failing source reports its
// error here instead of aborting the overall search; the aggregator logs Err
// and moves on.
type Result struct {
	Listings []Listing
	Err      error
}

// Relevance decides whether a listing matches a search term. Sources may use
// it for early filtering before returning; the aggregator filters regardless.
type Relevance interface {
	IsRelevant(ctx context.Context, term, title, description string) bool
}

// Source defines the interface that all upstream providers must implement.
type Source interface {
	// Fetch retrieves listings for a search term. It never panics; transport
	// and parse failures come back in Result.Err with an empty listing slice.
	Fetch(ctx context.Context, term string) Result

	// Name is the provider name (RemoteOK, WeWorkRemotely, ...)
	Name() string
}
