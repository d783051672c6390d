package wwr

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"go-jobradar/internal/source"
)

const defaultFeedURL = "https://weworkremotely.com/categories/remote-programming-jobs.rss"

// WeWorkRemotely fetches the WWR programming-jobs RSS feed.
// The feed carries no location semantics, so location is always "Remote".
type WeWorkRemotely struct {
	FeedURL string
	parser  *gofeed.Parser
	rel     source.Relevance
}

// New creates a WeWorkRemotely source. rel may be nil to skip early filtering.
func New(client *http.Client, rel source.Relevance) *WeWorkRemotely {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "Mozilla/5.0"
	return &WeWorkRemotely{
		FeedURL: defaultFeedURL,
		parser:  parser,
		rel:     rel,
	}
}

func (w *WeWorkRemotely) Name() string {
	return "WeWorkRemotely"
}

func (w *WeWorkRemotely) Fetch(ctx context.Context, term string) source.Result {
	feed, err := w.parser.ParseURLWithContext(w.FeedURL, ctx)
	if err != nil {
		return source.Result{Err: fmt.Errorf("wwr feed parse: %w", err)}
	}

	var listings []source.Listing
	for _, item := range feed.Items {
		company := "Unknown"
		if item.Author != nil && item.Author.Name != "" {
			company = item.Author.Name
		}

		l := source.Listing{
			Source:      "WeWorkRemotely",
			Title:       item.Title,
			Company:     company,
			Location:    "Remote",
			URL:         item.Link,
			Description: item.Description,
		}

		if w.rel != nil && term != "" && !w.rel.IsRelevant(ctx, term, l.Title, l.Description) {
			continue
		}
		listings = append(listings, l)
	}

	return source.Result{Listings: listings}
}
