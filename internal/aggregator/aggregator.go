// Fan a keyword set out across job sources, filter through the relevance
// matcher, tag provenance, and deduplicate by canonical URL.

package aggregator

import (
	"context"
	"log"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobradar/internal/source"
)

// Aggregator runs the (keyword × source) cross product sequentially and
// collects the accepted listings. A failing source contributes nothing and
// never aborts the search.
type Aggregator struct {
	sources []source.Source
	rel     source.Relevance
}

// New creates an Aggregator over a fixed source registry. rel may be nil,
// in which case listings pass through unfiltered.
func New(rel source.Relevance, sources ...source.Source) *Aggregator {
	return &Aggregator{sources: sources, rel: rel}
}

// SourceNames lists the registered source names in registration order.
func (a *Aggregator) SourceNames() []string {
	names := make([]string, 0, len(a.sources))
	for _, s := range a.sources {
		names = append(names, s.Name())
	}
	return names
}

// NormalizeKeywords trims, lowercases and order-preservingly dedupes
// keywords. Elements containing commas or newlines are split first, so a
// raw "Python, AI" string passed as a single element works too.
func NormalizeKeywords(keywords []string) []string {
	seen := mapset.NewSet[string]()
	var out []string
	for _, k := range keywords {
		for _, part := range strings.FieldsFunc(k, func(r rune) bool {
			return r == ',' || r == '\n'
		}) {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			if seen.Add(part) {
				out = append(out, part)
			}
		}
	}
	return out
}

// FetchJobs fetches candidates for every (keyword × source) pair, keeps the
// relevant ones, tags each with the keyword that produced it and the fetch
// time, and dedupes globally by URL — first seen wins, later hits under
// other keywords are dropped. Output keeps first-seen insertion order.
//
// An empty keyword set returns nil without touching the network. sourceNames
// defaults to all registered sources; unknown names are skipped with a
// warning.
func (a *Aggregator) FetchJobs(ctx context.Context, keywords []string, sourceNames []string) []source.Listing {
	keywords = NormalizeKeywords(keywords)
	if len(keywords) == 0 {
		log.Println("ℹ️ No keywords given, skipping search.")
		return nil
	}

	selected := a.selectSources(sourceNames)

	seen := mapset.NewSet[string]()
	var results []source.Listing

	for _, kw := range keywords {
		for _, src := range selected {
			res := src.Fetch(ctx, kw)
			if res.Err != nil {
				log.Printf("⚠️ Source %s failed for %q: %v. Continuing.", src.Name(), kw, res.Err)
				continue
			}

			for _, l := range res.Listings {
				if a.rel != nil && !a.rel.IsRelevant(ctx, kw, l.Title, l.Description) {
					continue
				}

				l.MatchedKeyword = kw
				l.FetchedAt = time.Now()

				if seen.Add(l.URL) {
					results = append(results, l)
				}
			}
		}
	}

	log.Printf("📦 Collected %d unique jobs for %d keyword(s).", len(results), len(keywords))
	return results
}

// selectSources resolves requested source names against the registry.
// Empty input means all registered sources.
func (a *Aggregator) selectSources(names []string) []source.Source {
	if len(names) == 0 {
		return a.sources
	}

	var selected []source.Source
	for _, name := range names {
		found := false
		for _, s := range a.sources {
			if strings.EqualFold(s.Name(), strings.TrimSpace(name)) {
				selected = append(selected, s)
				found = true
				break
			}
		}
		if !found {
			log.Printf("⚠️ Unsupported source %q, skipping.", name)
		}
	}
	return selected
}
