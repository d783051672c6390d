package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobradar/internal/match"
	"go-jobradar/internal/source"
)

// fakeSource serves canned listings and counts fetches.
type fakeSource struct {
	name     string
	listings []source.Listing
	err      error
	calls    int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context, term string) source.Result {
	f.calls++
	if f.err != nil {
		return source.Result{Err: f.err}
	}
	out := make([]source.Listing, len(f.listings))
	copy(out, f.listings)
	return source.Result{Listings: out}
}

// acceptAll passes every listing through.
type acceptAll struct{}

func (acceptAll) IsRelevant(context.Context, string, string, string) bool { return true }

func listing(src, title, url string) source.Listing {
	return source.Listing{Source: src, Title: title, URL: url}
}

func TestNormalizeKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"already split", []string{"Python", "AI"}, []string{"python", "ai"}},
		{"raw comma string", []string{"Python, AI ,golang"}, []string{"python", "ai", "golang"}},
		{"dedup case-insensitive", []string{"Go", "go", " GO "}, []string{"go"}},
		{"drops empties", []string{" ", "", ",,"}, nil},
		{"newline separated", []string{"python\nrust"}, []string{"python", "rust"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKeywords(tt.input))
		})
	}
}

func TestFetchJobsEmptyKeywordsSkipsNetwork(t *testing.T) {
	src := &fakeSource{name: "RemoteOK"}
	agg := New(acceptAll{}, src)

	assert.Empty(t, agg.FetchJobs(context.Background(), nil, nil))
	assert.Empty(t, agg.FetchJobs(context.Background(), []string{" ", ","}, nil))
	assert.Equal(t, 0, src.calls, "no network call for an empty keyword set")
}

func TestFetchJobsDeduplicatesByURL(t *testing.T) {
	a := &fakeSource{name: "RemoteOK", listings: []source.Listing{
		listing("RemoteOK", "Go Developer", "https://jobs/1"),
		listing("RemoteOK", "Rust Developer", "https://jobs/2"),
	}}
	b := &fakeSource{name: "WeWorkRemotely", listings: []source.Listing{
		listing("WeWorkRemotely", "Go Developer", "https://jobs/1"), //same URL as a's first
		listing("WeWorkRemotely", "Python Developer", "https://jobs/3"),
	}}

	agg := New(acceptAll{}, a, b)
	got := agg.FetchJobs(context.Background(), []string{"developer"}, nil)

	urls := map[string]int{}
	for _, l := range got {
		urls[l.URL]++
	}
	for url, n := range urls {
		assert.Equal(t, 1, n, "URL %s reported more than once", url)
	}
	assert.Len(t, got, 3)

	//first seen wins: jobs/1 keeps RemoteOK's record
	assert.Equal(t, "RemoteOK", got[0].Source)
	assert.Equal(t, "https://jobs/1", got[0].URL)
}

func TestFetchJobsFirstKeywordWinsAttribution(t *testing.T) {
	src := &fakeSource{name: "RemoteOK", listings: []source.Listing{
		listing("RemoteOK", "Go Developer", "https://jobs/1"),
	}}

	agg := New(acceptAll{}, src)
	got := agg.FetchJobs(context.Background(), []string{"go", "developer"}, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, "go", got[0].MatchedKeyword)
	assert.False(t, got[0].FetchedAt.IsZero())
}

func TestFetchJobsSourceFailureIsIsolated(t *testing.T) {
	broken := &fakeSource{name: "RemoteOK", err: errors.New("connection refused")}
	healthy := &fakeSource{name: "WeWorkRemotely", listings: []source.Listing{
		listing("WeWorkRemotely", "Go Developer", "https://jobs/1"),
	}}

	agg := New(acceptAll{}, broken, healthy)
	got := agg.FetchJobs(context.Background(), []string{"go"}, nil)

	assert.Len(t, got, 1, "healthy source results must be unaffected")
	assert.Equal(t, "WeWorkRemotely", got[0].Source)
}

func TestFetchJobsUnknownSourceSkipped(t *testing.T) {
	src := &fakeSource{name: "RemoteOK", listings: []source.Listing{
		listing("RemoteOK", "Go Developer", "https://jobs/1"),
	}}

	agg := New(acceptAll{}, src)
	got := agg.FetchJobs(context.Background(), []string{"go"}, []string{"NotARealBoard", "remoteok"})

	assert.Len(t, got, 1, "known source still queried, unknown one skipped")
}

func TestFetchJobsIdempotent(t *testing.T) {
	src := &fakeSource{name: "RemoteOK", listings: []source.Listing{
		listing("RemoteOK", "Go Developer", "https://jobs/1"),
		listing("RemoteOK", "Rust Developer", "https://jobs/2"),
	}}
	agg := New(acceptAll{}, src)

	first := agg.FetchJobs(context.Background(), []string{"developer"}, nil)
	second := agg.FetchJobs(context.Background(), []string{"developer"}, nil)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		//identical modulo FetchedAt
		second[i].FetchedAt = first[i].FetchedAt
		assert.Equal(t, first[i], second[i])
	}
}

// End-to-end with the real matcher: 5 raw items, 2 relevant python titles.
func TestFetchJobsEndToEnd(t *testing.T) {
	src := &fakeSource{name: "RemoteOK", listings: []source.Listing{
		listing("RemoteOK", "Senior Python Developer", "https://jobs/1"),
		listing("RemoteOK", "Python Backend Engineer", "https://jobs/2"),
		listing("RemoteOK", "Sales Manager", "https://jobs/3"),
		listing("RemoteOK", "UX Writer", "https://jobs/4"),
		listing("RemoteOK", "Office Administrator", "https://jobs/5"),
	}}

	agg := New(match.New(nil), src)
	got := agg.FetchJobs(context.Background(), []string{"python", "ai"}, []string{"RemoteOK"})

	assert.Len(t, got, 2)
	seen := map[string]bool{}
	for _, l := range got {
		assert.Equal(t, "python", l.MatchedKeyword)
		assert.False(t, seen[l.URL], "duplicate URL in result set")
		seen[l.URL] = true
	}
}
