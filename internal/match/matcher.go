// Hybrid relevance matching: fuzzy title score, embedding similarity,
// and rule-based domain gating. Fuzzy alone over-matches short generic
// terms; embeddings alone over-match topically-adjacent roles ("AI Policy
// Analyst" for "ai"); the domain gate suppresses both failure modes.

package match

import (
	"context"
	"log"
	"strings"
	"sync"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Matcher decides whether a listing is relevant to a search term. It owns
// the embedding backend; construct one per process and share it, embedding
// setup being the dominant latency cost.
type Matcher struct {
	embedder Embedder

	mu    sync.Mutex
	cache map[string][]float64
}

// New creates a Matcher. embedder may be nil, in which case the semantic
// score always contributes zero and matching is lexical + domain gate only.
func New(embedder Embedder) *Matcher {
	return &Matcher{
		embedder: embedder,
		cache:    make(map[string][]float64),
	}
}

// IsRelevant reports whether a listing (title, description) matches the
// search term. Deterministic given a fixed embedding backend; an embedding
// failure only zeroes the semantic score, it never aborts the caller's batch.
func (m *Matcher) IsRelevant(ctx context.Context, term, title, description string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	title = strings.ToLower(title)
	description = strings.ToLower(description)

	//domain gate vetoes regardless of scores
	domain := classifyDomain(term)
	if domain != "" && !passesGate(domain, title) {
		return false
	}

	fuzzyMin, semanticMin := thresholds(domain)

	if lexicalScore(term, title) >= fuzzyMin {
		return true
	}
	if m.semanticScore(ctx, term, title) >= semanticMin {
		return true
	}

	//terse titles: the body may still confirm relevance
	if description != "" && strings.Contains(description, term) {
		return true
	}
	return false
}

// lexicalScore is the partial fuzzy ratio (0-100) between term and title.
func lexicalScore(term, title string) int {
	if title == "" {
		return 0
	}
	return fuzzy.PartialRatio(term, title)
}

// semanticScore is the embedding cosine similarity between term and title,
// or 0 when no embedder is configured or the computation fails.
func (m *Matcher) semanticScore(ctx context.Context, term, title string) float64 {
	if m.embedder == nil || title == "" {
		return 0
	}

	termVec, err := m.embed(ctx, term)
	if err != nil {
		log.Printf("⚠️ Embedding failed for term %q: %v", term, err)
		return 0
	}
	titleVec, err := m.embed(ctx, title)
	if err != nil {
		log.Printf("⚠️ Embedding failed for title %q: %v", title, err)
		return 0
	}

	return cosine(termVec, titleVec)
}

// embed caches vectors per distinct string so each search term and repeated
// title is embedded at most once per process.
func (m *Matcher) embed(ctx context.Context, text string) ([]float64, error) {
	m.mu.Lock()
	vec, ok := m.cache[text]
	m.mu.Unlock()
	if ok {
		return vec, nil
	}

	vec, err := m.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[text] = vec
	m.mu.Unlock()
	return vec, nil
}
