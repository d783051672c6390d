package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-jobradar/internal/source"
)

const guestSearchURL = "https://www.linkedin.com/jobs/search?keywords=%s&f_WT=2"

// maxCards caps how many result cards we read per search
const maxCards = 25

// LinkedIn scrapes the public (guest mode) LinkedIn job search with a
// headless browser. It owns the whole playwright lifecycle per fetch: the
// source stays usable without any long-lived browser state, and a missing
// browser install just surfaces as a failed fetch.
type LinkedIn struct {
	rel      source.Relevance
	headless bool
}

// New creates a LinkedIn source. rel may be nil to skip early filtering.
func New(rel source.Relevance) *LinkedIn {
	return &LinkedIn{rel: rel, headless: true}
}

func (s *LinkedIn) Name() string {
	return "LinkedIn"
}

func (s *LinkedIn) Fetch(ctx context.Context, term string) source.Result {
	pw, err := playwright.Run()
	if err != nil {
		return source.Result{Err: fmt.Errorf("linkedin: playwright start: %w", err)}
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(s.headless),
	})
	if err != nil {
		return source.Result{Err: fmt.Errorf("linkedin: browser launch: %w", err)}
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return source.Result{Err: fmt.Errorf("linkedin: new page: %w", err)}
	}

	listings, err := s.scrape(ctx, page, term)
	if err != nil {
		return source.Result{Err: err}
	}
	return source.Result{Listings: listings}
}

func (s *LinkedIn) scrape(ctx context.Context, page playwright.Page, term string) ([]source.Listing, error) {
	searchURL := fmt.Sprintf(guestSearchURL, url.QueryEscape(term))
	log.Printf("  🌐 Visiting LinkedIn guest search: %s", searchURL)

	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("linkedin: load search page: %w", err)
	}

	//wait for result cards; an empty search simply times out here
	if _, err := page.WaitForSelector("div.base-card, ul.jobs-search__results-list li", playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(15000),
	}); err != nil {
		log.Println("    ⚠️ Job list not found or empty.")
		return nil, nil
	}

	cards, err := page.Locator("div.base-card").All()
	if err != nil {
		return nil, fmt.Errorf("linkedin: locate cards: %w", err)
	}
	log.Printf("    📄 Found %d potential jobs.", len(cards))

	limit := maxCards
	if len(cards) < limit {
		limit = len(cards)
	}

	var listings []source.Listing
	for i := 0; i < limit; i++ {
		if ctx.Err() != nil {
			return listings, ctx.Err()
		}

		l, err := s.processCard(cards[i])
		if err != nil {
			continue
		}

		if s.rel != nil && term != "" && !s.rel.IsRelevant(ctx, term, l.Title, l.Description) {
			continue
		}
		listings = append(listings, l)
	}

	return listings, nil
}

func (s *LinkedIn) processCard(card playwright.Locator) (source.Listing, error) {
	href, err := card.Locator("a.base-card__full-link").First().GetAttribute("href")
	if err != nil || href == "" {
		return source.Listing{}, fmt.Errorf("linkedin: card without link")
	}

	title, _ := card.Locator("h3.base-search-card__title").First().InnerText()
	company, _ := card.Locator("h4.base-search-card__subtitle").First().InnerText()
	location, _ := card.Locator("span.job-search-card__location").First().InnerText()

	company = strings.TrimSpace(company)
	if company == "" {
		company = "Unknown"
	}
	location = strings.TrimSpace(location)
	if location == "" {
		location = "Remote"
	}

	return source.Listing{
		Source:   "LinkedIn",
		Title:    strings.TrimSpace(title),
		Company:  company,
		Location: location,
		URL:      canonicalURL(href),
	}, nil
}

// canonicalURL strips query parameters from a job link.
// LinkedIn URLs carry dynamic tracking params (?refId=..., ?trackingId=...)
// which make the same job appear as different URLs, breaking deduplication.
func canonicalURL(raw string) string {
	full := raw
	if !strings.HasPrefix(raw, "http") {
		full = "https://www.linkedin.com" + raw
	}
	parts := strings.Split(full, "?")
	return parts[0]
}
