package notify

import (
	"strings"
	"testing"

	"go-jobradar/internal/config"
	"go-jobradar/internal/source"
)

func TestBuildHTMLDigest(t *testing.T) {
	listings := []source.Listing{
		{
			Source:   "RemoteOK",
			Title:    "Go Developer <Backend>",
			Company:  "Acme & Co",
			Location: "Remote",
			URL:      "https://jobs/1",
		},
	}

	html := BuildHTMLDigest(listings)

	if !strings.Contains(html, `href="https://jobs/1"`) {
		t.Error("digest missing job link")
	}
	if !strings.Contains(html, "Go Developer &lt;Backend&gt;") {
		t.Error("title not HTML-escaped")
	}
	if !strings.Contains(html, "Acme &amp; Co") {
		t.Error("company not HTML-escaped")
	}
	if !strings.Contains(html, "Source: RemoteOK") {
		t.Error("digest missing source attribution")
	}
}

func TestBuildHTMLDigestEmpty(t *testing.T) {
	html := BuildHTMLDigest(nil)
	if !strings.Contains(html, "No new job results") {
		t.Error("empty digest should say no results were found")
	}
}

func TestNewEmailNotifierMissingCredentials(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: 587}
	if _, err := NewEmailNotifier(cfg); err == nil {
		t.Error("expected error when sender credentials are missing")
	}
}
