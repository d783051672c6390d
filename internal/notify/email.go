package notify

import (
	"fmt"
	"html"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"go-jobradar/internal/config"
	"go-jobradar/internal/source"
)

// EmailNotifier sends the job digest as a branded HTML email.
type EmailNotifier struct {
	cfg *config.Config
}

func NewEmailNotifier(cfg *config.Config) (*EmailNotifier, error) {
	if !cfg.EmailConfigured() {
		return nil, fmt.Errorf("sender email or app password missing, check config or env")
	}
	return &EmailNotifier{cfg: cfg}, nil
}

// Send delivers the digest to recipient. Delivery failure is returned for
// the caller to log; it must never abort the run.
func (n *EmailNotifier) Send(listings []source.Listing, recipient string) error {
	if recipient == "" {
		return fmt.Errorf("recipient email is required")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.SenderEmail)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Your JobRadar Results — Curated Remote Jobs 🌍")
	m.SetBody("text/html", BuildHTMLDigest(listings))

	d := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.SenderEmail, n.cfg.AppPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp error: %w", err)
	}
	return nil
}

// BuildHTMLDigest renders the digest body with clickable job links.
func BuildHTMLDigest(listings []source.Listing) string {
	var b strings.Builder

	b.WriteString(`<html><body style="font-family:'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f8f9fc;color:#333;">`)
	b.WriteString(`<div style="max-width:650px;margin:30px auto;background:#ffffff;border-radius:10px;overflow:hidden;">`)
	b.WriteString(`<div style="background-color:#007bff;color:white;padding:15px 20px;text-align:center;">`)
	b.WriteString(`<h2>JobRadar Digest</h2><p>Your personalized remote jobs ✉️</p></div>`)

	if len(listings) == 0 {
		b.WriteString(`<p style="padding:20px;">No new job results found this time. Try updating your keywords!</p>`)
	} else {
		for _, l := range listings {
			fmt.Fprintf(&b,
				`<div style="border-bottom:1px solid #eee;padding:12px 18px;">`+
					`<a href="%s" style="color:#007bff;font-weight:600;text-decoration:none;">%s</a><br>`+
					`<span style="color:#555;">%s — %s</span><br>`+
					`<small style="color:#888;">Source: %s</small></div>`,
				html.EscapeString(l.URL),
				html.EscapeString(l.Title),
				html.EscapeString(l.Company),
				html.EscapeString(l.Location),
				html.EscapeString(l.Source),
			)
		}
	}

	b.WriteString(`<div style="text-align:center;font-size:13px;color:#999;padding:15px;border-top:1px solid #eee;">`)
	b.WriteString(`<p>Delivered by <b>JobRadar</b></p></div></div></body></html>`)
	return b.String()
}
