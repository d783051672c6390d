package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go-jobradar/internal/aggregator"
	"go-jobradar/internal/config"
	"go-jobradar/internal/export"
	"go-jobradar/internal/match"
	"go-jobradar/internal/notify"
	"go-jobradar/internal/source"
	"go-jobradar/internal/source/linkedin"
	"go-jobradar/internal/source/remoteok"
	"go-jobradar/internal/source/wwr"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to YAML config")
	keywordsFlag := flag.String("keywords", "", "comma-separated keywords (overrides config)")
	sourcesFlag := flag.String("sources", "", "comma-separated sources (overrides config)")
	emailFlag := flag.String("email", "", "recipient email (overrides config)")
	outFlag := flag.String("out", "", "output directory (overrides config)")
	noNotify := flag.Bool("no-notify", false, "skip email/telegram delivery")
	flag.Parse()

	//load config
	cfg := config.LoadFile(*configPath)

	keywords := cfg.Keywords
	if *keywordsFlag != "" {
		keywords = []string{*keywordsFlag}
	}
	sources := cfg.Sources
	if *sourcesFlag != "" {
		sources = strings.Split(*sourcesFlag, ",")
	}
	recipient := cfg.Email
	if *emailFlag != "" {
		recipient = *emailFlag
	}
	outDir := cfg.OutputDir
	if *outFlag != "" {
		outDir = *outFlag
	}

	log.Printf("🔧 Config loaded. Keywords: %v Sources: %v", keywords, sources)

	//build matcher; semantic scoring only when an embeddings API is configured
	var embedder match.Embedder
	if cfg.EmbedAPIBase != "" {
		embedder = match.NewOpenAIEmbedder(cfg.EmbedAPIBase, cfg.EmbedAPIKey, cfg.EmbedModel)
		log.Printf("🧠 Semantic scoring enabled (%s).", cfg.EmbedModel)
	} else {
		log.Println("ℹ️ No embeddings API configured, matching is lexical + domain gate only.")
	}
	matcher := match.New(embedder)

	//build source registry
	client := &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second}
	registry := []source.Source{
		remoteok.New(client, nil),
		wwr.New(client, nil),
	}
	//the browser-backed source is opt-in: it needs a playwright install
	if requested(sources, "LinkedIn") {
		registry = append(registry, linkedin.New(nil))
	}

	agg := aggregator.New(matcher, registry...)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting JobRadar search...")
	jobs := agg.FetchJobs(ctx, keywords, sources)

	if len(jobs) == 0 {
		log.Println("ℹ️ No matching jobs found.")
		return
	}

	for _, j := range jobs {
		log.Printf("  ✅ [%s] %s — %s (%s)", j.Source, j.Title, j.Company, j.Location)
	}

	//save results
	if path, err := export.WriteCSV(outDir, jobs); err != nil {
		log.Printf("⚠️ Failed to write CSV: %v", err)
	} else {
		log.Printf("📁 CSV saved to %s", path)
	}
	if path, err := export.WriteJSON(outDir, jobs); err != nil {
		log.Printf("⚠️ Failed to write JSON: %v", err)
	} else {
		log.Printf("📁 JSON saved to %s", path)
	}

	if *noNotify {
		log.Println("🏁 Execution finished (delivery skipped).")
		return
	}

	//email digest
	if recipient != "" && cfg.EmailConfigured() {
		mailer, err := notify.NewEmailNotifier(cfg)
		if err != nil {
			log.Printf("⚠️ Email notifier unavailable: %v", err)
		} else if err := mailer.Send(jobs, recipient); err != nil {
			log.Printf("⚠️ Failed to send email: %v", err)
		} else {
			log.Printf("📩 Email sent to %s", recipient)
		}
	}

	//telegram digest
	if cfg.TelegramConfigured() {
		reporter, err := notify.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Telegram reporter unavailable: %v", err)
		} else {
			for _, j := range jobs {
				if err := reporter.SendListing(j); err != nil {
					log.Printf("⚠️ Failed to send job to Telegram: %v", err)
				}
				//1 second delay to avoid 429
				time.Sleep(1 * time.Second)
			}
			if err := reporter.SendStatus(fmt.Sprintf("✅ Found %d new jobs.", len(jobs))); err != nil {
				log.Printf("⚠️ Failed to send status to Telegram: %v", err)
			}
		}
	}

	log.Println("🏁 Execution finished.")
}

func requested(sources []string, name string) bool {
	for _, s := range sources {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return true
		}
	}
	return false
}

