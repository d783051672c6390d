// Load envs from .env
// Load YAML preferences
// Validate what is actually used
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//User preferences
	Email      string   `yaml:"email"`
	Keywords   []string `yaml:"keywords"`
	Sources    []string `yaml:"sources"`
	Experience string   `yaml:"experience"`

	//Email delivery
	SMTPHost    string `yaml:"smtp_host"`
	SMTPPort    int    `yaml:"smtp_port"`
	SenderEmail string `yaml:"sender_email" env:"SENDER_EMAIL"`
	AppPassword string `yaml:"app_password" env:"APP_PASSWORD"`

	//Telegram delivery (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Embeddings backend (optional; empty base disables semantic scoring)
	EmbedAPIBase string `yaml:"embed_api_base" env:"EMBED_API_BASE"`
	EmbedAPIKey  string `yaml:"embed_api_key" env:"EMBED_API_KEY"`
	EmbedModel   string `yaml:"embed_model"`

	//Fetching
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`

	//Paths
	OutputDir string `yaml:"output_dir"`
}

func Load() *Config {
	return LoadFile("configs/config.yaml")
}

func LoadFile(path string) *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if sender := os.Getenv("SENDER_EMAIL"); sender != "" {
		cfg.SenderEmail = sender
	}

	if password := os.Getenv("APP_PASSWORD"); password != "" {
		cfg.AppPassword = password
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if base := os.Getenv("EMBED_API_BASE"); base != "" {
		cfg.EmbedAPIBase = base
	}

	if key := os.Getenv("EMBED_API_KEY"); key != "" {
		cfg.EmbedAPIKey = key
	}

	//Set default values if not set
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}

	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}

	if cfg.EmbedModel == "" {
		cfg.EmbedModel = "text-embedding-3-small"
	}

	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = 15
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "results"
	}

	return cfg
}

// EmailConfigured reports whether the email delivery settings are complete.
func (c *Config) EmailConfigured() bool {
	return c.SenderEmail != "" && c.AppPassword != ""
}

// TelegramConfigured reports whether a Telegram reporter can be built.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
