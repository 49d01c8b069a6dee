package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppConfig Config

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type OAuthConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"-"`
	RedirectURI  string `json:"redirect_uri"`
}

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"-"`
	From     string `json:"from"`
}

type IMAPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"-"`
	Mailbox  string `json:"mailbox"`
}

type Config struct {
	Environment string `json:"environment"`
	ServerPort  string `json:"server_port"`

	// DataFile is where the tracker document lives when the file backend
	// is used; DocumentKey names the slot under the Redis backend.
	DataFile    string `json:"data_file"`
	DocumentKey string `json:"document_key"`

	// StorageRoot is the file gateway's base directory; GatewayConfig is
	// the small JSON file the configurable root is persisted in.
	StorageRoot       string `json:"storage_root"`
	GatewayConfigFile string `json:"gateway_config_file"`

	Redis  RedisConfig `json:"redis"`
	SMTP   SMTPConfig  `json:"smtp"`
	IMAP   IMAPConfig  `json:"imap"`
	Google OAuthConfig `json:"google"`

	// GoogleTokenFile holds the OAuth token obtained by the Gmail
	// connect flow.
	GoogleTokenFile string `json:"google_token_file"`

	FollowUpDigestTo string        `json:"followup_digest_to"`
	FollowUpInterval time.Duration `json:"followup_interval"`

	RateLimitMailSend int      `json:"rate_limit_mail_send"`
	CORSOrigins       []string `json:"cors_origins"`
}

func init() {
	// Try to load .env, but don't fail if it doesn't exist
	_ = godotenv.Load()
}

func LoadConfig() error {
	AppConfig = Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("SERVER_PORT", "5178"),

		DataFile:    getEnv("DATA_FILE", "./data/tracker.json"),
		DocumentKey: getEnv("DOCUMENT_KEY", "surf:tracker:document"),

		StorageRoot:       getEnv("STORAGE_ROOT", "./data/files"),
		GatewayConfigFile: getEnv("GATEWAY_CONFIG_FILE", "./data/gateway.json"),

		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "") == "true",
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("FROM_EMAIL", ""),
		},
		IMAP: IMAPConfig{
			Host:     getEnv("IMAP_HOST", ""),
			Port:     getEnvAsInt("IMAP_PORT", 993),
			Username: getEnv("IMAP_USERNAME", ""),
			Password: getEnv("IMAP_PASSWORD", ""),
			Mailbox:  getEnv("IMAP_MAILBOX", "INBOX"),
		},
		Google: OAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("GOOGLE_REDIRECT_URI", ""),
		},
		GoogleTokenFile: getEnv("GOOGLE_TOKEN_FILE", "./data/google_token.json"),

		FollowUpDigestTo: getEnv("FOLLOWUP_DIGEST_TO", ""),
		FollowUpInterval: getEnvAsDuration("FOLLOWUP_INTERVAL", 6*time.Hour),

		RateLimitMailSend: getEnvAsInt("RATE_LIMIT_MAIL_SEND", 10),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}

	if AppConfig.Environment == "production" {
		if AppConfig.SMTP.Host != "" && AppConfig.SMTP.From == "" {
			return fmt.Errorf("FROM_EMAIL is required when SMTP is configured")
		}
	}

	logConfig()
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	if AppConfig.Redis.Enabled {
		log.Printf("Document storage: redis (%s, key %s)", AppConfig.Redis.Address, AppConfig.DocumentKey)
	} else {
		log.Printf("Document storage: file (%s)", AppConfig.DataFile)
	}
	log.Printf("File storage root: %s", AppConfig.StorageRoot)
	log.Printf("Mail: SMTP(%t), IMAP(%t), Google OAuth(%t)",
		AppConfig.SMTP.Host != "",
		AppConfig.IMAP.Host != "",
		AppConfig.Google.ClientID != "")
}
