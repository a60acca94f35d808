package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bridge specifics
	Database   DatabaseConfig
	Telegram   TelegramConfig
	GitHub     GitHubConfig
	Onboarding OnboardingConfig

	// Public base URL of this service, embedded in setup instructions
	WebhookBaseURL string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	URL string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GitHubConfig struct {
	APIBase      string
	Token        string
	ProbeEnabled bool
}

type OnboardingConfig struct {
	MaxConversations int
	TTL              time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.URL = viper.GetString("database.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.URL = dbURL
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// GitHub
	cfg.GitHub.APIBase = viper.GetString("github.api_base")
	cfg.GitHub.Token = viper.GetString("github.token")
	cfg.GitHub.ProbeEnabled = viper.GetBool("github.probe_enabled")
	if ghToken := viper.GetString("github_token"); ghToken != "" {
		cfg.GitHub.Token = ghToken
	}

	// Onboarding conversation store bounds
	cfg.Onboarding.MaxConversations = viper.GetInt("onboarding.max_conversations")
	cfg.Onboarding.TTL = viper.GetDuration("onboarding.ttl")

	// Public base URL
	cfg.WebhookBaseURL = viper.GetString("webhook_base_url")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("github.api_base", "https://api.github.com")
	viper.SetDefault("github.probe_enabled", true)
	viper.SetDefault("onboarding.max_conversations", 1000)
	viper.SetDefault("onboarding.ttl", 30*time.Minute)
}
