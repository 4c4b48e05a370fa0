package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"uptimebot/clients/betterstack"
)

type BetterStackConfig struct {
	APIToken string
	BaseURL  string
}

// IsConfigured returns true if all required Better Stack configuration is present
func (c BetterStackConfig) IsConfigured() bool {
	return c.APIToken != ""
}

type DiscordConfig struct {
	BotToken string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != ""
}

type SlackConfig struct {
	BotToken      string
	SigningSecret string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.SigningSecret != ""
}

type AppConfig struct {
	// Core configuration
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	UseStrictConfig    bool // If true, error when any integration is not fully configured

	// Integration configurations (grouped)
	BetterStackConfig BetterStackConfig
	DiscordConfig     DiscordConfig
	SlackConfig       SlackConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// The uptime API token is always required
	apiToken, err := getEnvRequired("BETTERSTACK_API_TOKEN")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "false") == "true",

		BetterStackConfig: BetterStackConfig{
			APIToken: apiToken,
			BaseURL:  getEnvWithDefault("BETTERSTACK_BASE_URL", betterstack.DefaultBaseURL),
		},

		// Discord configuration (optional)
		DiscordConfig: DiscordConfig{
			BotToken: os.Getenv("DISCORD_BOT_TOKEN"),
		},

		// Slack configuration (optional)
		SlackConfig: SlackConfig{
			BotToken:      os.Getenv("SLACK_BOT_TOKEN"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
	}

	// Log which integrations are configured
	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord integration configured")
	} else {
		log.Printf("⚠️ Discord integration not configured - Discord commands will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("discord integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack integration configured")
	} else {
		log.Printf("⚠️ Slack integration not configured - Slack commands will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("slack integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if !config.DiscordConfig.IsConfigured() && !config.SlackConfig.IsConfigured() {
		return nil, fmt.Errorf("at least one chat platform must be configured")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
