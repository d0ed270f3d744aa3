package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// External providers
	CurrencyAPIURL  string
	CurrencyAPIKey  string
	SafetyAPIURL    string
	SafetyAPIKey    string
	ProviderTimeout time.Duration

	// Recurring refresh schedules (5-field cron specs; deployment concern,
	// hour-of-day granularity)
	CurrencySyncSchedule  string
	SafetyRefreshSchedule string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CURRENCY_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("CURRENCY_API_KEY", "")
	viper.SetDefault("SAFETY_API_URL", "https://apis.data.go.kr/1262000/TravelAlarmService2/getTravelAlarmList2")
	viper.SetDefault("SAFETY_API_KEY", "")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("CURRENCY_SYNC_SCHEDULE", "0 2 * * *")
	viper.SetDefault("SAFETY_REFRESH_SCHEDULE", "0 5 * * *")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.CurrencyAPIURL = viper.GetString("CURRENCY_API_URL")
	cfg.CurrencyAPIKey = viper.GetString("CURRENCY_API_KEY")
	if cfg.CurrencyAPIKey == "" {
		log.Println("Warning: CURRENCY_API_KEY not set. Currency sync will fail until configured.")
	}

	cfg.SafetyAPIURL = viper.GetString("SAFETY_API_URL")
	cfg.SafetyAPIKey = viper.GetString("SAFETY_API_KEY")
	if cfg.SafetyAPIKey == "" {
		log.Println("Warning: SAFETY_API_KEY not set. Safety advisory refresh will fail until configured.")
	}

	timeoutStr := viper.GetString("PROVIDER_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for PROVIDER_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ProviderTimeout = timeout

	cfg.CurrencySyncSchedule = viper.GetString("CURRENCY_SYNC_SCHEDULE")
	cfg.SafetyRefreshSchedule = viper.GetString("SAFETY_REFRESH_SCHEDULE")

	return cfg, nil
}
