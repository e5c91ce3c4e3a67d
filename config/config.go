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

	// Ordering kiosk specifics
	Search   SearchConfig
	Cart     CartConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	Operator OperatorConfig

	// Rate limiting
	RateLimit RateLimitConfig
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

// SearchConfig tunes the per-session search box.
type SearchConfig struct {
	DebounceDelay time.Duration
	Placeholder   string
	ShowClear     bool
}

// CartConfig tunes the per-session cart controller.
type CartConfig struct {
	SettleDelay                time.Duration
	RequireRemovalConfirmation bool
}

// CheckoutConfig tunes the form engines.
type CheckoutConfig struct {
	SuccessDisplayDelay time.Duration
}

// SessionConfig tunes the session registry.
type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

// OperatorConfig points at the operator backend the forms submit to.
type OperatorConfig struct {
	BaseURL string
	Token   string
}

type RateLimitConfig struct {
	PerMin int
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

	// Ordering kiosk specifics
	cfg.Search.DebounceDelay = viper.GetDuration("search.debounce_delay")
	cfg.Search.Placeholder = viper.GetString("search.placeholder")
	cfg.Search.ShowClear = viper.GetBool("search.show_clear")

	cfg.Cart.SettleDelay = viper.GetDuration("cart.settle_delay")
	cfg.Cart.RequireRemovalConfirmation = viper.GetBool("cart.require_removal_confirmation")

	cfg.Checkout.SuccessDisplayDelay = viper.GetDuration("checkout.success_display_delay")

	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	cfg.Operator.BaseURL = viper.GetString("operator.base_url")
	cfg.Operator.Token = viper.GetString("operator.token")
	if operatorURL := viper.GetString("operator_base_url"); operatorURL != "" {
		cfg.Operator.BaseURL = operatorURL
	}
	if operatorToken := viper.GetString("operator_token"); operatorToken != "" {
		cfg.Operator.Token = operatorToken
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if cfg.Operator.BaseURL == "" {
		return nil, fmt.Errorf("operator.base_url is required - set it in config.yaml or via OPERATOR_BASE_URL")
	}

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
	viper.SetDefault("search.debounce_delay", "300ms")
	viper.SetDefault("search.placeholder", "Search the menu")
	viper.SetDefault("search.show_clear", true)
	viper.SetDefault("cart.settle_delay", "400ms")
	viper.SetDefault("cart.require_removal_confirmation", true)
	viper.SetDefault("checkout.success_display_delay", "2s")
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("operator.base_url", "http://localhost:8000")
	viper.SetDefault("rate_limit.per_min", 300)
}
