package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Import
		Billing
		Activity
		Sessions
		Scheduler
		WhatsApp
		Logging
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		DemoSeed                 bool // Seed new workspaces with demo records
	}
	Import struct {
		PreviewRows int
		MaxUploadMB int
	}
	Billing struct {
		TaxRate       decimal.Decimal
		NumberPrefix  string // Invoice numbers: <prefix>-<year>-NNN
		CurrencyLabel string
	}
	Activity struct {
		DatabasePath  string
		RetentionDays int // Days to keep activity events (default: 30)
	}
	Sessions struct {
		Lifetime      time.Duration
		SecureCookies bool
		CSRFSecret    string // Empty disables CSRF protection
	}
	Scheduler struct {
		Enabled                 bool
		OverdueSweepSchedule    string        // Cron format: "0 * * * *" = hourly
		WorkspaceIdleTimeout    time.Duration // Workspaces unused this long are evicted
		ActivityCleanupSchedule string        // Cron format: "30 3 * * *" = daily at 03:30
	}
	WhatsApp struct {
		BaseURL       string
		APIVersion    string
		PhoneNumberID string
		AccessToken   string // Empty means messages are delivered locally
	}
	Logging struct {
		Level  string
		Format string // json or console
	}
)

// Enabled reports whether outbound WhatsApp delivery is configured.
func (w WhatsApp) Enabled() bool {
	return w.AccessToken != "" && w.PhoneNumberID != ""
}

// MaxUploadBytes is the multipart size limit for import uploads.
func (i Import) MaxUploadBytes() int64 {
	return int64(i.MaxUploadMB) << 20
}

// Load reads an optional env file, then the environment. A missing default
// .env is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}
	return NewConfig()
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 10)
	v.SetDefault("demo_seed", true)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("import_preview_rows", 10)
	v.SetDefault("import_max_upload_mb", 10)

	v.SetDefault("invoice_tax_rate", "0.18")
	v.SetDefault("invoice_number_prefix", "FAC")
	v.SetDefault("currency_label", "FCFA")

	v.SetDefault("activity_database_path", DefaultActivityDatabasePath)
	v.SetDefault("activity_retention_days", 30)

	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("session_secure_cookies", false)
	v.SetDefault("csrf_secret", "")

	v.SetDefault("scheduler_enabled", true)
	v.SetDefault("overdue_sweep_schedule", "0 * * * *")  // Hourly at :00
	v.SetDefault("workspace_idle_timeout", "2h")
	v.SetDefault("activity_cleanup_schedule", "30 3 * * *") // Daily at 03:30

	v.SetDefault("whatsapp_base_url", DefaultWhatsAppBaseURL)
	v.SetDefault("whatsapp_api_version", "v21.0")
	v.SetDefault("whatsapp_phone_number_id", "")
	v.SetDefault("whatsapp_token", "")

	taxRate, err := decimal.NewFromString(v.GetString("INVOICE_TAX_RATE"))
	if err != nil {
		return nil, fmt.Errorf("invalid INVOICE_TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("invalid INVOICE_TAX_RATE: must not be negative")
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			DemoSeed:                 v.GetBool("DEMO_SEED"),
		},
		Import: Import{
			PreviewRows: v.GetInt("IMPORT_PREVIEW_ROWS"),
			MaxUploadMB: v.GetInt("IMPORT_MAX_UPLOAD_MB"),
		},
		Billing: Billing{
			TaxRate:       taxRate,
			NumberPrefix:  v.GetString("INVOICE_NUMBER_PREFIX"),
			CurrencyLabel: v.GetString("CURRENCY_LABEL"),
		},
		Activity: Activity{
			DatabasePath:  v.GetString("ACTIVITY_DATABASE_PATH"),
			RetentionDays: v.GetInt("ACTIVITY_RETENTION_DAYS"),
		},
		Sessions: Sessions{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
		},
		Scheduler: Scheduler{
			Enabled:                 v.GetBool("SCHEDULER_ENABLED"),
			OverdueSweepSchedule:    v.GetString("OVERDUE_SWEEP_SCHEDULE"),
			WorkspaceIdleTimeout:    v.GetDuration("WORKSPACE_IDLE_TIMEOUT"),
			ActivityCleanupSchedule: v.GetString("ACTIVITY_CLEANUP_SCHEDULE"),
		},
		WhatsApp: WhatsApp{
			BaseURL:       v.GetString("WHATSAPP_BASE_URL"),
			APIVersion:    v.GetString("WHATSAPP_API_VERSION"),
			PhoneNumberID: v.GetString("WHATSAPP_PHONE_NUMBER_ID"),
			AccessToken:   v.GetString("WHATSAPP_TOKEN"),
		},
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}, nil
}
