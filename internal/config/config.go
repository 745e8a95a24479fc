package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ArshadAliDS/Amazon/internal/domain"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	SPAPI    SPAPI    `mapstructure:",squash"`
	Rates    Rates    `mapstructure:",squash"`
	RateSync RateSync `mapstructure:",squash"`
	Finances Finances `mapstructure:",squash"`

	// Accounts holds the credential sets, keyed by lowercase account
	// name. Populated from the environment after viper unmarshals the
	// flat settings.
	Accounts map[string]*Credentials `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	// GatePassword protects the whole API; compared with the login
	// request. When GatePasswordHash is set it takes precedence and is
	// verified with bcrypt.
	GatePassword     string        `mapstructure:"gate_password"`
	GatePasswordHash string        `mapstructure:"gate_password_hash"`
	Secret           string        `mapstructure:"auth_secret"`
	TokenTTL         time.Duration `mapstructure:"auth_token_ttl"`
}

type SPAPI struct {
	TokenURL            string        `mapstructure:"spapi_token_url"`
	AccountNames        string        `mapstructure:"spapi_accounts"`
	TokenExpiryMargin   time.Duration `mapstructure:"spapi_token_expiry_margin"`
	ReportPollInterval  time.Duration `mapstructure:"spapi_report_poll_interval"`
	ReportPollAttempts  int           `mapstructure:"spapi_report_poll_attempts"`
	HTTPTimeout         time.Duration `mapstructure:"spapi_http_timeout"`
	DownloadHTTPTimeout time.Duration `mapstructure:"spapi_download_http_timeout"`
}

type Rates struct {
	BaseURL        string `mapstructure:"rates_base_url"`
	TargetCurrency string `mapstructure:"rates_target_currency"`
	BaseCurrency   string `mapstructure:"rates_base_currency"`
}

type RateSync struct {
	IntervalMinutes int  `mapstructure:"rate_sync_interval_minutes"`
	Enabled         bool `mapstructure:"rate_sync_enabled"`
}

type Finances struct {
	ChunkDays         int           `mapstructure:"finances_chunk_days"`
	PageDelay         time.Duration `mapstructure:"finances_page_delay"`
	ChunkDelay        time.Duration `mapstructure:"finances_chunk_delay"`
	ExpenseDatasetTTL time.Duration `mapstructure:"finances_expense_dataset_ttl"`
}

// Credentials is one account's SP-API credential set. Immutable once
// loaded; refresh tokens are keyed by region group.
type Credentials struct {
	Account       string
	ClientID      string
	ClientSecret  string
	AccessKeyID   string
	SecretKey     string
	RefreshTokens map[domain.RegionGroup]string
	SellerIDs     map[domain.RegionGroup]string
}

// RefreshToken returns the regional refresh token, failing with a config
// error when the account has none for that region.
func (c *Credentials) RefreshToken(region domain.RegionGroup) (string, error) {
	token, ok := c.RefreshTokens[region]
	if !ok || token == "" {
		return "", domain.NewFailure(domain.FailureConfig,
			"no refresh token configured for account %q in region %q", c.Account, region)
	}
	return token, nil
}

// AccountCredentials resolves the credential set for a named account.
func (c *Config) AccountCredentials(account string) (*Credentials, error) {
	creds, ok := c.Accounts[strings.ToLower(account)]
	if !ok {
		return nil, domain.NewFailure(domain.FailureConfig, "unknown account %q", account)
	}
	return creds, nil
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("SPAPI_TOKEN_URL", "https://api.amazon.com/auth/o2/token")
	viper.SetDefault("SPAPI_ACCOUNTS", "")
	viper.SetDefault("SPAPI_TOKEN_EXPIRY_MARGIN", "60s")
	viper.SetDefault("SPAPI_REPORT_POLL_INTERVAL", "15s")
	viper.SetDefault("SPAPI_REPORT_POLL_ATTEMPTS", 120)
	viper.SetDefault("SPAPI_HTTP_TIMEOUT", "30s")
	viper.SetDefault("SPAPI_DOWNLOAD_HTTP_TIMEOUT", "120s")

	viper.SetDefault("RATES_BASE_URL", "https://api.frankfurter.app")
	viper.SetDefault("RATES_TARGET_CURRENCY", "INR")
	viper.SetDefault("RATES_BASE_CURRENCY", "USD")

	viper.SetDefault("RATE_SYNC_INTERVAL_MINUTES", 60)
	viper.SetDefault("RATE_SYNC_ENABLED", false)

	viper.SetDefault("FINANCES_CHUNK_DAYS", 30)
	viper.SetDefault("FINANCES_PAGE_DELAY", "2s")
	viper.SetDefault("FINANCES_CHUNK_DELAY", "5s")
	viper.SetDefault("FINANCES_EXPENSE_DATASET_TTL", "2h")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Auth.GatePassword == "" && config.Auth.GatePasswordHash == "" {
		return nil, domain.NewFailure(domain.FailureConfig,
			"GATE_PASSWORD is not set; the application cannot start")
	}

	config.Accounts = make(map[string]*Credentials)
	for _, name := range strings.Split(config.SPAPI.AccountNames, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		creds, err := loadAccountCredentials(name)
		if err != nil {
			return nil, err
		}
		config.Accounts[strings.ToLower(name)] = creds
	}

	return config, nil
}

// loadAccountCredentials reads one account's credential set from the
// environment. The four core values are required; refresh tokens are
// optional per region, but at least one must be present.
func loadAccountCredentials(account string) (*Credentials, error) {
	prefix := strings.ToUpper(account) + "_"

	creds := &Credentials{
		Account:       account,
		ClientID:      os.Getenv(prefix + "SPAPI_CLIENT_ID"),
		ClientSecret:  os.Getenv(prefix + "SPAPI_CLIENT_SECRET"),
		AccessKeyID:   os.Getenv(prefix + "AWS_ACCESS_KEY_ID"),
		SecretKey:     os.Getenv(prefix + "AWS_SECRET_ACCESS_KEY"),
		RefreshTokens: make(map[domain.RegionGroup]string),
		SellerIDs:     make(map[domain.RegionGroup]string),
	}

	missing := []string{}
	if creds.ClientID == "" {
		missing = append(missing, prefix+"SPAPI_CLIENT_ID")
	}
	if creds.ClientSecret == "" {
		missing = append(missing, prefix+"SPAPI_CLIENT_SECRET")
	}
	if creds.AccessKeyID == "" {
		missing = append(missing, prefix+"AWS_ACCESS_KEY_ID")
	}
	if creds.SecretKey == "" {
		missing = append(missing, prefix+"AWS_SECRET_ACCESS_KEY")
	}
	if len(missing) > 0 {
		return nil, domain.NewFailure(domain.FailureConfig,
			"missing credentials for account %q: %s", account, strings.Join(missing, ", "))
	}

	for _, region := range []domain.RegionGroup{domain.RegionNA, domain.RegionEU, domain.RegionFE} {
		suffix := strings.ToUpper(string(region))
		if token := os.Getenv(prefix + "SPAPI_REFRESH_TOKEN_" + suffix); token != "" {
			creds.RefreshTokens[region] = token
		}
		if sellerID := os.Getenv(prefix + "SELLER_ID_" + suffix); sellerID != "" {
			creds.SellerIDs[region] = sellerID
		}
	}
	if len(creds.RefreshTokens) == 0 {
		return nil, domain.NewFailure(domain.FailureConfig,
			"no regional refresh tokens configured for account %q", account)
	}

	return creds, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from: ", location)
			return
		}
	}

	logrus.Warn(fmt.Sprintf("no .env file found near %s; relying on process environment", cwd))
}
