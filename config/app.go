package config

import (
	"os"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName   string
	Port      string
	Env       string
	Debug     bool
	LogLevel  string
	LogFormat string
	MediaUrl  string

	// Card prices are shown in the source currency and converted at a fixed rate.
	SecondaryCurrency     string
	SecondaryCurrencyRate float64
	// DecimalComma renders card spec numbers as "2,5".
	DecimalComma bool

	DefaultPageSize int
	MaxPageSize     int
	RefDataTTL      time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:               GetEnv("APP_NAME", "climastore"),
			Port:                  GetEnv("PORT", "8080"),
			Env:                   os.Getenv("APP_ENV"),
			Debug:                 os.Getenv("DEBUG") == "true",
			LogLevel:              GetEnv("LOG_LEVEL", "info"),
			LogFormat:             GetEnv("LOG_FORMAT", "console"),
			MediaUrl:              GetEnv("MEDIA_URL", "/media/products/"),
			SecondaryCurrency:     GetEnv("SECONDARY_CURRENCY", "EUR"),
			SecondaryCurrencyRate: getEnvFloat("SECONDARY_CURRENCY_RATE", 1.95583),
			DecimalComma:          os.Getenv("DECIMAL_COMMA") == "true",
			DefaultPageSize:       getEnvInt("DEFAULT_PAGE_SIZE", 12),
			MaxPageSize:           getEnvInt("MAX_PAGE_SIZE", 100),
			RefDataTTL:            time.Duration(getEnvInt("REFDATA_TTL_SECONDS", 300)) * time.Second,
		}
	})
}

// App returns AppConfig, loading it from the environment on first use.
func App() *Config {
	LoadAppConfig()
	return AppConfig
}
