package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultDatabaseDSN = "file:flashcards.sqlite3?_pragma=foreign_keys(1)"
	defaultAuthSecret  = "dev-secret-key"
	defaultBaseURL     = "localhost:8080"
	defaultScheme      = "blake2b"
	defaultLogLevel    = "info"
)

type Config struct {
	// Хранилище и сессии
	DatabaseDSN    string `env:"DATABASE_URI"`
	AuthSecret     string `env:"AUTH_SECRET"`
	PasswordScheme string `env:"PASSWORD_SCHEME"`

	// HTTP
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Логирование
	LogLevel string `env:"LOG_LEVEL"`
	LogDev   bool   `env:"LOG_DEV"`
	LogFile  string `env:"LOG_FILE"`

	Version bool `env:"-"` // показать версию и выйти (только флаг)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env служат значениями флагов по умолчанию
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (SQLite файл/URI или postgres://)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи cookie сессии")
	flag.StringVar(&cfg.PasswordScheme, "password-scheme", cfg.PasswordScheme, "схема хеширования паролей: blake2b | bcrypt")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "cookie сессии только по HTTPS (Secure)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования: debug | info | warn | error")
	flag.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "человекочитаемые логи для разработки")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "дополнительно писать логи в файл с ежедневной ротацией")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "показать версию и выйти")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые поля и исправляет невалидный BaseURL.
func (cfg *Config) applyDefaults() {
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDatabaseDSN
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.PasswordScheme == "" {
		cfg.PasswordScheme = defaultScheme
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	// BaseURL должен быть в виде "address:port" (без схемы и пути), иначе значение по умолчанию
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
}
