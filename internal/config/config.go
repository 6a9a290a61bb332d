// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// minJWTSecretLen — минимальная длина секрета подписи в байтах.
// Короткий секрет — это ошибка конфигурации, а не повод молча деградировать.
const minJWTSecretLen = 32

// ErrWeakSecret — секрет подписи отсутствует или короче minJWTSecretLen.
// Фатальная ошибка старта, сервис с таким секретом не поднимается.
var ErrWeakSecret = errors.New("jwt secret is missing or too short")

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл .yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Auth     AuthConfig    `yaml:"auth"`
	Sessions SessionConfig `yaml:"sessions"`
	OneTime  OneTimeConfig `yaml:"one_time"`
	DB       DBConfig      `yaml:"db"`
	Redis    RedisConfig   `yaml:"redis"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Request — дедлайн обработки одного входящего запроса.
	Request time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"5s"`
	// Store — дедлайн одного обращения к Redis/Postgres.
	Store time.Duration `yaml:"store" env:"STORE_TIMEOUT" env-default:"2s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50081"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	// RefreshTokenTTL — срок refresh-токена при обычном логине.
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"168h"`
	// ExtendedRefreshTokenTTL — срок refresh-токена при remember-me.
	ExtendedRefreshTokenTTL time.Duration `yaml:"extended_refresh_token_ttl" env:"EXTENDED_REFRESH_TOKEN_TTL" env-default:"720h"`
	Issuer                  string        `yaml:"issuer"   env:"ISSUER" env-default:"auth-service"`
	Audience                []string      `yaml:"audience" env:"AUDIENCE" env-default:"studyhive-backend"`
}

// SessionConfig — сроки жизни сессий и blacklist-записей.
type SessionConfig struct {
	// IdleTTL — скользящее окно неактивности сессии.
	IdleTTL time.Duration `yaml:"idle_ttl" env:"SESSION_IDLE_TTL" env-default:"24h"`
	// BlacklistTTL — удержание отозванного access-токена в blacklist.
	// Должно превышать максимальный срок жизни самого токена.
	BlacklistTTL time.Duration `yaml:"blacklist_ttl" env:"SESSION_BLACKLIST_TTL" env-default:"48h"`
}

// OneTimeConfig — сроки жизни одноразовых токенов.
type OneTimeConfig struct {
	VerificationTTL time.Duration `yaml:"verification_ttl" env:"VERIFICATION_TOKEN_TTL" env-default:"48h"`
	ResetTTL        time.Duration `yaml:"reset_ttl" env:"RESET_TOKEN_TTL" env-default:"24h"`
	// UsedRetention — удержание used-маркера потреблённого токена;
	// с запасом перекрывает любой допуск на рассинхронизацию часов.
	UsedRetention time.Duration `yaml:"used_retention" env:"USED_TOKEN_RETENTION" env-default:"72h"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

type RedisConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL" env-required:"true"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
// Загруженная конфигурация проходит Validate.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	load := func() (*Config, error) {
		// 1) Явный путь.
		if path != "" {
			return tryRead(path)
		}

		// 2) CONFIG_PATH.
		if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
			return tryRead(envPath)
		}

		// 3) ./local.yaml.
		if _, err := os.Stat("local.yaml"); err == nil {
			return tryRead("local.yaml")
		}

		// 4) Только ENV.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}

		return &cfg, nil
	}

	c, err := load()
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate проверяет инварианты конфигурации, нарушение которых делает
// запуск небезопасным. Секрет подписи обязан быть не короче minJWTSecretLen
// байт — усечённый/пустой секрет не принимается.
func (c *Config) Validate() error {
	if err := ValidateSecret(c.Auth.JWTSecret); err != nil {
		return err
	}

	if c.Sessions.BlacklistTTL < c.Auth.AccessTokenTTL {
		// Запись blacklist обязана переживать сам access-токен,
		// иначе отозванный токен «воскреснет» после истечения записи.
		return fmt.Errorf("config: blacklist_ttl %s is shorter than access_token_ttl %s",
			c.Sessions.BlacklistTTL, c.Auth.AccessTokenTTL)
	}

	return nil
}

// ValidateSecret отклоняет отсутствующий или слишком короткий секрет подписи.
func ValidateSecret(secret string) error {
	if len(secret) < minJWTSecretLen {
		return fmt.Errorf("config: %w (min %d bytes)", ErrWeakSecret, minJWTSecretLen)
	}

	return nil
}
