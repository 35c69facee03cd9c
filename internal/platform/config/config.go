package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix は環境変数による上書きの接頭辞です。
const EnvPrefix = "SISTEMADP"

const (
	BackendPostgres = "postgres"
	BackendSheet    = "sheet"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Env      string         `yaml:"env"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Backend  string         `yaml:"backend"`
	Database DatabaseConfig `yaml:"database"`
	Sheet    SheetConfig    `yaml:"sheet"`
	Redis    RedisConfig    `yaml:"redis"`
	Archive  ArchiveConfig  `yaml:"archive"`
}

// ServerConfig は gRPC サーバーと HTTP エクスポートに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	HTTPAddr   string `yaml:"http_addr"`
	RateLimit  int    `yaml:"rate_limit"`
}

// LogConfig はログ出力の設定です。
type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
	// StatementTimeout はサーバー側で 1 文に許す時間です。0 の場合は設定しません。
	StatementTimeout    time.Duration `yaml:"-"`
	StatementTimeoutRaw string        `yaml:"statement_timeout"`
}

// SheetConfig はフラットストア (xlsx ワークブック) の設定です。
type SheetConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig は選択状態の保存先の設定です。Addr が空の場合はプロセス内に保持します。
type RedisConfig struct {
	Addr            string        `yaml:"addr"`
	Password        string        `yaml:"password"`
	DB              int           `yaml:"db"`
	SelectionTTL    time.Duration `yaml:"-"`
	SelectionTTLRaw string        `yaml:"selection_ttl"`
}

// ArchiveConfig はアーカイブ処理の設定です。
type ArchiveConfig struct {
	BatchSize int `yaml:"batch_size"`
}

// overrides は環境変数で上書きできる項目です。
type overrides struct {
	Backend          string `envconfig:"BACKEND"`
	SheetPath        string `envconfig:"SHEET_PATH"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD"`
	RedisAddr        string `envconfig:"REDIS_ADDR"`
	RedisPassword    string `envconfig:"REDIS_PASSWORD"`
	LogLevel         string `envconfig:"LOG_LEVEL"`
	LogFormat        string `envconfig:"LOG_FORMAT"`
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	var o overrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Backend, o.Backend)
	set(&c.Sheet.Path, o.SheetPath)
	set(&c.Database.Password, o.DatabasePassword)
	set(&c.Redis.Addr, o.RedisAddr)
	set(&c.Redis.Password, o.RedisPassword)
	set(&c.Log.Level, o.LogLevel)
	set(&c.Log.Format, o.LogFormat)
	return nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = ":8080"
	}
	if c.Server.RateLimit <= 0 {
		c.Server.RateLimit = 30
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Archive.BatchSize <= 0 {
		c.Archive.BatchSize = 500
	}

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case "", BackendPostgres:
		c.Backend = BackendPostgres
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	case BackendSheet:
		if c.Sheet.Path == "" {
			return fmt.Errorf("config: sheet.path must be set")
		}
	default:
		return fmt.Errorf("config: backend must be %q or %q, got %q", BackendPostgres, BackendSheet, c.Backend)
	}

	ttl, err := parseDurationAllowEmpty(c.Redis.SelectionTTLRaw)
	if err != nil {
		return fmt.Errorf("config: redis.selection_ttl: %w", err)
	}
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	c.Redis.SelectionTTL = ttl

	return nil
}

// IsProduction は本番環境で動作している場合に true を返します。
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	stmt, err := parseDurationAllowEmpty(d.StatementTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: database.statement_timeout: %w", err)
	}
	d.StatementTimeout = stmt

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。ユーザー名とパスワードはエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
