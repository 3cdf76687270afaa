package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

type StorageDriver string

const (
	StorageSQLite   StorageDriver = "sqlite"
	StorageDynamoDB StorageDriver = "dynamodb"
)

type Config struct {
	HTTP       HTTPConfig       `toml:"http"`
	Storage    StorageConfig    `toml:"storage"`
	Logging    LoggingConfig    `toml:"logging"`
	Rates      RatesConfig      `toml:"rates"`
	Accounting AccountingConfig `toml:"accounting"`
}

type HTTPConfig struct {
	Addr    string `toml:"addr"`
	Swagger bool   `toml:"swagger"`
}

type StorageConfig struct {
	Driver     StorageDriver  `toml:"driver"`
	SQLitePath string         `toml:"sqlite_path"`
	DynamoDB   DynamoDBConfig `toml:"dynamodb"`
}

type DynamoDBConfig struct {
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	TasksTable      string `toml:"tasks_table"`
	LogsTable       string `toml:"logs_table"`
	LocksTable      string `toml:"locks_table"`
	AuditTable      string `toml:"audit_table"`
	VariantsTable   string `toml:"variants_table"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json | logfmt
}

// RatesConfig holds hourly cost rates. Service rates win over workstation
// rates, which win over the default.
type RatesConfig struct {
	DefaultHourly float64            `toml:"default_hourly"`
	Workstations  map[string]float64 `toml:"workstations"`
	Services      map[string]float64 `toml:"services"`
}

type AccountingConfig struct {
	HoursPrecision    int `toml:"hours_precision"`
	CurrencyPrecision int `toml:"currency_precision"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:    ":8080",
			Swagger: true,
		},
		Storage: StorageConfig{
			Driver:     StorageSQLite,
			SQLitePath: "data/rcp.db",
			DynamoDB: DynamoDBConfig{
				Region:          "us-east-1",
				AccessKeyID:     "local",
				SecretAccessKey: "local",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Rates: RatesConfig{
			Workstations: map[string]float64{},
			Services:     map[string]float64{},
		},
		Accounting: AccountingConfig{
			HoursPrecision:    4,
			CurrencyPrecision: 2,
		},
	}
}

// Load reads an optional TOML file over defaults. A missing or empty file
// keeps the defaults.
func Load(fs afero.Fs, path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides file values with environment variables.
func (c Config) ApplyEnv(getenv func(string) string) (Config, error) {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	str("HTTP_ADDR", &c.HTTP.Addr)
	if v := strings.TrimSpace(getenv("HTTP_SWAGGER")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HTTP_SWAGGER: %w", err)
		}
		c.HTTP.Swagger = b
	}
	if v := strings.TrimSpace(getenv("STORAGE_DRIVER")); v != "" {
		c.Storage.Driver = StorageDriver(strings.ToLower(v))
	}
	str("SQLITE_PATH", &c.Storage.SQLitePath)
	str("AWS_REGION", &c.Storage.DynamoDB.Region)
	str("AWS_ACCESS_KEY_ID", &c.Storage.DynamoDB.AccessKeyID)
	str("AWS_SECRET_ACCESS_KEY", &c.Storage.DynamoDB.SecretAccessKey)
	str("DYNAMODB_ENDPOINT", &c.Storage.DynamoDB.Endpoint)
	str("TASKS_TABLE", &c.Storage.DynamoDB.TasksTable)
	str("LOGS_TABLE", &c.Storage.DynamoDB.LogsTable)
	str("LOCKS_TABLE", &c.Storage.DynamoDB.LocksTable)
	str("AUDIT_TABLE", &c.Storage.DynamoDB.AuditTable)
	str("VARIANTS_TABLE", &c.Storage.DynamoDB.VariantsTable)
	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	if v := strings.TrimSpace(getenv("DEFAULT_HOURLY_RATE")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DEFAULT_HOURLY_RATE: %w", err)
		}
		c.Rates.DefaultHourly = f
	}
	return c, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http.addr is required")
	}
	switch c.Storage.Driver {
	case StorageSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return errors.New("storage.sqlite_path is required for the sqlite driver")
		}
	case StorageDynamoDB:
		if strings.TrimSpace(c.Storage.DynamoDB.Region) == "" {
			return errors.New("storage.dynamodb.region is required for the dynamodb driver")
		}
	default:
		return fmt.Errorf("invalid storage.driver: %q", c.Storage.Driver)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid logging.format: %q", c.Logging.Format)
	}
	if c.Rates.DefaultHourly < 0 {
		return errors.New("rates.default_hourly must be >= 0")
	}
	for id, rate := range c.Rates.Workstations {
		if rate < 0 {
			return fmt.Errorf("rates.workstations.%s must be >= 0", id)
		}
	}
	for id, rate := range c.Rates.Services {
		if rate < 0 {
			return fmt.Errorf("rates.services.%s must be >= 0", id)
		}
	}
	if c.Accounting.HoursPrecision < 0 || c.Accounting.HoursPrecision > 9 {
		return fmt.Errorf("accounting.hours_precision out of range: %d", c.Accounting.HoursPrecision)
	}
	if c.Accounting.CurrencyPrecision < 0 || c.Accounting.CurrencyPrecision > 6 {
		return fmt.Errorf("accounting.currency_precision out of range: %d", c.Accounting.CurrencyPrecision)
	}
	return nil
}

// FromEnvironment resolves the runtime config: defaults, then the file named
// by RCP_CONFIG (or path when set), then environment overrides.
func FromEnvironment(fs afero.Fs, path string, getenv func(string) string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = getenv("RCP_CONFIG")
	}
	cfg, err := Load(fs, path, Default())
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	cfg, err = cfg.ApplyEnv(getenv)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
