package config

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"io/fs"
	"path"
	"strings"
	"time"
)

// Config for the whole application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Backend  BackendConfig  `mapstructure:"backend"`

	// Timezone decides the calendar day of "today", example Asia/Ho_Chi_Minh
	Timezone string `mapstructure:"timezone"`
}

// CacheConfig for the venue ad list cache
type CacheConfig struct {
	LocalSize       int             `mapstructure:"local_size"`
	LocalTTLSeconds int             `mapstructure:"local_ttl_seconds"`
	TTLSeconds      uint32          `mapstructure:"ttl_seconds"`
	LeaseWaits      []time.Duration `mapstructure:"lease_waits"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	URL       string `mapstructure:"url"`
	Env       string `mapstructure:"env"`
	Namespace string `mapstructure:"namespace"`
}

// BackendConfig is used by the takeover command to reach a running server
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Location parses Timezone, empty means local time
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

const envPrefix = "BOOTH_ADS"

func defaultConfig() []byte {
	return []byte(`
server:
  grpc:
    host: localhost
    port: 5000
  http:
    host: localhost
    port: 5001

log:
  level: info
  format: json

mysql:
  host: localhost
  port: 3306
  database: booth_ads
  username: root
  password: "1"
  max_open_conns: 20
  max_idle_conns: 5
  options:
    - key: parseTime
      value: "true"
    - key: multiStatements
      value: "true"

memcache:
  host: localhost
  port: 11211
  num_conns: 4

cache:
  local_size: 16777216
  local_ttl_seconds: 5
  ttl_seconds: 300
  lease_waits: [10ms, 20ms, 50ms, 100ms]

jaeger:
  enabled: false
  url: http://localhost:14268/api/traces
  env: local
  namespace: booth-ads

backend:
  base_url: http://localhost:5001
  timeout: 5s

timezone: ""
`)
}

func loadConfig(configFile string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	err := v.ReadConfig(bytes.NewReader(defaultConfig()))
	if err != nil {
		return Config{}, err
	}

	v.SetConfigFile(configFile)
	err = v.MergeInConfig()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Load reads defaults, then config.yml in the working directory, then BOOTH_ADS_* env vars
func Load() Config {
	conf, err := loadConfig("config.yml")
	if err != nil {
		panic(err)
	}
	return conf
}

// LoadTestConfig reads config.test.yml in rootDir
func LoadTestConfig(rootDir string) Config {
	conf, err := loadConfig(path.Join(rootDir, "config.test.yml"))
	if err != nil {
		panic(err)
	}
	return conf
}

// Redacted returns a printable copy without secrets
func (c Config) Redacted() Config {
	c.MySQL.Password = "***"
	return c
}
