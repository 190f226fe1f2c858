package core

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "hello.config.yml"
	DefaultAPIBase    = "http://localhost:8000"
	DefaultViewTTL    = 30
)

type Config struct {
	APIBase        string `yaml:"apiBase"`
	OutputDir      string `yaml:"outputDir"`
	PublicDir      string `yaml:"publicDir"`
	CacheEnabled   bool   `yaml:"cache"`
	DebugHeaders   bool   `yaml:"debugHeaders"`
	DebugLogs      bool   `yaml:"debugLogs"`
	WaitForAPI     bool   `yaml:"waitForAPI"`
	ViewTTLSeconds int    `yaml:"viewTTLSeconds"`
}

// LoadConfig reads the yaml file at path, then applies .env and HELLO_*
// environment overrides. A missing or unreadable file yields the defaults.
var LoadConfig = func(path string) *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, cfg)
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./cache"
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	if cfg.ViewTTLSeconds <= 0 {
		cfg.ViewTTLSeconds = DefaultViewTTL
	}
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("HELLO_API_BASE"); ok {
		cfg.APIBase = v
	}
	if v, ok := os.LookupEnv("HELLO_OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := os.LookupEnv("HELLO_PUBLIC_DIR"); ok {
		cfg.PublicDir = v
	}
	if v, ok := os.LookupEnv("HELLO_CACHE"); ok {
		cfg.CacheEnabled = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv("HELLO_DEBUG_HEADERS"); ok {
		cfg.DebugHeaders = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv("HELLO_DEBUG_LOGS"); ok {
		cfg.DebugLogs = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv("HELLO_WAIT_FOR_API"); ok {
		cfg.WaitForAPI = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv("HELLO_VIEW_TTL"); ok {
		cfg.ViewTTLSeconds = cast.ToInt(v)
	}
}
