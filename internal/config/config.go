package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DefaultLLM string                `toml:"default_llm"`
	LLMs       map[string]*LLMConfig `toml:"llm"`
	SerpAPI    SerpAPIConfig         `toml:"serpapi"`
	Gateway    GatewayConfig         `toml:"gateway"`
	DB         DBConfig              `toml:"db"`
	Trace      TraceConfig           `toml:"trace"`
	Owner      OwnerConfig           `toml:"owner"`
}

type LLMConfig struct {
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

type SerpAPIConfig struct {
	APIKey string `toml:"api_key"`
}

type GatewayConfig struct {
	Addr string `toml:"addr"`
}

type DBConfig struct {
	Path string `toml:"path"`
}

type TraceConfig struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
	URLPath  string `toml:"url_path"`
	APIKey   string `toml:"api_key"`
}

// OwnerConfig seeds the identity facts of both assistant profiles. Empty
// fields fall back to built-in defaults.
type OwnerConfig struct {
	Name   string `toml:"name"`
	Degree string `toml:"degree"`
	Email  string `toml:"email"`
	Phone  string `toml:"phone"`
}

func Load() (*Config, error) {
	cfg := &Config{
		DefaultLLM: "together",
		LLMs: map[string]*LLMConfig{
			"together": {
				Model:   "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free",
				BaseURL: "https://api.together.xyz/v1",
			},
		},
		Gateway: GatewayConfig{
			Addr: ":8686",
		},
		DB: DBConfig{
			Path: defaultDBPath(),
		},
	}

	path := configPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if cfg.SerpAPI.APIKey == "" {
		cfg.SerpAPI.APIKey = os.Getenv("SERPAPI_API_KEY")
	}

	return cfg, nil
}

func configPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "valet", "config.toml")
}

func defaultDBPath() string {
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, ".local", "share", "valet", "valet.db")
}
