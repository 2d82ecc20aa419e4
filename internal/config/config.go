package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// KartaslovConfig configures the kartaslov.ru scraper.
type KartaslovConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	Insecure    bool   `yaml:"insecure,omitempty"`
}

// PymorphyConfig configures the pymorphy tagger process.
type PymorphyConfig struct {
	Python string `yaml:"python"`
	Module string `yaml:"module"`
}

// LLMConfig configures the language-model backend.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai | gemini
	BaseURL   string `yaml:"base_url,omitempty"`
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
}

// CacheConfig configures the decomposition cache.
type CacheConfig struct {
	TTLSecs int `yaml:"ttl_secs"` // 0 disables the memory cache
	// PostgresDSNEnv names the env var holding a DSN; unset or empty
	// disables the persistent layer.
	PostgresDSNEnv string `yaml:"postgres_dsn_env,omitempty"`
	MaxAgeHours    int    `yaml:"max_age_hours,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Decomposer string          `yaml:"decomposer"` // kartaslov | llm | lexicon
	Tagger     string          `yaml:"tagger"`     // pymorphy | llm | lexicon
	Lexicon    string          `yaml:"lexicon,omitempty"`
	Verbose    bool            `yaml:"verbose,omitempty"`
	Kartaslov  KartaslovConfig `yaml:"kartaslov"`
	Pymorphy   PymorphyConfig  `yaml:"pymorphy"`
	LLM        LLMConfig       `yaml:"llm"`
	Cache      CacheConfig     `yaml:"cache"`
}

// TTL is the memory cache lifetime.
func (c CacheConfig) TTL() time.Duration { return time.Duration(c.TTLSecs) * time.Second }

// MaxAge is how long stored decompositions stay valid; 0 means forever.
func (c CacheConfig) MaxAge() time.Duration { return time.Duration(c.MaxAgeHours) * time.Hour }

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	cfg.LLM = LLMConfig{} // provider-specific defaults are filled after reading
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./wordform.yaml first, then ~/.config/wordform/config.yaml.
// If neither exists it returns defaults and an empty path.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "wordform.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := DefaultUserPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	return Default(), "", nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultUserPath is ~/.config/wordform/config.yaml.
func DefaultUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wordform", "config.yaml"), nil
}

// Default returns the built-in configuration: kartaslov + pymorphy with a
// ten-minute memory cache.
func Default() *AppConfig {
	cfg := &AppConfig{
		Decomposer: "kartaslov",
		Tagger:     "pymorphy",
		Kartaslov:  KartaslovConfig{BaseURL: "https://kartaslov.ru", TimeoutSecs: 15},
		Pymorphy:   PymorphyConfig{Python: "python3", Module: "pymorphy2"},
		LLM:        LLMConfig{Provider: "openai"},
		Cache:      CacheConfig{TTLSecs: 600},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Decomposer == "" {
		cfg.Decomposer = "kartaslov"
	}
	if cfg.Tagger == "" {
		cfg.Tagger = "pymorphy"
	}
	if cfg.Kartaslov.BaseURL == "" {
		cfg.Kartaslov.BaseURL = "https://kartaslov.ru"
	}
	if cfg.Kartaslov.TimeoutSecs == 0 {
		cfg.Kartaslov.TimeoutSecs = 15
	}
	switch cfg.LLM.Provider {
	case "gemini":
		if cfg.LLM.APIKeyEnv == "" {
			cfg.LLM.APIKeyEnv = "GEMINI_API_KEY"
		}
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = "gemini-2.5-flash"
		}
	default:
		cfg.LLM.Provider = "openai"
		if cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.LLM.APIKeyEnv == "" {
			cfg.LLM.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = "gpt-5-mini"
		}
	}
}
