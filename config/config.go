package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	HTTP       HTTPConfig       `json:"http"`
	Log        LogConfig        `json:"log"`
	Completion CompletionConfig `json:"completion"`
	Tracing    *TracingConfig   `json:"tracing,omitempty"`
}

type HTTPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type LogConfig struct {
	Level string `json:"level"`
}

// CompletionConfig tunes the single call made to the completion service per
// operation. The API credential is never read from this file, only from the
// environment.
type CompletionConfig struct {
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	BaseURL     string   `json:"base_url,omitempty"`
}

type TracingConfig struct {
	ServiceName string `json:"service_name,omitempty"`
	Exporter    string `json:"exporter,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
