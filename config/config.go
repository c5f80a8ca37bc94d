package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "github.com/expki/go-constructsim/env"
)

// ParseConfig parses the raw JSON configuration.
func ParseConfig(raw []byte) (config Config, err error) {
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	return config, nil
}

// LoadFile reads and parses the configuration file at path.
func LoadFile(path string) (config Config, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Join(fmt.Errorf("read config file %q", path), err)
	}
	return ParseConfig(raw)
}

type Config struct {
	Ollama   AI       `json:"ollama"`
	OpenAI   AI       `json:"openai"`
	Database Database `json:"database"`
	Pipeline Pipeline `json:"pipeline"`
	LogLevel LogLevel `json:"log_level"`
}
