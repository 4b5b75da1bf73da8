// Package config loads habla's configuration file. The core stores take
// explicit paths; config only tells the binaries which paths and services to
// use.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all habla configuration.
type Config struct {
	// Data documents. Defaults keep the original file names so existing
	// data sets drop in unchanged.
	BoardFile  string `yaml:"board_file"`
	PhraseFile string `yaml:"phrase_file"`

	// Feedback report artifact and export default.
	ReportFile string `yaml:"report_file"`

	// Spoken-utterance history database.
	HistoryFile string `yaml:"history_file"`

	// Log file. The TUI owns the terminal, so logs go to a file.
	LogFile string `yaml:"log_file"`

	// BCP-47 language for synthesis and recognition.
	Language string `yaml:"language"`

	Speech SpeechConfig `yaml:"speech"`
	Gemini GeminiConfig `yaml:"gemini"`
}

// SpeechConfig configures the Google Cloud speech clients.
type SpeechConfig struct {
	Voice           string  `yaml:"voice"`
	Rate            float64 `yaml:"rate"`
	CredentialsFile string  `yaml:"credentials_file"`
}

// GeminiConfig configures the emotion classifier.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BoardFile:   "data_es_final.json",
		PhraseFile:  "frases_es_final.json",
		ReportFile:  "feedback_report.csv",
		HistoryFile: "habla_history.db",
		LogFile:     "habla.log",
		Language:    "es-ES",
		Speech: SpeechConfig{
			Rate: 1.0,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
	}
}

// Load reads the config file at path, applying defaults for anything left
// unset. A missing file yields the defaults. The Gemini API key falls back
// to the GEMINI_API_KEY environment variable when the file does not set it.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyDefaults(cfg)
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.BoardFile == "" {
		cfg.BoardFile = def.BoardFile
	}
	if cfg.PhraseFile == "" {
		cfg.PhraseFile = def.PhraseFile
	}
	if cfg.ReportFile == "" {
		cfg.ReportFile = def.ReportFile
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = def.HistoryFile
	}
	if cfg.LogFile == "" {
		cfg.LogFile = def.LogFile
	}
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	if cfg.Speech.Rate <= 0 {
		cfg.Speech.Rate = def.Speech.Rate
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = def.Gemini.Model
	}
}
