package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Library    LibraryConfig    `yaml:"library"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	SpeechText SpeechTextConfig `yaml:"speech_to_text"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type LibraryConfig struct {
	Root string `yaml:"root"`
}

type FFmpegConfig struct {
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
}

type SpeechTextConfig struct {
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

type ClassifierConfig struct {
	Model        string `yaml:"model"`
	MaxTokens    int    `yaml:"max_tokens"`
	TokenCeiling int    `yaml:"token_ceiling"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Secrets holds the API keys for the two external AI services.
// Both are required before any pipeline stage runs.
type Secrets struct {
	ElevenLabsAPIKey string
	AnthropicAPIKey  string
}

// Load reads the YAML config file. A missing file is not an error:
// all settings have working defaults via Validate.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Library.Root == "" {
		c.Library.Root = "library"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "128k"
	}
	if c.SpeechText.BaseURL == "" {
		c.SpeechText.BaseURL = "https://api.elevenlabs.io/v1"
	}
	if c.SpeechText.Model == "" {
		c.SpeechText.Model = "scribe_v1"
	}
	if c.SpeechText.TimeoutSec == 0 {
		c.SpeechText.TimeoutSec = 20 * 60
	}
	if c.SpeechText.TimeoutSec < 0 {
		return fmt.Errorf("speech_to_text.timeout_sec must be positive")
	}
	if c.Classifier.Model == "" {
		c.Classifier.Model = "claude-sonnet-4-5"
	}
	if c.Classifier.MaxTokens == 0 {
		c.Classifier.MaxTokens = 1024
	}
	if c.Classifier.TokenCeiling == 0 {
		c.Classifier.TokenCeiling = 150000
	}
	if c.Classifier.TokenCeiling < 0 {
		return fmt.Errorf("classifier.token_ceiling must be positive")
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// LoadSecrets resolves the required API keys from the environment.
// The caller is expected to have loaded the .env file beforehand.
func LoadSecrets() (*Secrets, error) {
	s := &Secrets{
		ElevenLabsAPIKey: os.Getenv("ELEVENLABS_API_KEY"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
	}
	if s.ElevenLabsAPIKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY is not set")
	}
	if s.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}
	return s, nil
}
