package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyStoragePath           = "storage.path"
	KeyReportDominantShare   = "report.dominant_share"
	KeyReportOverworkMinutes = "report.overwork_minutes"
	KeyVoiceCommand          = "voice.command"
	KeyVoiceTimeoutSeconds   = "voice.timeout_seconds"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Voice   VoiceConfig   `mapstructure:"voice"`
}

type StorageConfig struct {
	// Path overrides the default data file location. The TEMPO_DATA
	// environment variable takes precedence over this value.
	Path string `mapstructure:"path"`
}

type ReportConfig struct {
	// DominantShare is the fraction of total minutes above which one
	// activity triggers a diversification suggestion.
	DominantShare float64 `mapstructure:"dominant_share" validate:"gt=0,lte=1"`
	// OverworkMinutes is the per-period total above which a rest
	// suggestion fires.
	OverworkMinutes int `mapstructure:"overwork_minutes" validate:"gte=0"`
}

type VoiceConfig struct {
	// Command is the external recognizer invocation; empty means voice
	// capture is unavailable.
	Command        string `mapstructure:"command"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# tempo configuration
storage:
  # Data file location; overridden by the TEMPO_DATA environment variable.
  # Defaults to $HOME/.tempo/data.json when empty.
  path: ""

report:
  # One activity above this share of total time triggers a mix-it-up hint.
  dominant_share: 0.6
  # Totals above this many minutes per period trigger a rest hint.
  overwork_minutes: 600

voice:
  # External speech recognizer command printing recognized text on stdout.
  # Leave empty to disable voice capture.
  command: ""
  timeout_seconds: 15
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStoragePath, "")
	v.SetDefault(KeyReportDominantShare, 0.6)
	v.SetDefault(KeyReportOverworkMinutes, 600)
	v.SetDefault(KeyVoiceCommand, "")
	v.SetDefault(KeyVoiceTimeoutSeconds, 15)
}
