package services

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
	ProviderOllama     = "ollama"
)

// Settings is the process configuration, read from the environment.
type Settings struct {
	LLMProvider    string
	LLMModel       string
	LLMAPIKey      string
	LLMBaseURL     string
	LLMTimeout     time.Duration
	LLMMaxAttempts int
	LLMTemperature float32

	NLPBackend    string
	MaxFileSizeMB int
	OutputDir     string
	ReportPrefix  string
	LogLevel      string
	EnabledTools  []string
}

// DefaultSettings loads the settings once per process. Invalid values are
// logged and replaced by defaults so the MCP server can still start.
var DefaultSettings = sync.OnceValue(func() *Settings {
	s, err := LoadSettings()
	if err != nil {
		logrus.WithError(err).Warn("Invalid settings, falling back to defaults")
		return defaultSettings()
	}
	return s
})

func defaultSettings() *Settings {
	return &Settings{
		LLMProvider:    ProviderOpenRouter,
		LLMModel:       "openai/gpt-4o-mini",
		LLMTimeout:     60 * time.Second,
		LLMMaxAttempts: 2,
		LLMTemperature: 0.3,
		NLPBackend:     "pattern",
		MaxFileSizeMB:  10,
		OutputDir:      "logs",
		ReportPrefix:   "contract_analysis",
		LogLevel:       "info",
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultSettings()
	v.SetDefault("llm_provider", d.LLMProvider)
	v.SetDefault("llm_model", d.LLMModel)
	v.SetDefault("llm_timeout", d.LLMTimeout)
	v.SetDefault("llm_max_attempts", d.LLMMaxAttempts)
	v.SetDefault("llm_temperature", d.LLMTemperature)
	v.SetDefault("nlp_backend", d.NLPBackend)
	v.SetDefault("max_file_size_mb", d.MaxFileSizeMB)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("report_filename_prefix", d.ReportPrefix)
	v.SetDefault("log_level", d.LogLevel)
}

// LoadSettings reads the environment on top of the defaults and validates the
// result. Values that do not parse read as zero and fail validation.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	s := &Settings{
		LLMProvider:    strings.ToLower(strings.TrimSpace(v.GetString("llm_provider"))),
		LLMModel:       strings.TrimSpace(v.GetString("llm_model")),
		LLMAPIKey:      v.GetString("llm_api_key"),
		LLMBaseURL:     v.GetString("llm_base_url"),
		LLMTimeout:     v.GetDuration("llm_timeout"),
		LLMMaxAttempts: v.GetInt("llm_max_attempts"),
		LLMTemperature: float32(v.GetFloat64("llm_temperature")),
		NLPBackend:     strings.ToLower(strings.TrimSpace(v.GetString("nlp_backend"))),
		MaxFileSizeMB:  v.GetInt("max_file_size_mb"),
		OutputDir:      v.GetString("output_dir"),
		ReportPrefix:   v.GetString("report_filename_prefix"),
		LogLevel:       v.GetString("log_level"),
	}

	if s.LLMAPIKey == "" {
		switch s.LLMProvider {
		case ProviderOpenRouter:
			s.LLMAPIKey = v.GetString("openrouter_api_key")
		case ProviderOpenAI:
			s.LLMAPIKey = v.GetString("openai_api_key")
		}
	}

	for _, name := range strings.Split(v.GetString("enable_tools"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			s.EnabledTools = append(s.EnabledTools, name)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks enumerations and limits.
func (s *Settings) Validate() error {
	switch s.LLMProvider {
	case ProviderOpenRouter, ProviderOpenAI, ProviderOllama:
	default:
		return errors.Errorf("unsupported LLM_PROVIDER %q", s.LLMProvider)
	}
	switch s.NLPBackend {
	case "pattern", "prose":
	default:
		return errors.Errorf("unsupported NLP_BACKEND %q", s.NLPBackend)
	}
	if s.LLMModel == "" {
		return errors.New("LLM_MODEL must not be empty")
	}
	if s.LLMTimeout <= 0 {
		return errors.Errorf("LLM_TIMEOUT must be positive, got %s", s.LLMTimeout)
	}
	if s.LLMMaxAttempts < 1 {
		return errors.Errorf("LLM_MAX_ATTEMPTS must be at least 1, got %d", s.LLMMaxAttempts)
	}
	if s.LLMTemperature < 0 || s.LLMTemperature > 2 {
		return errors.Errorf("LLM_TEMPERATURE must be within 0-2, got %v", s.LLMTemperature)
	}
	if s.MaxFileSizeMB <= 0 {
		return errors.Errorf("MAX_FILE_SIZE_MB must be positive, got %d", s.MaxFileSizeMB)
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return errors.Wrap(err, "LOG_LEVEL")
	}
	return nil
}

// MaxFileBytes converts the size limit to bytes.
func (s *Settings) MaxFileBytes() int64 {
	return int64(s.MaxFileSizeMB) << 20
}

// ToolEnabled reports whether an MCP tool group is enabled. An empty
// ENABLE_TOOLS enables everything.
func (s *Settings) ToolEnabled(name string) bool {
	if len(s.EnabledTools) == 0 {
		return true
	}
	for _, t := range s.EnabledTools {
		if t == name {
			return true
		}
	}
	return false
}
