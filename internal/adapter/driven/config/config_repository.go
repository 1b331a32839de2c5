package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/evcc-charging-report/internal/domain/repository"
	"github.com/diillson/evcc-charging-report/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// Load builds the configuration from the environment and, when filePath is
// non-empty, overlays it with a TOML, YAML or JSON file. File values win
// over environment values for the fields they set.
func (r *ConfigRepositoryImpl) Load(filePath string) (*types.Config, error) {
	cfg := fromEnv()

	if filePath == "" {
		return cfg, nil
	}

	fileCfg, err := loadConfigFile(filePath)
	if err != nil {
		return nil, err
	}

	merge(cfg, fileCfg)
	return cfg, nil
}

// fromEnv mirrors the recognized environment variables with their defaults.
// An empty EVCC_PASSWORD disables authentication against the API.
func fromEnv() *types.Config {
	return &types.Config{
		EvccURL:        envOr("EVCC_URL", "http://localhost:7070"),
		EvccPassword:   os.Getenv("EVCC_PASSWORD"),
		SMTPServer:     os.Getenv("SMTP_SERVER"),
		SMTPPort:       envIntOr("SMTP_PORT", 587),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
		RecipientEmail: os.Getenv("RECIPIENT_EMAIL"),
		SenderName:     envOr("SENDER_NAME", "John Doe"),
		SenderStreet:   envOr("SENDER_STREET", "Sample Street 123"),
		SenderCity:     envOr("SENDER_CITY", "12345 Sample City"),
		Locale:         envOr("LOCALE", "en_US.UTF-8"),
		OutputFolder:   envOr("OUTPUT_FOLDER", "./output"),
		ReportPrefix:   envOr("REPORT_PREFIX", "ChargingCostSummary"),
		Engine:         envOr("PDF_ENGINE", "native"),
	}
}

// loadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func loadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// merge overlays non-zero file fields onto the env-derived base.
func merge(base, overlay *types.Config) {
	if overlay.EvccURL != "" {
		base.EvccURL = overlay.EvccURL
	}
	if overlay.EvccPassword != "" {
		base.EvccPassword = overlay.EvccPassword
	}
	if overlay.SMTPServer != "" {
		base.SMTPServer = overlay.SMTPServer
	}
	if overlay.SMTPPort != 0 {
		base.SMTPPort = overlay.SMTPPort
	}
	if overlay.SenderEmail != "" {
		base.SenderEmail = overlay.SenderEmail
	}
	if overlay.SenderPassword != "" {
		base.SenderPassword = overlay.SenderPassword
	}
	if overlay.RecipientEmail != "" {
		base.RecipientEmail = overlay.RecipientEmail
	}
	if overlay.SenderName != "" {
		base.SenderName = overlay.SenderName
	}
	if overlay.SenderStreet != "" {
		base.SenderStreet = overlay.SenderStreet
	}
	if overlay.SenderCity != "" {
		base.SenderCity = overlay.SenderCity
	}
	if overlay.Locale != "" {
		base.Locale = overlay.Locale
	}
	if overlay.OutputFolder != "" {
		base.OutputFolder = overlay.OutputFolder
	}
	if overlay.ReportPrefix != "" {
		base.ReportPrefix = overlay.ReportPrefix
	}
	if len(overlay.ReportType) > 0 {
		base.ReportType = overlay.ReportType
	}
	if overlay.Engine != "" {
		base.Engine = overlay.Engine
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
