// Package config loads the gateway settings from an optional YAML file with
// environment variable overrides. The resulting Settings value is constructed
// once at process start and passed explicitly to the components that need it;
// there is no ambient global lookup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/sqlgate/config"
	ConfigFileName    = "sqlgate.yml"
)

// ValidAlgorithms is the list of accepted JWT signing algorithms.
var ValidAlgorithms = []string{"HS256", "HS384", "HS512"}

// Settings holds all gateway configuration.
type Settings struct {
	// ParameterDatabaseURL is the connection URL of the database holding
	// tb_parameter and tb_user.
	ParameterDatabaseURL string `yaml:"parameter_database_url"`

	// TransactionDatabaseURL is the connection URL of the database that raw
	// SQL statements execute against.
	TransactionDatabaseURL string `yaml:"transaction_database_url"`

	// JWTSecret signs access tokens.
	JWTSecret string `yaml:"jwt_secret"`

	// JWTAlgorithm is the HMAC signing algorithm for access tokens.
	JWTAlgorithm string `yaml:"jwt_algorithm"`

	// JWTExpireMinutes is the access token lifetime in minutes.
	JWTExpireMinutes int `yaml:"jwt_expire_minutes"`

	// BindAddress and Port are the HTTP listen address.
	BindAddress string `yaml:"bind_address"`
	Port        string `yaml:"port"`

	// ReportTemplateDir holds report templates; ReportOutputDir receives
	// rendered report files.
	ReportTemplateDir string `yaml:"report_template_dir"`
	ReportOutputDir   string `yaml:"report_output_dir"`

	configFilePath string
}

func newDefault() *Settings {
	return &Settings{
		JWTAlgorithm:      "HS256",
		JWTExpireMinutes:  30,
		BindAddress:       "0.0.0.0",
		Port:              "8000",
		ReportTemplateDir: "templates",
		ReportOutputDir:   "reports",
	}
}

// Load reads settings from the config file (if present) and then applies
// environment variable overrides.
func Load() (*Settings, error) {
	settings := newDefault()

	configPath := os.Getenv("SQLGATE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	settings.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(settings.configFilePath); err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", settings.configFilePath, err)
		}
	}

	settings.applyEnv()

	return settings, nil
}

func (s *Settings) applyEnv() {
	if val := os.Getenv("SQLGATE_PARAMETER_DATABASE_URL"); val != "" {
		s.ParameterDatabaseURL = val
	}
	if val := os.Getenv("SQLGATE_TRANSACTION_DATABASE_URL"); val != "" {
		s.TransactionDatabaseURL = val
	}
	if val := os.Getenv("SQLGATE_JWT_SECRET"); val != "" {
		s.JWTSecret = val
	}
	if val := os.Getenv("SQLGATE_JWT_ALGORITHM"); val != "" {
		s.JWTAlgorithm = val
	}
	if val := os.Getenv("SQLGATE_JWT_EXPIRE_MINUTES"); val != "" {
		var minutes int
		if _, err := fmt.Sscanf(val, "%d", &minutes); err == nil && minutes > 0 {
			s.JWTExpireMinutes = minutes
		}
	}
	if val := os.Getenv("SQLGATE_BIND_ADDRESS"); val != "" {
		s.BindAddress = val
	}
	if val := os.Getenv("SQLGATE_PORT"); val != "" {
		s.Port = val
	}
	if val := os.Getenv("SQLGATE_REPORT_TEMPLATE_DIR"); val != "" {
		s.ReportTemplateDir = val
	}
	if val := os.Getenv("SQLGATE_REPORT_OUTPUT_DIR"); val != "" {
		s.ReportOutputDir = val
	}
}

// Validate checks that everything required to serve requests is present.
func (s *Settings) Validate() error {
	if s.ParameterDatabaseURL == "" {
		return fmt.Errorf("parameter_database_url is required (SQLGATE_PARAMETER_DATABASE_URL)")
	}
	if s.TransactionDatabaseURL == "" {
		return fmt.Errorf("transaction_database_url is required (SQLGATE_TRANSACTION_DATABASE_URL)")
	}
	if s.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required (SQLGATE_JWT_SECRET)")
	}

	valid := false
	for _, alg := range ValidAlgorithms {
		if s.JWTAlgorithm == alg {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid jwt_algorithm: %s", s.JWTAlgorithm)
	}

	if s.JWTExpireMinutes <= 0 {
		return fmt.Errorf("jwt_expire_minutes must be positive")
	}
	return nil
}

// TokenTTL returns the access token lifetime as a duration.
func (s *Settings) TokenTTL() time.Duration {
	return time.Duration(s.JWTExpireMinutes) * time.Minute
}

// ConfigFilePath returns the path the settings were loaded from.
func (s *Settings) ConfigFilePath() string {
	return s.configFilePath
}
