package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/tablemeta/lib/config/constants"
	"github.com/artie-labs/tablemeta/lib/hive/serde"
	"github.com/artie-labs/tablemeta/lib/stringutil"
	"github.com/artie-labs/tablemeta/models"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type Metrics struct {
	Provider constants.ExporterKind `yaml:"provider"`
	Settings map[string]any         `yaml:"settings,omitempty"`
}

type SerDe struct {
	// Aliases maps a deserializer identifier onto the canonical identifier it should resolve to.
	Aliases map[string]string `yaml:"aliases"`
}

type Config struct {
	Reporting struct {
		Sentry *Sentry `yaml:"sentry"`
	} `yaml:"reporting"`

	Telemetry struct {
		Metrics Metrics `yaml:"metrics"`
	} `yaml:"telemetry"`

	SerDe SerDe `yaml:"serde"`
}

func readFileToConfig(pathToConfig string) (*Config, error) {
	bytes, err := os.ReadFile(pathToConfig)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the aliases and the metrics provider. An empty provider means metrics are disabled.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	for alias, canonical := range c.SerDe.Aliases {
		if stringutil.IsBlank(alias) || stringutil.IsBlank(canonical) {
			return fmt.Errorf("config is invalid, serde alias %q -> %q cannot have an empty side", alias, canonical)
		}

		if alias == canonical {
			return fmt.Errorf("config is invalid, serde alias %q cannot point to itself", alias)
		}
	}

	// Aliases resolve a single level, so the target has to be a deserializer and not another alias.
	builtInAliases := serde.NewDefaultRegistry().Aliases()
	for alias, canonical := range c.SerDe.Aliases {
		_, isConfigAlias := c.SerDe.Aliases[canonical]
		_, isBuiltInAlias := builtInAliases[canonical]
		if isConfigAlias || isBuiltInAlias {
			return fmt.Errorf("config is invalid, serde alias %q points to %q which is itself an alias", alias, canonical)
		}
	}

	if provider := c.Telemetry.Metrics.Provider; provider != "" && !slices.Contains(constants.SupportedExporterKinds, provider) {
		return fmt.Errorf("config is invalid, metrics provider %q is not supported", provider)
	}

	return nil
}

// ReadTablesFile reads a YAML list of metastore tables.
func ReadTablesFile(path string) ([]models.Table, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	var tables []models.Table
	if err = yaml.Unmarshal(bytes, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse tables file: %w", err)
	}

	return tables, nil
}
