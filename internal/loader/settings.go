package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/bulkbuild/internal/automation"
	"github.com/napolitain/bulkbuild/internal/models"
)

var validate = validator.New()

// SettingsYAML represents the YAML structure of the automation settings
type SettingsYAML struct {
	DefaultBatch *int                    `yaml:"default_batch" validate:"omitempty,min=0"`
	Sections     map[string]SectionYAML  `yaml:"sections" validate:"dive"`
	Resources    map[string]ResourceYAML `yaml:"resources" validate:"dive"`
}

// SectionYAML represents the YAML structure of one section
type SectionYAML struct {
	Enabled bool                `yaml:"enabled"`
	Trigger float64             `yaml:"trigger" validate:"min=0,max=1"`
	Items   map[string]ItemYAML `yaml:"items" validate:"dive"`
}

// ItemYAML represents the YAML structure of one item. A listed item is
// enabled and unlimited unless it says otherwise.
type ItemYAML struct {
	Enabled *bool  `yaml:"enabled"`
	Max     *int   `yaml:"max" validate:"omitempty,min=-1"`
	Variant string `yaml:"variant" validate:"omitempty,oneof=ziggurat orderOfTheSun cryptotheology"`
}

// ResourceYAML represents the YAML structure of one resource
type ResourceYAML struct {
	Stock float64 `yaml:"stock" validate:"min=0"`
}

// LoadSettings loads automation settings from a YAML file
func LoadSettings(path string) (*automation.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	settings, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	return settings, nil
}

// ParseSettings builds validated settings from YAML bytes
func ParseSettings(data []byte) (*automation.Settings, error) {
	var raw SettingsYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	settings := automation.DefaultSettings()
	if raw.DefaultBatch != nil {
		settings.DefaultBatch = *raw.DefaultBatch
	}

	for name, rs := range raw.Sections {
		section, err := parseSection(name)
		if err != nil {
			return nil, err
		}
		ss := automation.SectionSettings{
			Enabled: rs.Enabled,
			Trigger: rs.Trigger,
			Items:   make(map[models.ItemID]automation.ItemSettings, len(rs.Items)),
		}
		for id, ri := range rs.Items {
			is := automation.ItemSettings{
				Enabled: true,
				Max:     automation.Unlimited,
				Variant: automation.Variant(ri.Variant),
			}
			if ri.Enabled != nil {
				is.Enabled = *ri.Enabled
			}
			if ri.Max != nil {
				is.Max = *ri.Max
			}
			ss.Items[models.ItemID(id)] = is
		}
		settings.Sections[section] = ss
	}

	for name, rr := range raw.Resources {
		settings.Resources[models.ResourceType(name)] = automation.ResourceSettings{Stock: rr.Stock}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
