// Package automation runs the per-section build managers: it decides which
// items to buy, delegates each batch to the bulk constructor, and reports
// what was built.
package automation

import (
	"errors"
	"fmt"

	"github.com/napolitain/bulkbuild/internal/models"
)

// ErrNotAutomated is returned when an item or its section is not enabled
var ErrNotAutomated = errors.New("item is not enabled for automation")

// Variant identifies the religion building group an item belongs to
type Variant string

const (
	VariantNone           Variant = ""
	VariantZiggurat       Variant = "ziggurat"
	VariantOrderOfTheSun  Variant = "orderOfTheSun"
	VariantCryptotheology Variant = "cryptotheology"
)

// Unlimited as an item Max means no ownership ceiling
const Unlimited = -1

// ItemSettings controls one item
type ItemSettings struct {
	Enabled bool
	Max     int // Highest owned count to build up to, Unlimited for none
	Variant Variant
}

// SectionSettings controls one game tab
type SectionSettings struct {
	Enabled bool
	Trigger float64 // Fill ratio every capped input must reach, in [0, 1]
	Items   map[models.ItemID]ItemSettings
}

// ResourceSettings controls spending of one resource
type ResourceSettings struct {
	Stock float64 // Amount kept out of every budget
}

// Settings is the complete automation configuration
type Settings struct {
	DefaultBatch int
	Sections     map[models.Section]SectionSettings
	Resources    map[models.ResourceType]ResourceSettings
}

// DefaultSettings returns settings with every section disabled
func DefaultSettings() *Settings {
	return &Settings{
		DefaultBatch: 1,
		Sections:     make(map[models.Section]SectionSettings),
		Resources:    make(map[models.ResourceType]ResourceSettings),
	}
}

// Validate checks the settings invariants
func (s *Settings) Validate() error {
	if s.DefaultBatch < 0 {
		return fmt.Errorf("%w: default batch %d", models.ErrInvalidInput, s.DefaultBatch)
	}
	for section, ss := range s.Sections {
		if ss.Trigger < 0 || ss.Trigger > 1 {
			return fmt.Errorf("%w: %s trigger %v outside [0, 1]", models.ErrInvalidInput, section, ss.Trigger)
		}
		for id, is := range ss.Items {
			if is.Max < Unlimited {
				return fmt.Errorf("%w: %s max %d", models.ErrInvalidInput, id, is.Max)
			}
			switch is.Variant {
			case VariantNone, VariantZiggurat, VariantOrderOfTheSun, VariantCryptotheology:
			default:
				return fmt.Errorf("%w: %s variant %q", models.ErrInvalidInput, id, is.Variant)
			}
		}
	}
	for rt, rs := range s.Resources {
		if rs.Stock < 0 {
			return fmt.Errorf("%w: %s stock %v", models.ErrInvalidInput, rt, rs.Stock)
		}
	}
	return nil
}

// Item returns the settings of an item if both it and its section are enabled
func (s *Settings) Item(section models.Section, id models.ItemID) (ItemSettings, bool) {
	ss, ok := s.Sections[section]
	if !ok || !ss.Enabled {
		return ItemSettings{}, false
	}
	is, ok := ss.Items[id]
	if !ok || !is.Enabled {
		return ItemSettings{}, false
	}
	return is, true
}

// Reserves returns the per-resource amounts that must not be spent
func (s *Settings) Reserves() map[models.ResourceType]float64 {
	out := make(map[models.ResourceType]float64, len(s.Resources))
	for rt, rs := range s.Resources {
		if rs.Stock > 0 {
			out[rt] = rs.Stock
		}
	}
	return out
}
