package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/napolitain/bulkbuild/internal/host"
	"github.com/napolitain/bulkbuild/internal/models"
)

// GameJSON represents the JSON structure of a game snapshot
type GameJSON struct {
	Resources map[string]ResourceJSON `json:"resources"`
	Items     []ItemJSON              `json:"items"`
	Disabled  []string                `json:"disabled_buttons,omitempty"`
}

// ResourceJSON represents the JSON structure of one resource
type ResourceJSON struct {
	Amount   float64 `json:"amount"`
	PerTick  float64 `json:"per_tick"`
	Capacity float64 `json:"capacity"` // 0 means uncapped
}

// ItemJSON represents the JSON structure of one item
type ItemJSON struct {
	ID         string             `json:"id"`
	Label      string             `json:"label"`
	Section    string             `json:"section"`
	BasePrice  float64            `json:"base_price"`
	PriceRatio *float64           `json:"price_ratio,omitempty"` // Defaults to 1
	Prices     map[string]float64 `json:"prices"`
	Owned      int                `json:"owned"`
	Unlocked   bool               `json:"unlocked"`
}

// LoadGame loads a game snapshot from a JSON file
func LoadGame(path string) (*host.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	game, err := ParseGame(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	return game, nil
}

// ParseGame builds a game from JSON snapshot bytes
func ParseGame(data []byte) (*host.Game, error) {
	var raw GameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse game JSON: %w", err)
	}

	game := host.NewGame()

	for name, r := range raw.Resources {
		if r.Capacity < 0 {
			return nil, fmt.Errorf("%w: resource %s capacity %v", models.ErrInvalidInput, name, r.Capacity)
		}
		game.SetStock(models.ResourceType(name), models.ResourceStock{
			Current:  r.Amount,
			PerTick:  r.PerTick,
			Capacity: r.Capacity,
		})
	}

	for i, it := range raw.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("%w: item %d has no id", models.ErrInvalidInput, i)
		}
		section, err := parseSection(it.Section)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", it.ID, err)
		}

		ratio := 1.0
		if it.PriceRatio != nil {
			ratio = *it.PriceRatio
		}
		weights := make(map[models.ResourceType]float64, len(it.Prices))
		for res, w := range it.Prices {
			weights[models.ResourceType(res)] = w
		}

		if err := game.AddItem(host.Item{
			ID:       models.ItemID(it.ID),
			Label:    it.Label,
			Section:  section,
			Schedule: models.NewPriceSchedule(it.BasePrice, ratio, weights),
			Owned:    it.Owned,
			Unlocked: it.Unlocked,
		}); err != nil {
			return nil, err
		}
	}

	for _, id := range raw.Disabled {
		if _, ok := game.Item(models.ItemID(id)); !ok {
			return nil, fmt.Errorf("%w: disabled button %s", models.ErrItemNotFound, id)
		}
		game.SetButtonEnabled(models.ItemID(id), false)
	}

	return game, nil
}

func parseSection(s string) (models.Section, error) {
	for _, section := range models.AllSections() {
		if string(section) == s {
			return section, nil
		}
	}
	return "", fmt.Errorf("%w: unknown section %q", models.ErrInvalidInput, s)
}
