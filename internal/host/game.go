// Package host is an in-memory game: resource stocks with income and storage
// caps, and items bought through buttons.
//
// A Game is not safe for concurrent use.
package host

import (
	"fmt"
	"sort"

	"github.com/napolitain/bulkbuild/internal/models"
)

// Item is a buildable item and its ownership state
type Item struct {
	ID       models.ItemID
	Label    string
	Section  models.Section
	Schedule models.PriceSchedule
	Owned    int
	Unlocked bool
}

// Game holds the complete game state
type Game struct {
	// Time
	Tick int // Ticks elapsed since the snapshot was loaded

	// Resources
	resources map[models.ResourceType]models.ResourceStock

	// Items, in insertion order
	items    map[models.ItemID]*Item
	order    []models.ItemID
	disabled map[models.ItemID]bool
}

// NewGame creates an empty game
func NewGame() *Game {
	return &Game{
		resources: make(map[models.ResourceType]models.ResourceStock),
		items:     make(map[models.ItemID]*Item),
		order:     make([]models.ItemID, 0),
		disabled:  make(map[models.ItemID]bool),
	}
}

// SetStock replaces the full snapshot of a resource
func (g *Game) SetStock(rt models.ResourceType, stock models.ResourceStock) {
	g.resources[rt] = stock
	g.capResource(rt)
}

// Stock returns the snapshot of a resource. Unknown resources read as empty.
func (g *Game) Stock(rt models.ResourceType) models.ResourceStock {
	return g.resources[rt]
}

// Stocks returns a copy of every resource snapshot
func (g *Game) Stocks() models.Stocks {
	out := make(models.Stocks, len(g.resources))
	for rt, stock := range g.resources {
		out[rt] = stock
	}
	return out
}

// Resources returns the known resource types in deterministic order
func (g *Game) Resources() []models.ResourceType {
	out := make([]models.ResourceType, 0, len(g.resources))
	for rt := range g.resources {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GetResource returns the current amount of a resource
func (g *Game) GetResource(rt models.ResourceType) float64 {
	return g.resources[rt].Current
}

// SetResource sets the amount of a resource
func (g *Game) SetResource(rt models.ResourceType, amount float64) {
	stock := g.resources[rt]
	stock.Current = amount
	g.resources[rt] = stock
	g.capResource(rt)
}

// AddResource adds to a resource amount
func (g *Game) AddResource(rt models.ResourceType, amount float64) {
	stock := g.resources[rt]
	stock.Current += amount
	g.resources[rt] = stock

	// Cap at storage
	g.capResource(rt)
}

// GetProductionRate returns the per-tick income of a resource
func (g *Game) GetProductionRate(rt models.ResourceType) float64 {
	return g.resources[rt].PerTick
}

// SetProductionRate sets the per-tick income of a resource
func (g *Game) SetProductionRate(rt models.ResourceType, perTick float64) {
	stock := g.resources[rt]
	stock.PerTick = perTick
	g.resources[rt] = stock
}

// capResource keeps a resource within [0, capacity]
func (g *Game) capResource(rt models.ResourceType) {
	stock := g.resources[rt]
	if stock.Current < 0 {
		stock.Current = 0
	}
	if stock.Capped() && stock.Current > stock.Capacity {
		stock.Current = stock.Capacity
	}
	g.resources[rt] = stock
}

// Advance runs the given number of ticks of income
func (g *Game) Advance(ticks int) {
	if ticks <= 0 {
		return
	}
	for _, rt := range g.Resources() {
		g.AddResource(rt, g.GetProductionRate(rt)*float64(ticks))
	}
	g.Tick += ticks
}

// AddItem registers an item. The schedule must be valid and the ID unused.
func (g *Game) AddItem(item Item) error {
	if err := item.Schedule.Validate(); err != nil {
		return fmt.Errorf("item %s: %w", item.ID, err)
	}
	if item.Owned < 0 {
		return fmt.Errorf("%w: item %s owns %d", models.ErrInvalidInput, item.ID, item.Owned)
	}
	if _, exists := g.items[item.ID]; exists {
		return fmt.Errorf("%w: duplicate item %s", models.ErrInvalidInput, item.ID)
	}
	if item.Label == "" {
		item.Label = string(item.ID)
	}
	g.items[item.ID] = &item
	g.order = append(g.order, item.ID)
	return nil
}

// Item returns a copy of an item
func (g *Game) Item(id models.ItemID) (Item, bool) {
	item, ok := g.items[id]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// Items returns copies of the items of a section, in insertion order.
// An empty section returns every item.
func (g *Game) Items(section models.Section) []Item {
	out := make([]Item, 0, len(g.order))
	for _, id := range g.order {
		item := g.items[id]
		if section == "" || item.Section == section {
			out = append(out, *item)
		}
	}
	return out
}

// Unlock makes an item buildable
func (g *Game) Unlock(id models.ItemID) error {
	item, ok := g.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrItemNotFound, id)
	}
	item.Unlocked = true
	return nil
}

// PriceSchedule returns the price schedule of an item
func (g *Game) PriceSchedule(id models.ItemID) (models.PriceSchedule, error) {
	item, ok := g.items[id]
	if !ok {
		return models.PriceSchedule{}, fmt.Errorf("%w: %s", models.ErrItemNotFound, id)
	}
	return item.Schedule, nil
}

// OwnedCount returns how many units of an item are owned
func (g *Game) OwnedCount(id models.ItemID) (int, error) {
	item, ok := g.items[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", models.ErrItemNotFound, id)
	}
	return item.Owned, nil
}

// Unlocked returns true if the item exists and is unlocked
func (g *Game) Unlocked(id models.ItemID) bool {
	item, ok := g.items[id]
	return ok && item.Unlocked
}

// Label returns the display name of an item, or its ID if unknown
func (g *Game) Label(id models.ItemID) string {
	if item, ok := g.items[id]; ok {
		return item.Label
	}
	return string(id)
}

// Clone creates a deep copy of the game
func (g *Game) Clone() *Game {
	c := &Game{
		Tick:      g.Tick,
		resources: make(map[models.ResourceType]models.ResourceStock, len(g.resources)),
		items:     make(map[models.ItemID]*Item, len(g.items)),
		order:     make([]models.ItemID, len(g.order)),
		disabled:  make(map[models.ItemID]bool, len(g.disabled)),
	}
	for rt, stock := range g.resources {
		c.resources[rt] = stock
	}
	for id, item := range g.items {
		cp := *item
		cp.Schedule.ResourceWeights = make(map[models.ResourceType]float64, len(item.Schedule.ResourceWeights))
		for rt, w := range item.Schedule.ResourceWeights {
			cp.Schedule.ResourceWeights[rt] = w
		}
		c.items[id] = &cp
	}
	copy(c.order, g.order)
	for id, d := range g.disabled {
		c.disabled[id] = d
	}
	return c
}
