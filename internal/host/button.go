package host

import (
	"fmt"

	"github.com/napolitain/bulkbuild/internal/models"
	"github.com/napolitain/bulkbuild/internal/pricing"
)

// purchaseTolerance absorbs float drift between a batch price summed in
// closed form and the same price paid unit by unit
const purchaseTolerance = 1e-9

// Button buys one unit of an item per trigger
type Button struct {
	game *Game
	id   models.ItemID
}

// Button returns the purchase button of an item
func (g *Game) Button(id models.ItemID) (*Button, error) {
	if _, ok := g.items[id]; !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrItemNotFound, id)
	}
	return &Button{game: g, id: id}, nil
}

// SetButtonEnabled enables or disables the button of an item
func (g *Game) SetButtonEnabled(id models.ItemID, enabled bool) {
	if enabled {
		delete(g.disabled, id)
		return
	}
	g.disabled[id] = true
}

// ItemID returns the item this button buys
func (b *Button) ItemID() models.ItemID {
	return b.id
}

// IsEnabled returns false when the button is disabled or the item is locked
func (b *Button) IsEnabled() bool {
	return !b.game.disabled[b.id] && b.game.Unlocked(b.id)
}

// TriggerPurchase pays for the next unit and adds it to the owned count.
// Nothing is charged when any resource is short. Stock within
// purchaseTolerance of the price is enough; the charge then clamps at zero.
func (b *Button) TriggerPurchase() error {
	if !b.IsEnabled() {
		return fmt.Errorf("%w: %s", models.ErrControlUnavailable, b.id)
	}
	item := b.game.items[b.id]
	costs := pricing.UnitCosts(item.Schedule, item.Owned)

	// Deterministic order
	for _, rt := range costs.Resources() {
		if have := b.game.GetResource(rt); have < costs[rt]*(1-purchaseTolerance) {
			return fmt.Errorf("%w: %s needs %.2f %s, have %.2f",
				models.ErrInsufficientResources, item.Label, costs[rt], rt, have)
		}
	}
	for _, rt := range costs.Resources() {
		b.game.AddResource(rt, -costs[rt])
	}
	item.Owned++
	return nil
}
