// Package bulk buys a batch of units through a host control in one pass.
//
// The batch size is decided once, up front, by the affordability engine. The
// control is then triggered that many times without re-checking stock.
package bulk

import (
	"fmt"
	"log/slog"

	"github.com/napolitain/bulkbuild/internal/afford"
	"github.com/napolitain/bulkbuild/internal/models"
)

// StockReader exposes the current resource snapshot
type StockReader interface {
	Stock(rt models.ResourceType) models.ResourceStock
}

// ItemReader exposes item pricing and ownership
type ItemReader interface {
	PriceSchedule(id models.ItemID) (models.PriceSchedule, error)
	OwnedCount(id models.ItemID) (int, error)
	Unlocked(id models.ItemID) bool
	Label(id models.ItemID) string
}

// ControlHandle is the host's purchase button for one item
type ControlHandle interface {
	IsEnabled() bool
	TriggerPurchase() error
}

// Constructor performs bulk purchases
type Constructor struct {
	stocks   StockReader
	items    ItemReader
	engine   *afford.Engine
	notifier Notifier
	logger   *slog.Logger
}

// NewConstructor creates a constructor. A nil engine uses afford.NewEngine()
// and a nil notifier discards notifications.
func NewConstructor(stocks StockReader, items ItemReader, engine *afford.Engine, notifier Notifier) *Constructor {
	if engine == nil {
		engine = afford.NewEngine()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Constructor{
		stocks:   stocks,
		items:    items,
		engine:   engine,
		notifier: notifier,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger used for debug traces
func (c *Constructor) WithLogger(logger *slog.Logger) *Constructor {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Construct buys up to requested units of itemID
func (c *Constructor) Construct(itemID models.ItemID, handle ControlHandle, requested int) (models.PurchaseOutcome, error) {
	return c.ConstructCapped(itemID, handle, requested, nil)
}

// ConstructCapped buys up to requested units of itemID, never more than
// itemCap when it is set.
//
// Errors are returned only for invalid input or failed reads, before any
// purchase is triggered. A purchase failure mid-batch is reported in
// PurchaseOutcome.Anomaly and through the notifier.
func (c *Constructor) ConstructCapped(itemID models.ItemID, handle ControlHandle, requested int, itemCap *int) (models.PurchaseOutcome, error) {
	outcome := models.PurchaseOutcome{
		ItemID:          itemID,
		RequestedAmount: requested,
	}

	if requested < 0 {
		return outcome, fmt.Errorf("%w: requested amount %d for %s", models.ErrInvalidInput, requested, itemID)
	}
	if handle == nil || !handle.IsEnabled() || !c.items.Unlocked(itemID) {
		outcome.LimitingFactor = models.LimitControlDisabled
		return outcome, nil
	}

	owned, err := c.items.OwnedCount(itemID)
	if err != nil {
		return outcome, fmt.Errorf("failed to read owned count of %s: %w", itemID, err)
	}
	schedule, err := c.items.PriceSchedule(itemID)
	if err != nil {
		return outcome, fmt.Errorf("failed to read price schedule of %s: %w", itemID, err)
	}

	// Snapshot only what this item is priced in
	stocks := make(models.Stocks)
	for _, rt := range schedule.Resources() {
		stocks[rt] = c.stocks.Stock(rt)
	}

	res, err := c.engine.Evaluate(models.PurchaseRequest{
		ItemID:          itemID,
		OwnedCount:      owned,
		RequestedAmount: requested,
		ItemCap:         itemCap,
	}, schedule, stocks)
	if err != nil {
		return outcome, fmt.Errorf("failed to evaluate %s: %w", itemID, err)
	}

	outcome.PlannedAmount = res.Count
	outcome.LimitingFactor = res.Limit
	outcome.LimitingResource = res.Resource

	for i := 0; i < res.Count; i++ {
		if err := handle.TriggerPurchase(); err != nil {
			outcome.Anomaly = fmt.Errorf("purchase %d of %d failed: %w", i+1, res.Count, err)
			break
		}
		outcome.RealizedAmount++
	}

	c.logger.Debug("Batch constructed",
		"item", itemID,
		"owned", owned,
		"requested", requested,
		"planned", outcome.PlannedAmount,
		"realized", outcome.RealizedAmount,
		"limit", outcome.LimitingFactor.String())

	label := c.items.Label(itemID)
	if outcome.Anomaly != nil {
		c.notifier.Anomaly(label, outcome.PlannedAmount, outcome.RealizedAmount, outcome.Anomaly)
	}
	c.notifier.BatchCompleted(label, requested, outcome.RealizedAmount)

	return outcome, nil
}
