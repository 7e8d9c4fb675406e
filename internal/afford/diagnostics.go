package afford

import (
	"math"

	"github.com/napolitain/bulkbuild/internal/models"
	"github.com/napolitain/bulkbuild/internal/pricing"
)

// TicksUntilAffordable projects linear income and returns how many ticks
// must pass before count units starting at owned become affordable.
// It is informational only and never gates a purchase.
func TicksUntilAffordable(s models.PriceSchedule, owned, count int, stocks models.Stocks) (int, bool) {
	return NewEngine().TicksUntilAffordable(s, owned, count, stocks)
}

// TicksUntilAffordable is the reserve-aware form of the package function.
// ok is false when some short resource has no income, or when the batch
// costs more than that resource can ever store.
func (e *Engine) TicksUntilAffordable(s models.PriceSchedule, owned, count int, stocks models.Stocks) (int, bool) {
	if count < 0 || owned < 0 || s.Validate() != nil {
		return 0, false
	}
	if count == 0 {
		return 0, true
	}

	maxWait := 0

	// Deterministic order
	for _, rt := range s.Resources() {
		cost, saturated := pricing.CumulativeCost(s.Weighted(rt), owned, count)
		if saturated {
			return 0, false
		}
		if cost == 0 {
			continue
		}

		stock := stocks.Get(rt)
		needed := cost + e.reserves[rt]
		if stock.Capped() && needed > stock.Capacity {
			return 0, false
		}

		shortfall := needed - stock.Current
		if shortfall <= 0 {
			continue
		}
		if stock.PerTick <= 0 {
			return 0, false // Cannot produce
		}

		ticks := math.Ceil(shortfall / stock.PerTick)
		if ticks > math.MaxInt32 {
			return 0, false
		}
		if int(ticks) > maxWait {
			maxWait = int(ticks)
		}
	}

	return maxWait, true
}
