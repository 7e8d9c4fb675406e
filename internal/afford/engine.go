// Package afford decides how many units of an item the current stockpile can
// pay for.
//
// The engine is pure: it only reads the schedule and the stock snapshot it is
// handed and returns the same result for the same inputs.
package afford

import (
	"math"

	"github.com/napolitain/bulkbuild/internal/models"
	"github.com/napolitain/bulkbuild/internal/pricing"
)

// maxCorrections bounds the unit steps applied after the closed-form guess
// before falling back to binary search
const maxCorrections = 3

// Result is the outcome of one affordability evaluation
type Result struct {
	Count    int
	Limit    models.LimitingFactor
	Resource models.ResourceType // Binding resource when Limit is LimitAffordability
}

// Option configures an Engine
type Option func(*Engine)

// WithReserves keeps the given amount of each resource out of every budget.
// A reserve that exceeds the current stock leaves a zero budget.
func WithReserves(reserves map[models.ResourceType]float64) Option {
	return func(e *Engine) {
		for rt, amount := range reserves {
			if amount > 0 {
				e.reserves[rt] = amount
			}
		}
	}
}

// Engine computes the largest affordable batch
type Engine struct {
	reserves map[models.ResourceType]float64
}

// NewEngine creates an engine. Without options every unit of stock is spendable.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{reserves: make(map[models.ResourceType]float64)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxAffordable returns the largest k in [0, requested] such that k units,
// starting at owned, can be paid from stocks for every priced resource.
func MaxAffordable(s models.PriceSchedule, owned, requested int, stocks models.Stocks) (int, models.LimitingFactor, error) {
	res, err := NewEngine().Evaluate(models.PurchaseRequest{
		OwnedCount:      owned,
		RequestedAmount: requested,
	}, s, stocks)
	if err != nil {
		return 0, models.LimitNone, err
	}
	return res.Count, res.Limit, nil
}

// Evaluate applies the affordability rule and then the request's item cap.
// The cap only becomes the limiting factor when it is strictly tighter than
// affordability.
func (e *Engine) Evaluate(req models.PurchaseRequest, s models.PriceSchedule, stocks models.Stocks) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if req.RequestedAmount == 0 {
		return Result{Count: 0, Limit: models.LimitNone}, nil
	}

	res := e.affordable(s, req.OwnedCount, req.RequestedAmount, stocks)

	if req.ItemCap != nil && *req.ItemCap < res.Count {
		return Result{Count: *req.ItemCap, Limit: models.LimitItemCap}, nil
	}
	return res, nil
}

// Budget returns the spendable amount of rt after the reserve
func (e *Engine) Budget(rt models.ResourceType, stocks models.Stocks) float64 {
	budget := stocks.Get(rt).Current - e.reserves[rt]
	if budget < 0 || math.IsNaN(budget) {
		return 0
	}
	return budget
}

func (e *Engine) affordable(s models.PriceSchedule, owned, requested int, stocks models.Stocks) Result {
	best := requested
	var binding models.ResourceType

	// Deterministic order: ties go to the first resource by name
	for _, rt := range s.Resources() {
		w := s.Weighted(rt)
		if w.BasePrice == 0 {
			continue
		}
		k := maxUnits(w, owned, best, e.Budget(rt, stocks))
		if k < best {
			best = k
			binding = rt
		}
		if best == 0 {
			break
		}
	}

	if best < requested {
		return Result{Count: best, Limit: models.LimitAffordability, Resource: binding}
	}
	return Result{Count: requested, Limit: models.LimitNone}
}

// maxUnits finds the largest k in [0, limit] whose cumulative single-resource
// cost fits in budget
func maxUnits(w models.PriceSchedule, owned, limit int, budget float64) int {
	fits := func(k int) bool {
		cost, saturated := pricing.CumulativeCost(w, owned, k)
		return !saturated && cost <= budget
	}

	if limit <= 0 || !fits(1) {
		return 0
	}
	if fits(limit) {
		return limit
	}

	guess, ok := invert(w, owned, budget)
	if !ok {
		return searchUnits(fits, 1, limit)
	}
	k := clamp(guess, 1, limit)

	for i := 0; i <= maxCorrections; i++ {
		switch {
		case !fits(k):
			k--
		case k < limit && fits(k+1):
			k++
		default:
			return k
		}
	}
	return searchUnits(fits, 1, limit)
}

// invert solves first*(r^k-1)/(r-1) <= budget for k.
// For r == 1 this is budget/first.
func invert(w models.PriceSchedule, owned int, budget float64) (int, bool) {
	first := pricing.CostOfUnit(w, owned)
	if first <= 0 || math.IsInf(first, 0) || math.IsNaN(first) {
		return 0, false
	}

	var k float64
	if w.PriceRatio == 1 {
		k = math.Floor(budget / first)
	} else {
		x := budget * (w.PriceRatio - 1) / first
		k = math.Floor(math.Log1p(x) / math.Log1p(w.PriceRatio-1))
	}
	if math.IsInf(k, 0) || math.IsNaN(k) || k > math.MaxInt32 {
		return 0, false
	}
	return int(k), true
}

// searchUnits binary searches [lo, hi] given fits(lo) and !fits(hi)
func searchUnits(fits func(int) bool, lo, hi int) int {
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
