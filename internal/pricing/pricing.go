// Package pricing computes unit and batch prices for items whose price grows
// geometrically with every unit owned.
package pricing

import (
	"math"

	"github.com/napolitain/bulkbuild/internal/models"
)

// MaxSummationUnits bounds the iterative fallback of CumulativeCost
const MaxSummationUnits = 100_000

// CostOfUnit returns the price of the unit at zero-based position unitIndex,
// i.e. the (unitIndex+1)-th unit ever bought: BasePrice * PriceRatio^unitIndex.
func CostOfUnit(s models.PriceSchedule, unitIndex int) float64 {
	if s.BasePrice == 0 {
		return 0
	}
	if s.PriceRatio == 1 || unitIndex <= 0 {
		return s.BasePrice
	}
	return s.BasePrice * math.Pow(s.PriceRatio, float64(unitIndex))
}

// CumulativeCost returns the total price of count consecutive units starting
// at startIndex. The second value reports saturation: the sum overflowed or
// needed more than MaxSummationUnits terms, and the returned value is only a
// lower bound. A saturated cost must be treated as unaffordable.
func CumulativeCost(s models.PriceSchedule, startIndex, count int) (float64, bool) {
	if count <= 0 || s.BasePrice == 0 {
		return 0, false
	}

	if s.PriceRatio == 1 {
		total := s.BasePrice * float64(count)
		if !math.IsInf(total, 0) {
			return total, false
		}
		return sumIteratively(s, startIndex, count)
	}

	// Geometric series: first * (r^count - 1) / (r - 1).
	// expm1/log1p keep precision when r is close to 1.
	logRatio := math.Log1p(s.PriceRatio - 1)
	first := CostOfUnit(s, startIndex)
	growth := math.Expm1(float64(count)*logRatio) / (s.PriceRatio - 1)
	total := first * growth
	if !math.IsInf(total, 0) && !math.IsNaN(total) {
		return total, false
	}

	return sumIteratively(s, startIndex, count)
}

// sumIteratively adds unit prices one by one, stopping on overflow or at
// MaxSummationUnits
func sumIteratively(s models.PriceSchedule, startIndex, count int) (float64, bool) {
	var sum float64
	term := CostOfUnit(s, startIndex)
	for i := 0; i < count; i++ {
		if i >= MaxSummationUnits {
			return sum, true
		}
		next := sum + term
		if math.IsInf(next, 0) || math.IsNaN(next) {
			return sum, true
		}
		sum = next
		term *= s.PriceRatio
	}
	return sum, false
}

// UnitCosts returns the per-resource price of the unit at unitIndex
func UnitCosts(s models.PriceSchedule, unitIndex int) models.Costs {
	costs := make(models.Costs)
	for _, rt := range s.Resources() {
		costs[rt] = CostOfUnit(s.Weighted(rt), unitIndex)
	}
	return costs
}

// CumulativeCosts returns the per-resource price of count units starting at
// startIndex, and whether any resource saturated
func CumulativeCosts(s models.PriceSchedule, startIndex, count int) (models.Costs, bool) {
	costs := make(models.Costs)
	saturated := false
	for _, rt := range s.Resources() {
		cost, sat := CumulativeCost(s.Weighted(rt), startIndex, count)
		costs[rt] = cost
		saturated = saturated || sat
	}
	return costs, saturated
}
