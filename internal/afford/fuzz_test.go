package afford

import (
	"testing"

	"github.com/napolitain/bulkbuild/internal/models"
	"github.com/napolitain/bulkbuild/internal/pricing"
)

// FuzzMaxAffordableNeverOverspends checks that the returned batch is paid
// for and that one more unit would not be
func FuzzMaxAffordableNeverOverspends(f *testing.F) {
	f.Add(uint16(10), uint16(150), uint16(0), uint16(10), uint32(100), uint32(100))
	f.Add(uint16(1), uint16(0), uint16(50), uint16(500), uint32(250), uint32(7))
	f.Add(uint16(400), uint16(2000), uint16(3), uint16(20), uint32(1_000_000), uint32(0))
	f.Add(uint16(0), uint16(100), uint16(9), uint16(9), uint32(0), uint32(0))

	f.Fuzz(func(t *testing.T, base, ratioPermille, owned, requested uint16, wood, minerals uint32) {
		s := models.NewPriceSchedule(float64(base), 1+float64(ratioPermille)/1000, map[models.ResourceType]float64{
			models.Wood:     1,
			models.Minerals: 1.5,
		})
		stocks := models.Stocks{
			models.Wood:     {Current: float64(wood)},
			models.Minerals: {Current: float64(minerals)},
		}

		count, limit, err := MaxAffordable(s, int(owned), int(requested), stocks)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count < 0 || count > int(requested) {
			t.Fatalf("count %d outside [0, %d]", count, requested)
		}

		// Invariant: never over budget
		for _, rt := range s.Resources() {
			cost, saturated := pricing.CumulativeCost(s.Weighted(rt), int(owned), count)
			if count > 0 && (saturated || cost > stocks[rt].Current) {
				t.Errorf("%s: %d units cost %v, stock %v", rt, count, cost, stocks[rt].Current)
			}
		}

		// Invariant: full request when everything fits, otherwise maximal
		allFit := true
		for _, rt := range s.Resources() {
			cost, saturated := pricing.CumulativeCost(s.Weighted(rt), int(owned), int(requested))
			if saturated || cost > stocks[rt].Current {
				allFit = false
			}
		}
		if allFit && count != int(requested) {
			t.Errorf("everything fits but got %d of %d", count, requested)
		}
		if count < int(requested) {
			if limit != models.LimitAffordability {
				t.Errorf("short batch with limit %v", limit)
			}
			nextFits := true
			for _, rt := range s.Resources() {
				cost, saturated := pricing.CumulativeCost(s.Weighted(rt), int(owned), count+1)
				if saturated || cost > stocks[rt].Current {
					nextFits = false
				}
			}
			if nextFits {
				t.Errorf("%d units fit but only %d returned", count+1, count)
			}
		}
	})
}
