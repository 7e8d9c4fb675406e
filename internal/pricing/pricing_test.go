package pricing

import (
	"math"
	"testing"

	"github.com/napolitain/bulkbuild/internal/models"
)

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-9*scale
}

func TestCostOfUnit(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		ratio float64
		index int
		want  float64
	}{
		{"first unit", 10, 1.15, 0, 10},
		{"second unit", 10, 1.15, 1, 11.5},
		{"tenth unit", 10, 1.15, 9, 10 * math.Pow(1.15, 9)},
		{"flat ratio", 25, 1, 300, 25},
		{"free", 0, 1.5, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.PriceSchedule{BasePrice: tt.base, PriceRatio: tt.ratio}
			got := CostOfUnit(s, tt.index)
			if !approxEqual(got, tt.want) {
				t.Errorf("CostOfUnit(%v, %d) = %v, want %v", s, tt.index, got, tt.want)
			}
		})
	}
}

func TestCostOfUnitStableForHundredsOfUnits(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 5, PriceRatio: 1.12}
	for i := 0; i <= 500; i++ {
		cost := CostOfUnit(s, i)
		if math.IsInf(cost, 0) || math.IsNaN(cost) {
			t.Fatalf("unit %d: non-finite cost %v", i, cost)
		}
	}
}

func TestCumulativeCostClosedForm(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 10, PriceRatio: 1.15}

	got, saturated := CumulativeCost(s, 0, 10)
	if saturated {
		t.Fatal("10 units should not saturate")
	}
	// 10 * (1.15^10 - 1) / 0.15
	want := 10 * (math.Pow(1.15, 10) - 1) / 0.15
	if !approxEqual(got, want) {
		t.Errorf("CumulativeCost = %v, want %v", got, want)
	}
	if math.Abs(got-203.04) > 0.01 {
		t.Errorf("CumulativeCost = %.4f, want about 203.04", got)
	}
}

func TestCumulativeCostMatchesSummation(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 7.5, PriceRatio: 1.07}
	for start := 0; start < 40; start += 7 {
		for count := 0; count < 60; count += 5 {
			var want float64
			for i := 0; i < count; i++ {
				want += CostOfUnit(s, start+i)
			}
			got, _ := CumulativeCost(s, start, count)
			if !approxEqual(got, want) {
				t.Errorf("CumulativeCost(start=%d, count=%d) = %v, want %v", start, count, got, want)
			}
		}
	}
}

func TestCumulativeCostFlatRatio(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 3, PriceRatio: 1}
	got, saturated := CumulativeCost(s, 123, 1000)
	if saturated {
		t.Fatal("flat schedule should not saturate")
	}
	if got != 3000 {
		t.Errorf("CumulativeCost = %v, want 3000", got)
	}
}

func TestCumulativeCostZeroCount(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 3, PriceRatio: 2}
	for _, count := range []int{0, -5} {
		got, saturated := CumulativeCost(s, 10, count)
		if got != 0 || saturated {
			t.Errorf("CumulativeCost(count=%d) = (%v, %v), want (0, false)", count, got, saturated)
		}
	}
}

func TestCumulativeCostRatioNearOne(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 100, PriceRatio: 1 + 1e-12}
	got, saturated := CumulativeCost(s, 0, 1000)
	if saturated {
		t.Fatal("should not saturate")
	}
	if math.Abs(got-100000) > 1e-3 {
		t.Errorf("CumulativeCost = %v, want about 100000", got)
	}
}

func TestCumulativeCostSaturatesOnOverflow(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 1, PriceRatio: 2}
	got, saturated := CumulativeCost(s, 0, 5000)
	if !saturated {
		t.Fatalf("expected saturation, got %v", got)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("saturated sum should be a finite lower bound, got %v", got)
	}
}

func TestCumulativeCostFallsBackWhenOnlyGrowthOverflows(t *testing.T) {
	// r^count overflows but the tiny base keeps the real sum finite
	s := models.PriceSchedule{BasePrice: 1e-300, PriceRatio: 1.5}
	got, saturated := CumulativeCost(s, 0, 2000)
	if saturated {
		t.Fatal("iterative fallback should finish without saturating")
	}
	want := math.Exp(math.Log(2e-300) + 2000*math.Log(1.5))
	if math.Abs(got-want) > 1e-9*want {
		t.Errorf("CumulativeCost = %v, want about %v", got, want)
	}
}

func TestCumulativeCostSaturatesAtSummationCap(t *testing.T) {
	s := models.PriceSchedule{BasePrice: 1e-300, PriceRatio: 1.001}
	_, saturated := CumulativeCost(s, 0, 1_000_000)
	if !saturated {
		t.Error("expected saturation once MaxSummationUnits terms were summed")
	}
}

func TestUnitCostsAppliesWeights(t *testing.T) {
	s := models.NewPriceSchedule(10, 1.15, map[models.ResourceType]float64{
		models.Wood:     1,
		models.Minerals: 2.5,
		models.Catnip:   0,
	})

	costs := UnitCosts(s, 2)

	if len(costs) != 2 {
		t.Fatalf("expected 2 priced resources, got %d: %v", len(costs), costs)
	}
	if !approxEqual(costs[models.Wood], 10*1.15*1.15) {
		t.Errorf("wood: got %v, want %v", costs[models.Wood], 10*1.15*1.15)
	}
	if !approxEqual(costs[models.Minerals], 25*1.15*1.15) {
		t.Errorf("minerals: got %v, want %v", costs[models.Minerals], 25*1.15*1.15)
	}
}

func TestCumulativeCostsPerResource(t *testing.T) {
	s := models.NewPriceSchedule(2, 1, map[models.ResourceType]float64{
		models.Wood:  5,
		models.Faith: 1,
	})

	costs, saturated := CumulativeCosts(s, 0, 4)
	if saturated {
		t.Fatal("unexpected saturation")
	}
	if costs[models.Wood] != 40 {
		t.Errorf("wood: got %v, want 40", costs[models.Wood])
	}
	if costs[models.Faith] != 8 {
		t.Errorf("faith: got %v, want 8", costs[models.Faith])
	}
	if costs.Total() != 48 {
		t.Errorf("total: got %v, want 48", costs.Total())
	}
}

func BenchmarkCumulativeCost(b *testing.B) {
	s := models.PriceSchedule{BasePrice: 10, PriceRatio: 1.15}
	for i := 0; i < b.N; i++ {
		CumulativeCost(s, 150, 200)
	}
}
