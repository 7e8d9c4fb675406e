package bulk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/bulkbuild/internal/host"
	"github.com/napolitain/bulkbuild/internal/logger"
	"github.com/napolitain/bulkbuild/internal/models"
	"github.com/napolitain/bulkbuild/internal/pricing"
)

func TestConstructAgainstHostGame(t *testing.T) {
	g := host.NewGame()
	g.SetStock(models.Wood, models.ResourceStock{Current: 500, Capacity: 1000})
	g.SetStock(models.Minerals, models.ResourceStock{Current: 300})
	require.NoError(t, g.AddItem(host.Item{
		ID:       "workshop",
		Label:    "Workshop",
		Section:  models.SectionBonfire,
		Unlocked: true,
		Schedule: models.NewPriceSchedule(10, 1.15, map[models.ResourceType]float64{
			models.Wood:     10,
			models.Minerals: 4,
		}),
	}))
	button, err := g.Button("workshop")
	require.NoError(t, err)

	c := NewConstructor(g, g, nil, nil).WithLogger(logger.Discard())
	outcome, err := c.Construct("workshop", button, 10)

	require.NoError(t, err)
	require.NoError(t, outcome.Anomaly)
	// Wood: 100 + 115 + 132.25 + 152.09 = 499.34, a fifth costs 174.90 more
	assert.Equal(t, 4, outcome.RealizedAmount)
	assert.Equal(t, models.LimitAffordability, outcome.LimitingFactor)
	assert.Equal(t, models.Wood, outcome.LimitingResource)

	owned, _ := g.OwnedCount("workshop")
	assert.Equal(t, 4, owned)
	assert.InDelta(t, 500-499.3375, g.GetResource(models.Wood), 1e-9)
	assert.GreaterOrEqual(t, g.GetResource(models.Minerals), 0.0)

	// Second pass continues from the new owned count
	again, err := c.Construct("workshop", button, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, again.RealizedAmount)
}

func TestConstructExactStockBuildsWholeBatch(t *testing.T) {
	for _, ratio := range []float64{1.07, 1.12, 1.15, 1.25, 1.5, 1.75, 2, 2.5} {
		for _, base := range []float64{1, 3, 10, 37.5} {
			for _, owned := range []int{0, 3, 11} {
				for n := 2; n <= 12; n++ {
					s := models.NewPriceSchedule(base, ratio, map[models.ResourceType]float64{models.Wood: 1})
					price, saturated := pricing.CumulativeCost(s, owned, n)
					require.False(t, saturated)

					g := host.NewGame()
					g.SetStock(models.Wood, models.ResourceStock{Current: price})
					require.NoError(t, g.AddItem(host.Item{
						ID:       "hut",
						Label:    "Hut",
						Section:  models.SectionBonfire,
						Unlocked: true,
						Owned:    owned,
						Schedule: s,
					}))
					button, err := g.Button("hut")
					require.NoError(t, err)

					name := fmt.Sprintf("base=%v ratio=%v owned=%d n=%d", base, ratio, owned, n)
					outcome, err := NewConstructor(g, g, nil, nil).WithLogger(logger.Discard()).Construct("hut", button, n)
					require.NoError(t, err, name)
					require.NoError(t, outcome.Anomaly, name)
					assert.Equal(t, n, outcome.RealizedAmount, name)
					assert.Equal(t, models.LimitNone, outcome.LimitingFactor, name)
					assert.GreaterOrEqual(t, g.GetResource(models.Wood), 0.0, name)
				}
			}
		}
	}
}
