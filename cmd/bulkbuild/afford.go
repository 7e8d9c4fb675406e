package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/bulkbuild/internal/afford"
	"github.com/napolitain/bulkbuild/internal/models"
	"github.com/napolitain/bulkbuild/internal/pricing"
)

// resourceName labels the single resource of the afford command
const resourceName models.ResourceType = "stock"

var (
	basePrice  float64
	priceRatio float64
	owned      int
	requested  int
	stock      float64
	income     float64
	itemCap    int
)

func newAffordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "afford",
		Short: "Compute the largest affordable batch of a single-resource item",
		RunE:  runAfford,
	}

	cmd.Flags().Float64Var(&basePrice, "base", 10, "Price of the first unit")
	cmd.Flags().Float64Var(&priceRatio, "ratio", 1.15, "Price growth per unit owned")
	cmd.Flags().IntVar(&owned, "owned", 0, "Units already owned")
	cmd.Flags().IntVarP(&requested, "requested", "r", 10, "Units to buy")
	cmd.Flags().Float64VarP(&stock, "stock", "s", 100, "Available resource")
	cmd.Flags().Float64Var(&income, "income", 0, "Resource income per tick, for the wait estimate")
	cmd.Flags().IntVar(&itemCap, "cap", -1, "Batch ceiling, -1 for none")

	return cmd
}

func runAfford(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	schedule := models.NewPriceSchedule(basePrice, priceRatio, map[models.ResourceType]float64{resourceName: 1})
	stocks := models.Stocks{resourceName: {Current: stock, PerTick: income}}

	req := models.PurchaseRequest{OwnedCount: owned, RequestedAmount: requested}
	if itemCap >= 0 {
		req.ItemCap = models.Cap(itemCap)
	}

	res, err := afford.NewEngine().Evaluate(req, schedule, stocks)
	if err != nil {
		return err
	}

	cost, _ := pricing.CumulativeCost(schedule, owned, res.Count)
	next := pricing.CostOfUnit(schedule, owned+res.Count)

	if quiet {
		fmt.Println(res.Count)
		return nil
	}

	successColor.Printf("✓ %d of %d units affordable\n", res.Count, requested)
	fmt.Printf("   • Limiting factor: %s\n", res.Limit)
	fmt.Printf("   • Batch cost: %s\n", formatAmount(cost))
	fmt.Printf("   • Left over: %s\n", formatAmount(stock-cost))
	fmt.Printf("   • Next unit: %s\n", formatAmount(next))

	if res.Count < requested {
		ticks, ok := afford.TicksUntilAffordable(schedule, owned, requested, stocks)
		if ok {
			infoColor.Printf("⏳ Full batch affordable in %d ticks\n", ticks)
		} else {
			infoColor.Println("⏳ Full batch is out of reach at the current income")
		}
	}
	return nil
}
