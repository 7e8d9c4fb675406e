package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/bulkbuild/internal/loader"
	"github.com/napolitain/bulkbuild/internal/models"
	"github.com/napolitain/bulkbuild/internal/pricing"
)

var (
	gamePath  string
	itemID    string
	unitCount int
)

func newPricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show the price of the next units of an item",
		RunE:  runPrices,
	}

	cmd.Flags().StringVarP(&gamePath, "game", "g", "", "Path to game snapshot JSON (default from BULKBUILD_GAME)")
	cmd.Flags().StringVarP(&itemID, "item", "i", "", "Item ID")
	cmd.Flags().IntVarP(&unitCount, "count", "n", 10, "Number of units to show")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func runPrices(cmd *cobra.Command, args []string) error {
	infoColor := color.New(color.FgYellow)

	game, err := loader.LoadGame(resolvePath(gamePath, cfg.GamePath))
	if err != nil {
		return err
	}
	item, ok := game.Item(models.ItemID(itemID))
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrItemNotFound, itemID)
	}

	resources := item.Schedule.Resources()
	header := []string{"#", "Owned"}
	for _, rt := range resources {
		header = append(header, formatName(string(rt)), "Total")
	}

	if !quiet {
		infoColor.Printf("📦 %s: %d owned, ratio %.3f\n\n", item.Label, item.Owned, item.Schedule.PriceRatio)
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithHeader(header))
	for i := 0; i < unitCount; i++ {
		unit := item.Owned + i
		costs := pricing.UnitCosts(item.Schedule, unit)
		totals, saturated := pricing.CumulativeCosts(item.Schedule, item.Owned, i+1)

		row := []string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", unit)}
		for _, rt := range resources {
			total := formatAmount(totals[rt])
			if saturated {
				total = "≥ " + total
			}
			row = append(row, formatAmount(costs[rt]), total)
		}
		_ = table.Append(row)
	}
	_ = table.Render()

	return nil
}
