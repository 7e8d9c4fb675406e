package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/napolitain/bulkbuild/internal/automation"
	"github.com/napolitain/bulkbuild/internal/bulk"
	"github.com/napolitain/bulkbuild/internal/loader"
	"github.com/napolitain/bulkbuild/internal/metrics"
	"github.com/napolitain/bulkbuild/internal/models"
)

var (
	settingsPath string
	passes       int
	ticksPerPass int
	showMetrics  bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run build automation passes over a game snapshot",
		RunE:  runAutomation,
	}

	cmd.Flags().StringVarP(&gamePath, "game", "g", "", "Path to game snapshot JSON (default from BULKBUILD_GAME)")
	cmd.Flags().StringVarP(&settingsPath, "settings", "c", "", "Path to settings YAML (default from BULKBUILD_SETTINGS)")
	cmd.Flags().IntVarP(&passes, "passes", "p", 1, "Number of automation passes")
	cmd.Flags().IntVarP(&ticksPerPass, "ticks", "t", 0, "Ticks of income between passes")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print counters after the run")

	return cmd
}

type passRow struct {
	pass    int
	tick    int
	label   string
	outcome models.PurchaseOutcome
}

func runAutomation(cmd *cobra.Command, args []string) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	activityColor := color.New(color.FgMagenta)

	game, err := loader.LoadGame(resolvePath(gamePath, cfg.GamePath))
	if err != nil {
		return err
	}
	settings, err := loader.LoadSettings(resolvePath(settingsPath, cfg.SettingsPath))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	notifier := bulk.Notifiers{bulk.NewLogNotifier(slog.Default()), recorder}
	manager := automation.NewManager(game, settings, notifier, slog.Default())

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Bulk Build Automation    │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	var rows []passRow
	for pass := 1; pass <= passes; pass++ {
		outcomes, err := manager.RunPass()
		if err != nil {
			return fmt.Errorf("pass %d: %w", pass, err)
		}
		for _, o := range outcomes {
			rows = append(rows, passRow{pass: pass, tick: game.Tick, label: game.Label(o.ItemID), outcome: o})
		}
		if !quiet {
			for _, a := range manager.DrainActivity() {
				activityColor.Printf("   %s\n", a.Message)
			}
		}
		game.Advance(ticksPerPass)
	}

	if len(rows) == 0 {
		color.Yellow("Nothing was built in %d passes", passes)
	} else {
		printOutcomes(rows)
	}

	if !quiet {
		successColor.Println("\n📊 Summary:")
		for _, line := range manager.Summary().Lines(game.Tick) {
			fmt.Printf("   • %s\n", line)
		}
	}

	if showMetrics {
		return printMetrics(reg)
	}
	return nil
}

func printOutcomes(rows []passRow) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Pass", "Tick", "Item", "Requested", "Built", "Limit", "Resource"}),
	)
	for _, r := range rows {
		built := fmt.Sprintf("%d", r.outcome.RealizedAmount)
		if r.outcome.Anomaly != nil {
			built += " (!)"
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", r.pass),
			fmt.Sprintf("%d", r.tick),
			r.label,
			fmt.Sprintf("%d", r.outcome.RequestedAmount),
			built,
			r.outcome.LimitingFactor.String(),
			formatName(string(r.outcome.LimitingResource)),
		})
	}
	_ = table.Render()
}

func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	fmt.Println("\n📈 Metrics:")
	for _, line := range lines {
		fmt.Printf("   %s\n", line)
	}
	return nil
}
