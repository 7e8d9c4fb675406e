package automation

import (
	"fmt"
	"log/slog"

	"github.com/napolitain/bulkbuild/internal/afford"
	"github.com/napolitain/bulkbuild/internal/bulk"
	"github.com/napolitain/bulkbuild/internal/host"
	"github.com/napolitain/bulkbuild/internal/models"
)

// Activity is one line of the player-facing activity log
type Activity struct {
	Class   SummarySection
	Message string
}

// Manager builds the enabled items of every section
type Manager struct {
	game        *host.Game
	settings    *Settings
	engine      *afford.Engine
	constructor *bulk.Constructor
	summary     *Summary
	activity    []Activity
	logger      *slog.Logger
}

// NewManager creates a manager over game. Resource reserves from settings
// are applied to every batch.
func NewManager(game *host.Game, settings *Settings, notifier bulk.Notifier, logger *slog.Logger) *Manager {
	if settings == nil {
		settings = DefaultSettings()
	}
	if logger == nil {
		logger = slog.Default()
	}
	engine := afford.NewEngine(afford.WithReserves(settings.Reserves()))
	return &Manager{
		game:        game,
		settings:    settings,
		engine:      engine,
		constructor: bulk.NewConstructor(game, game, engine, notifier).WithLogger(logger),
		summary:     NewSummary(game.Tick),
		logger:      logger,
	}
}

// Summary returns the running activity summary
func (m *Manager) Summary() *Summary {
	return m.summary
}

// DrainActivity returns and clears the activity log
func (m *Manager) DrainActivity() []Activity {
	out := m.activity
	m.activity = nil
	return out
}

// Build orders amount units of an enabled item. The item's Max setting caps
// the batch at the room left below it.
func (m *Manager) Build(section models.Section, id models.ItemID, amount int) (models.PurchaseOutcome, error) {
	is, ok := m.settings.Item(section, id)
	if !ok {
		return models.PurchaseOutcome{ItemID: id, RequestedAmount: amount},
			fmt.Errorf("%w: %s in %s", ErrNotAutomated, id, section)
	}

	button, err := m.game.Button(id)
	if err != nil {
		return models.PurchaseOutcome{ItemID: id, RequestedAmount: amount}, err
	}

	var itemCap *int
	if is.Max != Unlimited {
		owned, err := m.game.OwnedCount(id)
		if err != nil {
			return models.PurchaseOutcome{ItemID: id, RequestedAmount: amount}, err
		}
		itemCap = models.Cap(max(is.Max-owned, 0))
	}

	outcome, err := m.constructor.ConstructCapped(id, button, amount, itemCap)
	if err != nil {
		return outcome, err
	}
	if outcome.LimitingFactor == models.LimitControlDisabled {
		return outcome, nil
	}

	label := m.game.Label(id)
	built := outcome.RealizedAmount
	if built != amount {
		m.logger.Warn(fmt.Sprintf("%s Amount ordered: %d Amount Constructed: %d", label, amount, built),
			"limit", outcome.LimitingFactor.String())
	}
	if built == 0 {
		return outcome, nil
	}

	class := SummaryBuild
	if is.Variant == VariantOrderOfTheSun {
		class = SummaryFaith
	}
	m.summary.Store(class, label, built)
	m.record(class, activityMessage(class, label, built))

	return outcome, nil
}

// RunPass builds every enabled item whose trigger is reached, in section
// order and then item order
func (m *Manager) RunPass() ([]models.PurchaseOutcome, error) {
	var outcomes []models.PurchaseOutcome

	for _, section := range models.AllSections() {
		ss, ok := m.settings.Sections[section]
		if !ok || !ss.Enabled {
			continue
		}

		for _, item := range m.game.Items(section) {
			is, ok := m.settings.Item(section, item.ID)
			if !ok || !item.Unlocked {
				continue
			}

			amount := m.settings.DefaultBatch
			if is.Max != Unlimited {
				amount = min(amount, is.Max-item.Owned)
			}
			if amount <= 0 {
				continue
			}
			if !m.triggerReached(item, ss.Trigger) || !m.canAffordOne(item) {
				continue
			}

			outcome, err := m.Build(section, item.ID, amount)
			if err != nil {
				return outcomes, fmt.Errorf("failed to build %s: %w", item.ID, err)
			}
			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes, nil
}

// triggerReached reports whether every capped resource the item costs is
// filled to at least trigger. Uncapped resources never hold a build back.
func (m *Manager) triggerReached(item host.Item, trigger float64) bool {
	for _, rt := range item.Schedule.Resources() {
		stock := m.game.Stock(rt)
		if stock.Capped() && stock.FillRatio() < trigger {
			return false
		}
	}
	return true
}

func (m *Manager) canAffordOne(item host.Item) bool {
	res, err := m.engine.Evaluate(models.PurchaseRequest{
		ItemID:          item.ID,
		OwnedCount:      item.Owned,
		RequestedAmount: 1,
	}, item.Schedule, m.game.Stocks())
	return err == nil && res.Count == 1
}

func (m *Manager) record(class SummarySection, message string) {
	m.activity = append(m.activity, Activity{Class: class, Message: message})
	m.logger.Info(message, "class", string(class))
}

func activityMessage(class SummarySection, label string, amount int) string {
	verb := "built a new"
	if class == SummaryFaith {
		verb = "discovered"
	}
	if amount == 1 {
		return fmt.Sprintf("Kittens have %s %s", verb, label)
	}
	return fmt.Sprintf("Kittens have %s %s %d times.", verb, label, amount)
}
