package bulk

import "log/slog"

// Notifier receives batch results
type Notifier interface {
	BatchCompleted(label string, requested, realized int)
	Anomaly(label string, planned, realized int, err error)
}

// NopNotifier discards every notification
type NopNotifier struct{}

func (NopNotifier) BatchCompleted(string, int, int) {}
func (NopNotifier) Anomaly(string, int, int, error) {}

// Notifiers fans a notification out to several notifiers in order
type Notifiers []Notifier

// BatchCompleted forwards to every notifier
func (ns Notifiers) BatchCompleted(label string, requested, realized int) {
	for _, n := range ns {
		n.BatchCompleted(label, requested, realized)
	}
}

// Anomaly forwards to every notifier
func (ns Notifiers) Anomaly(label string, planned, realized int, err error) {
	for _, n := range ns {
		n.Anomaly(label, planned, realized, err)
	}
}

// LogNotifier writes batch results to a structured logger
type LogNotifier struct {
	Logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier, falling back to slog.Default()
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) BatchCompleted(label string, requested, realized int) {
	n.Logger.Info("Batch completed", "item", label, "requested", requested, "realized", realized)
}

func (n *LogNotifier) Anomaly(label string, planned, realized int, err error) {
	n.Logger.Warn("Batch stopped early", "item", label, "planned", planned, "realized", realized, "error", err)
}
