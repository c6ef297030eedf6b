package notify

import (
	"context"
	"log/slog"
)

// LogNotifier records reminders in the log instead of sending them.
// Used when no delivery service is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier writing to logger (slog.Default if nil).
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// SendReminders logs one line per reminder.
func (n *LogNotifier) SendReminders(ctx context.Context, reminders []Reminder) ([]Reminder, error) {
	for _, r := range reminders {
		n.logger.InfoContext(ctx, "Reminder",
			"group_id", r.GroupID,
			"cycle_number", r.CycleNumber,
			"member_id", r.MemberID,
			"email", r.Email,
			"amount", r.Amount,
		)
	}
	return reminders, nil
}
