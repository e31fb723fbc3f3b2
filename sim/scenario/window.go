package scenario

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// OperatingWindow derives a run horizon from the park's opening and closing
// schedules, given as standard 5-field cron expressions (e.g. "0 9 * * *").
type OperatingWindow struct {
	OpensAt  string `yaml:"opens_at"`
	ClosesAt string `yaml:"closes_at"`
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Horizon returns the number of seconds between the first opening after ref
// and the first closing after that opening.
func (w OperatingWindow) Horizon(ref time.Time) (float64, error) {
	opens, err := cronParser.Parse(w.OpensAt)
	if err != nil {
		return 0, fmt.Errorf("parsing opens_at %q: %w", w.OpensAt, err)
	}
	closes, err := cronParser.Parse(w.ClosesAt)
	if err != nil {
		return 0, fmt.Errorf("parsing closes_at %q: %w", w.ClosesAt, err)
	}

	open := opens.Next(ref)
	if open.IsZero() {
		return 0, fmt.Errorf("opens_at %q never fires after %s", w.OpensAt, ref.Format(time.RFC3339))
	}
	closeAt := closes.Next(open)
	if closeAt.IsZero() {
		return 0, fmt.Errorf("closes_at %q never fires after %s", w.ClosesAt, open.Format(time.RFC3339))
	}
	return closeAt.Sub(open).Seconds(), nil
}
