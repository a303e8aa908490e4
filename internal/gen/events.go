package gen

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

// Feed ceilings. Whatever limit a caller asks for is clamped here so an
// unbounded-looking query parameter cannot demand excessive volume.
const (
	MaxAlerts   = 50
	MaxErrors   = 50
	MaxLogLines = 200
	alertWindow = 12 * time.Hour
	errorWindow = 48 * time.Hour
	logWindow   = 30 * time.Minute
)

// Alerts samples n alert entries, newest first. Fresh on every call;
// nothing is persisted or deduplicated.
func Alerts(rnd *randx.Source, n int) []models.Alert {
	n = clampCount(n, MaxAlerts)
	out := make([]models.Alert, 0, n)
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		m := randx.Choice(rnd, refdata.AlertCatalog)
		out = append(out, models.Alert{
			ID:           uuid.NewString(),
			Time:         now.Add(-time.Duration(rnd.Float(0, float64(alertWindow)))),
			Severity:     m.Level,
			Message:      m.Text,
			Source:       m.Source,
			Acknowledged: m.Resolved,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out
}

// Errors mirrors Alerts over the error catalog with a wider window.
func Errors(rnd *randx.Source, n int) []models.ErrorEvent {
	n = clampCount(n, MaxErrors)
	out := make([]models.ErrorEvent, 0, n)
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		m := randx.Choice(rnd, refdata.ErrorCatalog)
		out = append(out, models.ErrorEvent{
			ID:       uuid.NewString(),
			Time:     now.Add(-time.Duration(rnd.Float(0, float64(errorWindow)))),
			Level:    m.Level,
			Message:  m.Text,
			Source:   m.Source,
			Resolved: m.Resolved,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out
}

// Logs samples transient log lines; they carry no identity.
func Logs(rnd *randx.Source, n int) []models.LogEvent {
	n = clampCount(n, MaxLogLines)
	out := make([]models.LogEvent, 0, n)
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		m := randx.Choice(rnd, refdata.LogCatalog)
		out = append(out, models.LogEvent{
			Time:    now.Add(-time.Duration(rnd.Float(0, float64(logWindow)))),
			Level:   m.Level,
			Message: m.Text,
			Source:  m.Source,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out
}

// LogLine returns a single fresh log event stamped now, for the
// connection simulators.
func LogLine(rnd *randx.Source) models.LogEvent {
	m := randx.Choice(rnd, refdata.LogCatalog)
	return models.LogEvent{
		Time:    time.Now().UTC(),
		Level:   m.Level,
		Message: m.Text,
		Source:  m.Source,
	}
}

func clampCount(n, max int) int {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
