package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestNewTelegramNotifier_EmptyTokenDisables(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)

	// must not panic without a bot
	n.NotifySyncCompleted(context.Background(), domain.SyncResult{Synced: 1})
	n.NotifyVisitorCheckedIn(context.Background(), &domain.Event{Name: "Service"}, &domain.Attendance{Name: "Esi"})
}

func TestVisitorText(t *testing.T) {
	spec, err := eventtime.ParseSpec("2024-03-17", nil, nil, nil)
	require.NoError(t, err)
	howHeard := "Social Media"

	text := visitorText(
		&domain.Event{Name: "Sunday_Service", Schedule: spec},
		&domain.Attendance{Name: "Esi", Phone: "0241234567", Church: "Grace Chapel", HowHeard: &howHeard},
	)

	assert.Contains(t, text, "*New visitor*")
	assert.Contains(t, text, `Sunday\_Service (2024-03-17)`)
	assert.Contains(t, text, "Heard through: Social Media")
}

func TestVisitorText_NoHowHeard(t *testing.T) {
	text := visitorText(&domain.Event{Name: "Service"}, &domain.Attendance{Name: "Esi"})

	assert.Contains(t, text, "Heard through: not stated")
}

func TestSyncText(t *testing.T) {
	text := syncText(domain.SyncResult{Synced: 3, Failed: 1, Rejected: 2})

	assert.Contains(t, text, "Synced: 3")
	assert.Contains(t, text, "Still pending: 1")
	assert.Contains(t, text, "Rejected: 2")
}
