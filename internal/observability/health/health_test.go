package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func newTestMonitor(db Pinger) (*Monitor, *time.Time) {
	now := time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)
	m := NewMonitor(30*time.Minute, db, []string{"server-1"})
	m.now = func() time.Time { return now }
	m.startedAt = now
	return m, &now
}

func TestMonitor_Report(t *testing.T) {
	ctx := t.Context()
	okDB := pingerFunc(func(context.Context) error { return nil })

	t.Run("fresh process is healthy", func(t *testing.T) {
		m, _ := newTestMonitor(okDB)
		assert.True(t, m.Report(ctx).Healthy)
	})

	t.Run("no success within window", func(t *testing.T) {
		m, now := newTestMonitor(okDB)
		*now = now.Add(31 * time.Minute)
		m.RecordCycle("server-1", errors.New("provider down"))

		report := m.Report(ctx)
		assert.False(t, report.Healthy)
		require.Len(t, report.Trackers, 1)
		assert.Equal(t, "provider down", report.Trackers[0].LastError)
	})

	t.Run("recent success", func(t *testing.T) {
		m, now := newTestMonitor(okDB)
		*now = now.Add(time.Hour)
		m.RecordCycle("server-1", nil)
		*now = now.Add(10 * time.Minute)

		report := m.Report(ctx)
		assert.True(t, report.Healthy)
		assert.NotNil(t, report.Trackers[0].LastSuccess)
	})

	t.Run("persistence degraded until next success", func(t *testing.T) {
		m, _ := newTestMonitor(okDB)
		m.MarkPersistenceDegraded("server-1", errors.New("write rejected"))
		assert.False(t, m.Report(ctx).Healthy)

		m.RecordCycle("server-1", nil)
		assert.True(t, m.Report(ctx).Healthy)
	})

	t.Run("db unreachable", func(t *testing.T) {
		m, _ := newTestMonitor(pingerFunc(func(context.Context) error { return errors.New("no reachable servers") }))
		report := m.Report(ctx)
		assert.False(t, report.Healthy)
		assert.Equal(t, "no reachable servers", report.PersistenceError)
	})
}

func TestMonitor_ServeHTTP(t *testing.T) {
	m, _ := newTestMonitor(nil)

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Healthy)

	m.MarkPersistenceDegraded("server-1", errors.New("boom"))
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
