package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type trackerStatus struct {
	lastSuccess time.Time
	lastFailure time.Time
	lastError   string
	// persistenceErr is set when a message went out but its state was not saved
	persistenceErr string
}

// Monitor keeps the liveness view of the sync loops. It is only read by the
// health endpoint, sync decisions never depend on it.
type Monitor struct {
	mu         sync.RWMutex
	startedAt  time.Time
	staleAfter time.Duration
	db         Pinger
	trackers   map[string]*trackerStatus
	now        func() time.Time
}

func NewMonitor(staleAfter time.Duration, db Pinger, trackerIDs []string) *Monitor {
	m := &Monitor{
		staleAfter: staleAfter,
		db:         db,
		trackers:   make(map[string]*trackerStatus, len(trackerIDs)),
		now:        time.Now,
	}
	m.startedAt = m.now()
	for _, id := range trackerIDs {
		m.trackers[id] = &trackerStatus{}
	}
	return m
}

// RecordCycle stores the outcome of one sync cycle
func (m *Monitor) RecordCycle(trackerID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := m.tracker(trackerID)
	if err != nil {
		status.lastFailure = m.now()
		status.lastError = err.Error()
		return
	}
	status.lastSuccess = m.now()
	status.lastError = ""
	status.persistenceErr = ""
}

// MarkPersistenceDegraded flags a tracker whose published message is not
// reflected in the state store. The flag clears with the next successful cycle.
func (m *Monitor) MarkPersistenceDegraded(trackerID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tracker(trackerID).persistenceErr = err.Error()
}

func (m *Monitor) tracker(id string) *trackerStatus {
	status, ok := m.trackers[id]
	if !ok {
		status = &trackerStatus{}
		m.trackers[id] = status
	}
	return status
}

type TrackerReport struct {
	ID          string     `json:"id"`
	Healthy     bool       `json:"healthy"`
	LastSuccess *time.Time `json:"last_success,omitempty"`
	LastFailure *time.Time `json:"last_failure,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	Persistence string     `json:"persistence_error,omitempty"`
}

type Report struct {
	Healthy          bool            `json:"healthy"`
	PersistenceError string          `json:"persistence_error,omitempty"`
	Trackers         []TrackerReport `json:"trackers"`
}

func (m *Monitor) Report(ctx context.Context) Report {
	report := Report{Healthy: true}

	if m.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := m.db.Ping(pingCtx)
		cancel()
		if err != nil {
			report.Healthy = false
			report.PersistenceError = err.Error()
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	for id, status := range m.trackers {
		tr := TrackerReport{
			ID:          id,
			LastError:   status.lastError,
			Persistence: status.persistenceErr,
		}
		if !status.lastSuccess.IsZero() {
			t := status.lastSuccess
			tr.LastSuccess = &t
		}
		if !status.lastFailure.IsZero() {
			t := status.lastFailure
			tr.LastFailure = &t
		}

		reference := status.lastSuccess
		if reference.IsZero() {
			// give a fresh process one window to complete its first cycle
			reference = m.startedAt
		}
		tr.Healthy = now.Sub(reference) <= m.staleAfter && status.persistenceErr == ""

		if !tr.Healthy {
			report.Healthy = false
		}
		report.Trackers = append(report.Trackers, tr)
	}
	sort.Slice(report.Trackers, func(i, j int) bool {
		return report.Trackers[i].ID < report.Trackers[j].ID
	})

	return report
}

func (m *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report := m.Report(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if report.Healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write health report")
	}
}
