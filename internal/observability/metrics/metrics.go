package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var defaultHistogramBucketsSeconds = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

var (
	once          sync.Once
	metricsRouter *chi.Mux
	server        *http.Server

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	providerClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_client_latency_seconds",
			Help:    "Histogram of vote provider client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	discordClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discord_client_latency_seconds",
			Help:    "Histogram of discord client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "tracker", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	syncStateCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_state_count",
			Help: "Number of completed sync cycles per tracker and reconciliation state",
		},
		[]string{"tracker", "state"},
	)

	persistenceFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_persistence_failure_count",
			Help: "Number of times the sync state could not be saved after the message was already published or edited",
		},
		[]string{"tracker"},
	)

	leaderboardEntriesGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "leaderboard_entries",
			Help: "Number of voters on the last fetched leaderboard",
		},
		[]string{"tracker"},
	)

	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)
)

// Init registers the collectors and starts the http server exposing /metrics,
// and /health when healthHandler is set. Subsequent calls return the same server.
func Init(addr string, healthHandler http.Handler) *http.Server {
	once.Do(func() {
		registerMetrics()
		initMetricsRouter(addr, healthHandler)
	})
	return server
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(addr string, healthHandler http.Handler) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	if healthHandler != nil {
		metricsRouter.Method(http.MethodGet, "/health", healthHandler)
	}

	// Create a custom server with timeout settings
	server = &http.Server{
		Addr:         addr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", addr)
		}
	}()
}

// registerMetrics registers the Prometheus metrics.
func registerMetrics() {
	prometheus.MustRegister(
		clientRequestDurationHistogram,
		providerClientLatency,
		discordClientLatency,
		pollerDurationHistogram,
		dbLatency,
		syncStateCounter,
		persistenceFailureCounter,
		leaderboardEntriesGauge,
		queueSendErrorCounter,
	)
}

func RecordProviderClientLatency(d time.Duration, method string, failure bool) {
	providerClientLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordDiscordClientLatency(d time.Duration, method string, failure bool) {
	discordClientLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordSyncState(tracker, state string) {
	syncStateCounter.WithLabelValues(tracker, state).Inc()
}

func IncPersistenceFailures(tracker string) {
	persistenceFailureCounter.WithLabelValues(tracker).Inc()
}

func RecordLeaderboardEntries(tracker string, count int) {
	leaderboardEntriesGauge.WithLabelValues(tracker).Set(float64(count))
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}
