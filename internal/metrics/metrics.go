package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"storefront/internal/models"
)

var (
	intentDesc = prometheus.NewDesc(
		"storefront_bot_intents_total",
		"Total chat messages classified by intent",
		[]string{"intent"},
		nil,
	)
)

// recordTimeout bounds a single asynchronous counter update.
const recordTimeout = 5 * time.Second

// IntentStore persists intent counts.
type IntentStore interface {
	IncrementIntentCount(ctx context.Context, intent string) error
	GetAllIntentCounts(ctx context.Context) ([]models.IntentCount, error)
}

// IntentCollector is a custom Prometheus collector that reads intent counts
// from the database on each scrape, so totals survive restarts and are shared
// across replicas.
type IntentCollector struct {
	store IntentStore
	log   *zap.Logger
}

// NewIntentCollector creates a collector over store.
func NewIntentCollector(store IntentStore, log *zap.Logger) *IntentCollector {
	return &IntentCollector{store: store, log: log}
}

// Describe sends the metric descriptor to the channel.
func (c *IntentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- intentDesc
}

// Collect queries the store for all intent counts and emits them as counters.
func (c *IntentCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.store.GetAllIntentCounts(context.Background())
	if err != nil {
		c.log.Error("failed to collect intent metrics", zap.Error(err))
		return
	}
	for _, ic := range counts {
		ch <- prometheus.MustNewConstMetric(
			intentDesc,
			prometheus.CounterValue,
			float64(ic.Count),
			ic.Intent,
		)
	}
}

// Recorder provides async intent recording.
type Recorder struct {
	store IntentStore
	log   *zap.Logger
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store IntentStore, log *zap.Logger) *Recorder {
	return &Recorder{store: store, log: log}
}

// RecordIntent asynchronously increments the count for intent. Failures are
// logged and otherwise ignored.
func (r *Recorder) RecordIntent(intent string) {
	if r == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.store.IncrementIntentCount(ctx, intent); err != nil {
			r.log.Error("failed to record intent", zap.String("intent", intent), zap.Error(err))
		}
	}()
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector with the default Prometheus registry
// and returns the process-wide recorder. Later calls return the same recorder.
func Init(store IntentStore, log *zap.Logger) *Recorder {
	recorderOnce.Do(func() {
		recorder = NewRecorder(store, log)
		prometheus.MustRegister(NewIntentCollector(store, log))
	})
	return recorder
}
