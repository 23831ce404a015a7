package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Inventory Metrics
var (
	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDaysAdvanced,
			Help:      HelpTextDaysAdvanced,
		},
	)

	ItemsUpdated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsUpdated,
			Help:      HelpTextItemsUpdated,
		},
		[]string{LabelCategory},
	)

	ItemsPastSellIn = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsPastSellIn,
			Help:      HelpTextItemsPastSellIn,
		},
	)

	ItemQuality = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameItemQuality,
			Help:      HelpTextItemQuality,
			Buckets:   QualityBuckets,
		},
		[]string{LabelCategory},
	)

	ItemsStocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsStocked,
			Help:      HelpTextItemsStocked,
		},
		[]string{LabelCategory},
	)

	CurrentDay = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameCurrentDay,
			Help:      HelpTextCurrentDay,
		},
	)
)

// RecordAdvance records a persisted advance of days simulated days.
// items is the inventory after the last day.
func RecordAdvance(days, currentDay int, items []domain.Item) {
	DaysAdvanced.Add(float64(days))
	CurrentDay.Set(float64(currentDay))

	pastSellIn := 0
	for i := range items {
		category := items[i].ResolveCategory()
		label := category.String()
		if category != domain.CategoryLegendary {
			ItemsUpdated.WithLabelValues(label).Add(float64(days))
		}
		ItemQuality.WithLabelValues(label).Observe(float64(items[i].Quality))
		if items[i].SellIn < 0 {
			pastSellIn++
		}
	}
	ItemsPastSellIn.Set(float64(pastSellIn))
}

// RecordStocked records a newly added item
func RecordStocked(category domain.Category) {
	ItemsStocked.WithLabelValues(category.String()).Inc()
}
