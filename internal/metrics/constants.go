package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the service
const Namespace = "gildedrose"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Inventory metric names
const (
	MetricNameDaysAdvanced    = "days_advanced_total"
	MetricNameItemsUpdated    = "items_updated_total"
	MetricNameItemsPastSellIn = "items_past_sell_in"
	MetricNameItemQuality     = "item_quality"
	MetricNameItemsStocked    = "items_stocked_total"
	MetricNameCurrentDay      = "current_day"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Inventory metric help text
const (
	HelpTextDaysAdvanced    = "Total number of simulated days advanced"
	HelpTextItemsUpdated    = "Total number of item day updates applied"
	HelpTextItemsPastSellIn = "Number of items whose sell-in is below zero"
	HelpTextItemQuality     = "Item quality observed after each day update"
	HelpTextItemsStocked    = "Total number of items added to the inventory"
	HelpTextCurrentDay      = "Current simulated day"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// QualityBuckets spans the ordinary quality range plus the legendary value
var QualityBuckets = []float64{0, 5, 10, 20, 30, 40, 49, 50, 80}

// UnmatchedRoutePath is the path label used when no route matched
const UnmatchedRoutePath = "unmatched"
