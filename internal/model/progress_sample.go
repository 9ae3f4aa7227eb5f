package model

import "time"

// ProgressSample is one timestamped (metric name, value) observation
// for a client.  Samples are append-only; a submission containing
// several metrics produces one row per metric.
//
// Fields:
//  ID         – primary key identifier.
//  ClientID   – client the sample belongs to.
//  MetricName – metric key, e.g. "weight".
//  MetricValue – integer observation value.
//  RecordedAt – when the sample was recorded.
type ProgressSample struct {
	ID          uint64    // progress_tracking.id
	ClientID    uint64    // progress_tracking.client_id
	MetricName  string    // progress_tracking.metric_name
	MetricValue int64     // progress_tracking.metric_value
	RecordedAt  time.Time // progress_tracking.recorded_at
}
