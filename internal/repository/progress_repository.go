package repository

import (
	"context"
	"database/sql"

	"github.com/avelichko/consult-api/internal/model"
)

// ProgressRepo provides access to the progress_tracking table.  Samples
// are append-only; recorded_at is filled in by the database.
type ProgressRepo struct{ DB *sql.DB }

// NewProgressRepo returns a new ProgressRepo bound to the given database.
func NewProgressRepo(db *sql.DB) *ProgressRepo { return &ProgressRepo{DB: db} }

// MetricSample pairs a metric name with its integer value for
// insertion.  A slice keeps the caller's submission order, which a map
// would not.
type MetricSample struct {
	Name  string
	Value int64
}

// InsertSamplesTx inserts one row per metric sample within an existing
// transaction.  Passing an empty slice has no effect and returns nil.
func (r *ProgressRepo) InsertSamplesTx(ctx context.Context, tx *sql.Tx, clientID uint64, samples []MetricSample) error {
	if len(samples) == 0 {
		return nil
	}
	const q = `INSERT INTO progress_tracking (client_id, metric_name, metric_value) VALUES (?,?,?)`
	for _, s := range samples {
		if _, err := tx.ExecContext(ctx, q, clientID, s.Name, s.Value); err != nil {
			return err
		}
	}
	return nil
}

// Record inserts the given samples in one transaction so that a
// multi-metric submission commits or rolls back as a unit.
func (r *ProgressRepo) Record(ctx context.Context, clientID uint64, samples []MetricSample) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := r.InsertSamplesTx(ctx, tx, clientID, samples); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListByClient returns every progress sample for a client ordered by
// recording time descending.  The id is a tiebreak so that "latest" is
// deterministic when several samples share a timestamp.
func (r *ProgressRepo) ListByClient(ctx context.Context, clientID uint64) ([]model.ProgressSample, error) {
	const q = `SELECT id, client_id, metric_name, metric_value, recorded_at
	           FROM progress_tracking
	           WHERE client_id = ?
	           ORDER BY recorded_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples := []model.ProgressSample{}
	for rows.Next() {
		var s model.ProgressSample
		if err := rows.Scan(&s.ID, &s.ClientID, &s.MetricName, &s.MetricValue, &s.RecordedAt); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}
