package repository

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ImprovementsRepo stores improvement audit rows. A nil pool turns every call
// into a no-op so the server runs without a database.
type ImprovementsRepo struct {
	pool *pgxpool.Pool
}

func NewImprovementsRepo(pool *pgxpool.Pool) *ImprovementsRepo {
	return &ImprovementsRepo{pool: pool}
}

func (r *ImprovementsRepo) Save(ctx context.Context, rec *domain.ImprovementRecord) error {
	if r == nil || r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO improvement_requests (id, field_type, provider, status, input_chars, output_chars, duration_ms, error, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, output_chars = EXCLUDED.output_chars, duration_ms = EXCLUDED.duration_ms, error = EXCLUDED.error`,
		rec.ID, rec.FieldType, rec.Provider, rec.Status, rec.InputChars, rec.OutputChars, rec.Duration.Milliseconds(), rec.Error, rec.CreatedAt)
	return err
}

// FieldTypeStats is one row of the usage summary.
type FieldTypeStats struct {
	FieldType string `json:"field_type"`
	Total     int64  `json:"total"`
	Failed    int64  `json:"failed"`
	AvgMillis int64  `json:"avg_ms"`
}

// Stats summarises recorded calls per field type. Without a database it
// returns an empty slice.
func (r *ImprovementsRepo) Stats(ctx context.Context) ([]FieldTypeStats, error) {
	out := []FieldTypeStats{}
	if r == nil || r.pool == nil {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT field_type, count(*), count(*) FILTER (WHERE status <> 'succeeded'), coalesce(avg(duration_ms), 0)::bigint
		FROM improvement_requests GROUP BY field_type ORDER BY field_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s FieldTypeStats
		if err := rows.Scan(&s.FieldType, &s.Total, &s.Failed, &s.AvgMillis); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
