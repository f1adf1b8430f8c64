package repository

import (
	"context"
	"database/sql"
	"time"
)

// SessionRepo handles completed-session history.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Insert(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, mode, started_at, ended_at, duration_seconds, created_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`,
		s.ID, s.Mode, s.StartedAt, s.EndedAt, s.DurationSeconds)
	return err
}

// ListRecent returns the most recently completed sessions, newest first.
func (r *SessionRepo) ListRecent(ctx context.Context, limit int) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, mode, started_at, ended_at, duration_seconds, created_at
	FROM sessions ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Mode, &s.StartedAt, &s.EndedAt, &s.DurationSeconds, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TotalsSince aggregates sessions that ended at or after the cutoff.
func (r *SessionRepo) TotalsSince(ctx context.Context, cutoff time.Time) (Totals, error) {
	var t Totals
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*), COALESCE(SUM(duration_seconds), 0)
	FROM sessions WHERE ended_at >= ?`, cutoff).Scan(&t.Sessions, &t.FocusSeconds)
	return t, err
}
