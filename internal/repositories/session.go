package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
)

var _ models.Repository[*models.ListeningSession] = (*SessionRepository)(nil)

// SessionRepository implements models.Repository[*models.ListeningSession].
//
// Sessions are written by the monitoring enhancer after each completed
// playback pass and queried by the sessions CLI commands. Soft deletes
// keep history recoverable.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository with the given database connection.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Record persists a session, satisfying playlist.SessionRecorder.
func (r *SessionRepository) Record(session *models.ListeningSession) error {
	return r.Create(session)
}

// Create inserts a new [models.ListeningSession] with generated ID and sequence.
func (r *SessionRepository) Create(session *models.ListeningSession) error {
	sequence, err := NextSequence(r.db, "sessions")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	session.SetID(id)
	session.SetSequence(sequence)

	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO sessions (id, sequence, playlist, track_count, listened_seconds, started_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		session.Playlist(),
		session.TrackCount(),
		session.ListenedSeconds(),
		session.StartedAt(),
		session.CreatedAt(),
		session.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID, excluding soft-deleted sessions.
func (r *SessionRepository) Get(id string) (*models.ListeningSession, error) {
	query := `
		SELECT id, sequence, playlist, track_count, listened_seconds, started_at, created_at, updated_at, deleted_at
		FROM sessions
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing session in the database.
func (r *SessionRepository) Update(session *models.ListeningSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	session.SetUpdatedAt(now)

	query := `
		UPDATE sessions
		SET playlist = ?, track_count = ?, listened_seconds = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		session.Playlist(),
		session.TrackCount(),
		session.ListenedSeconds(),
		now,
		session.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSessionNotFound, session.ID())
	}

	return nil
}

// Delete soft-deletes a session by ID.
func (r *SessionRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE sessions
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSessionNotFound, id)
	}

	return nil
}

// List retrieves all sessions matching the given criteria, excluding soft-deleted sessions.
// Supported criteria: "playlist" (exact name match).
func (r *SessionRepository) List(criteria map[string]any) ([]*models.ListeningSession, error) {
	query := `
		SELECT id, sequence, playlist, track_count, listened_seconds, started_at, created_at, updated_at, deleted_at
		FROM sessions
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if playlist, ok := criteria["playlist"].(string); ok && playlist != "" {
		query += " AND playlist = ?"
		args = append(args, playlist)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.ListeningSession
	for rows.Next() {
		session, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionStats aggregates listening history across all recorded sessions.
type SessionStats struct {
	Count           int     `json:"count"`
	TotalListened   int     `json:"total_listened_seconds"`
	AverageListened float64 `json:"average_listened_seconds"`
}

// Stats computes aggregate counters over non-deleted sessions. The
// average is zero when no sessions exist.
func (r *SessionRepository) Stats() (*SessionStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(listened_seconds), 0)
		FROM sessions
		WHERE deleted_at IS NULL
	`

	stats := &SessionStats{}
	if err := r.db.QueryRow(query).Scan(&stats.Count, &stats.TotalListened); err != nil {
		return nil, fmt.Errorf("failed to compute session stats: %w", err)
	}

	if stats.Count > 0 {
		stats.AverageListened = float64(stats.TotalListened) / float64(stats.Count)
	}

	return stats, nil
}

// scanOne scans a single [sql.Row] into a [models.ListeningSession].
func (r *SessionRepository) scanOne(row *sql.Row) (*models.ListeningSession, error) {
	var (
		id              string
		sequence        int
		playlist        string
		trackCount      int
		listenedSeconds int
		startedAt       time.Time
		createdAt       time.Time
		updatedAt       time.Time
		deletedAt       sql.NullTime
	)

	err := row.Scan(&id, &sequence, &playlist, &trackCount, &listenedSeconds, &startedAt, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, shared.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	return hydrate(id, sequence, playlist, trackCount, listenedSeconds, startedAt, createdAt, updatedAt, deletedAt), nil
}

// scanRow scans a row from [sql.Rows] into a [models.ListeningSession].
func (r *SessionRepository) scanRow(rows *sql.Rows) (*models.ListeningSession, error) {
	var (
		id              string
		sequence        int
		playlist        string
		trackCount      int
		listenedSeconds int
		startedAt       time.Time
		createdAt       time.Time
		updatedAt       time.Time
		deletedAt       sql.NullTime
	)

	err := rows.Scan(&id, &sequence, &playlist, &trackCount, &listenedSeconds, &startedAt, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	return hydrate(id, sequence, playlist, trackCount, listenedSeconds, startedAt, createdAt, updatedAt, deletedAt), nil
}

func hydrate(id string, sequence int, playlist string, trackCount, listenedSeconds int, startedAt, createdAt, updatedAt time.Time, deletedAt sql.NullTime) *models.ListeningSession {
	session := models.NewListeningSession(playlist, trackCount, listenedSeconds, startedAt)
	session.SetID(id)
	session.SetSequence(sequence)
	session.SetCreatedAt(createdAt)
	session.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		session.SetDeletedAt(&deletedAt.Time)
	}
	return session
}
