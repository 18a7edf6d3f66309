package hackrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const sessionColumns = `id, attacker_persona_id, target_type, target_persona_id, target_host_id, element_type, status, expires_at, consumed_operation_at, created_at`

func (r *Repository) Create(ctx context.Context, s *domain.HackSession) (*domain.HackSession, error) {
	query := `
        INSERT INTO hack_sessions (id, attacker_persona_id, target_type, target_persona_id, target_host_id, element_type, status, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	s.ID = uuid.NewString()
	s.Status = domain.SessionActive
	_, err := r.db.Exec(ctx, query,
		s.ID, s.AttackerPersonaID, s.TargetType, s.TargetPersonaID, s.TargetHostID, s.ElementType, s.Status, s.ExpiresAt)
	if err != nil {
		zap.L().Error("can't create hack session", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) GetByID(ctx context.Context, sessionID string) (*domain.HackSession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM hack_sessions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, sessionID)

	var s domain.HackSession
	err := row.Scan(&s.ID, &s.AttackerPersonaID, &s.TargetType, &s.TargetPersonaID, &s.TargetHostID,
		&s.ElementType, &s.Status, &s.ExpiresAt, &s.ConsumedOperationAt, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get hack session", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// Transition moves an ACTIVE session into a terminal state. Returns false when
// the session was no longer active, which covers the race against the expiry
// sweep and against a concurrent complete/cancel.
func (r *Repository) Transition(ctx context.Context, sessionID string, to domain.SessionStatus) (bool, error) {
	query := `
        UPDATE hack_sessions
        SET status = $2
        WHERE id = $1 AND status = 'ACTIVE'
    `
	tag, err := r.db.Exec(ctx, query, sessionID, to)
	if err != nil {
		zap.L().Error("can't transition hack session", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ClaimConsume spends the session's single operation credit. Only one caller
// can ever win this update.
func (r *Repository) ClaimConsume(ctx context.Context, sessionID string, now time.Time) (bool, error) {
	query := `
        UPDATE hack_sessions
        SET consumed_operation_at = $2
        WHERE id = $1 AND status = 'SUCCESS' AND consumed_operation_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, sessionID, now)
	if err != nil {
		zap.L().Error("can't consume hack session", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE hack_sessions
        SET status = 'EXPIRED'
        WHERE status = 'ACTIVE' AND expires_at < $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't expire hack sessions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListTargets(ctx context.Context, personaID string) ([]domain.KnownTarget, error) {
	query := `
        SELECT persona_id, target_type, target_id, created_at
        FROM decking_targets
        WHERE persona_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, personaID)
	if err != nil {
		zap.L().Error("can't get known targets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var targets []domain.KnownTarget
	for rows.Next() {
		var t domain.KnownTarget
		if err := rows.Scan(&t.PersonaID, &t.TargetType, &t.TargetID, &t.CreatedAt); err != nil {
			zap.L().Error("can't scan known target row", zap.Error(err))
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func (r *Repository) AddTarget(ctx context.Context, t *domain.KnownTarget) (*domain.KnownTarget, error) {
	query := `
        INSERT INTO decking_targets (persona_id, target_type, target_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (persona_id, target_type, target_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, t.PersonaID, t.TargetType, t.TargetID)
	if err != nil {
		zap.L().Error("can't add known target", zap.Error(err))
		return nil, err
	}
	return t, nil
}
