package paymentrepo

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

func (r *Repository) CreateRequest(ctx context.Context, pr *domain.PaymentRequest) (*domain.PaymentRequest, error) {
	query := `
        INSERT INTO payment_requests (id, creator_type, creator_persona_id, creator_host_id, target_type, target_persona_id, target_host_id, amount, purpose, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	pr.ID = uuid.NewString()
	pr.Status = domain.RequestPending

	var creatorPersona, creatorHost *string
	if pr.Creator.Type == domain.OwnerPersona {
		creatorPersona = &pr.Creator.ID
	} else {
		creatorHost = &pr.Creator.ID
	}
	var targetType, targetPersona, targetHost *string
	if pr.Target != nil {
		t := string(pr.Target.Type)
		targetType = &t
		if pr.Target.Type == domain.OwnerPersona {
			targetPersona = &pr.Target.ID
		} else {
			targetHost = &pr.Target.ID
		}
	}

	_, err := r.db.Exec(ctx, query,
		pr.ID, pr.Creator.Type, creatorPersona, creatorHost, targetType, targetPersona, targetHost, pr.Amount, pr.Purpose, pr.Status)
	if err != nil {
		zap.L().Error("can't create payment request", zap.Error(err))
		return nil, err
	}
	return pr, nil
}

func (r *Repository) CreateToken(ctx context.Context, t *domain.QrToken) (*domain.QrToken, error) {
	query := `
        INSERT INTO qr_tokens (token, type, payload, payment_request_id, expires_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, t.Token, t.Type, t.Payload, t.PaymentRequestID, t.ExpiresAt)
	if err != nil {
		zap.L().Error("can't create qr token", zap.Error(err))
		return nil, err
	}
	return t, nil
}

// GetToken resolves a token that is still alive. Expired and never-issued
// tokens are indistinguishable to the caller: both come back nil.
func (r *Repository) GetToken(ctx context.Context, token string, now time.Time) (*domain.QrToken, *domain.PaymentRequest, error) {
	query := `
        SELECT t.token, t.type, t.payload, t.payment_request_id, t.expires_at,
               pr.id, pr.creator_type, pr.creator_persona_id, pr.creator_host_id,
               pr.target_type, pr.target_persona_id, pr.target_host_id,
               pr.amount, pr.purpose, pr.status, pr.completed_at
        FROM qr_tokens t
        LEFT JOIN payment_requests pr ON pr.id = t.payment_request_id
        WHERE t.token = $1 AND t.expires_at > $2
    `
	row := r.db.QueryRow(ctx, query, token, now)

	var qt domain.QrToken
	var prID, creatorType, creatorPersona, creatorHost *string
	var targetType, targetPersona, targetHost *string
	var amount *int64
	var purpose, status *string
	var completedAt *time.Time

	err := row.Scan(&qt.Token, &qt.Type, &qt.Payload, &qt.PaymentRequestID, &qt.ExpiresAt,
		&prID, &creatorType, &creatorPersona, &creatorHost,
		&targetType, &targetPersona, &targetHost,
		&amount, &purpose, &status, &completedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		zap.L().Error("can't get qr token", zap.Error(err))
		return nil, nil, err
	}

	if prID == nil {
		return &qt, nil, nil
	}

	pr := &domain.PaymentRequest{
		ID:          *prID,
		Amount:      *amount,
		Purpose:     *purpose,
		Status:      domain.RequestStatus(*status),
		CompletedAt: completedAt,
	}
	pr.Creator = ownerRef(*creatorType, creatorPersona, creatorHost)
	if targetType != nil {
		ref := ownerRef(*targetType, targetPersona, targetHost)
		pr.Target = &ref
	}
	return &qt, pr, nil
}

// ClaimPending flips a request PENDING -> COMPLETED. Returns false when the
// request was already completed by someone else.
func (r *Repository) ClaimPending(ctx context.Context, requestID string, now time.Time) (bool, error) {
	query := `
        UPDATE payment_requests
        SET status = 'COMPLETED', completed_at = $2
        WHERE id = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, requestID, now)
	if err != nil {
		zap.L().Error("can't claim payment request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func ownerRef(ownerType string, personaID, hostID *string) domain.OwnerRef {
	ref := domain.OwnerRef{Type: domain.OwnerType(ownerType)}
	if personaID != nil {
		ref.ID = *personaID
	} else if hostID != nil {
		ref.ID = *hostID
	}
	return ref
}
