package subscriptionrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
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

const subscriptionColumns = `id, payer_type, payer_id, payee_type, payee_id, amount_per_tick, period_seconds, type, last_charged_at`

func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	query := `
        INSERT INTO subscriptions (id, payer_type, payer_id, payee_type, payee_id, amount_per_tick, period_seconds, type)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	sub.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.Payer.Type, sub.Payer.ID, sub.Payee.Type, sub.Payee.ID, sub.AmountPerTick, sub.PeriodSeconds, sub.Type)
	if err != nil {
		zap.L().Error("can't create subscription", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Subscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get subscriptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanSubscriptions(rows)
}

func (r *Repository) ListByPersona(ctx context.Context, personaID string) (asPayer, asPayee []domain.Subscription, err error) {
	asPayer, err = r.listBySide(ctx, "payer", personaID)
	if err != nil {
		return nil, nil, err
	}
	asPayee, err = r.listBySide(ctx, "payee", personaID)
	if err != nil {
		return nil, nil, err
	}
	return asPayer, asPayee, nil
}

func (r *Repository) listBySide(ctx context.Context, side, personaID string) ([]domain.Subscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE ` + side + `_type = 'PERSONA' AND ` + side + `_id = $1
    `
	rows, err := r.db.Query(ctx, query, personaID)
	if err != nil {
		zap.L().Error("can't get subscriptions by persona", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanSubscriptions(rows)
}

// ClaimDue stamps last_charged_at if and only if a full period has elapsed.
// Running it inside the charge transaction makes the due-check-then-charge
// atomic per subscription row.
func (r *Repository) ClaimDue(ctx context.Context, subscriptionID string, now time.Time) (bool, error) {
	query := `
        UPDATE subscriptions
        SET last_charged_at = $2
        WHERE id = $1
          AND (last_charged_at IS NULL OR last_charged_at + make_interval(secs => period_seconds) <= $2)
    `
	tag, err := r.db.Exec(ctx, query, subscriptionID, now)
	if err != nil {
		zap.L().Error("can't claim due subscription", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, subscriptionID string) (bool, error) {
	query := `
        DELETE FROM subscriptions
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, subscriptionID)
	if err != nil {
		zap.L().Error("can't delete subscription", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanSubscriptions(rows interface {
	Next() bool
	Scan(dest ...any) error
}) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		err := rows.Scan(&sub.ID, &sub.Payer.Type, &sub.Payer.ID, &sub.Payee.Type, &sub.Payee.ID,
			&sub.AmountPerTick, &sub.PeriodSeconds, &sub.Type, &sub.LastChargedAt)
		if err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
