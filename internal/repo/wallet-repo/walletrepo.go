package walletrepo

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

// ErrBalanceGuard is returned when a guarded debit finds the source wallet
// negative or short of funds at write time.
var ErrBalanceGuard = errors.New("balance guard failed")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByOwner(ctx context.Context, owner domain.OwnerRef) (*domain.Wallet, error) {
	query := `
        SELECT id, persona_id, host_id, balance
        FROM wallets
        WHERE persona_id = $1
    `
	if owner.Type == domain.OwnerHost {
		query = `
        SELECT id, persona_id, host_id, balance
        FROM wallets
        WHERE host_id = $1
    `
	}
	row := r.db.QueryRow(ctx, query, owner.ID)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.PersonaID, &wallet.HostID, &wallet.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get wallet by owner", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) GetByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `
        SELECT id, persona_id, host_id, balance
        FROM wallets
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, walletID)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.PersonaID, &wallet.HostID, &wallet.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Debit decrements the wallet balance and returns the new value. A guarded
// debit only applies when the balance is non-negative and covers the amount;
// it returns ErrBalanceGuard otherwise. A forced debit has no precondition.
func (r *Repository) Debit(ctx context.Context, walletID string, amount int64, guarded bool) (int64, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1
        WHERE id = $2
        RETURNING balance
    `
	if guarded {
		query = `
        UPDATE wallets
        SET balance = balance - $1
        WHERE id = $2 AND balance >= 0 AND balance >= $1
        RETURNING balance
    `
	}
	row := r.db.QueryRow(ctx, query, amount, walletID)

	var balance int64
	err := row.Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrBalanceGuard
	}
	if err != nil {
		zap.L().Error("can't debit wallet", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) Credit(ctx context.Context, walletID string, amount int64) (int64, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	row := r.db.QueryRow(ctx, query, amount, walletID)

	var balance int64
	err := row.Scan(&balance)
	if err != nil {
		zap.L().Error("can't credit wallet", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) InsertTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (id, wallet_id, type, amount, is_theft, payment_request_id, subscription_id, meta, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		t.ID, t.WalletID, t.Type, t.Amount, t.IsTheft, t.PaymentRequestID, t.SubscriptionID, t.Meta, t.CreatedAt)
	if err != nil {
		zap.L().Error("can't insert transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID string, includeTheft bool, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, is_theft, payment_request_id, subscription_id, meta, created_at
        FROM transactions
        WHERE wallet_id = $1 AND (is_theft = FALSE OR $2)
        ORDER BY created_at DESC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, walletID, includeTheft, limit)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.IsTheft, &t.PaymentRequestID, &t.SubscriptionID, &t.Meta, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
