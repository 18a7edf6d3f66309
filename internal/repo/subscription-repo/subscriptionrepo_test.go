package subscriptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gridcore/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        INSERT INTO subscriptions (id, payer_type, payer_id, payee_type, payee_id, amount_per_tick, period_seconds, type)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(pgxmock.AnyArg(), domain.OwnerPersona, "p-1", domain.OwnerHost, "h-1", int64(50), int64(3600), domain.SubSubscription).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	sub, err := repo.Create(context.Background(), &domain.Subscription{
		Payer:         domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"},
		Payee:         domain.OwnerRef{Type: domain.OwnerHost, ID: "h-1"},
		AmountPerTick: 50,
		PeriodSeconds: 3600,
		Type:          domain.SubSubscription,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT id, payer_type, payer_id, payee_type, payee_id, amount_per_tick, period_seconds, type, last_charged_at
        FROM subscriptions
    `
	lastCharged := time.Now().Add(-2 * time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns all subscriptions",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "payer_type", "payer_id", "payee_type", "payee_id", "amount_per_tick", "period_seconds", "type", "last_charged_at"}).
					AddRow("sub-1", domain.OwnerPersona, "p-1", domain.OwnerHost, "h-1", int64(50), int64(3600), domain.SubSubscription, &lastCharged).
					AddRow("sub-2", domain.OwnerHost, "h-1", domain.OwnerPersona, "p-2", int64(200), int64(3600), domain.SubSalary, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListAll(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_ListByPersona(t *testing.T) {
	repo, mock := NewMock(t)

	payerQuery := `
        SELECT id, payer_type, payer_id, payee_type, payee_id, amount_per_tick, period_seconds, type, last_charged_at
        FROM subscriptions
        WHERE payer_type = 'PERSONA' AND payer_id = $1
    `
	payeeQuery := `
        SELECT id, payer_type, payer_id, payee_type, payee_id, amount_per_tick, period_seconds, type, last_charged_at
        FROM subscriptions
        WHERE payee_type = 'PERSONA' AND payee_id = $1
    `

	payerRows := pgxmock.NewRows([]string{"id", "payer_type", "payer_id", "payee_type", "payee_id", "amount_per_tick", "period_seconds", "type", "last_charged_at"}).
		AddRow("sub-1", domain.OwnerPersona, "p-1", domain.OwnerHost, "h-1", int64(50), int64(3600), domain.SubSubscription, nil)
	payeeRows := pgxmock.NewRows([]string{"id", "payer_type", "payer_id", "payee_type", "payee_id", "amount_per_tick", "period_seconds", "type", "last_charged_at"}).
		AddRow("sub-2", domain.OwnerHost, "h-2", domain.OwnerPersona, "p-1", int64(200), int64(3600), domain.SubSalary, nil)

	mock.ExpectQuery(regexp.QuoteMeta(payerQuery)).WithArgs("p-1").WillReturnRows(payerRows)
	mock.ExpectQuery(regexp.QuoteMeta(payeeQuery)).WithArgs("p-1").WillReturnRows(payeeRows)

	asPayer, asPayee, err := repo.ListByPersona(context.Background(), "p-1")
	assert.NoError(t, err)
	assert.Len(t, asPayer, 1)
	assert.Len(t, asPayee, 1)
	assert.Equal(t, "sub-1", asPayer[0].ID)
	assert.Equal(t, "sub-2", asPayee[0].ID)
}

func TestRepository_ClaimDue(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        UPDATE subscriptions
        SET last_charged_at = $2
        WHERE id = $1
          AND (last_charged_at IS NULL OR last_charged_at + make_interval(secs => period_seconds) <= $2)
    `
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		claimed   bool
	}{
		{
			name: "Due subscription is claimed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("sub-1", now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			claimed: true,
		},
		{
			name: "Not due subscription is not claimed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("sub-1", now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			claimed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("sub-1", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			claimed, err := repo.ClaimDue(context.Background(), "sub-1", now)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.claimed, claimed)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        DELETE FROM subscriptions
        WHERE id = $1
    `

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("sub-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), "sub-1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("sub-99").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), "sub-99")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestSubscription_Due(t *testing.T) {
	now := time.Now()
	twoHoursAgo := now.Add(-2 * time.Hour)
	justNow := now.Add(-time.Minute)

	tests := []struct {
		name          string
		lastChargedAt *time.Time
		due           bool
	}{
		{name: "Never charged is due", lastChargedAt: nil, due: true},
		{name: "Full period elapsed is due", lastChargedAt: &twoHoursAgo, due: true},
		{name: "Recently charged is not due", lastChargedAt: &justNow, due: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := domain.Subscription{PeriodSeconds: 3600, LastChargedAt: tt.lastChargedAt}
			assert.Equal(t, tt.due, sub.Due(now))
		})
	}
}
