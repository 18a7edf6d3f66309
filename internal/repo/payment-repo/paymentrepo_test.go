package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

func strPtr(s string) *string { return &s }

func TestRepository_CreateRequest(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        INSERT INTO payment_requests (id, creator_type, creator_persona_id, creator_host_id, target_type, target_persona_id, target_host_id, amount, purpose, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

	tests := []struct {
		name      string
		request   *domain.PaymentRequest
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Targeted request",
			request: &domain.PaymentRequest{
				Creator: domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"},
				Target:  &domain.OwnerRef{Type: domain.OwnerHost, ID: "h-1"},
				Amount:  250,
				Purpose: "entry fee",
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(pgxmock.AnyArg(), domain.OwnerPersona, strPtr("p-1"), nil, strPtr("HOST"), nil, strPtr("h-1"), int64(250), "entry fee", domain.RequestPending).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Open request has no target columns",
			request: &domain.PaymentRequest{
				Creator: domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"},
				Amount:  100,
				Purpose: "donations",
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(pgxmock.AnyArg(), domain.OwnerPersona, strPtr("p-1"), nil, nil, nil, nil, int64(100), "donations", domain.RequestPending).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			request: &domain.PaymentRequest{
				Creator: domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"},
				Amount:  100,
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(pgxmock.AnyArg(), domain.OwnerPersona, strPtr("p-1"), nil, nil, nil, nil, int64(100), "", domain.RequestPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			pr, err := repo.CreateRequest(context.Background(), tt.request)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, pr.ID)
			assert.Equal(t, domain.RequestPending, pr.Status)
		})
	}
}

func TestRepository_CreateToken(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        INSERT INTO qr_tokens (token, type, payload, payment_request_id, expires_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	expiresAt := time.Now().Add(24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("opaque-1", domain.TokenPayment, map[string]any{"amount": int64(250)}, strPtr("pr-1"), expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	qt, err := repo.CreateToken(context.Background(), &domain.QrToken{
		Token:            "opaque-1",
		Type:             domain.TokenPayment,
		Payload:          map[string]any{"amount": int64(250)},
		PaymentRequestID: strPtr("pr-1"),
		ExpiresAt:        expiresAt,
	})
	assert.NoError(t, err)
	assert.Equal(t, "opaque-1", qt.Token)
}

func TestRepository_GetToken(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT t.token, t.type, t.payload, t.payment_request_id, t.expires_at,
               pr.id, pr.creator_type, pr.creator_persona_id, pr.creator_host_id,
               pr.target_type, pr.target_persona_id, pr.target_host_id,
               pr.amount, pr.purpose, pr.status, pr.completed_at
        FROM qr_tokens t
        LEFT JOIN payment_requests pr ON pr.id = t.payment_request_id
        WHERE t.token = $1 AND t.expires_at > $2
    `
	now := time.Now()
	expiresAt := now.Add(time.Hour)
	columns := []string{
		"token", "type", "payload", "payment_request_id", "expires_at",
		"id", "creator_type", "creator_persona_id", "creator_host_id",
		"target_type", "target_persona_id", "target_host_id",
		"amount", "purpose", "status", "completed_at",
	}

	tests := []struct {
		name       string
		mockSetup  func()
		expectErr  bool
		tokenFound bool
		request    *domain.PaymentRequest
	}{
		{
			name: "Token with targeted request",
			mockSetup: func() {
				amount := int64(250)
				rows := pgxmock.NewRows(columns).
					AddRow("opaque-1", domain.TokenPayment, map[string]any(nil), strPtr("pr-1"), expiresAt,
						strPtr("pr-1"), strPtr("PERSONA"), strPtr("p-1"), nil,
						strPtr("HOST"), nil, strPtr("h-1"),
						&amount, strPtr("entry fee"), strPtr("PENDING"), nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("opaque-1", now).
					WillReturnRows(rows)
			},
			tokenFound: true,
			request: &domain.PaymentRequest{
				ID:      "pr-1",
				Creator: domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"},
				Target:  &domain.OwnerRef{Type: domain.OwnerHost, ID: "h-1"},
				Amount:  250,
				Purpose: "entry fee",
				Status:  domain.RequestPending,
			},
		},
		{
			name: "Token without request",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow("opaque-1", domain.TokenSIN, map[string]any{"sin": "451023"}, nil, expiresAt,
						nil, nil, nil, nil,
						nil, nil, nil,
						nil, nil, nil, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("opaque-1", now).
					WillReturnRows(rows)
			},
			tokenFound: true,
			request:    nil,
		},
		{
			name: "Expired or unknown token returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("opaque-1", now).
					WillReturnError(pgx.ErrNoRows)
			},
			tokenFound: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("opaque-1", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			qt, pr, err := repo.GetToken(context.Background(), "opaque-1", now)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if !tt.tokenFound {
				assert.Nil(t, qt)
				assert.Nil(t, pr)
				return
			}
			assert.NotNil(t, qt)
			assert.Equal(t, tt.request, pr)
		})
	}
}

func TestRepository_ClaimPending(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        UPDATE payment_requests
        SET status = 'COMPLETED', completed_at = $2
        WHERE id = $1 AND status = 'PENDING'
    `
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("pr-1", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	claimed, err := repo.ClaimPending(context.Background(), "pr-1", now)
	assert.NoError(t, err)
	assert.True(t, claimed)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("pr-1", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	claimed, err = repo.ClaimPending(context.Background(), "pr-1", now)
	assert.NoError(t, err)
	assert.False(t, claimed)
}
