package bankservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/pg"
	walletrepo "github.com/GlebRadaev/gridcore/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockSubscriptionRepo, *MockPaymentRepo, *MockAuditRepo, *MockNotifier, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	wallets := NewMockWalletRepo(ctrl)
	subs := NewMockSubscriptionRepo(ctrl)
	payments := NewMockPaymentRepo(ctrl)
	audit := NewMockAuditRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(wallets, subs, payments, audit, notifier, txManager)
	defer ctrl.Finish()
	return service, wallets, subs, payments, audit, notifier, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func strPtr(s string) *string { return &s }

func personaWallet(walletID, personaID string, balance int64) *domain.Wallet {
	return &domain.Wallet{ID: walletID, PersonaID: strPtr(personaID), Balance: balance}
}

func TestGetBalance(t *testing.T) {
	service, wallets, _, _, _, _, _ := NewMock(t)
	owner := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedValue int64
		expectedError error
	}{
		{
			name: "Retrieve balance successfully",
			prepareMock: func() {
				wallets.EXPECT().GetByOwner(gomock.Any(), owner).Return(personaWallet("w-1", "p-1", 500), nil)
			},
			expectedValue: 500,
		},
		{
			name: "Wallet not found",
			prepareMock: func() {
				wallets.EXPECT().GetByOwner(gomock.Any(), owner).Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				wallets.EXPECT().GetByOwner(gomock.Any(), owner).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), owner)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, balance)
			}
		})
	}
}

func TestListTransactions(t *testing.T) {
	service, wallets, _, _, _, _, _ := NewMock(t)
	owner := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"}

	tests := []struct {
		name         string
		role         domain.Role
		includeTheft bool
	}{
		{name: "Player never sees theft rows", role: domain.RolePlayer, includeTheft: false},
		{name: "Spider never sees theft rows", role: domain.RoleSpider, includeTheft: false},
		{name: "Gridgod sees theft rows", role: domain.RoleGridgod, includeTheft: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallets.EXPECT().GetByOwner(gomock.Any(), owner).Return(personaWallet("w-1", "p-1", 500), nil)
			wallets.EXPECT().ListTransactions(gomock.Any(), "w-1", tt.includeTheft, 100).Return([]domain.Transaction{}, nil)

			_, err := service.ListTransactions(context.Background(), "p-1", tt.role)
			assert.NoError(t, err)
		})
	}
}

func TestTransfer(t *testing.T) {
	from := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"}
	to := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-2"}

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func(wallets *MockWalletRepo, audit *MockAuditRepo, notifier *MockNotifier, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name:   "Successful transfer",
			amount: 100,
			prepareMock: func(wallets *MockWalletRepo, audit *MockAuditRepo, notifier *MockNotifier, txManager *pg.MockTXManager) {
				wallets.EXPECT().GetByOwner(gomock.Any(), from).Return(personaWallet("w-1", "p-1", 500), nil)
				wallets.EXPECT().GetByOwner(gomock.Any(), to).Return(personaWallet("w-2", "p-2", 0), nil)
				passThroughTx(txManager)
				wallets.EXPECT().Debit(gomock.Any(), "w-1", int64(100), true).Return(int64(400), nil)
				wallets.EXPECT().Credit(gomock.Any(), "w-2", int64(100)).Return(int64(100), nil)
				wallets.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil).Times(2)
				audit.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)
				notifier.EXPECT().Notify(gomock.Any(), "p-1", "balance_update", gomock.Any())
				notifier.EXPECT().Notify(gomock.Any(), "p-2", "balance_update", gomock.Any())
			},
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			prepareMock:   func(*MockWalletRepo, *MockAuditRepo, *MockNotifier, *pg.MockTXManager) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Negative balance blocks any transfer",
			amount: 1,
			prepareMock: func(wallets *MockWalletRepo, _ *MockAuditRepo, _ *MockNotifier, _ *pg.MockTXManager) {
				wallets.EXPECT().GetByOwner(gomock.Any(), from).Return(personaWallet("w-1", "p-1", -5), nil)
			},
			expectedError: ErrNegativeBalance,
		},
		{
			name:   "Insufficient funds",
			amount: 600,
			prepareMock: func(wallets *MockWalletRepo, _ *MockAuditRepo, _ *MockNotifier, _ *pg.MockTXManager) {
				wallets.EXPECT().GetByOwner(gomock.Any(), from).Return(personaWallet("w-1", "p-1", 500), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:   "Destination wallet not found",
			amount: 100,
			prepareMock: func(wallets *MockWalletRepo, _ *MockAuditRepo, _ *MockNotifier, _ *pg.MockTXManager) {
				wallets.EXPECT().GetByOwner(gomock.Any(), from).Return(personaWallet("w-1", "p-1", 500), nil)
				wallets.EXPECT().GetByOwner(gomock.Any(), to).Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name:   "Guard lost the race",
			amount: 100,
			prepareMock: func(wallets *MockWalletRepo, _ *MockAuditRepo, _ *MockNotifier, txManager *pg.MockTXManager) {
				wallets.EXPECT().GetByOwner(gomock.Any(), from).Return(personaWallet("w-1", "p-1", 500), nil)
				wallets.EXPECT().GetByOwner(gomock.Any(), to).Return(personaWallet("w-2", "p-2", 0), nil)
				passThroughTx(txManager)
				wallets.EXPECT().Debit(gomock.Any(), "w-1", int64(100), true).Return(int64(0), walletrepo.ErrBalanceGuard)
			},
			expectedError: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, wallets, _, _, audit, notifier, txManager := NewMock(t)
			tt.prepareMock(wallets, audit, notifier, txManager)

			_, err := service.Transfer(context.Background(), "p-1", to, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChargeSubscription(t *testing.T) {
	sub := domain.Subscription{
		ID:            "sub-1",
		Payer:         domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"},
		Payee:         domain.OwnerRef{Type: domain.OwnerHost, ID: "h-1"},
		AmountPerTick: 50,
		PeriodSeconds: 3600,
		Type:          domain.SubSubscription,
	}
	now := time.Now()

	t.Run("Claimed subscription charges and may overdraw", func(t *testing.T) {
		service, wallets, subs, _, _, _, txManager := NewMock(t)

		wallets.EXPECT().GetByOwner(gomock.Any(), sub.Payer).Return(personaWallet("w-1", "p-1", 10), nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), sub.Payee).Return(&domain.Wallet{ID: "w-2", HostID: strPtr("h-1")}, nil)
		passThroughTx(txManager)
		subs.EXPECT().ClaimDue(gomock.Any(), "sub-1", now).Return(true, nil)
		wallets.EXPECT().Debit(gomock.Any(), "w-1", int64(50), false).Return(int64(-40), nil)
		wallets.EXPECT().Credit(gomock.Any(), "w-2", int64(50)).Return(int64(50), nil)
		wallets.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil).Times(2)

		result, err := service.ChargeSubscription(context.Background(), sub, now)
		assert.NoError(t, err)
		assert.True(t, result.Charged)
		assert.Equal(t, int64(-40), result.PayerBalance)
	})

	t.Run("Unclaimed subscription does nothing", func(t *testing.T) {
		service, wallets, subs, _, _, _, txManager := NewMock(t)

		wallets.EXPECT().GetByOwner(gomock.Any(), sub.Payer).Return(personaWallet("w-1", "p-1", 10), nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), sub.Payee).Return(&domain.Wallet{ID: "w-2", HostID: strPtr("h-1")}, nil)
		passThroughTx(txManager)
		subs.EXPECT().ClaimDue(gomock.Any(), "sub-1", now).Return(false, nil)

		result, err := service.ChargeSubscription(context.Background(), sub, now)
		assert.NoError(t, err)
		assert.False(t, result.Charged)
	})

	t.Run("Missing payer wallet", func(t *testing.T) {
		service, wallets, _, _, _, _, _ := NewMock(t)

		wallets.EXPECT().GetByOwner(gomock.Any(), sub.Payer).Return(nil, nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), sub.Payee).Return(&domain.Wallet{ID: "w-2", HostID: strPtr("h-1")}, nil)

		_, err := service.ChargeSubscription(context.Background(), sub, now)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestCreateSubscription(t *testing.T) {
	payer := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"}
	payee := domain.OwnerRef{Type: domain.OwnerHost, ID: "h-1"}

	t.Run("Amortizes the item price into the hourly tick", func(t *testing.T) {
		service, wallets, subs, _, audit, _, txManager := NewMock(t)

		wallets.EXPECT().GetByOwner(gomock.Any(), payer).Return(personaWallet("w-1", "p-1", 500), nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), payee).Return(&domain.Wallet{ID: "w-2", HostID: strPtr("h-1")}, nil)
		passThroughTx(txManager)
		subs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
				sub.ID = "sub-1"
				return sub, nil
			})
		audit.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)

		sub, err := service.CreateSubscription(context.Background(), "p-1", payer, payee, 480, domain.SubSubscription)
		assert.NoError(t, err)
		assert.Equal(t, int64(50), sub.AmountPerTick)
		assert.Equal(t, int64(3600), sub.PeriodSeconds)
	})

	t.Run("Fractions are floored", func(t *testing.T) {
		service, wallets, subs, _, audit, _, txManager := NewMock(t)

		wallets.EXPECT().GetByOwner(gomock.Any(), payer).Return(personaWallet("w-1", "p-1", 500), nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), payee).Return(&domain.Wallet{ID: "w-2", HostID: strPtr("h-1")}, nil)
		passThroughTx(txManager)
		subs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
				return sub, nil
			})
		audit.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)

		sub, err := service.CreateSubscription(context.Background(), "p-1", payer, payee, 100, domain.SubSalary)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), sub.AmountPerTick)
	})

	t.Run("Zero item price rejected", func(t *testing.T) {
		service, _, _, _, _, _, _ := NewMock(t)

		_, err := service.CreateSubscription(context.Background(), "p-1", payer, payee, 0, domain.SubSubscription)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestCancelSubscription(t *testing.T) {
	tests := []struct {
		name          string
		role          domain.Role
		prepareMock   func(subs *MockSubscriptionRepo, audit *MockAuditRepo)
		expectedError error
	}{
		{
			name: "Gridgod cancels",
			role: domain.RoleGridgod,
			prepareMock: func(subs *MockSubscriptionRepo, audit *MockAuditRepo) {
				subs.EXPECT().Delete(gomock.Any(), "sub-1").Return(true, nil)
				audit.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Player is forbidden",
			role:          domain.RolePlayer,
			prepareMock:   func(*MockSubscriptionRepo, *MockAuditRepo) {},
			expectedError: ErrForbidden,
		},
		{
			name: "Unknown subscription",
			role: domain.RoleGridgod,
			prepareMock: func(subs *MockSubscriptionRepo, _ *MockAuditRepo) {
				subs.EXPECT().Delete(gomock.Any(), "sub-1").Return(false, nil)
			},
			expectedError: ErrSubscriptionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, subs, _, audit, _, _ := NewMock(t)
			tt.prepareMock(subs, audit)

			err := service.CancelSubscription(context.Background(), "p-god", tt.role, "sub-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePaymentRequest(t *testing.T) {
	creator := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-1"}

	t.Run("Creates request and token", func(t *testing.T) {
		service, wallets, _, payments, audit, _, txManager := NewMock(t)

		wallets.EXPECT().GetByOwner(gomock.Any(), creator).Return(personaWallet("w-1", "p-1", 0), nil)
		passThroughTx(txManager)
		payments.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pr *domain.PaymentRequest) (*domain.PaymentRequest, error) {
				pr.ID = "pr-1"
				pr.Status = domain.RequestPending
				return pr, nil
			})
		payments.EXPECT().CreateToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qt *domain.QrToken) (*domain.QrToken, error) {
				return qt, nil
			})
		audit.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)

		pr, qt, err := service.CreatePaymentRequest(context.Background(), "p-1", nil, 250, "drinks")
		assert.NoError(t, err)
		assert.Equal(t, "pr-1", pr.ID)
		assert.NotEmpty(t, qt.Token)
		assert.Equal(t, domain.TokenPayment, qt.Type)
		assert.Equal(t, strPtr("pr-1"), qt.PaymentRequestID)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		service, _, _, _, _, _, _ := NewMock(t)

		_, _, err := service.CreatePaymentRequest(context.Background(), "p-1", nil, 0, "drinks")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestConfirmPayment(t *testing.T) {
	payerOwner := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-payer"}
	creatorOwner := domain.OwnerRef{Type: domain.OwnerPersona, ID: "p-creator"}

	pendingToken := func() (*domain.QrToken, *domain.PaymentRequest) {
		return &domain.QrToken{Token: "opaque-1", Type: domain.TokenPayment, PaymentRequestID: strPtr("pr-1")},
			&domain.PaymentRequest{ID: "pr-1", Creator: creatorOwner, Amount: 250, Purpose: "drinks", Status: domain.RequestPending}
	}

	t.Run("Open request pays the creator", func(t *testing.T) {
		service, wallets, _, payments, audit, notifier, txManager := NewMock(t)
		qt, pr := pendingToken()

		payments.EXPECT().GetToken(gomock.Any(), "opaque-1", gomock.Any()).Return(qt, pr, nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), payerOwner).Return(personaWallet("w-1", "p-payer", 500), nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), creatorOwner).Return(personaWallet("w-2", "p-creator", 0), nil)
		passThroughTx(txManager)
		payments.EXPECT().ClaimPending(gomock.Any(), "pr-1", gomock.Any()).Return(true, nil)
		wallets.EXPECT().Debit(gomock.Any(), "w-1", int64(250), true).Return(int64(250), nil)
		wallets.EXPECT().Credit(gomock.Any(), "w-2", int64(250)).Return(int64(250), nil)
		wallets.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil).Times(2)
		audit.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().Notify(gomock.Any(), "p-payer", "balance_update", gomock.Any())
		notifier.EXPECT().Notify(gomock.Any(), "p-creator", "balance_update", gomock.Any())

		_, err := service.ConfirmPayment(context.Background(), "p-payer", "opaque-1")
		assert.NoError(t, err)
	})

	t.Run("Unknown token", func(t *testing.T) {
		service, _, _, payments, _, _, _ := NewMock(t)

		payments.EXPECT().GetToken(gomock.Any(), "opaque-1", gomock.Any()).Return(nil, nil, nil)

		_, err := service.ConfirmPayment(context.Background(), "p-payer", "opaque-1")
		assert.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("Non-payment token rejected", func(t *testing.T) {
		service, _, _, payments, _, _, _ := NewMock(t)

		payments.EXPECT().GetToken(gomock.Any(), "opaque-1", gomock.Any()).
			Return(&domain.QrToken{Token: "opaque-1", Type: domain.TokenSIN}, nil, nil)

		_, err := service.ConfirmPayment(context.Background(), "p-payer", "opaque-1")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Completed request rejected before the claim", func(t *testing.T) {
		service, _, _, payments, _, _, _ := NewMock(t)
		qt, pr := pendingToken()
		pr.Status = domain.RequestCompleted

		payments.EXPECT().GetToken(gomock.Any(), "opaque-1", gomock.Any()).Return(qt, pr, nil)

		_, err := service.ConfirmPayment(context.Background(), "p-payer", "opaque-1")
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Concurrent confirmation loses the claim", func(t *testing.T) {
		service, wallets, _, payments, _, _, txManager := NewMock(t)
		qt, pr := pendingToken()

		payments.EXPECT().GetToken(gomock.Any(), "opaque-1", gomock.Any()).Return(qt, pr, nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), payerOwner).Return(personaWallet("w-1", "p-payer", 500), nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), creatorOwner).Return(personaWallet("w-2", "p-creator", 0), nil)
		passThroughTx(txManager)
		payments.EXPECT().ClaimPending(gomock.Any(), "pr-1", gomock.Any()).Return(false, nil)

		_, err := service.ConfirmPayment(context.Background(), "p-payer", "opaque-1")
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Negative payer balance rejected", func(t *testing.T) {
		service, wallets, _, payments, _, _, _ := NewMock(t)
		qt, pr := pendingToken()

		payments.EXPECT().GetToken(gomock.Any(), "opaque-1", gomock.Any()).Return(qt, pr, nil)
		wallets.EXPECT().GetByOwner(gomock.Any(), payerOwner).Return(personaWallet("w-1", "p-payer", -10), nil)

		_, err := service.ConfirmPayment(context.Background(), "p-payer", "opaque-1")
		assert.ErrorIs(t, err, ErrNegativeBalance)
	})
}
