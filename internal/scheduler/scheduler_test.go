package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridcore/internal/config"
	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/service/bankservice"
)

// inlinePool runs each task on the calling goroutine, which keeps the
// billing sweep deterministic under test.
type inlinePool struct{}

func (inlinePool) AddTask(_ context.Context, task Task) error { return task() }
func (inlinePool) Close()                                     {}

func NewMock(t *testing.T) (*Service, *MockSubscriptionRepo, *MockLedger, *MockSessionRepo, *MockDeviceRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	subs := NewMockSubscriptionRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	sessions := NewMockSessionRepo(ctrl)
	devices := NewMockDeviceRepo(ctrl)
	notifier := NewMockNotifier(ctrl)

	cfg := &config.Config{BillingInterval: time.Minute, SweepInterval: time.Minute}
	service := New(cfg, subs, ledger, sessions, devices, notifier)
	service.workerPool = inlinePool{}

	defer ctrl.Finish()
	return service, subs, ledger, sessions, devices, notifier
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func subscription(id, payerID, payeeID string, lastChargedAt *time.Time) domain.Subscription {
	return domain.Subscription{
		ID:            id,
		Payer:         domain.OwnerRef{Type: domain.OwnerPersona, ID: payerID},
		Payee:         domain.OwnerRef{Type: domain.OwnerPersona, ID: payeeID},
		AmountPerTick: 50,
		PeriodSeconds: 3600,
		Type:          domain.SubSubscription,
		LastChargedAt: lastChargedAt,
	}
}

func TestProcessSubscriptions(t *testing.T) {
	t.Run("Charges due subscriptions and pushes balances", func(t *testing.T) {
		service, subs, ledger, _, _, notifier := NewMock(t)

		due := subscription("sub-due-1", "p-payer", "p-payee", nil)
		notDue := subscription("sub-fresh-1", "p-payer", "p-payee", timePtr(time.Now().Add(-time.Minute)))

		subs.EXPECT().ListAll(gomock.Any()).Return([]domain.Subscription{due, notDue}, nil)
		ledger.EXPECT().ChargeSubscription(gomock.Any(), due, gomock.Any()).Return(&bankservice.ChargeResult{
			Charged:      true,
			PayerWallet:  &domain.Wallet{ID: "w-payer", PersonaID: strPtr("p-payer")},
			PayeeWallet:  &domain.Wallet{ID: "w-payee", PersonaID: strPtr("p-payee")},
			PayerBalance: 450,
			PayeeBalance: 550,
		}, nil)
		notifier.EXPECT().Notify(gomock.Any(), "p-payer", "balance_update", map[string]any{"balance": int64(450)})
		notifier.EXPECT().Notify(gomock.Any(), "p-payee", "balance_update", map[string]any{"balance": int64(550)})

		service.ProcessSubscriptions(context.Background())
	})

	t.Run("Overdrawn payer triggers the negative balance alerts", func(t *testing.T) {
		service, subs, ledger, _, _, notifier := NewMock(t)

		due := subscription("sub-due-2", "p-payer", "p-payee", nil)

		subs.EXPECT().ListAll(gomock.Any()).Return([]domain.Subscription{due}, nil)
		ledger.EXPECT().ChargeSubscription(gomock.Any(), due, gomock.Any()).Return(&bankservice.ChargeResult{
			Charged:      true,
			PayerWallet:  &domain.Wallet{ID: "w-payer", PersonaID: strPtr("p-payer")},
			PayeeWallet:  &domain.Wallet{ID: "w-payee", PersonaID: strPtr("p-payee")},
			PayerBalance: -30,
			PayeeBalance: 550,
		}, nil)
		notifier.EXPECT().Notify(gomock.Any(), "p-payer", "subscription_negative_balance", map[string]any{
			"subscription_id": "sub-due-2",
			"balance":         int64(-30),
		})
		notifier.EXPECT().Notify(gomock.Any(), "p-payee", "subscription_payer_negative", map[string]any{
			"subscription_id": "sub-due-2",
			"payer_id":        "p-payer",
		})
		notifier.EXPECT().Notify(gomock.Any(), "p-payer", "balance_update", map[string]any{"balance": int64(-30)})
		notifier.EXPECT().Notify(gomock.Any(), "p-payee", "balance_update", map[string]any{"balance": int64(550)})

		service.ProcessSubscriptions(context.Background())
	})

	t.Run("Host payee gets no persona notification", func(t *testing.T) {
		service, subs, ledger, _, _, notifier := NewMock(t)

		due := subscription("sub-due-3", "p-payer", "h-1", nil)
		due.Payee = domain.OwnerRef{Type: domain.OwnerHost, ID: "h-1"}

		subs.EXPECT().ListAll(gomock.Any()).Return([]domain.Subscription{due}, nil)
		ledger.EXPECT().ChargeSubscription(gomock.Any(), due, gomock.Any()).Return(&bankservice.ChargeResult{
			Charged:      true,
			PayerWallet:  &domain.Wallet{ID: "w-payer", PersonaID: strPtr("p-payer")},
			PayeeWallet:  &domain.Wallet{ID: "w-host", HostID: strPtr("h-1")},
			PayerBalance: 450,
			PayeeBalance: 550,
		}, nil)
		notifier.EXPECT().Notify(gomock.Any(), "p-payer", "balance_update", map[string]any{"balance": int64(450)})

		service.ProcessSubscriptions(context.Background())
	})

	t.Run("A failing subscription does not halt the sweep", func(t *testing.T) {
		service, subs, ledger, _, _, notifier := NewMock(t)

		broken := subscription("sub-broken-1", "p-gone", "p-payee", nil)
		healthy := subscription("sub-healthy-1", "p-payer", "p-payee", nil)

		subs.EXPECT().ListAll(gomock.Any()).Return([]domain.Subscription{broken, healthy}, nil)
		ledger.EXPECT().ChargeSubscription(gomock.Any(), broken, gomock.Any()).Return(nil, errors.New("wallet not found"))
		ledger.EXPECT().ChargeSubscription(gomock.Any(), healthy, gomock.Any()).Return(&bankservice.ChargeResult{
			Charged:      true,
			PayerWallet:  &domain.Wallet{ID: "w-payer", PersonaID: strPtr("p-payer")},
			PayeeWallet:  &domain.Wallet{ID: "w-payee", PersonaID: strPtr("p-payee")},
			PayerBalance: 450,
			PayeeBalance: 550,
		}, nil)
		notifier.EXPECT().Notify(gomock.Any(), "p-payer", "balance_update", map[string]any{"balance": int64(450)})
		notifier.EXPECT().Notify(gomock.Any(), "p-payee", "balance_update", map[string]any{"balance": int64(550)})

		service.ProcessSubscriptions(context.Background())
	})

	t.Run("Lost due claim sends nothing", func(t *testing.T) {
		service, subs, ledger, _, _, _ := NewMock(t)

		due := subscription("sub-due-4", "p-payer", "p-payee", nil)

		subs.EXPECT().ListAll(gomock.Any()).Return([]domain.Subscription{due}, nil)
		ledger.EXPECT().ChargeSubscription(gomock.Any(), due, gomock.Any()).Return(&bankservice.ChargeResult{
			Charged:     false,
			PayerWallet: &domain.Wallet{ID: "w-payer", PersonaID: strPtr("p-payer")},
			PayeeWallet: &domain.Wallet{ID: "w-payee", PersonaID: strPtr("p-payee")},
		}, nil)

		service.ProcessSubscriptions(context.Background())
	})

	t.Run("Listing failure skips the tick", func(t *testing.T) {
		service, subs, _, _, _, _ := NewMock(t)

		subs.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db error"))

		service.ProcessSubscriptions(context.Background())
	})
}

func TestExpireHackSessions(t *testing.T) {
	t.Run("Expires stale sessions", func(t *testing.T) {
		service, _, _, sessions, _, _ := NewMock(t)
		sessions.EXPECT().ExpireStale(gomock.Any(), gomock.Any()).Return(int64(3), nil)

		service.ExpireHackSessions(context.Background())
	})

	t.Run("Logs and continues on error", func(t *testing.T) {
		service, _, _, sessions, _, _ := NewMock(t)
		sessions.EXPECT().ExpireStale(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))

		service.ExpireHackSessions(context.Background())
	})
}

func TestUnbrickDevices(t *testing.T) {
	t.Run("Unbricks expired devices", func(t *testing.T) {
		service, _, _, _, devices, _ := NewMock(t)
		devices.EXPECT().UnbrickExpired(gomock.Any(), gomock.Any()).Return(int64(2), nil)

		service.UnbrickDevices(context.Background())
	})

	t.Run("Logs and continues on error", func(t *testing.T) {
		service, _, _, _, devices, _ := NewMock(t)
		devices.EXPECT().UnbrickExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))

		service.UnbrickDevices(context.Background())
	})
}
