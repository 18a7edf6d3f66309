package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gridcore/internal/config"
	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/service/bankservice"
)

// processingSubs guards against the same subscription being submitted twice
// when a slow sweep overlaps the next tick.
var processingSubs sync.Map

type SubscriptionRepo interface {
	ListAll(ctx context.Context) ([]domain.Subscription, error)
}

type Ledger interface {
	ChargeSubscription(ctx context.Context, sub domain.Subscription, now time.Time) (*bankservice.ChargeResult, error)
}

type SessionRepo interface {
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type DeviceRepo interface {
	UnbrickExpired(ctx context.Context, now time.Time) (int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, personaID, notifType string, payload map[string]any)
}

// Service runs the unattended sweeps: subscription billing, hack session
// expiry and device unbricking. Each sweep logs and continues past any single
// entity's failure.
type Service struct {
	subs     SubscriptionRepo
	ledger   Ledger
	sessions SessionRepo
	devices  DeviceRepo
	notifier Notifier

	billingInterval time.Duration
	sweepInterval   time.Duration
	workerPool      WorkerPoolI
}

func New(cfg *config.Config, subs SubscriptionRepo, ledger Ledger, sessions SessionRepo, devices DeviceRepo, notifier Notifier) *Service {
	return &Service{
		subs:            subs,
		ledger:          ledger,
		sessions:        sessions,
		devices:         devices,
		notifier:        notifier,
		billingInterval: cfg.BillingInterval,
		sweepInterval:   cfg.SweepInterval,
		workerPool:      NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Scheduler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	billing := time.NewTicker(s.billingInterval)
	defer billing.Stop()
	sweep := time.NewTicker(s.sweepInterval)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scheduler")
			return
		case <-billing.C:
			s.ProcessSubscriptions(ctx)
		case <-sweep.C:
			s.ExpireHackSessions(ctx)
			s.UnbrickDevices(ctx)
		}
	}
}

func (s *Service) ProcessSubscriptions(ctx context.Context) {
	now := time.Now()
	subs, err := s.subs.ListAll(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch subscriptions for billing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, sub := range subs {
		sub := sub

		if !sub.Due(now) {
			continue
		}
		if _, loaded := processingSubs.LoadOrStore(sub.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingSubs.Delete(sub.ID)
				return s.handleSubscription(ctx, sub, now)
			})
			if err != nil {
				processingSubs.Delete(sub.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing subscriptions", zap.Error(err))
	}
}

func (s *Service) handleSubscription(ctx context.Context, sub domain.Subscription, now time.Time) error {
	result, err := s.ledger.ChargeSubscription(ctx, sub, now)
	if err != nil {
		// A bad subscription must not halt the sweep; unresolvable wallets in
		// particular are expected while personas and hosts come and go.
		zap.L().Warn("Skipping subscription",
			zap.String("subscriptionId", sub.ID),
			zap.Error(err))
		return nil
	}
	if !result.Charged {
		return nil
	}

	if result.PayerBalance < 0 {
		if payerID := result.PayerWallet.PersonaID; payerID != nil {
			s.notifier.Notify(ctx, *payerID, "subscription_negative_balance", map[string]any{
				"subscription_id": sub.ID,
				"balance":         result.PayerBalance,
			})
		}
		if payeeID := result.PayeeWallet.PersonaID; payeeID != nil {
			s.notifier.Notify(ctx, *payeeID, "subscription_payer_negative", map[string]any{
				"subscription_id": sub.ID,
				"payer_id":        sub.Payer.ID,
			})
		}
	}

	if payerID := result.PayerWallet.PersonaID; payerID != nil {
		s.notifier.Notify(ctx, *payerID, "balance_update", map[string]any{"balance": result.PayerBalance})
	}
	if payeeID := result.PayeeWallet.PersonaID; payeeID != nil {
		s.notifier.Notify(ctx, *payeeID, "balance_update", map[string]any{"balance": result.PayeeBalance})
	}

	return nil
}

func (s *Service) ExpireHackSessions(ctx context.Context) {
	count, err := s.sessions.ExpireStale(ctx, time.Now())
	if err != nil {
		zap.L().Error("Failed to expire hack sessions", zap.Error(err))
		return
	}
	if count > 0 {
		zap.L().Info(fmt.Sprintf("Expired %d hack sessions", count))
	}
}

func (s *Service) UnbrickDevices(ctx context.Context) {
	count, err := s.devices.UnbrickExpired(ctx, time.Now())
	if err != nil {
		zap.L().Error("Failed to unbrick devices", zap.Error(err))
		return
	}
	if count > 0 {
		zap.L().Info(fmt.Sprintf("Unbricked %d devices", count))
	}
}
