package bankservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/pg"
	walletrepo "github.com/GlebRadaev/gridcore/internal/repo/wallet-repo"
	"github.com/GlebRadaev/gridcore/pkg/token"
)

const (
	// amountPerTick = floor(itemAmount * 5 / 48): a one-time item price
	// amortized into an hourly charge.
	amortizeNum   = 5
	amortizeDen   = 48
	periodSeconds = 3600

	tokenTTL         = 24 * time.Hour
	transactionLimit = 100
)

var (
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrTokenNotFound        = errors.New("token not found")
	ErrInvalidToken         = errors.New("invalid payment token")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrNegativeBalance      = errors.New("balance is negative")
	ErrInsufficientFunds    = errors.New("insufficient balance")
	ErrAlreadyProcessed     = errors.New("payment request already processed")
	ErrForbidden            = errors.New("forbidden")
)

type WalletRepo interface {
	GetByOwner(ctx context.Context, owner domain.OwnerRef) (*domain.Wallet, error)
	GetByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID string, amount int64, guarded bool) (int64, error)
	Credit(ctx context.Context, walletID string, amount int64) (int64, error)
	InsertTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, walletID string, includeTheft bool, limit int) ([]domain.Transaction, error)
}

type SubscriptionRepo interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	ListByPersona(ctx context.Context, personaID string) (asPayer, asPayee []domain.Subscription, err error)
	ClaimDue(ctx context.Context, subscriptionID string, now time.Time) (bool, error)
	Delete(ctx context.Context, subscriptionID string) (bool, error)
}

type PaymentRepo interface {
	CreateRequest(ctx context.Context, pr *domain.PaymentRequest) (*domain.PaymentRequest, error)
	CreateToken(ctx context.Context, t *domain.QrToken) (*domain.QrToken, error)
	GetToken(ctx context.Context, token string, now time.Time) (*domain.QrToken, *domain.PaymentRequest, error)
	ClaimPending(ctx context.Context, requestID string, now time.Time) (bool, error)
}

type AuditRepo interface {
	AppendLog(ctx context.Context, e *domain.LogEntry) error
}

type Notifier interface {
	Notify(ctx context.Context, personaID, notifType string, payload map[string]any)
}

type Service struct {
	wallets   WalletRepo
	subs      SubscriptionRepo
	payments  PaymentRepo
	audit     AuditRepo
	notifier  Notifier
	txManager pg.TXManager
}

func New(wallets WalletRepo, subs SubscriptionRepo, payments PaymentRepo, audit AuditRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		wallets:   wallets,
		subs:      subs,
		payments:  payments,
		audit:     audit,
		notifier:  notifier,
		txManager: txManager,
	}
}

func (s *Service) GetBalance(ctx context.Context, owner domain.OwnerRef) (int64, error) {
	wallet, err := s.wallets.GetByOwner(ctx, owner)
	if err != nil {
		return 0, err
	}
	if wallet == nil {
		return 0, ErrWalletNotFound
	}
	return wallet.Balance, nil
}

// ListTransactions hides theft-flagged rows from everyone but the gridgod.
func (s *Service) ListTransactions(ctx context.Context, personaID string, role domain.Role) ([]domain.Transaction, error) {
	wallet, err := s.wallets.GetByOwner(ctx, domain.OwnerRef{Type: domain.OwnerPersona, ID: personaID})
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return s.wallets.ListTransactions(ctx, wallet.ID, role == domain.RoleGridgod, transactionLimit)
}

// Transfer moves funds between wallets with the user-path preconditions: the
// source must be non-negative and cover the amount. Returns the credit-side
// transaction.
func (s *Service) Transfer(ctx context.Context, fromPersonaID string, to domain.OwnerRef, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	fromWallet, err := s.wallets.GetByOwner(ctx, domain.OwnerRef{Type: domain.OwnerPersona, ID: fromPersonaID})
	if err != nil {
		return nil, err
	}
	if fromWallet == nil {
		return nil, ErrWalletNotFound
	}
	if fromWallet.Balance < 0 {
		return nil, ErrNegativeBalance
	}
	if fromWallet.Balance < amount {
		return nil, ErrInsufficientFunds
	}

	toWallet, err := s.wallets.GetByOwner(ctx, to)
	if err != nil {
		return nil, err
	}
	if toWallet == nil {
		return nil, ErrWalletNotFound
	}

	meta := map[string]any{
		"from_persona_id": fromPersonaID,
		"to_type":         to.Type,
		"to_id":           to.ID,
	}

	var credit *domain.Transaction
	var fromBalance, toBalance int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		fromBalance, err = s.wallets.Debit(ctx, fromWallet.ID, amount, true)
		if errors.Is(err, walletrepo.ErrBalanceGuard) {
			// Lost a race: the balance changed between the read and the write.
			return ErrInsufficientFunds
		}
		if err != nil {
			return err
		}
		if toBalance, err = s.wallets.Credit(ctx, toWallet.ID, amount); err != nil {
			return err
		}
		if _, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: fromWallet.ID, Type: domain.TxTransfer, Amount: -amount, Meta: meta,
		}); err != nil {
			return err
		}
		if credit, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: toWallet.ID, Type: domain.TxTransfer, Amount: amount, Meta: meta,
		}); err != nil {
			return err
		}
		return s.audit.AppendLog(ctx, &domain.LogEntry{
			Type:            "transfer",
			ActorPersonaID:  &fromPersonaID,
			TargetPersonaID: toWallet.PersonaID,
			TargetHostID:    toWallet.HostID,
			Meta:            map[string]any{"amount": amount, "to_type": to.Type},
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifyBalance(ctx, fromWallet, fromBalance)
	s.notifyBalance(ctx, toWallet, toBalance)

	return credit, nil
}

// ChargeResult reports the outcome of a single billing attempt.
type ChargeResult struct {
	Charged      bool
	PayerWallet  *domain.Wallet
	PayeeWallet  *domain.Wallet
	PayerBalance int64
	PayeeBalance int64
}

// ChargeSubscription is the scheduler-only entry point. It deliberately skips
// the negative-balance and sufficiency checks: subscriptions may overdraw the
// payer. The due-claim and the transfer commit in one transaction, so
// overlapping sweeps cannot double-charge a period.
func (s *Service) ChargeSubscription(ctx context.Context, sub domain.Subscription, now time.Time) (*ChargeResult, error) {
	payerWallet, err := s.wallets.GetByOwner(ctx, sub.Payer)
	if err != nil {
		return nil, err
	}
	payeeWallet, err := s.wallets.GetByOwner(ctx, sub.Payee)
	if err != nil {
		return nil, err
	}
	if payerWallet == nil || payeeWallet == nil {
		return nil, ErrWalletNotFound
	}

	txType := domain.TxSubscription
	if sub.Type == domain.SubSalary {
		txType = domain.TxSalary
	}

	result := &ChargeResult{PayerWallet: payerWallet, PayeeWallet: payeeWallet}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		claimed, err := s.subs.ClaimDue(ctx, sub.ID, now)
		if err != nil {
			return err
		}
		if !claimed {
			return nil
		}
		result.Charged = true

		if result.PayerBalance, err = s.wallets.Debit(ctx, payerWallet.ID, sub.AmountPerTick, false); err != nil {
			return err
		}
		if result.PayeeBalance, err = s.wallets.Credit(ctx, payeeWallet.ID, sub.AmountPerTick); err != nil {
			return err
		}
		if _, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: payerWallet.ID, Type: txType, Amount: -sub.AmountPerTick, SubscriptionID: &sub.ID,
		}); err != nil {
			return err
		}
		_, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: payeeWallet.ID, Type: txType, Amount: sub.AmountPerTick, SubscriptionID: &sub.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreatePaymentRequest opens a PENDING request and issues an opaque payment
// token for it. A nil target makes an open (donation style) request that pays
// the creator on confirmation.
func (s *Service) CreatePaymentRequest(ctx context.Context, creatorPersonaID string, target *domain.OwnerRef, amount int64, purpose string) (*domain.PaymentRequest, *domain.QrToken, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	creatorWallet, err := s.wallets.GetByOwner(ctx, domain.OwnerRef{Type: domain.OwnerPersona, ID: creatorPersonaID})
	if err != nil {
		return nil, nil, err
	}
	if creatorWallet == nil {
		return nil, nil, ErrWalletNotFound
	}

	opaque, err := token.New()
	if err != nil {
		return nil, nil, err
	}

	pr := &domain.PaymentRequest{
		Creator: domain.OwnerRef{Type: domain.OwnerPersona, ID: creatorPersonaID},
		Target:  target,
		Amount:  amount,
		Purpose: purpose,
	}
	qt := &domain.QrToken{
		Token:     opaque,
		Type:      domain.TokenPayment,
		ExpiresAt: time.Now().Add(tokenTTL),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.payments.CreateRequest(ctx, pr); err != nil {
			return err
		}
		qt.PaymentRequestID = &pr.ID
		qt.Payload = map[string]any{
			"payment_request_id": pr.ID,
			"amount":             amount,
			"purpose":            purpose,
		}
		if _, err := s.payments.CreateToken(ctx, qt); err != nil {
			return err
		}
		return s.audit.AppendLog(ctx, &domain.LogEntry{
			Type:           "payment_request_created",
			ActorPersonaID: &creatorPersonaID,
			Meta:           map[string]any{"payment_request_id": pr.ID, "amount": amount},
		})
	})
	if err != nil {
		return nil, nil, err
	}
	return pr, qt, nil
}

// ResolveToken treats expired tokens exactly like unknown ones, so a caller
// cannot probe whether a token ever existed.
func (s *Service) ResolveToken(ctx context.Context, opaque string) (*domain.QrToken, *domain.PaymentRequest, error) {
	qt, pr, err := s.payments.GetToken(ctx, opaque, time.Now())
	if err != nil {
		return nil, nil, err
	}
	if qt == nil {
		return nil, nil, ErrTokenNotFound
	}
	return qt, pr, nil
}

// ConfirmPayment settles a scanned payment request. The PENDING claim and the
// transfer commit together, so a second confirmation of the same token fails
// with ErrAlreadyProcessed instead of double-charging.
func (s *Service) ConfirmPayment(ctx context.Context, payerPersonaID, opaque string) (*domain.Transaction, error) {
	qt, pr, err := s.ResolveToken(ctx, opaque)
	if err != nil {
		return nil, err
	}
	if qt.Type != domain.TokenPayment || pr == nil {
		return nil, ErrInvalidToken
	}
	if pr.Status != domain.RequestPending {
		return nil, ErrAlreadyProcessed
	}

	fromWallet, err := s.wallets.GetByOwner(ctx, domain.OwnerRef{Type: domain.OwnerPersona, ID: payerPersonaID})
	if err != nil {
		return nil, err
	}
	if fromWallet == nil {
		return nil, ErrWalletNotFound
	}
	if fromWallet.Balance < 0 {
		return nil, ErrNegativeBalance
	}
	if fromWallet.Balance < pr.Amount {
		return nil, ErrInsufficientFunds
	}

	// Open requests resolve to the creator's wallet at confirmation time.
	payee := pr.Creator
	if pr.Target != nil {
		payee = *pr.Target
	}
	toWallet, err := s.wallets.GetByOwner(ctx, payee)
	if err != nil {
		return nil, err
	}
	if toWallet == nil {
		return nil, ErrWalletNotFound
	}

	meta := map[string]any{
		"from_persona_id": payerPersonaID,
		"purpose":         pr.Purpose,
	}

	var credit *domain.Transaction
	var fromBalance, toBalance int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		claimed, err := s.payments.ClaimPending(ctx, pr.ID, time.Now())
		if err != nil {
			return err
		}
		if !claimed {
			return ErrAlreadyProcessed
		}
		fromBalance, err = s.wallets.Debit(ctx, fromWallet.ID, pr.Amount, true)
		if errors.Is(err, walletrepo.ErrBalanceGuard) {
			return ErrInsufficientFunds
		}
		if err != nil {
			return err
		}
		if toBalance, err = s.wallets.Credit(ctx, toWallet.ID, pr.Amount); err != nil {
			return err
		}
		if _, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: fromWallet.ID, Type: domain.TxPaymentRequest, Amount: -pr.Amount, PaymentRequestID: &pr.ID, Meta: meta,
		}); err != nil {
			return err
		}
		if credit, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: toWallet.ID, Type: domain.TxPaymentRequest, Amount: pr.Amount, PaymentRequestID: &pr.ID, Meta: meta,
		}); err != nil {
			return err
		}
		return s.audit.AppendLog(ctx, &domain.LogEntry{
			Type:            "payment_request_completed",
			ActorPersonaID:  &payerPersonaID,
			TargetPersonaID: toWallet.PersonaID,
			TargetHostID:    toWallet.HostID,
			Meta:            map[string]any{"payment_request_id": pr.ID, "amount": pr.Amount},
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifyBalance(ctx, fromWallet, fromBalance)
	s.notifyBalance(ctx, toWallet, toBalance)

	return credit, nil
}

func (s *Service) CreateSubscription(ctx context.Context, actorPersonaID string, payer, payee domain.OwnerRef, itemAmount int64, subType domain.SubscriptionType) (*domain.Subscription, error) {
	if itemAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	payerWallet, err := s.wallets.GetByOwner(ctx, payer)
	if err != nil {
		return nil, err
	}
	if payerWallet == nil {
		return nil, ErrWalletNotFound
	}
	payeeWallet, err := s.wallets.GetByOwner(ctx, payee)
	if err != nil {
		return nil, err
	}
	if payeeWallet == nil {
		return nil, ErrWalletNotFound
	}

	sub := &domain.Subscription{
		Payer:         payer,
		Payee:         payee,
		AmountPerTick: itemAmount * amortizeNum / amortizeDen,
		PeriodSeconds: periodSeconds,
		Type:          subType,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.subs.Create(ctx, sub); err != nil {
			return err
		}
		var targetPersona *string
		if payee.Type == domain.OwnerPersona {
			targetPersona = &payee.ID
		}
		return s.audit.AppendLog(ctx, &domain.LogEntry{
			Type:            "subscription_created",
			ActorPersonaID:  &actorPersonaID,
			TargetPersonaID: targetPersona,
			Meta:            map[string]any{"subscription_id": sub.ID, "amount_per_tick": sub.AmountPerTick},
		})
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) ListSubscriptions(ctx context.Context, personaID string) (asPayer, asPayee []domain.Subscription, err error) {
	return s.subs.ListByPersona(ctx, personaID)
}

// CancelSubscription hard-deletes a subscription; there is no pause state.
func (s *Service) CancelSubscription(ctx context.Context, actorPersonaID string, role domain.Role, subscriptionID string) error {
	if role != domain.RoleGridgod {
		return ErrForbidden
	}
	deleted, err := s.subs.Delete(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSubscriptionNotFound
	}
	return s.audit.AppendLog(ctx, &domain.LogEntry{
		Type:           "subscription_cancelled",
		ActorPersonaID: &actorPersonaID,
		Meta:           map[string]any{"subscription_id": subscriptionID},
	})
}

func (s *Service) notifyBalance(ctx context.Context, wallet *domain.Wallet, balance int64) {
	if wallet.PersonaID == nil {
		return
	}
	s.notifier.Notify(ctx, *wallet.PersonaID, "balance_update", map[string]any{"balance": balance})
}
