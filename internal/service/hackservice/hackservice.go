package hackservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/pg"
)

const (
	sessionWindow = 2 * time.Minute
	brickDuration = 5 * time.Minute

	// stealDivisor: funds theft takes floor(1/10) of the target's balance.
	stealDivisor = 10
)

var (
	ErrSessionNotFound         = errors.New("hack session not found")
	ErrTargetNotFound          = errors.New("target not found")
	ErrDeviceNotFound          = errors.New("device not found")
	ErrFileNotFound            = errors.New("file not found")
	ErrWalletNotFound          = errors.New("wallet not found")
	ErrForbidden               = errors.New("forbidden")
	ErrNotActive               = errors.New("hack session not active")
	ErrNotSuccessful           = errors.New("hack session not successful")
	ErrAlreadyConsumed         = errors.New("hack session operation already consumed")
	ErrInsufficientTargetFunds = errors.New("target wallet has insufficient balance")
)

type HackRepo interface {
	Create(ctx context.Context, s *domain.HackSession) (*domain.HackSession, error)
	GetByID(ctx context.Context, sessionID string) (*domain.HackSession, error)
	Transition(ctx context.Context, sessionID string, to domain.SessionStatus) (bool, error)
	ClaimConsume(ctx context.Context, sessionID string, now time.Time) (bool, error)
	ListTargets(ctx context.Context, personaID string) ([]domain.KnownTarget, error)
	AddTarget(ctx context.Context, t *domain.KnownTarget) (*domain.KnownTarget, error)
}

type WalletRepo interface {
	GetByOwner(ctx context.Context, owner domain.OwnerRef) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID string, amount int64, guarded bool) (int64, error)
	Credit(ctx context.Context, walletID string, amount int64) (int64, error)
	InsertTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

type RegistryRepo interface {
	GetPersona(ctx context.Context, personaID string) (*domain.Persona, error)
	GetHost(ctx context.Context, hostID string) (*domain.Host, error)
	ListHostsBySpider(ctx context.Context, spiderPersonaID string) ([]domain.Host, error)
	ListDevices(ctx context.Context, personaID string) ([]domain.Device, error)
	GetDevice(ctx context.Context, deviceID string) (*domain.Device, error)
	BrickDevice(ctx context.Context, deviceID string, until time.Time) error
	GetFile(ctx context.Context, fileID string) (*domain.File, error)
	CreateFile(ctx context.Context, f *domain.File) (*domain.File, error)
	AppendLog(ctx context.Context, e *domain.LogEntry) error
}

type Notifier interface {
	Notify(ctx context.Context, personaID, notifType string, payload map[string]any)
}

type Service struct {
	sessions  HackRepo
	wallets   WalletRepo
	registry  RegistryRepo
	notifier  Notifier
	txManager pg.TXManager
}

func New(sessions HackRepo, wallets WalletRepo, registry RegistryRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		sessions:  sessions,
		wallets:   wallets,
		registry:  registry,
		notifier:  notifier,
		txManager: txManager,
	}
}

func (s *Service) ListTargets(ctx context.Context, personaID string) ([]domain.KnownTarget, error) {
	return s.sessions.ListTargets(ctx, personaID)
}

func (s *Service) AddTarget(ctx context.Context, personaID string, targetType domain.OwnerType, targetID string) (*domain.KnownTarget, error) {
	return s.sessions.AddTarget(ctx, &domain.KnownTarget{
		PersonaID:  personaID,
		TargetType: targetType,
		TargetID:   targetID,
	})
}

// StartHack opens a 2-minute intrusion window against a persona or host.
// Alerting the victim (and the host's spider) is best effort and never fails
// the session creation.
func (s *Service) StartHack(ctx context.Context, attackerID string, targetType domain.OwnerType, targetID, elementType string) (*domain.HackSession, error) {
	session := &domain.HackSession{
		AttackerPersonaID: attackerID,
		TargetType:        targetType,
		ElementType:       elementType,
		ExpiresAt:         time.Now().Add(sessionWindow),
	}

	var spiderID *string
	switch targetType {
	case domain.OwnerPersona:
		persona, err := s.registry.GetPersona(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if persona == nil || persona.SIN == nil {
			return nil, ErrTargetNotFound
		}
		session.TargetPersonaID = &targetID
	case domain.OwnerHost:
		host, err := s.registry.GetHost(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if host == nil {
			return nil, ErrTargetNotFound
		}
		session.TargetHostID = &targetID
		spiderID = host.SpiderPersonaID
	default:
		return nil, ErrTargetNotFound
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.sessions.Create(ctx, session); err != nil {
			return err
		}
		return s.registry.AppendLog(ctx, &domain.LogEntry{
			Type:            "hack_started",
			ActorPersonaID:  &attackerID,
			TargetPersonaID: session.TargetPersonaID,
			TargetHostID:    session.TargetHostID,
			Meta:            map[string]any{"hack_session_id": session.ID, "element_type": elementType},
		})
	})
	if err != nil {
		return nil, err
	}

	if session.TargetPersonaID != nil {
		s.notifier.Notify(ctx, *session.TargetPersonaID, "hack_started", map[string]any{
			"hack_session_id": session.ID, "attacker_persona_id": attackerID,
		})
	}
	if spiderID != nil {
		s.notifier.Notify(ctx, *spiderID, "spider_alert", map[string]any{
			"host_id": targetID, "hack_session_id": session.ID,
		})
	}

	return session, nil
}

// CompleteHack resolves an ACTIVE session to SUCCESS or FAILED. Only the
// attacker may complete it; a terminal session is an error, not a no-op.
func (s *Service) CompleteHack(ctx context.Context, attackerID, sessionID string, success bool) (*domain.HackSession, error) {
	return s.finishSession(ctx, attackerID, sessionID, success, "hack_completed")
}

func (s *Service) CancelHack(ctx context.Context, attackerID, sessionID string) (*domain.HackSession, error) {
	session, err := s.ownedSession(ctx, attackerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionActive {
		return nil, ErrNotActive
	}
	if err := s.transition(ctx, session, domain.SessionCancelled, nil); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) finishSession(ctx context.Context, attackerID, sessionID string, success bool, logType string) (*domain.HackSession, error) {
	session, err := s.ownedSession(ctx, attackerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionActive {
		return nil, ErrNotActive
	}

	to := domain.SessionFailed
	if success {
		to = domain.SessionSuccess
	}
	err = s.transition(ctx, session, to, &domain.LogEntry{
		Type:            logType,
		ActorPersonaID:  &attackerID,
		TargetPersonaID: session.TargetPersonaID,
		TargetHostID:    session.TargetHostID,
		Meta:            map[string]any{"hack_session_id": sessionID, "success": success},
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// transition claims ACTIVE -> to and applies the status to the in-memory copy.
// A lost claim means the expiry sweep or a concurrent call got there first.
func (s *Service) transition(ctx context.Context, session *domain.HackSession, to domain.SessionStatus, entry *domain.LogEntry) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.sessions.Transition(ctx, session.ID, to)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotActive
		}
		session.Status = to
		if entry == nil {
			return nil
		}
		return s.registry.AppendLog(ctx, entry)
	})
}

// StealFunds moves floor(10%) of the target's balance into the attacker's
// wallet as a theft-flagged transaction pair, consuming the session credit.
func (s *Service) StealFunds(ctx context.Context, attackerID, sessionID string) (int64, error) {
	session, err := s.consumableSession(ctx, attackerID, sessionID)
	if err != nil {
		return 0, err
	}
	if session.TargetPersonaID == nil {
		return 0, ErrTargetNotFound
	}

	targetWallet, err := s.wallets.GetByOwner(ctx, domain.OwnerRef{Type: domain.OwnerPersona, ID: *session.TargetPersonaID})
	if err != nil {
		return 0, err
	}
	attackerWallet, err := s.wallets.GetByOwner(ctx, domain.OwnerRef{Type: domain.OwnerPersona, ID: attackerID})
	if err != nil {
		return 0, err
	}
	if targetWallet == nil || attackerWallet == nil {
		return 0, ErrWalletNotFound
	}

	stealAmount := targetWallet.Balance / stealDivisor
	if stealAmount <= 0 {
		return 0, ErrInsufficientTargetFunds
	}

	var attackerBalance, targetBalance int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.consume(ctx, sessionID); err != nil {
			return err
		}
		if targetBalance, err = s.wallets.Debit(ctx, targetWallet.ID, stealAmount, false); err != nil {
			return err
		}
		if attackerBalance, err = s.wallets.Credit(ctx, attackerWallet.ID, stealAmount); err != nil {
			return err
		}
		if _, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: targetWallet.ID, Type: domain.TxTransfer, Amount: -stealAmount, IsTheft: true,
			Meta: map[string]any{"to_persona_id": attackerID, "hack_session_id": sessionID},
		}); err != nil {
			return err
		}
		if _, err = s.wallets.InsertTransaction(ctx, &domain.Transaction{
			WalletID: attackerWallet.ID, Type: domain.TxTransfer, Amount: stealAmount, IsTheft: true,
			Meta: map[string]any{"from_persona_id": *session.TargetPersonaID, "hack_session_id": sessionID},
		}); err != nil {
			return err
		}
		return s.registry.AppendLog(ctx, &domain.LogEntry{
			Type:            "funds_stolen",
			ActorPersonaID:  &attackerID,
			TargetPersonaID: session.TargetPersonaID,
			Meta:            map[string]any{"hack_session_id": sessionID, "amount": stealAmount},
		})
	})
	if err != nil {
		return 0, err
	}

	s.notifier.Notify(ctx, attackerID, "balance_update", map[string]any{"balance": attackerBalance})
	s.notifier.Notify(ctx, *session.TargetPersonaID, "balance_update", map[string]any{"balance": targetBalance})

	return stealAmount, nil
}

// StealSIN copies the target's identity record into a private file owned by
// the attacker.
func (s *Service) StealSIN(ctx context.Context, attackerID, sessionID string) (*domain.File, error) {
	session, err := s.consumableSession(ctx, attackerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.TargetPersonaID == nil {
		return nil, ErrTargetNotFound
	}
	target, err := s.registry.GetPersona(ctx, *session.TargetPersonaID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.SIN == nil {
		return nil, ErrTargetNotFound
	}

	content, err := json.Marshal(map[string]any{
		"sin":        *target.SIN,
		"persona_id": target.ID,
		"name":       target.Name,
		"stolen_at":  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	file := &domain.File{
		PersonaID: &attackerID,
		Name:      "SIN_" + *target.SIN + ".json",
		Type:      "application/json",
		Content:   string(content),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.consume(ctx, sessionID); err != nil {
			return err
		}
		if _, err := s.registry.CreateFile(ctx, file); err != nil {
			return err
		}
		return s.registry.AppendLog(ctx, &domain.LogEntry{
			Type:            "sin_stolen",
			ActorPersonaID:  &attackerID,
			TargetPersonaID: &target.ID,
			Meta:            map[string]any{"hack_session_id": sessionID, "file_id": file.ID},
		})
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// BrickDevice disables one of the target's devices for five minutes.
func (s *Service) BrickDevice(ctx context.Context, attackerID, sessionID, deviceID string) (time.Time, error) {
	session, err := s.consumableSession(ctx, attackerID, sessionID)
	if err != nil {
		return time.Time{}, err
	}
	if session.TargetPersonaID == nil {
		return time.Time{}, ErrTargetNotFound
	}

	device, err := s.registry.GetDevice(ctx, deviceID)
	if err != nil {
		return time.Time{}, err
	}
	if device == nil || device.OwnerPersonaID == nil || *device.OwnerPersonaID != *session.TargetPersonaID {
		return time.Time{}, ErrDeviceNotFound
	}

	brickUntil := time.Now().Add(brickDuration)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.consume(ctx, sessionID); err != nil {
			return err
		}
		if err := s.registry.BrickDevice(ctx, deviceID, brickUntil); err != nil {
			return err
		}
		return s.registry.AppendLog(ctx, &domain.LogEntry{
			Type:            "device_bricked",
			ActorPersonaID:  &attackerID,
			TargetPersonaID: session.TargetPersonaID,
			Meta:            map[string]any{"hack_session_id": sessionID, "device_id": deviceID},
		})
	})
	if err != nil {
		return time.Time{}, err
	}
	return brickUntil, nil
}

// DownloadFile duplicates a file from the target's archive into the
// attacker's.
func (s *Service) DownloadFile(ctx context.Context, attackerID, sessionID, fileID string) (*domain.File, error) {
	session, err := s.consumableSession(ctx, attackerID, sessionID)
	if err != nil {
		return nil, err
	}

	source, err := s.registry.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if source == nil || !fileBelongsToTarget(source, session) {
		return nil, ErrFileNotFound
	}

	copied := &domain.File{
		PersonaID: &attackerID,
		Name:      source.Name,
		Type:      source.Type,
		Content:   source.Content,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.consume(ctx, sessionID); err != nil {
			return err
		}
		if _, err := s.registry.CreateFile(ctx, copied); err != nil {
			return err
		}
		return s.registry.AppendLog(ctx, &domain.LogEntry{
			Type:            "file_downloaded_via_hack",
			ActorPersonaID:  &attackerID,
			TargetPersonaID: session.TargetPersonaID,
			TargetHostID:    session.TargetHostID,
			Meta:            map[string]any{"hack_session_id": sessionID, "file_id": fileID, "new_file_id": copied.ID},
		})
	})
	if err != nil {
		return nil, err
	}
	return copied, nil
}

func fileBelongsToTarget(f *domain.File, session *domain.HackSession) bool {
	switch session.TargetType {
	case domain.OwnerPersona:
		return f.PersonaID != nil && session.TargetPersonaID != nil && *f.PersonaID == *session.TargetPersonaID
	case domain.OwnerHost:
		return f.HostID != nil && session.TargetHostID != nil && *f.HostID == *session.TargetHostID
	}
	return false
}

func (s *Service) ListSpiderHosts(ctx context.Context, spiderID string) ([]domain.Host, error) {
	return s.registry.ListHostsBySpider(ctx, spiderID)
}

// CounterHack lets a host's spider respond to an intrusion against that host:
// on success the attacker's commlink or deck is bricked for five minutes, the
// original session is forced to FAILED and the attacker is alerted.
func (s *Service) CounterHack(ctx context.Context, spiderID, sessionID string, success bool) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil || session.TargetType != domain.OwnerHost || session.TargetHostID == nil {
		return ErrSessionNotFound
	}
	host, err := s.registry.GetHost(ctx, *session.TargetHostID)
	if err != nil {
		return err
	}
	if host == nil || host.SpiderPersonaID == nil || *host.SpiderPersonaID != spiderID {
		return ErrForbidden
	}

	if !success {
		return nil
	}

	devices, err := s.registry.ListDevices(ctx, session.AttackerPersonaID)
	if err != nil {
		return err
	}
	var commDevice *domain.Device
	for i := range devices {
		if devices[i].Type == "COMMLINK" || devices[i].Type == "DECK" {
			commDevice = &devices[i]
			break
		}
	}

	brickUntil := time.Now().Add(brickDuration)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if commDevice != nil {
			if err := s.registry.BrickDevice(ctx, commDevice.ID, brickUntil); err != nil {
				return err
			}
			if err := s.registry.AppendLog(ctx, &domain.LogEntry{
				Type:            "device_bricked_by_spider",
				ActorPersonaID:  &spiderID,
				TargetPersonaID: &session.AttackerPersonaID,
				TargetHostID:    &host.ID,
				Meta:            map[string]any{"hack_session_id": session.ID, "device_id": commDevice.ID},
			}); err != nil {
				return err
			}
		}
		// The attacker may have finished already; forcing FAILED only applies
		// while the session is still active.
		if _, err := s.sessions.Transition(ctx, session.ID, domain.SessionFailed); err != nil {
			return err
		}
		return s.registry.AppendLog(ctx, &domain.LogEntry{
			Type:            "counter_hack_success",
			ActorPersonaID:  &spiderID,
			TargetPersonaID: &session.AttackerPersonaID,
			TargetHostID:    &host.ID,
			Meta:            map[string]any{"hack_session_id": session.ID},
		})
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx, session.AttackerPersonaID, "spider_alert", map[string]any{
		"host_id": host.ID, "hack_session_id": session.ID,
	})
	zap.L().Info("counter hack succeeded",
		zap.String("hackSessionId", session.ID),
		zap.String("spiderPersonaId", spiderID))

	return nil
}

func (s *Service) ownedSession(ctx context.Context, attackerID, sessionID string) (*domain.HackSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.AttackerPersonaID != attackerID {
		return nil, ErrForbidden
	}
	return session, nil
}

// consumableSession validates the shared precondition of every consuming
// operation: caller is the attacker, the session succeeded and its single
// operation credit is unspent.
func (s *Service) consumableSession(ctx context.Context, attackerID, sessionID string) (*domain.HackSession, error) {
	session, err := s.ownedSession(ctx, attackerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionSuccess {
		return nil, ErrNotSuccessful
	}
	if session.ConsumedOperationAt != nil {
		return nil, ErrAlreadyConsumed
	}
	return session, nil
}

// consume spends the credit inside the caller's transaction. Losing the claim
// means a concurrent operation won; the whole transaction rolls back.
func (s *Service) consume(ctx context.Context, sessionID string) error {
	ok, err := s.sessions.ClaimConsume(ctx, sessionID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyConsumed
	}
	return nil
}
