package domain

import "time"

type OwnerType string

const (
	OwnerPersona OwnerType = "PERSONA"
	OwnerHost    OwnerType = "HOST"
)

// OwnerRef points at a wallet owner, which is either a persona or a host.
type OwnerRef struct {
	Type OwnerType `json:"type"`
	ID   string    `json:"id"`
}

type Role string

const (
	RolePlayer  Role = "PLAYER"
	RoleSpider  Role = "SPIDER"
	RoleGridgod Role = "GRIDGOD"
)

type TransactionType string

const (
	TxTransfer       TransactionType = "TRANSFER"
	TxPaymentRequest TransactionType = "PAYMENT_REQUEST"
	TxSubscription   TransactionType = "SUBSCRIPTION"
	TxSalary         TransactionType = "SALARY"
)

type SubscriptionType string

const (
	SubSubscription SubscriptionType = "SUBSCRIPTION"
	SubSalary       SubscriptionType = "SALARY"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestCompleted RequestStatus = "COMPLETED"
)

type TokenType string

const (
	TokenPayment    TokenType = "PAYMENT"
	TokenSIN        TokenType = "SIN"
	TokenDeviceBind TokenType = "DEVICE_BIND"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "ACTIVE"
	SessionSuccess   SessionStatus = "SUCCESS"
	SessionFailed    SessionStatus = "FAILED"
	SessionCancelled SessionStatus = "CANCELLED"
	SessionExpired   SessionStatus = "EXPIRED"
)

type DeviceStatus string

const (
	DeviceActive  DeviceStatus = "ACTIVE"
	DeviceBricked DeviceStatus = "BRICKED"
)

type Persona struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Role Role   `db:"role"`
	// SIN comes from the persona's LLS record; nil when no LLS exists.
	SIN *string `db:"sin"`
}

type Host struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	OwnerPersonaID  *string `db:"owner_persona_id"`
	SpiderPersonaID *string `db:"spider_persona_id"`
}

type Wallet struct {
	ID        string  `db:"id"`
	PersonaID *string `db:"persona_id"`
	HostID    *string `db:"host_id"`
	Balance   int64   `db:"balance"`
}

// Owner returns the wallet owner as a tagged reference.
func (w *Wallet) Owner() OwnerRef {
	if w.PersonaID != nil {
		return OwnerRef{Type: OwnerPersona, ID: *w.PersonaID}
	}
	if w.HostID != nil {
		return OwnerRef{Type: OwnerHost, ID: *w.HostID}
	}
	return OwnerRef{}
}

type Transaction struct {
	ID               string          `db:"id"`
	WalletID         string          `db:"wallet_id"`
	Type             TransactionType `db:"type"`
	Amount           int64           `db:"amount"`
	IsTheft          bool            `db:"is_theft"`
	PaymentRequestID *string         `db:"payment_request_id"`
	SubscriptionID   *string         `db:"subscription_id"`
	Meta             map[string]any  `db:"meta"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Subscription struct {
	ID            string           `db:"id"`
	Payer         OwnerRef         `db:"-"`
	Payee         OwnerRef         `db:"-"`
	AmountPerTick int64            `db:"amount_per_tick"`
	PeriodSeconds int64            `db:"period_seconds"`
	Type          SubscriptionType `db:"type"`
	LastChargedAt *time.Time       `db:"last_charged_at"`
}

// Due reports whether the subscription should be charged at the given moment.
func (s *Subscription) Due(now time.Time) bool {
	if s.LastChargedAt == nil {
		return true
	}
	return now.Sub(*s.LastChargedAt) >= time.Duration(s.PeriodSeconds)*time.Second
}

type PaymentRequest struct {
	ID          string        `db:"id"`
	Creator     OwnerRef      `db:"-"`
	Target      *OwnerRef     `db:"-"`
	Amount      int64         `db:"amount"`
	Purpose     string        `db:"purpose"`
	Status      RequestStatus `db:"status"`
	CompletedAt *time.Time    `db:"completed_at"`
}

type QrToken struct {
	Token            string         `db:"token"`
	Type             TokenType      `db:"type"`
	Payload          map[string]any `db:"payload"`
	PaymentRequestID *string        `db:"payment_request_id"`
	ExpiresAt        time.Time      `db:"expires_at"`
}

type HackSession struct {
	ID                  string        `db:"id"`
	AttackerPersonaID   string        `db:"attacker_persona_id"`
	TargetType          OwnerType     `db:"target_type"`
	TargetPersonaID     *string       `db:"target_persona_id"`
	TargetHostID        *string       `db:"target_host_id"`
	ElementType         string        `db:"element_type"`
	Status              SessionStatus `db:"status"`
	ExpiresAt           time.Time     `db:"expires_at"`
	ConsumedOperationAt *time.Time    `db:"consumed_operation_at"`
	CreatedAt           time.Time     `db:"created_at"`
}

type KnownTarget struct {
	PersonaID  string    `db:"persona_id"`
	TargetType OwnerType `db:"target_type"`
	TargetID   string    `db:"target_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type Device struct {
	ID             string       `db:"id"`
	Code           string       `db:"code"`
	Type           string       `db:"type"`
	OwnerPersonaID *string      `db:"owner_persona_id"`
	Status         DeviceStatus `db:"status"`
	BrickUntil     *time.Time   `db:"brick_until"`
}

type File struct {
	ID        string    `db:"id"`
	PersonaID *string   `db:"persona_id"`
	HostID    *string   `db:"host_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Content   string    `db:"content"`
	IsPublic  bool      `db:"is_public"`
	CreatedAt time.Time `db:"created_at"`
}

type Notification struct {
	ID        string         `db:"id"`
	PersonaID string         `db:"persona_id"`
	Type      string         `db:"type"`
	Payload   map[string]any `db:"payload"`
	ReadAt    *time.Time     `db:"read_at"`
	CreatedAt time.Time      `db:"created_at"`
}

// LogEntry is an append-only audit record; the core never reads it back.
type LogEntry struct {
	Type            string
	ActorPersonaID  *string
	TargetPersonaID *string
	TargetHostID    *string
	Meta            map[string]any
}
