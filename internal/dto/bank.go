package dto

import "time"

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"500"`
}

type TransferRequestDTO struct {
	ToType string `json:"to_type" example:"PERSONA"`
	ToID   string `json:"to_id" example:"c1f7d4a0"`
	Amount int64  `json:"amount" example:"100"`
}

type TransactionResponseDTO struct {
	ID        string    `json:"id" example:"tx-1"`
	Type      string    `json:"type" example:"transfer"`
	Amount    int64     `json:"amount" example:"100"`
	IsTheft   bool      `json:"is_theft,omitempty" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type CreatePaymentRequestDTO struct {
	TargetType *string `json:"target_type,omitempty" example:"PERSONA"`
	TargetID   *string `json:"target_id,omitempty" example:"c1f7d4a0"`
	Amount     int64   `json:"amount" example:"250"`
	Purpose    string  `json:"purpose" example:"drinks at the bar"`
}

type PaymentRequestResponseDTO struct {
	ID        string    `json:"id" example:"pr-1"`
	Token     string    `json:"token" example:"9f2c...a4"`
	Amount    int64     `json:"amount" example:"250"`
	Purpose   string    `json:"purpose" example:"drinks at the bar"`
	Status    string    `json:"status" example:"PENDING"`
	ExpiresAt time.Time `json:"expires_at" example:"2020-12-10T16:09:57+03:00"`
}

type TokenInfoResponseDTO struct {
	Type      string  `json:"type" example:"PAYMENT"`
	RequestID *string `json:"request_id,omitempty" example:"pr-1"`
	Amount    *int64  `json:"amount,omitempty" example:"250"`
	Purpose   *string `json:"purpose,omitempty" example:"drinks at the bar"`
	Status    *string `json:"status,omitempty" example:"PENDING"`
}

type ConfirmPaymentRequestDTO struct {
	Token string `json:"token" example:"9f2c...a4"`
}

type ConfirmPaymentResponseDTO struct {
	TransactionID string `json:"transaction_id" example:"tx-1"`
	Amount        int64  `json:"amount" example:"250"`
}

type CreateSubscriptionRequestDTO struct {
	PayerType  string `json:"payer_type" example:"PERSONA"`
	PayerID    string `json:"payer_id" example:"c1f7d4a0"`
	PayeeType  string `json:"payee_type" example:"HOST"`
	PayeeID    string `json:"payee_id" example:"h-22"`
	ItemAmount int64  `json:"item_amount" example:"480"`
	Type       string `json:"type" example:"SUBSCRIPTION"`
}

type SubscriptionResponseDTO struct {
	ID            string     `json:"id" example:"sub-1"`
	PayerType     string     `json:"payer_type" example:"PERSONA"`
	PayerID       string     `json:"payer_id" example:"c1f7d4a0"`
	PayeeType     string     `json:"payee_type" example:"HOST"`
	PayeeID       string     `json:"payee_id" example:"h-22"`
	AmountPerTick int64      `json:"amount_per_tick" example:"50"`
	Type          string     `json:"type" example:"SUBSCRIPTION"`
	LastChargedAt *time.Time `json:"last_charged_at,omitempty" example:"2020-12-09T16:09:57+03:00"`
}

type SubscriptionsResponseDTO struct {
	AsPayer []SubscriptionResponseDTO `json:"as_payer"`
	AsPayee []SubscriptionResponseDTO `json:"as_payee"`
}
