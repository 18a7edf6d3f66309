package bank

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/dto"
	bankservice "github.com/GlebRadaev/gridcore/internal/service/bankservice"
	"github.com/GlebRadaev/gridcore/pkg/auth"
	"github.com/GlebRadaev/gridcore/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, owner domain.OwnerRef) (int64, error)
	ListTransactions(ctx context.Context, personaID string, role domain.Role) ([]domain.Transaction, error)
	Transfer(ctx context.Context, fromPersonaID string, to domain.OwnerRef, amount int64) (*domain.Transaction, error)
	CreatePaymentRequest(ctx context.Context, creatorPersonaID string, target *domain.OwnerRef, amount int64, purpose string) (*domain.PaymentRequest, *domain.QrToken, error)
	ResolveToken(ctx context.Context, opaque string) (*domain.QrToken, *domain.PaymentRequest, error)
	ConfirmPayment(ctx context.Context, payerPersonaID, opaque string) (*domain.Transaction, error)
	CreateSubscription(ctx context.Context, actorPersonaID string, payer, payee domain.OwnerRef, itemAmount int64, subType domain.SubscriptionType) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context, personaID string) (asPayer, asPayee []domain.Subscription, err error)
	CancelSubscription(ctx context.Context, actorPersonaID string, role domain.Role, subscriptionID string) error
}

type BankHandler struct {
	bankService Service
}

func New(bankService Service) *BankHandler {
	return &BankHandler{
		bankService: bankService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Retrieve the current balance of the authenticated persona's wallet.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"Persona not authorized"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/bank/balance [get]
func (h *BankHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	balance, err := h.bankService.GetBalance(r.Context(), domain.OwnerRef{Type: domain.OwnerPersona, ID: personaID})
	if err != nil {
		if errors.Is(err, bankservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List recent wallet transactions, newest first. Theft-flagged rows are visible to the gridgod only.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Failure		401	{object}	utils.Response				"Persona not authorized"
//	@Failure		404	{object}	utils.Response				"Wallet not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/bank/transactions [get]
func (h *BankHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	role := domain.Role(r.Context().Value(auth.RoleKey).(string))

	transactions, err := h.bankService.ListTransactions(r.Context(), personaID, role)
	if err != nil {
		if errors.Is(err, bankservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:        t.ID,
			Type:      string(t.Type),
			Amount:    t.Amount,
			IsTheft:   t.IsTheft,
			CreatedAt: t.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Transfer godoc
//
//	@Summary		Transfer funds
//	@Description	Move funds from the authenticated persona's wallet to another persona or host wallet.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Credit-side transaction"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"Persona not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient or negative balance"
//	@Failure		404		{object}	utils.Response			"Wallet not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/bank/transfer [post]
func (h *BankHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	to := domain.OwnerRef{Type: domain.OwnerType(req.ToType), ID: req.ToID}
	credit, err := h.bankService.Transfer(r.Context(), personaID, to, req.Amount)
	if err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:        credit.ID,
		Type:      string(credit.Type),
		Amount:    credit.Amount,
		CreatedAt: credit.CreatedAt,
	})
}

// CreatePaymentRequest godoc
//
//	@Summary		Create a payment request
//	@Description	Open a pending payment request and issue an opaque token for it. Omitting the target makes an open request that pays the creator.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Payment request payload"
//	@Success		201		{object}	dto.PaymentRequestResponseDTO	"Created request with its token"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"Persona not authorized"
//	@Failure		404		{object}	utils.Response				"Wallet not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bank/requests [post]
func (h *BankHandler) CreatePaymentRequest(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var target *domain.OwnerRef
	if req.TargetType != nil && req.TargetID != nil {
		target = &domain.OwnerRef{Type: domain.OwnerType(*req.TargetType), ID: *req.TargetID}
	}

	pr, qt, err := h.bankService.CreatePaymentRequest(r.Context(), personaID, target, req.Amount, req.Purpose)
	if err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentRequestResponseDTO{
		ID:        pr.ID,
		Token:     qt.Token,
		Amount:    pr.Amount,
		Purpose:   pr.Purpose,
		Status:    string(pr.Status),
		ExpiresAt: qt.ExpiresAt,
	})
}

// ResolveToken godoc
//
//	@Summary		Resolve an opaque token
//	@Description	Look up what a scanned token points at. Expired tokens are indistinguishable from unknown ones.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Produce		json
//	@Param			token	path		string	true	"Opaque token"
//	@Success		200		{object}	dto.TokenInfoResponseDTO	"Token info"
//	@Failure		401		{object}	utils.Response				"Persona not authorized"
//	@Failure		404		{object}	utils.Response				"Token not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bank/token/{token} [get]
func (h *BankHandler) ResolveToken(w http.ResponseWriter, r *http.Request) {
	opaque := chi.URLParam(r, "token")

	qt, pr, err := h.bankService.ResolveToken(r.Context(), opaque)
	if err != nil {
		respondBankError(w, err)
		return
	}

	response := dto.TokenInfoResponseDTO{Type: string(qt.Type)}
	if pr != nil {
		status := string(pr.Status)
		response.RequestID = &pr.ID
		response.Amount = &pr.Amount
		response.Purpose = &pr.Purpose
		response.Status = &status
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ConfirmPayment godoc
//
//	@Summary		Confirm a payment request
//	@Description	Pay a pending payment request by its token. A request settles exactly once; repeats are rejected.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmPaymentRequestDTO	true	"Token to pay"
//	@Success		200		{object}	dto.ConfirmPaymentResponseDTO	"Settled payment"
//	@Failure		400		{object}	utils.Response					"Invalid request or token"
//	@Failure		401		{object}	utils.Response					"Persona not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient or negative balance"
//	@Failure		404		{object}	utils.Response					"Token or wallet not found"
//	@Failure		409		{object}	utils.Response					"Request already processed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/bank/pay [post]
func (h *BankHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	var req dto.ConfirmPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	credit, err := h.bankService.ConfirmPayment(r.Context(), personaID, req.Token)
	if err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmPaymentResponseDTO{
		TransactionID: credit.ID,
		Amount:        credit.Amount,
	})
}

// CreateSubscription godoc
//
//	@Summary		Create a subscription
//	@Description	Set up a recurring hourly charge from one wallet to another. The per-tick amount is derived from the item price.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSubscriptionRequestDTO	true	"Subscription payload"
//	@Success		201		{object}	dto.SubscriptionResponseDTO			"Created subscription"
//	@Failure		400		{object}	utils.Response						"Invalid request"
//	@Failure		401		{object}	utils.Response						"Persona not authorized"
//	@Failure		404		{object}	utils.Response						"Wallet not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/bank/subscriptions [post]
func (h *BankHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	var req dto.CreateSubscriptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payer := domain.OwnerRef{Type: domain.OwnerType(req.PayerType), ID: req.PayerID}
	payee := domain.OwnerRef{Type: domain.OwnerType(req.PayeeType), ID: req.PayeeID}
	sub, err := h.bankService.CreateSubscription(r.Context(), personaID, payer, payee, req.ItemAmount, domain.SubscriptionType(req.Type))
	if err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSubscriptionDTO(*sub))
}

// GetSubscriptions godoc
//
//	@Summary		List subscriptions
//	@Description	List subscriptions where the authenticated persona is the payer or the payee.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SubscriptionsResponseDTO	"Subscriptions by side"
//	@Failure		401	{object}	utils.Response					"Persona not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/bank/subscriptions [get]
func (h *BankHandler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	asPayer, asPayee, err := h.bankService.ListSubscriptions(r.Context(), personaID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.SubscriptionsResponseDTO{
		AsPayer: make([]dto.SubscriptionResponseDTO, len(asPayer)),
		AsPayee: make([]dto.SubscriptionResponseDTO, len(asPayee)),
	}
	for i, sub := range asPayer {
		response.AsPayer[i] = toSubscriptionDTO(sub)
	}
	for i, sub := range asPayee {
		response.AsPayee[i] = toSubscriptionDTO(sub)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CancelSubscription godoc
//
//	@Summary		Cancel a subscription
//	@Description	Delete a subscription. Gridgod only.
//	@Tags			Bank
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Subscription ID"
//	@Success		200	{string}	string	"Subscription cancelled"
//	@Failure		401	{object}	utils.Response	"Persona not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Subscription not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bank/subscriptions/{id} [delete]
func (h *BankHandler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	role := domain.Role(r.Context().Value(auth.RoleKey).(string))
	subscriptionID := chi.URLParam(r, "id")

	if err := h.bankService.CancelSubscription(r.Context(), personaID, role, subscriptionID); err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "subscription cancelled")
}

func toSubscriptionDTO(sub domain.Subscription) dto.SubscriptionResponseDTO {
	var lastCharged *time.Time
	if sub.LastChargedAt != nil {
		t := *sub.LastChargedAt
		lastCharged = &t
	}
	return dto.SubscriptionResponseDTO{
		ID:            sub.ID,
		PayerType:     string(sub.Payer.Type),
		PayerID:       sub.Payer.ID,
		PayeeType:     string(sub.Payee.Type),
		PayeeID:       sub.Payee.ID,
		AmountPerTick: sub.AmountPerTick,
		Type:          string(sub.Type),
		LastChargedAt: lastCharged,
	}
}

func respondBankError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bankservice.ErrWalletNotFound),
		errors.Is(err, bankservice.ErrSubscriptionNotFound),
		errors.Is(err, bankservice.ErrTokenNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bankservice.ErrInsufficientFunds),
		errors.Is(err, bankservice.ErrNegativeBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, bankservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bankservice.ErrInvalidAmount),
		errors.Is(err, bankservice.ErrInvalidToken):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, bankservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
