package hack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/dto"
	hackservice "github.com/GlebRadaev/gridcore/internal/service/hackservice"
	"github.com/GlebRadaev/gridcore/pkg/auth"
	"github.com/GlebRadaev/gridcore/pkg/utils"
)

type Service interface {
	ListTargets(ctx context.Context, personaID string) ([]domain.KnownTarget, error)
	AddTarget(ctx context.Context, personaID string, targetType domain.OwnerType, targetID string) (*domain.KnownTarget, error)
	StartHack(ctx context.Context, attackerID string, targetType domain.OwnerType, targetID, elementType string) (*domain.HackSession, error)
	CompleteHack(ctx context.Context, attackerID, sessionID string, success bool) (*domain.HackSession, error)
	CancelHack(ctx context.Context, attackerID, sessionID string) (*domain.HackSession, error)
	StealFunds(ctx context.Context, attackerID, sessionID string) (int64, error)
	StealSIN(ctx context.Context, attackerID, sessionID string) (*domain.File, error)
	BrickDevice(ctx context.Context, attackerID, sessionID, deviceID string) (brickUntil time.Time, err error)
	DownloadFile(ctx context.Context, attackerID, sessionID, fileID string) (*domain.File, error)
	ListSpiderHosts(ctx context.Context, spiderID string) ([]domain.Host, error)
	CounterHack(ctx context.Context, spiderID, sessionID string, success bool) error
}

type HackHandler struct {
	hackService Service
}

func New(hackService Service) *HackHandler {
	return &HackHandler{
		hackService: hackService,
	}
}

// GetTargets godoc
//
//	@Summary		List known targets
//	@Description	List the personas and hosts the authenticated decker has discovered and may attack.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.KnownTargetResponseDTO	"Known targets"
//	@Failure		401	{object}	utils.Response				"Persona not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/decking/targets [get]
func (h *HackHandler) GetTargets(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	targets, err := h.hackService.ListTargets(r.Context(), personaID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.KnownTargetResponseDTO, len(targets))
	for i, t := range targets {
		response[i] = dto.KnownTargetResponseDTO{
			TargetType: string(t.TargetType),
			TargetID:   t.TargetID,
			CreatedAt:  t.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddTarget godoc
//
//	@Summary		Add a known target
//	@Description	Record a discovered persona or host so it becomes attackable. Adding the same target twice is a no-op.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddTargetRequestDTO		true	"Target payload"
//	@Success		201		{object}	dto.KnownTargetResponseDTO	"Recorded target"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"Persona not authorized"
//	@Failure		404		{object}	utils.Response				"Target not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/decking/targets [post]
func (h *HackHandler) AddTarget(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	var req dto.AddTargetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, err := h.hackService.AddTarget(r.Context(), personaID, domain.OwnerType(req.TargetType), req.TargetID)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.KnownTargetResponseDTO{
		TargetType: string(target.TargetType),
		TargetID:   target.TargetID,
		CreatedAt:  target.CreatedAt,
	})
}

// StartHack godoc
//
//	@Summary		Start a hack session
//	@Description	Open an intrusion session against a persona or host element. The session stays usable for a short window.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StartHackRequestDTO	true	"Hack payload"
//	@Success		201		{object}	dto.SessionResponseDTO	"Opened session"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"Persona not authorized"
//	@Failure		404		{object}	utils.Response			"Target not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/decking/hack [post]
func (h *HackHandler) StartHack(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	var req dto.StartHackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.hackService.StartHack(r.Context(), personaID, domain.OwnerType(req.TargetType), req.TargetID, req.ElementType)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSessionDTO(session))
}

// CompleteHack godoc
//
//	@Summary		Complete a hack session
//	@Description	Report the outcome of an active session. A successful session unlocks its one consumable operation.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Session ID"
//	@Param			request	body		dto.CompleteHackRequestDTO	true	"Outcome payload"
//	@Success		200		{object}	dto.SessionResponseDTO		"Finished session"
//	@Failure		400		{object}	utils.Response				"Session not active"
//	@Failure		401		{object}	utils.Response				"Persona not authorized"
//	@Failure		403		{object}	utils.Response				"Session belongs to another persona"
//	@Failure		404		{object}	utils.Response				"Session not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/decking/hack/{id}/complete [post]
func (h *HackHandler) CompleteHack(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	sessionID := chi.URLParam(r, "id")

	var req dto.CompleteHackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.hackService.CompleteHack(r.Context(), personaID, sessionID, req.Success)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTO(session))
}

// CancelHack godoc
//
//	@Summary		Cancel a hack session
//	@Description	Abort an active session without an outcome.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session ID"
//	@Success		200	{object}	dto.SessionResponseDTO	"Cancelled session"
//	@Failure		400	{object}	utils.Response			"Session not active"
//	@Failure		401	{object}	utils.Response			"Persona not authorized"
//	@Failure		403	{object}	utils.Response			"Session belongs to another persona"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/decking/hack/{id}/cancel [post]
func (h *HackHandler) CancelHack(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	sessionID := chi.URLParam(r, "id")

	session, err := h.hackService.CancelHack(r.Context(), personaID, sessionID)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTO(session))
}

// StealFunds godoc
//
//	@Summary		Steal funds
//	@Description	Consume a successful wallet session and siphon a tenth of the target's balance.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Session ID"
//	@Success		200	{object}	dto.StealFundsResponseDTO	"Stolen amount"
//	@Failure		400	{object}	utils.Response				"Session not successful"
//	@Failure		401	{object}	utils.Response				"Persona not authorized"
//	@Failure		402	{object}	utils.Response				"Target has nothing to steal"
//	@Failure		403	{object}	utils.Response				"Session belongs to another persona"
//	@Failure		404	{object}	utils.Response				"Session or wallet not found"
//	@Failure		409	{object}	utils.Response				"Session already consumed"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/decking/hack/{id}/steal-funds [post]
func (h *HackHandler) StealFunds(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	sessionID := chi.URLParam(r, "id")

	amount, err := h.hackService.StealFunds(r.Context(), personaID, sessionID)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StealFundsResponseDTO{Amount: amount})
}

// StealSIN godoc
//
//	@Summary		Steal a SIN
//	@Description	Consume a successful persona session and copy the target's SIN record into the attacker's files.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session ID"
//	@Success		200	{object}	dto.FileResponseDTO		"Stolen SIN file"
//	@Failure		400	{object}	utils.Response			"Session not successful"
//	@Failure		401	{object}	utils.Response			"Persona not authorized"
//	@Failure		403	{object}	utils.Response			"Session belongs to another persona"
//	@Failure		404	{object}	utils.Response			"Session or target not found"
//	@Failure		409	{object}	utils.Response			"Session already consumed"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/decking/hack/{id}/steal-sin [post]
func (h *HackHandler) StealSIN(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	sessionID := chi.URLParam(r, "id")

	file, err := h.hackService.StealSIN(r.Context(), personaID, sessionID)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFileDTO(file))
}

// BrickDevice godoc
//
//	@Summary		Brick a target device
//	@Description	Consume a successful session and knock one of the target's devices offline for a few minutes.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Session ID"
//	@Param			request	body		dto.BrickDeviceRequestDTO	true	"Device payload"
//	@Success		200		{object}	dto.BrickDeviceResponseDTO	"Brick deadline"
//	@Failure		400		{object}	utils.Response				"Session not successful"
//	@Failure		401		{object}	utils.Response				"Persona not authorized"
//	@Failure		403		{object}	utils.Response				"Device does not belong to the target"
//	@Failure		404		{object}	utils.Response				"Session or device not found"
//	@Failure		409		{object}	utils.Response				"Session already consumed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/decking/hack/{id}/brick [post]
func (h *HackHandler) BrickDevice(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	sessionID := chi.URLParam(r, "id")

	var req dto.BrickDeviceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	brickUntil, err := h.hackService.BrickDevice(r.Context(), personaID, sessionID, req.DeviceID)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BrickDeviceResponseDTO{BrickUntil: brickUntil})
}

// DownloadFile godoc
//
//	@Summary		Download a target file
//	@Description	Consume a successful session and copy one of the target's files.
//	@Tags			Decking
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		string				true	"Session ID"
//	@Param			fileId	path		string				true	"File ID"
//	@Success		200		{object}	dto.FileResponseDTO	"Downloaded file"
//	@Failure		400		{object}	utils.Response		"Session not successful"
//	@Failure		401		{object}	utils.Response		"Persona not authorized"
//	@Failure		403		{object}	utils.Response		"File does not belong to the target"
//	@Failure		404		{object}	utils.Response		"Session or file not found"
//	@Failure		409		{object}	utils.Response		"Session already consumed"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/decking/hack/{id}/files/{fileId} [post]
func (h *HackHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	sessionID := chi.URLParam(r, "id")
	fileID := chi.URLParam(r, "fileId")

	file, err := h.hackService.DownloadFile(r.Context(), personaID, sessionID, fileID)
	if err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFileDTO(file))
}

// GetSpiderHosts godoc
//
//	@Summary		List guarded hosts
//	@Description	List the hosts the authenticated spider watches over.
//	@Tags			Spider
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.HostResponseDTO	"Guarded hosts"
//	@Failure		401	{object}	utils.Response		"Persona not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/spider/hosts [get]
func (h *HackHandler) GetSpiderHosts(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	hosts, err := h.hackService.ListSpiderHosts(r.Context(), personaID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.HostResponseDTO, len(hosts))
	for i, host := range hosts {
		response[i] = dto.HostResponseDTO{ID: host.ID, Name: host.Name}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CounterHack godoc
//
//	@Summary		Counter-hack an intruder
//	@Description	Resolve a spider's trace against an active intrusion into a guarded host. A successful trace fails the session and bricks the intruder's deck or commlink.
//	@Tags			Spider
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Session ID"
//	@Param			request	body		dto.CounterHackRequestDTO	true	"Trace outcome"
//	@Success		200		{string}	string						"Trace resolved"
//	@Failure		400		{object}	utils.Response				"Session not active"
//	@Failure		401		{object}	utils.Response				"Persona not authorized"
//	@Failure		403		{object}	utils.Response				"Host is not guarded by this spider"
//	@Failure		404		{object}	utils.Response				"Session not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/spider/counter-hack/{id} [post]
func (h *HackHandler) CounterHack(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	sessionID := chi.URLParam(r, "id")

	var req dto.CounterHackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.hackService.CounterHack(r.Context(), personaID, sessionID, req.Success); err != nil {
		respondHackError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "trace resolved")
}

func toSessionDTO(session *domain.HackSession) dto.SessionResponseDTO {
	targetType := domain.OwnerPersona
	targetID := ""
	if session.TargetPersonaID != nil {
		targetID = *session.TargetPersonaID
	}
	if session.TargetHostID != nil {
		targetType = domain.OwnerHost
		targetID = *session.TargetHostID
	}
	return dto.SessionResponseDTO{
		ID:          session.ID,
		TargetType:  string(targetType),
		TargetID:    targetID,
		ElementType: session.ElementType,
		Status:      string(session.Status),
		ExpiresAt:   session.ExpiresAt,
	}
}

func toFileDTO(file *domain.File) dto.FileResponseDTO {
	return dto.FileResponseDTO{
		ID:        file.ID,
		Name:      file.Name,
		Type:      file.Type,
		Content:   file.Content,
		CreatedAt: file.CreatedAt,
	}
}

func respondHackError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hackservice.ErrSessionNotFound),
		errors.Is(err, hackservice.ErrTargetNotFound),
		errors.Is(err, hackservice.ErrDeviceNotFound),
		errors.Is(err, hackservice.ErrFileNotFound),
		errors.Is(err, hackservice.ErrWalletNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, hackservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, hackservice.ErrNotActive),
		errors.Is(err, hackservice.ErrNotSuccessful):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, hackservice.ErrAlreadyConsumed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, hackservice.ErrInsufficientTargetFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
