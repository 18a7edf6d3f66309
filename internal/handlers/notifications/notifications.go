package notifications

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/dto"
	"github.com/GlebRadaev/gridcore/pkg/auth"
	"github.com/GlebRadaev/gridcore/pkg/utils"
)

type Service interface {
	List(ctx context.Context, personaID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, personaID string) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetNotifications godoc
//
//	@Summary		List notifications
//	@Description	List recent notifications for the authenticated persona, newest first.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NotificationResponseDTO	"Notifications"
//	@Failure		401	{object}	utils.Response				"Persona not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	notifications, err := h.notificationService.List(r.Context(), personaID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.NotificationResponseDTO, len(notifications))
	for i, n := range notifications {
		response[i] = dto.NotificationResponseDTO{
			ID:        n.ID,
			Type:      n.Type,
			Payload:   n.Payload,
			IsRead:    n.ReadAt != nil,
			CreatedAt: n.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Description	Mark one of the authenticated persona's notifications as read. Already-read and foreign notifications are a no-op.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Notification ID"
//	@Success		200	{string}	string	"Notification marked read"
//	@Failure		401	{object}	utils.Response	"Persona not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	notificationID := chi.URLParam(r, "id")

	if err := h.notificationService.MarkRead(r.Context(), notificationID, personaID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "notification marked read")
}
