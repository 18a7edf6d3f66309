package devices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/dto"
	deviceservice "github.com/GlebRadaev/gridcore/internal/service/deviceservice"
	"github.com/GlebRadaev/gridcore/pkg/auth"
	"github.com/GlebRadaev/gridcore/pkg/utils"
)

type Service interface {
	ListDevices(ctx context.Context, personaID string) ([]domain.Device, error)
	BindDevice(ctx context.Context, personaID, code string) (*domain.Device, error)
	UnbindDevice(ctx context.Context, personaID, deviceID string) (*domain.Device, error)
}

type DeviceHandler struct {
	deviceService Service
}

func New(deviceService Service) *DeviceHandler {
	return &DeviceHandler{
		deviceService: deviceService,
	}
}

// GetDevices godoc
//
//	@Summary		List bound devices
//	@Description	List the devices bound to the authenticated persona.
//	@Tags			Devices
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DeviceResponseDTO	"Bound devices"
//	@Failure		401	{object}	utils.Response			"Persona not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/devices [get]
func (h *DeviceHandler) GetDevices(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	devices, err := h.deviceService.ListDevices(r.Context(), personaID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DeviceResponseDTO, len(devices))
	for i, d := range devices {
		response[i] = toDeviceDTO(&d)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// BindDevice godoc
//
//	@Summary		Bind a device
//	@Description	Claim an unbound device by its printed code.
//	@Tags			Devices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BindDeviceRequestDTO	true	"Device code"
//	@Success		200		{object}	dto.DeviceResponseDTO		"Bound device"
//	@Failure		400		{object}	utils.Response				"Device already bound"
//	@Failure		401		{object}	utils.Response				"Persona not authorized"
//	@Failure		404		{object}	utils.Response				"Device not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/devices/bind [post]
func (h *DeviceHandler) BindDevice(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)

	var req dto.BindDeviceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	device, err := h.deviceService.BindDevice(r.Context(), personaID, req.Code)
	if err != nil {
		respondDeviceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDeviceDTO(device))
}

// UnbindDevice godoc
//
//	@Summary		Unbind a device
//	@Description	Release one of the authenticated persona's devices.
//	@Tags			Devices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Device ID"
//	@Success		200	{object}	dto.DeviceResponseDTO	"Released device"
//	@Failure		401	{object}	utils.Response			"Persona not authorized"
//	@Failure		403	{object}	utils.Response			"Device belongs to another persona"
//	@Failure		404	{object}	utils.Response			"Device not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/devices/{id} [delete]
func (h *DeviceHandler) UnbindDevice(w http.ResponseWriter, r *http.Request) {
	personaID := r.Context().Value(auth.PersonaIDKey).(string)
	deviceID := chi.URLParam(r, "id")

	device, err := h.deviceService.UnbindDevice(r.Context(), personaID, deviceID)
	if err != nil {
		respondDeviceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDeviceDTO(device))
}

func toDeviceDTO(d *domain.Device) dto.DeviceResponseDTO {
	return dto.DeviceResponseDTO{
		ID:         d.ID,
		Code:       d.Code,
		Type:       d.Type,
		Status:     string(d.Status),
		BrickUntil: d.BrickUntil,
	}
}

func respondDeviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, deviceservice.ErrDeviceNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, deviceservice.ErrAlreadyBound):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, deviceservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
