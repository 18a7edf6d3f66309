package deviceservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/gridcore/internal/domain"
)

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrAlreadyBound   = errors.New("device already bound")
	ErrForbidden      = errors.New("forbidden")
)

type DeviceRepo interface {
	ListDevices(ctx context.Context, personaID string) ([]domain.Device, error)
	GetDevice(ctx context.Context, deviceID string) (*domain.Device, error)
	GetDeviceByCode(ctx context.Context, code string) (*domain.Device, error)
	SetDeviceOwner(ctx context.Context, deviceID string, ownerPersonaID *string) error
	AppendLog(ctx context.Context, e *domain.LogEntry) error
}

type Service struct {
	devices DeviceRepo
}

func New(devices DeviceRepo) *Service {
	return &Service{devices: devices}
}

func (s *Service) ListDevices(ctx context.Context, personaID string) ([]domain.Device, error) {
	return s.devices.ListDevices(ctx, personaID)
}

func (s *Service) BindDevice(ctx context.Context, personaID, code string) (*domain.Device, error) {
	device, err := s.devices.GetDeviceByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}
	if device.OwnerPersonaID != nil {
		return nil, ErrAlreadyBound
	}

	if err := s.devices.SetDeviceOwner(ctx, device.ID, &personaID); err != nil {
		return nil, err
	}
	device.OwnerPersonaID = &personaID

	if err := s.devices.AppendLog(ctx, &domain.LogEntry{
		Type:           "device_bound",
		ActorPersonaID: &personaID,
		Meta:           map[string]any{"device_id": device.ID, "code": code},
	}); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *Service) UnbindDevice(ctx context.Context, personaID, deviceID string) (*domain.Device, error) {
	device, err := s.devices.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}
	if device.OwnerPersonaID == nil || *device.OwnerPersonaID != personaID {
		return nil, ErrForbidden
	}

	if err := s.devices.SetDeviceOwner(ctx, device.ID, nil); err != nil {
		return nil, err
	}
	device.OwnerPersonaID = nil

	if err := s.devices.AppendLog(ctx, &domain.LogEntry{
		Type:           "device_unbound",
		ActorPersonaID: &personaID,
		Meta:           map[string]any{"device_id": device.ID},
	}); err != nil {
		return nil, err
	}
	return device, nil
}
