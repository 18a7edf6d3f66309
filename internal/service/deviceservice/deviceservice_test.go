package deviceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridcore/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockDeviceRepo) {
	ctrl := gomock.NewController(t)
	devices := NewMockDeviceRepo(ctrl)
	service := New(devices)
	defer ctrl.Finish()
	return service, devices
}

func strPtr(s string) *string { return &s }

func TestListDevices(t *testing.T) {
	service, devices := NewMock(t)

	devices.EXPECT().ListDevices(gomock.Any(), "p-1").Return([]domain.Device{
		{ID: "dev-1", Code: "CMLK-4451", Type: "COMMLINK", OwnerPersonaID: strPtr("p-1"), Status: domain.DeviceActive},
	}, nil)

	result, err := service.ListDevices(context.Background(), "p-1")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBindDevice(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(devices *MockDeviceRepo)
		expectedError error
	}{
		{
			name: "Bind an unowned device",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDeviceByCode(gomock.Any(), "CMLK-4451").
					Return(&domain.Device{ID: "dev-1", Code: "CMLK-4451", Type: "COMMLINK", Status: domain.DeviceActive}, nil)
				devices.EXPECT().SetDeviceOwner(gomock.Any(), "dev-1", strPtr("p-1")).Return(nil)
				devices.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Unknown code",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDeviceByCode(gomock.Any(), "CMLK-4451").Return(nil, nil)
			},
			expectedError: ErrDeviceNotFound,
		},
		{
			name: "Device already owned",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDeviceByCode(gomock.Any(), "CMLK-4451").
					Return(&domain.Device{ID: "dev-1", Code: "CMLK-4451", Type: "COMMLINK", OwnerPersonaID: strPtr("p-2"), Status: domain.DeviceActive}, nil)
			},
			expectedError: ErrAlreadyBound,
		},
		{
			name: "Repository error",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDeviceByCode(gomock.Any(), "CMLK-4451").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, devices := NewMock(t)
			tt.prepareMock(devices)

			device, err := service.BindDevice(context.Background(), "p-1", "CMLK-4451")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, strPtr("p-1"), device.OwnerPersonaID)
		})
	}
}

func TestUnbindDevice(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(devices *MockDeviceRepo)
		expectedError error
	}{
		{
			name: "Unbind own device",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDevice(gomock.Any(), "dev-1").
					Return(&domain.Device{ID: "dev-1", Code: "CMLK-4451", Type: "COMMLINK", OwnerPersonaID: strPtr("p-1"), Status: domain.DeviceActive}, nil)
				devices.EXPECT().SetDeviceOwner(gomock.Any(), "dev-1", nil).Return(nil)
				devices.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Unknown device",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDevice(gomock.Any(), "dev-1").Return(nil, nil)
			},
			expectedError: ErrDeviceNotFound,
		},
		{
			name: "Device owned by someone else",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDevice(gomock.Any(), "dev-1").
					Return(&domain.Device{ID: "dev-1", Code: "CMLK-4451", Type: "COMMLINK", OwnerPersonaID: strPtr("p-2"), Status: domain.DeviceActive}, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name: "Unowned device",
			prepareMock: func(devices *MockDeviceRepo) {
				devices.EXPECT().GetDevice(gomock.Any(), "dev-1").
					Return(&domain.Device{ID: "dev-1", Code: "CMLK-4451", Type: "COMMLINK", Status: domain.DeviceActive}, nil)
			},
			expectedError: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, devices := NewMock(t)
			tt.prepareMock(devices)

			device, err := service.UnbindDevice(context.Background(), "p-1", "dev-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Nil(t, device.OwnerPersonaID)
		})
	}
}
