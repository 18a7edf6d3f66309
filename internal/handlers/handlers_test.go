package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridcore/internal/handlers/bank"
	"github.com/GlebRadaev/gridcore/internal/handlers/devices"
	"github.com/GlebRadaev/gridcore/internal/handlers/hack"
	"github.com/GlebRadaev/gridcore/internal/handlers/notifications"
	"github.com/GlebRadaev/gridcore/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		BankService:         bank.NewMockService(ctrl),
		HackService:         hack.NewMockService(ctrl),
		DeviceService:       devices.NewMockService(ctrl),
		NotificationService: notifications.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h)
	assert.NotNil(t, h.BankHandler)
	assert.NotNil(t, h.HackHandler)
	assert.NotNil(t, h.DeviceHandler)
	assert.NotNil(t, h.NotificationHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bankHandler := NewMockBankHandler(ctrl)
	hackHandler := NewMockHackHandler(ctrl)
	deviceHandler := NewMockDeviceHandler(ctrl)
	notificationHandler := NewMockNotificationHandler(ctrl)

	h := &Handlers{
		BankHandler:         bankHandler,
		HackHandler:         hackHandler,
		DeviceHandler:       deviceHandler,
		NotificationHandler: notificationHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	// Every API route sits behind the auth middleware, so requests without
	// a token are rejected before reaching a handler.
	tests := []struct {
		method string
		url    string
		status int
	}{
		{http.MethodGet, "/api/bank/balance", http.StatusUnauthorized},
		{http.MethodGet, "/api/bank/transactions", http.StatusUnauthorized},
		{http.MethodPost, "/api/bank/transfer", http.StatusUnauthorized},
		{http.MethodPost, "/api/bank/requests", http.StatusUnauthorized},
		{http.MethodGet, "/api/bank/token/abc", http.StatusUnauthorized},
		{http.MethodPost, "/api/bank/pay", http.StatusUnauthorized},
		{http.MethodPost, "/api/bank/subscriptions/", http.StatusUnauthorized},
		{http.MethodGet, "/api/bank/subscriptions/", http.StatusUnauthorized},
		{http.MethodDelete, "/api/bank/subscriptions/sub-1", http.StatusUnauthorized},
		{http.MethodGet, "/api/decking/targets/", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/targets/", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/hack", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/hack/s-1/complete", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/hack/s-1/cancel", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/hack/s-1/steal-funds", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/hack/s-1/steal-sin", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/hack/s-1/brick", http.StatusUnauthorized},
		{http.MethodPost, "/api/decking/hack/s-1/files/f-1", http.StatusUnauthorized},
		{http.MethodGet, "/api/spider/hosts", http.StatusUnauthorized},
		{http.MethodPost, "/api/spider/counter-hack/s-1", http.StatusUnauthorized},
		{http.MethodGet, "/api/devices/", http.StatusUnauthorized},
		{http.MethodPost, "/api/devices/bind", http.StatusUnauthorized},
		{http.MethodDelete, "/api/devices/d-1", http.StatusUnauthorized},
		{http.MethodGet, "/api/notifications/", http.StatusUnauthorized},
		{http.MethodPost, "/api/notifications/n-1/read", http.StatusUnauthorized},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}
