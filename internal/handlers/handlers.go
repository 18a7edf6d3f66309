package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gridcore/docs"
	bankhandlers "github.com/GlebRadaev/gridcore/internal/handlers/bank"
	devicehandlers "github.com/GlebRadaev/gridcore/internal/handlers/devices"
	hackhandlers "github.com/GlebRadaev/gridcore/internal/handlers/hack"
	notificationhandlers "github.com/GlebRadaev/gridcore/internal/handlers/notifications"
	"github.com/GlebRadaev/gridcore/internal/service"
	"github.com/GlebRadaev/gridcore/pkg/auth"
)

type BankHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	CreatePaymentRequest(w http.ResponseWriter, r *http.Request)
	ResolveToken(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	CreateSubscription(w http.ResponseWriter, r *http.Request)
	GetSubscriptions(w http.ResponseWriter, r *http.Request)
	CancelSubscription(w http.ResponseWriter, r *http.Request)
}

type HackHandler interface {
	GetTargets(w http.ResponseWriter, r *http.Request)
	AddTarget(w http.ResponseWriter, r *http.Request)
	StartHack(w http.ResponseWriter, r *http.Request)
	CompleteHack(w http.ResponseWriter, r *http.Request)
	CancelHack(w http.ResponseWriter, r *http.Request)
	StealFunds(w http.ResponseWriter, r *http.Request)
	StealSIN(w http.ResponseWriter, r *http.Request)
	BrickDevice(w http.ResponseWriter, r *http.Request)
	DownloadFile(w http.ResponseWriter, r *http.Request)
	GetSpiderHosts(w http.ResponseWriter, r *http.Request)
	CounterHack(w http.ResponseWriter, r *http.Request)
}

type DeviceHandler interface {
	GetDevices(w http.ResponseWriter, r *http.Request)
	BindDevice(w http.ResponseWriter, r *http.Request)
	UnbindDevice(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BankHandler         BankHandler
	HackHandler         HackHandler
	DeviceHandler       DeviceHandler
	NotificationHandler NotificationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		BankHandler:         bankhandlers.New(s.BankService),
		HackHandler:         hackhandlers.New(s.HackService),
		DeviceHandler:       devicehandlers.New(s.DeviceService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/api/bank", func(r chi.Router) {
			r.Get("/balance", h.BankHandler.GetBalance)
			r.Get("/transactions", h.BankHandler.GetTransactions)
			r.Post("/transfer", h.BankHandler.Transfer)
			r.Post("/requests", h.BankHandler.CreatePaymentRequest)
			r.Get("/token/{token}", h.BankHandler.ResolveToken)
			r.Post("/pay", h.BankHandler.ConfirmPayment)
			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/", h.BankHandler.CreateSubscription)
				r.Get("/", h.BankHandler.GetSubscriptions)
				r.Delete("/{id}", h.BankHandler.CancelSubscription)
			})
		})

		r.Route("/api/decking", func(r chi.Router) {
			r.Route("/targets", func(r chi.Router) {
				r.Get("/", h.HackHandler.GetTargets)
				r.Post("/", h.HackHandler.AddTarget)
			})
			r.Post("/hack", h.HackHandler.StartHack)
			r.Route("/hack/{id}", func(r chi.Router) {
				r.Post("/complete", h.HackHandler.CompleteHack)
				r.Post("/cancel", h.HackHandler.CancelHack)
				r.Post("/steal-funds", h.HackHandler.StealFunds)
				r.Post("/steal-sin", h.HackHandler.StealSIN)
				r.Post("/brick", h.HackHandler.BrickDevice)
				r.Post("/files/{fileId}", h.HackHandler.DownloadFile)
			})
		})

		r.Route("/api/spider", func(r chi.Router) {
			r.Get("/hosts", h.HackHandler.GetSpiderHosts)
			r.Post("/counter-hack/{id}", h.HackHandler.CounterHack)
		})

		r.Route("/api/devices", func(r chi.Router) {
			r.Get("/", h.DeviceHandler.GetDevices)
			r.Post("/bind", h.DeviceHandler.BindDevice)
			r.Delete("/{id}", h.DeviceHandler.UnbindDevice)
		})

		r.Route("/api/notifications", func(r chi.Router) {
			r.Get("/", h.NotificationHandler.GetNotifications)
			r.Post("/{id}/read", h.NotificationHandler.MarkRead)
		})
	})

	return r
}
