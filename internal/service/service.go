package service

import (
	"github.com/GlebRadaev/gridcore/internal/handlers/bank"
	"github.com/GlebRadaev/gridcore/internal/handlers/devices"
	"github.com/GlebRadaev/gridcore/internal/handlers/hack"
	"github.com/GlebRadaev/gridcore/internal/handlers/notifications"
	"github.com/GlebRadaev/gridcore/internal/notify"
	"github.com/GlebRadaev/gridcore/internal/pg"
	"github.com/GlebRadaev/gridcore/internal/repo"
	bankservice "github.com/GlebRadaev/gridcore/internal/service/bankservice"
	deviceservice "github.com/GlebRadaev/gridcore/internal/service/deviceservice"
	hackservice "github.com/GlebRadaev/gridcore/internal/service/hackservice"
)

type Services struct {
	BankService         bank.Service
	HackService         hack.Service
	DeviceService       devices.Service
	NotificationService notifications.Service

	// Notifier is shared with the scheduler so sweep outcomes land in the
	// same notification feed.
	Notifier *notify.Service

	// Bank is the concrete ledger; the scheduler needs ChargeSubscription,
	// which the HTTP surface does not expose.
	Bank *bankservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	notificationService := notify.New(repo.Registry)
	bankService := bankservice.New(repo.Wallet, repo.Subscription, repo.Payment, repo.Registry, notificationService, txManager)
	hackService := hackservice.New(repo.Hack, repo.Wallet, repo.Registry, notificationService, txManager)
	deviceService := deviceservice.New(repo.Registry)

	return &Services{
		BankService:         bankService,
		HackService:         hackService,
		DeviceService:       deviceService,
		NotificationService: notificationService,
		Notifier:            notificationService,
		Bank:                bankService,
	}
}
