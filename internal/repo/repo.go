package repo

import (
	"github.com/GlebRadaev/gridcore/internal/pg"
	hackrepo "github.com/GlebRadaev/gridcore/internal/repo/hack-repo"
	paymentrepo "github.com/GlebRadaev/gridcore/internal/repo/payment-repo"
	registryrepo "github.com/GlebRadaev/gridcore/internal/repo/registry-repo"
	subscriptionrepo "github.com/GlebRadaev/gridcore/internal/repo/subscription-repo"
	walletrepo "github.com/GlebRadaev/gridcore/internal/repo/wallet-repo"
)

type Repositories struct {
	Wallet       *walletrepo.Repository
	Subscription *subscriptionrepo.Repository
	Payment      *paymentrepo.Repository
	Hack         *hackrepo.Repository
	Registry     *registryrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Wallet:       walletrepo.New(conn),
		Subscription: subscriptionrepo.New(conn),
		Payment:      paymentrepo.New(conn),
		Hack:         hackrepo.New(conn),
		Registry:     registryrepo.New(conn),
	}
}
