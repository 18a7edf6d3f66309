package repo

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	hackrepo "github.com/GlebRadaev/gridcore/internal/repo/hack-repo"
	paymentrepo "github.com/GlebRadaev/gridcore/internal/repo/payment-repo"
	registryrepo "github.com/GlebRadaev/gridcore/internal/repo/registry-repo"
	subscriptionrepo "github.com/GlebRadaev/gridcore/internal/repo/subscription-repo"
	walletrepo "github.com/GlebRadaev/gridcore/internal/repo/wallet-repo"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := New(mockDB)

	assert.NotNil(t, repos)
	assert.IsType(t, &walletrepo.Repository{}, repos.Wallet)
	assert.IsType(t, &subscriptionrepo.Repository{}, repos.Subscription)
	assert.IsType(t, &paymentrepo.Repository{}, repos.Payment)
	assert.IsType(t, &hackrepo.Repository{}, repos.Hack)
	assert.IsType(t, &registryrepo.Repository{}, repos.Registry)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
