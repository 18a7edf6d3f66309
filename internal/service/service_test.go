package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridcore/internal/pg"
	"github.com/GlebRadaev/gridcore/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, txManager)

	assert.NotNil(t, services)
	assert.NotNil(t, services.BankService)
	assert.NotNil(t, services.HackService)
	assert.NotNil(t, services.DeviceService)
	assert.NotNil(t, services.NotificationService)
	assert.NotNil(t, services.Notifier)
	assert.NotNil(t, services.Bank)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
