package registryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gridcore/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func strPtr(s string) *string { return &s }

func TestRepository_GetPersona(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT p.id, p.name, p.role, l.sin
        FROM personas p
        LEFT JOIN lls l ON l.persona_id = p.id
        WHERE p.id = $1
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Persona
	}{
		{
			name: "Persona with a SIN",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "role", "sin"}).
					AddRow("p-1", "Case", domain.RolePlayer, strPtr("451023"))
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-1").
					WillReturnRows(rows)
			},
			result: &domain.Persona{ID: "p-1", Name: "Case", Role: domain.RolePlayer, SIN: strPtr("451023")},
		},
		{
			name: "Persona without a SIN",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "role", "sin"}).
					AddRow("p-2", "Wintermute", domain.RoleSpider, nil)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-2").
					WillReturnRows(rows)
			},
			result: &domain.Persona{ID: "p-2", Name: "Wintermute", Role: domain.RoleSpider},
		},
		{
			name: "Unknown persona returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-99").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			id := "p-99"
			if tt.result != nil {
				id = tt.result.ID
			}
			result, err := repo.GetPersona(context.Background(), id)

			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetHost(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT id, name, owner_persona_id, spider_persona_id
        FROM hosts
        WHERE id = $1
    `
	rows := pgxmock.NewRows([]string{"id", "name", "owner_persona_id", "spider_persona_id"}).
		AddRow("h-1", "Golden Dragon mainframe", strPtr("p-owner"), strPtr("p-spider"))
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("h-1").
		WillReturnRows(rows)

	host, err := repo.GetHost(context.Background(), "h-1")
	assert.NoError(t, err)
	assert.Equal(t, "Golden Dragon mainframe", host.Name)
	assert.Equal(t, strPtr("p-spider"), host.SpiderPersonaID)
}

func TestRepository_ListHostsBySpider(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT id, name, owner_persona_id, spider_persona_id
        FROM hosts
        WHERE spider_persona_id = $1
    `
	rows := pgxmock.NewRows([]string{"id", "name", "owner_persona_id", "spider_persona_id"}).
		AddRow("h-1", "Golden Dragon mainframe", strPtr("p-owner"), strPtr("p-spider")).
		AddRow("h-2", "Chiba clinic grid", nil, strPtr("p-spider"))
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("p-spider").
		WillReturnRows(rows)

	hosts, err := repo.ListHostsBySpider(context.Background(), "p-spider")
	assert.NoError(t, err)
	assert.Len(t, hosts, 2)
}

func TestRepository_GetDeviceByCode(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT id, code, type, owner_persona_id, status, brick_until
        FROM devices
        WHERE code = $1
    `
	rows := pgxmock.NewRows([]string{"id", "code", "type", "owner_persona_id", "status", "brick_until"}).
		AddRow("dev-1", "CMLK-4451", "COMMLINK", nil, domain.DeviceActive, nil)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("CMLK-4451").
		WillReturnRows(rows)

	device, err := repo.GetDeviceByCode(context.Background(), "CMLK-4451")
	assert.NoError(t, err)
	assert.Equal(t, "dev-1", device.ID)
	assert.Nil(t, device.OwnerPersonaID)
}

func TestRepository_BrickDevice(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        UPDATE devices
        SET status = 'BRICKED', brick_until = $2
        WHERE id = $1
    `
	until := time.Now().Add(5 * time.Minute)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("dev-1", until).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.BrickDevice(context.Background(), "dev-1", until)
	assert.NoError(t, err)
}

func TestRepository_UnbrickExpired(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        UPDATE devices
        SET status = 'ACTIVE', brick_until = NULL
        WHERE status = 'BRICKED' AND brick_until < $1
    `
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	count, err := repo.UnbrickExpired(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_CreateFile(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        INSERT INTO files (id, persona_id, host_id, name, type, content, is_public, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(pgxmock.AnyArg(), strPtr("p-1"), nil, "SIN_451023.json", "application/json", `{"sin":"451023"}`, false, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	file, err := repo.CreateFile(context.Background(), &domain.File{
		PersonaID: strPtr("p-1"),
		Name:      "SIN_451023.json",
		Type:      "application/json",
		Content:   `{"sin":"451023"}`,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, file.ID)
}

func TestRepository_ListNotifications(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT id, persona_id, type, payload, read_at, created_at
        FROM notifications
        WHERE persona_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns notifications",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "persona_id", "type", "payload", "read_at", "created_at"}).
					AddRow("n-1", "p-1", "balance_update", map[string]any{"balance": float64(500)}, nil, now).
					AddRow("n-2", "p-1", "hack_started", map[string]any(nil), &now, now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-1", 50).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-1", 50).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListNotifications(context.Background(), "p-1", 50)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_AppendLog(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        INSERT INTO grid_log (id, type, actor_persona_id, target_persona_id, target_host_id, meta)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	actor := "p-1"

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(pgxmock.AnyArg(), "transfer", &actor, nil, nil, map[string]any{"amount": int64(100)}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.AppendLog(context.Background(), &domain.LogEntry{
		Type:           "transfer",
		ActorPersonaID: &actor,
		Meta:           map[string]any{"amount": int64(100)},
	})
	assert.NoError(t, err)
}
