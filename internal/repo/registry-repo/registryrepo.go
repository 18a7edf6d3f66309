package registryrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridcore/internal/domain"
	"github.com/GlebRadaev/gridcore/internal/pg"
)

// Repository covers the external collaborators the economy and intrusion core
// touches: personas and hosts, the device registry, the file archive, the
// notification store and the append-only grid log.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetPersona(ctx context.Context, personaID string) (*domain.Persona, error) {
	query := `
        SELECT p.id, p.name, p.role, l.sin
        FROM personas p
        LEFT JOIN lls l ON l.persona_id = p.id
        WHERE p.id = $1
    `
	row := r.db.QueryRow(ctx, query, personaID)

	var p domain.Persona
	err := row.Scan(&p.ID, &p.Name, &p.Role, &p.SIN)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get persona", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetHost(ctx context.Context, hostID string) (*domain.Host, error) {
	query := `
        SELECT id, name, owner_persona_id, spider_persona_id
        FROM hosts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, hostID)

	var h domain.Host
	err := row.Scan(&h.ID, &h.Name, &h.OwnerPersonaID, &h.SpiderPersonaID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get host", zap.Error(err))
		return nil, err
	}
	return &h, nil
}

func (r *Repository) ListHostsBySpider(ctx context.Context, spiderPersonaID string) ([]domain.Host, error) {
	query := `
        SELECT id, name, owner_persona_id, spider_persona_id
        FROM hosts
        WHERE spider_persona_id = $1
    `
	rows, err := r.db.Query(ctx, query, spiderPersonaID)
	if err != nil {
		zap.L().Error("can't get hosts by spider", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var hosts []domain.Host
	for rows.Next() {
		var h domain.Host
		if err := rows.Scan(&h.ID, &h.Name, &h.OwnerPersonaID, &h.SpiderPersonaID); err != nil {
			zap.L().Error("can't scan host row", zap.Error(err))
			return nil, err
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

const deviceColumns = `id, code, type, owner_persona_id, status, brick_until`

func (r *Repository) ListDevices(ctx context.Context, personaID string) ([]domain.Device, error) {
	query := `
        SELECT ` + deviceColumns + `
        FROM devices
        WHERE owner_persona_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, personaID)
	if err != nil {
		zap.L().Error("can't get devices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		var d domain.Device
		if err := rows.Scan(&d.ID, &d.Code, &d.Type, &d.OwnerPersonaID, &d.Status, &d.BrickUntil); err != nil {
			zap.L().Error("can't scan device row", zap.Error(err))
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func (r *Repository) GetDevice(ctx context.Context, deviceID string) (*domain.Device, error) {
	return r.getDevice(ctx, "id", deviceID)
}

func (r *Repository) GetDeviceByCode(ctx context.Context, code string) (*domain.Device, error) {
	return r.getDevice(ctx, "code", code)
}

func (r *Repository) getDevice(ctx context.Context, column, value string) (*domain.Device, error) {
	query := `
        SELECT ` + deviceColumns + `
        FROM devices
        WHERE ` + column + ` = $1
    `
	row := r.db.QueryRow(ctx, query, value)

	var d domain.Device
	err := row.Scan(&d.ID, &d.Code, &d.Type, &d.OwnerPersonaID, &d.Status, &d.BrickUntil)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get device", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) BrickDevice(ctx context.Context, deviceID string, until time.Time) error {
	query := `
        UPDATE devices
        SET status = 'BRICKED', brick_until = $2
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, deviceID, until)
	if err != nil {
		zap.L().Error("can't brick device", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetDeviceOwner(ctx context.Context, deviceID string, ownerPersonaID *string) error {
	query := `
        UPDATE devices
        SET owner_persona_id = $2
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, deviceID, ownerPersonaID)
	if err != nil {
		zap.L().Error("can't set device owner", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UnbrickExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE devices
        SET status = 'ACTIVE', brick_until = NULL
        WHERE status = 'BRICKED' AND brick_until < $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't unbrick devices", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) GetFile(ctx context.Context, fileID string) (*domain.File, error) {
	query := `
        SELECT id, persona_id, host_id, name, type, content, is_public, created_at
        FROM files
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, fileID)

	var f domain.File
	err := row.Scan(&f.ID, &f.PersonaID, &f.HostID, &f.Name, &f.Type, &f.Content, &f.IsPublic, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get file", zap.Error(err))
		return nil, err
	}
	return &f, nil
}

func (r *Repository) CreateFile(ctx context.Context, f *domain.File) (*domain.File, error) {
	query := `
        INSERT INTO files (id, persona_id, host_id, name, type, content, is_public, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, query, f.ID, f.PersonaID, f.HostID, f.Name, f.Type, f.Content, f.IsPublic, f.CreatedAt)
	if err != nil {
		zap.L().Error("can't create file", zap.Error(err))
		return nil, err
	}
	return f, nil
}

func (r *Repository) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (id, persona_id, type, payload, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, query, n.ID, n.PersonaID, n.Type, n.Payload, n.CreatedAt)
	if err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (r *Repository) ListNotifications(ctx context.Context, personaID string, limit int) ([]domain.Notification, error) {
	query := `
        SELECT id, persona_id, type, payload, read_at, created_at
        FROM notifications
        WHERE persona_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, personaID, limit)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.PersonaID, &n.Type, &n.Payload, &n.ReadAt, &n.CreatedAt); err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, notificationID, personaID string, now time.Time) error {
	query := `
        UPDATE notifications
        SET read_at = $3
        WHERE id = $1 AND persona_id = $2
    `
	_, err := r.db.Exec(ctx, query, notificationID, personaID, now)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AppendLog(ctx context.Context, e *domain.LogEntry) error {
	query := `
        INSERT INTO grid_log (id, type, actor_persona_id, target_persona_id, target_host_id, meta)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, uuid.NewString(), e.Type, e.ActorPersonaID, e.TargetPersonaID, e.TargetHostID, e.Meta)
	if err != nil {
		zap.L().Error("can't append grid log entry", zap.Error(err))
		return err
	}
	return nil
}
