package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
)

type equipmentRepo struct {
	db dbtx
}

const equipmentColumns = `id, organization_id, module_id, license_key, status, location,
	enrolled_at, last_seen, created_at, updated_at`

func scanEquipment(row interface{ Scan(...any) error }) (domain.Equipment, error) {
	var e domain.Equipment
	var status string
	var enrolledAt, lastSeen sql.NullTime
	err := row.Scan(&e.ID, &e.OrganizationID, &e.ModuleID, &e.LicenseKey, &status,
		&e.Location, &enrolledAt, &lastSeen, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Equipment{}, err
	}
	e.Status = domain.EquipmentStatus(status)
	e.EnrolledAt = mapNullTimePtr(enrolledAt)
	e.LastSeen = mapNullTimePtr(lastSeen)
	return e, nil
}

func (r *equipmentRepo) GetEquipmentByID(ctx context.Context, id string) (domain.Equipment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`, id)
	e, err := scanEquipment(row)
	if err != nil {
		return domain.Equipment{}, mapNotFound(err)
	}
	return e, nil
}

func (r *equipmentRepo) GetEquipmentByLicenseKey(ctx context.Context, licenseKey string) (domain.Equipment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE license_key = ?`, licenseKey)
	e, err := scanEquipment(row)
	if err != nil {
		return domain.Equipment{}, mapNotFound(err)
	}
	return e, nil
}

func (r *equipmentRepo) list(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, e)
	}
	return units, rows.Err()
}

func (r *equipmentRepo) ListEquipmentByOrganization(ctx context.Context, orgID string) ([]domain.Equipment, error) {
	return r.list(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE organization_id = ? ORDER BY created_at`, orgID)
}

func (r *equipmentRepo) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return r.list(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY created_at`)
}

func (r *equipmentRepo) CreateEquipment(ctx context.Context, e domain.Equipment) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO equipment (id, organization_id, module_id, license_key, status, location,
		   enrolled_at, last_seen, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.OrganizationID, e.ModuleID, e.LicenseKey, string(e.Status), e.Location,
		mapOptionalTime(e.EnrolledAt), mapOptionalTime(e.LastSeen), now, now)
	return mapConstraint(err)
}

func (r *equipmentRepo) UpdateEquipment(ctx context.Context, id string, upd domain.EquipmentUpdate) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipment SET
		   license_key = COALESCE(?, license_key),
		   module_id   = COALESCE(?, module_id),
		   location    = COALESCE(?, location),
		   updated_at  = ?
		 WHERE id = ?`,
		upd.LicenseKey, upd.ModuleID, upd.Location, time.Now().UTC(), id)
	if err != nil {
		return mapConstraint(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *equipmentRepo) UpdateEquipmentStatus(ctx context.Context, id string, status domain.EquipmentStatus, enrolledAt *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipment SET
		   status      = ?,
		   enrolled_at = COALESCE(?, enrolled_at),
		   updated_at  = ?
		 WHERE id = ?`,
		string(status), mapOptionalTime(enrolledAt), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *equipmentRepo) TouchLastSeen(ctx context.Context, id string, status domain.EquipmentStatus) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipment SET status = ?, last_seen = ?, updated_at = ? WHERE id = ?`,
		string(status), now, now, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *equipmentRepo) DeleteEquipment(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *equipmentRepo) QueryEquipmentReport(ctx context.Context, f domain.EquipmentFilter) ([]domain.EquipmentWithNames, error) {
	query := `
SELECT e.id, e.organization_id, e.module_id, e.license_key, e.status, e.location,
       e.enrolled_at, e.last_seen, e.created_at, e.updated_at, o.name, m.name
  FROM equipment e
  JOIN organizations o ON o.id = e.organization_id
  JOIN modules m ON m.id = e.module_id
 WHERE 1=1`
	var args []any
	if f.OrganizationID != "" {
		query += ` AND e.organization_id = ?`
		args = append(args, f.OrganizationID)
	}
	if f.ModuleID != "" {
		query += ` AND e.module_id = ?`
		args = append(args, f.ModuleID)
	}
	if f.Status != "" {
		query += ` AND e.status = ?`
		args = append(args, string(f.Status))
	}
	if f.Location != "" {
		query += ` AND e.location = ?`
		args = append(args, f.Location)
	}
	query += ` ORDER BY e.created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EquipmentWithNames
	for rows.Next() {
		var e domain.EquipmentWithNames
		var status string
		var enrolledAt, lastSeen sql.NullTime
		err := rows.Scan(&e.ID, &e.OrganizationID, &e.ModuleID, &e.LicenseKey, &status,
			&e.Location, &enrolledAt, &lastSeen, &e.CreatedAt, &e.UpdatedAt,
			&e.OrganizationName, &e.ModuleName)
		if err != nil {
			return nil, err
		}
		e.Status = domain.EquipmentStatus(status)
		e.EnrolledAt = mapNullTimePtr(enrolledAt)
		e.LastSeen = mapNullTimePtr(lastSeen)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *equipmentRepo) CountEquipmentByStatus(ctx context.Context, orgID string) (map[domain.EquipmentStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM equipment`
	var args []any
	if orgID != "" {
		query += ` WHERE organization_id = ?`
		args = append(args, orgID)
	}
	query += ` GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.EquipmentStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[domain.EquipmentStatus(status)] = count
	}
	return counts, rows.Err()
}

func (r *equipmentRepo) CountActiveEquipment(ctx context.Context, orgID, moduleID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM equipment
		  WHERE organization_id = ? AND module_id = ? AND status != ?`,
		orgID, moduleID, string(domain.StatusPendingApproval)).Scan(&count)
	return count, err
}
