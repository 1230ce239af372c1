package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
)

type organizationsRepo struct {
	db dbtx
}

const orgColumns = `id, name, address, logo_url, primary_color, subscription_id, created_at, updated_at`

func (r *organizationsRepo) scanOrganization(row interface{ Scan(...any) error }) (domain.Organization, error) {
	var o domain.Organization
	var subID sql.NullString
	err := row.Scan(&o.ID, &o.Name, &o.Address, &o.LogoURL, &o.PrimaryColor,
		&subID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Organization{}, err
	}
	o.SubscriptionID = mapNullString(subID)
	return o, nil
}

func (r *organizationsRepo) loadLocations(ctx context.Context, orgID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM organization_locations WHERE organization_id = ? ORDER BY position`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		locations = append(locations, name)
	}
	return locations, rows.Err()
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orgColumns+` FROM organizations WHERE id = ?`, id)

	o, err := r.scanOrganization(row)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}

	if o.Locations, err = r.loadLocations(ctx, o.ID); err != nil {
		return domain.Organization{}, err
	}
	return o, nil
}

func (r *organizationsRepo) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orgColumns+` FROM organizations ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		o, err := r.scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orgs {
		if orgs[i].Locations, err = r.loadLocations(ctx, orgs[i].ID); err != nil {
			return nil, err
		}
	}
	return orgs, nil
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, address, logo_url, primary_color, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Address, o.LogoURL, o.PrimaryColor, now, now)
	if err != nil {
		return mapConstraint(err)
	}
	return r.replaceLocations(ctx, o.ID, o.Locations)
}

func (r *organizationsRepo) UpdateOrganization(ctx context.Context, id string, upd domain.OrganizationUpdate) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE organizations SET
		   name          = COALESCE(?, name),
		   address       = COALESCE(?, address),
		   logo_url      = COALESCE(?, logo_url),
		   primary_color = COALESCE(?, primary_color),
		   updated_at    = ?
		 WHERE id = ?`,
		upd.Name, upd.Address, upd.LogoURL, upd.PrimaryColor, time.Now().UTC(), id)
	if err != nil {
		return mapConstraint(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}

	if upd.Locations != nil {
		return r.replaceLocations(ctx, id, upd.Locations)
	}
	return nil
}

func (r *organizationsRepo) replaceLocations(ctx context.Context, orgID string, locations []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM organization_locations WHERE organization_id = ?`, orgID); err != nil {
		return err
	}
	for i, name := range locations {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO organization_locations (organization_id, name, position) VALUES (?, ?, ?)`,
			orgID, name, i); err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *organizationsRepo) SetSubscriptionID(ctx context.Context, orgID, subscriptionID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE organizations SET subscription_id = ?, updated_at = ? WHERE id = ?`,
		subscriptionID, time.Now().UTC(), orgID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *organizationsRepo) CountOrganizations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&count)
	return count, err
}
