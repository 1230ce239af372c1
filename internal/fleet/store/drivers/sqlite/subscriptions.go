package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
)

type subscriptionsRepo struct {
	db dbtx
}

const subscriptionColumns = `id, organization_id, start_date, end_date, is_active, created_at, updated_at`

func scanSubscription(row interface{ Scan(...any) error }) (domain.Subscription, error) {
	var s domain.Subscription
	var endDate sql.NullTime
	err := row.Scan(&s.ID, &s.OrganizationID, &s.StartDate, &endDate,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Subscription{}, err
	}
	s.EndDate = mapNullTimePtr(endDate)
	return s, nil
}

func (r *subscriptionsRepo) loadModules(ctx context.Context, subID string) ([]domain.SubscriptionModule, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT module_id, quantity FROM subscription_modules WHERE subscription_id = ?`, subID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []domain.SubscriptionModule
	for rows.Next() {
		var m domain.SubscriptionModule
		if err := rows.Scan(&m.ModuleID, &m.Quantity); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (r *subscriptionsRepo) get(ctx context.Context, query string, arg string) (domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	s, err := scanSubscription(row)
	if err != nil {
		return domain.Subscription{}, mapNotFound(err)
	}
	if s.Modules, err = r.loadModules(ctx, s.ID); err != nil {
		return domain.Subscription{}, err
	}
	return s, nil
}

func (r *subscriptionsRepo) GetSubscriptionByID(ctx context.Context, id string) (domain.Subscription, error) {
	return r.get(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = ?`, id)
}

func (r *subscriptionsRepo) GetSubscriptionByOrganization(ctx context.Context, orgID string) (domain.Subscription, error) {
	return r.get(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE organization_id = ?`, orgID)
}

func (r *subscriptionsRepo) CreateSubscription(ctx context.Context, s domain.Subscription) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subscriptions (id, organization_id, start_date, end_date, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.OrganizationID, s.StartDate, mapOptionalTime(s.EndDate), s.IsActive, now, now)
	if err != nil {
		return mapConstraint(err)
	}
	return r.replaceModules(ctx, s.ID, s.Modules)
}

func (r *subscriptionsRepo) ReplaceSubscription(ctx context.Context, s domain.Subscription) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET start_date = ?, end_date = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		s.StartDate, mapOptionalTime(s.EndDate), s.IsActive, time.Now().UTC(), s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return r.replaceModules(ctx, s.ID, s.Modules)
}

func (r *subscriptionsRepo) replaceModules(ctx context.Context, subID string, modules []domain.SubscriptionModule) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM subscription_modules WHERE subscription_id = ?`, subID); err != nil {
		return err
	}
	for _, m := range modules {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO subscription_modules (subscription_id, module_id, quantity) VALUES (?, ?, ?)`,
			subID, m.ModuleID, m.Quantity); err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}
