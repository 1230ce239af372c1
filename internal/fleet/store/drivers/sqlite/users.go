package sqlite

import (
	"context"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, organization_id, role_id, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.OrganizationID, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const userWithRoleQuery = `
SELECT u.id, u.name, u.email, u.password_hash, u.organization_id, u.role_id,
       u.created_at, u.updated_at, r.name, r.permissions
  FROM users u
  JOIN roles r ON r.id = u.role_id`

func scanUserWithRole(row interface{ Scan(...any) error }) (domain.UserWithRole, error) {
	var u domain.UserWithRole
	var permissions string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.OrganizationID, &u.RoleID, &u.CreatedAt, &u.UpdatedAt,
		&u.RoleName, &permissions)
	if err != nil {
		return domain.UserWithRole{}, err
	}
	u.Permissions = splitAndFilter(permissions)
	return u, nil
}

func (r *usersRepo) GetUserWithRole(ctx context.Context, id string) (domain.UserWithRole, error) {
	row := r.db.QueryRowContext(ctx, userWithRoleQuery+` WHERE u.id = ?`, id)
	u, err := scanUserWithRole(row)
	if err != nil {
		return domain.UserWithRole{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) listWithRole(ctx context.Context, query string, args ...any) ([]domain.UserWithRole, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserWithRole
	for rows.Next() {
		u, err := scanUserWithRole(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) ListUsersByOrganization(ctx context.Context, orgID string) ([]domain.UserWithRole, error) {
	return r.listWithRole(ctx,
		userWithRoleQuery+` WHERE u.organization_id = ? ORDER BY u.created_at`, orgID)
}

func (r *usersRepo) ListAllUsers(ctx context.Context) ([]domain.UserWithRole, error) {
	return r.listWithRole(ctx, userWithRoleQuery+` ORDER BY u.created_at`)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, organization_id, role_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.OrganizationID, u.RoleID, now, now)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, userID, roleID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET role_id = ?, updated_at = ? WHERE id = ?`,
		roleID, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountUsersByRole(ctx context.Context, roleID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role_id = ?`, roleID).Scan(&count)
	return count, err
}
