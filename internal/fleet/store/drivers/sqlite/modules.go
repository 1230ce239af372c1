package sqlite

import (
	"context"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
)

type modulesRepo struct {
	db dbtx
}

const moduleColumns = `id, name, description, created_at`

func scanModule(row interface{ Scan(...any) error }) (domain.Module, error) {
	var m domain.Module
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt)
	return m, err
}

func (r *modulesRepo) GetModuleByID(ctx context.Context, id string) (domain.Module, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+` FROM modules WHERE id = ?`, id)
	m, err := scanModule(row)
	if err != nil {
		return domain.Module{}, mapNotFound(err)
	}
	return m, nil
}

func (r *modulesRepo) GetModuleByName(ctx context.Context, name string) (domain.Module, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+` FROM modules WHERE name = ?`, name)
	m, err := scanModule(row)
	if err != nil {
		return domain.Module{}, mapNotFound(err)
	}
	return m, nil
}

func (r *modulesRepo) ListModules(ctx context.Context) ([]domain.Module, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+moduleColumns+` FROM modules ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []domain.Module
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (r *modulesRepo) CreateModule(ctx context.Context, m domain.Module) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO modules (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		m.ID, m.Name, m.Description, time.Now().UTC())
	return mapConstraint(err)
}
