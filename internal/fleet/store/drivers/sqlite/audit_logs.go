package sqlite

import (
	"context"
	"encoding/json"

	"github.com/agi-health/medfleet/internal/fleet/domain"
)

type auditLogsRepo struct {
	db dbtx
}

func (r *auditLogsRepo) CreateAuditEntry(ctx context.Context, e domain.AuditEntry) error {
	details := "{}"
	if len(e.Details) > 0 {
		raw, err := json.Marshal(e.Details)
		if err != nil {
			return err
		}
		details = string(raw)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, user_id, organization_id, action, target_type, target_id, details, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.OrganizationID, e.Action, e.TargetType, e.TargetID, details, e.Timestamp)
	return err
}

func (r *auditLogsRepo) QueryAuditEntries(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	query := `SELECT id, user_id, organization_id, action, target_type, target_id, details, timestamp
	            FROM audit_logs WHERE 1=1`
	var args []any
	if f.OrganizationID != "" {
		query += ` AND organization_id = ?`
		args = append(args, f.OrganizationID)
	}
	if f.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, f.UserID)
	}
	if f.Action != "" {
		query += ` AND action = ?`
		args = append(args, f.Action)
	}
	if f.TargetType != "" {
		query += ` AND target_type = ?`
		args = append(args, f.TargetType)
	}
	if f.From != nil {
		query += ` AND timestamp >= ?`
		args = append(args, *f.From)
	}
	if f.To != nil {
		query += ` AND timestamp <= ?`
		args = append(args, *f.To)
	}
	query += ` ORDER BY timestamp DESC`

	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var details string
		err := rows.Scan(&e.ID, &e.UserID, &e.OrganizationID, &e.Action,
			&e.TargetType, &e.TargetID, &details, &e.Timestamp)
		if err != nil {
			return nil, err
		}
		if details != "" && details != "{}" {
			if err := json.Unmarshal([]byte(details), &e.Details); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
