package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// LogAction appends an entry to the audit log. Details are stored as JSONB.
func (s *Store) LogAction(ctx context.Context, e AuditEntry) error {
	details := []byte("{}")
	if e.Details != nil {
		var err error
		details, err = json.Marshal(e.Details)
		if err != nil {
			return fmt.Errorf("encode audit details: %w", err)
		}
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO audit_log (action, entity_type, entity_id, details,
		                        user_id, success, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		e.Action, e.EntityType, e.EntityID, details, e.UserID, e.Success,
	)
	if err != nil {
		return fmt.Errorf("log action %q: %w", e.Action, err)
	}
	return nil
}

// RecentActions returns the newest audit entries up to the given limit.
func (s *Store) RecentActions(ctx context.Context, limit int) ([]AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, action, entity_type, entity_id, details,
		        user_id, success, created_at
		 FROM audit_log
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent actions: %w", err)
	}
	defer rows.Close()

	entries := []AuditRecord{}
	for rows.Next() {
		var r AuditRecord
		var details []byte
		err := rows.Scan(&r.ID, &r.Action, &r.EntityType, &r.EntityID,
			&details, &r.UserID, &r.Success, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		if len(details) > 0 {
			_ = json.Unmarshal(details, &r.Details)
		}
		entries = append(entries, r)
	}
	return entries, rows.Err()
}

// AuditRecord is a stored audit entry as read back from the log.
type AuditRecord struct {
	ID         int64          `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Details    map[string]any `json:"details,omitempty"`
	UserID     string         `json:"userId"`
	Success    bool           `json:"success"`
	CreatedAt  time.Time      `json:"createdAt"`
}
