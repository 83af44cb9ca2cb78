package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-workspace/internal/types"
)

// SnapshotInfo describes one stored snapshot.
type SnapshotInfo struct {
	Name      string    `json:"name"`
	SavedAt   time.Time `json:"savedAt"`
	Documents int       `json:"documents"`
}

// SaveSnapshot stores the workspace state under the given name, replacing
// any previous snapshot with that name.
func (db *DB) SaveSnapshot(ctx context.Context, name string, state types.WorkspaceState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace state: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO workspace_snapshots (name, state)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET state = $2, saved_at = NOW()`,
		name, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}
	return nil
}

// LoadSnapshot retrieves the workspace state stored under the given name.
// The second return value is false when no snapshot with that name exists.
func (db *DB) LoadSnapshot(ctx context.Context, name string) (types.WorkspaceState, bool, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT state FROM workspace_snapshots WHERE name = $1`,
		name,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.WorkspaceState{}, false, nil
		}
		return types.WorkspaceState{}, false, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}

	var state types.WorkspaceState
	if err := json.Unmarshal(payload, &state); err != nil {
		return types.WorkspaceState{}, false, fmt.Errorf("failed to unmarshal snapshot %s: %w", name, err)
	}
	return state, true, nil
}

// ListSnapshots returns every stored snapshot, newest first.
func (db *DB) ListSnapshots(ctx context.Context) ([]SnapshotInfo, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, saved_at, jsonb_array_length(state->'resumes')
		 FROM workspace_snapshots
		 ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.Name, &info.SavedAt, &info.Documents); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return out, nil
}

// DeleteSnapshot removes the snapshot with the given name, if present.
func (db *DB) DeleteSnapshot(ctx context.Context, name string) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM workspace_snapshots WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", name, err)
	}
	return nil
}
