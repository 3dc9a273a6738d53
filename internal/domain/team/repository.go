package team

import "context"

// SnapshotRepository describes snapshot persistence needs from use cases.
// Snapshots are keyed by team name.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context, teamName string) (Snapshot, bool, error)
	List(ctx context.Context) ([]string, error)
}
