package cache

import (
	"context"
	"slices"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/team"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
)

const (
	snapshotKeyPrefix = "snapshot:name:"
	snapshotListKey   = "snapshot:list"
)

// SnapshotRepository is a read-through cache in front of a slower snapshot store.
// Writes go straight to the store and evict what they touch.
type SnapshotRepository struct {
	next  team.SnapshotRepository
	cache *basecache.Store
}

func NewSnapshotRepository(next team.SnapshotRepository, cache *basecache.Store) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: cache}
}

func (r *SnapshotRepository) Save(ctx context.Context, snap team.Snapshot) error {
	if err := r.next.Save(ctx, snap); err != nil {
		return err
	}
	r.cache.Delete(ctx, snapshotKey(snap.TeamName))
	r.cache.Delete(ctx, snapshotListKey)
	return nil
}

func (r *SnapshotRepository) Load(ctx context.Context, teamName string) (team.Snapshot, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, snapshotKey(teamName), func(ctx context.Context) (any, error) {
		snap, exists, err := r.next.Load(ctx, teamName)
		if err != nil {
			return nil, err
		}
		return cachedSnapshot{value: cloneSnapshot(snap), exists: exists}, nil
	})
	if err != nil {
		return team.Snapshot{}, false, err
	}

	cached, _ := v.(cachedSnapshot)
	return cloneSnapshot(cached.value), cached.exists, nil
}

func (r *SnapshotRepository) List(ctx context.Context) ([]string, error) {
	v, err := r.cache.GetOrLoad(ctx, snapshotListKey, func(ctx context.Context) (any, error) {
		names, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return slices.Clone(names), nil
	})
	if err != nil {
		return nil, err
	}

	names, _ := v.([]string)
	return slices.Clone(names), nil
}

type cachedSnapshot struct {
	value  team.Snapshot
	exists bool
}

func snapshotKey(teamName string) string {
	return snapshotKeyPrefix + strings.TrimSpace(teamName)
}

func cloneSnapshot(snap team.Snapshot) team.Snapshot {
	snap.Players = slices.Clone(snap.Players)
	return snap
}
