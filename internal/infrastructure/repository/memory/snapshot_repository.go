package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

type SnapshotRepository struct {
	mu     sync.RWMutex
	byTeam map[string]team.Snapshot
	order  []string
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{byTeam: make(map[string]team.Snapshot)}
}

func (r *SnapshotRepository) Save(_ context.Context, snap team.Snapshot) error {
	name := strings.TrimSpace(snap.TeamName)
	if name == "" {
		return crerr.New("snapshot team name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTeam[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byTeam[name] = cloneSnapshot(snap)
	return nil
}

func (r *SnapshotRepository) Load(_ context.Context, teamName string) (team.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.byTeam[strings.TrimSpace(teamName)]
	if !ok {
		return team.Snapshot{}, false, nil
	}
	return cloneSnapshot(snap), true, nil
}

func (r *SnapshotRepository) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order), nil
}

func cloneSnapshot(snap team.Snapshot) team.Snapshot {
	snap.Players = slices.Clone(snap.Players)
	return snap
}
