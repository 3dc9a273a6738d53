package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const defaultSnapshotWorkers = 4

type SnapshotSaveResult struct {
	Saved  []string          `json:"saved"`
	Failed map[string]string `json:"failed,omitempty"`
}

type SnapshotService struct {
	registry *Registry
	repo     team.SnapshotRepository
	workers  int
	logger   *logging.Logger
}

func NewSnapshotService(registry *Registry, repo team.SnapshotRepository, workers int, logger *logging.Logger) *SnapshotService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultSnapshotWorkers
	}
	return &SnapshotService{
		registry: registry,
		repo:     repo,
		workers:  workers,
		logger:   logger,
	}
}

func (s *SnapshotService) Save(ctx context.Context, teamName string) (team.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Save", teamAttr(teamName))
	defer span.End()

	if s.repo == nil {
		return team.Snapshot{}, fmt.Errorf("%w: snapshot store is not configured", ErrDependencyUnavailable)
	}

	var snap team.Snapshot
	err := s.registry.view(func(*league.League) error {
		t, _, err := s.registry.lookup(teamName)
		if err != nil {
			return err
		}
		snap = team.TakeSnapshot(t)
		return nil
	})
	if err != nil {
		return team.Snapshot{}, recordSpanError(span, err)
	}

	if err := s.repo.Save(ctx, snap); err != nil {
		s.logger.WarnContext(ctx, "save snapshot failed", "team", teamName, "error", err)
		return team.Snapshot{}, recordSpanError(span, crerr.Wrapf(err, "save snapshot team=%s", snap.TeamName))
	}

	s.logger.InfoContext(ctx, "snapshot saved", "team", snap.TeamName, "players", len(snap.Players))
	return snap, nil
}

// Restore rebuilds a team from its last snapshot. A registered team with the same
// name is replaced in place and keeps its budget, formation and squad limit; otherwise
// the team is added.
func (s *SnapshotService) Restore(ctx context.Context, teamName string) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Restore", teamAttr(teamName))
	defer span.End()

	if s.repo == nil {
		return TeamDetail{}, fmt.Errorf("%w: snapshot store is not configured", ErrDependencyUnavailable)
	}
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return TeamDetail{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	snap, ok, err := s.repo.Load(ctx, teamName)
	if err != nil {
		return TeamDetail{}, recordSpanError(span, crerr.Wrapf(err, "load snapshot team=%s", teamName))
	}
	if !ok {
		return TeamDetail{}, fmt.Errorf("%w: snapshot team=%s", ErrNotFound, teamName)
	}

	restored, err := snap.Restore()
	if err != nil {
		return TeamDetail{}, recordSpanError(span, err)
	}
	restored.MaxPlayers = max(s.registry.cfg.TeamMaxPlayers, restored.Len())

	var out TeamDetail
	replaced := false
	err = s.registry.update(func(l *league.League) error {
		if current, ok := l.TeamByName(restored.Name); ok {
			restored.Formation = current.Formation
			restored.MaxPlayers = max(current.MaxPlayers, restored.Len())
			m, err := s.registry.replace(current, restored)
			if err != nil {
				return err
			}
			replaced = true
			out = newTeamDetail(restored, m)
			return nil
		}

		m, err := s.registry.enroll(restored, s.registry.cfg.ManagerBudget)
		if err != nil {
			return err
		}
		out = newTeamDetail(restored, m)
		return nil
	})
	if err != nil {
		return TeamDetail{}, recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "snapshot restored", "team", restored.Name, "players", restored.Len(), "replaced", replaced)
	return out, nil
}

// SaveAll persists every team concurrently. One failing store write does not stop the rest.
func (s *SnapshotService) SaveAll(ctx context.Context) (SnapshotSaveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.SaveAll")
	defer span.End()

	if s.repo == nil {
		return SnapshotSaveResult{}, fmt.Errorf("%w: snapshot store is not configured", ErrDependencyUnavailable)
	}

	var snaps []team.Snapshot
	_ = s.registry.view(func(l *league.League) error {
		for _, t := range l.Teams() {
			snaps = append(snaps, team.TakeSnapshot(t))
		}
		return nil
	})

	type outcome struct {
		team string
		err  error
	}

	p := pool.NewWithResults[outcome]().WithMaxGoroutines(s.workers)
	for _, snap := range snaps {
		p.Go(func() outcome {
			return outcome{team: snap.TeamName, err: s.repo.Save(ctx, snap)}
		})
	}

	result := SnapshotSaveResult{Saved: make([]string, 0, len(snaps))}
	for _, o := range p.Wait() {
		if o.err != nil {
			if result.Failed == nil {
				result.Failed = make(map[string]string)
			}
			result.Failed[o.team] = o.err.Error()
			s.logger.WarnContext(ctx, "save snapshot failed", "team", o.team, "error", o.err)
			continue
		}
		result.Saved = append(result.Saved, o.team)
	}
	slices.Sort(result.Saved)

	s.logger.InfoContext(ctx, "snapshots saved", "saved", len(result.Saved), "failed", len(result.Failed))
	return result, nil
}

func (s *SnapshotService) List(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.List")
	defer span.End()

	if s.repo == nil {
		return nil, fmt.Errorf("%w: snapshot store is not configured", ErrDependencyUnavailable)
	}
	names, err := s.repo.List(ctx)
	if err != nil {
		return nil, recordSpanError(span, crerr.Wrap(err, "list snapshots"))
	}
	return names, nil
}
