package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

const defaultSeasonWorkers = 4

type SeasonResult struct {
	WorkerCount int                `json:"worker_count"`
	Teams       []SeasonTeamResult `json:"teams"`
}

type SeasonTeamResult struct {
	Team              string   `json:"team"`
	Retired           []string `json:"retired"`
	ExpiringContracts []string `json:"expiring_contracts"`
}

type SeasonService struct {
	registry *Registry
	workers  int
	logger   *logging.Logger
}

func NewSeasonService(registry *Registry, workers int, logger *logging.Logger) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultSeasonWorkers
	}
	return &SeasonService{registry: registry, workers: workers, logger: logger}
}

// Advance closes the season for every club: players age a year, contracts run down,
// cards are wiped and league records reset. Players who retire leave their club.
func (s *SeasonService) Advance(ctx context.Context) (SeasonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Advance")
	defer span.End()

	var result SeasonResult
	err := s.registry.update(func(l *league.League) error {
		teams := l.Teams()
		result = SeasonResult{
			WorkerCount: normalizeWorkerCount(s.workers, len(teams)),
			Teams:       make([]SeasonTeamResult, len(teams)),
		}
		if len(teams) == 0 {
			return nil
		}

		pool, err := ants.NewPool(result.WorkerCount)
		if err != nil {
			return fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		// Each task only touches its own team, so results land in a fixed slot.
		var workers sync.WaitGroup
		for i, t := range teams {
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				result.Teams[i] = advanceTeam(t)
			}); err != nil {
				workers.Done()
				workers.Wait()
				return fmt.Errorf("submit task to worker pool: %w", err)
			}
		}
		workers.Wait()
		return nil
	})
	if err != nil {
		return SeasonResult{}, recordSpanError(span, err)
	}

	retired := 0
	for _, row := range result.Teams {
		retired += len(row.Retired)
	}
	s.logger.InfoContext(ctx, "season advanced",
		"teams", len(result.Teams),
		"retired", retired,
		"workers", result.WorkerCount,
	)
	return result, nil
}

func advanceTeam(t *team.Team) SeasonTeamResult {
	row := SeasonTeamResult{
		Team:              t.Name,
		Retired:           make([]string, 0),
		ExpiringContracts: make([]string, 0),
	}

	var leaving []*player.Player
	for _, p := range t.Players() {
		p.AgeUp()
		p.DecrementContract()
		p.ResetCards()
		p.CheckRetirement()
		if p.Retired {
			leaving = append(leaving, p)
			continue
		}
		if p.IsContractExpiring() {
			row.ExpiringContracts = append(row.ExpiringContracts, p.Name)
		}
	}
	for _, p := range leaving {
		// The player was read from this roster under the same lock.
		_ = t.RemovePlayer(p)
		row.Retired = append(row.Retired, p.Name)
	}
	t.ResetRecord()

	return row
}

func normalizeWorkerCount(requested, tasks int) int {
	if requested <= 0 {
		requested = defaultSeasonWorkers
	}
	if tasks > 0 && requested > tasks {
		return tasks
	}
	return requested
}
