package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type MatchInput struct {
	HomeTeam string
	AwayTeam string
}

type MatchService struct {
	registry *Registry
	logger   *logging.Logger
}

func NewMatchService(registry *Registry, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{registry: registry, logger: logger}
}

// Play simulates a fixture through the home club's manager. Every completed match
// counts down the loan spells of both squads.
func (s *MatchService) Play(ctx context.Context, input MatchInput) (manager.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Play", teamAttr(input.HomeTeam))
	defer span.End()

	if strings.TrimSpace(input.HomeTeam) == strings.TrimSpace(input.AwayTeam) {
		return manager.MatchResult{}, recordSpanError(span, fmt.Errorf("%w: home and away team must differ", ErrInvalidInput))
	}

	var result manager.MatchResult
	err := s.registry.update(func(*league.League) error {
		home, homeManager, err := s.registry.lookup(input.HomeTeam)
		if err != nil {
			return err
		}
		away, _, err := s.registry.lookup(input.AwayTeam)
		if err != nil {
			return err
		}

		result, err = homeManager.SimulateMatch(away)
		if err != nil {
			return err
		}
		reduceLoans(home)
		reduceLoans(away)
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "match not played",
			"home_team", input.HomeTeam,
			"away_team", input.AwayTeam,
			"error", err,
		)
		return manager.MatchResult{}, recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "match played",
		"home_team", result.HomeTeam,
		"away_team", result.AwayTeam,
		"home_goals", result.HomeGoals,
		"away_goals", result.AwayGoals,
	)
	return result, nil
}

func reduceLoans(t *team.Team) {
	for _, p := range t.LoanedPlayers() {
		p.ReduceLoanDuration()
	}
}
