package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type LeagueOverview struct {
	Name       string `json:"name"`
	TeamCount  int    `json:"team_count"`
	TopTeam    string `json:"top_team,omitempty"`
	BottomTeam string `json:"bottom_team,omitempty"`
}

type CreateTeamInput struct {
	Name       string
	Formation  string
	MaxPlayers int
	Budget     *int
}

type LeagueService struct {
	registry *Registry
	logger   *logging.Logger
}

func NewLeagueService(registry *Registry, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{registry: registry, logger: logger}
}

func (s *LeagueService) Overview(ctx context.Context) (LeagueOverview, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.Overview")
	defer span.End()

	var out LeagueOverview
	err := s.registry.view(func(l *league.League) error {
		out = LeagueOverview{Name: l.Name, TeamCount: l.Len()}
		if top, ok := l.TopTeam(); ok {
			out.TopTeam = top.Name
		}
		if bottom, ok := l.BottomTeam(); ok {
			out.BottomTeam = bottom.Name
		}
		return nil
	})
	return out, err
}

func (s *LeagueService) Standings(ctx context.Context) ([]league.Standing, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.Standings")
	defer span.End()

	var out []league.Standing
	err := s.registry.view(func(l *league.League) error {
		out = l.Standings()
		return nil
	})
	return out, err
}

func (s *LeagueService) ListTeams(ctx context.Context) ([]TeamSummary, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeams")
	defer span.End()

	var out []TeamSummary
	err := s.registry.view(func(l *league.League) error {
		teams := l.Teams()
		out = make([]TeamSummary, 0, len(teams))
		for _, t := range teams {
			out = append(out, newTeamSummary(t, s.registry.managers[t.ID]))
		}
		return nil
	})
	return out, err
}

func (s *LeagueService) GetTeam(ctx context.Context, name string) (TeamDetail, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetTeam", teamAttr(name))
	defer span.End()

	var out TeamDetail
	err := s.registry.view(func(*league.League) error {
		t, m, err := s.registry.lookup(name)
		if err != nil {
			return err
		}
		out = newTeamDetail(t, m)
		return nil
	})
	return out, recordSpanError(span, err)
}

func (s *LeagueService) TeamStats(ctx context.Context, name string) (league.Stats, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.TeamStats", teamAttr(name))
	defer span.End()

	var out league.Stats
	err := s.registry.view(func(l *league.League) error {
		stats, err := l.TeamStats(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("%w: team=%s", ErrNotFound, name)
		}
		out = stats
		return nil
	})
	return out, recordSpanError(span, err)
}

func (s *LeagueService) CreateTeam(ctx context.Context, input CreateTeamInput) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateTeam", teamAttr(input.Name))
	defer span.End()

	t := team.New(strings.TrimSpace(input.Name))
	t.MaxPlayers = s.registry.cfg.TeamMaxPlayers
	if input.MaxPlayers > 0 {
		t.MaxPlayers = input.MaxPlayers
	}
	if strings.TrimSpace(input.Formation) != "" {
		t.Formation = team.Formation(strings.TrimSpace(input.Formation))
	}
	if err := t.Validate(); err != nil {
		return TeamDetail{}, recordSpanError(span, fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	budget := s.registry.cfg.ManagerBudget
	if input.Budget != nil {
		budget = *input.Budget
	}

	var out TeamDetail
	err := s.registry.update(func(*league.League) error {
		m, err := s.registry.enroll(t, budget)
		if err != nil {
			return err
		}
		out = newTeamDetail(t, m)
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "create team failed", "team", input.Name, "error", err)
		return TeamDetail{}, recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "team created", "team", t.Name, "team_id", t.ID, "budget", budget)
	return out, nil
}

func (s *LeagueService) RemoveTeam(ctx context.Context, name string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.RemoveTeam", teamAttr(name))
	defer span.End()

	err := s.registry.update(func(*league.League) error {
		t, _, err := s.registry.lookup(name)
		if err != nil {
			return err
		}
		return s.registry.withdraw(t)
	})
	if err != nil {
		return recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "team removed", "team", name)
	return nil
}
