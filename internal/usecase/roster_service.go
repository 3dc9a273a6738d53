package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type NewPlayerInput struct {
	Name     string
	Position string
	Age      int
	Rating   int
}

type SignPlayerInput struct {
	Player NewPlayerInput
	Price  int
}

type SaleResult struct {
	PlayerID string `json:"player_id"`
	Budget   int    `json:"budget"`
}

type LineupInput struct {
	StartingEleven []string
	Bench          []string
}

type PlayerAction string

const (
	ActionInjure         PlayerAction = "injure"
	ActionRecover        PlayerAction = "recover"
	ActionCard           PlayerAction = "card"
	ActionResetCards     PlayerAction = "reset_cards"
	ActionLoan           PlayerAction = "loan"
	ActionReturnFromLoan PlayerAction = "return_from_loan"
	ActionRenewContract  PlayerAction = "renew_contract"
	ActionMorale         PlayerAction = "morale"
	ActionPromoteCaptain PlayerAction = "promote_captain"
	ActionDemoteCaptain  PlayerAction = "demote_captain"
	ActionChangePosition PlayerAction = "change_position"
	ActionRecordMatch    PlayerAction = "record_match"
)

type PlayerActionInput struct {
	Action   PlayerAction
	Card     string
	Position string
	Club     string
	Years    int
	Duration int
	Delta    int
	Goals    int
	Assists  int
}

type RosterService struct {
	registry *Registry
	logger   *logging.Logger
}

func NewRosterService(registry *Registry, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{registry: registry, logger: logger}
}

func (s *RosterService) SignPlayer(ctx context.Context, teamName string, input SignPlayerInput) (PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SignPlayer", teamAttr(teamName))
	defer span.End()

	p, err := buildPlayer(input.Player)
	if err != nil {
		return PlayerView{}, recordSpanError(span, err)
	}

	var budget int
	err = s.withManager(teamName, func(_ *team.Team, m *manager.Manager) error {
		if err := m.BuyPlayer(p, input.Price); err != nil {
			return err
		}
		budget = m.Budget
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "sign player failed", "team", teamName, "player", input.Player.Name, "error", err)
		return PlayerView{}, recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "player signed",
		"team", teamName,
		"player", p.Name,
		"player_id", p.ID,
		"price", input.Price,
		"budget", budget,
	)
	return newPlayerView(p), nil
}

func (s *RosterService) SellPlayer(ctx context.Context, teamName, playerID string, price int) (SaleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SellPlayer", teamAttr(teamName))
	defer span.End()

	var out SaleResult
	err := s.withManager(teamName, func(t *team.Team, m *manager.Manager) error {
		p, err := findPlayer(t, playerID)
		if err != nil {
			return err
		}
		if err := m.SellPlayer(p, price); err != nil {
			return err
		}
		out = SaleResult{PlayerID: p.ID, Budget: m.Budget}
		return nil
	})
	if err != nil {
		return SaleResult{}, recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "player sold", "team", teamName, "player_id", playerID, "price", price, "budget", out.Budget)
	return out, nil
}

// SwapPlayers releases outID and signs a new player in the same call. No fee changes hands.
func (s *RosterService) SwapPlayers(ctx context.Context, teamName, outID string, in NewPlayerInput) (PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.SwapPlayers", teamAttr(teamName))
	defer span.End()

	incoming, err := buildPlayer(in)
	if err != nil {
		return PlayerView{}, recordSpanError(span, err)
	}

	err = s.withManager(teamName, func(t *team.Team, _ *manager.Manager) error {
		out, err := findPlayer(t, outID)
		if err != nil {
			return err
		}
		return t.SwapPlayers(out, incoming)
	})
	if err != nil {
		return PlayerView{}, recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "players swapped", "team", teamName, "out_player_id", outID, "in_player_id", incoming.ID)
	return newPlayerView(incoming), nil
}

func (s *RosterService) SetFormation(ctx context.Context, teamName, formation string) error {
	_, span := startUsecaseSpan(ctx, "usecase.RosterService.SetFormation", teamAttr(teamName))
	defer span.End()

	err := s.withManager(teamName, func(t *team.Team, _ *manager.Manager) error {
		return t.SetFormation(team.Formation(strings.TrimSpace(formation)))
	})
	return recordSpanError(span, err)
}

func (s *RosterService) AssignLineup(ctx context.Context, teamName string, input LineupInput) (TeamDetail, error) {
	_, span := startUsecaseSpan(ctx, "usecase.RosterService.AssignLineup", teamAttr(teamName))
	defer span.End()

	var out TeamDetail
	err := s.withManager(teamName, func(t *team.Team, m *manager.Manager) error {
		starters, err := findPlayers(t, input.StartingEleven)
		if err != nil {
			return err
		}
		bench, err := findPlayers(t, input.Bench)
		if err != nil {
			return err
		}
		if err := t.AssignLineup(starters, bench); err != nil {
			return err
		}
		out = newTeamDetail(t, m)
		return nil
	})
	return out, recordSpanError(span, err)
}

// TrainTeam returns the number of players that trained.
func (s *RosterService) TrainTeam(ctx context.Context, teamName string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.TrainTeam", teamAttr(teamName))
	defer span.End()

	var trained int
	err := s.withManager(teamName, func(_ *team.Team, m *manager.Manager) error {
		trained = m.TrainTeam()
		return nil
	})
	if err != nil {
		return 0, recordSpanError(span, err)
	}

	s.logger.InfoContext(ctx, "team trained", "team", teamName, "players", trained)
	return trained, nil
}

func (s *RosterService) RestTeam(ctx context.Context, teamName string) error {
	_, span := startUsecaseSpan(ctx, "usecase.RosterService.RestTeam", teamAttr(teamName))
	defer span.End()

	err := s.withManager(teamName, func(_ *team.Team, m *manager.Manager) error {
		m.RestTeam()
		return nil
	})
	return recordSpanError(span, err)
}

func (s *RosterService) BenchInjured(ctx context.Context, teamName string) ([]PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.BenchInjured", teamAttr(teamName))
	defer span.End()

	var benched []PlayerView
	err := s.withManager(teamName, func(_ *team.Team, m *manager.Manager) error {
		benched = playerViews(m.BenchInjuredPlayers())
		return nil
	})
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	if len(benched) > 0 {
		s.logger.InfoContext(ctx, "injured starters benched", "team", teamName, "players", len(benched))
	}
	return benched, nil
}

func (s *RosterService) ApplyPlayerAction(ctx context.Context, teamName, playerID string, input PlayerActionInput) (PlayerView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.RosterService.ApplyPlayerAction", teamAttr(teamName))
	defer span.End()

	var out PlayerView
	err := s.withManager(teamName, func(t *team.Team, _ *manager.Manager) error {
		p, err := findPlayer(t, playerID)
		if err != nil {
			return err
		}
		if err := applyPlayerAction(p, input); err != nil {
			return err
		}
		out = newPlayerView(p)
		return nil
	})
	return out, recordSpanError(span, err)
}

func (s *RosterService) withManager(teamName string, fn func(*team.Team, *manager.Manager) error) error {
	return s.registry.update(func(*league.League) error {
		t, m, err := s.registry.lookup(teamName)
		if err != nil {
			return err
		}
		return fn(t, m)
	})
}

func applyPlayerAction(p *player.Player, input PlayerActionInput) error {
	switch input.Action {
	case ActionInjure:
		p.Injure()
	case ActionRecover:
		return p.RecoverFromInjury()
	case ActionCard:
		return p.ReceiveCard(player.Card(strings.ToLower(strings.TrimSpace(input.Card))))
	case ActionResetCards:
		p.ResetCards()
	case ActionLoan:
		return p.LoanTo(strings.TrimSpace(input.Club), input.Duration)
	case ActionReturnFromLoan:
		return p.ReturnFromLoan()
	case ActionRenewContract:
		return p.RenewContract(input.Years)
	case ActionMorale:
		p.ChangeMorale(input.Delta)
	case ActionPromoteCaptain:
		p.PromoteToCaptain()
	case ActionDemoteCaptain:
		p.DemoteFromCaptain()
	case ActionChangePosition:
		position, err := player.ParsePosition(input.Position)
		if err != nil {
			return err
		}
		return p.ChangePosition(position)
	case ActionRecordMatch:
		return p.RecordMatch(input.Goals, input.Assists)
	default:
		return fmt.Errorf("%w: unsupported player action %q", ErrInvalidInput, input.Action)
	}
	return nil
}

func buildPlayer(input NewPlayerInput) (*player.Player, error) {
	position, err := player.ParsePosition(input.Position)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	return player.New(name, position, input.Age, input.Rating)
}

func findPlayer(t *team.Team, playerID string) (*player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	p, ok := t.Player(playerID)
	if !ok {
		return nil, fmt.Errorf("%w: player=%s team=%s", ErrNotFound, playerID, t.Name)
	}
	return p, nil
}

func findPlayers(t *team.Team, ids []string) ([]*player.Player, error) {
	out := make([]*player.Player, 0, len(ids))
	for _, id := range ids {
		p, err := findPlayer(t, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
