package manager

import (
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

// DefaultBudget is in millions.
const DefaultBudget = 100

// goalsPerStrength converts match strength into goals scored.
const goalsPerStrength = 20

var (
	ErrInsufficientBudget = fmt.Errorf("%w: insufficient budget", domainerr.ErrValidation)
	ErrSquadFull          = fmt.Errorf("%w: team has reached maximum size", domainerr.ErrValidation)
	ErrLineupIncomplete   = fmt.Errorf("%w: match cannot be played due to unavailable players", domainerr.ErrValidation)
)

// Manager runs one team: transfers, training and matches.
type Manager struct {
	Team   *team.Team
	Budget int
}

// MatchResult is reported from the managed team's point of view.
type MatchResult struct {
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
	Winner    string `json:"winner,omitempty"`
	Summary   string `json:"summary"`
}

func (r MatchResult) IsDraw() bool {
	return r.HomeGoals == r.AwayGoals
}

func New(t *team.Team, budget int) (*Manager, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: manager requires a team", domainerr.ErrValidation)
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: budget cannot be negative", domainerr.ErrValidation)
	}
	return &Manager{Team: t, Budget: budget}, nil
}

func (m *Manager) BuyPlayer(p *player.Player, price int) error {
	if p == nil {
		return fmt.Errorf("%w: player is required", domainerr.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domainerr.ErrValidation)
	}
	if m.Team.Has(p) {
		return fmt.Errorf("%w: player %s already in team", domainerr.ErrDuplicate, p.Name)
	}
	if m.Team.IsFull() {
		return ErrSquadFull
	}
	if price > m.Budget {
		return fmt.Errorf("%w: price %d exceeds budget %d", ErrInsufficientBudget, price, m.Budget)
	}

	if err := m.Team.AddPlayer(p); err != nil {
		return err
	}
	m.Budget -= price
	return nil
}

func (m *Manager) SellPlayer(p *player.Player, price int) error {
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domainerr.ErrValidation)
	}
	if err := m.Team.RemovePlayer(p); err != nil {
		return err
	}
	m.Budget += price
	return nil
}

// TrainTeam trains every fit player and returns how many trained.
func (m *Manager) TrainTeam() int {
	trained := 0
	for _, p := range m.Team.Players() {
		if p.Injured {
			continue
		}
		p.Train()
		trained++
	}
	return trained
}

func (m *Manager) RestTeam() {
	for _, p := range m.Team.Players() {
		p.Rest()
	}
}

func (m *Manager) BenchInjuredPlayers() []*player.Player {
	return m.Team.BenchInjuredStarters()
}

// SimulateMatch plays the managed team at home against opponent and records the
// result for both sides.
func (m *Manager) SimulateMatch(opponent *team.Team) (MatchResult, error) {
	if opponent == nil {
		return MatchResult{}, fmt.Errorf("%w: opponent is required", domainerr.ErrValidation)
	}
	if opponent == m.Team {
		return MatchResult{}, fmt.Errorf("%w: a team cannot play itself", domainerr.ErrValidation)
	}

	home := m.Team.StartingEleven()
	away := opponent.StartingEleven()
	if len(home) < team.StartingElevenSize || len(away) < team.StartingElevenSize {
		return MatchResult{}, ErrLineupIncomplete
	}

	homeGoals := int(strength(home)) / goalsPerStrength
	awayGoals := int(strength(away)) / goalsPerStrength

	if err := m.Team.UpdateMatchResult(homeGoals, awayGoals); err != nil {
		return MatchResult{}, err
	}
	if err := opponent.UpdateMatchResult(awayGoals, homeGoals); err != nil {
		return MatchResult{}, err
	}

	result := MatchResult{
		HomeTeam:  m.Team.Name,
		AwayTeam:  opponent.Name,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
	}
	switch {
	case homeGoals > awayGoals:
		result.Winner = m.Team.Name
		result.Summary = fmt.Sprintf("%s wins %d-%d!", m.Team.Name, homeGoals, awayGoals)
	case awayGoals > homeGoals:
		result.Winner = opponent.Name
		result.Summary = fmt.Sprintf("%s wins %d-%d!", opponent.Name, awayGoals, homeGoals)
	default:
		result.Summary = fmt.Sprintf("Draw %d-%d!", homeGoals, awayGoals)
	}
	return result, nil
}

// strength averages rating and stamina over a full eleven.
func strength(eleven []*player.Player) float64 {
	var rating, stamina int
	for _, p := range eleven[:team.StartingElevenSize] {
		rating += p.Rating
		stamina += p.Stamina
	}
	avgRating := float64(rating) / team.StartingElevenSize
	avgStamina := float64(stamina) / team.StartingElevenSize
	return (avgRating + avgStamina) / 2
}
