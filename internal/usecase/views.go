package usecase

import (
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

// Views are detached copies handed out after the registry lock is released.

type PlayerView struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Position          string  `json:"position"`
	Age               int     `json:"age"`
	Rating            int     `json:"rating"`
	Stamina           int     `json:"stamina"`
	Injured           bool    `json:"injured"`
	Exhausted         bool    `json:"exhausted"`
	IsCaptain         bool    `json:"is_captain"`
	Goals             int     `json:"goals"`
	Assists           int     `json:"assists"`
	MatchesPlayed     int     `json:"matches_played"`
	YellowCards       int     `json:"yellow_cards"`
	RedCards          int     `json:"red_cards"`
	Suspended         bool    `json:"suspended"`
	ContractYearsLeft int     `json:"contract_years_left"`
	Morale            int     `json:"morale"`
	MoraleStatus      string  `json:"morale_status"`
	Retired           bool    `json:"retired"`
	OnLoan            bool    `json:"on_loan"`
	LoanedTo          string  `json:"loaned_to,omitempty"`
	LoanDuration      int     `json:"loan_duration,omitempty"`
	MarketValue       float64 `json:"market_value"`
}

type TeamSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Formation      string `json:"formation"`
	Players        int    `json:"players"`
	Points         int    `json:"points"`
	GoalDifference int    `json:"goal_difference"`
	Budget         int    `json:"budget"`
}

type TeamDetail struct {
	TeamSummary
	MaxPlayers     int          `json:"max_players"`
	Record         league.Stats `json:"record"`
	AverageRating  float64      `json:"average_rating"`
	AverageAge     float64      `json:"average_age"`
	Squad          []PlayerView `json:"squad"`
	StartingEleven []string     `json:"starting_eleven"`
	Bench          []string     `json:"bench"`
	BestPlayer     *PlayerView  `json:"best_player,omitempty"`
	TopScorer      *PlayerView  `json:"top_scorer,omitempty"`
	TopAssistant   *PlayerView  `json:"top_assistant,omitempty"`
	MostActive     *PlayerView  `json:"most_active,omitempty"`
	Injured        []string     `json:"injured"`
	OnLoan         []string     `json:"on_loan"`
}

func newPlayerView(p *player.Player) PlayerView {
	return PlayerView{
		ID:                p.ID,
		Name:              p.Name,
		Position:          string(p.Position),
		Age:               p.Age,
		Rating:            p.Rating,
		Stamina:           p.Stamina,
		Injured:           p.Injured,
		Exhausted:         p.IsExhausted(),
		IsCaptain:         p.IsCaptain,
		Goals:             p.Goals,
		Assists:           p.Assists,
		MatchesPlayed:     p.MatchesPlayed,
		YellowCards:       p.YellowCards,
		RedCards:          p.RedCards,
		Suspended:         p.Suspended,
		ContractYearsLeft: p.ContractYearsLeft,
		Morale:            p.Morale,
		MoraleStatus:      string(p.MoraleStatus()),
		Retired:           p.Retired,
		OnLoan:            p.OnLoan,
		LoanedTo:          p.LoanedTo,
		LoanDuration:      p.LoanDuration,
		MarketValue:       p.MarketValue(),
	}
}

func optionalPlayerView(p *player.Player) *PlayerView {
	if p == nil {
		return nil
	}
	v := newPlayerView(p)
	return &v
}

func playerViews(players []*player.Player) []PlayerView {
	out := make([]PlayerView, 0, len(players))
	for _, p := range players {
		out = append(out, newPlayerView(p))
	}
	return out
}

func playerIDs(players []*player.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func newTeamSummary(t *team.Team, m *manager.Manager) TeamSummary {
	summary := TeamSummary{
		ID:             t.ID,
		Name:           t.Name,
		Formation:      string(t.Formation),
		Players:        t.Len(),
		Points:         t.Points,
		GoalDifference: t.GoalDifference(),
	}
	if m != nil {
		summary.Budget = m.Budget
	}
	return summary
}

func newTeamDetail(t *team.Team, m *manager.Manager) TeamDetail {
	return TeamDetail{
		TeamSummary: newTeamSummary(t, m),
		MaxPlayers:  t.MaxPlayers,
		Record: league.Stats{
			Points:        t.Points,
			Wins:          t.Wins,
			Draws:         t.Draws,
			Losses:        t.Losses,
			GoalsScored:   t.GoalsScored,
			GoalsConceded: t.GoalsConceded,
		},
		AverageRating:  t.AverageRating(),
		AverageAge:     t.AverageAge(),
		Squad:          playerViews(t.Players()),
		StartingEleven: playerIDs(t.StartingEleven()),
		Bench:          playerIDs(t.Bench()),
		BestPlayer:     optionalPlayerView(t.BestPlayer()),
		TopScorer:      optionalPlayerView(t.TopScorer()),
		TopAssistant:   optionalPlayerView(t.TopAssistant()),
		MostActive:     optionalPlayerView(t.MostActivePlayer()),
		Injured:        playerIDs(t.InjuredPlayers()),
		OnLoan:         playerIDs(t.LoanedPlayers()),
	}
}
