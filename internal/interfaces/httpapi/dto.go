package httpapi

import "github.com/riskibarqy/football-manager/internal/usecase"

type createTeamRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Formation  string `json:"formation" validate:"omitempty,oneof=4-4-2 4-3-3 3-5-2"`
	MaxPlayers int    `json:"max_players" validate:"omitempty,min=11"`
	Budget     *int   `json:"budget" validate:"omitempty,min=0"`
}

type newPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position string `json:"position" validate:"required"`
	Age      int    `json:"age" validate:"min=0"`
	Rating   int    `json:"rating" validate:"min=0,max=100"`
}

func (r newPlayerRequest) toInput() usecase.NewPlayerInput {
	return usecase.NewPlayerInput{
		Name:     r.Name,
		Position: r.Position,
		Age:      r.Age,
		Rating:   r.Rating,
	}
}

type signPlayerRequest struct {
	Player newPlayerRequest `json:"player"`
	Price  int              `json:"price" validate:"min=0"`
}

type sellPlayerRequest struct {
	Price int `json:"price" validate:"min=0"`
}

type swapPlayersRequest struct {
	OutPlayerID string           `json:"out_player_id" validate:"required"`
	In          newPlayerRequest `json:"in"`
}

type formationRequest struct {
	Formation string `json:"formation" validate:"required,oneof=4-4-2 4-3-3 3-5-2"`
}

type lineupRequest struct {
	StartingEleven []string `json:"starting_eleven" validate:"required,len=11,unique,dive,required"`
	Bench          []string `json:"bench" validate:"omitempty,unique,dive,required"`
}

type playerActionRequest struct {
	Action   string `json:"action" validate:"required,oneof=injure recover card reset_cards loan return_from_loan renew_contract morale promote_captain demote_captain change_position record_match"`
	Card     string `json:"card" validate:"omitempty,oneof=yellow red"`
	Position string `json:"position"`
	Club     string `json:"club" validate:"required_if=Action loan"`
	Years    int    `json:"years"`
	Duration int    `json:"duration"`
	Delta    int    `json:"delta"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
}

func (r playerActionRequest) toInput() usecase.PlayerActionInput {
	return usecase.PlayerActionInput{
		Action:   usecase.PlayerAction(r.Action),
		Card:     r.Card,
		Position: r.Position,
		Club:     r.Club,
		Years:    r.Years,
		Duration: r.Duration,
		Delta:    r.Delta,
		Goals:    r.Goals,
		Assists:  r.Assists,
	}
}

type matchRequest struct {
	HomeTeam string `json:"home_team" validate:"required"`
	AwayTeam string `json:"away_team" validate:"required,nefield=HomeTeam"`
}

type trainingResponse struct {
	Trained int `json:"trained"`
}

type snapshotListResponse struct {
	Teams []string `json:"teams"`
}
