package team

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

var snapshotValidator = validator.New()

// PlayerRecord is the persisted subset of a player. Everything else resets to the
// construction defaults on restore.
type PlayerRecord struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required,oneof=GOALKEEPER DEFENDER MIDFIELDER FORWARD"`
	Age      int    `json:"age" validate:"min=15,max=50"`
	Rating   int    `json:"rating" validate:"min=0,max=100"`
	Stamina  int    `json:"stamina" validate:"min=0,max=100"`
	Injured  bool   `json:"injured"`
}

// Snapshot is the light, storage-facing document of a team.
type Snapshot struct {
	TeamName string         `json:"team_name" validate:"required"`
	Players  []PlayerRecord `json:"players" validate:"dive"`
}

func TakeSnapshot(t *Team) Snapshot {
	players := t.Players()
	records := make([]PlayerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, PlayerRecord{
			Name:     p.Name,
			Position: string(p.Position),
			Age:      p.Age,
			Rating:   p.Rating,
			Stamina:  p.Stamina,
			Injured:  p.Injured,
		})
	}

	return Snapshot{
		TeamName: t.Name,
		Players:  records,
	}
}

func (s Snapshot) Validate() error {
	if err := snapshotValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: team snapshot: %v", domainerr.ErrValidation, err)
	}
	return nil
}

// Restore rebuilds a fresh team with new identities from the snapshot.
func (s Snapshot) Restore() (*Team, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	t := New(s.TeamName)
	for i, record := range s.Players {
		p, err := player.New(record.Name, player.Position(record.Position), record.Age, record.Rating)
		if err != nil {
			return nil, fmt.Errorf("restore player %d: %w", i, err)
		}
		p.SetStamina(record.Stamina)
		p.Injured = record.Injured
		if err := t.AddPlayer(p); err != nil {
			return nil, fmt.Errorf("restore player %d: %w", i, err)
		}
	}

	return t, nil
}
