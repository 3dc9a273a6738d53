package postgres

import (
	"time"

	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type snapshotTableModel struct {
	TeamName    string    `db:"team_name"`
	Payload     []byte    `db:"payload"`
	PlayerCount int       `db:"player_count"`
	SavedAt     time.Time `db:"saved_at"`
}

func mustModelColumns(model any) []string {
	cols, err := qb.ModelColumns(model)
	if err != nil {
		panic(err)
	}
	return cols
}
