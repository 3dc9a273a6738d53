package usecase

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	return NewRegistry(RegistryConfig{
		LeagueName:     "La Liga",
		ManagerBudget:  100,
		TeamMaxPlayers: 25,
	}, logging.NewNop())
}

// readyTeam builds a team whose first eleven players are already selected.
func readyTeam(t *testing.T, name string, size, rating int) *team.Team {
	t.Helper()

	tm := team.New(name)
	players := make([]*player.Player, 0, size)
	for i := 0; i < size; i++ {
		p, err := player.New(fmt.Sprintf("%s %d", name, i), player.PositionMidfielder, 26, rating)
		require.NoError(t, err)
		require.NoError(t, tm.AddPlayer(p))
		players = append(players, p)
	}
	if size >= team.StartingElevenSize {
		require.NoError(t, tm.AssignStartingEleven(players[:team.StartingElevenSize]))
	}
	return tm
}

func seedTeams(t *testing.T, r *Registry, teams ...*team.Team) {
	t.Helper()

	require.NoError(t, r.Seed(teams))
}
