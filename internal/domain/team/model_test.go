package team

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlayer(t *testing.T, name string, position player.Position, age, rating int) *player.Player {
	t.Helper()

	p, err := player.New(name, position, age, rating)
	require.NoError(t, err)
	return p
}

func squad(t *testing.T, name string, size int) (*Team, []*player.Player) {
	t.Helper()

	tm := New(name)
	players := make([]*player.Player, 0, size)
	for i := 0; i < size; i++ {
		p := mustPlayer(t, fmt.Sprintf("%s %d", name, i), player.PositionDefender, 28, 70+i%30)
		require.NoError(t, tm.AddPlayer(p))
		players = append(players, p)
	}
	return tm, players
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	tm := New("FC Barcelona")
	assert.Equal(t, Formation442, tm.Formation)
	assert.Equal(t, DefaultMaxPlayers, tm.MaxPlayers)
	assert.Zero(t, tm.Len())
	assert.Empty(t, tm.StartingEleven())
	assert.NoError(t, tm.Validate())

	assert.ErrorIs(t, New("  ").Validate(), domainerr.ErrValidation)
}

func TestAddPlayer(t *testing.T) {
	t.Parallel()

	tm := New("FC Barcelona")
	pedri := mustPlayer(t, "Pedri", player.PositionMidfielder, 21, 86)

	require.NoError(t, tm.AddPlayer(pedri))
	assert.True(t, tm.Has(pedri))

	err := tm.AddPlayer(pedri)
	if !errors.Is(err, domainerr.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	veteran := mustPlayer(t, "Veteran", player.PositionGoalkeeper, 41, 60)
	veteran.CheckRetirement()
	require.ErrorIs(t, tm.AddPlayer(veteran), domainerr.ErrValidation)

	require.ErrorIs(t, tm.AddPlayer(nil), domainerr.ErrValidation)
	assert.Equal(t, 1, tm.Len())
}

func TestAddPlayer_SameNameDifferentIdentity(t *testing.T) {
	t.Parallel()

	tm := New("FC Barcelona")
	require.NoError(t, tm.AddPlayer(mustPlayer(t, "Sergi", player.PositionDefender, 25, 75)))
	require.NoError(t, tm.AddPlayer(mustPlayer(t, "Sergi", player.PositionDefender, 25, 75)))
	assert.Equal(t, 2, tm.Len())
}

func TestRemovePlayer(t *testing.T) {
	t.Parallel()

	tm, players := squad(t, "Girona", 3)
	require.NoError(t, tm.RemovePlayer(players[1]))
	assert.Equal(t, []*player.Player{players[0], players[2]}, tm.Players())

	require.ErrorIs(t, tm.RemovePlayer(players[1]), domainerr.ErrNotFound)

	outsider := mustPlayer(t, "Outsider", player.PositionForward, 30, 80)
	require.ErrorIs(t, tm.RemovePlayer(outsider), domainerr.ErrNotFound)
}

func TestRemovePlayer_StarterClearsLineup(t *testing.T) {
	t.Parallel()

	tm, players := squad(t, "Girona", 13)
	require.NoError(t, tm.AssignStartingEleven(players[:11]))
	require.NoError(t, tm.AssignBench(players[11:]))

	require.NoError(t, tm.RemovePlayer(players[12]))
	assert.Len(t, tm.Bench(), 1)
	assert.Len(t, tm.StartingEleven(), 11)

	require.NoError(t, tm.RemovePlayer(players[0]))
	assert.Empty(t, tm.StartingEleven())
}

func TestSetFormation(t *testing.T) {
	t.Parallel()

	tm := New("Real Madrid")
	for _, f := range []Formation{Formation433, Formation352, Formation442} {
		require.NoError(t, tm.SetFormation(f))
		assert.Equal(t, f, tm.Formation)
	}

	require.ErrorIs(t, tm.SetFormation("5-4-1"), domainerr.ErrValidation)
	assert.Equal(t, Formation442, tm.Formation)
}

func TestFormation_Valid(t *testing.T) {
	t.Parallel()

	for _, f := range []Formation{Formation442, Formation433, Formation352} {
		assert.True(t, f.Valid(), f)
	}
	for _, f := range []Formation{"", "4-2-3-1", "4-4-2 "} {
		assert.False(t, f.Valid(), f)
	}
}

func TestAssignStartingEleven(t *testing.T) {
	t.Parallel()

	tm, players := squad(t, "Sevilla", 12)

	require.ErrorIs(t, tm.AssignStartingEleven(players[:10]), domainerr.ErrValidation)

	foreign := mustPlayer(t, "Foreign", player.PositionForward, 25, 80)
	withForeign := append(append([]*player.Player{}, players[:10]...), foreign)
	require.ErrorIs(t, tm.AssignStartingEleven(withForeign), domainerr.ErrValidation)

	withDuplicate := append(append([]*player.Player{}, players[:10]...), players[0])
	require.ErrorIs(t, tm.AssignStartingEleven(withDuplicate), domainerr.ErrValidation)
	assert.Empty(t, tm.StartingEleven())

	require.NoError(t, tm.AssignStartingEleven(players[1:12]))
	assert.Equal(t, players[1:12], tm.StartingEleven())
}

func TestStartingEleven_ReturnsCopy(t *testing.T) {
	t.Parallel()

	tm, players := squad(t, "Sevilla", 11)
	require.NoError(t, tm.AssignStartingEleven(players))

	lineup := tm.StartingEleven()
	lineup[0] = nil
	assert.Equal(t, players[0], tm.StartingEleven()[0])
}

func TestAssignBench(t *testing.T) {
	t.Parallel()

	tm, players := squad(t, "Betis", 14)
	require.NoError(t, tm.AssignStartingEleven(players[:11]))

	require.ErrorIs(t, tm.AssignBench(players[10:12]), domainerr.ErrValidation)
	require.NoError(t, tm.AssignBench(players[11:]))
	assert.Equal(t, players[11:], tm.Bench())
}

func TestAssignStartingEleven_LeavesBenchAlone(t *testing.T) {
	t.Parallel()

	tm, players := squad(t, "Betis", 14)
	require.NoError(t, tm.AssignStartingEleven(players[:11]))
	require.NoError(t, tm.AssignBench(players[11:]))

	lineup := append(append([]*player.Player{}, players[:10]...), players[11])
	require.NoError(t, tm.AssignStartingEleven(lineup))
	assert.Equal(t, lineup, tm.StartingEleven())
	assert.Equal(t, players[11:], tm.Bench())
}

func TestAssignLineup(t *testing.T) {
	t.Parallel()

	tm, players := squad(t, "Osasuna", 14)

	err := tm.AssignLineup(players[:11], players[10:12])
	require.ErrorIs(t, err, domainerr.ErrValidation)
	assert.Empty(t, tm.StartingEleven())
	assert.Empty(t, tm.Bench())

	require.ErrorIs(t, tm.AssignLineup(players[:9], nil), domainerr.ErrValidation)

	require.NoError(t, tm.AssignLineup(players[:11], players[11:]))
	assert.Equal(t, players[:11], tm.StartingEleven())
	assert.Equal(t, players[11:], tm.Bench())
}

func TestBenchInjuredStarters(t *testing.T) {
	t.Parallel()

	t.Run("no lineup is a no-op", func(t *testing.T) {
		tm, _ := squad(t, "Valencia", 11)
		assert.Empty(t, tm.BenchInjuredStarters())
		assert.Empty(t, tm.Bench())
	})

	t.Run("without substitutes the lineup shrinks", func(t *testing.T) {
		tm, players := squad(t, "Valencia", 11)
		require.NoError(t, tm.AssignStartingEleven(players))
		players[2].Injure()
		players[7].Injure()

		benched := tm.BenchInjuredStarters()
		assert.Equal(t, []*player.Player{players[2], players[7]}, benched)
		assert.Len(t, tm.StartingEleven(), 9)
		assert.Contains(t, tm.Bench(), players[2])
		assert.Contains(t, tm.Bench(), players[7])
		assert.NotContains(t, tm.StartingEleven(), players[2])
	})

	t.Run("fit substitutes stay on the bench", func(t *testing.T) {
		tm, players := squad(t, "Valencia", 14)
		require.NoError(t, tm.AssignStartingEleven(players[:11]))
		require.NoError(t, tm.AssignBench(players[11:]))
		players[4].Injure()

		assert.Equal(t, []*player.Player{players[4]}, tm.BenchInjuredStarters())
		lineup := tm.StartingEleven()
		assert.Len(t, lineup, 10)
		assert.NotContains(t, lineup, players[11])
		assert.Equal(t, []*player.Player{players[11], players[12], players[13], players[4]}, tm.Bench())
	})
}

func TestUpdateMatchResult(t *testing.T) {
	t.Parallel()

	tm := New("Athletic Club")
	require.NoError(t, tm.UpdateMatchResult(3, 1))
	require.NoError(t, tm.UpdateMatchResult(0, 2))
	require.NoError(t, tm.UpdateMatchResult(1, 1))

	assert.Equal(t, 1, tm.Wins)
	assert.Equal(t, 1, tm.Losses)
	assert.Equal(t, 1, tm.Draws)
	assert.Equal(t, 4, tm.GoalsScored)
	assert.Equal(t, 4, tm.GoalsConceded)
	assert.Equal(t, 4, tm.Points)
	assert.Equal(t, 3, tm.Played())

	require.ErrorIs(t, tm.UpdateMatchResult(-1, 0), domainerr.ErrValidation)
	assert.Equal(t, 3, tm.Played())

	tm.AdjustPoints(-3)
	assert.Equal(t, 1, tm.Points)

	tm.ResetRecord()
	assert.Zero(t, tm.Played())
	assert.Zero(t, tm.Points)
	assert.Zero(t, tm.GoalDifference())
}

func TestAverages(t *testing.T) {
	t.Parallel()

	tm := New("Osasuna")
	assert.Zero(t, tm.AverageRating())
	assert.Zero(t, tm.AverageAge())

	require.NoError(t, tm.AddPlayer(mustPlayer(t, "A", player.PositionDefender, 20, 70)))
	require.NoError(t, tm.AddPlayer(mustPlayer(t, "B", player.PositionDefender, 31, 85)))

	assert.InDelta(t, 77.5, tm.AverageRating(), 1e-9)
	assert.InDelta(t, 25.5, tm.AverageAge(), 1e-9)
}

func TestFilteredViews(t *testing.T) {
	t.Parallel()

	tm := New("Villarreal")
	gk := mustPlayer(t, "Keeper", player.PositionGoalkeeper, 30, 80)
	fwd1 := mustPlayer(t, "Nine", player.PositionForward, 25, 82)
	fwd2 := mustPlayer(t, "Eleven", player.PositionForward, 23, 78)
	for _, p := range []*player.Player{gk, fwd1, fwd2} {
		require.NoError(t, tm.AddPlayer(p))
	}

	fwd2.Injure()
	gk.Injure()
	require.NoError(t, fwd1.LoanTo("Elche", 5))

	assert.Equal(t, []*player.Player{gk, fwd2}, tm.InjuredPlayers())
	assert.Equal(t, []*player.Player{fwd1, fwd2}, tm.PlayersByPosition(player.PositionForward))
	assert.Empty(t, tm.PlayersByPosition(player.PositionMidfielder))
	assert.Equal(t, []*player.Player{fwd1}, tm.LoanedPlayers())
}

func TestLeaders(t *testing.T) {
	t.Parallel()

	empty := New("Empty")
	assert.Nil(t, empty.BestPlayer())
	assert.Nil(t, empty.TopScorer())
	assert.Nil(t, empty.TopAssistant())
	assert.Nil(t, empty.MostActivePlayer())

	tm := New("Real Sociedad")
	first := mustPlayer(t, "First", player.PositionMidfielder, 25, 85)
	second := mustPlayer(t, "Second", player.PositionForward, 25, 85)
	third := mustPlayer(t, "Third", player.PositionForward, 25, 80)
	for _, p := range []*player.Player{first, second, third} {
		require.NoError(t, tm.AddPlayer(p))
	}

	require.NoError(t, first.RecordMatch(1, 4))
	require.NoError(t, second.RecordMatch(3, 4))
	require.NoError(t, third.RecordMatch(3, 0))
	require.NoError(t, third.RecordMatch(0, 0))

	assert.Same(t, first, tm.BestPlayer(), "ties keep the earliest player")
	assert.Same(t, second, tm.TopScorer())
	assert.Same(t, first, tm.TopAssistant())
	assert.Same(t, third, tm.MostActivePlayer())
}

func TestSwapPlayers(t *testing.T) {
	t.Parallel()

	t.Run("replaces player", func(t *testing.T) {
		tm, players := squad(t, "Mallorca", 3)
		in := mustPlayer(t, "New Signing", player.PositionForward, 22, 79)

		require.NoError(t, tm.SwapPlayers(players[0], in))
		assert.False(t, tm.Has(players[0]))
		assert.True(t, tm.Has(in))
		assert.Equal(t, 3, tm.Len())
	})

	t.Run("absent out leaves roster untouched", func(t *testing.T) {
		tm, _ := squad(t, "Mallorca", 3)
		outsider := mustPlayer(t, "Outsider", player.PositionForward, 22, 79)
		in := mustPlayer(t, "New Signing", player.PositionForward, 22, 79)

		require.ErrorIs(t, tm.SwapPlayers(outsider, in), domainerr.ErrNotFound)
		assert.Equal(t, 3, tm.Len())
		assert.False(t, tm.Has(in))
	})

	t.Run("invalid in leaves roster untouched", func(t *testing.T) {
		tm, players := squad(t, "Mallorca", 3)

		require.ErrorIs(t, tm.SwapPlayers(players[0], players[1]), domainerr.ErrDuplicate)
		assert.True(t, tm.Has(players[0]))

		retired := mustPlayer(t, "Retired", player.PositionForward, 42, 60)
		retired.CheckRetirement()
		require.ErrorIs(t, tm.SwapPlayers(players[0], retired), domainerr.ErrValidation)
		assert.True(t, tm.Has(players[0]))
		assert.Equal(t, 3, tm.Len())
	})
}

func TestSetMaxPlayers(t *testing.T) {
	t.Parallel()

	tm, _ := squad(t, "Getafe", 2)
	require.ErrorIs(t, tm.SetMaxPlayers(0), domainerr.ErrValidation)

	require.NoError(t, tm.SetMaxPlayers(2))
	assert.True(t, tm.IsFull())
}
