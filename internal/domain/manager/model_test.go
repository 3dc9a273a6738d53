package manager

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlayer(t *testing.T, name string, rating int) *player.Player {
	t.Helper()

	p, err := player.New(name, player.PositionMidfielder, 26, rating)
	require.NoError(t, err)
	return p
}

// readyTeam builds a team with a full starting eleven of identical rating.
func readyTeam(t *testing.T, name string, rating int) *team.Team {
	t.Helper()

	tm := team.New(name)
	eleven := make([]*player.Player, 0, team.StartingElevenSize)
	for i := 0; i < team.StartingElevenSize; i++ {
		p := mustPlayer(t, fmt.Sprintf("%s %d", name, i), rating)
		require.NoError(t, tm.AddPlayer(p))
		eleven = append(eleven, p)
	}
	require.NoError(t, tm.AssignStartingEleven(eleven))
	return tm
}

func newManager(t *testing.T, tm *team.Team) *Manager {
	t.Helper()

	m, err := New(tm, DefaultBudget)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()

	m := newManager(t, team.New("FC Barcelona"))
	assert.Equal(t, 100, m.Budget)

	_, err := New(nil, DefaultBudget)
	require.ErrorIs(t, err, domainerr.ErrValidation)
	_, err = New(team.New("X"), -1)
	require.ErrorIs(t, err, domainerr.ErrValidation)
}

func TestBuyPlayer(t *testing.T) {
	t.Parallel()

	m := newManager(t, team.New("FC Barcelona"))
	gavi := mustPlayer(t, "Gavi", 84)

	require.NoError(t, m.BuyPlayer(gavi, 30))
	assert.Equal(t, 70, m.Budget)
	assert.True(t, m.Team.Has(gavi))

	require.ErrorIs(t, m.BuyPlayer(gavi, 10), domainerr.ErrDuplicate)
	assert.Equal(t, 70, m.Budget)
}

func TestBuyPlayer_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(m *Manager)
		price   int
		wantErr error
	}{
		{
			name:    "insufficient budget",
			price:   101,
			wantErr: ErrInsufficientBudget,
		},
		{
			name:    "negative price",
			price:   -5,
			wantErr: domainerr.ErrValidation,
		},
		{
			name: "squad full",
			setup: func(m *Manager) {
				m.Team.MaxPlayers = 0
			},
			price:   1,
			wantErr: ErrSquadFull,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := newManager(t, team.New("Girona"))
			if tc.setup != nil {
				tc.setup(m)
			}

			err := m.BuyPlayer(mustPlayer(t, "Target", 75), tc.price)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, DefaultBudget, m.Budget)
			assert.Zero(t, m.Team.Len())
		})
	}
}

func TestBuyPlayer_BudgetErrorIsValidation(t *testing.T) {
	t.Parallel()

	m := newManager(t, team.New("Girona"))
	err := m.BuyPlayer(mustPlayer(t, "Expensive", 90), 500)
	require.ErrorIs(t, err, domainerr.ErrValidation)
}

func TestSellPlayer(t *testing.T) {
	t.Parallel()

	m := newManager(t, team.New("FC Barcelona"))
	pedri := mustPlayer(t, "Pedri", 86)
	require.NoError(t, m.BuyPlayer(pedri, 40))

	require.NoError(t, m.SellPlayer(pedri, 55))
	assert.Equal(t, 115, m.Budget)
	assert.False(t, m.Team.Has(pedri))

	require.ErrorIs(t, m.SellPlayer(pedri, 10), domainerr.ErrNotFound)
	assert.Equal(t, 115, m.Budget)
}

func TestTrainTeam_SkipsInjured(t *testing.T) {
	t.Parallel()

	m := newManager(t, team.New("FC Barcelona"))
	fit := mustPlayer(t, "Fit", 80)
	hurt := mustPlayer(t, "Hurt", 80)
	hurt.Injure()
	require.NoError(t, m.Team.AddPlayer(fit))
	require.NoError(t, m.Team.AddPlayer(hurt))

	assert.Equal(t, 1, m.TrainTeam())
	assert.Equal(t, 81, fit.Rating)
	assert.Equal(t, 90, fit.Stamina)
	assert.Equal(t, 80, hurt.Rating)
	assert.Equal(t, 100, hurt.Stamina)
}

func TestRestTeam(t *testing.T) {
	t.Parallel()

	m := newManager(t, team.New("FC Barcelona"))
	tired := mustPlayer(t, "Tired", 80)
	tired.Stamina = 50
	hurt := mustPlayer(t, "Hurt", 80)
	hurt.Stamina = 10
	hurt.Injure()
	require.NoError(t, m.Team.AddPlayer(tired))
	require.NoError(t, m.Team.AddPlayer(hurt))

	m.RestTeam()
	assert.Equal(t, 70, tired.Stamina)
	assert.Equal(t, 30, hurt.Stamina)
}

func TestBenchInjuredPlayers(t *testing.T) {
	t.Parallel()

	m := newManager(t, team.New("Empty"))
	assert.Empty(t, m.BenchInjuredPlayers())

	tm := readyTeam(t, "Sevilla", 70)
	m = newManager(t, tm)
	starter := tm.StartingEleven()[3]
	starter.Injure()

	benched := m.BenchInjuredPlayers()
	assert.Equal(t, []*player.Player{starter}, benched)
	assert.Len(t, tm.StartingEleven(), 10)
	assert.Contains(t, tm.Bench(), starter)
}

func TestSimulateMatch(t *testing.T) {
	t.Parallel()

	home := readyTeam(t, "Home", 90)
	away := readyTeam(t, "Away", 50)
	m := newManager(t, home)

	result, err := m.SimulateMatch(away)
	require.NoError(t, err)
	assert.Equal(t, MatchResult{
		HomeTeam:  "Home",
		AwayTeam:  "Away",
		HomeGoals: 4,
		AwayGoals: 3,
		Winner:    "Home",
		Summary:   "Home wins 4-3!",
	}, result)

	assert.Equal(t, 1, home.Wins)
	assert.Equal(t, 3, home.Points)
	assert.Equal(t, 1, away.Losses)
	assert.Equal(t, 4, away.GoalsConceded)
}

func TestSimulateMatch_AwayWinAndDraw(t *testing.T) {
	t.Parallel()

	weak := readyTeam(t, "Weak", 50)
	strong := readyTeam(t, "Strong", 90)
	result, err := newManager(t, weak).SimulateMatch(strong)
	require.NoError(t, err)
	assert.Equal(t, "Strong", result.Winner)
	assert.Equal(t, "Strong wins 4-3!", result.Summary)

	a := readyTeam(t, "A", 70)
	b := readyTeam(t, "B", 70)
	result, err = newManager(t, a).SimulateMatch(b)
	require.NoError(t, err)
	assert.True(t, result.IsDraw())
	assert.Empty(t, result.Winner)
	assert.Equal(t, "Draw 4-4!", result.Summary)
	assert.Equal(t, 1, a.Points)
	assert.Equal(t, 1, b.Points)
}

func TestSimulateMatch_IncompleteLineup(t *testing.T) {
	t.Parallel()

	home := readyTeam(t, "Home", 80)
	away := team.New("Away")
	m := newManager(t, home)

	_, err := m.SimulateMatch(away)
	require.ErrorIs(t, err, ErrLineupIncomplete)
	assert.Zero(t, home.Played())

	_, err = m.SimulateMatch(home)
	require.ErrorIs(t, err, domainerr.ErrValidation)

	_, err = m.SimulateMatch(nil)
	require.ErrorIs(t, err, domainerr.ErrValidation)
}
