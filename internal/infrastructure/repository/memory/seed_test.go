package memory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTeams_Bundled(t *testing.T) {
	t.Parallel()

	teams, err := SeedTeams()
	require.NoError(t, err)
	require.Len(t, teams, 2)

	for _, tm := range teams {
		assert.NoError(t, tm.Validate())
		assert.Len(t, tm.StartingEleven(), team.StartingElevenSize, tm.Name)
		assert.Len(t, tm.Bench(), tm.Len()-team.StartingElevenSize, tm.Name)
	}
	assert.Equal(t, "FC Barcelona", teams[0].Name)
	assert.Equal(t, team.Formation433, teams[0].Formation)
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
		check   func(t *testing.T, teams []*team.Team)
	}{
		{
			name: "small squad has no lineup",
			raw: `
teams:
  - name: Girona
    max_players: 20
    players:
      - { name: Stuani, position: forward, age: 38, rating: 78 }
`,
			check: func(t *testing.T, teams []*team.Team) {
				require.Len(t, teams, 1)
				assert.Equal(t, 20, teams[0].MaxPlayers)
				assert.Equal(t, 1, teams[0].Len())
				assert.Empty(t, teams[0].StartingEleven())
			},
		},
		{
			name: "bad position",
			raw: `
teams:
  - name: Girona
    players:
      - { name: Stuani, position: striker, age: 38, rating: 78 }
`,
			wantErr: domainerr.ErrValidation,
		},
		{
			name: "bad formation",
			raw: `
teams:
  - name: Girona
    formation: 4-2-4
`,
			wantErr: domainerr.ErrValidation,
		},
		{
			name: "rating out of range",
			raw: `
teams:
  - name: Girona
    players:
      - { name: Stuani, position: FORWARD, age: 38, rating: 101 }
`,
			wantErr: domainerr.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			teams, err := ParseSeed([]byte(tc.raw))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			tc.check(t, teams)
		})
	}
}

func TestParseSeed_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := ParseSeed([]byte("teams:\n  - name: Girona\n    stadium: Montilivi\n"))
	require.Error(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teams:\n  - name: Leganes\n"), 0o600))

	teams, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Leganes", teams[0].Name)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
