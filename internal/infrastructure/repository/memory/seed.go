package memory

import (
	"bytes"
	_ "embed"
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Teams []seedTeam `yaml:"teams"`
}

type seedTeam struct {
	Name       string       `yaml:"name"`
	Formation  string       `yaml:"formation"`
	MaxPlayers int          `yaml:"max_players"`
	Players    []seedPlayer `yaml:"players"`
}

type seedPlayer struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Age      int    `yaml:"age"`
	Rating   int    `yaml:"rating"`
}

// SeedTeams builds the bundled demo league.
func SeedTeams() ([]*team.Team, error) {
	return ParseSeed(defaultSeed)
}

func LoadSeedFile(path string) ([]*team.Team, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read seed file %s", path)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes a seed document. The first eleven players of a team start and
// the rest sit on the bench.
func ParseSeed(raw []byte) ([]*team.Team, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc seedFile
	if err := dec.Decode(&doc); err != nil {
		return nil, crerr.Wrap(err, "decode seed")
	}

	out := make([]*team.Team, 0, len(doc.Teams))
	for _, item := range doc.Teams {
		t, err := buildSeedTeam(item)
		if err != nil {
			return nil, crerr.Wrapf(err, "seed team %q", item.Name)
		}
		out = append(out, t)
	}
	return out, nil
}

func buildSeedTeam(item seedTeam) (*team.Team, error) {
	t := team.New(strings.TrimSpace(item.Name))
	if item.Formation != "" {
		if err := t.SetFormation(team.Formation(item.Formation)); err != nil {
			return nil, err
		}
	}
	if item.MaxPlayers > 0 {
		if err := t.SetMaxPlayers(item.MaxPlayers); err != nil {
			return nil, err
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	squad := make([]*player.Player, 0, len(item.Players))
	for _, sp := range item.Players {
		position, err := player.ParsePosition(sp.Position)
		if err != nil {
			return nil, err
		}
		p, err := player.New(strings.TrimSpace(sp.Name), position, sp.Age, sp.Rating)
		if err != nil {
			return nil, crerr.Wrapf(err, "player %q", sp.Name)
		}
		if err := t.AddPlayer(p); err != nil {
			return nil, err
		}
		squad = append(squad, p)
	}

	if len(squad) >= team.StartingElevenSize {
		if err := t.AssignLineup(squad[:team.StartingElevenSize], squad[team.StartingElevenSize:]); err != nil {
			return nil, err
		}
	}
	return t, nil
}
