package league

import (
	"fmt"
	"slices"

	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

// League is an ordered set of teams competing for points.
type League struct {
	Name string

	teams map[string]*team.Team
	order []string
}

// Stats is a point-in-time record of one team's league performance.
type Stats struct {
	Points        int `json:"points"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsScored   int `json:"goals_scored"`
	GoalsConceded int `json:"goals_conceded"`
}

// Standing represents a league table row for one team.
type Standing struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

func New(name string) *League {
	return &League{
		Name:  name,
		teams: make(map[string]*team.Team),
	}
}

func (l *League) Len() int {
	return len(l.order)
}

// Teams returns the teams in insertion order.
func (l *League) Teams() []*team.Team {
	out := make([]*team.Team, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.teams[id])
	}
	return out
}

// Contains reports whether this exact team object is in the league.
func (l *League) Contains(t *team.Team) bool {
	if t == nil {
		return false
	}
	current, ok := l.teams[t.ID]
	return ok && current == t
}

func (l *League) AddTeam(t *team.Team) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("%w: only teams can be added to a league", domainerr.ErrValidation)
	}
	if _, exists := l.teams[t.ID]; exists {
		return fmt.Errorf("%w: team %s already in league", domainerr.ErrDuplicate, t.Name)
	}

	if l.teams == nil {
		l.teams = make(map[string]*team.Team)
	}
	l.teams[t.ID] = t
	l.order = append(l.order, t.ID)
	return nil
}

func (l *League) RemoveTeam(t *team.Team) error {
	if !l.Contains(t) {
		return fmt.Errorf("%w: team not found in league", domainerr.ErrNotFound)
	}

	delete(l.teams, t.ID)
	l.order = slices.DeleteFunc(l.order, func(id string) bool { return id == t.ID })
	return nil
}

// TeamByName is a case-sensitive exact match; the earliest added team wins.
func (l *League) TeamByName(name string) (*team.Team, bool) {
	for _, id := range l.order {
		if t := l.teams[id]; t.Name == name {
			return t, true
		}
	}
	return nil, false
}

func (l *League) HasTeam(name string) bool {
	_, ok := l.TeamByName(name)
	return ok
}

// TopTeam ranks by points, then goal difference. Earlier teams keep full ties.
func (l *League) TopTeam() (*team.Team, bool) {
	return l.pick(func(candidate, current *team.Team) bool {
		if candidate.Points != current.Points {
			return candidate.Points > current.Points
		}
		return candidate.GoalDifference() > current.GoalDifference()
	})
}

// BottomTeam ranks by fewest points, then worst goal difference.
func (l *League) BottomTeam() (*team.Team, bool) {
	return l.pick(func(candidate, current *team.Team) bool {
		if candidate.Points != current.Points {
			return candidate.Points < current.Points
		}
		return candidate.GoalDifference() < current.GoalDifference()
	})
}

func (l *League) TeamStats(name string) (Stats, error) {
	t, ok := l.TeamByName(name)
	if !ok {
		return Stats{}, fmt.Errorf("%w: team %q", domainerr.ErrNotFound, name)
	}

	return Stats{
		Points:        t.Points,
		Wins:          t.Wins,
		Draws:         t.Draws,
		Losses:        t.Losses,
		GoalsScored:   t.GoalsScored,
		GoalsConceded: t.GoalsConceded,
	}, nil
}

// ReplaceTeam puts next in old's slot, keeping the league order.
func (l *League) ReplaceTeam(old, next *team.Team) error {
	if !l.Contains(old) {
		return fmt.Errorf("%w: old team not in league", domainerr.ErrNotFound)
	}
	if next == nil || next.ID == "" {
		return fmt.Errorf("%w: replacement team is required", domainerr.ErrValidation)
	}
	if old == next {
		return nil
	}
	if _, exists := l.teams[next.ID]; exists {
		return fmt.Errorf("%w: team %s already in league", domainerr.ErrDuplicate, next.Name)
	}

	idx := slices.Index(l.order, old.ID)
	delete(l.teams, old.ID)
	l.teams[next.ID] = next
	l.order[idx] = next.ID
	return nil
}

// Standings builds the full table: points, goal difference, goals scored, then league order.
func (l *League) Standings() []Standing {
	teams := l.Teams()
	slices.SortStableFunc(teams, func(a, b *team.Team) int {
		if a.Points != b.Points {
			return b.Points - a.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return b.GoalDifference() - a.GoalDifference()
		}
		return b.GoalsScored - a.GoalsScored
	})

	out := make([]Standing, 0, len(teams))
	for i, t := range teams {
		out = append(out, Standing{
			Position:       i + 1,
			TeamID:         t.ID,
			TeamName:       t.Name,
			Played:         t.Played(),
			Won:            t.Wins,
			Draw:           t.Draws,
			Lost:           t.Losses,
			GoalsFor:       t.GoalsScored,
			GoalsAgainst:   t.GoalsConceded,
			GoalDifference: t.GoalDifference(),
			Points:         t.Points,
		})
	}
	return out
}

func (l *League) pick(better func(candidate, current *team.Team) bool) (*team.Team, bool) {
	if len(l.order) == 0 {
		return nil, false
	}

	chosen := l.teams[l.order[0]]
	for _, id := range l.order[1:] {
		if candidate := l.teams[id]; better(candidate, chosen) {
			chosen = candidate
		}
	}
	return chosen, true
}
