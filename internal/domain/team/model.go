package team

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/riskibarqy/football-manager/internal/domain/domainerr"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// Formation is the tactical shape a team lines up in.
type Formation string

const (
	Formation442 Formation = "4-4-2"
	Formation433 Formation = "4-3-3"
	Formation352 Formation = "3-5-2"
)

func (f Formation) Valid() bool {
	switch f {
	case Formation442, Formation433, Formation352:
		return true
	}
	return false
}

const (
	StartingElevenSize = 11
	DefaultMaxPlayers  = 25

	PointsForWin  = 3
	PointsForDraw = 1
)

// Team is a football club: a roster, a lineup and a running league record.
type Team struct {
	ID            string
	Name          string
	Formation     Formation
	MaxPlayers    int
	GoalsScored   int
	GoalsConceded int
	Wins          int
	Draws         int
	Losses        int
	Points        int

	players        map[string]*player.Player
	order          []string
	startingEleven []string
	bench          []string
}

func New(name string) *Team {
	return &Team{
		ID:         uuid.NewString(),
		Name:       name,
		Formation:  Formation442,
		MaxPlayers: DefaultMaxPlayers,
		players:    make(map[string]*player.Player),
	}
}

func (t *Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: team name is required", domainerr.ErrValidation)
	}
	if !t.Formation.Valid() {
		return fmt.Errorf("%w: unsupported formation %q", domainerr.ErrValidation, t.Formation)
	}
	if t.MaxPlayers <= 0 {
		return fmt.Errorf("%w: team max players must be greater than zero", domainerr.ErrValidation)
	}
	return nil
}

// Has reports whether this exact player object is on the roster.
func (t *Team) Has(p *player.Player) bool {
	if p == nil {
		return false
	}
	current, ok := t.players[p.ID]
	return ok && current == p
}

func (t *Team) Player(playerID string) (*player.Player, bool) {
	p, ok := t.players[playerID]
	return p, ok
}

func (t *Team) Len() int {
	return len(t.order)
}

func (t *Team) IsFull() bool {
	return len(t.order) >= t.MaxPlayers
}

// Players returns the roster in insertion order.
func (t *Team) Players() []*player.Player {
	return t.resolve(t.order)
}

func (t *Team) StartingEleven() []*player.Player {
	return t.resolve(t.startingEleven)
}

func (t *Team) Bench() []*player.Player {
	return t.resolve(t.bench)
}

func (t *Team) AddPlayer(p *player.Player) error {
	if err := t.checkAddable(p); err != nil {
		return err
	}
	t.insert(p)
	return nil
}

// RemovePlayer also drops the player from the bench. Removing a starter clears the
// starting eleven, which must then be reassigned.
func (t *Team) RemovePlayer(p *player.Player) error {
	if !t.Has(p) {
		return fmt.Errorf("%w: player %s is not in team %s", domainerr.ErrNotFound, playerName(p), t.Name)
	}
	t.remove(p.ID)
	return nil
}

func (t *Team) SetFormation(f Formation) error {
	if !f.Valid() {
		return fmt.Errorf("%w: unsupported formation %q", domainerr.ErrValidation, f)
	}
	t.Formation = f
	return nil
}

func (t *Team) SetMaxPlayers(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: team max players must be greater than zero", domainerr.ErrValidation)
	}
	t.MaxPlayers = n
	return nil
}

// AssignStartingEleven replaces the lineup wholesale. The bench is left as it is.
func (t *Team) AssignStartingEleven(players []*player.Player) error {
	ids, err := t.elevenIDs(players)
	if err != nil {
		return err
	}
	t.startingEleven = ids
	return nil
}

// AssignLineup sets starters and substitutes together. Nothing changes unless both are valid.
func (t *Team) AssignLineup(starters, bench []*player.Player) error {
	startIDs, err := t.elevenIDs(starters)
	if err != nil {
		return err
	}
	benchIDs, err := t.memberIDs(bench)
	if err != nil {
		return err
	}
	for _, id := range benchIDs {
		if slices.Contains(startIDs, id) {
			return fmt.Errorf("%w: player %s cannot start and sit on the bench", domainerr.ErrValidation, t.players[id].Name)
		}
	}

	t.startingEleven = startIDs
	t.bench = benchIDs
	return nil
}

// AssignBench replaces the substitutes. Starters cannot sit on the bench.
func (t *Team) AssignBench(players []*player.Player) error {
	ids, err := t.memberIDs(players)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if slices.Contains(t.startingEleven, id) {
			return fmt.Errorf("%w: player %s is already in the starting eleven", domainerr.ErrValidation, t.players[id].Name)
		}
	}
	t.bench = ids
	return nil
}

// BenchInjuredStarters moves injured starters to the bench. The lineup stays short
// until a full eleven is assigned again.
func (t *Team) BenchInjuredStarters() []*player.Player {
	if len(t.startingEleven) == 0 {
		return nil
	}

	var benched []*player.Player
	lineup := make([]string, 0, len(t.startingEleven))
	for _, id := range t.startingEleven {
		p := t.players[id]
		if !p.Injured {
			lineup = append(lineup, id)
			continue
		}
		benched = append(benched, p)
	}
	for _, p := range benched {
		if !slices.Contains(t.bench, p.ID) {
			t.bench = append(t.bench, p.ID)
		}
	}
	t.startingEleven = lineup

	return benched
}

func (t *Team) UpdateMatchResult(goalsFor, goalsAgainst int) error {
	if goalsFor < 0 || goalsAgainst < 0 {
		return fmt.Errorf("%w: goals cannot be negative", domainerr.ErrValidation)
	}

	t.GoalsScored += goalsFor
	t.GoalsConceded += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		t.Wins++
		t.Points += PointsForWin
	case goalsFor < goalsAgainst:
		t.Losses++
	default:
		t.Draws++
		t.Points += PointsForDraw
	}
	return nil
}

// AdjustPoints applies an externally decided correction, e.g. a deduction.
func (t *Team) AdjustPoints(delta int) {
	t.Points += delta
}

func (t *Team) GoalDifference() int {
	return t.GoalsScored - t.GoalsConceded
}

func (t *Team) Played() int {
	return t.Wins + t.Draws + t.Losses
}

// ResetRecord clears the league record for a new season. The roster is kept.
func (t *Team) ResetRecord() {
	t.GoalsScored = 0
	t.GoalsConceded = 0
	t.Wins = 0
	t.Draws = 0
	t.Losses = 0
	t.Points = 0
}

func (t *Team) AverageRating() float64 {
	return t.average(func(p *player.Player) int { return p.Rating })
}

func (t *Team) AverageAge() float64 {
	return t.average(func(p *player.Player) int { return p.Age })
}

func (t *Team) InjuredPlayers() []*player.Player {
	return t.filter(func(p *player.Player) bool { return p.Injured })
}

func (t *Team) PlayersByPosition(position player.Position) []*player.Player {
	return t.filter(func(p *player.Player) bool { return p.Position == position })
}

func (t *Team) LoanedPlayers() []*player.Player {
	return t.filter(func(p *player.Player) bool { return p.OnLoan })
}

func (t *Team) BestPlayer() *player.Player {
	return t.maxBy(func(p *player.Player) int { return p.Rating })
}

func (t *Team) TopScorer() *player.Player {
	return t.maxBy(func(p *player.Player) int { return p.Goals })
}

func (t *Team) TopAssistant() *player.Player {
	return t.maxBy(func(p *player.Player) int { return p.Assists })
}

func (t *Team) MostActivePlayer() *player.Player {
	return t.maxBy(func(p *player.Player) int { return p.MatchesPlayed })
}

// SwapPlayers replaces out with in. Both sides are checked before anything changes.
func (t *Team) SwapPlayers(out, in *player.Player) error {
	if !t.Has(out) {
		return fmt.Errorf("%w: player to remove %s is not in team %s", domainerr.ErrNotFound, playerName(out), t.Name)
	}
	if in == out {
		return nil
	}
	if err := t.checkAddable(in); err != nil {
		return err
	}

	t.remove(out.ID)
	t.insert(in)
	return nil
}

func (t *Team) checkAddable(p *player.Player) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("%w: player is required", domainerr.ErrValidation)
	}
	if _, exists := t.players[p.ID]; exists {
		return fmt.Errorf("%w: player %s already in team %s", domainerr.ErrDuplicate, p.Name, t.Name)
	}
	if p.Retired {
		return fmt.Errorf("%w: cannot add retired player %s", domainerr.ErrValidation, p.Name)
	}
	return nil
}

func (t *Team) insert(p *player.Player) {
	if t.players == nil {
		t.players = make(map[string]*player.Player)
	}
	t.players[p.ID] = p
	t.order = append(t.order, p.ID)
}

func (t *Team) remove(id string) {
	delete(t.players, id)
	t.order = without(t.order, id)
	t.bench = without(t.bench, id)
	if slices.Contains(t.startingEleven, id) {
		t.startingEleven = nil
	}
}

func (t *Team) elevenIDs(players []*player.Player) ([]string, error) {
	if len(players) != StartingElevenSize {
		return nil, fmt.Errorf("%w: starting eleven must contain %d players, got %d", domainerr.ErrValidation, StartingElevenSize, len(players))
	}
	return t.memberIDs(players)
}

func (t *Team) memberIDs(players []*player.Player) ([]string, error) {
	ids := make([]string, 0, len(players))
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if !t.Has(p) {
			return nil, fmt.Errorf("%w: %s not in team %s", domainerr.ErrValidation, playerName(p), t.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", domainerr.ErrValidation, p.Name)
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (t *Team) resolve(ids []string) []*player.Player {
	out := make([]*player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.players[id])
	}
	return out
}

func (t *Team) filter(keep func(*player.Player) bool) []*player.Player {
	out := make([]*player.Player, 0)
	for _, id := range t.order {
		if p := t.players[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// maxBy keeps the earliest player on ties.
func (t *Team) maxBy(score func(*player.Player) int) *player.Player {
	var best *player.Player
	for _, id := range t.order {
		p := t.players[id]
		if best == nil || score(p) > score(best) {
			best = p
		}
	}
	return best
}

func (t *Team) average(value func(*player.Player) int) float64 {
	if len(t.order) == 0 {
		return 0
	}
	total := 0
	for _, id := range t.order {
		total += value(t.players[id])
	}
	return float64(total) / float64(len(t.order))
}

func playerName(p *player.Player) string {
	if p == nil {
		return "<nil>"
	}
	return p.Name
}

func without(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(candidate string) bool { return candidate == id })
}
