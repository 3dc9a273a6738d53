package usecase

import (
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type RegistryConfig struct {
	LeagueName     string
	ManagerBudget  int
	TeamMaxPlayers int
}

// Registry owns the running league and one manager per team. The domain types are
// not safe for concurrent use, so every service goes through view or update.
type Registry struct {
	mu       sync.RWMutex
	league   *league.League
	managers map[string]*manager.Manager
	cfg      RegistryConfig
	logger   *logging.Logger
}

func NewRegistry(cfg RegistryConfig, logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.LeagueName) == "" {
		cfg.LeagueName = "League"
	}
	if cfg.ManagerBudget < 0 {
		cfg.ManagerBudget = manager.DefaultBudget
	}
	if cfg.TeamMaxPlayers <= 0 {
		cfg.TeamMaxPlayers = team.DefaultMaxPlayers
	}

	return &Registry{
		league:   league.New(cfg.LeagueName),
		managers: make(map[string]*manager.Manager),
		cfg:      cfg,
		logger:   logger,
	}
}

func (r *Registry) LeagueName() string {
	return r.cfg.LeagueName
}

// Seed enrolls prebuilt teams, typically at startup.
func (r *Registry) Seed(teams []*team.Team) error {
	return r.update(func(*league.League) error {
		for _, t := range teams {
			if err := t.Validate(); err != nil {
				return fmt.Errorf("seed team %q: %w", t.Name, err)
			}
			if _, err := r.enroll(t, r.cfg.ManagerBudget); err != nil {
				return fmt.Errorf("seed team %q: %w", t.Name, err)
			}
		}
		r.logger.Info("league seeded", "league", r.cfg.LeagueName, "teams", len(teams))
		return nil
	})
}

func (r *Registry) view(fn func(*league.League) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(r.league)
}

func (r *Registry) update(fn func(*league.League) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.league)
}

// lookup resolves a team and its manager. Callers must hold the lock.
func (r *Registry) lookup(name string) (*team.Team, *manager.Manager, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	t, ok := r.league.TeamByName(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: team=%s", ErrNotFound, name)
	}
	return t, r.managers[t.ID], nil
}

// enroll adds t with a fresh manager. Team names are unique within the registry.
func (r *Registry) enroll(t *team.Team, budget int) (*manager.Manager, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if r.league.HasTeam(t.Name) {
		return nil, fmt.Errorf("%w: team %s already registered", ErrConflict, t.Name)
	}

	m, err := manager.New(t, budget)
	if err != nil {
		return nil, err
	}
	if err := r.league.AddTeam(t); err != nil {
		return nil, err
	}
	r.managers[t.ID] = m
	return m, nil
}

func (r *Registry) withdraw(t *team.Team) error {
	if err := r.league.RemoveTeam(t); err != nil {
		return err
	}
	delete(r.managers, t.ID)
	return nil
}

// replace swaps old for next in place. The club's budget carries over.
func (r *Registry) replace(old, next *team.Team) (*manager.Manager, error) {
	budget := r.cfg.ManagerBudget
	if current, ok := r.managers[old.ID]; ok {
		budget = current.Budget
	}

	m, err := manager.New(next, budget)
	if err != nil {
		return nil, err
	}
	if err := r.league.ReplaceTeam(old, next); err != nil {
		return nil, err
	}
	delete(r.managers, old.ID)
	r.managers[next.ID] = m
	return m, nil
}
