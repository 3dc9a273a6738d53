package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
	"github.com/riskibarqy/football-manager/internal/platform/resilience"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

const snapshotTable = "team_snapshots"

var snapshotColumns = mustModelColumns(snapshotTableModel{})

type SnapshotRepository struct {
	db      *sqlx.DB
	breaker *resilience.Breaker
}

// NewSnapshotRepository stores snapshots in team_snapshots. A nil breaker
// sends every call to the database.
func NewSnapshotRepository(db *sqlx.DB, breaker *resilience.Breaker) *SnapshotRepository {
	return &SnapshotRepository{db: db, breaker: breaker}
}

func (r *SnapshotRepository) Save(ctx context.Context, snap team.Snapshot) error {
	name := strings.TrimSpace(snap.TeamName)
	if name == "" {
		return crerr.New("snapshot team name is required")
	}

	payload, err := sonic.Marshal(snap)
	if err != nil {
		return crerr.Wrapf(err, "encode snapshot team=%s", name)
	}

	query, args, err := qb.InsertInto(snapshotTable).
		Columns(snapshotColumns...).
		Values(name, string(payload), len(snap.Players), time.Now().UTC()).
		OnConflictUpdate("team_name").
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build upsert snapshot query")
	}

	err = r.guard(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return crerr.Wrapf(err, "upsert snapshot team=%s", name)
	}
	return nil
}

func (r *SnapshotRepository) Load(ctx context.Context, teamName string) (team.Snapshot, bool, error) {
	query, args, err := qb.Select(snapshotColumns...).
		From(snapshotTable).
		Where(qb.Eq("team_name", strings.TrimSpace(teamName))).
		ToSQL()
	if err != nil {
		return team.Snapshot{}, false, crerr.Wrap(err, "build select snapshot query")
	}

	var (
		row   snapshotTableModel
		found = true
	)
	err = r.guard(ctx, func(ctx context.Context) error {
		err := r.db.GetContext(ctx, &row, query, args...)
		if isNotFound(err) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return team.Snapshot{}, false, crerr.Wrapf(err, "select snapshot team=%s", teamName)
	}
	if !found {
		return team.Snapshot{}, false, nil
	}

	snap, err := decodeSnapshot(row)
	if err != nil {
		return team.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (r *SnapshotRepository) List(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("team_name").
		From(snapshotTable).
		OrderBy("saved_at", "team_name").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list snapshots query")
	}

	var names []string
	err = r.guard(ctx, func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &names, query, args...)
	})
	if err != nil {
		return nil, crerr.Wrap(err, "select snapshot names")
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *SnapshotRepository) guard(ctx context.Context, fn func(context.Context) error) error {
	err := r.breaker.Do(ctx, fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: snapshot database is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return err
}

func decodeSnapshot(row snapshotTableModel) (team.Snapshot, error) {
	var snap team.Snapshot
	if err := sonic.Unmarshal(row.Payload, &snap); err != nil {
		return team.Snapshot{}, crerr.Wrapf(err, "decode snapshot team=%s", row.TeamName)
	}
	// The key column wins if the payload was edited by hand.
	snap.TeamName = row.TeamName
	return snap, nil
}
