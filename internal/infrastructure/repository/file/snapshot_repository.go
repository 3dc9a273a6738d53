package file

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/valyala/bytebufferpool"
)

const (
	snapshotExt = ".json"
	tempPrefix  = ".snapshot-"
)

// SnapshotRepository keeps one indented JSON document per team in dir.
type SnapshotRepository struct {
	mu  sync.Mutex
	dir string
}

func NewSnapshotRepository(dir string) (*SnapshotRepository, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("snapshot dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create snapshot dir %s", dir)
	}
	return &SnapshotRepository{dir: dir}, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snap team.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(snap.TeamName) == "" {
		return crerr.New("snapshot team name is required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigStd.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return crerr.Wrapf(err, "encode snapshot team=%s", snap.TeamName)
	}

	path := r.pathFor(snap.TeamName)
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, tempPrefix+"*")
	if err != nil {
		return crerr.Wrap(err, "create temp snapshot")
	}
	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return crerr.Wrapf(err, "write snapshot team=%s", snap.TeamName)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return crerr.Wrap(err, "close temp snapshot")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return crerr.Wrapf(err, "move snapshot into place team=%s", snap.TeamName)
	}
	return nil
}

func (r *SnapshotRepository) Load(ctx context.Context, teamName string) (team.Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return team.Snapshot{}, false, err
	}

	raw, err := os.ReadFile(r.pathFor(strings.TrimSpace(teamName)))
	if errors.Is(err, fs.ErrNotExist) {
		return team.Snapshot{}, false, nil
	}
	if err != nil {
		return team.Snapshot{}, false, crerr.Wrapf(err, "read snapshot team=%s", teamName)
	}

	var snap team.Snapshot
	if err := sonic.Unmarshal(raw, &snap); err != nil {
		return team.Snapshot{}, false, crerr.Wrapf(err, "decode snapshot team=%s", teamName)
	}
	return snap, true, nil
}

// List returns team names sorted by their file name.
func (r *SnapshotRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, crerr.Wrapf(err, "list snapshot dir %s", r.dir)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		teamName, err := url.PathUnescape(strings.TrimSuffix(name, snapshotExt))
		if err != nil {
			continue
		}
		out = append(out, teamName)
	}
	return out, nil
}

// pathFor escapes the team name so any name maps to a single file inside dir.
func (r *SnapshotRepository) pathFor(teamName string) string {
	return filepath.Join(r.dir, url.PathEscape(teamName)+snapshotExt)
}
