package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	teammock "github.com/riskibarqy/football-manager/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_LoadIsCachedUntilSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewSnapshotRepository(t)
	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))

	stored := team.Snapshot{
		TeamName: "Sevilla",
		Players:  []team.PlayerRecord{{Name: "Navas", Position: "DEFENDER", Age: 40, Rating: 74, Stamina: 80}},
	}
	next.On("Load", mock.Anything, "Sevilla").Return(stored, true, nil).Once()

	for i := 0; i < 3; i++ {
		got, ok, err := repo.Load(ctx, "Sevilla")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, stored, got)
		got.Players[0].Rating = 0
	}

	next.On("Save", ctx, stored).Return(nil).Once()
	require.NoError(t, repo.Save(ctx, stored))

	next.On("Load", mock.Anything, "Sevilla").Return(team.Snapshot{}, false, nil).Once()
	_, ok, err := repo.Load(ctx, "Sevilla")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotRepository_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewSnapshotRepository(t)
	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))
	down := errors.New("connection refused")

	next.On("List", mock.Anything).Return(nil, down).Once()
	_, err := repo.List(ctx)
	require.ErrorIs(t, err, down)

	next.On("List", mock.Anything).Return([]string{"Betis"}, nil).Once()
	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Betis"}, names)

	names, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Betis"}, names)
}

func TestSnapshotRepository_EntriesExpire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	next := teammock.NewSnapshotRepository(t)
	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute, basecache.WithClock(clock)))

	next.On("List", mock.Anything).Return([]string{"A"}, nil).Once()
	_, err := repo.List(ctx)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	next.On("List", mock.Anything).Return([]string{"A", "B"}, nil).Once()
	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestSnapshotRepository_SaveFailureKeepsCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewSnapshotRepository(t)
	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return([]string{"A"}, nil).Once()
	_, err := repo.List(ctx)
	require.NoError(t, err)

	next.On("Save", ctx, mock.Anything).Return(errors.New("read only")).Once()
	require.Error(t, repo.Save(ctx, team.Snapshot{TeamName: "B"}))

	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, names)
}
