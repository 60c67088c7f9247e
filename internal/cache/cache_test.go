package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbmille/trivia-api/internal/cache"
	"github.com/qbmille/trivia-api/internal/domain"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return cache.NewWithClient(client, time.Minute)
}

func TestStagesRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, ok := c.GetStages(ctx, domain.LangueFR)
	assert.False(t, ok)

	stages := []domain.Stage{
		{ID: 1, Title: "La Genèse", Langue: domain.LangueFR, NumOrder: 1},
		{ID: 2, Title: "L'Exode", Langue: domain.LangueFR, NumOrder: 2},
	}
	require.NoError(t, c.SetStages(ctx, domain.LangueFR, stages))

	got, ok := c.GetStages(ctx, domain.LangueFR)
	require.True(t, ok)
	assert.Equal(t, stages, got)

	// Another langue misses.
	_, ok = c.GetStages(ctx, domain.LangueEN)
	assert.False(t, ok)
}

func TestJeuRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	jeu := domain.Jeu{ID: 7, Langue: domain.LangueFR, NumOrder: 7, StageID: 1}
	require.NoError(t, c.SetJeu(ctx, jeu))

	got, ok := c.GetJeu(ctx, 7)
	require.True(t, ok)
	assert.Equal(t, jeu, got)
}

func TestInvalidateCatalog(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetStages(ctx, domain.LangueFR, []domain.Stage{{ID: 1}}))
	require.NoError(t, c.SetJeu(ctx, domain.Jeu{ID: 7}))

	require.NoError(t, c.InvalidateCatalog(ctx))

	_, ok := c.GetStages(ctx, domain.LangueFR)
	assert.False(t, ok)
	_, ok = c.GetJeu(ctx, 7)
	assert.False(t, ok)
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *cache.Cache
	ctx := context.Background()

	_, ok := c.GetStages(ctx, domain.LangueFR)
	assert.False(t, ok)
	assert.NoError(t, c.SetStages(ctx, domain.LangueFR, nil))
	_, ok = c.GetJeu(ctx, 1)
	assert.False(t, ok)
	assert.NoError(t, c.SetJeu(ctx, domain.Jeu{}))
	assert.NoError(t, c.InvalidateCatalog(ctx))
}
