package service_test

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
	"github.com/qbmille/trivia-api/internal/service"
)

// countingCatalogRepo embeds the interface so only the methods a test
// exercises need overriding.
type countingCatalogRepo struct {
	service.CatalogRepository

	stages        []domain.Stage
	findAllStages int
}

func (r *countingCatalogRepo) FindAllStages(_ context.Context, langue string) ([]domain.Stage, error) {
	r.findAllStages++

	var out []domain.Stage
	for _, s := range r.stages {
		if s.Langue == langue {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *countingCatalogRepo) CreateStage(_ context.Context, stage domain.Stage) (domain.Stage, error) {
	stage.ID = uint(len(r.stages) + 1)
	r.stages = append(r.stages, stage)
	return stage, nil
}

func newMiniredisCache(t *testing.T) *cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return cache.NewWithClient(client, time.Minute)
}

func TestListStages_ReadThrough(t *testing.T) {
	repo := &countingCatalogRepo{
		stages: []domain.Stage{{ID: 1, Title: "La Genèse", Langue: domain.LangueFR, NumOrder: 1}},
	}
	svc := service.NewCatalogService(repo, newMiniredisCache(t))
	ctx := context.Background()

	first, err := svc.ListStages(ctx, domain.LangueFR)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListStages(ctx, domain.LangueFR)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, repo.findAllStages, "second read must come from the cache")
}

func TestCreateStage_InvalidatesCache(t *testing.T) {
	repo := &countingCatalogRepo{
		stages: []domain.Stage{{ID: 1, Title: "La Genèse", Langue: domain.LangueFR, NumOrder: 1}},
	}
	svc := service.NewCatalogService(repo, newMiniredisCache(t))
	ctx := context.Background()

	_, err := svc.ListStages(ctx, domain.LangueFR)
	require.NoError(t, err)

	_, err = svc.CreateStage(ctx, domain.Stage{Title: "L'Exode", Langue: domain.LangueFR, NumOrder: 2})
	require.NoError(t, err)

	stages, err := svc.ListStages(ctx, domain.LangueFR)
	require.NoError(t, err)
	assert.Len(t, stages, 2, "list after a write must see the new stage")
	assert.Equal(t, 2, repo.findAllStages)
}

func TestListStages_NilCache(t *testing.T) {
	repo := &countingCatalogRepo{
		stages: []domain.Stage{{ID: 1, Langue: domain.LangueFR}},
	}
	svc := service.NewCatalogService(repo, nil)

	stages, err := svc.ListStages(context.Background(), domain.LangueFR)
	require.NoError(t, err)
	assert.Len(t, stages, 1)

	_, err = svc.ListStages(context.Background(), domain.LangueFR)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.findAllStages, "without redis every read hits the repository")
}
