package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmantra/tagmantra/backend/internal/domain"
	"github.com/tagmantra/tagmantra/backend/internal/seed"
	"github.com/tagmantra/tagmantra/backend/internal/service"
)

func TestSeedService_Run_FreshDatabase(t *testing.T) {
	hashtags := emptyHashtagRepo()
	hashtags.insert = func(context.Context, domain.Hashtag) error { return nil }
	festivals := emptyFestivalRepo()
	festivals.insert = func(context.Context, domain.Festival) error { return nil }

	svc := service.NewSeedService(hashtags, festivals)

	gotHashtags, gotFestivals, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, len(seed.Hashtags()), gotHashtags)
	assert.Equal(t, len(seed.Festivals()), gotFestivals)
}

func TestSeedService_Run_SkipsExisting(t *testing.T) {
	hashtags := emptyHashtagRepo()
	hashtags.insert = func(context.Context, domain.Hashtag) error { return domain.ErrConflict }
	festivals := emptyFestivalRepo()
	festivals.insert = func(context.Context, domain.Festival) error { return domain.ErrConflict }

	svc := service.NewSeedService(hashtags, festivals)

	gotHashtags, gotFestivals, err := svc.Run(context.Background())

	require.NoError(t, err, "re-seeding a seeded database is harmless")
	assert.Zero(t, gotHashtags)
	assert.Zero(t, gotFestivals)
}

func TestSeedService_Run_PropagatesFailure(t *testing.T) {
	dbErr := errors.New("connection reset")
	hashtags := emptyHashtagRepo()
	hashtags.insert = func(context.Context, domain.Hashtag) error { return dbErr }

	svc := service.NewSeedService(hashtags, emptyFestivalRepo())

	_, _, err := svc.Run(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
