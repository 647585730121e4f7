package impl

import (
	"context"
	"testing"

	"monstermap/internal/domain/entity"
	mockRepo "monstermap/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryAt(name string, lat, lng float64) *entity.LocationSummary {
	return &entity.LocationSummary{
		Location: entity.Location{
			ID:        uuid.New(),
			Name:      name,
			Latitude:  lat,
			Longitude: lng,
		},
	}
}

func TestDirectoryService_ListLocations_NoBounds(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	service := NewDirectoryService(locationRepo, variantRepo)

	ctx := context.Background()
	expected := []*entity.LocationSummary{
		summaryAt("Shop A", 25.0, 121.5),
		summaryAt("Shop B", 24.1, 120.6),
	}

	locationRepo.EXPECT().ListWithVariants(ctx).Return(expected, nil)

	got, err := service.ListLocations(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestDirectoryService_ListLocations_FiltersByBounds(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	service := NewDirectoryService(locationRepo, variantRepo)

	ctx := context.Background()
	inside := summaryAt("Taipei", 25.03, 121.56)
	outside := summaryAt("Kaohsiung", 22.63, 120.30)

	locationRepo.EXPECT().
		ListWithVariants(ctx).
		Return([]*entity.LocationSummary{inside, outside}, nil)

	bounds := orb.Bound{Min: orb.Point{121.0, 24.5}, Max: orb.Point{122.0, 25.5}}

	got, err := service.ListLocations(ctx, &bounds)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside, got[0])
}

func TestDirectoryService_SearchVariants(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	service := NewDirectoryService(locationRepo, variantRepo)

	ctx := context.Background()

	variantRepo.EXPECT().
		SearchNames(ctx, "ult", 5).
		Return([]string{"Ultra", "Ultra Paradise"}, nil)

	got, err := service.SearchVariants(ctx, "ult")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ultra", "Ultra Paradise"}, got)
}

func TestDirectoryService_SearchVariants_EmptyQuery(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	service := NewDirectoryService(locationRepo, variantRepo)

	got, err := service.SearchVariants(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
