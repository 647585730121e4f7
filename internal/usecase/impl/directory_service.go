package impl

import (
	"context"

	"monstermap/internal/domain/entity"
	"monstermap/internal/domain/repository"
	"monstermap/internal/usecase"

	"github.com/paulmach/orb"
)

// variantSearchLimit caps autocomplete results per query.
const variantSearchLimit = 5

type directoryService struct {
	locationRepo repository.LocationRepository
	variantRepo  repository.VariantRepository
}

// NewDirectoryService creates the read-side use case.
func NewDirectoryService(
	locationRepo repository.LocationRepository,
	variantRepo repository.VariantRepository,
) usecase.DirectoryUsecase {
	return &directoryService{
		locationRepo: locationRepo,
		variantRepo:  variantRepo,
	}
}

func (s *directoryService) ListLocations(ctx context.Context, bounds *orb.Bound) ([]*entity.LocationSummary, error) {
	summaries, err := s.locationRepo.ListWithVariants(ctx)
	if err != nil {
		return nil, err
	}

	if bounds == nil {
		return summaries, nil
	}

	filtered := make([]*entity.LocationSummary, 0, len(summaries))
	for _, summary := range summaries {
		if bounds.Contains(orb.Point{summary.Longitude, summary.Latitude}) {
			filtered = append(filtered, summary)
		}
	}

	return filtered, nil
}

func (s *directoryService) SearchVariants(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	return s.variantRepo.SearchNames(ctx, query, variantSearchLimit)
}
