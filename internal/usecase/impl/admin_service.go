package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"monstermap/config"
	"monstermap/internal/domain/entity"
	domainerrors "monstermap/internal/domain/errors"
	"monstermap/internal/domain/repository"
	"monstermap/internal/domain/service"
	"monstermap/internal/errors"
	"monstermap/internal/usecase"

	"github.com/google/uuid"
)

type adminService struct {
	cfg          *config.Config
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAdminService creates the moderation use case.
func NewAdminService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	locationRepo repository.LocationRepository,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		cfg:          cfg,
		txManager:    txManager,
		locationRepo: locationRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Authenticate compares the supplied secret against the configured one in
// constant time and issues a bearer token on success.
func (s *adminService) Authenticate(ctx context.Context, secret string) (string, error) {
	configured := s.cfg.Admin.Secret
	if configured == "" {
		return "", errors.New("admin secret is not configured")
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(configured)) != 1 {
		s.logger.Warn("admin authentication rejected")

		return "", domainerrors.ErrInvalidAdminSecret
	}

	token, err := s.tokenService.IssueToken()
	if err != nil {
		return "", errors.Wrap(err, "failed to issue admin token")
	}

	return token, nil
}

func (s *adminService) ListLocations(ctx context.Context) ([]*entity.AdminLocationSummary, error) {
	return s.locationRepo.ListForAdmin(ctx)
}

// DeleteLocation removes the location and its dependents in one transaction,
// children first so the foreign keys never dangle mid-way.
func (s *adminService) DeleteLocation(ctx context.Context, locationID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		locationRepo := f.NewLocationRepository()

		if _, err := locationRepo.FindByID(ctx, locationID); err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return domainerrors.ErrLocationNotFound
			}

			return err
		}

		if err := f.NewVariantRepository().DeleteByLocation(ctx, locationID); err != nil {
			return err
		}
		if err := f.NewSubmissionRepository().DeleteByLocation(ctx, locationID); err != nil {
			return err
		}

		if err := locationRepo.Delete(ctx, locationID); err != nil {
			return err
		}

		s.logger.Info("location deleted", slog.String("locationID", locationID.String()))

		return nil
	})
}

// SetNote records the moderation note on the location's submission history.
func (s *adminService) SetNote(ctx context.Context, locationID uuid.UUID, note string) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewLocationRepository().FindByID(ctx, locationID); err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return domainerrors.ErrLocationNotFound
			}

			return err
		}

		return f.NewSubmissionRepository().SetNotesByLocation(ctx, locationID, note)
	})
}
