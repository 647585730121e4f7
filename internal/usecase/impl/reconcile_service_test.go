package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"monstermap/internal/domain/entity"
	domainerrors "monstermap/internal/domain/errors"
	"monstermap/internal/domain/repository"
	mockRepo "monstermap/internal/mocks/repository"
	"monstermap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reconcileServiceFixtures holds all test dependencies for reconcile service tests.
type reconcileServiceFixtures struct {
	service   usecase.ReconcileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestReconcileService(t *testing.T) reconcileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewReconcileService(txManager, logger)

	return reconcileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

// onExecute wires the transaction mock to run the given setup against fresh
// repository mocks and propagate the callback's error, the way the real
// manager commits or rolls back.
func (fx reconcileServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) *mockRepo.MockTransactionManager_Execute_Call {
	return fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func TestReconcileService_SubmitLocation_CreatesNewLocation(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	input := &usecase.SubmitLocationInput{
		Name:      "7-Eleven Xinyi",
		Address:   "No. 1, Xinyi Rd, Taipei",
		Latitude:  25.033,
		Longitude: 121.565,
		Variants:  []string{"Pipeline Punch", "Ultra"},
	}

	var createdID uuid.UUID
	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		variantRepo := mockRepo.NewMockVariantRepository(t)
		submissionRepo := mockRepo.NewMockSubmissionRepository(t)

		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewVariantRepository().Return(variantRepo)
		factory.EXPECT().NewSubmissionRepository().Return(submissionRepo)

		locationRepo.EXPECT().
			FindByNaturalKey(ctx, input.NaturalKey()).
			Return(nil, repository.ErrLocationNotFound)

		locationRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Location")).
			Run(func(ctx context.Context, location *entity.Location) {
				createdID = location.ID
				assert.Equal(t, input.Name, location.Name)
				assert.Equal(t, input.Address, location.Address)
			}).
			Return(nil)

		submissionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Submission")).
			Run(func(ctx context.Context, submission *entity.Submission) {
				assert.False(t, submission.IsUpdate)
				assert.Equal(t, input.Variants, submission.Variants)
			}).
			Return(nil)

		variantRepo.EXPECT().
			ListNamesByLocation(ctx, mock.AnythingOfType("uuid.UUID")).
			Return(nil, nil)
		variantRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Variant")).
			Return(nil).
			Times(2)
		variantRepo.EXPECT().
			DeleteByNames(ctx, mock.AnythingOfType("uuid.UUID"), []string(nil)).
			Return(nil)
	})

	locationID, err := fx.service.SubmitLocation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, createdID, locationID)
}

func TestReconcileService_SubmitLocation_ConvergesExistingVariants(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	existing := &entity.Location{
		ID:        uuid.New(),
		Name:      "Shop A",
		Address:   "1 Main St",
		Latitude:  25.0,
		Longitude: 121.0,
	}
	input := &usecase.SubmitLocationInput{
		Name:      existing.Name,
		Address:   existing.Address,
		Latitude:  existing.Latitude,
		Longitude: existing.Longitude,
		Variants:  []string{"Zero", "Ultra"},
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		variantRepo := mockRepo.NewMockVariantRepository(t)
		submissionRepo := mockRepo.NewMockSubmissionRepository(t)

		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewVariantRepository().Return(variantRepo)
		factory.EXPECT().NewSubmissionRepository().Return(submissionRepo)

		locationRepo.EXPECT().
			FindByNaturalKey(ctx, input.NaturalKey()).
			Return(existing, nil)
		locationRepo.EXPECT().
			FindByIDForUpdate(ctx, existing.ID).
			Return(existing, nil)

		submissionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Submission")).
			Run(func(ctx context.Context, submission *entity.Submission) {
				assert.True(t, submission.IsUpdate)
				assert.Equal(t, existing.ID, submission.LocationID)
			}).
			Return(nil)

		// Stored {Original, Zero} + requested {Zero, Ultra}:
		// Zero survives with a reconfirmation, Ultra is new, Original goes.
		variantRepo.EXPECT().
			ListNamesByLocation(ctx, existing.ID).
			Return([]string{"Original", "Zero"}, nil)
		variantRepo.EXPECT().
			Reconfirm(ctx, existing.ID, "Zero", "anonymous", mock.AnythingOfType("time.Time")).
			Return(nil)
		variantRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Variant")).
			Run(func(ctx context.Context, variant *entity.Variant) {
				assert.Equal(t, "Ultra", variant.Name)
				assert.Equal(t, 1, variant.ConfirmationCount)
			}).
			Return(nil)
		variantRepo.EXPECT().
			DeleteByNames(ctx, existing.ID, []string{"Original"}).
			Return(nil)
	})

	locationID, err := fx.service.SubmitLocation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, locationID)
}

func TestReconcileService_SubmitLocation_DeduplicatesRequestedVariants(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	input := &usecase.SubmitLocationInput{
		Name:      "Shop B",
		Address:   "2 Main St",
		Latitude:  25.0,
		Longitude: 121.0,
		Variants:  []string{"Mango Loco", "Mango Loco"},
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		variantRepo := mockRepo.NewMockVariantRepository(t)
		submissionRepo := mockRepo.NewMockSubmissionRepository(t)

		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewVariantRepository().Return(variantRepo)
		factory.EXPECT().NewSubmissionRepository().Return(submissionRepo)

		locationRepo.EXPECT().
			FindByNaturalKey(ctx, input.NaturalKey()).
			Return(nil, repository.ErrLocationNotFound)
		locationRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Location")).
			Return(nil)
		submissionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Submission")).
			Return(nil)

		variantRepo.EXPECT().
			ListNamesByLocation(ctx, mock.AnythingOfType("uuid.UUID")).
			Return(nil, nil)
		variantRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Variant")).
			Return(nil).
			Once()
		variantRepo.EXPECT().
			DeleteByNames(ctx, mock.AnythingOfType("uuid.UUID"), []string(nil)).
			Return(nil)
	})

	_, err := fx.service.SubmitLocation(ctx, input)
	require.NoError(t, err)
}

func TestReconcileService_SubmitLocation_RetriesOnceOnNaturalKeyRace(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	winnerID := uuid.New()
	input := &usecase.SubmitLocationInput{
		Name:      "Shop C",
		Address:   "3 Main St",
		Latitude:  25.0,
		Longitude: 121.0,
		Variants:  []string{"Ultra"},
	}

	// First attempt loses the insert race.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateNaturalKey).
		Once()

	// Second attempt resolves against the winner's row.
	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		variantRepo := mockRepo.NewMockVariantRepository(t)
		submissionRepo := mockRepo.NewMockSubmissionRepository(t)

		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewVariantRepository().Return(variantRepo)
		factory.EXPECT().NewSubmissionRepository().Return(submissionRepo)

		winner := &entity.Location{ID: winnerID, Name: input.Name, Address: input.Address}
		locationRepo.EXPECT().
			FindByNaturalKey(ctx, input.NaturalKey()).
			Return(winner, nil)
		locationRepo.EXPECT().
			FindByIDForUpdate(ctx, winnerID).
			Return(winner, nil)

		submissionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Submission")).
			Return(nil)

		variantRepo.EXPECT().
			ListNamesByLocation(ctx, winnerID).
			Return([]string{"Ultra"}, nil)
		variantRepo.EXPECT().
			Reconfirm(ctx, winnerID, "Ultra", "anonymous", mock.AnythingOfType("time.Time")).
			Return(nil)
		variantRepo.EXPECT().
			DeleteByNames(ctx, winnerID, []string(nil)).
			Return(nil)
	}).Once()

	locationID, err := fx.service.SubmitLocation(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, winnerID, locationID)
}

func TestReconcileService_SubmitLocation_PersistentConflictIsStoreError(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	input := &usecase.SubmitLocationInput{
		Name:      "Shop D",
		Address:   "4 Main St",
		Latitude:  25.0,
		Longitude: 121.0,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateNaturalKey).
		Times(2)

	_, err := fx.service.SubmitLocation(ctx, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestReconcileService_SubmitLocation_Validation(t *testing.T) {
	fx := createTestReconcileService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.SubmitLocationInput
	}{
		{
			name:  "missing name",
			input: &usecase.SubmitLocationInput{Address: "1 Main St", Latitude: 25, Longitude: 121},
		},
		{
			name:  "missing address",
			input: &usecase.SubmitLocationInput{Name: "Shop", Latitude: 25, Longitude: 121},
		},
		{
			name:  "non-finite latitude",
			input: &usecase.SubmitLocationInput{Name: "Shop", Address: "1 Main St", Latitude: math.NaN(), Longitude: 121},
		},
		{
			name:  "infinite longitude",
			input: &usecase.SubmitLocationInput{Name: "Shop", Address: "1 Main St", Latitude: 25, Longitude: math.Inf(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.SubmitLocation(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestReconcileService_UpdateLocation_MergesSuppliedFields(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	locationID := uuid.New()
	emptyName := ""
	newLat := 24.99

	existing := &entity.Location{
		ID:        locationID,
		Name:      "Shop A",
		Address:   "1 Main St",
		Latitude:  25.0,
		Longitude: 121.0,
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		locationRepo.EXPECT().
			FindByIDForUpdate(ctx, locationID).
			Return(existing, nil)

		// Empty-string name is "no change"; only latitude moves.
		locationRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Location")).
			Run(func(ctx context.Context, location *entity.Location) {
				assert.Equal(t, "Shop A", location.Name)
				assert.Equal(t, newLat, location.Latitude)
			}).
			Return(nil)
	})

	err := fx.service.UpdateLocation(ctx, locationID, &usecase.UpdateLocationInput{
		Name:     &emptyName,
		Latitude: &newLat,
	})
	require.NoError(t, err)
}

func TestReconcileService_UpdateLocation_NoFields_NoWrite(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		locationRepo.EXPECT().
			FindByIDForUpdate(ctx, locationID).
			Return(&entity.Location{ID: locationID}, nil)
	})

	err := fx.service.UpdateLocation(ctx, locationID, &usecase.UpdateLocationInput{})
	require.NoError(t, err)
}

func TestReconcileService_UpdateLocation_EmptyVariantListClearsAll(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	locationID := uuid.New()
	noVariants := []string{}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		variantRepo := mockRepo.NewMockVariantRepository(t)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewVariantRepository().Return(variantRepo)

		locationRepo.EXPECT().
			FindByIDForUpdate(ctx, locationID).
			Return(&entity.Location{ID: locationID}, nil)

		variantRepo.EXPECT().
			ListNamesByLocation(ctx, locationID).
			Return([]string{"Original", "Zero"}, nil)
		variantRepo.EXPECT().
			DeleteByNames(ctx, locationID, []string{"Original", "Zero"}).
			Return(nil)
	})

	err := fx.service.UpdateLocation(ctx, locationID, &usecase.UpdateLocationInput{
		Variants: &noVariants,
	})
	require.NoError(t, err)
}

func TestReconcileService_UpdateLocation_VariantDiffWithoutReconfirmation(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	locationID := uuid.New()
	variants := []string{"Zero", "Ultra"}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		variantRepo := mockRepo.NewMockVariantRepository(t)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)
		factory.EXPECT().NewVariantRepository().Return(variantRepo)

		locationRepo.EXPECT().
			FindByIDForUpdate(ctx, locationID).
			Return(&entity.Location{ID: locationID}, nil)

		// Zero survives untouched: the edit path never bumps counters.
		variantRepo.EXPECT().
			ListNamesByLocation(ctx, locationID).
			Return([]string{"Original", "Zero"}, nil)
		variantRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Variant")).
			Run(func(ctx context.Context, variant *entity.Variant) {
				assert.Equal(t, "Ultra", variant.Name)
			}).
			Return(nil)
		variantRepo.EXPECT().
			DeleteByNames(ctx, locationID, []string{"Original"}).
			Return(nil)
	})

	err := fx.service.UpdateLocation(ctx, locationID, &usecase.UpdateLocationInput{
		Variants: &variants,
	})
	require.NoError(t, err)
}

func TestReconcileService_UpdateLocation_NotFound(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		locationRepo := mockRepo.NewMockLocationRepository(t)
		factory.EXPECT().NewLocationRepository().Return(locationRepo)

		locationRepo.EXPECT().
			FindByIDForUpdate(ctx, locationID).
			Return(nil, repository.ErrLocationNotFound)
	})

	err := fx.service.UpdateLocation(ctx, locationID, &usecase.UpdateLocationInput{})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}
