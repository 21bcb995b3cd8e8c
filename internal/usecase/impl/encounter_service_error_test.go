package impl

import (
	"context"
	"testing"
	"time"

	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	mockRepo "huntlog/internal/mocks/repository"
	mockUsecase "huntlog/internal/mocks/usecase"
	"huntlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type encounterMocks struct {
	txManager     *mockRepo.MockTransactionManager
	huntRepo      *mockRepo.MockHuntRepository
	encounterRepo *mockRepo.MockEncounterRepository
	authz         *mockUsecase.MockAuthorizationUsecase
	propagator    *mockUsecase.MockPropagationUsecase
}

// The propagator mock has no expectations unless a test adds them, so any
// announcement on a failed write fails the test.
func newEncounterServiceWithMocks(t *testing.T) (*encounterService, *encounterMocks) {
	t.Helper()

	m := &encounterMocks{
		txManager:     mockRepo.NewMockTransactionManager(t),
		huntRepo:      mockRepo.NewMockHuntRepository(t),
		encounterRepo: mockRepo.NewMockEncounterRepository(t),
		authz:         mockUsecase.NewMockAuthorizationUsecase(t),
		propagator:    mockUsecase.NewMockPropagationUsecase(t),
	}
	srv := NewEncounterService(m.txManager, m.huntRepo, m.encounterRepo, m.authz, m.propagator, newDiscardLogger()).(*encounterService)

	return srv, m
}

func ownerAuthorization(hunt *entity.Hunt) *usecase.Authorization {
	return &usecase.Authorization{Hunt: hunt, Tier: entity.TierOwner}
}

func TestEncounterService_AddEncounterStorageErrors(t *testing.T) {
	ctx := context.Background()
	owner := sessionFor(ownerID)
	hunt := entity.NewHunt(ownerID, "shiny", time.Now())

	tests := []struct {
		name      string
		createErr error
		assertErr func(t *testing.T, err error)
	}{
		{
			name:      "slot conflict becomes SlotTaken",
			createErr: repository.ErrSlotConflict,
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrSlotTaken)
				assert.EqualError(t, err, "island 4 is already in use")
			},
		},
		{
			name:      "driver failure is wrapped",
			createErr: errors.New("connection reset"),
			assertErr: func(t *testing.T, err error) {
				assert.NotErrorIs(t, err, domainerrors.ErrSlotTaken)
				assert.Contains(t, err.Error(), "failed to create encounter")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newEncounterServiceWithMocks(t)

			m.authz.EXPECT().Authorize(ctx, owner, hunt.ID).Return(ownerAuthorization(hunt), nil)
			m.encounterRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Encounter")).
				Return(tt.createErr)

			_, err := srv.AddEncounter(ctx, owner, usecase.AddEncounterInput{HuntID: hunt.ID, SlotNumber: 4, EntityID: 25})
			require.Error(t, err)
			tt.assertErr(t, err)
		})
	}
}

func TestEncounterService_UpdateEncounterSlotLookupFails(t *testing.T) {
	srv, m := newEncounterServiceWithMocks(t)
	ctx := context.Background()
	owner := sessionFor(ownerID)
	hunt := entity.NewHunt(ownerID, "shiny", time.Now())
	current := entity.NewEncounter(hunt.ID, 1, 25, ownerID, time.Now())

	m.encounterRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
	m.authz.EXPECT().Authorize(ctx, owner, hunt.ID).Return(ownerAuthorization(hunt), nil)
	m.encounterRepo.EXPECT().
		FindActiveBySlot(ctx, hunt.ID, 2).
		Return(nil, errors.New("connection reset"))

	// No transaction is opened when the slot check fails.
	_, err := srv.UpdateEncounter(ctx, owner, usecase.UpdateEncounterInput{EncounterID: current.ID, SlotNumber: 2, EntityID: 25})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check slot")
}

func TestEncounterService_UpdateEncounterAlreadySuperseded(t *testing.T) {
	srv, m := newEncounterServiceWithMocks(t)
	ctx := context.Background()
	owner := sessionFor(ownerID)
	hunt := entity.NewHunt(ownerID, "shiny", time.Now())
	current := entity.NewEncounter(hunt.ID, 1, 25, ownerID, time.Now())

	m.encounterRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
	m.authz.EXPECT().Authorize(ctx, owner, hunt.ID).Return(ownerAuthorization(hunt), nil)
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockEncounterRepository(t)

			factory.EXPECT().NewEncounterRepository().Return(txRepo)
			// Another writer superseded the row between the read and the transaction.
			txRepo.EXPECT().SoftDelete(ctx, current).Return(false, nil)

			return fn(factory)
		})

	_, err := srv.UpdateEncounter(ctx, owner, usecase.UpdateEncounterInput{EncounterID: current.ID, SlotNumber: 1, EntityID: 133})
	assert.ErrorIs(t, err, domainerrors.ErrEncounterNotFound)
}

func TestEncounterService_DeleteLosingRaceIsSilent(t *testing.T) {
	srv, m := newEncounterServiceWithMocks(t)
	ctx := context.Background()
	owner := sessionFor(ownerID)
	hunt := entity.NewHunt(ownerID, "shiny", time.Now())
	current := entity.NewEncounter(hunt.ID, 1, 25, ownerID, time.Now())

	m.encounterRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
	m.authz.EXPECT().Authorize(ctx, owner, hunt.ID).Return(ownerAuthorization(hunt), nil)
	m.encounterRepo.EXPECT().SoftDelete(ctx, current).Return(false, nil)

	require.NoError(t, srv.DeleteEncounter(ctx, owner, current.ID))
}

func TestEncounterService_LookupErrors(t *testing.T) {
	srv, m := newEncounterServiceWithMocks(t)
	ctx := context.Background()
	owner := sessionFor(ownerID)
	missing := uuid.New()

	m.encounterRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrEncounterNotFound)
	assert.ErrorIs(t, srv.DeleteEncounter(ctx, owner, missing), domainerrors.ErrEncounterNotFound)

	m.huntRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrHuntNotFound)
	_, err := srv.ListEncounters(ctx, missing, false)
	assert.ErrorIs(t, err, domainerrors.ErrHuntNotFound)
}
