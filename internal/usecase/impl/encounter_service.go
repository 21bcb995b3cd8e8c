package impl

import (
	"context"
	"log/slog"
	"time"

	"huntlog/internal/domain/constants"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	"huntlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// encounterService implements the EncounterUsecase interface.
type encounterService struct {
	txManager     repository.TransactionManager
	huntRepo      repository.HuntRepository
	encounterRepo repository.EncounterRepository
	authz         usecase.AuthorizationUsecase
	propagator    usecase.PropagationUsecase
	logger        *slog.Logger
	now           func() time.Time
}

// NewEncounterService is the constructor for encounterService.
func NewEncounterService(
	txManager repository.TransactionManager,
	huntRepo repository.HuntRepository,
	encounterRepo repository.EncounterRepository,
	authz usecase.AuthorizationUsecase,
	propagator usecase.PropagationUsecase,
	logger *slog.Logger,
) usecase.EncounterUsecase {
	return &encounterService{
		txManager:     txManager,
		huntRepo:      huntRepo,
		encounterRepo: encounterRepo,
		authz:         authz,
		propagator:    propagator,
		logger:        logger,
		now:           time.Now,
	}
}

func (srv *encounterService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// AddEncounter logs a new find on a free slot.
func (srv *encounterService) AddEncounter(ctx context.Context, session *entity.Session, input usecase.AddEncounterInput) (*entity.Encounter, error) {
	if err := validateEncounterPayload(input.SlotNumber, input.EntityID); err != nil {
		return nil, err
	}

	auth, err := srv.authorizeWriter(ctx, session, input.HuntID)
	if err != nil {
		return nil, err
	}

	encounter := entity.NewEncounter(auth.Hunt.ID, input.SlotNumber, input.EntityID, session.SubjectID, srv.now())

	if err := srv.encounterRepo.Create(ctx, encounter); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, domainerrors.SlotTaken(input.SlotNumber)
		}

		return nil, errors.Wrap(err, "failed to create encounter")
	}

	srv.log(ctx).Info("Encounter added",
		slog.String("hunt_id", auth.Hunt.ID.String()),
		slog.String("encounter_id", encounter.ID.String()),
		slog.Int("slot", input.SlotNumber),
		slog.String("tier", auth.Tier.String()),
	)

	srv.propagate(ctx, entity.ChangeEncounterAdded, auth.Hunt, encounter)

	return encounter, nil
}

// UpdateEncounter replaces an active encounter: the old row is superseded and
// a new row takes the requested slot, in one transaction.
func (srv *encounterService) UpdateEncounter(ctx context.Context, session *entity.Session, input usecase.UpdateEncounterInput) (*entity.Encounter, error) {
	if err := validateEncounterPayload(input.SlotNumber, input.EntityID); err != nil {
		return nil, err
	}

	current, err := srv.findEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}
	if current.IsDeleted {
		return nil, domainerrors.ErrEncounterNotFound
	}

	auth, err := srv.authorizeWriter(ctx, session, current.HuntID)
	if err != nil {
		return nil, err
	}

	if !current.OccupiesSlot(input.SlotNumber) {
		occupant, err := srv.encounterRepo.FindActiveBySlot(ctx, current.HuntID, input.SlotNumber)
		switch {
		case err == nil && occupant.ID != current.ID:
			return nil, domainerrors.SlotTaken(input.SlotNumber)
		case err != nil && !errors.Is(err, repository.ErrEncounterNotFound):
			return nil, errors.Wrap(err, "failed to check slot")
		}
	}

	var replacement *entity.Encounter
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		encounterRepo := repoFactory.NewEncounterRepository()

		replacement = current.Supersede(session.SubjectID, srv.now(), input.SlotNumber, input.EntityID)

		superseded, err := encounterRepo.SoftDelete(ctx, current)
		if err != nil {
			return errors.Wrap(err, "failed to supersede encounter")
		}
		if !superseded {
			return domainerrors.ErrEncounterNotFound
		}

		if err := encounterRepo.Create(ctx, replacement); err != nil {
			if errors.Is(err, repository.ErrSlotConflict) {
				return domainerrors.SlotTaken(input.SlotNumber)
			}

			return errors.Wrap(err, "failed to create replacement encounter")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update encounter",
			slog.String("encounter_id", input.EncounterID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Encounter updated",
		slog.String("hunt_id", auth.Hunt.ID.String()),
		slog.String("superseded_id", current.ID.String()),
		slog.String("encounter_id", replacement.ID.String()),
		slog.Int("slot", input.SlotNumber),
	)

	srv.propagate(ctx, entity.ChangeEncounterUpdated, auth.Hunt, replacement)

	return replacement, nil
}

// DeleteEncounter soft-deletes the encounter keeping its slot number.
func (srv *encounterService) DeleteEncounter(ctx context.Context, session *entity.Session, encounterID uuid.UUID) error {
	current, err := srv.findEncounter(ctx, encounterID)
	if err != nil {
		return err
	}

	auth, err := srv.authorizeWriter(ctx, session, current.HuntID)
	if err != nil {
		return err
	}

	if !current.MarkDeleted(session.SubjectID, srv.now()) {
		return nil
	}

	deleted, err := srv.encounterRepo.SoftDelete(ctx, current)
	if err != nil {
		return errors.Wrap(err, "failed to delete encounter")
	}
	if !deleted {
		// Lost a race with another delete; the first one stands.
		return nil
	}

	srv.log(ctx).Info("Encounter deleted",
		slog.String("hunt_id", auth.Hunt.ID.String()),
		slog.String("encounter_id", current.ID.String()),
	)

	srv.propagate(ctx, entity.ChangeEncounterDeleted, auth.Hunt, current)

	return nil
}

// ListEncounters returns the hunt's log, with superseded and deleted rows when includeHistory is set.
func (srv *encounterService) ListEncounters(ctx context.Context, huntID uuid.UUID, includeHistory bool) ([]*entity.Encounter, error) {
	if _, err := srv.huntRepo.FindByID(ctx, huntID); err != nil {
		if errors.Is(err, repository.ErrHuntNotFound) {
			return nil, domainerrors.ErrHuntNotFound
		}

		return nil, errors.Wrap(err, "failed to find hunt")
	}

	encounters, err := srv.encounterRepo.ListByHunt(ctx, huntID, includeHistory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list encounters")
	}

	return encounters, nil
}

func (srv *encounterService) findEncounter(ctx context.Context, id uuid.UUID) (*entity.Encounter, error) {
	encounter, err := srv.encounterRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEncounterNotFound) {
			return nil, domainerrors.ErrEncounterNotFound
		}

		return nil, errors.Wrap(err, "failed to find encounter")
	}

	return encounter, nil
}

func (srv *encounterService) authorizeWriter(ctx context.Context, session *entity.Session, huntID uuid.UUID) (*usecase.Authorization, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	auth, err := srv.authz.Authorize(ctx, session, huntID)
	if err != nil {
		return nil, err
	}

	if !auth.Tier.CanWriteEncounters() {
		srv.log(ctx).Debug("Encounter write denied",
			slog.String("hunt_id", huntID.String()),
			slog.String("subject_id", session.SubjectID.String()),
		)

		return nil, domainerrors.ErrInsufficientTier
	}

	return auth, nil
}

func (srv *encounterService) propagate(ctx context.Context, action entity.ChangeAction, hunt *entity.Hunt, encounter *entity.Encounter) {
	encounterID := encounter.ID
	srv.propagator.Propagate(ctx, &entity.ChangeEvent{
		Action:      action,
		HuntID:      hunt.ID,
		OwnerID:     hunt.OwnerID,
		EncounterID: &encounterID,
		OccurredAt:  srv.now(),
		Encounter:   encounter,
	})
}

func validateEncounterPayload(slot, entityID int) error {
	if slot < constants.MinSlotNumber {
		return domainerrors.ErrInvalidPayload.WithDetails("island number must be a positive integer")
	}
	if entityID < constants.MinEntityID {
		return domainerrors.ErrInvalidPayload.WithDetails("entity id must be a positive integer")
	}

	return nil
}
