package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	"huntlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxHuntNameLength = 100

// huntService implements the HuntUsecase interface.
type huntService struct {
	txManager   repository.TransactionManager
	huntRepo    repository.HuntRepository
	authz       usecase.AuthorizationUsecase
	propagator  usecase.PropagationUsecase
	maxExcluded int
	logger      *slog.Logger
	now         func() time.Time
}

// NewHuntService is the constructor for huntService.
func NewHuntService(
	txManager repository.TransactionManager,
	huntRepo repository.HuntRepository,
	authz usecase.AuthorizationUsecase,
	propagator usecase.PropagationUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.HuntUsecase {
	return &huntService{
		txManager:   txManager,
		huntRepo:    huntRepo,
		authz:       authz,
		propagator:  propagator,
		maxExcluded: cfg.Hunt.MaxExcluded,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *huntService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// CreateHunt starts a new ACTIVE hunt for the caller.
func (srv *huntService) CreateHunt(ctx context.Context, session *entity.Session, input usecase.CreateHuntInput) (*entity.Hunt, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	now := srv.now()
	hunt := entity.NewHunt(session.SubjectID, strings.TrimSpace(input.Name), now)
	hunt.TargetEntityIDs = input.TargetEntityIDs
	hunt.ExcludedEntityIDs = input.ExcludedEntityIDs
	hunt.BingoEnabled = input.BingoEnabled

	if err := srv.validateSettings(hunt); err != nil {
		return nil, err
	}

	var pausedID uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		huntRepo := repoFactory.NewHuntRepository()

		var err error
		pausedID, err = huntRepo.PauseActive(ctx, session.SubjectID, uuid.Nil, now)
		if err != nil {
			return errors.Wrap(err, "failed to pause active hunt")
		}

		if err := huntRepo.Create(ctx, hunt); err != nil {
			if errors.Is(err, repository.ErrActiveHuntExists) {
				return domainerrors.ErrInvalidStatusTransition.WithMessage("Another hunt was activated at the same time, please retry")
			}

			return errors.Wrap(err, "failed to create hunt")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create hunt", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Hunt created",
		slog.String("hunt_id", hunt.ID.String()),
		slog.String("owner_id", hunt.OwnerID.String()),
	)

	if pausedID != uuid.Nil {
		srv.propagate(ctx, entity.ChangeHuntStatusChanged, pausedID, hunt.OwnerID)
	}
	srv.propagate(ctx, entity.ChangeHuntCreated, hunt.ID, hunt.OwnerID)

	return hunt, nil
}

// UpdateSettings applies a partial settings update. Owner only.
func (srv *huntService) UpdateSettings(ctx context.Context, session *entity.Session, input usecase.UpdateHuntSettingsInput) (*entity.Hunt, error) {
	hunt, err := srv.authorizeOwner(ctx, session, input.HuntID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		hunt.Name = strings.TrimSpace(*input.Name)
	}
	if input.TargetEntityIDs != nil {
		hunt.TargetEntityIDs = input.TargetEntityIDs
	}
	if input.ExcludedEntityIDs != nil {
		hunt.ExcludedEntityIDs = input.ExcludedEntityIDs
	}
	if input.BingoEnabled != nil {
		hunt.BingoEnabled = *input.BingoEnabled
	}

	if err := srv.validateSettings(hunt); err != nil {
		return nil, err
	}

	hunt.UpdatedAt = srv.now()
	if err := srv.huntRepo.UpdateSettings(ctx, hunt); err != nil {
		if errors.Is(err, repository.ErrHuntNotFound) {
			return nil, domainerrors.ErrHuntNotFound
		}

		return nil, errors.Wrap(err, "failed to update hunt settings")
	}

	srv.propagate(ctx, entity.ChangeHuntUpdated, hunt.ID, hunt.OwnerID)

	return hunt, nil
}

// ChangeStatus moves the hunt through its lifecycle. Owner only.
func (srv *huntService) ChangeStatus(ctx context.Context, session *entity.Session, huntID uuid.UUID, status entity.HuntStatus) (*entity.Hunt, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	hunt, err := srv.authorizeOwner(ctx, session, huntID)
	if err != nil {
		return nil, err
	}

	if hunt.Status == status {
		return hunt, nil
	}
	if !hunt.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("%s -> %s", hunt.Status, status),
		)
	}

	now := srv.now()
	previous := hunt.Status

	var pausedID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		huntRepo := repoFactory.NewHuntRepository()

		if status == entity.HuntStatusActive {
			var err error
			pausedID, err = huntRepo.PauseActive(ctx, hunt.OwnerID, hunt.ID, now)
			if err != nil {
				return errors.Wrap(err, "failed to pause active hunt")
			}
		}

		if err := huntRepo.UpdateStatus(ctx, hunt.ID, previous, status, now); err != nil {
			switch {
			case errors.Is(err, repository.ErrActiveHuntExists):
				return domainerrors.ErrInvalidStatusTransition.WithMessage("Another hunt was activated at the same time, please retry")
			case errors.Is(err, repository.ErrHuntStatusChanged):
				return domainerrors.ErrInvalidStatusTransition.WithMessage("The hunt changed status at the same time, please retry")
			}

			return errors.Wrap(err, "failed to update hunt status")
		}
		hunt.Status = status
		hunt.UpdatedAt = now

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change hunt status",
			slog.String("hunt_id", huntID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Hunt status changed",
		slog.String("hunt_id", hunt.ID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	if pausedID != uuid.Nil {
		srv.propagate(ctx, entity.ChangeHuntStatusChanged, pausedID, hunt.OwnerID)
	}
	srv.propagate(ctx, entity.ChangeHuntStatusChanged, hunt.ID, hunt.OwnerID)

	return hunt, nil
}

func (srv *huntService) GetHunt(ctx context.Context, huntID uuid.UUID) (*entity.Hunt, error) {
	hunt, err := srv.huntRepo.FindByID(ctx, huntID)
	if err != nil {
		if errors.Is(err, repository.ErrHuntNotFound) {
			return nil, domainerrors.ErrHuntNotFound
		}

		return nil, errors.Wrap(err, "failed to find hunt")
	}

	return hunt, nil
}

func (srv *huntService) ListHunts(ctx context.Context, ownerID entity.SubjectID) ([]*entity.Hunt, error) {
	hunts, err := srv.huntRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hunts")
	}

	return hunts, nil
}

func (srv *huntService) authorizeOwner(ctx context.Context, session *entity.Session, huntID uuid.UUID) (*entity.Hunt, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	auth, err := srv.authz.Authorize(ctx, session, huntID)
	if err != nil {
		return nil, err
	}

	if !auth.Tier.CanManageHuntSettings() {
		return nil, domainerrors.ErrInsufficientTier
	}

	return auth.Hunt, nil
}

func (srv *huntService) validateSettings(hunt *entity.Hunt) error {
	if len(hunt.Name) > maxHuntNameLength {
		return domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("name must be at most %d characters", maxHuntNameLength))
	}
	if len(hunt.ExcludedEntityIDs) > srv.maxExcluded {
		return domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("at most %d excluded entities are allowed", srv.maxExcluded))
	}

	for _, ids := range [][]int64{hunt.TargetEntityIDs, hunt.ExcludedEntityIDs} {
		for _, id := range ids {
			if id <= 0 {
				return domainerrors.ErrInvalidPayload.WithDetails("entity ids must be positive integers")
			}
		}
	}

	return nil
}

func (srv *huntService) propagate(ctx context.Context, action entity.ChangeAction, huntID uuid.UUID, ownerID entity.SubjectID) {
	srv.propagator.Propagate(ctx, &entity.ChangeEvent{
		Action:     action,
		HuntID:     huntID,
		OwnerID:    ownerID,
		OccurredAt: srv.now(),
	})
}
