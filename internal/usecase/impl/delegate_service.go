package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	"huntlog/internal/usecase"

	"github.com/pkg/errors"
)

// delegateService implements the DelegateUsecase interface. The caller is
// always the granting owner.
type delegateService struct {
	delegateRepo repository.DelegateRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewDelegateService is the constructor for delegateService.
func NewDelegateService(delegateRepo repository.DelegateRepository, logger *slog.Logger) usecase.DelegateUsecase {
	return &delegateService{
		delegateRepo: delegateRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *delegateService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *delegateService) GrantDelegate(ctx context.Context, session *entity.Session, input usecase.GrantDelegateInput) (*entity.DelegateGrant, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	now := srv.now()
	switch {
	case input.DelegateID.IsZero():
		return nil, domainerrors.ErrInvalidPayload.WithDetails("delegate id is required")
	case input.DelegateID == session.SubjectID:
		return nil, domainerrors.ErrInvalidPayload.WithDetails("owners cannot delegate to themselves")
	case !input.ExpiresAt.After(now):
		return nil, domainerrors.ErrInvalidPayload.WithDetails("expiry must be in the future")
	}

	grant := &entity.DelegateGrant{
		OwnerID:        session.SubjectID,
		DelegateID:     input.DelegateID,
		DelegateHandle: strings.TrimSpace(input.DelegateHandle),
		ExpiresAt:      input.ExpiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.delegateRepo.Upsert(ctx, grant); err != nil {
		return nil, errors.Wrap(err, "failed to save delegate grant")
	}

	srv.log(ctx).Info("Delegate granted",
		slog.String("owner_id", grant.OwnerID.String()),
		slog.String("delegate_id", grant.DelegateID.String()),
		slog.Time("expires_at", grant.ExpiresAt),
	)

	return grant, nil
}

func (srv *delegateService) RevokeDelegate(ctx context.Context, session *entity.Session, delegateID entity.SubjectID) error {
	if session == nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.delegateRepo.Expire(ctx, session.SubjectID, delegateID, srv.now()); err != nil {
		if errors.Is(err, repository.ErrDelegateNotFound) {
			return domainerrors.ErrDelegateNotFound
		}

		return errors.Wrap(err, "failed to revoke delegate")
	}

	srv.log(ctx).Info("Delegate revoked",
		slog.String("owner_id", session.SubjectID.String()),
		slog.String("delegate_id", delegateID.String()),
	)

	return nil
}

func (srv *delegateService) ListDelegates(ctx context.Context, session *entity.Session) ([]*entity.DelegateGrant, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	grants, err := srv.delegateRepo.ListByOwner(ctx, session.SubjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delegates")
	}

	return grants, nil
}
