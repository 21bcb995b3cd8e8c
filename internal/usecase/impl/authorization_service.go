package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	"huntlog/internal/domain/service"
	"huntlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authorizationService implements the AuthorizationUsecase interface.
type authorizationService struct {
	huntRepo     repository.HuntRepository
	delegateRepo repository.DelegateRepository
	provider     service.IdentityProvider
	timeout      time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(
	huntRepo repository.HuntRepository,
	delegateRepo repository.DelegateRepository,
	provider service.IdentityProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthorizationUsecase {
	return &authorizationService{
		huntRepo:     huntRepo,
		delegateRepo: delegateRepo,
		provider:     provider,
		timeout:      cfg.Twitch.Timeout,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Authorize loads the hunt and classifies the caller against its owner.
func (srv *authorizationService) Authorize(ctx context.Context, session *entity.Session, huntID uuid.UUID) (*usecase.Authorization, error) {
	hunt, err := srv.huntRepo.FindByID(ctx, huntID)
	if err != nil {
		if errors.Is(err, repository.ErrHuntNotFound) {
			return nil, domainerrors.ErrHuntNotFound
		}

		return nil, errors.Wrap(err, "failed to find hunt")
	}

	return &usecase.Authorization{
		Hunt: hunt,
		Tier: srv.ResolveTier(ctx, session, hunt.OwnerID),
	}, nil
}

// ResolveTier checks owner, platform moderator and delegate in that order.
func (srv *authorizationService) ResolveTier(ctx context.Context, session *entity.Session, ownerID entity.SubjectID) entity.Tier {
	if session == nil || session.SubjectID.IsZero() {
		return entity.TierUnauthorized
	}

	if session.SubjectID == ownerID {
		return entity.TierOwner
	}

	now := srv.now()

	if session.HasLiveAccessToken(now) && srv.moderates(ctx, session, ownerID) {
		return entity.TierPlatformModerator
	}

	grant, err := srv.delegateRepo.Find(ctx, ownerID, session.SubjectID)
	switch {
	case err == nil && grant.ActiveAt(now):
		return entity.TierDelegateModerator
	case err != nil && !errors.Is(err, repository.ErrDelegateNotFound):
		srv.log(ctx).Error("Delegate lookup failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("subject_id", session.SubjectID.String()),
			slog.Any("error", err),
		)
	}

	return entity.TierUnauthorized
}

// moderates asks the provider whether the caller moderates ownerID's channel.
// Any failure counts as "no".
func (srv *authorizationService) moderates(ctx context.Context, session *entity.Session, ownerID entity.SubjectID) bool {
	providerCtx, cancel := detached(ctx, srv.timeout)
	defer cancel()

	channels, err := srv.provider.GetModeratedChannels(providerCtx, session.AccessToken, session.SubjectID)
	if err != nil {
		srv.log(ctx).Warn("Moderation lookup failed, falling through to delegates",
			slog.String("subject_id", session.SubjectID.String()),
			slog.String("code", domainerrors.ErrProviderUnavailable.ErrorCode()),
			slog.Any("error", err),
		)

		return false
	}

	return slices.Contains(channels, ownerID)
}
