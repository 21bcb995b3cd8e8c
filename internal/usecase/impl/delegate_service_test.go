package impl

import (
	"context"
	"testing"
	"time"

	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/domain/repository"
	mockRepo "huntlog/internal/mocks/repository"
	"huntlog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDelegateServiceForTest(t *testing.T, clock *testClock) (*delegateService, *mockRepo.MockDelegateRepository) {
	t.Helper()

	repo := mockRepo.NewMockDelegateRepository(t)
	srv := NewDelegateService(repo, newDiscardLogger()).(*delegateService)
	srv.now = clock.Now

	return srv, repo
}

func TestDelegateService_GrantDelegate(t *testing.T) {
	clock := newTestClock()
	srv, repo := newDelegateServiceForTest(t, clock)
	expiresAt := clock.Now().Add(24 * time.Hour)

	repo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(g *entity.DelegateGrant) bool {
			return g.OwnerID == ownerID && g.DelegateID == delegateID && g.ExpiresAt.Equal(expiresAt) && g.DelegateHandle == "helper"
		})).
		Return(nil)

	grant, err := srv.GrantDelegate(context.Background(), sessionFor(ownerID), usecase.GrantDelegateInput{
		DelegateID:     delegateID,
		DelegateHandle: "  helper ",
		ExpiresAt:      expiresAt,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, grant.OwnerID)
}

func TestDelegateService_GrantDelegateValidation(t *testing.T) {
	clock := newTestClock()

	tests := []struct {
		name    string
		session *entity.Session
		input   usecase.GrantDelegateInput
		wantErr error
	}{
		{
			name:    "anonymous",
			input:   usecase.GrantDelegateInput{DelegateID: delegateID, ExpiresAt: clock.Now().Add(time.Hour)},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "missing delegate",
			session: sessionFor(ownerID),
			input:   usecase.GrantDelegateInput{ExpiresAt: clock.Now().Add(time.Hour)},
			wantErr: domainerrors.ErrInvalidPayload,
		},
		{
			name:    "self grant",
			session: sessionFor(ownerID),
			input:   usecase.GrantDelegateInput{DelegateID: ownerID, ExpiresAt: clock.Now().Add(time.Hour)},
			wantErr: domainerrors.ErrInvalidPayload,
		},
		{
			name:    "expiry in the past",
			session: sessionFor(ownerID),
			input:   usecase.GrantDelegateInput{DelegateID: delegateID, ExpiresAt: clock.Now()},
			wantErr: domainerrors.ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newDelegateServiceForTest(t, clock)

			_, err := srv.GrantDelegate(context.Background(), tt.session, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDelegateService_RevokeDelegate(t *testing.T) {
	clock := newTestClock()

	t.Run("expires the grant now", func(t *testing.T) {
		srv, repo := newDelegateServiceForTest(t, clock)
		repo.EXPECT().Expire(mock.Anything, ownerID, delegateID, clock.Now()).Return(nil)

		assert.NoError(t, srv.RevokeDelegate(context.Background(), sessionFor(ownerID), delegateID))
	})

	t.Run("unknown delegate", func(t *testing.T) {
		srv, repo := newDelegateServiceForTest(t, clock)
		repo.EXPECT().Expire(mock.Anything, ownerID, delegateID, clock.Now()).Return(repository.ErrDelegateNotFound)

		err := srv.RevokeDelegate(context.Background(), sessionFor(ownerID), delegateID)
		assert.ErrorIs(t, err, domainerrors.ErrDelegateNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		srv, repo := newDelegateServiceForTest(t, clock)
		repo.EXPECT().Expire(mock.Anything, ownerID, delegateID, clock.Now()).Return(errors.New("connection reset"))

		err := srv.RevokeDelegate(context.Background(), sessionFor(ownerID), delegateID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrDelegateNotFound)
	})
}

func TestDelegateService_ListDelegates(t *testing.T) {
	clock := newTestClock()
	srv, repo := newDelegateServiceForTest(t, clock)

	grants := []*entity.DelegateGrant{{OwnerID: ownerID, DelegateID: delegateID}}
	repo.EXPECT().ListByOwner(mock.Anything, ownerID).Return(grants, nil)

	got, err := srv.ListDelegates(context.Background(), sessionFor(ownerID))
	require.NoError(t, err)
	assert.Equal(t, grants, got)

	_, err = srv.ListDelegates(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
