package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"huntlog/config"
	"huntlog/internal/delivery/api/middleware"
	"huntlog/internal/delivery/api/response"
	"huntlog/internal/delivery/api/router/handler"
	"huntlog/internal/delivery/api/validator"
	"huntlog/internal/domain/entity"
	domainerrors "huntlog/internal/domain/errors"
	"huntlog/internal/errors"
	"huntlog/internal/infra/changefeed"
	mockusecase "huntlog/internal/mocks/usecase"
	"huntlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	cookieName = "huntlog_session"
	validToken = "signed-token"
	ownerID    = entity.SubjectID(141981764)
	delegateID = entity.SubjectID(12826)
)

type testAPI struct {
	echo        *echo.Echo
	credentials *mockusecase.MockCredentialUsecase
	hunts       *mockusecase.MockHuntUsecase
	encounters  *mockusecase.MockEncounterUsecase
	delegates   *mockusecase.MockDelegateUsecase
	authz       *mockusecase.MockAuthorizationUsecase
	session     *entity.Session
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: cookieName, MaxAge: 24 * time.Hour},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		echo:        echo.New(),
		credentials: mockusecase.NewMockCredentialUsecase(t),
		hunts:       mockusecase.NewMockHuntUsecase(t),
		encounters:  mockusecase.NewMockEncounterUsecase(t),
		delegates:   mockusecase.NewMockDelegateUsecase(t),
		authz:       mockusecase.NewMockAuthorizationUsecase(t),
		session: &entity.Session{
			SubjectID:     ownerID,
			SubjectHandle: "brittleBones",
			AccessToken:   "access",
			RefreshToken:  "refresh",
			ExpiresAt:     time.Now().Add(time.Hour).Unix(),
		},
	}

	sessions := middleware.NewSessionMiddleware(api.credentials, cfg, logger)
	api.echo.Validator = validator.New()
	api.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			CredentialUC:      api.credentials,
			SessionMiddleware: sessions,
			Config:            cfg,
			Logger:            logger,
		}),
		HuntHandler: handler.NewHuntHandler(handler.HuntHandlerParams{
			HuntUC:          api.hunts,
			AuthorizationUC: api.authz,
			Logger:          logger,
		}),
		EncounterHandler: handler.NewEncounterHandler(handler.EncounterHandlerParams{
			EncounterUC: api.encounters,
			Logger:      logger,
		}),
		DelegateHandler: handler.NewDelegateHandler(handler.DelegateHandlerParams{
			DelegateUC: api.delegates,
			Logger:     logger,
		}),
		FeedHandler: handler.NewFeedHandler(handler.FeedHandlerParams{
			HuntUC:     api.hunts,
			Subscriber: changefeed.NewSubscriber(changefeed.NewHub()),
			Logger:     logger,
		}),
		SessionMiddleware: sessions,
	}).RegisterRoutes(api.echo)

	return api
}

// signedIn makes the credential mock accept the test cookie.
func (a *testAPI) signedIn() {
	a.credentials.EXPECT().Authenticate(mock.Anything, validToken).
		Return(&usecase.AuthenticateOutput{Session: a.session}, nil)
}

func (a *testAPI) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: cookieName, Value: value}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestRouter_HealthCheck(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := api.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AnonymousWriteIsRejected(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/api/v1/hunts/"+uuid.NewString()+"/encounters", `{"slot_number":1,"entity_id":25}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestRouter_InvalidCookieContinuesAnonymously(t *testing.T) {
	api := newTestAPI(t)
	huntID := uuid.New()

	api.credentials.EXPECT().Authenticate(mock.Anything, "tampered").Return(nil, domainerrors.ErrUnauthenticated)
	api.hunts.EXPECT().GetHunt(mock.Anything, huntID).Return(&entity.Hunt{ID: huntID, OwnerID: ownerID}, nil)

	rec, _ := api.do(t, http.MethodGet, "/api/v1/hunts/"+huntID.String(), "", sessionCookie("tampered"))

	assert.Equal(t, http.StatusOK, rec.Code)
	cleared := findCookie(rec, cookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestRouter_RefreshedSessionReissuesCookie(t *testing.T) {
	api := newTestAPI(t)
	huntID := uuid.New()

	api.credentials.EXPECT().Authenticate(mock.Anything, validToken).
		Return(&usecase.AuthenticateOutput{Session: api.session, ReissuedToken: "fresh-token"}, nil)
	api.credentials.EXPECT().CookieMaxAge(api.session, mock.Anything).Return(time.Hour)
	api.hunts.EXPECT().GetHunt(mock.Anything, huntID).Return(&entity.Hunt{ID: huntID}, nil)

	rec, _ := api.do(t, http.MethodGet, "/api/v1/hunts/"+huntID.String(), "", sessionCookie(validToken))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, cookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "fresh-token", cookie.Value)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestRouter_AddEncounter(t *testing.T) {
	huntID := uuid.New()
	path := "/api/v1/hunts/" + huntID.String() + "/encounters"

	t.Run("created", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		slot := 1
		api.encounters.EXPECT().
			AddEncounter(mock.Anything, api.session, usecase.AddEncounterInput{HuntID: huntID, SlotNumber: 1, EntityID: 25}).
			Return(&entity.Encounter{ID: uuid.New(), HuntID: huntID, SlotNumber: &slot, EntityID: 25, CreatedBy: ownerID}, nil)

		rec, env := api.do(t, http.MethodPost, path, `{"slot_number":1,"entity_id":25}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"created_by":"141981764"`)
	})

	t.Run("slot taken", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		api.encounters.EXPECT().AddEncounter(mock.Anything, api.session, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.SlotTaken(1)))

		rec, env := api.do(t, http.MethodPost, path, `{"slot_number":1,"entity_id":133}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SLOT_TAKEN", env.Error.Code)
		assert.Equal(t, "island 1 is already in use", env.Error.Message)
	})

	t.Run("invalid payload", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		rec, env := api.do(t, http.MethodPost, path, `{"slot_number":0,"entity_id":25}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_PAYLOAD", env.Error.Code)
		assert.Contains(t, env.Error.Details, "slot_number")
	})

	t.Run("malformed body", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		rec, _ := api.do(t, http.MethodPost, path, `{"slot_number":`, sessionCookie(validToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad hunt id", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		rec, _ := api.do(t, http.MethodPost, "/api/v1/hunts/not-a-uuid/encounters", `{"slot_number":1,"entity_id":25}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_InsufficientTierHidesDetails(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn()
	encounterID := uuid.New()

	api.encounters.EXPECT().DeleteEncounter(mock.Anything, api.session, encounterID).
		Return(domainerrors.ErrInsufficientTier.WithDetails("tier=unauthorized"))

	rec, env := api.do(t, http.MethodDelete, "/api/v1/encounters/"+encounterID.String(), "", sessionCookie(validToken))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INSUFFICIENT_TIER", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestRouter_UpdateEncounterNotFound(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn()
	encounterID := uuid.New()

	api.encounters.EXPECT().
		UpdateEncounter(mock.Anything, api.session, usecase.UpdateEncounterInput{EncounterID: encounterID, SlotNumber: 2, EntityID: 25}).
		Return(nil, domainerrors.ErrEncounterNotFound)

	rec, env := api.do(t, http.MethodPut, "/api/v1/encounters/"+encounterID.String(), `{"slot_number":2,"entity_id":25}`, sessionCookie(validToken))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ENCOUNTER_NOT_FOUND", env.Error.Code)
}

func TestRouter_ListEncounters(t *testing.T) {
	huntID := uuid.New()

	tests := []struct {
		name     string
		query    string
		history  bool
		wantCode int
	}{
		{name: "active only", query: "", history: false, wantCode: http.StatusOK},
		{name: "with history", query: "?history=true", history: true, wantCode: http.StatusOK},
		{name: "bad flag", query: "?history=maybe", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.wantCode == http.StatusOK {
				api.encounters.EXPECT().ListEncounters(mock.Anything, huntID, tt.history).Return([]*entity.Encounter{}, nil)
			}

			rec, _ := api.do(t, http.MethodGet, "/api/v1/hunts/"+huntID.String()+"/encounters"+tt.query, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRouter_PermissionsForAnonymousCaller(t *testing.T) {
	api := newTestAPI(t)
	huntID := uuid.New()

	api.authz.EXPECT().Authorize(mock.Anything, (*entity.Session)(nil), huntID).
		Return(&usecase.Authorization{Hunt: &entity.Hunt{ID: huntID, OwnerID: ownerID}, Tier: entity.TierUnauthorized}, nil)

	rec, env := api.do(t, http.MethodGet, "/api/v1/hunts/"+huntID.String()+"/permissions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"tier":"unauthorized"`)
	assert.Contains(t, string(env.Data), `"can_write_encounters":false`)
}

func TestRouter_UnexpectedErrorIsGeneric(t *testing.T) {
	api := newTestAPI(t)
	huntID := uuid.New()

	api.hunts.EXPECT().GetHunt(mock.Anything, huntID).Return(nil, errors.New("connection reset by peer"))

	rec, env := api.do(t, http.MethodGet, "/api/v1/hunts/"+huntID.String(), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestRouter_ChangeStatus(t *testing.T) {
	huntID := uuid.New()
	path := "/api/v1/hunts/" + huntID.String() + "/status"

	t.Run("applies transition", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		api.hunts.EXPECT().ChangeStatus(mock.Anything, api.session, huntID, entity.HuntStatusPaused).
			Return(&entity.Hunt{ID: huntID, Status: entity.HuntStatusPaused}, nil)

		rec, _ := api.do(t, http.MethodPut, path, `{"status":"PAUSED"}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		rec, env := api.do(t, http.MethodPut, path, `{"status":"DONE"}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Error.Details, "status")
	})

	t.Run("terminal hunt", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		api.hunts.EXPECT().ChangeStatus(mock.Anything, api.session, huntID, entity.HuntStatusActive).
			Return(nil, domainerrors.ErrInvalidStatusTransition)

		rec, _ := api.do(t, http.MethodPut, path, `{"status":"ACTIVE"}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_UpdateSettingsIsPartial(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn()
	huntID := uuid.New()

	api.hunts.EXPECT().UpdateSettings(mock.Anything, api.session, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.Session, input usecase.UpdateHuntSettingsInput) (*entity.Hunt, error) {
			assert.Equal(t, huntID, input.HuntID)
			assert.Nil(t, input.Name)
			assert.Nil(t, input.TargetEntityIDs)
			assert.NotNil(t, input.ExcludedEntityIDs)
			assert.Empty(t, input.ExcludedEntityIDs)
			require.NotNil(t, input.BingoEnabled)
			assert.True(t, *input.BingoEnabled)

			return &entity.Hunt{ID: huntID, BingoEnabled: true}, nil
		})

	rec, _ := api.do(t, http.MethodPatch, "/api/v1/hunts/"+huntID.String()+"/settings",
		`{"excluded_entity_ids":[],"bingo_enabled":true}`, sessionCookie(validToken))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ListOwnerHunts(t *testing.T) {
	api := newTestAPI(t)

	api.hunts.EXPECT().ListHunts(mock.Anything, ownerID).Return([]*entity.Hunt{}, nil)

	rec, _ := api.do(t, http.MethodGet, "/api/v1/owners/141981764/hunts", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(t, http.MethodGet, "/api/v1/owners/brittleBones/hunts", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Delegates(t *testing.T) {
	expiresAt := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("grant", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		input := usecase.GrantDelegateInput{DelegateID: delegateID, DelegateHandle: "mod_one", ExpiresAt: expiresAt}
		api.delegates.EXPECT().GrantDelegate(mock.Anything, api.session, input).
			Return(&entity.DelegateGrant{OwnerID: ownerID, DelegateID: delegateID, ExpiresAt: expiresAt}, nil)

		rec, env := api.do(t, http.MethodPut, "/api/v1/delegates/12826",
			`{"delegate_handle":"mod_one","expires_at":"2026-10-17T12:00:00Z"}`, sessionCookie(validToken))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"delegate_id":"12826"`)
	})

	t.Run("revoke unknown", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		api.delegates.EXPECT().RevokeDelegate(mock.Anything, api.session, delegateID).Return(domainerrors.ErrDelegateNotFound)

		rec, _ := api.do(t, http.MethodDelete, "/api/v1/delegates/12826", "", sessionCookie(validToken))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous list", func(t *testing.T) {
		api := newTestAPI(t)

		rec, _ := api.do(t, http.MethodGet, "/api/v1/delegates", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_LoginFlow(t *testing.T) {
	t.Run("login redirects with state", func(t *testing.T) {
		api := newTestAPI(t)

		api.credentials.EXPECT().BeginLogin(mock.Anything).
			Return(&usecase.BeginLoginOutput{State: "st4te", RedirectURL: "https://id.twitch.tv/oauth2/authorize?state=st4te"}, nil)

		rec, _ := api.do(t, http.MethodGet, "/api/v1/auth/login", "")

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "https://id.twitch.tv/oauth2/authorize?state=st4te", rec.Header().Get(echo.HeaderLocation))
		state := findCookie(rec, "huntlog_oauth_state")
		require.NotNil(t, state)
		assert.Equal(t, "st4te", state.Value)
	})

	t.Run("callback sets session", func(t *testing.T) {
		api := newTestAPI(t)

		api.credentials.EXPECT().
			CompleteLogin(mock.Anything, usecase.CompleteLoginInput{Code: "c0de", State: "st4te", ExpectedState: "st4te"}).
			Return(&usecase.LoginOutput{Session: api.session, Token: "issued-token"}, nil)
		api.credentials.EXPECT().CookieMaxAge(api.session, mock.Anything).Return(24 * time.Hour)

		rec, _ := api.do(t, http.MethodGet, "/api/v1/auth/callback?code=c0de&state=st4te", "",
			&http.Cookie{Name: "huntlog_oauth_state", Value: "st4te"})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		cookie := findCookie(rec, cookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "issued-token", cookie.Value)
	})

	t.Run("callback state mismatch", func(t *testing.T) {
		api := newTestAPI(t)

		api.credentials.EXPECT().
			CompleteLogin(mock.Anything, usecase.CompleteLoginInput{Code: "c0de", State: "forged", ExpectedState: ""}).
			Return(nil, domainerrors.ErrOAuthStateMismatch)

		rec, env := api.do(t, http.MethodGet, "/api/v1/auth/callback?code=c0de&state=forged", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "OAUTH_STATE_MISMATCH", env.Error.Code)
		assert.Nil(t, findCookie(rec, cookieName))
	})

	t.Run("me never exposes provider tokens", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		rec, env := api.do(t, http.MethodGet, "/api/v1/auth/me", "", sessionCookie(validToken))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"subject_id":"141981764"`)
		assert.NotContains(t, rec.Body.String(), "access")
		assert.NotContains(t, rec.Body.String(), "refresh")
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		api := newTestAPI(t)
		api.signedIn()

		rec, _ := api.do(t, http.MethodPost, "/api/v1/auth/logout", "", sessionCookie(validToken))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookie := findCookie(rec, cookieName)
		require.NotNil(t, cookie)
		assert.Less(t, cookie.MaxAge, 0)
	})
}
