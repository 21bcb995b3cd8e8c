// Package twitch implements the identity provider client against Twitch OAuth
// and the Helix API.
package twitch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	"huntlog/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/twitch"
)

const (
	defaultAPIBaseURL = "https://api.twitch.tv/helix"
	headerClientID    = "Client-Id"
	pageSize          = "100"
	maxRosterPages    = 20
)

// ErrProviderRejected is returned when Twitch answers 400/401 for a token or code.
var ErrProviderRejected = errors.New("identity provider rejected the credentials")

// Client implements service.IdentityProvider.
type Client struct {
	oauth      *oauth2.Config
	apiBaseURL string
	clientID   string
	httpClient *http.Client
}

// NewClient is the constructor for the Twitch identity provider client.
func NewClient(cfg *config.Config) service.IdentityProvider {
	twitchCfg := cfg.Twitch

	endpoint := twitch.Endpoint
	// Twitch expects client credentials in the form body.
	endpoint.AuthStyle = oauth2.AuthStyleInParams
	if twitchCfg.AuthURL != "" {
		endpoint.AuthURL = twitchCfg.AuthURL
	}
	if twitchCfg.TokenURL != "" {
		endpoint.TokenURL = twitchCfg.TokenURL
	}

	apiBaseURL := twitchCfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     twitchCfg.ClientID,
			ClientSecret: twitchCfg.ClientSecret,
			RedirectURL:  twitchCfg.RedirectURI,
			Scopes:       twitchCfg.Scopes,
			Endpoint:     endpoint,
		},
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
		clientID:   twitchCfg.ClientID,
		httpClient: &http.Client{Timeout: twitchCfg.Timeout},
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (*service.ProviderToken, error) {
	token, err := c.oauth.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return nil, classifyOAuthError(err, "exchange code")
	}

	return toProviderToken(token), nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*service.ProviderToken, error) {
	if refreshToken == "" {
		return nil, ErrProviderRejected
	}

	// An empty access token forces the token source to refresh.
	token, err := c.oauth.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, classifyOAuthError(err, "refresh token")
	}

	return toProviderToken(token), nil
}

type helixUser struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

func (c *Client) GetUser(ctx context.Context, accessToken string) (*service.ProviderUser, error) {
	var body struct {
		Data []helixUser `json:"data"`
	}
	if err := c.getJSON(ctx, accessToken, "/users", nil, &body); err != nil {
		return nil, err
	}

	if len(body.Data) == 0 {
		return nil, errors.New("helix /users returned no user")
	}

	id, err := entity.ParseSubjectID(body.Data[0].ID)
	if err != nil {
		return nil, errors.Wrapf(err, "helix user id %q", body.Data[0].ID)
	}

	return &service.ProviderUser{ID: id, Login: body.Data[0].Login}, nil
}

type moderatedChannel struct {
	BroadcasterID string `json:"broadcaster_id"`
}

// GetModeratedChannels walks every page of /moderation/channels.
func (c *Client) GetModeratedChannels(ctx context.Context, accessToken string, subjectID entity.SubjectID) ([]entity.SubjectID, error) {
	var channels []entity.SubjectID
	cursor := ""

	for range maxRosterPages {
		query := url.Values{}
		query.Set("user_id", subjectID.String())
		query.Set("first", pageSize)
		if cursor != "" {
			query.Set("after", cursor)
		}

		var body struct {
			Data       []moderatedChannel `json:"data"`
			Pagination struct {
				Cursor string `json:"cursor"`
			} `json:"pagination"`
		}
		if err := c.getJSON(ctx, accessToken, "/moderation/channels", query, &body); err != nil {
			return nil, err
		}

		for _, ch := range body.Data {
			// Unparseable ids cannot match any owner, skip them.
			if id, err := entity.ParseSubjectID(ch.BroadcasterID); err == nil {
				channels = append(channels, id)
			}
		}

		cursor = body.Pagination.Cursor
		if cursor == "" {
			return channels, nil
		}
	}

	return channels, nil
}

func (c *Client) getJSON(ctx context.Context, accessToken, path string, query url.Values, out any) error {
	endpoint := c.apiBaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build helix request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set(headerClientID, c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "helix %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Wrapf(ErrProviderRejected, "helix %s", path)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("helix %s returned %d: %s", path, resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode helix %s", path)
	}

	return nil
}

func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

func toProviderToken(token *oauth2.Token) *service.ProviderToken {
	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(time.Hour)
	}

	return &service.ProviderToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
	}
}

func classifyOAuthError(err error, op string) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		switch retrieveErr.Response.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return errors.Wrap(ErrProviderRejected, op)
		}
	}

	return errors.Wrap(err, op)
}
