package requester

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jrsteele09/go-discord-oauth/oauthmodel"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 30 * time.Second

	// maxErrorBodyBytes caps how much of a non-2xx response body is kept
	// for diagnostics.
	maxErrorBodyBytes = 4 << 10
)

// Client is the net/http binding of the Requester contract. The zero options
// configuration talks to Discord's production endpoints with a 30 second
// request timeout.
type Client struct {
	httpClient *http.Client
	tokenURI   string
	userURI    string
	logger     zerolog.Logger
}

var _ Requester = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. to control timeouts
// or proxying. The Client is as safe for concurrent use as the client given
// here.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger attaches a zerolog logger. Operations log at debug level and
// never include credentials.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTokenURI overrides the token endpoint. Intended for tests.
func WithTokenURI(uri string) Option {
	return func(c *Client) { c.tokenURI = uri }
}

// WithUserURI overrides the current-user endpoint. Intended for tests.
func WithUserURI(uri string) Option {
	return func(c *Client) { c.userURI = uri }
}

// New creates a Client bound to Discord's endpoints.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokenURI:   BaseTokenURI,
		userURI:    BaseUserURI,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExchangeCode trades an authorization code for the user's access token.
func (c *Client) ExchangeCode(ctx context.Context, req *oauthmodel.AccessTokenExchangeRequest) (*oauthmodel.AccessTokenResponse, error) {
	resp, err := c.exchange(ctx, req.Values())
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("grant", "authorization_code").Int("expires_in", resp.ExpiresIn).Str("scope", resp.Scope).Msg("token exchange succeeded")
	return resp, nil
}

// ExchangeRefreshToken mints a fresh access token from a refresh token.
func (c *Client) ExchangeRefreshToken(ctx context.Context, req *oauthmodel.RefreshTokenRequest) (*oauthmodel.AccessTokenResponse, error) {
	resp, err := c.exchange(ctx, req.Values())
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("grant", "refresh_token").Int("expires_in", resp.ExpiresIn).Str("scope", resp.Scope).Msg("token exchange succeeded")
	return resp, nil
}

// FetchUser retrieves the profile of the user the token was issued for. The
// token is forwarded verbatim, empty or not; Discord decides whether it is
// acceptable.
func (c *Client) FetchUser(ctx context.Context, accessToken string) (*oauthmodel.User, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURI, nil)
	if err != nil {
		return nil, newEncodeError(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Accept", "application/json")

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var user oauthmodel.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, newDecodeError(err)
	}
	c.logger.Debug().Str("user_id", user.ID).Msg("fetched current user")
	return &user, nil
}

// exchange POSTs the form to the token endpoint and decodes the token
// response. Used by both grants; they only differ in the form they carry.
func (c *Client) exchange(ctx context.Context, form url.Values) (*oauthmodel.AccessTokenResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, newEncodeError(err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var resp oauthmodel.AccessTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, newDecodeError(err)
	}
	return &resp, nil
}

// do runs the request and returns the response body, mapping network errors
// and non-2xx statuses to transport failures.
func (c *Client) do(httpReq *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, newTransportError(&StatusError{StatusCode: resp.StatusCode, Body: body})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(err)
	}
	return body, nil
}
