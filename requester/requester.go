// Package requester implements Discord's OAuth2 authorization-code and
// refresh-token exchanges and the authenticated current-user lookup.
//
// The package defines a single Requester contract over the shared
// oauthmodel data types, plus interchangeable bindings: Client performs the
// calls directly over a net/http client, and OAuth2Requester adapts the
// golang.org/x/oauth2 machinery to the same contract. Callers pick whichever
// binding suits their stack; both return the same response types and the same
// error taxonomy.
package requester

import (
	"context"

	"github.com/jrsteele09/go-discord-oauth/oauthmodel"
)

// Requester is the capability any HTTP-client binding must provide. Each
// operation is a single stateless request/response round trip: no retries, no
// caching, no local token state. Cancellation and timeouts follow the
// underlying HTTP client's semantics via the supplied context.
//
// Implementations are safe for concurrent use provided the HTTP client
// backing them is.
type Requester interface {
	// ExchangeCode trades a one-time authorization code for the user's
	// access and refresh tokens.
	ExchangeCode(ctx context.Context, req *oauthmodel.AccessTokenExchangeRequest) (*oauthmodel.AccessTokenResponse, error)

	// ExchangeRefreshToken mints a fresh access token (and replacement
	// refresh token) from a previously issued refresh token.
	ExchangeRefreshToken(ctx context.Context, req *oauthmodel.RefreshTokenRequest) (*oauthmodel.AccessTokenResponse, error)

	// FetchUser retrieves the profile of the user the access token was
	// issued for. The token is sent as-is in the Authorization header;
	// an empty token is still sent and left to Discord to reject.
	FetchUser(ctx context.Context, accessToken string) (*oauthmodel.User, error)
}
