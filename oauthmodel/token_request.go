package oauthmodel

import (
	"net/url"
	"strconv"
)

// AccessTokenExchangeRequest holds the parameters for trading an authorization
// code for an access token at Discord's token endpoint.
// Built once per exchange attempt and serialized verbatim as URL-encoded form
// data; none of the fields are validated locally - Discord rejects bad input.
type AccessTokenExchangeRequest struct {
	// ClientID is the application's client ID (a Discord snowflake).
	// Example: 249608697955745802
	ClientID uint64

	// ClientSecret is the application's client secret.
	// Security: Never log or expose this value
	ClientSecret string

	// Code is the one-time authorization code received on the redirect URI
	// after the user approved the application.
	// Usage: Exchanged once for tokens, then becomes invalid
	Code string

	// RedirectURI is the redirect URI registered with the application.
	// Must exactly match the URI used in the authorization request.
	RedirectURI string
}

// NewAccessTokenExchangeRequest creates a request for exchanging an
// authorization code.
func NewAccessTokenExchangeRequest(clientID uint64, clientSecret, code, redirectURI string) *AccessTokenExchangeRequest {
	return &AccessTokenExchangeRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Code:         code,
		RedirectURI:  redirectURI,
	}
}

// Values returns the request as URL-encoded form values, containing exactly
// the fields client_id, client_secret, code and redirect_uri.
func (r *AccessTokenExchangeRequest) Values() url.Values {
	v := url.Values{}
	v.Set("client_id", strconv.FormatUint(r.ClientID, 10))
	v.Set("client_secret", r.ClientSecret)
	v.Set("code", r.Code)
	v.Set("redirect_uri", r.RedirectURI)
	return v
}

// RefreshTokenRequest holds the parameters for minting a fresh access token
// from a previously issued refresh token. Same lifecycle as
// AccessTokenExchangeRequest: built per attempt, never mutated afterwards.
type RefreshTokenRequest struct {
	// ClientID is the application's client ID (a Discord snowflake).
	ClientID uint64

	// ClientSecret is the application's client secret.
	// Security: Never log or expose this value
	ClientSecret string

	// RefreshToken is the long-lived token issued alongside a previous
	// access token.
	// Behavior: Typically rotated - the response carries a replacement
	RefreshToken string

	// RedirectURI is the redirect URI registered with the application.
	RedirectURI string
}

// NewRefreshTokenRequest creates a request for exchanging a refresh token.
func NewRefreshTokenRequest(clientID uint64, clientSecret, refreshToken, redirectURI string) *RefreshTokenRequest {
	return &RefreshTokenRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
		RedirectURI:  redirectURI,
	}
}

// Values returns the request as URL-encoded form values, containing exactly
// the fields client_id, client_secret, refresh_token and redirect_uri.
func (r *RefreshTokenRequest) Values() url.Values {
	v := url.Values{}
	v.Set("client_id", strconv.FormatUint(r.ClientID, 10))
	v.Set("client_secret", r.ClientSecret)
	v.Set("refresh_token", r.RefreshToken)
	v.Set("redirect_uri", r.RedirectURI)
	return v
}
