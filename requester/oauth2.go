package requester

import (
	"context"
	"errors"
	"strconv"

	"github.com/jrsteele09/go-discord-oauth/oauthmodel"
	"golang.org/x/oauth2"
)

// OAuth2Requester is the golang.org/x/oauth2 binding of the Requester
// contract. Token grants run through oauth2.Config, which Discord requires to
// authenticate with client credentials in the request body; the current-user
// lookup reuses the net/http binding since x/oauth2 refuses to send empty
// bearer tokens.
//
// One caveat of the adaptation: malformed token responses are detected inside
// x/oauth2 and surface here as transport failures, not decode failures.
type OAuth2Requester struct {
	rest *Client
}

var _ Requester = (*OAuth2Requester)(nil)

// NewOAuth2Requester creates an OAuth2Requester bound to Discord's endpoints.
// It accepts the same options as New.
func NewOAuth2Requester(opts ...Option) *OAuth2Requester {
	return &OAuth2Requester{rest: New(opts...)}
}

// ExchangeCode trades an authorization code for the user's access token via
// oauth2.Config.Exchange.
func (r *OAuth2Requester) ExchangeCode(ctx context.Context, req *oauthmodel.AccessTokenExchangeRequest) (*oauthmodel.AccessTokenResponse, error) {
	conf := r.config(req.ClientID, req.ClientSecret, req.RedirectURI)

	tok, err := conf.Exchange(r.clientContext(ctx), req.Code)
	if err != nil {
		return nil, wrapOAuth2Error(err)
	}
	return tokenResponse(tok), nil
}

// ExchangeRefreshToken mints a fresh access token through a token source
// seeded with only the refresh token, forcing the refresh_token grant.
func (r *OAuth2Requester) ExchangeRefreshToken(ctx context.Context, req *oauthmodel.RefreshTokenRequest) (*oauthmodel.AccessTokenResponse, error) {
	conf := r.config(req.ClientID, req.ClientSecret, req.RedirectURI)

	tok, err := conf.TokenSource(r.clientContext(ctx), &oauth2.Token{RefreshToken: req.RefreshToken}).Token()
	if err != nil {
		return nil, wrapOAuth2Error(err)
	}
	return tokenResponse(tok), nil
}

// FetchUser retrieves the profile of the user the token was issued for.
func (r *OAuth2Requester) FetchUser(ctx context.Context, accessToken string) (*oauthmodel.User, error) {
	return r.rest.FetchUser(ctx, accessToken)
}

func (r *OAuth2Requester) config(clientID uint64, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     strconv.FormatUint(clientID, 10),
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  BaseAuthorizeURI,
			TokenURL: r.rest.tokenURI,
			// Discord wants client credentials in the form body.
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// clientContext routes x/oauth2's internal HTTP calls through the configured
// client, so WithHTTPClient applies to this binding too.
func (r *OAuth2Requester) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, r.rest.httpClient)
}

func tokenResponse(tok *oauth2.Token) *oauthmodel.AccessTokenResponse {
	resp := &oauthmodel.AccessTokenResponse{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
	}
	// scope and expires_in are not first-class on oauth2.Token; pull them
	// from the raw response body.
	if scope, ok := tok.Extra("scope").(string); ok {
		resp.Scope = scope
	}
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		resp.ExpiresIn = int(v)
	case int64:
		resp.ExpiresIn = int(v)
	}
	return resp
}

func wrapOAuth2Error(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return newTransportError(&StatusError{
			StatusCode: retrieveErr.Response.StatusCode,
			Body:       retrieveErr.Body,
		})
	}
	return newTransportError(err)
}
