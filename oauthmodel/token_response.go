package oauthmodel

import "time"

// AccessTokenResponse represents the response from Discord's token endpoint.
// This is the standard OAuth2 token response format as defined in RFC 6749,
// returned for both the authorization_code and refresh_token grants.
// Deserialization either fully succeeds or the exchange fails; a response is
// never partially populated.
type AccessTokenResponse struct {
	// AccessToken is the short-lived token used to access Discord's API.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string `json:"access_token"`

	// TokenType indicates how to use the access token (always "Bearer").
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 604800 (for 7 days)
	ExpiresIn int `json:"expires_in"`

	// RefreshToken is the long-lived token used to obtain new access tokens
	// without re-prompting the user.
	// Security: Should be stored securely, rotates on each use
	RefreshToken string `json:"refresh_token"`

	// Scope is the space-separated list of scopes the token was granted.
	// Example: "identify email"
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope"`
}

// Expiry returns the instant the access token expires, relative to the given
// time (normally the time the exchange completed).
func (r *AccessTokenResponse) Expiry(from time.Time) time.Time {
	return from.Add(time.Duration(r.ExpiresIn) * time.Second)
}
