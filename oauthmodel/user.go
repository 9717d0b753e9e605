package oauthmodel

// User represents the Discord user record returned by the current-user
// endpoint. The fields available depend on the scopes the access token was
// granted: email and verified require the "email" scope, everything else is
// covered by "identify".
type User struct {
	// ID is the user's Discord snowflake, serialized as a string.
	ID string `json:"id"`

	// Username is the user's name, not unique across the platform.
	Username string `json:"username"`

	// Discriminator is the user's legacy four-digit tag ("0" for users
	// migrated to unique usernames).
	Discriminator string `json:"discriminator"`

	// GlobalName is the user's display name, if set.
	GlobalName string `json:"global_name,omitempty"`

	// Avatar is the user's avatar hash, empty if the user has none.
	Avatar string `json:"avatar,omitempty"`

	// Bot reports whether the user belongs to an OAuth2 application.
	Bot bool `json:"bot,omitempty"`

	// MFAEnabled reports whether the user has two factor auth enabled.
	MFAEnabled bool `json:"mfa_enabled,omitempty"`

	// Locale is the user's chosen language option.
	// Example: "en-US"
	Locale string `json:"locale,omitempty"`

	// Verified reports whether the account email has been verified.
	// Requires: "email" scope
	Verified bool `json:"verified,omitempty"`

	// Email is the user's email address.
	// Requires: "email" scope
	Email string `json:"email,omitempty"`

	// Flags is the bitfield of flags on the user's account.
	Flags int `json:"flags,omitempty"`

	// PremiumType is the type of Nitro subscription on the account.
	PremiumType int `json:"premium_type,omitempty"`
}

// Tag returns the user's tag in the form "username#discriminator", or just
// the username for accounts without a legacy discriminator.
func (u *User) Tag() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}
