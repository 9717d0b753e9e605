package requester

// Discord's well-known OAuth2 endpoints. These are process-wide constants;
// bindings only deviate from them through options, which exists for tests.
const (
	// BaseAuthorizeURI is the endpoint users are sent to for consent.
	BaseAuthorizeURI = "https://discord.com/api/oauth2/authorize"

	// BaseTokenURI is the token endpoint. Receives URL-encoded POST bodies
	// for both the authorization_code and refresh_token grants.
	BaseTokenURI = "https://discord.com/api/oauth2/token"

	// BaseUserURI is the current-user endpoint. Receives GET requests
	// carrying "Authorization: Bearer <token>".
	BaseUserURI = "https://discord.com/api/users/@me"
)

// Common Discord OAuth2 scopes.
const (
	// ScopeIdentify allows reading the user's profile without their email.
	ScopeIdentify = "identify"

	// ScopeEmail extends identify with the email and verified fields.
	ScopeEmail = "email"

	// ScopeGuilds allows listing the guilds the user is a member of.
	ScopeGuilds = "guilds"

	// ScopeGuildsJoin allows joining the user to a guild on their behalf.
	ScopeGuildsJoin = "guilds.join"

	// ScopeConnections allows reading the user's linked accounts.
	ScopeConnections = "connections"

	// ScopeBot adds a bot to the user's selected guild.
	ScopeBot = "bot"
)
